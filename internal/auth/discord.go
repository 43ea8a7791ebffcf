package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

const (
	discordAuthURL  = "https://discord.com/oauth2/authorize"
	discordTokenURL = "https://discord.com/api/oauth2/token"
	discordAPIURL   = "https://discord.com/api"
	discordCDNURL   = "https://cdn.discordapp.com"
)

// DiscordProvider implements OAuth2 login through Discord, the primary
// provider since teams organize in Discord anyway
type DiscordProvider struct {
	config     *ProviderConfig
	httpClient *http.Client
}

// discordUser represents the response of the Discord current-user endpoint
type discordUser struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	GlobalName string `json:"global_name"`
	Avatar     string `json:"avatar"`
	Email      string `json:"email"`
}

// NewDiscordProvider creates a new Discord provider
func NewDiscordProvider(config *ProviderConfig) *DiscordProvider {
	return &DiscordProvider{
		config:     config,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Name returns the provider key
func (p *DiscordProvider) Name() string {
	return "discord"
}

// OAuth2Config returns the OAuth2 configuration for Discord
func (p *DiscordProvider) OAuth2Config(redirectURL string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     p.config.ClientID,
		ClientSecret: p.config.ClientSecret,
		RedirectURL:  redirectURL,
		Scopes:       []string{"identify", "email"},
		Endpoint: oauth2.Endpoint{
			AuthURL:  discordAuthURL,
			TokenURL: discordTokenURL,
		},
	}
}

// FetchProfile retrieves the Discord account identity for an access token
func (p *DiscordProvider) FetchProfile(ctx context.Context, accessToken string) (*UserProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, discordAPIURL+"/users/@me", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch Discord profile: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, fmt.Errorf("invalid access token")
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("Discord profile request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var user discordUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to decode Discord profile: %w", err)
	}

	displayName := user.GlobalName
	if displayName == "" {
		displayName = user.Username
	}

	avatarURL := ""
	if user.Avatar != "" {
		avatarURL = fmt.Sprintf("%s/avatars/%s/%s.png", discordCDNURL, user.ID, user.Avatar)
	}

	return &UserProfile{
		ProviderID:  user.ID,
		Username:    user.Username,
		DisplayName: displayName,
		Email:       user.Email,
		AvatarURL:   avatarURL,
	}, nil
}
