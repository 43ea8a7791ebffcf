package auth

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

// GitHubProvider implements OAuth2 login through GitHub as a secondary
// provider for accounts without Discord
type GitHubProvider struct {
	config *ProviderConfig
}

// NewGitHubProvider creates a new GitHub provider
func NewGitHubProvider(config *ProviderConfig) *GitHubProvider {
	return &GitHubProvider{config: config}
}

// Name returns the provider key
func (p *GitHubProvider) Name() string {
	return "github"
}

// OAuth2Config returns the OAuth2 configuration for GitHub
func (p *GitHubProvider) OAuth2Config(redirectURL string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     p.config.ClientID,
		ClientSecret: p.config.ClientSecret,
		RedirectURL:  redirectURL,
		Scopes:       []string{"user:email", "read:user"},
		Endpoint: oauth2.Endpoint{
			AuthURL:  "https://github.com/login/oauth/authorize",
			TokenURL: "https://github.com/login/oauth/access_token",
		},
	}
}

// FetchProfile retrieves the GitHub account identity for an access token
func (p *GitHubProvider) FetchProfile(ctx context.Context, accessToken string) (*UserProfile, error) {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	client := github.NewClient(oauth2.NewClient(ctx, ts))

	user, resp, err := client.Users.Get(ctx, "")
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusUnauthorized {
			return nil, fmt.Errorf("invalid access token")
		}
		return nil, fmt.Errorf("failed to get user profile: %w", err)
	}

	// The profile email is often hidden, the emails endpoint has the real one
	emails, _, err := client.Users.ListEmails(ctx, nil)
	if err != nil {
		emails = []*github.UserEmail{}
	}

	primaryEmail := ""
	for _, email := range emails {
		if email.GetPrimary() {
			primaryEmail = email.GetEmail()
			break
		}
	}
	if primaryEmail == "" {
		for _, email := range emails {
			if email.GetVerified() {
				primaryEmail = email.GetEmail()
				break
			}
		}
	}
	if primaryEmail == "" && user.GetEmail() != "" {
		primaryEmail = user.GetEmail()
	}

	return &UserProfile{
		ProviderID:  strconv.FormatInt(user.GetID(), 10),
		Username:    user.GetLogin(),
		DisplayName: user.GetName(),
		Email:       primaryEmail,
		AvatarURL:   user.GetAvatarURL(),
	}, nil
}
