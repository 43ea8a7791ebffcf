package auth

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
)

// UserProfile represents the account identity returned by an OAuth provider
type UserProfile struct {
	ProviderID  string `json:"providerId"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	AvatarURL   string `json:"avatarUrl"`
}

// Provider abstracts one OAuth2 login provider
type Provider interface {
	// Name returns the provider key used in routes and configuration
	Name() string
	// OAuth2Config returns the OAuth2 configuration with the given callback URL
	OAuth2Config(redirectURL string) *oauth2.Config
	// FetchProfile retrieves the account identity using an OAuth2 access token
	FetchProfile(ctx context.Context, accessToken string) (*UserProfile, error)
}

// newProvider builds the provider implementation for a configured provider key
func newProvider(name string, config *ProviderConfig) (Provider, error) {
	switch name {
	case "discord":
		return NewDiscordProvider(config), nil
	case "github":
		return NewGitHubProvider(config), nil
	default:
		return nil, fmt.Errorf("unsupported provider '%s'", name)
	}
}
