package auth

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// AuthConfig holds all authentication configuration for the application
type AuthConfig struct {
	JWTSecret   string                    `yaml:"jwt_secret" json:"jwt_secret"`
	RedirectURL string                    `yaml:"redirect_url" json:"redirect_url"`
	Providers   map[string]ProviderConfig `yaml:"providers" json:"providers"`
}

// ProviderConfig holds the OAuth2 credentials for one provider
type ProviderConfig struct {
	ClientID     string `yaml:"client_id" json:"client_id"`
	ClientSecret string `yaml:"client_secret" json:"client_secret"`
}

// LoadAuthConfig loads and validates authentication configuration
func LoadAuthConfig(configPath string) (*AuthConfig, error) {
	// Auth config lives in its own file, separate from the app config
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("auth")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setAuthDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading auth config file: %w", err)
		}
	}

	v.AutomaticEnv()

	var config AuthConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling auth config: %w", err)
	}

	if jwtSecret := os.Getenv("JWT_SECRET"); jwtSecret != "" {
		config.JWTSecret = jwtSecret
	}
	if redirectURL := os.Getenv("AUTH_REDIRECT_URL"); redirectURL != "" {
		config.RedirectURL = redirectURL
	}
	if config.RedirectURL == "" {
		config.RedirectURL = v.GetString("redirect_url")
	}

	// Credentials in the YAML may be ${ENV_VAR} references
	for name, provider := range config.Providers {
		provider.ClientID = expandEnvRef(provider.ClientID)
		provider.ClientSecret = expandEnvRef(provider.ClientSecret)
		config.Providers[name] = provider
	}

	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("auth config validation failed: %w", err)
	}

	return &config, nil
}

// GetProvider returns the configuration for a specific provider
func (c *AuthConfig) GetProvider(provider string) (*ProviderConfig, error) {
	providerConfig, exists := c.Providers[provider]
	if !exists {
		return nil, fmt.Errorf("provider '%s' not found", provider)
	}
	return &providerConfig, nil
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.RedirectURL == "" {
		return fmt.Errorf("redirect URL is required")
	}
	if len(c.Providers) == 0 {
		return fmt.Errorf("at least one provider must be configured")
	}

	for providerName, provider := range c.Providers {
		if provider.ClientID == "" {
			return fmt.Errorf("client_id is required for provider '%s'", providerName)
		}
		if provider.ClientSecret == "" {
			return fmt.Errorf("client_secret is required for provider '%s'", providerName)
		}
	}

	return nil
}

// setAuthDefaults sets default values for auth configuration
func setAuthDefaults(v *viper.Viper) {
	v.SetDefault("redirect_url", "http://localhost:7010")
	// No default JWT secret, it must come from the file or the environment

	v.SetDefault("providers", map[string]interface{}{
		"discord": map[string]interface{}{
			"client_id":     "${DISCORD_CLIENT_ID}",
			"client_secret": "${DISCORD_CLIENT_SECRET}",
		},
	})
}

// expandEnvRef resolves a ${VAR} reference against the environment. Plain
// values pass through unchanged, unresolved references become empty so
// validation catches them.
func expandEnvRef(value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}
	return os.Getenv(strings.TrimSuffix(strings.TrimPrefix(value, "${"), "}"))
}
