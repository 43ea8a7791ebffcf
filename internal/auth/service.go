package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"sync"
	"time"

	"valo-platform-backend/internal/database/models"
	apperrors "valo-platform-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

// UserProvisioner upserts platform accounts from OAuth profiles. Satisfied by
// the user service.
type UserProvisioner interface {
	ProvisionOAuthUser(provider models.AuthProvider, providerID, username, displayName, email, avatarURL string) (*models.User, error)
}

// RefreshTokenData stores the session behind a refresh token
type RefreshTokenData struct {
	UserID      uuid.UUID   `json:"user_id"`
	Provider    string      `json:"provider"`
	Profile     UserProfile `json:"profile"`
	AccessToken string      `json:"access_token"`
	ExpiresAt   time.Time   `json:"expires_at"`
	CreatedAt   time.Time   `json:"created_at"`
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID   string `json:"user_id" example:"7c9e6679-7425-40de-944b-e07fc1f90ae7"`
	Username string `json:"username" example:"jett_main"`
	Email    string `json:"email" example:"jett@example.com"`
	Provider string `json:"provider" example:"discord"`
	jwt.RegisteredClaims
}

// AuthStartResponse represents the response for auth start endpoint
type AuthStartResponse struct {
	URL string `json:"url"`
}

// AuthHandlerResponse represents the response for auth handler endpoint
type AuthHandlerResponse struct {
	AccessToken  string      `json:"accessToken"`
	TokenType    string      `json:"tokenType"`
	ExpiresIn    int64       `json:"expiresIn"`
	RefreshToken string      `json:"refreshToken,omitempty"`
	UserID       uuid.UUID   `json:"userId"`
	Profile      UserProfile `json:"profile"`
}

// AuthLogoutResponse represents the response from the logout endpoint
type AuthLogoutResponse struct {
	Message string `json:"message" example:"Logged out successfully"`
}

// AuthValidateResponse represents the response from the token validation endpoint
type AuthValidateResponse struct {
	Valid  bool        `json:"valid" example:"true"`
	Claims *AuthClaims `json:"claims"`
}

// AuthService provides OAuth2 login, JWT issuing and refresh token rotation
type AuthService struct {
	config        *AuthConfig
	providers     map[string]Provider
	refreshTokens map[string]*RefreshTokenData
	tokenMutex    sync.RWMutex
	users         UserProvisioner
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig, users UserProvisioner) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}

	providers := make(map[string]Provider)
	for name := range config.Providers {
		providerConfig, _ := config.GetProvider(name)
		provider, err := newProvider(name, providerConfig)
		if err != nil {
			return nil, err
		}
		providers[name] = provider
	}

	return &AuthService{
		config:        config,
		providers:     providers,
		refreshTokens: make(map[string]*RefreshTokenData),
		users:         users,
	}, nil
}

// HasProvider reports whether a provider key is configured
func (s *AuthService) HasProvider(provider string) bool {
	_, exists := s.providers[provider]
	return exists
}

// GetAuthURL generates the OAuth2 authorization URL for a provider
func (s *AuthService) GetAuthURL(provider, state string) (string, error) {
	p, exists := s.providers[provider]
	if !exists {
		return "", fmt.Errorf("provider '%s' not found", provider)
	}

	oauth2Config := p.OAuth2Config(s.callbackURL(provider))
	return oauth2Config.AuthCodeURL(state, oauth2.AccessTypeOffline), nil
}

// HandleCallback processes the OAuth2 callback: exchanges the code, fetches
// the provider profile, upserts the platform account and issues tokens.
func (s *AuthService) HandleCallback(ctx context.Context, provider, code, state string) (*AuthHandlerResponse, error) {
	p, exists := s.providers[provider]
	if !exists {
		return nil, fmt.Errorf("provider '%s' not found", provider)
	}

	oauth2Config := p.OAuth2Config(s.callbackURL(provider))

	token, err := oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code for token: %w", err)
	}

	profile, err := p.FetchProfile(ctx, token.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to get user profile: %w", err)
	}

	user, err := s.users.ProvisionOAuthUser(models.AuthProvider(provider), profile.ProviderID,
		profile.Username, profile.DisplayName, profile.Email, profile.AvatarURL)
	if err != nil {
		return nil, fmt.Errorf("failed to provision user: %w", err)
	}

	jwtToken, err := s.GenerateJWT(user.ID, user.Username, user.Email, provider)
	if err != nil {
		return nil, fmt.Errorf("failed to generate JWT: %w", err)
	}

	refreshToken, err := s.generateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	s.tokenMutex.Lock()
	s.refreshTokens[refreshToken] = &RefreshTokenData{
		UserID:      user.ID,
		Provider:    provider,
		Profile:     *profile,
		AccessToken: token.AccessToken,
		ExpiresAt:   time.Now().Add(30 * 24 * time.Hour),
		CreatedAt:   time.Now(),
	}
	s.tokenMutex.Unlock()

	return &AuthHandlerResponse{
		AccessToken:  jwtToken,
		TokenType:    "Bearer",
		ExpiresIn:    3600,
		RefreshToken: refreshToken,
		UserID:       user.ID,
		Profile:      *profile,
	}, nil
}

// RefreshToken rotates a refresh token and issues a new JWT
func (s *AuthService) RefreshToken(refreshToken string) (*AuthHandlerResponse, error) {
	s.tokenMutex.RLock()
	tokenData, exists := s.refreshTokens[refreshToken]
	s.tokenMutex.RUnlock()

	if !exists {
		return nil, apperrors.ErrInvalidRefreshToken
	}

	if time.Now().After(tokenData.ExpiresAt) {
		s.tokenMutex.Lock()
		delete(s.refreshTokens, refreshToken)
		s.tokenMutex.Unlock()
		return nil, apperrors.ErrRefreshTokenExpired
	}

	jwtToken, err := s.GenerateJWT(tokenData.UserID, tokenData.Profile.Username, tokenData.Profile.Email, tokenData.Provider)
	if err != nil {
		return nil, fmt.Errorf("failed to generate new JWT: %w", err)
	}

	newRefreshToken, err := s.generateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate new refresh token: %w", err)
	}

	s.tokenMutex.Lock()
	delete(s.refreshTokens, refreshToken)
	s.refreshTokens[newRefreshToken] = &RefreshTokenData{
		UserID:      tokenData.UserID,
		Provider:    tokenData.Provider,
		Profile:     tokenData.Profile,
		AccessToken: tokenData.AccessToken,
		ExpiresAt:   time.Now().Add(30 * 24 * time.Hour),
		CreatedAt:   time.Now(),
	}
	s.tokenMutex.Unlock()

	return &AuthHandlerResponse{
		AccessToken:  jwtToken,
		TokenType:    "Bearer",
		ExpiresIn:    3600,
		RefreshToken: newRefreshToken,
		UserID:       tokenData.UserID,
		Profile:      tokenData.Profile,
	}, nil
}

// GenerateJWT creates a JWT token for the user
func (s *AuthService) GenerateJWT(userID uuid.UUID, username, email, provider string) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		UserID:   userID.String(),
		Username: username,
		Email:    email,
		Provider: provider,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "valo-platform-backend",
			Subject:   userID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// GenerateState generates a random state parameter for OAuth2
func (s *AuthService) GenerateState() (string, error) {
	return s.generateRandomString(32)
}

// Logout invalidates a refresh token. JWTs stay valid until they expire.
func (s *AuthService) Logout(refreshToken string) {
	if refreshToken == "" {
		return
	}
	s.tokenMutex.Lock()
	delete(s.refreshTokens, refreshToken)
	s.tokenMutex.Unlock()
}

// callbackURL builds the frame callback URL for a provider
func (s *AuthService) callbackURL(provider string) string {
	return fmt.Sprintf("%s/api/auth/%s/handler/frame", s.config.RedirectURL, provider)
}

// generateRefreshToken generates a random refresh token
func (s *AuthService) generateRefreshToken() (string, error) {
	return s.generateRandomString(64)
}

// generateRandomString generates a random base64 encoded string
func (s *AuthService) generateRandomString(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return base64.URLEncoding.EncodeToString(bytes), nil
}
