package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "valo-platform-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthConfig(t *testing.T) {
	t.Run("valid config structure", func(t *testing.T) {
		// Test creating a valid config directly
		config := &AuthConfig{
			JWTSecret:   "test-signing-key",
			RedirectURL: "http://localhost:7010",
			Providers: map[string]ProviderConfig{
				"discord": {
					ClientID:     "discord-client-id",
					ClientSecret: "discord-client-secret",
				},
				"github": {
					ClientID:     "github-client-id",
					ClientSecret: "github-client-secret",
				},
			},
		}

		// Test validation
		err := config.ValidateConfig()
		assert.NoError(t, err)
		assert.NotEmpty(t, config.JWTSecret)
		assert.NotEmpty(t, config.RedirectURL)
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		config := &AuthConfig{
			RedirectURL: "http://localhost:7010",
			Providers: map[string]ProviderConfig{
				"discord": {
					ClientID:     "discord-client-id",
					ClientSecret: "discord-client-secret",
				},
			},
		}

		err := config.ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JWT secret is required")
	})

	t.Run("missing redirect url", func(t *testing.T) {
		config := &AuthConfig{
			JWTSecret: "test-secret",
			Providers: map[string]ProviderConfig{
				"discord": {
					ClientID:     "discord-client-id",
					ClientSecret: "discord-client-secret",
				},
			},
		}

		err := config.ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "redirect URL is required")
	})

	t.Run("missing client credentials", func(t *testing.T) {
		config := &AuthConfig{
			JWTSecret:   "test-secret",
			RedirectURL: "http://localhost:7010",
			Providers: map[string]ProviderConfig{
				"discord": {
					// Missing ClientID and ClientSecret
				},
			},
		}

		err := config.ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "client_id is required")
	})
}

func TestDiscordProviderConfig(t *testing.T) {
	config := &ProviderConfig{
		ClientID:     "test-client-id",
		ClientSecret: "test-client-secret",
	}

	provider := NewDiscordProvider(config)
	assert.NotNil(t, provider)
	assert.Equal(t, "discord", provider.Name())

	oauthConfig := provider.OAuth2Config("http://localhost:7010/callback")
	assert.Equal(t, "test-client-id", oauthConfig.ClientID)
	assert.Equal(t, "test-client-secret", oauthConfig.ClientSecret)
	assert.Equal(t, "http://localhost:7010/callback", oauthConfig.RedirectURL)
	assert.Contains(t, oauthConfig.Scopes, "identify")
	assert.Contains(t, oauthConfig.Scopes, "email")
	assert.Contains(t, oauthConfig.Endpoint.AuthURL, "discord.com")
}

func TestGitHubProviderConfig(t *testing.T) {
	config := &ProviderConfig{
		ClientID:     "test-client-id",
		ClientSecret: "test-client-secret",
	}

	provider := NewGitHubProvider(config)
	assert.NotNil(t, provider)
	assert.Equal(t, "github", provider.Name())

	oauthConfig := provider.OAuth2Config("http://localhost:7010/callback")
	assert.Equal(t, "test-client-id", oauthConfig.ClientID)
	assert.Contains(t, oauthConfig.Scopes, "user:email")
	assert.Contains(t, oauthConfig.Endpoint.AuthURL, "github.com")
}

func TestJWTOperations(t *testing.T) {
	config := &AuthConfig{
		JWTSecret:   "test-signing-key-for-jwt-operations",
		RedirectURL: "http://localhost:7010",
		Providers: map[string]ProviderConfig{
			"discord": {
				ClientID:     "test-client-id",
				ClientSecret: "test-client-secret",
			},
		},
	}

	service, err := NewAuthService(config, nil)
	require.NoError(t, err)

	userID := uuid.New()

	// Test token generation
	token, err := service.GenerateJWT(userID, "jett_main", "jett@example.com", "discord")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	// Test token validation
	validatedClaims, err := service.ValidateJWT(token)
	assert.NoError(t, err)
	assert.Equal(t, userID.String(), validatedClaims.UserID)
	assert.Equal(t, "jett_main", validatedClaims.Username)
	assert.Equal(t, "jett@example.com", validatedClaims.Email)
	assert.Equal(t, "discord", validatedClaims.Provider)

	// Test invalid token
	_, err = service.ValidateJWT("invalid-token")
	assert.Error(t, err)
}

func TestAuthHandlers(t *testing.T) {
	// Create test config
	config := &AuthConfig{
		Providers: map[string]ProviderConfig{
			"discord": {
				ClientID:     "test-client-id",
				ClientSecret: "test-client-secret",
			},
		},
		JWTSecret:   "test-signing-key",
		RedirectURL: "http://localhost:7010",
	}

	service, err := NewAuthService(config, nil)
	require.NoError(t, err)

	handler := NewAuthHandler(service)

	// Setup Gin in test mode
	gin.SetMode(gin.TestMode)

	t.Run("Start endpoint", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("GET", "/api/auth/discord/start", nil)
		c.Params = gin.Params{{Key: "provider", Value: "discord"}}

		handler.Start(c)

		assert.Equal(t, http.StatusFound, w.Code)
		location := w.Header().Get("Location")
		assert.Contains(t, location, "discord.com")
		assert.Contains(t, location, "oauth2/authorize")
		assert.Contains(t, location, "test-client-id")
	})

	t.Run("Start endpoint with unknown provider", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("GET", "/api/auth/riot/start", nil)
		c.Params = gin.Params{{Key: "provider", Value: "riot"}}

		handler.Start(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Logout endpoint", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("POST", "/api/auth/discord/logout", nil)
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = gin.Params{{Key: "provider", Value: "discord"}}

		handler.Logout(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, "Logged out successfully", response["message"])
	})

	t.Run("ValidateToken endpoint", func(t *testing.T) {
		userID := uuid.New()
		token, err := service.GenerateJWT(userID, "jett_main", "jett@example.com", "discord")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("POST", "/api/auth/validate", nil)
		c.Request.Header.Set("Authorization", "Bearer "+token)

		handler.ValidateToken(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		err = json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, true, response["valid"])
	})

	t.Run("ValidateToken without header", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("POST", "/api/auth/validate", nil)

		handler.ValidateToken(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRefreshToken(t *testing.T) {
	config := &AuthConfig{
		JWTSecret:   "test-signing-key-for-refresh-test",
		RedirectURL: "http://localhost:7010",
		Providers: map[string]ProviderConfig{
			"discord": {
				ClientID:     "test-client-id",
				ClientSecret: "test-client-secret",
			},
		},
	}

	service, err := NewAuthService(config, nil)
	require.NoError(t, err)

	userID := uuid.New()
	profile := UserProfile{
		ProviderID:  "123456789012345678",
		Username:    "jett_main",
		DisplayName: "Jett Main",
		Email:       "jett@example.com",
	}

	t.Run("rotates a valid refresh token", func(t *testing.T) {
		service.refreshTokens["seed-token"] = &RefreshTokenData{
			UserID:      userID,
			Provider:    "discord",
			Profile:     profile,
			AccessToken: "discord-access-token",
			ExpiresAt:   time.Now().Add(24 * time.Hour),
			CreatedAt:   time.Now(),
		}

		resp, err := service.RefreshToken("seed-token")
		assert.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEmpty(t, resp.RefreshToken)
		assert.NotEqual(t, "seed-token", resp.RefreshToken)
		assert.Equal(t, userID, resp.UserID)

		// Old token is gone, the new one works
		_, err = service.RefreshToken("seed-token")
		assert.ErrorIs(t, err, apperrors.ErrInvalidRefreshToken)

		claims, err := service.ValidateJWT(resp.AccessToken)
		assert.NoError(t, err)
		assert.Equal(t, userID.String(), claims.UserID)
		assert.Equal(t, "discord", claims.Provider)
	})

	t.Run("unknown refresh token", func(t *testing.T) {
		_, err := service.RefreshToken("never-issued")
		assert.ErrorIs(t, err, apperrors.ErrInvalidRefreshToken)
	})

	t.Run("expired refresh token", func(t *testing.T) {
		service.refreshTokens["expired-token"] = &RefreshTokenData{
			UserID:    userID,
			Provider:  "discord",
			Profile:   profile,
			ExpiresAt: time.Now().Add(-time.Hour),
			CreatedAt: time.Now().Add(-31 * 24 * time.Hour),
		}

		_, err := service.RefreshToken("expired-token")
		assert.ErrorIs(t, err, apperrors.ErrRefreshTokenExpired)

		// Expired tokens are removed on first use
		_, err = service.RefreshToken("expired-token")
		assert.ErrorIs(t, err, apperrors.ErrInvalidRefreshToken)
	})

	t.Run("logout invalidates the refresh token", func(t *testing.T) {
		service.refreshTokens["logout-token"] = &RefreshTokenData{
			UserID:    userID,
			Provider:  "discord",
			Profile:   profile,
			ExpiresAt: time.Now().Add(24 * time.Hour),
			CreatedAt: time.Now(),
		}

		service.Logout("logout-token")

		_, err := service.RefreshToken("logout-token")
		assert.ErrorIs(t, err, apperrors.ErrInvalidRefreshToken)
	})
}

func TestConfigValidation(t *testing.T) {
	t.Run("empty providers map", func(t *testing.T) {
		config := &AuthConfig{
			JWTSecret:   "test-secret",
			RedirectURL: "http://localhost:7010",
			Providers:   map[string]ProviderConfig{},
		}

		err := config.ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "at least one provider")
	})

	t.Run("template strings are valid", func(t *testing.T) {
		config := &AuthConfig{
			JWTSecret:   "test-secret",
			RedirectURL: "http://localhost:7010",
			Providers: map[string]ProviderConfig{
				"discord": {
					ClientID:     "${DISCORD_CLIENT_ID}",
					ClientSecret: "${DISCORD_CLIENT_SECRET}",
				},
			},
		}

		// Template strings are valid (non-empty) during validation
		// They will be expanded by LoadAuthConfig from environment
		err := config.ValidateConfig()
		assert.NoError(t, err)
	})

	t.Run("unsupported provider key rejected by service", func(t *testing.T) {
		config := &AuthConfig{
			JWTSecret:   "test-secret",
			RedirectURL: "http://localhost:7010",
			Providers: map[string]ProviderConfig{
				"riot": {
					ClientID:     "riot-client-id",
					ClientSecret: "riot-client-secret",
				},
			},
		}

		_, err := NewAuthService(config, nil)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported provider")
	})
}

func TestGetProvider(t *testing.T) {
	config := &AuthConfig{
		JWTSecret:   "test-secret",
		RedirectURL: "http://localhost:7010",
		Providers: map[string]ProviderConfig{
			"discord": {
				ClientID:     "test-client-id",
				ClientSecret: "test-client-secret",
			},
		},
	}

	t.Run("existing provider", func(t *testing.T) {
		provider, err := config.GetProvider("discord")
		assert.NoError(t, err)
		assert.NotNil(t, provider)
		assert.Equal(t, "test-client-id", provider.ClientID)
	})

	t.Run("non-existing provider", func(t *testing.T) {
		_, err := config.GetProvider("nonexistent")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "provider 'nonexistent' not found")
	})
}

func TestExpandEnvRef(t *testing.T) {
	t.Run("plain value passes through", func(t *testing.T) {
		assert.Equal(t, "plain-secret", expandEnvRef("plain-secret"))
	})

	t.Run("reference resolves from environment", func(t *testing.T) {
		t.Setenv("VALO_TEST_CLIENT_ID", "resolved-id")
		assert.Equal(t, "resolved-id", expandEnvRef("${VALO_TEST_CLIENT_ID}"))
	})

	t.Run("unresolved reference becomes empty", func(t *testing.T) {
		assert.Equal(t, "", expandEnvRef("${VALO_TEST_UNSET_VAR}"))
	})
}

func TestAuthMiddleware(t *testing.T) {
	config := &AuthConfig{
		JWTSecret:   "test-signing-key-for-middleware",
		RedirectURL: "http://localhost:7010",
		Providers: map[string]ProviderConfig{
			"discord": {
				ClientID:     "test-client-id",
				ClientSecret: "test-client-secret",
			},
		},
	}

	service, err := NewAuthService(config, nil)
	require.NoError(t, err)

	middleware := NewAuthMiddleware(service)
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/protected", middleware.RequireAuth(), func(c *gin.Context) {
		userID, ok := GetUserID(c)
		require.True(t, ok)
		username, _ := GetUsername(c)
		c.JSON(http.StatusOK, gin.H{"user_id": userID.String(), "username": username})
	})
	router.GET("/optional", middleware.OptionalAuth(), func(c *gin.Context) {
		_, authenticated := GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"authenticated": authenticated})
	})

	userID := uuid.New()
	token, err := service.GenerateJWT(userID, "jett_main", "jett@example.com", "discord")
	require.NoError(t, err)

	t.Run("RequireAuth with valid token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, userID.String(), response["user_id"])
		assert.Equal(t, "jett_main", response["username"])
	})

	t.Run("RequireAuth without token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/protected", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("RequireAuth with malformed token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("OptionalAuth without token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/optional", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, false, response["authenticated"])
	})

	t.Run("OptionalAuth with valid token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/optional", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, true, response["authenticated"])
	})
}

func TestJWTExpiration(t *testing.T) {
	config := &AuthConfig{
		JWTSecret:   "test-signing-key-for-expiration-test",
		RedirectURL: "http://localhost:7010",
		Providers: map[string]ProviderConfig{
			"discord": {
				ClientID:     "test-client-id",
				ClientSecret: "test-client-secret",
			},
		},
	}

	service, err := NewAuthService(config, nil)
	require.NoError(t, err)

	userID := uuid.New()

	// Generate token
	token, err := service.GenerateJWT(userID, "jett_main", "jett@example.com", "discord")
	require.NoError(t, err)
	assert.NotEmpty(t, token, "Token should not be empty")

	// Token should be valid now
	claims, err := service.ValidateJWT(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)

	// Verify all basic claims are set
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "jett_main", claims.Username)
	assert.Equal(t, "discord", claims.Provider)
	assert.Equal(t, "valo-platform-backend", claims.Issuer)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}
