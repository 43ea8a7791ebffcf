package auth

import (
	"encoding/json"
	"errors"
	"html"
	"net/http"
	"strings"

	apperrors "valo-platform-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// formatResponseAsJSON converts the response to JSON string for embedding in HTML
func formatResponseAsJSON(response interface{}) string {
	jsonBytes, err := json.Marshal(response)
	if err != nil {
		return "{}"
	}
	return string(jsonBytes)
}

// escapeJSString safely escapes a Go string for embedding inside JS string literals.
func escapeJSString(s string) string {
	e := html.EscapeString(s)
	e = strings.ReplaceAll(e, "\n", `\n`)
	e = strings.ReplaceAll(e, "\r", ``)
	return e
}

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service *AuthService
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service *AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Start handles GET /api/auth/{provider}/start
// @Summary Start OAuth authentication
// @Description Initiate OAuth authentication flow with the specified provider
// @Tags authentication
// @Accept json
// @Produce json
// @Param provider path string true "OAuth provider (discord or github)"
// @Success 302 {string} string "Redirect to OAuth provider authorization URL"
// @Failure 400 {object} map[string]interface{} "Invalid provider or request parameters"
// @Failure 500 {object} map[string]interface{} "Failed to generate authorization URL"
// @Router /api/auth/{provider}/start [get]
func (h *AuthHandler) Start(c *gin.Context) {
	provider := c.Param("provider")

	if provider == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Provider is required"})
		return
	}
	if !h.service.HasProvider(provider) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported provider"})
		return
	}

	state, err := h.service.GenerateState()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate state parameter"})
		return
	}

	authURL, err := h.service.GetAuthURL(provider, state)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate authorization URL", "details": err.Error()})
		return
	}

	c.Redirect(http.StatusFound, authURL)
}

// HandlerFrame handles GET /api/auth/{provider}/handler/frame
// Posts { type: 'authorization_response', response: {...} } to the opener
// window and closes, so the SPA login popup can pick up the session.
// @Summary Handle OAuth callback
// @Description Handle OAuth callback from provider and return authentication result in HTML frame
// @Tags authentication
// @Accept json
// @Produce text/html
// @Param provider path string true "OAuth provider (discord or github)"
// @Param code query string true "OAuth authorization code from provider"
// @Param state query string true "OAuth state parameter for security"
// @Param error query string false "OAuth error parameter from provider"
// @Param error_description query string false "OAuth error description from provider"
// @Success 200 {string} string "HTML page that posts authentication result to opener window"
// @Failure 400 {object} map[string]interface{} "Invalid request parameters"
// @Router /api/auth/{provider}/handler/frame [get]
func (h *AuthHandler) HandlerFrame(c *gin.Context) {
	provider := c.Param("provider")
	code := c.Query("code")
	state := c.Query("state")
	errorParam := c.Query("error")

	// OAuth errors from provider
	if errorParam != "" {
		errorDescription := c.Query("error_description")
		h.writeFrameError(c, "OAuthError", errorParam+": "+errorDescription)
		return
	}

	if provider == "" || !h.service.HasProvider(provider) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported provider"})
		return
	}
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Authorization code is required"})
		return
	}
	if state == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "State parameter is required"})
		return
	}

	serviceResp, err := h.service.HandleCallback(c.Request.Context(), provider, code, state)
	if err != nil {
		h.writeFrameError(c, "Error", err.Error())
		return
	}

	// Session cookies for the refresh endpoint
	c.SetCookie("auth_token", serviceResp.AccessToken, 3600, "/", "", false, true)
	c.SetCookie("refresh_token", serviceResp.RefreshToken, 30*24*3600, "/", "", false, true)

	// Profile cookie is readable by the frontend
	profileJSON, _ := json.Marshal(serviceResp.Profile)
	c.SetCookie("user_profile", string(profileJSON), 3600, "/", "", false, false)

	successHTML := `<!doctype html><html><body><script>
(function(){
  var message = { type: "authorization_response", response: ` + formatResponseAsJSON(serviceResp) + ` };
  try { if (window.opener) window.opener.postMessage(message, "*"); } finally { window.close(); }
})();
</script></body></html>`

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusOK, successHTML)
}

// Refresh handles GET /api/auth/{provider}/refresh?refresh_token=...
// Falls back to the Authorization header and the session cookies when no
// refresh token is passed, so an open SPA tab can silently renew.
// @Summary Refresh authentication token
// @Description Refresh authentication token using refresh token, Authorization header, or session cookies
// @Tags authentication
// @Accept json
// @Produce json
// @Param provider path string true "OAuth provider (discord or github)"
// @Param refresh_token query string false "Refresh token to use for getting new access token"
// @Param Authorization header string false "Bearer token for validation"
// @Success 200 {object} AuthHandlerResponse "Successfully refreshed token"
// @Failure 400 {object} map[string]interface{} "Invalid provider"
// @Failure 401 {object} map[string]interface{} "Authentication required or token invalid"
// @Failure 500 {object} map[string]interface{} "Token refresh failed"
// @Router /api/auth/{provider}/refresh [get]
func (h *AuthHandler) Refresh(c *gin.Context) {
	provider := c.Param("provider")
	refreshToken := c.Query("refresh_token")

	if provider == "" || !h.service.HasProvider(provider) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported provider"})
		return
	}

	if strings.TrimSpace(refreshToken) == "" {
		// 1. A still-valid JWT in the Authorization header gets re-issued
		if tokenString := bearerToken(c); tokenString != "" {
			if resp, ok := h.reissueFromJWT(tokenString); ok {
				c.JSON(http.StatusOK, resp)
				return
			}
		}

		// 2. Session cookies
		if authTokenCookie, err := c.Cookie("auth_token"); err == nil && authTokenCookie != "" {
			if resp, ok := h.reissueFromJWT(authTokenCookie); ok {
				c.JSON(http.StatusOK, resp)
				return
			}
		}
		if refreshTokenCookie, err := c.Cookie("refresh_token"); err == nil && refreshTokenCookie != "" {
			refreshToken = refreshTokenCookie
		}

		if strings.TrimSpace(refreshToken) == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "Authentication required",
				"details": "No valid session found. Please authenticate first.",
			})
			return
		}
	}

	refreshed, err := h.service.RefreshToken(refreshToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidRefreshToken) || errors.Is(err, apperrors.ErrRefreshTokenExpired) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token refresh failed", "details": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token refresh failed", "details": err.Error()})
		}
		return
	}

	c.SetCookie("auth_token", refreshed.AccessToken, 3600, "/", "", false, true)
	c.SetCookie("refresh_token", refreshed.RefreshToken, 30*24*3600, "/", "", false, true)
	c.JSON(http.StatusOK, refreshed)
}

// Logout handles POST /api/auth/{provider}/logout
// @Summary Logout user
// @Description Logout user, invalidate the refresh token and clear session cookies
// @Tags authentication
// @Accept json
// @Produce json
// @Param provider path string true "OAuth provider (discord or github)"
// @Success 200 {object} AuthLogoutResponse "Successfully logged out"
// @Failure 400 {object} map[string]interface{} "Invalid provider"
// @Router /api/auth/{provider}/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	provider := c.Param("provider")

	if provider == "" || !h.service.HasProvider(provider) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported provider"})
		return
	}

	if refreshTokenCookie, err := c.Cookie("refresh_token"); err == nil {
		h.service.Logout(refreshTokenCookie)
	}
	h.service.Logout(c.Query("refresh_token"))

	c.SetCookie("auth_token", "", -1, "/", "", false, true)
	c.SetCookie("refresh_token", "", -1, "/", "", false, true)
	c.SetCookie("user_profile", "", -1, "/", "", false, false)

	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// ValidateToken handles POST /api/auth/validate
// @Summary Validate JWT token
// @Description Validate JWT token and return token claims
// @Tags authentication
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token to validate"
// @Success 200 {object} AuthValidateResponse "Token is valid with claims"
// @Failure 401 {object} map[string]interface{} "Authorization header required or token invalid"
// @Router /api/auth/validate [post]
func (h *AuthHandler) ValidateToken(c *gin.Context) {
	tokenString := bearerToken(c)
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
		return
	}

	claims, err := h.service.ValidateJWT(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"valid": true, "claims": claims})
}

// reissueFromJWT validates a JWT and issues a fresh one for the same session
func (h *AuthHandler) reissueFromJWT(tokenString string) (*AuthHandlerResponse, bool) {
	claims, err := h.service.ValidateJWT(tokenString)
	if err != nil {
		return nil, false
	}
	userID, err := uuidFromClaims(claims)
	if err != nil {
		return nil, false
	}

	newJWT, err := h.service.GenerateJWT(userID, claims.Username, claims.Email, claims.Provider)
	if err != nil {
		return nil, false
	}

	return &AuthHandlerResponse{
		AccessToken: newJWT,
		TokenType:   "Bearer",
		ExpiresIn:   3600,
		UserID:      userID,
		Profile: UserProfile{
			Username: claims.Username,
			Email:    claims.Email,
		},
	}, true
}

// writeFrameError renders the postMessage error page for the login popup
func (h *AuthHandler) writeFrameError(c *gin.Context, name, message string) {
	errorHTML := `<!doctype html><html><body><script>
(function(){
  var msg = { type: "authorization_response", error: { name: "` + escapeJSString(name) + `", message: "` + escapeJSString(message) + `" } };
  try { if (window.opener) window.opener.postMessage(msg, "*"); } finally { window.close(); }
})();
</script></body></html>`
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusOK, errorHTML)
}

// bearerToken extracts the token from the Authorization header, empty when absent
func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return ""
	}
	return tokenString
}
