package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/podforge/podforge-api/internal/services/auth"
)

// Handler manages auth endpoints and the token-checking middleware
type Handler struct {
	authService *auth.Service
	enabled     bool
}

// NewHandler creates a new auth handler. When enabled is false every request
// runs as the fixed local development user.
func NewHandler(authService *auth.Service, enabled bool) *Handler {
	return &Handler{
		authService: authService,
		enabled:     enabled,
	}
}

// SetDevAuth configures the dev bypass token on the underlying service
func (h *Handler) SetDevAuth(enabled bool, token string) {
	h.authService.SetDevAuth(enabled, token)
}

// Me returns current user info from JWT
// @Summary      Get current user
// @Description  Current user information from the bearer token
// @Tags         auth
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} auth.UserInfo
// @Failure      401 {object} map[string]string
// @Router       /api/v1/me [get]
func (h *Handler) Me(c *gin.Context) {
	// Get claims from context (set by auth middleware)
	claims, exists := c.Get("claims")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	authClaims := claims.(*auth.Claims)
	c.JSON(http.StatusOK, auth.GetUserInfo(authClaims))
}

// AuthMiddleware validates bearer tokens and stores the caller's identity on
// the request context. Job ownership checks downstream rely on user_id being
// set here.
func (h *Handler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Auth disabled: run as the fixed local user so job records still
		// carry an owner
		if !h.enabled {
			setIdentity(c, h.authService.GetDevClaims())
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := h.authService.ValidateToken(parts[1])
		if err != nil {
			message := "Invalid or expired token"
			if errors.Is(err, auth.ErrTokenExpired) {
				message = "Token expired"
			}
			c.JSON(http.StatusUnauthorized, gin.H{"error": message})
			c.Abort()
			return
		}

		setIdentity(c, claims)
		c.Next()
	}
}

func setIdentity(c *gin.Context, claims *auth.Claims) {
	c.Set("claims", claims)
	c.Set("user_id", claims.Sub)
	c.Set("email", claims.Email)
	c.Set("role", claims.Role)
}
