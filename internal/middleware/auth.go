package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/models"
	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/pkg/jwt"
	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/pkg/response"
)

const (
	ContextKeyUserID = "user_id"
	ContextKeyEmail  = "user_email"
	ContextKeyRole   = "user_role"
)

// Auth enforces a valid access token and stores its claims on the
// request context.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := jwt.ParseAccess(extractToken(c))
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			return
		}
		setClaims(c, claims)
		c.Next()
	}
}

// OptionalAuth sets the user claims if a valid token is present, but
// never blocks the request.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, err := jwt.ParseAccess(extractToken(c)); err == nil && claims.UserID != "" {
			setClaims(c, claims)
		}
		c.Next()
	}
}

// RequireAdmin rejects requests whose authenticated user is not an
// admin. Must run after Auth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentRole(c) != models.RoleAdmin {
			response.Forbidden(c, "Admin access required")
			return
		}
		c.Next()
	}
}

func setClaims(c *gin.Context, claims *jwt.Claims) {
	c.Set(ContextKeyUserID, claims.UserID)
	c.Set(ContextKeyEmail, claims.Email)
	c.Set(ContextKeyRole, claims.Role)
}

// CurrentUserID extracts the authenticated user ID from context.
func CurrentUserID(c *gin.Context) string {
	v, _ := c.Get(ContextKeyUserID)
	id, _ := v.(string)
	return id
}

// CurrentRole extracts the authenticated user's role from context.
func CurrentRole(c *gin.Context) string {
	v, _ := c.Get(ContextKeyRole)
	role, _ := v.(string)
	return role
}

// IsAuthenticated reports whether the request carries a valid token.
func IsAuthenticated(c *gin.Context) bool {
	return CurrentUserID(c) != ""
}

func extractToken(c *gin.Context) string {
	return NormalizeToken(c.GetHeader("Authorization"))
}

// NormalizeToken trims spaces and strips the optional Bearer prefix.
func NormalizeToken(raw string) string {
	token := strings.TrimSpace(raw)
	if strings.HasPrefix(strings.ToLower(token), "bearer ") {
		return strings.TrimSpace(token[7:])
	}
	return token
}
