package middleware

import (
	"net/http"
	"strings"

	"github.com/oconnor-pat/BetterpPlay-BE/internal/auth"
	"github.com/wb-go/wbf/ginext"
)

const (
	UserIDKey  = "user_id"
	IsAdminKey = "is_admin"
)

// Auth validates the Bearer token and stores the principal on the context.
// Missing or invalid credentials end the request with 401.
func Auth(secret string) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "authentication required"})
			return
		}

		claims, err := auth.ParseValidate(secret, strings.TrimPrefix(h, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "invalid token"})
			return
		}

		c.Set(UserIDKey, claims.Sub)
		c.Set(IsAdminKey, claims.Admin)
		c.Next()
	}
}

// RequireAdmin ends the request with 403 unless the authenticated
// principal carries the admin flag. Must run after Auth.
func RequireAdmin() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if !c.GetBool(IsAdminKey) {
			c.AbortWithStatusJSON(http.StatusForbidden, ginext.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}
