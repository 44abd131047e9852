// internal/middleware/auth.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/storefront-backend/internal/utils"
)

// SessionCredential copies the raw session credential into the context for
// handlers to pass on to services. It never rejects a request: endpoints that
// need a session decide that themselves. A bearer token wins over the cookie.
func SessionCredential(cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if credential := bearerToken(c.GetHeader("Authorization")); credential != "" {
			c.Set(utils.ContextKeyCredential, credential)
		} else if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
			c.Set(utils.ContextKeyCredential, cookie)
		}
		c.Next()
	}
}

// Extract token from "Bearer <token>"
func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
