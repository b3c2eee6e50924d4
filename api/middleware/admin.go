package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lingvoapp/lingvo-api/ent"
)

// AdminOnly rejects requests from non-admin users. Denials are logged: the
// mobile app never links to admin URLs, so a denied request is either a probe
// or a revoked admin's stale client.
// Must be placed after the Auth middleware in the chain.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, exists := c.Get(ContextKeyUser)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		user, ok := raw.(*ent.User)
		if !ok || !user.IsAdmin {
			if ok {
				slog.Warn("admin route denied",
					"user_id", user.ID,
					"path", c.Request.URL.Path,
				)
			}
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}
