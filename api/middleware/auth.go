package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lingvoapp/lingvo-api/auth"
	"github.com/lingvoapp/lingvo-api/ent"
)

// ContextKeyUser is the gin context key under which Auth stores the
// authenticated *ent.User.
const ContextKeyUser = "user"

// ExtractToken retrieves the bearer token from the Authorization header, or
// from the api_key query parameter for transports that cannot set headers
// (the websocket endpoint).
func ExtractToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			return token
		}
	}
	return c.Query("api_key")
}

// Auth validates the access token on every protected request, loads the
// user, and stores it in the gin context for downstream handlers.
func Auth(db *ent.Client, tokens *auth.Tokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ExtractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		userID, err := tokens.Verify(token, auth.TokenAccess)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		user, err := db.User.Get(c.Request.Context(), userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set(ContextKeyUser, user)
		c.Next()
	}
}
