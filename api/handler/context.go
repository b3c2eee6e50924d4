package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/lingvoapp/lingvo-api/api/middleware"
	"github.com/lingvoapp/lingvo-api/ent"
)

// currentUser returns the authenticated user placed in the context by the
// Auth middleware. Handlers behind Auth can rely on it being present.
func currentUser(c *gin.Context) *ent.User {
	raw, _ := c.Get(middleware.ContextKeyUser)
	user, _ := raw.(*ent.User)
	return user
}
