package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lingvoapp/lingvo-api/cache"
	"github.com/lingvoapp/lingvo-api/ent"
	entuser "github.com/lingvoapp/lingvo-api/ent/user"
)

// UsersHandler serves the admin user directory.
type UsersHandler struct {
	db    *ent.Client
	store cache.Store
	inv   *cache.Invalidator
}

func NewUsersHandler(db *ent.Client, store cache.Store, inv *cache.Invalidator) *UsersHandler {
	return &UsersHandler{db: db, store: store, inv: inv}
}

// List returns every registered user, cached globally.
func (h *UsersHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	users, err := cache.GetOrCompute(ctx, h.store, cache.KeyUsers, cache.TTLCatalog, func(ctx context.Context) ([]UserView, error) {
		rows, err := h.db.User.Query().
			Order(ent.Asc(entuser.FieldCreatedAt)).
			All(ctx)
		if err != nil {
			return nil, err
		}
		views := make([]UserView, 0, len(rows))
		for _, u := range rows {
			views = append(views, newUserView(u))
		}
		return views, nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UsersHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	u, err := h.db.User.Get(c.Request.Context(), id)
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, newUserView(u))
}

type setAdminRequest struct {
	IsAdmin *bool `json:"is_admin" binding:"required"`
}

// SetAdmin grants or revokes admin rights.
func (h *UsersHandler) SetAdmin(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req setAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	u, err := h.db.User.UpdateOneID(id).SetIsAdmin(*req.IsAdmin).Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.inv.User(ctx)
	c.JSON(http.StatusOK, newUserView(u))
}
