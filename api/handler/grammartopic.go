package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lingvoapp/lingvo-api/cache"
	"github.com/lingvoapp/lingvo-api/ent"
	entgrammartopic "github.com/lingvoapp/lingvo-api/ent/grammartopic"
	entpack "github.com/lingvoapp/lingvo-api/ent/pack"
)

// GrammarTopicHandler serves the theory material (video plus markdown)
// attached to grammar packs.
type GrammarTopicHandler struct {
	db    *ent.Client
	store cache.Store
	inv   *cache.Invalidator
}

func NewGrammarTopicHandler(db *ent.Client, store cache.Store, inv *cache.Invalidator) *GrammarTopicHandler {
	return &GrammarTopicHandler{db: db, store: store, inv: inv}
}

// List returns every grammar topic, cached globally.
func (h *GrammarTopicHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	topics, err := cache.GetOrCompute(ctx, h.store, cache.KeyGrammarTopics, cache.TTLCatalog, func(ctx context.Context) ([]TopicView, error) {
		rows, err := h.db.GrammarTopic.Query().
			Order(ent.Asc(entgrammartopic.FieldCreatedAt)).
			All(ctx)
		if err != nil {
			return nil, err
		}
		views := make([]TopicView, 0, len(rows))
		for _, t := range rows {
			views = append(views, newTopicView(t))
		}
		return views, nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, topics)
}

func (h *GrammarTopicHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	t, err := h.db.GrammarTopic.Get(c.Request.Context(), id)
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Grammar topic not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, newTopicView(t))
}

type createTopicRequest struct {
	PackID       uuid.UUID `json:"pack_id" binding:"required"`
	VideoURL     *string   `json:"video_url"`
	MarkdownText *string   `json:"markdown_text"`
}

func (h *GrammarTopicHandler) Create(c *gin.Context) {
	var req createTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	p, err := h.db.Pack.Get(ctx, req.PackID)
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Pack not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if p.Type != entpack.TypeGrammar {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Pack is not a grammar pack"})
		return
	}

	create := h.db.GrammarTopic.Create().SetPackID(req.PackID)
	if req.VideoURL != nil {
		create.SetVideoURL(*req.VideoURL)
	}
	if req.MarkdownText != nil {
		create.SetMarkdownText(*req.MarkdownText)
	}

	t, err := create.Save(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.inv.GrammarTopic(ctx)
	c.JSON(http.StatusCreated, newTopicView(t))
}

type updateTopicRequest struct {
	VideoURL     *string `json:"video_url"`
	MarkdownText *string `json:"markdown_text"`
}

func (h *GrammarTopicHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req updateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	upd := h.db.GrammarTopic.UpdateOneID(id)
	if req.VideoURL != nil {
		upd.SetVideoURL(*req.VideoURL)
	}
	if req.MarkdownText != nil {
		upd.SetMarkdownText(*req.MarkdownText)
	}

	t, err := upd.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Grammar topic not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.inv.GrammarTopic(ctx)
	c.JSON(http.StatusOK, newTopicView(t))
}

func (h *GrammarTopicHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if err := h.db.GrammarTopic.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Grammar topic not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.inv.GrammarTopic(ctx)
	c.JSON(http.StatusOK, gin.H{"message": "Grammar topic deleted"})
}
