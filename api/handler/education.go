package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lingvoapp/lingvo-api/cache"
	"github.com/lingvoapp/lingvo-api/ent"
	entgrammar "github.com/lingvoapp/lingvo-api/ent/grammar"
	entgrammartopic "github.com/lingvoapp/lingvo-api/ent/grammartopic"
	entlesson "github.com/lingvoapp/lingvo-api/ent/lesson"
	entmodule "github.com/lingvoapp/lingvo-api/ent/module"
	entpack "github.com/lingvoapp/lingvo-api/ent/pack"
	entprogress "github.com/lingvoapp/lingvo-api/ent/progress"
	entword "github.com/lingvoapp/lingvo-api/ent/word"
)

// EducationHandler serves the module/lesson/pack catalog. Reads go through
// the cache; every mutation invalidates the affected keys so the next read
// recomputes from the database.
type EducationHandler struct {
	db    *ent.Client
	store cache.Store
	inv   *cache.Invalidator
}

func NewEducationHandler(db *ent.Client, store cache.Store, inv *cache.Invalidator) *EducationHandler {
	return &EducationHandler{db: db, store: store, inv: inv}
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return uuid.Nil, false
	}
	return id, true
}

// Catalog returns the full module tree with lessons and packs.
func (h *EducationHandler) Catalog(c *gin.Context) {
	ctx := c.Request.Context()
	tree, err := cache.GetOrCompute(ctx, h.store, cache.KeyModules, cache.TTLCatalog, func(ctx context.Context) ([]ModuleView, error) {
		modules, err := h.db.Module.Query().
			WithLessons(func(q *ent.LessonQuery) {
				q.WithPacks().Order(ent.Asc(entlesson.FieldCreatedAt))
			}).
			Order(ent.Asc(entmodule.FieldCreatedAt)).
			All(ctx)
		if err != nil {
			return nil, err
		}
		views := make([]ModuleView, 0, len(modules))
		for _, m := range modules {
			views = append(views, newModuleView(m))
		}
		return views, nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tree)
}

type moduleRequest struct {
	Title string `json:"title" binding:"required"`
}

func (h *EducationHandler) CreateModule(c *gin.Context) {
	var req moduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	m, err := h.db.Module.Create().SetTitle(req.Title).Save(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.inv.Module(ctx)
	c.JSON(http.StatusCreated, newModuleView(m))
}

func (h *EducationHandler) GetModule(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	m, err := h.db.Module.Query().
		Where(entmodule.ID(id)).
		WithLessons(func(q *ent.LessonQuery) {
			q.WithPacks().Order(ent.Asc(entlesson.FieldCreatedAt))
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Module not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, newModuleView(m))
}

func (h *EducationHandler) UpdateModule(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req moduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	m, err := h.db.Module.UpdateOneID(id).SetTitle(req.Title).Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Module not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.inv.Module(ctx)
	c.JSON(http.StatusOK, newModuleView(m))
}

func (h *EducationHandler) DeleteModule(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	lessons, err := h.db.Lesson.Query().Where(entlesson.ModuleID(id)).Count(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if lessons > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Module has lessons. Delete them first."})
		return
	}

	if err := h.db.Module.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Module not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.inv.Module(ctx)
	c.JSON(http.StatusOK, gin.H{"message": "Module deleted"})
}

// ModuleLessons returns the lessons of one module, cached per module.
func (h *EducationHandler) ModuleLessons(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	exists, err := h.db.Module.Query().Where(entmodule.ID(id)).Exist(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Module not found"})
		return
	}

	lessons, err := cache.GetOrCompute(ctx, h.store, cache.KeyLessonsByModule(id), cache.TTLScoped, func(ctx context.Context) ([]LessonView, error) {
		rows, err := h.db.Lesson.Query().
			Where(entlesson.ModuleID(id)).
			WithPacks().
			Order(ent.Asc(entlesson.FieldCreatedAt)).
			All(ctx)
		if err != nil {
			return nil, err
		}
		views := make([]LessonView, 0, len(rows))
		for _, l := range rows {
			views = append(views, newLessonView(l))
		}
		return views, nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, lessons)
}

type createLessonRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	ModuleID    uuid.UUID `json:"module_id" binding:"required"`
}

func (h *EducationHandler) CreateLesson(c *gin.Context) {
	var req createLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	exists, err := h.db.Module.Query().Where(entmodule.ID(req.ModuleID)).Exist(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Module not found"})
		return
	}

	l, err := h.db.Lesson.Create().
		SetTitle(req.Title).
		SetDescription(req.Description).
		SetModuleID(req.ModuleID).
		Save(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.inv.Lesson(ctx, req.ModuleID)
	c.JSON(http.StatusCreated, newLessonView(l))
}

func (h *EducationHandler) GetLesson(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	l, err := h.db.Lesson.Query().
		Where(entlesson.ID(id)).
		WithPacks().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Lesson not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, newLessonView(l))
}

type updateLessonRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

func (h *EducationHandler) UpdateLesson(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req updateLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	upd := h.db.Lesson.UpdateOneID(id)
	if req.Title != nil {
		upd.SetTitle(*req.Title)
	}
	if req.Description != nil {
		upd.SetDescription(*req.Description)
	}

	l, err := upd.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Lesson not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.inv.Lesson(ctx, l.ModuleID)
	c.JSON(http.StatusOK, newLessonView(l))
}

func (h *EducationHandler) DeleteLesson(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	l, err := h.db.Lesson.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Lesson not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	packs, err := h.db.Pack.Query().Where(entpack.LessonID(id)).Count(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if packs > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Lesson has packs. Delete them first."})
		return
	}

	if err := h.db.Lesson.DeleteOneID(id).Exec(ctx); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.inv.Lesson(ctx, l.ModuleID)
	c.JSON(http.StatusOK, gin.H{"message": "Lesson deleted"})
}

// LessonPacks returns the packs of one lesson, cached per lesson.
func (h *EducationHandler) LessonPacks(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	exists, err := h.db.Lesson.Query().Where(entlesson.ID(id)).Exist(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lesson not found"})
		return
	}

	packs, err := cache.GetOrCompute(ctx, h.store, cache.KeyPacksByLesson(id), cache.TTLScoped, func(ctx context.Context) ([]PackView, error) {
		rows, err := h.db.Pack.Query().
			Where(entpack.LessonID(id)).
			Order(ent.Asc(entpack.FieldCreatedAt)).
			All(ctx)
		if err != nil {
			return nil, err
		}
		views := make([]PackView, 0, len(rows))
		for _, p := range rows {
			views = append(views, newPackView(p))
		}
		return views, nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, packs)
}

type createPackRequest struct {
	Title     string    `json:"title" binding:"required"`
	LessonID  uuid.UUID `json:"lesson_id" binding:"required"`
	Type      string    `json:"type" binding:"required,oneof=word grammar"`
	WordCount *int      `json:"word_count"`
}

func (h *EducationHandler) CreatePack(c *gin.Context) {
	var req createPackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	l, err := h.db.Lesson.Get(ctx, req.LessonID)
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Lesson not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	create := h.db.Pack.Create().
		SetTitle(req.Title).
		SetLessonID(req.LessonID).
		SetType(entpack.Type(req.Type))
	if req.WordCount != nil {
		create.SetWordCount(*req.WordCount)
	}

	p, err := create.Save(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.inv.Pack(ctx, req.LessonID, l.ModuleID)
	c.JSON(http.StatusCreated, newPackView(p))
}

func (h *EducationHandler) GetPack(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	p, err := h.db.Pack.Get(c.Request.Context(), id)
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Pack not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, newPackView(p))
}

type updatePackRequest struct {
	Title     *string `json:"title"`
	WordCount *int    `json:"word_count"`
}

func (h *EducationHandler) UpdatePack(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req updatePackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	upd := h.db.Pack.UpdateOneID(id)
	if req.Title != nil {
		upd.SetTitle(*req.Title)
	}
	if req.WordCount != nil {
		upd.SetWordCount(*req.WordCount)
	}

	p, err := upd.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Pack not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	l, err := h.db.Lesson.Get(ctx, p.LessonID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.inv.Pack(ctx, p.LessonID, l.ModuleID)
	c.JSON(http.StatusOK, newPackView(p))
}

func (h *EducationHandler) DeletePack(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	p, err := h.db.Pack.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Pack not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	l, err := h.db.Lesson.Get(ctx, p.LessonID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Content rows reference the pack, so they go first.
	if _, err := h.db.Word.Delete().Where(entword.PackID(id)).Exec(ctx); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if _, err := h.db.Grammar.Delete().Where(entgrammar.PackID(id)).Exec(ctx); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if _, err := h.db.GrammarTopic.Delete().Where(entgrammartopic.PackID(id)).Exec(ctx); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if _, err := h.db.Progress.Delete().Where(entprogress.PackID(id)).Exec(ctx); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := h.db.Pack.DeleteOneID(id).Exec(ctx); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Pack content caches go stale with the pack itself.
	h.inv.Pack(ctx, p.LessonID, l.ModuleID)
	h.inv.Word(ctx, id)
	h.inv.Grammar(ctx, id)
	h.inv.GrammarTopic(ctx)
	h.inv.Progress(ctx)
	c.JSON(http.StatusOK, gin.H{"message": "Pack deleted"})
}
