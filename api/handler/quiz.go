package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lingvoapp/lingvo-api/cache"
	"github.com/lingvoapp/lingvo-api/ent"
	entgrammar "github.com/lingvoapp/lingvo-api/ent/grammar"
	entpack "github.com/lingvoapp/lingvo-api/ent/pack"
	entword "github.com/lingvoapp/lingvo-api/ent/word"
)

// QuizHandler serves quiz content: words for word packs, grammar questions
// for grammar packs, and the combined aggregate the mobile client preloads.
type QuizHandler struct {
	db    *ent.Client
	store cache.Store
	inv   *cache.Invalidator
}

func NewQuizHandler(db *ent.Client, store cache.Store, inv *cache.Invalidator) *QuizHandler {
	return &QuizHandler{db: db, store: store, inv: inv}
}

// Aggregate returns every pack with its content, split by pack type.
func (h *QuizHandler) Aggregate(c *gin.Context) {
	ctx := c.Request.Context()
	view, err := cache.GetOrCompute(ctx, h.store, cache.KeyQuiz, cache.TTLCatalog, func(ctx context.Context) (QuizView, error) {
		packs, err := h.db.Pack.Query().
			WithWords().
			WithGrammars().
			Order(ent.Asc(entpack.FieldCreatedAt)).
			All(ctx)
		if err != nil {
			return QuizView{}, err
		}

		view := QuizView{WordPacks: []QuizPackView{}, GrammarPacks: []QuizPackView{}}
		for _, p := range packs {
			qp := QuizPackView{
				PackView: newPackView(p),
				Words:    []WordView{},
				Grammars: []GrammarView{},
			}
			for _, w := range p.Edges.Words {
				qp.Words = append(qp.Words, newWordView(w))
			}
			for _, g := range p.Edges.Grammars {
				qp.Grammars = append(qp.Grammars, newGrammarView(g))
			}
			if p.Type == entpack.TypeWord {
				view.WordPacks = append(view.WordPacks, qp)
			} else {
				view.GrammarPacks = append(view.GrammarPacks, qp)
			}
		}
		return view, nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

// PackWords returns the words of one word pack, cached per pack.
func (h *QuizHandler) PackWords(c *gin.Context) {
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
	if p.Type != entpack.TypeWord {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Pack is not a word pack"})
		return
	}

	words, err := cache.GetOrCompute(ctx, h.store, cache.KeyWordsByPack(id), cache.TTLScoped, func(ctx context.Context) ([]WordView, error) {
		rows, err := h.db.Word.Query().
			Where(entword.PackID(id)).
			Order(ent.Asc(entword.FieldCreatedAt)).
			All(ctx)
		if err != nil {
			return nil, err
		}
		views := make([]WordView, 0, len(rows))
		for _, w := range rows {
			views = append(views, newWordView(w))
		}
		return views, nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, words)
}

type createWordRequest struct {
	PackID   uuid.UUID `json:"pack_id" binding:"required"`
	UzText   string    `json:"uz_text" binding:"required"`
	RuText   string    `json:"ru_text" binding:"required"`
	AudioURL *string   `json:"audio_url"`
}

func (h *QuizHandler) CreateWord(c *gin.Context) {
	var req createWordRequest
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
	if p.Type != entpack.TypeWord {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Pack is not a word pack"})
		return
	}

	create := h.db.Word.Create().
		SetPackID(req.PackID).
		SetUzText(req.UzText).
		SetRuText(req.RuText)
	if req.AudioURL != nil {
		create.SetAudioURL(*req.AudioURL)
	}

	w, err := create.Save(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.inv.Word(ctx, req.PackID)
	c.JSON(http.StatusCreated, newWordView(w))
}

type updateWordRequest struct {
	UzText   *string `json:"uz_text"`
	RuText   *string `json:"ru_text"`
	AudioURL *string `json:"audio_url"`
}

func (h *QuizHandler) UpdateWord(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req updateWordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	upd := h.db.Word.UpdateOneID(id)
	if req.UzText != nil {
		upd.SetUzText(*req.UzText)
	}
	if req.RuText != nil {
		upd.SetRuText(*req.RuText)
	}
	if req.AudioURL != nil {
		upd.SetAudioURL(*req.AudioURL)
	}

	w, err := upd.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Word not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.inv.Word(ctx, w.PackID)
	c.JSON(http.StatusOK, newWordView(w))
}

func (h *QuizHandler) DeleteWord(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	w, err := h.db.Word.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Word not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := h.db.Word.DeleteOneID(id).Exec(ctx); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.inv.Word(ctx, w.PackID)
	c.JSON(http.StatusOK, gin.H{"message": "Word deleted"})
}

// PackGrammars returns the grammar questions of one grammar pack, cached
// per pack.
func (h *QuizHandler) PackGrammars(c *gin.Context) {
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
	if p.Type != entpack.TypeGrammar {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Pack is not a grammar pack"})
		return
	}

	grammars, err := cache.GetOrCompute(ctx, h.store, cache.KeyGrammarsByPack(id), cache.TTLScoped, func(ctx context.Context) ([]GrammarView, error) {
		rows, err := h.db.Grammar.Query().
			Where(entgrammar.PackID(id)).
			Order(ent.Asc(entgrammar.FieldCreatedAt)).
			All(ctx)
		if err != nil {
			return nil, err
		}
		views := make([]GrammarView, 0, len(rows))
		for _, g := range rows {
			views = append(views, newGrammarView(g))
		}
		return views, nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, grammars)
}

type createGrammarRequest struct {
	PackID        uuid.UUID `json:"pack_id" binding:"required"`
	Type          string    `json:"type" binding:"required,oneof=fill build"`
	QuestionText  *string   `json:"question_text"`
	Options       []string  `json:"options"`
	CorrectOption *int      `json:"correct_option"`
	Sentence      *string   `json:"sentence"`
}

// validateGrammar enforces the per-type shape. Fill questions are multiple
// choice with exactly four options; build questions carry the sentence to
// reassemble.
func validateGrammar(req *createGrammarRequest) string {
	switch req.Type {
	case "fill":
		if req.QuestionText == nil || *req.QuestionText == "" {
			return "question_text is required for fill questions"
		}
		if len(req.Options) != 4 {
			return "fill questions require exactly 4 options"
		}
		if req.CorrectOption == nil || *req.CorrectOption < 0 || *req.CorrectOption > 3 {
			return "correct_option must be between 0 and 3"
		}
	case "build":
		if req.Sentence == nil || *req.Sentence == "" {
			return "sentence is required for build questions"
		}
	}
	return ""
}

func (h *QuizHandler) CreateGrammar(c *gin.Context) {
	var req createGrammarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := validateGrammar(&req); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
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

	create := h.db.Grammar.Create().
		SetPackID(req.PackID).
		SetType(entgrammar.Type(req.Type))
	if req.QuestionText != nil {
		create.SetQuestionText(*req.QuestionText)
	}
	if len(req.Options) > 0 {
		create.SetOptions(req.Options)
	}
	if req.CorrectOption != nil {
		create.SetCorrectOption(*req.CorrectOption)
	}
	if req.Sentence != nil {
		create.SetSentence(*req.Sentence)
	}

	g, err := create.Save(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.inv.Grammar(ctx, req.PackID)
	c.JSON(http.StatusCreated, newGrammarView(g))
}

type updateGrammarRequest struct {
	QuestionText  *string  `json:"question_text"`
	Options       []string `json:"options"`
	CorrectOption *int     `json:"correct_option"`
	Sentence      *string  `json:"sentence"`
}

func (h *QuizHandler) UpdateGrammar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req updateGrammarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	if len(req.Options) > 0 && len(req.Options) != 4 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fill questions require exactly 4 options"})
		return
	}
	if req.CorrectOption != nil && (*req.CorrectOption < 0 || *req.CorrectOption > 3) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "correct_option must be between 0 and 3"})
		return
	}

	upd := h.db.Grammar.UpdateOneID(id)
	if req.QuestionText != nil {
		upd.SetQuestionText(*req.QuestionText)
	}
	if len(req.Options) > 0 {
		upd.SetOptions(req.Options)
	}
	if req.CorrectOption != nil {
		upd.SetCorrectOption(*req.CorrectOption)
	}
	if req.Sentence != nil {
		upd.SetSentence(*req.Sentence)
	}

	g, err := upd.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Grammar question not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.inv.Grammar(ctx, g.PackID)
	c.JSON(http.StatusOK, newGrammarView(g))
}

func (h *QuizHandler) DeleteGrammar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	g, err := h.db.Grammar.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Grammar question not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := h.db.Grammar.DeleteOneID(id).Exec(ctx); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.inv.Grammar(ctx, g.PackID)
	c.JSON(http.StatusOK, gin.H{"message": "Grammar question deleted"})
}
