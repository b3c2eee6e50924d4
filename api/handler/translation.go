package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lingvoapp/lingvo-api/ent"
	enttranslation "github.com/lingvoapp/lingvo-api/ent/translation"
	"github.com/lingvoapp/lingvo-api/translate"
)

// TranslationHandler fronts the machine translation service and its
// memoization table.
type TranslationHandler struct {
	db         *ent.Client
	translator *translate.Translator
}

func NewTranslationHandler(db *ent.Client, translator *translate.Translator) *TranslationHandler {
	return &TranslationHandler{db: db, translator: translator}
}

type translateRequest struct {
	Text           string `json:"text" binding:"required"`
	TargetLanguage string `json:"target_language" binding:"required"`
}

func (h *TranslationHandler) Translate(c *gin.Context) {
	var req translateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.translator.Translate(c.Request.Context(), req.Text, req.TargetLanguage)
	if err != nil {
		switch {
		case errors.Is(err, translate.ErrUnsupportedLanguage), errors.Is(err, translate.ErrEmptyInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, translate.ErrDisabled):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Translation service is not configured"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"input_text":      result.InputText,
		"target_language": result.TargetLanguage,
		"translated_text": result.OutputText,
		"from_cache":      result.FromCache,
	})
}

// List returns the memoized translations for the admin panel.
func (h *TranslationHandler) List(c *gin.Context) {
	rows, err := h.db.Translation.Query().
		Order(ent.Desc(enttranslation.FieldCreatedAt)).
		All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	type view struct {
		ID             string `json:"id"`
		InputText      string `json:"input_text"`
		TargetLanguage string `json:"target_language"`
		OutputText     string `json:"output_text"`
	}
	views := make([]view, 0, len(rows))
	for _, t := range rows {
		views = append(views, view{
			ID:             t.ID.String(),
			InputText:      t.InputText,
			TargetLanguage: t.TargetLanguage,
			OutputText:     t.OutputText,
		})
	}
	c.JSON(http.StatusOK, views)
}

func (h *TranslationHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.db.Translation.DeleteOneID(id).Exec(c.Request.Context()); err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Translation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Translation deleted"})
}

// Clear empties the memoization table.
func (h *TranslationHandler) Clear(c *gin.Context) {
	deleted, err := h.db.Translation.Delete().Exec(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Translations cleared", "deleted": deleted})
}
