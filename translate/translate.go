package translate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/lingvoapp/lingvo-api/ent"
	"github.com/lingvoapp/lingvo-api/ent/translation"
)

var (
	// ErrUnsupportedLanguage is returned for target languages outside uz/ru.
	ErrUnsupportedLanguage = errors.New("translate: unsupported target language")
	// ErrEmptyInput is returned when the text to translate is blank.
	ErrEmptyInput = errors.New("translate: empty input")
	// ErrDisabled is returned when no OpenAI API key is configured.
	ErrDisabled = errors.New("translate: no API key configured")
)

var languageNames = map[string]string{
	"uz": "Uzbek",
	"ru": "Russian",
}

// Translator proxies translations through OpenAI and memoizes every result
// in the translations table, so each distinct (text, language) pair is paid
// for exactly once.
type Translator struct {
	db      *ent.Client
	client  openai.Client
	enabled bool
}

func New(db *ent.Client, apiKey string) *Translator {
	t := &Translator{db: db}
	if apiKey != "" {
		t.client = openai.NewClient(option.WithAPIKey(apiKey))
		t.enabled = true
	}
	return t
}

// Result is one translation, with its provenance.
type Result struct {
	InputText      string `json:"input_text"`
	TargetLanguage string `json:"target_language"`
	OutputText     string `json:"output_text"`
	FromCache      bool   `json:"from_cache"`
}

// Translate returns the stored translation when one exists, otherwise calls
// the model and stores the result.
func (t *Translator) Translate(ctx context.Context, text, targetLanguage string) (Result, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Result{}, ErrEmptyInput
	}
	if _, ok := languageNames[targetLanguage]; !ok {
		return Result{}, ErrUnsupportedLanguage
	}

	cached, err := t.db.Translation.Query().
		Where(
			translation.InputText(text),
			translation.TargetLanguage(targetLanguage),
		).
		Only(ctx)
	if err == nil {
		return Result{
			InputText:      cached.InputText,
			TargetLanguage: cached.TargetLanguage,
			OutputText:     cached.OutputText,
			FromCache:      true,
		}, nil
	}
	if !ent.IsNotFound(err) {
		return Result{}, fmt.Errorf("lookup translation: %w", err)
	}

	if !t.enabled {
		return Result{}, ErrDisabled
	}

	output, err := t.complete(ctx, text, targetLanguage)
	if err != nil {
		return Result{}, err
	}

	// Memoize best-effort: a racing request may have stored the same pair
	// already, in which case the unique index rejects ours and the other
	// row serves future lookups.
	_, err = t.db.Translation.Create().
		SetInputText(text).
		SetTargetLanguage(targetLanguage).
		SetOutputText(output).
		Save(ctx)
	if err != nil && !ent.IsConstraintError(err) {
		return Result{}, fmt.Errorf("store translation: %w", err)
	}

	return Result{
		InputText:      text,
		TargetLanguage: targetLanguage,
		OutputText:     output,
		FromCache:      false,
	}, nil
}

func (t *Translator) complete(ctx context.Context, text, targetLanguage string) (string, error) {
	targetName := languageNames[targetLanguage]
	systemPrompt := fmt.Sprintf(`You are a professional translator. Translate the given text to %[1]s.

Rules:
- Only translate to %[1]s
- Preserve the meaning and context
- Keep the same tone and style
- For technical terms, use appropriate %[1]s equivalents
- Return only the translation, no explanations`, targetName)

	resp, err := t.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModelGPT3_5Turbo,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(text),
		},
		MaxTokens:   openai.Int(1000),
		Temperature: openai.Float(0.3),
	})
	if err != nil {
		return "", fmt.Errorf("openai completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai completion: empty response")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
