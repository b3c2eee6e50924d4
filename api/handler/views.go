package handler

import (
	"time"

	"github.com/google/uuid"

	"github.com/lingvoapp/lingvo-api/ent"
)

// Typed payloads for every cached view. Cache entries are JSON encodings of
// these structs, so a decode failure means a corrupt entry, never a shape
// drift between writer and reader.

type ModuleView struct {
	ID        uuid.UUID    `json:"id"`
	Title     string       `json:"title"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
	Lessons   []LessonView `json:"lessons"`
}

type LessonView struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	ModuleID    uuid.UUID  `json:"module_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	Packs       []PackView `json:"packs"`
}

type PackView struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	LessonID  uuid.UUID `json:"lesson_id"`
	Type      string    `json:"type"`
	WordCount *int      `json:"word_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type WordView struct {
	ID        uuid.UUID `json:"id"`
	PackID    uuid.UUID `json:"pack_id"`
	UzText    string    `json:"uz_text"`
	RuText    string    `json:"ru_text"`
	AudioURL  *string   `json:"audio_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type GrammarView struct {
	ID            uuid.UUID `json:"id"`
	PackID        uuid.UUID `json:"pack_id"`
	Type          string    `json:"type"`
	QuestionText  *string   `json:"question_text"`
	Options       []string  `json:"options"`
	CorrectOption *int      `json:"correct_option"`
	Sentence      *string   `json:"sentence"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type TopicView struct {
	ID           uuid.UUID `json:"id"`
	PackID       uuid.UUID `json:"pack_id"`
	VideoURL     *string   `json:"video_url"`
	MarkdownText *string   `json:"markdown_text"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type UserView struct {
	ID          uuid.UUID `json:"id"`
	TelegramID  int64     `json:"telegram_id"`
	PhoneNumber string    `json:"phone_number"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name,omitempty"`
	AvatarURL   *string   `json:"avatar_url"`
	IsAdmin     bool      `json:"is_admin"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// QuizPackView is a pack together with its content, as served by the global
// quiz aggregate.
type QuizPackView struct {
	PackView
	Words    []WordView    `json:"words"`
	Grammars []GrammarView `json:"grammars"`
}

type QuizView struct {
	WordPacks    []QuizPackView `json:"word_packs"`
	GrammarPacks []QuizPackView `json:"grammar_packs"`
}

type SubscriptionView struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	Notes     string    `json:"notes,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func newModuleView(m *ent.Module) ModuleView {
	v := ModuleView{
		ID:        m.ID,
		Title:     m.Title,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		Lessons:   []LessonView{},
	}
	for _, l := range m.Edges.Lessons {
		v.Lessons = append(v.Lessons, newLessonView(l))
	}
	return v
}

func newLessonView(l *ent.Lesson) LessonView {
	v := LessonView{
		ID:          l.ID,
		Title:       l.Title,
		Description: l.Description,
		ModuleID:    l.ModuleID,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
		Packs:       []PackView{},
	}
	for _, p := range l.Edges.Packs {
		v.Packs = append(v.Packs, newPackView(p))
	}
	return v
}

func newPackView(p *ent.Pack) PackView {
	return PackView{
		ID:        p.ID,
		Title:     p.Title,
		LessonID:  p.LessonID,
		Type:      string(p.Type),
		WordCount: p.WordCount,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func newWordView(w *ent.Word) WordView {
	return WordView{
		ID:        w.ID,
		PackID:    w.PackID,
		UzText:    w.UzText,
		RuText:    w.RuText,
		AudioURL:  w.AudioURL,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

func newGrammarView(g *ent.Grammar) GrammarView {
	return GrammarView{
		ID:            g.ID,
		PackID:        g.PackID,
		Type:          string(g.Type),
		QuestionText:  g.QuestionText,
		Options:       g.Options,
		CorrectOption: g.CorrectOption,
		Sentence:      g.Sentence,
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}
}

func newTopicView(t *ent.GrammarTopic) TopicView {
	return TopicView{
		ID:           t.ID,
		PackID:       t.PackID,
		VideoURL:     t.VideoURL,
		MarkdownText: t.MarkdownText,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

func newUserView(u *ent.User) UserView {
	return UserView{
		ID:          u.ID,
		TelegramID:  u.TelegramID,
		PhoneNumber: u.PhoneNumber,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		AvatarURL:   u.AvatarURL,
		IsAdmin:     u.IsAdmin,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

func newSubscriptionView(s *ent.Subscription) SubscriptionView {
	return SubscriptionView{
		ID:        s.ID,
		UserID:    s.UserID,
		StartDate: s.StartDate,
		EndDate:   s.EndDate,
		Amount:    s.Amount,
		Currency:  s.Currency,
		Notes:     s.Notes,
		IsActive:  s.IsActive,
		CreatedAt: s.CreatedAt,
	}
}
