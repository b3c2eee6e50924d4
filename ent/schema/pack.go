package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// Pack is a playable unit inside a lesson. Word packs own words, grammar
// packs own grammar questions and grammar topics.
type Pack struct {
	ent.Schema
}

func (Pack) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.String("title").
			NotEmpty(),
		field.Enum("type").
			Values("word", "grammar"),
		field.Int("word_count").
			Optional().
			Nillable(),
		field.UUID("lesson_id", uuid.UUID{}),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Pack) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("lesson", Lesson.Type).
			Ref("packs").
			Field("lesson_id").
			Required().
			Unique(),
		edge.To("words", Word.Type),
		edge.To("grammars", Grammar.Type),
		edge.To("grammar_topics", GrammarTopic.Type),
		edge.To("progresses", Progress.Type),
	}
}
