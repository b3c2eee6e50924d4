package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// GrammarTopic is an explanatory article (video + markdown) attached to a
// grammar pack.
type GrammarTopic struct {
	ent.Schema
}

func (GrammarTopic) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.UUID("pack_id", uuid.UUID{}),
		field.String("video_url").
			Optional().
			Nillable(),
		field.Text("markdown_text").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (GrammarTopic) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("pack", Pack.Type).
			Ref("grammar_topics").
			Field("pack_id").
			Required().
			Unique(),
	}
}
