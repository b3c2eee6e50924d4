package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// Word is a vocabulary entry inside a word pack.
type Word struct {
	ent.Schema
}

func (Word) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.UUID("pack_id", uuid.UUID{}),
		field.String("uz_text").
			Optional(),
		field.String("ru_text").
			Optional(),
		field.String("audio_url").
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

func (Word) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("pack", Pack.Type).
			Ref("words").
			Field("pack_id").
			Required().
			Unique(),
	}
}
