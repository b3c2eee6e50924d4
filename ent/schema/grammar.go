package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// Grammar is a single grammar question inside a grammar pack. Fill questions
// carry question_text, exactly four options and a correct option index; build
// questions carry only the sentence to reconstruct.
type Grammar struct {
	ent.Schema
}

func (Grammar) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.UUID("pack_id", uuid.UUID{}),
		field.Enum("type").
			Values("fill", "build"),
		field.String("question_text").
			Optional().
			Nillable(),
		field.JSON("options", []string{}).
			Optional(),
		field.Int("correct_option").
			Optional().
			Nillable(),
		field.String("sentence").
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

func (Grammar) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("pack", Pack.Type).
			Ref("grammars").
			Field("pack_id").
			Required().
			Unique(),
	}
}
