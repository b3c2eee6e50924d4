package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Translation memoizes one LLM translation result. The unique index on
// (input_text, target_language) makes repeat requests free.
type Translation struct {
	ent.Schema
}

func (Translation) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.Text("input_text").
			NotEmpty(),
		field.String("target_language").
			NotEmpty(),
		field.Text("output_text").
			NotEmpty(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Translation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("input_text", "target_language").
			Unique(),
	}
}
