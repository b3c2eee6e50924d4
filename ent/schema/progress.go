package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Progress records a user's best quiz result for one pack. One row per
// user+pack pair; points only ever accumulate.
type Progress struct {
	ent.Schema
}

func (Progress) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.UUID("user_id", uuid.UUID{}),
		field.UUID("pack_id", uuid.UUID{}),
		field.Int("best_score"),
		field.Int("total_points").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Progress) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("progresses").
			Field("user_id").
			Required().
			Unique(),
		edge.From("pack", Pack.Type).
			Ref("progresses").
			Field("pack_id").
			Required().
			Unique(),
	}
}

func (Progress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "pack_id").
			Unique(),
	}
}
