package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// User holds learner accounts registered through the Telegram bot.
type User struct {
	ent.Schema
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.Int64("telegram_id").
			Unique(),
		field.String("phone_number").
			Unique().
			NotEmpty(),
		field.String("first_name").
			NotEmpty(),
		field.String("last_name").
			Optional(),
		field.String("avatar_url").
			Optional().
			Nillable(),
		field.Bool("is_admin").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("progresses", Progress.Type),
		edge.To("subscriptions", Subscription.Type),
	}
}
