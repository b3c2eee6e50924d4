package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// BusinessProfile holds platform-wide settings. A single row is created on
// first access; the required_app_version gates the mock-premium bypass.
type BusinessProfile struct {
	ent.Schema
}

func (BusinessProfile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.String("required_app_version").
			Default("1.0.0"),
		field.String("company_name").
			Default("Educational Platform"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
