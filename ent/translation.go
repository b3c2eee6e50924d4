// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/lingvoapp/lingvo-api/ent/translation"
)

// Translation is the model entity for the Translation schema.
type Translation struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// InputText holds the value of the "input_text" field.
	InputText string `json:"input_text,omitempty"`
	// TargetLanguage holds the value of the "target_language" field.
	TargetLanguage string `json:"target_language,omitempty"`
	// OutputText holds the value of the "output_text" field.
	OutputText string `json:"output_text,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Translation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case translation.FieldInputText, translation.FieldTargetLanguage, translation.FieldOutputText:
			values[i] = new(sql.NullString)
		case translation.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case translation.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Translation fields.
func (_m *Translation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case translation.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case translation.FieldInputText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field input_text", values[i])
			} else if value.Valid {
				_m.InputText = value.String
			}
		case translation.FieldTargetLanguage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_language", values[i])
			} else if value.Valid {
				_m.TargetLanguage = value.String
			}
		case translation.FieldOutputText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field output_text", values[i])
			} else if value.Valid {
				_m.OutputText = value.String
			}
		case translation.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Translation.
// This includes values selected through modifiers, order, etc.
func (_m *Translation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Translation.
// Note that you need to call Translation.Unwrap() before calling this method if this Translation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Translation) Update() *TranslationUpdateOne {
	return NewTranslationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Translation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Translation) Unwrap() *Translation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Translation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Translation) String() string {
	var builder strings.Builder
	builder.WriteString("Translation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("input_text=")
	builder.WriteString(_m.InputText)
	builder.WriteString(", ")
	builder.WriteString("target_language=")
	builder.WriteString(_m.TargetLanguage)
	builder.WriteString(", ")
	builder.WriteString("output_text=")
	builder.WriteString(_m.OutputText)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Translations is a parsable slice of Translation.
type Translations []*Translation
