// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/lingvoapp/lingvo-api/ent/pack"
	"github.com/lingvoapp/lingvo-api/ent/word"
)

// Word is the model entity for the Word schema.
type Word struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// PackID holds the value of the "pack_id" field.
	PackID uuid.UUID `json:"pack_id,omitempty"`
	// UzText holds the value of the "uz_text" field.
	UzText string `json:"uz_text,omitempty"`
	// RuText holds the value of the "ru_text" field.
	RuText string `json:"ru_text,omitempty"`
	// AudioURL holds the value of the "audio_url" field.
	AudioURL *string `json:"audio_url,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the WordQuery when eager-loading is set.
	Edges        WordEdges `json:"edges"`
	selectValues sql.SelectValues
}

// WordEdges holds the relations/edges for other nodes in the graph.
type WordEdges struct {
	// Pack holds the value of the pack edge.
	Pack *Pack `json:"pack,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// PackOrErr returns the Pack value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e WordEdges) PackOrErr() (*Pack, error) {
	if e.Pack != nil {
		return e.Pack, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: pack.Label}
	}
	return nil, &NotLoadedError{edge: "pack"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Word) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case word.FieldUzText, word.FieldRuText, word.FieldAudioURL:
			values[i] = new(sql.NullString)
		case word.FieldCreatedAt, word.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case word.FieldID, word.FieldPackID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Word fields.
func (_m *Word) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case word.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case word.FieldPackID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field pack_id", values[i])
			} else if value != nil {
				_m.PackID = *value
			}
		case word.FieldUzText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field uz_text", values[i])
			} else if value.Valid {
				_m.UzText = value.String
			}
		case word.FieldRuText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ru_text", values[i])
			} else if value.Valid {
				_m.RuText = value.String
			}
		case word.FieldAudioURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field audio_url", values[i])
			} else if value.Valid {
				_m.AudioURL = new(string)
				*_m.AudioURL = value.String
			}
		case word.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case word.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Word.
// This includes values selected through modifiers, order, etc.
func (_m *Word) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPack queries the "pack" edge of the Word entity.
func (_m *Word) QueryPack() *PackQuery {
	return NewWordClient(_m.config).QueryPack(_m)
}

// Update returns a builder for updating this Word.
// Note that you need to call Word.Unwrap() before calling this method if this Word
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Word) Update() *WordUpdateOne {
	return NewWordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Word entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Word) Unwrap() *Word {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Word is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Word) String() string {
	var builder strings.Builder
	builder.WriteString("Word(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("pack_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PackID))
	builder.WriteString(", ")
	builder.WriteString("uz_text=")
	builder.WriteString(_m.UzText)
	builder.WriteString(", ")
	builder.WriteString("ru_text=")
	builder.WriteString(_m.RuText)
	builder.WriteString(", ")
	if v := _m.AudioURL; v != nil {
		builder.WriteString("audio_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Words is a parsable slice of Word.
type Words []*Word
