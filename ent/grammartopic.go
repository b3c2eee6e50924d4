// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/lingvoapp/lingvo-api/ent/grammartopic"
	"github.com/lingvoapp/lingvo-api/ent/pack"
)

// GrammarTopic is the model entity for the GrammarTopic schema.
type GrammarTopic struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// PackID holds the value of the "pack_id" field.
	PackID uuid.UUID `json:"pack_id,omitempty"`
	// VideoURL holds the value of the "video_url" field.
	VideoURL *string `json:"video_url,omitempty"`
	// MarkdownText holds the value of the "markdown_text" field.
	MarkdownText *string `json:"markdown_text,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the GrammarTopicQuery when eager-loading is set.
	Edges        GrammarTopicEdges `json:"edges"`
	selectValues sql.SelectValues
}

// GrammarTopicEdges holds the relations/edges for other nodes in the graph.
type GrammarTopicEdges struct {
	// Pack holds the value of the pack edge.
	Pack *Pack `json:"pack,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// PackOrErr returns the Pack value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e GrammarTopicEdges) PackOrErr() (*Pack, error) {
	if e.Pack != nil {
		return e.Pack, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: pack.Label}
	}
	return nil, &NotLoadedError{edge: "pack"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GrammarTopic) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case grammartopic.FieldVideoURL, grammartopic.FieldMarkdownText:
			values[i] = new(sql.NullString)
		case grammartopic.FieldCreatedAt, grammartopic.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case grammartopic.FieldID, grammartopic.FieldPackID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GrammarTopic fields.
func (_m *GrammarTopic) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case grammartopic.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case grammartopic.FieldPackID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field pack_id", values[i])
			} else if value != nil {
				_m.PackID = *value
			}
		case grammartopic.FieldVideoURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field video_url", values[i])
			} else if value.Valid {
				_m.VideoURL = new(string)
				*_m.VideoURL = value.String
			}
		case grammartopic.FieldMarkdownText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field markdown_text", values[i])
			} else if value.Valid {
				_m.MarkdownText = new(string)
				*_m.MarkdownText = value.String
			}
		case grammartopic.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case grammartopic.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the GrammarTopic.
// This includes values selected through modifiers, order, etc.
func (_m *GrammarTopic) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPack queries the "pack" edge of the GrammarTopic entity.
func (_m *GrammarTopic) QueryPack() *PackQuery {
	return NewGrammarTopicClient(_m.config).QueryPack(_m)
}

// Update returns a builder for updating this GrammarTopic.
// Note that you need to call GrammarTopic.Unwrap() before calling this method if this GrammarTopic
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GrammarTopic) Update() *GrammarTopicUpdateOne {
	return NewGrammarTopicClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GrammarTopic entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GrammarTopic) Unwrap() *GrammarTopic {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GrammarTopic is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GrammarTopic) String() string {
	var builder strings.Builder
	builder.WriteString("GrammarTopic(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("pack_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PackID))
	builder.WriteString(", ")
	if v := _m.VideoURL; v != nil {
		builder.WriteString("video_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.MarkdownText; v != nil {
		builder.WriteString("markdown_text=")
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

// GrammarTopics is a parsable slice of GrammarTopic.
type GrammarTopics []*GrammarTopic
