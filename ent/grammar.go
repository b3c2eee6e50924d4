// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/lingvoapp/lingvo-api/ent/grammar"
	"github.com/lingvoapp/lingvo-api/ent/pack"
)

// Grammar is the model entity for the Grammar schema.
type Grammar struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// PackID holds the value of the "pack_id" field.
	PackID uuid.UUID `json:"pack_id,omitempty"`
	// Type holds the value of the "type" field.
	Type grammar.Type `json:"type,omitempty"`
	// QuestionText holds the value of the "question_text" field.
	QuestionText *string `json:"question_text,omitempty"`
	// Options holds the value of the "options" field.
	Options []string `json:"options,omitempty"`
	// CorrectOption holds the value of the "correct_option" field.
	CorrectOption *int `json:"correct_option,omitempty"`
	// Sentence holds the value of the "sentence" field.
	Sentence *string `json:"sentence,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the GrammarQuery when eager-loading is set.
	Edges        GrammarEdges `json:"edges"`
	selectValues sql.SelectValues
}

// GrammarEdges holds the relations/edges for other nodes in the graph.
type GrammarEdges struct {
	// Pack holds the value of the pack edge.
	Pack *Pack `json:"pack,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// PackOrErr returns the Pack value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e GrammarEdges) PackOrErr() (*Pack, error) {
	if e.Pack != nil {
		return e.Pack, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: pack.Label}
	}
	return nil, &NotLoadedError{edge: "pack"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Grammar) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case grammar.FieldOptions:
			values[i] = new([]byte)
		case grammar.FieldCorrectOption:
			values[i] = new(sql.NullInt64)
		case grammar.FieldType, grammar.FieldQuestionText, grammar.FieldSentence:
			values[i] = new(sql.NullString)
		case grammar.FieldCreatedAt, grammar.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case grammar.FieldID, grammar.FieldPackID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Grammar fields.
func (_m *Grammar) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case grammar.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case grammar.FieldPackID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field pack_id", values[i])
			} else if value != nil {
				_m.PackID = *value
			}
		case grammar.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				_m.Type = grammar.Type(value.String)
			}
		case grammar.FieldQuestionText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_text", values[i])
			} else if value.Valid {
				_m.QuestionText = new(string)
				*_m.QuestionText = value.String
			}
		case grammar.FieldOptions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field options", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Options); err != nil {
					return fmt.Errorf("unmarshal field options: %w", err)
				}
			}
		case grammar.FieldCorrectOption:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_option", values[i])
			} else if value.Valid {
				_m.CorrectOption = new(int)
				*_m.CorrectOption = int(value.Int64)
			}
		case grammar.FieldSentence:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sentence", values[i])
			} else if value.Valid {
				_m.Sentence = new(string)
				*_m.Sentence = value.String
			}
		case grammar.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case grammar.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Grammar.
// This includes values selected through modifiers, order, etc.
func (_m *Grammar) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPack queries the "pack" edge of the Grammar entity.
func (_m *Grammar) QueryPack() *PackQuery {
	return NewGrammarClient(_m.config).QueryPack(_m)
}

// Update returns a builder for updating this Grammar.
// Note that you need to call Grammar.Unwrap() before calling this method if this Grammar
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Grammar) Update() *GrammarUpdateOne {
	return NewGrammarClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Grammar entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Grammar) Unwrap() *Grammar {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Grammar is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Grammar) String() string {
	var builder strings.Builder
	builder.WriteString("Grammar(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("pack_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PackID))
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(fmt.Sprintf("%v", _m.Type))
	builder.WriteString(", ")
	if v := _m.QuestionText; v != nil {
		builder.WriteString("question_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("options=")
	builder.WriteString(fmt.Sprintf("%v", _m.Options))
	builder.WriteString(", ")
	if v := _m.CorrectOption; v != nil {
		builder.WriteString("correct_option=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Sentence; v != nil {
		builder.WriteString("sentence=")
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

// Grammars is a parsable slice of Grammar.
type Grammars []*Grammar
