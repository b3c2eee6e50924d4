// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/lingvoapp/lingvo-api/ent/lesson"
	"github.com/lingvoapp/lingvo-api/ent/pack"
)

// Pack is the model entity for the Pack schema.
type Pack struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Type holds the value of the "type" field.
	Type pack.Type `json:"type,omitempty"`
	// WordCount holds the value of the "word_count" field.
	WordCount *int `json:"word_count,omitempty"`
	// LessonID holds the value of the "lesson_id" field.
	LessonID uuid.UUID `json:"lesson_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PackQuery when eager-loading is set.
	Edges        PackEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PackEdges holds the relations/edges for other nodes in the graph.
type PackEdges struct {
	// Lesson holds the value of the lesson edge.
	Lesson *Lesson `json:"lesson,omitempty"`
	// Words holds the value of the words edge.
	Words []*Word `json:"words,omitempty"`
	// Grammars holds the value of the grammars edge.
	Grammars []*Grammar `json:"grammars,omitempty"`
	// GrammarTopics holds the value of the grammar_topics edge.
	GrammarTopics []*GrammarTopic `json:"grammar_topics,omitempty"`
	// Progresses holds the value of the progresses edge.
	Progresses []*Progress `json:"progresses,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// LessonOrErr returns the Lesson value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PackEdges) LessonOrErr() (*Lesson, error) {
	if e.Lesson != nil {
		return e.Lesson, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: lesson.Label}
	}
	return nil, &NotLoadedError{edge: "lesson"}
}

// WordsOrErr returns the Words value or an error if the edge
// was not loaded in eager-loading.
func (e PackEdges) WordsOrErr() ([]*Word, error) {
	if e.loadedTypes[1] {
		return e.Words, nil
	}
	return nil, &NotLoadedError{edge: "words"}
}

// GrammarsOrErr returns the Grammars value or an error if the edge
// was not loaded in eager-loading.
func (e PackEdges) GrammarsOrErr() ([]*Grammar, error) {
	if e.loadedTypes[2] {
		return e.Grammars, nil
	}
	return nil, &NotLoadedError{edge: "grammars"}
}

// GrammarTopicsOrErr returns the GrammarTopics value or an error if the edge
// was not loaded in eager-loading.
func (e PackEdges) GrammarTopicsOrErr() ([]*GrammarTopic, error) {
	if e.loadedTypes[3] {
		return e.GrammarTopics, nil
	}
	return nil, &NotLoadedError{edge: "grammar_topics"}
}

// ProgressesOrErr returns the Progresses value or an error if the edge
// was not loaded in eager-loading.
func (e PackEdges) ProgressesOrErr() ([]*Progress, error) {
	if e.loadedTypes[4] {
		return e.Progresses, nil
	}
	return nil, &NotLoadedError{edge: "progresses"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Pack) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pack.FieldWordCount:
			values[i] = new(sql.NullInt64)
		case pack.FieldTitle, pack.FieldType:
			values[i] = new(sql.NullString)
		case pack.FieldCreatedAt, pack.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case pack.FieldID, pack.FieldLessonID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Pack fields.
func (_m *Pack) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pack.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case pack.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case pack.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				_m.Type = pack.Type(value.String)
			}
		case pack.FieldWordCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field word_count", values[i])
			} else if value.Valid {
				_m.WordCount = new(int)
				*_m.WordCount = int(value.Int64)
			}
		case pack.FieldLessonID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field lesson_id", values[i])
			} else if value != nil {
				_m.LessonID = *value
			}
		case pack.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case pack.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Pack.
// This includes values selected through modifiers, order, etc.
func (_m *Pack) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryLesson queries the "lesson" edge of the Pack entity.
func (_m *Pack) QueryLesson() *LessonQuery {
	return NewPackClient(_m.config).QueryLesson(_m)
}

// QueryWords queries the "words" edge of the Pack entity.
func (_m *Pack) QueryWords() *WordQuery {
	return NewPackClient(_m.config).QueryWords(_m)
}

// QueryGrammars queries the "grammars" edge of the Pack entity.
func (_m *Pack) QueryGrammars() *GrammarQuery {
	return NewPackClient(_m.config).QueryGrammars(_m)
}

// QueryGrammarTopics queries the "grammar_topics" edge of the Pack entity.
func (_m *Pack) QueryGrammarTopics() *GrammarTopicQuery {
	return NewPackClient(_m.config).QueryGrammarTopics(_m)
}

// QueryProgresses queries the "progresses" edge of the Pack entity.
func (_m *Pack) QueryProgresses() *ProgressQuery {
	return NewPackClient(_m.config).QueryProgresses(_m)
}

// Update returns a builder for updating this Pack.
// Note that you need to call Pack.Unwrap() before calling this method if this Pack
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Pack) Update() *PackUpdateOne {
	return NewPackClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Pack entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Pack) Unwrap() *Pack {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Pack is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Pack) String() string {
	var builder strings.Builder
	builder.WriteString("Pack(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(fmt.Sprintf("%v", _m.Type))
	builder.WriteString(", ")
	if v := _m.WordCount; v != nil {
		builder.WriteString("word_count=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("lesson_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.LessonID))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Packs is a parsable slice of Pack.
type Packs []*Pack
