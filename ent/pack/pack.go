// Code generated by ent, DO NOT EDIT.

package pack

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the pack type in the database.
	Label = "pack"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldType holds the string denoting the type field in the database.
	FieldType = "type"
	// FieldWordCount holds the string denoting the word_count field in the database.
	FieldWordCount = "word_count"
	// FieldLessonID holds the string denoting the lesson_id field in the database.
	FieldLessonID = "lesson_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeLesson holds the string denoting the lesson edge name in mutations.
	EdgeLesson = "lesson"
	// EdgeWords holds the string denoting the words edge name in mutations.
	EdgeWords = "words"
	// EdgeGrammars holds the string denoting the grammars edge name in mutations.
	EdgeGrammars = "grammars"
	// EdgeGrammarTopics holds the string denoting the grammar_topics edge name in mutations.
	EdgeGrammarTopics = "grammar_topics"
	// EdgeProgresses holds the string denoting the progresses edge name in mutations.
	EdgeProgresses = "progresses"
	// Table holds the table name of the pack in the database.
	Table = "packs"
	// LessonTable is the table that holds the lesson relation/edge.
	LessonTable = "packs"
	// LessonInverseTable is the table name for the Lesson entity.
	// It exists in this package in order to avoid circular dependency with the "lesson" package.
	LessonInverseTable = "lessons"
	// LessonColumn is the table column denoting the lesson relation/edge.
	LessonColumn = "lesson_id"
	// WordsTable is the table that holds the words relation/edge.
	WordsTable = "words"
	// WordsInverseTable is the table name for the Word entity.
	// It exists in this package in order to avoid circular dependency with the "word" package.
	WordsInverseTable = "words"
	// WordsColumn is the table column denoting the words relation/edge.
	WordsColumn = "pack_id"
	// GrammarsTable is the table that holds the grammars relation/edge.
	GrammarsTable = "grammars"
	// GrammarsInverseTable is the table name for the Grammar entity.
	// It exists in this package in order to avoid circular dependency with the "grammar" package.
	GrammarsInverseTable = "grammars"
	// GrammarsColumn is the table column denoting the grammars relation/edge.
	GrammarsColumn = "pack_id"
	// GrammarTopicsTable is the table that holds the grammar_topics relation/edge.
	GrammarTopicsTable = "grammar_topics"
	// GrammarTopicsInverseTable is the table name for the GrammarTopic entity.
	// It exists in this package in order to avoid circular dependency with the "grammartopic" package.
	GrammarTopicsInverseTable = "grammar_topics"
	// GrammarTopicsColumn is the table column denoting the grammar_topics relation/edge.
	GrammarTopicsColumn = "pack_id"
	// ProgressesTable is the table that holds the progresses relation/edge.
	ProgressesTable = "progresses"
	// ProgressesInverseTable is the table name for the Progress entity.
	// It exists in this package in order to avoid circular dependency with the "progress" package.
	ProgressesInverseTable = "progresses"
	// ProgressesColumn is the table column denoting the progresses relation/edge.
	ProgressesColumn = "pack_id"
)

// Columns holds all SQL columns for pack fields.
var Columns = []string{
	FieldID,
	FieldTitle,
	FieldType,
	FieldWordCount,
	FieldLessonID,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Type defines the type for the "type" enum field.
type Type string

// Type values.
const (
	TypeWord    Type = "word"
	TypeGrammar Type = "grammar"
)

func (_type Type) String() string {
	return string(_type)
}

// TypeValidator is a validator for the "type" field enum values. It is called by the builders before save.
func TypeValidator(_type Type) error {
	switch _type {
	case TypeWord, TypeGrammar:
		return nil
	default:
		return fmt.Errorf("pack: invalid enum value for type field: %q", _type)
	}
}

// OrderOption defines the ordering options for the Pack queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByType orders the results by the type field.
func ByType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldType, opts...).ToFunc()
}

// ByWordCount orders the results by the word_count field.
func ByWordCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWordCount, opts...).ToFunc()
}

// ByLessonID orders the results by the lesson_id field.
func ByLessonID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLessonID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByLessonField orders the results by lesson field.
func ByLessonField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLessonStep(), sql.OrderByField(field, opts...))
	}
}

// ByWordsCount orders the results by words count.
func ByWordsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newWordsStep(), opts...)
	}
}

// ByWords orders the results by words terms.
func ByWords(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newWordsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByGrammarsCount orders the results by grammars count.
func ByGrammarsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newGrammarsStep(), opts...)
	}
}

// ByGrammars orders the results by grammars terms.
func ByGrammars(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newGrammarsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByGrammarTopicsCount orders the results by grammar_topics count.
func ByGrammarTopicsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newGrammarTopicsStep(), opts...)
	}
}

// ByGrammarTopics orders the results by grammar_topics terms.
func ByGrammarTopics(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newGrammarTopicsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByProgressesCount orders the results by progresses count.
func ByProgressesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newProgressesStep(), opts...)
	}
}

// ByProgresses orders the results by progresses terms.
func ByProgresses(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProgressesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newLessonStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LessonInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, LessonTable, LessonColumn),
	)
}
func newWordsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WordsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, WordsTable, WordsColumn),
	)
}
func newGrammarsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(GrammarsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, GrammarsTable, GrammarsColumn),
	)
}
func newGrammarTopicsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(GrammarTopicsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, GrammarTopicsTable, GrammarTopicsColumn),
	)
}
func newProgressesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProgressesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ProgressesTable, ProgressesColumn),
	)
}
