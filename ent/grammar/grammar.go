// Code generated by ent, DO NOT EDIT.

package grammar

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the grammar type in the database.
	Label = "grammar"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPackID holds the string denoting the pack_id field in the database.
	FieldPackID = "pack_id"
	// FieldType holds the string denoting the type field in the database.
	FieldType = "type"
	// FieldQuestionText holds the string denoting the question_text field in the database.
	FieldQuestionText = "question_text"
	// FieldOptions holds the string denoting the options field in the database.
	FieldOptions = "options"
	// FieldCorrectOption holds the string denoting the correct_option field in the database.
	FieldCorrectOption = "correct_option"
	// FieldSentence holds the string denoting the sentence field in the database.
	FieldSentence = "sentence"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgePack holds the string denoting the pack edge name in mutations.
	EdgePack = "pack"
	// Table holds the table name of the grammar in the database.
	Table = "grammars"
	// PackTable is the table that holds the pack relation/edge.
	PackTable = "grammars"
	// PackInverseTable is the table name for the Pack entity.
	// It exists in this package in order to avoid circular dependency with the "pack" package.
	PackInverseTable = "packs"
	// PackColumn is the table column denoting the pack relation/edge.
	PackColumn = "pack_id"
)

// Columns holds all SQL columns for grammar fields.
var Columns = []string{
	FieldID,
	FieldPackID,
	FieldType,
	FieldQuestionText,
	FieldOptions,
	FieldCorrectOption,
	FieldSentence,
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
	TypeFill  Type = "fill"
	TypeBuild Type = "build"
)

func (_type Type) String() string {
	return string(_type)
}

// TypeValidator is a validator for the "type" field enum values. It is called by the builders before save.
func TypeValidator(_type Type) error {
	switch _type {
	case TypeFill, TypeBuild:
		return nil
	default:
		return fmt.Errorf("grammar: invalid enum value for type field: %q", _type)
	}
}

// OrderOption defines the ordering options for the Grammar queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPackID orders the results by the pack_id field.
func ByPackID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPackID, opts...).ToFunc()
}

// ByType orders the results by the type field.
func ByType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldType, opts...).ToFunc()
}

// ByQuestionText orders the results by the question_text field.
func ByQuestionText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionText, opts...).ToFunc()
}

// ByCorrectOption orders the results by the correct_option field.
func ByCorrectOption(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectOption, opts...).ToFunc()
}

// BySentence orders the results by the sentence field.
func BySentence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSentence, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByPackField orders the results by pack field.
func ByPackField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPackStep(), sql.OrderByField(field, opts...))
	}
}
func newPackStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PackInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PackTable, PackColumn),
	)
}
