// Code generated by ent, DO NOT EDIT.

package translation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the translation type in the database.
	Label = "translation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldInputText holds the string denoting the input_text field in the database.
	FieldInputText = "input_text"
	// FieldTargetLanguage holds the string denoting the target_language field in the database.
	FieldTargetLanguage = "target_language"
	// FieldOutputText holds the string denoting the output_text field in the database.
	FieldOutputText = "output_text"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the translation in the database.
	Table = "translations"
)

// Columns holds all SQL columns for translation fields.
var Columns = []string{
	FieldID,
	FieldInputText,
	FieldTargetLanguage,
	FieldOutputText,
	FieldCreatedAt,
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
	// InputTextValidator is a validator for the "input_text" field. It is called by the builders before save.
	InputTextValidator func(string) error
	// TargetLanguageValidator is a validator for the "target_language" field. It is called by the builders before save.
	TargetLanguageValidator func(string) error
	// OutputTextValidator is a validator for the "output_text" field. It is called by the builders before save.
	OutputTextValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Translation queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByInputText orders the results by the input_text field.
func ByInputText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInputText, opts...).ToFunc()
}

// ByTargetLanguage orders the results by the target_language field.
func ByTargetLanguage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetLanguage, opts...).ToFunc()
}

// ByOutputText orders the results by the output_text field.
func ByOutputText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutputText, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
