// Code generated by ent, DO NOT EDIT.

package grammartopic

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the grammartopic type in the database.
	Label = "grammar_topic"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPackID holds the string denoting the pack_id field in the database.
	FieldPackID = "pack_id"
	// FieldVideoURL holds the string denoting the video_url field in the database.
	FieldVideoURL = "video_url"
	// FieldMarkdownText holds the string denoting the markdown_text field in the database.
	FieldMarkdownText = "markdown_text"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgePack holds the string denoting the pack edge name in mutations.
	EdgePack = "pack"
	// Table holds the table name of the grammartopic in the database.
	Table = "grammar_topics"
	// PackTable is the table that holds the pack relation/edge.
	PackTable = "grammar_topics"
	// PackInverseTable is the table name for the Pack entity.
	// It exists in this package in order to avoid circular dependency with the "pack" package.
	PackInverseTable = "packs"
	// PackColumn is the table column denoting the pack relation/edge.
	PackColumn = "pack_id"
)

// Columns holds all SQL columns for grammartopic fields.
var Columns = []string{
	FieldID,
	FieldPackID,
	FieldVideoURL,
	FieldMarkdownText,
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

// OrderOption defines the ordering options for the GrammarTopic queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPackID orders the results by the pack_id field.
func ByPackID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPackID, opts...).ToFunc()
}

// ByVideoURL orders the results by the video_url field.
func ByVideoURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVideoURL, opts...).ToFunc()
}

// ByMarkdownText orders the results by the markdown_text field.
func ByMarkdownText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMarkdownText, opts...).ToFunc()
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
