// Code generated by ent, DO NOT EDIT.

package businessprofile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the businessprofile type in the database.
	Label = "business_profile"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldRequiredAppVersion holds the string denoting the required_app_version field in the database.
	FieldRequiredAppVersion = "required_app_version"
	// FieldCompanyName holds the string denoting the company_name field in the database.
	FieldCompanyName = "company_name"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the businessprofile in the database.
	Table = "business_profiles"
)

// Columns holds all SQL columns for businessprofile fields.
var Columns = []string{
	FieldID,
	FieldRequiredAppVersion,
	FieldCompanyName,
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
	// DefaultRequiredAppVersion holds the default value on creation for the "required_app_version" field.
	DefaultRequiredAppVersion string
	// DefaultCompanyName holds the default value on creation for the "company_name" field.
	DefaultCompanyName string
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the BusinessProfile queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRequiredAppVersion orders the results by the required_app_version field.
func ByRequiredAppVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequiredAppVersion, opts...).ToFunc()
}

// ByCompanyName orders the results by the company_name field.
func ByCompanyName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompanyName, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
