// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/lingvoapp/lingvo-api/ent/businessprofile"
)

// BusinessProfile is the model entity for the BusinessProfile schema.
type BusinessProfile struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// RequiredAppVersion holds the value of the "required_app_version" field.
	RequiredAppVersion string `json:"required_app_version,omitempty"`
	// CompanyName holds the value of the "company_name" field.
	CompanyName string `json:"company_name,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BusinessProfile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case businessprofile.FieldRequiredAppVersion, businessprofile.FieldCompanyName:
			values[i] = new(sql.NullString)
		case businessprofile.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case businessprofile.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BusinessProfile fields.
func (_m *BusinessProfile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case businessprofile.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case businessprofile.FieldRequiredAppVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field required_app_version", values[i])
			} else if value.Valid {
				_m.RequiredAppVersion = value.String
			}
		case businessprofile.FieldCompanyName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field company_name", values[i])
			} else if value.Valid {
				_m.CompanyName = value.String
			}
		case businessprofile.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the BusinessProfile.
// This includes values selected through modifiers, order, etc.
func (_m *BusinessProfile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this BusinessProfile.
// Note that you need to call BusinessProfile.Unwrap() before calling this method if this BusinessProfile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BusinessProfile) Update() *BusinessProfileUpdateOne {
	return NewBusinessProfileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BusinessProfile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BusinessProfile) Unwrap() *BusinessProfile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BusinessProfile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BusinessProfile) String() string {
	var builder strings.Builder
	builder.WriteString("BusinessProfile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("required_app_version=")
	builder.WriteString(_m.RequiredAppVersion)
	builder.WriteString(", ")
	builder.WriteString("company_name=")
	builder.WriteString(_m.CompanyName)
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// BusinessProfiles is a parsable slice of BusinessProfile.
type BusinessProfiles []*BusinessProfile
