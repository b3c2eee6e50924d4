// Code generated by ent, DO NOT EDIT.

package businessprofile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/lingvoapp/lingvo-api/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.BusinessProfile {
	return predicate.BusinessProfile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.BusinessProfile {
	return predicate.BusinessProfile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.BusinessProfile {
	return predicate.BusinessProfile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.BusinessProfile {
	return predicate.BusinessProfile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.BusinessProfile {
	return predicate.BusinessProfile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.BusinessProfile {
	return predicate.BusinessProfile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.BusinessProfile {
	return predicate.BusinessProfile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.BusinessProfile {
	return predicate.BusinessProfile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.BusinessProfile {
	return predicate.BusinessProfile(sql.FieldLTE(FieldID, id))
}

// RequiredAppVersion applies equality check predicate on the "required_app_version" field. It's identical to RequiredAppVersionEQ.
func RequiredAppVersion(v string) predicate.BusinessProfile {
	return predicate.BusinessProfile(sql.FieldEQ(FieldRequiredAppVersion, v))
}

// CompanyName applies equality check predicate on the "company_name" field. It's identical to CompanyNameEQ.
func CompanyName(v string) predicate.BusinessProfile {
	return predicate.BusinessProfile(sql.FieldEQ(FieldCompanyName, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.BusinessProfile {
	return predicate.BusinessProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// RequiredAppVersionEQ applies the EQ predicate on the "required_app_version" field.
func RequiredAppVersionEQ(v string) predicate.BusinessProfile {
	return predicate.BusinessProfile(sql.FieldEQ(FieldRequiredAppVersion, v))
}

// RequiredAppVersionNEQ applies the NEQ predicate on the "required_app_version" field.
func RequiredAppVersionNEQ(v string) predicate.BusinessProfile {
	return predicate.BusinessProfile(sql.FieldNEQ(FieldRequiredAppVersion, v))
}

// RequiredAppVersionIn applies the In predicate on the "required_app_version" field.
func RequiredAppVersionIn(vs ...string) predicate.BusinessProfile {
	return predicate.BusinessProfile(sql.FieldIn(FieldRequiredAppVersion, vs...))
}

// RequiredAppVersionNotIn applies the NotIn predicate on the "required_app_version" field.
func RequiredAppVersionNotIn(vs ...string) predicate.BusinessProfile {
	return predicate.BusinessProfile(sql.FieldNotIn(FieldRequiredAppVersion, vs...))
}

// RequiredAppVersionGT applies the GT predicate on the "required_app_version" field.
func RequiredAppVersionGT(v string) predicate.BusinessProfile {
	return predicate.BusinessProfile(sql.FieldGT(FieldRequiredAppVersion, v))
}

// RequiredAppVersionGTE applies the GTE predicate on the "required_app_version" field.
func RequiredAppVersionGTE(v string) predicate.BusinessProfile {
	return predicate.BusinessProfile(sql.FieldGTE(FieldRequiredAppVersion, v))
}

// RequiredAppVersionLT applies the LT predicate on the "required_app_version" field.
func RequiredAppVersionLT(v string) predicate.BusinessProfile {
	return predicate.BusinessProfile(sql.FieldLT(FieldRequiredAppVersion, v))
}

// RequiredAppVersionLTE applies the LTE predicate on the "required_app_version" field.
func RequiredAppVersionLTE(v string) predicate.BusinessProfile {
	return predicate.BusinessProfile(sql.FieldLTE(FieldRequiredAppVersion, v))
}

// RequiredAppVersionContains applies the Contains predicate on the "required_app_version" field.
func RequiredAppVersionContains(v string) predicate.BusinessProfile {
	return predicate.BusinessProfile(sql.FieldContains(FieldRequiredAppVersion, v))
}

// RequiredAppVersionHasPrefix applies the HasPrefix predicate on the "required_app_version" field.
func RequiredAppVersionHasPrefix(v string) predicate.BusinessProfile {
	return predicate.BusinessProfile(sql.FieldHasPrefix(FieldRequiredAppVersion, v))
}

// RequiredAppVersionHasSuffix applies the HasSuffix predicate on the "required_app_version" field.
func RequiredAppVersionHasSuffix(v string) predicate.BusinessProfile {
	return predicate.BusinessProfile(sql.FieldHasSuffix(FieldRequiredAppVersion, v))
}

// RequiredAppVersionEqualFold applies the EqualFold predicate on the "required_app_version" field.
func RequiredAppVersionEqualFold(v string) predicate.BusinessProfile {
	return predicate.BusinessProfile(sql.FieldEqualFold(FieldRequiredAppVersion, v))
}

// RequiredAppVersionContainsFold applies the ContainsFold predicate on the "required_app_version" field.
func RequiredAppVersionContainsFold(v string) predicate.BusinessProfile {
	return predicate.BusinessProfile(sql.FieldContainsFold(FieldRequiredAppVersion, v))
}

// CompanyNameEQ applies the EQ predicate on the "company_name" field.
func CompanyNameEQ(v string) predicate.BusinessProfile {
	return predicate.BusinessProfile(sql.FieldEQ(FieldCompanyName, v))
}

// CompanyNameNEQ applies the NEQ predicate on the "company_name" field.
func CompanyNameNEQ(v string) predicate.BusinessProfile {
	return predicate.BusinessProfile(sql.FieldNEQ(FieldCompanyName, v))
}

// CompanyNameIn applies the In predicate on the "company_name" field.
func CompanyNameIn(vs ...string) predicate.BusinessProfile {
	return predicate.BusinessProfile(sql.FieldIn(FieldCompanyName, vs...))
}

// CompanyNameNotIn applies the NotIn predicate on the "company_name" field.
func CompanyNameNotIn(vs ...string) predicate.BusinessProfile {
	return predicate.BusinessProfile(sql.FieldNotIn(FieldCompanyName, vs...))
}

// CompanyNameGT applies the GT predicate on the "company_name" field.
func CompanyNameGT(v string) predicate.BusinessProfile {
	return predicate.BusinessProfile(sql.FieldGT(FieldCompanyName, v))
}

// CompanyNameGTE applies the GTE predicate on the "company_name" field.
func CompanyNameGTE(v string) predicate.BusinessProfile {
	return predicate.BusinessProfile(sql.FieldGTE(FieldCompanyName, v))
}

// CompanyNameLT applies the LT predicate on the "company_name" field.
func CompanyNameLT(v string) predicate.BusinessProfile {
	return predicate.BusinessProfile(sql.FieldLT(FieldCompanyName, v))
}

// CompanyNameLTE applies the LTE predicate on the "company_name" field.
func CompanyNameLTE(v string) predicate.BusinessProfile {
	return predicate.BusinessProfile(sql.FieldLTE(FieldCompanyName, v))
}

// CompanyNameContains applies the Contains predicate on the "company_name" field.
func CompanyNameContains(v string) predicate.BusinessProfile {
	return predicate.BusinessProfile(sql.FieldContains(FieldCompanyName, v))
}

// CompanyNameHasPrefix applies the HasPrefix predicate on the "company_name" field.
func CompanyNameHasPrefix(v string) predicate.BusinessProfile {
	return predicate.BusinessProfile(sql.FieldHasPrefix(FieldCompanyName, v))
}

// CompanyNameHasSuffix applies the HasSuffix predicate on the "company_name" field.
func CompanyNameHasSuffix(v string) predicate.BusinessProfile {
	return predicate.BusinessProfile(sql.FieldHasSuffix(FieldCompanyName, v))
}

// CompanyNameEqualFold applies the EqualFold predicate on the "company_name" field.
func CompanyNameEqualFold(v string) predicate.BusinessProfile {
	return predicate.BusinessProfile(sql.FieldEqualFold(FieldCompanyName, v))
}

// CompanyNameContainsFold applies the ContainsFold predicate on the "company_name" field.
func CompanyNameContainsFold(v string) predicate.BusinessProfile {
	return predicate.BusinessProfile(sql.FieldContainsFold(FieldCompanyName, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.BusinessProfile {
	return predicate.BusinessProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.BusinessProfile {
	return predicate.BusinessProfile(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.BusinessProfile {
	return predicate.BusinessProfile(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.BusinessProfile {
	return predicate.BusinessProfile(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.BusinessProfile {
	return predicate.BusinessProfile(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.BusinessProfile {
	return predicate.BusinessProfile(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.BusinessProfile {
	return predicate.BusinessProfile(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.BusinessProfile {
	return predicate.BusinessProfile(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BusinessProfile) predicate.BusinessProfile {
	return predicate.BusinessProfile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BusinessProfile) predicate.BusinessProfile {
	return predicate.BusinessProfile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BusinessProfile) predicate.BusinessProfile {
	return predicate.BusinessProfile(sql.NotPredicates(p))
}
