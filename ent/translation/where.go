// Code generated by ent, DO NOT EDIT.

package translation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/lingvoapp/lingvo-api/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Translation {
	return predicate.Translation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Translation {
	return predicate.Translation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Translation {
	return predicate.Translation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Translation {
	return predicate.Translation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Translation {
	return predicate.Translation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Translation {
	return predicate.Translation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Translation {
	return predicate.Translation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Translation {
	return predicate.Translation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Translation {
	return predicate.Translation(sql.FieldLTE(FieldID, id))
}

// InputText applies equality check predicate on the "input_text" field. It's identical to InputTextEQ.
func InputText(v string) predicate.Translation {
	return predicate.Translation(sql.FieldEQ(FieldInputText, v))
}

// TargetLanguage applies equality check predicate on the "target_language" field. It's identical to TargetLanguageEQ.
func TargetLanguage(v string) predicate.Translation {
	return predicate.Translation(sql.FieldEQ(FieldTargetLanguage, v))
}

// OutputText applies equality check predicate on the "output_text" field. It's identical to OutputTextEQ.
func OutputText(v string) predicate.Translation {
	return predicate.Translation(sql.FieldEQ(FieldOutputText, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Translation {
	return predicate.Translation(sql.FieldEQ(FieldCreatedAt, v))
}

// InputTextEQ applies the EQ predicate on the "input_text" field.
func InputTextEQ(v string) predicate.Translation {
	return predicate.Translation(sql.FieldEQ(FieldInputText, v))
}

// InputTextNEQ applies the NEQ predicate on the "input_text" field.
func InputTextNEQ(v string) predicate.Translation {
	return predicate.Translation(sql.FieldNEQ(FieldInputText, v))
}

// InputTextIn applies the In predicate on the "input_text" field.
func InputTextIn(vs ...string) predicate.Translation {
	return predicate.Translation(sql.FieldIn(FieldInputText, vs...))
}

// InputTextNotIn applies the NotIn predicate on the "input_text" field.
func InputTextNotIn(vs ...string) predicate.Translation {
	return predicate.Translation(sql.FieldNotIn(FieldInputText, vs...))
}

// InputTextGT applies the GT predicate on the "input_text" field.
func InputTextGT(v string) predicate.Translation {
	return predicate.Translation(sql.FieldGT(FieldInputText, v))
}

// InputTextGTE applies the GTE predicate on the "input_text" field.
func InputTextGTE(v string) predicate.Translation {
	return predicate.Translation(sql.FieldGTE(FieldInputText, v))
}

// InputTextLT applies the LT predicate on the "input_text" field.
func InputTextLT(v string) predicate.Translation {
	return predicate.Translation(sql.FieldLT(FieldInputText, v))
}

// InputTextLTE applies the LTE predicate on the "input_text" field.
func InputTextLTE(v string) predicate.Translation {
	return predicate.Translation(sql.FieldLTE(FieldInputText, v))
}

// InputTextContains applies the Contains predicate on the "input_text" field.
func InputTextContains(v string) predicate.Translation {
	return predicate.Translation(sql.FieldContains(FieldInputText, v))
}

// InputTextHasPrefix applies the HasPrefix predicate on the "input_text" field.
func InputTextHasPrefix(v string) predicate.Translation {
	return predicate.Translation(sql.FieldHasPrefix(FieldInputText, v))
}

// InputTextHasSuffix applies the HasSuffix predicate on the "input_text" field.
func InputTextHasSuffix(v string) predicate.Translation {
	return predicate.Translation(sql.FieldHasSuffix(FieldInputText, v))
}

// InputTextEqualFold applies the EqualFold predicate on the "input_text" field.
func InputTextEqualFold(v string) predicate.Translation {
	return predicate.Translation(sql.FieldEqualFold(FieldInputText, v))
}

// InputTextContainsFold applies the ContainsFold predicate on the "input_text" field.
func InputTextContainsFold(v string) predicate.Translation {
	return predicate.Translation(sql.FieldContainsFold(FieldInputText, v))
}

// TargetLanguageEQ applies the EQ predicate on the "target_language" field.
func TargetLanguageEQ(v string) predicate.Translation {
	return predicate.Translation(sql.FieldEQ(FieldTargetLanguage, v))
}

// TargetLanguageNEQ applies the NEQ predicate on the "target_language" field.
func TargetLanguageNEQ(v string) predicate.Translation {
	return predicate.Translation(sql.FieldNEQ(FieldTargetLanguage, v))
}

// TargetLanguageIn applies the In predicate on the "target_language" field.
func TargetLanguageIn(vs ...string) predicate.Translation {
	return predicate.Translation(sql.FieldIn(FieldTargetLanguage, vs...))
}

// TargetLanguageNotIn applies the NotIn predicate on the "target_language" field.
func TargetLanguageNotIn(vs ...string) predicate.Translation {
	return predicate.Translation(sql.FieldNotIn(FieldTargetLanguage, vs...))
}

// TargetLanguageGT applies the GT predicate on the "target_language" field.
func TargetLanguageGT(v string) predicate.Translation {
	return predicate.Translation(sql.FieldGT(FieldTargetLanguage, v))
}

// TargetLanguageGTE applies the GTE predicate on the "target_language" field.
func TargetLanguageGTE(v string) predicate.Translation {
	return predicate.Translation(sql.FieldGTE(FieldTargetLanguage, v))
}

// TargetLanguageLT applies the LT predicate on the "target_language" field.
func TargetLanguageLT(v string) predicate.Translation {
	return predicate.Translation(sql.FieldLT(FieldTargetLanguage, v))
}

// TargetLanguageLTE applies the LTE predicate on the "target_language" field.
func TargetLanguageLTE(v string) predicate.Translation {
	return predicate.Translation(sql.FieldLTE(FieldTargetLanguage, v))
}

// TargetLanguageContains applies the Contains predicate on the "target_language" field.
func TargetLanguageContains(v string) predicate.Translation {
	return predicate.Translation(sql.FieldContains(FieldTargetLanguage, v))
}

// TargetLanguageHasPrefix applies the HasPrefix predicate on the "target_language" field.
func TargetLanguageHasPrefix(v string) predicate.Translation {
	return predicate.Translation(sql.FieldHasPrefix(FieldTargetLanguage, v))
}

// TargetLanguageHasSuffix applies the HasSuffix predicate on the "target_language" field.
func TargetLanguageHasSuffix(v string) predicate.Translation {
	return predicate.Translation(sql.FieldHasSuffix(FieldTargetLanguage, v))
}

// TargetLanguageEqualFold applies the EqualFold predicate on the "target_language" field.
func TargetLanguageEqualFold(v string) predicate.Translation {
	return predicate.Translation(sql.FieldEqualFold(FieldTargetLanguage, v))
}

// TargetLanguageContainsFold applies the ContainsFold predicate on the "target_language" field.
func TargetLanguageContainsFold(v string) predicate.Translation {
	return predicate.Translation(sql.FieldContainsFold(FieldTargetLanguage, v))
}

// OutputTextEQ applies the EQ predicate on the "output_text" field.
func OutputTextEQ(v string) predicate.Translation {
	return predicate.Translation(sql.FieldEQ(FieldOutputText, v))
}

// OutputTextNEQ applies the NEQ predicate on the "output_text" field.
func OutputTextNEQ(v string) predicate.Translation {
	return predicate.Translation(sql.FieldNEQ(FieldOutputText, v))
}

// OutputTextIn applies the In predicate on the "output_text" field.
func OutputTextIn(vs ...string) predicate.Translation {
	return predicate.Translation(sql.FieldIn(FieldOutputText, vs...))
}

// OutputTextNotIn applies the NotIn predicate on the "output_text" field.
func OutputTextNotIn(vs ...string) predicate.Translation {
	return predicate.Translation(sql.FieldNotIn(FieldOutputText, vs...))
}

// OutputTextGT applies the GT predicate on the "output_text" field.
func OutputTextGT(v string) predicate.Translation {
	return predicate.Translation(sql.FieldGT(FieldOutputText, v))
}

// OutputTextGTE applies the GTE predicate on the "output_text" field.
func OutputTextGTE(v string) predicate.Translation {
	return predicate.Translation(sql.FieldGTE(FieldOutputText, v))
}

// OutputTextLT applies the LT predicate on the "output_text" field.
func OutputTextLT(v string) predicate.Translation {
	return predicate.Translation(sql.FieldLT(FieldOutputText, v))
}

// OutputTextLTE applies the LTE predicate on the "output_text" field.
func OutputTextLTE(v string) predicate.Translation {
	return predicate.Translation(sql.FieldLTE(FieldOutputText, v))
}

// OutputTextContains applies the Contains predicate on the "output_text" field.
func OutputTextContains(v string) predicate.Translation {
	return predicate.Translation(sql.FieldContains(FieldOutputText, v))
}

// OutputTextHasPrefix applies the HasPrefix predicate on the "output_text" field.
func OutputTextHasPrefix(v string) predicate.Translation {
	return predicate.Translation(sql.FieldHasPrefix(FieldOutputText, v))
}

// OutputTextHasSuffix applies the HasSuffix predicate on the "output_text" field.
func OutputTextHasSuffix(v string) predicate.Translation {
	return predicate.Translation(sql.FieldHasSuffix(FieldOutputText, v))
}

// OutputTextEqualFold applies the EqualFold predicate on the "output_text" field.
func OutputTextEqualFold(v string) predicate.Translation {
	return predicate.Translation(sql.FieldEqualFold(FieldOutputText, v))
}

// OutputTextContainsFold applies the ContainsFold predicate on the "output_text" field.
func OutputTextContainsFold(v string) predicate.Translation {
	return predicate.Translation(sql.FieldContainsFold(FieldOutputText, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Translation {
	return predicate.Translation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Translation {
	return predicate.Translation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Translation {
	return predicate.Translation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Translation {
	return predicate.Translation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Translation {
	return predicate.Translation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Translation {
	return predicate.Translation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Translation {
	return predicate.Translation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Translation {
	return predicate.Translation(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Translation) predicate.Translation {
	return predicate.Translation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Translation) predicate.Translation {
	return predicate.Translation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Translation) predicate.Translation {
	return predicate.Translation(sql.NotPredicates(p))
}
