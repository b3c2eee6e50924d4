// Code generated by ent, DO NOT EDIT.

package word

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/lingvoapp/lingvo-api/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Word {
	return predicate.Word(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Word {
	return predicate.Word(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Word {
	return predicate.Word(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Word {
	return predicate.Word(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Word {
	return predicate.Word(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Word {
	return predicate.Word(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Word {
	return predicate.Word(sql.FieldLTE(FieldID, id))
}

// PackID applies equality check predicate on the "pack_id" field. It's identical to PackIDEQ.
func PackID(v uuid.UUID) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldPackID, v))
}

// UzText applies equality check predicate on the "uz_text" field. It's identical to UzTextEQ.
func UzText(v string) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldUzText, v))
}

// RuText applies equality check predicate on the "ru_text" field. It's identical to RuTextEQ.
func RuText(v string) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldRuText, v))
}

// AudioURL applies equality check predicate on the "audio_url" field. It's identical to AudioURLEQ.
func AudioURL(v string) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldAudioURL, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldUpdatedAt, v))
}

// PackIDEQ applies the EQ predicate on the "pack_id" field.
func PackIDEQ(v uuid.UUID) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldPackID, v))
}

// PackIDNEQ applies the NEQ predicate on the "pack_id" field.
func PackIDNEQ(v uuid.UUID) predicate.Word {
	return predicate.Word(sql.FieldNEQ(FieldPackID, v))
}

// PackIDIn applies the In predicate on the "pack_id" field.
func PackIDIn(vs ...uuid.UUID) predicate.Word {
	return predicate.Word(sql.FieldIn(FieldPackID, vs...))
}

// PackIDNotIn applies the NotIn predicate on the "pack_id" field.
func PackIDNotIn(vs ...uuid.UUID) predicate.Word {
	return predicate.Word(sql.FieldNotIn(FieldPackID, vs...))
}

// UzTextEQ applies the EQ predicate on the "uz_text" field.
func UzTextEQ(v string) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldUzText, v))
}

// UzTextNEQ applies the NEQ predicate on the "uz_text" field.
func UzTextNEQ(v string) predicate.Word {
	return predicate.Word(sql.FieldNEQ(FieldUzText, v))
}

// UzTextIn applies the In predicate on the "uz_text" field.
func UzTextIn(vs ...string) predicate.Word {
	return predicate.Word(sql.FieldIn(FieldUzText, vs...))
}

// UzTextNotIn applies the NotIn predicate on the "uz_text" field.
func UzTextNotIn(vs ...string) predicate.Word {
	return predicate.Word(sql.FieldNotIn(FieldUzText, vs...))
}

// UzTextGT applies the GT predicate on the "uz_text" field.
func UzTextGT(v string) predicate.Word {
	return predicate.Word(sql.FieldGT(FieldUzText, v))
}

// UzTextGTE applies the GTE predicate on the "uz_text" field.
func UzTextGTE(v string) predicate.Word {
	return predicate.Word(sql.FieldGTE(FieldUzText, v))
}

// UzTextLT applies the LT predicate on the "uz_text" field.
func UzTextLT(v string) predicate.Word {
	return predicate.Word(sql.FieldLT(FieldUzText, v))
}

// UzTextLTE applies the LTE predicate on the "uz_text" field.
func UzTextLTE(v string) predicate.Word {
	return predicate.Word(sql.FieldLTE(FieldUzText, v))
}

// UzTextContains applies the Contains predicate on the "uz_text" field.
func UzTextContains(v string) predicate.Word {
	return predicate.Word(sql.FieldContains(FieldUzText, v))
}

// UzTextHasPrefix applies the HasPrefix predicate on the "uz_text" field.
func UzTextHasPrefix(v string) predicate.Word {
	return predicate.Word(sql.FieldHasPrefix(FieldUzText, v))
}

// UzTextHasSuffix applies the HasSuffix predicate on the "uz_text" field.
func UzTextHasSuffix(v string) predicate.Word {
	return predicate.Word(sql.FieldHasSuffix(FieldUzText, v))
}

// UzTextIsNil applies the IsNil predicate on the "uz_text" field.
func UzTextIsNil() predicate.Word {
	return predicate.Word(sql.FieldIsNull(FieldUzText))
}

// UzTextNotNil applies the NotNil predicate on the "uz_text" field.
func UzTextNotNil() predicate.Word {
	return predicate.Word(sql.FieldNotNull(FieldUzText))
}

// UzTextEqualFold applies the EqualFold predicate on the "uz_text" field.
func UzTextEqualFold(v string) predicate.Word {
	return predicate.Word(sql.FieldEqualFold(FieldUzText, v))
}

// UzTextContainsFold applies the ContainsFold predicate on the "uz_text" field.
func UzTextContainsFold(v string) predicate.Word {
	return predicate.Word(sql.FieldContainsFold(FieldUzText, v))
}

// RuTextEQ applies the EQ predicate on the "ru_text" field.
func RuTextEQ(v string) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldRuText, v))
}

// RuTextNEQ applies the NEQ predicate on the "ru_text" field.
func RuTextNEQ(v string) predicate.Word {
	return predicate.Word(sql.FieldNEQ(FieldRuText, v))
}

// RuTextIn applies the In predicate on the "ru_text" field.
func RuTextIn(vs ...string) predicate.Word {
	return predicate.Word(sql.FieldIn(FieldRuText, vs...))
}

// RuTextNotIn applies the NotIn predicate on the "ru_text" field.
func RuTextNotIn(vs ...string) predicate.Word {
	return predicate.Word(sql.FieldNotIn(FieldRuText, vs...))
}

// RuTextGT applies the GT predicate on the "ru_text" field.
func RuTextGT(v string) predicate.Word {
	return predicate.Word(sql.FieldGT(FieldRuText, v))
}

// RuTextGTE applies the GTE predicate on the "ru_text" field.
func RuTextGTE(v string) predicate.Word {
	return predicate.Word(sql.FieldGTE(FieldRuText, v))
}

// RuTextLT applies the LT predicate on the "ru_text" field.
func RuTextLT(v string) predicate.Word {
	return predicate.Word(sql.FieldLT(FieldRuText, v))
}

// RuTextLTE applies the LTE predicate on the "ru_text" field.
func RuTextLTE(v string) predicate.Word {
	return predicate.Word(sql.FieldLTE(FieldRuText, v))
}

// RuTextContains applies the Contains predicate on the "ru_text" field.
func RuTextContains(v string) predicate.Word {
	return predicate.Word(sql.FieldContains(FieldRuText, v))
}

// RuTextHasPrefix applies the HasPrefix predicate on the "ru_text" field.
func RuTextHasPrefix(v string) predicate.Word {
	return predicate.Word(sql.FieldHasPrefix(FieldRuText, v))
}

// RuTextHasSuffix applies the HasSuffix predicate on the "ru_text" field.
func RuTextHasSuffix(v string) predicate.Word {
	return predicate.Word(sql.FieldHasSuffix(FieldRuText, v))
}

// RuTextIsNil applies the IsNil predicate on the "ru_text" field.
func RuTextIsNil() predicate.Word {
	return predicate.Word(sql.FieldIsNull(FieldRuText))
}

// RuTextNotNil applies the NotNil predicate on the "ru_text" field.
func RuTextNotNil() predicate.Word {
	return predicate.Word(sql.FieldNotNull(FieldRuText))
}

// RuTextEqualFold applies the EqualFold predicate on the "ru_text" field.
func RuTextEqualFold(v string) predicate.Word {
	return predicate.Word(sql.FieldEqualFold(FieldRuText, v))
}

// RuTextContainsFold applies the ContainsFold predicate on the "ru_text" field.
func RuTextContainsFold(v string) predicate.Word {
	return predicate.Word(sql.FieldContainsFold(FieldRuText, v))
}

// AudioURLEQ applies the EQ predicate on the "audio_url" field.
func AudioURLEQ(v string) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldAudioURL, v))
}

// AudioURLNEQ applies the NEQ predicate on the "audio_url" field.
func AudioURLNEQ(v string) predicate.Word {
	return predicate.Word(sql.FieldNEQ(FieldAudioURL, v))
}

// AudioURLIn applies the In predicate on the "audio_url" field.
func AudioURLIn(vs ...string) predicate.Word {
	return predicate.Word(sql.FieldIn(FieldAudioURL, vs...))
}

// AudioURLNotIn applies the NotIn predicate on the "audio_url" field.
func AudioURLNotIn(vs ...string) predicate.Word {
	return predicate.Word(sql.FieldNotIn(FieldAudioURL, vs...))
}

// AudioURLGT applies the GT predicate on the "audio_url" field.
func AudioURLGT(v string) predicate.Word {
	return predicate.Word(sql.FieldGT(FieldAudioURL, v))
}

// AudioURLGTE applies the GTE predicate on the "audio_url" field.
func AudioURLGTE(v string) predicate.Word {
	return predicate.Word(sql.FieldGTE(FieldAudioURL, v))
}

// AudioURLLT applies the LT predicate on the "audio_url" field.
func AudioURLLT(v string) predicate.Word {
	return predicate.Word(sql.FieldLT(FieldAudioURL, v))
}

// AudioURLLTE applies the LTE predicate on the "audio_url" field.
func AudioURLLTE(v string) predicate.Word {
	return predicate.Word(sql.FieldLTE(FieldAudioURL, v))
}

// AudioURLContains applies the Contains predicate on the "audio_url" field.
func AudioURLContains(v string) predicate.Word {
	return predicate.Word(sql.FieldContains(FieldAudioURL, v))
}

// AudioURLHasPrefix applies the HasPrefix predicate on the "audio_url" field.
func AudioURLHasPrefix(v string) predicate.Word {
	return predicate.Word(sql.FieldHasPrefix(FieldAudioURL, v))
}

// AudioURLHasSuffix applies the HasSuffix predicate on the "audio_url" field.
func AudioURLHasSuffix(v string) predicate.Word {
	return predicate.Word(sql.FieldHasSuffix(FieldAudioURL, v))
}

// AudioURLIsNil applies the IsNil predicate on the "audio_url" field.
func AudioURLIsNil() predicate.Word {
	return predicate.Word(sql.FieldIsNull(FieldAudioURL))
}

// AudioURLNotNil applies the NotNil predicate on the "audio_url" field.
func AudioURLNotNil() predicate.Word {
	return predicate.Word(sql.FieldNotNull(FieldAudioURL))
}

// AudioURLEqualFold applies the EqualFold predicate on the "audio_url" field.
func AudioURLEqualFold(v string) predicate.Word {
	return predicate.Word(sql.FieldEqualFold(FieldAudioURL, v))
}

// AudioURLContainsFold applies the ContainsFold predicate on the "audio_url" field.
func AudioURLContainsFold(v string) predicate.Word {
	return predicate.Word(sql.FieldContainsFold(FieldAudioURL, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Word {
	return predicate.Word(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Word {
	return predicate.Word(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Word {
	return predicate.Word(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Word {
	return predicate.Word(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Word {
	return predicate.Word(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Word {
	return predicate.Word(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Word {
	return predicate.Word(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Word {
	return predicate.Word(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Word {
	return predicate.Word(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Word {
	return predicate.Word(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Word {
	return predicate.Word(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Word {
	return predicate.Word(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Word {
	return predicate.Word(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Word {
	return predicate.Word(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasPack applies the HasEdge predicate on the "pack" edge.
func HasPack() predicate.Word {
	return predicate.Word(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PackTable, PackColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPackWith applies the HasEdge predicate on the "pack" edge with a given conditions (other predicates).
func HasPackWith(preds ...predicate.Pack) predicate.Word {
	return predicate.Word(func(s *sql.Selector) {
		step := newPackStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Word) predicate.Word {
	return predicate.Word(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Word) predicate.Word {
	return predicate.Word(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Word) predicate.Word {
	return predicate.Word(sql.NotPredicates(p))
}
