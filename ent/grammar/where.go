// Code generated by ent, DO NOT EDIT.

package grammar

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/lingvoapp/lingvo-api/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Grammar {
	return predicate.Grammar(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Grammar {
	return predicate.Grammar(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Grammar {
	return predicate.Grammar(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Grammar {
	return predicate.Grammar(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Grammar {
	return predicate.Grammar(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Grammar {
	return predicate.Grammar(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Grammar {
	return predicate.Grammar(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Grammar {
	return predicate.Grammar(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Grammar {
	return predicate.Grammar(sql.FieldLTE(FieldID, id))
}

// PackID applies equality check predicate on the "pack_id" field. It's identical to PackIDEQ.
func PackID(v uuid.UUID) predicate.Grammar {
	return predicate.Grammar(sql.FieldEQ(FieldPackID, v))
}

// QuestionText applies equality check predicate on the "question_text" field. It's identical to QuestionTextEQ.
func QuestionText(v string) predicate.Grammar {
	return predicate.Grammar(sql.FieldEQ(FieldQuestionText, v))
}

// CorrectOption applies equality check predicate on the "correct_option" field. It's identical to CorrectOptionEQ.
func CorrectOption(v int) predicate.Grammar {
	return predicate.Grammar(sql.FieldEQ(FieldCorrectOption, v))
}

// Sentence applies equality check predicate on the "sentence" field. It's identical to SentenceEQ.
func Sentence(v string) predicate.Grammar {
	return predicate.Grammar(sql.FieldEQ(FieldSentence, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Grammar {
	return predicate.Grammar(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Grammar {
	return predicate.Grammar(sql.FieldEQ(FieldUpdatedAt, v))
}

// PackIDEQ applies the EQ predicate on the "pack_id" field.
func PackIDEQ(v uuid.UUID) predicate.Grammar {
	return predicate.Grammar(sql.FieldEQ(FieldPackID, v))
}

// PackIDNEQ applies the NEQ predicate on the "pack_id" field.
func PackIDNEQ(v uuid.UUID) predicate.Grammar {
	return predicate.Grammar(sql.FieldNEQ(FieldPackID, v))
}

// PackIDIn applies the In predicate on the "pack_id" field.
func PackIDIn(vs ...uuid.UUID) predicate.Grammar {
	return predicate.Grammar(sql.FieldIn(FieldPackID, vs...))
}

// PackIDNotIn applies the NotIn predicate on the "pack_id" field.
func PackIDNotIn(vs ...uuid.UUID) predicate.Grammar {
	return predicate.Grammar(sql.FieldNotIn(FieldPackID, vs...))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v Type) predicate.Grammar {
	return predicate.Grammar(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v Type) predicate.Grammar {
	return predicate.Grammar(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...Type) predicate.Grammar {
	return predicate.Grammar(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...Type) predicate.Grammar {
	return predicate.Grammar(sql.FieldNotIn(FieldType, vs...))
}

// QuestionTextEQ applies the EQ predicate on the "question_text" field.
func QuestionTextEQ(v string) predicate.Grammar {
	return predicate.Grammar(sql.FieldEQ(FieldQuestionText, v))
}

// QuestionTextNEQ applies the NEQ predicate on the "question_text" field.
func QuestionTextNEQ(v string) predicate.Grammar {
	return predicate.Grammar(sql.FieldNEQ(FieldQuestionText, v))
}

// QuestionTextIn applies the In predicate on the "question_text" field.
func QuestionTextIn(vs ...string) predicate.Grammar {
	return predicate.Grammar(sql.FieldIn(FieldQuestionText, vs...))
}

// QuestionTextNotIn applies the NotIn predicate on the "question_text" field.
func QuestionTextNotIn(vs ...string) predicate.Grammar {
	return predicate.Grammar(sql.FieldNotIn(FieldQuestionText, vs...))
}

// QuestionTextGT applies the GT predicate on the "question_text" field.
func QuestionTextGT(v string) predicate.Grammar {
	return predicate.Grammar(sql.FieldGT(FieldQuestionText, v))
}

// QuestionTextGTE applies the GTE predicate on the "question_text" field.
func QuestionTextGTE(v string) predicate.Grammar {
	return predicate.Grammar(sql.FieldGTE(FieldQuestionText, v))
}

// QuestionTextLT applies the LT predicate on the "question_text" field.
func QuestionTextLT(v string) predicate.Grammar {
	return predicate.Grammar(sql.FieldLT(FieldQuestionText, v))
}

// QuestionTextLTE applies the LTE predicate on the "question_text" field.
func QuestionTextLTE(v string) predicate.Grammar {
	return predicate.Grammar(sql.FieldLTE(FieldQuestionText, v))
}

// QuestionTextContains applies the Contains predicate on the "question_text" field.
func QuestionTextContains(v string) predicate.Grammar {
	return predicate.Grammar(sql.FieldContains(FieldQuestionText, v))
}

// QuestionTextHasPrefix applies the HasPrefix predicate on the "question_text" field.
func QuestionTextHasPrefix(v string) predicate.Grammar {
	return predicate.Grammar(sql.FieldHasPrefix(FieldQuestionText, v))
}

// QuestionTextHasSuffix applies the HasSuffix predicate on the "question_text" field.
func QuestionTextHasSuffix(v string) predicate.Grammar {
	return predicate.Grammar(sql.FieldHasSuffix(FieldQuestionText, v))
}

// QuestionTextIsNil applies the IsNil predicate on the "question_text" field.
func QuestionTextIsNil() predicate.Grammar {
	return predicate.Grammar(sql.FieldIsNull(FieldQuestionText))
}

// QuestionTextNotNil applies the NotNil predicate on the "question_text" field.
func QuestionTextNotNil() predicate.Grammar {
	return predicate.Grammar(sql.FieldNotNull(FieldQuestionText))
}

// QuestionTextEqualFold applies the EqualFold predicate on the "question_text" field.
func QuestionTextEqualFold(v string) predicate.Grammar {
	return predicate.Grammar(sql.FieldEqualFold(FieldQuestionText, v))
}

// QuestionTextContainsFold applies the ContainsFold predicate on the "question_text" field.
func QuestionTextContainsFold(v string) predicate.Grammar {
	return predicate.Grammar(sql.FieldContainsFold(FieldQuestionText, v))
}

// OptionsIsNil applies the IsNil predicate on the "options" field.
func OptionsIsNil() predicate.Grammar {
	return predicate.Grammar(sql.FieldIsNull(FieldOptions))
}

// OptionsNotNil applies the NotNil predicate on the "options" field.
func OptionsNotNil() predicate.Grammar {
	return predicate.Grammar(sql.FieldNotNull(FieldOptions))
}

// CorrectOptionEQ applies the EQ predicate on the "correct_option" field.
func CorrectOptionEQ(v int) predicate.Grammar {
	return predicate.Grammar(sql.FieldEQ(FieldCorrectOption, v))
}

// CorrectOptionNEQ applies the NEQ predicate on the "correct_option" field.
func CorrectOptionNEQ(v int) predicate.Grammar {
	return predicate.Grammar(sql.FieldNEQ(FieldCorrectOption, v))
}

// CorrectOptionIn applies the In predicate on the "correct_option" field.
func CorrectOptionIn(vs ...int) predicate.Grammar {
	return predicate.Grammar(sql.FieldIn(FieldCorrectOption, vs...))
}

// CorrectOptionNotIn applies the NotIn predicate on the "correct_option" field.
func CorrectOptionNotIn(vs ...int) predicate.Grammar {
	return predicate.Grammar(sql.FieldNotIn(FieldCorrectOption, vs...))
}

// CorrectOptionGT applies the GT predicate on the "correct_option" field.
func CorrectOptionGT(v int) predicate.Grammar {
	return predicate.Grammar(sql.FieldGT(FieldCorrectOption, v))
}

// CorrectOptionGTE applies the GTE predicate on the "correct_option" field.
func CorrectOptionGTE(v int) predicate.Grammar {
	return predicate.Grammar(sql.FieldGTE(FieldCorrectOption, v))
}

// CorrectOptionLT applies the LT predicate on the "correct_option" field.
func CorrectOptionLT(v int) predicate.Grammar {
	return predicate.Grammar(sql.FieldLT(FieldCorrectOption, v))
}

// CorrectOptionLTE applies the LTE predicate on the "correct_option" field.
func CorrectOptionLTE(v int) predicate.Grammar {
	return predicate.Grammar(sql.FieldLTE(FieldCorrectOption, v))
}

// CorrectOptionIsNil applies the IsNil predicate on the "correct_option" field.
func CorrectOptionIsNil() predicate.Grammar {
	return predicate.Grammar(sql.FieldIsNull(FieldCorrectOption))
}

// CorrectOptionNotNil applies the NotNil predicate on the "correct_option" field.
func CorrectOptionNotNil() predicate.Grammar {
	return predicate.Grammar(sql.FieldNotNull(FieldCorrectOption))
}

// SentenceEQ applies the EQ predicate on the "sentence" field.
func SentenceEQ(v string) predicate.Grammar {
	return predicate.Grammar(sql.FieldEQ(FieldSentence, v))
}

// SentenceNEQ applies the NEQ predicate on the "sentence" field.
func SentenceNEQ(v string) predicate.Grammar {
	return predicate.Grammar(sql.FieldNEQ(FieldSentence, v))
}

// SentenceIn applies the In predicate on the "sentence" field.
func SentenceIn(vs ...string) predicate.Grammar {
	return predicate.Grammar(sql.FieldIn(FieldSentence, vs...))
}

// SentenceNotIn applies the NotIn predicate on the "sentence" field.
func SentenceNotIn(vs ...string) predicate.Grammar {
	return predicate.Grammar(sql.FieldNotIn(FieldSentence, vs...))
}

// SentenceGT applies the GT predicate on the "sentence" field.
func SentenceGT(v string) predicate.Grammar {
	return predicate.Grammar(sql.FieldGT(FieldSentence, v))
}

// SentenceGTE applies the GTE predicate on the "sentence" field.
func SentenceGTE(v string) predicate.Grammar {
	return predicate.Grammar(sql.FieldGTE(FieldSentence, v))
}

// SentenceLT applies the LT predicate on the "sentence" field.
func SentenceLT(v string) predicate.Grammar {
	return predicate.Grammar(sql.FieldLT(FieldSentence, v))
}

// SentenceLTE applies the LTE predicate on the "sentence" field.
func SentenceLTE(v string) predicate.Grammar {
	return predicate.Grammar(sql.FieldLTE(FieldSentence, v))
}

// SentenceContains applies the Contains predicate on the "sentence" field.
func SentenceContains(v string) predicate.Grammar {
	return predicate.Grammar(sql.FieldContains(FieldSentence, v))
}

// SentenceHasPrefix applies the HasPrefix predicate on the "sentence" field.
func SentenceHasPrefix(v string) predicate.Grammar {
	return predicate.Grammar(sql.FieldHasPrefix(FieldSentence, v))
}

// SentenceHasSuffix applies the HasSuffix predicate on the "sentence" field.
func SentenceHasSuffix(v string) predicate.Grammar {
	return predicate.Grammar(sql.FieldHasSuffix(FieldSentence, v))
}

// SentenceIsNil applies the IsNil predicate on the "sentence" field.
func SentenceIsNil() predicate.Grammar {
	return predicate.Grammar(sql.FieldIsNull(FieldSentence))
}

// SentenceNotNil applies the NotNil predicate on the "sentence" field.
func SentenceNotNil() predicate.Grammar {
	return predicate.Grammar(sql.FieldNotNull(FieldSentence))
}

// SentenceEqualFold applies the EqualFold predicate on the "sentence" field.
func SentenceEqualFold(v string) predicate.Grammar {
	return predicate.Grammar(sql.FieldEqualFold(FieldSentence, v))
}

// SentenceContainsFold applies the ContainsFold predicate on the "sentence" field.
func SentenceContainsFold(v string) predicate.Grammar {
	return predicate.Grammar(sql.FieldContainsFold(FieldSentence, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Grammar {
	return predicate.Grammar(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Grammar {
	return predicate.Grammar(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Grammar {
	return predicate.Grammar(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Grammar {
	return predicate.Grammar(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Grammar {
	return predicate.Grammar(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Grammar {
	return predicate.Grammar(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Grammar {
	return predicate.Grammar(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Grammar {
	return predicate.Grammar(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Grammar {
	return predicate.Grammar(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Grammar {
	return predicate.Grammar(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Grammar {
	return predicate.Grammar(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Grammar {
	return predicate.Grammar(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Grammar {
	return predicate.Grammar(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Grammar {
	return predicate.Grammar(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Grammar {
	return predicate.Grammar(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Grammar {
	return predicate.Grammar(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasPack applies the HasEdge predicate on the "pack" edge.
func HasPack() predicate.Grammar {
	return predicate.Grammar(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PackTable, PackColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPackWith applies the HasEdge predicate on the "pack" edge with a given conditions (other predicates).
func HasPackWith(preds ...predicate.Pack) predicate.Grammar {
	return predicate.Grammar(func(s *sql.Selector) {
		step := newPackStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Grammar) predicate.Grammar {
	return predicate.Grammar(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Grammar) predicate.Grammar {
	return predicate.Grammar(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Grammar) predicate.Grammar {
	return predicate.Grammar(sql.NotPredicates(p))
}
