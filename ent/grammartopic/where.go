// Code generated by ent, DO NOT EDIT.

package grammartopic

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/lingvoapp/lingvo-api/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.GrammarTopic {
	return predicate.GrammarTopic(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.GrammarTopic {
	return predicate.GrammarTopic(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.GrammarTopic {
	return predicate.GrammarTopic(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.GrammarTopic {
	return predicate.GrammarTopic(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.GrammarTopic {
	return predicate.GrammarTopic(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.GrammarTopic {
	return predicate.GrammarTopic(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.GrammarTopic {
	return predicate.GrammarTopic(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.GrammarTopic {
	return predicate.GrammarTopic(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.GrammarTopic {
	return predicate.GrammarTopic(sql.FieldLTE(FieldID, id))
}

// PackID applies equality check predicate on the "pack_id" field. It's identical to PackIDEQ.
func PackID(v uuid.UUID) predicate.GrammarTopic {
	return predicate.GrammarTopic(sql.FieldEQ(FieldPackID, v))
}

// VideoURL applies equality check predicate on the "video_url" field. It's identical to VideoURLEQ.
func VideoURL(v string) predicate.GrammarTopic {
	return predicate.GrammarTopic(sql.FieldEQ(FieldVideoURL, v))
}

// MarkdownText applies equality check predicate on the "markdown_text" field. It's identical to MarkdownTextEQ.
func MarkdownText(v string) predicate.GrammarTopic {
	return predicate.GrammarTopic(sql.FieldEQ(FieldMarkdownText, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.GrammarTopic {
	return predicate.GrammarTopic(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.GrammarTopic {
	return predicate.GrammarTopic(sql.FieldEQ(FieldUpdatedAt, v))
}

// PackIDEQ applies the EQ predicate on the "pack_id" field.
func PackIDEQ(v uuid.UUID) predicate.GrammarTopic {
	return predicate.GrammarTopic(sql.FieldEQ(FieldPackID, v))
}

// PackIDNEQ applies the NEQ predicate on the "pack_id" field.
func PackIDNEQ(v uuid.UUID) predicate.GrammarTopic {
	return predicate.GrammarTopic(sql.FieldNEQ(FieldPackID, v))
}

// PackIDIn applies the In predicate on the "pack_id" field.
func PackIDIn(vs ...uuid.UUID) predicate.GrammarTopic {
	return predicate.GrammarTopic(sql.FieldIn(FieldPackID, vs...))
}

// PackIDNotIn applies the NotIn predicate on the "pack_id" field.
func PackIDNotIn(vs ...uuid.UUID) predicate.GrammarTopic {
	return predicate.GrammarTopic(sql.FieldNotIn(FieldPackID, vs...))
}

// VideoURLEQ applies the EQ predicate on the "video_url" field.
func VideoURLEQ(v string) predicate.GrammarTopic {
	return predicate.GrammarTopic(sql.FieldEQ(FieldVideoURL, v))
}

// VideoURLNEQ applies the NEQ predicate on the "video_url" field.
func VideoURLNEQ(v string) predicate.GrammarTopic {
	return predicate.GrammarTopic(sql.FieldNEQ(FieldVideoURL, v))
}

// VideoURLIn applies the In predicate on the "video_url" field.
func VideoURLIn(vs ...string) predicate.GrammarTopic {
	return predicate.GrammarTopic(sql.FieldIn(FieldVideoURL, vs...))
}

// VideoURLNotIn applies the NotIn predicate on the "video_url" field.
func VideoURLNotIn(vs ...string) predicate.GrammarTopic {
	return predicate.GrammarTopic(sql.FieldNotIn(FieldVideoURL, vs...))
}

// VideoURLGT applies the GT predicate on the "video_url" field.
func VideoURLGT(v string) predicate.GrammarTopic {
	return predicate.GrammarTopic(sql.FieldGT(FieldVideoURL, v))
}

// VideoURLGTE applies the GTE predicate on the "video_url" field.
func VideoURLGTE(v string) predicate.GrammarTopic {
	return predicate.GrammarTopic(sql.FieldGTE(FieldVideoURL, v))
}

// VideoURLLT applies the LT predicate on the "video_url" field.
func VideoURLLT(v string) predicate.GrammarTopic {
	return predicate.GrammarTopic(sql.FieldLT(FieldVideoURL, v))
}

// VideoURLLTE applies the LTE predicate on the "video_url" field.
func VideoURLLTE(v string) predicate.GrammarTopic {
	return predicate.GrammarTopic(sql.FieldLTE(FieldVideoURL, v))
}

// VideoURLContains applies the Contains predicate on the "video_url" field.
func VideoURLContains(v string) predicate.GrammarTopic {
	return predicate.GrammarTopic(sql.FieldContains(FieldVideoURL, v))
}

// VideoURLHasPrefix applies the HasPrefix predicate on the "video_url" field.
func VideoURLHasPrefix(v string) predicate.GrammarTopic {
	return predicate.GrammarTopic(sql.FieldHasPrefix(FieldVideoURL, v))
}

// VideoURLHasSuffix applies the HasSuffix predicate on the "video_url" field.
func VideoURLHasSuffix(v string) predicate.GrammarTopic {
	return predicate.GrammarTopic(sql.FieldHasSuffix(FieldVideoURL, v))
}

// VideoURLIsNil applies the IsNil predicate on the "video_url" field.
func VideoURLIsNil() predicate.GrammarTopic {
	return predicate.GrammarTopic(sql.FieldIsNull(FieldVideoURL))
}

// VideoURLNotNil applies the NotNil predicate on the "video_url" field.
func VideoURLNotNil() predicate.GrammarTopic {
	return predicate.GrammarTopic(sql.FieldNotNull(FieldVideoURL))
}

// VideoURLEqualFold applies the EqualFold predicate on the "video_url" field.
func VideoURLEqualFold(v string) predicate.GrammarTopic {
	return predicate.GrammarTopic(sql.FieldEqualFold(FieldVideoURL, v))
}

// VideoURLContainsFold applies the ContainsFold predicate on the "video_url" field.
func VideoURLContainsFold(v string) predicate.GrammarTopic {
	return predicate.GrammarTopic(sql.FieldContainsFold(FieldVideoURL, v))
}

// MarkdownTextEQ applies the EQ predicate on the "markdown_text" field.
func MarkdownTextEQ(v string) predicate.GrammarTopic {
	return predicate.GrammarTopic(sql.FieldEQ(FieldMarkdownText, v))
}

// MarkdownTextNEQ applies the NEQ predicate on the "markdown_text" field.
func MarkdownTextNEQ(v string) predicate.GrammarTopic {
	return predicate.GrammarTopic(sql.FieldNEQ(FieldMarkdownText, v))
}

// MarkdownTextIn applies the In predicate on the "markdown_text" field.
func MarkdownTextIn(vs ...string) predicate.GrammarTopic {
	return predicate.GrammarTopic(sql.FieldIn(FieldMarkdownText, vs...))
}

// MarkdownTextNotIn applies the NotIn predicate on the "markdown_text" field.
func MarkdownTextNotIn(vs ...string) predicate.GrammarTopic {
	return predicate.GrammarTopic(sql.FieldNotIn(FieldMarkdownText, vs...))
}

// MarkdownTextGT applies the GT predicate on the "markdown_text" field.
func MarkdownTextGT(v string) predicate.GrammarTopic {
	return predicate.GrammarTopic(sql.FieldGT(FieldMarkdownText, v))
}

// MarkdownTextGTE applies the GTE predicate on the "markdown_text" field.
func MarkdownTextGTE(v string) predicate.GrammarTopic {
	return predicate.GrammarTopic(sql.FieldGTE(FieldMarkdownText, v))
}

// MarkdownTextLT applies the LT predicate on the "markdown_text" field.
func MarkdownTextLT(v string) predicate.GrammarTopic {
	return predicate.GrammarTopic(sql.FieldLT(FieldMarkdownText, v))
}

// MarkdownTextLTE applies the LTE predicate on the "markdown_text" field.
func MarkdownTextLTE(v string) predicate.GrammarTopic {
	return predicate.GrammarTopic(sql.FieldLTE(FieldMarkdownText, v))
}

// MarkdownTextContains applies the Contains predicate on the "markdown_text" field.
func MarkdownTextContains(v string) predicate.GrammarTopic {
	return predicate.GrammarTopic(sql.FieldContains(FieldMarkdownText, v))
}

// MarkdownTextHasPrefix applies the HasPrefix predicate on the "markdown_text" field.
func MarkdownTextHasPrefix(v string) predicate.GrammarTopic {
	return predicate.GrammarTopic(sql.FieldHasPrefix(FieldMarkdownText, v))
}

// MarkdownTextHasSuffix applies the HasSuffix predicate on the "markdown_text" field.
func MarkdownTextHasSuffix(v string) predicate.GrammarTopic {
	return predicate.GrammarTopic(sql.FieldHasSuffix(FieldMarkdownText, v))
}

// MarkdownTextIsNil applies the IsNil predicate on the "markdown_text" field.
func MarkdownTextIsNil() predicate.GrammarTopic {
	return predicate.GrammarTopic(sql.FieldIsNull(FieldMarkdownText))
}

// MarkdownTextNotNil applies the NotNil predicate on the "markdown_text" field.
func MarkdownTextNotNil() predicate.GrammarTopic {
	return predicate.GrammarTopic(sql.FieldNotNull(FieldMarkdownText))
}

// MarkdownTextEqualFold applies the EqualFold predicate on the "markdown_text" field.
func MarkdownTextEqualFold(v string) predicate.GrammarTopic {
	return predicate.GrammarTopic(sql.FieldEqualFold(FieldMarkdownText, v))
}

// MarkdownTextContainsFold applies the ContainsFold predicate on the "markdown_text" field.
func MarkdownTextContainsFold(v string) predicate.GrammarTopic {
	return predicate.GrammarTopic(sql.FieldContainsFold(FieldMarkdownText, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.GrammarTopic {
	return predicate.GrammarTopic(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.GrammarTopic {
	return predicate.GrammarTopic(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.GrammarTopic {
	return predicate.GrammarTopic(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.GrammarTopic {
	return predicate.GrammarTopic(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.GrammarTopic {
	return predicate.GrammarTopic(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.GrammarTopic {
	return predicate.GrammarTopic(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.GrammarTopic {
	return predicate.GrammarTopic(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.GrammarTopic {
	return predicate.GrammarTopic(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.GrammarTopic {
	return predicate.GrammarTopic(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.GrammarTopic {
	return predicate.GrammarTopic(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.GrammarTopic {
	return predicate.GrammarTopic(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.GrammarTopic {
	return predicate.GrammarTopic(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.GrammarTopic {
	return predicate.GrammarTopic(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.GrammarTopic {
	return predicate.GrammarTopic(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.GrammarTopic {
	return predicate.GrammarTopic(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.GrammarTopic {
	return predicate.GrammarTopic(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasPack applies the HasEdge predicate on the "pack" edge.
func HasPack() predicate.GrammarTopic {
	return predicate.GrammarTopic(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PackTable, PackColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPackWith applies the HasEdge predicate on the "pack" edge with a given conditions (other predicates).
func HasPackWith(preds ...predicate.Pack) predicate.GrammarTopic {
	return predicate.GrammarTopic(func(s *sql.Selector) {
		step := newPackStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GrammarTopic) predicate.GrammarTopic {
	return predicate.GrammarTopic(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GrammarTopic) predicate.GrammarTopic {
	return predicate.GrammarTopic(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GrammarTopic) predicate.GrammarTopic {
	return predicate.GrammarTopic(sql.NotPredicates(p))
}
