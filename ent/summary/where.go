// Code generated by ent, DO NOT EDIT.

package summary

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/deepsoc/deepsoc/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Summary {
	return predicate.Summary(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Summary {
	return predicate.Summary(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Summary {
	return predicate.Summary(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Summary {
	return predicate.Summary(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Summary {
	return predicate.Summary(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Summary {
	return predicate.Summary(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Summary {
	return predicate.Summary(sql.FieldLTE(FieldID, id))
}

// SummaryID applies equality check predicate on the "summary_id" field. It's identical to SummaryIDEQ.
func SummaryID(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldSummaryID, v))
}

// EventID applies equality check predicate on the "event_id" field. It's identical to EventIDEQ.
func EventID(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldEventID, v))
}

// RoundID applies equality check predicate on the "round_id" field. It's identical to RoundIDEQ.
func RoundID(v int) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldRoundID, v))
}

// EventSummary applies equality check predicate on the "event_summary" field. It's identical to EventSummaryEQ.
func EventSummary(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldEventSummary, v))
}

// EventSuggestion applies equality check predicate on the "event_suggestion" field. It's identical to EventSuggestionEQ.
func EventSuggestion(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldEventSuggestion, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldUpdatedAt, v))
}

// SummaryIDEQ applies the EQ predicate on the "summary_id" field.
func SummaryIDEQ(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldSummaryID, v))
}

// SummaryIDNEQ applies the NEQ predicate on the "summary_id" field.
func SummaryIDNEQ(v string) predicate.Summary {
	return predicate.Summary(sql.FieldNEQ(FieldSummaryID, v))
}

// SummaryIDIn applies the In predicate on the "summary_id" field.
func SummaryIDIn(vs ...string) predicate.Summary {
	return predicate.Summary(sql.FieldIn(FieldSummaryID, vs...))
}

// SummaryIDNotIn applies the NotIn predicate on the "summary_id" field.
func SummaryIDNotIn(vs ...string) predicate.Summary {
	return predicate.Summary(sql.FieldNotIn(FieldSummaryID, vs...))
}

// SummaryIDGT applies the GT predicate on the "summary_id" field.
func SummaryIDGT(v string) predicate.Summary {
	return predicate.Summary(sql.FieldGT(FieldSummaryID, v))
}

// SummaryIDGTE applies the GTE predicate on the "summary_id" field.
func SummaryIDGTE(v string) predicate.Summary {
	return predicate.Summary(sql.FieldGTE(FieldSummaryID, v))
}

// SummaryIDLT applies the LT predicate on the "summary_id" field.
func SummaryIDLT(v string) predicate.Summary {
	return predicate.Summary(sql.FieldLT(FieldSummaryID, v))
}

// SummaryIDLTE applies the LTE predicate on the "summary_id" field.
func SummaryIDLTE(v string) predicate.Summary {
	return predicate.Summary(sql.FieldLTE(FieldSummaryID, v))
}

// SummaryIDContains applies the Contains predicate on the "summary_id" field.
func SummaryIDContains(v string) predicate.Summary {
	return predicate.Summary(sql.FieldContains(FieldSummaryID, v))
}

// SummaryIDHasPrefix applies the HasPrefix predicate on the "summary_id" field.
func SummaryIDHasPrefix(v string) predicate.Summary {
	return predicate.Summary(sql.FieldHasPrefix(FieldSummaryID, v))
}

// SummaryIDHasSuffix applies the HasSuffix predicate on the "summary_id" field.
func SummaryIDHasSuffix(v string) predicate.Summary {
	return predicate.Summary(sql.FieldHasSuffix(FieldSummaryID, v))
}

// SummaryIDEqualFold applies the EqualFold predicate on the "summary_id" field.
func SummaryIDEqualFold(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEqualFold(FieldSummaryID, v))
}

// SummaryIDContainsFold applies the ContainsFold predicate on the "summary_id" field.
func SummaryIDContainsFold(v string) predicate.Summary {
	return predicate.Summary(sql.FieldContainsFold(FieldSummaryID, v))
}

// EventIDEQ applies the EQ predicate on the "event_id" field.
func EventIDEQ(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldEventID, v))
}

// EventIDNEQ applies the NEQ predicate on the "event_id" field.
func EventIDNEQ(v string) predicate.Summary {
	return predicate.Summary(sql.FieldNEQ(FieldEventID, v))
}

// EventIDIn applies the In predicate on the "event_id" field.
func EventIDIn(vs ...string) predicate.Summary {
	return predicate.Summary(sql.FieldIn(FieldEventID, vs...))
}

// EventIDNotIn applies the NotIn predicate on the "event_id" field.
func EventIDNotIn(vs ...string) predicate.Summary {
	return predicate.Summary(sql.FieldNotIn(FieldEventID, vs...))
}

// EventIDGT applies the GT predicate on the "event_id" field.
func EventIDGT(v string) predicate.Summary {
	return predicate.Summary(sql.FieldGT(FieldEventID, v))
}

// EventIDGTE applies the GTE predicate on the "event_id" field.
func EventIDGTE(v string) predicate.Summary {
	return predicate.Summary(sql.FieldGTE(FieldEventID, v))
}

// EventIDLT applies the LT predicate on the "event_id" field.
func EventIDLT(v string) predicate.Summary {
	return predicate.Summary(sql.FieldLT(FieldEventID, v))
}

// EventIDLTE applies the LTE predicate on the "event_id" field.
func EventIDLTE(v string) predicate.Summary {
	return predicate.Summary(sql.FieldLTE(FieldEventID, v))
}

// EventIDContains applies the Contains predicate on the "event_id" field.
func EventIDContains(v string) predicate.Summary {
	return predicate.Summary(sql.FieldContains(FieldEventID, v))
}

// EventIDHasPrefix applies the HasPrefix predicate on the "event_id" field.
func EventIDHasPrefix(v string) predicate.Summary {
	return predicate.Summary(sql.FieldHasPrefix(FieldEventID, v))
}

// EventIDHasSuffix applies the HasSuffix predicate on the "event_id" field.
func EventIDHasSuffix(v string) predicate.Summary {
	return predicate.Summary(sql.FieldHasSuffix(FieldEventID, v))
}

// EventIDEqualFold applies the EqualFold predicate on the "event_id" field.
func EventIDEqualFold(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEqualFold(FieldEventID, v))
}

// EventIDContainsFold applies the ContainsFold predicate on the "event_id" field.
func EventIDContainsFold(v string) predicate.Summary {
	return predicate.Summary(sql.FieldContainsFold(FieldEventID, v))
}

// RoundIDEQ applies the EQ predicate on the "round_id" field.
func RoundIDEQ(v int) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldRoundID, v))
}

// RoundIDNEQ applies the NEQ predicate on the "round_id" field.
func RoundIDNEQ(v int) predicate.Summary {
	return predicate.Summary(sql.FieldNEQ(FieldRoundID, v))
}

// RoundIDIn applies the In predicate on the "round_id" field.
func RoundIDIn(vs ...int) predicate.Summary {
	return predicate.Summary(sql.FieldIn(FieldRoundID, vs...))
}

// RoundIDNotIn applies the NotIn predicate on the "round_id" field.
func RoundIDNotIn(vs ...int) predicate.Summary {
	return predicate.Summary(sql.FieldNotIn(FieldRoundID, vs...))
}

// RoundIDGT applies the GT predicate on the "round_id" field.
func RoundIDGT(v int) predicate.Summary {
	return predicate.Summary(sql.FieldGT(FieldRoundID, v))
}

// RoundIDGTE applies the GTE predicate on the "round_id" field.
func RoundIDGTE(v int) predicate.Summary {
	return predicate.Summary(sql.FieldGTE(FieldRoundID, v))
}

// RoundIDLT applies the LT predicate on the "round_id" field.
func RoundIDLT(v int) predicate.Summary {
	return predicate.Summary(sql.FieldLT(FieldRoundID, v))
}

// RoundIDLTE applies the LTE predicate on the "round_id" field.
func RoundIDLTE(v int) predicate.Summary {
	return predicate.Summary(sql.FieldLTE(FieldRoundID, v))
}

// EventSummaryEQ applies the EQ predicate on the "event_summary" field.
func EventSummaryEQ(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldEventSummary, v))
}

// EventSummaryNEQ applies the NEQ predicate on the "event_summary" field.
func EventSummaryNEQ(v string) predicate.Summary {
	return predicate.Summary(sql.FieldNEQ(FieldEventSummary, v))
}

// EventSummaryIn applies the In predicate on the "event_summary" field.
func EventSummaryIn(vs ...string) predicate.Summary {
	return predicate.Summary(sql.FieldIn(FieldEventSummary, vs...))
}

// EventSummaryNotIn applies the NotIn predicate on the "event_summary" field.
func EventSummaryNotIn(vs ...string) predicate.Summary {
	return predicate.Summary(sql.FieldNotIn(FieldEventSummary, vs...))
}

// EventSummaryGT applies the GT predicate on the "event_summary" field.
func EventSummaryGT(v string) predicate.Summary {
	return predicate.Summary(sql.FieldGT(FieldEventSummary, v))
}

// EventSummaryGTE applies the GTE predicate on the "event_summary" field.
func EventSummaryGTE(v string) predicate.Summary {
	return predicate.Summary(sql.FieldGTE(FieldEventSummary, v))
}

// EventSummaryLT applies the LT predicate on the "event_summary" field.
func EventSummaryLT(v string) predicate.Summary {
	return predicate.Summary(sql.FieldLT(FieldEventSummary, v))
}

// EventSummaryLTE applies the LTE predicate on the "event_summary" field.
func EventSummaryLTE(v string) predicate.Summary {
	return predicate.Summary(sql.FieldLTE(FieldEventSummary, v))
}

// EventSummaryContains applies the Contains predicate on the "event_summary" field.
func EventSummaryContains(v string) predicate.Summary {
	return predicate.Summary(sql.FieldContains(FieldEventSummary, v))
}

// EventSummaryHasPrefix applies the HasPrefix predicate on the "event_summary" field.
func EventSummaryHasPrefix(v string) predicate.Summary {
	return predicate.Summary(sql.FieldHasPrefix(FieldEventSummary, v))
}

// EventSummaryHasSuffix applies the HasSuffix predicate on the "event_summary" field.
func EventSummaryHasSuffix(v string) predicate.Summary {
	return predicate.Summary(sql.FieldHasSuffix(FieldEventSummary, v))
}

// EventSummaryIsNil applies the IsNil predicate on the "event_summary" field.
func EventSummaryIsNil() predicate.Summary {
	return predicate.Summary(sql.FieldIsNull(FieldEventSummary))
}

// EventSummaryNotNil applies the NotNil predicate on the "event_summary" field.
func EventSummaryNotNil() predicate.Summary {
	return predicate.Summary(sql.FieldNotNull(FieldEventSummary))
}

// EventSummaryEqualFold applies the EqualFold predicate on the "event_summary" field.
func EventSummaryEqualFold(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEqualFold(FieldEventSummary, v))
}

// EventSummaryContainsFold applies the ContainsFold predicate on the "event_summary" field.
func EventSummaryContainsFold(v string) predicate.Summary {
	return predicate.Summary(sql.FieldContainsFold(FieldEventSummary, v))
}

// EventSuggestionEQ applies the EQ predicate on the "event_suggestion" field.
func EventSuggestionEQ(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldEventSuggestion, v))
}

// EventSuggestionNEQ applies the NEQ predicate on the "event_suggestion" field.
func EventSuggestionNEQ(v string) predicate.Summary {
	return predicate.Summary(sql.FieldNEQ(FieldEventSuggestion, v))
}

// EventSuggestionIn applies the In predicate on the "event_suggestion" field.
func EventSuggestionIn(vs ...string) predicate.Summary {
	return predicate.Summary(sql.FieldIn(FieldEventSuggestion, vs...))
}

// EventSuggestionNotIn applies the NotIn predicate on the "event_suggestion" field.
func EventSuggestionNotIn(vs ...string) predicate.Summary {
	return predicate.Summary(sql.FieldNotIn(FieldEventSuggestion, vs...))
}

// EventSuggestionGT applies the GT predicate on the "event_suggestion" field.
func EventSuggestionGT(v string) predicate.Summary {
	return predicate.Summary(sql.FieldGT(FieldEventSuggestion, v))
}

// EventSuggestionGTE applies the GTE predicate on the "event_suggestion" field.
func EventSuggestionGTE(v string) predicate.Summary {
	return predicate.Summary(sql.FieldGTE(FieldEventSuggestion, v))
}

// EventSuggestionLT applies the LT predicate on the "event_suggestion" field.
func EventSuggestionLT(v string) predicate.Summary {
	return predicate.Summary(sql.FieldLT(FieldEventSuggestion, v))
}

// EventSuggestionLTE applies the LTE predicate on the "event_suggestion" field.
func EventSuggestionLTE(v string) predicate.Summary {
	return predicate.Summary(sql.FieldLTE(FieldEventSuggestion, v))
}

// EventSuggestionContains applies the Contains predicate on the "event_suggestion" field.
func EventSuggestionContains(v string) predicate.Summary {
	return predicate.Summary(sql.FieldContains(FieldEventSuggestion, v))
}

// EventSuggestionHasPrefix applies the HasPrefix predicate on the "event_suggestion" field.
func EventSuggestionHasPrefix(v string) predicate.Summary {
	return predicate.Summary(sql.FieldHasPrefix(FieldEventSuggestion, v))
}

// EventSuggestionHasSuffix applies the HasSuffix predicate on the "event_suggestion" field.
func EventSuggestionHasSuffix(v string) predicate.Summary {
	return predicate.Summary(sql.FieldHasSuffix(FieldEventSuggestion, v))
}

// EventSuggestionIsNil applies the IsNil predicate on the "event_suggestion" field.
func EventSuggestionIsNil() predicate.Summary {
	return predicate.Summary(sql.FieldIsNull(FieldEventSuggestion))
}

// EventSuggestionNotNil applies the NotNil predicate on the "event_suggestion" field.
func EventSuggestionNotNil() predicate.Summary {
	return predicate.Summary(sql.FieldNotNull(FieldEventSuggestion))
}

// EventSuggestionEqualFold applies the EqualFold predicate on the "event_suggestion" field.
func EventSuggestionEqualFold(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEqualFold(FieldEventSuggestion, v))
}

// EventSuggestionContainsFold applies the ContainsFold predicate on the "event_suggestion" field.
func EventSuggestionContainsFold(v string) predicate.Summary {
	return predicate.Summary(sql.FieldContainsFold(FieldEventSuggestion, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Summary) predicate.Summary {
	return predicate.Summary(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Summary) predicate.Summary {
	return predicate.Summary(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Summary) predicate.Summary {
	return predicate.Summary(sql.NotPredicates(p))
}
