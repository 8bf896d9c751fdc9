// Code generated by ent, DO NOT EDIT.

package llmrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/deepsoc/deepsoc/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldLTE(FieldID, id))
}

// RequestID applies equality check predicate on the "request_id" field. It's identical to RequestIDEQ.
func RequestID(v string) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldEQ(FieldRequestID, v))
}

// ModelName applies equality check predicate on the "model_name" field. It's identical to ModelNameEQ.
func ModelName(v string) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldEQ(FieldModelName, v))
}

// ResponseContent applies equality check predicate on the "response_content" field. It's identical to ResponseContentEQ.
func ResponseContent(v string) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldEQ(FieldResponseContent, v))
}

// PromptTokens applies equality check predicate on the "prompt_tokens" field. It's identical to PromptTokensEQ.
func PromptTokens(v int) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldEQ(FieldPromptTokens, v))
}

// CompletionTokens applies equality check predicate on the "completion_tokens" field. It's identical to CompletionTokensEQ.
func CompletionTokens(v int) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldEQ(FieldCompletionTokens, v))
}

// TotalTokens applies equality check predicate on the "total_tokens" field. It's identical to TotalTokensEQ.
func TotalTokens(v int) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldEQ(FieldTotalTokens, v))
}

// CachedTokens applies equality check predicate on the "cached_tokens" field. It's identical to CachedTokensEQ.
func CachedTokens(v int) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldEQ(FieldCachedTokens, v))
}

// EventID applies equality check predicate on the "event_id" field. It's identical to EventIDEQ.
func EventID(v string) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldEQ(FieldEventID, v))
}

// RoundID applies equality check predicate on the "round_id" field. It's identical to RoundIDEQ.
func RoundID(v int) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldEQ(FieldRoundID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// RequestIDEQ applies the EQ predicate on the "request_id" field.
func RequestIDEQ(v string) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldEQ(FieldRequestID, v))
}

// RequestIDNEQ applies the NEQ predicate on the "request_id" field.
func RequestIDNEQ(v string) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldNEQ(FieldRequestID, v))
}

// RequestIDIn applies the In predicate on the "request_id" field.
func RequestIDIn(vs ...string) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldIn(FieldRequestID, vs...))
}

// RequestIDNotIn applies the NotIn predicate on the "request_id" field.
func RequestIDNotIn(vs ...string) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldNotIn(FieldRequestID, vs...))
}

// RequestIDGT applies the GT predicate on the "request_id" field.
func RequestIDGT(v string) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldGT(FieldRequestID, v))
}

// RequestIDGTE applies the GTE predicate on the "request_id" field.
func RequestIDGTE(v string) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldGTE(FieldRequestID, v))
}

// RequestIDLT applies the LT predicate on the "request_id" field.
func RequestIDLT(v string) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldLT(FieldRequestID, v))
}

// RequestIDLTE applies the LTE predicate on the "request_id" field.
func RequestIDLTE(v string) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldLTE(FieldRequestID, v))
}

// RequestIDContains applies the Contains predicate on the "request_id" field.
func RequestIDContains(v string) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldContains(FieldRequestID, v))
}

// RequestIDHasPrefix applies the HasPrefix predicate on the "request_id" field.
func RequestIDHasPrefix(v string) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldHasPrefix(FieldRequestID, v))
}

// RequestIDHasSuffix applies the HasSuffix predicate on the "request_id" field.
func RequestIDHasSuffix(v string) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldHasSuffix(FieldRequestID, v))
}

// RequestIDIsNil applies the IsNil predicate on the "request_id" field.
func RequestIDIsNil() predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldIsNull(FieldRequestID))
}

// RequestIDNotNil applies the NotNil predicate on the "request_id" field.
func RequestIDNotNil() predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldNotNull(FieldRequestID))
}

// RequestIDEqualFold applies the EqualFold predicate on the "request_id" field.
func RequestIDEqualFold(v string) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldEqualFold(FieldRequestID, v))
}

// RequestIDContainsFold applies the ContainsFold predicate on the "request_id" field.
func RequestIDContainsFold(v string) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldContainsFold(FieldRequestID, v))
}

// ModelNameEQ applies the EQ predicate on the "model_name" field.
func ModelNameEQ(v string) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldEQ(FieldModelName, v))
}

// ModelNameNEQ applies the NEQ predicate on the "model_name" field.
func ModelNameNEQ(v string) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldNEQ(FieldModelName, v))
}

// ModelNameIn applies the In predicate on the "model_name" field.
func ModelNameIn(vs ...string) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldIn(FieldModelName, vs...))
}

// ModelNameNotIn applies the NotIn predicate on the "model_name" field.
func ModelNameNotIn(vs ...string) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldNotIn(FieldModelName, vs...))
}

// ModelNameGT applies the GT predicate on the "model_name" field.
func ModelNameGT(v string) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldGT(FieldModelName, v))
}

// ModelNameGTE applies the GTE predicate on the "model_name" field.
func ModelNameGTE(v string) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldGTE(FieldModelName, v))
}

// ModelNameLT applies the LT predicate on the "model_name" field.
func ModelNameLT(v string) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldLT(FieldModelName, v))
}

// ModelNameLTE applies the LTE predicate on the "model_name" field.
func ModelNameLTE(v string) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldLTE(FieldModelName, v))
}

// ModelNameContains applies the Contains predicate on the "model_name" field.
func ModelNameContains(v string) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldContains(FieldModelName, v))
}

// ModelNameHasPrefix applies the HasPrefix predicate on the "model_name" field.
func ModelNameHasPrefix(v string) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldHasPrefix(FieldModelName, v))
}

// ModelNameHasSuffix applies the HasSuffix predicate on the "model_name" field.
func ModelNameHasSuffix(v string) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldHasSuffix(FieldModelName, v))
}

// ModelNameEqualFold applies the EqualFold predicate on the "model_name" field.
func ModelNameEqualFold(v string) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldEqualFold(FieldModelName, v))
}

// ModelNameContainsFold applies the ContainsFold predicate on the "model_name" field.
func ModelNameContainsFold(v string) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldContainsFold(FieldModelName, v))
}

// ResponseContentEQ applies the EQ predicate on the "response_content" field.
func ResponseContentEQ(v string) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldEQ(FieldResponseContent, v))
}

// ResponseContentNEQ applies the NEQ predicate on the "response_content" field.
func ResponseContentNEQ(v string) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldNEQ(FieldResponseContent, v))
}

// ResponseContentIn applies the In predicate on the "response_content" field.
func ResponseContentIn(vs ...string) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldIn(FieldResponseContent, vs...))
}

// ResponseContentNotIn applies the NotIn predicate on the "response_content" field.
func ResponseContentNotIn(vs ...string) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldNotIn(FieldResponseContent, vs...))
}

// ResponseContentGT applies the GT predicate on the "response_content" field.
func ResponseContentGT(v string) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldGT(FieldResponseContent, v))
}

// ResponseContentGTE applies the GTE predicate on the "response_content" field.
func ResponseContentGTE(v string) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldGTE(FieldResponseContent, v))
}

// ResponseContentLT applies the LT predicate on the "response_content" field.
func ResponseContentLT(v string) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldLT(FieldResponseContent, v))
}

// ResponseContentLTE applies the LTE predicate on the "response_content" field.
func ResponseContentLTE(v string) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldLTE(FieldResponseContent, v))
}

// ResponseContentContains applies the Contains predicate on the "response_content" field.
func ResponseContentContains(v string) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldContains(FieldResponseContent, v))
}

// ResponseContentHasPrefix applies the HasPrefix predicate on the "response_content" field.
func ResponseContentHasPrefix(v string) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldHasPrefix(FieldResponseContent, v))
}

// ResponseContentHasSuffix applies the HasSuffix predicate on the "response_content" field.
func ResponseContentHasSuffix(v string) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldHasSuffix(FieldResponseContent, v))
}

// ResponseContentIsNil applies the IsNil predicate on the "response_content" field.
func ResponseContentIsNil() predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldIsNull(FieldResponseContent))
}

// ResponseContentNotNil applies the NotNil predicate on the "response_content" field.
func ResponseContentNotNil() predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldNotNull(FieldResponseContent))
}

// ResponseContentEqualFold applies the EqualFold predicate on the "response_content" field.
func ResponseContentEqualFold(v string) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldEqualFold(FieldResponseContent, v))
}

// ResponseContentContainsFold applies the ContainsFold predicate on the "response_content" field.
func ResponseContentContainsFold(v string) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldContainsFold(FieldResponseContent, v))
}

// ResponseFullIsNil applies the IsNil predicate on the "response_full" field.
func ResponseFullIsNil() predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldIsNull(FieldResponseFull))
}

// ResponseFullNotNil applies the NotNil predicate on the "response_full" field.
func ResponseFullNotNil() predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldNotNull(FieldResponseFull))
}

// PromptTokensEQ applies the EQ predicate on the "prompt_tokens" field.
func PromptTokensEQ(v int) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldEQ(FieldPromptTokens, v))
}

// PromptTokensNEQ applies the NEQ predicate on the "prompt_tokens" field.
func PromptTokensNEQ(v int) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldNEQ(FieldPromptTokens, v))
}

// PromptTokensIn applies the In predicate on the "prompt_tokens" field.
func PromptTokensIn(vs ...int) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldIn(FieldPromptTokens, vs...))
}

// PromptTokensNotIn applies the NotIn predicate on the "prompt_tokens" field.
func PromptTokensNotIn(vs ...int) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldNotIn(FieldPromptTokens, vs...))
}

// PromptTokensGT applies the GT predicate on the "prompt_tokens" field.
func PromptTokensGT(v int) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldGT(FieldPromptTokens, v))
}

// PromptTokensGTE applies the GTE predicate on the "prompt_tokens" field.
func PromptTokensGTE(v int) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldGTE(FieldPromptTokens, v))
}

// PromptTokensLT applies the LT predicate on the "prompt_tokens" field.
func PromptTokensLT(v int) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldLT(FieldPromptTokens, v))
}

// PromptTokensLTE applies the LTE predicate on the "prompt_tokens" field.
func PromptTokensLTE(v int) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldLTE(FieldPromptTokens, v))
}

// PromptTokensIsNil applies the IsNil predicate on the "prompt_tokens" field.
func PromptTokensIsNil() predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldIsNull(FieldPromptTokens))
}

// PromptTokensNotNil applies the NotNil predicate on the "prompt_tokens" field.
func PromptTokensNotNil() predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldNotNull(FieldPromptTokens))
}

// CompletionTokensEQ applies the EQ predicate on the "completion_tokens" field.
func CompletionTokensEQ(v int) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldEQ(FieldCompletionTokens, v))
}

// CompletionTokensNEQ applies the NEQ predicate on the "completion_tokens" field.
func CompletionTokensNEQ(v int) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldNEQ(FieldCompletionTokens, v))
}

// CompletionTokensIn applies the In predicate on the "completion_tokens" field.
func CompletionTokensIn(vs ...int) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldIn(FieldCompletionTokens, vs...))
}

// CompletionTokensNotIn applies the NotIn predicate on the "completion_tokens" field.
func CompletionTokensNotIn(vs ...int) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldNotIn(FieldCompletionTokens, vs...))
}

// CompletionTokensGT applies the GT predicate on the "completion_tokens" field.
func CompletionTokensGT(v int) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldGT(FieldCompletionTokens, v))
}

// CompletionTokensGTE applies the GTE predicate on the "completion_tokens" field.
func CompletionTokensGTE(v int) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldGTE(FieldCompletionTokens, v))
}

// CompletionTokensLT applies the LT predicate on the "completion_tokens" field.
func CompletionTokensLT(v int) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldLT(FieldCompletionTokens, v))
}

// CompletionTokensLTE applies the LTE predicate on the "completion_tokens" field.
func CompletionTokensLTE(v int) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldLTE(FieldCompletionTokens, v))
}

// CompletionTokensIsNil applies the IsNil predicate on the "completion_tokens" field.
func CompletionTokensIsNil() predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldIsNull(FieldCompletionTokens))
}

// CompletionTokensNotNil applies the NotNil predicate on the "completion_tokens" field.
func CompletionTokensNotNil() predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldNotNull(FieldCompletionTokens))
}

// TotalTokensEQ applies the EQ predicate on the "total_tokens" field.
func TotalTokensEQ(v int) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldEQ(FieldTotalTokens, v))
}

// TotalTokensNEQ applies the NEQ predicate on the "total_tokens" field.
func TotalTokensNEQ(v int) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldNEQ(FieldTotalTokens, v))
}

// TotalTokensIn applies the In predicate on the "total_tokens" field.
func TotalTokensIn(vs ...int) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldIn(FieldTotalTokens, vs...))
}

// TotalTokensNotIn applies the NotIn predicate on the "total_tokens" field.
func TotalTokensNotIn(vs ...int) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldNotIn(FieldTotalTokens, vs...))
}

// TotalTokensGT applies the GT predicate on the "total_tokens" field.
func TotalTokensGT(v int) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldGT(FieldTotalTokens, v))
}

// TotalTokensGTE applies the GTE predicate on the "total_tokens" field.
func TotalTokensGTE(v int) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldGTE(FieldTotalTokens, v))
}

// TotalTokensLT applies the LT predicate on the "total_tokens" field.
func TotalTokensLT(v int) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldLT(FieldTotalTokens, v))
}

// TotalTokensLTE applies the LTE predicate on the "total_tokens" field.
func TotalTokensLTE(v int) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldLTE(FieldTotalTokens, v))
}

// TotalTokensIsNil applies the IsNil predicate on the "total_tokens" field.
func TotalTokensIsNil() predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldIsNull(FieldTotalTokens))
}

// TotalTokensNotNil applies the NotNil predicate on the "total_tokens" field.
func TotalTokensNotNil() predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldNotNull(FieldTotalTokens))
}

// CachedTokensEQ applies the EQ predicate on the "cached_tokens" field.
func CachedTokensEQ(v int) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldEQ(FieldCachedTokens, v))
}

// CachedTokensNEQ applies the NEQ predicate on the "cached_tokens" field.
func CachedTokensNEQ(v int) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldNEQ(FieldCachedTokens, v))
}

// CachedTokensIn applies the In predicate on the "cached_tokens" field.
func CachedTokensIn(vs ...int) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldIn(FieldCachedTokens, vs...))
}

// CachedTokensNotIn applies the NotIn predicate on the "cached_tokens" field.
func CachedTokensNotIn(vs ...int) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldNotIn(FieldCachedTokens, vs...))
}

// CachedTokensGT applies the GT predicate on the "cached_tokens" field.
func CachedTokensGT(v int) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldGT(FieldCachedTokens, v))
}

// CachedTokensGTE applies the GTE predicate on the "cached_tokens" field.
func CachedTokensGTE(v int) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldGTE(FieldCachedTokens, v))
}

// CachedTokensLT applies the LT predicate on the "cached_tokens" field.
func CachedTokensLT(v int) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldLT(FieldCachedTokens, v))
}

// CachedTokensLTE applies the LTE predicate on the "cached_tokens" field.
func CachedTokensLTE(v int) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldLTE(FieldCachedTokens, v))
}

// CachedTokensIsNil applies the IsNil predicate on the "cached_tokens" field.
func CachedTokensIsNil() predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldIsNull(FieldCachedTokens))
}

// CachedTokensNotNil applies the NotNil predicate on the "cached_tokens" field.
func CachedTokensNotNil() predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldNotNull(FieldCachedTokens))
}

// EventIDEQ applies the EQ predicate on the "event_id" field.
func EventIDEQ(v string) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldEQ(FieldEventID, v))
}

// EventIDNEQ applies the NEQ predicate on the "event_id" field.
func EventIDNEQ(v string) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldNEQ(FieldEventID, v))
}

// EventIDIn applies the In predicate on the "event_id" field.
func EventIDIn(vs ...string) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldIn(FieldEventID, vs...))
}

// EventIDNotIn applies the NotIn predicate on the "event_id" field.
func EventIDNotIn(vs ...string) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldNotIn(FieldEventID, vs...))
}

// EventIDGT applies the GT predicate on the "event_id" field.
func EventIDGT(v string) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldGT(FieldEventID, v))
}

// EventIDGTE applies the GTE predicate on the "event_id" field.
func EventIDGTE(v string) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldGTE(FieldEventID, v))
}

// EventIDLT applies the LT predicate on the "event_id" field.
func EventIDLT(v string) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldLT(FieldEventID, v))
}

// EventIDLTE applies the LTE predicate on the "event_id" field.
func EventIDLTE(v string) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldLTE(FieldEventID, v))
}

// EventIDContains applies the Contains predicate on the "event_id" field.
func EventIDContains(v string) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldContains(FieldEventID, v))
}

// EventIDHasPrefix applies the HasPrefix predicate on the "event_id" field.
func EventIDHasPrefix(v string) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldHasPrefix(FieldEventID, v))
}

// EventIDHasSuffix applies the HasSuffix predicate on the "event_id" field.
func EventIDHasSuffix(v string) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldHasSuffix(FieldEventID, v))
}

// EventIDIsNil applies the IsNil predicate on the "event_id" field.
func EventIDIsNil() predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldIsNull(FieldEventID))
}

// EventIDNotNil applies the NotNil predicate on the "event_id" field.
func EventIDNotNil() predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldNotNull(FieldEventID))
}

// EventIDEqualFold applies the EqualFold predicate on the "event_id" field.
func EventIDEqualFold(v string) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldEqualFold(FieldEventID, v))
}

// EventIDContainsFold applies the ContainsFold predicate on the "event_id" field.
func EventIDContainsFold(v string) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldContainsFold(FieldEventID, v))
}

// RoundIDEQ applies the EQ predicate on the "round_id" field.
func RoundIDEQ(v int) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldEQ(FieldRoundID, v))
}

// RoundIDNEQ applies the NEQ predicate on the "round_id" field.
func RoundIDNEQ(v int) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldNEQ(FieldRoundID, v))
}

// RoundIDIn applies the In predicate on the "round_id" field.
func RoundIDIn(vs ...int) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldIn(FieldRoundID, vs...))
}

// RoundIDNotIn applies the NotIn predicate on the "round_id" field.
func RoundIDNotIn(vs ...int) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldNotIn(FieldRoundID, vs...))
}

// RoundIDGT applies the GT predicate on the "round_id" field.
func RoundIDGT(v int) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldGT(FieldRoundID, v))
}

// RoundIDGTE applies the GTE predicate on the "round_id" field.
func RoundIDGTE(v int) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldGTE(FieldRoundID, v))
}

// RoundIDLT applies the LT predicate on the "round_id" field.
func RoundIDLT(v int) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldLT(FieldRoundID, v))
}

// RoundIDLTE applies the LTE predicate on the "round_id" field.
func RoundIDLTE(v int) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldLTE(FieldRoundID, v))
}

// RoundIDIsNil applies the IsNil predicate on the "round_id" field.
func RoundIDIsNil() predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldIsNull(FieldRoundID))
}

// RoundIDNotNil applies the NotNil predicate on the "round_id" field.
func RoundIDNotNil() predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldNotNull(FieldRoundID))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.LLMRecord {
	return predicate.LLMRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LLMRecord) predicate.LLMRecord {
	return predicate.LLMRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LLMRecord) predicate.LLMRecord {
	return predicate.LLMRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LLMRecord) predicate.LLMRecord {
	return predicate.LLMRecord(sql.NotPredicates(p))
}
