// Code generated by ent, DO NOT EDIT.

package execution

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/deepsoc/deepsoc/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Execution {
	return predicate.Execution(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Execution {
	return predicate.Execution(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Execution {
	return predicate.Execution(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Execution {
	return predicate.Execution(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Execution {
	return predicate.Execution(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Execution {
	return predicate.Execution(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Execution {
	return predicate.Execution(sql.FieldLTE(FieldID, id))
}

// ExecutionID applies equality check predicate on the "execution_id" field. It's identical to ExecutionIDEQ.
func ExecutionID(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldExecutionID, v))
}

// CommandID applies equality check predicate on the "command_id" field. It's identical to CommandIDEQ.
func CommandID(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldCommandID, v))
}

// ActionID applies equality check predicate on the "action_id" field. It's identical to ActionIDEQ.
func ActionID(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldActionID, v))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldTaskID, v))
}

// EventID applies equality check predicate on the "event_id" field. It's identical to EventIDEQ.
func EventID(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldEventID, v))
}

// RoundID applies equality check predicate on the "round_id" field. It's identical to RoundIDEQ.
func RoundID(v int) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldRoundID, v))
}

// ExecutionResult applies equality check predicate on the "execution_result" field. It's identical to ExecutionResultEQ.
func ExecutionResult(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldExecutionResult, v))
}

// AiSummary applies equality check predicate on the "ai_summary" field. It's identical to AiSummaryEQ.
func AiSummary(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldAiSummary, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldUpdatedAt, v))
}

// ExecutionIDEQ applies the EQ predicate on the "execution_id" field.
func ExecutionIDEQ(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldExecutionID, v))
}

// ExecutionIDNEQ applies the NEQ predicate on the "execution_id" field.
func ExecutionIDNEQ(v string) predicate.Execution {
	return predicate.Execution(sql.FieldNEQ(FieldExecutionID, v))
}

// ExecutionIDIn applies the In predicate on the "execution_id" field.
func ExecutionIDIn(vs ...string) predicate.Execution {
	return predicate.Execution(sql.FieldIn(FieldExecutionID, vs...))
}

// ExecutionIDNotIn applies the NotIn predicate on the "execution_id" field.
func ExecutionIDNotIn(vs ...string) predicate.Execution {
	return predicate.Execution(sql.FieldNotIn(FieldExecutionID, vs...))
}

// ExecutionIDGT applies the GT predicate on the "execution_id" field.
func ExecutionIDGT(v string) predicate.Execution {
	return predicate.Execution(sql.FieldGT(FieldExecutionID, v))
}

// ExecutionIDGTE applies the GTE predicate on the "execution_id" field.
func ExecutionIDGTE(v string) predicate.Execution {
	return predicate.Execution(sql.FieldGTE(FieldExecutionID, v))
}

// ExecutionIDLT applies the LT predicate on the "execution_id" field.
func ExecutionIDLT(v string) predicate.Execution {
	return predicate.Execution(sql.FieldLT(FieldExecutionID, v))
}

// ExecutionIDLTE applies the LTE predicate on the "execution_id" field.
func ExecutionIDLTE(v string) predicate.Execution {
	return predicate.Execution(sql.FieldLTE(FieldExecutionID, v))
}

// ExecutionIDContains applies the Contains predicate on the "execution_id" field.
func ExecutionIDContains(v string) predicate.Execution {
	return predicate.Execution(sql.FieldContains(FieldExecutionID, v))
}

// ExecutionIDHasPrefix applies the HasPrefix predicate on the "execution_id" field.
func ExecutionIDHasPrefix(v string) predicate.Execution {
	return predicate.Execution(sql.FieldHasPrefix(FieldExecutionID, v))
}

// ExecutionIDHasSuffix applies the HasSuffix predicate on the "execution_id" field.
func ExecutionIDHasSuffix(v string) predicate.Execution {
	return predicate.Execution(sql.FieldHasSuffix(FieldExecutionID, v))
}

// ExecutionIDEqualFold applies the EqualFold predicate on the "execution_id" field.
func ExecutionIDEqualFold(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEqualFold(FieldExecutionID, v))
}

// ExecutionIDContainsFold applies the ContainsFold predicate on the "execution_id" field.
func ExecutionIDContainsFold(v string) predicate.Execution {
	return predicate.Execution(sql.FieldContainsFold(FieldExecutionID, v))
}

// CommandIDEQ applies the EQ predicate on the "command_id" field.
func CommandIDEQ(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldCommandID, v))
}

// CommandIDNEQ applies the NEQ predicate on the "command_id" field.
func CommandIDNEQ(v string) predicate.Execution {
	return predicate.Execution(sql.FieldNEQ(FieldCommandID, v))
}

// CommandIDIn applies the In predicate on the "command_id" field.
func CommandIDIn(vs ...string) predicate.Execution {
	return predicate.Execution(sql.FieldIn(FieldCommandID, vs...))
}

// CommandIDNotIn applies the NotIn predicate on the "command_id" field.
func CommandIDNotIn(vs ...string) predicate.Execution {
	return predicate.Execution(sql.FieldNotIn(FieldCommandID, vs...))
}

// CommandIDGT applies the GT predicate on the "command_id" field.
func CommandIDGT(v string) predicate.Execution {
	return predicate.Execution(sql.FieldGT(FieldCommandID, v))
}

// CommandIDGTE applies the GTE predicate on the "command_id" field.
func CommandIDGTE(v string) predicate.Execution {
	return predicate.Execution(sql.FieldGTE(FieldCommandID, v))
}

// CommandIDLT applies the LT predicate on the "command_id" field.
func CommandIDLT(v string) predicate.Execution {
	return predicate.Execution(sql.FieldLT(FieldCommandID, v))
}

// CommandIDLTE applies the LTE predicate on the "command_id" field.
func CommandIDLTE(v string) predicate.Execution {
	return predicate.Execution(sql.FieldLTE(FieldCommandID, v))
}

// CommandIDContains applies the Contains predicate on the "command_id" field.
func CommandIDContains(v string) predicate.Execution {
	return predicate.Execution(sql.FieldContains(FieldCommandID, v))
}

// CommandIDHasPrefix applies the HasPrefix predicate on the "command_id" field.
func CommandIDHasPrefix(v string) predicate.Execution {
	return predicate.Execution(sql.FieldHasPrefix(FieldCommandID, v))
}

// CommandIDHasSuffix applies the HasSuffix predicate on the "command_id" field.
func CommandIDHasSuffix(v string) predicate.Execution {
	return predicate.Execution(sql.FieldHasSuffix(FieldCommandID, v))
}

// CommandIDEqualFold applies the EqualFold predicate on the "command_id" field.
func CommandIDEqualFold(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEqualFold(FieldCommandID, v))
}

// CommandIDContainsFold applies the ContainsFold predicate on the "command_id" field.
func CommandIDContainsFold(v string) predicate.Execution {
	return predicate.Execution(sql.FieldContainsFold(FieldCommandID, v))
}

// ActionIDEQ applies the EQ predicate on the "action_id" field.
func ActionIDEQ(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldActionID, v))
}

// ActionIDNEQ applies the NEQ predicate on the "action_id" field.
func ActionIDNEQ(v string) predicate.Execution {
	return predicate.Execution(sql.FieldNEQ(FieldActionID, v))
}

// ActionIDIn applies the In predicate on the "action_id" field.
func ActionIDIn(vs ...string) predicate.Execution {
	return predicate.Execution(sql.FieldIn(FieldActionID, vs...))
}

// ActionIDNotIn applies the NotIn predicate on the "action_id" field.
func ActionIDNotIn(vs ...string) predicate.Execution {
	return predicate.Execution(sql.FieldNotIn(FieldActionID, vs...))
}

// ActionIDGT applies the GT predicate on the "action_id" field.
func ActionIDGT(v string) predicate.Execution {
	return predicate.Execution(sql.FieldGT(FieldActionID, v))
}

// ActionIDGTE applies the GTE predicate on the "action_id" field.
func ActionIDGTE(v string) predicate.Execution {
	return predicate.Execution(sql.FieldGTE(FieldActionID, v))
}

// ActionIDLT applies the LT predicate on the "action_id" field.
func ActionIDLT(v string) predicate.Execution {
	return predicate.Execution(sql.FieldLT(FieldActionID, v))
}

// ActionIDLTE applies the LTE predicate on the "action_id" field.
func ActionIDLTE(v string) predicate.Execution {
	return predicate.Execution(sql.FieldLTE(FieldActionID, v))
}

// ActionIDContains applies the Contains predicate on the "action_id" field.
func ActionIDContains(v string) predicate.Execution {
	return predicate.Execution(sql.FieldContains(FieldActionID, v))
}

// ActionIDHasPrefix applies the HasPrefix predicate on the "action_id" field.
func ActionIDHasPrefix(v string) predicate.Execution {
	return predicate.Execution(sql.FieldHasPrefix(FieldActionID, v))
}

// ActionIDHasSuffix applies the HasSuffix predicate on the "action_id" field.
func ActionIDHasSuffix(v string) predicate.Execution {
	return predicate.Execution(sql.FieldHasSuffix(FieldActionID, v))
}

// ActionIDEqualFold applies the EqualFold predicate on the "action_id" field.
func ActionIDEqualFold(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEqualFold(FieldActionID, v))
}

// ActionIDContainsFold applies the ContainsFold predicate on the "action_id" field.
func ActionIDContainsFold(v string) predicate.Execution {
	return predicate.Execution(sql.FieldContainsFold(FieldActionID, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.Execution {
	return predicate.Execution(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.Execution {
	return predicate.Execution(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.Execution {
	return predicate.Execution(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.Execution {
	return predicate.Execution(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.Execution {
	return predicate.Execution(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.Execution {
	return predicate.Execution(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.Execution {
	return predicate.Execution(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.Execution {
	return predicate.Execution(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.Execution {
	return predicate.Execution(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.Execution {
	return predicate.Execution(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.Execution {
	return predicate.Execution(sql.FieldContainsFold(FieldTaskID, v))
}

// EventIDEQ applies the EQ predicate on the "event_id" field.
func EventIDEQ(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldEventID, v))
}

// EventIDNEQ applies the NEQ predicate on the "event_id" field.
func EventIDNEQ(v string) predicate.Execution {
	return predicate.Execution(sql.FieldNEQ(FieldEventID, v))
}

// EventIDIn applies the In predicate on the "event_id" field.
func EventIDIn(vs ...string) predicate.Execution {
	return predicate.Execution(sql.FieldIn(FieldEventID, vs...))
}

// EventIDNotIn applies the NotIn predicate on the "event_id" field.
func EventIDNotIn(vs ...string) predicate.Execution {
	return predicate.Execution(sql.FieldNotIn(FieldEventID, vs...))
}

// EventIDGT applies the GT predicate on the "event_id" field.
func EventIDGT(v string) predicate.Execution {
	return predicate.Execution(sql.FieldGT(FieldEventID, v))
}

// EventIDGTE applies the GTE predicate on the "event_id" field.
func EventIDGTE(v string) predicate.Execution {
	return predicate.Execution(sql.FieldGTE(FieldEventID, v))
}

// EventIDLT applies the LT predicate on the "event_id" field.
func EventIDLT(v string) predicate.Execution {
	return predicate.Execution(sql.FieldLT(FieldEventID, v))
}

// EventIDLTE applies the LTE predicate on the "event_id" field.
func EventIDLTE(v string) predicate.Execution {
	return predicate.Execution(sql.FieldLTE(FieldEventID, v))
}

// EventIDContains applies the Contains predicate on the "event_id" field.
func EventIDContains(v string) predicate.Execution {
	return predicate.Execution(sql.FieldContains(FieldEventID, v))
}

// EventIDHasPrefix applies the HasPrefix predicate on the "event_id" field.
func EventIDHasPrefix(v string) predicate.Execution {
	return predicate.Execution(sql.FieldHasPrefix(FieldEventID, v))
}

// EventIDHasSuffix applies the HasSuffix predicate on the "event_id" field.
func EventIDHasSuffix(v string) predicate.Execution {
	return predicate.Execution(sql.FieldHasSuffix(FieldEventID, v))
}

// EventIDEqualFold applies the EqualFold predicate on the "event_id" field.
func EventIDEqualFold(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEqualFold(FieldEventID, v))
}

// EventIDContainsFold applies the ContainsFold predicate on the "event_id" field.
func EventIDContainsFold(v string) predicate.Execution {
	return predicate.Execution(sql.FieldContainsFold(FieldEventID, v))
}

// RoundIDEQ applies the EQ predicate on the "round_id" field.
func RoundIDEQ(v int) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldRoundID, v))
}

// RoundIDNEQ applies the NEQ predicate on the "round_id" field.
func RoundIDNEQ(v int) predicate.Execution {
	return predicate.Execution(sql.FieldNEQ(FieldRoundID, v))
}

// RoundIDIn applies the In predicate on the "round_id" field.
func RoundIDIn(vs ...int) predicate.Execution {
	return predicate.Execution(sql.FieldIn(FieldRoundID, vs...))
}

// RoundIDNotIn applies the NotIn predicate on the "round_id" field.
func RoundIDNotIn(vs ...int) predicate.Execution {
	return predicate.Execution(sql.FieldNotIn(FieldRoundID, vs...))
}

// RoundIDGT applies the GT predicate on the "round_id" field.
func RoundIDGT(v int) predicate.Execution {
	return predicate.Execution(sql.FieldGT(FieldRoundID, v))
}

// RoundIDGTE applies the GTE predicate on the "round_id" field.
func RoundIDGTE(v int) predicate.Execution {
	return predicate.Execution(sql.FieldGTE(FieldRoundID, v))
}

// RoundIDLT applies the LT predicate on the "round_id" field.
func RoundIDLT(v int) predicate.Execution {
	return predicate.Execution(sql.FieldLT(FieldRoundID, v))
}

// RoundIDLTE applies the LTE predicate on the "round_id" field.
func RoundIDLTE(v int) predicate.Execution {
	return predicate.Execution(sql.FieldLTE(FieldRoundID, v))
}

// ExecutionResultEQ applies the EQ predicate on the "execution_result" field.
func ExecutionResultEQ(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldExecutionResult, v))
}

// ExecutionResultNEQ applies the NEQ predicate on the "execution_result" field.
func ExecutionResultNEQ(v string) predicate.Execution {
	return predicate.Execution(sql.FieldNEQ(FieldExecutionResult, v))
}

// ExecutionResultIn applies the In predicate on the "execution_result" field.
func ExecutionResultIn(vs ...string) predicate.Execution {
	return predicate.Execution(sql.FieldIn(FieldExecutionResult, vs...))
}

// ExecutionResultNotIn applies the NotIn predicate on the "execution_result" field.
func ExecutionResultNotIn(vs ...string) predicate.Execution {
	return predicate.Execution(sql.FieldNotIn(FieldExecutionResult, vs...))
}

// ExecutionResultGT applies the GT predicate on the "execution_result" field.
func ExecutionResultGT(v string) predicate.Execution {
	return predicate.Execution(sql.FieldGT(FieldExecutionResult, v))
}

// ExecutionResultGTE applies the GTE predicate on the "execution_result" field.
func ExecutionResultGTE(v string) predicate.Execution {
	return predicate.Execution(sql.FieldGTE(FieldExecutionResult, v))
}

// ExecutionResultLT applies the LT predicate on the "execution_result" field.
func ExecutionResultLT(v string) predicate.Execution {
	return predicate.Execution(sql.FieldLT(FieldExecutionResult, v))
}

// ExecutionResultLTE applies the LTE predicate on the "execution_result" field.
func ExecutionResultLTE(v string) predicate.Execution {
	return predicate.Execution(sql.FieldLTE(FieldExecutionResult, v))
}

// ExecutionResultContains applies the Contains predicate on the "execution_result" field.
func ExecutionResultContains(v string) predicate.Execution {
	return predicate.Execution(sql.FieldContains(FieldExecutionResult, v))
}

// ExecutionResultHasPrefix applies the HasPrefix predicate on the "execution_result" field.
func ExecutionResultHasPrefix(v string) predicate.Execution {
	return predicate.Execution(sql.FieldHasPrefix(FieldExecutionResult, v))
}

// ExecutionResultHasSuffix applies the HasSuffix predicate on the "execution_result" field.
func ExecutionResultHasSuffix(v string) predicate.Execution {
	return predicate.Execution(sql.FieldHasSuffix(FieldExecutionResult, v))
}

// ExecutionResultIsNil applies the IsNil predicate on the "execution_result" field.
func ExecutionResultIsNil() predicate.Execution {
	return predicate.Execution(sql.FieldIsNull(FieldExecutionResult))
}

// ExecutionResultNotNil applies the NotNil predicate on the "execution_result" field.
func ExecutionResultNotNil() predicate.Execution {
	return predicate.Execution(sql.FieldNotNull(FieldExecutionResult))
}

// ExecutionResultEqualFold applies the EqualFold predicate on the "execution_result" field.
func ExecutionResultEqualFold(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEqualFold(FieldExecutionResult, v))
}

// ExecutionResultContainsFold applies the ContainsFold predicate on the "execution_result" field.
func ExecutionResultContainsFold(v string) predicate.Execution {
	return predicate.Execution(sql.FieldContainsFold(FieldExecutionResult, v))
}

// AiSummaryEQ applies the EQ predicate on the "ai_summary" field.
func AiSummaryEQ(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldAiSummary, v))
}

// AiSummaryNEQ applies the NEQ predicate on the "ai_summary" field.
func AiSummaryNEQ(v string) predicate.Execution {
	return predicate.Execution(sql.FieldNEQ(FieldAiSummary, v))
}

// AiSummaryIn applies the In predicate on the "ai_summary" field.
func AiSummaryIn(vs ...string) predicate.Execution {
	return predicate.Execution(sql.FieldIn(FieldAiSummary, vs...))
}

// AiSummaryNotIn applies the NotIn predicate on the "ai_summary" field.
func AiSummaryNotIn(vs ...string) predicate.Execution {
	return predicate.Execution(sql.FieldNotIn(FieldAiSummary, vs...))
}

// AiSummaryGT applies the GT predicate on the "ai_summary" field.
func AiSummaryGT(v string) predicate.Execution {
	return predicate.Execution(sql.FieldGT(FieldAiSummary, v))
}

// AiSummaryGTE applies the GTE predicate on the "ai_summary" field.
func AiSummaryGTE(v string) predicate.Execution {
	return predicate.Execution(sql.FieldGTE(FieldAiSummary, v))
}

// AiSummaryLT applies the LT predicate on the "ai_summary" field.
func AiSummaryLT(v string) predicate.Execution {
	return predicate.Execution(sql.FieldLT(FieldAiSummary, v))
}

// AiSummaryLTE applies the LTE predicate on the "ai_summary" field.
func AiSummaryLTE(v string) predicate.Execution {
	return predicate.Execution(sql.FieldLTE(FieldAiSummary, v))
}

// AiSummaryContains applies the Contains predicate on the "ai_summary" field.
func AiSummaryContains(v string) predicate.Execution {
	return predicate.Execution(sql.FieldContains(FieldAiSummary, v))
}

// AiSummaryHasPrefix applies the HasPrefix predicate on the "ai_summary" field.
func AiSummaryHasPrefix(v string) predicate.Execution {
	return predicate.Execution(sql.FieldHasPrefix(FieldAiSummary, v))
}

// AiSummaryHasSuffix applies the HasSuffix predicate on the "ai_summary" field.
func AiSummaryHasSuffix(v string) predicate.Execution {
	return predicate.Execution(sql.FieldHasSuffix(FieldAiSummary, v))
}

// AiSummaryIsNil applies the IsNil predicate on the "ai_summary" field.
func AiSummaryIsNil() predicate.Execution {
	return predicate.Execution(sql.FieldIsNull(FieldAiSummary))
}

// AiSummaryNotNil applies the NotNil predicate on the "ai_summary" field.
func AiSummaryNotNil() predicate.Execution {
	return predicate.Execution(sql.FieldNotNull(FieldAiSummary))
}

// AiSummaryEqualFold applies the EqualFold predicate on the "ai_summary" field.
func AiSummaryEqualFold(v string) predicate.Execution {
	return predicate.Execution(sql.FieldEqualFold(FieldAiSummary, v))
}

// AiSummaryContainsFold applies the ContainsFold predicate on the "ai_summary" field.
func AiSummaryContainsFold(v string) predicate.Execution {
	return predicate.Execution(sql.FieldContainsFold(FieldAiSummary, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Execution {
	return predicate.Execution(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Execution {
	return predicate.Execution(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Execution {
	return predicate.Execution(sql.FieldNotIn(FieldStatus, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Execution {
	return predicate.Execution(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Execution) predicate.Execution {
	return predicate.Execution(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Execution) predicate.Execution {
	return predicate.Execution(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Execution) predicate.Execution {
	return predicate.Execution(sql.NotPredicates(p))
}
