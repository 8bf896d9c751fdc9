// Code generated by ent, DO NOT EDIT.

package command

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/deepsoc/deepsoc/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Command {
	return predicate.Command(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Command {
	return predicate.Command(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Command {
	return predicate.Command(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Command {
	return predicate.Command(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Command {
	return predicate.Command(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Command {
	return predicate.Command(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Command {
	return predicate.Command(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Command {
	return predicate.Command(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Command {
	return predicate.Command(sql.FieldLTE(FieldID, id))
}

// CommandID applies equality check predicate on the "command_id" field. It's identical to CommandIDEQ.
func CommandID(v string) predicate.Command {
	return predicate.Command(sql.FieldEQ(FieldCommandID, v))
}

// ActionID applies equality check predicate on the "action_id" field. It's identical to ActionIDEQ.
func ActionID(v string) predicate.Command {
	return predicate.Command(sql.FieldEQ(FieldActionID, v))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.Command {
	return predicate.Command(sql.FieldEQ(FieldTaskID, v))
}

// EventID applies equality check predicate on the "event_id" field. It's identical to EventIDEQ.
func EventID(v string) predicate.Command {
	return predicate.Command(sql.FieldEQ(FieldEventID, v))
}

// RoundID applies equality check predicate on the "round_id" field. It's identical to RoundIDEQ.
func RoundID(v int) predicate.Command {
	return predicate.Command(sql.FieldEQ(FieldRoundID, v))
}

// CommandName applies equality check predicate on the "command_name" field. It's identical to CommandNameEQ.
func CommandName(v string) predicate.Command {
	return predicate.Command(sql.FieldEQ(FieldCommandName, v))
}

// CommandAssignee applies equality check predicate on the "command_assignee" field. It's identical to CommandAssigneeEQ.
func CommandAssignee(v string) predicate.Command {
	return predicate.Command(sql.FieldEQ(FieldCommandAssignee, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Command {
	return predicate.Command(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Command {
	return predicate.Command(sql.FieldEQ(FieldUpdatedAt, v))
}

// CommandIDEQ applies the EQ predicate on the "command_id" field.
func CommandIDEQ(v string) predicate.Command {
	return predicate.Command(sql.FieldEQ(FieldCommandID, v))
}

// CommandIDNEQ applies the NEQ predicate on the "command_id" field.
func CommandIDNEQ(v string) predicate.Command {
	return predicate.Command(sql.FieldNEQ(FieldCommandID, v))
}

// CommandIDIn applies the In predicate on the "command_id" field.
func CommandIDIn(vs ...string) predicate.Command {
	return predicate.Command(sql.FieldIn(FieldCommandID, vs...))
}

// CommandIDNotIn applies the NotIn predicate on the "command_id" field.
func CommandIDNotIn(vs ...string) predicate.Command {
	return predicate.Command(sql.FieldNotIn(FieldCommandID, vs...))
}

// CommandIDGT applies the GT predicate on the "command_id" field.
func CommandIDGT(v string) predicate.Command {
	return predicate.Command(sql.FieldGT(FieldCommandID, v))
}

// CommandIDGTE applies the GTE predicate on the "command_id" field.
func CommandIDGTE(v string) predicate.Command {
	return predicate.Command(sql.FieldGTE(FieldCommandID, v))
}

// CommandIDLT applies the LT predicate on the "command_id" field.
func CommandIDLT(v string) predicate.Command {
	return predicate.Command(sql.FieldLT(FieldCommandID, v))
}

// CommandIDLTE applies the LTE predicate on the "command_id" field.
func CommandIDLTE(v string) predicate.Command {
	return predicate.Command(sql.FieldLTE(FieldCommandID, v))
}

// CommandIDContains applies the Contains predicate on the "command_id" field.
func CommandIDContains(v string) predicate.Command {
	return predicate.Command(sql.FieldContains(FieldCommandID, v))
}

// CommandIDHasPrefix applies the HasPrefix predicate on the "command_id" field.
func CommandIDHasPrefix(v string) predicate.Command {
	return predicate.Command(sql.FieldHasPrefix(FieldCommandID, v))
}

// CommandIDHasSuffix applies the HasSuffix predicate on the "command_id" field.
func CommandIDHasSuffix(v string) predicate.Command {
	return predicate.Command(sql.FieldHasSuffix(FieldCommandID, v))
}

// CommandIDEqualFold applies the EqualFold predicate on the "command_id" field.
func CommandIDEqualFold(v string) predicate.Command {
	return predicate.Command(sql.FieldEqualFold(FieldCommandID, v))
}

// CommandIDContainsFold applies the ContainsFold predicate on the "command_id" field.
func CommandIDContainsFold(v string) predicate.Command {
	return predicate.Command(sql.FieldContainsFold(FieldCommandID, v))
}

// ActionIDEQ applies the EQ predicate on the "action_id" field.
func ActionIDEQ(v string) predicate.Command {
	return predicate.Command(sql.FieldEQ(FieldActionID, v))
}

// ActionIDNEQ applies the NEQ predicate on the "action_id" field.
func ActionIDNEQ(v string) predicate.Command {
	return predicate.Command(sql.FieldNEQ(FieldActionID, v))
}

// ActionIDIn applies the In predicate on the "action_id" field.
func ActionIDIn(vs ...string) predicate.Command {
	return predicate.Command(sql.FieldIn(FieldActionID, vs...))
}

// ActionIDNotIn applies the NotIn predicate on the "action_id" field.
func ActionIDNotIn(vs ...string) predicate.Command {
	return predicate.Command(sql.FieldNotIn(FieldActionID, vs...))
}

// ActionIDGT applies the GT predicate on the "action_id" field.
func ActionIDGT(v string) predicate.Command {
	return predicate.Command(sql.FieldGT(FieldActionID, v))
}

// ActionIDGTE applies the GTE predicate on the "action_id" field.
func ActionIDGTE(v string) predicate.Command {
	return predicate.Command(sql.FieldGTE(FieldActionID, v))
}

// ActionIDLT applies the LT predicate on the "action_id" field.
func ActionIDLT(v string) predicate.Command {
	return predicate.Command(sql.FieldLT(FieldActionID, v))
}

// ActionIDLTE applies the LTE predicate on the "action_id" field.
func ActionIDLTE(v string) predicate.Command {
	return predicate.Command(sql.FieldLTE(FieldActionID, v))
}

// ActionIDContains applies the Contains predicate on the "action_id" field.
func ActionIDContains(v string) predicate.Command {
	return predicate.Command(sql.FieldContains(FieldActionID, v))
}

// ActionIDHasPrefix applies the HasPrefix predicate on the "action_id" field.
func ActionIDHasPrefix(v string) predicate.Command {
	return predicate.Command(sql.FieldHasPrefix(FieldActionID, v))
}

// ActionIDHasSuffix applies the HasSuffix predicate on the "action_id" field.
func ActionIDHasSuffix(v string) predicate.Command {
	return predicate.Command(sql.FieldHasSuffix(FieldActionID, v))
}

// ActionIDEqualFold applies the EqualFold predicate on the "action_id" field.
func ActionIDEqualFold(v string) predicate.Command {
	return predicate.Command(sql.FieldEqualFold(FieldActionID, v))
}

// ActionIDContainsFold applies the ContainsFold predicate on the "action_id" field.
func ActionIDContainsFold(v string) predicate.Command {
	return predicate.Command(sql.FieldContainsFold(FieldActionID, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.Command {
	return predicate.Command(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.Command {
	return predicate.Command(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.Command {
	return predicate.Command(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.Command {
	return predicate.Command(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.Command {
	return predicate.Command(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.Command {
	return predicate.Command(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.Command {
	return predicate.Command(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.Command {
	return predicate.Command(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.Command {
	return predicate.Command(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.Command {
	return predicate.Command(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.Command {
	return predicate.Command(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.Command {
	return predicate.Command(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.Command {
	return predicate.Command(sql.FieldContainsFold(FieldTaskID, v))
}

// EventIDEQ applies the EQ predicate on the "event_id" field.
func EventIDEQ(v string) predicate.Command {
	return predicate.Command(sql.FieldEQ(FieldEventID, v))
}

// EventIDNEQ applies the NEQ predicate on the "event_id" field.
func EventIDNEQ(v string) predicate.Command {
	return predicate.Command(sql.FieldNEQ(FieldEventID, v))
}

// EventIDIn applies the In predicate on the "event_id" field.
func EventIDIn(vs ...string) predicate.Command {
	return predicate.Command(sql.FieldIn(FieldEventID, vs...))
}

// EventIDNotIn applies the NotIn predicate on the "event_id" field.
func EventIDNotIn(vs ...string) predicate.Command {
	return predicate.Command(sql.FieldNotIn(FieldEventID, vs...))
}

// EventIDGT applies the GT predicate on the "event_id" field.
func EventIDGT(v string) predicate.Command {
	return predicate.Command(sql.FieldGT(FieldEventID, v))
}

// EventIDGTE applies the GTE predicate on the "event_id" field.
func EventIDGTE(v string) predicate.Command {
	return predicate.Command(sql.FieldGTE(FieldEventID, v))
}

// EventIDLT applies the LT predicate on the "event_id" field.
func EventIDLT(v string) predicate.Command {
	return predicate.Command(sql.FieldLT(FieldEventID, v))
}

// EventIDLTE applies the LTE predicate on the "event_id" field.
func EventIDLTE(v string) predicate.Command {
	return predicate.Command(sql.FieldLTE(FieldEventID, v))
}

// EventIDContains applies the Contains predicate on the "event_id" field.
func EventIDContains(v string) predicate.Command {
	return predicate.Command(sql.FieldContains(FieldEventID, v))
}

// EventIDHasPrefix applies the HasPrefix predicate on the "event_id" field.
func EventIDHasPrefix(v string) predicate.Command {
	return predicate.Command(sql.FieldHasPrefix(FieldEventID, v))
}

// EventIDHasSuffix applies the HasSuffix predicate on the "event_id" field.
func EventIDHasSuffix(v string) predicate.Command {
	return predicate.Command(sql.FieldHasSuffix(FieldEventID, v))
}

// EventIDEqualFold applies the EqualFold predicate on the "event_id" field.
func EventIDEqualFold(v string) predicate.Command {
	return predicate.Command(sql.FieldEqualFold(FieldEventID, v))
}

// EventIDContainsFold applies the ContainsFold predicate on the "event_id" field.
func EventIDContainsFold(v string) predicate.Command {
	return predicate.Command(sql.FieldContainsFold(FieldEventID, v))
}

// RoundIDEQ applies the EQ predicate on the "round_id" field.
func RoundIDEQ(v int) predicate.Command {
	return predicate.Command(sql.FieldEQ(FieldRoundID, v))
}

// RoundIDNEQ applies the NEQ predicate on the "round_id" field.
func RoundIDNEQ(v int) predicate.Command {
	return predicate.Command(sql.FieldNEQ(FieldRoundID, v))
}

// RoundIDIn applies the In predicate on the "round_id" field.
func RoundIDIn(vs ...int) predicate.Command {
	return predicate.Command(sql.FieldIn(FieldRoundID, vs...))
}

// RoundIDNotIn applies the NotIn predicate on the "round_id" field.
func RoundIDNotIn(vs ...int) predicate.Command {
	return predicate.Command(sql.FieldNotIn(FieldRoundID, vs...))
}

// RoundIDGT applies the GT predicate on the "round_id" field.
func RoundIDGT(v int) predicate.Command {
	return predicate.Command(sql.FieldGT(FieldRoundID, v))
}

// RoundIDGTE applies the GTE predicate on the "round_id" field.
func RoundIDGTE(v int) predicate.Command {
	return predicate.Command(sql.FieldGTE(FieldRoundID, v))
}

// RoundIDLT applies the LT predicate on the "round_id" field.
func RoundIDLT(v int) predicate.Command {
	return predicate.Command(sql.FieldLT(FieldRoundID, v))
}

// RoundIDLTE applies the LTE predicate on the "round_id" field.
func RoundIDLTE(v int) predicate.Command {
	return predicate.Command(sql.FieldLTE(FieldRoundID, v))
}

// CommandNameEQ applies the EQ predicate on the "command_name" field.
func CommandNameEQ(v string) predicate.Command {
	return predicate.Command(sql.FieldEQ(FieldCommandName, v))
}

// CommandNameNEQ applies the NEQ predicate on the "command_name" field.
func CommandNameNEQ(v string) predicate.Command {
	return predicate.Command(sql.FieldNEQ(FieldCommandName, v))
}

// CommandNameIn applies the In predicate on the "command_name" field.
func CommandNameIn(vs ...string) predicate.Command {
	return predicate.Command(sql.FieldIn(FieldCommandName, vs...))
}

// CommandNameNotIn applies the NotIn predicate on the "command_name" field.
func CommandNameNotIn(vs ...string) predicate.Command {
	return predicate.Command(sql.FieldNotIn(FieldCommandName, vs...))
}

// CommandNameGT applies the GT predicate on the "command_name" field.
func CommandNameGT(v string) predicate.Command {
	return predicate.Command(sql.FieldGT(FieldCommandName, v))
}

// CommandNameGTE applies the GTE predicate on the "command_name" field.
func CommandNameGTE(v string) predicate.Command {
	return predicate.Command(sql.FieldGTE(FieldCommandName, v))
}

// CommandNameLT applies the LT predicate on the "command_name" field.
func CommandNameLT(v string) predicate.Command {
	return predicate.Command(sql.FieldLT(FieldCommandName, v))
}

// CommandNameLTE applies the LTE predicate on the "command_name" field.
func CommandNameLTE(v string) predicate.Command {
	return predicate.Command(sql.FieldLTE(FieldCommandName, v))
}

// CommandNameContains applies the Contains predicate on the "command_name" field.
func CommandNameContains(v string) predicate.Command {
	return predicate.Command(sql.FieldContains(FieldCommandName, v))
}

// CommandNameHasPrefix applies the HasPrefix predicate on the "command_name" field.
func CommandNameHasPrefix(v string) predicate.Command {
	return predicate.Command(sql.FieldHasPrefix(FieldCommandName, v))
}

// CommandNameHasSuffix applies the HasSuffix predicate on the "command_name" field.
func CommandNameHasSuffix(v string) predicate.Command {
	return predicate.Command(sql.FieldHasSuffix(FieldCommandName, v))
}

// CommandNameEqualFold applies the EqualFold predicate on the "command_name" field.
func CommandNameEqualFold(v string) predicate.Command {
	return predicate.Command(sql.FieldEqualFold(FieldCommandName, v))
}

// CommandNameContainsFold applies the ContainsFold predicate on the "command_name" field.
func CommandNameContainsFold(v string) predicate.Command {
	return predicate.Command(sql.FieldContainsFold(FieldCommandName, v))
}

// CommandTypeEQ applies the EQ predicate on the "command_type" field.
func CommandTypeEQ(v CommandType) predicate.Command {
	return predicate.Command(sql.FieldEQ(FieldCommandType, v))
}

// CommandTypeNEQ applies the NEQ predicate on the "command_type" field.
func CommandTypeNEQ(v CommandType) predicate.Command {
	return predicate.Command(sql.FieldNEQ(FieldCommandType, v))
}

// CommandTypeIn applies the In predicate on the "command_type" field.
func CommandTypeIn(vs ...CommandType) predicate.Command {
	return predicate.Command(sql.FieldIn(FieldCommandType, vs...))
}

// CommandTypeNotIn applies the NotIn predicate on the "command_type" field.
func CommandTypeNotIn(vs ...CommandType) predicate.Command {
	return predicate.Command(sql.FieldNotIn(FieldCommandType, vs...))
}

// CommandAssigneeEQ applies the EQ predicate on the "command_assignee" field.
func CommandAssigneeEQ(v string) predicate.Command {
	return predicate.Command(sql.FieldEQ(FieldCommandAssignee, v))
}

// CommandAssigneeNEQ applies the NEQ predicate on the "command_assignee" field.
func CommandAssigneeNEQ(v string) predicate.Command {
	return predicate.Command(sql.FieldNEQ(FieldCommandAssignee, v))
}

// CommandAssigneeIn applies the In predicate on the "command_assignee" field.
func CommandAssigneeIn(vs ...string) predicate.Command {
	return predicate.Command(sql.FieldIn(FieldCommandAssignee, vs...))
}

// CommandAssigneeNotIn applies the NotIn predicate on the "command_assignee" field.
func CommandAssigneeNotIn(vs ...string) predicate.Command {
	return predicate.Command(sql.FieldNotIn(FieldCommandAssignee, vs...))
}

// CommandAssigneeGT applies the GT predicate on the "command_assignee" field.
func CommandAssigneeGT(v string) predicate.Command {
	return predicate.Command(sql.FieldGT(FieldCommandAssignee, v))
}

// CommandAssigneeGTE applies the GTE predicate on the "command_assignee" field.
func CommandAssigneeGTE(v string) predicate.Command {
	return predicate.Command(sql.FieldGTE(FieldCommandAssignee, v))
}

// CommandAssigneeLT applies the LT predicate on the "command_assignee" field.
func CommandAssigneeLT(v string) predicate.Command {
	return predicate.Command(sql.FieldLT(FieldCommandAssignee, v))
}

// CommandAssigneeLTE applies the LTE predicate on the "command_assignee" field.
func CommandAssigneeLTE(v string) predicate.Command {
	return predicate.Command(sql.FieldLTE(FieldCommandAssignee, v))
}

// CommandAssigneeContains applies the Contains predicate on the "command_assignee" field.
func CommandAssigneeContains(v string) predicate.Command {
	return predicate.Command(sql.FieldContains(FieldCommandAssignee, v))
}

// CommandAssigneeHasPrefix applies the HasPrefix predicate on the "command_assignee" field.
func CommandAssigneeHasPrefix(v string) predicate.Command {
	return predicate.Command(sql.FieldHasPrefix(FieldCommandAssignee, v))
}

// CommandAssigneeHasSuffix applies the HasSuffix predicate on the "command_assignee" field.
func CommandAssigneeHasSuffix(v string) predicate.Command {
	return predicate.Command(sql.FieldHasSuffix(FieldCommandAssignee, v))
}

// CommandAssigneeEqualFold applies the EqualFold predicate on the "command_assignee" field.
func CommandAssigneeEqualFold(v string) predicate.Command {
	return predicate.Command(sql.FieldEqualFold(FieldCommandAssignee, v))
}

// CommandAssigneeContainsFold applies the ContainsFold predicate on the "command_assignee" field.
func CommandAssigneeContainsFold(v string) predicate.Command {
	return predicate.Command(sql.FieldContainsFold(FieldCommandAssignee, v))
}

// CommandEntityIsNil applies the IsNil predicate on the "command_entity" field.
func CommandEntityIsNil() predicate.Command {
	return predicate.Command(sql.FieldIsNull(FieldCommandEntity))
}

// CommandEntityNotNil applies the NotNil predicate on the "command_entity" field.
func CommandEntityNotNil() predicate.Command {
	return predicate.Command(sql.FieldNotNull(FieldCommandEntity))
}

// CommandParamsIsNil applies the IsNil predicate on the "command_params" field.
func CommandParamsIsNil() predicate.Command {
	return predicate.Command(sql.FieldIsNull(FieldCommandParams))
}

// CommandParamsNotNil applies the NotNil predicate on the "command_params" field.
func CommandParamsNotNil() predicate.Command {
	return predicate.Command(sql.FieldNotNull(FieldCommandParams))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Command {
	return predicate.Command(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Command {
	return predicate.Command(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Command {
	return predicate.Command(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Command {
	return predicate.Command(sql.FieldNotIn(FieldStatus, vs...))
}

// CommandResultIsNil applies the IsNil predicate on the "command_result" field.
func CommandResultIsNil() predicate.Command {
	return predicate.Command(sql.FieldIsNull(FieldCommandResult))
}

// CommandResultNotNil applies the NotNil predicate on the "command_result" field.
func CommandResultNotNil() predicate.Command {
	return predicate.Command(sql.FieldNotNull(FieldCommandResult))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Command {
	return predicate.Command(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Command {
	return predicate.Command(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Command {
	return predicate.Command(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Command {
	return predicate.Command(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Command {
	return predicate.Command(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Command {
	return predicate.Command(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Command {
	return predicate.Command(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Command {
	return predicate.Command(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Command {
	return predicate.Command(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Command {
	return predicate.Command(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Command {
	return predicate.Command(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Command {
	return predicate.Command(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Command {
	return predicate.Command(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Command {
	return predicate.Command(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Command {
	return predicate.Command(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Command {
	return predicate.Command(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Command) predicate.Command {
	return predicate.Command(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Command) predicate.Command {
	return predicate.Command(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Command) predicate.Command {
	return predicate.Command(sql.NotPredicates(p))
}
