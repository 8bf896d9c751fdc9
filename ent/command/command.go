// Code generated by ent, DO NOT EDIT.

package command

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the command type in the database.
	Label = "command"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCommandID holds the string denoting the command_id field in the database.
	FieldCommandID = "command_id"
	// FieldActionID holds the string denoting the action_id field in the database.
	FieldActionID = "action_id"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldEventID holds the string denoting the event_id field in the database.
	FieldEventID = "event_id"
	// FieldRoundID holds the string denoting the round_id field in the database.
	FieldRoundID = "round_id"
	// FieldCommandName holds the string denoting the command_name field in the database.
	FieldCommandName = "command_name"
	// FieldCommandType holds the string denoting the command_type field in the database.
	FieldCommandType = "command_type"
	// FieldCommandAssignee holds the string denoting the command_assignee field in the database.
	FieldCommandAssignee = "command_assignee"
	// FieldCommandEntity holds the string denoting the command_entity field in the database.
	FieldCommandEntity = "command_entity"
	// FieldCommandParams holds the string denoting the command_params field in the database.
	FieldCommandParams = "command_params"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCommandResult holds the string denoting the command_result field in the database.
	FieldCommandResult = "command_result"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the command in the database.
	Table = "commands"
)

// Columns holds all SQL columns for command fields.
var Columns = []string{
	FieldID,
	FieldCommandID,
	FieldActionID,
	FieldTaskID,
	FieldEventID,
	FieldRoundID,
	FieldCommandName,
	FieldCommandType,
	FieldCommandAssignee,
	FieldCommandEntity,
	FieldCommandParams,
	FieldStatus,
	FieldCommandResult,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// CommandIDValidator is a validator for the "command_id" field. It is called by the builders before save.
	CommandIDValidator func(string) error
	// ActionIDValidator is a validator for the "action_id" field. It is called by the builders before save.
	ActionIDValidator func(string) error
	// TaskIDValidator is a validator for the "task_id" field. It is called by the builders before save.
	TaskIDValidator func(string) error
	// EventIDValidator is a validator for the "event_id" field. It is called by the builders before save.
	EventIDValidator func(string) error
	// CommandNameValidator is a validator for the "command_name" field. It is called by the builders before save.
	CommandNameValidator func(string) error
	// DefaultCommandAssignee holds the default value on creation for the "command_assignee" field.
	DefaultCommandAssignee string
	// CommandAssigneeValidator is a validator for the "command_assignee" field. It is called by the builders before save.
	CommandAssigneeValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// CommandType defines the type for the "command_type" enum field.
type CommandType string

// CommandType values.
const (
	CommandTypePlaybook CommandType = "playbook"
	CommandTypeManual   CommandType = "manual"
)

func (ct CommandType) String() string {
	return string(ct)
}

// CommandTypeValidator is a validator for the "command_type" field enum values. It is called by the builders before save.
func CommandTypeValidator(ct CommandType) error {
	switch ct {
	case CommandTypePlaybook, CommandTypeManual:
		return nil
	default:
		return fmt.Errorf("command: invalid enum value for command_type field: %q", ct)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusFailed:
		return nil
	default:
		return fmt.Errorf("command: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Command queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCommandID orders the results by the command_id field.
func ByCommandID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommandID, opts...).ToFunc()
}

// ByActionID orders the results by the action_id field.
func ByActionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActionID, opts...).ToFunc()
}

// ByTaskID orders the results by the task_id field.
func ByTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskID, opts...).ToFunc()
}

// ByEventID orders the results by the event_id field.
func ByEventID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventID, opts...).ToFunc()
}

// ByRoundID orders the results by the round_id field.
func ByRoundID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRoundID, opts...).ToFunc()
}

// ByCommandName orders the results by the command_name field.
func ByCommandName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommandName, opts...).ToFunc()
}

// ByCommandType orders the results by the command_type field.
func ByCommandType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommandType, opts...).ToFunc()
}

// ByCommandAssignee orders the results by the command_assignee field.
func ByCommandAssignee(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommandAssignee, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
