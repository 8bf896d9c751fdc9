// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/deepsoc/deepsoc/ent/command"
)

// Command is the model entity for the Command schema.
type Command struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CommandID holds the value of the "command_id" field.
	CommandID string `json:"command_id,omitempty"`
	// ActionID holds the value of the "action_id" field.
	ActionID string `json:"action_id,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID string `json:"task_id,omitempty"`
	// EventID holds the value of the "event_id" field.
	EventID string `json:"event_id,omitempty"`
	// RoundID holds the value of the "round_id" field.
	RoundID int `json:"round_id,omitempty"`
	// CommandName holds the value of the "command_name" field.
	CommandName string `json:"command_name,omitempty"`
	// CommandType holds the value of the "command_type" field.
	CommandType command.CommandType `json:"command_type,omitempty"`
	// CommandAssignee holds the value of the "command_assignee" field.
	CommandAssignee string `json:"command_assignee,omitempty"`
	// Playbook identity, e.g. {"playbook_id": ..., "playbook_name": ...}
	CommandEntity map[string]interface{} `json:"command_entity,omitempty"`
	// CommandParams holds the value of the "command_params" field.
	CommandParams map[string]interface{} `json:"command_params,omitempty"`
	// Status holds the value of the "status" field.
	Status command.Status `json:"status,omitempty"`
	// CommandResult holds the value of the "command_result" field.
	CommandResult map[string]interface{} `json:"command_result,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Command) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case command.FieldCommandEntity, command.FieldCommandParams, command.FieldCommandResult:
			values[i] = new([]byte)
		case command.FieldID, command.FieldRoundID:
			values[i] = new(sql.NullInt64)
		case command.FieldCommandID, command.FieldActionID, command.FieldTaskID, command.FieldEventID, command.FieldCommandName, command.FieldCommandType, command.FieldCommandAssignee, command.FieldStatus:
			values[i] = new(sql.NullString)
		case command.FieldCreatedAt, command.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Command fields.
func (_m *Command) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case command.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case command.FieldCommandID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field command_id", values[i])
			} else if value.Valid {
				_m.CommandID = value.String
			}
		case command.FieldActionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action_id", values[i])
			} else if value.Valid {
				_m.ActionID = value.String
			}
		case command.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = value.String
			}
		case command.FieldEventID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_id", values[i])
			} else if value.Valid {
				_m.EventID = value.String
			}
		case command.FieldRoundID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field round_id", values[i])
			} else if value.Valid {
				_m.RoundID = int(value.Int64)
			}
		case command.FieldCommandName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field command_name", values[i])
			} else if value.Valid {
				_m.CommandName = value.String
			}
		case command.FieldCommandType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field command_type", values[i])
			} else if value.Valid {
				_m.CommandType = command.CommandType(value.String)
			}
		case command.FieldCommandAssignee:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field command_assignee", values[i])
			} else if value.Valid {
				_m.CommandAssignee = value.String
			}
		case command.FieldCommandEntity:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field command_entity", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CommandEntity); err != nil {
					return fmt.Errorf("unmarshal field command_entity: %w", err)
				}
			}
		case command.FieldCommandParams:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field command_params", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CommandParams); err != nil {
					return fmt.Errorf("unmarshal field command_params: %w", err)
				}
			}
		case command.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = command.Status(value.String)
			}
		case command.FieldCommandResult:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field command_result", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CommandResult); err != nil {
					return fmt.Errorf("unmarshal field command_result: %w", err)
				}
			}
		case command.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case command.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Command.
// This includes values selected through modifiers, order, etc.
func (_m *Command) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Command.
// Note that you need to call Command.Unwrap() before calling this method if this Command
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Command) Update() *CommandUpdateOne {
	return NewCommandClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Command entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Command) Unwrap() *Command {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Command is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Command) String() string {
	var builder strings.Builder
	builder.WriteString("Command(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("command_id=")
	builder.WriteString(_m.CommandID)
	builder.WriteString(", ")
	builder.WriteString("action_id=")
	builder.WriteString(_m.ActionID)
	builder.WriteString(", ")
	builder.WriteString("task_id=")
	builder.WriteString(_m.TaskID)
	builder.WriteString(", ")
	builder.WriteString("event_id=")
	builder.WriteString(_m.EventID)
	builder.WriteString(", ")
	builder.WriteString("round_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.RoundID))
	builder.WriteString(", ")
	builder.WriteString("command_name=")
	builder.WriteString(_m.CommandName)
	builder.WriteString(", ")
	builder.WriteString("command_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.CommandType))
	builder.WriteString(", ")
	builder.WriteString("command_assignee=")
	builder.WriteString(_m.CommandAssignee)
	builder.WriteString(", ")
	builder.WriteString("command_entity=")
	builder.WriteString(fmt.Sprintf("%v", _m.CommandEntity))
	builder.WriteString(", ")
	builder.WriteString("command_params=")
	builder.WriteString(fmt.Sprintf("%v", _m.CommandParams))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("command_result=")
	builder.WriteString(fmt.Sprintf("%v", _m.CommandResult))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Commands is a parsable slice of Command.
type Commands []*Command
