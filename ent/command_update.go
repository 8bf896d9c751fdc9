// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/deepsoc/deepsoc/ent/command"
	"github.com/deepsoc/deepsoc/ent/predicate"
)

// CommandUpdate is the builder for updating Command entities.
type CommandUpdate struct {
	config
	hooks    []Hook
	mutation *CommandMutation
}

// Where appends a list predicates to the CommandUpdate builder.
func (_u *CommandUpdate) Where(ps ...predicate.Command) *CommandUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCommandName sets the "command_name" field.
func (_u *CommandUpdate) SetCommandName(v string) *CommandUpdate {
	_u.mutation.SetCommandName(v)
	return _u
}

// SetNillableCommandName sets the "command_name" field if the given value is not nil.
func (_u *CommandUpdate) SetNillableCommandName(v *string) *CommandUpdate {
	if v != nil {
		_u.SetCommandName(*v)
	}
	return _u
}

// SetCommandType sets the "command_type" field.
func (_u *CommandUpdate) SetCommandType(v command.CommandType) *CommandUpdate {
	_u.mutation.SetCommandType(v)
	return _u
}

// SetNillableCommandType sets the "command_type" field if the given value is not nil.
func (_u *CommandUpdate) SetNillableCommandType(v *command.CommandType) *CommandUpdate {
	if v != nil {
		_u.SetCommandType(*v)
	}
	return _u
}

// SetCommandAssignee sets the "command_assignee" field.
func (_u *CommandUpdate) SetCommandAssignee(v string) *CommandUpdate {
	_u.mutation.SetCommandAssignee(v)
	return _u
}

// SetNillableCommandAssignee sets the "command_assignee" field if the given value is not nil.
func (_u *CommandUpdate) SetNillableCommandAssignee(v *string) *CommandUpdate {
	if v != nil {
		_u.SetCommandAssignee(*v)
	}
	return _u
}

// SetCommandEntity sets the "command_entity" field.
func (_u *CommandUpdate) SetCommandEntity(v map[string]interface{}) *CommandUpdate {
	_u.mutation.SetCommandEntity(v)
	return _u
}

// ClearCommandEntity clears the value of the "command_entity" field.
func (_u *CommandUpdate) ClearCommandEntity() *CommandUpdate {
	_u.mutation.ClearCommandEntity()
	return _u
}

// SetCommandParams sets the "command_params" field.
func (_u *CommandUpdate) SetCommandParams(v map[string]interface{}) *CommandUpdate {
	_u.mutation.SetCommandParams(v)
	return _u
}

// ClearCommandParams clears the value of the "command_params" field.
func (_u *CommandUpdate) ClearCommandParams() *CommandUpdate {
	_u.mutation.ClearCommandParams()
	return _u
}

// SetStatus sets the "status" field.
func (_u *CommandUpdate) SetStatus(v command.Status) *CommandUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CommandUpdate) SetNillableStatus(v *command.Status) *CommandUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCommandResult sets the "command_result" field.
func (_u *CommandUpdate) SetCommandResult(v map[string]interface{}) *CommandUpdate {
	_u.mutation.SetCommandResult(v)
	return _u
}

// ClearCommandResult clears the value of the "command_result" field.
func (_u *CommandUpdate) ClearCommandResult() *CommandUpdate {
	_u.mutation.ClearCommandResult()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CommandUpdate) SetUpdatedAt(v time.Time) *CommandUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CommandMutation object of the builder.
func (_u *CommandUpdate) Mutation() *CommandMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CommandUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CommandUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CommandUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CommandUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CommandUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := command.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CommandUpdate) check() error {
	if v, ok := _u.mutation.CommandName(); ok {
		if err := command.CommandNameValidator(v); err != nil {
			return &ValidationError{Name: "command_name", err: fmt.Errorf(`ent: validator failed for field "Command.command_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CommandType(); ok {
		if err := command.CommandTypeValidator(v); err != nil {
			return &ValidationError{Name: "command_type", err: fmt.Errorf(`ent: validator failed for field "Command.command_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CommandAssignee(); ok {
		if err := command.CommandAssigneeValidator(v); err != nil {
			return &ValidationError{Name: "command_assignee", err: fmt.Errorf(`ent: validator failed for field "Command.command_assignee": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := command.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Command.status": %w`, err)}
		}
	}
	return nil
}

func (_u *CommandUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(command.Table, command.Columns, sqlgraph.NewFieldSpec(command.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CommandName(); ok {
		_spec.SetField(command.FieldCommandName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CommandType(); ok {
		_spec.SetField(command.FieldCommandType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CommandAssignee(); ok {
		_spec.SetField(command.FieldCommandAssignee, field.TypeString, value)
	}
	if value, ok := _u.mutation.CommandEntity(); ok {
		_spec.SetField(command.FieldCommandEntity, field.TypeJSON, value)
	}
	if _u.mutation.CommandEntityCleared() {
		_spec.ClearField(command.FieldCommandEntity, field.TypeJSON)
	}
	if value, ok := _u.mutation.CommandParams(); ok {
		_spec.SetField(command.FieldCommandParams, field.TypeJSON, value)
	}
	if _u.mutation.CommandParamsCleared() {
		_spec.ClearField(command.FieldCommandParams, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(command.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CommandResult(); ok {
		_spec.SetField(command.FieldCommandResult, field.TypeJSON, value)
	}
	if _u.mutation.CommandResultCleared() {
		_spec.ClearField(command.FieldCommandResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(command.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{command.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CommandUpdateOne is the builder for updating a single Command entity.
type CommandUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CommandMutation
}

// SetCommandName sets the "command_name" field.
func (_u *CommandUpdateOne) SetCommandName(v string) *CommandUpdateOne {
	_u.mutation.SetCommandName(v)
	return _u
}

// SetNillableCommandName sets the "command_name" field if the given value is not nil.
func (_u *CommandUpdateOne) SetNillableCommandName(v *string) *CommandUpdateOne {
	if v != nil {
		_u.SetCommandName(*v)
	}
	return _u
}

// SetCommandType sets the "command_type" field.
func (_u *CommandUpdateOne) SetCommandType(v command.CommandType) *CommandUpdateOne {
	_u.mutation.SetCommandType(v)
	return _u
}

// SetNillableCommandType sets the "command_type" field if the given value is not nil.
func (_u *CommandUpdateOne) SetNillableCommandType(v *command.CommandType) *CommandUpdateOne {
	if v != nil {
		_u.SetCommandType(*v)
	}
	return _u
}

// SetCommandAssignee sets the "command_assignee" field.
func (_u *CommandUpdateOne) SetCommandAssignee(v string) *CommandUpdateOne {
	_u.mutation.SetCommandAssignee(v)
	return _u
}

// SetNillableCommandAssignee sets the "command_assignee" field if the given value is not nil.
func (_u *CommandUpdateOne) SetNillableCommandAssignee(v *string) *CommandUpdateOne {
	if v != nil {
		_u.SetCommandAssignee(*v)
	}
	return _u
}

// SetCommandEntity sets the "command_entity" field.
func (_u *CommandUpdateOne) SetCommandEntity(v map[string]interface{}) *CommandUpdateOne {
	_u.mutation.SetCommandEntity(v)
	return _u
}

// ClearCommandEntity clears the value of the "command_entity" field.
func (_u *CommandUpdateOne) ClearCommandEntity() *CommandUpdateOne {
	_u.mutation.ClearCommandEntity()
	return _u
}

// SetCommandParams sets the "command_params" field.
func (_u *CommandUpdateOne) SetCommandParams(v map[string]interface{}) *CommandUpdateOne {
	_u.mutation.SetCommandParams(v)
	return _u
}

// ClearCommandParams clears the value of the "command_params" field.
func (_u *CommandUpdateOne) ClearCommandParams() *CommandUpdateOne {
	_u.mutation.ClearCommandParams()
	return _u
}

// SetStatus sets the "status" field.
func (_u *CommandUpdateOne) SetStatus(v command.Status) *CommandUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CommandUpdateOne) SetNillableStatus(v *command.Status) *CommandUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCommandResult sets the "command_result" field.
func (_u *CommandUpdateOne) SetCommandResult(v map[string]interface{}) *CommandUpdateOne {
	_u.mutation.SetCommandResult(v)
	return _u
}

// ClearCommandResult clears the value of the "command_result" field.
func (_u *CommandUpdateOne) ClearCommandResult() *CommandUpdateOne {
	_u.mutation.ClearCommandResult()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CommandUpdateOne) SetUpdatedAt(v time.Time) *CommandUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CommandMutation object of the builder.
func (_u *CommandUpdateOne) Mutation() *CommandMutation {
	return _u.mutation
}

// Where appends a list predicates to the CommandUpdate builder.
func (_u *CommandUpdateOne) Where(ps ...predicate.Command) *CommandUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CommandUpdateOne) Select(field string, fields ...string) *CommandUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Command entity.
func (_u *CommandUpdateOne) Save(ctx context.Context) (*Command, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CommandUpdateOne) SaveX(ctx context.Context) *Command {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CommandUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CommandUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CommandUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := command.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CommandUpdateOne) check() error {
	if v, ok := _u.mutation.CommandName(); ok {
		if err := command.CommandNameValidator(v); err != nil {
			return &ValidationError{Name: "command_name", err: fmt.Errorf(`ent: validator failed for field "Command.command_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CommandType(); ok {
		if err := command.CommandTypeValidator(v); err != nil {
			return &ValidationError{Name: "command_type", err: fmt.Errorf(`ent: validator failed for field "Command.command_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CommandAssignee(); ok {
		if err := command.CommandAssigneeValidator(v); err != nil {
			return &ValidationError{Name: "command_assignee", err: fmt.Errorf(`ent: validator failed for field "Command.command_assignee": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := command.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Command.status": %w`, err)}
		}
	}
	return nil
}

func (_u *CommandUpdateOne) sqlSave(ctx context.Context) (_node *Command, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(command.Table, command.Columns, sqlgraph.NewFieldSpec(command.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Command.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, command.FieldID)
		for _, f := range fields {
			if !command.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != command.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CommandName(); ok {
		_spec.SetField(command.FieldCommandName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CommandType(); ok {
		_spec.SetField(command.FieldCommandType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CommandAssignee(); ok {
		_spec.SetField(command.FieldCommandAssignee, field.TypeString, value)
	}
	if value, ok := _u.mutation.CommandEntity(); ok {
		_spec.SetField(command.FieldCommandEntity, field.TypeJSON, value)
	}
	if _u.mutation.CommandEntityCleared() {
		_spec.ClearField(command.FieldCommandEntity, field.TypeJSON)
	}
	if value, ok := _u.mutation.CommandParams(); ok {
		_spec.SetField(command.FieldCommandParams, field.TypeJSON, value)
	}
	if _u.mutation.CommandParamsCleared() {
		_spec.ClearField(command.FieldCommandParams, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(command.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CommandResult(); ok {
		_spec.SetField(command.FieldCommandResult, field.TypeJSON, value)
	}
	if _u.mutation.CommandResultCleared() {
		_spec.ClearField(command.FieldCommandResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(command.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Command{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{command.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
