// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/deepsoc/deepsoc/ent/command"
)

// CommandCreate is the builder for creating a Command entity.
type CommandCreate struct {
	config
	mutation *CommandMutation
	hooks    []Hook
}

// SetCommandID sets the "command_id" field.
func (_c *CommandCreate) SetCommandID(v string) *CommandCreate {
	_c.mutation.SetCommandID(v)
	return _c
}

// SetActionID sets the "action_id" field.
func (_c *CommandCreate) SetActionID(v string) *CommandCreate {
	_c.mutation.SetActionID(v)
	return _c
}

// SetTaskID sets the "task_id" field.
func (_c *CommandCreate) SetTaskID(v string) *CommandCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetEventID sets the "event_id" field.
func (_c *CommandCreate) SetEventID(v string) *CommandCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetRoundID sets the "round_id" field.
func (_c *CommandCreate) SetRoundID(v int) *CommandCreate {
	_c.mutation.SetRoundID(v)
	return _c
}

// SetCommandName sets the "command_name" field.
func (_c *CommandCreate) SetCommandName(v string) *CommandCreate {
	_c.mutation.SetCommandName(v)
	return _c
}

// SetCommandType sets the "command_type" field.
func (_c *CommandCreate) SetCommandType(v command.CommandType) *CommandCreate {
	_c.mutation.SetCommandType(v)
	return _c
}

// SetCommandAssignee sets the "command_assignee" field.
func (_c *CommandCreate) SetCommandAssignee(v string) *CommandCreate {
	_c.mutation.SetCommandAssignee(v)
	return _c
}

// SetNillableCommandAssignee sets the "command_assignee" field if the given value is not nil.
func (_c *CommandCreate) SetNillableCommandAssignee(v *string) *CommandCreate {
	if v != nil {
		_c.SetCommandAssignee(*v)
	}
	return _c
}

// SetCommandEntity sets the "command_entity" field.
func (_c *CommandCreate) SetCommandEntity(v map[string]interface{}) *CommandCreate {
	_c.mutation.SetCommandEntity(v)
	return _c
}

// SetCommandParams sets the "command_params" field.
func (_c *CommandCreate) SetCommandParams(v map[string]interface{}) *CommandCreate {
	_c.mutation.SetCommandParams(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *CommandCreate) SetStatus(v command.Status) *CommandCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *CommandCreate) SetNillableStatus(v *command.Status) *CommandCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCommandResult sets the "command_result" field.
func (_c *CommandCreate) SetCommandResult(v map[string]interface{}) *CommandCreate {
	_c.mutation.SetCommandResult(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CommandCreate) SetCreatedAt(v time.Time) *CommandCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CommandCreate) SetNillableCreatedAt(v *time.Time) *CommandCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CommandCreate) SetUpdatedAt(v time.Time) *CommandCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CommandCreate) SetNillableUpdatedAt(v *time.Time) *CommandCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the CommandMutation object of the builder.
func (_c *CommandCreate) Mutation() *CommandMutation {
	return _c.mutation
}

// Save creates the Command in the database.
func (_c *CommandCreate) Save(ctx context.Context) (*Command, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CommandCreate) SaveX(ctx context.Context) *Command {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CommandCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CommandCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CommandCreate) defaults() {
	if _, ok := _c.mutation.CommandAssignee(); !ok {
		v := command.DefaultCommandAssignee
		_c.mutation.SetCommandAssignee(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := command.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := command.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := command.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CommandCreate) check() error {
	if _, ok := _c.mutation.CommandID(); !ok {
		return &ValidationError{Name: "command_id", err: errors.New(`ent: missing required field "Command.command_id"`)}
	}
	if v, ok := _c.mutation.CommandID(); ok {
		if err := command.CommandIDValidator(v); err != nil {
			return &ValidationError{Name: "command_id", err: fmt.Errorf(`ent: validator failed for field "Command.command_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ActionID(); !ok {
		return &ValidationError{Name: "action_id", err: errors.New(`ent: missing required field "Command.action_id"`)}
	}
	if v, ok := _c.mutation.ActionID(); ok {
		if err := command.ActionIDValidator(v); err != nil {
			return &ValidationError{Name: "action_id", err: fmt.Errorf(`ent: validator failed for field "Command.action_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "Command.task_id"`)}
	}
	if v, ok := _c.mutation.TaskID(); ok {
		if err := command.TaskIDValidator(v); err != nil {
			return &ValidationError{Name: "task_id", err: fmt.Errorf(`ent: validator failed for field "Command.task_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EventID(); !ok {
		return &ValidationError{Name: "event_id", err: errors.New(`ent: missing required field "Command.event_id"`)}
	}
	if v, ok := _c.mutation.EventID(); ok {
		if err := command.EventIDValidator(v); err != nil {
			return &ValidationError{Name: "event_id", err: fmt.Errorf(`ent: validator failed for field "Command.event_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RoundID(); !ok {
		return &ValidationError{Name: "round_id", err: errors.New(`ent: missing required field "Command.round_id"`)}
	}
	if _, ok := _c.mutation.CommandName(); !ok {
		return &ValidationError{Name: "command_name", err: errors.New(`ent: missing required field "Command.command_name"`)}
	}
	if v, ok := _c.mutation.CommandName(); ok {
		if err := command.CommandNameValidator(v); err != nil {
			return &ValidationError{Name: "command_name", err: fmt.Errorf(`ent: validator failed for field "Command.command_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CommandType(); !ok {
		return &ValidationError{Name: "command_type", err: errors.New(`ent: missing required field "Command.command_type"`)}
	}
	if v, ok := _c.mutation.CommandType(); ok {
		if err := command.CommandTypeValidator(v); err != nil {
			return &ValidationError{Name: "command_type", err: fmt.Errorf(`ent: validator failed for field "Command.command_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CommandAssignee(); !ok {
		return &ValidationError{Name: "command_assignee", err: errors.New(`ent: missing required field "Command.command_assignee"`)}
	}
	if v, ok := _c.mutation.CommandAssignee(); ok {
		if err := command.CommandAssigneeValidator(v); err != nil {
			return &ValidationError{Name: "command_assignee", err: fmt.Errorf(`ent: validator failed for field "Command.command_assignee": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Command.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := command.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Command.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Command.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Command.updated_at"`)}
	}
	return nil
}

func (_c *CommandCreate) sqlSave(ctx context.Context) (*Command, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CommandCreate) createSpec() (*Command, *sqlgraph.CreateSpec) {
	var (
		_node = &Command{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(command.Table, sqlgraph.NewFieldSpec(command.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CommandID(); ok {
		_spec.SetField(command.FieldCommandID, field.TypeString, value)
		_node.CommandID = value
	}
	if value, ok := _c.mutation.ActionID(); ok {
		_spec.SetField(command.FieldActionID, field.TypeString, value)
		_node.ActionID = value
	}
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(command.FieldTaskID, field.TypeString, value)
		_node.TaskID = value
	}
	if value, ok := _c.mutation.EventID(); ok {
		_spec.SetField(command.FieldEventID, field.TypeString, value)
		_node.EventID = value
	}
	if value, ok := _c.mutation.RoundID(); ok {
		_spec.SetField(command.FieldRoundID, field.TypeInt, value)
		_node.RoundID = value
	}
	if value, ok := _c.mutation.CommandName(); ok {
		_spec.SetField(command.FieldCommandName, field.TypeString, value)
		_node.CommandName = value
	}
	if value, ok := _c.mutation.CommandType(); ok {
		_spec.SetField(command.FieldCommandType, field.TypeEnum, value)
		_node.CommandType = value
	}
	if value, ok := _c.mutation.CommandAssignee(); ok {
		_spec.SetField(command.FieldCommandAssignee, field.TypeString, value)
		_node.CommandAssignee = value
	}
	if value, ok := _c.mutation.CommandEntity(); ok {
		_spec.SetField(command.FieldCommandEntity, field.TypeJSON, value)
		_node.CommandEntity = value
	}
	if value, ok := _c.mutation.CommandParams(); ok {
		_spec.SetField(command.FieldCommandParams, field.TypeJSON, value)
		_node.CommandParams = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(command.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CommandResult(); ok {
		_spec.SetField(command.FieldCommandResult, field.TypeJSON, value)
		_node.CommandResult = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(command.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(command.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// CommandCreateBulk is the builder for creating many Command entities in bulk.
type CommandCreateBulk struct {
	config
	err      error
	builders []*CommandCreate
}

// Save creates the Command entities in the database.
func (_c *CommandCreateBulk) Save(ctx context.Context) ([]*Command, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Command, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CommandMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *CommandCreateBulk) SaveX(ctx context.Context) []*Command {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CommandCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CommandCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
