// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/deepsoc/deepsoc/ent/action"
)

// ActionCreate is the builder for creating a Action entity.
type ActionCreate struct {
	config
	mutation *ActionMutation
	hooks    []Hook
}

// SetActionID sets the "action_id" field.
func (_c *ActionCreate) SetActionID(v string) *ActionCreate {
	_c.mutation.SetActionID(v)
	return _c
}

// SetTaskID sets the "task_id" field.
func (_c *ActionCreate) SetTaskID(v string) *ActionCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetEventID sets the "event_id" field.
func (_c *ActionCreate) SetEventID(v string) *ActionCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetRoundID sets the "round_id" field.
func (_c *ActionCreate) SetRoundID(v int) *ActionCreate {
	_c.mutation.SetRoundID(v)
	return _c
}

// SetActionName sets the "action_name" field.
func (_c *ActionCreate) SetActionName(v string) *ActionCreate {
	_c.mutation.SetActionName(v)
	return _c
}

// SetActionType sets the "action_type" field.
func (_c *ActionCreate) SetActionType(v string) *ActionCreate {
	_c.mutation.SetActionType(v)
	return _c
}

// SetNillableActionType sets the "action_type" field if the given value is not nil.
func (_c *ActionCreate) SetNillableActionType(v *string) *ActionCreate {
	if v != nil {
		_c.SetActionType(*v)
	}
	return _c
}

// SetActionAssignee sets the "action_assignee" field.
func (_c *ActionCreate) SetActionAssignee(v string) *ActionCreate {
	_c.mutation.SetActionAssignee(v)
	return _c
}

// SetNillableActionAssignee sets the "action_assignee" field if the given value is not nil.
func (_c *ActionCreate) SetNillableActionAssignee(v *string) *ActionCreate {
	if v != nil {
		_c.SetActionAssignee(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ActionCreate) SetStatus(v action.Status) *ActionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ActionCreate) SetNillableStatus(v *action.Status) *ActionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetActionResult sets the "action_result" field.
func (_c *ActionCreate) SetActionResult(v map[string]interface{}) *ActionCreate {
	_c.mutation.SetActionResult(v)
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *ActionCreate) SetRetryCount(v int) *ActionCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_c *ActionCreate) SetNillableRetryCount(v *int) *ActionCreate {
	if v != nil {
		_c.SetRetryCount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ActionCreate) SetCreatedAt(v time.Time) *ActionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ActionCreate) SetNillableCreatedAt(v *time.Time) *ActionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ActionCreate) SetUpdatedAt(v time.Time) *ActionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ActionCreate) SetNillableUpdatedAt(v *time.Time) *ActionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the ActionMutation object of the builder.
func (_c *ActionCreate) Mutation() *ActionMutation {
	return _c.mutation
}

// Save creates the Action in the database.
func (_c *ActionCreate) Save(ctx context.Context) (*Action, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ActionCreate) SaveX(ctx context.Context) *Action {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ActionCreate) defaults() {
	if _, ok := _c.mutation.ActionAssignee(); !ok {
		v := action.DefaultActionAssignee
		_c.mutation.SetActionAssignee(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := action.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		v := action.DefaultRetryCount
		_c.mutation.SetRetryCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := action.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := action.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ActionCreate) check() error {
	if _, ok := _c.mutation.ActionID(); !ok {
		return &ValidationError{Name: "action_id", err: errors.New(`ent: missing required field "Action.action_id"`)}
	}
	if v, ok := _c.mutation.ActionID(); ok {
		if err := action.ActionIDValidator(v); err != nil {
			return &ValidationError{Name: "action_id", err: fmt.Errorf(`ent: validator failed for field "Action.action_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "Action.task_id"`)}
	}
	if v, ok := _c.mutation.TaskID(); ok {
		if err := action.TaskIDValidator(v); err != nil {
			return &ValidationError{Name: "task_id", err: fmt.Errorf(`ent: validator failed for field "Action.task_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EventID(); !ok {
		return &ValidationError{Name: "event_id", err: errors.New(`ent: missing required field "Action.event_id"`)}
	}
	if v, ok := _c.mutation.EventID(); ok {
		if err := action.EventIDValidator(v); err != nil {
			return &ValidationError{Name: "event_id", err: fmt.Errorf(`ent: validator failed for field "Action.event_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RoundID(); !ok {
		return &ValidationError{Name: "round_id", err: errors.New(`ent: missing required field "Action.round_id"`)}
	}
	if _, ok := _c.mutation.ActionName(); !ok {
		return &ValidationError{Name: "action_name", err: errors.New(`ent: missing required field "Action.action_name"`)}
	}
	if v, ok := _c.mutation.ActionName(); ok {
		if err := action.ActionNameValidator(v); err != nil {
			return &ValidationError{Name: "action_name", err: fmt.Errorf(`ent: validator failed for field "Action.action_name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ActionType(); ok {
		if err := action.ActionTypeValidator(v); err != nil {
			return &ValidationError{Name: "action_type", err: fmt.Errorf(`ent: validator failed for field "Action.action_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ActionAssignee(); !ok {
		return &ValidationError{Name: "action_assignee", err: errors.New(`ent: missing required field "Action.action_assignee"`)}
	}
	if v, ok := _c.mutation.ActionAssignee(); ok {
		if err := action.ActionAssigneeValidator(v); err != nil {
			return &ValidationError{Name: "action_assignee", err: fmt.Errorf(`ent: validator failed for field "Action.action_assignee": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Action.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := action.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Action.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "Action.retry_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Action.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Action.updated_at"`)}
	}
	return nil
}

func (_c *ActionCreate) sqlSave(ctx context.Context) (*Action, error) {
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

func (_c *ActionCreate) createSpec() (*Action, *sqlgraph.CreateSpec) {
	var (
		_node = &Action{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(action.Table, sqlgraph.NewFieldSpec(action.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ActionID(); ok {
		_spec.SetField(action.FieldActionID, field.TypeString, value)
		_node.ActionID = value
	}
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(action.FieldTaskID, field.TypeString, value)
		_node.TaskID = value
	}
	if value, ok := _c.mutation.EventID(); ok {
		_spec.SetField(action.FieldEventID, field.TypeString, value)
		_node.EventID = value
	}
	if value, ok := _c.mutation.RoundID(); ok {
		_spec.SetField(action.FieldRoundID, field.TypeInt, value)
		_node.RoundID = value
	}
	if value, ok := _c.mutation.ActionName(); ok {
		_spec.SetField(action.FieldActionName, field.TypeString, value)
		_node.ActionName = value
	}
	if value, ok := _c.mutation.ActionType(); ok {
		_spec.SetField(action.FieldActionType, field.TypeString, value)
		_node.ActionType = value
	}
	if value, ok := _c.mutation.ActionAssignee(); ok {
		_spec.SetField(action.FieldActionAssignee, field.TypeString, value)
		_node.ActionAssignee = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(action.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ActionResult(); ok {
		_spec.SetField(action.FieldActionResult, field.TypeJSON, value)
		_node.ActionResult = value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(action.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(action.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(action.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ActionCreateBulk is the builder for creating many Action entities in bulk.
type ActionCreateBulk struct {
	config
	err      error
	builders []*ActionCreate
}

// Save creates the Action entities in the database.
func (_c *ActionCreateBulk) Save(ctx context.Context) ([]*Action, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Action, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ActionMutation)
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
func (_c *ActionCreateBulk) SaveX(ctx context.Context) []*Action {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
