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
	"github.com/deepsoc/deepsoc/ent/action"
	"github.com/deepsoc/deepsoc/ent/predicate"
)

// ActionUpdate is the builder for updating Action entities.
type ActionUpdate struct {
	config
	hooks    []Hook
	mutation *ActionMutation
}

// Where appends a list predicates to the ActionUpdate builder.
func (_u *ActionUpdate) Where(ps ...predicate.Action) *ActionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetActionName sets the "action_name" field.
func (_u *ActionUpdate) SetActionName(v string) *ActionUpdate {
	_u.mutation.SetActionName(v)
	return _u
}

// SetNillableActionName sets the "action_name" field if the given value is not nil.
func (_u *ActionUpdate) SetNillableActionName(v *string) *ActionUpdate {
	if v != nil {
		_u.SetActionName(*v)
	}
	return _u
}

// SetActionType sets the "action_type" field.
func (_u *ActionUpdate) SetActionType(v string) *ActionUpdate {
	_u.mutation.SetActionType(v)
	return _u
}

// SetNillableActionType sets the "action_type" field if the given value is not nil.
func (_u *ActionUpdate) SetNillableActionType(v *string) *ActionUpdate {
	if v != nil {
		_u.SetActionType(*v)
	}
	return _u
}

// ClearActionType clears the value of the "action_type" field.
func (_u *ActionUpdate) ClearActionType() *ActionUpdate {
	_u.mutation.ClearActionType()
	return _u
}

// SetActionAssignee sets the "action_assignee" field.
func (_u *ActionUpdate) SetActionAssignee(v string) *ActionUpdate {
	_u.mutation.SetActionAssignee(v)
	return _u
}

// SetNillableActionAssignee sets the "action_assignee" field if the given value is not nil.
func (_u *ActionUpdate) SetNillableActionAssignee(v *string) *ActionUpdate {
	if v != nil {
		_u.SetActionAssignee(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ActionUpdate) SetStatus(v action.Status) *ActionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ActionUpdate) SetNillableStatus(v *action.Status) *ActionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetActionResult sets the "action_result" field.
func (_u *ActionUpdate) SetActionResult(v map[string]interface{}) *ActionUpdate {
	_u.mutation.SetActionResult(v)
	return _u
}

// ClearActionResult clears the value of the "action_result" field.
func (_u *ActionUpdate) ClearActionResult() *ActionUpdate {
	_u.mutation.ClearActionResult()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *ActionUpdate) SetRetryCount(v int) *ActionUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *ActionUpdate) SetNillableRetryCount(v *int) *ActionUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *ActionUpdate) AddRetryCount(v int) *ActionUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ActionUpdate) SetUpdatedAt(v time.Time) *ActionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ActionMutation object of the builder.
func (_u *ActionUpdate) Mutation() *ActionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ActionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ActionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ActionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := action.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActionUpdate) check() error {
	if v, ok := _u.mutation.ActionName(); ok {
		if err := action.ActionNameValidator(v); err != nil {
			return &ValidationError{Name: "action_name", err: fmt.Errorf(`ent: validator failed for field "Action.action_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ActionType(); ok {
		if err := action.ActionTypeValidator(v); err != nil {
			return &ValidationError{Name: "action_type", err: fmt.Errorf(`ent: validator failed for field "Action.action_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ActionAssignee(); ok {
		if err := action.ActionAssigneeValidator(v); err != nil {
			return &ValidationError{Name: "action_assignee", err: fmt.Errorf(`ent: validator failed for field "Action.action_assignee": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := action.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Action.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ActionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(action.Table, action.Columns, sqlgraph.NewFieldSpec(action.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ActionName(); ok {
		_spec.SetField(action.FieldActionName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActionType(); ok {
		_spec.SetField(action.FieldActionType, field.TypeString, value)
	}
	if _u.mutation.ActionTypeCleared() {
		_spec.ClearField(action.FieldActionType, field.TypeString)
	}
	if value, ok := _u.mutation.ActionAssignee(); ok {
		_spec.SetField(action.FieldActionAssignee, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(action.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ActionResult(); ok {
		_spec.SetField(action.FieldActionResult, field.TypeJSON, value)
	}
	if _u.mutation.ActionResultCleared() {
		_spec.ClearField(action.FieldActionResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(action.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(action.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(action.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{action.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ActionUpdateOne is the builder for updating a single Action entity.
type ActionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ActionMutation
}

// SetActionName sets the "action_name" field.
func (_u *ActionUpdateOne) SetActionName(v string) *ActionUpdateOne {
	_u.mutation.SetActionName(v)
	return _u
}

// SetNillableActionName sets the "action_name" field if the given value is not nil.
func (_u *ActionUpdateOne) SetNillableActionName(v *string) *ActionUpdateOne {
	if v != nil {
		_u.SetActionName(*v)
	}
	return _u
}

// SetActionType sets the "action_type" field.
func (_u *ActionUpdateOne) SetActionType(v string) *ActionUpdateOne {
	_u.mutation.SetActionType(v)
	return _u
}

// SetNillableActionType sets the "action_type" field if the given value is not nil.
func (_u *ActionUpdateOne) SetNillableActionType(v *string) *ActionUpdateOne {
	if v != nil {
		_u.SetActionType(*v)
	}
	return _u
}

// ClearActionType clears the value of the "action_type" field.
func (_u *ActionUpdateOne) ClearActionType() *ActionUpdateOne {
	_u.mutation.ClearActionType()
	return _u
}

// SetActionAssignee sets the "action_assignee" field.
func (_u *ActionUpdateOne) SetActionAssignee(v string) *ActionUpdateOne {
	_u.mutation.SetActionAssignee(v)
	return _u
}

// SetNillableActionAssignee sets the "action_assignee" field if the given value is not nil.
func (_u *ActionUpdateOne) SetNillableActionAssignee(v *string) *ActionUpdateOne {
	if v != nil {
		_u.SetActionAssignee(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ActionUpdateOne) SetStatus(v action.Status) *ActionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ActionUpdateOne) SetNillableStatus(v *action.Status) *ActionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetActionResult sets the "action_result" field.
func (_u *ActionUpdateOne) SetActionResult(v map[string]interface{}) *ActionUpdateOne {
	_u.mutation.SetActionResult(v)
	return _u
}

// ClearActionResult clears the value of the "action_result" field.
func (_u *ActionUpdateOne) ClearActionResult() *ActionUpdateOne {
	_u.mutation.ClearActionResult()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *ActionUpdateOne) SetRetryCount(v int) *ActionUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *ActionUpdateOne) SetNillableRetryCount(v *int) *ActionUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *ActionUpdateOne) AddRetryCount(v int) *ActionUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ActionUpdateOne) SetUpdatedAt(v time.Time) *ActionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ActionMutation object of the builder.
func (_u *ActionUpdateOne) Mutation() *ActionMutation {
	return _u.mutation
}

// Where appends a list predicates to the ActionUpdate builder.
func (_u *ActionUpdateOne) Where(ps ...predicate.Action) *ActionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ActionUpdateOne) Select(field string, fields ...string) *ActionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Action entity.
func (_u *ActionUpdateOne) Save(ctx context.Context) (*Action, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActionUpdateOne) SaveX(ctx context.Context) *Action {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ActionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ActionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := action.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActionUpdateOne) check() error {
	if v, ok := _u.mutation.ActionName(); ok {
		if err := action.ActionNameValidator(v); err != nil {
			return &ValidationError{Name: "action_name", err: fmt.Errorf(`ent: validator failed for field "Action.action_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ActionType(); ok {
		if err := action.ActionTypeValidator(v); err != nil {
			return &ValidationError{Name: "action_type", err: fmt.Errorf(`ent: validator failed for field "Action.action_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ActionAssignee(); ok {
		if err := action.ActionAssigneeValidator(v); err != nil {
			return &ValidationError{Name: "action_assignee", err: fmt.Errorf(`ent: validator failed for field "Action.action_assignee": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := action.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Action.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ActionUpdateOne) sqlSave(ctx context.Context) (_node *Action, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(action.Table, action.Columns, sqlgraph.NewFieldSpec(action.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Action.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, action.FieldID)
		for _, f := range fields {
			if !action.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != action.FieldID {
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
	if value, ok := _u.mutation.ActionName(); ok {
		_spec.SetField(action.FieldActionName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActionType(); ok {
		_spec.SetField(action.FieldActionType, field.TypeString, value)
	}
	if _u.mutation.ActionTypeCleared() {
		_spec.ClearField(action.FieldActionType, field.TypeString)
	}
	if value, ok := _u.mutation.ActionAssignee(); ok {
		_spec.SetField(action.FieldActionAssignee, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(action.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ActionResult(); ok {
		_spec.SetField(action.FieldActionResult, field.TypeJSON, value)
	}
	if _u.mutation.ActionResultCleared() {
		_spec.ClearField(action.FieldActionResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(action.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(action.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(action.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Action{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{action.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
