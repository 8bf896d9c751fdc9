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
	"github.com/deepsoc/deepsoc/ent/globalsetting"
	"github.com/deepsoc/deepsoc/ent/predicate"
)

// GlobalSettingUpdate is the builder for updating GlobalSetting entities.
type GlobalSettingUpdate struct {
	config
	hooks    []Hook
	mutation *GlobalSettingMutation
}

// Where appends a list predicates to the GlobalSettingUpdate builder.
func (_u *GlobalSettingUpdate) Where(ps ...predicate.GlobalSetting) *GlobalSettingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKey sets the "key" field.
func (_u *GlobalSettingUpdate) SetKey(v string) *GlobalSettingUpdate {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *GlobalSettingUpdate) SetNillableKey(v *string) *GlobalSettingUpdate {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *GlobalSettingUpdate) SetValue(v string) *GlobalSettingUpdate {
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *GlobalSettingUpdate) SetNillableValue(v *string) *GlobalSettingUpdate {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// ClearValue clears the value of the "value" field.
func (_u *GlobalSettingUpdate) ClearValue() *GlobalSettingUpdate {
	_u.mutation.ClearValue()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *GlobalSettingUpdate) SetUpdatedAt(v time.Time) *GlobalSettingUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the GlobalSettingMutation object of the builder.
func (_u *GlobalSettingUpdate) Mutation() *GlobalSettingMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GlobalSettingUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GlobalSettingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GlobalSettingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GlobalSettingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *GlobalSettingUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := globalsetting.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GlobalSettingUpdate) check() error {
	if v, ok := _u.mutation.Key(); ok {
		if err := globalsetting.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "GlobalSetting.key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Value(); ok {
		if err := globalsetting.ValueValidator(v); err != nil {
			return &ValidationError{Name: "value", err: fmt.Errorf(`ent: validator failed for field "GlobalSetting.value": %w`, err)}
		}
	}
	return nil
}

func (_u *GlobalSettingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(globalsetting.Table, globalsetting.Columns, sqlgraph.NewFieldSpec(globalsetting.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(globalsetting.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(globalsetting.FieldValue, field.TypeString, value)
	}
	if _u.mutation.ValueCleared() {
		_spec.ClearField(globalsetting.FieldValue, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(globalsetting.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{globalsetting.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GlobalSettingUpdateOne is the builder for updating a single GlobalSetting entity.
type GlobalSettingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GlobalSettingMutation
}

// SetKey sets the "key" field.
func (_u *GlobalSettingUpdateOne) SetKey(v string) *GlobalSettingUpdateOne {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *GlobalSettingUpdateOne) SetNillableKey(v *string) *GlobalSettingUpdateOne {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *GlobalSettingUpdateOne) SetValue(v string) *GlobalSettingUpdateOne {
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *GlobalSettingUpdateOne) SetNillableValue(v *string) *GlobalSettingUpdateOne {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// ClearValue clears the value of the "value" field.
func (_u *GlobalSettingUpdateOne) ClearValue() *GlobalSettingUpdateOne {
	_u.mutation.ClearValue()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *GlobalSettingUpdateOne) SetUpdatedAt(v time.Time) *GlobalSettingUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the GlobalSettingMutation object of the builder.
func (_u *GlobalSettingUpdateOne) Mutation() *GlobalSettingMutation {
	return _u.mutation
}

// Where appends a list predicates to the GlobalSettingUpdate builder.
func (_u *GlobalSettingUpdateOne) Where(ps ...predicate.GlobalSetting) *GlobalSettingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GlobalSettingUpdateOne) Select(field string, fields ...string) *GlobalSettingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GlobalSetting entity.
func (_u *GlobalSettingUpdateOne) Save(ctx context.Context) (*GlobalSetting, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GlobalSettingUpdateOne) SaveX(ctx context.Context) *GlobalSetting {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GlobalSettingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GlobalSettingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *GlobalSettingUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := globalsetting.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GlobalSettingUpdateOne) check() error {
	if v, ok := _u.mutation.Key(); ok {
		if err := globalsetting.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "GlobalSetting.key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Value(); ok {
		if err := globalsetting.ValueValidator(v); err != nil {
			return &ValidationError{Name: "value", err: fmt.Errorf(`ent: validator failed for field "GlobalSetting.value": %w`, err)}
		}
	}
	return nil
}

func (_u *GlobalSettingUpdateOne) sqlSave(ctx context.Context) (_node *GlobalSetting, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(globalsetting.Table, globalsetting.Columns, sqlgraph.NewFieldSpec(globalsetting.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GlobalSetting.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, globalsetting.FieldID)
		for _, f := range fields {
			if !globalsetting.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != globalsetting.FieldID {
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
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(globalsetting.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(globalsetting.FieldValue, field.TypeString, value)
	}
	if _u.mutation.ValueCleared() {
		_spec.ClearField(globalsetting.FieldValue, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(globalsetting.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &GlobalSetting{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{globalsetting.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
