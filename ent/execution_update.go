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
	"github.com/deepsoc/deepsoc/ent/execution"
	"github.com/deepsoc/deepsoc/ent/predicate"
)

// ExecutionUpdate is the builder for updating Execution entities.
type ExecutionUpdate struct {
	config
	hooks    []Hook
	mutation *ExecutionMutation
}

// Where appends a list predicates to the ExecutionUpdate builder.
func (_u *ExecutionUpdate) Where(ps ...predicate.Execution) *ExecutionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetExecutionResult sets the "execution_result" field.
func (_u *ExecutionUpdate) SetExecutionResult(v string) *ExecutionUpdate {
	_u.mutation.SetExecutionResult(v)
	return _u
}

// SetNillableExecutionResult sets the "execution_result" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableExecutionResult(v *string) *ExecutionUpdate {
	if v != nil {
		_u.SetExecutionResult(*v)
	}
	return _u
}

// ClearExecutionResult clears the value of the "execution_result" field.
func (_u *ExecutionUpdate) ClearExecutionResult() *ExecutionUpdate {
	_u.mutation.ClearExecutionResult()
	return _u
}

// SetAiSummary sets the "ai_summary" field.
func (_u *ExecutionUpdate) SetAiSummary(v string) *ExecutionUpdate {
	_u.mutation.SetAiSummary(v)
	return _u
}

// SetNillableAiSummary sets the "ai_summary" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableAiSummary(v *string) *ExecutionUpdate {
	if v != nil {
		_u.SetAiSummary(*v)
	}
	return _u
}

// ClearAiSummary clears the value of the "ai_summary" field.
func (_u *ExecutionUpdate) ClearAiSummary() *ExecutionUpdate {
	_u.mutation.ClearAiSummary()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExecutionUpdate) SetStatus(v execution.Status) *ExecutionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExecutionUpdate) SetNillableStatus(v *execution.Status) *ExecutionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExecutionUpdate) SetUpdatedAt(v time.Time) *ExecutionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ExecutionMutation object of the builder.
func (_u *ExecutionUpdate) Mutation() *ExecutionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExecutionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExecutionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExecutionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExecutionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExecutionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := execution.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExecutionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := execution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Execution.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ExecutionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(execution.Table, execution.Columns, sqlgraph.NewFieldSpec(execution.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ExecutionResult(); ok {
		_spec.SetField(execution.FieldExecutionResult, field.TypeString, value)
	}
	if _u.mutation.ExecutionResultCleared() {
		_spec.ClearField(execution.FieldExecutionResult, field.TypeString)
	}
	if value, ok := _u.mutation.AiSummary(); ok {
		_spec.SetField(execution.FieldAiSummary, field.TypeString, value)
	}
	if _u.mutation.AiSummaryCleared() {
		_spec.ClearField(execution.FieldAiSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(execution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(execution.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{execution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExecutionUpdateOne is the builder for updating a single Execution entity.
type ExecutionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExecutionMutation
}

// SetExecutionResult sets the "execution_result" field.
func (_u *ExecutionUpdateOne) SetExecutionResult(v string) *ExecutionUpdateOne {
	_u.mutation.SetExecutionResult(v)
	return _u
}

// SetNillableExecutionResult sets the "execution_result" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableExecutionResult(v *string) *ExecutionUpdateOne {
	if v != nil {
		_u.SetExecutionResult(*v)
	}
	return _u
}

// ClearExecutionResult clears the value of the "execution_result" field.
func (_u *ExecutionUpdateOne) ClearExecutionResult() *ExecutionUpdateOne {
	_u.mutation.ClearExecutionResult()
	return _u
}

// SetAiSummary sets the "ai_summary" field.
func (_u *ExecutionUpdateOne) SetAiSummary(v string) *ExecutionUpdateOne {
	_u.mutation.SetAiSummary(v)
	return _u
}

// SetNillableAiSummary sets the "ai_summary" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableAiSummary(v *string) *ExecutionUpdateOne {
	if v != nil {
		_u.SetAiSummary(*v)
	}
	return _u
}

// ClearAiSummary clears the value of the "ai_summary" field.
func (_u *ExecutionUpdateOne) ClearAiSummary() *ExecutionUpdateOne {
	_u.mutation.ClearAiSummary()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExecutionUpdateOne) SetStatus(v execution.Status) *ExecutionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExecutionUpdateOne) SetNillableStatus(v *execution.Status) *ExecutionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExecutionUpdateOne) SetUpdatedAt(v time.Time) *ExecutionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ExecutionMutation object of the builder.
func (_u *ExecutionUpdateOne) Mutation() *ExecutionMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExecutionUpdate builder.
func (_u *ExecutionUpdateOne) Where(ps ...predicate.Execution) *ExecutionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExecutionUpdateOne) Select(field string, fields ...string) *ExecutionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Execution entity.
func (_u *ExecutionUpdateOne) Save(ctx context.Context) (*Execution, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExecutionUpdateOne) SaveX(ctx context.Context) *Execution {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExecutionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExecutionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExecutionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := execution.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExecutionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := execution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Execution.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ExecutionUpdateOne) sqlSave(ctx context.Context) (_node *Execution, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(execution.Table, execution.Columns, sqlgraph.NewFieldSpec(execution.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Execution.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, execution.FieldID)
		for _, f := range fields {
			if !execution.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != execution.FieldID {
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
	if value, ok := _u.mutation.ExecutionResult(); ok {
		_spec.SetField(execution.FieldExecutionResult, field.TypeString, value)
	}
	if _u.mutation.ExecutionResultCleared() {
		_spec.ClearField(execution.FieldExecutionResult, field.TypeString)
	}
	if value, ok := _u.mutation.AiSummary(); ok {
		_spec.SetField(execution.FieldAiSummary, field.TypeString, value)
	}
	if _u.mutation.AiSummaryCleared() {
		_spec.ClearField(execution.FieldAiSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(execution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(execution.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Execution{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{execution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
