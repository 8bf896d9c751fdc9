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
	"github.com/deepsoc/deepsoc/ent/predicate"
	"github.com/deepsoc/deepsoc/ent/summary"
)

// SummaryUpdate is the builder for updating Summary entities.
type SummaryUpdate struct {
	config
	hooks    []Hook
	mutation *SummaryMutation
}

// Where appends a list predicates to the SummaryUpdate builder.
func (_u *SummaryUpdate) Where(ps ...predicate.Summary) *SummaryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEventSummary sets the "event_summary" field.
func (_u *SummaryUpdate) SetEventSummary(v string) *SummaryUpdate {
	_u.mutation.SetEventSummary(v)
	return _u
}

// SetNillableEventSummary sets the "event_summary" field if the given value is not nil.
func (_u *SummaryUpdate) SetNillableEventSummary(v *string) *SummaryUpdate {
	if v != nil {
		_u.SetEventSummary(*v)
	}
	return _u
}

// ClearEventSummary clears the value of the "event_summary" field.
func (_u *SummaryUpdate) ClearEventSummary() *SummaryUpdate {
	_u.mutation.ClearEventSummary()
	return _u
}

// SetEventSuggestion sets the "event_suggestion" field.
func (_u *SummaryUpdate) SetEventSuggestion(v string) *SummaryUpdate {
	_u.mutation.SetEventSuggestion(v)
	return _u
}

// SetNillableEventSuggestion sets the "event_suggestion" field if the given value is not nil.
func (_u *SummaryUpdate) SetNillableEventSuggestion(v *string) *SummaryUpdate {
	if v != nil {
		_u.SetEventSuggestion(*v)
	}
	return _u
}

// ClearEventSuggestion clears the value of the "event_suggestion" field.
func (_u *SummaryUpdate) ClearEventSuggestion() *SummaryUpdate {
	_u.mutation.ClearEventSuggestion()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SummaryUpdate) SetUpdatedAt(v time.Time) *SummaryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SummaryMutation object of the builder.
func (_u *SummaryUpdate) Mutation() *SummaryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SummaryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SummaryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SummaryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SummaryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SummaryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := summary.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *SummaryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(summary.Table, summary.Columns, sqlgraph.NewFieldSpec(summary.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EventSummary(); ok {
		_spec.SetField(summary.FieldEventSummary, field.TypeString, value)
	}
	if _u.mutation.EventSummaryCleared() {
		_spec.ClearField(summary.FieldEventSummary, field.TypeString)
	}
	if value, ok := _u.mutation.EventSuggestion(); ok {
		_spec.SetField(summary.FieldEventSuggestion, field.TypeString, value)
	}
	if _u.mutation.EventSuggestionCleared() {
		_spec.ClearField(summary.FieldEventSuggestion, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(summary.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{summary.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SummaryUpdateOne is the builder for updating a single Summary entity.
type SummaryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SummaryMutation
}

// SetEventSummary sets the "event_summary" field.
func (_u *SummaryUpdateOne) SetEventSummary(v string) *SummaryUpdateOne {
	_u.mutation.SetEventSummary(v)
	return _u
}

// SetNillableEventSummary sets the "event_summary" field if the given value is not nil.
func (_u *SummaryUpdateOne) SetNillableEventSummary(v *string) *SummaryUpdateOne {
	if v != nil {
		_u.SetEventSummary(*v)
	}
	return _u
}

// ClearEventSummary clears the value of the "event_summary" field.
func (_u *SummaryUpdateOne) ClearEventSummary() *SummaryUpdateOne {
	_u.mutation.ClearEventSummary()
	return _u
}

// SetEventSuggestion sets the "event_suggestion" field.
func (_u *SummaryUpdateOne) SetEventSuggestion(v string) *SummaryUpdateOne {
	_u.mutation.SetEventSuggestion(v)
	return _u
}

// SetNillableEventSuggestion sets the "event_suggestion" field if the given value is not nil.
func (_u *SummaryUpdateOne) SetNillableEventSuggestion(v *string) *SummaryUpdateOne {
	if v != nil {
		_u.SetEventSuggestion(*v)
	}
	return _u
}

// ClearEventSuggestion clears the value of the "event_suggestion" field.
func (_u *SummaryUpdateOne) ClearEventSuggestion() *SummaryUpdateOne {
	_u.mutation.ClearEventSuggestion()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SummaryUpdateOne) SetUpdatedAt(v time.Time) *SummaryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SummaryMutation object of the builder.
func (_u *SummaryUpdateOne) Mutation() *SummaryMutation {
	return _u.mutation
}

// Where appends a list predicates to the SummaryUpdate builder.
func (_u *SummaryUpdateOne) Where(ps ...predicate.Summary) *SummaryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SummaryUpdateOne) Select(field string, fields ...string) *SummaryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Summary entity.
func (_u *SummaryUpdateOne) Save(ctx context.Context) (*Summary, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SummaryUpdateOne) SaveX(ctx context.Context) *Summary {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SummaryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SummaryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SummaryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := summary.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *SummaryUpdateOne) sqlSave(ctx context.Context) (_node *Summary, err error) {
	_spec := sqlgraph.NewUpdateSpec(summary.Table, summary.Columns, sqlgraph.NewFieldSpec(summary.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Summary.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, summary.FieldID)
		for _, f := range fields {
			if !summary.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != summary.FieldID {
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
	if value, ok := _u.mutation.EventSummary(); ok {
		_spec.SetField(summary.FieldEventSummary, field.TypeString, value)
	}
	if _u.mutation.EventSummaryCleared() {
		_spec.ClearField(summary.FieldEventSummary, field.TypeString)
	}
	if value, ok := _u.mutation.EventSuggestion(); ok {
		_spec.SetField(summary.FieldEventSuggestion, field.TypeString, value)
	}
	if _u.mutation.EventSuggestionCleared() {
		_spec.ClearField(summary.FieldEventSuggestion, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(summary.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Summary{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{summary.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
