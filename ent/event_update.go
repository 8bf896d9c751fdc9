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
	"github.com/deepsoc/deepsoc/ent/event"
	"github.com/deepsoc/deepsoc/ent/predicate"
)

// EventUpdate is the builder for updating Event entities.
type EventUpdate struct {
	config
	hooks    []Hook
	mutation *EventMutation
}

// Where appends a list predicates to the EventUpdate builder.
func (_u *EventUpdate) Where(ps ...predicate.Event) *EventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEventName sets the "event_name" field.
func (_u *EventUpdate) SetEventName(v string) *EventUpdate {
	_u.mutation.SetEventName(v)
	return _u
}

// SetNillableEventName sets the "event_name" field if the given value is not nil.
func (_u *EventUpdate) SetNillableEventName(v *string) *EventUpdate {
	if v != nil {
		_u.SetEventName(*v)
	}
	return _u
}

// ClearEventName clears the value of the "event_name" field.
func (_u *EventUpdate) ClearEventName() *EventUpdate {
	_u.mutation.ClearEventName()
	return _u
}

// SetMessage sets the "message" field.
func (_u *EventUpdate) SetMessage(v string) *EventUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *EventUpdate) SetNillableMessage(v *string) *EventUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetContext sets the "context" field.
func (_u *EventUpdate) SetContext(v string) *EventUpdate {
	_u.mutation.SetContext(v)
	return _u
}

// SetNillableContext sets the "context" field if the given value is not nil.
func (_u *EventUpdate) SetNillableContext(v *string) *EventUpdate {
	if v != nil {
		_u.SetContext(*v)
	}
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *EventUpdate) ClearContext() *EventUpdate {
	_u.mutation.ClearContext()
	return _u
}

// SetSource sets the "source" field.
func (_u *EventUpdate) SetSource(v string) *EventUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *EventUpdate) SetNillableSource(v *string) *EventUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// ClearSource clears the value of the "source" field.
func (_u *EventUpdate) ClearSource() *EventUpdate {
	_u.mutation.ClearSource()
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *EventUpdate) SetSeverity(v string) *EventUpdate {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *EventUpdate) SetNillableSeverity(v *string) *EventUpdate {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *EventUpdate) SetStatus(v event.Status) *EventUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EventUpdate) SetNillableStatus(v *event.Status) *EventUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrentRound sets the "current_round" field.
func (_u *EventUpdate) SetCurrentRound(v int) *EventUpdate {
	_u.mutation.ResetCurrentRound()
	_u.mutation.SetCurrentRound(v)
	return _u
}

// SetNillableCurrentRound sets the "current_round" field if the given value is not nil.
func (_u *EventUpdate) SetNillableCurrentRound(v *int) *EventUpdate {
	if v != nil {
		_u.SetCurrentRound(*v)
	}
	return _u
}

// AddCurrentRound adds value to the "current_round" field.
func (_u *EventUpdate) AddCurrentRound(v int) *EventUpdate {
	_u.mutation.AddCurrentRound(v)
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *EventUpdate) SetResolvedAt(v time.Time) *EventUpdate {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *EventUpdate) SetNillableResolvedAt(v *time.Time) *EventUpdate {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *EventUpdate) ClearResolvedAt() *EventUpdate {
	_u.mutation.ClearResolvedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EventUpdate) SetUpdatedAt(v time.Time) *EventUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the EventMutation object of the builder.
func (_u *EventUpdate) Mutation() *EventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EventUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EventUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := event.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EventUpdate) check() error {
	if v, ok := _u.mutation.EventName(); ok {
		if err := event.EventNameValidator(v); err != nil {
			return &ValidationError{Name: "event_name", err: fmt.Errorf(`ent: validator failed for field "Event.event_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := event.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Event.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Severity(); ok {
		if err := event.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "Event.severity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := event.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Event.status": %w`, err)}
		}
	}
	return nil
}

func (_u *EventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(event.Table, event.Columns, sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EventName(); ok {
		_spec.SetField(event.FieldEventName, field.TypeString, value)
	}
	if _u.mutation.EventNameCleared() {
		_spec.ClearField(event.FieldEventName, field.TypeString)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(event.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(event.FieldContext, field.TypeString, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(event.FieldContext, field.TypeString)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(event.FieldSource, field.TypeString, value)
	}
	if _u.mutation.SourceCleared() {
		_spec.ClearField(event.FieldSource, field.TypeString)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(event.FieldSeverity, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(event.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentRound(); ok {
		_spec.SetField(event.FieldCurrentRound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentRound(); ok {
		_spec.AddField(event.FieldCurrentRound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(event.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(event.FieldResolvedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(event.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{event.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EventUpdateOne is the builder for updating a single Event entity.
type EventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EventMutation
}

// SetEventName sets the "event_name" field.
func (_u *EventUpdateOne) SetEventName(v string) *EventUpdateOne {
	_u.mutation.SetEventName(v)
	return _u
}

// SetNillableEventName sets the "event_name" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableEventName(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetEventName(*v)
	}
	return _u
}

// ClearEventName clears the value of the "event_name" field.
func (_u *EventUpdateOne) ClearEventName() *EventUpdateOne {
	_u.mutation.ClearEventName()
	return _u
}

// SetMessage sets the "message" field.
func (_u *EventUpdateOne) SetMessage(v string) *EventUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableMessage(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetContext sets the "context" field.
func (_u *EventUpdateOne) SetContext(v string) *EventUpdateOne {
	_u.mutation.SetContext(v)
	return _u
}

// SetNillableContext sets the "context" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableContext(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetContext(*v)
	}
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *EventUpdateOne) ClearContext() *EventUpdateOne {
	_u.mutation.ClearContext()
	return _u
}

// SetSource sets the "source" field.
func (_u *EventUpdateOne) SetSource(v string) *EventUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableSource(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// ClearSource clears the value of the "source" field.
func (_u *EventUpdateOne) ClearSource() *EventUpdateOne {
	_u.mutation.ClearSource()
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *EventUpdateOne) SetSeverity(v string) *EventUpdateOne {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableSeverity(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *EventUpdateOne) SetStatus(v event.Status) *EventUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableStatus(v *event.Status) *EventUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrentRound sets the "current_round" field.
func (_u *EventUpdateOne) SetCurrentRound(v int) *EventUpdateOne {
	_u.mutation.ResetCurrentRound()
	_u.mutation.SetCurrentRound(v)
	return _u
}

// SetNillableCurrentRound sets the "current_round" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableCurrentRound(v *int) *EventUpdateOne {
	if v != nil {
		_u.SetCurrentRound(*v)
	}
	return _u
}

// AddCurrentRound adds value to the "current_round" field.
func (_u *EventUpdateOne) AddCurrentRound(v int) *EventUpdateOne {
	_u.mutation.AddCurrentRound(v)
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *EventUpdateOne) SetResolvedAt(v time.Time) *EventUpdateOne {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableResolvedAt(v *time.Time) *EventUpdateOne {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *EventUpdateOne) ClearResolvedAt() *EventUpdateOne {
	_u.mutation.ClearResolvedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EventUpdateOne) SetUpdatedAt(v time.Time) *EventUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the EventMutation object of the builder.
func (_u *EventUpdateOne) Mutation() *EventMutation {
	return _u.mutation
}

// Where appends a list predicates to the EventUpdate builder.
func (_u *EventUpdateOne) Where(ps ...predicate.Event) *EventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EventUpdateOne) Select(field string, fields ...string) *EventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Event entity.
func (_u *EventUpdateOne) Save(ctx context.Context) (*Event, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventUpdateOne) SaveX(ctx context.Context) *Event {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EventUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := event.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EventUpdateOne) check() error {
	if v, ok := _u.mutation.EventName(); ok {
		if err := event.EventNameValidator(v); err != nil {
			return &ValidationError{Name: "event_name", err: fmt.Errorf(`ent: validator failed for field "Event.event_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := event.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Event.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Severity(); ok {
		if err := event.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "Event.severity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := event.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Event.status": %w`, err)}
		}
	}
	return nil
}

func (_u *EventUpdateOne) sqlSave(ctx context.Context) (_node *Event, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(event.Table, event.Columns, sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Event.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, event.FieldID)
		for _, f := range fields {
			if !event.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != event.FieldID {
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
	if value, ok := _u.mutation.EventName(); ok {
		_spec.SetField(event.FieldEventName, field.TypeString, value)
	}
	if _u.mutation.EventNameCleared() {
		_spec.ClearField(event.FieldEventName, field.TypeString)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(event.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(event.FieldContext, field.TypeString, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(event.FieldContext, field.TypeString)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(event.FieldSource, field.TypeString, value)
	}
	if _u.mutation.SourceCleared() {
		_spec.ClearField(event.FieldSource, field.TypeString)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(event.FieldSeverity, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(event.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentRound(); ok {
		_spec.SetField(event.FieldCurrentRound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentRound(); ok {
		_spec.AddField(event.FieldCurrentRound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(event.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(event.FieldResolvedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(event.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Event{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{event.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
