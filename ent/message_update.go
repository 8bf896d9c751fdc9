// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/deepsoc/deepsoc/ent/message"
	"github.com/deepsoc/deepsoc/ent/predicate"
)

// MessageUpdate is the builder for updating Message entities.
type MessageUpdate struct {
	config
	hooks    []Hook
	mutation *MessageMutation
}

// Where appends a list predicates to the MessageUpdate builder.
func (_u *MessageUpdate) Where(ps ...predicate.Message) *MessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMessageFrom sets the "message_from" field.
func (_u *MessageUpdate) SetMessageFrom(v message.MessageFrom) *MessageUpdate {
	_u.mutation.SetMessageFrom(v)
	return _u
}

// SetNillableMessageFrom sets the "message_from" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableMessageFrom(v *message.MessageFrom) *MessageUpdate {
	if v != nil {
		_u.SetMessageFrom(*v)
	}
	return _u
}

// SetMessageType sets the "message_type" field.
func (_u *MessageUpdate) SetMessageType(v string) *MessageUpdate {
	_u.mutation.SetMessageType(v)
	return _u
}

// SetNillableMessageType sets the "message_type" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableMessageType(v *string) *MessageUpdate {
	if v != nil {
		_u.SetMessageType(*v)
	}
	return _u
}

// SetMessageContent sets the "message_content" field.
func (_u *MessageUpdate) SetMessageContent(v map[string]interface{}) *MessageUpdate {
	_u.mutation.SetMessageContent(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *MessageUpdate) SetUserID(v string) *MessageUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableUserID(v *string) *MessageUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *MessageUpdate) ClearUserID() *MessageUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// Mutation returns the MessageMutation object of the builder.
func (_u *MessageUpdate) Mutation() *MessageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MessageUpdate) check() error {
	if v, ok := _u.mutation.MessageFrom(); ok {
		if err := message.MessageFromValidator(v); err != nil {
			return &ValidationError{Name: "message_from", err: fmt.Errorf(`ent: validator failed for field "Message.message_from": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MessageType(); ok {
		if err := message.MessageTypeValidator(v); err != nil {
			return &ValidationError{Name: "message_type", err: fmt.Errorf(`ent: validator failed for field "Message.message_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := message.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Message.user_id": %w`, err)}
		}
	}
	return nil
}

func (_u *MessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(message.Table, message.Columns, sqlgraph.NewFieldSpec(message.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.MessageFrom(); ok {
		_spec.SetField(message.FieldMessageFrom, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MessageType(); ok {
		_spec.SetField(message.FieldMessageType, field.TypeString, value)
	}
	if value, ok := _u.mutation.MessageContent(); ok {
		_spec.SetField(message.FieldMessageContent, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(message.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(message.FieldUserID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{message.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MessageUpdateOne is the builder for updating a single Message entity.
type MessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MessageMutation
}

// SetMessageFrom sets the "message_from" field.
func (_u *MessageUpdateOne) SetMessageFrom(v message.MessageFrom) *MessageUpdateOne {
	_u.mutation.SetMessageFrom(v)
	return _u
}

// SetNillableMessageFrom sets the "message_from" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableMessageFrom(v *message.MessageFrom) *MessageUpdateOne {
	if v != nil {
		_u.SetMessageFrom(*v)
	}
	return _u
}

// SetMessageType sets the "message_type" field.
func (_u *MessageUpdateOne) SetMessageType(v string) *MessageUpdateOne {
	_u.mutation.SetMessageType(v)
	return _u
}

// SetNillableMessageType sets the "message_type" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableMessageType(v *string) *MessageUpdateOne {
	if v != nil {
		_u.SetMessageType(*v)
	}
	return _u
}

// SetMessageContent sets the "message_content" field.
func (_u *MessageUpdateOne) SetMessageContent(v map[string]interface{}) *MessageUpdateOne {
	_u.mutation.SetMessageContent(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *MessageUpdateOne) SetUserID(v string) *MessageUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableUserID(v *string) *MessageUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *MessageUpdateOne) ClearUserID() *MessageUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// Mutation returns the MessageMutation object of the builder.
func (_u *MessageUpdateOne) Mutation() *MessageMutation {
	return _u.mutation
}

// Where appends a list predicates to the MessageUpdate builder.
func (_u *MessageUpdateOne) Where(ps ...predicate.Message) *MessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MessageUpdateOne) Select(field string, fields ...string) *MessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Message entity.
func (_u *MessageUpdateOne) Save(ctx context.Context) (*Message, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageUpdateOne) SaveX(ctx context.Context) *Message {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MessageUpdateOne) check() error {
	if v, ok := _u.mutation.MessageFrom(); ok {
		if err := message.MessageFromValidator(v); err != nil {
			return &ValidationError{Name: "message_from", err: fmt.Errorf(`ent: validator failed for field "Message.message_from": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MessageType(); ok {
		if err := message.MessageTypeValidator(v); err != nil {
			return &ValidationError{Name: "message_type", err: fmt.Errorf(`ent: validator failed for field "Message.message_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := message.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Message.user_id": %w`, err)}
		}
	}
	return nil
}

func (_u *MessageUpdateOne) sqlSave(ctx context.Context) (_node *Message, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(message.Table, message.Columns, sqlgraph.NewFieldSpec(message.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Message.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, message.FieldID)
		for _, f := range fields {
			if !message.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != message.FieldID {
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
	if value, ok := _u.mutation.MessageFrom(); ok {
		_spec.SetField(message.FieldMessageFrom, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MessageType(); ok {
		_spec.SetField(message.FieldMessageType, field.TypeString, value)
	}
	if value, ok := _u.mutation.MessageContent(); ok {
		_spec.SetField(message.FieldMessageContent, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(message.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(message.FieldUserID, field.TypeString)
	}
	_node = &Message{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{message.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
