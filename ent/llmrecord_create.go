// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/deepsoc/deepsoc/ent/llmrecord"
)

// LLMRecordCreate is the builder for creating a LLMRecord entity.
type LLMRecordCreate struct {
	config
	mutation *LLMRecordMutation
	hooks    []Hook
}

// SetRequestID sets the "request_id" field.
func (_c *LLMRecordCreate) SetRequestID(v string) *LLMRecordCreate {
	_c.mutation.SetRequestID(v)
	return _c
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_c *LLMRecordCreate) SetNillableRequestID(v *string) *LLMRecordCreate {
	if v != nil {
		_c.SetRequestID(*v)
	}
	return _c
}

// SetModelName sets the "model_name" field.
func (_c *LLMRecordCreate) SetModelName(v string) *LLMRecordCreate {
	_c.mutation.SetModelName(v)
	return _c
}

// SetRequestMessages sets the "request_messages" field.
func (_c *LLMRecordCreate) SetRequestMessages(v []map[string]interface{}) *LLMRecordCreate {
	_c.mutation.SetRequestMessages(v)
	return _c
}

// SetResponseContent sets the "response_content" field.
func (_c *LLMRecordCreate) SetResponseContent(v string) *LLMRecordCreate {
	_c.mutation.SetResponseContent(v)
	return _c
}

// SetNillableResponseContent sets the "response_content" field if the given value is not nil.
func (_c *LLMRecordCreate) SetNillableResponseContent(v *string) *LLMRecordCreate {
	if v != nil {
		_c.SetResponseContent(*v)
	}
	return _c
}

// SetResponseFull sets the "response_full" field.
func (_c *LLMRecordCreate) SetResponseFull(v map[string]interface{}) *LLMRecordCreate {
	_c.mutation.SetResponseFull(v)
	return _c
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_c *LLMRecordCreate) SetPromptTokens(v int) *LLMRecordCreate {
	_c.mutation.SetPromptTokens(v)
	return _c
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (_c *LLMRecordCreate) SetNillablePromptTokens(v *int) *LLMRecordCreate {
	if v != nil {
		_c.SetPromptTokens(*v)
	}
	return _c
}

// SetCompletionTokens sets the "completion_tokens" field.
func (_c *LLMRecordCreate) SetCompletionTokens(v int) *LLMRecordCreate {
	_c.mutation.SetCompletionTokens(v)
	return _c
}

// SetNillableCompletionTokens sets the "completion_tokens" field if the given value is not nil.
func (_c *LLMRecordCreate) SetNillableCompletionTokens(v *int) *LLMRecordCreate {
	if v != nil {
		_c.SetCompletionTokens(*v)
	}
	return _c
}

// SetTotalTokens sets the "total_tokens" field.
func (_c *LLMRecordCreate) SetTotalTokens(v int) *LLMRecordCreate {
	_c.mutation.SetTotalTokens(v)
	return _c
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_c *LLMRecordCreate) SetNillableTotalTokens(v *int) *LLMRecordCreate {
	if v != nil {
		_c.SetTotalTokens(*v)
	}
	return _c
}

// SetCachedTokens sets the "cached_tokens" field.
func (_c *LLMRecordCreate) SetCachedTokens(v int) *LLMRecordCreate {
	_c.mutation.SetCachedTokens(v)
	return _c
}

// SetNillableCachedTokens sets the "cached_tokens" field if the given value is not nil.
func (_c *LLMRecordCreate) SetNillableCachedTokens(v *int) *LLMRecordCreate {
	if v != nil {
		_c.SetCachedTokens(*v)
	}
	return _c
}

// SetEventID sets the "event_id" field.
func (_c *LLMRecordCreate) SetEventID(v string) *LLMRecordCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_c *LLMRecordCreate) SetNillableEventID(v *string) *LLMRecordCreate {
	if v != nil {
		_c.SetEventID(*v)
	}
	return _c
}

// SetRoundID sets the "round_id" field.
func (_c *LLMRecordCreate) SetRoundID(v int) *LLMRecordCreate {
	_c.mutation.SetRoundID(v)
	return _c
}

// SetNillableRoundID sets the "round_id" field if the given value is not nil.
func (_c *LLMRecordCreate) SetNillableRoundID(v *int) *LLMRecordCreate {
	if v != nil {
		_c.SetRoundID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LLMRecordCreate) SetCreatedAt(v time.Time) *LLMRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LLMRecordCreate) SetNillableCreatedAt(v *time.Time) *LLMRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the LLMRecordMutation object of the builder.
func (_c *LLMRecordCreate) Mutation() *LLMRecordMutation {
	return _c.mutation
}

// Save creates the LLMRecord in the database.
func (_c *LLMRecordCreate) Save(ctx context.Context) (*LLMRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LLMRecordCreate) SaveX(ctx context.Context) *LLMRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LLMRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LLMRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LLMRecordCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := llmrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LLMRecordCreate) check() error {
	if v, ok := _c.mutation.RequestID(); ok {
		if err := llmrecord.RequestIDValidator(v); err != nil {
			return &ValidationError{Name: "request_id", err: fmt.Errorf(`ent: validator failed for field "LLMRecord.request_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ModelName(); !ok {
		return &ValidationError{Name: "model_name", err: errors.New(`ent: missing required field "LLMRecord.model_name"`)}
	}
	if v, ok := _c.mutation.ModelName(); ok {
		if err := llmrecord.ModelNameValidator(v); err != nil {
			return &ValidationError{Name: "model_name", err: fmt.Errorf(`ent: validator failed for field "LLMRecord.model_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RequestMessages(); !ok {
		return &ValidationError{Name: "request_messages", err: errors.New(`ent: missing required field "LLMRecord.request_messages"`)}
	}
	if v, ok := _c.mutation.EventID(); ok {
		if err := llmrecord.EventIDValidator(v); err != nil {
			return &ValidationError{Name: "event_id", err: fmt.Errorf(`ent: validator failed for field "LLMRecord.event_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LLMRecord.created_at"`)}
	}
	return nil
}

func (_c *LLMRecordCreate) sqlSave(ctx context.Context) (*LLMRecord, error) {
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

func (_c *LLMRecordCreate) createSpec() (*LLMRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &LLMRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(llmrecord.Table, sqlgraph.NewFieldSpec(llmrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.RequestID(); ok {
		_spec.SetField(llmrecord.FieldRequestID, field.TypeString, value)
		_node.RequestID = value
	}
	if value, ok := _c.mutation.ModelName(); ok {
		_spec.SetField(llmrecord.FieldModelName, field.TypeString, value)
		_node.ModelName = value
	}
	if value, ok := _c.mutation.RequestMessages(); ok {
		_spec.SetField(llmrecord.FieldRequestMessages, field.TypeJSON, value)
		_node.RequestMessages = value
	}
	if value, ok := _c.mutation.ResponseContent(); ok {
		_spec.SetField(llmrecord.FieldResponseContent, field.TypeString, value)
		_node.ResponseContent = value
	}
	if value, ok := _c.mutation.ResponseFull(); ok {
		_spec.SetField(llmrecord.FieldResponseFull, field.TypeJSON, value)
		_node.ResponseFull = value
	}
	if value, ok := _c.mutation.PromptTokens(); ok {
		_spec.SetField(llmrecord.FieldPromptTokens, field.TypeInt, value)
		_node.PromptTokens = &value
	}
	if value, ok := _c.mutation.CompletionTokens(); ok {
		_spec.SetField(llmrecord.FieldCompletionTokens, field.TypeInt, value)
		_node.CompletionTokens = &value
	}
	if value, ok := _c.mutation.TotalTokens(); ok {
		_spec.SetField(llmrecord.FieldTotalTokens, field.TypeInt, value)
		_node.TotalTokens = &value
	}
	if value, ok := _c.mutation.CachedTokens(); ok {
		_spec.SetField(llmrecord.FieldCachedTokens, field.TypeInt, value)
		_node.CachedTokens = &value
	}
	if value, ok := _c.mutation.EventID(); ok {
		_spec.SetField(llmrecord.FieldEventID, field.TypeString, value)
		_node.EventID = value
	}
	if value, ok := _c.mutation.RoundID(); ok {
		_spec.SetField(llmrecord.FieldRoundID, field.TypeInt, value)
		_node.RoundID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(llmrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// LLMRecordCreateBulk is the builder for creating many LLMRecord entities in bulk.
type LLMRecordCreateBulk struct {
	config
	err      error
	builders []*LLMRecordCreate
}

// Save creates the LLMRecord entities in the database.
func (_c *LLMRecordCreateBulk) Save(ctx context.Context) ([]*LLMRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LLMRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LLMRecordMutation)
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
func (_c *LLMRecordCreateBulk) SaveX(ctx context.Context) []*LLMRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LLMRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LLMRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
