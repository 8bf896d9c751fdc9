// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/deepsoc/deepsoc/ent/llmrecord"
	"github.com/deepsoc/deepsoc/ent/predicate"
)

// LLMRecordUpdate is the builder for updating LLMRecord entities.
type LLMRecordUpdate struct {
	config
	hooks    []Hook
	mutation *LLMRecordMutation
}

// Where appends a list predicates to the LLMRecordUpdate builder.
func (_u *LLMRecordUpdate) Where(ps ...predicate.LLMRecord) *LLMRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRequestID sets the "request_id" field.
func (_u *LLMRecordUpdate) SetRequestID(v string) *LLMRecordUpdate {
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *LLMRecordUpdate) SetNillableRequestID(v *string) *LLMRecordUpdate {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// ClearRequestID clears the value of the "request_id" field.
func (_u *LLMRecordUpdate) ClearRequestID() *LLMRecordUpdate {
	_u.mutation.ClearRequestID()
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *LLMRecordUpdate) SetModelName(v string) *LLMRecordUpdate {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *LLMRecordUpdate) SetNillableModelName(v *string) *LLMRecordUpdate {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// SetRequestMessages sets the "request_messages" field.
func (_u *LLMRecordUpdate) SetRequestMessages(v []map[string]interface{}) *LLMRecordUpdate {
	_u.mutation.SetRequestMessages(v)
	return _u
}

// AppendRequestMessages appends value to the "request_messages" field.
func (_u *LLMRecordUpdate) AppendRequestMessages(v []map[string]interface{}) *LLMRecordUpdate {
	_u.mutation.AppendRequestMessages(v)
	return _u
}

// SetResponseContent sets the "response_content" field.
func (_u *LLMRecordUpdate) SetResponseContent(v string) *LLMRecordUpdate {
	_u.mutation.SetResponseContent(v)
	return _u
}

// SetNillableResponseContent sets the "response_content" field if the given value is not nil.
func (_u *LLMRecordUpdate) SetNillableResponseContent(v *string) *LLMRecordUpdate {
	if v != nil {
		_u.SetResponseContent(*v)
	}
	return _u
}

// ClearResponseContent clears the value of the "response_content" field.
func (_u *LLMRecordUpdate) ClearResponseContent() *LLMRecordUpdate {
	_u.mutation.ClearResponseContent()
	return _u
}

// SetResponseFull sets the "response_full" field.
func (_u *LLMRecordUpdate) SetResponseFull(v map[string]interface{}) *LLMRecordUpdate {
	_u.mutation.SetResponseFull(v)
	return _u
}

// ClearResponseFull clears the value of the "response_full" field.
func (_u *LLMRecordUpdate) ClearResponseFull() *LLMRecordUpdate {
	_u.mutation.ClearResponseFull()
	return _u
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_u *LLMRecordUpdate) SetPromptTokens(v int) *LLMRecordUpdate {
	_u.mutation.ResetPromptTokens()
	_u.mutation.SetPromptTokens(v)
	return _u
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (_u *LLMRecordUpdate) SetNillablePromptTokens(v *int) *LLMRecordUpdate {
	if v != nil {
		_u.SetPromptTokens(*v)
	}
	return _u
}

// AddPromptTokens adds value to the "prompt_tokens" field.
func (_u *LLMRecordUpdate) AddPromptTokens(v int) *LLMRecordUpdate {
	_u.mutation.AddPromptTokens(v)
	return _u
}

// ClearPromptTokens clears the value of the "prompt_tokens" field.
func (_u *LLMRecordUpdate) ClearPromptTokens() *LLMRecordUpdate {
	_u.mutation.ClearPromptTokens()
	return _u
}

// SetCompletionTokens sets the "completion_tokens" field.
func (_u *LLMRecordUpdate) SetCompletionTokens(v int) *LLMRecordUpdate {
	_u.mutation.ResetCompletionTokens()
	_u.mutation.SetCompletionTokens(v)
	return _u
}

// SetNillableCompletionTokens sets the "completion_tokens" field if the given value is not nil.
func (_u *LLMRecordUpdate) SetNillableCompletionTokens(v *int) *LLMRecordUpdate {
	if v != nil {
		_u.SetCompletionTokens(*v)
	}
	return _u
}

// AddCompletionTokens adds value to the "completion_tokens" field.
func (_u *LLMRecordUpdate) AddCompletionTokens(v int) *LLMRecordUpdate {
	_u.mutation.AddCompletionTokens(v)
	return _u
}

// ClearCompletionTokens clears the value of the "completion_tokens" field.
func (_u *LLMRecordUpdate) ClearCompletionTokens() *LLMRecordUpdate {
	_u.mutation.ClearCompletionTokens()
	return _u
}

// SetTotalTokens sets the "total_tokens" field.
func (_u *LLMRecordUpdate) SetTotalTokens(v int) *LLMRecordUpdate {
	_u.mutation.ResetTotalTokens()
	_u.mutation.SetTotalTokens(v)
	return _u
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_u *LLMRecordUpdate) SetNillableTotalTokens(v *int) *LLMRecordUpdate {
	if v != nil {
		_u.SetTotalTokens(*v)
	}
	return _u
}

// AddTotalTokens adds value to the "total_tokens" field.
func (_u *LLMRecordUpdate) AddTotalTokens(v int) *LLMRecordUpdate {
	_u.mutation.AddTotalTokens(v)
	return _u
}

// ClearTotalTokens clears the value of the "total_tokens" field.
func (_u *LLMRecordUpdate) ClearTotalTokens() *LLMRecordUpdate {
	_u.mutation.ClearTotalTokens()
	return _u
}

// SetCachedTokens sets the "cached_tokens" field.
func (_u *LLMRecordUpdate) SetCachedTokens(v int) *LLMRecordUpdate {
	_u.mutation.ResetCachedTokens()
	_u.mutation.SetCachedTokens(v)
	return _u
}

// SetNillableCachedTokens sets the "cached_tokens" field if the given value is not nil.
func (_u *LLMRecordUpdate) SetNillableCachedTokens(v *int) *LLMRecordUpdate {
	if v != nil {
		_u.SetCachedTokens(*v)
	}
	return _u
}

// AddCachedTokens adds value to the "cached_tokens" field.
func (_u *LLMRecordUpdate) AddCachedTokens(v int) *LLMRecordUpdate {
	_u.mutation.AddCachedTokens(v)
	return _u
}

// ClearCachedTokens clears the value of the "cached_tokens" field.
func (_u *LLMRecordUpdate) ClearCachedTokens() *LLMRecordUpdate {
	_u.mutation.ClearCachedTokens()
	return _u
}

// SetEventID sets the "event_id" field.
func (_u *LLMRecordUpdate) SetEventID(v string) *LLMRecordUpdate {
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *LLMRecordUpdate) SetNillableEventID(v *string) *LLMRecordUpdate {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// ClearEventID clears the value of the "event_id" field.
func (_u *LLMRecordUpdate) ClearEventID() *LLMRecordUpdate {
	_u.mutation.ClearEventID()
	return _u
}

// SetRoundID sets the "round_id" field.
func (_u *LLMRecordUpdate) SetRoundID(v int) *LLMRecordUpdate {
	_u.mutation.ResetRoundID()
	_u.mutation.SetRoundID(v)
	return _u
}

// SetNillableRoundID sets the "round_id" field if the given value is not nil.
func (_u *LLMRecordUpdate) SetNillableRoundID(v *int) *LLMRecordUpdate {
	if v != nil {
		_u.SetRoundID(*v)
	}
	return _u
}

// AddRoundID adds value to the "round_id" field.
func (_u *LLMRecordUpdate) AddRoundID(v int) *LLMRecordUpdate {
	_u.mutation.AddRoundID(v)
	return _u
}

// ClearRoundID clears the value of the "round_id" field.
func (_u *LLMRecordUpdate) ClearRoundID() *LLMRecordUpdate {
	_u.mutation.ClearRoundID()
	return _u
}

// Mutation returns the LLMRecordMutation object of the builder.
func (_u *LLMRecordUpdate) Mutation() *LLMRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LLMRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LLMRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LLMRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LLMRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LLMRecordUpdate) check() error {
	if v, ok := _u.mutation.RequestID(); ok {
		if err := llmrecord.RequestIDValidator(v); err != nil {
			return &ValidationError{Name: "request_id", err: fmt.Errorf(`ent: validator failed for field "LLMRecord.request_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModelName(); ok {
		if err := llmrecord.ModelNameValidator(v); err != nil {
			return &ValidationError{Name: "model_name", err: fmt.Errorf(`ent: validator failed for field "LLMRecord.model_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EventID(); ok {
		if err := llmrecord.EventIDValidator(v); err != nil {
			return &ValidationError{Name: "event_id", err: fmt.Errorf(`ent: validator failed for field "LLMRecord.event_id": %w`, err)}
		}
	}
	return nil
}

func (_u *LLMRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(llmrecord.Table, llmrecord.Columns, sqlgraph.NewFieldSpec(llmrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RequestID(); ok {
		_spec.SetField(llmrecord.FieldRequestID, field.TypeString, value)
	}
	if _u.mutation.RequestIDCleared() {
		_spec.ClearField(llmrecord.FieldRequestID, field.TypeString)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(llmrecord.FieldModelName, field.TypeString, value)
	}
	if value, ok := _u.mutation.RequestMessages(); ok {
		_spec.SetField(llmrecord.FieldRequestMessages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRequestMessages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, llmrecord.FieldRequestMessages, value)
		})
	}
	if value, ok := _u.mutation.ResponseContent(); ok {
		_spec.SetField(llmrecord.FieldResponseContent, field.TypeString, value)
	}
	if _u.mutation.ResponseContentCleared() {
		_spec.ClearField(llmrecord.FieldResponseContent, field.TypeString)
	}
	if value, ok := _u.mutation.ResponseFull(); ok {
		_spec.SetField(llmrecord.FieldResponseFull, field.TypeJSON, value)
	}
	if _u.mutation.ResponseFullCleared() {
		_spec.ClearField(llmrecord.FieldResponseFull, field.TypeJSON)
	}
	if value, ok := _u.mutation.PromptTokens(); ok {
		_spec.SetField(llmrecord.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPromptTokens(); ok {
		_spec.AddField(llmrecord.FieldPromptTokens, field.TypeInt, value)
	}
	if _u.mutation.PromptTokensCleared() {
		_spec.ClearField(llmrecord.FieldPromptTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.CompletionTokens(); ok {
		_spec.SetField(llmrecord.FieldCompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletionTokens(); ok {
		_spec.AddField(llmrecord.FieldCompletionTokens, field.TypeInt, value)
	}
	if _u.mutation.CompletionTokensCleared() {
		_spec.ClearField(llmrecord.FieldCompletionTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.TotalTokens(); ok {
		_spec.SetField(llmrecord.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTokens(); ok {
		_spec.AddField(llmrecord.FieldTotalTokens, field.TypeInt, value)
	}
	if _u.mutation.TotalTokensCleared() {
		_spec.ClearField(llmrecord.FieldTotalTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.CachedTokens(); ok {
		_spec.SetField(llmrecord.FieldCachedTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCachedTokens(); ok {
		_spec.AddField(llmrecord.FieldCachedTokens, field.TypeInt, value)
	}
	if _u.mutation.CachedTokensCleared() {
		_spec.ClearField(llmrecord.FieldCachedTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.EventID(); ok {
		_spec.SetField(llmrecord.FieldEventID, field.TypeString, value)
	}
	if _u.mutation.EventIDCleared() {
		_spec.ClearField(llmrecord.FieldEventID, field.TypeString)
	}
	if value, ok := _u.mutation.RoundID(); ok {
		_spec.SetField(llmrecord.FieldRoundID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRoundID(); ok {
		_spec.AddField(llmrecord.FieldRoundID, field.TypeInt, value)
	}
	if _u.mutation.RoundIDCleared() {
		_spec.ClearField(llmrecord.FieldRoundID, field.TypeInt)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{llmrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LLMRecordUpdateOne is the builder for updating a single LLMRecord entity.
type LLMRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LLMRecordMutation
}

// SetRequestID sets the "request_id" field.
func (_u *LLMRecordUpdateOne) SetRequestID(v string) *LLMRecordUpdateOne {
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *LLMRecordUpdateOne) SetNillableRequestID(v *string) *LLMRecordUpdateOne {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// ClearRequestID clears the value of the "request_id" field.
func (_u *LLMRecordUpdateOne) ClearRequestID() *LLMRecordUpdateOne {
	_u.mutation.ClearRequestID()
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *LLMRecordUpdateOne) SetModelName(v string) *LLMRecordUpdateOne {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *LLMRecordUpdateOne) SetNillableModelName(v *string) *LLMRecordUpdateOne {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// SetRequestMessages sets the "request_messages" field.
func (_u *LLMRecordUpdateOne) SetRequestMessages(v []map[string]interface{}) *LLMRecordUpdateOne {
	_u.mutation.SetRequestMessages(v)
	return _u
}

// AppendRequestMessages appends value to the "request_messages" field.
func (_u *LLMRecordUpdateOne) AppendRequestMessages(v []map[string]interface{}) *LLMRecordUpdateOne {
	_u.mutation.AppendRequestMessages(v)
	return _u
}

// SetResponseContent sets the "response_content" field.
func (_u *LLMRecordUpdateOne) SetResponseContent(v string) *LLMRecordUpdateOne {
	_u.mutation.SetResponseContent(v)
	return _u
}

// SetNillableResponseContent sets the "response_content" field if the given value is not nil.
func (_u *LLMRecordUpdateOne) SetNillableResponseContent(v *string) *LLMRecordUpdateOne {
	if v != nil {
		_u.SetResponseContent(*v)
	}
	return _u
}

// ClearResponseContent clears the value of the "response_content" field.
func (_u *LLMRecordUpdateOne) ClearResponseContent() *LLMRecordUpdateOne {
	_u.mutation.ClearResponseContent()
	return _u
}

// SetResponseFull sets the "response_full" field.
func (_u *LLMRecordUpdateOne) SetResponseFull(v map[string]interface{}) *LLMRecordUpdateOne {
	_u.mutation.SetResponseFull(v)
	return _u
}

// ClearResponseFull clears the value of the "response_full" field.
func (_u *LLMRecordUpdateOne) ClearResponseFull() *LLMRecordUpdateOne {
	_u.mutation.ClearResponseFull()
	return _u
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_u *LLMRecordUpdateOne) SetPromptTokens(v int) *LLMRecordUpdateOne {
	_u.mutation.ResetPromptTokens()
	_u.mutation.SetPromptTokens(v)
	return _u
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (_u *LLMRecordUpdateOne) SetNillablePromptTokens(v *int) *LLMRecordUpdateOne {
	if v != nil {
		_u.SetPromptTokens(*v)
	}
	return _u
}

// AddPromptTokens adds value to the "prompt_tokens" field.
func (_u *LLMRecordUpdateOne) AddPromptTokens(v int) *LLMRecordUpdateOne {
	_u.mutation.AddPromptTokens(v)
	return _u
}

// ClearPromptTokens clears the value of the "prompt_tokens" field.
func (_u *LLMRecordUpdateOne) ClearPromptTokens() *LLMRecordUpdateOne {
	_u.mutation.ClearPromptTokens()
	return _u
}

// SetCompletionTokens sets the "completion_tokens" field.
func (_u *LLMRecordUpdateOne) SetCompletionTokens(v int) *LLMRecordUpdateOne {
	_u.mutation.ResetCompletionTokens()
	_u.mutation.SetCompletionTokens(v)
	return _u
}

// SetNillableCompletionTokens sets the "completion_tokens" field if the given value is not nil.
func (_u *LLMRecordUpdateOne) SetNillableCompletionTokens(v *int) *LLMRecordUpdateOne {
	if v != nil {
		_u.SetCompletionTokens(*v)
	}
	return _u
}

// AddCompletionTokens adds value to the "completion_tokens" field.
func (_u *LLMRecordUpdateOne) AddCompletionTokens(v int) *LLMRecordUpdateOne {
	_u.mutation.AddCompletionTokens(v)
	return _u
}

// ClearCompletionTokens clears the value of the "completion_tokens" field.
func (_u *LLMRecordUpdateOne) ClearCompletionTokens() *LLMRecordUpdateOne {
	_u.mutation.ClearCompletionTokens()
	return _u
}

// SetTotalTokens sets the "total_tokens" field.
func (_u *LLMRecordUpdateOne) SetTotalTokens(v int) *LLMRecordUpdateOne {
	_u.mutation.ResetTotalTokens()
	_u.mutation.SetTotalTokens(v)
	return _u
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_u *LLMRecordUpdateOne) SetNillableTotalTokens(v *int) *LLMRecordUpdateOne {
	if v != nil {
		_u.SetTotalTokens(*v)
	}
	return _u
}

// AddTotalTokens adds value to the "total_tokens" field.
func (_u *LLMRecordUpdateOne) AddTotalTokens(v int) *LLMRecordUpdateOne {
	_u.mutation.AddTotalTokens(v)
	return _u
}

// ClearTotalTokens clears the value of the "total_tokens" field.
func (_u *LLMRecordUpdateOne) ClearTotalTokens() *LLMRecordUpdateOne {
	_u.mutation.ClearTotalTokens()
	return _u
}

// SetCachedTokens sets the "cached_tokens" field.
func (_u *LLMRecordUpdateOne) SetCachedTokens(v int) *LLMRecordUpdateOne {
	_u.mutation.ResetCachedTokens()
	_u.mutation.SetCachedTokens(v)
	return _u
}

// SetNillableCachedTokens sets the "cached_tokens" field if the given value is not nil.
func (_u *LLMRecordUpdateOne) SetNillableCachedTokens(v *int) *LLMRecordUpdateOne {
	if v != nil {
		_u.SetCachedTokens(*v)
	}
	return _u
}

// AddCachedTokens adds value to the "cached_tokens" field.
func (_u *LLMRecordUpdateOne) AddCachedTokens(v int) *LLMRecordUpdateOne {
	_u.mutation.AddCachedTokens(v)
	return _u
}

// ClearCachedTokens clears the value of the "cached_tokens" field.
func (_u *LLMRecordUpdateOne) ClearCachedTokens() *LLMRecordUpdateOne {
	_u.mutation.ClearCachedTokens()
	return _u
}

// SetEventID sets the "event_id" field.
func (_u *LLMRecordUpdateOne) SetEventID(v string) *LLMRecordUpdateOne {
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *LLMRecordUpdateOne) SetNillableEventID(v *string) *LLMRecordUpdateOne {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// ClearEventID clears the value of the "event_id" field.
func (_u *LLMRecordUpdateOne) ClearEventID() *LLMRecordUpdateOne {
	_u.mutation.ClearEventID()
	return _u
}

// SetRoundID sets the "round_id" field.
func (_u *LLMRecordUpdateOne) SetRoundID(v int) *LLMRecordUpdateOne {
	_u.mutation.ResetRoundID()
	_u.mutation.SetRoundID(v)
	return _u
}

// SetNillableRoundID sets the "round_id" field if the given value is not nil.
func (_u *LLMRecordUpdateOne) SetNillableRoundID(v *int) *LLMRecordUpdateOne {
	if v != nil {
		_u.SetRoundID(*v)
	}
	return _u
}

// AddRoundID adds value to the "round_id" field.
func (_u *LLMRecordUpdateOne) AddRoundID(v int) *LLMRecordUpdateOne {
	_u.mutation.AddRoundID(v)
	return _u
}

// ClearRoundID clears the value of the "round_id" field.
func (_u *LLMRecordUpdateOne) ClearRoundID() *LLMRecordUpdateOne {
	_u.mutation.ClearRoundID()
	return _u
}

// Mutation returns the LLMRecordMutation object of the builder.
func (_u *LLMRecordUpdateOne) Mutation() *LLMRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the LLMRecordUpdate builder.
func (_u *LLMRecordUpdateOne) Where(ps ...predicate.LLMRecord) *LLMRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LLMRecordUpdateOne) Select(field string, fields ...string) *LLMRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LLMRecord entity.
func (_u *LLMRecordUpdateOne) Save(ctx context.Context) (*LLMRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LLMRecordUpdateOne) SaveX(ctx context.Context) *LLMRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LLMRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LLMRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LLMRecordUpdateOne) check() error {
	if v, ok := _u.mutation.RequestID(); ok {
		if err := llmrecord.RequestIDValidator(v); err != nil {
			return &ValidationError{Name: "request_id", err: fmt.Errorf(`ent: validator failed for field "LLMRecord.request_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModelName(); ok {
		if err := llmrecord.ModelNameValidator(v); err != nil {
			return &ValidationError{Name: "model_name", err: fmt.Errorf(`ent: validator failed for field "LLMRecord.model_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EventID(); ok {
		if err := llmrecord.EventIDValidator(v); err != nil {
			return &ValidationError{Name: "event_id", err: fmt.Errorf(`ent: validator failed for field "LLMRecord.event_id": %w`, err)}
		}
	}
	return nil
}

func (_u *LLMRecordUpdateOne) sqlSave(ctx context.Context) (_node *LLMRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(llmrecord.Table, llmrecord.Columns, sqlgraph.NewFieldSpec(llmrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LLMRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, llmrecord.FieldID)
		for _, f := range fields {
			if !llmrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != llmrecord.FieldID {
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
	if value, ok := _u.mutation.RequestID(); ok {
		_spec.SetField(llmrecord.FieldRequestID, field.TypeString, value)
	}
	if _u.mutation.RequestIDCleared() {
		_spec.ClearField(llmrecord.FieldRequestID, field.TypeString)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(llmrecord.FieldModelName, field.TypeString, value)
	}
	if value, ok := _u.mutation.RequestMessages(); ok {
		_spec.SetField(llmrecord.FieldRequestMessages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRequestMessages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, llmrecord.FieldRequestMessages, value)
		})
	}
	if value, ok := _u.mutation.ResponseContent(); ok {
		_spec.SetField(llmrecord.FieldResponseContent, field.TypeString, value)
	}
	if _u.mutation.ResponseContentCleared() {
		_spec.ClearField(llmrecord.FieldResponseContent, field.TypeString)
	}
	if value, ok := _u.mutation.ResponseFull(); ok {
		_spec.SetField(llmrecord.FieldResponseFull, field.TypeJSON, value)
	}
	if _u.mutation.ResponseFullCleared() {
		_spec.ClearField(llmrecord.FieldResponseFull, field.TypeJSON)
	}
	if value, ok := _u.mutation.PromptTokens(); ok {
		_spec.SetField(llmrecord.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPromptTokens(); ok {
		_spec.AddField(llmrecord.FieldPromptTokens, field.TypeInt, value)
	}
	if _u.mutation.PromptTokensCleared() {
		_spec.ClearField(llmrecord.FieldPromptTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.CompletionTokens(); ok {
		_spec.SetField(llmrecord.FieldCompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletionTokens(); ok {
		_spec.AddField(llmrecord.FieldCompletionTokens, field.TypeInt, value)
	}
	if _u.mutation.CompletionTokensCleared() {
		_spec.ClearField(llmrecord.FieldCompletionTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.TotalTokens(); ok {
		_spec.SetField(llmrecord.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTokens(); ok {
		_spec.AddField(llmrecord.FieldTotalTokens, field.TypeInt, value)
	}
	if _u.mutation.TotalTokensCleared() {
		_spec.ClearField(llmrecord.FieldTotalTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.CachedTokens(); ok {
		_spec.SetField(llmrecord.FieldCachedTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCachedTokens(); ok {
		_spec.AddField(llmrecord.FieldCachedTokens, field.TypeInt, value)
	}
	if _u.mutation.CachedTokensCleared() {
		_spec.ClearField(llmrecord.FieldCachedTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.EventID(); ok {
		_spec.SetField(llmrecord.FieldEventID, field.TypeString, value)
	}
	if _u.mutation.EventIDCleared() {
		_spec.ClearField(llmrecord.FieldEventID, field.TypeString)
	}
	if value, ok := _u.mutation.RoundID(); ok {
		_spec.SetField(llmrecord.FieldRoundID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRoundID(); ok {
		_spec.AddField(llmrecord.FieldRoundID, field.TypeInt, value)
	}
	if _u.mutation.RoundIDCleared() {
		_spec.ClearField(llmrecord.FieldRoundID, field.TypeInt)
	}
	_node = &LLMRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{llmrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
