// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/deepsoc/deepsoc/ent/action"
	"github.com/deepsoc/deepsoc/ent/command"
	"github.com/deepsoc/deepsoc/ent/event"
	"github.com/deepsoc/deepsoc/ent/execution"
	"github.com/deepsoc/deepsoc/ent/globalsetting"
	"github.com/deepsoc/deepsoc/ent/llmrecord"
	"github.com/deepsoc/deepsoc/ent/message"
	"github.com/deepsoc/deepsoc/ent/prompt"
	"github.com/deepsoc/deepsoc/ent/schema"
	"github.com/deepsoc/deepsoc/ent/summary"
	"github.com/deepsoc/deepsoc/ent/task"
	"github.com/deepsoc/deepsoc/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	actionFields := schema.Action{}.Fields()
	_ = actionFields
	// actionDescActionID is the schema descriptor for action_id field.
	actionDescActionID := actionFields[0].Descriptor()
	// action.ActionIDValidator is a validator for the "action_id" field. It is called by the builders before save.
	action.ActionIDValidator = actionDescActionID.Validators[0].(func(string) error)
	// actionDescTaskID is the schema descriptor for task_id field.
	actionDescTaskID := actionFields[1].Descriptor()
	// action.TaskIDValidator is a validator for the "task_id" field. It is called by the builders before save.
	action.TaskIDValidator = actionDescTaskID.Validators[0].(func(string) error)
	// actionDescEventID is the schema descriptor for event_id field.
	actionDescEventID := actionFields[2].Descriptor()
	// action.EventIDValidator is a validator for the "event_id" field. It is called by the builders before save.
	action.EventIDValidator = actionDescEventID.Validators[0].(func(string) error)
	// actionDescActionName is the schema descriptor for action_name field.
	actionDescActionName := actionFields[4].Descriptor()
	// action.ActionNameValidator is a validator for the "action_name" field. It is called by the builders before save.
	action.ActionNameValidator = actionDescActionName.Validators[0].(func(string) error)
	// actionDescActionType is the schema descriptor for action_type field.
	actionDescActionType := actionFields[5].Descriptor()
	// action.ActionTypeValidator is a validator for the "action_type" field. It is called by the builders before save.
	action.ActionTypeValidator = actionDescActionType.Validators[0].(func(string) error)
	// actionDescActionAssignee is the schema descriptor for action_assignee field.
	actionDescActionAssignee := actionFields[6].Descriptor()
	// action.DefaultActionAssignee holds the default value on creation for the action_assignee field.
	action.DefaultActionAssignee = actionDescActionAssignee.Default.(string)
	// action.ActionAssigneeValidator is a validator for the "action_assignee" field. It is called by the builders before save.
	action.ActionAssigneeValidator = actionDescActionAssignee.Validators[0].(func(string) error)
	// actionDescRetryCount is the schema descriptor for retry_count field.
	actionDescRetryCount := actionFields[9].Descriptor()
	// action.DefaultRetryCount holds the default value on creation for the retry_count field.
	action.DefaultRetryCount = actionDescRetryCount.Default.(int)
	// actionDescCreatedAt is the schema descriptor for created_at field.
	actionDescCreatedAt := actionFields[10].Descriptor()
	// action.DefaultCreatedAt holds the default value on creation for the created_at field.
	action.DefaultCreatedAt = actionDescCreatedAt.Default.(func() time.Time)
	// actionDescUpdatedAt is the schema descriptor for updated_at field.
	actionDescUpdatedAt := actionFields[11].Descriptor()
	// action.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	action.DefaultUpdatedAt = actionDescUpdatedAt.Default.(func() time.Time)
	// action.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	action.UpdateDefaultUpdatedAt = actionDescUpdatedAt.UpdateDefault.(func() time.Time)
	commandFields := schema.Command{}.Fields()
	_ = commandFields
	// commandDescCommandID is the schema descriptor for command_id field.
	commandDescCommandID := commandFields[0].Descriptor()
	// command.CommandIDValidator is a validator for the "command_id" field. It is called by the builders before save.
	command.CommandIDValidator = commandDescCommandID.Validators[0].(func(string) error)
	// commandDescActionID is the schema descriptor for action_id field.
	commandDescActionID := commandFields[1].Descriptor()
	// command.ActionIDValidator is a validator for the "action_id" field. It is called by the builders before save.
	command.ActionIDValidator = commandDescActionID.Validators[0].(func(string) error)
	// commandDescTaskID is the schema descriptor for task_id field.
	commandDescTaskID := commandFields[2].Descriptor()
	// command.TaskIDValidator is a validator for the "task_id" field. It is called by the builders before save.
	command.TaskIDValidator = commandDescTaskID.Validators[0].(func(string) error)
	// commandDescEventID is the schema descriptor for event_id field.
	commandDescEventID := commandFields[3].Descriptor()
	// command.EventIDValidator is a validator for the "event_id" field. It is called by the builders before save.
	command.EventIDValidator = commandDescEventID.Validators[0].(func(string) error)
	// commandDescCommandName is the schema descriptor for command_name field.
	commandDescCommandName := commandFields[5].Descriptor()
	// command.CommandNameValidator is a validator for the "command_name" field. It is called by the builders before save.
	command.CommandNameValidator = commandDescCommandName.Validators[0].(func(string) error)
	// commandDescCommandAssignee is the schema descriptor for command_assignee field.
	commandDescCommandAssignee := commandFields[7].Descriptor()
	// command.DefaultCommandAssignee holds the default value on creation for the command_assignee field.
	command.DefaultCommandAssignee = commandDescCommandAssignee.Default.(string)
	// command.CommandAssigneeValidator is a validator for the "command_assignee" field. It is called by the builders before save.
	command.CommandAssigneeValidator = commandDescCommandAssignee.Validators[0].(func(string) error)
	// commandDescCreatedAt is the schema descriptor for created_at field.
	commandDescCreatedAt := commandFields[12].Descriptor()
	// command.DefaultCreatedAt holds the default value on creation for the created_at field.
	command.DefaultCreatedAt = commandDescCreatedAt.Default.(func() time.Time)
	// commandDescUpdatedAt is the schema descriptor for updated_at field.
	commandDescUpdatedAt := commandFields[13].Descriptor()
	// command.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	command.DefaultUpdatedAt = commandDescUpdatedAt.Default.(func() time.Time)
	// command.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	command.UpdateDefaultUpdatedAt = commandDescUpdatedAt.UpdateDefault.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescEventID is the schema descriptor for event_id field.
	eventDescEventID := eventFields[0].Descriptor()
	// event.EventIDValidator is a validator for the "event_id" field. It is called by the builders before save.
	event.EventIDValidator = eventDescEventID.Validators[0].(func(string) error)
	// eventDescEventName is the schema descriptor for event_name field.
	eventDescEventName := eventFields[1].Descriptor()
	// event.EventNameValidator is a validator for the "event_name" field. It is called by the builders before save.
	event.EventNameValidator = eventDescEventName.Validators[0].(func(string) error)
	// eventDescSource is the schema descriptor for source field.
	eventDescSource := eventFields[4].Descriptor()
	// event.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	event.SourceValidator = eventDescSource.Validators[0].(func(string) error)
	// eventDescSeverity is the schema descriptor for severity field.
	eventDescSeverity := eventFields[5].Descriptor()
	// event.DefaultSeverity holds the default value on creation for the severity field.
	event.DefaultSeverity = eventDescSeverity.Default.(string)
	// event.SeverityValidator is a validator for the "severity" field. It is called by the builders before save.
	event.SeverityValidator = eventDescSeverity.Validators[0].(func(string) error)
	// eventDescCurrentRound is the schema descriptor for current_round field.
	eventDescCurrentRound := eventFields[7].Descriptor()
	// event.DefaultCurrentRound holds the default value on creation for the current_round field.
	event.DefaultCurrentRound = eventDescCurrentRound.Default.(int)
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[9].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	// eventDescUpdatedAt is the schema descriptor for updated_at field.
	eventDescUpdatedAt := eventFields[10].Descriptor()
	// event.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	event.DefaultUpdatedAt = eventDescUpdatedAt.Default.(func() time.Time)
	// event.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	event.UpdateDefaultUpdatedAt = eventDescUpdatedAt.UpdateDefault.(func() time.Time)
	executionFields := schema.Execution{}.Fields()
	_ = executionFields
	// executionDescExecutionID is the schema descriptor for execution_id field.
	executionDescExecutionID := executionFields[0].Descriptor()
	// execution.ExecutionIDValidator is a validator for the "execution_id" field. It is called by the builders before save.
	execution.ExecutionIDValidator = executionDescExecutionID.Validators[0].(func(string) error)
	// executionDescCommandID is the schema descriptor for command_id field.
	executionDescCommandID := executionFields[1].Descriptor()
	// execution.CommandIDValidator is a validator for the "command_id" field. It is called by the builders before save.
	execution.CommandIDValidator = executionDescCommandID.Validators[0].(func(string) error)
	// executionDescActionID is the schema descriptor for action_id field.
	executionDescActionID := executionFields[2].Descriptor()
	// execution.ActionIDValidator is a validator for the "action_id" field. It is called by the builders before save.
	execution.ActionIDValidator = executionDescActionID.Validators[0].(func(string) error)
	// executionDescTaskID is the schema descriptor for task_id field.
	executionDescTaskID := executionFields[3].Descriptor()
	// execution.TaskIDValidator is a validator for the "task_id" field. It is called by the builders before save.
	execution.TaskIDValidator = executionDescTaskID.Validators[0].(func(string) error)
	// executionDescEventID is the schema descriptor for event_id field.
	executionDescEventID := executionFields[4].Descriptor()
	// execution.EventIDValidator is a validator for the "event_id" field. It is called by the builders before save.
	execution.EventIDValidator = executionDescEventID.Validators[0].(func(string) error)
	// executionDescCreatedAt is the schema descriptor for created_at field.
	executionDescCreatedAt := executionFields[9].Descriptor()
	// execution.DefaultCreatedAt holds the default value on creation for the created_at field.
	execution.DefaultCreatedAt = executionDescCreatedAt.Default.(func() time.Time)
	// executionDescUpdatedAt is the schema descriptor for updated_at field.
	executionDescUpdatedAt := executionFields[10].Descriptor()
	// execution.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	execution.DefaultUpdatedAt = executionDescUpdatedAt.Default.(func() time.Time)
	// execution.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	execution.UpdateDefaultUpdatedAt = executionDescUpdatedAt.UpdateDefault.(func() time.Time)
	globalsettingFields := schema.GlobalSetting{}.Fields()
	_ = globalsettingFields
	// globalsettingDescKey is the schema descriptor for key field.
	globalsettingDescKey := globalsettingFields[0].Descriptor()
	// globalsetting.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	globalsetting.KeyValidator = globalsettingDescKey.Validators[0].(func(string) error)
	// globalsettingDescValue is the schema descriptor for value field.
	globalsettingDescValue := globalsettingFields[1].Descriptor()
	// globalsetting.ValueValidator is a validator for the "value" field. It is called by the builders before save.
	globalsetting.ValueValidator = globalsettingDescValue.Validators[0].(func(string) error)
	// globalsettingDescUpdatedAt is the schema descriptor for updated_at field.
	globalsettingDescUpdatedAt := globalsettingFields[2].Descriptor()
	// globalsetting.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	globalsetting.DefaultUpdatedAt = globalsettingDescUpdatedAt.Default.(func() time.Time)
	// globalsetting.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	globalsetting.UpdateDefaultUpdatedAt = globalsettingDescUpdatedAt.UpdateDefault.(func() time.Time)
	llmrecordFields := schema.LLMRecord{}.Fields()
	_ = llmrecordFields
	// llmrecordDescRequestID is the schema descriptor for request_id field.
	llmrecordDescRequestID := llmrecordFields[0].Descriptor()
	// llmrecord.RequestIDValidator is a validator for the "request_id" field. It is called by the builders before save.
	llmrecord.RequestIDValidator = llmrecordDescRequestID.Validators[0].(func(string) error)
	// llmrecordDescModelName is the schema descriptor for model_name field.
	llmrecordDescModelName := llmrecordFields[1].Descriptor()
	// llmrecord.ModelNameValidator is a validator for the "model_name" field. It is called by the builders before save.
	llmrecord.ModelNameValidator = llmrecordDescModelName.Validators[0].(func(string) error)
	// llmrecordDescEventID is the schema descriptor for event_id field.
	llmrecordDescEventID := llmrecordFields[9].Descriptor()
	// llmrecord.EventIDValidator is a validator for the "event_id" field. It is called by the builders before save.
	llmrecord.EventIDValidator = llmrecordDescEventID.Validators[0].(func(string) error)
	// llmrecordDescCreatedAt is the schema descriptor for created_at field.
	llmrecordDescCreatedAt := llmrecordFields[11].Descriptor()
	// llmrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	llmrecord.DefaultCreatedAt = llmrecordDescCreatedAt.Default.(func() time.Time)
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescMessageID is the schema descriptor for message_id field.
	messageDescMessageID := messageFields[0].Descriptor()
	// message.MessageIDValidator is a validator for the "message_id" field. It is called by the builders before save.
	message.MessageIDValidator = messageDescMessageID.Validators[0].(func(string) error)
	// messageDescEventID is the schema descriptor for event_id field.
	messageDescEventID := messageFields[1].Descriptor()
	// message.EventIDValidator is a validator for the "event_id" field. It is called by the builders before save.
	message.EventIDValidator = messageDescEventID.Validators[0].(func(string) error)
	// messageDescMessageType is the schema descriptor for message_type field.
	messageDescMessageType := messageFields[4].Descriptor()
	// message.MessageTypeValidator is a validator for the "message_type" field. It is called by the builders before save.
	message.MessageTypeValidator = messageDescMessageType.Validators[0].(func(string) error)
	// messageDescUserID is the schema descriptor for user_id field.
	messageDescUserID := messageFields[6].Descriptor()
	// message.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	message.UserIDValidator = messageDescUserID.Validators[0].(func(string) error)
	// messageDescCreatedAt is the schema descriptor for created_at field.
	messageDescCreatedAt := messageFields[7].Descriptor()
	// message.DefaultCreatedAt holds the default value on creation for the created_at field.
	message.DefaultCreatedAt = messageDescCreatedAt.Default.(func() time.Time)
	promptFields := schema.Prompt{}.Fields()
	_ = promptFields
	// promptDescName is the schema descriptor for name field.
	promptDescName := promptFields[0].Descriptor()
	// prompt.NameValidator is a validator for the "name" field. It is called by the builders before save.
	prompt.NameValidator = promptDescName.Validators[0].(func(string) error)
	// promptDescContent is the schema descriptor for content field.
	promptDescContent := promptFields[1].Descriptor()
	// prompt.DefaultContent holds the default value on creation for the content field.
	prompt.DefaultContent = promptDescContent.Default.(string)
	// promptDescCreatedAt is the schema descriptor for created_at field.
	promptDescCreatedAt := promptFields[2].Descriptor()
	// prompt.DefaultCreatedAt holds the default value on creation for the created_at field.
	prompt.DefaultCreatedAt = promptDescCreatedAt.Default.(func() time.Time)
	// promptDescUpdatedAt is the schema descriptor for updated_at field.
	promptDescUpdatedAt := promptFields[3].Descriptor()
	// prompt.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	prompt.DefaultUpdatedAt = promptDescUpdatedAt.Default.(func() time.Time)
	// prompt.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	prompt.UpdateDefaultUpdatedAt = promptDescUpdatedAt.UpdateDefault.(func() time.Time)
	summaryFields := schema.Summary{}.Fields()
	_ = summaryFields
	// summaryDescSummaryID is the schema descriptor for summary_id field.
	summaryDescSummaryID := summaryFields[0].Descriptor()
	// summary.SummaryIDValidator is a validator for the "summary_id" field. It is called by the builders before save.
	summary.SummaryIDValidator = summaryDescSummaryID.Validators[0].(func(string) error)
	// summaryDescEventID is the schema descriptor for event_id field.
	summaryDescEventID := summaryFields[1].Descriptor()
	// summary.EventIDValidator is a validator for the "event_id" field. It is called by the builders before save.
	summary.EventIDValidator = summaryDescEventID.Validators[0].(func(string) error)
	// summaryDescCreatedAt is the schema descriptor for created_at field.
	summaryDescCreatedAt := summaryFields[5].Descriptor()
	// summary.DefaultCreatedAt holds the default value on creation for the created_at field.
	summary.DefaultCreatedAt = summaryDescCreatedAt.Default.(func() time.Time)
	// summaryDescUpdatedAt is the schema descriptor for updated_at field.
	summaryDescUpdatedAt := summaryFields[6].Descriptor()
	// summary.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	summary.DefaultUpdatedAt = summaryDescUpdatedAt.Default.(func() time.Time)
	// summary.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	summary.UpdateDefaultUpdatedAt = summaryDescUpdatedAt.UpdateDefault.(func() time.Time)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescTaskID is the schema descriptor for task_id field.
	taskDescTaskID := taskFields[0].Descriptor()
	// task.TaskIDValidator is a validator for the "task_id" field. It is called by the builders before save.
	task.TaskIDValidator = taskDescTaskID.Validators[0].(func(string) error)
	// taskDescEventID is the schema descriptor for event_id field.
	taskDescEventID := taskFields[1].Descriptor()
	// task.EventIDValidator is a validator for the "event_id" field. It is called by the builders before save.
	task.EventIDValidator = taskDescEventID.Validators[0].(func(string) error)
	// taskDescTaskName is the schema descriptor for task_name field.
	taskDescTaskName := taskFields[2].Descriptor()
	// task.TaskNameValidator is a validator for the "task_name" field. It is called by the builders before save.
	task.TaskNameValidator = taskDescTaskName.Validators[0].(func(string) error)
	// taskDescTaskAssignee is the schema descriptor for task_assignee field.
	taskDescTaskAssignee := taskFields[4].Descriptor()
	// task.DefaultTaskAssignee holds the default value on creation for the task_assignee field.
	task.DefaultTaskAssignee = taskDescTaskAssignee.Default.(string)
	// task.TaskAssigneeValidator is a validator for the "task_assignee" field. It is called by the builders before save.
	task.TaskAssigneeValidator = taskDescTaskAssignee.Validators[0].(func(string) error)
	// taskDescRetryCount is the schema descriptor for retry_count field.
	taskDescRetryCount := taskFields[8].Descriptor()
	// task.DefaultRetryCount holds the default value on creation for the retry_count field.
	task.DefaultRetryCount = taskDescRetryCount.Default.(int)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[9].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	// taskDescUpdatedAt is the schema descriptor for updated_at field.
	taskDescUpdatedAt := taskFields[10].Descriptor()
	// task.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	task.DefaultUpdatedAt = taskDescUpdatedAt.Default.(func() time.Time)
	// task.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	task.UpdateDefaultUpdatedAt = taskDescUpdatedAt.UpdateDefault.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescUsername is the schema descriptor for username field.
	userDescUsername := userFields[0].Descriptor()
	// user.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	user.UsernameValidator = userDescUsername.Validators[0].(func(string) error)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[1].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[2].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
	// userDescIsActive is the schema descriptor for is_active field.
	userDescIsActive := userFields[4].Descriptor()
	// user.DefaultIsActive holds the default value on creation for the is_active field.
	user.DefaultIsActive = userDescIsActive.Default.(bool)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[6].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[7].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
}
