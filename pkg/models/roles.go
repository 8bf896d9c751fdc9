package models

// Role tokens used in task/action/command assignee fields and as the
// message_from value of role-authored messages.
const (
	RoleSystem   = "system"
	RoleUser     = "user"
	RoleCaptain  = "_captain"
	RoleManager  = "_manager"
	RoleOperator = "_operator"
	RoleExecutor = "_executor"
	RoleExpert   = "_expert"
)

// LLM response_type values. Any other value is treated as an error.
const (
	ResponseTypeTask            = "TASK"
	ResponseTypeAction          = "ACTION"
	ResponseTypeCommand         = "COMMAND"
	ResponseTypeMissionComplete = "MISSION_COMPLETE"
	ResponseTypeRoger           = "ROGER"
)

// Message type tags. The set is open-ended; these are the ones the engine
// itself emits.
const (
	MessageTypeLLMRequest       = "llm_request"
	MessageTypeLLMResponse      = "llm_response"
	MessageTypeTaskCreated      = "task_created"
	MessageTypeActionCreated    = "action_created"
	MessageTypeCommandCreated   = "command_created"
	MessageTypeCommandResult    = "command_result"
	MessageTypeExecutionSummary = "execution_summary"
	MessageTypeEventSummary     = "event_summary"
	MessageTypeEventCreated     = "event_created"
	MessageTypeEventCompleted   = "event_completed"
	MessageTypeEventResolved    = "event_resolved"
	MessageTypeUserMessage      = "user_message"
	MessageTypeError            = "error"
)

// SettingDrivingMode is the global_settings key holding the driving mode.
const SettingDrivingMode = "driving_mode"

// DrivingMode selects whether rounds advance on their own. In manual
// mode the lifecycle manager stops at round_finished and waits for a
// human to advance the round.
type DrivingMode string

// Driving mode values.
const (
	DrivingModeAuto   DrivingMode = "auto"
	DrivingModeManual DrivingMode = "manual"
)

// Valid reports whether the mode is a known value.
func (m DrivingMode) Valid() bool {
	return m == DrivingModeAuto || m == DrivingModeManual
}
