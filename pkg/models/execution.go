package models

import "github.com/deepsoc/deepsoc/ent"

// ExecutionDetail is an execution enriched with its command's identity
// so the execution board can render without extra lookups.
type ExecutionDetail struct {
	*ent.Execution
	CommandName   string         `json:"command_name,omitempty"`
	CommandType   string         `json:"command_type,omitempty"`
	CommandEntity map[string]any `json:"command_entity,omitempty"`
	CommandParams map[string]any `json:"command_params,omitempty"`
}

// CompleteExecutionRequest is the manual completion payload for a
// waiting execution.
type CompleteExecutionRequest struct {
	Result string `json:"result"`
	Status string `json:"status,omitempty"`
}
