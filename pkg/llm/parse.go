package llm

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseError reports a model response that could not be interpreted. Callers
// use it to distinguish malformed output from transport failures.
type ParseError struct {
	Reason string
	Raw    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unparseable llm response: %s", e.Reason)
}

// FlexInt decodes YAML integers that models sometimes quote as strings.
type FlexInt int

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *FlexInt) UnmarshalYAML(value *yaml.Node) error {
	var n int
	if err := value.Decode(&n); err == nil {
		*f = FlexInt(n)
		return nil
	}
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("not an integer: %w", err)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid integer %q", s)
	}
	*f = FlexInt(n)
	return nil
}

// Int returns the plain value.
func (f FlexInt) Int() int { return int(f) }

// TaskItem is one task in a Captain TASK response.
type TaskItem struct {
	TaskName     string `yaml:"task_name" json:"task_name"`
	TaskType     string `yaml:"task_type" json:"task_type"`
	TaskAssignee string `yaml:"task_assignee" json:"task_assignee"`
}

// ActionItem is one action in a Manager ACTION response. TaskID names the
// pending task the action refines.
type ActionItem struct {
	TaskID         string `yaml:"task_id" json:"task_id"`
	ActionName     string `yaml:"action_name" json:"action_name"`
	ActionType     string `yaml:"action_type" json:"action_type"`
	ActionAssignee string `yaml:"action_assignee" json:"action_assignee"`
}

// CommandItem is one command in an Operator COMMAND response. ActionID names
// the pending action the command implements.
type CommandItem struct {
	ActionID        string         `yaml:"action_id" json:"action_id"`
	TaskID          string         `yaml:"task_id" json:"task_id"`
	CommandName     string         `yaml:"command_name" json:"command_name"`
	CommandType     string         `yaml:"command_type" json:"command_type"`
	CommandAssignee string         `yaml:"command_assignee" json:"command_assignee"`
	CommandEntity   map[string]any `yaml:"command_entity" json:"command_entity,omitempty"`
	CommandParams   map[string]any `yaml:"command_params" json:"command_params,omitempty"`
}

// RoleResponse is the YAML document every role prompt instructs the model to
// produce. Only the fields relevant to the declared response_type are set.
type RoleResponse struct {
	ResponseType string        `yaml:"response_type" json:"response_type"`
	EventID      string        `yaml:"event_id" json:"event_id"`
	EventName    string        `yaml:"event_name" json:"event_name,omitempty"`
	RoundID      FlexInt       `yaml:"round_id" json:"round_id"`
	ResponseText string        `yaml:"response_text" json:"response_text,omitempty"`
	Tasks        []TaskItem    `yaml:"tasks" json:"tasks,omitempty"`
	Actions      []ActionItem  `yaml:"actions" json:"actions,omitempty"`
	Commands     []CommandItem `yaml:"commands" json:"commands,omitempty"`
}

// ExtractYAML strips a markdown code fence from a model response. It accepts
// bare YAML, a ```yaml fence, or an anonymous ``` fence, matching what the
// role prompts ask for and what models actually send.
func ExtractYAML(response string) string {
	if idx := strings.Index(response, "```yaml"); idx >= 0 {
		rest := response[idx+len("```yaml"):]
		if end := strings.Index(rest, "```"); end >= 0 {
			return strings.TrimSpace(rest[:end])
		}
		return strings.TrimSpace(rest)
	}
	if idx := strings.Index(response, "```"); idx >= 0 {
		rest := response[idx+len("```"):]
		if end := strings.Index(rest, "```"); end >= 0 {
			return strings.TrimSpace(rest[:end])
		}
		return strings.TrimSpace(rest)
	}
	return strings.TrimSpace(response)
}

// ParseRoleResponse extracts and decodes a role response document.
func ParseRoleResponse(response string) (*RoleResponse, error) {
	content := ExtractYAML(response)
	if content == "" {
		return nil, &ParseError{Reason: "empty response", Raw: response}
	}

	var parsed RoleResponse
	if err := yaml.Unmarshal([]byte(content), &parsed); err != nil {
		return nil, &ParseError{Reason: err.Error(), Raw: response}
	}
	if parsed.ResponseType == "" {
		return nil, &ParseError{Reason: "missing response_type", Raw: response}
	}
	return &parsed, nil
}
