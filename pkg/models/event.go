package models

import "github.com/deepsoc/deepsoc/ent"

// CreateEventRequest contains fields for creating a security event.
// Message is the only required field.
type CreateEventRequest struct {
	EventName string `json:"event_name,omitempty"`
	Message   string `json:"message"`
	Context   string `json:"context,omitempty"`
	Source    string `json:"source,omitempty"`
	Severity  string `json:"severity,omitempty"`
}

// EventFilters contains filtering options for listing events
type EventFilters struct {
	Status  string `json:"status,omitempty"`
	Page    int    `json:"page,omitempty"`
	PerPage int    `json:"per_page,omitempty"`
}

// EventListResponse contains a paginated event list
type EventListResponse struct {
	Events     []*ent.Event `json:"events"`
	TotalCount int          `json:"total_count"`
	Page       int          `json:"page"`
	PerPage    int          `json:"per_page"`
}

// LevelStats counts rows per status for one decomposition level
type LevelStats struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"by_status"`
}

// EventStats aggregates per-level counts for one event
type EventStats struct {
	EventID    string     `json:"event_id"`
	Tasks      LevelStats `json:"tasks"`
	Actions    LevelStats `json:"actions"`
	Commands   LevelStats `json:"commands"`
	Executions LevelStats `json:"executions"`
	Messages   int        `json:"messages"`
}

// EventHierarchy is the full decomposition tree of an event, grouped by round.
type EventHierarchy struct {
	Event  *ent.Event       `json:"event"`
	Rounds []*HierarchyRound `json:"rounds"`
}

// HierarchyRound groups one round's tree and its summary
type HierarchyRound struct {
	RoundID int              `json:"round_id"`
	Summary *ent.Summary     `json:"summary,omitempty"`
	Tasks   []*HierarchyTask `json:"tasks"`
}

// HierarchyTask is a task with its actions
type HierarchyTask struct {
	Task    *ent.Task          `json:"task"`
	Actions []*HierarchyAction `json:"actions"`
}

// HierarchyAction is an action with its commands
type HierarchyAction struct {
	Action   *ent.Action         `json:"action"`
	Commands []*HierarchyCommand `json:"commands"`
}

// HierarchyCommand is a command with its executions
type HierarchyCommand struct {
	Command    *ent.Command     `json:"command"`
	Executions []*ent.Execution `json:"executions"`
}
