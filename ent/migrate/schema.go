// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ActionsColumns holds the columns for the "actions" table.
	ActionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "action_id", Type: field.TypeString, Unique: true, Size: 64},
		{Name: "task_id", Type: field.TypeString, Size: 64},
		{Name: "event_id", Type: field.TypeString, Size: 64},
		{Name: "round_id", Type: field.TypeInt},
		{Name: "action_name", Type: field.TypeString, Size: 256},
		{Name: "action_type", Type: field.TypeString, Nullable: true, Size: 64},
		{Name: "action_assignee", Type: field.TypeString, Size: 64, Default: "_operator"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "processing", "completed", "failed"}, Default: "pending"},
		{Name: "action_result", Type: field.TypeJSON, Nullable: true},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ActionsTable holds the schema information for the "actions" table.
	ActionsTable = &schema.Table{
		Name:       "actions",
		Columns:    ActionsColumns,
		PrimaryKey: []*schema.Column{ActionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "action_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{ActionsColumns[8], ActionsColumns[11]},
			},
			{
				Name:    "action_event_id_round_id",
				Unique:  false,
				Columns: []*schema.Column{ActionsColumns[3], ActionsColumns[4]},
			},
			{
				Name:    "action_task_id",
				Unique:  false,
				Columns: []*schema.Column{ActionsColumns[2]},
			},
		},
	}
	// CommandsColumns holds the columns for the "commands" table.
	CommandsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "command_id", Type: field.TypeString, Unique: true, Size: 64},
		{Name: "action_id", Type: field.TypeString, Size: 64},
		{Name: "task_id", Type: field.TypeString, Size: 64},
		{Name: "event_id", Type: field.TypeString, Size: 64},
		{Name: "round_id", Type: field.TypeInt},
		{Name: "command_name", Type: field.TypeString, Size: 256},
		{Name: "command_type", Type: field.TypeEnum, Enums: []string{"playbook", "manual"}},
		{Name: "command_assignee", Type: field.TypeString, Size: 64, Default: "_executor"},
		{Name: "command_entity", Type: field.TypeJSON, Nullable: true},
		{Name: "command_params", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "processing", "completed", "failed"}, Default: "pending"},
		{Name: "command_result", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CommandsTable holds the schema information for the "commands" table.
	CommandsTable = &schema.Table{
		Name:       "commands",
		Columns:    CommandsColumns,
		PrimaryKey: []*schema.Column{CommandsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "command_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{CommandsColumns[11], CommandsColumns[13]},
			},
			{
				Name:    "command_event_id_round_id",
				Unique:  false,
				Columns: []*schema.Column{CommandsColumns[4], CommandsColumns[5]},
			},
			{
				Name:    "command_action_id",
				Unique:  false,
				Columns: []*schema.Column{CommandsColumns[2]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "event_id", Type: field.TypeString, Unique: true, Size: 64},
		{Name: "event_name", Type: field.TypeString, Nullable: true, Size: 256},
		{Name: "message", Type: field.TypeString, Size: 2147483647},
		{Name: "context", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "source", Type: field.TypeString, Nullable: true, Size: 64},
		{Name: "severity", Type: field.TypeString, Size: 32, Default: "medium"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "processing", "tasks_completed", "to_be_summarized", "summarized", "summary_failed", "round_finished", "completed", "failed", "resolved", "error_from_llm", "error_processing"}, Default: "pending"},
		{Name: "current_round", Type: field.TypeInt, Default: 1},
		{Name: "resolved_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[7], EventsColumns[10]},
			},
			{
				Name:    "event_status",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[7]},
			},
		},
	}
	// ExecutionsColumns holds the columns for the "executions" table.
	ExecutionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "execution_id", Type: field.TypeString, Unique: true, Size: 64},
		{Name: "command_id", Type: field.TypeString, Size: 64},
		{Name: "action_id", Type: field.TypeString, Size: 64},
		{Name: "task_id", Type: field.TypeString, Size: 64},
		{Name: "event_id", Type: field.TypeString, Size: 64},
		{Name: "round_id", Type: field.TypeInt},
		{Name: "execution_result", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "ai_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "waiting", "processing", "completed", "summarized", "summarized_error", "failed"}, Default: "pending"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ExecutionsTable holds the schema information for the "executions" table.
	ExecutionsTable = &schema.Table{
		Name:       "executions",
		Columns:    ExecutionsColumns,
		PrimaryKey: []*schema.Column{ExecutionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "execution_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{ExecutionsColumns[9], ExecutionsColumns[10]},
			},
			{
				Name:    "execution_event_id_round_id",
				Unique:  false,
				Columns: []*schema.Column{ExecutionsColumns[5], ExecutionsColumns[6]},
			},
			{
				Name:    "execution_command_id",
				Unique:  false,
				Columns: []*schema.Column{ExecutionsColumns[2]},
			},
		},
	}
	// GlobalSettingsColumns holds the columns for the "global_settings" table.
	GlobalSettingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "key", Type: field.TypeString, Unique: true, Size: 64},
		{Name: "value", Type: field.TypeString, Nullable: true, Size: 256},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// GlobalSettingsTable holds the schema information for the "global_settings" table.
	GlobalSettingsTable = &schema.Table{
		Name:       "global_settings",
		Columns:    GlobalSettingsColumns,
		PrimaryKey: []*schema.Column{GlobalSettingsColumns[0]},
	}
	// LlmRecordsColumns holds the columns for the "llm_records" table.
	LlmRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "request_id", Type: field.TypeString, Nullable: true, Size: 128},
		{Name: "model_name", Type: field.TypeString, Size: 64},
		{Name: "request_messages", Type: field.TypeJSON},
		{Name: "response_content", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "response_full", Type: field.TypeJSON, Nullable: true},
		{Name: "prompt_tokens", Type: field.TypeInt, Nullable: true},
		{Name: "completion_tokens", Type: field.TypeInt, Nullable: true},
		{Name: "total_tokens", Type: field.TypeInt, Nullable: true},
		{Name: "cached_tokens", Type: field.TypeInt, Nullable: true},
		{Name: "event_id", Type: field.TypeString, Nullable: true, Size: 64},
		{Name: "round_id", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// LlmRecordsTable holds the schema information for the "llm_records" table.
	LlmRecordsTable = &schema.Table{
		Name:       "llm_records",
		Columns:    LlmRecordsColumns,
		PrimaryKey: []*schema.Column{LlmRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrecord_event_id",
				Unique:  false,
				Columns: []*schema.Column{LlmRecordsColumns[10]},
			},
			{
				Name:    "llmrecord_created_at",
				Unique:  false,
				Columns: []*schema.Column{LlmRecordsColumns[12]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "message_id", Type: field.TypeString, Unique: true, Size: 64},
		{Name: "event_id", Type: field.TypeString, Size: 64},
		{Name: "round_id", Type: field.TypeInt},
		{Name: "message_from", Type: field.TypeEnum, Enums: []string{"system", "user", "_captain", "_manager", "_operator", "_executor", "_expert"}},
		{Name: "message_type", Type: field.TypeString, Size: 32},
		{Name: "message_content", Type: field.TypeJSON},
		{Name: "user_id", Type: field.TypeString, Nullable: true, Size: 64},
		{Name: "created_at", Type: field.TypeTime},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "message_event_id",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[2]},
			},
			{
				Name:    "message_event_id_message_from",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[2], MessagesColumns[4]},
			},
		},
	}
	// PromptsColumns holds the columns for the "prompts" table.
	PromptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true, Size: 64},
		{Name: "content", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PromptsTable holds the schema information for the "prompts" table.
	PromptsTable = &schema.Table{
		Name:       "prompts",
		Columns:    PromptsColumns,
		PrimaryKey: []*schema.Column{PromptsColumns[0]},
	}
	// SummariesColumns holds the columns for the "summaries" table.
	SummariesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "summary_id", Type: field.TypeString, Unique: true, Size: 64},
		{Name: "event_id", Type: field.TypeString, Size: 64},
		{Name: "round_id", Type: field.TypeInt},
		{Name: "event_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "event_suggestion", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SummariesTable holds the schema information for the "summaries" table.
	SummariesTable = &schema.Table{
		Name:       "summaries",
		Columns:    SummariesColumns,
		PrimaryKey: []*schema.Column{SummariesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "summary_event_id_round_id",
				Unique:  false,
				Columns: []*schema.Column{SummariesColumns[2], SummariesColumns[3]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "task_id", Type: field.TypeString, Unique: true, Size: 64},
		{Name: "event_id", Type: field.TypeString, Size: 64},
		{Name: "task_name", Type: field.TypeString, Size: 256},
		{Name: "task_type", Type: field.TypeEnum, Enums: []string{"query", "write", "notify"}, Default: "query"},
		{Name: "task_assignee", Type: field.TypeString, Size: 64, Default: "_manager"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "processing", "completed", "failed"}, Default: "pending"},
		{Name: "round_id", Type: field.TypeInt},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "task_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[6], TasksColumns[10]},
			},
			{
				Name:    "task_event_id_round_id",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[2], TasksColumns[7]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "username", Type: field.TypeString, Unique: true, Size: 64},
		{Name: "email", Type: field.TypeString, Unique: true, Size: 120},
		{Name: "password_hash", Type: field.TypeString, Size: 256},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"admin", "user"}, Default: "user"},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ActionsTable,
		CommandsTable,
		EventsTable,
		ExecutionsTable,
		GlobalSettingsTable,
		LlmRecordsTable,
		MessagesTable,
		PromptsTable,
		SummariesTable,
		TasksTable,
		UsersTable,
	}
)

func init() {
}
