package llm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestExtractYAML(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     string
	}{
		{
			name:     "bare yaml",
			response: "response_type: TASK\nround_id: 1",
			want:     "response_type: TASK\nround_id: 1",
		},
		{
			name:     "yaml fence",
			response: "Here is my plan:\n```yaml\nresponse_type: TASK\n```\nDone.",
			want:     "response_type: TASK",
		},
		{
			name:     "anonymous fence",
			response: "```\nresponse_type: ROGER\n```",
			want:     "response_type: ROGER",
		},
		{
			name:     "unterminated yaml fence",
			response: "```yaml\nresponse_type: TASK",
			want:     "response_type: TASK",
		},
		{
			name:     "surrounding whitespace",
			response: "\n\n  response_type: TASK  \n",
			want:     "response_type: TASK",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractYAML(tt.response))
		})
	}
}

func TestParseRoleResponse(t *testing.T) {
	t.Run("captain task response", func(t *testing.T) {
		response := "```yaml\n" +
			"response_type: TASK\n" +
			"event_id: evt-1\n" +
			"event_name: SSH brute force from 1.2.3.4\n" +
			"round_id: 1\n" +
			"tasks:\n" +
			"  - task_name: Query IP threat intel\n" +
			"    task_type: query\n" +
			"    task_assignee: _manager\n" +
			"```"

		parsed, err := ParseRoleResponse(response)
		require.NoError(t, err)
		assert.Equal(t, "TASK", parsed.ResponseType)
		assert.Equal(t, "evt-1", parsed.EventID)
		assert.Equal(t, 1, parsed.RoundID.Int())
		require.Len(t, parsed.Tasks, 1)
		assert.Equal(t, "Query IP threat intel", parsed.Tasks[0].TaskName)
		assert.Equal(t, "query", parsed.Tasks[0].TaskType)
	})

	t.Run("operator command response", func(t *testing.T) {
		response := "```yaml\n" +
			"response_type: COMMAND\n" +
			"round_id: \"2\"\n" +
			"commands:\n" +
			"  - action_id: act-1\n" +
			"    task_id: tsk-1\n" +
			"    command_name: ip_threat_intel\n" +
			"    command_type: playbook\n" +
			"    command_assignee: _executor\n" +
			"    command_entity:\n" +
			"      playbook_id: 12316887511154270\n" +
			"    command_params:\n" +
			"      src: 1.2.3.4\n" +
			"```"

		parsed, err := ParseRoleResponse(response)
		require.NoError(t, err)
		assert.Equal(t, "COMMAND", parsed.ResponseType)
		assert.Equal(t, 2, parsed.RoundID.Int())
		require.Len(t, parsed.Commands, 1)
		assert.Equal(t, "act-1", parsed.Commands[0].ActionID)
		assert.Equal(t, "playbook", parsed.Commands[0].CommandType)
		assert.Equal(t, "1.2.3.4", parsed.Commands[0].CommandParams["src"])
	})

	t.Run("mission complete", func(t *testing.T) {
		parsed, err := ParseRoleResponse("response_type: MISSION_COMPLETE\nevent_id: evt-9")
		require.NoError(t, err)
		assert.Equal(t, "MISSION_COMPLETE", parsed.ResponseType)
	})

	t.Run("prose is a parse error", func(t *testing.T) {
		_, err := ParseRoleResponse("I am sorry, I cannot help with that request.")

		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
	})

	t.Run("mapping without response_type is a parse error", func(t *testing.T) {
		_, err := ParseRoleResponse("status: ok\nnote: looks fine")

		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Contains(t, parseErr.Reason, "response_type")
	})

	t.Run("empty response is a parse error", func(t *testing.T) {
		_, err := ParseRoleResponse("   \n  ")
		assert.Error(t, err)

		var parseErr *ParseError
		assert.True(t, errors.As(err, &parseErr))
	})
}

func TestFlexInt(t *testing.T) {
	type doc struct {
		Round FlexInt `yaml:"round"`
	}

	tests := []struct {
		name    string
		yaml    string
		want    int
		wantErr bool
	}{
		{"plain integer", "round: 3", 3, false},
		{"quoted integer", `round: "3"`, 3, false},
		{"empty string", `round: ""`, 0, false},
		{"garbage", `round: "three"`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d doc
			err := yaml.Unmarshal([]byte(tt.yaml), &d)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Round.Int())
		})
	}
}
