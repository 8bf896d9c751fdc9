package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepsoc/deepsoc/ent/event"
	"github.com/deepsoc/deepsoc/ent/task"
	testdb "github.com/deepsoc/deepsoc/test/database"
)

func TestTaskService_CreateTasks(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTaskService(client.Client)
	ctx := context.Background()

	ev := seedEvent(t, client, event.StatusProcessing)

	t.Run("creates a batch of pending tasks", func(t *testing.T) {
		inputs := []CreateTaskInput{
			{TaskName: "Pull login history", TaskType: "query", Assignee: "_manager"},
			{TaskName: "Notify the on-call analyst", TaskType: "notify", Assignee: "_manager"},
		}

		tasks, err := service.CreateTasks(ctx, ev.EventID, 1, inputs)
		require.NoError(t, err)
		require.Len(t, tasks, 2)

		for _, tk := range tasks {
			assert.NotEmpty(t, tk.TaskID)
			assert.Equal(t, ev.EventID, tk.EventID)
			assert.Equal(t, 1, tk.RoundID)
			assert.Equal(t, task.StatusPending, tk.Status)
			assert.Equal(t, 0, tk.RetryCount)
		}
		assert.Equal(t, task.TaskTypeQuery, tasks[0].TaskType)
		assert.Equal(t, task.TaskTypeNotify, tasks[1].TaskType)
	})

	t.Run("rejects an empty batch", func(t *testing.T) {
		tasks, err := service.CreateTasks(ctx, ev.EventID, 1, nil)
		require.Error(t, err)
		assert.Nil(t, tasks)

		var validErr *ValidationError
		require.ErrorAs(t, err, &validErr)
		assert.Equal(t, "tasks", validErr.Field)
	})

	t.Run("rejects the whole batch on one bad item", func(t *testing.T) {
		before, err := service.ListByEvent(ctx, ev.EventID)
		require.NoError(t, err)

		inputs := []CreateTaskInput{
			{TaskName: "Fine task", TaskType: "query"},
			{TaskName: "Broken task", TaskType: "destroy"},
		}
		_, err = service.CreateTasks(ctx, ev.EventID, 1, inputs)
		require.Error(t, err)

		var validErr *ValidationError
		require.ErrorAs(t, err, &validErr)
		assert.Equal(t, "task_type", validErr.Field)

		after, err := service.ListByEvent(ctx, ev.EventID)
		require.NoError(t, err)
		assert.Len(t, after, len(before), "no partial insert")
	})

	t.Run("rejects a task without a name", func(t *testing.T) {
		_, err := service.CreateTasks(ctx, ev.EventID, 1, []CreateTaskInput{{TaskType: "query"}})
		require.Error(t, err)

		var validErr *ValidationError
		require.ErrorAs(t, err, &validErr)
		assert.Equal(t, "task_name", validErr.Field)
	})
}

func TestTaskService_ListByEvent(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTaskService(client.Client)
	ctx := context.Background()

	ev := seedEvent(t, client, event.StatusProcessing)
	other := seedEvent(t, client, event.StatusProcessing)

	first := seedTask(t, client, ev.EventID, 1, task.StatusCompleted)
	second := seedTask(t, client, ev.EventID, 2, task.StatusPending)
	seedTask(t, client, other.EventID, 1, task.StatusPending)

	tasks, err := service.ListByEvent(ctx, ev.EventID)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, first.TaskID, tasks[0].TaskID)
	assert.Equal(t, second.TaskID, tasks[1].TaskID)
}
