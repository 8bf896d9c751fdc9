package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepsoc/deepsoc/ent"
	"github.com/deepsoc/deepsoc/ent/event"
	"github.com/deepsoc/deepsoc/ent/message"
	"github.com/deepsoc/deepsoc/pkg/database"
	"github.com/deepsoc/deepsoc/pkg/models"
	testdb "github.com/deepsoc/deepsoc/test/database"
)

func seedMessage(t *testing.T, client *database.Client, eventID string, from message.MessageFrom, messageType string) *ent.Message {
	t.Helper()
	m, err := client.Message.Create().
		SetMessageID(uuid.New().String()).
		SetEventID(eventID).
		SetRoundID(1).
		SetMessageFrom(from).
		SetMessageType(messageType).
		SetMessageContent(models.NewMessageContent(map[string]interface{}{"note": messageType})).
		Save(context.Background())
	require.NoError(t, err)
	return m
}

func TestMessageService_ListByEvent(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewMessageService(client.Client)
	ctx := context.Background()

	ev := seedEvent(t, client, event.StatusProcessing)
	first := seedMessage(t, client, ev.EventID, message.MessageFromCaptain, models.MessageTypeLLMRequest)
	second := seedMessage(t, client, ev.EventID, message.MessageFromCaptain, models.MessageTypeTaskCreated)
	third := seedMessage(t, client, ev.EventID, message.MessageFromUser, models.MessageTypeUserMessage)

	other := seedEvent(t, client, event.StatusProcessing)
	seedMessage(t, client, other.EventID, message.MessageFromSystem, models.MessageTypeError)

	t.Run("returns messages in insertion order", func(t *testing.T) {
		resp, err := service.ListByEvent(ctx, ev.EventID, 0, "")
		require.NoError(t, err)
		require.Len(t, resp.Messages, 3)
		assert.Equal(t, first.ID, resp.Messages[0].ID)
		assert.Equal(t, second.ID, resp.Messages[1].ID)
		assert.Equal(t, third.ID, resp.Messages[2].ID)
		assert.Equal(t, third.ID, resp.LastMessageID)
	})

	t.Run("fetches incrementally after a known id", func(t *testing.T) {
		resp, err := service.ListByEvent(ctx, ev.EventID, first.ID, "")
		require.NoError(t, err)
		require.Len(t, resp.Messages, 2)
		assert.Equal(t, second.ID, resp.Messages[0].ID)
	})

	t.Run("echoes the cursor when nothing is new", func(t *testing.T) {
		resp, err := service.ListByEvent(ctx, ev.EventID, third.ID, "")
		require.NoError(t, err)
		assert.Empty(t, resp.Messages)
		assert.Equal(t, third.ID, resp.LastMessageID)
	})

	t.Run("filters by sender role", func(t *testing.T) {
		resp, err := service.ListByEvent(ctx, ev.EventID, 0, "_captain")
		require.NoError(t, err)
		require.Len(t, resp.Messages, 2)
		for _, m := range resp.Messages {
			assert.Equal(t, message.MessageFromCaptain, m.MessageFrom)
		}
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := service.ListByEvent(ctx, ev.EventID, 0, "_villain")
		require.Error(t, err)

		var validErr *ValidationError
		require.ErrorAs(t, err, &validErr)
		assert.Equal(t, "role", validErr.Field)
	})
}

func TestMessageService_CountByEvent(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewMessageService(client.Client)
	ctx := context.Background()

	ev := seedEvent(t, client, event.StatusProcessing)
	seedMessage(t, client, ev.EventID, message.MessageFromSystem, models.MessageTypeError)
	seedMessage(t, client, ev.EventID, message.MessageFromExpert, models.MessageTypeEventSummary)

	count, err := service.CountByEvent(ctx, ev.EventID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
