package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepsoc/deepsoc/ent/message"
	"github.com/deepsoc/deepsoc/pkg/models"
	testdb "github.com/deepsoc/deepsoc/test/database"
)

// capturePublisher records publishes; set err to simulate a broker outage.
type capturePublisher struct {
	mu     sync.Mutex
	err    error
	keys   []string
	bodies [][]byte
}

func (p *capturePublisher) Publish(_ context.Context, key string, body []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.keys = append(p.keys, key)
	p.bodies = append(p.bodies, append([]byte(nil), body...))
	return nil
}

func (p *capturePublisher) Close() error { return nil }

func TestNotifierPostPersistsAndPublishes(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t)
	pub := &capturePublisher{}
	notifier := NewNotifier(client.Client, pub)

	msg, err := notifier.Post(ctx, models.CreateMessageRequest{
		EventID:     "evt-1",
		RoundID:     1,
		MessageFrom: message.MessageFromCaptain,
		MessageType: models.MessageTypeTaskCreated,
		Data:        map[string]interface{}{"task_id": "task-9", "task_name": "Check the WAF logs"},
	})
	require.NoError(t, err)
	require.NotNil(t, msg)
	assert.NotEmpty(t, msg.MessageID)

	// Row is canonical
	stored, err := client.Message.Query().Where(message.EventIDEQ("evt-1")).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.MessageTypeTaskCreated, stored.MessageType)
	assert.Equal(t, message.MessageFromCaptain, stored.MessageFrom)
	require.Contains(t, stored.MessageContent, "timestamp")
	data, ok := stored.MessageContent["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "task-9", data["task_id"])

	// Bus copy mirrors the row
	require.Len(t, pub.keys, 1)
	assert.Equal(t, "notifications.frontend.evt-1._captain.task_created", pub.keys[0])

	var env models.BusEnvelope
	require.NoError(t, json.Unmarshal(pub.bodies[0], &env))
	assert.Equal(t, stored.ID, env.ID)
	assert.Equal(t, stored.MessageID, env.MessageID)
	assert.Equal(t, "evt-1", env.EventID)
	assert.Equal(t, models.RoleCaptain, env.MessageFrom)
}

func TestNotifierPostSurvivesBrokerOutage(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t)
	pub := &capturePublisher{err: errors.New("broker unreachable")}
	notifier := NewNotifier(client.Client, pub)

	msg, err := notifier.Post(ctx, models.CreateMessageRequest{
		EventID:     "evt-2",
		RoundID:     1,
		MessageFrom: message.MessageFromSystem,
		MessageType: models.MessageTypeEventCompleted,
		Data:        map[string]interface{}{"status": "completed"},
	})
	require.NoError(t, err, "a broker outage must not fail the write")
	require.NotNil(t, msg)

	count, err := client.Message.Query().Where(message.EventIDEQ("evt-2")).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNotifierPostError(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t)
	pub := &capturePublisher{}
	notifier := NewNotifier(client.Client, pub)

	_, err := notifier.PostError(ctx, "evt-3", 2, message.MessageFromManager, "unknown assignee: _wizard")
	require.NoError(t, err)

	stored, err := client.Message.Query().Where(message.EventIDEQ("evt-3")).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.MessageTypeError, stored.MessageType)
	assert.Equal(t, 2, stored.RoundID)
	data, ok := stored.MessageContent["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "unknown assignee: _wizard", data["error"])
}

func TestNotifierPostUserMessage(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t)
	pub := &capturePublisher{}
	notifier := NewNotifier(client.Client, pub)

	_, err := notifier.Post(ctx, models.CreateMessageRequest{
		EventID:     "evt-4",
		RoundID:     1,
		MessageFrom: message.MessageFromUser,
		MessageType: models.MessageTypeUserMessage,
		Data:        map[string]interface{}{"text": "please also check the VPN gateway"},
		UserID:      "user-7",
	})
	require.NoError(t, err)

	stored, err := client.Message.Query().Where(message.EventIDEQ("evt-4")).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "user-7", stored.UserID)

	var env models.BusEnvelope
	require.Len(t, pub.bodies, 1)
	require.NoError(t, json.Unmarshal(pub.bodies[0], &env))
	assert.Equal(t, "user-7", env.UserID)
}
