package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepsoc/deepsoc/ent"
	"github.com/deepsoc/deepsoc/ent/event"
	"github.com/deepsoc/deepsoc/ent/llmrecord"
	"github.com/deepsoc/deepsoc/ent/message"
	"github.com/deepsoc/deepsoc/ent/summary"
	"github.com/deepsoc/deepsoc/ent/task"
	"github.com/deepsoc/deepsoc/pkg/config"
	"github.com/deepsoc/deepsoc/pkg/database"
	testdb "github.com/deepsoc/deepsoc/test/database"
)

func retentionConfig() config.RetentionConfig {
	return config.RetentionConfig{
		Enabled:            true,
		EventRetentionDays: 90,
		SweepInterval:      time.Hour,
		SweepBatchSize:     50,
	}
}

// seedClosedEvent creates an event with one row in every child table and
// moves it to the given status with the given last-update time.
func seedClosedEvent(t *testing.T, client *database.Client, status event.Status, updatedAt time.Time) *ent.Event {
	t.Helper()
	ctx := context.Background()

	ev, err := client.Event.Create().
		SetEventID(uuid.New().String()).
		SetMessage("Beaconing to a known C2 domain").
		SetSource("ids").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Task.Create().
		SetTaskID(uuid.New().String()).
		SetEventID(ev.EventID).
		SetTaskName("Identify the beaconing host").
		SetRoundID(1).
		SetStatus(task.StatusCompleted).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Message.Create().
		SetMessageID(uuid.New().String()).
		SetEventID(ev.EventID).
		SetRoundID(1).
		SetMessageFrom(message.MessageFromSystem).
		SetMessageType("event_created").
		SetMessageContent(map[string]interface{}{"data": map[string]interface{}{"event_name": "Beaconing"}}).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Summary.Create().
		SetSummaryID(uuid.New().String()).
		SetEventID(ev.EventID).
		SetRoundID(1).
		SetEventSummary("One workstation resolved the domain every 30 seconds.").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.LLMRecord.Create().
		SetModelName("gpt-4o").
		SetRequestMessages([]map[string]interface{}{{"role": "user", "content": "summarize"}}).
		SetEventID(ev.EventID).
		SetRoundID(1).
		Save(ctx)
	require.NoError(t, err)

	ev, err = ev.Update().
		SetStatus(status).
		SetUpdatedAt(updatedAt).
		Save(ctx)
	require.NoError(t, err)
	return ev
}

func countChildren(t *testing.T, client *database.Client, eventID string) (tasks, messages, summaries, records int) {
	t.Helper()
	ctx := context.Background()
	var err error
	tasks, err = client.Task.Query().Where(task.EventIDEQ(eventID)).Count(ctx)
	require.NoError(t, err)
	messages, err = client.Message.Query().Where(message.EventIDEQ(eventID)).Count(ctx)
	require.NoError(t, err)
	summaries, err = client.Summary.Query().Where(summary.EventIDEQ(eventID)).Count(ctx)
	require.NoError(t, err)
	records, err = client.LLMRecord.Query().Where(llmrecord.EventIDEQ(eventID)).Count(ctx)
	require.NoError(t, err)
	return tasks, messages, summaries, records
}

func TestService_PurgesExpiredClosedEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	old := time.Now().AddDate(0, 0, -120)
	expired := seedClosedEvent(t, client, event.StatusCompleted, old)
	recent := seedClosedEvent(t, client, event.StatusCompleted, time.Now())
	// Age alone never purges an open investigation.
	stale := seedClosedEvent(t, client, event.StatusProcessing, old)

	svc := NewService(retentionConfig(), client.Client)
	purged, err := svc.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, purged)

	exists, err := client.Event.Query().Where(event.EventIDEQ(expired.EventID)).Exist(ctx)
	require.NoError(t, err)
	assert.False(t, exists, "expired event should be gone")

	tasks, messages, summaries, records := countChildren(t, client, expired.EventID)
	assert.Zero(t, tasks)
	assert.Zero(t, messages)
	assert.Zero(t, summaries)
	assert.Zero(t, records)

	for _, keep := range []*ent.Event{recent, stale} {
		exists, err := client.Event.Query().Where(event.EventIDEQ(keep.EventID)).Exist(ctx)
		require.NoError(t, err)
		assert.True(t, exists)
		tasks, messages, summaries, records := countChildren(t, client, keep.EventID)
		assert.Equal(t, 1, tasks)
		assert.Equal(t, 1, messages)
		assert.Equal(t, 1, summaries)
		assert.Equal(t, 1, records)
	}
}

func TestService_SweepRespectsBatchSize(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	old := time.Now().AddDate(0, 0, -120)
	for i := 0; i < 3; i++ {
		seedClosedEvent(t, client, event.StatusFailed, old)
	}

	cfg := retentionConfig()
	cfg.SweepBatchSize = 2
	svc := NewService(cfg, client.Client)

	purged, err := svc.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, purged)

	purged, err = svc.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, purged)

	purged, err = svc.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Zero(t, purged)
}

func TestService_StartSweepsAndStops(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	expired := seedClosedEvent(t, client, event.StatusCompleted, time.Now().AddDate(0, 0, -120))

	svc := NewService(retentionConfig(), client.Client)
	svc.Start(ctx)
	defer svc.Stop()

	require.Eventually(t, func() bool {
		exists, err := client.Event.Query().Where(event.EventIDEQ(expired.EventID)).Exist(ctx)
		return err == nil && !exists
	}, 5*time.Second, 50*time.Millisecond, "initial sweep should purge the expired event")
}

func TestService_DisabledDoesNotStart(t *testing.T) {
	client := testdb.NewTestClient(t)

	cfg := retentionConfig()
	cfg.Enabled = false
	svc := NewService(cfg, client.Client)

	svc.Start(context.Background())
	svc.Stop() // must not block or panic when nothing started
}
