package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepsoc/deepsoc/ent/event"
	testdb "github.com/deepsoc/deepsoc/test/database"
)

func TestSummaryService(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSummaryService(client.Client)
	ctx := context.Background()

	ev := seedEvent(t, client, event.StatusToBeSummarized)

	t.Run("creates a round summary", func(t *testing.T) {
		sum, err := service.Create(ctx, ev.EventID, 1, "The login came from a known VPN exit node.", "Verify with the account owner.")
		require.NoError(t, err)

		assert.NotEmpty(t, sum.SummaryID)
		assert.Equal(t, ev.EventID, sum.EventID)
		assert.Equal(t, 1, sum.RoundID)
		assert.Equal(t, "The login came from a known VPN exit node.", sum.EventSummary)
		assert.Equal(t, "Verify with the account owner.", sum.EventSuggestion)
	})

	t.Run("requires the summary text", func(t *testing.T) {
		_, err := service.Create(ctx, ev.EventID, 2, "", "")
		require.Error(t, err)

		var validErr *ValidationError
		require.ErrorAs(t, err, &validErr)
		assert.Equal(t, "event_summary", validErr.Field)
	})

	t.Run("lists newest round first", func(t *testing.T) {
		_, err := service.Create(ctx, ev.EventID, 2, "Round two confirmed the owner was traveling.", "")
		require.NoError(t, err)

		summaries, err := service.ListByEvent(ctx, ev.EventID)
		require.NoError(t, err)
		require.Len(t, summaries, 2)
		assert.Equal(t, 2, summaries[0].RoundID)
		assert.Equal(t, 1, summaries[1].RoundID)
	})

	t.Run("latest returns the highest round", func(t *testing.T) {
		latest, err := service.LatestForEvent(ctx, ev.EventID)
		require.NoError(t, err)
		require.NotNil(t, latest)
		assert.Equal(t, 2, latest.RoundID)
	})

	t.Run("latest is nil without summaries", func(t *testing.T) {
		other := seedEvent(t, client, event.StatusProcessing)

		latest, err := service.LatestForEvent(ctx, other.EventID)
		require.NoError(t, err)
		assert.Nil(t, latest)
	})
}
