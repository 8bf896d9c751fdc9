package models

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/deepsoc/deepsoc/ent/event"
)

func TestCanTransition(t *testing.T) {
	allowed := []struct {
		from, to event.Status
	}{
		{event.StatusPending, event.StatusProcessing},
		{event.StatusPending, event.StatusResolved},
		{event.StatusProcessing, event.StatusTasksCompleted},
		{event.StatusProcessing, event.StatusCompleted},
		{event.StatusProcessing, event.StatusFailed},
		{event.StatusProcessing, event.StatusErrorFromLlm},
		{event.StatusProcessing, event.StatusErrorProcessing},
		{event.StatusProcessing, event.StatusResolved},
		{event.StatusTasksCompleted, event.StatusToBeSummarized},
		{event.StatusToBeSummarized, event.StatusSummarized},
		{event.StatusToBeSummarized, event.StatusSummaryFailed},
		{event.StatusSummarized, event.StatusRoundFinished},
		{event.StatusSummarized, event.StatusCompleted},
		{event.StatusSummaryFailed, event.StatusFailed},
		{event.StatusRoundFinished, event.StatusPending},
		{event.StatusResolved, event.StatusToBeSummarized},
		{event.StatusErrorFromLlm, event.StatusResolved},
		{event.StatusErrorProcessing, event.StatusResolved},
	}
	for _, tt := range allowed {
		assert.True(t, CanTransition(tt.from, tt.to), "%s -> %s should be legal", tt.from, tt.to)
	}

	denied := []struct {
		from, to event.Status
	}{
		// rounds only move forward
		{event.StatusProcessing, event.StatusPending},
		{event.StatusSummarized, event.StatusProcessing},
		// no level skipping
		{event.StatusPending, event.StatusCompleted},
		{event.StatusPending, event.StatusSummarized},
		{event.StatusTasksCompleted, event.StatusCompleted},
		// terminal states admit nothing
		{event.StatusCompleted, event.StatusPending},
		{event.StatusCompleted, event.StatusProcessing},
		{event.StatusFailed, event.StatusPending},
		{event.StatusFailed, event.StatusResolved},
		// resolution is a one-way door
		{event.StatusResolved, event.StatusProcessing},
		{event.StatusResolved, event.StatusPending},
		// self-loops are not edges
		{event.StatusProcessing, event.StatusProcessing},
	}
	for _, tt := range denied {
		assert.False(t, CanTransition(tt.from, tt.to), "%s -> %s should be illegal", tt.from, tt.to)
	}
}

func TestIsTerminalEventStatus(t *testing.T) {
	assert.True(t, IsTerminalEventStatus(event.StatusCompleted))
	assert.True(t, IsTerminalEventStatus(event.StatusFailed))

	for _, s := range []event.Status{
		event.StatusPending,
		event.StatusProcessing,
		event.StatusTasksCompleted,
		event.StatusToBeSummarized,
		event.StatusSummarized,
		event.StatusSummaryFailed,
		event.StatusRoundFinished,
		event.StatusResolved,
		event.StatusErrorFromLlm,
		event.StatusErrorProcessing,
	} {
		assert.False(t, IsTerminalEventStatus(s), "%s is not terminal", s)
	}
}

func TestDrivingModeValid(t *testing.T) {
	assert.True(t, DrivingModeAuto.Valid())
	assert.True(t, DrivingModeManual.Valid())
	assert.False(t, DrivingMode("cruise").Valid())
	assert.False(t, DrivingMode("").Valid())
}
