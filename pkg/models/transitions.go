package models

import "github.com/deepsoc/deepsoc/ent/event"

// eventTransitions is the set of legal event status edges. Every writer
// funnels through CanTransition so an illegal edge can never be committed.
var eventTransitions = map[event.Status][]event.Status{
	event.StatusPending: {
		event.StatusProcessing,
		event.StatusResolved,
	},
	event.StatusProcessing: {
		event.StatusTasksCompleted,
		event.StatusCompleted, // MISSION_COMPLETE
		event.StatusFailed,
		event.StatusErrorFromLlm,
		event.StatusErrorProcessing,
		event.StatusResolved,
	},
	event.StatusTasksCompleted: {
		event.StatusToBeSummarized,
		event.StatusResolved,
	},
	event.StatusToBeSummarized: {
		event.StatusSummarized,
		event.StatusSummaryFailed,
		event.StatusResolved,
	},
	event.StatusSummarized: {
		event.StatusRoundFinished,
		event.StatusCompleted,
	},
	event.StatusSummaryFailed: {
		event.StatusFailed,
		event.StatusResolved,
	},
	event.StatusRoundFinished: {
		event.StatusPending, // next round, current_round += 1
		event.StatusResolved,
	},
	event.StatusResolved: {
		event.StatusToBeSummarized,
	},
	event.StatusErrorFromLlm: {
		event.StatusResolved,
	},
	event.StatusErrorProcessing: {
		event.StatusResolved,
	},
	// completed and failed are terminal
}

// CanTransition reports whether from → to is a legal event status edge.
func CanTransition(from, to event.Status) bool {
	for _, s := range eventTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// IsTerminalEventStatus reports whether the status admits no further
// transitions.
func IsTerminalEventStatus(s event.Status) bool {
	return s == event.StatusCompleted || s == event.StatusFailed
}
