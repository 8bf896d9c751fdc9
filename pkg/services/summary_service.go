package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/deepsoc/deepsoc/ent"
	"github.com/deepsoc/deepsoc/ent/summary"
)

// SummaryService manages per-round event summaries written by the
// expert. The latest summary feeds the next round's context.
type SummaryService struct {
	client *ent.Client
}

// NewSummaryService creates a new SummaryService.
func NewSummaryService(client *ent.Client) *SummaryService {
	return &SummaryService{client: client}
}

// Create stores a round summary. One row per (event, round) write; the
// expert only summarizes a round once, so duplicates indicate a worker
// bug and are surfaced as plain errors.
func (s *SummaryService) Create(httpCtx context.Context, eventID string, roundID int, text, suggestion string) (*ent.Summary, error) {
	if eventID == "" {
		return nil, NewValidationError("event_id", "required")
	}
	if text == "" {
		return nil, NewValidationError("event_summary", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	created, err := s.client.Summary.Create().
		SetSummaryID(uuid.New().String()).
		SetEventID(eventID).
		SetRoundID(roundID).
		SetEventSummary(text).
		SetEventSuggestion(suggestion).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create summary for event %s round %d: %w", eventID, roundID, err)
	}
	return created, nil
}

// ListByEvent returns an event's summaries newest round first.
func (s *SummaryService) ListByEvent(ctx context.Context, eventID string) ([]*ent.Summary, error) {
	summaries, err := s.client.Summary.Query().
		Where(summary.EventIDEQ(eventID)).
		Order(ent.Desc(summary.FieldRoundID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list summaries for event %s: %w", eventID, err)
	}
	return summaries, nil
}

// LatestForEvent returns the most recent round's summary, or nil when
// the event has none yet.
func (s *SummaryService) LatestForEvent(ctx context.Context, eventID string) (*ent.Summary, error) {
	latest, err := s.client.Summary.Query().
		Where(summary.EventIDEQ(eventID)).
		Order(ent.Desc(summary.FieldRoundID)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest summary for event %s: %w", eventID, err)
	}
	return latest, nil
}
