package services

import (
	"context"
	"fmt"

	"github.com/deepsoc/deepsoc/ent"
	"github.com/deepsoc/deepsoc/ent/message"
	"github.com/deepsoc/deepsoc/pkg/models"
)

// MessageService reads the per-event message log. Writes go through
// the messaging notifier so every row also reaches the bus.
type MessageService struct {
	client *ent.Client
}

// NewMessageService creates a new MessageService.
func NewMessageService(client *ent.Client) *MessageService {
	return &MessageService{client: client}
}

// ListByEvent returns messages with id > sinceID in insertion order,
// optionally filtered to a single sender role. The returned
// LastMessageID is what the client hands back on its next poll; when
// nothing is new it echoes sinceID.
func (s *MessageService) ListByEvent(ctx context.Context, eventID string, sinceID int, role string) (*models.MessageListResponse, error) {
	query := s.client.Message.Query().
		Where(message.EventIDEQ(eventID), message.IDGT(sinceID))
	if role != "" {
		from := message.MessageFrom(role)
		if err := message.MessageFromValidator(from); err != nil {
			return nil, NewValidationError("role", fmt.Sprintf("unknown role '%s'", role))
		}
		query = query.Where(message.MessageFromEQ(from))
	}

	messages, err := query.Order(ent.Asc(message.FieldID)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages for event %s: %w", eventID, err)
	}

	lastID := sinceID
	if len(messages) > 0 {
		lastID = messages[len(messages)-1].ID
	}
	return &models.MessageListResponse{
		Messages:      messages,
		LastMessageID: lastID,
	}, nil
}

// CountByEvent returns the number of log rows an event has accumulated.
func (s *MessageService) CountByEvent(ctx context.Context, eventID string) (int, error) {
	count, err := s.client.Message.Query().
		Where(message.EventIDEQ(eventID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count messages for event %s: %w", eventID, err)
	}
	return count, nil
}
