// Package messaging writes warroom messages and fans them out.
//
// Every notable occurrence — an LLM call, a created task, a command
// result — becomes one row in the messages table and one best-effort
// copy on the notification bus. The row is the record; the bus copy
// only saves clients a poll.
package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/deepsoc/deepsoc/ent"
	"github.com/deepsoc/deepsoc/ent/message"
	"github.com/deepsoc/deepsoc/pkg/bus"
	"github.com/deepsoc/deepsoc/pkg/models"
)

// Notifier persists messages and publishes live copies.
type Notifier struct {
	client *ent.Client
	pub    bus.Publisher
}

// NewNotifier creates a Notifier. pub may be bus.NopPublisher when the
// broker is disabled.
func NewNotifier(client *ent.Client, pub bus.Publisher) *Notifier {
	return &Notifier{client: client, pub: pub}
}

// Post writes the canonical message row, then publishes a copy for
// connected clients. A broker failure is logged and swallowed: readers
// reconcile from the table by id, so only the push is lost.
func (n *Notifier) Post(ctx context.Context, req models.CreateMessageRequest) (*ent.Message, error) {
	create := n.client.Message.Create().
		SetMessageID(uuid.New().String()).
		SetEventID(req.EventID).
		SetRoundID(req.RoundID).
		SetMessageFrom(req.MessageFrom).
		SetMessageType(req.MessageType).
		SetMessageContent(models.NewMessageContent(req.Data))
	if req.UserID != "" {
		create = create.SetUserID(req.UserID)
	}

	msg, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("persisting message for event %s: %w", req.EventID, err)
	}

	n.broadcast(ctx, msg)
	return msg, nil
}

// PostError records a failure in the warroom. Used for malformed LLM
// output, unknown assignees, and execution errors; the event keeps its
// own status, this is the operator-visible trace.
func (n *Notifier) PostError(ctx context.Context, eventID string, roundID int, from message.MessageFrom, errText string) (*ent.Message, error) {
	return n.Post(ctx, models.CreateMessageRequest{
		EventID:     eventID,
		RoundID:     roundID,
		MessageFrom: from,
		MessageType: models.MessageTypeError,
		Data:        map[string]interface{}{"error": errText},
	})
}

// broadcast publishes the persisted row to the bus. Failures downgrade
// to a warning; the row already committed.
func (n *Notifier) broadcast(ctx context.Context, msg *ent.Message) {
	env := models.BusEnvelope{
		ID:             msg.ID,
		MessageID:      msg.MessageID,
		EventID:        msg.EventID,
		RoundID:        msg.RoundID,
		MessageFrom:    string(msg.MessageFrom),
		MessageType:    msg.MessageType,
		MessageContent: msg.MessageContent,
		UserID:         msg.UserID,
		CreatedAt:      msg.CreatedAt,
	}
	body, err := json.Marshal(env)
	if err != nil {
		slog.Warn("Failed to marshal notification envelope",
			"event_id", msg.EventID, "message_id", msg.MessageID, "error", err)
		return
	}

	key := bus.FrontendKey(msg.EventID, string(msg.MessageFrom), msg.MessageType)
	if err := n.pub.Publish(ctx, key, body); err != nil {
		slog.Warn("Failed to publish notification, clients will catch up from the messages table",
			"event_id", msg.EventID, "routing_key", key, "error", err)
	}
}
