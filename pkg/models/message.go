package models

import (
	"time"

	"github.com/deepsoc/deepsoc/ent"
	"github.com/deepsoc/deepsoc/ent/message"
)

// CreateMessageRequest contains fields for creating a message row
type CreateMessageRequest struct {
	EventID     string              `json:"event_id"`
	RoundID     int                 `json:"round_id"`
	MessageFrom message.MessageFrom `json:"message_from"`
	MessageType string              `json:"message_type"`
	Data        any                 `json:"data"`
	UserID      string              `json:"user_id,omitempty"`
}

// NewMessageContent wraps a payload in the canonical message_content
// shape: an ISO timestamp plus the type-specific data.
func NewMessageContent(data any) map[string]interface{} {
	return map[string]interface{}{
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
		"data":      data,
	}
}

// MessageListResponse contains messages since a given database id
type MessageListResponse struct {
	Messages      []*ent.Message `json:"messages"`
	LastMessageID int            `json:"last_message_db_id"`
}

// BusEnvelope is the JSON body published to the notification exchange.
// It mirrors the Message row so the gateway can relay it without a
// database read.
type BusEnvelope struct {
	ID             int            `json:"id"`
	MessageID      string         `json:"message_id"`
	EventID        string         `json:"event_id"`
	RoundID        int            `json:"round_id"`
	MessageFrom    string         `json:"message_from"`
	MessageType    string         `json:"message_type"`
	MessageContent map[string]any `json:"message_content"`
	UserID         string         `json:"user_id,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
}
