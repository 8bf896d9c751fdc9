// Package bus carries warroom notifications over RabbitMQ.
//
// Workers publish every persisted message to a durable topic exchange;
// the API gateway consumes a bound queue and relays deliveries to
// WebSocket rooms. The broker is best-effort fan-out only — the
// messages table stays the canonical record, so a dropped publish
// costs liveness of the push path, never data.
package bus

import (
	"fmt"
	"strings"
)

// FrontendPrefix is the topic namespace for messages destined to browser
// clients. The gateway binds "<FrontendPrefix>.#".
const FrontendPrefix = "notifications.frontend"

// FrontendKey builds the routing key for a warroom message:
// notifications.frontend.<event_id>.<from>.<type>.
//
// Topic segments must not contain dots, so sender and type are sanitized.
// Event IDs are UUIDs and already dot-free.
func FrontendKey(eventID, from, messageType string) string {
	return fmt.Sprintf("%s.%s.%s.%s", FrontendPrefix, eventID, segment(from), segment(messageType))
}

// segment makes a value safe to embed as a single topic segment.
func segment(s string) string {
	if s == "" {
		return "unknown"
	}
	return strings.ReplaceAll(s, ".", "_")
}

// EventIDFromKey extracts the event id segment from a frontend routing key.
// Returns "" when the key is not in the frontend namespace.
func EventIDFromKey(key string) string {
	rest, ok := strings.CutPrefix(key, FrontendPrefix+".")
	if !ok {
		return ""
	}
	id, _, _ := strings.Cut(rest, ".")
	return id
}
