package bus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrontendKey(t *testing.T) {
	key := FrontendKey("4f2d9c1e", "_captain", "llm_response")
	assert.Equal(t, "notifications.frontend.4f2d9c1e._captain.llm_response", key)
}

func TestFrontendKeySanitizesSegments(t *testing.T) {
	// Dots inside a segment would shift topic matching, so they are
	// rewritten; empty segments become a placeholder.
	key := FrontendKey("evt-1", "user.admin", "")
	assert.Equal(t, "notifications.frontend.evt-1.user_admin.unknown", key)
}

func TestEventIDFromKey(t *testing.T) {
	assert.Equal(t, "evt-42", EventIDFromKey("notifications.frontend.evt-42._expert.event_summary"))

	// Key without sender/type segments still yields the event id.
	assert.Equal(t, "evt-42", EventIDFromKey("notifications.frontend.evt-42"))

	// Foreign namespaces are ignored.
	assert.Equal(t, "", EventIDFromKey("alerts.backend.evt-42.system.error"))
	assert.Equal(t, "", EventIDFromKey(""))
}
