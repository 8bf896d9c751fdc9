package prompts

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepsoc/deepsoc/pkg/models"
	testdb "github.com/deepsoc/deepsoc/test/database"
)

func TestSystemPromptFallsBackToDefaults(t *testing.T) {
	ctx := context.Background()
	store := NewStore(testdb.NewTestClient(t).Client)

	got, err := store.SystemPrompt(ctx, models.RoleManager)
	require.NoError(t, err)

	// Placeholders are expanded, not left in the text.
	assert.NotContains(t, got, "{background_info}")
	assert.NotContains(t, got, "{playbook_list}")
	assert.Contains(t, got, "SOAR playbook capability list")
	assert.Contains(t, got, "response_type")
}

func TestSystemPromptUsesStoredOverrides(t *testing.T) {
	ctx := context.Background()
	store := NewStore(testdb.NewTestClient(t).Client)

	require.NoError(t, store.Set(ctx, NameCaptain, "Commander prompt with {background_info}"))
	require.NoError(t, store.Set(ctx, NameBackgroundSecurity, "ACME security posture"))

	got, err := store.SystemPrompt(ctx, models.RoleCaptain)
	require.NoError(t, err)
	assert.Equal(t, "Commander prompt with ACME security posture", got)
}

func TestSystemPromptUnknownRole(t *testing.T) {
	store := NewStore(testdb.NewTestClient(t).Client)

	_, err := store.SystemPrompt(context.Background(), "_executor")
	require.Error(t, err)
}

func TestSetRejectsUnknownName(t *testing.T) {
	store := NewStore(testdb.NewTestClient(t).Client)

	err := store.Set(context.Background(), "role_soc_wizard", "nope")
	require.ErrorIs(t, err, ErrUnknownPrompt)
}

func TestSeedIsIdempotentAndPreservesEdits(t *testing.T) {
	ctx := context.Background()
	store := NewStore(testdb.NewTestClient(t).Client)

	n, err := store.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(Names()), n)

	// An operator edit must survive a re-seed.
	require.NoError(t, store.Set(ctx, NameOperator, "tuned operator prompt"))

	n, err = store.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	got, err := store.Get(ctx, NameOperator)
	require.NoError(t, err)
	assert.Equal(t, "tuned operator prompt", got)
}

func TestDefaultsCoverEveryRoleWithAnLLM(t *testing.T) {
	for _, role := range []string{models.RoleCaptain, models.RoleManager, models.RoleOperator, models.RoleExpert} {
		name, ok := NameForRole(role)
		require.True(t, ok, "role %s has no prompt", role)
		require.NotEmpty(t, defaults[name])
	}

	// The role templates must state the YAML contract.
	for _, name := range []string{NameCaptain, NameManager, NameOperator, NameExpert} {
		assert.True(t, strings.Contains(defaults[name], "```yaml"), "%s lacks YAML examples", name)
	}
}
