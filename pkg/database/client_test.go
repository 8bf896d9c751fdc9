package database

import (
	"context"
	stdsql "database/sql"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestConfig_DSN(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{
			name: "url takes precedence",
			cfg: Config{
				URL:  "postgres://u:p@db:5432/deepsoc?sslmode=require",
				Host: "ignored",
			},
			want: "postgres://u:p@db:5432/deepsoc?sslmode=require",
		},
		{
			name: "composed from discrete fields",
			cfg: Config{
				Host:     "localhost",
				Port:     5432,
				User:     "deepsoc",
				Password: "secret",
				Database: "deepsoc",
				SSLMode:  "disable",
			},
			want: "host=localhost port=5432 user=deepsoc password=secret dbname=deepsoc sslmode=disable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.DSN())
		})
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	envKeys := []string{
		"DATABASE_URL", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD",
		"DB_NAME", "DB_SSLMODE", "DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
	}
	clearEnv := func() {
		for _, key := range envKeys {
			os.Unsetenv(key)
		}
	}

	t.Run("defaults", func(t *testing.T) {
		clearEnv()
		t.Cleanup(clearEnv)

		cfg, err := LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "localhost", cfg.Host)
		assert.Equal(t, 5432, cfg.Port)
		assert.Equal(t, "deepsoc", cfg.User)
		assert.Equal(t, "deepsoc", cfg.Database)
		assert.Equal(t, "disable", cfg.SSLMode)
		assert.Equal(t, 10, cfg.MaxOpenConns)
		assert.Equal(t, 5, cfg.MaxIdleConns)
	})

	t.Run("database url wins", func(t *testing.T) {
		clearEnv()
		t.Cleanup(clearEnv)
		os.Setenv("DATABASE_URL", "postgres://a:b@c:5432/d")
		os.Setenv("DB_HOST", "other")

		cfg, err := LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "postgres://a:b@c:5432/d", cfg.DSN())
	})

	t.Run("invalid port", func(t *testing.T) {
		clearEnv()
		t.Cleanup(clearEnv)
		os.Setenv("DB_PORT", "not_a_port")

		_, err := LoadConfigFromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid DB_PORT")
	})
}

// TestRunMigrations applies the embedded migration files against a fresh
// database and verifies the workflow tables exist in the expected shape.
func TestRunMigrations(t *testing.T) {
	ctx := context.Background()

	var connStr string
	if ciDatabaseURL := os.Getenv("CI_DATABASE_URL"); ciDatabaseURL != "" {
		t.Skip("embedded-migration test needs a dedicated database; skipped against CI_DATABASE_URL")
	}

	pgContainer, err := postgres.Run(ctx,
		"postgres:17-alpine",
		postgres.WithDatabase("test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(pgContainer); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connStr, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, RunMigrations(db, "test"))

	// Applying twice is a no-op
	require.NoError(t, RunMigrations(db, "test"))

	for _, table := range []string{
		"events", "tasks", "actions", "commands", "executions",
		"summaries", "messages", "llm_records", "prompts",
		"global_settings", "users",
	} {
		var exists bool
		err := db.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = $1)`,
			table,
		).Scan(&exists)
		require.NoError(t, err)
		assert.True(t, exists, "table %s should exist", table)
	}

	// Messages get an identity primary key for per-event ordering
	_, err = db.ExecContext(ctx,
		`INSERT INTO messages (message_id, event_id, round_id, message_from, message_type, message_content, created_at)
		 VALUES ('m1', 'e1', 1, 'system', 'test', '{}', now()), ('m2', 'e1', 1, 'system', 'test', '{}', now())`)
	require.NoError(t, err)

	var first, second int
	row := db.QueryRowContext(ctx, `SELECT id FROM messages WHERE message_id = 'm1'`)
	require.NoError(t, row.Scan(&first))
	row = db.QueryRowContext(ctx, `SELECT id FROM messages WHERE message_id = 'm2'`)
	require.NoError(t, row.Scan(&second))
	assert.Greater(t, second, first)
}
