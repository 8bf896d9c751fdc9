// Package cleanup purges closed events once they age past the retention
// window, taking the whole decomposition tree with them.
package cleanup

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/deepsoc/deepsoc/ent"
	"github.com/deepsoc/deepsoc/ent/action"
	"github.com/deepsoc/deepsoc/ent/command"
	"github.com/deepsoc/deepsoc/ent/event"
	"github.com/deepsoc/deepsoc/ent/execution"
	"github.com/deepsoc/deepsoc/ent/llmrecord"
	"github.com/deepsoc/deepsoc/ent/message"
	"github.com/deepsoc/deepsoc/ent/summary"
	"github.com/deepsoc/deepsoc/ent/task"
	"github.com/deepsoc/deepsoc/pkg/config"
)

// Service periodically deletes events that have sat in a terminal status
// (completed or failed) longer than the retention window, together with
// every row that references them: tasks, actions, commands, executions,
// messages, summaries and model call records.
//
// Purging is idempotent and safe to run from multiple replicas; the worst
// case is two sweeps racing to delete the same rows.
type Service struct {
	config config.RetentionConfig
	client *ent.Client

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a retention service over the given database client.
func NewService(cfg config.RetentionConfig, client *ent.Client) *Service {
	return &Service{config: cfg, client: client}
}

// Start launches the background sweep loop. No-op when retention is
// disabled or the service is already running.
func (s *Service) Start(ctx context.Context) {
	if !s.config.Enabled || s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Retention service started",
		"event_retention_days", s.config.EventRetentionDays,
		"interval", s.config.SweepInterval)
}

// Stop signals the sweep loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Retention service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.sweep(ctx)

	ticker := time.NewTicker(s.config.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Service) sweep(ctx context.Context) {
	purged, err := s.PurgeExpired(ctx)
	if err != nil {
		slog.Error("Retention sweep failed", "error", err)
		return
	}
	if purged > 0 {
		slog.Info("Retention sweep purged closed events", "count", purged)
	}
}

// PurgeExpired deletes one batch of expired events and returns how many it
// removed. An event expires once it is completed or failed and its last
// update is older than the retention window; events still in flight are
// never touched regardless of age.
func (s *Service) PurgeExpired(ctx context.Context) (int, error) {
	cutoff := time.Now().AddDate(0, 0, -s.config.EventRetentionDays)

	expired, err := s.client.Event.Query().
		Where(
			event.StatusIn(event.StatusCompleted, event.StatusFailed),
			event.UpdatedAtLT(cutoff),
		).
		Order(ent.Asc(event.FieldUpdatedAt)).
		Limit(s.config.SweepBatchSize).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query expired events: %w", err)
	}

	purged := 0
	for _, ev := range expired {
		if err := s.purgeEvent(ctx, ev); err != nil {
			return purged, fmt.Errorf("failed to purge event %s: %w", ev.EventID, err)
		}
		purged++
	}
	return purged, nil
}

// purgeEvent removes one event and its tree in a single transaction so a
// crash mid-purge never leaves an event stripped of its audit trail.
func (s *Service) purgeEvent(ctx context.Context, ev *ent.Event) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Execution.Delete().Where(execution.EventIDEQ(ev.EventID)).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete executions: %w", err)
	}
	if _, err := tx.Command.Delete().Where(command.EventIDEQ(ev.EventID)).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete commands: %w", err)
	}
	if _, err := tx.Action.Delete().Where(action.EventIDEQ(ev.EventID)).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete actions: %w", err)
	}
	if _, err := tx.Task.Delete().Where(task.EventIDEQ(ev.EventID)).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete tasks: %w", err)
	}
	if _, err := tx.Message.Delete().Where(message.EventIDEQ(ev.EventID)).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete messages: %w", err)
	}
	if _, err := tx.Summary.Delete().Where(summary.EventIDEQ(ev.EventID)).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete summaries: %w", err)
	}
	if _, err := tx.LLMRecord.Delete().Where(llmrecord.EventIDEQ(ev.EventID)).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete llm records: %w", err)
	}
	if _, err := tx.Event.Delete().Where(event.IDEQ(ev.ID)).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit purge of event %s: %w", ev.EventID, err)
	}
	return nil
}
