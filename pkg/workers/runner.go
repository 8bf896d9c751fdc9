// Package workers implements the role loops that drive an event through
// its rounds: captain, manager, operator, executor, and the expert pair
// (execution summarizer and lifecycle manager). Each role polls the
// database for rows in its input status, claims work, and advances the
// workflow; rows are the queue, claims use FOR UPDATE SKIP LOCKED.
package workers

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/deepsoc/deepsoc/pkg/config"
)

// ErrNoWork signals an idle poll: nothing in the role's input status.
var ErrNoWork = errors.New("no work available")

// Role is one polling worker. Tick claims and processes at most one
// unit of work and returns ErrNoWork when its queue is empty.
type Role interface {
	Name() string
	Tick(ctx context.Context) error
}

// Runner drives a Role in a polling loop. Idle polls back off
// exponentially from the base interval up to MaxBackoff; a successful
// tick resets the backoff so a busy queue is drained at full speed.
type Runner struct {
	role Role
	cfg  config.WorkerConfig

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// idle is the next idle sleep; touched only from the run goroutine.
	idle time.Duration
}

// NewRunner creates a runner for role. The base poll interval comes
// from cfg.PollInterval; callers that want a slower cadence (the
// lifecycle manager) pass an adjusted config.
func NewRunner(role Role, cfg config.WorkerConfig) *Runner {
	return &Runner{
		role:   role,
		cfg:    cfg,
		stopCh: make(chan struct{}),
	}
}

// Start begins the polling loop in a goroutine.
func (r *Runner) Start(ctx context.Context) {
	r.wg.Add(1)
	go r.run(ctx)
}

// Stop signals the loop to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (r *Runner) Stop() {
	r.stopOnce.Do(func() { close(r.stopCh) })
	r.wg.Wait()
}

// run is the main polling loop.
func (r *Runner) run(ctx context.Context) {
	defer r.wg.Done()

	log := slog.With("worker", r.role.Name())
	log.Info("Worker started")

	for {
		select {
		case <-r.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			err := r.role.Tick(ctx)
			if err == nil {
				r.idle = 0
				continue
			}
			if errors.Is(err, ErrNoWork) {
				r.sleep(r.nextIdleInterval())
				continue
			}
			log.Error("Error processing work item", "error", err)
			r.sleep(time.Second) // Brief backoff on error
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (r *Runner) sleep(d time.Duration) {
	select {
	case <-r.stopCh:
	case <-time.After(d):
	}
}

// nextIdleInterval returns the current idle interval with jitter and
// doubles the stored interval for the next idle poll, capped at
// MaxBackoff.
func (r *Runner) nextIdleInterval() time.Duration {
	d := r.idle
	if d <= 0 {
		d = r.cfg.PollInterval
	}
	next := d * 2
	if next > r.cfg.MaxBackoff {
		next = r.cfg.MaxBackoff
	}
	r.idle = next
	return jittered(d, r.cfg.PollIntervalJitter)
}

// jittered returns a duration in [d - jitter, d + jitter].
func jittered(d, jitter time.Duration) time.Duration {
	if jitter <= 0 {
		return d
	}
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	out := d - jitter + offset
	if out <= 0 {
		return d
	}
	return out
}
