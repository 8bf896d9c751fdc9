package workers

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/deepsoc/deepsoc/pkg/config"
)

// countingRole returns its scripted results in order, then ErrNoWork.
type countingRole struct {
	mu      sync.Mutex
	results []error
	ticks   int
}

func (r *countingRole) Name() string { return "counting" }

func (r *countingRole) Tick(context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ticks++
	if len(r.results) > 0 {
		err := r.results[0]
		r.results = r.results[1:]
		return err
	}
	return ErrNoWork
}

func (r *countingRole) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ticks
}

func testWorkerConfig() config.WorkerConfig {
	cfg := config.DefaultWorkerConfig()
	cfg.PollInterval = 10 * time.Millisecond
	cfg.PollIntervalJitter = 0
	cfg.MaxBackoff = 40 * time.Millisecond
	return cfg
}

func TestRunner_DrainsWorkThenIdles(t *testing.T) {
	role := &countingRole{results: []error{nil, nil}}
	r := NewRunner(role, testWorkerConfig())

	r.Start(context.Background())
	time.Sleep(100 * time.Millisecond)
	r.Stop()

	// Two work ticks back to back, then idle polls with backoff.
	assert.GreaterOrEqual(t, role.count(), 3)
}

func TestRunner_StopIsPromptAndIdempotent(t *testing.T) {
	role := &countingRole{}
	r := NewRunner(role, testWorkerConfig())

	r.Start(context.Background())
	time.Sleep(20 * time.Millisecond)

	start := time.Now()
	r.Stop()
	r.Stop()
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestRunner_ContextCancelStopsLoop(t *testing.T) {
	role := &countingRole{}
	ctx, cancel := context.WithCancel(context.Background())
	r := NewRunner(role, testWorkerConfig())

	r.Start(ctx)
	time.Sleep(20 * time.Millisecond)
	cancel()
	time.Sleep(60 * time.Millisecond)

	before := role.count()
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, before, role.count())

	r.Stop()
}

func TestRunner_IdleBackoffDoublesToCap(t *testing.T) {
	r := NewRunner(&countingRole{}, testWorkerConfig())

	assert.Equal(t, 10*time.Millisecond, r.nextIdleInterval())
	assert.Equal(t, 20*time.Millisecond, r.nextIdleInterval())
	assert.Equal(t, 40*time.Millisecond, r.nextIdleInterval())
	assert.Equal(t, 40*time.Millisecond, r.nextIdleInterval())

	// A successful tick resets the ladder.
	r.idle = 0
	assert.Equal(t, 10*time.Millisecond, r.nextIdleInterval())
}

func TestJitteredBounds(t *testing.T) {
	for range 100 {
		d := jittered(100*time.Millisecond, 30*time.Millisecond)
		assert.GreaterOrEqual(t, d, 70*time.Millisecond)
		assert.LessOrEqual(t, d, 130*time.Millisecond)
	}
	assert.Equal(t, 100*time.Millisecond, jittered(100*time.Millisecond, 0))
}
