package cleanup

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitekeeper/sitekeeper/pkg/config"
)

type fakePurger struct {
	mu      sync.Mutex
	cutoffs []time.Time
	err     error
}

func (f *fakePurger) PurgeBefore(_ context.Context, cutoff time.Time) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cutoffs = append(f.cutoffs, cutoff)
	if f.err != nil {
		return 0, f.err
	}
	return 3, nil
}

func (f *fakePurger) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.cutoffs)
}

func retentionConfig() *config.RetentionConfig {
	return &config.RetentionConfig{
		JournalRetentionDays:   30,
		CleanupIntervalMinutes: 60,
	}
}

func TestPurgeUsesRetentionCutoff(t *testing.T) {
	purger := &fakePurger{}
	svc := NewService(retentionConfig(), purger)

	svc.purge(context.Background())

	require.Equal(t, 1, purger.calls())
	want := time.Now().UTC().AddDate(0, 0, -30)
	assert.WithinDuration(t, want, purger.cutoffs[0], time.Minute)
}

func TestStartPurgesImmediatelyAndStops(t *testing.T) {
	purger := &fakePurger{}
	svc := NewService(retentionConfig(), purger)

	svc.Start(context.Background())
	require.Eventually(t, func() bool {
		return purger.calls() >= 1
	}, 2*time.Second, 10*time.Millisecond)

	// Duplicate Start is a no-op.
	svc.Start(context.Background())

	done := make(chan struct{})
	go func() {
		svc.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return")
	}
}

func TestPurgeErrorIsNotFatal(t *testing.T) {
	purger := &fakePurger{err: fmt.Errorf("database gone")}
	svc := NewService(retentionConfig(), purger)

	svc.purge(context.Background())

	assert.Equal(t, 1, purger.calls())
}
