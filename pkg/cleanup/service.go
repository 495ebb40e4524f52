// Package cleanup enforces the journal retention policy.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/sitekeeper/sitekeeper/pkg/config"
)

// Purger removes journal records older than a cutoff. Implemented by the
// ent-backed journal store.
type Purger interface {
	PurgeBefore(ctx context.Context, cutoff time.Time) (int, error)
}

// Service periodically purges journal entries and finished action records
// past the configured retention window. Purges are idempotent and safe to
// run from multiple masters sharing one database.
type Service struct {
	config *config.RetentionConfig
	purger Purger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, purger Purger) *Service {
	return &Service{config: cfg, purger: purger}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"journal_retention_days", s.config.JournalRetentionDays,
		"interval_minutes", s.config.CleanupIntervalMinutes)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.purge(ctx)

	ticker := time.NewTicker(time.Duration(s.config.CleanupIntervalMinutes) * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.purge(ctx)
		}
	}
}

func (s *Service) purge(ctx context.Context) {
	cutoff := time.Now().UTC().AddDate(0, 0, -s.config.JournalRetentionDays)
	count, err := s.purger.PurgeBefore(ctx, cutoff)
	if err != nil {
		slog.Error("Retention: journal purge failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: purged journal records", "count", count, "cutoff", cutoff)
	}
}
