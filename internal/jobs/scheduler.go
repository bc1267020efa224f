// Package jobs runs periodic maintenance on a cron schedule.
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"carwash/internal/logger"
)

const purgeTimeout = 30 * time.Second

// SessionPurger deletes stale employee sessions.
type SessionPurger interface {
	PurgeSessions(ctx context.Context) (int64, error)
}

// Scheduler owns the cron runner.
type Scheduler struct {
	cron *cron.Cron
}

// NewScheduler registers the session purge under schedule (standard cron syntax
// or descriptors such as "@every 1h").
func NewScheduler(schedule string, purger SessionPurger) (*Scheduler, error) {
	c := cron.New()
	if _, err := c.AddFunc(schedule, func() { purgeSessions(purger) }); err != nil {
		return nil, fmt.Errorf("schedule session purge %q: %w", schedule, err)
	}
	return &Scheduler{cron: c}, nil
}

func purgeSessions(purger SessionPurger) {
	ctx, cancel := context.WithTimeout(context.Background(), purgeTimeout)
	defer cancel()

	n, err := purger.PurgeSessions(ctx)
	if err != nil {
		logger.Get().Error().Err(err).Msg("session purge failed")
		return
	}
	logger.Get().Info().Int64("deleted", n).Msg("session purge completed")
}

// Start runs the scheduler in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
	logger.Get().Info().Msg("job scheduler started")
}

// Stop waits for running jobs or ctx, whichever ends first.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
	}
}
