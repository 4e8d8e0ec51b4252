// Package scheduler runs the periodic worksheet refresh.
package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// refreshTimeout bounds one scheduled refresh run.
const refreshTimeout = 2 * time.Minute

// Refresher re-fetches the configured worksheets and updates snapshots.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Scheduler triggers a refresh on a cron schedule so the loader cache and
// the snapshot store stay warm between user interactions.
type Scheduler struct {
	cron *cron.Cron
}

// New creates a Scheduler that runs refresher on the given cron schedule
// (standard 5-field cron expression).
func New(schedule string, refresher Refresher) (*Scheduler, error) {
	c := cron.New()

	_, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()

		if err := refresher.Refresh(ctx); err != nil {
			log.Printf("Scheduled refresh failed: %v", err)
			return
		}
		log.Printf("Scheduled refresh completed")
	})
	if err != nil {
		return nil, err
	}

	return &Scheduler{cron: c}, nil
}

// Start begins running scheduled refreshes in the background.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops the scheduler and waits for a running refresh to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
