// Package scheduler triggers the booking status sweep on a recurring
// cadence: once at process start, every 10 minutes, hourly, and daily at
// midnight. The schedules overlap on purpose: the sweep is idempotent,
// so no coordination between them is needed.
package scheduler

import (
	"context"
	"log"
	"time"

	"voyago/sweep"
)

// RunFunc is the sweep entry point the scheduler drives.
type RunFunc func(ctx context.Context) (sweep.Summary, error)

type Scheduler struct {
	run      RunFunc
	interval time.Duration
}

func New(run RunFunc) *Scheduler {
	return &Scheduler{run: run, interval: 10 * time.Minute}
}

// Start launches all schedules. They stop when ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	log.Println("Starting booking status sweep schedules...")

	go s.fire(ctx, "startup")
	go s.loopTicker(ctx, s.interval, "10-minute")
	go s.loopTicker(ctx, time.Hour, "hourly")
	go s.loopMidnight(ctx)
}

func (s *Scheduler) fire(ctx context.Context, label string) {
	summary, err := s.run(ctx)
	if err != nil {
		log.Printf("Sweep (%s) failed: %v", label, err)
		return
	}
	log.Printf("Sweep (%s): %d bookings updated", label, summary.TotalUpdated())
}

func (s *Scheduler) loopTicker(ctx context.Context, d time.Duration, label string) {
	ticker := time.NewTicker(d)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.fire(ctx, label)
		}
	}
}

func (s *Scheduler) loopMidnight(ctx context.Context) {
	for {
		timer := time.NewTimer(time.Until(nextMidnight(time.Now())))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			s.fire(ctx, "daily")
		}
	}
}

// nextMidnight returns the first 00:00 after now in now's location.
func nextMidnight(now time.Time) time.Time {
	year, month, day := now.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
}
