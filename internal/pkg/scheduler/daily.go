package scheduler

import (
	"context"
	"time"

	"github.com/trucklink/fleetcall/internal/pkg/logger"
)

// Job is the unit of work a DailyScheduler runs.
type Job func(ctx context.Context)

// DailyScheduler fires a job once a day at a fixed local time. The
// morning check-in sweep runs at 07:00 by default.
type DailyScheduler struct {
	name   string
	hour   int
	minute int
	job    Job
	cancel context.CancelFunc
	done   chan struct{}
}

// NewDailyScheduler creates a scheduler that runs job at hour:minute
// every day.
func NewDailyScheduler(name string, hour, minute int, job Job) *DailyScheduler {
	return &DailyScheduler{
		name:   name,
		hour:   hour,
		minute: minute,
		job:    job,
		done:   make(chan struct{}),
	}
}

// Start launches the scheduler loop in a background goroutine.
func (s *DailyScheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	go s.run(ctx)
}

// Stop cancels the scheduler loop and waits for it to exit.
func (s *DailyScheduler) Stop() {
	if s.cancel != nil {
		s.cancel()
		<-s.done
	}
}

func (s *DailyScheduler) run(ctx context.Context) {
	defer close(s.done)

	for {
		wait := time.Until(NextRun(time.Now(), s.hour, s.minute))
		logger.Info("Scheduler sleeping until next run",
			logger.String("job", s.name),
			logger.Duration("wait", wait))

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			logger.Info("Scheduler stopped", logger.String("job", s.name))
			return
		case <-timer.C:
			logger.Info("Scheduler firing job", logger.String("job", s.name))
			s.job(ctx)
		}
	}
}

// NextRun returns the first instant strictly after now that falls on
// hour:minute. If today's slot has already passed, it rolls to
// tomorrow.
func NextRun(now time.Time, hour, minute int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
