// Package scheduler runs the fixed-bill rollover on a cron schedule.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/wealthpath/finance-tracker/internal/logger"
)

// Config holds the scheduler configuration
type Config struct {
	// Schedule is a standard 5-field cron expression (e.g. "0 3 1 * *" for 03:00 on the 1st)
	Schedule string
	// Timeout bounds a single rollover run
	Timeout time.Duration
	// Enabled determines if the scheduler should run
	Enabled bool
	// RunOnStart runs one rollover when the scheduler starts, for resets
	// missed while the process was down
	RunOnStart bool
}

// DefaultConfig returns the default scheduler configuration
func DefaultConfig() Config {
	return Config{
		Schedule: "0 3 1 * *",
		Timeout:  30 * time.Second,
		Enabled:  false,
	}
}

// Roller resets recurring bills paid in an earlier month and reports how
// many it reset.
type Roller interface {
	Rollover(ctx context.Context) (int, error)
}

// Scheduler manages the scheduled rollover job
type Scheduler struct {
	cron    *cron.Cron
	roller  Roller
	config  Config
	logger  *slog.Logger
	entryID cron.EntryID

	mu      sync.Mutex
	lastRun time.Time
	lastN   int
	lastErr error
}

// New creates a new Scheduler instance
func New(cfg Config, roller Roller, l *slog.Logger) *Scheduler {
	if l == nil {
		l = logger.Logger()
	}

	return &Scheduler{
		cron:   cron.New(cron.WithSeconds()),
		roller: roller,
		config: cfg,
		logger: l,
	}
}

// Start registers the job and starts the cron loop. A disabled scheduler is a no-op.
func (s *Scheduler) Start() error {
	if !s.config.Enabled {
		s.logger.Info("Rollover scheduler is disabled, skipping start")
		return nil
	}

	// Standard cron has 5 fields; the cron instance expects a leading seconds field.
	schedule := "0 " + s.config.Schedule

	entryID, err := s.cron.AddFunc(schedule, func() {
		s.runRolloverJob()
	})
	if err != nil {
		return err
	}

	s.entryID = entryID

	if s.config.RunOnStart {
		// Failures are logged by the job; the schedule still starts.
		_, _ = s.RunNow()
	}
	s.cron.Start()

	s.logger.Info("Rollover scheduler started",
		slog.String("schedule", s.config.Schedule),
		slog.Duration("timeout", s.config.Timeout),
	)

	return nil
}

// Stop stops the cron loop; the returned context is done when running jobs finish.
func (s *Scheduler) Stop() context.Context {
	s.logger.Info("Stopping rollover scheduler...")
	return s.cron.Stop()
}

// RunNow runs the rollover synchronously and returns its result.
func (s *Scheduler) RunNow() (int, error) {
	return s.runRolloverJob()
}

func (s *Scheduler) runRolloverJob() (int, error) {
	timeout := s.config.Timeout
	if timeout <= 0 {
		timeout = DefaultConfig().Timeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	ctx = logger.WithJob(ctx, "bill-rollover")
	log := logger.FromContext(ctx)

	startTime := time.Now()
	count, err := s.roller.Rollover(ctx)
	duration := time.Since(startTime)

	s.mu.Lock()
	s.lastRun, s.lastN, s.lastErr = startTime, count, err
	s.mu.Unlock()

	if err != nil {
		log.Error("Rollover job failed",
			slog.String("error", err.Error()),
			slog.Duration("duration", duration),
		)
		return 0, err
	}

	log.Info("Rollover job completed",
		slog.Int("bills_reset", count),
		slog.Duration("duration", duration),
	)
	return count, nil
}

// LastResult reports when the job last ran and what it returned.
func (s *Scheduler) LastResult() (time.Time, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastRun, s.lastN, s.lastErr
}

// GetNextRunTime returns the next scheduled run time
func (s *Scheduler) GetNextRunTime() time.Time {
	if s.entryID == 0 {
		return time.Time{}
	}
	return s.cron.Entry(s.entryID).Next
}

// IsRunning returns true if the job is registered
func (s *Scheduler) IsRunning() bool {
	return s.cron != nil && len(s.cron.Entries()) > 0
}
