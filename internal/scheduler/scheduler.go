package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"KaspaWorth/internal/pricing"

	"github.com/robfig/cron/v3"
)

// PriceRefresher runs one price cycle.
type PriceRefresher interface {
	RefreshPrice(ctx context.Context) pricing.Result
}

// Scheduler manages the periodic price refresh.
type Scheduler struct {
	Cron    *cron.Cron
	Target  PriceRefresher
	Timeout time.Duration
	Ctx     context.Context
}

// NewScheduler creates a new Scheduler. A tick that fires while the previous
// cycle is still running is skipped.
func NewScheduler(ctx context.Context, target PriceRefresher, timeout time.Duration) *Scheduler {
	return &Scheduler{
		Cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)),
		),
		Target:  target,
		Timeout: timeout,
		Ctx:     ctx,
	}
}

// Register schedules the refresh every interval, or on a cron spec if one is
// given.
func (s *Scheduler) Register(interval time.Duration, spec string) error {
	if spec == "" {
		if interval <= 0 {
			return fmt.Errorf("refresh interval must be positive, got %s", interval)
		}
		spec = "@every " + interval.String()
	}
	if _, err := s.Cron.AddFunc(spec, s.refreshTask); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	log.Printf("[INFO] price refresh scheduled: %s", spec)
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the scheduler and waits for a running cycle to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes one refresh immediately.
func (s *Scheduler) RunNow() pricing.Result {
	return s.refresh()
}

func (s *Scheduler) refreshTask() {
	s.refresh()
}

func (s *Scheduler) refresh() pricing.Result {
	ctx := s.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}
	res := s.Target.RefreshPrice(ctx)
	if res.Status.IsError() {
		log.Printf("[WARN] price refresh ended %s (%s): %v", res.Outcome, res.Status, res.Err)
	} else {
		log.Printf("[INFO] price refresh ended %s (%s)", res.Outcome, res.Status)
	}
	return res
}
