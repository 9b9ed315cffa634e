package scheduler

import (
	"fmt"
	"time"

	"github.com/insightlabs/insighttrader-go/internal/simulator"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Scheduler drives periodic background jobs for the life of the process.
type Scheduler struct {
	cron   *cron.Cron
	logger *logrus.Logger
}

// New creates a scheduler. cron.Recover keeps a panicking job from killing
// the schedule; the next interval runs regardless.
func New(logger *logrus.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(cron.WithChain(cron.Recover(cron.PrintfLogger(logger)))),
		logger: logger,
	}
}

// Register adds a job at the given interval.
func (s *Scheduler) Register(interval time.Duration, job func()) error {
	spec := fmt.Sprintf("@every %s", interval)
	if _, err := s.cron.AddFunc(spec, job); err != nil {
		return fmt.Errorf("register job: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("Price tick scheduler started")
}

// Stop stops the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Price tick scheduler stopped")
}

// TickJob returns the periodic price tick for the simulator.
func TickJob(sim *simulator.Simulator, logger *logrus.Logger) func() {
	return func() {
		point := sim.Tick()
		logger.WithFields(logrus.Fields{
			"price":     point.Price,
			"timestamp": point.Timestamp,
		}).Debug("Simulated new price tick")
	}
}
