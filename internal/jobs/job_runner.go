package jobs

import (
	"context"
	"time"

	"toolrent-backend/internal/config"
	"toolrent-backend/internal/logger"
	"toolrent-backend/internal/metrics"
	"toolrent-backend/internal/service"
)

const jobTimeout = 5 * time.Minute

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	orders  service.OrderService
	metrics *metrics.Metrics
	config  config.SchedulerConfig
	now     func() time.Time
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(orders service.OrderService, m *metrics.Metrics, cfg config.SchedulerConfig) *JobRunner {
	return &JobRunner{
		orders:  orders,
		metrics: m,
		config:  cfg,
		now:     time.Now,
	}
}

// Config returns the scheduler configuration
func (jr *JobRunner) Config() config.SchedulerConfig {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func(ctx context.Context) error) {
	log := logger.WithService("cronjob").With("job", jobName)
	defer func() {
		if r := recover(); r != nil {
			log.Error("Job panicked", "panic", r)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	log.Info("Starting job")
	start := jr.now()
	if err := jobFunc(ctx); err != nil {
		log.Error("Job failed", "error", err)
		return
	}
	log.Info("Job completed", "duration", jr.now().Sub(start))
}

// RunAllNightlyJobs runs all nightly jobs (for manual execution)
func (jr *JobRunner) RunAllNightlyJobs() {
	jr.ReportOverdueOrders()
}
