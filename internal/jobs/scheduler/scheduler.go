package scheduler

import (
	"context"
	"fmt"
	"hive-server/internal/observability"
	"time"

	"github.com/robfig/cron/v3"
)

// Job represents a scheduled job
type Job interface {
	// Name returns the job name for logging
	Name() string
	// Run executes the job
	Run(ctx context.Context) error
	// Schedule returns the interval between runs
	Schedule() time.Duration
}

// Scheduler runs registered jobs on a cron. A job never overlaps itself: a
// tick that fires while the previous run is still going is skipped.
type Scheduler struct {
	cron   *cron.Cron
	jobs   []Job
	logger *observability.Logger
}

// New creates a new scheduler
func New(logger *observability.Logger) *Scheduler {
	cronLogger := cronLogger{logger: logger}
	return &Scheduler{
		cron: cron.New(cron.WithChain(
			cron.Recover(cronLogger),
			cron.SkipIfStillRunning(cronLogger),
		)),
		jobs:   make([]Job, 0),
		logger: logger,
	}
}

// Register adds a job to the scheduler
func (s *Scheduler) Register(job Job) {
	s.jobs = append(s.jobs, job)
	s.logger.Info(context.Background(), fmt.Sprintf("Registered scheduled job: %s (interval: %s)",
		job.Name(), job.Schedule()))
}

// Start schedules every job, runs each once immediately and blocks until ctx
// is cancelled. Running jobs are waited for before it returns.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info(ctx, fmt.Sprintf("Starting scheduler with %d jobs", len(s.jobs)))

	for _, job := range s.jobs {
		entryID, err := s.cron.AddJob(fmt.Sprintf("@every %s", job.Schedule()), s.wrap(ctx, job))
		if err != nil {
			return fmt.Errorf("failed to schedule job %s: %w", job.Name(), err)
		}

		// startup run goes through the same chain so it cannot overlap the first tick
		go s.cron.Entry(entryID).WrappedJob.Run()
	}

	s.cron.Start()

	<-ctx.Done()
	s.logger.Info(ctx, "Stopping scheduler, waiting for running jobs")
	<-s.cron.Stop().Done()
	s.logger.Info(ctx, "Scheduler stopped")
	return ctx.Err()
}

func (s *Scheduler) wrap(ctx context.Context, job Job) cron.Job {
	jobCtx := observability.WithFields(ctx, observability.Field{Key: "scheduled_job", Value: job.Name()})
	return cron.FuncJob(func() {
		if ctx.Err() != nil {
			return
		}
		_ = s.executeJob(jobCtx, job)
	})
}

// executeJob executes a job and logs timing
func (s *Scheduler) executeJob(ctx context.Context, job Job) error {
	start := time.Now()
	s.logger.Info(ctx, fmt.Sprintf("Executing scheduled job: %s", job.Name()))

	err := job.Run(ctx)
	duration := time.Since(start)

	if err != nil {
		s.logger.Error(ctx, fmt.Sprintf("Job %s failed after %v", job.Name(), duration), err)
		return err
	}

	s.logger.Info(ctx, fmt.Sprintf("Job %s completed successfully in %v", job.Name(), duration))
	return nil
}

// cronLogger adapts the structured logger to cron.Logger
type cronLogger struct {
	logger *observability.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info(context.Background(), "cron: "+msg, pairsToFields(keysAndValues)...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	ctx := observability.WithFields(context.Background(), pairsToFields(keysAndValues)...)
	l.logger.Error(ctx, "cron: "+msg, err)
}

func pairsToFields(keysAndValues []interface{}) []observability.Field {
	fields := make([]observability.Field, 0, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fields = append(fields, observability.Field{Key: fmt.Sprint(keysAndValues[i]), Value: keysAndValues[i+1]})
	}
	return fields
}
