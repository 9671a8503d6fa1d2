package jobs

//go:generate go run go.uber.org/mock/mockgen@latest -source=tracking_job.go -destination=mocks_test.go -package=jobs

import (
	"context"
	"fmt"
	"hive-server/internal/observability"
	"hive-server/internal/tracking/processor"
	"time"
)

// CampaignTracker runs one tracking cycle over every active campaign
type CampaignTracker interface {
	RunActiveCampaigns(ctx context.Context) (processor.RunSummary, error)
}

// TrackingJob polls discovery for new campaign posts on a schedule
type TrackingJob struct {
	tracker  CampaignTracker
	logger   *observability.Logger
	interval time.Duration
}

// NewTrackingJob creates a new tracking job
func NewTrackingJob(tracker CampaignTracker, logger *observability.Logger, interval time.Duration) *TrackingJob {
	if interval <= 0 {
		interval = 10 * time.Minute
	}

	return &TrackingJob{
		tracker:  tracker,
		logger:   logger,
		interval: interval,
	}
}

// Name returns the job name
func (j *TrackingJob) Name() string {
	return "campaign_tracking"
}

// Schedule returns how often the job should run
func (j *TrackingJob) Schedule() time.Duration {
	return j.interval
}

// Run executes one tracking cycle. Per-campaign failures are part of the
// summary and only fail the job when nothing could be recorded at all.
func (j *TrackingJob) Run(ctx context.Context) error {
	summary, err := j.tracker.RunActiveCampaigns(ctx)
	if err != nil {
		return fmt.Errorf("failed to run tracking cycle: %w", err)
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaigns", Value: len(summary.Campaigns)},
		observability.Field{Key: "fetched", Value: summary.TotalFetched},
		observability.Field{Key: "recorded", Value: summary.TotalRecorded},
		observability.Field{Key: "skipped", Value: summary.TotalSkipped},
	)

	if len(summary.Errors) > 0 {
		j.logger.Warn(ctx, fmt.Sprintf("Tracking cycle finished with %d campaign errors", len(summary.Errors)))
		if len(summary.Errors) == len(summary.Campaigns) && summary.TotalRecorded == 0 {
			return fmt.Errorf("tracking cycle failed for all %d campaigns: %s", len(summary.Campaigns), summary.Errors[0])
		}
		return nil
	}

	j.logger.Info(ctx, "Tracking cycle finished")
	return nil
}
