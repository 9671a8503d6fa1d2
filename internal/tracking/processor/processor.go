package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"hive-server/internal/discovery"
	"hive-server/internal/events"
	"hive-server/internal/observability"
	"hive-server/internal/scoring"
	"hive-server/internal/store"
	"time"

	"github.com/google/uuid"
)

var (
	ErrCampaignNotFound     = errors.New("campaign not found")
	ErrCampaignNotTrackable = errors.New("campaign is not trackable")
	ErrParticipantNotFound  = errors.New("author is not a campaign participant")
	ErrAlreadyTracked       = errors.New("post already tracked")
	ErrInvalidPost          = errors.New("invalid post")

	errStatsNotApplied = errors.New("post recorded but participant stats not updated")
)

// Skip reasons reported per campaign cycle
const (
	SkipMalformed      = "malformed"
	SkipInvalidPost    = "invalid_post"
	SkipOutsideWindow  = "outside_window"
	SkipAlreadyTracked = "already_tracked"
	SkipNotParticipant = "not_participant"
)

// TrackingStore defines the database operations required by the tracking Processor
type TrackingStore interface {
	GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error)
	ListActiveCampaigns(ctx context.Context) ([]store.Campaign, error)
	GetParticipantByUsername(ctx context.Context, campaignID uuid.UUID, username string) (store.Participant, error)
	IsTweetTracked(ctx context.Context, tweetID string) (bool, error)
	CreatePostEvent(ctx context.Context, params store.CreatePostEventParams) (store.PostEvent, error)
	GetTrackingState(ctx context.Context, campaignID uuid.UUID) (store.TrackingState, error)
	UpsertTrackingState(ctx context.Context, campaignID uuid.UUID, lastTweetID *string, totalTracked int64, lastRunAt time.Time) (store.TrackingState, error)
}

// PostSource returns candidate posts for a project tag
type PostSource interface {
	SearchPosts(ctx context.Context, projectTag string) ([]discovery.RawPost, error)
}

// StatsAggregator applies incremental participant totals
type StatsAggregator interface {
	IncrementParticipantStats(ctx context.Context, campaignID, userID uuid.UUID, mspDelta int64, postDelta int) error
}

// RankRecalculator re-ranks a campaign leaderboard
type RankRecalculator interface {
	RecalculateRanks(ctx context.Context, campaignID uuid.UUID) error
}

// EventPublisher announces tracking activity
type EventPublisher interface {
	PublishPostTracked(ctx context.Context, e events.PostTracked) error
	PublishCycleCompleted(ctx context.Context, e events.CycleCompleted) error
}

// Processor runs tracking cycles: fetch candidates, score the valid ones,
// record them in the ledger and update participant totals and ranks.
type Processor struct {
	store      TrackingStore
	source     PostSource
	calculator *scoring.Calculator
	aggregator StatsAggregator
	ranker     RankRecalculator
	publisher  EventPublisher
	logger     *observability.Logger
	now        func() time.Time
}

// New creates a tracking processor. publisher may be nil.
func New(
	store TrackingStore,
	source PostSource,
	calculator *scoring.Calculator,
	aggregator StatsAggregator,
	ranker RankRecalculator,
	publisher EventPublisher,
	logger *observability.Logger,
) *Processor {
	return &Processor{
		store:      store,
		source:     source,
		calculator: calculator,
		aggregator: aggregator,
		ranker:     ranker,
		publisher:  publisher,
		logger:     logger,
		now:        time.Now,
	}
}

// CampaignResult reports one campaign cycle. Unaggregated counts recorded
// posts whose MSP is not yet in the participant total; a recompute restores
// them.
type CampaignResult struct {
	CampaignID   uuid.UUID      `json:"campaign_id"`
	ProjectTag   string         `json:"project_tag"`
	Fetched      int            `json:"fetched"`
	Recorded     int            `json:"recorded"`
	Unaggregated int            `json:"unaggregated"`
	MSPAwarded   int64          `json:"msp_awarded"`
	Skipped      map[string]int `json:"skipped"`
	Errors       []string       `json:"errors"`
}

// SkippedTotal returns the number of skipped candidates across all reasons
func (r CampaignResult) SkippedTotal() int {
	total := 0
	for _, n := range r.Skipped {
		total += n
	}
	return total
}

// RunSummary reports a multi-campaign run
type RunSummary struct {
	StartedAt     time.Time        `json:"started_at"`
	FinishedAt    time.Time        `json:"finished_at"`
	Campaigns     []CampaignResult `json:"campaigns"`
	TotalFetched  int              `json:"total_fetched"`
	TotalRecorded int              `json:"total_recorded"`
	TotalSkipped  int              `json:"total_skipped"`
	Errors        []string         `json:"errors"`
}

// RunActiveCampaigns runs one cycle for every active campaign. A failing
// campaign is recorded in the summary and does not stop the others; only
// failing to list campaigns aborts the run.
func (p *Processor) RunActiveCampaigns(ctx context.Context) (RunSummary, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "operation", Value: "run_active_campaigns"})

	summary := RunSummary{StartedAt: p.now(), Campaigns: []CampaignResult{}, Errors: []string{}}

	campaigns, err := p.store.ListActiveCampaigns(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list active campaigns", err)
		return RunSummary{}, fmt.Errorf("failed to list active campaigns: %w", err)
	}

	for _, campaign := range campaigns {
		if ctx.Err() != nil {
			summary.Errors = append(summary.Errors, fmt.Sprintf("%s: run cancelled", campaign.ProjectTag))
			continue
		}
		result := p.runCampaign(ctx, campaign)
		summary.Campaigns = append(summary.Campaigns, result)
		summary.TotalFetched += result.Fetched
		summary.TotalRecorded += result.Recorded
		summary.TotalSkipped += result.SkippedTotal()
		for _, e := range result.Errors {
			summary.Errors = append(summary.Errors, fmt.Sprintf("%s: %s", campaign.ProjectTag, e))
		}
	}
	summary.FinishedAt = p.now()

	p.logger.Info(ctx, "tracking run completed",
		observability.Field{Key: "campaigns", Value: len(summary.Campaigns)},
		observability.Field{Key: "fetched", Value: summary.TotalFetched},
		observability.Field{Key: "recorded", Value: summary.TotalRecorded},
		observability.Field{Key: "skipped", Value: summary.TotalSkipped},
		observability.Field{Key: "errors", Value: len(summary.Errors)},
	)
	return summary, nil
}

// RunCampaign runs one tracking cycle for a single campaign
func (p *Processor) RunCampaign(ctx context.Context, campaignID uuid.UUID) (CampaignResult, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaignID.String()})

	campaign, err := p.store.GetCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return CampaignResult{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to get campaign", err)
		return CampaignResult{}, fmt.Errorf("failed to get campaign: %w", err)
	}
	if campaign.IsInviteBucket() {
		return CampaignResult{}, ErrCampaignNotTrackable
	}

	return p.runCampaign(ctx, campaign), nil
}

func (p *Processor) runCampaign(ctx context.Context, campaign store.Campaign) CampaignResult {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaign.ID.String()},
		observability.Field{Key: "project_tag", Value: campaign.ProjectTag},
		observability.Field{Key: "operation", Value: "tracking_cycle"},
	)

	result := CampaignResult{
		CampaignID: campaign.ID,
		ProjectTag: campaign.ProjectTag,
		Skipped:    map[string]int{},
		Errors:     []string{},
	}
	defer p.publishCycle(ctx, &result)

	raws, err := p.source.SearchPosts(ctx, campaign.ProjectTag)
	if err != nil {
		p.logger.Error(ctx, "failed to fetch candidate posts", err)
		result.Errors = append(result.Errors, fmt.Sprintf("fetch failed: %v", err))
		return result
	}
	result.Fetched = len(raws)

	var newest *discovery.Candidate
	for _, raw := range raws {
		candidate, err := discovery.ParseCandidate(raw)
		if err != nil {
			p.logger.WarnWithError(ctx, "skipping malformed candidate", err)
			result.Skipped[SkipMalformed]++
			continue
		}
		if candidate.CreatedAt.IsZero() {
			candidate.CreatedAt = p.now().UTC()
		}
		if newest == nil || candidate.CreatedAt.After(newest.CreatedAt) {
			c := candidate
			newest = &c
		}

		reason, msp, err := p.processCandidate(ctx, campaign, candidate)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("post %s: %v", candidate.ID, err))
			if errors.Is(err, errStatsNotApplied) {
				result.Recorded++
				result.Unaggregated++
			}
			continue
		}
		if reason != "" {
			result.Skipped[reason]++
			continue
		}
		result.Recorded++
		result.MSPAwarded += msp
	}

	p.updateWatermark(ctx, campaign.ID, newest, result.Recorded)

	if result.Recorded > 0 {
		if err := p.ranker.RecalculateRanks(ctx, campaign.ID); err != nil {
			p.logger.Error(ctx, "failed to recalculate ranks", err)
			result.Errors = append(result.Errors, fmt.Sprintf("rank recalculation failed: %v", err))
		}
	}

	p.logger.Info(ctx, "tracking cycle completed",
		observability.Field{Key: "fetched", Value: result.Fetched},
		observability.Field{Key: "recorded", Value: result.Recorded},
		observability.Field{Key: "unaggregated", Value: result.Unaggregated},
		observability.Field{Key: "skipped", Value: result.SkippedTotal()},
		observability.Field{Key: "msp_awarded", Value: result.MSPAwarded},
	)
	return result
}

// processCandidate runs one candidate through validation, scoring, the ledger
// and the aggregator. A non-empty reason means the candidate was skipped.
func (p *Processor) processCandidate(ctx context.Context, campaign store.Campaign, candidate discovery.Candidate) (string, int64, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "tweet_id", Value: candidate.ID},
		observability.Field{Key: "author", Value: candidate.AuthorUsername},
	)

	if !scoring.IsValidPost(candidate.Text, campaign.ProjectTag) {
		return SkipInvalidPost, 0, nil
	}
	if candidate.CreatedAt.Before(campaign.StartDate) || candidate.CreatedAt.After(campaign.EndDate) {
		return SkipOutsideWindow, 0, nil
	}

	tracked, err := p.store.IsTweetTracked(ctx, candidate.ID)
	if err != nil {
		p.logger.Error(ctx, "failed to check ledger", err)
		return "", 0, fmt.Errorf("failed to check ledger: %w", err)
	}
	if tracked {
		return SkipAlreadyTracked, 0, nil
	}

	participant, err := p.store.GetParticipantByUsername(ctx, campaign.ID, candidate.AuthorUsername)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return SkipNotParticipant, 0, nil
		}
		p.logger.Error(ctx, "failed to look up participant", err)
		return "", 0, fmt.Errorf("failed to look up participant: %w", err)
	}

	event, err := p.recordPost(ctx, campaign, participant, candidate)
	if err != nil {
		if errors.Is(err, ErrAlreadyTracked) {
			return SkipAlreadyTracked, 0, nil
		}
		return "", 0, err
	}

	p.publishPost(ctx, event)

	if err := p.aggregator.IncrementParticipantStats(ctx, campaign.ID, participant.UserID, event.MSP, 1); err != nil {
		// The post is in the ledger; a full recompute restores the total.
		p.logger.Error(ctx, "failed to increment participant stats", err)
		return "", 0, fmt.Errorf("%w: %v", errStatsNotApplied, err)
	}

	return "", event.MSP, nil
}

// recordPost scores a candidate with the full calculator and inserts it into
// the ledger. A duplicate insert is reported as ErrAlreadyTracked.
func (p *Processor) recordPost(ctx context.Context, campaign store.Campaign, participant store.Participant, candidate discovery.Candidate) (store.PostEvent, error) {
	msp := p.calculator.Full(scoring.PostInput{
		Metrics:           candidate.Metrics,
		FollowersCount:    participant.FollowersCount,
		ProjectTag:        campaign.ProjectTag,
		Text:              candidate.Text,
		PostedAt:          candidate.CreatedAt,
		CampaignStartDate: campaign.StartDate,
	})

	event, err := p.store.CreatePostEvent(ctx, store.CreatePostEventParams{
		CampaignID:     campaign.ID,
		UserID:         participant.UserID,
		TweetID:        candidate.ID,
		Content:        candidate.Text,
		Likes:          candidate.Metrics.Likes,
		Retweets:       candidate.Metrics.Retweets,
		Replies:        candidate.Metrics.Replies,
		Quotes:         candidate.Metrics.Quotes,
		MSP:            msp,
		PostedAt:       candidate.CreatedAt,
		FollowersCount: participant.FollowersCount,
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			p.logger.Info(ctx, "post recorded concurrently, treating as already tracked")
			return store.PostEvent{}, ErrAlreadyTracked
		}
		p.logger.Error(ctx, "failed to record post event", err)
		return store.PostEvent{}, fmt.Errorf("failed to record post event: %w", err)
	}
	return event, nil
}

// updateWatermark moves the campaign cursor to the newest candidate seen.
// Failures are logged only.
func (p *Processor) updateWatermark(ctx context.Context, campaignID uuid.UUID, newest *discovery.Candidate, recorded int) {
	var previous int64
	state, err := p.store.GetTrackingState(ctx, campaignID)
	switch {
	case err == nil:
		previous = state.TotalTracked
	case errors.Is(err, store.ErrNotFound):
	default:
		p.logger.WarnWithError(ctx, "failed to read tracking state", err)
	}

	var lastTweetID *string
	if newest != nil {
		id := newest.ID
		lastTweetID = &id
	}

	if _, err := p.store.UpsertTrackingState(ctx, campaignID, lastTweetID, previous+int64(recorded), p.now()); err != nil {
		p.logger.WarnWithError(ctx, "failed to update tracking state", err)
	}
}

func (p *Processor) publishPost(ctx context.Context, event store.PostEvent) {
	if p.publisher == nil {
		return
	}
	err := p.publisher.PublishPostTracked(ctx, events.PostTracked{
		CampaignID: event.CampaignID,
		UserID:     event.UserID,
		TweetID:    event.TweetID,
		MSP:        event.MSP,
	})
	if err != nil {
		p.logger.WarnWithError(ctx, "failed to publish post tracked event", err)
	}
}

func (p *Processor) publishCycle(ctx context.Context, result *CampaignResult) {
	if p.publisher == nil {
		return
	}
	err := p.publisher.PublishCycleCompleted(ctx, events.CycleCompleted{
		CampaignID: result.CampaignID,
		Fetched:    result.Fetched,
		Recorded:   result.Recorded,
		Skipped:    result.SkippedTotal(),
		Errors:     len(result.Errors),
	})
	if err != nil {
		p.logger.WarnWithError(ctx, "failed to publish cycle completed event", err)
	}
}
