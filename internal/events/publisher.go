package events

import (
	"context"
	"hive-server/internal/clients/kafka"
	"hive-server/internal/observability"
	"time"

	"github.com/google/uuid"
)

// Event types
const (
	TypePostTracked        = "post.tracked"
	TypeCycleCompleted     = "tracking.cycle_completed"
	TypeLeaderboardUpdated = "leaderboard.updated"
)

// EventProducer writes one event to the broker
type EventProducer interface {
	PublishEvent(ctx context.Context, event kafka.EventMessage) error
}

// Publisher handles publishing domain events. With a nil producer every
// publish is a no-op, which is how the service runs without Kafka.
type Publisher struct {
	producer EventProducer
	logger   *observability.Logger
	now      func() time.Time
}

// NewPublisher creates a new event publisher
func NewPublisher(producer EventProducer, logger *observability.Logger) *Publisher {
	return &Publisher{
		producer: producer,
		logger:   logger,
		now:      time.Now,
	}
}

// PostTracked describes a post recorded in the ledger
type PostTracked struct {
	CampaignID uuid.UUID
	UserID     uuid.UUID
	TweetID    string
	MSP        int64
}

// CycleCompleted summarises one tracking run of a campaign
type CycleCompleted struct {
	CampaignID uuid.UUID
	Fetched    int
	Recorded   int
	Skipped    int
	Errors     int
}

// LeaderboardUpdated announces a fresh rank assignment
type LeaderboardUpdated struct {
	CampaignID   uuid.UUID
	Participants int
}

// PublishPostTracked publishes a post.tracked event
func (p *Publisher) PublishPostTracked(ctx context.Context, e PostTracked) error {
	return p.publish(ctx, TypePostTracked, e.CampaignID, map[string]interface{}{
		"campaign_id": e.CampaignID.String(),
		"user_id":     e.UserID.String(),
		"tweet_id":    e.TweetID,
		"msp":         e.MSP,
	})
}

// PublishCycleCompleted publishes a tracking.cycle_completed event
func (p *Publisher) PublishCycleCompleted(ctx context.Context, e CycleCompleted) error {
	return p.publish(ctx, TypeCycleCompleted, e.CampaignID, map[string]interface{}{
		"campaign_id": e.CampaignID.String(),
		"fetched":     e.Fetched,
		"recorded":    e.Recorded,
		"skipped":     e.Skipped,
		"errors":      e.Errors,
	})
}

// PublishLeaderboardUpdated publishes a leaderboard.updated event
func (p *Publisher) PublishLeaderboardUpdated(ctx context.Context, e LeaderboardUpdated) error {
	return p.publish(ctx, TypeLeaderboardUpdated, e.CampaignID, map[string]interface{}{
		"campaign_id":  e.CampaignID.String(),
		"participants": e.Participants,
	})
}

func (p *Publisher) publish(ctx context.Context, eventType string, campaignID uuid.UUID, data map[string]interface{}) error {
	if p == nil || p.producer == nil {
		return nil
	}

	campaignIDStr := campaignID.String()
	event := kafka.EventMessage{
		ID:         uuid.New().String(),
		Type:       eventType,
		CampaignID: &campaignIDStr,
		Data:       data,
		Timestamp:  p.now().UTC().Format(time.RFC3339),
	}

	if err := p.producer.PublishEvent(ctx, event); err != nil {
		p.logger.WarnWithError(ctx, "failed to publish event", err)
		return err
	}
	return nil
}
