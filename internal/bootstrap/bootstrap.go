package bootstrap

import (
	"context"
	"fmt"
	"hive-server/internal/config"
	"hive-server/internal/observability"
	"hive-server/internal/store"

	aggregationHandler "hive-server/internal/aggregation/handler"
	aggregationProcessor "hive-server/internal/aggregation/processor"
	authHandler "hive-server/internal/auth/handler"
	authProcessor "hive-server/internal/auth/processor"
	campaignHandler "hive-server/internal/campaign/handler"
	campaignProcessor "hive-server/internal/campaign/processor"
	kafkaClient "hive-server/internal/clients/kafka"
	redisClient "hive-server/internal/clients/redis"
	"hive-server/internal/discovery"
	"hive-server/internal/events"
	"hive-server/internal/jobs/scheduler"
	"hive-server/internal/jobs/scheduler/jobs"
	"hive-server/internal/leaderboard"
	leaderboardHandler "hive-server/internal/leaderboard/handler"
	"hive-server/internal/ratelimit"
	"hive-server/internal/scoring"
	trackingHandler "hive-server/internal/tracking/handler"
	trackingProcessor "hive-server/internal/tracking/processor"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Logger *observability.Logger

	// Handlers
	AuthHandler        authHandler.Handler
	CampaignHandler    campaignHandler.Handler
	LeaderboardHandler leaderboardHandler.Handler
	TrackingHandler    trackingHandler.Handler
	AggregationHandler aggregationHandler.Handler

	RateLimiter *ratelimit.Service

	// Processors shared with the operator CLI
	Tracker    *trackingProcessor.Processor
	Aggregator *aggregationProcessor.Processor
	Auth       authProcessor.AuthProcessor

	// Background jobs, nil when the tracking scheduler is disabled
	Scheduler *scheduler.Scheduler

	// Clients (for cleanup)
	Redis         *redisClient.Client
	KafkaProducer *kafkaClient.Producer
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Initialize database store
	var err error
	deps.Store, err = store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Redis is optional; a nil client disables the leaderboard cache and
	// moves rate limiting in-process.
	deps.Redis, err = redisClient.NewClient(cfg.Redis, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	// Kafka is optional as well
	var producer events.EventProducer
	if len(cfg.Kafka.Brokers) > 0 {
		deps.KafkaProducer = kafkaClient.NewProducer(kafkaClient.ProducerConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
		}, logger)
		producer = deps.KafkaProducer
	} else {
		logger.Info(ctx, "Kafka brokers not configured, event publishing disabled")
	}
	publisher := events.NewPublisher(producer, logger)

	calculator := scoring.NewCalculator(scoring.DefaultPolicy().WithWeights(
		cfg.Scoring.LikeWeight,
		cfg.Scoring.RetweetWeight,
		cfg.Scoring.ReplyWeight,
		cfg.Scoring.QuoteWeight,
	))

	// Leaderboard
	leaderboardCache := leaderboard.NewRedisLeaderboardService(deps.Redis, logger)
	rankCalculator := leaderboard.NewRankCalculator(&deps.Store, leaderboardCache, publisher, logger)
	leaderboardProc := leaderboard.NewProcessor(&deps.Store, leaderboardCache, logger)
	deps.LeaderboardHandler = leaderboardHandler.New(leaderboardProc, logger)

	// Aggregation
	aggregationProc := aggregationProcessor.New(&deps.Store, calculator, rankCalculator, logger)
	deps.AggregationHandler = aggregationHandler.New(aggregationProc, logger)
	deps.Aggregator = aggregationProc

	// Tracking
	discoveryClient := discovery.NewHTTPClient(cfg.Tracking.DiscoveryURLs, cfg.Tracking.RequestTimeout, logger)
	trackingProc := trackingProcessor.New(&deps.Store, discoveryClient, calculator, aggregationProc, rankCalculator, publisher, logger)
	deps.TrackingHandler = trackingHandler.New(trackingProc, logger)
	deps.Tracker = trackingProc

	// Campaigns
	campaignProc := campaignProcessor.New(&deps.Store, rankCalculator, logger)
	deps.CampaignHandler = campaignHandler.New(&campaignProc, logger)

	// Auth
	deps.Auth = authProcessor.New(cfg.Auth.JWTSecret, logger)
	deps.AuthHandler = authHandler.New(deps.Auth, logger)

	deps.RateLimiter = ratelimit.NewService(deps.Redis, logger)

	if cfg.Tracking.SchedulerOn {
		deps.Scheduler = scheduler.New(logger)
		deps.Scheduler.Register(jobs.NewTrackingJob(trackingProc, logger, cfg.Tracking.Interval))
	}

	return deps, nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	ctx := context.Background()
	if d.KafkaProducer != nil {
		if err := d.KafkaProducer.Close(); err != nil {
			d.Logger.WarnWithError(ctx, "failed to close kafka producer", err)
		}
	}
	if err := d.Redis.Close(); err != nil {
		d.Logger.WarnWithError(ctx, "failed to close redis client", err)
	}
	if err := d.Store.Close(); err != nil {
		d.Logger.WarnWithError(ctx, "failed to close database", err)
	}
}
