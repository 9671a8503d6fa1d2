package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"hive-server/internal/auth/processor"
	"hive-server/internal/bootstrap"
	"hive-server/internal/config"
	"hive-server/internal/observability"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
)

func issueToken(c *cli.Context) error {
	role := c.String("role")
	if role != processor.RoleUser && role != processor.RoleAdmin {
		return fmt.Errorf("unknown role %q", role)
	}

	userID := uuid.New()
	if raw := c.String("user-id"); raw != "" {
		var err error
		if userID, err = uuid.Parse(raw); err != nil {
			return fmt.Errorf("invalid user id: %w", err)
		}
	}

	params := processor.TokenParams{
		UserID:   userID,
		Username: c.String("username"),
		Role:     role,
		TTL:      c.Duration("ttl"),
	}
	if c.IsSet("followers") {
		followers := c.Int("followers")
		if followers < 0 {
			return fmt.Errorf("followers must not be negative")
		}
		params.FollowersCount = &followers
	}

	auth := processor.New(c.String("secret"), observability.NewLogger())
	token, err := auth.GenerateToken(c.Context, params)
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}

func runTracking(c *cli.Context) error {
	deps, err := initialize(c.Context)
	if err != nil {
		return err
	}
	defer deps.Cleanup()

	campaignID, err := optionalCampaign(c)
	if err != nil {
		return err
	}
	if campaignID == nil {
		summary, err := deps.Tracker.RunActiveCampaigns(c.Context)
		if err != nil {
			return err
		}
		return printJSON(summary)
	}

	result, err := deps.Tracker.RunCampaign(c.Context, *campaignID)
	if err != nil {
		return err
	}
	return printJSON(result)
}

func recompute(c *cli.Context) error {
	deps, err := initialize(c.Context)
	if err != nil {
		return err
	}
	defer deps.Cleanup()

	campaignID, err := optionalCampaign(c)
	if err != nil {
		return err
	}
	if campaignID == nil {
		report, err := deps.Aggregator.RecomputeAll(c.Context, c.Bool("dry-run"))
		if err != nil {
			return err
		}
		return printJSON(report)
	}

	report, err := deps.Aggregator.RecomputeCampaign(c.Context, *campaignID, c.Bool("dry-run"))
	if err != nil {
		return err
	}
	return printJSON(report)
}

func rescore(c *cli.Context) error {
	deps, err := initialize(c.Context)
	if err != nil {
		return err
	}
	defer deps.Cleanup()

	campaignID, err := optionalCampaign(c)
	if err != nil {
		return err
	}
	report, err := deps.Aggregator.RescorePosts(c.Context, campaignID, c.Bool("dry-run"))
	if err != nil {
		return err
	}
	return printJSON(report)
}

func initialize(ctx context.Context) (*bootstrap.Dependencies, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	// one-shot commands never start the scheduler
	cfg.Tracking.SchedulerOn = false

	return bootstrap.Initialize(ctx, cfg, observability.NewLogger())
}

func optionalCampaign(c *cli.Context) (*uuid.UUID, error) {
	raw := c.String("campaign")
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid campaign id: %w", err)
	}
	return &id, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
