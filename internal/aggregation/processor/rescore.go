package processor

import (
	"context"
	"errors"
	"fmt"
	"hive-server/internal/observability"
	"hive-server/internal/scoring"
	"hive-server/internal/store"

	"github.com/google/uuid"
)

// PostDiff is a post whose stored MSP differs from the full calculator's
type PostDiff struct {
	PostEventID uuid.UUID `json:"post_event_id"`
	CampaignID  uuid.UUID `json:"campaign_id"`
	TweetID     string    `json:"tweet_id"`
	OldMSP      int64     `json:"old_msp"`
	NewMSP      int64     `json:"new_msp"`
}

// RescoreReport reports a score backfill
type RescoreReport struct {
	DryRun         bool       `json:"dry_run"`
	PostsProcessed int        `json:"posts_processed"`
	PostsUpdated   int        `json:"posts_updated"`
	Diffs          []PostDiff `json:"diffs"`
	Errors         []string   `json:"errors"`
}

// RescorePosts re-runs the full calculator over stored posts of one campaign,
// or of every campaign when campaignID is nil. A non-dry run writes the new
// scores and then recomputes totals and ranks of each changed campaign.
func (p *Processor) RescorePosts(ctx context.Context, campaignID *uuid.UUID, dryRun bool) (RescoreReport, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "operation", Value: "rescore_posts"},
		observability.Field{Key: "dry_run", Value: dryRun},
	)

	var campaigns []store.Campaign
	if campaignID != nil {
		campaign, err := p.store.GetCampaignByID(ctx, *campaignID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return RescoreReport{}, ErrCampaignNotFound
			}
			p.logger.Error(ctx, "failed to get campaign", err)
			return RescoreReport{}, fmt.Errorf("failed to get campaign: %w", err)
		}
		campaigns = []store.Campaign{campaign}
	} else {
		all, err := p.store.ListAllCampaigns(ctx)
		if err != nil {
			p.logger.Error(ctx, "failed to list campaigns", err)
			return RescoreReport{}, fmt.Errorf("failed to list campaigns: %w", err)
		}
		campaigns = all
	}

	report := RescoreReport{DryRun: dryRun, Diffs: []PostDiff{}, Errors: []string{}}
	for _, campaign := range campaigns {
		if campaign.IsInviteBucket() {
			continue
		}
		diffs, processed, err := p.rescoreCampaign(ctx, campaign, dryRun)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", campaign.ProjectTag, err))
			continue
		}
		report.PostsProcessed += processed
		report.PostsUpdated += len(diffs)
		report.Diffs = append(report.Diffs, diffs...)
	}

	p.logger.Info(ctx, "rescore completed",
		observability.Field{Key: "posts_processed", Value: report.PostsProcessed},
		observability.Field{Key: "posts_updated", Value: report.PostsUpdated},
		observability.Field{Key: "errors", Value: len(report.Errors)},
	)
	return report, nil
}

func (p *Processor) rescoreCampaign(ctx context.Context, campaign store.Campaign, dryRun bool) ([]PostDiff, int, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaign.ID.String()})

	posts, err := p.store.ListPostEventsByCampaign(ctx, campaign.ID)
	if err != nil {
		p.logger.Error(ctx, "failed to list post events", err)
		return nil, 0, fmt.Errorf("failed to list post events: %w", err)
	}
	participants, err := p.store.ListParticipantsForRanking(ctx, campaign.ID)
	if err != nil {
		p.logger.Error(ctx, "failed to list participants", err)
		return nil, 0, fmt.Errorf("failed to list participants: %w", err)
	}
	followers := make(map[uuid.UUID]int, len(participants))
	for _, participant := range participants {
		followers[participant.UserID] = participant.FollowersCount
	}

	diffs := []PostDiff{}
	var ids []uuid.UUID
	var scores []int64
	for _, post := range posts {
		// Score with the reach the post was recorded with so a rescore only
		// reflects policy changes.
		reach := followers[post.UserID]
		if post.FollowersCount != nil {
			reach = *post.FollowersCount
		}
		msp := p.calculator.Full(scoring.PostInput{
			Metrics: scoring.Metrics{
				Likes:    post.Likes,
				Retweets: post.Retweets,
				Replies:  post.Replies,
				Quotes:   post.Quotes,
			},
			FollowersCount:    reach,
			ProjectTag:        campaign.ProjectTag,
			Text:              post.Content,
			PostedAt:          post.PostedAt,
			CampaignStartDate: campaign.StartDate,
		})
		if msp == post.MSP {
			continue
		}
		diffs = append(diffs, PostDiff{
			PostEventID: post.ID,
			CampaignID:  campaign.ID,
			TweetID:     post.TweetID,
			OldMSP:      post.MSP,
			NewMSP:      msp,
		})
		ids = append(ids, post.ID)
		scores = append(scores, msp)
	}

	if dryRun || len(ids) == 0 {
		return diffs, len(posts), nil
	}

	if err := p.store.BulkUpdatePostEventMSP(ctx, ids, scores); err != nil {
		p.logger.Error(ctx, "failed to update post scores", err)
		return nil, 0, fmt.Errorf("failed to update post scores: %w", err)
	}
	if _, err := p.RecomputeCampaign(ctx, campaign.ID, false); err != nil {
		return nil, 0, fmt.Errorf("failed to recompute campaign: %w", err)
	}
	return diffs, len(posts), nil
}
