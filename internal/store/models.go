package store

import (
	"time"

	"github.com/google/uuid"
)

// Campaign represents a hashtag campaign
type Campaign struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	ProjectTag  string    `db:"project_tag" json:"project_tag"`
	Description *string   `db:"description" json:"description,omitempty"`
	StartDate   time.Time `db:"start_date" json:"start_date"`
	EndDate     time.Time `db:"end_date" json:"end_date"`
	Status      string    `db:"status" json:"status"`
	RewardPool  int64     `db:"reward_pool" json:"reward_pool"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// IsInviteBucket reports whether c is the synthetic invite rewards campaign.
func (c Campaign) IsInviteBucket() bool {
	return c.ProjectTag == InviteRewardsTag
}

// Participant is a user's membership in one campaign
type Participant struct {
	ID             uuid.UUID `db:"id" json:"id"`
	CampaignID     uuid.UUID `db:"campaign_id" json:"campaign_id"`
	UserID         uuid.UUID `db:"user_id" json:"user_id"`
	Username       string    `db:"username" json:"username"`
	DisplayName    *string   `db:"display_name" json:"display_name,omitempty"`
	FollowersCount int       `db:"followers_count" json:"followers_count"`
	TotalMSP       int64     `db:"total_msp" json:"total_msp"`
	PostCount      int       `db:"post_count" json:"post_count"`
	Rank           *int      `db:"rank" json:"rank,omitempty"`
	WalletAddress  *string   `db:"wallet_address" json:"wallet_address,omitempty"`
	JoinedAt       time.Time `db:"joined_at" json:"joined_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// PostEvent is one tracked post in the ledger. FollowersCount is the reach
// snapshot its MSP was computed with, nil for rows recorded before it was kept.
type PostEvent struct {
	ID             uuid.UUID `db:"id" json:"id"`
	CampaignID     uuid.UUID `db:"campaign_id" json:"campaign_id"`
	UserID         uuid.UUID `db:"user_id" json:"user_id"`
	TweetID        string    `db:"tweet_id" json:"tweet_id"`
	Content        string    `db:"content" json:"content"`
	Likes          int       `db:"likes" json:"likes"`
	Retweets       int       `db:"retweets" json:"retweets"`
	Replies        int       `db:"replies" json:"replies"`
	Quotes         int       `db:"quotes" json:"quotes"`
	MSP            int64     `db:"msp" json:"msp"`
	FollowersCount *int      `db:"followers_count" json:"followers_count,omitempty"`
	PostedAt       time.Time `db:"posted_at" json:"posted_at"`
	TrackedAt      time.Time `db:"tracked_at" json:"tracked_at"`
}

// PostTotals aggregates the ledger for one user
type PostTotals struct {
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	TotalMSP  int64     `db:"total_msp" json:"total_msp"`
	PostCount int       `db:"post_count" json:"post_count"`
}

// TrackingState is the per-campaign tracking watermark
type TrackingState struct {
	CampaignID   uuid.UUID  `db:"campaign_id" json:"campaign_id"`
	LastTweetID  *string    `db:"last_tweet_id" json:"last_tweet_id,omitempty"`
	TotalTracked int64      `db:"total_tracked" json:"total_tracked"`
	LastRunAt    *time.Time `db:"last_run_at" json:"last_run_at,omitempty"`
}

// MissionClaim is a mission reward claimed by a user
type MissionClaim struct {
	ID         uuid.UUID `db:"id" json:"id"`
	UserID     uuid.UUID `db:"user_id" json:"user_id"`
	MissionID  string    `db:"mission_id" json:"mission_id"`
	MSPAwarded int64     `db:"msp_awarded" json:"msp_awarded"`
	Status     string    `db:"status" json:"status"`
	ClaimedAt  time.Time `db:"claimed_at" json:"claimed_at"`
}

// InviteRedemption is an invite code redeemed by an invitee
type InviteRedemption struct {
	ID         uuid.UUID `db:"id" json:"id"`
	InviterID  uuid.UUID `db:"inviter_id" json:"inviter_id"`
	InviteeID  uuid.UUID `db:"invitee_id" json:"invitee_id"`
	MSPAwarded int64     `db:"msp_awarded" json:"msp_awarded"`
	RedeemedAt time.Time `db:"redeemed_at" json:"redeemed_at"`
}

// UserAmount is a per-user sum used by bulk aggregation queries
type UserAmount struct {
	UserID uuid.UUID `db:"user_id"`
	Amount int64     `db:"amount"`
}
