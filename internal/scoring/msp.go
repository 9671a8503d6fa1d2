package scoring

import (
	"math"
	"time"
)

// Engagement weights. Amplification (retweets, quotes) counts more than
// approval (likes); replies count least per unit.
const (
	LikeWeight    = 1.0
	RetweetWeight = 2.5
	ReplyWeight   = 0.5
	QuoteWeight   = 3.0
)

// Base and reach policy.
const (
	// PostBaseMSP is awarded to every valid post regardless of engagement.
	PostBaseMSP = 10.0
	// DefaultFollowersCount is the follower floor used when the count is
	// unknown or smaller than the floor.
	DefaultFollowersCount = 100
	// EngagementRateBoost scales the engagement-rate multiplier; the reach
	// boost lies in [1, 1+EngagementRateBoost*MaxEngagementRate].
	EngagementRateBoost = 2.0
	MaxEngagementRate   = 0.5
)

// Time decay policy.
const (
	DecayHalfLifeDays = 7.0
	MinDecayFactor    = 0.5
)

// Metrics are the public engagement counters of a post.
type Metrics struct {
	Likes    int `json:"likes"`
	Retweets int `json:"retweets"`
	Replies  int `json:"replies"`
	Quotes   int `json:"quotes"`
}

// PostInput is the full scoring context of one post.
type PostInput struct {
	Metrics           Metrics
	FollowersCount    int
	ProjectTag        string
	Text              string
	PostedAt          time.Time
	CampaignStartDate time.Time
}

// Breakdown exposes the intermediate terms of a score.
type Breakdown struct {
	Base         float64 `json:"base"`
	Engagement   float64 `json:"engagement"`
	ReachBoost   float64 `json:"reach_boost"`
	ContentBonus float64 `json:"content_bonus"`
	Decay        float64 `json:"decay"`
	MSP          int64   `json:"msp"`
}

// Policy holds every tunable of the MSP formula.
type Policy struct {
	LikeWeight          float64
	RetweetWeight       float64
	ReplyWeight         float64
	QuoteWeight         float64
	BaseMSP             float64
	DefaultFollowers    int
	EngagementRateBoost float64
	MaxEngagementRate   float64
	DecayHalfLifeDays   float64
	MinDecayFactor      float64
	Bonuses             BonusTable
}

// DefaultPolicy returns the policy built from the package constants.
func DefaultPolicy() Policy {
	return Policy{
		LikeWeight:          LikeWeight,
		RetweetWeight:       RetweetWeight,
		ReplyWeight:         ReplyWeight,
		QuoteWeight:         QuoteWeight,
		BaseMSP:             PostBaseMSP,
		DefaultFollowers:    DefaultFollowersCount,
		EngagementRateBoost: EngagementRateBoost,
		MaxEngagementRate:   MaxEngagementRate,
		DecayHalfLifeDays:   DecayHalfLifeDays,
		MinDecayFactor:      MinDecayFactor,
		Bonuses:             DefaultBonusTable(),
	}
}

// WithWeights returns a copy of p with the positive weights replaced.
// Non-positive values keep the current weight.
func (p Policy) WithWeights(like, retweet, reply, quote float64) Policy {
	if like > 0 {
		p.LikeWeight = like
	}
	if retweet > 0 {
		p.RetweetWeight = retweet
	}
	if reply > 0 {
		p.ReplyWeight = reply
	}
	if quote > 0 {
		p.QuoteWeight = quote
	}
	return p
}

// Calculator computes MSP under a fixed policy. It is safe for concurrent use.
type Calculator struct {
	policy Policy
}

// NewCalculator creates a calculator for policy.
func NewCalculator(policy Policy) *Calculator {
	return &Calculator{policy: policy}
}

var defaultCalculator = NewCalculator(DefaultPolicy())

// CalculatePostMSP scores a post with the default policy.
func CalculatePostMSP(metrics Metrics, followersCount int, projectTag, postText string, postedAt, campaignStartDate time.Time) int64 {
	return defaultCalculator.Full(PostInput{
		Metrics:           metrics,
		FollowersCount:    followersCount,
		ProjectTag:        projectTag,
		Text:              postText,
		PostedAt:          postedAt,
		CampaignStartDate: campaignStartDate,
	})
}

// CalculateBasicMSP is the provisional score used before the full context of a
// post is known. Its result is superseded once the full calculator runs.
func CalculateBasicMSP(metrics Metrics, followersCount int) int64 {
	return defaultCalculator.Basic(metrics, followersCount)
}

// Policy returns the calculator's policy.
func (c *Calculator) Policy() Policy {
	return c.policy
}

// Basic returns base + weighted engagement scaled by reach.
func (c *Calculator) Basic(metrics Metrics, followersCount int) int64 {
	engagement := c.weightedEngagement(metrics)
	return finalize(c.policy.BaseMSP + engagement*c.reachBoost(engagement, followersCount))
}

// Full returns the authoritative score of a post.
func (c *Calculator) Full(in PostInput) int64 {
	return c.Explain(in).MSP
}

// Explain returns the full score together with its intermediate terms.
func (c *Calculator) Explain(in PostInput) Breakdown {
	engagement := c.weightedEngagement(in.Metrics)
	b := Breakdown{
		Base:         c.policy.BaseMSP,
		Engagement:   engagement,
		ReachBoost:   c.reachBoost(engagement, in.FollowersCount),
		ContentBonus: c.policy.Bonuses.ContentBonus(in.Text, in.ProjectTag),
		Decay:        c.decay(in.PostedAt, in.CampaignStartDate),
	}
	b.MSP = finalize((b.Base + b.Engagement*b.ReachBoost + b.ContentBonus) * b.Decay)
	return b
}

func (c *Calculator) weightedEngagement(m Metrics) float64 {
	return c.policy.LikeWeight*float64(nonNegative(m.Likes)) +
		c.policy.RetweetWeight*float64(nonNegative(m.Retweets)) +
		c.policy.ReplyWeight*float64(nonNegative(m.Replies)) +
		c.policy.QuoteWeight*float64(nonNegative(m.Quotes))
}

// reachBoost grows with the engagement rate (engagement per follower) and is
// capped, so small accounts with proportionally high engagement are not
// structurally behind large accounts.
func (c *Calculator) reachBoost(engagement float64, followersCount int) float64 {
	followers := followersCount
	if followers < c.policy.DefaultFollowers {
		followers = c.policy.DefaultFollowers
	}
	if followers <= 0 {
		followers = 1
	}
	rate := math.Min(engagement/float64(followers), c.policy.MaxEngagementRate)
	return 1 + c.policy.EngagementRateBoost*rate
}

// decay is 1 for posts made at or before the campaign start and halves its
// distance to MinDecayFactor every DecayHalfLifeDays after it.
func (c *Calculator) decay(postedAt, campaignStart time.Time) float64 {
	if postedAt.IsZero() || campaignStart.IsZero() || !postedAt.After(campaignStart) {
		return 1
	}
	floor := math.Min(math.Max(c.policy.MinDecayFactor, 0.01), 1)
	if c.policy.DecayHalfLifeDays <= 0 {
		return floor
	}
	ageDays := postedAt.Sub(campaignStart).Hours() / 24
	return floor + (1-floor)*math.Pow(0.5, ageDays/c.policy.DecayHalfLifeDays)
}

func finalize(score float64) int64 {
	if math.IsNaN(score) || score <= 0 {
		return 0
	}
	return int64(math.Round(score))
}

func nonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
