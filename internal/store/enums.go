package store

// Campaign ENUMs
const (
	CampaignStatusUpcoming = "upcoming"
	CampaignStatusActive   = "active"
	CampaignStatusEnded    = "ended"
)

// InviteRewardsTag is the project tag of the synthetic campaign that buckets
// invite rewards. It never appears in public listings or tracking runs.
const InviteRewardsTag = "invite_rewards"

// Mission claim ENUMs
const (
	MissionClaimStatusPending  = "pending"
	MissionClaimStatusClaimed  = "claimed"
	MissionClaimStatusRejected = "rejected"
)
