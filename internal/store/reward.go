package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// CreateMissionClaimParams represents parameters for recording a mission claim
type CreateMissionClaimParams struct {
	UserID     uuid.UUID
	MissionID  string
	MSPAwarded int64
	Status     string
}

const sqlCreateMissionClaim = `
INSERT INTO mission_claims (user_id, mission_id, msp_awarded, status)
VALUES ($1, $2, $3, $4)
RETURNING id, user_id, mission_id, msp_awarded, status, claimed_at
`

// CreateMissionClaim records a mission claim. Claiming one mission twice yields ErrAlreadyExists.
func (s *Store) CreateMissionClaim(ctx context.Context, params CreateMissionClaimParams) (MissionClaim, error) {
	var claim MissionClaim
	err := s.db.GetContext(ctx, &claim, sqlCreateMissionClaim, params.UserID, params.MissionID, params.MSPAwarded, params.Status)
	if err != nil {
		if isUniqueViolation(err) {
			return MissionClaim{}, ErrAlreadyExists
		}
		s.logger.Error(ctx, "failed to create mission claim", err)
		return MissionClaim{}, fmt.Errorf("failed to create mission claim: %w", err)
	}
	return claim, nil
}

const sqlSumClaimedMissionMSP = `
SELECT COALESCE(SUM(msp_awarded), 0)::bigint
FROM mission_claims
WHERE user_id = $1 AND status = $2
`

// SumClaimedMissionMSP sums a user's claimed missions
func (s *Store) SumClaimedMissionMSP(ctx context.Context, userID uuid.UUID) (int64, error) {
	var total int64
	err := s.db.GetContext(ctx, &total, sqlSumClaimedMissionMSP, userID, MissionClaimStatusClaimed)
	if err != nil {
		s.logger.Error(ctx, "failed to sum claimed mission msp", err)
		return 0, fmt.Errorf("failed to sum claimed mission msp: %w", err)
	}
	return total, nil
}

const sqlSumClaimedMissionMSPByUsers = `
SELECT user_id, COALESCE(SUM(msp_awarded), 0)::bigint AS amount
FROM mission_claims
WHERE user_id = ANY($1::uuid[]) AND status = $2
GROUP BY user_id
`

// SumClaimedMissionMSPByUsers sums claimed missions for a set of users
func (s *Store) SumClaimedMissionMSPByUsers(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	if len(userIDs) == 0 {
		return map[uuid.UUID]int64{}, nil
	}
	var rows []UserAmount
	err := s.db.SelectContext(ctx, &rows, sqlSumClaimedMissionMSPByUsers, uuidStrings(userIDs), MissionClaimStatusClaimed)
	if err != nil {
		s.logger.Error(ctx, "failed to sum claimed mission msp by users", err)
		return nil, fmt.Errorf("failed to sum claimed mission msp by users: %w", err)
	}
	return amountsByUser(rows), nil
}

// CreateInviteRedemptionParams represents parameters for recording an invite redemption
type CreateInviteRedemptionParams struct {
	InviterID  uuid.UUID
	InviteeID  uuid.UUID
	MSPAwarded int64
}

const sqlCreateInviteRedemption = `
INSERT INTO invite_redemptions (inviter_id, invitee_id, msp_awarded)
VALUES ($1, $2, $3)
RETURNING id, inviter_id, invitee_id, msp_awarded, redeemed_at
`

// CreateInviteRedemption records an invite redemption. An invitee redeems at most once.
func (s *Store) CreateInviteRedemption(ctx context.Context, params CreateInviteRedemptionParams) (InviteRedemption, error) {
	var redemption InviteRedemption
	err := s.db.GetContext(ctx, &redemption, sqlCreateInviteRedemption, params.InviterID, params.InviteeID, params.MSPAwarded)
	if err != nil {
		if isUniqueViolation(err) {
			return InviteRedemption{}, ErrAlreadyExists
		}
		s.logger.Error(ctx, "failed to create invite redemption", err)
		return InviteRedemption{}, fmt.Errorf("failed to create invite redemption: %w", err)
	}
	return redemption, nil
}

const sqlSumInviteMSP = `
SELECT COALESCE(SUM(msp_awarded), 0)::bigint
FROM invite_redemptions
WHERE inviter_id = $1
`

// SumInviteMSP sums the invite rewards earned by an inviter
func (s *Store) SumInviteMSP(ctx context.Context, inviterID uuid.UUID) (int64, error) {
	var total int64
	err := s.db.GetContext(ctx, &total, sqlSumInviteMSP, inviterID)
	if err != nil {
		s.logger.Error(ctx, "failed to sum invite msp", err)
		return 0, fmt.Errorf("failed to sum invite msp: %w", err)
	}
	return total, nil
}

const sqlSumInviteMSPByUsers = `
SELECT inviter_id AS user_id, COALESCE(SUM(msp_awarded), 0)::bigint AS amount
FROM invite_redemptions
WHERE inviter_id = ANY($1::uuid[])
GROUP BY inviter_id
`

// SumInviteMSPByUsers sums invite rewards for a set of inviters
func (s *Store) SumInviteMSPByUsers(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	if len(userIDs) == 0 {
		return map[uuid.UUID]int64{}, nil
	}
	var rows []UserAmount
	err := s.db.SelectContext(ctx, &rows, sqlSumInviteMSPByUsers, uuidStrings(userIDs))
	if err != nil {
		s.logger.Error(ctx, "failed to sum invite msp by users", err)
		return nil, fmt.Errorf("failed to sum invite msp by users: %w", err)
	}
	return amountsByUser(rows), nil
}

func amountsByUser(rows []UserAmount) map[uuid.UUID]int64 {
	out := make(map[uuid.UUID]int64, len(rows))
	for _, r := range rows {
		out[r.UserID] = r.Amount
	}
	return out
}
