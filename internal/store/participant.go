package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// CreateParticipantParams represents parameters for joining a campaign
type CreateParticipantParams struct {
	CampaignID     uuid.UUID
	UserID         uuid.UUID
	Username       string
	DisplayName    *string
	FollowersCount int
	WalletAddress  *string
	InitialMSP     int64
}

const participantColumns = `id, campaign_id, user_id, username, display_name, followers_count, total_msp, post_count, rank, wallet_address, joined_at, updated_at`

const sqlCreateParticipant = `
INSERT INTO participants (campaign_id, user_id, username, display_name, followers_count, wallet_address, total_msp)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + participantColumns

// CreateParticipant adds a user to a campaign. A second join yields ErrAlreadyExists.
func (s *Store) CreateParticipant(ctx context.Context, params CreateParticipantParams) (Participant, error) {
	var participant Participant
	err := s.db.GetContext(ctx, &participant, sqlCreateParticipant,
		params.CampaignID,
		params.UserID,
		params.Username,
		params.DisplayName,
		params.FollowersCount,
		params.WalletAddress,
		params.InitialMSP)
	if err != nil {
		if isUniqueViolation(err) {
			return Participant{}, ErrAlreadyExists
		}
		s.logger.Error(ctx, "failed to create participant", err)
		return Participant{}, fmt.Errorf("failed to create participant: %w", err)
	}
	return participant, nil
}

const sqlGetParticipant = `SELECT ` + participantColumns + ` FROM participants WHERE campaign_id = $1 AND user_id = $2`

// GetParticipant retrieves a user's participation in a campaign
func (s *Store) GetParticipant(ctx context.Context, campaignID, userID uuid.UUID) (Participant, error) {
	var participant Participant
	err := s.db.GetContext(ctx, &participant, sqlGetParticipant, campaignID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Participant{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get participant", err)
		return Participant{}, fmt.Errorf("failed to get participant: %w", err)
	}
	return participant, nil
}

const sqlGetParticipantByUsername = `
SELECT ` + participantColumns + `
FROM participants
WHERE campaign_id = $1 AND LOWER(username) = LOWER($2)
ORDER BY joined_at ASC
LIMIT 1
`

// GetParticipantByUsername resolves an author handle to a participant, case-insensitively
func (s *Store) GetParticipantByUsername(ctx context.Context, campaignID uuid.UUID, username string) (Participant, error) {
	var participant Participant
	err := s.db.GetContext(ctx, &participant, sqlGetParticipantByUsername, campaignID, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Participant{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get participant by username", err)
		return Participant{}, fmt.Errorf("failed to get participant by username: %w", err)
	}
	return participant, nil
}

const sqlListParticipantsForRanking = `
SELECT ` + participantColumns + `
FROM participants
WHERE campaign_id = $1
ORDER BY total_msp DESC, joined_at ASC, id ASC
`

// ListParticipantsForRanking lists a campaign's participants in leaderboard order
func (s *Store) ListParticipantsForRanking(ctx context.Context, campaignID uuid.UUID) ([]Participant, error) {
	participants := []Participant{}
	err := s.db.SelectContext(ctx, &participants, sqlListParticipantsForRanking, campaignID)
	if err != nil {
		s.logger.Error(ctx, "failed to list participants for ranking", err)
		return nil, fmt.Errorf("failed to list participants for ranking: %w", err)
	}
	return participants, nil
}

const sqlListLeaderboard = `
SELECT ` + participantColumns + `
FROM participants
WHERE campaign_id = $1
ORDER BY rank ASC NULLS LAST, total_msp DESC, joined_at ASC, id ASC
LIMIT $2 OFFSET $3
`

// ListLeaderboard returns one page of a campaign leaderboard by stored rank
func (s *Store) ListLeaderboard(ctx context.Context, campaignID uuid.UUID, limit, offset int) ([]Participant, error) {
	participants := []Participant{}
	err := s.db.SelectContext(ctx, &participants, sqlListLeaderboard, campaignID, limit, offset)
	if err != nil {
		s.logger.Error(ctx, "failed to list leaderboard", err)
		return nil, fmt.Errorf("failed to list leaderboard: %w", err)
	}
	return participants, nil
}

const sqlCountParticipants = `SELECT COUNT(*) FROM participants WHERE campaign_id = $1`

// CountParticipants counts a campaign's participants
func (s *Store) CountParticipants(ctx context.Context, campaignID uuid.UUID) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, sqlCountParticipants, campaignID)
	if err != nil {
		s.logger.Error(ctx, "failed to count participants", err)
		return 0, fmt.Errorf("failed to count participants: %w", err)
	}
	return count, nil
}

const sqlListParticipationsByUser = `
SELECT ` + participantColumns + `
FROM participants
WHERE user_id = $1
ORDER BY joined_at ASC
`

// ListParticipationsByUser lists every campaign membership of a user
func (s *Store) ListParticipationsByUser(ctx context.Context, userID uuid.UUID) ([]Participant, error) {
	participants := []Participant{}
	err := s.db.SelectContext(ctx, &participants, sqlListParticipationsByUser, userID)
	if err != nil {
		s.logger.Error(ctx, "failed to list participations by user", err)
		return nil, fmt.Errorf("failed to list participations by user: %w", err)
	}
	return participants, nil
}

const sqlIncrementParticipantStats = `
UPDATE participants
SET total_msp = total_msp + $3,
    post_count = post_count + $4,
    updated_at = CURRENT_TIMESTAMP
WHERE campaign_id = $1 AND user_id = $2
`

// IncrementParticipantStats adds deltas to a participant's totals in one statement,
// so concurrent increments never lose updates.
func (s *Store) IncrementParticipantStats(ctx context.Context, campaignID, userID uuid.UUID, mspDelta int64, postDelta int) error {
	res, err := s.db.ExecContext(ctx, sqlIncrementParticipantStats, campaignID, userID, mspDelta, postDelta)
	if err != nil {
		s.logger.Error(ctx, "failed to increment participant stats", err)
		return fmt.Errorf("failed to increment participant stats: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

const sqlIncrementUserParticipations = `
UPDATE participants
SET total_msp = total_msp + $2,
    updated_at = CURRENT_TIMESTAMP
WHERE user_id = $1
RETURNING campaign_id
`

// IncrementUserParticipations adds mspDelta to every participation of a user and
// returns the affected campaign IDs.
func (s *Store) IncrementUserParticipations(ctx context.Context, userID uuid.UUID, mspDelta int64) ([]uuid.UUID, error) {
	campaignIDs := []uuid.UUID{}
	err := s.db.SelectContext(ctx, &campaignIDs, sqlIncrementUserParticipations, userID, mspDelta)
	if err != nil {
		s.logger.Error(ctx, "failed to increment user participations", err)
		return nil, fmt.Errorf("failed to increment user participations: %w", err)
	}
	return campaignIDs, nil
}

const sqlSetParticipantMSP = `
UPDATE participants
SET total_msp = $3,
    updated_at = CURRENT_TIMESTAMP
WHERE campaign_id = $1 AND user_id = $2
RETURNING ` + participantColumns

// SetParticipantMSP overwrites a participant's total
func (s *Store) SetParticipantMSP(ctx context.Context, campaignID, userID uuid.UUID, totalMSP int64) (Participant, error) {
	var participant Participant
	err := s.db.GetContext(ctx, &participant, sqlSetParticipantMSP, campaignID, userID, totalMSP)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Participant{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to set participant msp", err)
		return Participant{}, fmt.Errorf("failed to set participant msp: %w", err)
	}
	return participant, nil
}

const sqlBulkUpdateParticipantRanks = `
UPDATE participants
SET rank = data.new_rank,
    updated_at = CURRENT_TIMESTAMP
FROM (SELECT unnest($1::uuid[]) AS participant_id, unnest($2::int[]) AS new_rank) AS data
WHERE participants.id = data.participant_id
`

// BulkUpdateParticipantRanks writes ranks for multiple participants in a single query
func (s *Store) BulkUpdateParticipantRanks(ctx context.Context, participantIDs []uuid.UUID, ranks []int) error {
	if len(participantIDs) != len(ranks) {
		return fmt.Errorf("participantIDs and ranks must have same length")
	}
	if len(participantIDs) == 0 {
		return nil
	}

	_, err := s.db.ExecContext(ctx, sqlBulkUpdateParticipantRanks, uuidStrings(participantIDs), ranks)
	if err != nil {
		return fmt.Errorf("failed to bulk update participant ranks: %w", err)
	}
	return nil
}

const sqlBulkUpdateParticipantTotals = `
UPDATE participants
SET total_msp = data.total_msp,
    post_count = data.post_count,
    updated_at = CURRENT_TIMESTAMP
FROM (
    SELECT unnest($1::uuid[]) AS participant_id,
           unnest($2::bigint[]) AS total_msp,
           unnest($3::int[]) AS post_count
) AS data
WHERE participants.id = data.participant_id
`

// BulkUpdateParticipantTotals overwrites totals for multiple participants in a single query
func (s *Store) BulkUpdateParticipantTotals(ctx context.Context, participantIDs []uuid.UUID, totals []int64, postCounts []int) error {
	if len(participantIDs) != len(totals) || len(participantIDs) != len(postCounts) {
		return fmt.Errorf("participantIDs, totals and postCounts must have same length")
	}
	if len(participantIDs) == 0 {
		return nil
	}

	_, err := s.db.ExecContext(ctx, sqlBulkUpdateParticipantTotals, uuidStrings(participantIDs), totals, postCounts)
	if err != nil {
		return fmt.Errorf("failed to bulk update participant totals: %w", err)
	}
	return nil
}

const sqlUpdateParticipantWallet = `
UPDATE participants
SET wallet_address = $3,
    updated_at = CURRENT_TIMESTAMP
WHERE campaign_id = $1 AND user_id = $2
RETURNING ` + participantColumns

// UpdateParticipantWallet sets the payout wallet of a participant
func (s *Store) UpdateParticipantWallet(ctx context.Context, campaignID, userID uuid.UUID, walletAddress string) (Participant, error) {
	var participant Participant
	err := s.db.GetContext(ctx, &participant, sqlUpdateParticipantWallet, campaignID, userID, walletAddress)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Participant{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to update participant wallet", err)
		return Participant{}, fmt.Errorf("failed to update participant wallet: %w", err)
	}
	return participant, nil
}
