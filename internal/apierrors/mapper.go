package apierrors

import (
	"errors"
	"net/http"

	aggregationProcessor "hive-server/internal/aggregation/processor"
	authProcessor "hive-server/internal/auth/processor"
	campaignProcessor "hive-server/internal/campaign/processor"
	"hive-server/internal/discovery"
	"hive-server/internal/leaderboard"
	"hive-server/internal/store"
	trackingProcessor "hive-server/internal/tracking/processor"
)

// MapError converts domain/processor errors to APIErrors.
//
// If the error is already an APIError, it returns it as-is.
// If the error is a known domain error, it maps it to an appropriate APIError.
// If the error is unknown, it returns a sanitized InternalError (500).
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	// Auth
	case errors.Is(err, authProcessor.ErrExpiredToken):
		return newAPIError(http.StatusUnauthorized, CodeTokenExpired, "Token expired", nil)
	case errors.Is(err, authProcessor.ErrInvalidJWTToken),
		errors.Is(err, authProcessor.ErrParseJWTToken):
		return Unauthorized("Authorization token is missing or invalid")

	// Campaigns
	case errors.Is(err, campaignProcessor.ErrCampaignNotFound),
		errors.Is(err, trackingProcessor.ErrCampaignNotFound),
		errors.Is(err, aggregationProcessor.ErrCampaignNotFound),
		errors.Is(err, leaderboard.ErrCampaignNotFound):
		return NotFound(CodeCampaignNotFound, "Campaign not found")

	case errors.Is(err, campaignProcessor.ErrInvalidProjectTag):
		return BadRequest(CodeInvalidProjectTag, "Project tag must start with a letter and contain 3-30 letters, digits or underscores")

	case errors.Is(err, campaignProcessor.ErrProjectTagExists):
		return Conflict(CodeProjectTagExists, "Project tag already exists")

	case errors.Is(err, campaignProcessor.ErrInvalidCampaignStatus):
		return BadRequest(CodeInvalidStatus, "Invalid campaign status. Valid values: upcoming, active, ended")

	case errors.Is(err, campaignProcessor.ErrInvalidDateRange):
		return BadRequest(CodeInvalidDateRange, "End date must be after start date")

	case errors.Is(err, campaignProcessor.ErrCampaignNotJoinable):
		return BadRequest(CodeCampaignNotJoinable, "This campaign is not open for joining")

	case errors.Is(err, trackingProcessor.ErrCampaignNotTrackable):
		return BadRequest(CodeCampaignNotTrackable, "This campaign is not tracked")

	// Participants
	case errors.Is(err, campaignProcessor.ErrParticipantNotFound),
		errors.Is(err, aggregationProcessor.ErrParticipantNotFound),
		errors.Is(err, leaderboard.ErrParticipantNotFound):
		return NotFound(CodeParticipantNotFound, "Participant not found")

	case errors.Is(err, trackingProcessor.ErrParticipantNotFound):
		return NotFound(CodeParticipantNotFound, "Post author is not a participant of this campaign")

	case errors.Is(err, campaignProcessor.ErrAlreadyJoined):
		return Conflict(CodeAlreadyJoined, "You have already joined this campaign")

	case errors.Is(err, campaignProcessor.ErrInvalidUsername):
		return BadRequest(CodeInvalidUsername, "Username is required")

	case errors.Is(err, campaignProcessor.ErrInvalidWalletAddress):
		return BadRequest(CodeInvalidWallet, "Invalid wallet address")

	// Tracking
	case errors.Is(err, trackingProcessor.ErrAlreadyTracked):
		return Conflict(CodeAlreadyTracked, "Post already tracked")

	case errors.Is(err, trackingProcessor.ErrInvalidPost):
		return BadRequest(CodeInvalidPost, err.Error())

	case errors.Is(err, discovery.ErrAllMirrorsFailed):
		return ServiceUnavailable(CodeDiscoveryUnavailable, "Post discovery is temporarily unavailable. Please try again later.", err)

	// Aggregation
	case errors.Is(err, aggregationProcessor.ErrInvalidAdjustment):
		return BadRequest(CodeInvalidAdjustment, err.Error())

	case errors.Is(err, aggregationProcessor.ErrInvalidAward):
		return BadRequest(CodeInvalidAward, err.Error())

	case errors.Is(err, aggregationProcessor.ErrAwardAlreadyApplied):
		return Conflict(CodeAwardAlreadyApplied, "Award already applied")

	// Store
	case errors.Is(err, store.ErrNotFound):
		return NotFound(CodeNotFound, "Resource not found")

	default:
		return InternalError(err)
	}
}
