package apierrors

import (
	"fmt"
	"net/http"
)

// Machine-readable error codes returned to clients
const (
	CodeInvalidInput       = "INVALID_INPUT"
	CodeNotFound           = "NOT_FOUND"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeForbidden          = "FORBIDDEN"
	CodeInternalError      = "INTERNAL_ERROR"
	CodeRateLimited        = "RATE_LIMITED"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"

	CodeCampaignNotFound     = "CAMPAIGN_NOT_FOUND"
	CodeCampaignNotTrackable = "CAMPAIGN_NOT_TRACKABLE"
	CodeCampaignNotJoinable  = "CAMPAIGN_NOT_JOINABLE"
	CodeInvalidProjectTag    = "INVALID_PROJECT_TAG"
	CodeProjectTagExists     = "PROJECT_TAG_EXISTS"
	CodeInvalidStatus        = "INVALID_STATUS"
	CodeInvalidDateRange     = "INVALID_DATE_RANGE"
	CodeParticipantNotFound  = "PARTICIPANT_NOT_FOUND"
	CodeAlreadyJoined        = "ALREADY_JOINED"
	CodeInvalidUsername      = "INVALID_USERNAME"
	CodeInvalidWallet        = "INVALID_WALLET_ADDRESS"
	CodeAlreadyTracked       = "ALREADY_TRACKED"
	CodeInvalidPost          = "INVALID_POST"
	CodeInvalidAdjustment    = "INVALID_ADJUSTMENT"
	CodeInvalidAward         = "INVALID_AWARD"
	CodeAwardAlreadyApplied  = "AWARD_ALREADY_APPLIED"
	CodeTokenExpired         = "TOKEN_EXPIRED"
	CodeDiscoveryUnavailable = "DISCOVERY_UNAVAILABLE"
)

// APIError is an error with the HTTP status and code it is reported as.
// Err holds the internal cause and is never sent to clients.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

func newAPIError(status int, code, message string, err error) *APIError {
	return &APIError{StatusCode: status, Code: code, Message: message, Err: err}
}

// BadRequest is a 400
func BadRequest(code, message string) *APIError {
	return newAPIError(http.StatusBadRequest, code, message, nil)
}

// Unauthorized is a 401
func Unauthorized(message string) *APIError {
	return newAPIError(http.StatusUnauthorized, CodeUnauthorized, message, nil)
}

// Forbidden is a 403
func Forbidden(message string) *APIError {
	return newAPIError(http.StatusForbidden, CodeForbidden, message, nil)
}

// NotFound is a 404
func NotFound(code, message string) *APIError {
	return newAPIError(http.StatusNotFound, code, message, nil)
}

// Conflict is a 409
func Conflict(code, message string) *APIError {
	return newAPIError(http.StatusConflict, code, message, nil)
}

// TooManyRequests is a 429
func TooManyRequests(message string) *APIError {
	return newAPIError(http.StatusTooManyRequests, CodeRateLimited, message, nil)
}

// ServiceUnavailable is a 503 that keeps the internal cause for logging
func ServiceUnavailable(code, message string, err error) *APIError {
	return newAPIError(http.StatusServiceUnavailable, code, message, err)
}

// InternalError is a sanitized 500. It never exposes internal details.
func InternalError(err error) *APIError {
	return newAPIError(http.StatusInternalServerError, CodeInternalError, "An internal error occurred. Please try again later.", err)
}
