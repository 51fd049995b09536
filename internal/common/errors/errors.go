// Package errors provides standardized error handling for the discovery
// engine's supporting services. The scoring engine itself never surfaces
// errors; these codes cover the store, search and notification boundaries.
package errors

import (
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeProfileNotFound    ErrorCode = "PROFILE_NOT_FOUND"
	ErrCodeProfileQueryFailed ErrorCode = "PROFILE_QUERY_FAILED"

	ErrCodeTeamQueryFailed ErrorCode = "TEAM_QUERY_FAILED"
	ErrCodeJobQueryFailed  ErrorCode = "JOB_QUERY_FAILED"

	ErrCodeAlertInvalid     ErrorCode = "ALERT_INVALID"
	ErrCodeAlertQueryFailed ErrorCode = "ALERT_QUERY_FAILED"

	ErrCodeSearchQueryFailed ErrorCode = "SEARCH_QUERY_FAILED"
	ErrCodeSearchTimeout     ErrorCode = "SEARCH_TIMEOUT"

	ErrCodeCacheUnavailable ErrorCode = "CACHE_UNAVAILABLE"

	ErrCodeNotificationSendFailed ErrorCode = "NOTIFICATION_SEND_FAILED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// NewProfileNotFoundError creates a non-retryable lookup error.
func NewProfileNotFoundError(userID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeProfileNotFound,
		Message:   "Profile not found",
		Details:   fmt.Sprintf("userId=%s", userID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewAlertInvalidError creates a non-retryable validation error.
func NewAlertInvalidError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeAlertInvalid,
		Message:   "Alert definition failed validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewQueryFailedError creates a retryable store error.
func NewQueryFailedError(code ErrorCode, details string) *StandardError {
	return &StandardError{
		Code:      code,
		Message:   "Store query failed",
		Details:   details,
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewSearchFailedError creates a retryable search error.
func NewSearchFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeSearchQueryFailed,
		Message:   "Search query failed",
		Details:   details,
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewNotificationSendFailedError creates a retryable delivery error.
func NewNotificationSendFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeNotificationSendFailed,
		Message:   "Notification delivery failed",
		Details:   details,
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}
