// Package errors provides severity-aware error types for the bid pipeline.
package errors

import (
	stderrors "errors"
	"fmt"
)

// As and Is delegate to the standard library so callers branching on
// *BidError never need a second errors import.
func As(err error, target any) bool { return stderrors.As(err, target) }

func Is(err, target error) bool { return stderrors.Is(err, target) }

// Severity indicates error impact level.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
	SeverityFatal
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// BidError is a structured error with a stable code callers can branch on.
type BidError struct {
	Code        string   `json:"code"`
	Message     string   `json:"message"`
	Severity    Severity `json:"severity"`
	TaskCode    string   `json:"task_code,omitempty"`
	Recoverable bool     `json:"recoverable"`
}

func (e *BidError) Error() string {
	if e.TaskCode != "" {
		return fmt.Sprintf("[%s] %s: %s (task: %s)", e.Severity, e.Code, e.Message, e.TaskCode)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Severity, e.Code, e.Message)
}

// Error codes
const (
	ErrCodeNoAreas        = "BID_001"
	ErrCodeRateNotFound   = "BID_003"
	ErrCodeUnknownBidType = "BID_004"
)

// NewNoAreasError is raised before any calculation runs when a snapshot
// arrives with zero areas.
func NewNoAreasError() *BidError {
	return &BidError{
		Code:        ErrCodeNoAreas,
		Message:     "At least one area must be defined",
		Severity:    SeverityFatal,
		Recoverable: false,
	}
}

// NewRateNotFoundError is raised mid-calculation when a task has neither a
// custom minutes override nor any matching production rate.
func NewRateNotFoundError(taskCode string) *BidError {
	return &BidError{
		Code:        ErrCodeRateNotFound,
		Message:     fmt.Sprintf("No production rate found for task %s", taskCode),
		Severity:    SeverityFatal,
		TaskCode:    taskCode,
		Recoverable: false,
	}
}

// NewUnknownBidTypeError is raised when a specialization carries a type code
// outside the eight supported bid types.
func NewUnknownBidTypeError(bidType string) *BidError {
	return &BidError{
		Code:        ErrCodeUnknownBidType,
		Message:     fmt.Sprintf("Unknown bid type: %s", bidType),
		Severity:    SeverityFatal,
		Recoverable: false,
	}
}
