// Package contract defines the request and response types exchanged between
// the CLI layer and the services, plus the error codes the CLI renders.
package contract

import "github.com/alexanderramin/nextup/internal/rightnow"

type ReasonCode = rightnow.ReasonCode

const (
	ReasonImportance ReasonCode = rightnow.ReasonImportance
	ReasonDueUrgency ReasonCode = rightnow.ReasonDueUrgency
	ReasonEnergyFit  ReasonCode = rightnow.ReasonEnergyFit
	ReasonSourcePace ReasonCode = rightnow.ReasonSourcePace
)

type Reason = rightnow.Reason

type ErrorCode string

const (
	ErrMissingShareLink ErrorCode = "MISSING_SHARE_LINK"
	ErrInvalidShareLink ErrorCode = "INVALID_SHARE_LINK"
	ErrInvalidEnergy    ErrorCode = "INVALID_ENERGY"
	ErrNoUpcomingClass  ErrorCode = "NO_UPCOMING_CLASS"
	ErrNoTasks          ErrorCode = "NO_TASKS"
	ErrInternalError    ErrorCode = "INTERNAL_ERROR"
)

// Error is a coded failure the CLI can match on for rendering.
type Error struct {
	Code    ErrorCode
	Message string
}

func (e *Error) Error() string {
	return string(e.Code) + ": " + e.Message
}

// NewError creates a coded error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}
