package errors

import "fmt"

type ErrorCode string

const (
	ErrInvalidInput       ErrorCode = "INVALID_INPUT"
	ErrInvalidRange       ErrorCode = "INVALID_RANGE"
	ErrUnauthorized       ErrorCode = "UNAUTHORIZED"
	ErrForbidden          ErrorCode = "FORBIDDEN"
	ErrNotFound           ErrorCode = "NOT_FOUND"
	ErrAlreadyExists      ErrorCode = "ALREADY_EXISTS"
	ErrHostNotFound       ErrorCode = "HOST_NOT_FOUND"
	ErrNotEligibleHost    ErrorCode = "NOT_ELIGIBLE_HOST"
	ErrSelfBooking        ErrorCode = "SELF_BOOKING"
	ErrNoAvailability     ErrorCode = "NO_AVAILABILITY"
	ErrOverlapConflict    ErrorCode = "OVERLAP_CONFLICT"
	ErrSlotConflict       ErrorCode = "SLOT_CONFLICT"
	ErrTokenExpired       ErrorCode = "TOKEN_EXPIRED"
	ErrInvalidTokenFormat ErrorCode = "INVALID_TOKEN_FORMAT"
	ErrInternalServer     ErrorCode = "INTERNAL_SERVER_ERROR"
)

// AppError is the caller-facing error shape for all expected, recoverable
// conditions. Details carries structured context (e.g. the conflicting time
// range) so clients can explain the failure and suggest an alternative.
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details any       `json:"details,omitempty"`
	Err     error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewAppErrorWithDetails attaches structured detail to a domain error.
func NewAppErrorWithDetails(code ErrorCode, message string, details any) *AppError {
	return &AppError{Code: code, Message: message, Details: details}
}
