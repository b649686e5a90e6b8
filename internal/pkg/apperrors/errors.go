// Package apperrors defines the failures callers of the platform can act on.
package apperrors

import "errors"

// Generic kinds, usually wrapped by a CustomError with a specific message.
var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")
	ErrPermissionDenied = errors.New("permission denied")
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Account and session errors
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("an account with this email already exists")
)

// Event errors
var (
	ErrEventNotFound     = errors.New("event not found")
	ErrAlreadyRegistered = errors.New("you are already registered for this event")
	ErrEventFull         = errors.New("this event is fully booked")
)

// Mentorship errors
var (
	ErrMentorshipNotFound = errors.New("mentorship request not found")
	ErrIllegalTransition  = errors.New("illegal mentorship status transition")
	ErrUnknownStatus      = errors.New("unknown mentorship status")
)

// Donation errors
var (
	ErrInvalidAmount    = errors.New("donation amount must be greater than zero")
	ErrInvalidFrequency = errors.New("recurring donations need a monthly, quarterly or yearly frequency")
)

// Messaging errors
var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrNotParticipant       = errors.New("you are not a participant in this conversation")
	ErrEmptyMessage         = errors.New("message text is required")
)

// domainErrors are failures a caller can act on. Anything else is an unexpected fault.
var domainErrors = []error{
	ErrResourceNotFound, ErrConflict,
	ErrInvalidCredentials, ErrTokenExpired, ErrTokenInvalid,
	ErrPermissionDenied,
	ErrValidationFailed, ErrBadRequest,
	ErrUserNotFound, ErrEmailAlreadyExists,
	ErrEventNotFound, ErrAlreadyRegistered, ErrEventFull,
	ErrMentorshipNotFound, ErrIllegalTransition, ErrUnknownStatus,
	ErrInvalidAmount, ErrInvalidFrequency,
	ErrConversationNotFound, ErrNotParticipant, ErrEmptyMessage,
}

// NewResourceNotFoundError is ErrResourceNotFound with a specific message.
func NewResourceNotFoundError(message string) error { return newKind(ErrResourceNotFound, message) }

// NewConflictError is ErrConflict with a specific message.
func NewConflictError(message string) error { return newKind(ErrConflict, message) }

// NewForbiddenError is ErrPermissionDenied with a specific message.
func NewForbiddenError(message string) error { return newKind(ErrPermissionDenied, message) }

// NewBadRequestError is ErrBadRequest with a specific message.
func NewBadRequestError(message string) error { return newKind(ErrBadRequest, message) }

// NewValidationError carries the per-field messages of a rejected form.
func NewValidationError(message string, fields map[string]string) error {
	details := make(map[string]any, len(fields))
	for k, v := range fields {
		details[k] = v
	}
	return newKind(ErrValidationFailed, message).WithDetails(details)
}

func newKind(kind error, message string) *CustomError {
	return &CustomError{Err: kind, Message: message}
}

// IsDomain reports whether err is an expected, user-facing failure.
func IsDomain(err error) bool {
	if err == nil {
		return false
	}
	var ce *CustomError
	return errors.As(err, &ce) || kindOf(err) != nil
}

// UserMessage returns the text shown to a user for err.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var ce *CustomError
	if errors.As(err, &ce) {
		if ce.StatusMsg != "" {
			return ce.StatusMsg
		}
		if ce.Message != "" {
			return capitalize(ce.Message)
		}
	}
	if kind := kindOf(err); kind != nil {
		return capitalize(kind.Error())
	}
	return "Something went wrong, please try again"
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}

// kindOf returns the first domain error err wraps, or nil.
func kindOf(err error) error {
	for _, d := range domainErrors {
		if errors.Is(err, d) {
			return d
		}
	}
	return nil
}

// CustomError is a domain error with a message specific to one failure.
// StatusMsg, when set, replaces Message in responses.
type CustomError struct {
	Err       error
	Message   string
	StatusMsg string
	Details   map[string]any
}

func (e *CustomError) Error() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	}
	return "unknown error"
}

func (e *CustomError) Unwrap() error { return e.Err }

// NewCustomError wraps err with message.
func NewCustomError(err error, message string) *CustomError {
	return newKind(err, message)
}

// WithDetails attaches structured context, such as per-field messages.
func (e *CustomError) WithDetails(details map[string]any) *CustomError {
	e.Details = details
	return e
}

// WithStatusMsg sets the message shown to users instead of Message.
func (e *CustomError) WithStatusMsg(msg string) *CustomError {
	e.StatusMsg = msg
	return e
}
