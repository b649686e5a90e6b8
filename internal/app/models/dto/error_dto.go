package dto

import (
	"strings"
	"time"
)

// ErrorCode identifies a failure class in API error payloads.
type ErrorCode string

// Error codes. The prefix names the family: AUTH, RES, VAL or SRV.
const (
	ErrorCodeInvalidCredentials ErrorCode = "AUTH_001"
	ErrorCodeInvalidToken       ErrorCode = "AUTH_005"
	ErrorCodeExpiredToken       ErrorCode = "AUTH_006"
	ErrorCodeUnauthorized       ErrorCode = "AUTH_008"
	ErrorCodeForbidden          ErrorCode = "AUTH_009"

	ErrorCodeResourceNotFound      ErrorCode = "RES_001"
	ErrorCodeResourceAlreadyExists ErrorCode = "RES_002"
	ErrorCodeResourceInvalid       ErrorCode = "RES_003"
	ErrorCodeResourceFull          ErrorCode = "RES_004"

	ErrorCodeValidationFailed ErrorCode = "VAL_001"

	ErrorCodeInternalServer ErrorCode = "SRV_001"
)

// ErrorSeverity tells clients whether the caller can fix the failure.
type ErrorSeverity string

const (
	ErrorSeverityWarning ErrorSeverity = "WARNING"
	ErrorSeverityError   ErrorSeverity = "ERROR"
)

// Severity is ERROR for server faults and WARNING for everything the caller caused.
func (c ErrorCode) Severity() ErrorSeverity {
	if strings.HasPrefix(string(c), "SRV_") {
		return ErrorSeverityError
	}
	return ErrorSeverityWarning
}

// ErrorDetail is the error object of a failed response.
type ErrorDetail struct {
	Code     ErrorCode     `json:"code"`
	Message  string        `json:"message"`
	Field    string        `json:"field,omitempty"`
	Severity ErrorSeverity `json:"severity"`
	Details  any           `json:"details,omitempty"`
}

// ErrorResponse keeps the success/message shape of Result so clients can decode both with one type.
type ErrorResponse struct {
	Success   bool         `json:"success"`
	Message   string       `json:"message"`
	Error     *ErrorDetail `json:"error"`
	Timestamp time.Time    `json:"timestamp"`
}

func NewErrorDetail(code ErrorCode, message string) *ErrorDetail {
	return &ErrorDetail{Code: code, Message: message, Severity: code.Severity()}
}

// WithField names the offending input field.
func (e *ErrorDetail) WithField(field string) *ErrorDetail {
	e.Field = field
	return e
}

func (e *ErrorDetail) WithDetails(details any) *ErrorDetail {
	e.Details = details
	return e
}

// NewErrorResponse wraps detail into a failed response stamped in UTC.
func NewErrorResponse(detail *ErrorDetail) *ErrorResponse {
	return &ErrorResponse{
		Message:   detail.Message,
		Error:     detail,
		Timestamp: time.Now().UTC(),
	}
}
