package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/alumniconnect/internal/app/models/dto"
	"github.com/yigit/alumniconnect/internal/pkg/apperrors"
	"github.com/yigit/alumniconnect/internal/pkg/logger"
)

// apiError pairs an HTTP status with an error code.
type apiError struct {
	status int
	code   dto.ErrorCode
}

// errorTable is checked in order, the first match wins.
var errorTable = []struct {
	target error
	apiError
}{
	{apperrors.ErrValidationFailed, apiError{http.StatusBadRequest, dto.ErrorCodeValidationFailed}},
	{apperrors.ErrInvalidAmount, apiError{http.StatusBadRequest, dto.ErrorCodeValidationFailed}},
	{apperrors.ErrInvalidFrequency, apiError{http.StatusBadRequest, dto.ErrorCodeValidationFailed}},
	{apperrors.ErrEmptyMessage, apiError{http.StatusBadRequest, dto.ErrorCodeValidationFailed}},
	{apperrors.ErrUnknownStatus, apiError{http.StatusBadRequest, dto.ErrorCodeResourceInvalid}},
	{apperrors.ErrBadRequest, apiError{http.StatusBadRequest, dto.ErrorCodeResourceInvalid}},

	{apperrors.ErrInvalidCredentials, apiError{http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials}},
	{apperrors.ErrTokenExpired, apiError{http.StatusUnauthorized, dto.ErrorCodeExpiredToken}},
	{apperrors.ErrTokenInvalid, apiError{http.StatusUnauthorized, dto.ErrorCodeInvalidToken}},

	{apperrors.ErrPermissionDenied, apiError{http.StatusForbidden, dto.ErrorCodeForbidden}},
	{apperrors.ErrNotParticipant, apiError{http.StatusForbidden, dto.ErrorCodeForbidden}},

	{apperrors.ErrResourceNotFound, apiError{http.StatusNotFound, dto.ErrorCodeResourceNotFound}},
	{apperrors.ErrUserNotFound, apiError{http.StatusNotFound, dto.ErrorCodeResourceNotFound}},
	{apperrors.ErrEventNotFound, apiError{http.StatusNotFound, dto.ErrorCodeResourceNotFound}},
	{apperrors.ErrMentorshipNotFound, apiError{http.StatusNotFound, dto.ErrorCodeResourceNotFound}},
	{apperrors.ErrConversationNotFound, apiError{http.StatusNotFound, dto.ErrorCodeResourceNotFound}},

	{apperrors.ErrEmailAlreadyExists, apiError{http.StatusConflict, dto.ErrorCodeResourceAlreadyExists}},
	{apperrors.ErrAlreadyRegistered, apiError{http.StatusConflict, dto.ErrorCodeResourceAlreadyExists}},
	{apperrors.ErrConflict, apiError{http.StatusConflict, dto.ErrorCodeResourceAlreadyExists}},
	{apperrors.ErrEventFull, apiError{http.StatusConflict, dto.ErrorCodeResourceFull}},
	{apperrors.ErrIllegalTransition, apiError{http.StatusConflict, dto.ErrorCodeResourceInvalid}},
}

// classify returns the status and code for err. Unknown errors are internal.
func classify(err error) apiError {
	for _, e := range errorTable {
		if errors.Is(err, e.target) {
			return e.apiError
		}
	}
	return apiError{http.StatusInternalServerError, dto.ErrorCodeInternalServer}
}

// HandleAPIError handles common API errors and returns appropriate responses
func HandleAPIError(c *gin.Context, err error) {
	ae := classify(err)

	if ae.status == http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		c.JSON(ae.status, dto.NewErrorResponse(dto.NewErrorDetail(ae.code, "Internal server error")))
		return
	}

	errorDetail := dto.NewErrorDetail(ae.code, apperrors.UserMessage(err))
	var ce *apperrors.CustomError
	if errors.As(err, &ce) && len(ce.Details) > 0 {
		errorDetail = errorDetail.WithDetails(ce.Details)
	}
	c.JSON(ae.status, dto.NewErrorResponse(errorDetail))
}
