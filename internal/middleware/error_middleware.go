package middleware

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/psanashik/academy/internal/app/models/dto"
	"github.com/psanashik/academy/internal/pkg/apperrors"
	"github.com/psanashik/academy/internal/pkg/logger"
)

// HandleAPIError maps service errors onto the HTTP error taxonomy. Every
// controller funnels its service errors through here so the mapping stays
// in one place.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(401, errResponse(dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials")))
	case errors.Is(err, apperrors.ErrAccountDisabled):
		c.JSON(403, errResponse(dto.NewErrorDetail(dto.ErrorCodeAccountDisabled, "Account is disabled")))
	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(401, errResponse(dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired")))
	case errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(401, errResponse(dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token")))
	case errors.Is(err, apperrors.ErrTokenNotFound):
		c.JSON(401, errResponse(dto.NewErrorDetail(dto.ErrorCodeTokenNotFound, "Token not found")))
	case errors.Is(err, apperrors.ErrTokenRevoked):
		c.JSON(401, errResponse(dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Token revoked")))
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(403, errResponse(dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied")))
	case errors.Is(err, apperrors.ErrPasswordMismatch):
		c.JSON(400, errResponse(dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Current password is incorrect")))
	case errors.Is(err, apperrors.ErrInvalidStudentID):
		c.JSON(400, errResponse(dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Student ID must match the STU### format")))
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(400, errResponse(dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))
	case errors.Is(err, apperrors.ErrBatchCapacityExceeded):
		c.JSON(409, errResponse(dto.NewErrorDetail(dto.ErrorCodeCapacityExceeded, "Batch is at maximum capacity")))
	case errors.Is(err, apperrors.ErrInvalidStatusTransition):
		c.JSON(409, errResponse(dto.NewErrorDetail(dto.ErrorCodeInvalidTransition, "Invalid status transition")))
	case errors.Is(err, apperrors.ErrStudentIDAlreadyExists):
		c.JSON(409, errResponse(dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Student ID already exists")))
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		c.JSON(409, errResponse(dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Email already exists")))
	case errors.Is(err, apperrors.ErrPhoneAlreadyExists):
		c.JSON(409, errResponse(dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Phone number already exists")))
	case errors.Is(err, apperrors.ErrAttendanceAlreadyMarked):
		c.JSON(409, errResponse(dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Attendance already marked for this student and date")))
	case errors.Is(err, apperrors.ErrBadgeAlreadyEarned):
		c.JSON(409, errResponse(dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Badge already earned by this student")))
	case errors.Is(err, apperrors.ErrSettingKeyExists):
		c.JSON(409, errResponse(dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Setting with this key already exists")))
	case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrResourceAlreadyExists):
		c.JSON(409, errResponse(dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, err.Error())))
	case apperrors.Is(err, apperrors.ErrResourceNotFound,
		apperrors.ErrUserNotFound,
		apperrors.ErrStudentNotFound,
		apperrors.ErrBatchNotFound,
		apperrors.ErrSportNotFound,
		apperrors.ErrCoachNotFound,
		apperrors.ErrPaymentNotFound,
		apperrors.ErrAttendanceNotFound,
		apperrors.ErrCommunicationNotFound,
		apperrors.ErrCampaignNotFound,
		apperrors.ErrBadgeNotFound,
		apperrors.ErrSettingNotFound):
		c.JSON(404, errResponse(dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error())))
	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled API error")
		c.JSON(500, errResponse(dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
	}
}

func errResponse(detail *dto.ErrorDetail) dto.APIResponse {
	return dto.APIResponse{Error: detail, Timestamp: time.Now()}
}
