// Package controllers contains the HTTP handlers. Controllers bind and
// validate request payloads, delegate to the service layer and translate
// service errors through the central error middleware.
package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/psanashik/academy/internal/app/models/dto"
	"github.com/psanashik/academy/internal/app/services"
	"github.com/psanashik/academy/internal/pkg/helpers"
)

// Controllers bundles every controller for route registration.
type Controllers struct {
	Auth          *AuthController
	User          *UserController
	Student       *StudentController
	Coach         *CoachController
	Sport         *SportController
	Batch         *BatchController
	Fee           *FeeController
	Attendance    *AttendanceController
	Communication *CommunicationController
	Campaign      *CampaignController
	Badge         *BadgeController
	GPS           *GPSController
	Setting       *SettingController
	Dashboard     *DashboardController
}

// NewControllers wires every controller over the given service set.
func NewControllers(svcs *services.Services) *Controllers {
	return &Controllers{
		Auth:          NewAuthController(svcs.AuthService),
		User:          NewUserController(svcs.UserService),
		Student:       NewStudentController(svcs.StudentService),
		Coach:         NewCoachController(svcs.CoachService),
		Sport:         NewSportController(svcs.SportService),
		Batch:         NewBatchController(svcs.BatchService),
		Fee:           NewFeeController(svcs.FeeService),
		Attendance:    NewAttendanceController(svcs.AttendanceService),
		Communication: NewCommunicationController(svcs.CommunicationService),
		Campaign:      NewCampaignController(svcs.CampaignService),
		Badge:         NewBadgeController(svcs.BadgeService),
		GPS:           NewGPSController(svcs.GPSService),
		Setting:       NewSettingController(svcs.SettingService),
		Dashboard:     NewDashboardController(svcs.DashboardService),
	}
}

// parseIDParam reads a positive int64 path parameter. On failure it writes
// the 400 response itself and returns false.
func parseIDParam(ctx *gin.Context, name, label string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id < 1 {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+label)
		detail = detail.WithDetails(label + " must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return 0, false
	}
	return id, true
}

// handleBindingError writes the 400 response for a failed ShouldBindJSON.
func handleBindingError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
}

// parseInt64Query reads an optional int64 query parameter, 0 when absent.
func parseInt64Query(ctx *gin.Context, name string) int64 {
	v, err := strconv.ParseInt(ctx.Query(name), 10, 64)
	if err != nil || v < 1 {
		return 0
	}
	return v
}

// parseTimeQuery reads an optional query parameter as either a bare date
// (2006-01-02) or an RFC 3339 timestamp.
func parseTimeQuery(ctx *gin.Context, name string) *time.Time {
	raw := ctx.Query(name)
	if raw == "" {
		return nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return &t
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t
	}
	return nil
}

// pageSlice returns the requested page of items. Repositories return full
// filtered result sets; paging is applied at the edge.
func pageSlice[T any](items []T, page, size int) []T {
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	start := int(offset)
	if start >= len(items) {
		return items[:0]
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
