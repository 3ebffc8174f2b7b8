package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/psanashik/academy/internal/app/models/dto"
	"github.com/psanashik/academy/internal/app/repositories"
	"github.com/psanashik/academy/internal/app/services"
	"github.com/psanashik/academy/internal/middleware"
)

// AttendanceController handles attendance marking and reporting
type AttendanceController struct {
	attendanceService services.AttendanceService
}

// NewAttendanceController creates a new AttendanceController
func NewAttendanceController(attendanceService services.AttendanceService) *AttendanceController {
	return &AttendanceController{attendanceService: attendanceService}
}

func attendanceFilterFromQuery(ctx *gin.Context) repositories.AttendanceFilter {
	return repositories.AttendanceFilter{
		Date:      parseTimeQuery(ctx, "date"),
		From:      parseTimeQuery(ctx, "from"),
		To:        parseTimeQuery(ctx, "to"),
		BatchID:   parseInt64Query(ctx, "batchId"),
		StudentID: parseInt64Query(ctx, "studentId"),
	}
}

// MarkAttendance records attendance for a student
// @Summary Mark attendance
// @Description Records a student's attendance for a batch and day. One record per student, batch and day; duplicates are rejected.
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.MarkAttendanceRequest true "Attendance information"
// @Success 201 {object} dto.APIResponse{data=models.Attendance} "Attendance marked"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or student not in batch"
// @Failure 404 {object} dto.ErrorResponse "Student or batch not found"
// @Failure 409 {object} dto.ErrorResponse "Already marked for this day"
// @Router /attendance [post]
func (c *AttendanceController) MarkAttendance(ctx *gin.Context) {
	var req dto.MarkAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		handleBindingError(ctx, err)
		return
	}

	var markedBy *int64
	if userID, ok := middleware.UserIDFromContext(ctx); ok {
		markedBy = &userID
	}

	record, err := c.attendanceService.MarkAttendance(ctx, &req, markedBy)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(record))
}

// GetRecord retrieves an attendance record by ID
// @Summary Get attendance record by ID
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param id path int true "Record ID"
// @Success 200 {object} dto.APIResponse{data=models.Attendance} "Record"
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Router /attendance/{id} [get]
func (c *AttendanceController) GetRecord(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "record ID")
	if !ok {
		return
	}

	record, err := c.attendanceService.GetRecord(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(record))
}

// ListAttendance retrieves attendance records with a summary
// @Summary List attendance
// @Description Lists attendance records filtered by day, range, batch or student, with the rate summary over the same set
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param date query string false "Exact day (YYYY-MM-DD)"
// @Param from query string false "Range start (YYYY-MM-DD)"
// @Param to query string false "Range end (YYYY-MM-DD)"
// @Param batchId query int false "Filter by batch"
// @Param studentId query int false "Filter by student"
// @Success 200 {object} dto.APIResponse{data=dto.AttendanceListResponse} "Records with summary"
// @Router /attendance [get]
func (c *AttendanceController) ListAttendance(ctx *gin.Context) {
	records, summary, err := c.attendanceService.ListAttendance(ctx, attendanceFilterFromQuery(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.AttendanceListResponse{Records: records, Summary: summary}))
}

// GetAttendanceSummary returns the attendance summary for the filtered set
// @Summary Attendance summary
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param date query string false "Exact day (YYYY-MM-DD)"
// @Param from query string false "Range start (YYYY-MM-DD)"
// @Param to query string false "Range end (YYYY-MM-DD)"
// @Param batchId query int false "Filter by batch"
// @Param studentId query int false "Filter by student"
// @Success 200 {object} dto.APIResponse{data=aggregate.AttendanceSummary} "Summary"
// @Router /attendance/summary [get]
func (c *AttendanceController) GetAttendanceSummary(ctx *gin.Context) {
	_, summary, err := c.attendanceService.ListAttendance(ctx, attendanceFilterFromQuery(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(summary))
}

// UpdateRecord corrects an attendance record
// @Summary Update an attendance record
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Record ID"
// @Param request body dto.UpdateAttendanceRequest true "Corrected values"
// @Success 200 {object} dto.APIResponse{data=models.Attendance} "Record updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Router /attendance/{id} [put]
func (c *AttendanceController) UpdateRecord(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "record ID")
	if !ok {
		return
	}

	var req dto.UpdateAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		handleBindingError(ctx, err)
		return
	}

	record, err := c.attendanceService.UpdateRecord(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(record))
}
