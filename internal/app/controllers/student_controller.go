package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/psanashik/academy/internal/app/models/dto"
	"github.com/psanashik/academy/internal/app/repositories"
	"github.com/psanashik/academy/internal/app/services"
	"github.com/psanashik/academy/internal/middleware"
	"github.com/psanashik/academy/internal/pkg/helpers"
)

// StudentController handles student enrollment and lifecycle operations
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// CreateStudent enrolls a student into a batch
// @Summary Enroll a student
// @Description Creates a student and occupies a slot in the target batch. Fails when the batch is full or the student ID is taken.
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateStudentRequest true "Student information"
// @Success 201 {object} dto.APIResponse{data=models.Student} "Student enrolled"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or malformed student ID"
// @Failure 404 {object} dto.ErrorResponse "Sport or batch not found"
// @Failure 409 {object} dto.ErrorResponse "Batch full or student ID already exists"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		handleBindingError(ctx, err)
		return
	}

	student, err := c.studentService.CreateStudent(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(student))
}

// GetStudent retrieves a student by ID
// @Summary Get student by ID
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [get]
func (c *StudentController) GetStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "student ID")
	if !ok {
		return
	}

	student, err := c.studentService.GetStudent(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(student))
}

// ListStudents retrieves students with filtering and pagination
// @Summary List students
// @Description Lists active students, optionally filtered by search term, sport or batch
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param search query string false "Match against name, student ID or phone"
// @Param sportId query int false "Filter by sport"
// @Param batchId query int false "Filter by batch"
// @Param includeInactive query bool false "Include deactivated students"
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.StudentListResponse} "Students"
// @Router /students [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	filter := repositories.StudentFilter{
		Search:          ctx.Query("search"),
		SportID:         parseInt64Query(ctx, "sportId"),
		BatchID:         parseInt64Query(ctx, "batchId"),
		IncludeInactive: ctx.Query("includeInactive") == "true",
	}

	students, err := c.studentService.ListStudents(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	page, size := helpers.ParsePaginationParams(ctx)
	resp := dto.StudentListResponse{
		Students:   pageSlice(students, page, size),
		Pagination: helpers.NewPaginationInfo(int64(len(students)), page, size),
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(resp))
}

// UpdateStudent updates a student, transferring batches when batchId changed
// @Summary Update a student
// @Description Updates student details. A changed batchId moves the student between batches, adjusting both capacity counters.
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param request body dto.UpdateStudentRequest true "Student information"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Student or target batch not found"
// @Failure 409 {object} dto.ErrorResponse "Target batch full"
// @Router /students/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "student ID")
	if !ok {
		return
	}

	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		handleBindingError(ctx, err)
		return
	}

	student, err := c.studentService.UpdateStudent(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(student))
}

// DeactivateStudent soft-deletes a student and frees their batch slot
// @Summary Deactivate a student
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Student deactivated"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [delete]
func (c *StudentController) DeactivateStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "student ID")
	if !ok {
		return
	}

	if err := c.studentService.DeactivateStudent(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.SuccessResponse{Message: "Student deactivated"}))
}
