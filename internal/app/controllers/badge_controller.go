package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/psanashik/academy/internal/app/models/dto"
	"github.com/psanashik/academy/internal/app/services"
	"github.com/psanashik/academy/internal/middleware"
)

// BadgeController handles badge definitions and awards
type BadgeController struct {
	badgeService services.BadgeService
}

// NewBadgeController creates a new BadgeController
func NewBadgeController(badgeService services.BadgeService) *BadgeController {
	return &BadgeController{badgeService: badgeService}
}

// CreateBadge creates a badge definition
// @Summary Create a badge
// @Tags badges
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateBadgeRequest true "Badge information"
// @Success 201 {object} dto.APIResponse{data=models.StudentBadge} "Badge created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /student-badges [post]
func (c *BadgeController) CreateBadge(ctx *gin.Context) {
	var req dto.CreateBadgeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		handleBindingError(ctx, err)
		return
	}

	badge, err := c.badgeService.CreateBadge(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(badge))
}

// GetBadge retrieves a badge by ID
// @Summary Get badge by ID
// @Tags badges
// @Produce json
// @Security BearerAuth
// @Param id path int true "Badge ID"
// @Success 200 {object} dto.APIResponse{data=models.StudentBadge} "Badge"
// @Failure 404 {object} dto.ErrorResponse "Badge not found"
// @Router /student-badges/{id} [get]
func (c *BadgeController) GetBadge(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "badge ID")
	if !ok {
		return
	}

	badge, err := c.badgeService.GetBadge(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(badge))
}

// ListBadges retrieves all badge definitions
// @Summary List badges
// @Tags badges
// @Produce json
// @Security BearerAuth
// @Param includeInactive query bool false "Include deactivated badges"
// @Success 200 {object} dto.APIResponse{data=[]models.StudentBadge} "Badges"
// @Router /student-badges [get]
func (c *BadgeController) ListBadges(ctx *gin.Context) {
	badges, err := c.badgeService.ListBadges(ctx, ctx.Query("includeInactive") == "true")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(badges))
}

// UpdateBadge updates a badge definition
// @Summary Update a badge
// @Tags badges
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Badge ID"
// @Param request body dto.CreateBadgeRequest true "Badge information"
// @Success 200 {object} dto.APIResponse{data=models.StudentBadge} "Badge updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Badge not found"
// @Router /student-badges/{id} [put]
func (c *BadgeController) UpdateBadge(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "badge ID")
	if !ok {
		return
	}

	var req dto.CreateBadgeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		handleBindingError(ctx, err)
		return
	}

	badge, err := c.badgeService.UpdateBadge(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(badge))
}

// AwardBadge awards a badge to a student
// @Summary Award a badge
// @Description Awards the badge to a student. A student can earn each badge at most once.
// @Tags badges
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Badge ID"
// @Param request body dto.AwardBadgeRequest true "Award details"
// @Success 201 {object} dto.APIResponse{data=models.BadgeEarning} "Badge awarded"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Badge or student not found"
// @Failure 409 {object} dto.ErrorResponse "Badge already earned"
// @Router /student-badges/{id}/award [post]
func (c *BadgeController) AwardBadge(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "badge ID")
	if !ok {
		return
	}

	var req dto.AwardBadgeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		handleBindingError(ctx, err)
		return
	}

	earning, err := c.badgeService.AwardBadge(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(earning))
}

// ListStudentBadges retrieves the badges a student has earned
// @Summary List a student's earned badges
// @Tags badges
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=[]models.BadgeEarning} "Earnings"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id}/badges [get]
func (c *BadgeController) ListStudentBadges(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "id", "student ID")
	if !ok {
		return
	}

	earnings, err := c.badgeService.ListStudentBadges(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(earnings))
}
