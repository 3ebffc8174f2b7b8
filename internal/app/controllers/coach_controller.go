package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/psanashik/academy/internal/app/models/dto"
	"github.com/psanashik/academy/internal/app/services"
	"github.com/psanashik/academy/internal/middleware"
)

// CoachController handles coach management operations
type CoachController struct {
	coachService services.CoachService
}

// NewCoachController creates a new CoachController
func NewCoachController(coachService services.CoachService) *CoachController {
	return &CoachController{coachService: coachService}
}

// CreateCoach creates a coach
// @Summary Create a coach
// @Tags coaches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCoachRequest true "Coach information"
// @Success 201 {object} dto.APIResponse{data=models.Coach} "Coach created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /coaches [post]
func (c *CoachController) CreateCoach(ctx *gin.Context) {
	var req dto.CreateCoachRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		handleBindingError(ctx, err)
		return
	}

	coach, err := c.coachService.CreateCoach(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(coach))
}

// GetCoach retrieves a coach by ID
// @Summary Get coach by ID
// @Tags coaches
// @Produce json
// @Security BearerAuth
// @Param id path int true "Coach ID"
// @Success 200 {object} dto.APIResponse{data=models.Coach} "Coach"
// @Failure 404 {object} dto.ErrorResponse "Coach not found"
// @Router /coaches/{id} [get]
func (c *CoachController) GetCoach(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "coach ID")
	if !ok {
		return
	}

	coach, err := c.coachService.GetCoach(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(coach))
}

// ListCoaches retrieves all coaches
// @Summary List coaches
// @Tags coaches
// @Produce json
// @Security BearerAuth
// @Param includeInactive query bool false "Include deactivated coaches"
// @Success 200 {object} dto.APIResponse{data=[]models.Coach} "Coaches"
// @Router /coaches [get]
func (c *CoachController) ListCoaches(ctx *gin.Context) {
	coaches, err := c.coachService.ListCoaches(ctx, ctx.Query("includeInactive") == "true")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(coaches))
}

// UpdateCoach updates a coach
// @Summary Update a coach
// @Tags coaches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Coach ID"
// @Param request body dto.CreateCoachRequest true "Coach information"
// @Success 200 {object} dto.APIResponse{data=models.Coach} "Coach updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Coach not found"
// @Router /coaches/{id} [put]
func (c *CoachController) UpdateCoach(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "coach ID")
	if !ok {
		return
	}

	var req dto.CreateCoachRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		handleBindingError(ctx, err)
		return
	}

	coach, err := c.coachService.UpdateCoach(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(coach))
}

// DeactivateCoach soft-deletes a coach
// @Summary Deactivate a coach
// @Tags coaches
// @Produce json
// @Security BearerAuth
// @Param id path int true "Coach ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Coach deactivated"
// @Failure 404 {object} dto.ErrorResponse "Coach not found"
// @Router /coaches/{id} [delete]
func (c *CoachController) DeactivateCoach(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "coach ID")
	if !ok {
		return
	}

	if err := c.coachService.DeactivateCoach(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.SuccessResponse{Message: "Coach deactivated"}))
}
