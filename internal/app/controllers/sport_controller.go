package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/psanashik/academy/internal/app/models/dto"
	"github.com/psanashik/academy/internal/app/services"
	"github.com/psanashik/academy/internal/middleware"
)

// SportController handles sport program operations
type SportController struct {
	sportService services.SportService
}

// NewSportController creates a new SportController
func NewSportController(sportService services.SportService) *SportController {
	return &SportController{sportService: sportService}
}

// CreateSport creates a sport program
// @Summary Create a sport
// @Description Creates a sport with its per-skill-level fee structure. Sport names are unique.
// @Tags sports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateSportRequest true "Sport information"
// @Success 201 {object} dto.APIResponse{data=models.Sport} "Sport created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Sport name already exists"
// @Router /sports [post]
func (c *SportController) CreateSport(ctx *gin.Context) {
	var req dto.CreateSportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		handleBindingError(ctx, err)
		return
	}

	sport, err := c.sportService.CreateSport(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(sport))
}

// GetSport retrieves a sport by ID
// @Summary Get sport by ID
// @Tags sports
// @Produce json
// @Security BearerAuth
// @Param id path int true "Sport ID"
// @Success 200 {object} dto.APIResponse{data=models.Sport} "Sport"
// @Failure 404 {object} dto.ErrorResponse "Sport not found"
// @Router /sports/{id} [get]
func (c *SportController) GetSport(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "sport ID")
	if !ok {
		return
	}

	sport, err := c.sportService.GetSport(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(sport))
}

// ListSports retrieves all sports
// @Summary List sports
// @Tags sports
// @Produce json
// @Security BearerAuth
// @Param includeInactive query bool false "Include deactivated sports"
// @Success 200 {object} dto.APIResponse{data=[]models.Sport} "Sports"
// @Router /sports [get]
func (c *SportController) ListSports(ctx *gin.Context) {
	sports, err := c.sportService.ListSports(ctx, ctx.Query("includeInactive") == "true")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(sports))
}

// UpdateSport updates a sport
// @Summary Update a sport
// @Tags sports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Sport ID"
// @Param request body dto.CreateSportRequest true "Sport information"
// @Success 200 {object} dto.APIResponse{data=models.Sport} "Sport updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Sport not found"
// @Failure 409 {object} dto.ErrorResponse "Sport name already exists"
// @Router /sports/{id} [put]
func (c *SportController) UpdateSport(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "sport ID")
	if !ok {
		return
	}

	var req dto.CreateSportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		handleBindingError(ctx, err)
		return
	}

	sport, err := c.sportService.UpdateSport(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(sport))
}

// DeactivateSport soft-deletes a sport
// @Summary Deactivate a sport
// @Tags sports
// @Produce json
// @Security BearerAuth
// @Param id path int true "Sport ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Sport deactivated"
// @Failure 404 {object} dto.ErrorResponse "Sport not found"
// @Router /sports/{id} [delete]
func (c *SportController) DeactivateSport(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "sport ID")
	if !ok {
		return
	}

	if err := c.sportService.DeactivateSport(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.SuccessResponse{Message: "Sport deactivated"}))
}
