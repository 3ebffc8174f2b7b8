package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/psanashik/academy/internal/app/models/dto"
	"github.com/psanashik/academy/internal/app/repositories"
	"github.com/psanashik/academy/internal/app/services"
	"github.com/psanashik/academy/internal/middleware"
)

// GPSController handles location ping operations
type GPSController struct {
	gpsService services.GPSService
}

// NewGPSController creates a new GPSController
func NewGPSController(gpsService services.GPSService) *GPSController {
	return &GPSController{gpsService: gpsService}
}

// RecordPing stores a location ping
// @Summary Record a GPS ping
// @Tags gps-tracking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateGPSPingRequest true "Ping information"
// @Success 201 {object} dto.APIResponse{data=models.GPSPing} "Ping recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /gps-tracking [post]
func (c *GPSController) RecordPing(ctx *gin.Context) {
	var req dto.CreateGPSPingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		handleBindingError(ctx, err)
		return
	}

	ping, err := c.gpsService.RecordPing(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(ping))
}

// ListPings retrieves pings for a user or time window
// @Summary List GPS pings
// @Tags gps-tracking
// @Produce json
// @Security BearerAuth
// @Param userId query int false "Filter by user"
// @Param from query string false "Window start (YYYY-MM-DD or RFC 3339)"
// @Param to query string false "Window end (YYYY-MM-DD or RFC 3339)"
// @Success 200 {object} dto.APIResponse{data=[]models.GPSPing} "Pings, newest first"
// @Router /gps-tracking [get]
func (c *GPSController) ListPings(ctx *gin.Context) {
	filter := repositories.GPSFilter{
		UserID: parseInt64Query(ctx, "userId"),
		From:   parseTimeQuery(ctx, "from"),
		To:     parseTimeQuery(ctx, "to"),
	}

	pings, err := c.gpsService.ListPings(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(pings))
}
