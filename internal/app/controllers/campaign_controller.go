package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/psanashik/academy/internal/app/models"
	"github.com/psanashik/academy/internal/app/models/dto"
	"github.com/psanashik/academy/internal/app/services"
	"github.com/psanashik/academy/internal/middleware"
)

// CampaignController handles marketing campaign operations
type CampaignController struct {
	campaignService services.CampaignService
}

// NewCampaignController creates a new CampaignController
func NewCampaignController(campaignService services.CampaignService) *CampaignController {
	return &CampaignController{campaignService: campaignService}
}

// CreateCampaign creates a campaign in draft status
// @Summary Create a campaign
// @Tags campaigns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCampaignRequest true "Campaign information"
// @Success 201 {object} dto.APIResponse{data=models.Campaign} "Campaign created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /campaigns [post]
func (c *CampaignController) CreateCampaign(ctx *gin.Context) {
	var req dto.CreateCampaignRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		handleBindingError(ctx, err)
		return
	}

	var createdBy *int64
	if userID, ok := middleware.UserIDFromContext(ctx); ok {
		createdBy = &userID
	}

	campaign, err := c.campaignService.CreateCampaign(ctx, &req, createdBy)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(campaign))
}

// GetCampaign retrieves a campaign by ID
// @Summary Get campaign by ID
// @Tags campaigns
// @Produce json
// @Security BearerAuth
// @Param id path int true "Campaign ID"
// @Success 200 {object} dto.APIResponse{data=models.Campaign} "Campaign"
// @Failure 404 {object} dto.ErrorResponse "Campaign not found"
// @Router /campaigns/{id} [get]
func (c *CampaignController) GetCampaign(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "campaign ID")
	if !ok {
		return
	}

	campaign, err := c.campaignService.GetCampaign(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(campaign))
}

// ListCampaigns retrieves all campaigns
// @Summary List campaigns
// @Tags campaigns
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Campaign} "Campaigns"
// @Router /campaigns [get]
func (c *CampaignController) ListCampaigns(ctx *gin.Context) {
	campaigns, err := c.campaignService.ListCampaigns(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(campaigns))
}

// UpdateCampaign updates a campaign's details
// @Summary Update a campaign
// @Tags campaigns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Campaign ID"
// @Param request body dto.CreateCampaignRequest true "Campaign information"
// @Success 200 {object} dto.APIResponse{data=models.Campaign} "Campaign updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Campaign not found"
// @Router /campaigns/{id} [put]
func (c *CampaignController) UpdateCampaign(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "campaign ID")
	if !ok {
		return
	}

	var req dto.CreateCampaignRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		handleBindingError(ctx, err)
		return
	}

	campaign, err := c.campaignService.UpdateCampaign(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(campaign))
}

// UpdateStatus moves a campaign through its lifecycle
// @Summary Update campaign status
// @Description Moves the campaign along draft, active, paused, completed. Illegal transitions are rejected.
// @Tags campaigns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Campaign ID"
// @Param request body dto.UpdateCampaignStatusRequest true "Target status"
// @Success 200 {object} dto.APIResponse{data=models.Campaign} "Status updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Campaign not found"
// @Failure 409 {object} dto.ErrorResponse "Illegal status transition"
// @Router /campaigns/{id}/status [put]
func (c *CampaignController) UpdateStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "campaign ID")
	if !ok {
		return
	}

	var req dto.UpdateCampaignStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		handleBindingError(ctx, err)
		return
	}

	campaign, err := c.campaignService.UpdateStatus(ctx, id, models.CampaignStatus(req.Status))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(campaign))
}
