package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/psanashik/academy/internal/app/models"
	"github.com/psanashik/academy/internal/app/models/dto"
	"github.com/psanashik/academy/internal/app/services"
	"github.com/psanashik/academy/internal/middleware"
)

// CommunicationController handles outbound message records
type CommunicationController struct {
	communicationService services.CommunicationService
}

// NewCommunicationController creates a new CommunicationController
func NewCommunicationController(communicationService services.CommunicationService) *CommunicationController {
	return &CommunicationController{communicationService: communicationService}
}

// CreateCommunication creates a communication record
// @Summary Create a communication
// @Description Records an outbound message in pending status. Delivery itself happens outside this system.
// @Tags communications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCommunicationRequest true "Communication information"
// @Success 201 {object} dto.APIResponse{data=models.Communication} "Communication created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /communications [post]
func (c *CommunicationController) CreateCommunication(ctx *gin.Context) {
	var req dto.CreateCommunicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		handleBindingError(ctx, err)
		return
	}

	var createdBy *int64
	if userID, ok := middleware.UserIDFromContext(ctx); ok {
		createdBy = &userID
	}

	comm, err := c.communicationService.CreateCommunication(ctx, &req, createdBy)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(comm))
}

// GetCommunication retrieves a communication by ID
// @Summary Get communication by ID
// @Tags communications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Communication ID"
// @Success 200 {object} dto.APIResponse{data=models.Communication} "Communication"
// @Failure 404 {object} dto.ErrorResponse "Communication not found"
// @Router /communications/{id} [get]
func (c *CommunicationController) GetCommunication(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "communication ID")
	if !ok {
		return
	}

	comm, err := c.communicationService.GetCommunication(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(comm))
}

// ListCommunications retrieves all communications
// @Summary List communications
// @Tags communications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Communication} "Communications"
// @Router /communications [get]
func (c *CommunicationController) ListCommunications(ctx *gin.Context) {
	comms, err := c.communicationService.ListCommunications(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(comms))
}

// UpdateStatus moves a communication along its delivery progression
// @Summary Update communication status
// @Description Advances the status along pending, sent, delivered or failed. Illegal transitions are rejected.
// @Tags communications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Communication ID"
// @Param request body dto.UpdateCommunicationStatusRequest true "Target status"
// @Success 200 {object} dto.APIResponse{data=models.Communication} "Status updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Communication not found"
// @Failure 409 {object} dto.ErrorResponse "Illegal status transition"
// @Router /communications/{id}/status [put]
func (c *CommunicationController) UpdateStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "communication ID")
	if !ok {
		return
	}

	var req dto.UpdateCommunicationStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		handleBindingError(ctx, err)
		return
	}

	comm, err := c.communicationService.UpdateStatus(ctx, id, models.CommunicationStatus(req.Status))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(comm))
}
