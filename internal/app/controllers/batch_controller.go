package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/psanashik/academy/internal/app/models/dto"
	"github.com/psanashik/academy/internal/app/services"
	"github.com/psanashik/academy/internal/middleware"
)

// BatchController handles training batch operations
type BatchController struct {
	batchService services.BatchService
}

// NewBatchController creates a new BatchController
func NewBatchController(batchService services.BatchService) *BatchController {
	return &BatchController{batchService: batchService}
}

// CreateBatch creates a training batch
// @Summary Create a batch
// @Description Creates a batch under an existing sport and coach; enrollment starts at zero
// @Tags batches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateBatchRequest true "Batch information"
// @Success 201 {object} dto.APIResponse{data=models.Batch} "Batch created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Sport or coach not found"
// @Router /batches [post]
func (c *BatchController) CreateBatch(ctx *gin.Context) {
	var req dto.CreateBatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		handleBindingError(ctx, err)
		return
	}

	batch, err := c.batchService.CreateBatch(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(batch))
}

// GetBatch retrieves a batch by ID
// @Summary Get batch by ID
// @Tags batches
// @Produce json
// @Security BearerAuth
// @Param id path int true "Batch ID"
// @Success 200 {object} dto.APIResponse{data=models.Batch} "Batch"
// @Failure 404 {object} dto.ErrorResponse "Batch not found"
// @Router /batches/{id} [get]
func (c *BatchController) GetBatch(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "batch ID")
	if !ok {
		return
	}

	batch, err := c.batchService.GetBatch(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(batch))
}

// ListBatches retrieves batches with aggregate statistics
// @Summary List batches
// @Tags batches
// @Produce json
// @Security BearerAuth
// @Param includeInactive query bool false "Include deactivated batches"
// @Success 200 {object} dto.APIResponse{data=dto.BatchListResponse} "Batches with stats"
// @Router /batches [get]
func (c *BatchController) ListBatches(ctx *gin.Context) {
	batches, stats, err := c.batchService.ListBatches(ctx, ctx.Query("includeInactive") == "true")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.BatchListResponse{Batches: batches, Stats: stats}))
}

// GetBatchStats returns aggregate batch statistics
// @Summary Batch statistics
// @Tags batches
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=aggregate.BatchStats} "Statistics"
// @Router /batches/stats [get]
func (c *BatchController) GetBatchStats(ctx *gin.Context) {
	_, stats, err := c.batchService.ListBatches(ctx, false)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(stats))
}

// UpdateBatch updates a batch
// @Summary Update a batch
// @Description Updates batch details. maxCapacity cannot be lowered below current enrollment; the enrollment counter itself is not writable.
// @Tags batches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Batch ID"
// @Param request body dto.UpdateBatchRequest true "Batch information"
// @Success 200 {object} dto.APIResponse{data=models.Batch} "Batch updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or capacity below enrollment"
// @Failure 404 {object} dto.ErrorResponse "Batch or coach not found"
// @Router /batches/{id} [put]
func (c *BatchController) UpdateBatch(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "batch ID")
	if !ok {
		return
	}

	var req dto.UpdateBatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		handleBindingError(ctx, err)
		return
	}

	batch, err := c.batchService.UpdateBatch(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(batch))
}

// DeactivateBatch soft-deletes a batch
// @Summary Deactivate a batch
// @Tags batches
// @Produce json
// @Security BearerAuth
// @Param id path int true "Batch ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Batch deactivated"
// @Failure 404 {object} dto.ErrorResponse "Batch not found"
// @Router /batches/{id} [delete]
func (c *BatchController) DeactivateBatch(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "batch ID")
	if !ok {
		return
	}

	if err := c.batchService.DeactivateBatch(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.SuccessResponse{Message: "Batch deactivated"}))
}

// RecomputeCapacities resets every batch counter from stored student counts
// @Summary Recompute batch capacities
// @Description Consistency repair: resets every batch's enrollment counter to the count of its active students
// @Tags batches
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Capacities recomputed"
// @Router /batches/recompute-capacity [post]
func (c *BatchController) RecomputeCapacities(ctx *gin.Context) {
	if err := c.batchService.RecomputeCapacities(ctx); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.SuccessResponse{Message: "Batch capacities recomputed"}))
}
