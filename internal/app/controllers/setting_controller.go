package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/psanashik/academy/internal/app/models/dto"
	"github.com/psanashik/academy/internal/app/services"
	"github.com/psanashik/academy/internal/middleware"
)

// SettingController handles system configuration operations
type SettingController struct {
	settingService services.SettingService
}

// NewSettingController creates a new SettingController
func NewSettingController(settingService services.SettingService) *SettingController {
	return &SettingController{settingService: settingService}
}

// UpsertSetting creates or updates a setting by key
// @Summary Upsert a setting
// @Description Creates the setting, or updates it in place when the key already exists
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpsertSettingRequest true "Setting information"
// @Success 200 {object} dto.APIResponse{data=models.SystemSetting} "Setting stored"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /settings [post]
func (c *SettingController) UpsertSetting(ctx *gin.Context) {
	var req dto.UpsertSettingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		handleBindingError(ctx, err)
		return
	}

	var updatedBy *int64
	if userID, ok := middleware.UserIDFromContext(ctx); ok {
		updatedBy = &userID
	}

	setting, err := c.settingService.UpsertSetting(ctx, &req, updatedBy)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(setting))
}

// GetSetting retrieves a setting by key
// @Summary Get setting by key
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Param key path string true "Setting key"
// @Success 200 {object} dto.APIResponse{data=models.SystemSetting} "Setting"
// @Failure 404 {object} dto.ErrorResponse "Setting not found"
// @Router /settings/{key} [get]
func (c *SettingController) GetSetting(ctx *gin.Context) {
	setting, err := c.settingService.GetSetting(ctx, ctx.Param("key"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(setting))
}

// ListSettings retrieves settings, optionally by category
// @Summary List settings
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Param category query string false "Filter by category (general, payment, notification, security)"
// @Success 200 {object} dto.APIResponse{data=[]models.SystemSetting} "Settings"
// @Router /settings [get]
func (c *SettingController) ListSettings(ctx *gin.Context) {
	settings, err := c.settingService.ListSettings(ctx, ctx.Query("category"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(settings))
}

// DeleteSetting removes a setting by key
// @Summary Delete a setting
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Param key path string true "Setting key"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Setting deleted"
// @Failure 404 {object} dto.ErrorResponse "Setting not found"
// @Router /settings/{key} [delete]
func (c *SettingController) DeleteSetting(ctx *gin.Context) {
	if err := c.settingService.DeleteSetting(ctx, ctx.Param("key")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.SuccessResponse{Message: "Setting deleted"}))
}
