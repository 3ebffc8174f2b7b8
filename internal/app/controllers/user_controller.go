package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/psanashik/academy/internal/app/models"
	"github.com/psanashik/academy/internal/app/models/dto"
	"github.com/psanashik/academy/internal/app/repositories"
	"github.com/psanashik/academy/internal/app/services"
	"github.com/psanashik/academy/internal/middleware"
)

// UserController handles administrative user management
type UserController struct {
	userService services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService) *UserController {
	return &UserController{userService: userService}
}

// CreateUser creates a user account
// @Summary Create a user
// @Description Creates an account with a hashed password. Email and phone are unique.
// @Tags user-management
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateUserRequest true "User information"
// @Success 201 {object} dto.APIResponse{data=models.User} "User created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Admin or manager role required"
// @Failure 409 {object} dto.ErrorResponse "Email or phone already exists"
// @Router /user-management [post]
func (c *UserController) CreateUser(ctx *gin.Context) {
	var req dto.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		handleBindingError(ctx, err)
		return
	}

	var createdBy *int64
	if userID, ok := middleware.UserIDFromContext(ctx); ok {
		createdBy = &userID
	}

	user, err := c.userService.CreateUser(ctx, &req, createdBy)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(user))
}

// GetUser retrieves a user by ID
// @Summary Get user by ID
// @Tags user-management
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} dto.APIResponse{data=models.User} "User"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /user-management/{id} [get]
func (c *UserController) GetUser(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "user ID")
	if !ok {
		return
	}

	user, err := c.userService.GetUser(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(user))
}

// ListUsers retrieves users with filtering
// @Summary List users
// @Tags user-management
// @Produce json
// @Security BearerAuth
// @Param search query string false "Match against name, email or phone"
// @Param role query string false "Filter by role"
// @Param includeInactive query bool false "Include deactivated users"
// @Success 200 {object} dto.APIResponse{data=[]models.User} "Users"
// @Router /user-management [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	filter := repositories.UserFilter{
		Search:          ctx.Query("search"),
		Role:            models.RoleType(ctx.Query("role")),
		IncludeInactive: ctx.Query("includeInactive") == "true",
	}

	users, err := c.userService.ListUsers(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(users))
}

// UpdateUser updates a user account
// @Summary Update a user
// @Description Updates account details. Setting isActive to false revokes all of the user's refresh tokens.
// @Tags user-management
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body dto.UpdateUserRequest true "User information"
// @Success 200 {object} dto.APIResponse{data=models.User} "User updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /user-management/{id} [put]
func (c *UserController) UpdateUser(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "user ID")
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		handleBindingError(ctx, err)
		return
	}

	user, err := c.userService.UpdateUser(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(user))
}

// DeactivateUser soft-deletes a user account
// @Summary Deactivate a user
// @Description Deactivates the account and revokes all outstanding refresh tokens
// @Tags user-management
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "User deactivated"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /user-management/{id} [delete]
func (c *UserController) DeactivateUser(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "user ID")
	if !ok {
		return
	}

	if err := c.userService.DeactivateUser(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.SuccessResponse{Message: "User deactivated"}))
}
