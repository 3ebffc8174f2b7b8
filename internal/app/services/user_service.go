package services

import (
	"context"

	"github.com/psanashik/academy/internal/app/models"
	"github.com/psanashik/academy/internal/app/models/dto"
	"github.com/psanashik/academy/internal/app/repositories"
	"github.com/psanashik/academy/internal/pkg/auth"
)

// UserService handles staff account administration.
type UserService interface {
	CreateUser(ctx context.Context, req *dto.CreateUserRequest, createdBy *int64) (*models.User, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	ListUsers(ctx context.Context, filter repositories.UserFilter) ([]*models.User, error)
	UpdateUser(ctx context.Context, id int64, req *dto.UpdateUserRequest) (*models.User, error)
	DeactivateUser(ctx context.Context, id int64) error
}

type userService struct {
	userRepo  repositories.UserRepository
	tokenRepo repositories.TokenRepository
}

// NewUserService creates a new user administration service
func NewUserService(userRepo repositories.UserRepository, tokenRepo repositories.TokenRepository) UserService {
	return &userService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
	}
}

// CreateUser creates a new account with a bcrypt-hashed password
func (s *userService) CreateUser(ctx context.Context, req *dto.CreateUserRequest, createdBy *int64) (*models.User, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Password:    hash,
		Role:        models.RoleType(req.Role),
		Permissions: req.Permissions,
		IsActive:    true,
		CreatedBy:   createdBy,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetUser retrieves a user by ID
func (s *userService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// ListUsers retrieves users matching the filter
func (s *userService) ListUsers(ctx context.Context, filter repositories.UserFilter) ([]*models.User, error) {
	return s.userRepo.List(ctx, filter)
}

// UpdateUser updates an account's details. Deactivating an account also
// revokes its refresh tokens.
func (s *userService) UpdateUser(ctx context.Context, id int64, req *dto.UpdateUserRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Name = req.Name
	user.Phone = req.Phone
	user.Role = models.RoleType(req.Role)
	user.Permissions = req.Permissions
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	if req.IsActive != nil && !*req.IsActive {
		if err := s.tokenRepo.RevokeAllUserTokens(ctx, id); err != nil {
			return nil, err
		}
	}
	return user, nil
}

// DeactivateUser disables an account and revokes its refresh tokens
func (s *userService) DeactivateUser(ctx context.Context, id int64) error {
	if err := s.userRepo.Deactivate(ctx, id); err != nil {
		return err
	}
	return s.tokenRepo.RevokeAllUserTokens(ctx, id)
}
