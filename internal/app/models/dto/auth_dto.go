package dto

import "github.com/psanashik/academy/internal/app/models"

// LoginRequest is the credential payload for POST /api/auth/login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"admin@psa-nashik.com"`
	Password string `json:"password" binding:"required" example:"admin123"`
}

// TokenResponse carries the issued token pair
type TokenResponse struct {
	AccessToken      string `json:"accessToken"`
	RefreshToken     string `json:"refreshToken"`
	TokenType        string `json:"tokenType" example:"Bearer"`
	ExpiresIn        int64  `json:"expiresIn"`        // seconds
	RefreshExpiresIn int64  `json:"refreshExpiresIn"` // seconds
}

// RefreshTokenRequest is the payload for POST /api/auth/refresh
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// ChangePasswordRequest is the payload for POST /api/auth/change-password
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}

// UserProfile is the identity payload returned by GET /api/auth/me
type UserProfile struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

// NewUserProfile maps a user model onto its public profile.
func NewUserProfile(user *models.User) UserProfile {
	return UserProfile{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		Phone:       user.Phone,
		Role:        string(user.Role),
		Permissions: user.Permissions,
	}
}

// LoginResponse is the payload returned by a successful login.
type LoginResponse struct {
	Tokens TokenResponse `json:"tokens"`
	User   UserProfile   `json:"user"`
}
