package dto

import (
	userModel "todoapp/internal/domains/user/model"
	gModel "todoapp/shared/model"
	"todoapp/shared/timezone"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *RegisterRequest) ToUserModel(hashedPassword string) userModel.User {
	return userModel.User{
		ID:           uuid.NewString(),
		Username:     r.Username,
		Email:        r.Email,
		PasswordHash: hashedPassword,
		IsActive:     true,
		Metadata:     gModel.NewMetadata(timezone.Now(), r.Username),
	}
}

// LoginRequest carries the form fields of the token endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse is the bearer token envelope returned by a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
