package dto

import (
	"todoapp/internal/domains/user/model"
	gDto "todoapp/shared/dto"
)

// UserResponse is the public view of an account; it deliberately has no
// password hash field.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsActive bool   `json:"is_active"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Username = model.Username
	r.Email = model.Email
	r.IsActive = model.IsActive
	r.Metadata.FromModel(model.Metadata)
}
