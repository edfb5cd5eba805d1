package dto

import "github.com/google/uuid"

type CreateMemberDTO struct {
	Name     string     `json:"name" validate:"required,min=2,max=100"`
	Email    string     `json:"email" validate:"required,email"`
	Phone    *string    `json:"phone" validate:"omitempty,max=30"`
	Role     *string    `json:"role" validate:"omitempty,max=100"`
	Avatar   *string    `json:"avatar" validate:"omitempty,max=500"`
	IsActive *bool      `json:"isActive"`
	TeamID   *uuid.UUID `json:"teamId"`
}

type UpdateMemberDTO struct {
	Name     *string    `json:"name" validate:"omitempty,min=2,max=100"`
	Email    *string    `json:"email" validate:"omitempty,email"`
	Phone    *string    `json:"phone" validate:"omitempty,max=30"`
	Role     *string    `json:"role" validate:"omitempty,max=100"`
	Avatar   *string    `json:"avatar" validate:"omitempty,max=500"`
	IsActive *bool      `json:"isActive"`
	TeamID   *uuid.UUID `json:"teamId"`
}
