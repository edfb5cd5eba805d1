package dto

type CreateTeamDTO struct {
	Name           string  `json:"name" validate:"required,min=2,max=100"`
	Description    *string `json:"description" validate:"omitempty,max=500"`
	Specialization *string `json:"specialization" validate:"omitempty,max=100"`
	IsActive       *bool   `json:"isActive"`
}

type UpdateTeamDTO struct {
	Name           *string `json:"name" validate:"omitempty,min=2,max=100"`
	Description    *string `json:"description" validate:"omitempty,max=500"`
	Specialization *string `json:"specialization" validate:"omitempty,max=100"`
	IsActive       *bool   `json:"isActive"`
}
