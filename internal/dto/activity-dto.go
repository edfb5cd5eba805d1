package dto

import (
	"github.com/google/uuid"

	"gearguard/internal/entities"
)

type CreateActivityDTO struct {
	Type        string                     `json:"type" validate:"required,oneof=request_created request_updated request_completed equipment_updated team_assigned member_added"`
	Title       string                     `json:"title" validate:"required,max=200"`
	Description string                     `json:"description" validate:"required,max=1000"`
	UserID      *uuid.UUID                 `json:"userId"`
	UserName    *string                    `json:"userName" validate:"omitempty,max=100"`
	Metadata    *entities.ActivityMetadata `json:"metadata"`
}
