package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateRequestDTO struct {
	Subject       string     `json:"subject" validate:"required,min=2,max=200"`
	Description   *string    `json:"description" validate:"omitempty,max=2000"`
	Type          *string    `json:"type" validate:"omitempty,oneof=corrective preventive"`
	Priority      *string    `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	ScheduledDate *time.Time `json:"scheduledDate"`
	Duration      *int64     `json:"duration" validate:"omitempty,min=0"`
	Cost          *float64   `json:"cost" validate:"omitempty,min=0"`
	Notes         *string    `json:"notes" validate:"omitempty,max=2000"`
	EquipmentID   *uuid.UUID `json:"equipmentId"`
	TeamID        *uuid.UUID `json:"teamId"`
	AssignedToID  *uuid.UUID `json:"assignedToId"`
	CreatedByID   *uuid.UUID `json:"createdById"`
}

type UpdateRequestDTO struct {
	Subject       *string    `json:"subject" validate:"omitempty,min=2,max=200"`
	Description   *string    `json:"description" validate:"omitempty,max=2000"`
	Type          *string    `json:"type" validate:"omitempty,oneof=corrective preventive"`
	Stage         *string    `json:"stage" validate:"omitempty,oneof=new in-progress repaired scrap"`
	Priority      *string    `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	ScheduledDate *time.Time `json:"scheduledDate"`
	Duration      *int64     `json:"duration" validate:"omitempty,min=0"`
	Cost          *float64   `json:"cost" validate:"omitempty,min=0"`
	Notes         *string    `json:"notes" validate:"omitempty,max=2000"`
	EquipmentID   *uuid.UUID `json:"equipmentId"`
	TeamID        *uuid.UUID `json:"teamId"`
	AssignedToID  *uuid.UUID `json:"assignedToId"`
}

// UpdateRequestStageDTO backs the kanban drag-and-drop PATCH. Stage legality
// is deliberately not enforced beyond enum membership.
type UpdateRequestStageDTO struct {
	Stage string `json:"stage" validate:"required,oneof=new in-progress repaired scrap"`
}

// RequestListFilter holds the optional equality filters of the list endpoint.
type RequestListFilter struct {
	Stage  string
	Type   string
	TeamID *uuid.UUID
}

// CalendarRangeDTO bounds the preventive-maintenance calendar query.
type CalendarRangeDTO struct {
	Start *time.Time
	End   *time.Time
}
