package entities

import (
	"time"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
)

type MaintenanceRequest struct {
	ID            uuid.UUID     `json:"id"`
	RequestNumber string        `json:"requestNumber"`
	Subject       string        `json:"subject"`
	Description   null.String   `json:"description"`
	Type          string        `json:"type"`
	Stage         string        `json:"stage"`
	Priority      string        `json:"priority"`
	ScheduledDate null.Time     `json:"scheduledDate"`
	CompletedDate null.Time     `json:"completedDate"`
	Duration      null.Int      `json:"duration"`
	Cost          null.Float64  `json:"cost"`
	Notes         null.String   `json:"notes"`
	EquipmentID   uuid.NullUUID `json:"equipmentId"`
	TeamID        uuid.NullUUID `json:"teamId"`
	AssignedToID  uuid.NullUUID `json:"assignedToId"`
	CreatedByID   uuid.NullUUID `json:"createdById"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Resolved relations, not columns.
	Equipment  *Equipment       `json:"equipment,omitempty" db:"-"`
	Team       *MaintenanceTeam `json:"team,omitempty" db:"-"`
	AssignedTo *TeamMember      `json:"assignedTo,omitempty" db:"-"`
	CreatedBy  *TeamMember      `json:"createdBy,omitempty" db:"-"`
}
