package entities

import (
	"time"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
)

type TeamMember struct {
	ID       uuid.UUID     `json:"id"`
	Name     string        `json:"name"`
	Email    string        `json:"email"`
	Phone    null.String   `json:"phone"`
	Role     null.String   `json:"role"`
	Avatar   null.String   `json:"avatar"`
	IsActive bool          `json:"isActive"`
	TeamID   uuid.NullUUID `json:"teamId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Resolved relation, not a column.
	Team *MaintenanceTeam `json:"team,omitempty" db:"-"`
}
