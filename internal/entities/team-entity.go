package entities

import (
	"time"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
)

type MaintenanceTeam struct {
	ID             uuid.UUID   `json:"id"`
	Name           string      `json:"name"`
	Description    null.String `json:"description"`
	Specialization null.String `json:"specialization"`
	IsActive       bool        `json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Resolved relation, not a column.
	Members []TeamMember `json:"members,omitempty" db:"-"`
}
