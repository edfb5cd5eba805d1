package entities

import (
	"time"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
)

type User struct {
	ID          uuid.UUID     `json:"id"`
	FirebaseUID string        `json:"firebaseUid"`
	Email       string        `json:"email"`
	Name        string        `json:"name"`
	Role        string        `json:"role"`
	ManagerID   null.String   `json:"managerId"`
	Department  null.String   `json:"department"`
	TeamID      uuid.NullUUID `json:"teamId"`
	MemberID    uuid.NullUUID `json:"memberId"`
	Avatar      null.String   `json:"avatar"`
	IsActive    bool          `json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Resolved relations, not columns.
	Team   *MaintenanceTeam `json:"team,omitempty" db:"-"`
	Member *TeamMember      `json:"member,omitempty" db:"-"`
}
