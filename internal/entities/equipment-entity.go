package entities

import (
	"time"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
)

type Equipment struct {
	ID                  uuid.UUID     `json:"id"`
	Name                string        `json:"name"`
	SerialNumber        string        `json:"serialNumber"`
	Category            string        `json:"category"`
	Location            string        `json:"location"`
	Department          null.String   `json:"department"`
	AssignedTo          null.String   `json:"assignedTo"`
	Manufacturer        null.String   `json:"manufacturer"`
	Model               null.String   `json:"model"`
	PurchaseDate        null.Time     `json:"purchaseDate"`
	WarrantyExpiry      null.Time     `json:"warrantyExpiry"`
	Status              string        `json:"status"`
	Notes               null.String   `json:"notes"`
	MaintenanceTeamID   uuid.NullUUID `json:"maintenanceTeamId"`
	DefaultTechnicianID uuid.NullUUID `json:"defaultTechnicianId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Resolved relations, not columns.
	MaintenanceTeam   *MaintenanceTeam `json:"maintenanceTeam,omitempty" db:"-"`
	DefaultTechnician *TeamMember      `json:"defaultTechnician,omitempty" db:"-"`

	// OpenRequestsCount is only populated by the find-by-id path: number of
	// maintenance requests for this equipment whose stage is not "repaired".
	OpenRequestsCount *int64 `json:"openRequestsCount,omitempty" db:"-"`
}
