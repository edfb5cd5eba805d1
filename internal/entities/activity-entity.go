package entities

import (
	"time"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
)

// ActivityMetadata is stored as a jsonb bag; all fields are optional.
type ActivityMetadata struct {
	RequestID   string `json:"requestId,omitempty"`
	EquipmentID string `json:"equipmentId,omitempty"`
	TeamID      string `json:"teamId,omitempty"`
	MemberID    string `json:"memberId,omitempty"`
	Status      string `json:"status,omitempty"`
	Priority    string `json:"priority,omitempty"`
}

// Activity is an append-only log row. Core flows never update or delete one.
type Activity struct {
	ID          uuid.UUID         `json:"id"`
	Type        string            `json:"type"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	UserID      uuid.NullUUID     `json:"userId"`
	UserName    null.String       `json:"userName"`
	Metadata    *ActivityMetadata `json:"metadata,omitempty"`
	Timestamp   time.Time         `json:"timestamp"`
}
