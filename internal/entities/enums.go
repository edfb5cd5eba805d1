package entities

// Equipment statuses.
const (
	EquipmentStatusActive           = "active"
	EquipmentStatusInactive         = "inactive"
	EquipmentStatusScrapped         = "scrapped"
	EquipmentStatusUnderMaintenance = "under-maintenance"
)

// Maintenance request types.
const (
	RequestTypeCorrective = "corrective"
	RequestTypePreventive = "preventive"
)

// Maintenance request stages (kanban columns).
const (
	StageNew        = "new"
	StageInProgress = "in-progress"
	StageRepaired   = "repaired"
	StageScrap      = "scrap"
)

// Maintenance request priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// Activity event kinds.
const (
	ActivityRequestCreated   = "request_created"
	ActivityRequestUpdated   = "request_updated"
	ActivityRequestCompleted = "request_completed"
	ActivityEquipmentUpdated = "equipment_updated"
	ActivityTeamAssigned     = "team_assigned"
	ActivityMemberAdded      = "member_added"
)
