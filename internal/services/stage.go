package services

import "gearguard/internal/entities"

// stageEffects describes the side effects of setting a request stage. Effects
// key on the new value alone; the previous stage is irrelevant and transitions
// are deliberately not restricted to a forward-only order.
type stageEffects struct {
	// SetCompleted marks the request finished (completed_date = now).
	SetCompleted bool
	// EquipmentStatus, when non-empty, is pushed onto the referenced
	// equipment.
	EquipmentStatus string
}

func effectsForStage(stage string) stageEffects {
	switch stage {
	case entities.StageRepaired:
		return stageEffects{SetCompleted: true, EquipmentStatus: entities.EquipmentStatusActive}
	case entities.StageScrap:
		return stageEffects{SetCompleted: true, EquipmentStatus: entities.EquipmentStatusScrapped}
	default:
		return stageEffects{}
	}
}
