package dto

// DashboardStatsDTO feeds the landing dashboard cards.
type DashboardStatsDTO struct {
	EquipmentTotal    int64            `json:"equipmentTotal"`
	EquipmentByStatus map[string]int64 `json:"equipmentByStatus"`
	RequestsTotal     int64            `json:"requestsTotal"`
	RequestsByStage   map[string]int64 `json:"requestsByStage"`
	OpenRequests      int64            `json:"openRequests"`
	TeamsTotal        int64            `json:"teamsTotal"`
	MembersTotal      int64            `json:"membersTotal"`
}
