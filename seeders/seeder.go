package seeders

import (
	"context"
	"fmt"
	"time"

	"gearguard/internal/entities"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type teamSeed struct {
	name           string
	description    string
	specialization string
}

type memberSeed struct {
	name  string
	email string
	phone string
	role  string
	team  int
}

type equipmentSeed struct {
	name         string
	serialNumber string
	category     string
	location     string
	department   string
	manufacturer string
	model        string
	status       string
	team         int
	technician   int
}

type requestSeed struct {
	subject     string
	description string
	reqType     string
	stage       string
	priority    string
	equipment   int
	assignee    int
	creator     int
}

var teamSeeds = []teamSeed{
	{"Electrical Team", "Handles all electrical equipment and systems", "Electrical Systems"},
	{"Mechanical Team", "Maintains mechanical equipment and machinery", "Mechanical Engineering"},
	{"HVAC Team", "Heating, ventilation, and air conditioning specialists", "Climate Control"},
	{"IT Support", "Computer and network equipment maintenance", "Information Technology"},
}

var memberSeeds = []memberSeed{
	{"John Smith", "john.smith@gearguard.com", "+1-555-0101", "Senior Electrician", 0},
	{"Sarah Johnson", "sarah.johnson@gearguard.com", "+1-555-0102", "Electrical Engineer", 0},
	{"Michael Brown", "michael.brown@gearguard.com", "+1-555-0103", "Lead Mechanic", 1},
	{"Emily Davis", "emily.davis@gearguard.com", "+1-555-0104", "Mechanical Technician", 1},
	{"David Wilson", "david.wilson@gearguard.com", "+1-555-0105", "HVAC Specialist", 2},
	{"Lisa Anderson", "lisa.anderson@gearguard.com", "+1-555-0106", "HVAC Technician", 2},
	{"Robert Martinez", "robert.martinez@gearguard.com", "+1-555-0107", "IT Manager", 3},
	{"Jennifer Taylor", "jennifer.taylor@gearguard.com", "+1-555-0108", "Network Technician", 3},
}

var equipmentSeeds = []equipmentSeed{
	{"Industrial Air Compressor", "AC-2024-001", "Mechanical", "Building 1, Floor 2", "Production", "Atlas Copco", "GA 75 VSD+", entities.EquipmentStatusActive, 1, 2},
	{"Electrical Generator", "GEN-2024-002", "Electrical", "Building 1, Basement", "Facilities", "Caterpillar", "C15 ACERT", entities.EquipmentStatusActive, 0, 0},
	{"Central HVAC Unit", "HVAC-2024-003", "HVAC", "Building 1, Roof", "Facilities", "Carrier", "AquaEdge 23XRV", entities.EquipmentStatusActive, 2, 4},
	{"CNC Milling Machine", "CNC-2024-004", "Mechanical", "Building 2, Floor 1", "Production", "Haas", "VF-4SS", entities.EquipmentStatusActive, 1, 3},
	{"Server Rack System", "SRV-2024-005", "IT Equipment", "Building 1, Server Room", "IT", "Dell", "PowerEdge R750", entities.EquipmentStatusActive, 3, 6},
	{"Hydraulic Press", "HP-2024-006", "Mechanical", "Building 2, Floor 2", "Production", "Schuler", "SMG 800", entities.EquipmentStatusUnderMaintenance, 1, 2},
}

var requestSeeds = []requestSeed{
	{"Hydraulic Press Preventive Maintenance", "Scheduled quarterly maintenance: oil change, filter replacement and safety system check", entities.RequestTypePreventive, entities.StageInProgress, entities.PriorityHigh, 5, 2, 3},
	{"Generator Cooling System Leak", "Coolant leak detected in the radiator. Requires immediate inspection and repair.", entities.RequestTypeCorrective, entities.StageNew, entities.PriorityUrgent, 1, 0, 1},
	{"HVAC Filter Replacement", "Replace air filters and inspect refrigerant levels on the rooftop chiller.", entities.RequestTypePreventive, entities.StageNew, entities.PriorityMedium, 2, 4, 5},
}

// Seed wipes the domain tables and loads a small demo dataset. Intended for
// development environments only.
func Seed(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) error {
	if _, err := pool.Exec(ctx, `
		TRUNCATE activities, maintenance_requests, request_counters, equipments, team_members, maintenance_teams CASCADE
	`); err != nil {
		return fmt.Errorf("clear tables: %w", err)
	}

	teamIDs := make([]uuid.UUID, len(teamSeeds))
	for i, t := range teamSeeds {
		err := pool.QueryRow(ctx, `
			INSERT INTO maintenance_teams (name, description, specialization)
			VALUES ($1, $2, $3) RETURNING id
		`, t.name, t.description, t.specialization).Scan(&teamIDs[i])
		if err != nil {
			return fmt.Errorf("seed team %q: %w", t.name, err)
		}
	}

	memberIDs := make([]uuid.UUID, len(memberSeeds))
	for i, m := range memberSeeds {
		err := pool.QueryRow(ctx, `
			INSERT INTO team_members (name, email, phone, role, team_id)
			VALUES ($1, $2, $3, $4, $5) RETURNING id
		`, m.name, m.email, m.phone, m.role, teamIDs[m.team]).Scan(&memberIDs[i])
		if err != nil {
			return fmt.Errorf("seed member %q: %w", m.name, err)
		}
	}

	equipmentIDs := make([]uuid.UUID, len(equipmentSeeds))
	for i, e := range equipmentSeeds {
		err := pool.QueryRow(ctx, `
			INSERT INTO equipments (name, serial_number, category, location, department, manufacturer, model, status, maintenance_team_id, default_technician_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id
		`, e.name, e.serialNumber, e.category, e.location, e.department, e.manufacturer, e.model, e.status,
			teamIDs[e.team], memberIDs[e.technician]).Scan(&equipmentIDs[i])
		if err != nil {
			return fmt.Errorf("seed equipment %q: %w", e.name, err)
		}
	}

	now := time.Now()
	yearMonth := now.Format("200601")
	for i, r := range requestSeeds {
		number := fmt.Sprintf("REQ-%s-%04d", yearMonth, i+1)
		teamID := teamIDs[equipmentSeeds[r.equipment].team]
		_, err := pool.Exec(ctx, `
			INSERT INTO maintenance_requests (request_number, subject, description, type, stage, priority, scheduled_date, equipment_id, team_id, assigned_to_id, created_by_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		`, number, r.subject, r.description, r.reqType, r.stage, r.priority, now.AddDate(0, 0, i+1),
			equipmentIDs[r.equipment], teamID, memberIDs[r.assignee], memberIDs[r.creator])
		if err != nil {
			return fmt.Errorf("seed request %q: %w", r.subject, err)
		}
	}

	if _, err := pool.Exec(ctx, `
		INSERT INTO request_counters (year_month, seq) VALUES ($1, $2)
	`, yearMonth, len(requestSeeds)); err != nil {
		return fmt.Errorf("seed request counter: %w", err)
	}

	logger.Info("database seeded",
		zap.Int("teams", len(teamSeeds)),
		zap.Int("members", len(memberSeeds)),
		zap.Int("equipment", len(equipmentSeeds)),
		zap.Int("requests", len(requestSeeds)),
	)
	return nil
}
