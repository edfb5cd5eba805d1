package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateEquipmentDTO struct {
	Name                string     `json:"name" validate:"required,min=2,max=150"`
	SerialNumber        string     `json:"serialNumber" validate:"required,min=1,max=100"`
	Category            string     `json:"category" validate:"required,max=100"`
	Location            string     `json:"location" validate:"required,max=150"`
	Department          *string    `json:"department" validate:"omitempty,max=100"`
	AssignedTo          *string    `json:"assignedTo" validate:"omitempty,max=100"`
	Manufacturer        *string    `json:"manufacturer" validate:"omitempty,max=100"`
	Model               *string    `json:"model" validate:"omitempty,max=100"`
	PurchaseDate        *time.Time `json:"purchaseDate"`
	WarrantyExpiry      *time.Time `json:"warrantyExpiry"`
	Status              *string    `json:"status" validate:"omitempty,oneof=active inactive scrapped under-maintenance"`
	Notes               *string    `json:"notes" validate:"omitempty,max=2000"`
	MaintenanceTeamID   *uuid.UUID `json:"maintenanceTeamId"`
	DefaultTechnicianID *uuid.UUID `json:"defaultTechnicianId"`
}

type UpdateEquipmentDTO struct {
	Name                *string    `json:"name" validate:"omitempty,min=2,max=150"`
	SerialNumber        *string    `json:"serialNumber" validate:"omitempty,min=1,max=100"`
	Category            *string    `json:"category" validate:"omitempty,max=100"`
	Location            *string    `json:"location" validate:"omitempty,max=150"`
	Department          *string    `json:"department" validate:"omitempty,max=100"`
	AssignedTo          *string    `json:"assignedTo" validate:"omitempty,max=100"`
	Manufacturer        *string    `json:"manufacturer" validate:"omitempty,max=100"`
	Model               *string    `json:"model" validate:"omitempty,max=100"`
	PurchaseDate        *time.Time `json:"purchaseDate"`
	WarrantyExpiry      *time.Time `json:"warrantyExpiry"`
	Status              *string    `json:"status" validate:"omitempty,oneof=active inactive scrapped under-maintenance"`
	Notes               *string    `json:"notes" validate:"omitempty,max=2000"`
	MaintenanceTeamID   *uuid.UUID `json:"maintenanceTeamId"`
	DefaultTechnicianID *uuid.UUID `json:"defaultTechnicianId"`
}
