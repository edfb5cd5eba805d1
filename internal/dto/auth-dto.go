package dto

import (
	"github.com/google/uuid"

	"gearguard/internal/entities"
)

type SignupAdminDTO struct {
	FirebaseUID string  `json:"firebaseUid" validate:"required,min=4,max=128"`
	Email       string  `json:"email" validate:"required,email"`
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Department  *string `json:"department" validate:"omitempty,max=100"`
}

type SignupMemberDTO struct {
	FirebaseUID string    `json:"firebaseUid" validate:"required,min=4,max=128"`
	Email       string    `json:"email" validate:"required,email"`
	Name        string    `json:"name" validate:"required,min=2,max=100"`
	TeamID      uuid.UUID `json:"teamId" validate:"required"`
	MemberID    uuid.UUID `json:"memberId" validate:"required"`
}

type VerifyMemberDTO struct {
	TeamID   uuid.UUID `json:"teamId" validate:"required"`
	MemberID uuid.UUID `json:"memberId" validate:"required"`
	Email    string    `json:"email" validate:"required,email"`
}

// VerifyMemberResponseDTO always travels with HTTP 200; Valid=false carries
// the reason so the signup form can show it inline.
type VerifyMemberResponseDTO struct {
	Valid      bool   `json:"valid"`
	Message    string `json:"message,omitempty"`
	MemberName string `json:"memberName,omitempty"`
}

type LoginDTO struct {
	FirebaseUID string `json:"firebaseUid" validate:"required,min=4,max=128"`
}

type LoginResponseDTO struct {
	Token     string         `json:"token"`
	ExpiresIn int64          `json:"expiresIn"`
	User      *entities.User `json:"user"`
}

type UpdateUserDTO struct {
	Name       *string `json:"name" validate:"omitempty,min=2,max=100"`
	Department *string `json:"department" validate:"omitempty,max=100"`
	Avatar     *string `json:"avatar" validate:"omitempty,max=500"`
	IsActive   *bool   `json:"isActive"`
}
