package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"gearguard/internal/authz"
	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/pkg/contextkeys"
	apperrors "gearguard/pkg/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func actorContext(userID uuid.UUID, role, name string) context.Context {
	ctx := context.Background()
	ctx = context.WithValue(ctx, contextkeys.UserIDKey, userID)
	ctx = context.WithValue(ctx, contextkeys.UserRoleKey, role)
	ctx = context.WithValue(ctx, contextkeys.UserNameKey, name)
	return ctx
}

type requestServiceFixture struct {
	service       RequestServiceInterface
	requestRepo   *fakeRequestRepo
	equipmentRepo *fakeEquipmentRepo
	activityRepo  *fakeActivityRepo
	userRepo      *fakeUserRepo
}

func newRequestServiceFixture() *requestServiceFixture {
	f := &requestServiceFixture{
		requestRepo:   newFakeRequestRepo(),
		equipmentRepo: newFakeEquipmentRepo(),
		activityRepo:  &fakeActivityRepo{},
		userRepo:      newFakeUserRepo(),
	}
	f.service = NewRequestService(
		&fakeTxManager{},
		f.requestRepo,
		f.equipmentRepo,
		newFakeSequenceRepo(),
		f.activityRepo,
		f.userRepo,
		zap.NewNop(),
	)
	return f
}

func TestCreateRequestAutoFillsFromEquipment(t *testing.T) {
	f := newRequestServiceFixture()

	teamID := uuid.New()
	techID := uuid.New()
	equipmentID := f.equipmentRepo.add(&entities.Equipment{
		Name:                "Hydraulic Press",
		Status:              entities.EquipmentStatusActive,
		MaintenanceTeamID:   uuid.NullUUID{UUID: teamID, Valid: true},
		DefaultTechnicianID: uuid.NullUUID{UUID: techID, Valid: true},
	})

	created, err := f.service.CreateRequest(context.Background(), dto.CreateRequestDTO{
		Subject:     "Press is leaking oil",
		EquipmentID: &equipmentID,
	})
	require.NoError(t, err)

	assert.Equal(t, teamID, created.TeamID.UUID)
	assert.Equal(t, techID, created.AssignedToID.UUID)
	assert.Equal(t, entities.StageNew, created.Stage)
	assert.Equal(t, entities.RequestTypeCorrective, created.Type)
	assert.Equal(t, entities.PriorityMedium, created.Priority)

	wantNumber := fmt.Sprintf("REQ-%s-0001", time.Now().Format("200601"))
	assert.Equal(t, wantNumber, created.RequestNumber)

	equipment, _ := f.equipmentRepo.FindEquipment(context.Background(), equipmentID)
	assert.Equal(t, entities.EquipmentStatusUnderMaintenance, equipment.Status)

	require.Len(t, f.activityRepo.activities, 1)
	assert.Equal(t, entities.ActivityRequestCreated, f.activityRepo.activities[0].Type)
}

func TestCreateRequestKeepsExplicitAssignment(t *testing.T) {
	f := newRequestServiceFixture()

	equipmentID := f.equipmentRepo.add(&entities.Equipment{
		Name:                "Generator",
		Status:              entities.EquipmentStatusActive,
		MaintenanceTeamID:   uuid.NullUUID{UUID: uuid.New(), Valid: true},
		DefaultTechnicianID: uuid.NullUUID{UUID: uuid.New(), Valid: true},
	})
	chosenTeam := uuid.New()
	chosenTech := uuid.New()

	created, err := f.service.CreateRequest(context.Background(), dto.CreateRequestDTO{
		Subject:      "Generator inspection",
		EquipmentID:  &equipmentID,
		TeamID:       &chosenTeam,
		AssignedToID: &chosenTech,
	})
	require.NoError(t, err)

	assert.Equal(t, chosenTeam, created.TeamID.UUID)
	assert.Equal(t, chosenTech, created.AssignedToID.UUID)
}

func TestCreateRequestLeavesScrappedEquipmentAlone(t *testing.T) {
	f := newRequestServiceFixture()

	equipmentID := f.equipmentRepo.add(&entities.Equipment{
		Name:   "Old Press",
		Status: entities.EquipmentStatusScrapped,
	})

	_, err := f.service.CreateRequest(context.Background(), dto.CreateRequestDTO{
		Subject:     "Salvage check",
		EquipmentID: &equipmentID,
	})
	require.NoError(t, err)

	equipment, _ := f.equipmentRepo.FindEquipment(context.Background(), equipmentID)
	assert.Equal(t, entities.EquipmentStatusScrapped, equipment.Status)
}

func TestCreateRequestRejectsUnknownEquipment(t *testing.T) {
	f := newRequestServiceFixture()

	missing := uuid.New()
	_, err := f.service.CreateRequest(context.Background(), dto.CreateRequestDTO{
		Subject:     "Ghost machine",
		EquipmentID: &missing,
	})
	require.Error(t, err)

	var httpErr *apperrors.HttpError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestCreateRequestNumbersAreSequentialWithinMonth(t *testing.T) {
	f := newRequestServiceFixture()

	first, err := f.service.CreateRequest(context.Background(), dto.CreateRequestDTO{Subject: "First"})
	require.NoError(t, err)
	second, err := f.service.CreateRequest(context.Background(), dto.CreateRequestDTO{Subject: "Second"})
	require.NoError(t, err)

	yearMonth := time.Now().Format("200601")
	assert.Equal(t, "REQ-"+yearMonth+"-0001", first.RequestNumber)
	assert.Equal(t, "REQ-"+yearMonth+"-0002", second.RequestNumber)
}

func TestUpdateRequestStageRepaired(t *testing.T) {
	f := newRequestServiceFixture()

	equipmentID := f.equipmentRepo.add(&entities.Equipment{
		Name:   "Compressor",
		Status: entities.EquipmentStatusUnderMaintenance,
	})
	created, err := f.service.CreateRequest(context.Background(), dto.CreateRequestDTO{
		Subject:     "Compressor vibrating",
		EquipmentID: &equipmentID,
	})
	require.NoError(t, err)

	updated, err := f.service.UpdateRequestStage(context.Background(), created.ID, entities.StageRepaired)
	require.NoError(t, err)

	assert.Equal(t, entities.StageRepaired, updated.Stage)
	assert.True(t, updated.CompletedDate.Valid)

	equipment, _ := f.equipmentRepo.FindEquipment(context.Background(), equipmentID)
	assert.Equal(t, entities.EquipmentStatusActive, equipment.Status)

	last := f.activityRepo.activities[len(f.activityRepo.activities)-1]
	assert.Equal(t, entities.ActivityRequestCompleted, last.Type)
}

func TestUpdateRequestStageScrap(t *testing.T) {
	f := newRequestServiceFixture()

	equipmentID := f.equipmentRepo.add(&entities.Equipment{
		Name:   "Crane",
		Status: entities.EquipmentStatusUnderMaintenance,
	})
	created, err := f.service.CreateRequest(context.Background(), dto.CreateRequestDTO{
		Subject:     "Crane beyond repair",
		EquipmentID: &equipmentID,
	})
	require.NoError(t, err)

	updated, err := f.service.UpdateRequestStage(context.Background(), created.ID, entities.StageScrap)
	require.NoError(t, err)

	assert.Equal(t, entities.StageScrap, updated.Stage)
	assert.True(t, updated.CompletedDate.Valid)

	equipment, _ := f.equipmentRepo.FindEquipment(context.Background(), equipmentID)
	assert.Equal(t, entities.EquipmentStatusScrapped, equipment.Status)
}

func TestUpdateRequestStageInProgressHasNoSideEffects(t *testing.T) {
	f := newRequestServiceFixture()

	equipmentID := f.equipmentRepo.add(&entities.Equipment{
		Name:   "Switch",
		Status: entities.EquipmentStatusUnderMaintenance,
	})
	created, err := f.service.CreateRequest(context.Background(), dto.CreateRequestDTO{
		Subject:     "Port flapping",
		EquipmentID: &equipmentID,
	})
	require.NoError(t, err)

	updated, err := f.service.UpdateRequestStage(context.Background(), created.ID, entities.StageInProgress)
	require.NoError(t, err)

	assert.Equal(t, entities.StageInProgress, updated.Stage)
	assert.False(t, updated.CompletedDate.Valid)

	equipment, _ := f.equipmentRepo.FindEquipment(context.Background(), equipmentID)
	assert.Equal(t, entities.EquipmentStatusUnderMaintenance, equipment.Status)
}

func TestGetRequestsScopesMembersToTheirTeam(t *testing.T) {
	f := newRequestServiceFixture()

	teamID := uuid.New()
	userID := f.userRepo.add(&entities.User{
		Name:     "Member One",
		Role:     authz.RoleMember,
		TeamID:   uuid.NullUUID{UUID: teamID, Valid: true},
		IsActive: true,
	})

	ctx := actorContext(userID, authz.RoleMember, "Member One")
	_, err := f.service.GetRequests(ctx, dto.RequestListFilter{})
	require.NoError(t, err)

	require.NotNil(t, f.requestRepo.lastFilter.TeamID)
	assert.Equal(t, teamID, *f.requestRepo.lastFilter.TeamID)
}

func TestGetRequestsAdminSeesEverything(t *testing.T) {
	f := newRequestServiceFixture()

	userID := f.userRepo.add(&entities.User{
		Name:     "Boss",
		Role:     authz.RoleAdmin,
		TeamID:   uuid.NullUUID{UUID: uuid.New(), Valid: true},
		IsActive: true,
	})

	ctx := actorContext(userID, authz.RoleAdmin, "Boss")
	_, err := f.service.GetRequests(ctx, dto.RequestListFilter{})
	require.NoError(t, err)

	assert.Nil(t, f.requestRepo.lastFilter.TeamID)
}

func TestCreateRequestRecordsActor(t *testing.T) {
	f := newRequestServiceFixture()

	userID := uuid.New()
	ctx := actorContext(userID, authz.RoleAdmin, "Boss")

	_, err := f.service.CreateRequest(ctx, dto.CreateRequestDTO{Subject: "Lights flickering"})
	require.NoError(t, err)

	require.Len(t, f.activityRepo.activities, 1)
	activity := f.activityRepo.activities[0]
	assert.Equal(t, userID, activity.UserID.UUID)
	assert.Equal(t, "Boss", activity.UserName.String)
}
