package services

import (
	"context"
	"time"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	apperrors "gearguard/pkg/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// In-memory fakes for the repository interfaces. Only the methods the service
// tests exercise carry real behavior.

type fakeTxManager struct{}

func (f *fakeTxManager) RunInTransaction(ctx context.Context, fn func(tx pgx.Tx) error) error {
	return fn(nil)
}

type fakeSequenceRepo struct {
	counters map[string]int64
}

func newFakeSequenceRepo() *fakeSequenceRepo {
	return &fakeSequenceRepo{counters: make(map[string]int64)}
}

func (f *fakeSequenceRepo) NextRequestSequence(ctx context.Context, q repositories.Querier, yearMonth string) (int64, error) {
	f.counters[yearMonth]++
	return f.counters[yearMonth], nil
}

type fakeRequestRepo struct {
	requests   map[uuid.UUID]*entities.MaintenanceRequest
	lastFilter dto.RequestListFilter
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: make(map[uuid.UUID]*entities.MaintenanceRequest)}
}

func (f *fakeRequestRepo) GetRequests(ctx context.Context, filter dto.RequestListFilter) ([]entities.MaintenanceRequest, error) {
	f.lastFilter = filter
	out := make([]entities.MaintenanceRequest, 0, len(f.requests))
	for _, r := range f.requests {
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeRequestRepo) FindRequest(ctx context.Context, id uuid.UUID) (*entities.MaintenanceRequest, error) {
	r, ok := f.requests[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("request")
	}
	return r, nil
}

func (f *fakeRequestRepo) FindRequestForUpdate(ctx context.Context, q repositories.Querier, id uuid.UUID) (*entities.MaintenanceRequest, error) {
	return f.FindRequest(ctx, id)
}

func (f *fakeRequestRepo) CreateRequest(ctx context.Context, q repositories.Querier, request *entities.MaintenanceRequest) (uuid.UUID, error) {
	id := uuid.New()
	request.ID = id
	stored := *request
	f.requests[id] = &stored
	return id, nil
}

func (f *fakeRequestRepo) SaveRequest(ctx context.Context, q repositories.Querier, request *entities.MaintenanceRequest) error {
	if _, ok := f.requests[request.ID]; !ok {
		return apperrors.NewNotFoundError("request")
	}
	stored := *request
	f.requests[request.ID] = &stored
	return nil
}

func (f *fakeRequestRepo) DeleteRequest(ctx context.Context, id uuid.UUID) error {
	delete(f.requests, id)
	return nil
}

func (f *fakeRequestRepo) GetCalendarEvents(ctx context.Context, rng dto.CalendarRangeDTO) ([]entities.MaintenanceRequest, error) {
	return nil, nil
}

func (f *fakeRequestRepo) GetEquipmentHistory(ctx context.Context, equipmentID uuid.UUID) ([]entities.MaintenanceRequest, error) {
	return nil, nil
}

func (f *fakeRequestRepo) CountByStage(ctx context.Context) (map[string]int64, error) {
	counts := make(map[string]int64)
	for _, r := range f.requests {
		counts[r.Stage]++
	}
	return counts, nil
}

type fakeEquipmentRepo struct {
	equipments map[uuid.UUID]*entities.Equipment
}

func newFakeEquipmentRepo() *fakeEquipmentRepo {
	return &fakeEquipmentRepo{equipments: make(map[uuid.UUID]*entities.Equipment)}
}

func (f *fakeEquipmentRepo) add(e *entities.Equipment) uuid.UUID {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	f.equipments[e.ID] = e
	return e.ID
}

func (f *fakeEquipmentRepo) GetEquipments(ctx context.Context) ([]entities.Equipment, error) {
	out := make([]entities.Equipment, 0, len(f.equipments))
	for _, e := range f.equipments {
		out = append(out, *e)
	}
	return out, nil
}

func (f *fakeEquipmentRepo) FindEquipment(ctx context.Context, id uuid.UUID) (*entities.Equipment, error) {
	e, ok := f.equipments[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("equipment")
	}
	return e, nil
}

func (f *fakeEquipmentRepo) FindEquipmentForUpdate(ctx context.Context, q repositories.Querier, id uuid.UUID) (*entities.Equipment, error) {
	return f.FindEquipment(ctx, id)
}

func (f *fakeEquipmentRepo) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (uuid.UUID, error) {
	return f.add(&entities.Equipment{Name: payload.Name, Status: entities.EquipmentStatusActive}), nil
}

func (f *fakeEquipmentRepo) UpdateEquipment(ctx context.Context, id uuid.UUID, payload dto.UpdateEquipmentDTO) error {
	if _, ok := f.equipments[id]; !ok {
		return apperrors.NewNotFoundError("equipment")
	}
	return nil
}

func (f *fakeEquipmentRepo) UpdateEquipmentStatus(ctx context.Context, q repositories.Querier, id uuid.UUID, status string) error {
	e, ok := f.equipments[id]
	if !ok {
		return apperrors.NewNotFoundError("equipment")
	}
	e.Status = status
	return nil
}

func (f *fakeEquipmentRepo) DeleteEquipment(ctx context.Context, id uuid.UUID) error {
	delete(f.equipments, id)
	return nil
}

func (f *fakeEquipmentRepo) CountByStatus(ctx context.Context) (map[string]int64, error) {
	counts := make(map[string]int64)
	for _, e := range f.equipments {
		counts[e.Status]++
	}
	return counts, nil
}

type fakeActivityRepo struct {
	activities []entities.Activity
}

func (f *fakeActivityRepo) GetActivities(ctx context.Context) ([]entities.Activity, error) {
	return f.activities, nil
}

func (f *fakeActivityRepo) GetRecent(ctx context.Context, limit int) ([]entities.Activity, error) {
	if len(f.activities) > limit {
		return f.activities[:limit], nil
	}
	return f.activities, nil
}

func (f *fakeActivityRepo) FindActivity(ctx context.Context, id uuid.UUID) (*entities.Activity, error) {
	for i := range f.activities {
		if f.activities[i].ID == id {
			return &f.activities[i], nil
		}
	}
	return nil, apperrors.NewNotFoundError("activity")
}

func (f *fakeActivityRepo) GetByType(ctx context.Context, activityType string) ([]entities.Activity, error) {
	var out []entities.Activity
	for _, a := range f.activities {
		if a.Type == activityType {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeActivityRepo) GetByUser(ctx context.Context, userID uuid.UUID) ([]entities.Activity, error) {
	return nil, nil
}

func (f *fakeActivityRepo) CreateActivity(ctx context.Context, q repositories.Querier, activity *entities.Activity) (uuid.UUID, error) {
	activity.ID = uuid.New()
	activity.Timestamp = time.Now()
	f.activities = append(f.activities, *activity)
	return activity.ID, nil
}

func (f *fakeActivityRepo) RecordActivity(ctx context.Context, activity *entities.Activity) (uuid.UUID, error) {
	return f.CreateActivity(ctx, nil, activity)
}

type fakeUserRepo struct {
	users      map[uuid.UUID]*entities.User
	managerIDs map[string]bool
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:      make(map[uuid.UUID]*entities.User),
		managerIDs: make(map[string]bool),
	}
}

func (f *fakeUserRepo) add(u *entities.User) uuid.UUID {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	f.users[u.ID] = u
	if u.ManagerID.Valid {
		f.managerIDs[u.ManagerID.String] = true
	}
	return u.ID
}

func (f *fakeUserRepo) GetUsers(ctx context.Context) ([]entities.User, error) {
	out := make([]entities.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) FindUser(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("user")
	}
	return u, nil
}

func (f *fakeUserRepo) FindUserByFirebaseUID(ctx context.Context, firebaseUID string) (*entities.User, error) {
	for _, u := range f.users {
		if u.FirebaseUID == firebaseUID {
			return u, nil
		}
	}
	return nil, apperrors.NewNotFoundError("user")
}

func (f *fakeUserRepo) ExistsByFirebaseUIDOrEmail(ctx context.Context, firebaseUID, email string) (bool, error) {
	for _, u := range f.users {
		if u.FirebaseUID == firebaseUID || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) ExistsByMemberID(ctx context.Context, memberID uuid.UUID) (bool, error) {
	for _, u := range f.users {
		if u.MemberID.Valid && u.MemberID.UUID == memberID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) ManagerIDExists(ctx context.Context, managerID string) (bool, error) {
	return f.managerIDs[managerID], nil
}

func (f *fakeUserRepo) CountByRole(ctx context.Context, role string) (int64, error) {
	var count int64
	for _, u := range f.users {
		if u.Role == role {
			count++
		}
	}
	return count, nil
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, user *entities.User) (uuid.UUID, error) {
	return f.add(user), nil
}

func (f *fakeUserRepo) UpdateUser(ctx context.Context, id uuid.UUID, payload dto.UpdateUserDTO) error {
	u, ok := f.users[id]
	if !ok {
		return apperrors.NewNotFoundError("user")
	}
	if payload.Name != nil {
		u.Name = *payload.Name
	}
	if payload.IsActive != nil {
		u.IsActive = *payload.IsActive
	}
	return nil
}

func (f *fakeUserRepo) DeactivateUser(ctx context.Context, id uuid.UUID) error {
	u, ok := f.users[id]
	if !ok {
		return apperrors.NewNotFoundError("user")
	}
	u.IsActive = false
	return nil
}

type fakeTeamRepo struct {
	teams map[uuid.UUID]*entities.MaintenanceTeam
}

func newFakeTeamRepo() *fakeTeamRepo {
	return &fakeTeamRepo{teams: make(map[uuid.UUID]*entities.MaintenanceTeam)}
}

func (f *fakeTeamRepo) add(t *entities.MaintenanceTeam) uuid.UUID {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	f.teams[t.ID] = t
	return t.ID
}

func (f *fakeTeamRepo) GetTeams(ctx context.Context) ([]entities.MaintenanceTeam, error) {
	out := make([]entities.MaintenanceTeam, 0, len(f.teams))
	for _, t := range f.teams {
		out = append(out, *t)
	}
	return out, nil
}

func (f *fakeTeamRepo) FindTeam(ctx context.Context, id uuid.UUID) (*entities.MaintenanceTeam, error) {
	t, ok := f.teams[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("team")
	}
	return t, nil
}

func (f *fakeTeamRepo) CreateTeam(ctx context.Context, payload dto.CreateTeamDTO) (uuid.UUID, error) {
	return f.add(&entities.MaintenanceTeam{Name: payload.Name, IsActive: true}), nil
}

func (f *fakeTeamRepo) UpdateTeam(ctx context.Context, id uuid.UUID, payload dto.UpdateTeamDTO) error {
	if _, ok := f.teams[id]; !ok {
		return apperrors.NewNotFoundError("team")
	}
	return nil
}

func (f *fakeTeamRepo) DeleteTeam(ctx context.Context, id uuid.UUID) error {
	delete(f.teams, id)
	return nil
}

func (f *fakeTeamRepo) CountTeams(ctx context.Context) (int64, error) {
	return int64(len(f.teams)), nil
}

type fakeMemberRepo struct {
	members map[uuid.UUID]*entities.TeamMember
}

func newFakeMemberRepo() *fakeMemberRepo {
	return &fakeMemberRepo{members: make(map[uuid.UUID]*entities.TeamMember)}
}

func (f *fakeMemberRepo) add(m *entities.TeamMember) uuid.UUID {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	f.members[m.ID] = m
	return m.ID
}

func (f *fakeMemberRepo) GetMembers(ctx context.Context) ([]entities.TeamMember, error) {
	out := make([]entities.TeamMember, 0, len(f.members))
	for _, m := range f.members {
		out = append(out, *m)
	}
	return out, nil
}

func (f *fakeMemberRepo) FindMember(ctx context.Context, id uuid.UUID) (*entities.TeamMember, error) {
	m, ok := f.members[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("member")
	}
	return m, nil
}

func (f *fakeMemberRepo) FindMemberInTeam(ctx context.Context, memberID, teamID uuid.UUID) (*entities.TeamMember, error) {
	m, ok := f.members[memberID]
	if !ok || !m.TeamID.Valid || m.TeamID.UUID != teamID {
		return nil, apperrors.NewNotFoundError("member")
	}
	return m, nil
}

func (f *fakeMemberRepo) CreateMember(ctx context.Context, payload dto.CreateMemberDTO) (uuid.UUID, error) {
	return f.add(&entities.TeamMember{Name: payload.Name, Email: payload.Email, IsActive: true}), nil
}

func (f *fakeMemberRepo) UpdateMember(ctx context.Context, id uuid.UUID, payload dto.UpdateMemberDTO) error {
	if _, ok := f.members[id]; !ok {
		return apperrors.NewNotFoundError("member")
	}
	return nil
}

func (f *fakeMemberRepo) DeleteMember(ctx context.Context, id uuid.UUID) error {
	delete(f.members, id)
	return nil
}

func (f *fakeMemberRepo) CountMembers(ctx context.Context) (int64, error) {
	return int64(len(f.members)), nil
}

type fakeCacheRepo struct {
	values map[string]string
}

func newFakeCacheRepo() *fakeCacheRepo {
	return &fakeCacheRepo{values: make(map[string]string)}
}

func (f *fakeCacheRepo) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	switch v := value.(type) {
	case []byte:
		f.values[key] = string(v)
	case string:
		f.values[key] = v
	}
	return nil
}

func (f *fakeCacheRepo) Get(ctx context.Context, key string) (string, error) {
	v, ok := f.values[key]
	if !ok {
		return "", apperrors.ErrNotFound
	}
	return v, nil
}

func (f *fakeCacheRepo) Del(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(f.values, k)
	}
	return nil
}
