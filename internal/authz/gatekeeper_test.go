package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdminIsSupersetOfMember(t *testing.T) {
	for capability := range rolePermissions[RoleMember] {
		assert.True(t, Can(RoleAdmin, capability), "admin must hold member capability %s", capability)
	}
}

func TestMemberDeniedAdminCapabilities(t *testing.T) {
	adminOnly := []string{
		TeamsManage, MembersManage, EquipmentManage, UsersManage,
		RequestsViewAll, RequestsDelete, ReportsExport,
	}
	for _, capability := range adminOnly {
		assert.False(t, Can(RoleMember, capability), "member must not hold %s", capability)
	}
}

func TestMemberSharedCapabilities(t *testing.T) {
	shared := []string{
		DashboardView, RequestsView, RequestsCreate, RequestsUpdate,
		CalendarView, ActivityView, ActivityRecord,
		TeamsView, MembersView, EquipmentView,
	}
	for _, capability := range shared {
		assert.True(t, Can(RoleMember, capability), "member must hold %s", capability)
	}
}

func TestUnknownRoleHasNothing(t *testing.T) {
	assert.False(t, Can("superuser", RequestsView))
	assert.False(t, Can("", RequestsView))
	assert.False(t, KnownRole("superuser"))
	assert.True(t, KnownRole(RoleAdmin))
	assert.True(t, KnownRole(RoleMember))
}
