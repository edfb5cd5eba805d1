package authz

// Roles.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// Capabilities. Every protected route declares exactly one of these.
const (
	// Admin only
	TeamsManage     = "teams:manage"
	MembersManage   = "members:manage"
	EquipmentManage = "equipment:manage"
	UsersManage     = "users:manage"
	RequestsViewAll = "requests:view-all"
	RequestsDelete  = "requests:delete"
	ReportsExport   = "reports:export"

	// Admin and member
	DashboardView  = "dashboard:view"
	RequestsView   = "requests:view"
	RequestsCreate = "requests:create"
	RequestsUpdate = "requests:update"
	CalendarView   = "calendar:view"
	ActivityView   = "activity:view"
	ActivityRecord = "activity:record"
	TeamsView      = "teams:view"
	MembersView    = "members:view"
	EquipmentView  = "equipment:view"
)

// rolePermissions is the allow-list per role. Admin is a strict superset of
// member.
var rolePermissions = map[string]map[string]bool{
	RoleAdmin: permissionSet(
		TeamsManage, MembersManage, EquipmentManage, UsersManage,
		RequestsViewAll, RequestsDelete, ReportsExport,
		DashboardView, RequestsView, RequestsCreate, RequestsUpdate,
		CalendarView, ActivityView, ActivityRecord,
		TeamsView, MembersView, EquipmentView,
	),
	RoleMember: permissionSet(
		DashboardView, RequestsView, RequestsCreate, RequestsUpdate,
		CalendarView, ActivityView, ActivityRecord,
		TeamsView, MembersView, EquipmentView,
	),
}

func permissionSet(capabilities ...string) map[string]bool {
	set := make(map[string]bool, len(capabilities))
	for _, c := range capabilities {
		set[c] = true
	}
	return set
}
