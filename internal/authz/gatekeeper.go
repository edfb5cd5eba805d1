package authz

// Can reports whether the given role is on the capability's allow-list. An
// unknown role has no capabilities.
func Can(role, capability string) bool {
	perms, ok := rolePermissions[role]
	if !ok {
		return false
	}
	return perms[capability]
}

// KnownRole reports whether the role exists at all; used by signup validation.
func KnownRole(role string) bool {
	_, ok := rolePermissions[role]
	return ok
}
