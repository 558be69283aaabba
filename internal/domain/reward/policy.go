package reward

import "brainbox-retailplus/internal/domain/staff"

var approverRoles = map[staff.Role]struct{}{
	staff.RoleGlobalAdmin:   {},
	staff.RoleBusinessOwner: {},
	staff.RoleManager:       {},
	staff.RoleInventory:     {},
	staff.RoleSupervisor:    {},
}

// CanApprove reports whether a staff role is on the approval allow-list.
func CanApprove(role staff.Role) bool {
	_, ok := approverRoles[role]
	return ok
}

// ApproverRoles lists the allow-list, for route guards that need it up front.
func ApproverRoles() []staff.Role {
	return []staff.Role{
		staff.RoleGlobalAdmin,
		staff.RoleBusinessOwner,
		staff.RoleManager,
		staff.RoleInventory,
		staff.RoleSupervisor,
	}
}
