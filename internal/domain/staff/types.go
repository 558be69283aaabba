package staff

type Role string

const (
	RoleGlobalAdmin   Role = "global_admin"
	RoleBusinessOwner Role = "business_owner"
	RoleManager       Role = "manager"
	RoleInventory     Role = "inventory"
	RoleSupervisor    Role = "supervisor"
	RoleCashier       Role = "cashier"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleGlobalAdmin, RoleBusinessOwner, RoleManager, RoleInventory, RoleSupervisor, RoleCashier:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
