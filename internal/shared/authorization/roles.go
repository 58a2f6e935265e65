package authorization

type UserRole string

const (
	RoleAdmin   UserRole = "Admin"
	RoleManager UserRole = "Manager"
	RoleIT      UserRole = "IT"
	RoleHR      UserRole = "HR"
	RoleStaff   UserRole = "Staff"
)

var validRoles = map[UserRole]bool{
	RoleAdmin:   true,
	RoleManager: true,
	RoleIT:      true,
	RoleHR:      true,
	RoleStaff:   true,
}

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

// IsPrivileged reports whether the role manages tickets on behalf of others.
func (r UserRole) IsPrivileged() bool {
	return r == RoleAdmin || r == RoleManager
}

func (r UserRole) IsValid() bool {
	return validRoles[r]
}

// ParseUserRole maps unknown role strings to Staff.
func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleStaff
}

// AllRoles returns every known role in seniority order.
func AllRoles() []UserRole {
	return []UserRole{RoleAdmin, RoleManager, RoleIT, RoleHR, RoleStaff}
}
