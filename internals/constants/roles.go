package constants

// Role user di level klub
const (
	RoleAdmin      = "admin"
	RoleInstructor = "instructor"
	RoleMember     = "member"
)

// AllowedRoles dipakai middleware role check
var AllowedRoles = []string{RoleAdmin, RoleInstructor, RoleMember}
