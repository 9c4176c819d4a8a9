package user

import "strings"

// Role is a coarse staff role carried in the session token.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleStaff  Role = "staff"
	RoleViewer Role = "viewer"
)

// ParseRole maps a stored role string onto a Role; unknown values come back
// as ("", false).
func ParseRole(raw string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(raw))) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleStaff:
		return RoleStaff, true
	case RoleViewer:
		return RoleViewer, true
	default:
		return "", false
	}
}

// Principal is the authenticated identity attached to a request.
type Principal struct {
	Username string
	Role     Role
}

// Permissions drives conditional UI. Enforcement happens at the routing
// boundary only; the data layer does not re-check.
type Permissions struct {
	CanEditPlayers bool
}

var rolePermissions = map[Role]Permissions{
	RoleAdmin:  {CanEditPlayers: true},
	RoleStaff:  {CanEditPlayers: true},
	RoleViewer: {CanEditPlayers: false},
}

// PermissionsFor returns the static permission set for a role. Unknown roles
// get the zero value, which permits nothing.
func PermissionsFor(role Role) Permissions {
	return rolePermissions[role]
}

// Credential is one configured account. PasswordHash is a bcrypt hash
// computed at startup from the configured plaintext.
type Credential struct {
	Username     string
	Role         Role
	PasswordHash []byte
}
