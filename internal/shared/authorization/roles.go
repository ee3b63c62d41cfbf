// Package authorization defines the two-role access model: agents are
// internal staff with full rights, demandeurs are customer-side users
// with read/comment/create-request rights.
package authorization

type UserRole string

const (
	RoleAgent     UserRole = "agent"
	RoleDemandeur UserRole = "demandeur"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAgent() bool {
	return r == RoleAgent
}

func (r UserRole) IsDemandeur() bool {
	return r == RoleDemandeur
}

func (r UserRole) IsValid() bool {
	return r == RoleAgent || r == RoleDemandeur
}

// ParseUserRole parses a role string, defaulting to the restricted
// demandeur role for anything unknown.
func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleDemandeur
}

// Actor identifies the authenticated caller of an operation.
type Actor struct {
	ID   string
	Name string
	Role UserRole
}
