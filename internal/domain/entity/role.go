package entity

import "slices"

// Role is an authorization grant carried in access token claims.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin" // moderators, i.e. profiles with is_admin
)

func (r Role) known() bool {
	return r == RoleUser || r == RoleAdmin
}

// Roles is the set of grants of one caller.
type Roles []Role

func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// Claims renders the roles for a token payload.
func (rs Roles) Claims() []string {
	claims := make([]string, 0, len(rs))
	for _, r := range rs {
		claims = append(claims, string(r))
	}

	return claims
}

// ParseRoles reads roles back from token claims. Unknown and repeated values are dropped,
// so a token minted with a retired role grants nothing extra.
func ParseRoles(claims []string) Roles {
	roles := make(Roles, 0, len(claims))
	for _, c := range claims {
		role := Role(c)
		if role.known() && !roles.Contains(role) {
			roles = append(roles, role)
		}
	}

	return roles
}
