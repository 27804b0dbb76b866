package entity

// Role is the authorization role attached to an identity.
type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

// ValidRoles returns the set of valid identity roles.
func ValidRoles() []Role {
	return []Role{RoleBuyer, RoleSeller, RoleAdmin}
}

// IsValid checks whether the role is one of the enumerated values.
func (r Role) IsValid() bool {
	switch r {
	case RoleBuyer, RoleSeller, RoleAdmin:
		return true
	}
	return false
}

// NormalizeRole coerces any externally supplied role value into the valid
// set. Unknown values become buyer; the input is never surfaced as an error.
func NormalizeRole(r Role) Role {
	if r.IsValid() {
		return r
	}
	return RoleBuyer
}

// Identity is the current signed-in user as the state layer sees it.
// It is created on login/registration, restored from a persisted snapshot,
// and destroyed on logout.
type Identity struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

// Normalize enforces the role invariant in place and returns the identity
// for chaining.
func (i *Identity) Normalize() *Identity {
	i.Role = NormalizeRole(i.Role)
	return i
}
