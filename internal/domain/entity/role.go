package entity

// Role represents the type of account a user holds in the directory.
type Role string

const (
	// RoleParent indicates a regular consumer account.
	RoleParent Role = "parent"
	// RoleVenueOwner indicates an account that can submit and manage listings.
	RoleVenueOwner Role = "venue_owner"
	// RoleAdmin indicates a moderator account. Admins are assigned
	// out-of-band; registration never produces one.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleParent, RoleVenueOwner, RoleAdmin:
		return true
	default:
		return false
	}
}

// Registrable reports whether the role may be chosen at sign-up.
func (r Role) Registrable() bool {
	return r == RoleParent || r == RoleVenueOwner
}
