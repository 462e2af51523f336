package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core account entity. Credentials are handled by the
// persistence layer; the entity only carries identity and the profile.
type User struct {
	ID        uuid.UUID
	Email     string
	Profile   *Profile // Always present once registration completes.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Profile holds the user-visible account data shown beside reviews and in
// the dashboard.
type Profile struct {
	UserID      uuid.UUID
	DisplayName string
	Role        Role
	UpdatedAt   time.Time
}

// IsAdmin reports whether the profile belongs to a moderator.
func (p *Profile) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}

// IsVenueOwner reports whether the profile may manage listings.
func (p *Profile) IsVenueOwner() bool {
	return p != nil && p.Role == RoleVenueOwner
}
