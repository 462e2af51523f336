package model

import (
	"time"

	"github.com/google/uuid"
)

// ClaimModel mirrors the 'venue_claims' table.
type ClaimModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	VenueID   uuid.UUID `gorm:"type:uuid;index;not null"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Message   string    `gorm:"type:text"`
	Status    string    `gorm:"type:varchar(20);index;not null"`
	CreatedAt time.Time
	DecidedAt *time.Time
}

// TableName explicitly sets the table name for GORM.
func (ClaimModel) TableName() string {
	return "venue_claims"
}
