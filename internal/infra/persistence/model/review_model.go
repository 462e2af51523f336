package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewModel mirrors the 'reviews' table. The composite unique index
// enforces one review per (venue, user) pair.
type ReviewModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	VenueID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uniq_review_venue_user"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uniq_review_venue_user"`
	Rating        int       `gorm:"not null"`
	Title         string    `gorm:"type:varchar(255)"`
	Comment       string    `gorm:"type:text"`
	OwnerResponse string    `gorm:"type:text"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}

// FavoriteModel mirrors the 'favorites' join table. The composite primary
// key makes a concurrent double-toggle a unique constraint violation.
type FavoriteModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	VenueID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "favorites"
}
