package model

import (
	"time"

	"github.com/google/uuid"
)

// OfferModel mirrors the 'offers' table.
type OfferModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	VenueID      uuid.UUID `gorm:"type:uuid;index;not null"`
	Title        string    `gorm:"type:varchar(255);not null"`
	Description  string    `gorm:"type:text"`
	Terms        string    `gorm:"type:text"`
	DiscountText string    `gorm:"type:varchar(255)"`
	StartsAt     time.Time
	ExpiresAt    time.Time `gorm:"index"`
	IsActive     bool
	IsPromoted   bool
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (OfferModel) TableName() string {
	return "offers"
}
