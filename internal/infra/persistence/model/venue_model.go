// Package model defines the GORM table mappings for the directory schema.
// Exported so the GORM Gen tool can consume them from cmd/gen.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// VenueModel mirrors the 'venues' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type VenueModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Slug          string    `gorm:"type:varchar(255);unique;not null"`
	Name          string    `gorm:"type:varchar(255);not null"`
	Description   string    `gorm:"type:text"`
	Address       string    `gorm:"type:varchar(255)"`
	Suburb        string    `gorm:"type:varchar(100)"`
	City          string    `gorm:"type:varchar(100);index"`
	State         string    `gorm:"type:varchar(10);index"`
	Postcode      string    `gorm:"type:varchar(10)"`
	Latitude      *float64
	Longitude     *float64
	AgeMin        int
	AgeMax        int
	Indoor        bool
	PriceRange    int
	Facilities    datatypes.JSON `gorm:"type:jsonb"`
	OpeningHours  datatypes.JSON `gorm:"type:jsonb"`
	Status        string         `gorm:"type:varchar(20);index;not null"`
	AverageRating float64
	ReviewCount   int
	FavoriteCount int
	IsPromoted    bool
	OwnerID       *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Categories []VenueCategoryModel `gorm:"foreignKey:VenueID"`
	Offers     []OfferModel         `gorm:"foreignKey:VenueID"`
	Reviews    []ReviewModel        `gorm:"foreignKey:VenueID"`
	Photos     []PhotoModel         `gorm:"foreignKey:VenueID"`
}

// TableName explicitly sets the table name for GORM.
func (VenueModel) TableName() string {
	return "venues"
}

// VenueCategoryModel mirrors the 'venue_categories' join table. Category
// slugs reference the static catalog, not a table.
type VenueCategoryModel struct {
	VenueID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	CategorySlug string    `gorm:"type:varchar(100);primaryKey;index"`
}

// TableName explicitly sets the table name for GORM.
func (VenueCategoryModel) TableName() string {
	return "venue_categories"
}

// PhotoModel mirrors the 'venue_photos' table. Binaries live in blob storage.
type PhotoModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	VenueID    uuid.UUID `gorm:"type:uuid;index;not null"`
	StorageKey string    `gorm:"type:varchar(512);not null"`
	URL        string    `gorm:"type:varchar(1024);not null"`
	Position   int
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (PhotoModel) TableName() string {
	return "venue_photos"
}
