package model

import (
	"time"

	"github.com/google/uuid"
)

// NewsletterSubscriptionModel mirrors the 'newsletter_subscriptions' table.
type NewsletterSubscriptionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email     string    `gorm:"type:varchar(255);unique;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (NewsletterSubscriptionModel) TableName() string {
	return "newsletter_subscriptions"
}
