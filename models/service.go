package models

import (
	"time"

	"github.com/google/uuid"
)

// Service price is stored in the smallest currency unit. PriceNote carries
// qualifiers like "起" (starting from).
type Service struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `gorm:"not null" json:"description"`
	Price       int       `gorm:"not null" json:"price"`
	PriceNote   *string   `json:"priceNote"`
	Duration    *int      `json:"duration"` // minutes
	IsActive    bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}
