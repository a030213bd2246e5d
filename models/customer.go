package models

import (
	"time"

	"github.com/google/uuid"
)

// Customer is the identity record behind bookings. Phone is the de-facto
// dedup key for auto-resolution; uniqueness is not enforced by the schema.
type Customer struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Phone     string    `gorm:"not null;index" json:"phone"`
	LineID    *string   `gorm:"column:line_id" json:"lineId"`
	Email     *string   `json:"email"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
}
