package models

import (
	"time"

	"github.com/google/uuid"
)

// PurchaseRecord is read-only transaction history surfaced on the customer
// detail view. Written by back-office processes, not by the booking flow.
type PurchaseRecord struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID   uuid.UUID  `gorm:"type:uuid;index;not null" json:"customerId"`
	ServiceID    *uuid.UUID `gorm:"type:uuid" json:"serviceId"`
	ServiceName  string     `gorm:"not null" json:"serviceName"`
	Amount       int        `gorm:"not null" json:"amount"`
	StylistName  *string    `json:"stylistName"`
	Notes        *string    `json:"notes"`
	PurchaseDate time.Time  `json:"purchaseDate"`
}
