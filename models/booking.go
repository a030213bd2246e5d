package models

import (
	"time"

	"github.com/google/uuid"
)

// Booking statuses. The store accepts any of the four literals over any
// other; the admin UI is what encodes the intended direction.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// ValidStatus reports whether s is one of the four booking statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Booking denormalizes customer/service/staff display names at creation
// time so the record stays readable after the referenced rows are deleted.
type Booking struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID     *uuid.UUID `gorm:"type:uuid;index" json:"customerId"`
	CustomerName   string     `gorm:"not null" json:"customerName"`
	CustomerPhone  string     `gorm:"not null" json:"customerPhone"`
	CustomerLineID *string    `gorm:"column:customer_line_id" json:"customerLineId"`
	ServiceID      *uuid.UUID `gorm:"type:uuid;index" json:"serviceId"`
	ServiceName    string     `gorm:"not null" json:"serviceName"`
	StylistID      *uuid.UUID `gorm:"type:uuid;index" json:"stylistId"`
	StylistName    string     `gorm:"not null" json:"stylistName"`
	AssistantID    *uuid.UUID `gorm:"type:uuid;index" json:"assistantId"`
	AssistantName  *string    `json:"assistantName"`
	BookingDate    string     `gorm:"not null;index" json:"bookingDate"` // yyyy-MM-dd
	BookingTime    string     `gorm:"not null" json:"bookingTime"`       // HH:mm
	Status         string     `gorm:"not null;default:'pending'" json:"status"`
	Notes          *string    `json:"notes"`
	CreatedAt      time.Time  `json:"createdAt"`
}
