package models

import (
	"time"

	"github.com/google/uuid"
)

// Staff roles. Exactly two values, used to partition staff into the
// designer and assistant pools for assignment UIs.
const (
	RoleDesigner  = "designer"
	RoleAssistant = "assistant"
)

// ValidRole reports whether r is one of the two staff roles.
func ValidRole(r string) bool {
	return r == RoleDesigner || r == RoleAssistant
}

type Staff struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name              string    `gorm:"not null" json:"name"`
	Role              string    `gorm:"not null;index" json:"role"`
	Email             *string   `json:"email"`
	Phone             *string   `json:"phone"`
	Specialty         *string   `json:"specialty"`
	YearsOfExperience *int      `json:"yearsOfExperience"`
	PhotoURL          *string   `gorm:"column:photo_url" json:"photoUrl"`
	IsActive          bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt         time.Time `json:"createdAt"`
}
