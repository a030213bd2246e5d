package models

import "github.com/google/uuid"

// User is an admin account. Password holds a bcrypt hash and is never
// serialized.
type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Username string    `gorm:"uniqueIndex;not null" json:"username"`
	Password string    `gorm:"not null" json:"-"`
}
