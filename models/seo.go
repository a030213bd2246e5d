package models

import (
	"time"

	"github.com/google/uuid"
)

// SeoSetting is keyed by page; writes upsert on the page value.
type SeoSetting struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Page        string    `gorm:"uniqueIndex;not null" json:"page"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"not null" json:"description"`
	Keywords    *string   `json:"keywords"`
	OGImage     *string   `gorm:"column:og_image" json:"ogImage"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
