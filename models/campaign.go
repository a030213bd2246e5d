package models

import (
	"time"

	"github.com/google/uuid"
)

type MarketingCampaign struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Title         string    `gorm:"not null" json:"title"`
	Description   string    `gorm:"not null" json:"description"`
	DiscountType  *string   `json:"discountType"`
	DiscountValue *string   `json:"discountValue"`
	StartDate     *string   `json:"startDate"`
	EndDate       *string   `json:"endDate"`
	IsActive      bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
}
