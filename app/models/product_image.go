package models

import "time"

type ProductImage struct {
	ID        string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	ProductID string `gorm:"size:36;index;not null"`
	URL       string `gorm:"size:500;not null"`
	SortOrder int    `gorm:"not null;default:0"`
	IsDefault bool   `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
