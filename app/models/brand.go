package models

import (
	"time"

	"gorm.io/gorm"
)

type Brand struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100;not null;uniqueIndex"`
	Slug      string `gorm:"size:100;not null;uniqueIndex"`
	IsActive  bool   `gorm:"not null;default:true"`
	Products  []Product
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
