package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Tax struct {
	ID        uint            `gorm:"primaryKey"`
	Name      string          `gorm:"size:100;not null;uniqueIndex"`
	Rate      decimal.Decimal `gorm:"type:decimal(10,4);default:0"`
	IsActive  bool            `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
