package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID              string          `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Name            string          `gorm:"size:255;not null"`
	Slug            string          `gorm:"size:255;not null;uniqueIndex"`
	Sku             string          `gorm:"size:100;not null;uniqueIndex"`
	Description     string          `gorm:"type:text"`
	Price           decimal.Decimal `gorm:"type:decimal(16,2);not null"`
	AgentPrice      decimal.Decimal `gorm:"type:decimal(16,2);default:0.00"`
	WholesalerPrice decimal.Decimal `gorm:"type:decimal(16,2);default:0.00"`
	ComparePrice    decimal.Decimal `gorm:"type:decimal(16,2);default:0.00"`
	CostPrice       decimal.Decimal `gorm:"type:decimal(16,2);default:0.00"`
	Weight          decimal.Decimal `gorm:"type:decimal(10,2);default:0.00"`
	Length          decimal.Decimal `gorm:"type:decimal(10,2);default:0.00"`
	Width           decimal.Decimal `gorm:"type:decimal(10,2);default:0.00"`
	Height          decimal.Decimal `gorm:"type:decimal(10,2);default:0.00"`
	Quantity        int             `gorm:"not null;default:0"`
	TotalQuantity   int             `gorm:"not null;default:0"`
	TrackQuantity   bool            `gorm:"not null;default:false"`
	IsActive        bool            `gorm:"not null;default:true"`
	PublishedAt     *time.Time
	CategoryID      *uint     `gorm:"index"`
	Category        *Category `gorm:"foreignKey:CategoryID"`
	BrandID         *uint     `gorm:"index"`
	Brand           *Brand    `gorm:"foreignKey:BrandID"`
	TaxID           *uint     `gorm:"index"`
	Tax             *Tax      `gorm:"foreignKey:TaxID"`
	Sizes           OptionList      `gorm:"type:json"`
	Colors          OptionList      `gorm:"type:json"`
	Materials       OptionList      `gorm:"type:json"`
	Variations      VariationList   `gorm:"type:json"`
	Metadata        MetaMap         `gorm:"type:json"`
	ProductImages   []ProductImage
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

// StockLevel keeps per-warehouse quantity rows. TotalQuantity on the
// product is recomputed from these when track_quantity is on.
type StockLevel struct {
	ID        uint   `gorm:"primaryKey"`
	ProductID string `gorm:"size:36;index;not null"`
	Warehouse string `gorm:"size:100;not null"`
	Quantity  int    `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Option is one selectable attribute value (size, color, material).
// Stored as a JSON array so input order survives the round trip.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type OptionList []Option

func (l OptionList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return nil, nil
	}
	return json.Marshal(l)
}

func (l *OptionList) Scan(src interface{}) error {
	return scanJSON(src, l)
}

// Variation is one attribute group from the import sheet, e.g.
// size:S,M,L parsed into {Name: "size", Values: ["S","M","L"]}.
type Variation struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

type VariationList []Variation

func (l VariationList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return nil, nil
	}
	return json.Marshal(l)
}

func (l *VariationList) Scan(src interface{}) error {
	return scanJSON(src, l)
}

type MetaMap map[string]string

func (m MetaMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return nil, nil
	}
	return json.Marshal(m)
}

func (m *MetaMap) Scan(src interface{}) error {
	return scanJSON(src, m)
}

func scanJSON(src, dest interface{}) error {
	if src == nil {
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("unsupported json column type %T", src)
	}
}
