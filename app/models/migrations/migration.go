package migrations

import (
	"github.com/davitra/go-backoffice/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Category{},
		&models.Brand{},
		&models.Tax{},
		&models.Product{},
		&models.ProductImage{},
		&models.StockLevel{},
		&models.User{},
		&models.Role{},
		&models.Journal{},
		&models.JournalEntry{},
		&models.StatementLine{},
	)
}
