package seeders

import (
	"github.com/davitra/go-backoffice/app/db/fakers"
	"github.com/davitra/go-backoffice/app/models"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func DBSeed(db *gorm.DB) error {
	category := &models.Category{Name: "Apparel", Slug: slug.Make("Apparel"), IsActive: true}
	if err := db.FirstOrCreate(category, "name = ?", category.Name).Error; err != nil {
		return err
	}
	brand := &models.Brand{Name: "Acme", Slug: slug.Make("Acme"), IsActive: true}
	if err := db.FirstOrCreate(brand, "name = ?", brand.Name).Error; err != nil {
		return err
	}
	tax := &models.Tax{Name: "VAT", Rate: decimal.NewFromInt(12), IsActive: true}
	if err := db.FirstOrCreate(tax, "name = ?", tax.Name).Error; err != nil {
		return err
	}
	role := &models.Role{Name: models.DefaultRoleName, Slug: slug.Make(models.DefaultRoleName), GuardName: models.RoleGuard}
	if err := db.FirstOrCreate(role, "name = ?", role.Name).Error; err != nil {
		return err
	}

	for i := 0; i < 10; i++ {
		if err := db.Create(fakers.ProductFaker(category, brand)).Error; err != nil {
			return err
		}
	}
	for i := 0; i < 5; i++ {
		user := fakers.UserFaker()
		if err := db.Create(user).Error; err != nil {
			return err
		}
		if err := db.Model(user).Association("Roles").Append(role); err != nil {
			return err
		}
	}
	return nil
}
