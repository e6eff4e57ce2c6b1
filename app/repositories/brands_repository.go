package repositories

import (
	"context"
	"errors"

	"github.com/davitra/go-backoffice/app/models"
	"gorm.io/gorm"
)

type BrandRepositoryImpl interface {
	FindByID(ctx context.Context, id uint) (*models.Brand, error)
	FindByNameOrSlug(ctx context.Context, name string, slugName string) (*models.Brand, error)
	Create(ctx context.Context, brand *models.Brand) error
}

type brandRepository struct {
	db *gorm.DB
}

func NewBrandRepository(db *gorm.DB) BrandRepositoryImpl {
	return &brandRepository{db}
}

func (b *brandRepository) FindByID(ctx context.Context, id uint) (*models.Brand, error) {
	var brand models.Brand
	err := b.db.WithContext(ctx).First(&brand, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &brand, nil
}

func (b *brandRepository) FindByNameOrSlug(ctx context.Context, name string, slugName string) (*models.Brand, error) {
	var brand models.Brand
	err := b.db.WithContext(ctx).Where("name = ? OR slug = ?", name, slugName).First(&brand).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &brand, nil
}

func (b *brandRepository) Create(ctx context.Context, brand *models.Brand) error {
	return b.db.WithContext(ctx).Create(brand).Error
}
