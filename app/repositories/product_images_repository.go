package repositories

import (
	"context"

	"github.com/davitra/go-backoffice/app/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductImageRepositoryImpl interface {
	DeleteByProductID(ctx context.Context, productID string) error
	Create(ctx context.Context, image *models.ProductImage) error
}

type productImageRepository struct {
	db *gorm.DB
}

func NewProductImageRepository(db *gorm.DB) ProductImageRepositoryImpl {
	return &productImageRepository{db}
}

func (p *productImageRepository) DeleteByProductID(ctx context.Context, productID string) error {
	return p.db.WithContext(ctx).Where("product_id = ?", productID).Delete(&models.ProductImage{}).Error
}

func (p *productImageRepository) Create(ctx context.Context, image *models.ProductImage) error {
	if image.ID == "" {
		image.ID = uuid.New().String()
	}
	return p.db.WithContext(ctx).Create(image).Error
}
