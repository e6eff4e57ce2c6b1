package repositories

import (
	"context"
	"errors"

	"github.com/davitra/go-backoffice/app/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductRepositoryImpl interface {
	FindBySkuWithDeleted(ctx context.Context, sku string) (*models.Product, error)
	FindBySlug(ctx context.Context, slug string) (*models.Product, error)
	SlugExists(ctx context.Context, slug string, excludeID string) (bool, error)
	Create(ctx context.Context, product *models.Product) error
	Save(ctx context.Context, product *models.Product) error
	Restore(ctx context.Context, id string) error
	RecountTotalQuantity(ctx context.Context, id string) error
	GetPaginated(ctx context.Context, limit, offset int) ([]models.Product, int64, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepositoryImpl {
	return &productRepository{db}
}

// FindBySkuWithDeleted also returns soft-deleted rows so an import can
// restore a previously removed product instead of creating a duplicate.
func (p *productRepository) FindBySkuWithDeleted(ctx context.Context, sku string) (*models.Product, error) {
	var product models.Product
	err := p.db.WithContext(ctx).Unscoped().Where("sku = ?", sku).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (p *productRepository) FindBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	err := p.db.WithContext(ctx).
		Preload("Category").
		Preload("Brand").
		Preload("ProductImages").
		Where("slug = ?", slug).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// SlugExists checks active and soft-deleted rows since the slug column is
// unique across both.
func (p *productRepository) SlugExists(ctx context.Context, slug string, excludeID string) (bool, error) {
	var count int64
	query := p.db.WithContext(ctx).Unscoped().Model(&models.Product{}).Where("slug = ?", slug)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (p *productRepository) Create(ctx context.Context, product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	return p.db.WithContext(ctx).Create(product).Error
}

func (p *productRepository) Save(ctx context.Context, product *models.Product) error {
	return p.db.WithContext(ctx).Save(product).Error
}

func (p *productRepository) Restore(ctx context.Context, id string) error {
	return p.db.WithContext(ctx).Unscoped().Model(&models.Product{}).
		Where("id = ?", id).
		Update("deleted_at", nil).Error
}

func (p *productRepository) RecountTotalQuantity(ctx context.Context, id string) error {
	var total int64
	err := p.db.WithContext(ctx).Model(&models.StockLevel{}).
		Where("product_id = ?", id).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&total).Error
	if err != nil {
		return err
	}
	return p.db.WithContext(ctx).Model(&models.Product{}).
		Where("id = ?", id).
		Update("total_quantity", total).Error
}

func (p *productRepository) GetPaginated(ctx context.Context, limit, offset int) ([]models.Product, int64, error) {
	var products []models.Product
	var total int64

	if err := p.db.WithContext(ctx).Model(&models.Product{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := p.db.WithContext(ctx).
		Preload("Category").
		Preload("Brand").
		Preload("ProductImages").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&products).Error

	return products, total, err
}
