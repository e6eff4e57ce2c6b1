package repositories

import (
	"context"
	"errors"

	"github.com/davitra/go-backoffice/app/models"
	"gorm.io/gorm"
)

type CategoryRepositoryImpl interface {
	FindByID(ctx context.Context, id uint) (*models.Category, error)
	FindByNameOrSlug(ctx context.Context, name string, slugName string) (*models.Category, error)
	Create(ctx context.Context, category *models.Category) error
	GetAll(ctx context.Context) ([]models.Category, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepositoryImpl {
	return &categoryRepository{db}
}

func (c *categoryRepository) FindByID(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	err := c.db.WithContext(ctx).First(&category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (c *categoryRepository) FindByNameOrSlug(ctx context.Context, name string, slugName string) (*models.Category, error) {
	var category models.Category
	err := c.db.WithContext(ctx).Where("name = ? OR slug = ?", name, slugName).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (c *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	return c.db.WithContext(ctx).Create(category).Error
}

func (c *categoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := c.db.WithContext(ctx).Order("name ASC").Find(&categories).Error
	return categories, err
}
