package repositories

import (
	"context"
	"errors"

	"github.com/davitra/go-backoffice/app/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TaxRepositoryImpl interface {
	FindByID(ctx context.Context, id uint) (*models.Tax, error)
	FindByRate(ctx context.Context, rate decimal.Decimal) (*models.Tax, error)
	FindByName(ctx context.Context, name string) (*models.Tax, error)
}

type taxRepository struct {
	db *gorm.DB
}

func NewTaxRepository(db *gorm.DB) TaxRepositoryImpl {
	return &taxRepository{db}
}

func (t *taxRepository) FindByID(ctx context.Context, id uint) (*models.Tax, error) {
	var tax models.Tax
	err := t.db.WithContext(ctx).First(&tax, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tax, nil
}

func (t *taxRepository) FindByRate(ctx context.Context, rate decimal.Decimal) (*models.Tax, error) {
	var tax models.Tax
	err := t.db.WithContext(ctx).Where("rate = ?", rate).First(&tax).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tax, nil
}

func (t *taxRepository) FindByName(ctx context.Context, name string) (*models.Tax, error) {
	var tax models.Tax
	err := t.db.WithContext(ctx).Where("name = ?", name).First(&tax).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tax, nil
}
