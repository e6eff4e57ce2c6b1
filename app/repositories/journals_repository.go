package repositories

import (
	"context"

	"github.com/davitra/go-backoffice/app/models"
	"gorm.io/gorm"
)

type JournalRepositoryImpl interface {
	NextSequence(ctx context.Context) (int64, error)
	Create(ctx context.Context, journal *models.Journal) error
	FindByID(ctx context.Context, id uint) (*models.Journal, error)
}

type journalRepository struct {
	db *gorm.DB
}

func NewJournalRepository(db *gorm.DB) JournalRepositoryImpl {
	return &journalRepository{db}
}

func (j *journalRepository) NextSequence(ctx context.Context) (int64, error) {
	var max *int64
	err := j.db.WithContext(ctx).Model(&models.Journal{}).
		Select("MAX(sequence_no)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if max == nil {
		return 1, nil
	}
	return *max + 1, nil
}

// Create writes the journal and its entries in one transaction.
func (j *journalRepository) Create(ctx context.Context, journal *models.Journal) error {
	return j.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(journal).Error
	})
}

func (j *journalRepository) FindByID(ctx context.Context, id uint) (*models.Journal, error) {
	var journal models.Journal
	err := j.db.WithContext(ctx).Preload("Entries").First(&journal, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &journal, nil
}
