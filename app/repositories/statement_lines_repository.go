package repositories

import (
	"context"

	"github.com/davitra/go-backoffice/app/models"
	"gorm.io/gorm"
)

type StatementLineRepositoryImpl interface {
	FindUnreconciledByAccount(ctx context.Context, accountID uint) ([]*models.StatementLine, error)
	SetMatched(ctx context.Context, ids []uint, matched bool) error
	MarkReconciled(ctx context.Context, ids []uint) error
	Create(ctx context.Context, line *models.StatementLine) error
}

type statementLineRepository struct {
	db *gorm.DB
}

func NewStatementLineRepository(db *gorm.DB) StatementLineRepositoryImpl {
	return &statementLineRepository{db}
}

// FindUnreconciledByAccount returns lines in insertion order, which is the
// order the matcher walks them in.
func (s *statementLineRepository) FindUnreconciledByAccount(ctx context.Context, accountID uint) ([]*models.StatementLine, error) {
	var lines []*models.StatementLine
	err := s.db.WithContext(ctx).
		Where("account_id = ? AND reconciled = ?", accountID, false).
		Order("id ASC").
		Find(&lines).Error
	return lines, err
}

func (s *statementLineRepository) SetMatched(ctx context.Context, ids []uint, matched bool) error {
	if len(ids) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Model(&models.StatementLine{}).
		Where("id IN ?", ids).
		Update("matched", matched).Error
}

// MarkReconciled is one-way: reconciled lines never go back.
func (s *statementLineRepository) MarkReconciled(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Model(&models.StatementLine{}).
		Where("id IN ?", ids).
		Updates(map[string]interface{}{"reconciled": true, "matched": false}).Error
}

func (s *statementLineRepository) Create(ctx context.Context, line *models.StatementLine) error {
	return s.db.WithContext(ctx).Create(line).Error
}
