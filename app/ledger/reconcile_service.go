package ledger

import (
	"context"
	"fmt"

	"github.com/davitra/go-backoffice/app/models"
	"github.com/davitra/go-backoffice/app/repositories"
	"github.com/sirupsen/logrus"
)

// ReconcileService runs the matcher over persisted statement lines and
// commits the resulting flags back to the store.
type ReconcileService struct {
	lines  repositories.StatementLineRepositoryImpl
	logger *logrus.Logger
}

func NewReconcileService(lines repositories.StatementLineRepositoryImpl, logger *logrus.Logger) *ReconcileService {
	return &ReconcileService{lines: lines, logger: logger}
}

// AutoMatch loads the account's unreconciled lines, pairs them up and
// persists the matched flags. Returns the number of pairs.
func (s *ReconcileService) AutoMatch(ctx context.Context, accountID uint) (int, error) {
	lines, err := s.lines.FindUnreconciledByAccount(ctx, accountID)
	if err != nil {
		return 0, fmt.Errorf("failed to load statement lines: %w", err)
	}

	var bank, book []*models.StatementLine
	for _, line := range lines {
		if line.Source == models.LineSourceBank {
			bank = append(bank, line)
		} else {
			book = append(book, line)
		}
	}

	pairs := AutoMatch(bank, book)
	if pairs == 0 {
		return 0, nil
	}

	var matchedIDs []uint
	for _, line := range lines {
		if line.Matched {
			matchedIDs = append(matchedIDs, line.ID)
		}
	}
	if err := s.lines.SetMatched(ctx, matchedIDs, true); err != nil {
		return 0, fmt.Errorf("failed to persist matches: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"account": accountID,
		"pairs":   pairs,
	}).Info("auto-match pass complete")

	return pairs, nil
}

// SetMatched toggles the working flag on a single line, for manual
// match/unmatch ahead of a commit.
func (s *ReconcileService) SetMatched(ctx context.Context, lineID uint, matched bool) error {
	return s.lines.SetMatched(ctx, []uint{lineID}, matched)
}

// Commit reconciles every currently matched line on the account. This is
// one-way; committed lines never come back into the working set.
func (s *ReconcileService) Commit(ctx context.Context, accountID uint) (int, error) {
	lines, err := s.lines.FindUnreconciledByAccount(ctx, accountID)
	if err != nil {
		return 0, fmt.Errorf("failed to load statement lines: %w", err)
	}

	committed := Reconcile(lines)
	ids := make([]uint, 0, len(committed))
	for _, line := range committed {
		ids = append(ids, line.ID)
	}
	if err := s.lines.MarkReconciled(ctx, ids); err != nil {
		return 0, fmt.Errorf("failed to mark lines reconciled: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"account": accountID,
		"lines":   len(ids),
	}).Info("reconciliation committed")

	return len(ids), nil
}
