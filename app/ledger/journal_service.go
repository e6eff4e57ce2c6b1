package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/davitra/go-backoffice/app/models"
	"github.com/davitra/go-backoffice/app/repositories"
	"github.com/davitra/go-backoffice/app/utils/format"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type NewJournal struct {
	JournalDate time.Time
	Notes       string
	Entries     []models.JournalEntry
}

// JournalService posts manual journals. A proposal either passes every
// balance/shape check and is persisted as posted, or nothing is written
// and the violations come back as a ValidationError.
type JournalService struct {
	journals repositories.JournalRepositoryImpl
	logger   *logrus.Logger
}

func NewJournalService(journals repositories.JournalRepositoryImpl, logger *logrus.Logger) *JournalService {
	return &JournalService{journals: journals, logger: logger}
}

func (s *JournalService) Post(ctx context.Context, input NewJournal) (*models.Journal, error) {
	if violations := CheckEntries(input.Entries); len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}

	totalAmount := decimal.Zero
	for _, entry := range input.Entries {
		totalAmount = totalAmount.Add(entry.Debit)
	}

	seqNo, err := s.journals.NextSequence(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get journal sequence: %w", err)
	}

	journal := &models.Journal{
		JournalNumber: fmt.Sprintf("JRN-%06d", seqNo),
		SequenceNo:    seqNo,
		JournalDate:   input.JournalDate,
		Notes:         input.Notes,
		Status:        models.JournalStatusPosted,
		TotalAmount:   totalAmount,
		Entries:       input.Entries,
	}

	if err := s.journals.Create(ctx, journal); err != nil {
		return nil, fmt.Errorf("failed to post journal: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"journal": journal.JournalNumber,
		"total":   format.Money(journal.TotalAmount),
		"entries": len(journal.Entries),
	}).Info("journal posted")

	return journal, nil
}
