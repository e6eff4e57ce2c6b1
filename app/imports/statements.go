package imports

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/davitra/go-backoffice/app/models"
	"github.com/davitra/go-backoffice/app/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// StatementRow is one bank or book line from a statement sheet.
type StatementRow struct {
	AccountID   uint   `validate:"required"`
	Source      string `validate:"required,oneof=bank book"`
	Date        *time.Time
	Amount      decimal.Decimal
	Description string
}

// StatementImporter loads statement lines for later reconciliation.
// Unlike the product and user importers this one only appends; statement
// lines have no natural key to upsert by.
type StatementImporter struct {
	lines     repositories.StatementLineRepositoryImpl
	validate  *validator.Validate
	logger    *logrus.Logger
	chunkSize int
}

func NewStatementImporter(
	lines repositories.StatementLineRepositoryImpl,
	logger *logrus.Logger,
	chunkSize int,
) *StatementImporter {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &StatementImporter{
		lines:     lines,
		validate:  validator.New(),
		logger:    logger,
		chunkSize: chunkSize,
	}
}

func NormalizeStatementRow(row Row) StatementRow {
	return StatementRow{
		AccountID:   uint(ParseDecimal(row.Get("account_id")).IntPart()),
		Source:      strings.ToLower(row.Get("source")),
		Date:        ParseDate(row.Get("date")),
		Amount:      ParseDecimal(row.Get("amount")),
		Description: row.Get("description"),
	}
}

func (im *StatementImporter) ImportFile(ctx context.Context, path string) (*Report, error) {
	rows, err := ReadRows(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return im.ImportRows(ctx, rows), nil
}

func (im *StatementImporter) ImportRows(ctx context.Context, rows []Row) *Report {
	report := &Report{TotalRows: len(rows)}

	rowNum := 0
	for _, chunk := range chunkRows(rows, im.chunkSize) {
		for _, row := range chunk {
			rowNum++
			if err := im.importRow(ctx, row); err != nil {
				report.fail(rowNum, "%s", err.Error())
				im.logger.WithFields(logrus.Fields{
					"row":     rowNum,
					"account": row.Get("account_id"),
				}).Warn(err.Error())
				continue
			}
			report.Imported++
		}
	}
	return report
}

func (im *StatementImporter) importRow(ctx context.Context, row Row) error {
	record := NormalizeStatementRow(row)
	if err := im.validate.Struct(record); err != nil {
		return errors.New(validationMessage(err))
	}
	if record.Date == nil {
		return errors.New("date is required")
	}
	if record.Amount.IsZero() {
		return errors.New("amount must be non-zero")
	}

	line := &models.StatementLine{
		AccountID:   record.AccountID,
		Source:      models.LineSource(record.Source),
		LineDate:    *record.Date,
		Amount:      record.Amount,
		Description: record.Description,
	}
	if err := im.lines.Create(ctx, line); err != nil {
		return fmt.Errorf("failed to create statement line: %w", err)
	}
	return nil
}
