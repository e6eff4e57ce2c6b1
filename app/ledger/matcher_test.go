package ledger

import (
	"testing"
	"time"

	"github.com/davitra/go-backoffice/app/models"
	"github.com/shopspring/decimal"
)

func line(account uint, source models.LineSource, day string, amount float64) *models.StatementLine {
	d, _ := time.Parse("2006-01-02", day)
	return &models.StatementLine{
		AccountID: account,
		Source:    source,
		LineDate:  d,
		Amount:    decimal.NewFromFloat(amount),
	}
}

func TestAutoMatchSameAmountAndDate(t *testing.T) {
	bank := []*models.StatementLine{line(1, models.LineSourceBank, "2025-10-01", 500)}
	book := []*models.StatementLine{line(1, models.LineSourceBook, "2025-10-01", 500)}

	if n := AutoMatch(bank, book); n != 1 {
		t.Fatalf("expected 1 pair, got %d", n)
	}
	if !bank[0].Matched || !book[0].Matched {
		t.Error("both sides should be flagged matched")
	}
	if bank[0].Reconciled || book[0].Reconciled {
		t.Error("auto-match must not reconcile")
	}
}

func TestAutoMatchDifferentDate(t *testing.T) {
	bank := []*models.StatementLine{line(1, models.LineSourceBank, "2025-10-01", 500)}
	book := []*models.StatementLine{line(1, models.LineSourceBook, "2025-10-03", 500)}

	if n := AutoMatch(bank, book); n != 0 {
		t.Fatalf("expected no pairs, got %d", n)
	}
	if bank[0].Matched || book[0].Matched {
		t.Error("lines with different dates must not match")
	}
}

func TestAutoMatchDifferentAccount(t *testing.T) {
	bank := []*models.StatementLine{line(1, models.LineSourceBank, "2025-10-01", 500)}
	book := []*models.StatementLine{line(2, models.LineSourceBook, "2025-10-01", 500)}

	if n := AutoMatch(bank, book); n != 0 {
		t.Errorf("expected no pairs across accounts, got %d", n)
	}
}

func TestAutoMatchOppositeSigns(t *testing.T) {
	// a bank debit against a book credit of the same magnitude pairs up
	bank := []*models.StatementLine{line(1, models.LineSourceBank, "2025-10-01", -500)}
	book := []*models.StatementLine{line(1, models.LineSourceBook, "2025-10-01", 500)}

	if n := AutoMatch(bank, book); n != 1 {
		t.Errorf("expected absolute amounts to match, got %d pairs", n)
	}
}

func TestAutoMatchConsumesBookLineOnce(t *testing.T) {
	bank := []*models.StatementLine{
		line(1, models.LineSourceBank, "2025-10-01", 500),
		line(1, models.LineSourceBank, "2025-10-01", 500),
	}
	book := []*models.StatementLine{line(1, models.LineSourceBook, "2025-10-01", 500)}

	if n := AutoMatch(bank, book); n != 1 {
		t.Fatalf("expected 1 pair, got %d", n)
	}
	if bank[0].Matched == bank[1].Matched {
		t.Error("exactly one bank line should have matched")
	}
}

func TestAutoMatchSkipsReconciled(t *testing.T) {
	bank := []*models.StatementLine{line(1, models.LineSourceBank, "2025-10-01", 500)}
	book := []*models.StatementLine{line(1, models.LineSourceBook, "2025-10-01", 500)}
	book[0].Reconciled = true

	if n := AutoMatch(bank, book); n != 0 {
		t.Errorf("reconciled lines must be skipped, got %d pairs", n)
	}
}

func TestReconcileCommitsMatchedLines(t *testing.T) {
	matched := line(1, models.LineSourceBank, "2025-10-01", 500)
	matched.Matched = true
	untouched := line(1, models.LineSourceBook, "2025-10-02", 100)
	already := line(1, models.LineSourceBook, "2025-10-01", 500)
	already.Reconciled = true

	committed := Reconcile([]*models.StatementLine{matched, untouched, already})

	if len(committed) != 1 || committed[0] != matched {
		t.Fatalf("expected only the matched line to commit, got %d", len(committed))
	}
	if !matched.Reconciled || matched.Matched {
		t.Error("committed line should be reconciled and no longer matched")
	}
	if untouched.Reconciled {
		t.Error("unmatched line must stay untouched")
	}
}
