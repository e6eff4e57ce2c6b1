package ledger

import (
	"time"

	"github.com/davitra/go-backoffice/app/models"
)

// AutoMatch greedily pairs bank lines with book lines: for each
// unreconciled, unmatched bank line in input order, the first available
// book line on the same account and date with an equal absolute amount
// is taken. Both sides are flagged matched (not reconciled). Returns the
// number of pairs made.
//
// Amount and date must match exactly; there is no tolerance.
func AutoMatch(bank, book []*models.StatementLine) int {
	matched := 0
	for _, b := range bank {
		if b.Reconciled || b.Matched {
			continue
		}
		for _, k := range book {
			if k.Reconciled || k.Matched {
				continue
			}
			if k.AccountID != b.AccountID {
				continue
			}
			if !sameDay(k.LineDate, b.LineDate) {
				continue
			}
			if !k.Amount.Abs().Equal(b.Amount.Abs()) {
				continue
			}
			b.Matched = true
			k.Matched = true
			matched++
			break
		}
	}
	return matched
}

// Reconcile commits every matched line: matched flips off, reconciled
// flips on. Reconciled is terminal, there is no way back. Returns the
// lines that changed.
func Reconcile(lines []*models.StatementLine) []*models.StatementLine {
	var committed []*models.StatementLine
	for _, line := range lines {
		if line.Matched && !line.Reconciled {
			line.Matched = false
			line.Reconciled = true
			committed = append(committed, line)
		}
	}
	return committed
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
