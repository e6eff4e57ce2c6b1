package ledger

import (
	"fmt"
	"strings"

	"github.com/davitra/go-backoffice/app/models"
	"github.com/shopspring/decimal"
)

// ValidationError carries every rule a proposed journal violated.
// Violations are collected, not short-circuited, so the caller can show
// the full list at once.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "journal validation failed: " + strings.Join(e.Violations, "; ")
}

// CheckEntries validates the shape and balance of a proposed set of
// journal entries:
//
//  1. total debits must equal total credits
//  2. every entry needs an account
//  3. exactly one of debit/credit must be positive per entry
//  4. an account may appear only once per journal
func CheckEntries(entries []models.JournalEntry) []string {
	var violations []string

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	seenAccounts := map[string]bool{}
	flaggedDupes := map[string]bool{}

	for i, entry := range entries {
		n := i + 1

		if strings.TrimSpace(entry.AccountCode) == "" {
			violations = append(violations, fmt.Sprintf("entry %d: account is required", n))
		} else {
			code := strings.TrimSpace(entry.AccountCode)
			if seenAccounts[code] && !flaggedDupes[code] {
				violations = append(violations, fmt.Sprintf("account %s appears more than once", code))
				flaggedDupes[code] = true
			}
			seenAccounts[code] = true
		}

		debitSet := entry.Debit.IsPositive()
		creditSet := entry.Credit.IsPositive()
		switch {
		case debitSet && creditSet:
			violations = append(violations, fmt.Sprintf("entry %d: set either debit or credit, not both", n))
		case !debitSet && !creditSet:
			violations = append(violations, fmt.Sprintf("entry %d: either debit or credit must have value", n))
		}

		totalDebit = totalDebit.Add(entry.Debit)
		totalCredit = totalCredit.Add(entry.Credit)
	}

	if !totalDebit.Equal(totalCredit) {
		violations = append(violations, fmt.Sprintf("debits (%s) do not equal credits (%s)",
			totalDebit.StringFixed(2), totalCredit.StringFixed(2)))
	}

	return violations
}
