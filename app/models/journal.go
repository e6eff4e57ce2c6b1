package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type JournalStatus string

const (
	JournalStatusDraft  JournalStatus = "draft"
	JournalStatusPosted JournalStatus = "posted"
)

type Journal struct {
	ID            uint            `gorm:"primary_key" json:"id"`
	JournalNumber string          `gorm:"size:50;not null;uniqueIndex" json:"journal_number"`
	SequenceNo    int64           `gorm:"not null" json:"sequence_no"`
	JournalDate   time.Time       `gorm:"not null" json:"journal_date"`
	Notes         string          `gorm:"type:text" json:"notes"`
	Status        JournalStatus   `gorm:"size:20;not null;default:'draft'" json:"status"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"total_amount"`
	Entries       []JournalEntry  `gorm:"foreignKey:JournalID" json:"entries"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type JournalEntry struct {
	ID          uint            `gorm:"primary_key" json:"id"`
	JournalID   uint            `gorm:"index;not null" json:"journal_id"`
	AccountCode string          `gorm:"size:50;not null" json:"account_code"`
	Description string          `gorm:"size:255" json:"description"`
	Debit       decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"debit"`
	Credit      decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"credit"`
}

type LineSource string

const (
	LineSourceBank LineSource = "bank"
	LineSourceBook LineSource = "book"
)

// StatementLine is one side of a bank reconciliation: either a line from
// the bank statement or a line from the books. Matched is a working flag;
// Reconciled is terminal.
type StatementLine struct {
	ID          uint            `gorm:"primary_key" json:"id"`
	AccountID   uint            `gorm:"index;not null" json:"account_id"`
	Source      LineSource      `gorm:"size:10;not null" json:"source"`
	LineDate    time.Time       `gorm:"not null" json:"line_date"`
	Amount      decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"amount"`
	Description string          `gorm:"size:255" json:"description"`
	Matched     bool            `gorm:"not null;default:false" json:"matched"`
	Reconciled  bool            `gorm:"not null;default:false" json:"reconciled"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
