package format

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

var ac = accounting.Accounting{Symbol: "$", Precision: 2}

// Money renders an amount for logs and CLI output.
func Money(amount decimal.Decimal) string {
	return ac.FormatMoney(amount)
}
