package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// GeneralLedgerRow is a single-account posting: each AmountRow expands into
// a debit posting and a mirrored credit posting. Opening rows are synthetic
// beginning-of-month balance carriers with zero debit and credit.
type GeneralLedgerRow struct {
	Date           time.Time
	Month          Month
	Account        string
	AccountName    string
	SubAccount     string
	Department     string
	Description    string
	Debit          decimal.Decimal
	Credit         decimal.Decimal
	Balance        decimal.Decimal
	CounterAccount string
	CounterSub     string
	CounterDept    string
	Opening        bool
}

// MonthlyAccountSummary is one trial-balance cell: the activity and
// carry-forward balances of one account in one month.
type MonthlyAccountSummary struct {
	Month        Month
	Account      string
	AccountName  string
	Category     Category
	ETaxCategory string
	Beginning    decimal.Decimal
	Debit        decimal.Decimal
	Credit       decimal.Decimal
	Ending       decimal.Decimal
}
