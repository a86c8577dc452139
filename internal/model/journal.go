package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineSide holds one side (debit or credit) of a normalized journal line.
type LineSide struct {
	Account        string // ledger account number after e-Tax mapping
	AccountName    string
	SubAccount     string
	SubAccountName string
	Department     string
	DepartmentName string
	TaxCode        string
	TaxName        string
	TaxAmount      decimal.Decimal
	Amount         decimal.Decimal
}

// AmountRow is one normalized journal line: the join of the tidy-GL header,
// amount, sub-account, and department records for a (entry_id, line_no) key.
// A zero Date marks an unparseable transaction date; such rows are kept in
// the amount table but excluded from every downstream aggregation.
type AmountRow struct {
	EntryID     string
	LineNo      int
	Date        time.Time
	Month       Month
	Description string
	Debit       LineSide
	Credit      LineSide
}

// Balanced reports whether debit and credit amounts agree on this row.
func (r AmountRow) Balanced() bool {
	return r.Debit.Amount.Equal(r.Credit.Amount)
}
