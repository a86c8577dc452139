package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/tidygl-dev/tidygl/internal/model"
)

// SubAccountSummary is the monthly activity of one (account, sub-account)
// pair, summed over both posting sides.
type SubAccountSummary struct {
	Month          model.Month
	Account        string
	AccountName    string
	SubAccount     string
	SubAccountName string
	Debit          decimal.Decimal
	Credit         decimal.Decimal
}

// DepartmentSummary is the monthly activity of one (account, department)
// pair.
type DepartmentSummary struct {
	Month          model.Month
	Account        string
	AccountName    string
	Department     string
	DepartmentName string
	Debit          decimal.Decimal
	Credit         decimal.Decimal
}

type breakdownKey struct {
	month   model.Month
	account string
	code    string
}

// BuildSubAccountSummary sums debit and credit activity per (month, account,
// sub-account). Rows without a transaction date or without a sub-account on
// the given side contribute nothing.
func BuildSubAccountSummary(rows []model.AmountRow) []SubAccountSummary {
	cells := make(map[breakdownKey]*SubAccountSummary)
	var order []breakdownKey

	add := func(month model.Month, side model.LineSide, debit bool) {
		if side.Account == "" || side.SubAccount == "" {
			return
		}
		k := breakdownKey{month: month, account: side.Account, code: side.SubAccount}
		cell := cells[k]
		if cell == nil {
			cell = &SubAccountSummary{
				Month:          month,
				Account:        side.Account,
				AccountName:    side.AccountName,
				SubAccount:     side.SubAccount,
				SubAccountName: side.SubAccountName,
			}
			cells[k] = cell
			order = append(order, k)
		}
		if debit {
			cell.Debit = cell.Debit.Add(side.Amount)
		} else {
			cell.Credit = cell.Credit.Add(side.Amount)
		}
	}

	for _, row := range rows {
		if row.Date.IsZero() {
			continue
		}
		add(row.Month, row.Debit, true)
		add(row.Month, row.Credit, false)
	}

	sort.SliceStable(order, func(i, j int) bool {
		a, b := order[i], order[j]
		if a.month != b.month {
			return a.month.Before(b.month)
		}
		if a.account != b.account {
			return a.account < b.account
		}
		return a.code < b.code
	})

	out := make([]SubAccountSummary, 0, len(order))
	for _, k := range order {
		out = append(out, *cells[k])
	}
	return out
}

// BuildDepartmentSummary is the department counterpart of
// BuildSubAccountSummary.
func BuildDepartmentSummary(rows []model.AmountRow) []DepartmentSummary {
	cells := make(map[breakdownKey]*DepartmentSummary)
	var order []breakdownKey

	add := func(month model.Month, side model.LineSide, debit bool) {
		if side.Account == "" || side.Department == "" {
			return
		}
		k := breakdownKey{month: month, account: side.Account, code: side.Department}
		cell := cells[k]
		if cell == nil {
			cell = &DepartmentSummary{
				Month:          month,
				Account:        side.Account,
				AccountName:    side.AccountName,
				Department:     side.Department,
				DepartmentName: side.DepartmentName,
			}
			cells[k] = cell
			order = append(order, k)
		}
		if debit {
			cell.Debit = cell.Debit.Add(side.Amount)
		} else {
			cell.Credit = cell.Credit.Add(side.Amount)
		}
	}

	for _, row := range rows {
		if row.Date.IsZero() {
			continue
		}
		add(row.Month, row.Debit, true)
		add(row.Month, row.Credit, false)
	}

	sort.SliceStable(order, func(i, j int) bool {
		a, b := order[i], order[j]
		if a.month != b.month {
			return a.month.Before(b.month)
		}
		if a.account != b.account {
			return a.account < b.account
		}
		return a.code < b.code
	})

	out := make([]DepartmentSummary, 0, len(order))
	for _, k := range order {
		out = append(out, *cells[k])
	}
	return out
}
