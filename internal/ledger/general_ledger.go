package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/tidygl-dev/tidygl/internal/model"
	"github.com/tidygl-dev/tidygl/internal/refdata"
	"github.com/tidygl-dev/tidygl/internal/report"
)

// BuildGeneralLedger expands normalized amount rows into double-entry
// postings sorted by (date, account) with a running balance per account.
// Synthetic opening rows carry each balance across month boundaries.
func BuildGeneralLedger(rows []model.AmountRow, balances refdata.Balances, accounts *refdata.AccountMap, rep *report.Report) []model.GeneralLedgerRow {
	unified := unifyEntries(rows, rep)
	postings := expandPostings(unified)

	// Rows whose transaction date could not be parsed are excluded here.
	kept := postings[:0]
	for _, p := range postings {
		if !p.Date.IsZero() {
			kept = append(kept, p)
		}
	}
	postings = kept

	sort.SliceStable(postings, func(i, j int) bool {
		if !postings[i].Date.Equal(postings[j].Date) {
			return postings[i].Date.Before(postings[j].Date)
		}
		return postings[i].Account < postings[j].Account
	})

	return applyRunningBalances(postings, balances, accounts, rep)
}

// unifyEntries gives every row of a compound entry a well-defined
// counterpart: the side whose first-row amount equals the entry's total on
// that side is dominant, and its account, sub-account, and department are
// copied onto every row. Unbalanced entries are reported but kept.
func unifyEntries(rows []model.AmountRow, rep *report.Report) []model.AmountRow {
	groups := make(map[string][]int)
	var order []string
	for i, r := range rows {
		if _, seen := groups[r.EntryID]; !seen {
			order = append(order, r.EntryID)
		}
		groups[r.EntryID] = append(groups[r.EntryID], i)
	}

	out := make([]model.AmountRow, len(rows))
	copy(out, rows)

	for _, entry := range order {
		idx := groups[entry]
		totalDebit := decimal.Zero
		totalCredit := decimal.Zero
		for _, i := range idx {
			totalDebit = totalDebit.Add(out[i].Debit.Amount)
			totalCredit = totalCredit.Add(out[i].Credit.Amount)
		}
		if !totalDebit.Equal(totalCredit) {
			rep.Add(report.KindBalanceMismatch, entry,
				"entry %s: debits (%s) != credits (%s)", entry, totalDebit, totalCredit)
		}

		first := out[idx[0]]
		switch {
		case first.Debit.Amount.Equal(totalDebit) && !totalDebit.IsZero():
			for _, i := range idx {
				copyParty(&out[i].Debit, first.Debit)
			}
		case first.Credit.Amount.Equal(totalCredit) && !totalCredit.IsZero():
			for _, i := range idx {
				copyParty(&out[i].Credit, first.Credit)
			}
		}

		for _, i := range idx {
			if out[i].Description == "" {
				out[i].Description = first.Description
			}
		}
	}
	return out
}

func copyParty(dst *model.LineSide, src model.LineSide) {
	dst.Account = src.Account
	dst.AccountName = src.AccountName
	dst.SubAccount = src.SubAccount
	dst.SubAccountName = src.SubAccountName
	dst.Department = src.Department
	dst.DepartmentName = src.DepartmentName
}

// expandPostings turns each amount row into a debit posting and a mirrored
// credit posting.
func expandPostings(rows []model.AmountRow) []model.GeneralLedgerRow {
	postings := make([]model.GeneralLedgerRow, 0, 2*len(rows))
	for _, r := range rows {
		postings = append(postings, model.GeneralLedgerRow{
			Date:           r.Date,
			Month:          r.Month,
			Account:        r.Debit.Account,
			AccountName:    r.Debit.AccountName,
			SubAccount:     r.Debit.SubAccount,
			Department:     r.Debit.Department,
			Description:    r.Description,
			Debit:          r.Debit.Amount,
			CounterAccount: r.Credit.Account,
			CounterSub:     r.Credit.SubAccount,
			CounterDept:    r.Credit.Department,
		})
		postings = append(postings, model.GeneralLedgerRow{
			Date:           r.Date,
			Month:          r.Month,
			Account:        r.Credit.Account,
			AccountName:    r.Credit.AccountName,
			SubAccount:     r.Credit.SubAccount,
			Department:     r.Credit.Department,
			Description:    r.Description,
			Credit:         r.Credit.Amount,
			CounterAccount: r.Debit.Account,
			CounterSub:     r.Debit.SubAccount,
			CounterDept:    r.Debit.Department,
		})
	}
	return postings
}

// applyRunningBalances walks date-sorted postings keeping one balance per
// account, seeded from the beginning balances on first appearance. At each
// month boundary it emits an opening row per account seen so far.
func applyRunningBalances(postings []model.GeneralLedgerRow, balances refdata.Balances, accounts *refdata.AccountMap, rep *report.Report) []model.GeneralLedgerRow {
	out := make([]model.GeneralLedgerRow, 0, len(postings))
	balance := make(map[string]decimal.Decimal)
	names := make(map[string]string)
	var seen []string
	var current model.Month

	emitOpenings := func(m model.Month) {
		codes := append([]string(nil), seen...)
		sort.Strings(codes)
		for _, acct := range codes {
			out = append(out, model.GeneralLedgerRow{
				Date:        m.FirstDay(),
				Month:       m,
				Account:     acct,
				AccountName: names[acct],
				Balance:     balance[acct],
				Opening:     true,
			})
		}
	}

	for _, p := range postings {
		if current.IsZero() {
			current = p.Month
		} else if current != p.Month {
			emitOpenings(p.Month)
			current = p.Month
		}

		if p.Account != "" {
			if _, ok := balance[p.Account]; !ok {
				balance[p.Account] = balances.Get(p.Account)
				seen = append(seen, p.Account)
			}
			if p.AccountName != "" {
				names[p.Account] = p.AccountName
			}

			switch accounts.Category(p.Account).NormalSide() {
			case model.SideDebit:
				balance[p.Account] = balance[p.Account].Add(p.Debit).Sub(p.Credit)
			case model.SideCredit:
				balance[p.Account] = balance[p.Account].Add(p.Credit).Sub(p.Debit)
			default:
				rep.Add(report.KindUnclassified, p.Account,
					"account %s has no e-Tax category; balance unchanged", p.Account)
			}
			p.Balance = balance[p.Account]
		}
		out = append(out, p)
	}
	return out
}
