package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/tidygl-dev/tidygl/internal/model"
	"github.com/tidygl-dev/tidygl/internal/refdata"
	"github.com/tidygl-dev/tidygl/internal/report"
)

type monthAccount struct {
	month   model.Month
	account string
}

// BuildTrialBalance produces one summary per (month, account): the month's
// debit and credit activity plus the carry-forward beginning and ending
// balances. Accounts with any activity get a row for every month in the
// observed range, so gap months still carry the inherited balance.
func BuildTrialBalance(rows []model.AmountRow, balances refdata.Balances, accounts *refdata.AccountMap, lang string, rep *report.Report) []model.MonthlyAccountSummary {
	debits := make(map[monthAccount]decimal.Decimal)
	credits := make(map[monthAccount]decimal.Decimal)
	names := make(map[string]string)
	var lo, hi model.Month

	observe := func(m model.Month) {
		if lo.IsZero() || m.Before(lo) {
			lo = m
		}
		if hi.IsZero() || hi.Before(m) {
			hi = m
		}
	}

	for _, r := range rows {
		if r.Month.IsZero() {
			continue
		}
		observe(r.Month)
		if r.Debit.Account != "" {
			debits[monthAccount{r.Month, r.Debit.Account}] = debits[monthAccount{r.Month, r.Debit.Account}].Add(r.Debit.Amount)
			names[r.Debit.Account] = r.Debit.AccountName
		}
		if r.Credit.Account != "" {
			credits[monthAccount{r.Month, r.Credit.Account}] = credits[monthAccount{r.Month, r.Credit.Account}].Add(r.Credit.Amount)
			names[r.Credit.Account] = r.Credit.AccountName
		}
	}

	// Accounts that moved at all during the period.
	active := make(map[string]bool)
	for k, v := range debits {
		if !v.IsZero() {
			active[k.account] = true
		}
	}
	for k, v := range credits {
		if !v.IsZero() {
			active[k.account] = true
		}
	}

	codes := make([]string, 0, len(active))
	for code := range active {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	months := model.MonthRange(lo, hi)

	var out []model.MonthlyAccountSummary
	for _, code := range codes {
		category := accounts.Category(code)
		side := category.NormalSide()
		if side == model.SideUnknown {
			rep.Add(report.KindUnclassified, code,
				"account %s has no e-Tax category; trial balance carries the beginning balance", code)
		}

		name := names[code]
		etaxCategory := ""
		if acct, ok := accounts.Lookup(code); ok {
			name = acct.Label(lang)
			etaxCategory = acct.ETaxCategory
		}

		previous := balances.Get(code)
		for _, m := range months {
			d := debits[monthAccount{m, code}]
			c := credits[monthAccount{m, code}]

			ending := previous
			switch side {
			case model.SideDebit:
				ending = previous.Add(d).Sub(c)
			case model.SideCredit:
				ending = previous.Add(c).Sub(d)
			}

			out = append(out, model.MonthlyAccountSummary{
				Month:        m,
				Account:      code,
				AccountName:  name,
				Category:     category,
				ETaxCategory: etaxCategory,
				Beginning:    previous,
				Debit:        d,
				Credit:       c,
				Ending:       ending,
			})
			previous = ending
		}
	}
	return out
}
