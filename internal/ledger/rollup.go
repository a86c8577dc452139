package ledger

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/tidygl-dev/tidygl/internal/model"
	"github.com/tidygl-dev/tidygl/internal/refdata"
	"github.com/tidygl-dev/tidygl/internal/report"
)

// Totals is the per-account beginning balance and period activity.
type Totals struct {
	Beginning decimal.Decimal
	Debit     decimal.Decimal
	Credit    decimal.Decimal
}

// AccountTotals maps ledger account numbers to their period totals.
type AccountTotals map[string]Totals

// TotalsFromRows sums debit and credit activity per account over every
// dated amount row and seeds the beginning balances.
func TotalsFromRows(rows []model.AmountRow, balances refdata.Balances) AccountTotals {
	totals := make(AccountTotals)
	get := func(code string) Totals {
		if t, ok := totals[code]; ok {
			return t
		}
		return Totals{Beginning: balances.Get(code)}
	}

	for _, r := range rows {
		if r.Month.IsZero() {
			continue
		}
		if r.Debit.Account != "" {
			t := get(r.Debit.Account)
			t.Debit = t.Debit.Add(r.Debit.Amount)
			totals[r.Debit.Account] = t
		}
		if r.Credit.Account != "" {
			t := get(r.Credit.Account)
			t.Credit = t.Credit.Add(r.Credit.Amount)
			totals[r.Credit.Account] = t
		}
	}
	return totals
}

// RollupRecord is one surviving node of a rolled-up BS or PL tree. For PL
// records Ending holds the period total and Beginning stays zero.
type RollupRecord struct {
	Seq          int
	Level        int
	Type         string
	Name         string
	Account      string
	Category     model.Category
	ETaxCategory string
	Beginning    decimal.Decimal
	Debit        decimal.Decimal
	Credit       decimal.Decimal
	Ending       decimal.Decimal
}

type rollNode struct {
	RollupRecord
	children []*rollNode
}

// buildTree links template rows into a forest using the latest-node-per-level
// rule: a row at level L parents under the most recent row at level L-1.
func buildTree(template []model.HierarchyNode) ([]*rollNode, error) {
	var all []*rollNode
	var latest [model.MaxHierarchyLevels + 1]*rollNode

	for _, n := range template {
		if n.Level < 1 || n.Level > model.MaxHierarchyLevels {
			return nil, fmt.Errorf("template seq %d: level %d out of range", n.Seq, n.Level)
		}
		node := &rollNode{RollupRecord: RollupRecord{
			Seq:          n.Seq,
			Level:        n.Level,
			Type:         n.Type,
			Name:         n.Name,
			Account:      n.Account,
			Category:     n.Category,
			ETaxCategory: n.ETaxCategory,
		}}

		if n.Level > 1 {
			parent := latest[n.Level-1]
			if parent == nil {
				return nil, fmt.Errorf("template seq %d: level %d row has no parent", n.Seq, n.Level)
			}
			parent.children = append(parent.children, node)
		}

		latest[n.Level] = node
		for l := n.Level + 1; l <= model.MaxHierarchyLevels; l++ {
			latest[l] = nil
		}
		all = append(all, node)
	}
	return all, nil
}

// RollupBS aggregates account balances up a balance-sheet template.
// The normative liability rule is ending = beginning + credit - debit;
// asset accounts use ending = beginning + debit - credit.
func RollupBS(template []model.HierarchyNode, totals AccountTotals, rep *report.Report) ([]RollupRecord, error) {
	all, err := buildTree(template)
	if err != nil {
		return nil, err
	}

	for _, node := range all {
		if node.Account == "" || node.RollupRecord.Type == "T" {
			continue
		}
		t := totals[node.Account]
		node.Beginning = t.Beginning
		node.Debit = t.Debit
		node.Credit = t.Credit
		switch node.Category.NormalSide() {
		case model.SideDebit:
			node.Ending = t.Beginning.Add(t.Debit).Sub(t.Credit)
		case model.SideCredit:
			node.Ending = t.Beginning.Add(t.Credit).Sub(t.Debit)
		default:
			node.Ending = t.Beginning
			rep.Add(report.KindUnclassified, node.Account,
				"account %s has no e-Tax category; BS ending equals beginning", node.Account)
		}
	}

	rollup(all)

	return survivors(all, func(r RollupRecord) bool {
		return !r.Beginning.IsZero() || !r.Ending.IsZero()
	}), nil
}

// RollupPL aggregates period activity up a profit-and-loss template:
// revenue total = credit - debit, expense total = debit - credit.
func RollupPL(template []model.HierarchyNode, totals AccountTotals, rep *report.Report) ([]RollupRecord, error) {
	all, err := buildTree(template)
	if err != nil {
		return nil, err
	}

	for _, node := range all {
		if node.Account == "" || node.RollupRecord.Type == "T" {
			continue
		}
		t := totals[node.Account]
		node.Debit = t.Debit
		node.Credit = t.Credit
		switch node.Category {
		case model.CategoryRevenue:
			node.Ending = t.Credit.Sub(t.Debit)
		case model.CategoryExpense:
			node.Ending = t.Debit.Sub(t.Credit)
		default:
			rep.Add(report.KindUnclassified, node.Account,
				"account %s is neither revenue nor expense; PL total left zero", node.Account)
		}
	}

	rollup(all)

	return survivors(all, func(r RollupRecord) bool {
		return !r.Debit.IsZero() || !r.Credit.IsZero()
	}), nil
}

// rollup accumulates children into parents from the deepest level upward.
// Totaling nodes start from zero; every node adds the positive amounts of
// its direct children.
func rollup(all []*rollNode) {
	for level := model.MaxHierarchyLevels; level >= 1; level-- {
		for _, node := range all {
			if node.Level != level || len(node.children) == 0 {
				continue
			}
			if node.RollupRecord.Type == "T" {
				node.Beginning = decimal.Zero
				node.Debit = decimal.Zero
				node.Credit = decimal.Zero
				node.Ending = decimal.Zero
			}
			for _, child := range node.children {
				node.Beginning = addPositive(node.Beginning, child.Beginning)
				node.Debit = addPositive(node.Debit, child.Debit)
				node.Credit = addPositive(node.Credit, child.Credit)
				node.Ending = addPositive(node.Ending, child.Ending)
			}
		}
	}
}

func addPositive(dst, v decimal.Decimal) decimal.Decimal {
	if v.IsPositive() {
		return dst.Add(v)
	}
	return dst
}

func survivors(all []*rollNode, keep func(RollupRecord) bool) []RollupRecord {
	var out []RollupRecord
	for _, node := range all {
		if keep(node.RollupRecord) {
			out = append(out, node.RollupRecord)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Seq < out[j].Seq })
	return out
}
