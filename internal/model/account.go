package model

// Category classifies accounts by their e-Tax category and drives
// debit-vs-credit semantics.
type Category string

const (
	CategoryAsset     Category = "asset"
	CategoryLiability Category = "liability"
	CategoryEquity    Category = "equity"
	CategoryRevenue   Category = "revenue"
	CategoryExpense   Category = "expense"
)

// Side is the side of the ledger on which an account's balance grows.
type Side int

const (
	SideUnknown Side = iota
	SideDebit
	SideCredit
)

// NormalSide returns the side on which balances of this category increase.
// Equity accounts behave like liabilities. Unknown categories return
// SideUnknown; callers must leave balances untouched for those.
func (c Category) NormalSide() Side {
	switch c {
	case CategoryAsset, CategoryExpense:
		return SideDebit
	case CategoryLiability, CategoryEquity, CategoryRevenue:
		return SideCredit
	default:
		return SideUnknown
	}
}

// Account is one row of the account-mapping CSV: a ledger account number
// mapped to its canonical e-Tax code and display names per locale.
type Account struct {
	Code         string // ledger account number
	ETaxCode     string
	Name         string // e-Tax account name (Japanese)
	NameEN       string // English label
	Category     Category
	ETaxCategory string
}

// Label returns the display name for a language code ("ja" or "en"),
// falling back to the Japanese name and finally the raw code.
func (a Account) Label(lang string) string {
	if lang == "en" && a.NameEN != "" {
		return a.NameEN
	}
	if a.Name != "" {
		return a.Name
	}
	return a.Code
}
