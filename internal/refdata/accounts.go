// Package refdata loads the reference dictionaries a ledger run consumes:
// the account mapping, tax categories, trading partners, beginning balances,
// and the BS/PL template trees.
package refdata

import (
	"fmt"
	"strings"

	"github.com/tidygl-dev/tidygl/internal/csvio"
	"github.com/tidygl-dev/tidygl/internal/model"
)

// Account-mapping CSV columns.
const (
	ColAccountCode  = "Account_Code"
	ColETaxCode     = "eTax_Account_Code"
	ColETaxName     = "eTax_Account_Name"
	ColCategory     = "Category"
	ColETaxCategory = "eTax_Category"
	ColEnglishLabel = "English_Label"
)

// AccountMap maps ledger account numbers to their e-Tax mapping.
type AccountMap struct {
	byCode map[string]model.Account
	order  []string
}

// LoadAccountMap parses the account-mapping CSV records.
func LoadAccountMap(records [][]string) (*AccountMap, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("account mapping: empty file")
	}
	h := csvio.HeaderIndex(records[0])
	if err := h.Require(ColAccountCode, ColETaxCode, ColETaxName, ColCategory, ColETaxCategory, ColEnglishLabel); err != nil {
		return nil, fmt.Errorf("account mapping: %w", err)
	}

	m := &AccountMap{byCode: make(map[string]model.Account)}
	for _, rec := range records[1:] {
		code := h.Get(rec, ColAccountCode)
		if code == "" {
			continue
		}
		acct := model.Account{
			Code:         code,
			ETaxCode:     h.Get(rec, ColETaxCode),
			Name:         h.Get(rec, ColETaxName),
			NameEN:       h.Get(rec, ColEnglishLabel),
			Category:     model.Category(strings.ToLower(h.Get(rec, ColCategory))),
			ETaxCategory: h.Get(rec, ColETaxCategory),
		}
		if _, dup := m.byCode[code]; !dup {
			m.order = append(m.order, code)
		}
		m.byCode[code] = acct
		// Downstream stages hold e-Tax codes after normalization, so index
		// the mapping under both spellings.
		if acct.ETaxCode != "" && acct.ETaxCode != code {
			if _, taken := m.byCode[acct.ETaxCode]; !taken {
				m.byCode[acct.ETaxCode] = acct
			}
		}
	}
	return m, nil
}

// Lookup returns the mapping for a ledger account number or its e-Tax code.
func (m *AccountMap) Lookup(code string) (model.Account, bool) {
	a, ok := m.byCode[code]
	return a, ok
}

// Category returns the e-Tax category of an account, or "" when unmapped.
func (m *AccountMap) Category(code string) model.Category {
	if a, ok := m.byCode[code]; ok {
		return a.Category
	}
	return ""
}

// Codes returns every mapped account number in file order.
func (m *AccountMap) Codes() []string {
	return m.order
}

// Len returns the number of mapped accounts.
func (m *AccountMap) Len() int {
	return len(m.order)
}
