package refdata

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tidygl-dev/tidygl/internal/config"
	"github.com/tidygl-dev/tidygl/internal/csvio"
	"github.com/tidygl-dev/tidygl/internal/model"
)

// Trading-partner CSV columns.
const (
	ColPartnerCode = "Partner_Code"
	ColPartnerName = "Partner_Name"
	ColDigitalFlag = "digital_transaction"
)

// Tax-category CSV columns.
const (
	ColTaxCode = "Tax_Code"
	ColTaxName = "Tax_Name"
)

// Beginning-balance CSV columns.
const (
	ColBalanceAccount = "Account_Code"
	ColBalanceAmount  = "Beginning_Balance"
)

// PartnerTable marks which trading partners are digital-trade customers.
type PartnerTable struct {
	digital map[string]bool
	names   map[string]string
}

// LoadPartners parses the trading-partner CSV records.
func LoadPartners(records [][]string) (*PartnerTable, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("trading partners: empty file")
	}
	h := csvio.HeaderIndex(records[0])
	if err := h.Require(ColPartnerCode, ColDigitalFlag); err != nil {
		return nil, fmt.Errorf("trading partners: %w", err)
	}

	t := &PartnerTable{
		digital: make(map[string]bool),
		names:   make(map[string]string),
	}
	for _, rec := range records[1:] {
		code := h.Get(rec, ColPartnerCode)
		if code == "" {
			continue
		}
		flag := strings.ToLower(h.Get(rec, ColDigitalFlag))
		t.digital[code] = flag == "1" || flag == "true"
		t.names[code] = h.Get(rec, ColPartnerName)
	}
	return t, nil
}

// IsDigital reports whether the partner is flagged as a digital-trade
// customer. Unknown partners are not digital.
func (t *PartnerTable) IsDigital(code string) bool {
	return t != nil && t.digital[code]
}

// Known reports whether the partner appears in the table at all.
func (t *PartnerTable) Known(code string) bool {
	if t == nil {
		return false
	}
	_, ok := t.digital[code]
	return ok
}

// LoadTaxCategories parses the tax-category CSV into code -> name.
func LoadTaxCategories(records [][]string) (map[string]string, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("tax categories: empty file")
	}
	h := csvio.HeaderIndex(records[0])
	if err := h.Require(ColTaxCode, ColTaxName); err != nil {
		return nil, fmt.Errorf("tax categories: %w", err)
	}

	out := make(map[string]string)
	for _, rec := range records[1:] {
		if code := h.Get(rec, ColTaxCode); code != "" {
			out[code] = h.Get(rec, ColTaxName)
		}
	}
	return out, nil
}

// Balances maps account numbers to their signed beginning balances.
type Balances map[string]decimal.Decimal

// LoadBalances parses the beginning-balance CSV records.
func LoadBalances(records [][]string) (Balances, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("beginning balances: empty file")
	}
	h := csvio.HeaderIndex(records[0])
	if err := h.Require(ColBalanceAccount, ColBalanceAmount); err != nil {
		return nil, fmt.Errorf("beginning balances: %w", err)
	}

	b := make(Balances)
	for i, rec := range records[1:] {
		code := h.Get(rec, ColBalanceAccount)
		if code == "" {
			continue
		}
		amount, err := decimal.NewFromString(h.Get(rec, ColBalanceAmount))
		if err != nil {
			return nil, fmt.Errorf("beginning balances row %d: parsing amount: %w", i+2, err)
		}
		b[code] = amount
	}
	return b, nil
}

// Get returns the beginning balance for an account, defaulting to zero.
func (b Balances) Get(code string) decimal.Decimal {
	if b == nil {
		return decimal.Zero
	}
	return b[code]
}

// Tables bundles every loaded reference dictionary.
type Tables struct {
	Accounts      *AccountMap
	TaxCategories map[string]string
	Partners      *PartnerTable
	Balances      Balances
	BSTemplate    []model.HierarchyNode
	PLTemplate    []model.HierarchyNode
}

// LoadAll reads every reference CSV named by the parameters. Optional files
// may be left unnamed; required ones fail the run.
func LoadAll(p *config.Params) (*Tables, error) {
	t := &Tables{Balances: make(Balances)}

	records, err := csvio.ReadFile(p.Resolve(p.Files.AccountMapping), p.Encoding)
	if err != nil {
		return nil, err
	}
	if t.Accounts, err = LoadAccountMap(records); err != nil {
		return nil, err
	}

	if path := p.Resolve(p.Files.TaxCategory); path != "" {
		records, err := csvio.ReadFile(path, p.Encoding)
		if err != nil {
			return nil, err
		}
		if t.TaxCategories, err = LoadTaxCategories(records); err != nil {
			return nil, err
		}
	}

	if path := p.Resolve(p.Files.TradingPartner); path != "" {
		records, err := csvio.ReadFile(path, p.Encoding)
		if err != nil {
			return nil, err
		}
		if t.Partners, err = LoadPartners(records); err != nil {
			return nil, err
		}
	}

	if path := p.Resolve(p.Files.BeginningBalance); path != "" {
		records, err := csvio.ReadFile(path, p.Encoding)
		if err != nil {
			return nil, err
		}
		if t.Balances, err = LoadBalances(records); err != nil {
			return nil, err
		}
	}

	if path := p.Resolve(p.Files.BSTemplate); path != "" {
		records, err := csvio.ReadFile(path, p.Encoding)
		if err != nil {
			return nil, err
		}
		if t.BSTemplate, err = LoadTemplate(records); err != nil {
			return nil, fmt.Errorf("BS template: %w", err)
		}
	}

	if path := p.Resolve(p.Files.PLTemplate); path != "" {
		records, err := csvio.ReadFile(path, p.Encoding)
		if err != nil {
			return nil, err
		}
		if t.PLTemplate, err = LoadTemplate(records); err != nil {
			return nil, fmt.Errorf("PL template: %w", err)
		}
	}

	return t, nil
}
