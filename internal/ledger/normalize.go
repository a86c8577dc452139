// Package ledger derives the general ledger, the monthly trial balance, and
// the BS/PL roll-ups from a tidy general-ledger CSV.
package ledger

import (
	"fmt"
	"strconv"

	"github.com/tidygl-dev/tidygl/internal/config"
	"github.com/tidygl-dev/tidygl/internal/csvio"
	"github.com/tidygl-dev/tidygl/internal/model"
	"github.com/tidygl-dev/tidygl/internal/refdata"
	"github.com/tidygl-dev/tidygl/internal/report"
)

// Logical tidy-GL column names. The parameters file may remap each of these
// to the exporter's actual header text.
const (
	ColEntryID     = "entry_id"
	ColLineNo      = "line_no"
	ColDate        = "date"
	ColDescription = "description"
	ColKind        = "kind"
	ColSide        = "side"
	ColCode        = "code"
	ColName        = "name"

	ColDebitAccount     = "debit_account"
	ColDebitAccountName = "debit_account_name"
	ColDebitAmount      = "debit_amount"
	ColDebitTaxCode     = "debit_tax_code"
	ColDebitTaxName     = "debit_tax_name"
	ColDebitTaxAmount   = "debit_tax_amount"

	ColCreditAccount     = "credit_account"
	ColCreditAccountName = "credit_account_name"
	ColCreditAmount      = "credit_amount"
	ColCreditTaxCode     = "credit_tax_code"
	ColCreditTaxName     = "credit_tax_name"
	ColCreditTaxAmount   = "credit_tax_amount"
)

// Default labels for the rewritten digital-sales accounts, used when the
// account mapping does not name them.
const (
	labelDigitalSalesJA    = "電子取引売上高"
	labelDigitalSalesEN    = "Digital transaction sales"
	labelNonDigitalSalesJA = "電子取引以外売上高"
	labelNonDigitalSalesEN = "Non-digital transaction sales"
)

func isSubAccountKind(kind string) bool {
	return kind == "sub-account" || kind == "補助科目"
}

func isDepartmentKind(kind string) bool {
	return kind == "department" || kind == "部門"
}

func isDebitSide(side string) bool {
	return side == "debit" || side == "借方"
}

// Normalizer joins the tidy-GL record kinds into canonical amount rows.
type Normalizer struct {
	params *config.Params
	ref    *refdata.Tables
	rep    *report.Report
}

// NewNormalizer creates a Normalizer over loaded reference tables.
func NewNormalizer(p *config.Params, ref *refdata.Tables, rep *report.Report) *Normalizer {
	return &Normalizer{params: p, ref: ref, rep: rep}
}

type lineKey struct {
	entry string
	line  int
}

type entryHeader struct {
	date        string
	description string
}

// Normalize classifies the tidy-GL records into header, amount, sub-account,
// and department rows, joins them per (entry_id, line_no), maps account
// codes through the e-Tax dictionary, and applies the digital-sales split.
func (n *Normalizer) Normalize(records [][]string) ([]model.AmountRow, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("tidy-GL: empty file")
	}

	h := csvio.HeaderIndex(records[0])
	col := func(logical string) string { return n.params.Column(logical) }
	if err := h.Require(col(ColEntryID), col(ColLineNo), col(ColDate),
		col(ColDebitAccount), col(ColCreditAccount),
		col(ColDebitAmount), col(ColCreditAmount)); err != nil {
		return nil, fmt.Errorf("tidy-GL: %w", err)
	}

	headers := make(map[string]entryHeader)
	rows := make(map[lineKey]*model.AmountRow)
	var order []lineKey

	for i, rec := range records[1:] {
		entry := h.Get(rec, col(ColEntryID))
		if entry == "" {
			continue
		}
		lineText := h.Get(rec, col(ColLineNo))

		// Header rows carry the transaction date for the whole entry.
		if lineText == "" {
			headers[entry] = entryHeader{
				date:        h.Get(rec, col(ColDate)),
				description: h.Get(rec, col(ColDescription)),
			}
			continue
		}

		line, err := strconv.Atoi(lineText)
		if err != nil {
			n.rep.Add(report.KindMalformedRow, entry, "row %d: bad line number %q", i+2, lineText)
			continue
		}

		k := lineKey{entry: entry, line: line}
		row := rows[k]
		if row == nil {
			row = &model.AmountRow{EntryID: entry, LineNo: line}
			rows[k] = row
			order = append(order, k)
		}

		kind := h.Get(rec, col(ColKind))
		switch {
		case isSubAccountKind(kind):
			side := sideOf(row, h.Get(rec, col(ColSide)))
			side.SubAccount = h.Get(rec, col(ColCode))
			side.SubAccountName = h.Get(rec, col(ColName))
		case isDepartmentKind(kind):
			side := sideOf(row, h.Get(rec, col(ColSide)))
			side.Department = h.Get(rec, col(ColCode))
			side.DepartmentName = h.Get(rec, col(ColName))
		case kind == "":
			if err := n.fillAmountRow(row, h, col, rec); err != nil {
				return nil, fmt.Errorf("tidy-GL row %d: %w", i+2, err)
			}
		default:
			n.rep.Add(report.KindMappingMiss, kind, "unknown record kind %q", kind)
		}
	}

	out := make([]model.AmountRow, 0, len(order))
	for _, k := range order {
		row := rows[k]
		n.attachHeader(row, headers)
		n.mapSide(&row.Debit)
		n.mapSide(&row.Credit)
		n.fillTaxName(&row.Debit)
		n.fillTaxName(&row.Credit)
		n.splitDigitalSales(row)
		out = append(out, *row)
	}

	n.warnMissingSalesAccount(out)
	return out, nil
}

func sideOf(row *model.AmountRow, side string) *model.LineSide {
	if isDebitSide(side) {
		return &row.Debit
	}
	return &row.Credit
}

func (n *Normalizer) fillAmountRow(row *model.AmountRow, h csvio.Header, col func(string) string, rec []string) error {
	row.Description = h.Get(rec, col(ColDescription))

	row.Debit.Account = h.Get(rec, col(ColDebitAccount))
	row.Debit.AccountName = h.Get(rec, col(ColDebitAccountName))
	row.Debit.TaxCode = h.Get(rec, col(ColDebitTaxCode))
	row.Debit.TaxName = h.Get(rec, col(ColDebitTaxName))

	row.Credit.Account = h.Get(rec, col(ColCreditAccount))
	row.Credit.AccountName = h.Get(rec, col(ColCreditAccountName))
	row.Credit.TaxCode = h.Get(rec, col(ColCreditTaxCode))
	row.Credit.TaxName = h.Get(rec, col(ColCreditTaxName))

	var err error
	if row.Debit.Amount, err = parseAmount(h.Get(rec, col(ColDebitAmount))); err != nil {
		return err
	}
	if row.Credit.Amount, err = parseAmount(h.Get(rec, col(ColCreditAmount))); err != nil {
		return err
	}
	if row.Debit.TaxAmount, err = parseAmount(h.Get(rec, col(ColDebitTaxAmount))); err != nil {
		return err
	}
	if row.Credit.TaxAmount, err = parseAmount(h.Get(rec, col(ColCreditTaxAmount))); err != nil {
		return err
	}
	return nil
}

// attachHeader joins the entry's header record onto the row. An invalid or
// missing date nulls the row's date and month so downstream aggregation
// skips it.
func (n *Normalizer) attachHeader(row *model.AmountRow, headers map[string]entryHeader) {
	hdr, ok := headers[row.EntryID]
	if !ok {
		n.rep.Add(report.KindInvalidDate, row.EntryID, "no header row for entry %s", row.EntryID)
		return
	}
	if row.Description == "" {
		row.Description = hdr.description
	}
	t, err := parseDate(hdr.date)
	if err != nil {
		n.rep.Add(report.KindInvalidDate, row.EntryID, "entry %s: %v", row.EntryID, err)
		return
	}
	row.Date = t
	row.Month = model.MonthOf(t)
}

// mapSide rewrites an account code to its e-Tax code and locale name.
// Unmapped codes keep their original value and are reported once.
func (n *Normalizer) mapSide(side *model.LineSide) {
	if side.Account == "" {
		return
	}
	acct, ok := n.ref.Accounts.Lookup(side.Account)
	if !ok {
		n.rep.Add(report.KindMappingMiss, side.Account, "account %s not in mapping dictionary", side.Account)
		return
	}
	side.Account = acct.ETaxCode
	side.AccountName = acct.Label(n.params.Lang)
}

// fillTaxName resolves a tax code through the tax-category dictionary when
// the journal carries the code without its name. Unknown codes are reported
// once and left blank.
func (n *Normalizer) fillTaxName(side *model.LineSide) {
	if side.TaxCode == "" || side.TaxName != "" || n.ref.TaxCategories == nil {
		return
	}
	name, ok := n.ref.TaxCategories[side.TaxCode]
	if !ok {
		n.rep.Add(report.KindMappingMiss, side.TaxCode, "tax code %s not in tax-category table", side.TaxCode)
		return
	}
	side.TaxName = name
}

// splitDigitalSales rewrites the credit account of a sales line according to
// the debit customer's digital-transaction flag.
func (n *Normalizer) splitDigitalSales(row *model.AmountRow) {
	sales := n.params.Sales
	if sales.Sales == "" || row.Credit.Account != sales.Sales || row.Debit.SubAccount == "" {
		return
	}
	partners := n.ref.Partners
	if !partners.Known(row.Debit.SubAccount) {
		return
	}

	if partners.IsDigital(row.Debit.SubAccount) {
		row.Credit.Account = sales.Digital
		row.Credit.AccountName = n.salesLabel(sales.Digital, labelDigitalSalesJA, labelDigitalSalesEN)
	} else {
		row.Credit.Account = sales.NonDigital
		row.Credit.AccountName = n.salesLabel(sales.NonDigital, labelNonDigitalSalesJA, labelNonDigitalSalesEN)
	}
}

func (n *Normalizer) salesLabel(code, ja, en string) string {
	if acct, ok := n.ref.Accounts.Lookup(code); ok {
		return acct.Label(n.params.Lang)
	}
	if n.params.Lang == "en" {
		return en
	}
	return ja
}

// warnMissingSalesAccount reports once when a trading-partner table was
// loaded but no sales account is configured, so the split silently did
// nothing.
func (n *Normalizer) warnMissingSalesAccount(rows []model.AmountRow) {
	if n.params.Sales.Sales != "" || n.ref.Partners == nil || len(rows) == 0 {
		return
	}
	n.rep.Add(report.KindMissingParam, "sales_accounts.sales",
		"trading partners loaded but no sales account configured; digital-sales split skipped")
}
