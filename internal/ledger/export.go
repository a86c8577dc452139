package ledger

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/tidygl-dev/tidygl/internal/csvio"
	"github.com/tidygl-dev/tidygl/internal/model"
)

// Export file names inside the output directory.
const (
	FileAmounts       = "data_amount.csv"
	FileGeneralLedger = "data_general_ledger.csv"
	FileSummary       = "data_summary.csv"
	FileSubAccount    = "data_sub_account.csv"
	FileDepartment    = "data_department.csv"
	FileBS            = "data_bs.csv"
	FilePL            = "data_pl.csv"
)

const dateFormat = "2006-01-02"

var amountHeader = []string{
	"entry_id", "line_no", "date", "month", "description",
	"debit_account", "debit_account_name", "debit_sub_account", "debit_sub_account_name",
	"debit_department", "debit_department_name", "debit_tax_code", "debit_tax_name",
	"debit_tax_amount", "debit_amount",
	"credit_account", "credit_account_name", "credit_sub_account", "credit_sub_account_name",
	"credit_department", "credit_department_name", "credit_tax_code", "credit_tax_name",
	"credit_tax_amount", "credit_amount",
}

var generalLedgerHeader = []string{
	"date", "month", "account", "account_name", "sub_account", "department",
	"description", "debit", "credit", "balance",
	"counter_account", "counter_sub_account", "counter_department", "opening",
}

var summaryHeader = []string{
	"month", "account", "account_name", "category", "etax_category",
	"beginning", "debit", "credit", "ending",
}

var subAccountHeader = []string{
	"month", "account", "account_name", "sub_account", "sub_account_name",
	"debit", "credit",
}

var departmentHeader = []string{
	"month", "account", "account_name", "department", "department_name",
	"debit", "credit",
}

var rollupHeader = []string{
	"seq", "level", "type", "name", "account", "category", "etax_category",
	"beginning", "debit", "credit", "ending",
}

// WriteAmountRows exports the normalized amount table.
func WriteAmountRows(path string, rows []model.AmountRow) error {
	records := [][]string{amountHeader}
	for _, r := range rows {
		date := ""
		if !r.Date.IsZero() {
			date = r.Date.Format(dateFormat)
		}
		records = append(records, []string{
			r.EntryID, strconv.Itoa(r.LineNo), date, r.Month.String(), r.Description,
			r.Debit.Account, r.Debit.AccountName, r.Debit.SubAccount, r.Debit.SubAccountName,
			r.Debit.Department, r.Debit.DepartmentName, r.Debit.TaxCode, r.Debit.TaxName,
			r.Debit.TaxAmount.String(), r.Debit.Amount.String(),
			r.Credit.Account, r.Credit.AccountName, r.Credit.SubAccount, r.Credit.SubAccountName,
			r.Credit.Department, r.Credit.DepartmentName, r.Credit.TaxCode, r.Credit.TaxName,
			r.Credit.TaxAmount.String(), r.Credit.Amount.String(),
		})
	}
	return csvio.WriteFile(path, records, true)
}

// WriteGeneralLedger exports the general-ledger postings.
func WriteGeneralLedger(path string, rows []model.GeneralLedgerRow) error {
	records := [][]string{generalLedgerHeader}
	for _, r := range rows {
		opening := ""
		if r.Opening {
			opening = "1"
		}
		records = append(records, []string{
			r.Date.Format(dateFormat), r.Month.String(), r.Account, r.AccountName,
			r.SubAccount, r.Department, r.Description,
			r.Debit.String(), r.Credit.String(), r.Balance.String(),
			r.CounterAccount, r.CounterSub, r.CounterDept, opening,
		})
	}
	return csvio.WriteFile(path, records, true)
}

// WriteSummaries exports the monthly trial balance.
func WriteSummaries(path string, rows []model.MonthlyAccountSummary) error {
	records := [][]string{summaryHeader}
	for _, r := range rows {
		records = append(records, []string{
			r.Month.String(), r.Account, r.AccountName, string(r.Category), r.ETaxCategory,
			r.Beginning.String(), r.Debit.String(), r.Credit.String(), r.Ending.String(),
		})
	}
	return csvio.WriteFile(path, records, true)
}

// WriteSubAccountSummary exports the monthly sub-account breakdown.
func WriteSubAccountSummary(path string, rows []SubAccountSummary) error {
	records := [][]string{subAccountHeader}
	for _, r := range rows {
		records = append(records, []string{
			r.Month.String(), r.Account, r.AccountName, r.SubAccount, r.SubAccountName,
			r.Debit.String(), r.Credit.String(),
		})
	}
	return csvio.WriteFile(path, records, true)
}

// WriteDepartmentSummary exports the monthly department breakdown.
func WriteDepartmentSummary(path string, rows []DepartmentSummary) error {
	records := [][]string{departmentHeader}
	for _, r := range rows {
		records = append(records, []string{
			r.Month.String(), r.Account, r.AccountName, r.Department, r.DepartmentName,
			r.Debit.String(), r.Credit.String(),
		})
	}
	return csvio.WriteFile(path, records, true)
}

// WriteRollup exports a rolled-up BS or PL dictionary.
func WriteRollup(path string, rows []RollupRecord) error {
	records := [][]string{rollupHeader}
	for _, r := range rows {
		records = append(records, []string{
			strconv.Itoa(r.Seq), strconv.Itoa(r.Level), r.Type, r.Name, r.Account,
			string(r.Category), r.ETaxCategory,
			r.Beginning.String(), r.Debit.String(), r.Credit.String(), r.Ending.String(),
		})
	}
	return csvio.WriteFile(path, records, true)
}

// Export writes every derivation of a Result into dir.
func Export(dir string, r *Result) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}
	if err := WriteAmountRows(filepath.Join(dir, FileAmounts), r.Amounts); err != nil {
		return err
	}
	if err := WriteGeneralLedger(filepath.Join(dir, FileGeneralLedger), r.GeneralLedger); err != nil {
		return err
	}
	if err := WriteSummaries(filepath.Join(dir, FileSummary), r.TrialBalance); err != nil {
		return err
	}
	if len(r.SubAccounts) > 0 {
		if err := WriteSubAccountSummary(filepath.Join(dir, FileSubAccount), r.SubAccounts); err != nil {
			return err
		}
	}
	if len(r.Departments) > 0 {
		if err := WriteDepartmentSummary(filepath.Join(dir, FileDepartment), r.Departments); err != nil {
			return err
		}
	}
	if r.BS != nil {
		if err := WriteRollup(filepath.Join(dir, FileBS), r.BS); err != nil {
			return err
		}
	}
	if r.PL != nil {
		if err := WriteRollup(filepath.Join(dir, FilePL), r.PL); err != nil {
			return err
		}
	}
	return nil
}
