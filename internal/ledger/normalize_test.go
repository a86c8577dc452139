package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidygl-dev/tidygl/internal/config"
	"github.com/tidygl-dev/tidygl/internal/refdata"
	"github.com/tidygl-dev/tidygl/internal/report"
)

var tidyGLHeader = []string{
	"entry_id", "line_no", "date", "description", "kind", "side",
	"code", "name", "debit_account", "debit_amount", "credit_account", "credit_amount",
}

func testTables(t *testing.T) *refdata.Tables {
	t.Helper()
	accounts, err := refdata.LoadAccountMap([][]string{
		{"Account_Code", "eTax_Account_Code", "eTax_Account_Name", "Category", "eTax_Category", "English_Label"},
		{"100", "10A100", "現金", "Asset", "流動資産", "Cash"},
		{"500", "50A100", "売上高", "Revenue", "売上", "Sales"},
		{"600", "60A100", "消耗品費", "Expense", "販管費", "Supplies"},
	})
	require.NoError(t, err)

	partners, err := refdata.LoadPartners([][]string{
		{"Partner_Code", "Partner_Name", "digital_transaction"},
		{"P001", "Acme", "1"},
		{"P002", "Globex", "0"},
	})
	require.NoError(t, err)

	return &refdata.Tables{
		Accounts:      accounts,
		Partners:      partners,
		Balances:      refdata.Balances{},
		TaxCategories: map[string]string{"T10": "課税売上10%"},
	}
}

func TestNormalize_JoinsHeaderAndSubAccount(t *testing.T) {
	records := [][]string{
		tidyGLHeader,
		{"E1", "", "2024-01-15", "Sale to Acme", "", "", "", "", "", "", "", ""},
		{"E1", "1", "", "", "", "", "", "", "100", "1000", "500", "1000"},
		{"E1", "1", "", "", "sub-account", "debit", "P001", "Acme", "", "", "", ""},
	}

	rep := report.New("normalize")
	p := &config.Params{Lang: "ja"}
	rows, err := NewNormalizer(p, testTables(t), rep).Normalize(records)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "E1", row.EntryID)
	assert.Equal(t, 1, row.LineNo)
	assert.Equal(t, date(2024, time.January, 15), row.Date)
	assert.Equal(t, "2024-01", row.Month.String())
	assert.Equal(t, "Sale to Acme", row.Description)

	// Account codes are rewritten to their e-Tax codes with locale names.
	assert.Equal(t, "10A100", row.Debit.Account)
	assert.Equal(t, "現金", row.Debit.AccountName)
	assert.Equal(t, "50A100", row.Credit.Account)
	assert.Equal(t, "売上高", row.Credit.AccountName)

	assert.Equal(t, "P001", row.Debit.SubAccount)
	assert.Equal(t, "Acme", row.Debit.SubAccountName)
	assert.True(t, row.Balanced())
	assert.Equal(t, 0, rep.Count(report.KindMappingMiss, "100"))
	assert.Equal(t, 0, rep.Count(report.KindInvalidDate, "E1"))
}

func TestNormalize_EnglishLabels(t *testing.T) {
	records := [][]string{
		tidyGLHeader,
		{"E1", "", "2024-01-15", "", "", "", "", "", "", "", "", ""},
		{"E1", "1", "", "", "", "", "", "", "100", "1000", "500", "1000"},
	}

	rep := report.New("normalize")
	p := &config.Params{Lang: "en"}
	rows, err := NewNormalizer(p, testTables(t), rep).Normalize(records)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Cash", rows[0].Debit.AccountName)
	assert.Equal(t, "Sales", rows[0].Credit.AccountName)
}

func TestNormalize_DigitalSalesSplit(t *testing.T) {
	records := [][]string{
		tidyGLHeader,
		{"E1", "", "2024-01-15", "Digital sale", "", "", "", "", "", "", "", ""},
		{"E1", "1", "", "", "", "", "", "", "100", "1000", "500", "1000"},
		{"E1", "1", "", "", "sub-account", "debit", "P001", "Acme", "", "", "", ""},
		{"E2", "", "2024-01-16", "Plain sale", "", "", "", "", "", "", "", ""},
		{"E2", "1", "", "", "", "", "", "", "100", "2000", "500", "2000"},
		{"E2", "1", "", "", "sub-account", "debit", "P002", "Globex", "", "", "", ""},
		{"E3", "", "2024-01-17", "Unknown partner", "", "", "", "", "", "", "", ""},
		{"E3", "1", "", "", "", "", "", "", "100", "3000", "500", "3000"},
		{"E3", "1", "", "", "sub-account", "debit", "P999", "Nobody", "", "", "", ""},
	}

	rep := report.New("normalize")
	p := &config.Params{
		Lang:  "ja",
		Sales: config.SalesAccounts{Sales: "50A100", Digital: "50D100", NonDigital: "50N100"},
	}
	rows, err := NewNormalizer(p, testTables(t), rep).Normalize(records)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "50D100", rows[0].Credit.Account)
	assert.Equal(t, "電子取引売上高", rows[0].Credit.AccountName)

	assert.Equal(t, "50N100", rows[1].Credit.Account)
	assert.Equal(t, "電子取引以外売上高", rows[1].Credit.AccountName)

	// Partners outside the table keep the plain sales account.
	assert.Equal(t, "50A100", rows[2].Credit.Account)
}

func TestNormalize_MissingSalesAccountWarnsOnce(t *testing.T) {
	records := [][]string{
		tidyGLHeader,
		{"E1", "", "2024-01-15", "", "", "", "", "", "", "", "", ""},
		{"E1", "1", "", "", "", "", "", "", "100", "1000", "500", "1000"},
	}

	rep := report.New("normalize")
	p := &config.Params{Lang: "ja"} // partner table present, no sales account
	_, err := NewNormalizer(p, testTables(t), rep).Normalize(records)
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Count(report.KindMissingParam, "sales_accounts.sales"))
}

func TestNormalize_FillsTaxNamesFromDictionary(t *testing.T) {
	header := append(append([]string{}, tidyGLHeader...),
		"debit_tax_code", "credit_tax_code")
	records := [][]string{
		header,
		{"E1", "", "2024-01-15", "", "", "", "", "", "", "", "", "", "", ""},
		{"E1", "1", "", "", "", "", "", "", "100", "1000", "500", "1000", "T99", "T10"},
	}

	rep := report.New("normalize")
	p := &config.Params{Lang: "ja"}
	rows, err := NewNormalizer(p, testTables(t), rep).Normalize(records)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	// The dictionary names the credit side's code; the debit side's code is
	// unknown and reported.
	assert.Equal(t, "課税売上10%", rows[0].Credit.TaxName)
	assert.Equal(t, "", rows[0].Debit.TaxName)
	assert.Equal(t, 1, rep.Count(report.KindMappingMiss, "T99"))
}

func TestNormalize_JoinsDepartmentRows(t *testing.T) {
	records := [][]string{
		tidyGLHeader,
		{"E1", "", "2024-01-15", "Supplies", "", "", "", "", "", "", "", ""},
		{"E1", "1", "", "", "", "", "", "", "600", "500", "100", "500"},
		{"E1", "1", "", "", "部門", "借方", "D10", "営業部", "", "", "", ""},
		{"E1", "1", "", "", "department", "credit", "D20", "管理部", "", "", "", ""},
	}

	rep := report.New("normalize")
	p := &config.Params{Lang: "ja"}
	rows, err := NewNormalizer(p, testTables(t), rep).Normalize(records)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	// Both locale spellings of the record kind and side join onto the line.
	assert.Equal(t, "D10", rows[0].Debit.Department)
	assert.Equal(t, "営業部", rows[0].Debit.DepartmentName)
	assert.Equal(t, "D20", rows[0].Credit.Department)
	assert.Equal(t, "管理部", rows[0].Credit.DepartmentName)
}

func TestNormalize_UnknownKindReported(t *testing.T) {
	records := [][]string{
		tidyGLHeader,
		{"E1", "", "2024-01-15", "", "", "", "", "", "", "", "", ""},
		{"E1", "1", "", "", "", "", "", "", "100", "1000", "500", "1000"},
		{"E1", "1", "", "", "memo", "debit", "M1", "note", "", "", "", ""},
	}

	rep := report.New("normalize")
	p := &config.Params{Lang: "ja"}
	rows, err := NewNormalizer(p, testTables(t), rep).Normalize(records)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 1, rep.Count(report.KindMappingMiss, "memo"))
	assert.Empty(t, rows[0].Debit.SubAccount)
}

func TestNormalize_InvalidDateNullsMonth(t *testing.T) {
	records := [][]string{
		tidyGLHeader,
		{"E1", "", "not-a-date", "", "", "", "", "", "", "", "", ""},
		{"E1", "1", "", "", "", "", "", "", "100", "1000", "500", "1000"},
	}

	rep := report.New("normalize")
	p := &config.Params{Lang: "ja"}
	rows, err := NewNormalizer(p, testTables(t), rep).Normalize(records)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Date.IsZero())
	assert.True(t, rows[0].Month.IsZero())
	assert.Equal(t, 1, rep.Count(report.KindInvalidDate, "E1"))
}

func TestNormalize_UnmappedAccountKeepsCode(t *testing.T) {
	records := [][]string{
		tidyGLHeader,
		{"E1", "", "2024-01-15", "", "", "", "", "", "", "", "", ""},
		{"E1", "1", "", "", "", "", "", "", "999", "1000", "500", "1000"},
	}

	rep := report.New("normalize")
	p := &config.Params{Lang: "ja"}
	rows, err := NewNormalizer(p, testTables(t), rep).Normalize(records)
	require.NoError(t, err)
	assert.Equal(t, "999", rows[0].Debit.Account)
	assert.Equal(t, 1, rep.Count(report.KindMappingMiss, "999"))
}

func TestNormalize_ColumnRemapping(t *testing.T) {
	records := [][]string{
		{"伝票番号", "行番号", "取引日", "debit_account", "debit_amount", "credit_account", "credit_amount"},
		{"E1", "", "2024-01-15", "", "", "", ""},
		{"E1", "1", "", "100", "1000", "500", "1000"},
	}

	rep := report.New("normalize")
	p := &config.Params{
		Lang: "ja",
		Columns: map[string]string{
			"entry_id": "伝票番号",
			"line_no":  "行番号",
			"date":     "取引日",
		},
	}
	rows, err := NewNormalizer(p, testTables(t), rep).Normalize(records)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, date(2024, time.January, 15), rows[0].Date)
}

func TestNormalize_RequiresColumns(t *testing.T) {
	records := [][]string{{"entry_id", "line_no"}}
	rep := report.New("normalize")
	p := &config.Params{Lang: "ja"}
	_, err := NewNormalizer(p, testTables(t), rep).Normalize(records)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "debit_account")
}
