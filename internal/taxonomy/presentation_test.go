package taxonomy

import (
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidygl-dev/tidygl/internal/model"
)

func TestEmitPresentationLinkbase_Document(t *testing.T) {
	dir := t.TempDir()
	e, err := New(receiptConfig(dir), receiptRows())
	require.NoError(t, err)
	require.NoError(t, e.Emit())

	want := `<?xml version="1.0" encoding="UTF-8"?>
<link:linkbase xmlns:link="http://www.xbrl.org/2003/linkbase" xmlns:xlink="http://www.w3.org/1999/xlink">
  <link:presentationLink xlink:type="extended" xlink:role="http://www.xbrl.org/2003/role/link">
    <link:loc xlink:type="locator" xlink:href="rct-2024-01-01.xsd#Receipt" xlink:label="loc_Receipt"/>
    <link:loc xlink:type="locator" xlink:href="rct-2024-01-01.xsd#ReceiptReceiptId" xlink:label="loc_ReceiptReceiptId"/>
    <link:presentationArc xlink:type="arc" xlink:arcrole="http://www.xbrl.org/2003/arcrole/parent-child" xlink:from="loc_Receipt" xlink:to="loc_ReceiptReceiptId" order="1"/>
  </link:presentationLink>
</link:linkbase>
`
	got := readFile(t, filepath.Join(dir, "rct", "rct-2024-01-01-presentation.xml"))
	assert.Equal(t, want, got)
}

func TestEmitPresentationLinkbase_SharedParentLocatorOnce(t *testing.T) {
	rows := receiptRows()
	rows = append(rows, model.LhmRow{
		Seq: 3, Level: 2, Type: model.RowAttribute,
		Name: "Issue Date", Datatype: "Date",
		ClassTerm: "Receipt", ID: "ReceiptIssueDate", Element: "receiptIssueDate",
		Module: "rct",
	})

	dir := t.TempDir()
	e, err := New(receiptConfig(dir), rows)
	require.NoError(t, err)
	require.NoError(t, e.Emit())

	pres := readFile(t, filepath.Join(dir, "rct", "rct-2024-01-01-presentation.xml"))
	assert.Equal(t, 1, strings.Count(pres, `xlink:label="loc_Receipt"`))
	assert.Contains(t, pres,
		`xlink:from="loc_Receipt" xlink:to="loc_ReceiptReceiptId" order="1"`)
	assert.Contains(t, pres,
		`xlink:from="loc_Receipt" xlink:to="loc_ReceiptIssueDate" order="2"`)
}

func TestEmitPresentationLinkbase_OrderCountsPerModule(t *testing.T) {
	dir := t.TempDir()
	e, err := New(testConfig(dir), invoiceRows())
	require.NoError(t, err)
	require.NoError(t, e.Emit())

	pres := readFile(t, filepath.Join(dir, "inv", "inv-2024-01-01-presentation.xml"))
	// Five parent-child edges in LHM order, numbered consecutively.
	for i, edge := range []string{
		`xlink:from="loc_Invoice" xlink:to="loc_InvoiceInvoiceId"`,
		`xlink:from="loc_Invoice" xlink:to="loc_InvoiceNote"`,
		`xlink:from="loc_Invoice" xlink:to="loc_InvoiceLine"`,
		`xlink:from="loc_InvoiceLine" xlink:to="loc_InvoiceLineLineId"`,
		`xlink:from="loc_InvoiceLine" xlink:to="loc_InvoiceLineLineAmount"`,
	} {
		assert.Contains(t, pres, edge+` order="`+strconv.Itoa(i+1)+`"`)
	}
}
