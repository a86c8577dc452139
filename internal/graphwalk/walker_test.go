package graphwalk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidygl-dev/tidygl/internal/bsm"
	"github.com/tidygl-dev/tidygl/internal/model"
)

var bsmHeader = []string{
	"level", "property_type", "class_term", "property_term",
	"representation_term", "associated_class", "multiplicity", "identifier",
	"definition", "module",
}

func loadModel(t *testing.T, rows [][]string) *bsm.Model {
	t.Helper()
	m, err := bsm.Load(append([][]string{bsmHeader}, rows...))
	require.NoError(t, err)
	require.NoError(t, m.Validate())
	return m
}

func orderModel(t *testing.T) *bsm.Model {
	return loadModel(t, [][]string{
		{"1", "Class", "Order", "", "", "", "", "", "A purchase order.", "ord"},
		{"", "Attribute", "Order", "Order ID", "Identifier", "", "1..1", "PK", "The unique identifier of the order.", "ord"},
		{"", "Attribute", "Order", "Order Date", "Date", "", "1..1", "", "The issue date.", "ord"},
		// Declared plural first; the walk must still visit Buyer before Order Line.
		{"", "Composition", "Order", "", "", "Order Line", "1..*", "", "", "ord"},
		{"", "Aggregation", "Order", "", "", "Buyer", "1..1", "", "", "ord"},
		{"2", "Class", "Order Line", "", "", "", "", "", "One line of an order.", "ord"},
		{"", "Attribute", "Order Line", "Line ID", "Identifier", "", "1..1", "PK", "The unique identifier of the line.", "ord"},
		{"", "Attribute", "Order Line", "Line Amount", "Amount", "", "0..1", "", "The line value.", "ord"},
		{"2", "Class", "Buyer", "", "", "", "", "", "The buying party.", "prt"},
		{"", "Attribute", "Buyer", "Buyer ID", "Identifier", "", "1..1", "PK", "The unique identifier of the buyer.", "prt"},
		{"", "Reference Association", "Buyer", "", "", "Address", "0..1", "", "", "prt"},
		{"2", "Class", "Address", "", "", "", "", "", "A postal address.", "prt"},
		{"", "Attribute", "Address", "Address ID", "Identifier", "", "1..1", "PK", "The unique identifier of the address.", "prt"},
		{"", "Attribute", "Address", "City Name", "Text", "", "0..1", "", "The city.", "prt"},
	})
}

func rowNames(rows []model.LhmRow) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = string(r.Type) + ":" + r.Name
	}
	return out
}

func TestWalk_BucketOrderAndReferences(t *testing.T) {
	rows, err := Walk(orderModel(t), Options{Root: "Order"})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"C:Order",
		"A:Order ID",
		"A:Order Date",
		// Mandatory singular association walks before the plural one.
		"C:Buyer",
		"A:Buyer ID",
		// Reference target contributes only its PK.
		"R:Address",
		"A:Address ID",
		"C:Order Line",
		"A:Line ID",
		"A:Line Amount",
	}, rowNames(rows))

	// Sequence is a clean renumbering.
	for i, r := range rows {
		assert.Equal(t, i+1, r.Seq)
	}

	// Levels follow the walk depth.
	assert.Equal(t, 1, rows[0].Level)
	assert.Equal(t, 2, rows[1].Level)
	assert.Equal(t, 2, rows[3].Level) // Buyer
	assert.Equal(t, 3, rows[4].Level)
	assert.Equal(t, 3, rows[5].Level) // Address reference sits beside Buyer's attributes
	assert.Equal(t, 4, rows[6].Level)
	assert.Equal(t, 2, rows[7].Level) // Order Line

	// Multiplicity rides on the class rows reached over an edge.
	assert.Equal(t, "1..1", rows[3].Multiplicity)
	assert.Equal(t, "0..1", rows[5].Multiplicity)
	assert.Equal(t, "1..*", rows[7].Multiplicity)
	assert.True(t, rows[7].Plural())
}

func TestWalk_ReferenceRewritesPK(t *testing.T) {
	rows, err := Walk(orderModel(t), Options{Root: "Order"})
	require.NoError(t, err)

	// Address is reached by reference: its PK becomes a REF row with the
	// definition rewritten.
	ref := rows[6]
	assert.Equal(t, "REF", ref.Identifier)
	assert.Equal(t, "Address ID", ref.Name)
	assert.Equal(t, "The reference identifier of the address.", ref.Definition)
	// The referenced class's other attributes stay out.
	for _, r := range rows {
		assert.NotEqual(t, "City Name", r.Name)
	}
}

func TestWalk_PathsAndElements(t *testing.T) {
	rows, err := Walk(orderModel(t), Options{Root: "Order"})
	require.NoError(t, err)

	assert.Equal(t, "Order", rows[0].ID)
	assert.Equal(t, "order", rows[0].Element)
	assert.Equal(t, "/Order", rows[0].Path)
	assert.Equal(t, "Order", rows[0].SemanticPath)

	// Attribute ids embed the owning class term.
	orderID := rows[1]
	assert.Equal(t, "OrderOrderId", orderID.ID)
	assert.Equal(t, "orderOrderId", orderID.Element)
	assert.Equal(t, "/Order/OrderOrderId", orderID.Path)
	assert.Equal(t, "Order.Order ID", orderID.SemanticPath)

	buyerID := rows[4]
	assert.Equal(t, "/Order/Buyer/BuyerBuyerId", buyerID.Path)
	assert.Equal(t, "Order.Buyer.Buyer ID", buyerID.SemanticPath)
	assert.Equal(t, "/order/buyer/buyerBuyerId", buyerID.XPath)
}

func TestWalk_CycleGuard(t *testing.T) {
	m := loadModel(t, [][]string{
		{"1", "Class", "A", "", "", "", "", "", "", "m"},
		{"", "Attribute", "A", "A ID", "Identifier", "", "1..1", "PK", "", "m"},
		{"", "Composition", "A", "", "", "B", "1..1", "", "", "m"},
		{"1", "Class", "B", "", "", "", "", "", "", "m"},
		{"", "Attribute", "B", "B ID", "Identifier", "", "1..1", "PK", "", "m"},
		{"", "Composition", "B", "", "", "A", "1..1", "", "", "m"},
	})

	rows, err := Walk(m, Options{Root: "A"})
	require.NoError(t, err)
	// B's edge back to A is on the path and gets skipped.
	assert.Equal(t, []string{"C:A", "A:A ID", "C:B", "A:B ID"}, rowNames(rows))
}

func TestWalk_DiamondRevisitsAfterPop(t *testing.T) {
	// A composes B and C; both compose D. D is visitable twice because the
	// LIFO pops B before C walks.
	m := loadModel(t, [][]string{
		{"1", "Class", "A", "", "", "", "", "", "", "m"},
		{"", "Composition", "A", "", "", "B", "1..1", "", "", "m"},
		{"", "Composition", "A", "", "", "C", "1..1", "", "", "m"},
		{"1", "Class", "B", "", "", "", "", "", "", "m"},
		{"", "Composition", "B", "", "", "D", "1..1", "", "", "m"},
		{"1", "Class", "C", "", "", "", "", "", "", "m"},
		{"", "Composition", "C", "", "", "D", "1..1", "", "", "m"},
		{"1", "Class", "D", "", "", "", "", "", "", "m"},
		{"", "Attribute", "D", "D ID", "Identifier", "", "1..1", "PK", "", "m"},
	})

	rows, err := Walk(m, Options{Root: "A"})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"C:A", "C:B", "C:D", "A:D ID", "C:C", "C:D", "A:D ID",
	}, rowNames(rows))

	// The second visit gets a deduplicated id.
	assert.Equal(t, "D", rows[2].ID)
	assert.Equal(t, "D_a", rows[5].ID)
	assert.Equal(t, "DDId", rows[3].ID)
	assert.Equal(t, "DDId_a", rows[6].ID)
}

func TestWalk_ReferenceInsideMandatoryBranch(t *testing.T) {
	// A composes B (mandatory) and C (plural); B references D. The reference
	// contributes D's PK as a REF row and the plural branch walks last.
	m := loadModel(t, [][]string{
		{"1", "Class", "A", "", "", "", "", "", "", "m"},
		{"", "Composition", "A", "", "", "B", "1..1", "", "", "m"},
		{"", "Composition", "A", "", "", "C", "0..*", "", "", "m"},
		{"1", "Class", "B", "", "", "", "", "", "", "m"},
		{"", "Reference Association", "B", "", "", "D", "1..1", "", "", "m"},
		{"1", "Class", "C", "", "", "", "", "", "", "m"},
		{"1", "Class", "D", "", "", "", "", "", "", "m"},
		{"", "Attribute", "D", "D ID", "Identifier", "", "1..1", "PK", "", "m"},
	})

	rows, err := Walk(m, Options{Root: "A"})
	require.NoError(t, err)
	assert.Equal(t, []string{"C:A", "C:B", "R:D", "A:D ID", "C:C"}, rowNames(rows))

	for i, level := range []int{1, 2, 3, 4, 2} {
		assert.Equal(t, level, rows[i].Level, rows[i].Name)
	}
	assert.Equal(t, "REF", rows[3].Identifier)
	assert.True(t, rows[4].Plural())
}

func TestWalk_UnknownRoot(t *testing.T) {
	_, err := Walk(orderModel(t), Options{Root: "Missing"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Missing")
}

func TestWalk_ActiveIndicatorSkippedOutsideDNM(t *testing.T) {
	m := loadModel(t, [][]string{
		{"1", "Class", "Invoice", "", "", "", "", "", "", "inv"},
		{"", "Attribute", "Invoice", "Invoice ID", "Identifier", "", "1..1", "PK", "", "inv"},
		{"", "Attribute", "Invoice", "Active Indicator", "Indicator", "", "0..1", "", "", "inv"},
	})

	rows, err := Walk(m, Options{Root: "Invoice"})
	require.NoError(t, err)
	assert.Equal(t, []string{"C:Invoice", "A:Invoice ID"}, rowNames(rows))

	rows, err = Walk(m, Options{Root: "Invoice", DNM: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"C:Invoice", "A:Invoice ID", "A:Active Indicator"}, rowNames(rows))
}

func dnmModel(t *testing.T) *bsm.Model {
	return loadModel(t, [][]string{
		{"1", "Class", "Invoice", "", "", "", "", "", "An invoice document.", "inv"},
		{"", "Attribute", "Invoice", "Invoice ID", "Identifier", "", "1..1", "PK", "The unique identifier of the invoice.", "inv"},
		{"", "Composition", "Invoice", "", "", "Invoice Line", "1..*", "", "", "inv"},
		{"2", "Class", "Invoice Line", "", "", "", "", "", "One invoice line.", "inv"},
		{"", "Attribute", "Invoice Line", "Line ID", "Identifier", "", "1..1", "PK", "The unique identifier of the line.", "inv"},
		{"", "Attribute", "Invoice Line", "Line Amount", "Amount", "", "1..1", "", "The line value.", "inv"},
	})
}

func TestWalk_DNMSuppressesLineComposition(t *testing.T) {
	rows, err := Walk(dnmModel(t), Options{Root: "Invoice", DNM: true})
	require.NoError(t, err)
	// The header no longer composes its own line class.
	assert.Equal(t, []string{"C:Invoice", "A:Invoice ID"}, rowNames(rows))
}

func TestWalk_DNMHeaderLinkOnLineRoot(t *testing.T) {
	rows, err := Walk(dnmModel(t), Options{Root: "Invoice Line", DNM: true})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"C:Invoice Line",
		"A:Line ID",
		"A:Line Amount",
		// Synthetic decoupled-navigation link back to the header.
		"DNM:Invoice",
		"A:Invoice ID",
	}, rowNames(rows))

	header := rows[3]
	assert.Equal(t, model.RowDNM, header.Type)
	assert.Equal(t, 2, header.Level)

	ref := rows[4]
	assert.Equal(t, 3, ref.Level)
	assert.Equal(t, "REF", ref.Identifier)
	assert.Equal(t, "The reference identifier of the invoice.", ref.Definition)
}

func TestWalk_NoHeaderLinkWithoutDNM(t *testing.T) {
	rows, err := Walk(dnmModel(t), Options{Root: "Invoice Line"})
	require.NoError(t, err)
	assert.Equal(t, []string{"C:Invoice Line", "A:Line ID", "A:Line Amount"}, rowNames(rows))
}

func TestMerge_ExtensionAppends(t *testing.T) {
	base := loadModel(t, [][]string{
		{"1", "Class", "Order", "", "", "", "", "", "", "ord"},
		{"", "Attribute", "Order", "Order ID", "Identifier", "", "1..1", "PK", "", "ord"},
	})
	ext, err := bsm.Load([][]string{
		bsmHeader,
		{"1", "Class", "Order", "", "", "", "", "", "", "ord"},
		{"", "Attribute", "Order", "Customs Code", "Code", "", "0..1", "", "", "ext"},
	})
	require.NoError(t, err)

	base.Merge(ext)
	rows, walkErr := Walk(base, Options{Root: "Order"})
	require.NoError(t, walkErr)
	assert.Equal(t, []string{"C:Order", "A:Order ID", "A:Customs Code"}, rowNames(rows))
}
