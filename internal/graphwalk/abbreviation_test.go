package graphwalk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbbreviate(t *testing.T) {
	cases := map[string]string{
		"Order":             "Order",
		"Invoice":           "Invoc", // first vowel kept, later ones dropped
		"Order Line":        "OrderLin",
		"Terms of Delivery": "TermsDel",
		"Buyer":             "Buyr",
		"Tax Total":         "TaxTotl",
		"the":               "",
		"":                  "",
	}
	for term, want := range cases {
		assert.Equal(t, want, Abbreviate(term), term)
	}
}

func TestAbbreviate_TruncatesToEight(t *testing.T) {
	got := Abbreviate("International Organization Standardization")
	assert.LessOrEqual(t, len(got), 8)
}

func TestAbbreviateWord(t *testing.T) {
	assert.Equal(t, "Amont", abbreviateWord("Amount"))
	assert.Equal(t, "Identfr", abbreviateWord("Identifier"))
	assert.Equal(t, "Dat", abbreviateWord("Date"))
}

func TestAbbreviate_DropsEveryStopWord(t *testing.T) {
	for word := range stopWords {
		assert.Equal(t, "Pric", Abbreviate(word+" Price"), word)
	}
}

func TestAbbreviate_TitleCasesLowercaseInput(t *testing.T) {
	// Words are normalized before abbreviating, so case never changes the
	// short form.
	assert.Equal(t, Abbreviate("Order Line"), Abbreviate("order line"))
	assert.Equal(t, Abbreviate("TAX TOTAL"), Abbreviate("Tax Total"))
}

func TestWalk_AbbreviationPaths(t *testing.T) {
	rows, err := Walk(orderModel(t), Options{Root: "Order"})
	require.NoError(t, err)

	assert.Equal(t, "Order", rows[0].AbbreviationPath)
	assert.Equal(t, "Order.OrderId", rows[1].AbbreviationPath)
	assert.Equal(t, "Order.Buyr.BuyrId", rows[4].AbbreviationPath)
	// Each segment truncates independently of the joined length.
	assert.Equal(t, "Order.OrderLin.LinAmont", rows[9].AbbreviationPath)
}

func TestIDAssigner_SuffixSequence(t *testing.T) {
	assign := newIDAssigner()
	assert.Equal(t, "X", assign("X"))
	assert.Equal(t, "X_a", assign("X"))
	assert.Equal(t, "X_b", assign("X"))
	// A fresh base restarts its own sequence.
	assert.Equal(t, "Y", assign("Y"))
	assert.Equal(t, "Y_a", assign("Y"))
}

func TestIDAssigner_SuffixWrapsPastZ(t *testing.T) {
	assign := newIDAssigner()
	var last string
	for i := 0; i < 28; i++ {
		last = assign("X")
	}
	assert.Equal(t, "X_aa", last)
}

func TestCamelCase(t *testing.T) {
	assert.Equal(t, "InvoiceLine", camelCase("Invoice Line"))
	assert.Equal(t, "TermsOfDelivery", camelCase("terms of delivery"))
	assert.Equal(t, "", camelCase(""))
	assert.Equal(t, "order", lowerFirst("Order"))
	assert.Equal(t, "", lowerFirst(""))
}
