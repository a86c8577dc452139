package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLhmRow_IsClassRow(t *testing.T) {
	assert.True(t, LhmRow{Type: RowClass}.IsClassRow())
	assert.True(t, LhmRow{Type: RowReference}.IsClassRow())
	assert.True(t, LhmRow{Type: RowDNM}.IsClassRow())
	assert.False(t, LhmRow{Type: RowAttribute}.IsClassRow())
}

func TestLhmRow_Plural(t *testing.T) {
	for _, m := range []string{"0..*", "1..*", "*", "n"} {
		assert.True(t, LhmRow{Multiplicity: m}.Plural(), m)
	}
	for _, m := range []string{"", "1", "1..1", "0..1"} {
		assert.False(t, LhmRow{Multiplicity: m}.Plural(), m)
	}
}
