package csvio

import (
	"fmt"
	"strings"
)

// Header maps column names to their index in a CSV header row.
type Header map[string]int

// HeaderIndex builds a Header from the first record of a CSV file.
func HeaderIndex(record []string) Header {
	h := make(Header, len(record))
	for i, name := range record {
		h[strings.TrimSpace(name)] = i
	}
	return h
}

// Require returns a config error naming the first missing column.
func (h Header) Require(cols ...string) error {
	var missing []string
	for _, c := range cols {
		if _, ok := h[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required column(s): %s", strings.Join(missing, ", "))
	}
	return nil
}

// Get returns the trimmed value of col in rec, or "" when the column is
// absent or the record is too short.
func (h Header) Get(rec []string, col string) string {
	i, ok := h[col]
	if !ok || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

// Has reports whether the header declares col.
func (h Header) Has(col string) bool {
	_, ok := h[col]
	return ok
}
