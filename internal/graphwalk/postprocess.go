package graphwalk

import (
	"strings"

	"github.com/tidygl-dev/tidygl/internal/model"
)

// finalize renumbers sequences, assigns unique ids, and computes the path,
// semantic path, abbreviation path, element, and xpath columns.
func finalize(rows []model.LhmRow) []model.LhmRow {
	assign := newIDAssigner()

	// Per-level stacks for path building.
	ids := make([]string, 0, 8)
	terms := make([]string, 0, 8)
	abbrs := make([]string, 0, 8)
	elems := make([]string, 0, 8)

	out := make([]model.LhmRow, len(rows))
	for i, row := range rows {
		name := row.Name
		if row.Type == model.RowAttribute {
			// Attribute ids embed the owning class so they stay unique
			// across classes sharing property terms.
			name = row.ClassTerm + " " + row.Name
		}
		id := assign(camelCase(name))

		depth := row.Level
		ids = truncateTo(ids, depth-1)
		terms = truncateTo(terms, depth-1)
		abbrs = truncateTo(abbrs, depth-1)
		elems = truncateTo(elems, depth-1)

		element := lowerFirst(id)
		ids = append(ids, id)
		terms = append(terms, row.Name)
		abbrs = append(abbrs, Abbreviate(row.Name))
		elems = append(elems, element)

		row.Seq = i + 1
		row.ID = id
		row.Element = element
		row.Path = "/" + strings.Join(ids, "/")
		row.SemanticPath = strings.Join(terms, ".")
		row.AbbreviationPath = strings.Join(abbrs, ".")
		row.XPath = "/" + strings.Join(elems, "/")
		out[i] = row
	}
	return out
}

func truncateTo(stack []string, n int) []string {
	if len(stack) > n {
		return stack[:n]
	}
	return stack
}

// newIDAssigner returns a function that makes ids unique by appending a
// monotone alphabetical suffix to repeats: X, X_a, X_b, ...
func newIDAssigner() func(string) string {
	seen := make(map[string]int)
	return func(base string) string {
		n := seen[base]
		seen[base] = n + 1
		if n == 0 {
			return base
		}
		suffix := ""
		for n > 0 {
			n--
			suffix = string(rune('a'+n%26)) + suffix
			n /= 26
		}
		return base + "_" + suffix
	}
}

// camelCase joins the words of a term: "Invoice Line" -> "InvoiceLine".
func camelCase(term string) string {
	var b strings.Builder
	for _, word := range strings.Fields(term) {
		b.WriteString(titleWord(word))
	}
	return b.String()
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

func titleWord(w string) string {
	if w == "" {
		return w
	}
	return strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
}
