package model

// RowType discriminates LHM rows: class, reference target, attribute, or a
// decoupled-navigation header link.
type RowType string

const (
	RowClass     RowType = "C"
	RowReference RowType = "R"
	RowAttribute RowType = "A"
	RowDNM       RowType = "DNM"
)

// LhmRow is one row of a Logical Hierarchical Model CSV.
type LhmRow struct {
	Seq              int
	Level            int
	Type             RowType
	Identifier       string // "PK", "REF", or empty
	Name             string
	Datatype         string
	Multiplicity     string
	DomainName       string
	Definition       string
	Module           string
	ClassTerm        string
	ID               string
	Path             string // "/id1/id2/..."
	SemanticPath     string // dot-joined class/property terms
	AbbreviationPath string
	LabelLocal       string
	DefinitionLocal  string
	Element          string
	XPath            string
}

// IsClassRow reports whether the row is a class, reference, or DNM node
// (anything that can parent attributes).
func (r LhmRow) IsClassRow() bool {
	return r.Type == RowClass || r.Type == RowReference || r.Type == RowDNM
}

// Plural reports whether the row was reached over a plural association.
func (r LhmRow) Plural() bool {
	switch r.Multiplicity {
	case "0..*", "1..*", "*", "n":
		return true
	}
	return false
}
