package model

// PropertyType discriminates the rows of a Business Semantic Model CSV.
type PropertyType string

const (
	PropClass            PropertyType = "Class"
	PropSpecializedClass PropertyType = "Specialized Class"
	PropAttribute        PropertyType = "Attribute"
	PropReference        PropertyType = "Reference Association"
	PropAggregation      PropertyType = "Aggregation"
	PropComposition      PropertyType = "Composition"
)

// IsClass reports whether the row opens a class definition.
func (p PropertyType) IsClass() bool {
	return p == PropClass || p == PropSpecializedClass
}

// IsAssociation reports whether the row is an edge to another class.
func (p PropertyType) IsAssociation() bool {
	return p == PropReference || p == PropAggregation || p == PropComposition
}

// BsmRow is one row of a Business Semantic Model CSV.
type BsmRow struct {
	Level              int
	PropertyType       PropertyType
	ClassTerm          string
	PropertyTerm       string
	RepresentationTerm string
	AssociatedClass    string
	Multiplicity       string
	Identifier         string // "PK", "REF", or empty
	Definition         string
	Module             string
}
