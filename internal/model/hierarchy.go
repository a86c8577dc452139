package model

// MaxHierarchyLevels is the deepest nesting a BS/PL template may use.
const MaxHierarchyLevels = 10

// HierarchyNode is one row of a BS or PL template CSV. Type "T" marks a
// totaling node whose value is the sum of its descendants.
type HierarchyNode struct {
	Seq          int
	Level        int    // 1..MaxHierarchyLevels
	Type         string // "T" or leaf marker
	Name         string // e-Tax account name
	Account      string // ledger account number, empty on structural nodes
	Category     Category
	ETaxCategory string
}

// IsTotal reports whether the node is a totaling node.
func (n HierarchyNode) IsTotal() bool {
	return n.Type == "T"
}
