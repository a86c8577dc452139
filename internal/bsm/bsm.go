// Package bsm loads Business Semantic Model CSVs: classes with attribute
// properties and typed associations to other classes.
package bsm

import (
	"fmt"
	"strconv"

	"github.com/tidygl-dev/tidygl/internal/csvio"
	"github.com/tidygl-dev/tidygl/internal/model"
)

// BSM CSV columns.
const (
	ColLevel              = "level"
	ColPropertyType       = "property_type"
	ColClassTerm          = "class_term"
	ColPropertyTerm       = "property_term"
	ColRepresentationTerm = "representation_term"
	ColAssociatedClass    = "associated_class"
	ColMultiplicity       = "multiplicity"
	ColIdentifier         = "identifier"
	ColDefinition         = "definition"
	ColModule             = "module"
)

// Attribute is one attribute property of a class, in declaration order.
type Attribute struct {
	Name               string
	RepresentationTerm string
	Multiplicity       string
	Identifier         string // "PK" on the primary key
	Definition         string
	Module             string
}

// Association is a typed edge from one class to another.
type Association struct {
	Kind         model.PropertyType
	Target       string
	Multiplicity string
	Definition   string
}

// Class is one class of the semantic model with its properties in
// declaration order.
type Class struct {
	Term         string
	Level        int
	Definition   string
	Module       string
	Attributes   []Attribute
	Associations []Association
}

// PK returns the class's primary-key attribute, if any.
func (c *Class) PK() (Attribute, bool) {
	for _, a := range c.Attributes {
		if a.Identifier == "PK" {
			return a, true
		}
	}
	return Attribute{}, false
}

// Model is an ordered collection of classes.
type Model struct {
	classes map[string]*Class
	order   []string
}

// Load parses BSM CSV records into a Model. Attribute and association rows
// attach to the most recent class row.
func Load(records [][]string) (*Model, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("BSM: empty file")
	}
	h := csvio.HeaderIndex(records[0])
	if err := h.Require(ColPropertyType, ColClassTerm); err != nil {
		return nil, fmt.Errorf("BSM: %w", err)
	}

	m := &Model{classes: make(map[string]*Class)}
	var current *Class

	for i, rec := range records[1:] {
		ptype := model.PropertyType(h.Get(rec, ColPropertyType))
		if ptype == "" {
			continue
		}

		level := 0
		if text := h.Get(rec, ColLevel); text != "" {
			var err error
			if level, err = strconv.Atoi(text); err != nil {
				return nil, fmt.Errorf("BSM row %d: parsing level %q: %w", i+2, text, err)
			}
		}

		switch {
		case ptype.IsClass():
			term := h.Get(rec, ColClassTerm)
			if term == "" {
				return nil, fmt.Errorf("BSM row %d: class row without class term", i+2)
			}
			current = m.ensureClass(term)
			current.Level = level
			current.Definition = h.Get(rec, ColDefinition)
			current.Module = h.Get(rec, ColModule)

		case ptype == model.PropAttribute:
			if current == nil {
				return nil, fmt.Errorf("BSM row %d: attribute before any class", i+2)
			}
			current.Attributes = append(current.Attributes, Attribute{
				Name:               h.Get(rec, ColPropertyTerm),
				RepresentationTerm: h.Get(rec, ColRepresentationTerm),
				Multiplicity:       h.Get(rec, ColMultiplicity),
				Identifier:         h.Get(rec, ColIdentifier),
				Definition:         h.Get(rec, ColDefinition),
				Module:             h.Get(rec, ColModule),
			})

		case ptype.IsAssociation():
			if current == nil {
				return nil, fmt.Errorf("BSM row %d: association before any class", i+2)
			}
			target := h.Get(rec, ColAssociatedClass)
			if target == "" {
				return nil, fmt.Errorf("BSM row %d: association without associated class", i+2)
			}
			current.Associations = append(current.Associations, Association{
				Kind:         ptype,
				Target:       target,
				Multiplicity: h.Get(rec, ColMultiplicity),
				Definition:   h.Get(rec, ColDefinition),
			})

		default:
			return nil, fmt.Errorf("BSM row %d: unknown property type %q", i+2, ptype)
		}
	}
	return m, nil
}

// LoadFile reads and parses one BSM CSV.
func LoadFile(path, encoding string) (*Model, error) {
	records, err := csvio.ReadFile(path, encoding)
	if err != nil {
		return nil, err
	}
	return Load(records)
}

func (m *Model) ensureClass(term string) *Class {
	if c, ok := m.classes[term]; ok {
		return c
	}
	c := &Class{Term: term}
	m.classes[term] = c
	m.order = append(m.order, term)
	return c
}

// Class returns the class with the given term, or nil.
func (m *Model) Class(term string) *Class {
	return m.classes[term]
}

// Classes returns every class in declaration order.
func (m *Model) Classes() []*Class {
	out := make([]*Class, 0, len(m.order))
	for _, term := range m.order {
		out = append(out, m.classes[term])
	}
	return out
}

// Roots returns the classes no composition or aggregation points at, in
// declaration order. These are the natural starting points of a graph walk;
// reference associations do not disqualify a root.
func (m *Model) Roots() []string {
	targeted := make(map[string]bool)
	for _, term := range m.order {
		for _, assoc := range m.classes[term].Associations {
			if assoc.Kind != model.PropReference {
				targeted[assoc.Target] = true
			}
		}
	}
	var roots []string
	for _, term := range m.order {
		if !targeted[term] {
			roots = append(roots, term)
		}
	}
	return roots
}

// Merge appends another model's classes. Extension rows for an existing
// class term append after the base class's properties.
func (m *Model) Merge(other *Model) {
	for _, term := range other.order {
		src := other.classes[term]
		dst := m.ensureClass(term)
		if dst.Definition == "" {
			dst.Definition = src.Definition
		}
		if dst.Module == "" {
			dst.Module = src.Module
		}
		dst.Attributes = append(dst.Attributes, src.Attributes...)
		dst.Associations = append(dst.Associations, src.Associations...)
	}
}

// Validate checks that every association targets a known class.
func (m *Model) Validate() error {
	for _, term := range m.order {
		for _, assoc := range m.classes[term].Associations {
			if m.Class(assoc.Target) == nil {
				return fmt.Errorf("class %q: association targets unknown class %q", term, assoc.Target)
			}
		}
	}
	return nil
}
