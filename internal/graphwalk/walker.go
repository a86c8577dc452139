// Package graphwalk turns a Business Semantic Model into a Logical
// Hierarchical Model by a constrained depth-first walk over class
// associations.
package graphwalk

import (
	"fmt"
	"strings"

	"github.com/tidygl-dev/tidygl/internal/bsm"
	"github.com/tidygl-dev/tidygl/internal/model"
)

// Options configures a walk.
type Options struct {
	Root string // class term to start from
	DNM  bool   // decoupled navigation mode
}

// Walk produces the ordered, levelled LHM rows for one root class.
func Walk(m *bsm.Model, opts Options) ([]model.LhmRow, error) {
	if m.Class(opts.Root) == nil {
		if roots := m.Roots(); len(roots) > 0 {
			return nil, fmt.Errorf("root class %q not found (model roots: %s)",
				opts.Root, strings.Join(roots, ", "))
		}
		return nil, fmt.Errorf("root class %q not found", opts.Root)
	}
	w := &walker{model: m, opts: opts}
	if err := w.walk(opts.Root, false); err != nil {
		return nil, err
	}
	if err := w.appendHeaderLink(); err != nil {
		return nil, err
	}
	return finalize(w.out), nil
}

type walker struct {
	model *bsm.Model
	opts  Options
	lifo  []string // current path of class terms, the cycle guard
	out   []model.LhmRow
	mult  string // multiplicity of the edge just taken
}

func (w *walker) onPath(term string) bool {
	for _, t := range w.lifo {
		if t == term {
			return true
		}
	}
	return false
}

// walk visits a class. Reference targets emit only their PK and do not
// extend the path; composition-like targets push onto the LIFO so that
// popping restores prior reachability.
func (w *walker) walk(term string, viaReference bool) error {
	cls := w.model.Class(term)
	if cls == nil {
		return fmt.Errorf("association targets unknown class %q", term)
	}

	rowType := model.RowClass
	level := len(w.lifo) + 1
	if viaReference {
		rowType = model.RowReference
	} else {
		w.lifo = append(w.lifo, term)
		level = len(w.lifo)
	}

	row := model.LhmRow{
		Level:      level,
		Type:       rowType,
		Name:       cls.Term,
		ClassTerm:  cls.Term,
		Definition: cls.Definition,
		Module:     cls.Module,
	}
	if level > 1 && w.mult != "" {
		row.Multiplicity = w.mult
	}
	w.out = append(w.out, row)

	w.emitAttributes(cls, level+1, viaReference)

	if viaReference {
		return nil
	}

	if err := w.walkAssociations(cls); err != nil {
		return err
	}

	w.lifo = w.lifo[:len(w.lifo)-1]
	return nil
}

// emitAttributes appends the class's attribute rows. A reference target
// contributes only its primary key, rewritten as a foreign reference.
func (w *walker) emitAttributes(cls *bsm.Class, level int, viaReference bool) {
	for _, attr := range cls.Attributes {
		if viaReference && attr.Identifier != "PK" {
			continue
		}
		// The active indicator is a navigation artifact; it only matters
		// when headers and lines are decoupled.
		if !w.opts.DNM && strings.EqualFold(attr.Name, "Active Indicator") {
			continue
		}

		row := model.LhmRow{
			Level:        level,
			Type:         model.RowAttribute,
			Identifier:   attr.Identifier,
			Name:         attr.Name,
			Datatype:     attr.RepresentationTerm,
			Multiplicity: attr.Multiplicity,
			Definition:   attr.Definition,
			Module:       attr.Module,
			ClassTerm:    cls.Term,
		}
		if viaReference {
			row.Identifier = "REF"
			row.Definition = strings.ReplaceAll(row.Definition, "unique identifier", "reference identifier")
		}
		w.out = append(w.out, row)
	}
}

// Tie-break buckets for next-class selection.
const (
	bucketMandatorySingular = iota // multiplicity 1 or 1..1
	bucketOptionalSingular         // 0..1
	bucketPlural                   // 0..* or 1..*
)

func bucketOf(multiplicity string) int {
	switch multiplicity {
	case "0..1":
		return bucketOptionalSingular
	case "0..*", "1..*", "*", "n":
		return bucketPlural
	default:
		// "1", "1..1", and unstated multiplicities are mandatory singular.
		return bucketMandatorySingular
	}
}

// walkAssociations recurses into associated classes bucket by bucket:
// mandatory singular, then optional singular, then plural, keeping
// declaration order inside each bucket.
func (w *walker) walkAssociations(cls *bsm.Class) error {
	for bucket := bucketMandatorySingular; bucket <= bucketPlural; bucket++ {
		for _, assoc := range cls.Associations {
			if bucketOf(assoc.Multiplicity) != bucket {
				continue
			}
			if w.onPath(assoc.Target) {
				continue
			}
			if w.suppressedByDNM(cls, assoc) {
				continue
			}

			w.mult = assoc.Multiplicity
			if err := w.walk(assoc.Target, assoc.Kind == model.PropReference); err != nil {
				return err
			}
		}
	}
	return nil
}

// suppressedByDNM skips a header's composition into its own "... Line"
// child when decoupled navigation is on; the line class walks as its own
// root instead.
func (w *walker) suppressedByDNM(cls *bsm.Class, assoc bsm.Association) bool {
	return w.opts.DNM &&
		assoc.Kind != model.PropReference &&
		assoc.Target == cls.Term+" Line"
}

// appendHeaderLink emits the synthetic decoupled-navigation rows after a
// "... Line" root: the header class at level 2 and its primary key as a
// foreign reference at level 3.
func (w *walker) appendHeaderLink() error {
	if !w.opts.DNM || !strings.HasSuffix(w.opts.Root, " Line") {
		return nil
	}
	headerTerm := strings.TrimSuffix(w.opts.Root, " Line")
	header := w.model.Class(headerTerm)
	if header == nil {
		return nil
	}

	w.out = append(w.out, model.LhmRow{
		Level:      2,
		Type:       model.RowDNM,
		Name:       header.Term,
		ClassTerm:  header.Term,
		Definition: header.Definition,
		Module:     header.Module,
	})

	pk, ok := header.PK()
	if !ok {
		return fmt.Errorf("decoupled navigation: header class %q has no primary key", headerTerm)
	}
	w.out = append(w.out, model.LhmRow{
		Level:      3,
		Type:       model.RowAttribute,
		Identifier: "REF",
		Name:       pk.Name,
		Datatype:   pk.RepresentationTerm,
		Definition: strings.ReplaceAll(pk.Definition, "unique identifier", "reference identifier"),
		Module:     pk.Module,
		ClassTerm:  header.Term,
	})
	return nil
}
