package taxonomy

import (
	"fmt"
	"path/filepath"

	"github.com/tidygl-dev/tidygl/internal/model"
)

func (e *Emitter) schemaFile(mod string) string {
	return fmt.Sprintf("%s-%s.xsd", mod, e.cfg.Version)
}

func (e *Emitter) contentFile(mod string) string {
	return fmt.Sprintf("%s-content-%s.xsd", mod, e.cfg.Version)
}

func (e *Emitter) presentationFile(mod string) string {
	return fmt.Sprintf("%s-%s-presentation.xml", mod, e.cfg.Version)
}

func (e *Emitter) labelFile(mod, lang string) string {
	if lang == "" {
		return fmt.Sprintf("%s-%s-label.xml", mod, e.cfg.Version)
	}
	return fmt.Sprintf("%s-%s-label-%s.xml", mod, e.cfg.Version, lang)
}

// schemaRoot builds an xs:schema element with the shared namespace
// declarations.
func (e *Emitter) schemaRoot(withXbrldt bool) *Elem {
	root := El("xs:schema",
		A("targetNamespace", e.cfg.Namespace),
		A("elementFormDefault", "qualified"),
		A("attributeFormDefault", "unqualified"),
		A("xmlns:xs", nsXS),
		A("xmlns:xbrli", nsXbrli),
		A("xmlns:link", nsLink),
		A("xmlns:xlink", nsXlink),
		A("xmlns:"+e.cfg.Prefix, e.cfg.Namespace),
	)
	if withXbrldt {
		root.Attrs = append(root.Attrs, A("xmlns:xbrldt", nsXbrldt))
	}
	return root
}

func importXbrli() *Elem {
	return El("xs:import", A("namespace", nsXbrli), A("schemaLocation", locXbrli))
}

// emitModuleSchema declares each module concept: attributes as xbrli items
// and class nodes as tuples typed by the module's content schema.
func (e *Emitter) emitModuleSchema(mod string) error {
	root := e.schemaRoot(false)

	linkbaseRef := El("link:linkbaseRef",
		A("xlink:type", "simple"),
		A("xlink:href", e.presentationFile(mod)),
		A("xlink:role", rolePresLinkbaseRef),
		A("xlink:arcrole", arcroleLinkbase),
	)
	root.Add(El("xs:annotation").Add(El("xs:appinfo").Add(linkbaseRef)))
	root.Add(importXbrli())
	root.Add(El("xs:include", A("schemaLocation", e.contentFile(mod))))

	for _, n := range e.byMod[mod] {
		if n.isClass() {
			root.Add(El("xs:element",
				A("name", n.elementName()),
				A("id", n.row.ID),
				A("type", e.qname(n.row.ID+"Type")),
				A("substitutionGroup", "xbrli:tuple"),
				A("nillable", "false"),
			))
			continue
		}
		root.Add(El("xs:element",
			A("name", n.elementName()),
			A("id", n.row.ID),
			A("type", xbrliType(n.row.Datatype)),
			A("substitutionGroup", "xbrli:item"),
			A("xbrli:periodType", "duration"),
			A("nillable", "true"),
		))
	}

	path := filepath.Join(e.cfg.OutDir, mod, e.schemaFile(mod))
	return WriteXMLFile(path, root)
}

// emitContentSchema generates the tuple complex types, sequencing each
// class's direct children in LHM order.
func (e *Emitter) emitContentSchema(mod string) error {
	root := e.schemaRoot(false)
	root.Add(importXbrli())

	for _, n := range e.byMod[mod] {
		if !n.isClass() {
			continue
		}
		seq := El("xs:sequence")
		for _, child := range n.children {
			min, max := occurs(child.row.Multiplicity)
			// Attributes without a stated multiplicity are optional unless
			// they are the primary key.
			if child.row.Type == model.RowAttribute && child.row.Multiplicity == "" && child.row.Identifier == "" {
				min = "0"
			}
			seq.Add(El("xs:element",
				A("ref", e.qname(child.elementName())),
				A("minOccurs", min),
				A("maxOccurs", max),
			))
		}
		complexType := El("xs:complexType", A("name", n.row.ID+"Type")).
			Add(seq).
			Add(El("xs:attribute", A("name", "id"), A("type", "xs:ID")))
		root.Add(complexType)
	}

	path := filepath.Join(e.cfg.OutDir, mod, e.contentFile(mod))
	return WriteXMLFile(path, root)
}
