package taxonomy

import (
	"fmt"
	"path/filepath"
)

func (e *Emitter) paletteFile() string {
	return fmt.Sprintf("plt-all-%s.xsd", e.cfg.Version)
}

func (e *Emitter) dimensionalFile() string {
	return fmt.Sprintf("plt-oim-%s.xsd", e.cfg.Version)
}

func (e *Emitter) definitionFile() string {
	return fmt.Sprintf("plt-def-%s.xml", e.cfg.Version)
}

// emitPalette writes the schema that pulls every module schema together and
// references each module's label linkbases.
func (e *Emitter) emitPalette() error {
	root := e.schemaRoot(false)

	appinfo := El("xs:appinfo")
	for _, mod := range e.modules {
		for _, lang := range []string{"", e.cfg.Lang} {
			appinfo.Add(El("link:linkbaseRef",
				A("xlink:type", "simple"),
				A("xlink:href", fmt.Sprintf("../%s/lang/%s", mod, e.labelFile(mod, lang))),
				A("xlink:role", roleLabelLinkbaseRef),
				A("xlink:arcrole", arcroleLinkbase),
			))
		}
	}
	root.Add(El("xs:annotation").Add(appinfo))
	root.Add(importXbrli())
	for _, mod := range e.modules {
		root.Add(El("xs:include",
			A("schemaLocation", fmt.Sprintf("../%s/%s", mod, e.schemaFile(mod)))))
	}

	return WriteXMLFile(filepath.Join(e.cfg.OutDir, "plt", e.paletteFile()), root)
}

// emitDimensionalPalette declares, per class, the hypercube, dimension, and
// primary elements plus the definition-link role, and the shared typed
// domain the dimensions refer to.
func (e *Emitter) emitDimensionalPalette() error {
	root := e.schemaRoot(true)

	appinfo := El("xs:appinfo")
	for _, cls := range e.classes {
		name := cls.elementName()
		appinfo.Add(El("link:roleType",
			A("roleURI", e.cfg.roleURI(name)),
			A("id", "link_"+name),
		).Add(
			TextEl("link:definition", cls.row.Name),
			TextEl("link:usedOn", "link:definitionLink"),
		))
	}
	root.Add(El("xs:annotation").Add(appinfo))
	root.Add(importXbrli())
	root.Add(El("xs:import", A("namespace", nsXbrldt), A("schemaLocation", locXbrldt)))
	root.Add(El("xs:include", A("schemaLocation", e.paletteFile())))

	// One reusable typed domain for every dimension.
	root.Add(El("xs:element",
		A("name", typedDomainID),
		A("id", typedDomainID),
		A("type", "xs:string"),
	))

	for _, cls := range e.classes {
		name := cls.elementName()
		root.Add(El("xs:element",
			A("name", "h_"+name),
			A("id", "h_"+name),
			A("type", "xbrli:stringItemType"),
			A("substitutionGroup", "xbrldt:hypercubeItem"),
			A("abstract", "true"),
			A("nillable", "true"),
			A("xbrli:periodType", "duration"),
		))
		root.Add(El("xs:element",
			A("name", "d_"+name),
			A("id", "d_"+name),
			A("type", "xbrli:stringItemType"),
			A("substitutionGroup", "xbrldt:dimensionItem"),
			A("abstract", "true"),
			A("nillable", "true"),
			A("xbrli:periodType", "duration"),
			A("xbrldt:typedDomainRef", "#"+typedDomainID),
		))
		root.Add(El("xs:element",
			A("name", "p_"+name),
			A("id", "p_"+name),
			A("type", "xbrli:stringItemType"),
			A("substitutionGroup", "xbrli:item"),
			A("abstract", "true"),
			A("nillable", "true"),
			A("xbrli:periodType", "duration"),
		))
	}

	return WriteXMLFile(filepath.Join(e.cfg.OutDir, "plt", e.dimensionalFile()), root)
}
