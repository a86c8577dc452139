package taxonomy

import "path/filepath"

// emitLabelLinkbases writes one label linkbase per locale for a module: the
// base (English) file and one for the configured local language.
func (e *Emitter) emitLabelLinkbases(mod string) error {
	if err := e.emitLabelLinkbase(mod, ""); err != nil {
		return err
	}
	return e.emitLabelLinkbase(mod, e.cfg.Lang)
}

func (e *Emitter) emitLabelLinkbase(mod, lang string) error {
	linkbase := El("link:linkbase",
		A("xmlns:link", nsLink),
		A("xmlns:xlink", nsXlink),
	)
	labelLink := El("link:labelLink",
		A("xlink:type", "extended"),
		A("xlink:role", roleLink),
	)

	xmlLang := "en"
	if lang != "" {
		xmlLang = lang
	}

	for _, n := range e.byMod[mod] {
		label, documentation := n.row.Name, n.row.Definition
		if lang != "" {
			if n.row.LabelLocal != "" {
				label = n.row.LabelLocal
			}
			if n.row.DefinitionLocal != "" {
				documentation = n.row.DefinitionLocal
			}
		}

		labelLink.Add(El("link:loc",
			A("xlink:type", "locator"),
			A("xlink:href", "../"+e.schemaFile(mod)+"#"+n.row.ID),
			A("xlink:label", "loc_"+n.row.ID),
		))
		labelLink.Add(TextEl("link:label", label,
			A("xlink:type", "resource"),
			A("xlink:label", "label_"+n.row.ID),
			A("xlink:role", roleLabel),
			A("xml:lang", xmlLang),
		))
		labelLink.Add(El("link:labelArc",
			A("xlink:type", "arc"),
			A("xlink:arcrole", arcroleConceptLabel),
			A("xlink:from", "loc_"+n.row.ID),
			A("xlink:to", "label_"+n.row.ID),
		))

		if documentation != "" {
			labelLink.Add(TextEl("link:label", documentation,
				A("xlink:type", "resource"),
				A("xlink:label", "doc_"+n.row.ID),
				A("xlink:role", roleDocumentation),
				A("xml:lang", xmlLang),
			))
			labelLink.Add(El("link:labelArc",
				A("xlink:type", "arc"),
				A("xlink:arcrole", arcroleConceptLabel),
				A("xlink:from", "loc_"+n.row.ID),
				A("xlink:to", "doc_"+n.row.ID),
			))
		}
	}

	linkbase.Add(labelLink)
	path := filepath.Join(e.cfg.OutDir, mod, "lang", e.labelFile(mod, lang))
	return WriteXMLFile(path, linkbase)
}
