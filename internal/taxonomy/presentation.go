package taxonomy

import (
	"path/filepath"
	"strconv"
)

// emitPresentationLinkbase writes a module's parent-child tree in LHM
// order. Locators and arcs are de-duplicated per link role.
func (e *Emitter) emitPresentationLinkbase(mod string) error {
	linkbase := El("link:linkbase",
		A("xmlns:link", nsLink),
		A("xmlns:xlink", nsXlink),
	)
	presLink := El("link:presentationLink",
		A("xlink:type", "extended"),
		A("xlink:role", roleLink),
	)

	role := "presentation/" + mod
	addLoc := func(id string) {
		if e.markLoc(role, "loc_"+id) {
			return
		}
		presLink.Add(El("link:loc",
			A("xlink:type", "locator"),
			A("xlink:href", e.schemaFile(mod)+"#"+id),
			A("xlink:label", "loc_"+id),
		))
	}

	order := 0
	for _, n := range e.byMod[mod] {
		if n.parent == nil {
			addLoc(n.row.ID)
			continue
		}
		if e.moduleOf(n.parent.row) != mod {
			// Cross-module edges belong to the parent's linkbase.
			addLoc(n.row.ID)
			continue
		}

		key := n.parent.row.ID + ">" + n.row.ID
		if e.markArc(role, key) {
			continue
		}
		addLoc(n.parent.row.ID)
		addLoc(n.row.ID)
		order++
		presLink.Add(El("link:presentationArc",
			A("xlink:type", "arc"),
			A("xlink:arcrole", arcroleParentChild),
			A("xlink:from", "loc_"+n.parent.row.ID),
			A("xlink:to", "loc_"+n.row.ID),
			A("order", strconv.Itoa(order)),
		))
	}

	linkbase.Add(presLink)
	path := filepath.Join(e.cfg.OutDir, mod, e.presentationFile(mod))
	return WriteXMLFile(path, linkbase)
}
