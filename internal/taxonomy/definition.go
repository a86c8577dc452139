package taxonomy

import (
	"path/filepath"
	"strconv"

	"github.com/tidygl-dev/tidygl/internal/model"
)

// emitDefinitionLinkbase binds each class-rooted hypercube: an all arc from
// the primary to the hypercube, hypercube-dimension arcs to every ancestor
// dimension in path order, and domain-member arcs over the class subtree
// with a targetRole hand-off wherever a pluralized child class starts its
// own scope.
func (e *Emitter) emitDefinitionLinkbase() error {
	linkbase := El("link:linkbase",
		A("xmlns:link", nsLink),
		A("xmlns:xlink", nsXlink),
		A("xmlns:xbrldt", nsXbrldt),
	)

	for _, cls := range e.classes {
		linkbase.Add(e.definitionLink(cls))
	}

	path := filepath.Join(e.cfg.OutDir, "plt", e.definitionFile())
	return WriteXMLFile(path, linkbase)
}

func (e *Emitter) definitionLink(cls *node) *Elem {
	name := cls.elementName()
	role := e.cfg.roleURI(name)
	defLink := El("link:definitionLink",
		A("xlink:type", "extended"),
		A("xlink:role", role),
	)

	order := 0
	nextOrder := func() string {
		order++
		return strconv.Itoa(order)
	}

	addLoc := func(label, href string) {
		if e.markLoc(role, label) {
			return
		}
		defLink.Add(El("link:loc",
			A("xlink:type", "locator"),
			A("xlink:href", href),
			A("xlink:label", label),
		))
	}
	paletteLoc := func(id string) {
		addLoc("loc_"+id, e.dimensionalFile()+"#"+id)
	}
	conceptLoc := func(n *node) {
		addLoc("loc_"+n.row.ID, "../"+e.moduleOf(n.row)+"/"+e.schemaFile(e.moduleOf(n.row))+"#"+n.row.ID)
	}

	// has-hypercube binding.
	paletteLoc("p_" + name)
	paletteLoc("h_" + name)
	if !e.markArc(role, "all:p_"+name+">h_"+name) {
		defLink.Add(El("link:definitionArc",
			A("xlink:type", "arc"),
			A("xlink:arcrole", arcroleAll),
			A("xlink:from", "loc_p_"+name),
			A("xlink:to", "loc_h_"+name),
			A("order", nextOrder()),
			A("xbrldt:contextElement", "segment"),
			A("xbrldt:closed", "true"),
		))
	}

	// Every ancestor dimension in path order, the class's own last.
	for _, anc := range ancestors(cls) {
		dim := "d_" + anc.elementName()
		paletteLoc(dim)
		if e.markArc(role, "dim:h_"+name+">"+dim) {
			continue
		}
		defLink.Add(El("link:definitionArc",
			A("xlink:type", "arc"),
			A("xlink:arcrole", arcroleHyperDim),
			A("xlink:from", "loc_h_"+name),
			A("xlink:to", "loc_"+dim),
			A("order", nextOrder()),
		))
	}

	// Domain members of the primary, recursing through singular children.
	var addMembers func(parent *node)
	addMembers = func(parent *node) {
		for _, child := range parent.children {
			switch {
			case child.row.Type == model.RowClass && child.row.Plural():
				// A pluralized class starts its own scope; hand off to its
				// role instead of flattening its subtree here.
				target := "p_" + child.elementName()
				paletteLoc(target)
				if e.markArc(role, "member:p_"+name+">"+target) {
					continue
				}
				defLink.Add(El("link:definitionArc",
					A("xlink:type", "arc"),
					A("xlink:arcrole", arcroleDomainMember),
					A("xlink:from", "loc_p_"+name),
					A("xlink:to", "loc_"+target),
					A("order", nextOrder()),
					A("xbrldt:targetRole", e.cfg.roleURI(child.elementName())),
				))
			case child.isClass():
				addMembers(child)
			default:
				conceptLoc(child)
				if e.markArc(role, "member:p_"+name+">"+child.row.ID) {
					continue
				}
				defLink.Add(El("link:definitionArc",
					A("xlink:type", "arc"),
					A("xlink:arcrole", arcroleDomainMember),
					A("xlink:from", "loc_p_"+name),
					A("xlink:to", "loc_"+child.row.ID),
					A("order", nextOrder()),
				))
			}
		}
	}
	addMembers(cls)

	return defLink
}
