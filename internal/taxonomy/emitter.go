// Package taxonomy turns a Logical Hierarchical Model into a closed-world
// Dimensional-XBRL taxonomy: module schemas, label, presentation, and
// definition linkbases, plus the xBRL-CSV metadata and a skeleton CSV.
package taxonomy

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidygl-dev/tidygl/internal/lhm"
	"github.com/tidygl-dev/tidygl/internal/model"
)

// Config names the taxonomy being emitted.
type Config struct {
	OutDir    string
	Namespace string // target namespace, e.g. "http://www.example.com/tidygl"
	Prefix    string // namespace prefix for concepts
	Version   string // date-style version in file names
	Lang      string // local label language
	Currency  string // unit for monetary columns
	TableRoot string // class anchoring the xBRL-CSV table (default: LHM root)
}

func (c *Config) applyDefaults() {
	if c.Prefix == "" {
		c.Prefix = "gl"
	}
	if c.Version == "" {
		c.Version = "1.0"
	}
	if c.Lang == "" {
		c.Lang = "ja"
	}
	if c.Currency == "" {
		c.Currency = "JPY"
	}
	if c.Namespace == "" {
		c.Namespace = "http://www.example.com/" + c.Prefix
	}
}

// roleURI returns the definition-link role of a class.
func (c *Config) roleURI(name string) string {
	return c.Namespace + "/role/link_" + name
}

// node is one LHM row linked into the taxonomy tree.
type node struct {
	row      model.LhmRow
	parent   *node
	children []*node
}

func (n *node) elementName() string {
	if n.row.Element != "" {
		return n.row.Element
	}
	return n.row.ID
}

func (n *node) isClass() bool {
	return n.row.IsClassRow()
}

// Emitter writes every artefact of one taxonomy.
type Emitter struct {
	cfg     Config
	nodes   []*node
	root    *node
	table   *node    // scope root of the xBRL-CSV template
	modules []string // insertion order
	byMod   map[string][]*node
	classes []*node

	ids     map[string]bool            // element id guard, duplicates are fatal
	locSeen map[string]map[string]bool // link role -> loc label
	arcSeen map[string]map[string]bool // link role -> arc key
}

// New links the LHM rows into a tree and validates element ids.
func New(cfg Config, rows []model.LhmRow) (*Emitter, error) {
	cfg.applyDefaults()
	if err := lhm.Validate(rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("taxonomy: no LHM rows")
	}

	e := &Emitter{
		cfg:     cfg,
		byMod:   make(map[string][]*node),
		ids:     make(map[string]bool),
		locSeen: make(map[string]map[string]bool),
		arcSeen: make(map[string]map[string]bool),
	}

	var stack []*node
	for _, row := range rows {
		if row.ID == "" {
			return nil, fmt.Errorf("taxonomy: row %d (%s) has no element id", row.Seq, row.Name)
		}
		if e.ids[row.ID] {
			return nil, fmt.Errorf("taxonomy: duplicate element id %q", row.ID)
		}
		e.ids[row.ID] = true

		n := &node{row: row}
		stack = stack[:row.Level-1]
		if len(stack) > 0 {
			n.parent = stack[len(stack)-1]
			n.parent.children = append(n.parent.children, n)
		}
		stack = append(stack, n)

		e.nodes = append(e.nodes, n)
		if e.root == nil {
			e.root = n
		}
		mod := e.moduleOf(row)
		if _, ok := e.byMod[mod]; !ok {
			e.modules = append(e.modules, mod)
		}
		e.byMod[mod] = append(e.byMod[mod], n)
		if row.Type == model.RowClass {
			e.classes = append(e.classes, n)
		}
	}

	e.table = e.root
	if cfg.TableRoot != "" {
		e.table = nil
		for _, cls := range e.classes {
			if cls.row.ID == cfg.TableRoot || cls.elementName() == cfg.TableRoot {
				e.table = cls
				break
			}
		}
		if e.table == nil {
			return nil, fmt.Errorf("taxonomy: table root %q matches no class", cfg.TableRoot)
		}
	}
	return e, nil
}

func (e *Emitter) moduleOf(row model.LhmRow) string {
	if row.Module != "" {
		return strings.ToLower(row.Module)
	}
	return e.cfg.Prefix
}

// Emit writes the whole taxonomy directory.
func (e *Emitter) Emit() error {
	for _, mod := range e.modules {
		if err := os.MkdirAll(filepath.Join(e.cfg.OutDir, mod, "lang"), 0o755); err != nil {
			return fmt.Errorf("creating module dir %s: %w", mod, err)
		}
	}
	if err := os.MkdirAll(filepath.Join(e.cfg.OutDir, "plt"), 0o755); err != nil {
		return fmt.Errorf("creating palette dir: %w", err)
	}

	for _, mod := range e.modules {
		if err := e.emitModuleSchema(mod); err != nil {
			return err
		}
		if err := e.emitContentSchema(mod); err != nil {
			return err
		}
		if err := e.emitLabelLinkbases(mod); err != nil {
			return err
		}
		if err := e.emitPresentationLinkbase(mod); err != nil {
			return err
		}
	}
	if err := e.emitPalette(); err != nil {
		return err
	}
	if err := e.emitDimensionalPalette(); err != nil {
		return err
	}
	if err := e.emitDefinitionLinkbase(); err != nil {
		return err
	}
	return e.emitCSVMeta()
}

// markLoc reports whether a locator label was already emitted in a link
// role, recording it otherwise.
func (e *Emitter) markLoc(role, label string) bool {
	if e.locSeen[role] == nil {
		e.locSeen[role] = make(map[string]bool)
	}
	if e.locSeen[role][label] {
		return true
	}
	e.locSeen[role][label] = true
	return false
}

// markArc is the arc-edge counterpart of markLoc.
func (e *Emitter) markArc(role, key string) bool {
	if e.arcSeen[role] == nil {
		e.arcSeen[role] = make(map[string]bool)
	}
	if e.arcSeen[role][key] {
		return true
	}
	e.arcSeen[role][key] = true
	return false
}

// qname prefixes a concept name with the taxonomy prefix.
func (e *Emitter) qname(name string) string {
	return e.cfg.Prefix + ":" + name
}

// ancestors returns the class ancestry from the root down to n inclusive.
func ancestors(n *node) []*node {
	var chain []*node
	for cur := n; cur != nil; cur = cur.parent {
		if cur.isClass() {
			chain = append([]*node{cur}, chain...)
		}
	}
	return chain
}
