package taxonomy

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidygl-dev/tidygl/internal/csvio"
)

type csvMeta struct {
	DocumentInfo   documentInfo             `json:"documentInfo"`
	TableTemplates map[string]tableTemplate `json:"tableTemplates"`
	Tables         map[string]csvTable      `json:"tables"`
}

type documentInfo struct {
	DocumentType string            `json:"documentType"`
	Namespaces   map[string]string `json:"namespaces"`
	Taxonomy     []string          `json:"taxonomy"`
}

type tableTemplate struct {
	Dimensions map[string]string    `json:"dimensions,omitempty"`
	Columns    map[string]csvColumn `json:"columns"`
}

type csvColumn struct {
	Dimensions map[string]string `json:"dimensions,omitempty"`
}

type csvTable struct {
	Template string `json:"template"`
	URL      string `json:"url"`
}

// buildTemplate collects the table template for the chosen scope root: one
// dimension column for the root and for every plural class under it, and
// one concept column per reachable scalar attribute.
func (e *Emitter) buildTemplate() (tableTemplate, []string) {
	template := tableTemplate{
		Dimensions: make(map[string]string),
		Columns:    make(map[string]csvColumn),
	}
	var order []string

	addDimension := func(cls *node) {
		col := cls.elementName()
		template.Dimensions[e.qname("d_"+col)] = "$" + col
		template.Columns[col] = csvColumn{}
		order = append(order, col)
	}

	var walk func(n *node)
	walk = func(n *node) {
		for _, child := range n.children {
			switch {
			case child.isClass() && child.row.Plural():
				addDimension(child)
				walk(child)
			case child.isClass():
				walk(child)
			default:
				col := child.elementName()
				dims := map[string]string{"concept": e.qname(col)}
				if isMonetary(child.row.Datatype) {
					dims["unit"] = "iso4217:" + e.cfg.Currency
				}
				template.Columns[col] = csvColumn{Dimensions: dims}
				order = append(order, col)
			}
		}
	}

	addDimension(e.table)
	walk(e.table)
	return template, order
}

// Meta exposes the template's dimension and column bindings for callers
// that inspect them without reading the emitted files back.
func (e *Emitter) Meta() (dimensions map[string]string, columns map[string]map[string]string) {
	template, _ := e.buildTemplate()
	columns = make(map[string]map[string]string, len(template.Columns))
	for name, col := range template.Columns {
		columns[name] = col.Dimensions
	}
	return template.Dimensions, columns
}

// emitCSVMeta writes the xBRL-CSV metadata JSON and a skeleton CSV whose
// header row lists every column in tree order.
func (e *Emitter) emitCSVMeta() error {
	rootName := e.table.elementName()
	template, columnOrder := e.buildTemplate()

	templateName := rootName + "_template"
	skeleton := fmt.Sprintf("%s-%s-skeleton.csv", rootName, e.cfg.Version)
	meta := csvMeta{
		DocumentInfo: documentInfo{
			DocumentType: docTypeXbrlCSV,
			Namespaces: map[string]string{
				e.cfg.Prefix: e.cfg.Namespace,
				"iso4217":    "http://www.xbrl.org/2003/iso4217",
			},
			Taxonomy: []string{"plt/" + e.dimensionalFile()},
		},
		TableTemplates: map[string]tableTemplate{templateName: template},
		Tables: map[string]csvTable{
			rootName + "_table": {Template: templateName, URL: skeleton},
		},
	}

	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling xBRL-CSV meta: %w", err)
	}
	metaPath := filepath.Join(e.cfg.OutDir, fmt.Sprintf("%s-%s.json", rootName, e.cfg.Version))
	if err := os.WriteFile(metaPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing xBRL-CSV meta: %w", err)
	}

	return csvio.WriteFile(filepath.Join(e.cfg.OutDir, skeleton), [][]string{columnOrder}, false)
}
