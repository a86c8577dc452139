package refdata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tidygl-dev/tidygl/internal/csvio"
	"github.com/tidygl-dev/tidygl/internal/model"
)

// BS/PL template CSV columns. The node name sits in the Level_N column
// matching its depth; Level_1..Level_10 are mutually exclusive per row.
const (
	ColTemplateSeq     = "seq"
	ColTemplateType    = "type"
	ColTemplateAccount = "Ledger_Account_Number"
)

// LoadTemplate parses a BS or PL template CSV into hierarchy nodes in file
// order.
func LoadTemplate(records [][]string) ([]model.HierarchyNode, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("empty template file")
	}
	h := csvio.HeaderIndex(records[0])
	if err := h.Require(ColTemplateSeq, ColTemplateType, "Level_1"); err != nil {
		return nil, err
	}

	var nodes []model.HierarchyNode
	for i, rec := range records[1:] {
		level, name := levelAndName(h, rec)
		if level == 0 {
			continue // blank structural row
		}

		seqText := h.Get(rec, ColTemplateSeq)
		seq, err := strconv.Atoi(seqText)
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing seq %q: %w", i+2, seqText, err)
		}

		node := model.HierarchyNode{
			Seq:          seq,
			Level:        level,
			Type:         h.Get(rec, ColTemplateType),
			Name:         name,
			Account:      h.Get(rec, ColTemplateAccount),
			Category:     model.Category(strings.ToLower(h.Get(rec, ColCategory))),
			ETaxCategory: h.Get(rec, ColETaxCategory),
		}
		if n := h.Get(rec, ColETaxName); n != "" {
			node.Name = n
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

func levelAndName(h csvio.Header, rec []string) (int, string) {
	for level := 1; level <= model.MaxHierarchyLevels; level++ {
		if name := h.Get(rec, fmt.Sprintf("Level_%d", level)); name != "" {
			return level, name
		}
	}
	return 0, ""
}
