// Package lhm reads and writes Logical Hierarchical Model CSVs.
package lhm

import (
	"fmt"
	"strconv"

	"github.com/tidygl-dev/tidygl/internal/csvio"
	"github.com/tidygl-dev/tidygl/internal/model"
)

// Header is the LHM CSV column list, in file order.
var Header = []string{
	"sequence", "level", "type", "identifier", "name", "datatype",
	"multiplicity", "domain_name", "definition", "module", "class_term",
	"id", "path", "semantic_path", "abbreviation_path",
	"label_local", "definition_local", "element", "xpath",
}

const (
	colSeq = iota
	colLevel
	colType
	colIdentifier
	colName
	colDatatype
	colMultiplicity
	colDomainName
	colDefinition
	colModule
	colClassTerm
	colID
	colPath
	colSemanticPath
	colAbbreviationPath
	colLabelLocal
	colDefinitionLocal
	colElement
	colXPath
	numFields
)

// Marshal converts an LHM row to a CSV record.
func Marshal(r model.LhmRow) []string {
	rec := make([]string, numFields)
	rec[colSeq] = strconv.Itoa(r.Seq)
	rec[colLevel] = strconv.Itoa(r.Level)
	rec[colType] = string(r.Type)
	rec[colIdentifier] = r.Identifier
	rec[colName] = r.Name
	rec[colDatatype] = r.Datatype
	rec[colMultiplicity] = r.Multiplicity
	rec[colDomainName] = r.DomainName
	rec[colDefinition] = r.Definition
	rec[colModule] = r.Module
	rec[colClassTerm] = r.ClassTerm
	rec[colID] = r.ID
	rec[colPath] = r.Path
	rec[colSemanticPath] = r.SemanticPath
	rec[colAbbreviationPath] = r.AbbreviationPath
	rec[colLabelLocal] = r.LabelLocal
	rec[colDefinitionLocal] = r.DefinitionLocal
	rec[colElement] = r.Element
	rec[colXPath] = r.XPath
	return rec
}

// Unmarshal converts a CSV record to an LHM row.
func Unmarshal(rec []string) (model.LhmRow, error) {
	if len(rec) != numFields {
		return model.LhmRow{}, fmt.Errorf("expected %d fields, got %d", numFields, len(rec))
	}
	seq, err := strconv.Atoi(rec[colSeq])
	if err != nil {
		return model.LhmRow{}, fmt.Errorf("parsing sequence %q: %w", rec[colSeq], err)
	}
	level, err := strconv.Atoi(rec[colLevel])
	if err != nil {
		return model.LhmRow{}, fmt.Errorf("parsing level %q: %w", rec[colLevel], err)
	}
	return model.LhmRow{
		Seq:              seq,
		Level:            level,
		Type:             model.RowType(rec[colType]),
		Identifier:       rec[colIdentifier],
		Name:             rec[colName],
		Datatype:         rec[colDatatype],
		Multiplicity:     rec[colMultiplicity],
		DomainName:       rec[colDomainName],
		Definition:       rec[colDefinition],
		Module:           rec[colModule],
		ClassTerm:        rec[colClassTerm],
		ID:               rec[colID],
		Path:             rec[colPath],
		SemanticPath:     rec[colSemanticPath],
		AbbreviationPath: rec[colAbbreviationPath],
		LabelLocal:       rec[colLabelLocal],
		DefinitionLocal:  rec[colDefinitionLocal],
		Element:          rec[colElement],
		XPath:            rec[colXPath],
	}, nil
}

// MarshalAll converts LHM rows to CSV records, header first.
func MarshalAll(rows []model.LhmRow) [][]string {
	records := make([][]string, 0, len(rows)+1)
	records = append(records, Header)
	for _, r := range rows {
		records = append(records, Marshal(r))
	}
	return records
}

// Read parses CSV records into validated LHM rows.
func Read(records [][]string) ([]model.LhmRow, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("LHM: empty file")
	}
	var rows []model.LhmRow
	for i, rec := range records[1:] {
		row, err := Unmarshal(rec)
		if err != nil {
			return nil, fmt.Errorf("LHM row %d: %w", i+2, err)
		}
		rows = append(rows, row)
	}
	if err := Validate(rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// ReadFile reads and parses one LHM CSV.
func ReadFile(path, encoding string) ([]model.LhmRow, error) {
	records, err := csvio.ReadFile(path, encoding)
	if err != nil {
		return nil, err
	}
	return Read(records)
}

// WriteFile writes LHM rows with the standard header.
func WriteFile(path string, rows []model.LhmRow) error {
	return csvio.WriteFile(path, MarshalAll(rows), true)
}

// Validate rejects malformed templates: a level may grow by at most one per
// row, and every non-root row needs a parent above it.
func Validate(rows []model.LhmRow) error {
	previous := 0
	for _, r := range rows {
		if r.Level < 1 {
			return fmt.Errorf("LHM seq %d: level %d out of range", r.Seq, r.Level)
		}
		if r.Level > previous+1 {
			return fmt.Errorf("LHM seq %d: level jumps from %d to %d", r.Seq, previous, r.Level)
		}
		if r.Level > 1 && previous == 0 {
			return fmt.Errorf("LHM seq %d: non-root row has no parent", r.Seq)
		}
		previous = r.Level
	}
	return nil
}
