// Package csvio reads and writes the interchange CSVs. Readers decode the
// configured text encoding and strip a UTF-8 BOM; writers always produce
// UTF-8 with an optional BOM for spreadsheet compatibility.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Decoder returns the text decoder for an encoding name. The empty name
// means UTF-8 with an optional BOM.
func Decoder(name string) (*encoding.Decoder, error) {
	switch strings.ToLower(name) {
	case "", "utf-8", "utf8", "utf-8-sig":
		return unicode.UTF8BOM.NewDecoder(), nil
	case "cp932", "shift_jis", "shift-jis", "sjis", "windows-31j":
		return japanese.ShiftJIS.NewDecoder(), nil
	default:
		return nil, fmt.Errorf("unsupported encoding %q", name)
	}
}

// NewReader wraps r in a CSV reader decoding the named encoding. Records may
// have varying field counts; callers index through a Header.
func NewReader(r io.Reader, encodingName string) (*csv.Reader, error) {
	dec, err := Decoder(encodingName)
	if err != nil {
		return nil, err
	}
	cr := csv.NewReader(transform.NewReader(r, dec))
	cr.FieldsPerRecord = -1
	return cr, nil
}

// ReadFile reads every record of a CSV file in the named encoding.
func ReadFile(path, encodingName string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	cr, err := NewReader(f, encodingName)
	if err != nil {
		return nil, err
	}
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return records, nil
}

// WriteFile writes records to path as UTF-8, prefixed with a BOM when
// withBOM is set.
func WriteFile(path string, records [][]string, withBOM bool) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if withBOM {
		if _, err := f.Write(utf8BOM); err != nil {
			return fmt.Errorf("writing BOM to %s: %w", path, err)
		}
	}

	cw := csv.NewWriter(f)
	for i, rec := range records {
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing %s row %d: %w", path, i+1, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	return nil
}
