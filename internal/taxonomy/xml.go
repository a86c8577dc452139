package taxonomy

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"os"
	"strings"
)

// Attr is an XML attribute. Names carry their prefix verbatim; namespace
// declarations are ordinary attributes on the root element.
type Attr struct {
	Name  string
	Value string
}

// A builds an attribute.
func A(name, value string) Attr {
	return Attr{Name: name, Value: value}
}

// Elem is an XML element with attributes in insertion order. Linkbase and
// schema output must be deterministic, so nothing here ever sorts.
type Elem struct {
	Name     string
	Attrs    []Attr
	Children []*Elem
	Text     string
}

// El builds an element.
func El(name string, attrs ...Attr) *Elem {
	return &Elem{Name: name, Attrs: attrs}
}

// TextEl builds an element with character content.
func TextEl(name, text string, attrs ...Attr) *Elem {
	return &Elem{Name: name, Attrs: attrs, Text: text}
}

// Add appends children and returns the element for chaining.
func (e *Elem) Add(children ...*Elem) *Elem {
	e.Children = append(e.Children, children...)
	return e
}

// WriteXMLFile writes an XML document with a declaration and two-space
// indentation.
func WriteXMLFile(path string, root *Elem) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if _, err := w.WriteString(xml.Header); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := writeElem(w, root, 0); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	return nil
}

func writeElem(w *bufio.Writer, e *Elem, depth int) error {
	indent := strings.Repeat("  ", depth)
	w.WriteString(indent)
	w.WriteByte('<')
	w.WriteString(e.Name)
	for _, a := range e.Attrs {
		w.WriteByte(' ')
		w.WriteString(a.Name)
		w.WriteString(`="`)
		w.WriteString(escapeXML(a.Value))
		w.WriteByte('"')
	}

	switch {
	case len(e.Children) == 0 && e.Text == "":
		w.WriteString("/>\n")
	case len(e.Children) == 0:
		w.WriteByte('>')
		w.WriteString(escapeXML(e.Text))
		w.WriteString("</")
		w.WriteString(e.Name)
		w.WriteString(">\n")
	default:
		w.WriteString(">\n")
		for _, child := range e.Children {
			if err := writeElem(w, child, depth+1); err != nil {
				return err
			}
		}
		w.WriteString(indent)
		w.WriteString("</")
		w.WriteString(e.Name)
		w.WriteString(">\n")
	}
	return w.Flush()
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}
