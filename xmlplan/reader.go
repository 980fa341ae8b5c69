package xmlplan

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"os"

	"golang.org/x/text/unicode/norm"
)

// Element and attribute names of the plan schema.
const (
	elemProtectionPoint = "protectionPoint"
	elemOrderedZbp      = "orderedZbp"
	attrZbpName         = "zbpName"
	attrDeletionType    = "orderedZbpDeletionType"
)

// node is a generic XML tree node. Records are matched by local element name
// at any depth, so the reader is independent of the surrounding schema.
type node struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Children []node     `xml:",any"`
}

func (n node) attr(name string) string {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// Reader provides access to a parsed switching plan.
type Reader struct {
	root node
}

// Open reads and parses a plan file. The content is sniffed before parsing so
// a non-XML file yields a single clear error instead of a decoder failure
// deep in the document.
func Open(filename string) (*Reader, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading plan file: %w", err)
	}
	if !looksLikeXML(data) {
		return nil, fmt.Errorf("%s does not look like an XML document", filename)
	}

	r := &Reader{}
	if err := xml.Unmarshal(data, &r.root); err != nil {
		return nil, fmt.Errorf("parsing plan XML: %w", err)
	}
	return r, nil
}

// Records returns every protectionPoint occurrence in the document, at any
// nesting depth, in traversal order.
func (r *Reader) Records() []Record {
	var records []Record
	collectRecords(r.root, &records)
	return records
}

// Labels returns the identifiers of all records accepted by the filter, in
// document traversal order, without deduplication. Identifiers are
// NFC-normalized so decomposed umlauts from foreign exports encode and print
// consistently.
func (r *Reader) Labels(f Filter) []string {
	var labels []string
	for _, rec := range r.Records() {
		if f.Accept(rec) {
			labels = append(labels, norm.NFC.String(rec.Name))
		}
	}
	return labels
}

// ExtractLabels opens a plan file and returns the labels accepted by the
// default filter.
func ExtractLabels(filename string) ([]string, error) {
	r, err := Open(filename)
	if err != nil {
		return nil, err
	}
	return r.Labels(DefaultFilter()), nil
}

// collectRecords walks the tree depth-first. A protectionPoint element is
// recorded and then descended into, so records nested inside other records
// are still found.
func collectRecords(n node, out *[]Record) {
	if n.XMLName.Local == elemProtectionPoint {
		*out = append(*out, makeRecord(n))
	}
	for _, child := range n.Children {
		collectRecords(child, out)
	}
}

// makeRecord reduces a protectionPoint element to the fields the inclusion
// rule inspects. Only direct orderedZbp children count; the first one wins.
func makeRecord(n node) Record {
	rec := Record{Name: n.attr(attrZbpName)}
	for _, child := range n.Children {
		if child.XMLName.Local == elemOrderedZbp {
			rec.HasOrdered = true
			rec.DeletionType = child.attr(attrDeletionType)
			break
		}
	}
	return rec
}

// looksLikeXML reports whether data plausibly starts an XML document: after
// an optional UTF-8 BOM and leading whitespace, the first byte must be '<'.
func looksLikeXML(data []byte) bool {
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})
	data = bytes.TrimLeft(data, " \t\r\n")
	return len(data) > 0 && data[0] == '<'
}
