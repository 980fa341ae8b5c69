package model

import "time"

// Document represents a complete generated sheet
type Document struct {
	Metadata Metadata
	Pages    []*Page
}

// Metadata contains document-level information
type Metadata struct {
	Title        string
	Creator      string
	CreationDate time.Time
}

// NewDocument creates a new empty document
func NewDocument() *Document {
	return &Document{
		Pages: make([]*Page, 0),
	}
}

// AddPage adds a page to the document
func (d *Document) AddPage(page *Page) {
	page.Number = len(d.Pages) + 1
	d.Pages = append(d.Pages, page)
}

// GetPage returns a page by number (1-indexed)
func (d *Document) GetPage(number int) *Page {
	if number < 1 || number > len(d.Pages) {
		return nil
	}
	return d.Pages[number-1]
}

// PageCount returns the total number of pages
func (d *Document) PageCount() int {
	return len(d.Pages)
}

// CellCount returns the total number of placed units across all pages
func (d *Document) CellCount() int {
	count := 0
	for _, page := range d.Pages {
		count += page.CellCount()
	}
	return count
}

// Labels returns the caption text of every unit in the document,
// pages in order, units in placement order within each page
func (d *Document) Labels() []string {
	var labels []string
	for _, page := range d.Pages {
		labels = append(labels, page.Labels()...)
	}
	return labels
}
