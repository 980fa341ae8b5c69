package model

// Page represents a single page of a generated sheet
type Page struct {
	Number int     // 1-indexed page number
	Width  float64 // Page width in points
	Height float64 // Page height in points
	Cells  []Cell  // Placed units, in placement order
}

// NewPage creates a new page with given dimensions
func NewPage(width, height float64) *Page {
	return &Page{
		Width:  width,
		Height: height,
		Cells:  make([]Cell, 0),
	}
}

// AddCell appends a placed unit to the page
func (p *Page) AddCell(cell Cell) {
	p.Cells = append(p.Cells, cell)
}

// CellCount returns the number of units placed on the page
func (p *Page) CellCount() int {
	return len(p.Cells)
}

// Labels returns the caption text of every unit on the page, in placement order
func (p *Page) Labels() []string {
	labels := make([]string, 0, len(p.Cells))
	for _, cell := range p.Cells {
		labels = append(labels, cell.Label)
	}
	return labels
}

// CellsInRegion returns the units whose bounds intersect a bounding box
func (p *Page) CellsInRegion(bbox BBox) []Cell {
	var cells []Cell
	for _, cell := range p.Cells {
		if bbox.Intersects(cell.Bounds) {
			cells = append(cells, cell)
		}
	}
	return cells
}
