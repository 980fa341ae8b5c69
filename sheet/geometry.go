package sheet

import "fmt"

// Measurement units expressed in points, the base PDF unit (1/72 inch).
const (
	Pt float64 = 1
	Cm float64 = 72 / 2.54
	Mm float64 = 72 / 25.4
)

// A4 page dimensions in points.
const (
	A4Width  = 210 * Mm
	A4Height = 297 * Mm
)

// Geometry holds the fixed page and grid configuration for a layout run.
// All lengths are in points; the coordinate origin is the bottom-left corner
// of the page.
type Geometry struct {
	// PageWidth and PageHeight are the full page dimensions.
	// Default: A4 (595.28 x 841.89 points)
	PageWidth  float64
	PageHeight float64

	// Margin is applied on all four sides.
	// Default: 1.5cm
	Margin float64

	// ItemSize is the width and height of one (square) QR symbol.
	// Default: 3cm
	ItemSize float64

	// LabelBandHeight is the vertical space reserved under each symbol for
	// its caption, padding included.
	// Default: 1cm
	LabelBandHeight float64

	// ItemsPerRow is the number of symbols per row. Must be at least 1.
	// Default: 5
	ItemsPerRow int

	// VerticalGap is the extra space between rows, beyond the caption band.
	// Default: 0.5cm
	VerticalGap float64

	// LabelFontSize is the caption font size in points.
	// Default: 8
	LabelFontSize float64

	// LabelOffset is the distance from the symbol bottom edge down to the
	// caption text baseline.
	// Default: 0.4cm
	LabelOffset float64
}

// DefaultGeometry returns the standard A4 label sheet configuration.
func DefaultGeometry() Geometry {
	return Geometry{
		PageWidth:       A4Width,
		PageHeight:      A4Height,
		Margin:          1.5 * Cm,
		ItemSize:        3 * Cm,
		LabelBandHeight: 1 * Cm,
		ItemsPerRow:     5,
		VerticalGap:     0.5 * Cm,
		LabelFontSize:   8,
		LabelOffset:     0.4 * Cm,
	}
}

// UsableWidth returns the page width minus both margins.
func (g Geometry) UsableWidth() float64 {
	return g.PageWidth - 2*g.Margin
}

// HorizontalGap returns the derived gap between items in a row, chosen so
// that ItemsPerRow items plus the gaps between them exactly span the usable
// width. A single-column geometry has no gap.
func (g Geometry) HorizontalGap() float64 {
	if g.ItemsPerRow <= 1 {
		return 0
	}
	return (g.UsableWidth() - float64(g.ItemsPerRow)*g.ItemSize) / float64(g.ItemsPerRow-1)
}

// RowStartX returns the X coordinate of the first item in a row. A
// single-column geometry is centered within the usable width; otherwise rows
// start at the left margin.
func (g Geometry) RowStartX() float64 {
	if g.ItemsPerRow == 1 {
		return g.Margin + (g.UsableWidth()-g.ItemSize)/2
	}
	return g.Margin
}

// TopY returns the Y coordinate of the bottom edge of a symbol in the first
// row of a page.
func (g Geometry) TopY() float64 {
	return g.PageHeight - g.Margin - g.ItemSize
}

// RowAdvance returns the vertical distance between the bottom edges of
// symbols in consecutive rows.
func (g Geometry) RowAdvance() float64 {
	return g.ItemSize + g.LabelBandHeight + g.VerticalGap
}

// Validate reports whether the geometry can place at least one full row on a
// page. Invalid geometry is rejected before any page is emitted.
func (g Geometry) Validate() error {
	if g.PageWidth <= 0 || g.PageHeight <= 0 {
		return fmt.Errorf("page dimensions must be positive, got %gx%g", g.PageWidth, g.PageHeight)
	}
	if g.Margin < 0 {
		return fmt.Errorf("margin must not be negative, got %g", g.Margin)
	}
	if g.ItemSize <= 0 {
		return fmt.Errorf("item size must be positive, got %g", g.ItemSize)
	}
	if g.LabelBandHeight < 0 || g.VerticalGap < 0 || g.LabelOffset < 0 {
		return fmt.Errorf("label band, vertical gap and label offset must not be negative")
	}
	if g.ItemsPerRow < 1 {
		return fmt.Errorf("items per row must be at least 1, got %d", g.ItemsPerRow)
	}
	if float64(g.ItemsPerRow)*g.ItemSize > g.UsableWidth() {
		return fmt.Errorf("%d items of size %g exceed the usable width %g",
			g.ItemsPerRow, g.ItemSize, g.UsableWidth())
	}
	// One row must fit between the margins, or the page-break check would
	// fire before every placement and the engine would never make progress.
	if g.ItemSize+g.LabelBandHeight > g.PageHeight-2*g.Margin {
		return fmt.Errorf("one row (item %g + label band %g) exceeds the usable height %g",
			g.ItemSize, g.LabelBandHeight, g.PageHeight-2*g.Margin)
	}
	return nil
}
