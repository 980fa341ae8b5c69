package sheet

// cursor is the mutable layout state threaded through a run: the position of
// the next symbol and the count of items already placed in the current row.
// The engine owns the cursor exclusively; y is always the bottom edge of the
// current row's symbol band.
type cursor struct {
	x, y float64
	row  int
}

// newCursor returns a cursor at the top-left placement of the first page.
func newCursor(g Geometry) cursor {
	return cursor{
		x: g.RowStartX(),
		y: g.TopY(),
	}
}

// wrapRow starts a new row: reset the row counter and x, move y down one row.
func (c *cursor) wrapRow(g Geometry) {
	c.row = 0
	c.x = g.RowStartX()
	c.y -= g.RowAdvance()
}

// needsPageBreak reports whether the next unit's lowest extent, the bottom of
// its caption band, would cross the bottom margin.
func (c *cursor) needsPageBreak(g Geometry) bool {
	return c.y-g.LabelBandHeight < g.Margin
}

// startPage resets the cursor to the top-left placement of a fresh page.
func (c *cursor) startPage(g Geometry) {
	c.x = g.RowStartX()
	c.y = g.TopY()
	c.row = 0
}

// advance moves x to the next slot in the row and counts the placed item.
func (c *cursor) advance(g Geometry) {
	c.x += g.ItemSize + g.HorizontalGap()
	c.row++
}
