package sheet

import (
	"fmt"
	"image"
	"time"

	"github.com/tsawler/qrsheet/model"
)

// DocumentRenderer records placements into a model.Document instead of
// drawing them. It backs the placement-plan API and the engine tests.
type DocumentRenderer struct {
	geom Geometry
	doc  *model.Document
	page *model.Page

	// pending holds the image box of the unit whose caption has not been
	// recorded yet. The engine always emits image then caption.
	pending *model.BBox
}

// NewDocumentRenderer creates a renderer recording placements for pages of
// the given geometry.
func NewDocumentRenderer(geom Geometry) *DocumentRenderer {
	doc := model.NewDocument()
	doc.Metadata.Creator = "qrsheet"
	doc.Metadata.CreationDate = time.Now()
	return &DocumentRenderer{geom: geom, doc: doc}
}

// StartPage begins a fresh page.
func (d *DocumentRenderer) StartPage() error {
	d.page = model.NewPage(d.geom.PageWidth, d.geom.PageHeight)
	d.doc.AddPage(d.page)
	return nil
}

// DrawImage records the symbol box of the next unit.
func (d *DocumentRenderer) DrawImage(_ image.Image, x, y, w, h float64) error {
	if d.page == nil {
		return fmt.Errorf("image drawn before any page was started")
	}
	box := model.NewBBox(x, y, w, h)
	d.pending = &box
	return nil
}

// DrawLabel completes the pending unit and appends it to the current page.
func (d *DocumentRenderer) DrawLabel(text string, x, y float64) error {
	if d.pending == nil {
		return fmt.Errorf("caption %q drawn without a preceding image", text)
	}
	box := *d.pending
	d.pending = nil
	d.page.AddCell(model.Cell{
		Label:    text,
		Box:      box,
		Caption:  model.Point{X: x, Y: y},
		FontSize: d.geom.LabelFontSize,
		Bounds: model.NewBBox(box.X, box.Y-d.geom.LabelBandHeight,
			box.Width, box.Height+d.geom.LabelBandHeight),
	})
	return nil
}

// Document returns the recorded placement plan.
func (d *DocumentRenderer) Document() *model.Document {
	return d.doc
}
