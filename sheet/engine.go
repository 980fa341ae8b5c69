package sheet

import (
	"errors"
	"fmt"
	"image"
)

// ErrNoLabels is returned by Layout when the input sequence is empty. No page
// is emitted in that case; callers should treat this as "nothing to generate"
// rather than as a render failure.
var ErrNoLabels = errors.New("no labels to place")

// Encoder converts one label string into a square raster image.
type Encoder interface {
	Encode(data string) (image.Image, error)
}

// Renderer receives the placed draw commands for a layout run. StartPage is
// called before the first placement and again on every page break; a new page
// implicitly finalizes the previous one.
type Renderer interface {
	StartPage() error
	// DrawImage places a symbol raster with its bottom-left corner at (x, y).
	DrawImage(img image.Image, x, y, w, h float64) error
	// DrawLabel places caption text horizontally centered on x with its
	// baseline at y.
	DrawLabel(text string, x, y float64) error
}

// Stats summarizes a completed layout run.
type Stats struct {
	Items int // units placed
	Pages int // pages emitted
}

// Engine places equal-sized symbol+caption units onto pages, left to right,
// top to bottom, in input order.
type Engine struct {
	geom Geometry
	enc  Encoder
}

// NewEngine creates an engine with the default A4 geometry.
func NewEngine(enc Encoder) (*Engine, error) {
	return NewEngineWithGeometry(enc, DefaultGeometry())
}

// NewEngineWithGeometry creates an engine with custom geometry. The geometry
// is validated up front; an engine is never constructed around a grid that
// cannot hold a single row.
func NewEngineWithGeometry(enc Encoder, geom Geometry) (*Engine, error) {
	if enc == nil {
		return nil, fmt.Errorf("encoder must not be nil")
	}
	if err := geom.Validate(); err != nil {
		return nil, fmt.Errorf("invalid geometry: %w", err)
	}
	return &Engine{geom: geom, enc: enc}, nil
}

// Geometry returns the engine's geometry.
func (e *Engine) Geometry() Geometry {
	return e.geom
}

// Layout places every label onto the renderer and returns placement stats.
//
// Each label is processed in order: wrap the row when it is full, break the
// page when the unit's caption band would cross the bottom margin, encode,
// emit the image and caption draw commands, advance the cursor. The page
// break check runs before every placement, not only after a row wrap.
//
// An empty input emits no page at all and returns ErrNoLabels. Encoder and
// renderer failures abort the run; no partial result should be considered
// valid output.
func (e *Engine) Layout(labels []string, r Renderer) (Stats, error) {
	if len(labels) == 0 {
		return Stats{}, ErrNoLabels
	}

	cur := newCursor(e.geom)
	if err := r.StartPage(); err != nil {
		return Stats{}, fmt.Errorf("starting page: %w", err)
	}
	pages := 1

	for i, label := range labels {
		if label == "" {
			return Stats{}, fmt.Errorf("item %d: empty label", i+1)
		}

		// The previous item completed a row; this one starts the next.
		if cur.row == e.geom.ItemsPerRow {
			cur.wrapRow(e.geom)
		}

		if cur.needsPageBreak(e.geom) {
			if err := r.StartPage(); err != nil {
				return Stats{}, fmt.Errorf("starting page %d: %w", pages+1, err)
			}
			pages++
			cur.startPage(e.geom)
		}

		img, err := e.enc.Encode(label)
		if err != nil {
			return Stats{}, fmt.Errorf("encoding item %d (%q): %w", i+1, label, err)
		}

		if err := r.DrawImage(img, cur.x, cur.y, e.geom.ItemSize, e.geom.ItemSize); err != nil {
			return Stats{}, fmt.Errorf("drawing item %d (%q): %w", i+1, label, err)
		}
		if err := r.DrawLabel(label, cur.x+e.geom.ItemSize/2, cur.y-e.geom.LabelOffset); err != nil {
			return Stats{}, fmt.Errorf("drawing caption %d (%q): %w", i+1, label, err)
		}

		cur.advance(e.geom)
	}

	return Stats{Items: len(labels), Pages: pages}, nil
}
