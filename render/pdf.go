package render

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/go-pdf/fpdf"

	"github.com/tsawler/qrsheet/sheet"
)

const captionFont = "Helvetica"

// PDF renders placed draw commands onto a PDF canvas. It implements
// sheet.Renderer.
type PDF struct {
	pdf        *fpdf.Fpdf
	pageHeight float64
	fontSize   float64
	images     int
}

// NewPDF creates a renderer for pages of the given geometry. The canvas is
// positioned absolutely by the layout engine, so fpdf's own margins and auto
// page break are disabled.
func NewPDF(geom sheet.Geometry) *PDF {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: geom.PageWidth, Ht: geom.PageHeight},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetFont(captionFont, "", geom.LabelFontSize)

	return &PDF{
		pdf:        pdf,
		pageHeight: geom.PageHeight,
		fontSize:   geom.LabelFontSize,
	}
}

// StartPage begins a fresh page, finalizing the previous one.
func (p *PDF) StartPage() error {
	p.pdf.AddPage()
	p.pdf.SetFont(captionFont, "", p.fontSize)
	return p.pdf.Error()
}

// DrawImage places a symbol raster with its bottom-left corner at (x, y) in
// bottom-origin page coordinates.
func (p *PDF) DrawImage(img image.Image, x, y, w, h float64) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encoding symbol raster: %w", err)
	}

	p.images++
	name := fmt.Sprintf("qr-%d", p.images)
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	p.pdf.RegisterImageOptionsReader(name, opts, &buf)
	p.pdf.ImageOptions(name, x, p.pageHeight-(y+h), w, h, false, opts, 0, "")
	return p.pdf.Error()
}

// DrawLabel places caption text horizontally centered on x with its baseline
// at y in bottom-origin page coordinates.
func (p *PDF) DrawLabel(text string, x, y float64) error {
	width := p.pdf.GetStringWidth(text)
	p.pdf.Text(x-width/2, p.pageHeight-y, text)
	return p.pdf.Error()
}

// Output finalizes the document and writes it to path. Errors are fatal; no
// partial document is valid output.
func (p *PDF) Output(path string) error {
	if err := p.pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("writing PDF to %s: %w", path, err)
	}
	return nil
}
