package qrsheet

import (
	"strings"

	"github.com/tsawler/qrsheet/model"
	"github.com/tsawler/qrsheet/qr"
	"github.com/tsawler/qrsheet/render"
	"github.com/tsawler/qrsheet/sheet"
	"github.com/tsawler/qrsheet/xmlplan"
)

// ErrNoLabels is returned by terminal operations when no labels are available
// to place, either because the input produced none or because extraction was
// recovered into an empty sequence. It is distinct from any render failure;
// no output file exists in either case.
var ErrNoLabels = sheet.ErrNoLabels

// Warning represents a non-fatal issue encountered during generation.
// Warnings indicate recovered input-side problems; the result they accompany
// is still valid (typically an empty label sequence).
type Warning struct {
	Stage   string // pipeline stage, e.g. "extract"
	Message string
}

func (w Warning) String() string {
	return "[" + w.Stage + "] " + w.Message
}

// FormatWarnings renders warnings one per line for display.
func FormatWarnings(warnings []Warning) string {
	lines := make([]string, 0, len(warnings))
	for _, w := range warnings {
		lines = append(lines, w.String())
	}
	return strings.Join(lines, "\n")
}

// Result summarizes a completed generation run.
type Result struct {
	Labels int    // labels placed
	Pages  int    // pages emitted
	Path   string // output file written
}

// Generator provides a fluent interface for turning a switching plan into a
// QR label sheet. Each configuration method returns a new Generator instance,
// making it safe for concurrent use and allowing method chaining.
type Generator struct {
	// Source
	filename   string
	labels     []string
	fromLabels bool

	// Configuration
	options GenerateOptions

	// Accumulated error (fail-fast)
	err error

	// Warnings accumulated during processing
	warnings []Warning
}

// clone creates a shallow copy of the Generator with copied options.
// This ensures immutability - each chain method returns a new instance.
func (g *Generator) clone() *Generator {
	return &Generator{
		filename:   g.filename,
		labels:     g.labels,
		fromLabels: g.fromLabels,
		options:    g.options.clone(),
		err:        g.err,
		warnings:   append([]Warning(nil), g.warnings...),
	}
}

// WithFilter sets the record inclusion rule used during extraction.
func (g *Generator) WithFilter(f xmlplan.Filter) *Generator {
	ng := g.clone()
	ng.options.filter = f
	return ng
}

// WithGeometry sets the page and grid geometry. The geometry is validated
// when a terminal operation runs.
func (g *Generator) WithGeometry(geom sheet.Geometry) *Generator {
	ng := g.clone()
	ng.options.geometry = geom
	return ng
}

// WithEncoder sets the QR encoder configuration.
func (g *Generator) WithEncoder(config qr.Config) *Generator {
	ng := g.clone()
	ng.options.encoder = config
	return ng
}

// Output sets the output file path. Default: qrcodes_output.pdf.
func (g *Generator) Output(path string) *Generator {
	ng := g.clone()
	ng.options.output = path
	return ng
}

// resolveLabels produces the label sequence for this run. Extraction
// failures are recovered here, at the boundary: the caller gets an empty
// sequence plus a warning, never a raw fault from the XML layer.
func (g *Generator) resolveLabels() ([]string, []Warning) {
	warnings := append([]Warning(nil), g.warnings...)

	if g.fromLabels {
		return g.labels, warnings
	}
	if g.filename == "" {
		warnings = append(warnings, Warning{Stage: "extract", Message: "no plan file specified"})
		return nil, warnings
	}

	r, err := xmlplan.Open(g.filename)
	if err != nil {
		warnings = append(warnings, Warning{Stage: "extract", Message: err.Error()})
		return nil, warnings
	}
	return r.Labels(g.options.filter), warnings
}

// Labels extracts and returns the label sequence without generating a sheet.
// Input-side failures are recovered into an empty sequence plus warnings; the
// returned error is reserved for a previously failed chain.
func (g *Generator) Labels() ([]string, []Warning, error) {
	if g.err != nil {
		return nil, g.warnings, g.err
	}
	labels, warnings := g.resolveLabels()
	return labels, warnings, nil
}

// Document computes the full placement plan without writing a PDF. The
// returned document records the position and caption of every unit, page by
// page, and is byte-for-byte reproducible for the same input and geometry.
func (g *Generator) Document() (*model.Document, []Warning, error) {
	if g.err != nil {
		return nil, g.warnings, g.err
	}
	labels, warnings := g.resolveLabels()
	if len(labels) == 0 {
		return nil, warnings, ErrNoLabels
	}

	engine, err := sheet.NewEngineWithGeometry(
		qr.NewEncoderWithConfig(g.options.encoder), g.options.geometry)
	if err != nil {
		return nil, warnings, err
	}

	recorder := sheet.NewDocumentRenderer(g.options.geometry)
	if _, err := engine.Layout(labels, recorder); err != nil {
		return nil, warnings, err
	}
	return recorder.Document(), warnings, nil
}

// Generate lays out every label and writes the finished PDF. It returns
// ErrNoLabels, with no file produced, when nothing is available to place;
// render and write failures propagate unrecovered.
func (g *Generator) Generate() (*Result, []Warning, error) {
	if g.err != nil {
		return nil, g.warnings, g.err
	}
	labels, warnings := g.resolveLabels()
	if len(labels) == 0 {
		return nil, warnings, ErrNoLabels
	}

	engine, err := sheet.NewEngineWithGeometry(
		qr.NewEncoderWithConfig(g.options.encoder), g.options.geometry)
	if err != nil {
		return nil, warnings, err
	}

	renderer := render.NewPDF(g.options.geometry)
	stats, err := engine.Layout(labels, renderer)
	if err != nil {
		return nil, warnings, err
	}
	if err := renderer.Output(g.options.output); err != nil {
		return nil, warnings, err
	}

	return &Result{
		Labels: stats.Items,
		Pages:  stats.Pages,
		Path:   g.options.output,
	}, warnings, nil
}
