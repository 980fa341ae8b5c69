// Package render provides the PDF document renderer for label sheets.
//
// [PDF] implements the layout engine's renderer contract on top of the
// go-pdf/fpdf canvas. The engine works in PDF bottom-left coordinates; fpdf
// uses a top-left origin, so this package is the single place where the two
// conventions meet.
//
// Each symbol raster is PNG-encoded into a transient buffer, registered with
// the canvas and drawn; the buffer does not outlive the placement. Captions
// are drawn in Helvetica, horizontally centered on their anchor.
//
// Write failures are fatal: [PDF.Output] propagates them unrecovered, since a
// partially written sheet is not valid output.
package render
