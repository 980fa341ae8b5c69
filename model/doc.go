// Package model provides the intermediate representation (IR) for generated
// label sheets.
//
// This package defines the data structures that describe where every QR
// symbol and caption ends up on the output pages. The layout engine produces
// these types; renderers and tests consume them, making them the primary API
// for inspecting a placement plan before (or instead of) writing a PDF.
//
// # Document Structure
//
// The [Document] type represents a complete sheet with metadata and pages:
//
//	doc := model.NewDocument()
//	doc.Metadata.Title = "Protection point labels"
//	doc.AddPage(page)
//
// Each [Page] contains its dimensions and an ordered list of [Cell] values,
// one per placed QR symbol, in placement order.
//
// # Geometry
//
// Geometric primitives support position and layout calculations:
//
//   - [BBox] - bounding box with intersection and containment checks
//   - [Point] - 2D point with distance calculation
//
// All coordinates use the PDF convention: origin at the bottom-left of the
// page, Y increasing upward, units in points (1/72 inch).
package model
