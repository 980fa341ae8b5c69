// Package sheet provides the page layout engine that packs QR symbol cells
// onto fixed-size pages.
//
// The engine consumes an ordered list of label strings and emits one draw
// command pair (image, caption) per label, wrapping rows after a fixed number
// of items and breaking to a new page whenever the next unit would cross the
// bottom margin. Placement is deterministic: the same labels and the same
// [Geometry] always produce the same plan.
//
// # Layout
//
// The [Engine] orchestrates placement over two capability interfaces:
//
//	engine, err := sheet.NewEngine(encoder)
//	stats, err := engine.Layout(labels, renderer)
//
// [Encoder] turns one label into a raster image; [Renderer] receives the
// placed draw commands. Concrete implementations live elsewhere (package qr,
// package render); tests use recording stubs.
//
// # Geometry
//
// [Geometry] fixes the page dimensions, margins, item size, caption band and
// items per row. [DefaultGeometry] matches a 210x297mm page with 3cm symbols,
// five per row. The horizontal gap is derived so a full row exactly spans the
// usable width; a single-column geometry is horizontally centered instead.
//
// # Recording placements
//
// [DocumentRenderer] is a Renderer that records every placement into a
// model.Document instead of drawing, which makes the pagination state machine
// testable in isolation and lets callers inspect a plan without producing a
// file.
package sheet
