package qrsheet

import (
	"github.com/tsawler/qrsheet/qr"
	"github.com/tsawler/qrsheet/sheet"
	"github.com/tsawler/qrsheet/xmlplan"
)

// DefaultOutputFilename is the output path used when none is configured.
const DefaultOutputFilename = "qrcodes_output.pdf"

// GenerateOptions holds configuration for sheet generation.
type GenerateOptions struct {
	output   string
	geometry sheet.Geometry
	filter   xmlplan.Filter
	encoder  qr.Config
}

// defaultOptions returns the default generation options.
func defaultOptions() GenerateOptions {
	return GenerateOptions{
		output:   DefaultOutputFilename,
		geometry: sheet.DefaultGeometry(),
		filter:   xmlplan.DefaultFilter(),
		encoder:  qr.DefaultConfig(),
	}
}

// clone creates a copy of GenerateOptions. All fields are value types, so a
// plain copy is already deep; the method keeps the chain's immutability
// explicit at the call sites.
func (o GenerateOptions) clone() GenerateOptions {
	return o
}
