// Package qrsheet provides a fluent API for generating printable QR label
// sheets from switching-plan XML files.
//
// Basic usage:
//
//	result, warnings, err := qrsheet.Open("plan.xml").Generate()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", qrsheet.FormatWarnings(warnings))
//	}
//	fmt.Printf("%d labels on %d pages: %s\n", result.Labels, result.Pages, result.Path)
//
// With options:
//
//	result, _, err := qrsheet.Open("plan.xml").
//	    WithGeometry(geom).
//	    Output("labels.pdf").
//	    Generate()
//
// Input-side failures (missing file, malformed XML) are recovered into an
// empty label sequence plus warnings; an empty sequence makes terminal
// operations return [ErrNoLabels] without producing any output file. Write
// failures are fatal and propagate unrecovered.
//
// For advanced use cases, the lower-level xmlplan, sheet, qr and render
// packages are also available.
package qrsheet

// Open reads a switching-plan XML file and returns a Generator for fluent
// configuration. Labels are extracted lazily by the terminal operations.
//
// Example:
//
//	labels, warnings, err := qrsheet.Open("plan.xml").Labels()
func Open(filename string) *Generator {
	return &Generator{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromLabels creates a Generator over an already extracted label sequence,
// bypassing XML extraction. This is useful when labels come from another
// source, or when extraction and generation are reported separately.
//
// Example:
//
//	result, _, err := qrsheet.FromLabels(labels).Output("labels.pdf").Generate()
func FromLabels(labels []string) *Generator {
	return &Generator{
		labels:     append([]string(nil), labels...),
		fromLabels: true,
		options:    defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	doc := qrsheet.MustPlan(qrsheet.FromLabels(labels).Document())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustPlan is a helper that wraps a terminal operation returning
// (T, []Warning, error) and panics if the error is non-nil. It discards
// warnings and returns just the value.
func MustPlan[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
