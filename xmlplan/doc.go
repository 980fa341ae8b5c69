// Package xmlplan provides switching-plan XML parsing and label extraction.
//
// A plan document contains protectionPoint records, possibly nested at any
// depth. Each record carries a zbpName identifier attribute and may contain
// an orderedZbp child element whose orderedZbpDeletionType attribute states
// whether the point is scheduled for removal.
//
// # Extraction
//
// [Open] reads and parses a plan file; [Reader.Labels] applies the inclusion
// filter and returns identifiers in document traversal order:
//
//	r, err := xmlplan.Open("plan.xml")
//	if err != nil {
//	    // handle error
//	}
//	labels := r.Labels(xmlplan.DefaultFilter())
//
// A record's identifier is included iff the identifier attribute is present
// and non-empty, the orderedZbp child exists, its deletion type equals the
// filter's keep sentinel, and the identifier does not contain the filter's
// exclusion marker. Output preserves document order; duplicates are kept.
//
// Structural failures (missing file, malformed XML, non-XML content) surface
// as errors from Open; they are expected to be recovered by the caller into
// an empty label sequence plus a diagnostic.
package xmlplan
