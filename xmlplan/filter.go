package xmlplan

import "strings"

// Default filter constants, matching the planning system's export vocabulary.
const (
	// KeepDeletionType marks a protection point that is not scheduled for
	// removal.
	KeepDeletionType = "kein Abbau"

	// ExcludeMarker is the identifier substring that marks points excluded
	// from label printing.
	ExcludeMarker = "gl"
)

// Record is one protectionPoint occurrence, reduced to the fields the
// inclusion rule inspects.
type Record struct {
	Name         string // zbpName attribute, empty if absent
	HasOrdered   bool   // true if a direct orderedZbp child exists
	DeletionType string // orderedZbpDeletionType attribute of that child
}

// Filter holds the inclusion rule configuration.
type Filter struct {
	// KeepDeletionType is the deletion type a record's orderedZbp child must
	// carry for the record to be included.
	// Default: "kein Abbau"
	KeepDeletionType string

	// ExcludeSubstring excludes any identifier containing it. Empty disables
	// the exclusion.
	// Default: "gl"
	ExcludeSubstring string
}

// DefaultFilter returns the standard inclusion rule.
func DefaultFilter() Filter {
	return Filter{
		KeepDeletionType: KeepDeletionType,
		ExcludeSubstring: ExcludeMarker,
	}
}

// Accept reports whether a record's identifier should be printed. All four
// conditions must hold: identifier present, orderedZbp child present, keep
// sentinel matched, exclusion marker absent.
func (f Filter) Accept(rec Record) bool {
	if rec.Name == "" {
		return false
	}
	if !rec.HasOrdered {
		return false
	}
	if rec.DeletionType != f.KeepDeletionType {
		return false
	}
	if f.ExcludeSubstring != "" && strings.Contains(rec.Name, f.ExcludeSubstring) {
		return false
	}
	return true
}
