package models

// ControlEntry is the internal identity of one input control, derived from
// a single sub-filter of the state document. It ties together everything the
// two document rewriters need: the sub-filter's position, the internal field
// name used in filter expressions, the external parameter name used in the
// report definition, and the display label users configure values by.
//
// Entries are ephemeral: rebuilt from a freshly fetched state document for
// every report job.
type ControlEntry struct {
	// Index is the sub-filter's 0-based position in document order.
	Index int

	// InternalName is the field name on the left side of the sub-filter's
	// expression (e.g. "YEAR").
	InternalName string

	// SingleValued is true for equality controls (operator "=="), false
	// for set-membership controls.
	SingleValued bool

	// ParamName is the external parameter name the report-definition
	// document keys its defaults by (e.g. "P_YEAR").
	ParamName string

	// Label is the display label resolved from the state document's
	// grouping metadata (e.g. "Year").
	Label string

	// NewValues holds the normalized values applied by the state rewriter.
	// Nil until the control is targeted; exactly one element for
	// single-valued controls.
	NewValues []string
}

// Letter returns the sub-filter letter the server uses in combined filter
// expressions: index 0 is 'A', 1 is 'B', and so on.
func (e *ControlEntry) Letter() rune {
	return rune('A' + e.Index)
}

// Targeted reports whether the state rewriter attached normalized values to
// this entry.
func (e *ControlEntry) Targeted() bool {
	return e.NewValues != nil
}

// ControlMap holds one ControlEntry per sub-filter, in document order.
type ControlMap []*ControlEntry

// ByLabel finds the entry for a display label.
//
// Returns the entry and true if found, nil and false otherwise.
func (m ControlMap) ByLabel(label string) (*ControlEntry, bool) {
	for _, entry := range m {
		if entry.Label == label {
			return entry, true
		}
	}
	return nil, false
}

// ByParam finds the entry for an external parameter name.
//
// Returns the entry and true if found, nil and false otherwise.
func (m ControlMap) ByParam(name string) (*ControlEntry, bool) {
	for _, entry := range m {
		if entry.ParamName == name {
			return entry, true
		}
	}
	return nil, false
}
