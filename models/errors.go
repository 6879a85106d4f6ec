package models

import "fmt"

// TransportError wraps any failure talking to the report server: a fetch,
// a put, or the input-controls listing.
type TransportError struct {
	Op   string // "fetch", "put" or "list input controls"
	Path string
	Err  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// XMLParseError reports a malformed state or definition document.
type XMLParseError struct {
	Path string
	Err  error
}

func (e *XMLParseError) Error() string {
	return fmt.Sprintf("parse XML resource %s: %v", e.Path, e.Err)
}

func (e *XMLParseError) Unwrap() error { return e.Err }

// LabelResolutionError reports a sub-filter whose internal field name
// matches no entry in the state document's row or column groups.
type LabelResolutionError struct {
	FieldName string
}

func (e *LabelResolutionError) Error() string {
	return fmt.Sprintf("no row or column group resolves field %q to a label", e.FieldName)
}

// UnknownControlError reports a configured control label with no matching
// sub-filter in the state document.
type UnknownControlError struct {
	Label string
}

func (e *UnknownControlError) Error() string {
	return fmt.Sprintf("configured control %q not found in state document", e.Label)
}

// InvalidValueError reports a candidate value outside the control's
// legal-value domain.
type InvalidValueError struct {
	Label     string
	Candidate string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("value %q is not legal for control %q", e.Candidate, e.Label)
}

// UnknownParameterError reports a report-definition parameter with no
// control-map counterpart at all. This means the state and definition
// documents are out of sync, which is fatal.
type UnknownParameterError struct {
	Name string
}

func (e *UnknownParameterError) Error() string {
	return fmt.Sprintf("definition parameter %q has no matching sub-filter in state document", e.Name)
}
