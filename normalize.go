package main

import (
	"strings"

	"controlsync/models"
)

// collapseWhitespace reduces every interior whitespace run to a single space
// and trims leading and trailing whitespace.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeValue matches a user-supplied candidate against a control's legal
// options, ignoring incidental whitespace, and returns the domain's canonical
// string so the stored value has exactly the server's formatting.
func NormalizeValue(label, candidate string, options []string) (string, error) {
	collapsed := collapseWhitespace(candidate)
	for _, option := range options {
		if collapsed == strings.TrimSpace(option) {
			return option, nil
		}
	}
	return "", &models.InvalidValueError{Label: label, Candidate: candidate}
}

// NormalizeValues normalizes a configured value for a control. Multi-valued
// controls take a comma-joined list and every piece must be legal; a
// single-valued control normalizes the whole candidate as one unit, so a
// comma-joined list against a single-valued control fails.
func NormalizeValues(label, candidate string, options []string, singleValued bool) ([]string, error) {
	if singleValued {
		value, err := NormalizeValue(label, candidate, options)
		if err != nil {
			return nil, err
		}
		return []string{value}, nil
	}

	pieces := strings.Split(candidate, ",")
	values := make([]string, 0, len(pieces))
	for _, piece := range pieces {
		value, err := NormalizeValue(label, piece, options)
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	return values, nil
}
