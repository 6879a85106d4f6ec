package main

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/beevik/etree"

	"controlsync/models"
)

// RewriteState applies the configured control values into the state document
// and records the normalized values on the control map for the definition
// rewrite that follows.
//
// Each targeted sub-filter gets a freshly built expression replacing the old
// one. The mutation is purely positional: the sub-filter slot comes from the
// entry's index as derived by BuildControlMap on this same document.
func RewriteState(doc *etree.Document, controlMap models.ControlMap, controls map[string]string, domain models.Domain) error {
	subFilters := doc.Root().SelectElement("subFilters").SelectElements("subFilter")

	// Deterministic application order.
	labels := make([]string, 0, len(controls))
	for label := range controls {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	for _, label := range labels {
		entry, ok := controlMap.ByLabel(label)
		if !ok {
			return &models.UnknownControlError{Label: label}
		}

		options, _ := domain.Options(label)
		values, err := NormalizeValues(label, controls[label], options, entry.SingleValued)
		if err != nil {
			return err
		}

		expr := buildFilterExpression(entry.InternalName, entry.SingleValued, values)

		// Replace, not append: the prior expression is fully discarded and
		// the sub-filter keeps exactly one expressionString element.
		subFilter := subFilters[entry.Index]
		for _, old := range subFilter.SelectElements("expressionString") {
			subFilter.RemoveChild(old)
		}
		subFilter.CreateElement("expressionString").SetText(expr)

		entry.NewValues = values
		log.Printf("Rewrote sub-filter %c (%s): %s", entry.Letter(), label, expr)
	}

	return nil
}

// buildFilterExpression renders the server's filter syntax: equality for
// single-valued controls, set membership for multi-valued ones.
func buildFilterExpression(internalName string, singleValued bool, values []string) string {
	if singleValued {
		return fmt.Sprintf("%s == '%s'", internalName, values[0])
	}
	quoted := make([]string, len(values))
	for i, value := range values {
		quoted[i] = "'" + value + "'"
	}
	return fmt.Sprintf("%s in (%s)", internalName, strings.Join(quoted, ", "))
}
