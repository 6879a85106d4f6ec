package main

import (
	"log"
	"strings"

	"github.com/beevik/etree"
	"github.com/pkg/errors"

	"controlsync/models"
)

// RewriteDefinition splices the values recorded on the control map into the
// report-definition document's default-value expressions.
//
// Parameters the configuration did not target are left untouched. A
// parameter with no control-map counterpart at all means the state and
// definition documents are out of sync and fails the run with
// *models.UnknownParameterError.
func RewriteDefinition(doc *etree.Document, controlMap models.ControlMap) error {
	root := doc.Root()
	if root == nil {
		return errors.New("definition document has no root element")
	}
	container := root.SelectElement("parameters")
	if container == nil {
		return errors.New("definition document has no parameters element")
	}

	for _, param := range container.SelectElements("parameter") {
		nameEl := param.SelectElement("name")
		if nameEl == nil {
			return errors.New("definition parameter has no name element")
		}
		name := strings.TrimSpace(nameEl.Text())

		entry, ok := controlMap.ByParam(name)
		if !ok {
			return &models.UnknownParameterError{Name: name}
		}
		if !entry.Targeted() {
			continue
		}

		expr := buildDefaultExpression(entry)
		defaultEl := param.SelectElement("defaultValueExpression")
		if defaultEl == nil {
			defaultEl = param.CreateElement("defaultValueExpression")
		}
		defaultEl.SetText(expr)
		log.Printf("Set default for parameter %s (%s): %s", name, entry.Label, expr)
	}

	return nil
}

// buildDefaultExpression renders a default-value literal in the report
// engine's expression language: a quoted string for single-valued controls,
// a list literal of quoted strings for multi-valued ones.
func buildDefaultExpression(entry *models.ControlEntry) string {
	if entry.SingleValued {
		return `"` + entry.NewValues[0] + `"`
	}
	quoted := make([]string, len(entry.NewValues))
	for i, value := range entry.NewValues {
		quoted[i] = `"` + value + `"`
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
