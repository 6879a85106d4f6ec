package main

import (
	"strings"

	"github.com/beevik/etree"
	"github.com/pkg/errors"

	"controlsync/models"
)

// groupEntry is one row or column group from the state document's grouping
// metadata: an internal field name and the display label it carries.
type groupEntry struct {
	fieldName string
	label     string
}

// BuildControlMap derives one ControlEntry per sub-filter of the state
// document, in document order. The parameterized expression of a sub-filter
// is exactly three whitespace-separated tokens: internal field name,
// operator and external parameter name. Operator "==" marks a single-valued
// control; any other operator (the server emits set membership) marks a
// multi-valued one.
//
// Field names resolve to display labels by linear search through the row
// groups followed by the column groups. A field with no matching group is a
// *models.LabelResolutionError; two sub-filters resolving to the same label
// is a data-integrity error.
func BuildControlMap(doc *etree.Document) (models.ControlMap, error) {
	root := doc.Root()
	if root == nil {
		return nil, errors.New("state document has no root element")
	}
	container := root.SelectElement("subFilters")
	if container == nil {
		return nil, errors.New("state document has no subFilters element")
	}

	groups := collectGroups(root)

	var controlMap models.ControlMap
	for i, subFilter := range container.SelectElements("subFilter") {
		expr := subFilter.SelectElement("parameterizedExpressionString")
		if expr == nil {
			return nil, errors.Errorf("sub-filter %c has no parameterizedExpressionString", 'A'+i)
		}

		tokens := strings.Fields(expr.Text())
		if len(tokens) != 3 {
			return nil, errors.Errorf("sub-filter %c: malformed parameterized expression %q", 'A'+i, expr.Text())
		}
		internalName, operator, paramName := tokens[0], tokens[1], tokens[2]

		label, ok := resolveLabel(groups, internalName)
		if !ok {
			return nil, &models.LabelResolutionError{FieldName: internalName}
		}
		if _, exists := controlMap.ByLabel(label); exists {
			return nil, errors.Errorf("label %q resolves to more than one sub-filter", label)
		}

		controlMap = append(controlMap, &models.ControlEntry{
			Index:        i,
			InternalName: internalName,
			SingleValued: operator == "==",
			ParamName:    paramName,
			Label:        label,
		})
	}

	return controlMap, nil
}

// collectGroups concatenates the row groups and the column groups, in that
// order, preserving document order within each section.
func collectGroups(root *etree.Element) []groupEntry {
	var groups []groupEntry
	for _, section := range []string{"rowGroups", "columnGroups"} {
		container := root.SelectElement(section)
		if container == nil {
			continue
		}
		for _, group := range container.SelectElements("group") {
			fieldName := group.SelectElement("fieldName")
			label := group.SelectElement("label")
			if fieldName == nil || label == nil {
				continue
			}
			groups = append(groups, groupEntry{
				fieldName: strings.TrimSpace(fieldName.Text()),
				label:     strings.TrimSpace(label.Text()),
			})
		}
	}
	return groups
}

func resolveLabel(groups []groupEntry, fieldName string) (string, bool) {
	for _, group := range groups {
		if group.fieldName == fieldName {
			return group.label, true
		}
	}
	return "", false
}
