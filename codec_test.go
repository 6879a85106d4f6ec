package main

import (
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, data string) *etree.Document {
	t.Helper()
	doc, err := ParseDocument([]byte(data))
	require.NoError(t, err)
	return doc
}

func mustSerialize(t *testing.T, doc *etree.Document) string {
	t.Helper()
	out, err := SerializeDocument(doc)
	require.NoError(t, err)
	return string(out)
}

func TestParseDocumentMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "mismatched end tag", input: "<state><subFilters></state>"},
		{name: "empty input", input: ""},
		{name: "text only", input: "not xml at all"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDocument([]byte(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestSerializeOmitsDeclaration(t *testing.T) {
	doc := mustParse(t, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<state><subFilters/></state>")

	out := mustSerialize(t, doc)

	assert.NotContains(t, out, "<?xml")
	assert.True(t, strings.HasPrefix(out, "<state>"), "output must start with the root element, got %q", out)
}

func TestSerializeKeepsApostrophesLiteral(t *testing.T) {
	doc := mustParse(t, "<state><expressionString>COUNTRY == 'Cote d'Ivoire'</expressionString></state>")

	out := mustSerialize(t, doc)

	assert.Contains(t, out, "COUNTRY == 'Cote d'Ivoire'")
	assert.NotContains(t, out, "&apos;")
	assert.NotContains(t, out, "&#39;")
}

func TestSerializeKeepsApostrophesLiteralAfterSetText(t *testing.T) {
	doc := mustParse(t, "<state><expressionString>old</expressionString></state>")
	doc.Root().SelectElement("expressionString").SetText("YEAR == '2020'")

	out := mustSerialize(t, doc)

	assert.Contains(t, out, "YEAR == '2020'")
	assert.NotContains(t, out, "&apos;")
}

func TestSerializeKeepsSingleElementList(t *testing.T) {
	doc := mustParse(t, "<state><subFilters><subFilter><expressionString>YEAR == '2020'</expressionString></subFilter></subFilters></state>")

	out := mustSerialize(t, doc)

	reparsed := mustParse(t, out)
	subFilter := reparsed.Root().SelectElement("subFilters").SelectElement("subFilter")
	expressions := subFilter.SelectElements("expressionString")
	require.Len(t, expressions, 1)
	assert.Equal(t, "YEAR == '2020'", expressions[0].Text())
}

func TestSerializeParseRoundTrip(t *testing.T) {
	original := "<?xml version=\"1.0\"?>\n" +
		"<state>\n" +
		"  <subFilters>\n" +
		"    <subFilter>\n" +
		"      <parameterizedExpressionString>YEAR == P_YEAR</parameterizedExpressionString>\n" +
		"      <expressionString>YEAR == '2019'</expressionString>\n" +
		"    </subFilter>\n" +
		"  </subFilters>\n" +
		"  <rowGroups>\n" +
		"    <group><fieldName>YEAR</fieldName><label>Year</label></group>\n" +
		"  </rowGroups>\n" +
		"</state>"

	first := mustSerialize(t, mustParse(t, original))
	second := mustSerialize(t, mustParse(t, first))

	// Serialization is a fixed point once the declaration is gone.
	assert.Equal(t, first, second)
	assert.NotContains(t, first, "<?xml")
	assert.Contains(t, first, "YEAR == '2019'")
}
