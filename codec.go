package main

import (
	"strings"

	"github.com/beevik/etree"
	"github.com/pkg/errors"
)

// ParseDocument parses raw XML bytes into a document tree.
func ParseDocument(data []byte) (*etree.Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, err
	}
	if doc.Root() == nil {
		return nil, errors.New("document has no root element")
	}
	return doc, nil
}

// SerializeDocument renders a document tree back to bytes in the form the
// report server's own parser accepts:
//   - no XML declaration line (the server chokes on a prologue),
//   - apostrophes emitted literally, never as &apos; or &#39; (the server
//     mis-renders entity-escaped apostrophes inside expression strings),
//   - child elements written as element sequences, so a sub-filter holding
//     a single expressionString stays a one-element list.
//
// These are compatibility requirements of the destination system, not style.
func SerializeDocument(doc *etree.Document) ([]byte, error) {
	stripProlog(doc)
	doc.WriteSettings = etree.WriteSettings{
		CanonicalText:    true,
		CanonicalAttrVal: true,
	}
	return doc.WriteToBytes()
}

// stripProlog drops the XML declaration and any whitespace it carried in
// front of the root element.
func stripProlog(doc *etree.Document) {
	root := doc.Root()
	tokens := append([]etree.Token(nil), doc.Child...)
	for _, token := range tokens {
		switch t := token.(type) {
		case *etree.ProcInst:
			doc.RemoveChild(t)
		case *etree.CharData:
			if strings.TrimSpace(t.Data) == "" && (root == nil || t.Index() < root.Index()) {
				doc.RemoveChild(t)
			}
		}
	}
}
