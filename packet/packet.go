// Package packet parses XMP packets and answers namespace qualified
// queries against the parsed tree.
//
// Prefixes in a packet are presentation only; every query here keys on
// the namespace URI and local name, so documents using unconventional
// prefixes resolve identically to ones using the preferred prefixes.
package packet

import (
	"bytes"
	"fmt"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/pkg/errors"

	"github.com/okrasna/imgmeta/metaerr"
	"github.com/okrasna/imgmeta/xmpns"
)

var xpDescription = xpath.MustCompile(`//Description[namespace-uri()='` + xmpns.RDF + `']`)

// Document is one parsed XMP packet. A Document is immutable after
// Parse; queries never mutate the tree.
type Document struct {
	root    *xmlquery.Node
	queries int
}

// Parse decodes a raw XMP packet. Empty input yields an input error,
// malformed XML a parse error; both leave the caller without a
// document, and both are recoverable at the metadata level.
func Parse(raw []byte) (*Document, error) {
	if len(raw) == 0 {
		return nil, metaerr.Input(metaerr.WithMessage("no packet data"))
	}
	doc, err := xmlquery.Parse(bytes.NewReader(raw))
	if err != nil {
		return nil, metaerr.Parse(errors.WithStack(err))
	}
	return &Document{root: doc}, nil
}

// Root returns the document node of the parsed packet.
func (d *Document) Root() *xmlquery.Node {
	if d == nil {
		return nil
	}
	return d.root
}

// RootElement returns the packet's top element, skipping any leading
// processing instructions (the xpacket wrapper), or nil for a document
// with no elements.
func (d *Document) RootElement() *xmlquery.Node {
	if d == nil || d.root == nil {
		return nil
	}
	for c := d.root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			return c
		}
	}
	return nil
}

// Queries returns the number of XML queries run against the document.
// Field caches rely on it to show that repeat reads stay off the tree.
func (d *Document) Queries() int {
	if d == nil {
		return 0
	}
	return d.queries
}

// Selector compiles a document order selector matching every element
// with the given namespace URI and local name, whatever its prefix.
// space and local must be XML names; Selector panics otherwise.
func Selector(space, local string) *xpath.Expr {
	return xpath.MustCompile(fmt.Sprintf("//%s[namespace-uri()='%s']", local, space))
}

// QueryFirst runs a compiled selector against the document, returning
// the first match in document order, or nil.
func (d *Document) QueryFirst(expr *xpath.Expr) *xmlquery.Node {
	if d == nil || d.root == nil {
		return nil
	}
	d.queries++
	return xmlquery.QuerySelector(d.root, expr)
}

// FindFirst returns the first element with the namespace URI and local
// name, in document order, or nil when the packet holds none.
func (d *Document) FindFirst(space, local string) *xmlquery.Node {
	return d.QueryFirst(Selector(space, local))
}

// DescriptionAttr returns the value of the named attribute from the
// first rdf:Description element carrying it, in document order.
// Writers may express simple properties in attribute form rather than
// as child elements; this is the fallback lookup for those packets.
func (d *Document) DescriptionAttr(space, local string) (string, bool) {
	if d == nil || d.root == nil {
		return "", false
	}
	d.queries++
	for _, desc := range xmlquery.QuerySelectorAll(d.root, xpDescription) {
		scope := Scope(desc)
		for _, a := range desc.Attr {
			if a.Name.Local != local || IsDecl(a) {
				continue
			}
			if AttrURI(a, scope) == space {
				return a.Value, true
			}
		}
	}
	return "", false
}
