package packet

import (
	"encoding/xml"
	"strings"

	"github.com/antchfx/xmlquery"

	"github.com/okrasna/imgmeta/xmpns"
)

// Container enumerates the RDF container forms.
type Container int

const (
	// NoContainer indicates a node that is not an RDF container.
	NoContainer Container = iota
	// Bag is an unordered rdf:Bag collection.
	Bag
	// Seq is an ordered rdf:Seq collection.
	Seq
	// Alt is an rdf:Alt language alternative collection.
	Alt
)

// ContainerOf reports the RDF container form of a node, or NoContainer
// for any node outside the RDF namespace.
func ContainerOf(n *xmlquery.Node) Container {
	if n == nil || n.Type != xmlquery.ElementNode || n.NamespaceURI != xmpns.RDF {
		return NoContainer
	}
	switch n.Data {
	case "Bag":
		return Bag
	case "Seq":
		return Seq
	case "Alt":
		return Alt
	}
	return NoContainer
}

// ElementChildren returns the element children of n in document order.
func ElementChildren(n *xmlquery.Node) (kids []*xmlquery.Node) {
	if n == nil {
		return nil
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			kids = append(kids, c)
		}
	}
	return kids
}

// Text returns the trimmed text content of n, or "" for a nil node.
func Text(n *xmlquery.Node) string {
	if n == nil {
		return ""
	}
	return strings.TrimSpace(n.InnerText())
}

// IsDecl reports whether the attribute is an xmlns declaration.
func IsDecl(a xmlquery.Attr) bool {
	return a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns")
}

// Declarations returns the xmlns declarations carried by n itself.
func Declarations(n *xmlquery.Node) (decls []xml.Attr) {
	if n == nil {
		return nil
	}
	for _, a := range n.Attr {
		if IsDecl(a) {
			decls = append(decls, xml.Attr{Name: a.Name, Value: a.Value})
		}
	}
	return decls
}

// Scope returns the namespace declarations in scope at n, built
// outermost first so nearer declarations shadow inherited ones.
func Scope(n *xmlquery.Node) xmpns.PrefixMap {
	var chain []*xmlquery.Node
	for e := n; e != nil; e = e.Parent {
		if e.Type == xmlquery.ElementNode {
			chain = append(chain, e)
		}
	}
	scope := xmpns.PrefixMap{}
	for i := len(chain) - 1; i >= 0; i-- {
		if decls := Declarations(chain[i]); len(decls) > 0 {
			scope = scope.Extend(decls...)
		}
	}
	return scope
}

// AttrURI resolves the namespace URI of an attribute. The parser
// resolves declared prefixes up front; scope covers documents whose
// attribute prefixes the parser left unresolved. An undeclared prefix
// comes back verbatim and an unprefixed attribute resolves to "".
func AttrURI(a xmlquery.Attr, scope xmpns.PrefixMap) string {
	if a.NamespaceURI != "" && a.NamespaceURI != a.Name.Space {
		return a.NamespaceURI
	}
	if a.Name.Space == "" {
		return ""
	}
	if uri := scope.Namespace(a.Name.Space); uri != "" {
		return uri
	}
	return a.Name.Space
}

// DefaultLang reports whether a list item carries the x-default
// language qualifier (xml:lang="x-default").
func DefaultLang(n *xmlquery.Node) bool {
	if n == nil {
		return false
	}
	for _, a := range n.Attr {
		if a.Name.Local != "lang" {
			continue
		}
		if a.Name.Space == "xml" || a.NamespaceURI == xmpns.XML {
			return a.Value == "x-default"
		}
	}
	return false
}
