// Package metamap flattens an entire XMP packet into a generic nested
// map, for metadata outside the namespaces the schema package knows.
//
// The map mirrors the packet's element structure keyed by local name.
// Element attributes are bucketed one level down under the prefix
// their namespace is declared with, and RDF containers collapse their
// parent element into a prefix bucketed list (Bag and Seq) or default
// language scalar (Alt). Plain text leaves are bucketed the same way,
// so element form and attribute form properties are found at the same
// depth.
package metamap

import (
	"sort"

	"github.com/antchfx/xmlquery"
	"github.com/pkg/errors"

	"github.com/okrasna/imgmeta/metaerr"
	"github.com/okrasna/imgmeta/packet"
	"github.com/okrasna/imgmeta/xmpns"
)

// Map is a generic metadata tree: values are nested Maps, lists
// ([]interface{}) or scalar strings. Lists hold item texts or, for
// attribute form items, prefix qualified flat Maps.
type Map map[string]interface{}

// visit pairs an element with the map its content lands in.
type visit struct {
	n      *xmlquery.Node
	parent Map
}

// Build flattens a parsed packet, breadth first from its root
// element. A nil document is caller misuse and the one hard failure
// in this package; absent packets are for the caller to skip.
func Build(doc *packet.Document) (Map, error) {
	root := doc.RootElement()
	if root == nil {
		return nil, errors.WithStack(metaerr.Input(metaerr.WithMessage("no document")))
	}

	m := Map{}
	queue := []visit{{n: root, parent: m}}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		build(v, &queue)
	}
	return m, nil
}

func build(v visit, queue *[]visit) {
	name := v.n.Data

	// first write wins: a repeated sibling tag accumulates into the
	// entry its first occurrence created
	own, ok := v.parent[name].(Map)
	if !ok {
		own = Map{}
		if _, exists := v.parent[name]; !exists {
			v.parent[name] = own
		}
	}

	attrs := elementAttrs(v.n)
	if len(attrs) > 0 {
		scope := packet.Scope(v.n)
		for _, a := range attrs {
			prefix := prefixFor(packet.AttrURI(a, scope), scope)
			bucket, ok := own[prefix].(Map)
			if !ok {
				bucket = Map{}
				own[prefix] = bucket
			}
			if _, exists := bucket[a.Name.Local]; !exists {
				bucket[a.Name.Local] = a.Value
			}
		}
	}

	kids := packet.ElementChildren(v.n)
	for _, kid := range kids {
		if c := packet.ContainerOf(kid); c != packet.NoContainer {
			// the container collapses this element: its entry moves
			// up a level into the element's own prefix bucket
			delete(v.parent, name)
			promote(v.parent, v.n.Prefix, name, containerValue(c, kid))
			continue
		}
		*queue = append(*queue, visit{n: kid, parent: own})
	}

	// plain text leaves move up the same way, putting element form
	// properties where attribute form ones land
	if text := packet.Text(v.n); text != "" && len(kids) == 0 && len(attrs) == 0 {
		delete(v.parent, name)
		promote(v.parent, v.n.Prefix, name, text)
	}
}

// promote writes a collapsed element's value at parent[prefix][name].
func promote(parent Map, prefix, name string, value interface{}) {
	bucket, ok := parent[prefix].(Map)
	if !ok {
		bucket = Map{}
		parent[prefix] = bucket
	}
	bucket[name] = value
}

// containerValue reads an RDF container: for Alt the trimmed text of
// the first item flagged x-default (an empty list when none is), for
// Bag and Seq one entry per item in document order.
func containerValue(c packet.Container, n *xmlquery.Node) interface{} {
	if c == packet.Alt {
		for _, li := range packet.ElementChildren(n) {
			if packet.DefaultLang(li) {
				return packet.Text(li)
			}
		}
		return []interface{}{}
	}
	list := []interface{}{}
	for _, li := range packet.ElementChildren(n) {
		list = append(list, itemValue(li))
	}
	return list
}

// itemValue is one Bag or Seq entry: the item's attributes as a flat
// prefix qualified Map when it has any, its trimmed text otherwise.
func itemValue(li *xmlquery.Node) interface{} {
	attrs := elementAttrs(li)
	if len(attrs) == 0 {
		return packet.Text(li)
	}
	flat := Map{}
	for _, a := range attrs {
		key := a.Name.Local
		if a.Name.Space != "" {
			key = a.Name.Space + ":" + a.Name.Local
		}
		if _, exists := flat[key]; !exists {
			flat[key] = a.Value
		}
	}
	return flat
}

// elementAttrs returns the node's attributes with the xmlns
// declarations dropped; declarations shape buckets, they are not
// metadata.
func elementAttrs(n *xmlquery.Node) (attrs []xmlquery.Attr) {
	for _, a := range n.Attr {
		if !packet.IsDecl(a) {
			attrs = append(attrs, a)
		}
	}
	return attrs
}

// prefixFor names the bucket for an attribute namespace: the prefix
// declared for the URI, the URI itself when nothing in scope declares
// it, and "" for attributes without a namespace.
func prefixFor(uri string, scope xmpns.PrefixMap) string {
	if uri == "" {
		return ""
	}
	if prefix, ok := scope.Prefix(uri); ok {
		return prefix
	}
	return uri
}

// Search returns the first value bucketed as prefix/local, breadth
// first from the top of the map. Keys are visited in sorted order
// within a level, so a search over a map holding several candidates
// answers deterministically.
func (m Map) Search(prefix, local string) (interface{}, bool) {
	queue := []Map{m}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if bucket, ok := cur[prefix].(Map); ok {
			if v, exists := bucket[local]; exists {
				return v, true
			}
		}
		for _, key := range sortedKeys(cur) {
			if child, ok := cur[key].(Map); ok {
				queue = append(queue, child)
			}
		}
	}
	return nil, false
}

// Namespace returns the first bucket keyed by the given prefix,
// breadth first: every property and attribute the packet holds under
// that prefix at the bucket's level.
func (m Map) Namespace(prefix string) (Map, bool) {
	queue := []Map{m}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if bucket, ok := cur[prefix].(Map); ok {
			return bucket, true
		}
		for _, key := range sortedKeys(cur) {
			if child, ok := cur[key].(Map); ok {
				queue = append(queue, child)
			}
		}
	}
	return nil, false
}

func sortedKeys(m Map) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
