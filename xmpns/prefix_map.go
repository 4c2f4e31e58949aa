package xmpns

import (
	"encoding/xml"
	"sort"
)

// PrefixMap is a prefix to namespace URI map
type PrefixMap map[string]string

// NewPrefixMap returns a PrefixMap containing the xmlns declarations
// found in the passed XML attributes. The default namespace declaration
// (a bare xmlns attribute) is stored under the empty prefix.
func NewPrefixMap(attrs ...xml.Attr) PrefixMap {
	pmap := PrefixMap{}
	pmap.add(attrs)
	return pmap
}

// Extend returns a copy of m overlaid with the xmlns declarations in
// attrs. Declarations on the nearer element shadow inherited ones,
// matching XML namespace scoping.
func (m PrefixMap) Extend(attrs ...xml.Attr) PrefixMap {
	next := make(PrefixMap, len(m)+len(attrs))
	for k, v := range m {
		next[k] = v
	}
	next.add(attrs)
	return next
}

func (m PrefixMap) add(attrs []xml.Attr) {
	for _, attr := range attrs {
		switch {
		case attr.Name.Space == "xmlns":
			m[attr.Name.Local] = attr.Value
		case attr.Name.Space == "" && attr.Name.Local == "xmlns":
			m[""] = attr.Value
		}
	}
}

// Namespace returns the namespace URI declared for the given prefix
func (m PrefixMap) Namespace(prefix string) string { return m[prefix] }

// Prefixes returns all prefixes declared for the namespace URI,
// sorted lexically.
func (m PrefixMap) Prefixes(nsURI string) (pfxes []string) {
	for k, v := range m {
		if nsURI == v {
			pfxes = append(pfxes, k)
		}
	}
	sort.Strings(pfxes)
	return pfxes
}

// Prefix returns one prefix declared for the namespace URI, the first
// in lexical order when a document declares several. The second return
// is false when no declaration for the URI is in scope.
func (m PrefixMap) Prefix(nsURI string) (string, bool) {
	if pfxes := m.Prefixes(nsURI); len(pfxes) > 0 {
		return pfxes[0], true
	}
	return "", false
}
