package schema

import (
	"fmt"
	"time"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"

	"github.com/okrasna/imgmeta/coerce"
	"github.com/okrasna/imgmeta/metaerr"
	"github.com/okrasna/imgmeta/packet"
)

// shape describes how a bound field's value is laid out in the packet.
type shape int

const (
	// shapeText is a scalar in element or attribute form.
	shapeText shape = iota
	// shapeBag is an unordered rdf:Bag of scalar items.
	shapeBag
	// shapeSeq is an ordered rdf:Seq of scalar items.
	shapeSeq
	// shapeAlt is an rdf:Alt language alternative scalar.
	shapeAlt
)

// kind is the Go type a field's raw value coerces to.
type kind int

const (
	kindString kind = iota
	kindStrings
	kindInt
	kindFloat
	kindBool
	kindTime
)

// binding declares one resolvable field: where it lives in the
// packet, the shape of its value and the type it coerces to.
type binding struct {
	space string
	local string
	shape shape
	kind  kind
	expr  *xpath.Expr
}

// bindAll fixes the namespace URI on each binding and compiles its
// selector, returning the field name keyed table for a record.
func bindAll(space string, bs []binding) map[string]binding {
	m := make(map[string]binding, len(bs))
	for _, b := range bs {
		b.space = space
		b.expr = packet.Selector(space, b.local)
		m[b.local] = b
	}
	return m
}

// fieldSet resolves the fields of one namespace against a shared
// document, caching each answer on first read. Every record owns its
// own fieldSet; caches are never shared.
type fieldSet struct {
	doc      *packet.Document
	ns       string
	bindings map[string]binding
	cache    map[string]interface{}
	errs     []error
}

func newFieldSet(doc *packet.Document, ns string, bindings map[string]binding) fieldSet {
	return fieldSet{doc: doc, ns: ns, bindings: bindings, cache: map[string]interface{}{}}
}

// resolve evaluates a field on first read and the cache afterward.
// Absent fields cache as nil, so repeat reads of a missing field stay
// off the document too.
func (f *fieldSet) resolve(name string) interface{} {
	if f == nil {
		return nil
	}
	if v, done := f.cache[name]; done {
		return v
	}
	var v interface{}
	if b, ok := f.bindings[name]; ok {
		v = f.eval(b)
	}
	if f.cache == nil {
		f.cache = map[string]interface{}{}
	}
	f.cache[name] = v
	return v
}

// resolveAll reads every bound field once, forcing the whole cache.
func (f *fieldSet) resolveAll() {
	if f == nil {
		return
	}
	for name := range f.bindings {
		f.resolve(name)
	}
}

func (f *fieldSet) eval(b binding) interface{} {
	switch b.shape {
	case shapeText:
		raw, ok := f.scalar(b)
		if !ok {
			return nil
		}
		return f.coerceValue(b, raw)
	case shapeBag, shapeSeq:
		items, ok := f.items(b)
		if !ok {
			return nil
		}
		return items
	case shapeAlt:
		raw, ok := f.defaultAlt(b)
		if !ok {
			return nil
		}
		return f.coerceValue(b, raw)
	}
	return nil
}

// scalar reads a text shaped field: the element's trimmed text, or,
// when the packet holds no such element, the value of a like named
// rdf:Description attribute. XMP allows simple properties in either
// form. An element that is present but empty reads absent; the
// attribute form is a fallback, not an override.
func (f *fieldSet) scalar(b binding) (string, bool) {
	if n := f.doc.QueryFirst(b.expr); n != nil {
		if s := packet.Text(n); s != "" {
			return s, true
		}
		return "", false
	}
	return f.doc.DescriptionAttr(b.space, b.local)
}

// container returns the field element's single RDF container child of
// an accepted form. A present element with zero or several such
// children is ambiguous: the fault is recorded and the field reads
// absent. An absent element is no fault at all.
func (f *fieldSet) container(b binding, want ...packet.Container) (*xmlquery.Node, bool) {
	n := f.doc.QueryFirst(b.expr)
	if n == nil {
		return nil, false
	}
	var found []*xmlquery.Node
	for _, kid := range packet.ElementChildren(n) {
		for _, w := range want {
			if packet.ContainerOf(kid) == w {
				found = append(found, kid)
				break
			}
		}
	}
	if len(found) != 1 {
		f.AddError(metaerr.Container(b.local, metaerr.WithNamespace(f.ns),
			metaerr.WithMessage(fmt.Sprintf("want one container, have %d", len(found)))))
		return nil, false
	}
	return found[0], true
}

// items reads a bag or seq shaped field as the item texts of its
// container, in document order. Bag and Seq differ only in declared
// ordering; neither is reordered here.
func (f *fieldSet) items(b binding) ([]string, bool) {
	c, ok := f.container(b, packet.Bag, packet.Seq)
	if !ok {
		return nil, false
	}
	items := []string{}
	for _, li := range packet.ElementChildren(c) {
		items = append(items, packet.Text(li))
	}
	return items, true
}

// defaultAlt reads an alt shaped field: the text of the first item
// flagged xml:lang="x-default". An Alt with no default flagged item
// reads absent rather than falling back to its first item.
func (f *fieldSet) defaultAlt(b binding) (string, bool) {
	c, ok := f.container(b, packet.Alt)
	if !ok {
		return "", false
	}
	for _, li := range packet.ElementChildren(c) {
		if packet.DefaultLang(li) {
			return packet.Text(li), true
		}
	}
	return "", false
}

// coerceValue converts a raw scalar to the bound kind. A value that
// will not convert records a coercion fault and reads absent.
func (f *fieldSet) coerceValue(b binding, raw string) interface{} {
	var v interface{}
	var err error
	switch b.kind {
	case kindString:
		return raw
	case kindInt:
		v, err = coerce.Int(raw)
	case kindFloat:
		v, err = coerce.Float(raw)
	case kindBool:
		v, err = coerce.Bool(raw)
	case kindTime:
		v, err = coerce.Time(raw)
	default:
		return raw
	}
	if err != nil {
		f.AddError(metaerr.Coerce(b.local, raw,
			metaerr.WithNamespace(f.ns), metaerr.WithCause(err)))
		return nil
	}
	return v
}

// AddError records resolution faults; nil errors are dropped.
func (f *fieldSet) AddError(errs ...error) (added int) {
	for _, err := range errs {
		if err != nil {
			f.errs = append(f.errs, err)
			added++
		}
	}
	return added
}

// Errors returns all faults recorded during resolution so far.
func (f *fieldSet) Errors() []error {
	if f == nil {
		return nil
	}
	return f.errs
}

func (f *fieldSet) text(name string) (string, bool) {
	s, ok := f.resolve(name).(string)
	return s, ok
}

func (f *fieldSet) list(name string) ([]string, bool) {
	l, ok := f.resolve(name).([]string)
	return l, ok
}

func (f *fieldSet) intAt(name string) (int, bool) {
	n, ok := f.resolve(name).(int)
	return n, ok
}

func (f *fieldSet) floatAt(name string) (float64, bool) {
	v, ok := f.resolve(name).(float64)
	return v, ok
}

func (f *fieldSet) boolAt(name string) (bool, bool) {
	v, ok := f.resolve(name).(bool)
	return v, ok
}

func (f *fieldSet) timeAt(name string) (time.Time, bool) {
	t, ok := f.resolve(name).(time.Time)
	return t, ok
}
