package packet

import (
	"encoding/xml"
	"testing"

	"github.com/antchfx/xmlquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okrasna/imgmeta/xmpns"
)

func xmlName(space, local string) xml.Name {
	return xml.Name{Space: space, Local: local}
}

func TestContainerOf(t *testing.T) {
	src := `<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
 xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:fake="urn:example:fake">
 <rdf:Description>
  <dc:subject><rdf:Bag><rdf:li>one</rdf:li></rdf:Bag></dc:subject>
  <dc:creator><rdf:Seq><rdf:li>two</rdf:li></rdf:Seq></dc:creator>
  <dc:rights><rdf:Alt><rdf:li xml:lang="x-default">three</rdf:li></rdf:Alt></dc:rights>
  <dc:source><fake:Bag/></dc:source>
 </rdf:Description>
</rdf:RDF>`
	a := assert.New(t)
	doc := mustParse(t, src)

	for _, tc := range []struct {
		local string
		want  Container
	}{
		{local: "subject", want: Bag},
		{local: "creator", want: Seq},
		{local: "rights", want: Alt},
		// a Bag outside the RDF namespace is not a container
		{local: "source", want: NoContainer},
	} {
		field := doc.FindFirst(xmpns.DC, tc.local)
		require.NotNil(t, field, tc.local)
		kids := ElementChildren(field)
		require.Len(t, kids, 1, tc.local)
		a.Equal(tc.want, ContainerOf(kids[0]), tc.local)
	}

	a.Equal(NoContainer, ContainerOf(nil))
}

func TestElementChildrenAndText(t *testing.T) {
	a := assert.New(t)
	doc := mustParse(t, `<root> text <a>1</a> more <b> 2 </b><c/></root>`)
	root := doc.RootElement()
	require.NotNil(t, root)

	kids := ElementChildren(root)
	if a.Len(kids, 3) {
		a.Equal("a", kids[0].Data)
		a.Equal("b", kids[1].Data)
		a.Equal("c", kids[2].Data)
		a.Equal("1", Text(kids[0]))
		a.Equal("2", Text(kids[1]))
		a.Equal("", Text(kids[2]))
	}
	a.Nil(ElementChildren(kids[2]))
	a.Equal("", Text(nil))
}

func TestScope(t *testing.T) {
	a := assert.New(t)
	doc := mustParse(t, `<outer xmlns:ns="urn:example:one" xmlns:keep="urn:example:keep">
 <inner xmlns:ns="urn:example:two"><leaf/></inner>
</outer>`)
	outer := doc.RootElement()
	require.NotNil(t, outer)
	inner := ElementChildren(outer)[0]
	leaf := ElementChildren(inner)[0]

	a.Equal("urn:example:one", Scope(outer).Namespace("ns"))
	// nearer declarations shadow inherited ones
	a.Equal("urn:example:two", Scope(inner).Namespace("ns"))
	// scope is inherited through elements with no declarations
	a.Equal("urn:example:two", Scope(leaf).Namespace("ns"))
	a.Equal("urn:example:keep", Scope(leaf).Namespace("keep"))
}

func TestAttrURI(t *testing.T) {
	scope := xmpns.NewPrefixMap()
	for _, tc := range []struct {
		name string
		attr xmlquery.Attr
		want string
	}{
		{
			name: "parser resolved",
			attr: xmlquery.Attr{
				Name:         xmlName("photoshop", "State"),
				NamespaceURI: xmpns.Photoshop,
			},
			want: xmpns.Photoshop,
		},
		{
			name: "unprefixed",
			attr: xmlquery.Attr{Name: xmlName("", "about")},
			want: "",
		},
		{
			name: "undeclared prefix passes through verbatim",
			attr: xmlquery.Attr{Name: xmlName("mystery", "field"), NamespaceURI: "mystery"},
			want: "mystery",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.New(t).Equal(tc.want, AttrURI(tc.attr, scope))
		})
	}

	// scope lookup covers prefixes the parser could not resolve
	scoped := xmpns.PrefixMap{"late": "urn:example:late"}
	a := assert.New(t)
	got := AttrURI(xmlquery.Attr{Name: xmlName("late", "field"), NamespaceURI: "late"}, scoped)
	a.Equal("urn:example:late", got)
}

func TestDefaultLang(t *testing.T) {
	a := assert.New(t)
	doc := mustParse(t, `<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
 xmlns:dc="http://purl.org/dc/elements/1.1/">
 <rdf:Description>
  <dc:rights>
   <rdf:Alt>
    <rdf:li xml:lang="en-US">All rights reserved</rdf:li>
    <rdf:li xml:lang="x-default">Default text</rdf:li>
    <rdf:li>no language</rdf:li>
   </rdf:Alt>
  </dc:rights>
 </rdf:Description>
</rdf:RDF>`)

	alt := ElementChildren(doc.FindFirst(xmpns.DC, "rights"))[0]
	items := ElementChildren(alt)
	require.Len(t, items, 3)

	a.False(DefaultLang(items[0]))
	a.True(DefaultLang(items[1]))
	a.False(DefaultLang(items[2]))
	a.False(DefaultLang(nil))
}
