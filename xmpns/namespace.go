// Package xmpns carries the namespace URIs of the XMP data model and a
// prefix map for resolving the declarations in scope at an element.
//
// Prefixes in an XMP packet are presentation only. Every lookup in this
// module keys on the namespace URI; prefixes matter only when building
// the generic metadata map, where attribute buckets are named after the
// prefix a document declared for a URI.
package xmpns

// Namespace URIs recognised by the schema and map builders.
const (
	// RDF is the syntax namespace of the packet skeleton
	// (rdf:RDF, rdf:Description, rdf:Bag, rdf:Seq, rdf:Alt, rdf:li).
	RDF = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	// XML is the namespace bound to the reserved xml prefix (xml:lang).
	XML = "http://www.w3.org/XML/1998/namespace"
	// XMPMeta is the namespace of the x:xmpmeta packet envelope.
	XMPMeta = "adobe:ns:meta/"

	XMP       = "http://ns.adobe.com/xap/1.0/"
	XMPRights = "http://ns.adobe.com/xap/1.0/rights/"
	XMPMM     = "http://ns.adobe.com/xap/1.0/mm/"
	// StEvt qualifies the fields of xmpMM:History resource events.
	StEvt = "http://ns.adobe.com/xap/1.0/sType/ResourceEvent#"

	Iptc4xmpCore = "http://iptc.org/std/Iptc4xmpCore/1.0/xmlns/"
	Iptc4xmpExt  = "http://iptc.org/std/Iptc4xmpExt/2008-02-29/"
	Photoshop    = "http://ns.adobe.com/photoshop/1.0/"
	DC           = "http://purl.org/dc/elements/1.1/"
	Aux          = "http://ns.adobe.com/exif/1.0/aux/"
	Tiff         = "http://ns.adobe.com/tiff/1.0/"
	Exif         = "http://ns.adobe.com/exif/1.0/"
)
