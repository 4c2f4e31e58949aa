package schema

import (
	"time"

	"github.com/okrasna/imgmeta/packet"
	"github.com/okrasna/imgmeta/xmpns"
)

// record is the capability shared by all namespace records: binding
// to a document replaces the record's resolver state wholesale, so a
// rebound record never leaks answers from a previous packet.
type record interface {
	bind(*packet.Document)
	fields() *fieldSet
}

// Xmp resolves the XMP basic namespace, the descriptive properties
// most producers write (http://ns.adobe.com/xap/1.0/, preferred
// prefix xmp).
type Xmp struct {
	f fieldSet
}

var xmpBindings = bindAll(xmpns.XMP, []binding{
	{local: "CreateDate", kind: kindTime},
	{local: "CreatorTool"},
	{local: "Identifier", shape: shapeBag, kind: kindStrings},
	{local: "Label"},
	{local: "MetadataDate", kind: kindTime},
	{local: "ModifyDate", kind: kindTime},
	{local: "Nickname"},
	{local: "Rating", kind: kindInt},
})

func (x *Xmp) bind(doc *packet.Document) { x.f = newFieldSet(doc, "xmp", xmpBindings) }

func (x *Xmp) fields() *fieldSet {
	if x == nil {
		return nil
	}
	return &x.f
}

// CreateDate returns the date and time the resource was created.
func (x *Xmp) CreateDate() (time.Time, bool) { return x.fields().timeAt("CreateDate") }

// CreatorTool returns the first known tool used to create the resource.
func (x *Xmp) CreatorTool() (string, bool) { return x.fields().text("CreatorTool") }

// Identifier returns the unordered identifiers of the resource.
func (x *Xmp) Identifier() ([]string, bool) { return x.fields().list("Identifier") }

// Label returns the word or short phrase identifying the resource as
// a member of a collection.
func (x *Xmp) Label() (string, bool) { return x.fields().text("Label") }

// MetadataDate returns the date and time any metadata for the
// resource was last changed.
func (x *Xmp) MetadataDate() (time.Time, bool) { return x.fields().timeAt("MetadataDate") }

// ModifyDate returns the date and time the resource was last modified.
func (x *Xmp) ModifyDate() (time.Time, bool) { return x.fields().timeAt("ModifyDate") }

// Nickname returns the short informal name for the resource.
func (x *Xmp) Nickname() (string, bool) { return x.fields().text("Nickname") }

// Rating returns the user assigned rating for the resource.
func (x *Xmp) Rating() (int, bool) { return x.fields().intAt("Rating") }

// XmpRights resolves the XMP rights management namespace, the legal
// restrictions on a resource (http://ns.adobe.com/xap/1.0/rights/,
// preferred prefix xmpRights).
type XmpRights struct {
	f fieldSet
}

var xmpRightsBindings = bindAll(xmpns.XMPRights, []binding{
	{local: "Certificate"},
	{local: "Marked", kind: kindBool},
	{local: "Owner", shape: shapeBag, kind: kindStrings},
	{local: "UsageTerms", shape: shapeAlt},
	{local: "WebStatement"},
})

func (x *XmpRights) bind(doc *packet.Document) {
	x.f = newFieldSet(doc, "xmpRights", xmpRightsBindings)
}

func (x *XmpRights) fields() *fieldSet {
	if x == nil {
		return nil
	}
	return &x.f
}

// Certificate returns the web URL of a rights management certificate.
func (x *XmpRights) Certificate() (string, bool) { return x.fields().text("Certificate") }

// Marked reports whether the resource is rights managed (true) or in
// the public domain (false). Absent means the state is unknown.
func (x *XmpRights) Marked() (bool, bool) { return x.fields().boolAt("Marked") }

// Owner returns the legal owners of the resource.
func (x *XmpRights) Owner() ([]string, bool) { return x.fields().list("Owner") }

// UsageTerms returns instructions on how the resource can be legally
// used.
func (x *XmpRights) UsageTerms() (string, bool) { return x.fields().text("UsageTerms") }

// WebStatement returns the web URL of a statement of the ownership
// and usage rights for the resource.
func (x *XmpRights) WebStatement() (string, bool) { return x.fields().text("WebStatement") }

// XmpMM resolves the XMP media management namespace
// (http://ns.adobe.com/xap/1.0/mm/, preferred prefix xmpMM).
type XmpMM struct {
	f fieldSet
}

var xmpMMBindings = bindAll(xmpns.XMPMM, []binding{
	{local: "DocumentID"},
	{local: "OriginalDocumentID"},
	{local: "InstanceID"},
	{local: "History", shape: shapeSeq, kind: kindStrings},
})

func (x *XmpMM) bind(doc *packet.Document) { x.f = newFieldSet(doc, "xmpMM", xmpMMBindings) }

func (x *XmpMM) fields() *fieldSet {
	if x == nil {
		return nil
	}
	return &x.f
}

func (x *XmpMM) DocumentID() (string, bool)         { return x.fields().text("DocumentID") }
func (x *XmpMM) OriginalDocumentID() (string, bool) { return x.fields().text("OriginalDocumentID") }
func (x *XmpMM) InstanceID() (string, bool)         { return x.fields().text("InstanceID") }

// History returns the resource event sequence as item texts. Editors
// usually write events in attribute form, leaving the texts empty;
// the generic metadata map keeps the full event attributes.
func (x *XmpMM) History() ([]string, bool) { return x.fields().list("History") }

// Iptc4xmpCore resolves the IPTC core namespace
// (http://iptc.org/std/Iptc4xmpCore/1.0/xmlns/).
type Iptc4xmpCore struct {
	f fieldSet
}

var iptc4xmpCoreBindings = bindAll(xmpns.Iptc4xmpCore, []binding{
	{local: "Location"},
	{local: "AltTextAccessibility", shape: shapeAlt},
})

func (x *Iptc4xmpCore) bind(doc *packet.Document) {
	x.f = newFieldSet(doc, "Iptc4xmpCore", iptc4xmpCoreBindings)
}

func (x *Iptc4xmpCore) fields() *fieldSet {
	if x == nil {
		return nil
	}
	return &x.f
}

// Location returns the name of the location pictured in the image.
func (x *Iptc4xmpCore) Location() (string, bool) { return x.fields().text("Location") }

// AltTextAccessibility returns the brief textual description of the
// image used by screen readers.
func (x *Iptc4xmpCore) AltTextAccessibility() (string, bool) {
	return x.fields().text("AltTextAccessibility")
}

// Iptc4xmpExt resolves the IPTC extension namespace
// (http://iptc.org/std/Iptc4xmpExt/2008-02-29/).
type Iptc4xmpExt struct {
	f fieldSet
}

var iptc4xmpExtBindings = bindAll(xmpns.Iptc4xmpExt, []binding{
	{local: "PersonInImage", shape: shapeBag, kind: kindStrings},
})

func (x *Iptc4xmpExt) bind(doc *packet.Document) {
	x.f = newFieldSet(doc, "Iptc4xmpExt", iptc4xmpExtBindings)
}

func (x *Iptc4xmpExt) fields() *fieldSet {
	if x == nil {
		return nil
	}
	return &x.f
}

// PersonInImage returns the names of the people shown in the image.
func (x *Iptc4xmpExt) PersonInImage() ([]string, bool) { return x.fields().list("PersonInImage") }

// Photoshop resolves the Photoshop namespace
// (http://ns.adobe.com/photoshop/1.0/, preferred prefix photoshop).
type Photoshop struct {
	f fieldSet
}

var photoshopBindings = bindAll(xmpns.Photoshop, []binding{
	{local: "DateCreated", kind: kindTime},
	{local: "Urgency", kind: kindInt},
	{local: "City"},
	{local: "State"},
})

func (x *Photoshop) bind(doc *packet.Document) {
	x.f = newFieldSet(doc, "photoshop", photoshopBindings)
}

func (x *Photoshop) fields() *fieldSet {
	if x == nil {
		return nil
	}
	return &x.f
}

// DateCreated returns the date the intellectual content of the image
// was created, as opposed to the date of its digital representation.
func (x *Photoshop) DateCreated() (time.Time, bool) { return x.fields().timeAt("DateCreated") }

// Urgency returns the editorial urgency of the image, 1 (most urgent)
// through 8, with 9 meaning user defined.
func (x *Photoshop) Urgency() (int, bool) { return x.fields().intAt("Urgency") }

func (x *Photoshop) City() (string, bool)  { return x.fields().text("City") }
func (x *Photoshop) State() (string, bool) { return x.fields().text("State") }

// Dc resolves the Dublin Core namespace
// (http://purl.org/dc/elements/1.1/, preferred prefix dc). Property
// local names in this namespace are lower case; the accessors keep Go
// style names.
type Dc struct {
	f fieldSet
}

var dcBindings = bindAll(xmpns.DC, []binding{
	{local: "format"},
	{local: "rights", shape: shapeAlt},
	{local: "creator", shape: shapeSeq, kind: kindStrings},
	{local: "description", shape: shapeAlt},
	{local: "subject", shape: shapeBag, kind: kindStrings},
})

func (x *Dc) bind(doc *packet.Document) { x.f = newFieldSet(doc, "dc", dcBindings) }

func (x *Dc) fields() *fieldSet {
	if x == nil {
		return nil
	}
	return &x.f
}

// Format returns the MIME type of the resource.
func (x *Dc) Format() (string, bool) { return x.fields().text("format") }

// Rights returns the default language rights statement.
func (x *Dc) Rights() (string, bool) { return x.fields().text("rights") }

// Creator returns the authors of the resource in order of precedence.
func (x *Dc) Creator() ([]string, bool) { return x.fields().list("creator") }

// Description returns the default language description of the
// resource content.
func (x *Dc) Description() (string, bool) { return x.fields().text("description") }

// Subject returns the descriptive keyword phrases for the resource.
func (x *Dc) Subject() ([]string, bool) { return x.fields().list("subject") }

// Aux resolves the Exif aux namespace, lens and body details written
// by camera vendors (http://ns.adobe.com/exif/1.0/aux/).
type Aux struct {
	f fieldSet
}

var auxBindings = bindAll(xmpns.Aux, []binding{
	{local: "SerialNumber"},
	{local: "LensInfo"},
	{local: "Lens"},
	{local: "LensSerialNumber"},
	{local: "FlashCompensation"},
	{local: "FujiRatingAlreadyApplied", kind: kindBool},
})

func (x *Aux) bind(doc *packet.Document) { x.f = newFieldSet(doc, "aux", auxBindings) }

func (x *Aux) fields() *fieldSet {
	if x == nil {
		return nil
	}
	return &x.f
}

func (x *Aux) SerialNumber() (string, bool)      { return x.fields().text("SerialNumber") }
func (x *Aux) LensInfo() (string, bool)          { return x.fields().text("LensInfo") }
func (x *Aux) Lens() (string, bool)              { return x.fields().text("Lens") }
func (x *Aux) LensSerialNumber() (string, bool)  { return x.fields().text("LensSerialNumber") }
func (x *Aux) FlashCompensation() (string, bool) { return x.fields().text("FlashCompensation") }

func (x *Aux) FujiRatingAlreadyApplied() (bool, bool) {
	return x.fields().boolAt("FujiRatingAlreadyApplied")
}

// Tiff resolves the TIFF namespace, camera hardware identification
// carried over from the Exif IFD (http://ns.adobe.com/tiff/1.0/).
type Tiff struct {
	f fieldSet
}

var tiffBindings = bindAll(xmpns.Tiff, []binding{
	{local: "Make"},
	{local: "Model"},
})

func (x *Tiff) bind(doc *packet.Document) { x.f = newFieldSet(doc, "tiff", tiffBindings) }

func (x *Tiff) fields() *fieldSet {
	if x == nil {
		return nil
	}
	return &x.f
}

// Make returns the camera manufacturer.
func (x *Tiff) Make() (string, bool) { return x.fields().text("Make") }

// Model returns the camera model name.
func (x *Tiff) Model() (string, bool) { return x.fields().text("Model") }
