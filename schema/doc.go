// Package schema resolves the well known XMP namespaces into typed
// records.
//
// Each record covers one namespace (the xmp family, Dublin Core,
// Photoshop, the IPTC extensions, aux and tiff) as a flat set of typed
// fields. A field is declared by a binding: the namespace URI and
// local name it lives under in the packet, the shape its value takes
// (a scalar, an rdf:Bag or rdf:Seq of items, or an rdf:Alt language
// alternative) and the Go type its raw text coerces to.
//
// Resolution is lazy. The first read of a field queries the shared
// document, coerces the raw value and caches the answer; later reads
// return the cache without touching the document. Absence is an
// answer too: a field with no element or attribute in the packet
// reads as not present, never as an error.
//
// Faults stay local. A value that will not coerce, or a list field
// whose element does not hold exactly one container, records an error
// on the owning record and reads absent. Record errors are available
// through the Schemas Errors method.
//
// The Schemas type composes every namespace record plus the typed
// Exif record over a single parsed packet, and derives the capture
// date and a human readable summary across namespaces.
//
// Lazy first reads are not safe to race. Build with WithEagerResolve,
// or call ResolveAll before sharing a Schemas between goroutines.
package schema
