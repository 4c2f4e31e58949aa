/*
Package imgmeta is a set of image metadata extraction support libraries.

Doing the heavy lifting of XMP packet decoding (namespace resolution,
RDF container handling and type coercion) and Exif tag mapping, these
libraries turn the metadata embedded in image files into typed records
and queryable maps.

The schema package resolves well known namespace fields (Dublin Core,
Photoshop, IPTC, tiff, aux and the xmp family) lazily against a parsed
packet, caching each answer. The metamap package builds a generic nested
map of an entire packet for callers that need metadata outside the known
schemas. The exif package maps raw tag/value pairs onto named, typed
fields.

See the meta sub-directory for the Metadata object tying the packet,
schema records and Exif data of one image together.
*/
package imgmeta
