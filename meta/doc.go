/*
Package meta assembles all metadata for one image behind a single
handle.

A Source supplies the raw material: the XMP packet bytes, the decoded
Exif tag pairs and the image's file name. New builds the typed schema
records and the generic metadata tree from it in one pass. Bad XMP
never fails the image; the parse error is returned for callers who
care and every XMP field simply reads absent.

The file name serves one purpose: when no metadata names a capture
date, the file's modification time is the date of last resort.
*/
package meta
