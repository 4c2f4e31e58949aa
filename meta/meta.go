package meta

import (
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/okrasna/imgmeta/exif"
	"github.com/okrasna/imgmeta/metaerr"
	"github.com/okrasna/imgmeta/metamap"
	"github.com/okrasna/imgmeta/schema"
)

// Metadata is the assembled metadata of one image: the typed schema
// records plus the generic tree for everything outside them.
type Metadata struct {
	// Schemas holds the typed namespace records.
	Schemas *schema.Schemas

	filename string
	tree     metamap.Map
}

// New assembles the metadata an image source supplies. The returned
// error is the recoverable XMP parse failure, if any; the Metadata is
// usable either way, with Exif intact and XMP fields absent.
//
// opts are passed through to the schema build after the capture date
// fallback is wired to the source file's modification time, so a
// caller supplied fallback wins.
func New(src Source, opts ...schema.Option) (*Metadata, error) {
	if src == nil {
		return nil, errors.WithStack(metaerr.Input(metaerr.WithMessage("no source")))
	}
	m := &Metadata{filename: src.Filename()}
	pairs := src.ExifPairs()

	opts = append([]schema.Option{
		schema.WithDateFallback(modTime(m.filename)),
	}, opts...)
	s, err := schema.Build(src.XMPPacket(), pairs, opts...)
	m.Schemas = s

	m.tree = metamap.Map{}
	if doc := s.Document(); doc != nil {
		if tree, terr := metamap.Build(doc); terr == nil {
			m.tree = tree
		}
	}
	if len(pairs) > 0 {
		m.tree["exif"] = metamap.Map(exif.NameMap(pairs))
	}
	return m, err
}

// modTime defers the stat until the fallback actually runs; most
// images name their capture date and never need it.
func modTime(path string) func() (time.Time, bool) {
	return func() (time.Time, bool) {
		if path == "" {
			return time.Time{}, false
		}
		fi, err := os.Stat(path)
		if err != nil {
			return time.Time{}, false
		}
		return fi.ModTime(), true
	}
}

// Map returns the merged generic metadata tree: the flattened packet
// plus the Exif name map under the "exif" key.
func (m *Metadata) Map() metamap.Map {
	if m == nil {
		return nil
	}
	return m.tree
}

// Search returns the first value filed under prefix/local anywhere in
// the merged tree. Exif tags answer to the "exif" prefix.
func (m *Metadata) Search(prefix, local string) (interface{}, bool) {
	if m == nil {
		return nil, false
	}
	return m.tree.Search(prefix, local)
}

// CaptureDate returns the image capture timestamp, ending with the
// file modification time when no metadata names one.
func (m *Metadata) CaptureDate() (time.Time, bool) {
	if m == nil {
		return time.Time{}, false
	}
	return m.Schemas.CaptureDate()
}

// Info returns the human readable metadata block: capture date,
// description, keywords and location, one line per present value.
func (m *Metadata) Info() string {
	if m == nil {
		return ""
	}
	return m.Schemas.Summary()
}

// Filename returns the path the source named, or "".
func (m *Metadata) Filename() string {
	if m == nil {
		return ""
	}
	return m.filename
}

// Errors returns every recoverable fault met while building and
// resolving: parse, coercion and container faults.
func (m *Metadata) Errors() []error {
	if m == nil {
		return nil
	}
	return m.Schemas.Errors()
}
