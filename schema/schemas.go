package schema

import (
	"strings"
	"time"

	"github.com/okrasna/imgmeta/exif"
	"github.com/okrasna/imgmeta/packet"
)

// summaryDateLayout renders capture dates in Summary output, e.g.
// "Sunday, December 08, 2024".
const summaryDateLayout = "Monday, January 02, 2006"

// Schemas is the top level handle over one image's metadata: a record
// per known XMP namespace plus the typed Exif record, all bound to a
// single parsed packet. Records never share resolver state; a field
// cached on one record is invisible to the others.
type Schemas struct {
	Xmp          *Xmp
	XmpRights    *XmpRights
	XmpMM        *XmpMM
	Iptc4xmpCore *Iptc4xmpCore
	Iptc4xmpExt  *Iptc4xmpExt
	Photoshop    *Photoshop
	Dc           *Dc
	Aux          *Aux
	Tiff         *Tiff
	Exif         *exif.Record

	doc      *packet.Document
	fallback func() (time.Time, bool)
	eager    bool
	errs     []error
}

// Option is a Schemas build option function
type Option func(*Schemas)

// WithDateFallback supplies the capture date of last resort, usually
// a file system timestamp. The callback runs only after every
// metadata probe in CaptureDate comes back absent; it keeps file
// system access out of this package and in the caller's hands.
func WithDateFallback(fn func() (time.Time, bool)) Option {
	return func(s *Schemas) { s.fallback = fn }
}

// WithEagerResolve resolves every field during Build. An eagerly
// resolved Schemas is safe for concurrent readers, which lazy first
// reads are not.
func WithEagerResolve() Option {
	return func(s *Schemas) { s.eager = true }
}

// Build assembles the records for one image from its raw XMP packet
// and raw Exif pairs, either of which may be absent.
//
// A nil or empty packet is not an error: every XMP field resolves
// absent. A malformed packet is recoverable: the parse error is
// recorded and returned, and the Schemas stays usable with every XMP
// field absent. Exif processing is independent of packet health.
func Build(rawXMP []byte, pairs []exif.Tag, opts ...Option) (*Schemas, error) {
	s := &Schemas{
		Xmp:          &Xmp{},
		XmpRights:    &XmpRights{},
		XmpMM:        &XmpMM{},
		Iptc4xmpCore: &Iptc4xmpCore{},
		Iptc4xmpExt:  &Iptc4xmpExt{},
		Photoshop:    &Photoshop{},
		Dc:           &Dc{},
		Aux:          &Aux{},
		Tiff:         &Tiff{},
	}
	var parseErr error
	if len(rawXMP) > 0 {
		var err error
		if s.doc, err = packet.Parse(rawXMP); err != nil {
			parseErr = err
			s.AddError(err)
		}
	}
	for _, r := range s.records() {
		r.bind(s.doc)
	}
	s.Exif = exif.Build(pairs)
	for _, opt := range opts {
		opt(s)
	}
	if s.eager {
		s.ResolveAll()
	}
	return s, parseErr
}

func (s *Schemas) records() []record {
	return []record{
		s.Xmp, s.XmpRights, s.XmpMM, s.Iptc4xmpCore, s.Iptc4xmpExt,
		s.Photoshop, s.Dc, s.Aux, s.Tiff,
	}
}

// Document returns the parsed packet, or nil when the image carried
// none or its packet failed to parse.
func (s *Schemas) Document() *packet.Document {
	if s == nil {
		return nil
	}
	return s.doc
}

// ResolveAll reads every bound field once, forcing all caches. Once
// ResolveAll returns, the Schemas may be read concurrently.
func (s *Schemas) ResolveAll() {
	if s == nil {
		return
	}
	for _, r := range s.records() {
		r.fields().resolveAll()
	}
}

// AddError records build errors; nil errors are dropped.
func (s *Schemas) AddError(errs ...error) (added int) {
	for _, err := range errs {
		if err != nil {
			s.errs = append(s.errs, err)
			added++
		}
	}
	return added
}

// Errors returns every fault recorded so far: the packet parse
// failure if any, field coercion and container faults from each
// namespace record, and Exif coercion faults.
func (s *Schemas) Errors() []error {
	if s == nil {
		return nil
	}
	errs := append([]error(nil), s.errs...)
	for _, r := range s.records() {
		errs = append(errs, r.fields().Errors()...)
	}
	errs = append(errs, s.Exif.Errors()...)
	return errs
}

// CaptureDate returns the image capture timestamp, probing in fixed
// priority order: xmp:CreateDate, the Exif DateTimeOriginal and
// DateTime tags, then photoshop:DateCreated. When every probe comes
// back absent the configured fallback, if any, has the last word.
func (s *Schemas) CaptureDate() (time.Time, bool) {
	if s == nil {
		return time.Time{}, false
	}
	if t, ok := s.Xmp.CreateDate(); ok {
		return t, true
	}
	if t, ok := s.Exif.DateTimeOriginal(); ok {
		return t, true
	}
	if t, ok := s.Exif.DateTime(); ok {
		return t, true
	}
	if t, ok := s.Photoshop.DateCreated(); ok {
		return t, true
	}
	if s.fallback != nil {
		return s.fallback()
	}
	return time.Time{}, false
}

// Summary assembles the human readable metadata block: the capture
// date, the image description, its keywords and its location, one
// line each in that order. A line whose source fields are absent is
// omitted entirely, so an image without metadata summarises to "".
func (s *Schemas) Summary() string {
	if s == nil {
		return ""
	}
	var lines []string
	if t, ok := s.CaptureDate(); ok {
		lines = append(lines, "Date Created: "+t.Format(summaryDateLayout))
	}
	if desc, ok := s.Dc.Description(); ok {
		lines = append(lines, "Description: "+desc)
	}
	if keywords, ok := s.Dc.Subject(); ok && len(keywords) > 0 {
		lines = append(lines, "Keywords: "+strings.Join(keywords, ", "))
	}
	var location []string
	if loc, ok := s.Iptc4xmpCore.Location(); ok {
		location = append(location, loc)
	}
	if city, ok := s.Photoshop.City(); ok {
		location = append(location, city)
	}
	if state, ok := s.Photoshop.State(); ok {
		location = append(location, state)
	}
	if len(location) > 0 {
		lines = append(lines, "Location: "+strings.Join(location, ", "))
	}
	return strings.Join(lines, "\n")
}
