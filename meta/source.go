package meta

import (
	"os"

	"github.com/pkg/errors"

	"github.com/okrasna/imgmeta/exif"
	"github.com/okrasna/imgmeta/xpacket"
)

// Source supplies one image's raw metadata. Image decoding stays with
// the caller; any decoder that can hand over packet bytes and tag
// pairs can feed New.
type Source interface {
	// XMPPacket returns the raw XMP packet, or nil when the image
	// carries none.
	XMPPacket() []byte
	// ExifPairs returns the decoded Exif tag pairs in the order found.
	ExifPairs() []exif.Tag
	// Filename returns the path of the image file, or "" when the
	// image did not come from a file.
	Filename() string
}

// Raw is a Source over values already in hand.
type Raw struct {
	XMP  []byte
	Exif []exif.Tag
	Name string
}

func (r Raw) XMPPacket() []byte     { return r.XMP }
func (r Raw) ExifPairs() []exif.Tag { return r.Exif }
func (r Raw) Filename() string      { return r.Name }

// ScanFile builds a Source by scanning an image file for an embedded
// XMP packet, without decoding the image format. A file holding no
// packet is fine; pairs carries Exif tags the caller decoded
// separately, if any.
func ScanFile(path string, pairs []exif.Tag) (Raw, error) {
	f, err := os.Open(path)
	if err != nil {
		return Raw{}, errors.WithStack(err)
	}
	defer f.Close()
	pkt, err := xpacket.First(f)
	if err != nil {
		return Raw{}, errors.Wrapf(err, "scanning %s for a packet", path)
	}
	return Raw{XMP: pkt, Exif: pairs, Name: path}, nil
}
