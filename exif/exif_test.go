package exif

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/okrasna/imgmeta/metaerr"
)

const (
	tagImageDescription = 0x010e
	tagMake             = 0x010f
	tagModel            = 0x0110
	tagOrientation      = 0x0112
	tagXResolution      = 0x011a
	tagYResolution      = 0x011b
	tagDateTime         = 0x0132
	tagExifOffset       = 0x8769
	tagDateTimeOriginal = 0x9003
)

func TestBuild(t *testing.T) {
	a := assert.New(t)
	r := Build([]Tag{
		{ID: tagMake, Value: "Apple"},
		{ID: tagModel, Value: "iPhone 15 Pro"},
		{ID: tagOrientation, Value: uint16(1)},
		{ID: tagXResolution, Value: Rational{Num: 72, Den: 1}},
		{ID: tagYResolution, Value: "72.0"},
		{ID: tagDateTime, Value: "2024:12:08 10:15:30"},
		{ID: tagDateTimeOriginal, Value: "2024-12-08T10:15:30-05:00"},
		{ID: tagExifOffset, Value: int64(242)},
		{ID: 0xfffe, Value: "ignored"},
	})

	mk, ok := r.Make()
	a.True(ok)
	a.Equal("Apple", mk)

	model, ok := r.Model()
	a.True(ok)
	a.Equal("iPhone 15 Pro", model)

	orient, ok := r.Orientation()
	a.True(ok)
	a.Equal(1, orient)

	xres, ok := r.XResolution()
	a.True(ok)
	a.Equal(72.0, xres)

	yres, ok := r.YResolution()
	a.True(ok)
	a.Equal(72.0, yres)

	dt, ok := r.DateTime()
	a.True(ok)
	a.Equal("2024-12-08T10:15:30Z", dt.Format(time.RFC3339))

	dto, ok := r.DateTimeOriginal()
	a.True(ok)
	a.Equal("2024-12-08T10:15:30-05:00", dto.Format(time.RFC3339))

	offset, ok := r.ExifOffset()
	a.True(ok)
	a.Equal(242, offset)

	_, ok = r.ImageDescription()
	a.False(ok)

	a.Empty(r.Errors())
	a.Equal(8, r.Len())
}

func TestBuildCoercionFailure(t *testing.T) {
	a := assert.New(t)
	r := Build([]Tag{
		{ID: tagMake, Value: "Apple"},
		{ID: tagDateTime, Value: "a while ago"},
		{ID: tagXResolution, Value: Rational{Num: 72, Den: 0}},
	})

	// failures drop the field and record the error
	_, ok := r.DateTime()
	a.False(ok)
	_, ok = r.XResolution()
	a.False(ok)

	// the rest of the record is unaffected
	mk, ok := r.Make()
	a.True(ok)
	a.Equal("Apple", mk)

	errs := r.Errors()
	if a.Len(errs, 2) {
		for _, err := range errs {
			kind, found := metaerr.KindOf(err)
			a.True(found)
			a.Equal(metaerr.KindCoerce, kind)
		}
	}
}

func TestBuildRepeatedTag(t *testing.T) {
	a := assert.New(t)
	r := Build([]Tag{
		{ID: tagMake, Value: "First"},
		{ID: tagMake, Value: "Second"},
		{ID: tagModel, Value: "Kept"},
		{ID: tagModel, Value: 404}, // wrong type coerces via its printed form
	})

	mk, _ := r.Make()
	a.Equal("Second", mk)
	model, _ := r.Model()
	a.Equal("404", model)
}

func TestNameMap(t *testing.T) {
	a := assert.New(t)
	m := NameMap([]Tag{
		{ID: tagMake, Value: "Apple"},
		{ID: tagImageDescription, Value: "Harbor at dusk"},
		{ID: tagXResolution, Value: Rational{Num: 72, Den: 1}},
		{ID: 0xfffe, Value: "ignored"},
	})

	want := map[string]interface{}{
		"Make":             "Apple",
		"ImageDescription": "Harbor at dusk",
		"XResolution":      Rational{Num: 72, Den: 1},
	}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Fatalf("NameMap mismatch (-want +got):\n%s", diff)
	}
	a.Len(m, 3)
}

func TestRational(t *testing.T) {
	a := assert.New(t)

	f, err := Rational{Num: 3, Den: 2}.Float()
	a.NoError(err)
	a.Equal(1.5, f)

	_, err = Rational{Num: 1, Den: 0}.Float()
	a.Error(err)

	a.Equal("3/2", Rational{Num: 3, Den: 2}.String())
}

func TestNilRecord(t *testing.T) {
	a := assert.New(t)
	var r *Record

	_, ok := r.Make()
	a.False(ok)
	_, ok = r.DateTime()
	a.False(ok)
	a.Nil(r.Errors())
	a.Equal(0, r.Len())
}
