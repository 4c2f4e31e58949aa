// Package exif maps raw Exif tag/value pairs onto named, typed fields.
//
// Decoders hand over pairs exactly as found in the image. Tag numbers
// resolve to names through the fixed table in exiftags; pairs with an
// unknown number are dropped. A declared field whose incoming value
// has the wrong dynamic type is coerced, and a value that cannot be
// coerced is dropped with the failure recorded on the record.
package exif

import (
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/okrasna/imgmeta/coerce"
	"github.com/okrasna/imgmeta/exiftags"
	"github.com/okrasna/imgmeta/metaerr"
)

// Tag is one raw Exif tag/value pair as decoded from an image.
type Tag struct {
	ID    uint16
	Value interface{}
}

// Rational is an unreduced Exif rational value.
type Rational struct {
	Num int64
	Den int64
}

// Float returns the rational as a floating point value.
// A zero denominator yields an error.
func (r Rational) Float() (float64, error) {
	if r.Den == 0 {
		return 0, errors.Errorf("zero denominator in %d/%d", r.Num, r.Den)
	}
	return float64(r.Num) / float64(r.Den), nil
}

func (r Rational) String() string { return fmt.Sprintf("%d/%d", r.Num, r.Den) }

type kind int

const (
	kindString kind = iota
	kindInt
	kindFloat
	kindTime
)

// fieldKinds declares the typed fields of a Record. Named tags outside
// this table stay visible through NameMap only.
var fieldKinds = map[string]kind{
	"ExifOffset":       kindInt,
	"ImageDescription": kindString,
	"Make":             kindString,
	"Model":            kindString,
	"Software":         kindString,
	"Artist":           kindString,
	"Copyright":        kindString,
	"Orientation":      kindInt,
	"ResolutionUnit":   kindInt,
	"DateTime":         kindTime,
	"DateTimeOriginal": kindTime,
	"XResolution":      kindFloat,
	"YResolution":      kindFloat,
}

// Record is the typed view of an image's Exif tags.
type Record struct {
	values map[string]interface{}
	errs   []error
}

// Build constructs a Record from raw pairs. Pairs repeating a tag
// overwrite earlier ones; a pair whose value resists coercion leaves
// any earlier value in place and records the failure.
func Build(pairs []Tag) *Record {
	r := &Record{values: map[string]interface{}{}}
	for _, tag := range pairs {
		name, ok := exiftags.Name(tag.ID)
		if !ok {
			continue
		}
		k, declared := fieldKinds[name]
		if !declared {
			continue
		}
		v, err := coerceTo(k, tag.Value)
		if err != nil {
			r.AddError(metaerr.Coerce(name, fmt.Sprintf("%v", tag.Value),
				metaerr.WithNamespace("exif"), metaerr.WithCause(err)))
			continue
		}
		r.values[name] = v
	}
	return r
}

// AddError records build errors; nil errors are dropped.
func (r *Record) AddError(errs ...error) (added int) {
	for _, err := range errs {
		if err != nil {
			r.errs = append(r.errs, err)
			added++
		}
	}
	return added
}

// Errors returns all errors recorded while building the record.
func (r *Record) Errors() []error {
	if r == nil {
		return nil
	}
	return r.errs
}

// Len returns the number of typed fields carrying a value.
func (r *Record) Len() int {
	if r == nil {
		return 0
	}
	return len(r.values)
}

func (r *Record) ExifOffset() (int, bool)             { return r.intAt("ExifOffset") }
func (r *Record) ImageDescription() (string, bool)    { return r.text("ImageDescription") }
func (r *Record) Make() (string, bool)                { return r.text("Make") }
func (r *Record) Model() (string, bool)               { return r.text("Model") }
func (r *Record) Software() (string, bool)            { return r.text("Software") }
func (r *Record) Artist() (string, bool)              { return r.text("Artist") }
func (r *Record) Copyright() (string, bool)           { return r.text("Copyright") }
func (r *Record) Orientation() (int, bool)            { return r.intAt("Orientation") }
func (r *Record) ResolutionUnit() (int, bool)         { return r.intAt("ResolutionUnit") }
func (r *Record) DateTime() (time.Time, bool)         { return r.timeAt("DateTime") }
func (r *Record) DateTimeOriginal() (time.Time, bool) { return r.timeAt("DateTimeOriginal") }
func (r *Record) XResolution() (float64, bool)        { return r.floatAt("XResolution") }
func (r *Record) YResolution() (float64, bool)        { return r.floatAt("YResolution") }

func (r *Record) text(name string) (string, bool) {
	if r == nil {
		return "", false
	}
	s, ok := r.values[name].(string)
	return s, ok
}

func (r *Record) intAt(name string) (int, bool) {
	if r == nil {
		return 0, false
	}
	n, ok := r.values[name].(int)
	return n, ok
}

func (r *Record) floatAt(name string) (float64, bool) {
	if r == nil {
		return 0, false
	}
	f, ok := r.values[name].(float64)
	return f, ok
}

func (r *Record) timeAt(name string) (time.Time, bool) {
	if r == nil {
		return time.Time{}, false
	}
	t, ok := r.values[name].(time.Time)
	return t, ok
}

// NameMap returns the name to raw value view of the pairs, the shape
// merged into the generic metadata map. Unknown tag numbers are
// dropped; repeated tags overwrite.
func NameMap(pairs []Tag) map[string]interface{} {
	m := map[string]interface{}{}
	for _, tag := range pairs {
		if name, ok := exiftags.Name(tag.ID); ok {
			m[name] = tag.Value
		}
	}
	return m
}

func coerceTo(k kind, v interface{}) (interface{}, error) {
	switch k {
	case kindString:
		switch v := v.(type) {
		case string:
			return v, nil
		case []byte:
			return string(v), nil
		case nil:
			return nil, errors.New("no value")
		}
		return fmt.Sprintf("%v", v), nil

	case kindInt:
		switch v := v.(type) {
		case int:
			return v, nil
		case int8:
			return int(v), nil
		case int16:
			return int(v), nil
		case int32:
			return int(v), nil
		case int64:
			return int(v), nil
		case uint8:
			return int(v), nil
		case uint16:
			return int(v), nil
		case uint32:
			return int(v), nil
		case uint64:
			return int(v), nil
		case float64:
			return int(v), nil
		case float32:
			return int(v), nil
		case string:
			return coerce.Int(v)
		case Rational:
			f, err := v.Float()
			if err != nil {
				return nil, err
			}
			return int(f), nil
		}
		return nil, errors.Errorf("cannot use %T as integer", v)

	case kindFloat:
		switch v := v.(type) {
		case float64:
			return v, nil
		case float32:
			return float64(v), nil
		case int:
			return float64(v), nil
		case int64:
			return float64(v), nil
		case uint16:
			return float64(v), nil
		case uint32:
			return float64(v), nil
		case string:
			return coerce.Float(v)
		case Rational:
			return v.Float()
		}
		return nil, errors.Errorf("cannot use %T as number", v)

	case kindTime:
		switch v := v.(type) {
		case time.Time:
			return v, nil
		case string:
			return coerce.Time(v)
		case []byte:
			return coerce.Time(string(v))
		}
		return nil, errors.Errorf("cannot use %T as timestamp", v)
	}
	return nil, errors.Errorf("unknown field kind %d", k)
}
