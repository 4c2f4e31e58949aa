// Package coerce converts raw metadata strings into typed values.
//
// XMP writes dates in ISO 8601 forms of varying precision while Exif
// uses colon separated forms; numbers appear as decimal strings that
// may carry a fractional part even for integral fields. Conversion
// failures report errors; callers decide whether a failure is fatal.
package coerce

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// timeLayouts are tried in order. Fractional seconds and numeric zone
// offsets are optional in the layouts that carry them.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006:01:02 15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006:01:02",
	"2006-01",
	"2006",
}

// Time parses a date or timestamp in any of the forms produced by XMP
// and Exif writers. Forms without a zone offset resolve in UTC.
func Time(s string) (time.Time, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return time.Time{}, errors.New("empty date")
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.Errorf("unrecognized date form %q", s)
}

// Int parses an integer, accepting a fractional representation of an
// integral value ("3.0" yields 3). Fractions truncate toward zero.
func Int(s string) (int, error) {
	v := strings.TrimSpace(s)
	if n, err := strconv.ParseInt(v, 10, 64); err == nil {
		return int(n), nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, errors.Errorf("not an integer %q", s)
	}
	return int(f), nil
}

// Float parses a floating point value.
func Float(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errors.Errorf("not a number %q", s)
	}
	return f, nil
}

// Bool parses a boolean. XMP writes True and False; the common
// lower case and numeric forms are accepted as well.
func Bool(s string) (bool, error) {
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return false, errors.Errorf("not a boolean %q", s)
	}
	return b, nil
}
