package coerce

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTime(t *testing.T) {
	for _, tc := range []struct {
		input string
		want  string
		err   bool
	}{
		{input: "2024-12-08T10:15:30-05:00", want: "2024-12-08T10:15:30-05:00"},
		{input: "2024-12-08T10:15:30.25Z", want: "2024-12-08T10:15:30.25Z"},
		{input: "2024-12-08T10:15:30", want: "2024-12-08T10:15:30Z"},
		{input: "2024-12-08T10:15", want: "2024-12-08T10:15:00Z"},
		{input: "2024:12:08 10:15:30", want: "2024-12-08T10:15:30Z"},
		{input: "2024-12-08", want: "2024-12-08T00:00:00Z"},
		{input: "2024-12", want: "2024-12-01T00:00:00Z"},
		{input: "2024", want: "2024-01-01T00:00:00Z"},
		{input: " 2024-12-08 ", want: "2024-12-08T00:00:00Z"},
		{input: "yesterday", err: true},
		{input: "", err: true},
		{input: "2024-13-40", err: true},
	} {
		t.Run(tc.input, func(t *testing.T) {
			a := assert.New(t)
			got, err := Time(tc.input)
			if tc.err {
				a.Error(err)
				return
			}
			if a.NoError(err) {
				a.Equal(tc.want, got.Format(time.RFC3339Nano))
			}
		})
	}
}

func TestInt(t *testing.T) {
	for _, tc := range []struct {
		input string
		want  int
		err   bool
	}{
		{input: "3", want: 3},
		{input: "3.0", want: 3},
		{input: "3.9", want: 3},
		{input: "-2.7", want: -2},
		{input: "+5", want: 5},
		{input: " 42 ", want: 42},
		{input: "three", err: true},
		{input: "", err: true},
	} {
		t.Run(tc.input, func(t *testing.T) {
			a := assert.New(t)
			got, err := Int(tc.input)
			if tc.err {
				a.Error(err)
				return
			}
			if a.NoError(err) {
				a.Equal(tc.want, got)
			}
		})
	}
}

func TestFloat(t *testing.T) {
	a := assert.New(t)

	got, err := Float("72.0")
	a.NoError(err)
	a.Equal(72.0, got)

	got, err = Float(" -1.5 ")
	a.NoError(err)
	a.Equal(-1.5, got)

	_, err = Float("fast")
	a.Error(err)
}

func TestBool(t *testing.T) {
	for _, tc := range []struct {
		input string
		want  bool
		err   bool
	}{
		{input: "True", want: true},
		{input: "False", want: false},
		{input: "true", want: true},
		{input: "1", want: true},
		{input: "0", want: false},
		{input: "yes", err: true},
		{input: "", err: true},
	} {
		t.Run(tc.input, func(t *testing.T) {
			a := assert.New(t)
			got, err := Bool(tc.input)
			if tc.err {
				a.Error(err)
				return
			}
			if a.NoError(err) {
				a.Equal(tc.want, got)
			}
		})
	}
}
