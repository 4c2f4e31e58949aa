package exiftags

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	for _, tc := range []struct {
		id    uint16
		name  string
		known bool
	}{
		{id: 0x010f, name: "Make", known: true},
		{id: 0x0110, name: "Model", known: true},
		{id: 0x0132, name: "DateTime", known: true},
		{id: 0x9003, name: "DateTimeOriginal", known: true},
		{id: 0x8769, name: "ExifOffset", known: true},
		{id: 0x011a, name: "XResolution", known: true},
		{id: 0xfffe, known: false},
		{id: 0x0000, known: false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			a := assert.New(t)
			name, ok := Name(tc.id)
			a.Equal(tc.known, ok)
			a.Equal(tc.name, name)
		})
	}
}
