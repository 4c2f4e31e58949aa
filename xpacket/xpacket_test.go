package xpacket

import (
	"bufio"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	packetA = `<?xpacket begin="" id="W5M0"?><a/><?xpacket end="w"?>`
	packetB = `<?xpacket begin="" id="W5M0"?><b/><?xpacket end="r"?>`
)

func TestSplit(t *testing.T) {
	for _, tc := range []struct {
		name   string
		input  string
		want   []string
		hasErr bool
		wantCB int
	}{
		{name: "bare packet", input: packetA, want: []string{packetA}, wantCB: 1},
		{
			name:   "junk around the packet",
			input:  "\xff\xd8\xff\xe1 segment bytes " + packetA + " trailer \xff\xd9",
			want:   []string{packetA},
			wantCB: 1,
		},
		{
			name:   "two packets",
			input:  packetA + "between" + packetB,
			want:   []string{packetA, packetB},
			wantCB: 2,
		},
		{name: "no packet", input: "no markers in here at all"},
		{name: "empty input"},
		{name: "partial header at end of input", input: "junk<?xpacket beg"},
		{name: "missing trailer", input: `<?xpacket begin="" id="W5M0"?><a/>`, hasErr: true},
		{name: "unterminated trailer", input: `<?xpacket begin=""?><a/><?xpacket end="w"`, hasErr: true},
	} {
		for bsize := 16; bsize < 65; bsize++ {
			t.Run(fmt.Sprintf("%s/%d", tc.name, bsize), func(t *testing.T) {
				ck := assert.New(t)
				scanner := bufio.NewScanner(strings.NewReader(tc.input))
				scanner.Buffer(make([]byte, bsize), bsize*16)
				var gotCB int
				scanner.Split(Split(func() { gotCB++ }))
				var got []string
				for scanner.Scan() {
					got = append(got, scanner.Text())
				}
				serr := scanner.Err()
				ck.True(serr == nil && !tc.hasErr || serr != nil && tc.hasErr, "want an error only if hasErr true, got %v (hasErr %v)", serr, tc.hasErr)
				ck.Equal(tc.want, got)
				ck.Equal(tc.wantCB, gotCB)
			})
		}
	}
}

func TestFirst(t *testing.T) {
	a := assert.New(t)

	pkt, err := First(strings.NewReader("leading bytes" + packetA + "trailing bytes" + packetB))
	a.NoError(err)
	a.Equal(packetA, string(pkt))

	pkt, err = First(strings.NewReader("a stream without any packet"))
	a.NoError(err)
	a.Nil(pkt)

	_, err = First(strings.NewReader(`<?xpacket begin=""?>truncated`))
	a.Error(err)
}

func BenchmarkSplit(b *testing.B) {
	input := "leading bytes " + packetA + " between " + packetB + " trailing bytes"
	for i := 0; i < b.N; i++ {
		scanner := bufio.NewScanner(strings.NewReader(input))
		scanner.Buffer(make([]byte, 64), 1024)
		scanner.Split(Split(nil))
		for scanner.Scan() {
		}
	}
}
