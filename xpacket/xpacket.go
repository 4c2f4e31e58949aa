package xpacket

import (
	"bufio"
	"bytes"
	"io"
)

var (
	// tokenBegin opens the packet header processing instruction
	tokenBegin = []byte("<?xpacket begin=")
	// tokenEnd opens the packet trailer processing instruction
	tokenEnd = []byte("<?xpacket end=")
	// tokenClose terminates a processing instruction
	tokenClose = []byte("?>")
)

const (
	initialBuffer = 64 * 1024
	// maxPacket bounds packet size in First; a stream whose packet is
	// larger scans as bufio.ErrTooLong
	maxPacket = 4 * 1024 * 1024
)

// Split returns a bufio.SplitFunc emitting one token per embedded XMP
// packet. A token runs from <?xpacket begin= through the ?> closing the
// <?xpacket end= instruction, so it parses as a standalone packet.
//
// found will be called as each packet is emitted.
func Split(found func()) bufio.SplitFunc {
	type stateT int
	const (
		searching stateT = iota
		collecting
	)
	var state stateT

	return func(b []byte, atEOF bool) (advance int, token []byte, err error) {
		for advance < len(b) {
			cur := b[advance:]
			switch state {
			case searching: // discard bytes before a packet header
				idx := bytes.Index(cur, tokenBegin)
				if idx < 0 {
					if atEOF {
						return len(b), nil, nil
					}
					// hold back a header's worth of bytes in case one
					// straddles the read boundary
					if keep := len(cur) - (len(tokenBegin) - 1); keep > 0 {
						advance += keep
					}
					return advance, nil, nil
				}
				advance += idx
				state = collecting
			case collecting: // a packet header is at the window start
				if end := bytes.Index(cur, tokenEnd); end >= 0 {
					if pc := bytes.Index(cur[end:], tokenClose); pc >= 0 {
						size := end + pc + len(tokenClose)
						advance += size
						state = searching
						if found != nil {
							found()
						}
						return advance, cur[:size], nil
					}
				}
				if atEOF {
					return advance, nil, io.ErrUnexpectedEOF
				}
				return advance, nil, nil
			}
		}
		return advance, nil, nil
	}
}

// First returns a copy of the first XMP packet in the stream, or nil
// when the stream ends without one. Absence is not an error; truncated
// packets and read failures are.
func First(r io.Reader) ([]byte, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, initialBuffer), maxPacket)
	scanner.Split(Split(nil))
	if scanner.Scan() {
		return append([]byte(nil), scanner.Bytes()...), nil
	}
	return nil, scanner.Err()
}
