/*
Package xpacket locates XMP packets embedded in arbitrary byte streams.

Split returns a bufio.SplitFunc for use with a *bufio.Scanner. Each token
is one complete packet, from its begin processing instruction through the
close of its end processing instruction; bytes between packets are
discarded. Split returns io.ErrUnexpectedEOF when input terminates inside
a packet.
*/
package xpacket
