package errcode

import "unicode/utf8"

// MessageBufSize is the capacity of a MessageBuf.
const MessageBufSize = 256

// MessageBuf is the scratch area a Category formats messages into.
// Only the prefix returned by Category.Message is meaningful.
type MessageBuf [MessageBufSize]byte

// WriteMessage copies text into buf and returns the written prefix.
// Text longer than the buffer is cut at the last complete code point that fits.
// The returned slice aliases buf and must not outlive it.
func WriteMessage(buf *MessageBuf, text string) []byte {
	n := len(text)
	if n > len(buf) {
		n = boundary(text, len(buf))
	}
	return buf[:copy(buf[:], text[:n])]
}

// boundary returns the largest n <= limit such that s[:n] does not end in the
// middle of a multi-byte sequence.
func boundary(s string, limit int) int {
	if limit >= len(s) {
		return len(s)
	}
	n := limit
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return n
}

// trimPartial drops a trailing incomplete UTF-8 sequence from b.
func trimPartial(b []byte) []byte {
	for i := len(b) - 1; i >= 0 && i >= len(b)-utf8.UTFMax; i-- {
		if utf8.RuneStart(b[i]) {
			if !utf8.FullRune(b[i:]) {
				return b[:i]
			}
			break
		}
	}
	return b
}

// StrBuf is a fixed-capacity text accumulator over caller-provided storage.
//
// Appends that do not fit are truncated at a UTF-8 boundary and the excess is
// dropped silently. After a truncated append the buffer is sealed: Remaining
// reports 0 and later appends are no-ops until Truncate or Reset.
//
//	var scratch [64]byte
//	sb := errcode.NewStrBuf(scratch[:])
//	fmt.Fprintf(&sb, "%s (%d)", name, code)
type StrBuf struct {
	data   []byte
	n      int
	sealed bool
}

// NewStrBuf returns a StrBuf whose capacity is len(backing).
// The previous contents of backing are ignored.
func NewStrBuf(backing []byte) StrBuf {
	return StrBuf{data: backing[:len(backing):len(backing)]}
}

// Len returns the number of bytes written.
func (b *StrBuf) Len() int { return b.n }

// Cap returns the total capacity.
func (b *StrBuf) Cap() int { return len(b.data) }

// Remaining returns the number of bytes that can still be appended.
func (b *StrBuf) Remaining() int {
	if b.sealed {
		return 0
	}
	return len(b.data) - b.n
}

// Bytes returns the written prefix. It aliases the backing storage.
func (b *StrBuf) Bytes() []byte { return b.data[:b.n] }

// String returns a copy of the written text.
func (b *StrBuf) String() string { return string(b.data[:b.n]) }

// Truncate shortens the buffer to at most n bytes, backing off to a code point
// boundary. It does nothing when n is not shorter than the current length.
func (b *StrBuf) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n >= b.n {
		return
	}
	for n > 0 && !utf8.RuneStart(b.data[n]) {
		n--
	}
	b.n = n
	b.sealed = false
}

// Reset empties the buffer.
func (b *StrBuf) Reset() {
	b.n = 0
	b.sealed = false
}

// WriteString appends s, truncating on overflow. It always reports len(s)
// consumed and a nil error.
func (b *StrBuf) WriteString(s string) (int, error) {
	if b.sealed {
		return len(s), nil
	}
	room := len(b.data) - b.n
	n := boundary(s, room)
	b.n += copy(b.data[b.n:], s[:n])
	if n < len(s) {
		b.sealed = true
	}
	return len(s), nil
}

// Write appends p with the same truncation rules as WriteString.
// The full length is reported so fmt.Fprintf into a StrBuf never fails.
func (b *StrBuf) Write(p []byte) (int, error) {
	if b.sealed {
		return len(p), nil
	}
	room := len(b.data) - b.n
	n := len(p)
	if n > room {
		n = room
		for n > 0 && !utf8.RuneStart(p[n]) {
			n--
		}
		b.sealed = true
	}
	b.n += copy(b.data[b.n:], p[:n])
	return len(p), nil
}

// WriteByte appends c if there is room.
func (b *StrBuf) WriteByte(c byte) error {
	if b.Remaining() == 0 {
		b.sealed = true
		return nil
	}
	b.data[b.n] = c
	b.n++
	return nil
}

// WriteRune appends the UTF-8 encoding of r if it fits entirely.
func (b *StrBuf) WriteRune(r rune) (int, error) {
	var enc [utf8.UTFMax]byte
	w := utf8.EncodeRune(enc[:], r)
	return b.Write(enc[:w])
}
