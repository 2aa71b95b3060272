// Package xfmt provides a small allocation-light string builder used by the
// period and timestamp packages to assemble error messages without resorting
// to fmt.Sprintf on every parse failure.
package xfmt

import "strconv"

// Buffer accumulates string, rune and integer fragments into a single byte
// slice. The zero value is ready to use; methods return the receiver so
// calls can be chained.
type Buffer struct {
	buf []byte
}

// S appends a string.
func (b *Buffer) S(s string) *Buffer {
	b.buf = append(b.buf, s...)
	return b
}

// C appends a single rune.
func (b *Buffer) C(r rune) *Buffer {
	b.buf = append(b.buf, string(r)...)
	return b
}

// D appends the decimal representation of an int.
func (b *Buffer) D(v int) *Buffer {
	b.buf = strconv.AppendInt(b.buf, int64(v), 10)
	return b
}

// D64 appends the decimal representation of an int64.
func (b *Buffer) D64(v int64) *Buffer {
	b.buf = strconv.AppendInt(b.buf, v, 10)
	return b
}

// Bytes returns the accumulated bytes.
func (b *Buffer) Bytes() []byte {
	return b.buf
}

// String returns the accumulated content as a string.
func (b *Buffer) String() string {
	return string(b.buf)
}
