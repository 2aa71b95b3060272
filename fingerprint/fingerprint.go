// Package fingerprint implements the engine's deterministic content hash:
// a stable, order-sensitive digest used to memoize derived time vectors and
// to test two index or vector descriptions for structural equality without
// comparing every sample.
//
// The encoding is deliberately simple rather than compact: every value is
// turned into canonical decimal or hex text before being hashed, so the
// same logical value always produces the same bytes regardless of the Go
// type used to represent it.
package fingerprint

import (
	"crypto/sha1"
	"encoding/hex"
	"strconv"
	"strings"
	"time"
)

// Fingerprint is a stable digest of some piece of engine state. Two
// structurally equal values always have an equal Fingerprint; the converse
// only holds up to hash collision.
type Fingerprint string

// nilMarker is hashed in place of a field that is absent, so that "a field
// is nil" is always distinguishable from "a field is the empty string" or
// "a field is zero".
const nilMarker = "\x00nil\x00"

// Builder accumulates a sequence of canonically-encoded fields and produces
// their combined Fingerprint. Fields must be appended in a fixed,
// documented order for a given composite type; the builder does not sort
// or otherwise normalise field order itself.
type Builder struct {
	sb strings.Builder
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) field(encoded string) *Builder {
	b.sb.WriteString(encoded)
	b.sb.WriteByte(0)
	return b
}

// String appends a string field, encoded as its own SHA-1 hex digest so
// that concatenation of variable-length strings cannot be made ambiguous
// by field boundaries shifting.
func (b *Builder) String(s string) *Builder {
	sum := sha1.Sum([]byte(s))
	return b.field(hex.EncodeToString(sum[:]))
}

// Bool appends a boolean field.
func (b *Builder) Bool(v bool) *Builder {
	if v {
		return b.field("true")
	}
	return b.field("false")
}

// Int appends an integer field, encoded as canonical decimal text.
func (b *Builder) Int(v int64) *Builder {
	return b.field(strconv.FormatInt(v, 10))
}

// Float appends a float field, encoded with the shortest round-trippable
// decimal representation so that equal float64 values always encode
// identically regardless of how they were computed.
func (b *Builder) Float(v float64) *Builder {
	return b.field(strconv.FormatFloat(v, 'g', -1, 64))
}

// Time appends a time.Time field, encoded in its UTC RFC 3339 nanosecond
// form so that two instants that are equal but carry different
// *time.Location values still encode identically.
func (b *Builder) Time(t time.Time) *Builder {
	return b.field(t.UTC().Format(time.RFC3339Nano))
}

// Duration appends a time.Duration field, encoded as its integer
// nanosecond count.
func (b *Builder) Duration(d time.Duration) *Builder {
	return b.field(strconv.FormatInt(int64(d), 10))
}

// Fingerprint appends another value's already-computed Fingerprint as a
// field, letting composite fingerprints nest without re-hashing the whole
// subtree's raw content.
func (b *Builder) Fingerprint(f Fingerprint) *Builder {
	return b.field(string(f))
}

// Nil appends the sentinel that marks an absent optional field.
func (b *Builder) Nil() *Builder {
	return b.field(nilMarker)
}

// Build finalizes the accumulated fields into a Fingerprint. The Builder
// remains usable afterward; further appends extend the same digest input.
func (b *Builder) Build() Fingerprint {
	sum := sha1.Sum([]byte(b.sb.String()))
	return Fingerprint(hex.EncodeToString(sum[:]))
}

// Of is a convenience wrapper for the common case of fingerprinting a
// single string value, such as a unit label or an index kind tag.
func Of(s string) Fingerprint {
	return NewBuilder().String(s).Build()
}
