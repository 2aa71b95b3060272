// Package engineerrors defines the recoverable error kinds the time-vector
// engine returns, plus the panic used for precondition violations that are
// bugs in the caller rather than a condition the caller can act on.
//
// Every recoverable kind below is its own type so callers can distinguish
// them with errors.As; none of them wrap each other.
package engineerrors

import (
	"fmt"
	"strings"
)

// IncompatibleResolutionError is returned when a calendar or resolution
// conversion cannot produce an integer number of output periods.
type IncompatibleResolutionError struct {
	Reason string
}

func (e *IncompatibleResolutionError) Error() string {
	return fmt.Sprintf("incompatible resolution: %s", e.Reason)
}

// IncompatibleResolution constructs an IncompatibleResolutionError.
func IncompatibleResolution(format string, args ...interface{}) error {
	return &IncompatibleResolutionError{Reason: fmt.Sprintf(format, args...)}
}

// OutOfRangeError is returned when a requested output interval is not
// contained within the input span it is to be derived from.
type OutOfRangeError struct {
	Reason string
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("out of range: %s", e.Reason)
}

// OutOfRange constructs an OutOfRangeError.
func OutOfRange(format string, args ...interface{}) error {
	return &OutOfRangeError{Reason: fmt.Sprintf(format, args...)}
}

// DuplicateIDError is returned when a loader or populator finds the same ID
// supplied by more than one source. Sources lists every conflicting source,
// in the order they were observed.
type DuplicateIDError struct {
	ID      string
	Sources []string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate id %q found in sources: %s", e.ID, strings.Join(e.Sources, ", "))
}

// DuplicateID constructs a DuplicateIDError.
func DuplicateID(id string, sources []string) error {
	return &DuplicateIDError{ID: id, Sources: sources}
}

// MissingKeyError is returned when a lookup in the model container finds no
// value for the given key.
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("missing key %q", e.Key)
}

// MissingKey constructs a MissingKeyError.
func MissingKey(key string) error {
	return &MissingKeyError{Key: key}
}

// InvalidConfigurationError is returned when mutually exclusive options are
// set at the same time on a component.
type InvalidConfigurationError struct {
	Reason string
}

func (e *InvalidConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s", e.Reason)
}

// InvalidConfiguration constructs an InvalidConfigurationError.
func InvalidConfiguration(format string, args ...interface{}) error {
	return &InvalidConfigurationError{Reason: fmt.Sprintf(format, args...)}
}

// PreconditionFailure is the panic value raised by Precondition. It is
// exported so a caller that genuinely wants to recover from a contract
// violation (for example, a top-level request handler isolating one bad
// request from crashing a whole process) can type-assert the recovered
// value instead of matching on a panic string.
type PreconditionFailure struct {
	Reason string
}

func (p PreconditionFailure) String() string {
	return p.Reason
}

// Precondition panics with a PreconditionFailure. It is used for violations
// of a function's documented contract - shape mismatches, wrong
// dimensionality, dtype mismatches, non-positive durations - which are bugs
// in the calling code, not conditions a caller can recover from at runtime.
func Precondition(format string, args ...interface{}) {
	panic(PreconditionFailure{Reason: fmt.Sprintf(format, args...)})
}
