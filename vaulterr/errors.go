// Package vaulterr defines the single error taxonomy shared by every
// fuzzyvault package. Every failure the system can report surfaces as one
// of the Kind values below, wrapped in an *Error so callers can recover
// the kind with errors.As while still seeing a human-readable message
// through Error().
package vaulterr

import (
	"errors"
	"fmt"
)

// Kind identifies one of the terminal failure modes of the fuzzy vault
// scheme. Kind values are never derived from secret material.
type Kind int

const (
	// BadSize is raised when a requested set size is negative, or is not
	// less than the field prime.
	BadSize Kind = iota
	// BadCorrectThreshold is raised when the correct threshold is less
	// than 1, or does not satisfy 2*c > n.
	BadCorrectThreshold
	// BadErrorThreshold is raised when the sketch is asked to expose an
	// odd number of coefficients.
	BadErrorThreshold
	// BadLength is raised when a word list has the wrong length.
	BadLength
	// NotUnique is raised when a word list contains a duplicate.
	NotUnique
	// OutOfRange is raised when a word falls outside [0, corpus_size).
	OutOfRange
	// NotPrime is raised when a claimed prime modulus is composite.
	NotPrime
	// NoSolution is raised when the linear solver's system is
	// inconsistent or under-determined.
	NoSolution
	// DecodeFailed is raised when Berlekamp-Welch cannot reconstruct a
	// consistent low-degree/error-locator pair.
	DecodeFailed
	// RepeatedRoots is raised when the recovered difference polynomial
	// has a root of multiplicity greater than one.
	RepeatedRoots
	// HashMismatch is raised when a recovered candidate set does not
	// authenticate against the stored hash.
	HashMismatch
)

func (k Kind) String() string {
	switch k {
	case BadSize:
		return "BadSize"
	case BadCorrectThreshold:
		return "BadCorrectThreshold"
	case BadErrorThreshold:
		return "BadErrorThreshold"
	case BadLength:
		return "BadLength"
	case NotUnique:
		return "NotUnique"
	case OutOfRange:
		return "OutOfRange"
	case NotPrime:
		return "NotPrime"
	case NoSolution:
		return "NoSolution"
	case DecodeFailed:
		return "DecodeFailed"
	case RepeatedRoots:
		return "RepeatedRoots"
	case HashMismatch:
		return "HashMismatch"
	default:
		return "Unknown"
	}
}

// Error is the concrete error type raised by every fuzzyvault package.
// It carries a Kind so callers can branch on the failure mode — e.g.
// distinguishing a recoverable HashMismatch from a structural failure —
// without string matching.
type Error struct {
	Kind Kind
	msg  string
}

func (e *Error) Error() string {
	return e.msg
}

// Is lets errors.Is(err, vaulterr.Sentinel(Kind)) match any *Error of the
// same Kind, regardless of message, since the message may include
// call-site-specific (but never secret) detail.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return other.Kind == e.Kind
}

// New constructs an *Error of the given kind with a formatted message.
// The message must never interpolate a word, a recovered set element, a
// derived key, or salt/extractor bytes.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, msg: fmt.Sprintf("%s: %s", kind, fmt.Sprintf(format, args...))}
}

// Sentinel returns a bare *Error of the given kind, suitable as the
// target of errors.Is.
func Sentinel(kind Kind) *Error {
	return &Error{Kind: kind, msg: kind.String()}
}

// KindOf extracts the Kind of err if it (or something it wraps) is an
// *Error, and reports whether one was found.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
