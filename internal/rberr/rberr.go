// Package rberr defines the distinguishable error kinds shared by the
// pdb, anlz and setting packages: I/O, structural, integrity, string-decode
// and not-loaded failures, plus settings checksum mismatches. Every kind wraps its cause with github.com/pkg/errors
// so callers keep a readable stack while still being able to tell kinds apart
// with errors.As.
package rberr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind distinguishes the six error categories a caller can react to.
type Kind int

const (
	// KindIO indicates the underlying stream returned a read/write/seek error.
	KindIO Kind = iota
	// KindStructural indicates a magic word, length or tag did not match expectations.
	KindStructural
	// KindIntegrity indicates a cross-field invariant failed.
	KindIntegrity
	// KindString indicates a DeviceSQL string could not be decoded or encoded.
	KindString
	// KindNotLoaded indicates a derived view was requested before it was populated.
	KindNotLoaded
	// KindChecksumMismatch indicates a stored checksum did not match the
	// freshly computed one. Unlike the other kinds, a caller may choose to
	// ignore this one and use the value anyway.
	KindChecksumMismatch
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindStructural:
		return "structural"
	case KindIntegrity:
		return "integrity"
	case KindString:
		return "string"
	case KindNotLoaded:
		return "not-loaded"
	case KindChecksumMismatch:
		return "checksum-mismatch"
	default:
		return "unknown"
	}
}

// Error is the concrete error type returned by every package in this module.
// Position, when >= 0, names the offending stream offset.
type Error struct {
	Kind     Kind
	Position int64
	cause    error
	msg      string
}

func (e *Error) Error() string {
	if e.Position >= 0 {
		return fmt.Sprintf("%s: %s (at offset %d)", e.Kind, e.msg, e.Position)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.msg)
}

// Unwrap exposes the wrapped cause to errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.cause }

// New builds a positionless Error of the given kind.
func New(kind Kind, format string, args ...interface{}) error {
	return &Error{Kind: kind, Position: -1, msg: fmt.Sprintf(format, args...)}
}

// At builds an Error of the given kind naming the offending stream position.
func At(kind Kind, position int64, format string, args ...interface{}) error {
	return &Error{Kind: kind, Position: position, msg: fmt.Sprintf(format, args...)}
}

// Wrap wraps cause with a message, preserving cause's pkg/errors stack when
// it has one, and tags the result with kind so the caller can recover it.
func Wrap(kind Kind, cause error, format string, args ...interface{}) error {
	if cause == nil {
		return nil
	}
	return &Error{Kind: kind, Position: -1, cause: errors.Wrap(cause, fmt.Sprintf(format, args...)), msg: fmt.Sprintf(format, args...)}
}

// WrapAt is Wrap plus a stream position.
func WrapAt(kind Kind, cause error, position int64, format string, args ...interface{}) error {
	if cause == nil {
		return nil
	}
	return &Error{Kind: kind, Position: position, cause: errors.Wrap(cause, fmt.Sprintf(format, args...)), msg: fmt.Sprintf(format, args...)}
}

// Is reports whether err is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
