// abidecode: Ethereum contract ABI decoding library
// Copyright 2026 abidecode Authors
// SPDX-License-Identifier: BSD-3-Clause

package abidecode

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors, one per class of decode failure. Wrap these with
// fmt.Errorf's %w verb to attach detail; callers can still errors.Is
// against the sentinel.
var (
	// ErrTruncatedInput means the schema demands more words than remain
	// in the input.
	ErrTruncatedInput = errors.New("abidecode: truncated input")

	// ErrInvalidHex means the input is not a well-formed hex string (odd
	// length, or a non-hex digit).
	ErrInvalidHex = errors.New("abidecode: invalid hex input")

	// ErrInvalidSchema means the schema itself is malformed: a
	// zero-length static array, an unrecognised integer width, a bytesN
	// size outside 1..32, a word count asked of a dynamic node, or nesting
	// deeper than the configured MaxDepth.
	ErrInvalidSchema = errors.New("abidecode: invalid schema")

	// ErrOffsetOutOfRange means a decoded offset points outside the
	// input, or (per the monotonicity invariant) behind a
	// previously-seen offset within the same tuple.
	ErrOffsetOutOfRange = errors.New("abidecode: offset out of range")

	// ErrLengthOverflow means a declared dynamic length does not fit the
	// host's addressing range, or exceeds the bytes actually remaining.
	ErrLengthOverflow = errors.New("abidecode: length overflow")

	// ErrInvalidUTF8 is raised only under WithStrictUTF8; the default
	// decode of a string value is lenient (malformed sequences are
	// replaced rather than rejected).
	ErrInvalidUTF8 = errors.New("abidecode: invalid utf8 string")

	// ErrUnsupported means the schema node's Kind is not one this decoder
	// implements. There is no Kind for fixed/ufixed types.
	ErrUnsupported = errors.New("abidecode: unsupported schema kind")
)

// DecodeError wraps a sentinel error with the schema path at which it
// occurred, in the style of hyperledger/firefly-signer's abi decoder
// ("breadcrumbs" threaded through every decode call).
type DecodeError struct {
	Path []string
	Err  error
}

func (e *DecodeError) Error() string {
	if len(e.Path) == 0 {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", strings.Join(e.Path, "."), e.Err.Error())
}

func (e *DecodeError) Unwrap() error { return e.Err }

// withPath annotates err with the given breadcrumb path, unless err is nil
// or already a *DecodeError (the innermost call wins, since it has the
// most specific path).
func withPath(path []string, err error) error {
	if err == nil {
		return nil
	}
	var de *DecodeError
	if errors.As(err, &de) {
		return err
	}
	cp := make([]string, len(path))
	copy(cp, path)
	return &DecodeError{Path: cp, Err: err}
}
