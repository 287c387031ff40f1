// abidecode: Ethereum contract ABI decoding library
// Copyright 2026 abidecode Authors
// SPDX-License-Identifier: BSD-3-Clause

package abidecode

import (
	"encoding/hex"
	"fmt"
	"log"
	"strings"
)

// Decoder decodes Solidity ABI-encoded values against a schema. It is
// stateless and safe for concurrent use across disjoint Decode calls: the
// input is read-only once constructed, and each Decode call owns its own
// output tree.
//
// Unlike karalabe/ssz's stream-oriented Decoder (which accumulates a
// sticky error across a sequence of Decode* calls), this Decoder returns
// an error from every call. ABI's offset-addressed layout means decode
// calls are not sequential, since a dynamic struct's tail fields are
// decoded from resliced sub-inputs that have no ordering relationship to
// the rest of the tree, so a single shared error register would serialize
// work that is otherwise independent.
type Decoder struct {
	input []byte
	opts  Options
}

// NewDecoder parses hexInput (optionally 0x-prefixed) and returns a
// Decoder over it. The input length must be a multiple of 64 hex
// characters (one word).
func NewDecoder(hexInput string, opts ...Option) (*Decoder, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	raw, err := decodeHexInput(hexInput)
	if err != nil {
		return nil, err
	}
	if len(raw)%WordSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a multiple of the %d-byte word size", ErrInvalidHex, len(raw), WordSize)
	}
	return &Decoder{input: raw, opts: o}, nil
}

func decodeHexInput(s string) ([]byte, error) {
	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, "0X")
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: odd-length hex string", ErrInvalidHex)
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}
	return raw, nil
}

// Decode decodes the receiver's input against schema, starting at word 0.
func (d *Decoder) Decode(schema *Node) (*Value, error) {
	d.opts.logf("abidecode: decoding root schema %s over %d bytes", schema.Kind, len(d.input))
	v, err := decode(d.input, 0, schema, &d.opts, 0, nil)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Decode is a convenience one-shot entry point equivalent to
// NewDecoder(hexInput, opts...) followed by Decode(schema).
func Decode(hexInput string, schema *Node, opts ...Option) (*Value, error) {
	dec, err := NewDecoder(hexInput, opts...)
	if err != nil {
		return nil, err
	}
	return dec.Decode(schema)
}

// decode is the single dispatch entry point: it routes on
// node.Kind alone, never on any property of the decoded bytes. Composite
// decoders (array.go, structs.go) re-enter decode for their children.
func decode(input []byte, offset uint64, node *Node, opts *Options, depth int, path []string) (*Value, error) {
	if opts.MaxDepth > 0 && depth > opts.MaxDepth {
		return nil, withPath(path, fmt.Errorf("%w: schema nesting exceeds max depth %d", ErrInvalidSchema, opts.MaxDepth))
	}
	switch node.Kind {
	case KindBool:
		return decodeBool(input, offset, path)
	case KindAddress:
		return decodeAddress(input, offset, path)
	case KindUint:
		return decodeUint(input, offset, node, path)
	case KindInt:
		return decodeInt(input, offset, node, path)
	case KindBytesN:
		return decodeBytesN(input, offset, node, path)
	case KindDynamicBytes:
		return decodeDynamicBytes(input, offset, path)
	case KindString:
		return decodeString(input, offset, opts, path)
	case KindStaticArray:
		return decodeStaticArray(input, offset, node, opts, depth, path)
	case KindDynamicArray:
		return decodeDynamicArray(input, offset, node, opts, depth, path)
	case KindStaticStruct:
		return decodeStaticStruct(input, offset, node, opts, depth, path)
	case KindDynamicStruct:
		return decodeDynamicStruct(input, offset, node, opts, depth, path)
	default:
		return nil, withPath(path, fmt.Errorf("%w: %s", ErrUnsupported, node.Kind))
	}
}

// fallbackLogf is used by Options.logf when WithVerbose is set without a
// LogFunc, so diagnostic tracing works out of the box.
func fallbackLogf(format string, args ...any) {
	log.Printf(format, args...)
}
