// abidecode: Ethereum contract ABI decoding library
// Copyright 2026 abidecode Authors
// SPDX-License-Identifier: BSD-3-Clause

package abidecode

import "fmt"

// ceilWords returns the number of 32-byte words needed to hold length
// bytes.
func ceilWords(length uint64) uint64 {
	return (length + WordSize - 1) / WordSize
}

// SingleElementLength returns, in words, how much the value at offset
// consumes when packed contiguously. For dynamic bytes and
// strings this is 1 (length word) + ceil(length/32) (data words); for a
// static struct it is the recursive flattened field count; otherwise 1.
//
// This is the cursor-advance helper composite decoders use in their
// static (inline) loops, both array.go's static-array loop and
// structs.go's static-struct loop call it rather than duplicating the
// per-kind word-count logic.
func SingleElementLength(input []byte, offset uint64, node *Node) (uint64, error) {
	switch node.Kind {
	case KindDynamicBytes, KindString:
		word, err := wordAtByteOffset(input, offset)
		if err != nil {
			return 0, err
		}
		length, err := AsUintUsize(word)
		if err != nil {
			return 0, err
		}
		return 1 + ceilWords(length), nil
	case KindStaticStruct:
		wc, err := WordCount(node)
		if err != nil {
			return 0, err
		}
		return uint64(wc), nil
	default:
		if IsDynamic(node) {
			return 0, fmt.Errorf("%w: SingleElementLength called on dynamic kind %s outside an offset slot", ErrInvalidSchema, node.Kind)
		}
		wc, err := WordCount(node)
		if err != nil {
			return 0, err
		}
		return uint64(wc), nil
	}
}

// GetDataOffset returns the byte offset stored in the head word at
// headOffset, relative to relativeTo, when node is dynamic; it returns 0
// for static nodes. The returned offset is absolute within input.
//
// decodeDynamicTuple calls this for every dynamic slot it reads a head
// word for, so it's the single place that turns a head offset into an
// absolute tail position for structs, static arrays of dynamic elements,
// and dynamic arrays of dynamic elements alike.
func GetDataOffset(input []byte, headOffset uint64, relativeTo uint64, node *Node) (uint64, error) {
	if !IsDynamic(node) {
		return 0, nil
	}
	word, err := wordAtByteOffset(input, headOffset)
	if err != nil {
		return 0, err
	}
	rel, err := AsUintUsize(word)
	if err != nil {
		return 0, err
	}
	return relativeTo + rel, nil
}
