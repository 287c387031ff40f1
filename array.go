// abidecode: Ethereum contract ABI decoding library
// Copyright 2026 abidecode Authors
// SPDX-License-Identifier: BSD-3-Clause

package abidecode

import "fmt"

// mulOverflows reports whether a*b overflows uint64, for the pre-size
// checks needed before trusting a declared length.
func mulOverflows(a, b uint64) bool {
	if a == 0 || b == 0 {
		return false
	}
	return a > (^uint64(0))/b
}

// decodeStaticArray decodes a fixed-size array. Zero-length static arrays
// fail with ErrInvalidSchema. When the element type is itself dynamic,
// this array is dynamic too and is decoded as n head-offset words
// followed by n tails via the shared decodeDynamicTuple, rather than
// through a synthesized length-prefixed DynamicArray.
func decodeStaticArray(input []byte, offset uint64, node *Node, opts *Options, depth int, path []string) (*Value, error) {
	if node.Size <= 0 {
		return nil, withPath(path, fmt.Errorf("%w: static array declares %d elements", ErrInvalidSchema, node.Size))
	}

	if IsDynamic(node.Elem) {
		fields := make([]*Node, node.Size)
		for i := range fields {
			fields[i] = node.Elem
		}
		vals, err := decodeDynamicTuple(input, offset, fields, opts, depth, path, indexLabel)
		if err != nil {
			return nil, err
		}
		return itemsValue(KindStaticArray, vals), nil
	}

	cursor := offset
	vals := make([]*Value, node.Size)
	for i := 0; i < node.Size; i++ {
		fieldPath := withField(path, indexLabel(i))

		v, err := decode(input, cursor, node.Elem, opts, depth+1, fieldPath)
		if err != nil {
			return nil, err
		}
		vals[i] = v

		words, err := SingleElementLength(input, cursor, node.Elem)
		if err != nil {
			return nil, withPath(fieldPath, err)
		}
		cursor += words * WordSize
	}
	return itemsValue(KindStaticArray, vals), nil
}

// decodeDynamicArray decodes a variable-size array: a length word, then
// either n head-offset-and-tail slots (dynamic element) or n contiguously
// packed elements (static element).
func decodeDynamicArray(input []byte, offset uint64, node *Node, opts *Options, depth int, path []string) (*Value, error) {
	lengthWord, err := wordAtByteOffset(input, offset)
	if err != nil {
		return nil, withPath(path, err)
	}
	length, err := AsUintUsize(lengthWord)
	if err != nil {
		return nil, withPath(path, err)
	}

	payloadStart := offset + WordSize
	if payloadStart > uint64(len(input)) {
		return nil, withPath(path, fmt.Errorf("%w: no room for a %d-element payload", ErrTruncatedInput, length))
	}
	remaining := uint64(len(input)) - payloadStart

	if IsDynamic(node.Elem) {
		if mulOverflows(length, WordSize) {
			return nil, withPath(path, fmt.Errorf("%w: %d elements overflows addressable length", ErrLengthOverflow, length))
		}
		if needed := length * WordSize; needed > remaining {
			return nil, withPath(path, fmt.Errorf("%w: %d elements need at least %d bytes, %d remain", ErrLengthOverflow, length, needed, remaining))
		}
		fields := make([]*Node, length)
		for i := range fields {
			fields[i] = node.Elem
		}
		vals, err := decodeDynamicTuple(input, payloadStart, fields, opts, depth, path, indexLabel)
		if err != nil {
			return nil, err
		}
		return itemsValue(KindDynamicArray, vals), nil
	}

	elemWords, err := WordCount(node.Elem)
	if err != nil {
		return nil, withPath(path, err)
	}
	if mulOverflows(length, uint64(elemWords)) || mulOverflows(length*uint64(elemWords), WordSize) {
		return nil, withPath(path, fmt.Errorf("%w: %d elements overflows addressable length", ErrLengthOverflow, length))
	}
	needed := length * uint64(elemWords) * WordSize
	if needed > remaining {
		return nil, withPath(path, fmt.Errorf("%w: %d elements of %d words need %d bytes, %d remain", ErrLengthOverflow, length, elemWords, needed, remaining))
	}

	cursor := payloadStart
	vals := make([]*Value, length)
	for i := uint64(0); i < length; i++ {
		fieldPath := withField(path, indexLabel(int(i)))

		v, err := decode(input, cursor, node.Elem, opts, depth+1, fieldPath)
		if err != nil {
			return nil, err
		}
		vals[i] = v
		cursor += uint64(elemWords) * WordSize
	}
	return itemsValue(KindDynamicArray, vals), nil
}
