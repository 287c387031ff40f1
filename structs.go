// abidecode: Ethereum contract ABI decoding library
// Copyright 2026 abidecode Authors
// SPDX-License-Identifier: BSD-3-Clause

package abidecode

import "fmt"

// withField appends a breadcrumb label to path without mutating the
// caller's backing array (path may be reused across sibling iterations).
func withField(path []string, label string) []string {
	out := make([]string, len(path)+1)
	copy(out, path)
	out[len(path)] = label
	return out
}

func indexLabel(i int) string { return fmt.Sprintf("[%d]", i) }

// decodeStaticStruct decodes a struct none of whose fields are dynamic:
// fields are decoded left-to-right at an advancing cursor, with nested
// static structs flattened into the same cursor walk (no indirection,
// since nothing here is dynamic).
func decodeStaticStruct(input []byte, offset uint64, node *Node, opts *Options, depth int, path []string) (*Value, error) {
	cursor := offset
	vals := make([]*Value, len(node.Fields))
	for i := range node.Fields {
		field := &node.Fields[i]
		fieldPath := withField(path, indexLabel(i))

		v, err := decode(input, cursor, field, opts, depth+1, fieldPath)
		if err != nil {
			return nil, err
		}
		vals[i] = v

		words, err := SingleElementLength(input, cursor, field)
		if err != nil {
			return nil, withPath(fieldPath, err)
		}
		cursor += words * WordSize
	}
	return fieldsValue(KindStaticStruct, vals), nil
}

// decodeDynamicStruct decodes a struct with at least one dynamic field by
// delegating to decodeDynamicTuple's two-pass head/tail algorithm,
// treating the struct's own fields as the tuple's slots.
func decodeDynamicStruct(input []byte, offset uint64, node *Node, opts *Options, depth int, path []string) (*Value, error) {
	fields := nodeFieldPointers(node)
	vals, err := decodeDynamicTuple(input, offset, fields, opts, depth, path, indexLabel)
	if err != nil {
		return nil, err
	}
	return fieldsValue(KindDynamicStruct, vals), nil
}

func nodeFieldPointers(node *Node) []*Node {
	fields := make([]*Node, len(node.Fields))
	for i := range node.Fields {
		fields[i] = &node.Fields[i]
	}
	return fields
}

// decodeDynamicTuple implements the shared head/tail machinery behind
// dynamic structs, static arrays of dynamic elements, and dynamic arrays
// of dynamic elements: a run of slots starting at `start`, each either
// inline static data or a 32-byte offset relative to `start` pointing
// into a tail region.
//
// Pass 1 reads heads, decoding static slots immediately and recording the
// absolute tail offset for dynamic ones. Pass 2 resolves each dynamic
// slot's tail as the byte range from its recorded offset to the next
// dynamic slot's offset (or the end of input for the last one), reslicing
// input and recursing.
//
// Struct fields and array elements both boil down to "N offset-bearing
// slots followed by N tails" underneath, so rather than maintaining one
// offset-resolution algorithm for struct fields and a separate one for
// array elements, both paths share this function.
func decodeDynamicTuple(input []byte, start uint64, fields []*Node, opts *Options, depth int, path []string, label func(int) string) ([]*Value, error) {
	type pendingTail struct {
		idx int
		abs uint64
	}

	cursor := start
	vals := make([]*Value, len(fields))
	var pending []pendingTail

	for i, field := range fields {
		fieldPath := withField(path, label(i))

		if IsDynamic(field) {
			abs, err := GetDataOffset(input, cursor, start, field)
			if err != nil {
				return nil, withPath(fieldPath, err)
			}
			opts.logf("abidecode: %v: head at byte %d resolves to tail at byte %d", fieldPath, cursor, abs)
			pending = append(pending, pendingTail{idx: i, abs: abs})
			cursor += WordSize
			continue
		}

		v, err := decode(input, cursor, field, opts, depth+1, fieldPath)
		if err != nil {
			return nil, err
		}
		vals[i] = v

		words, err := SingleElementLength(input, cursor, field)
		if err != nil {
			return nil, withPath(fieldPath, err)
		}
		cursor += words * WordSize
	}

	for j, tail := range pending {
		fieldPath := withField(path, label(tail.idx))

		var end uint64
		if j == len(pending)-1 {
			end = uint64(len(input))
		} else {
			end = pending[j+1].abs
		}
		if tail.abs > uint64(len(input)) {
			return nil, withPath(fieldPath, fmt.Errorf("%w: offset %d lies beyond %d input bytes", ErrOffsetOutOfRange, tail.abs, len(input)))
		}
		if end > uint64(len(input)) {
			nextPath := withField(path, label(pending[j+1].idx))
			return nil, withPath(nextPath, fmt.Errorf("%w: offset %d lies beyond %d input bytes", ErrOffsetOutOfRange, end, len(input)))
		}
		if end < tail.abs {
			return nil, withPath(fieldPath, fmt.Errorf("%w: offset %d is greater than the next offset %d", ErrOffsetOutOfRange, tail.abs, end))
		}

		v, err := decode(input[tail.abs:end], 0, fields[tail.idx], opts, depth+1, fieldPath)
		if err != nil {
			return nil, err
		}
		vals[tail.idx] = v
	}

	return vals, nil
}
