// abidecode: Ethereum contract ABI decoding library
// Copyright 2026 abidecode Authors
// SPDX-License-Identifier: BSD-3-Clause

package abidecode

import "fmt"

// Kind tags a schema Node with one of the supported Solidity type shapes.
type Kind uint8

const (
	KindBool Kind = iota
	KindAddress
	KindUint
	KindInt
	KindBytesN
	KindDynamicBytes
	KindString
	KindStaticArray
	KindDynamicArray
	KindStaticStruct
	KindDynamicStruct
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindAddress:
		return "address"
	case KindUint:
		return "uint"
	case KindInt:
		return "int"
	case KindBytesN:
		return "bytesN"
	case KindDynamicBytes:
		return "bytes"
	case KindString:
		return "string"
	case KindStaticArray:
		return "staticArray"
	case KindDynamicArray:
		return "dynamicArray"
	case KindStaticStruct:
		return "staticStruct"
	case KindDynamicStruct:
		return "dynamicStruct"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Node describes one Solidity type in a schema tree. The decoder consumes
// Nodes; it never discovers field lists or element types by inspection of
// a host-language value, since every composite Node carries its children
// explicitly, rather than dispatching on reflection over a decoded
// Go value the way a struct-tag-driven decoder would.
//
// Only the fields relevant to a Node's Kind are meaningful:
//
//	KindUint, KindInt:     Bits
//	KindBytesN:            Size (1..32)
//	KindStaticArray:       Elem, Size (element count, > 0)
//	KindDynamicArray:      Elem
//	KindStaticStruct,
//	KindDynamicStruct:     Fields
type Node struct {
	Kind   Kind
	Bits   int
	Size   int
	Elem   *Node
	Fields []Node
}

// Bool returns a bool schema node.
func Bool() Node { return Node{Kind: KindBool} }

// Address returns an address schema node (uint160 under the hood).
func Address() Node { return Node{Kind: KindAddress, Bits: 160} }

// Uint returns a uintN schema node. bits must be a multiple of 8 in [8, 256].
func Uint(bits int) Node { return Node{Kind: KindUint, Bits: bits} }

// Int returns an intN schema node. bits must be a multiple of 8 in [8, 256].
func Int(bits int) Node { return Node{Kind: KindInt, Bits: bits} }

// BytesN returns a fixed-length bytesN schema node. n must be in [1, 32].
func BytesN(n int) Node { return Node{Kind: KindBytesN, Size: n} }

// DynamicBytes returns a variable-length bytes schema node.
func DynamicBytes() Node { return Node{Kind: KindDynamicBytes} }

// String returns a variable-length UTF-8 string schema node.
func String() Node { return Node{Kind: KindString} }

// StaticArrayOf returns a schema node for a fixed-size array of n elements
// of elem. n must be > 0 (enforced at decode time).
func StaticArrayOf(elem Node, n int) Node {
	e := elem
	return Node{Kind: KindStaticArray, Elem: &e, Size: n}
}

// DynamicArrayOf returns a schema node for a variable-size array of elem.
func DynamicArrayOf(elem Node) Node {
	e := elem
	return Node{Kind: KindDynamicArray, Elem: &e}
}

// Struct returns a tuple schema node over the given ordered fields,
// automatically classifying it as static or dynamic (a tuple is
// dynamic iff any field, transitively, is dynamic).
func Struct(fields ...Node) Node {
	kind := KindStaticStruct
	for i := range fields {
		if IsDynamic(&fields[i]) {
			kind = KindDynamicStruct
			break
		}
	}
	return Node{Kind: kind, Fields: fields}
}

// IsDynamic reports whether n's encoding is variable-length.
//
// A static array of dynamic elements is itself dynamic. Some ABI
// decoders handle this by aliasing it to a DynamicArray with a
// synthesized length prefix; this one instead decodes it directly as n
// head-offset words followed by n tails (see decodeStaticArray), but the
// dynamic-ness classification below is unaffected by that choice.
func IsDynamic(n *Node) bool {
	switch n.Kind {
	case KindDynamicBytes, KindString, KindDynamicArray, KindDynamicStruct:
		return true
	case KindStaticArray:
		return n.Elem != nil && IsDynamic(n.Elem)
	default:
		return false
	}
}

// WordCount returns the number of 32-byte words a static schema node
// occupies. It is an error to call WordCount on a dynamic node, callers
// must check IsDynamic first.
func WordCount(n *Node) (uint32, error) {
	if IsDynamic(n) {
		return 0, fmt.Errorf("%w: word count requested for dynamic kind %s", ErrInvalidSchema, n.Kind)
	}
	switch n.Kind {
	case KindBool, KindAddress, KindUint, KindInt, KindBytesN:
		return 1, nil
	case KindStaticArray:
		if n.Size <= 0 {
			return 0, fmt.Errorf("%w: zero-length static array", ErrInvalidSchema)
		}
		ec, err := WordCount(n.Elem)
		if err != nil {
			return 0, err
		}
		return ec * uint32(n.Size), nil
	case KindStaticStruct:
		var total uint32
		for i := range n.Fields {
			wc, err := WordCount(&n.Fields[i])
			if err != nil {
				return 0, err
			}
			total += wc
		}
		return total, nil
	default:
		return 0, fmt.Errorf("%w: unrecognised schema kind %s", ErrInvalidSchema, n.Kind)
	}
}
