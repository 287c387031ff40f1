// abidecode: Ethereum contract ABI decoding library
// Copyright 2026 abidecode Authors
// SPDX-License-Identifier: BSD-3-Clause

package abidecode

import (
	"errors"
	"math/big"
	"testing"
)

func TestDecodeScenario7DynamicStruct(t *testing.T) {
	// Struct { uint256; string } with values (42, "hi").
	input := concatBytes(
		word32(42),         // field 0: inline
		word32(2*WordSize), // field 1: head offset, relative to struct start
		word32(2),          // tail: string length
		wordBytes([]byte("hi")),
	)
	schema := Struct(Uint(256), String())

	v, err := Decode(mustHex(input), &schema)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if schema.Kind != KindDynamicStruct {
		t.Fatalf("Struct(Uint(256), String()) should classify as dynamic, got %s", schema.Kind)
	}

	fields, ok := v.AsFields()
	if !ok || len(fields) != 2 {
		t.Fatalf("AsFields() = (%d, %v), want (2, true)", len(fields), ok)
	}
	n, _ := fields[0].AsBigInt()
	if n.Cmp(big.NewInt(42)) != 0 {
		t.Fatalf("fields[0] = %s, want 42", n)
	}
	s, _ := fields[1].AsString()
	if s != "hi" {
		t.Fatalf("fields[1] = %q, want \"hi\"", s)
	}
}

func TestDecodeStaticStructFlattensNestedStaticStructs(t *testing.T) {
	// Struct { Struct{uint8; bool}; address }
	inner := Struct(Uint(8), Bool())
	schema := Struct(inner, Address())

	addr := make([]byte, 20)
	for i := range addr {
		addr[i] = 0x11
	}
	addrWord := make([]byte, WordSize)
	copy(addrWord[WordSize-20:], addr)

	input := concatBytes(word32(7), word32(1), addrWord)

	v, err := Decode(mustHex(input), &schema)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	fields, _ := v.AsFields()
	if len(fields) != 2 {
		t.Fatalf("expected 2 top-level fields, got %d", len(fields))
	}
	innerFields, ok := fields[0].AsFields()
	if !ok || len(innerFields) != 2 {
		t.Fatalf("expected nested struct with 2 fields, got %d, ok=%v", len(innerFields), ok)
	}
	n, _ := innerFields[0].AsBigInt()
	if n.Cmp(big.NewInt(7)) != 0 {
		t.Fatalf("innerFields[0] = %s, want 7", n)
	}
	b, _ := innerFields[1].AsBool()
	if !b {
		t.Fatal("innerFields[1] = false, want true")
	}
	gotAddr, _ := fields[1].AsBytes()
	for _, by := range gotAddr {
		if by != 0x11 {
			t.Fatalf("address bytes = %x, want all 0x11", gotAddr)
		}
	}
}

func TestDecodeDynamicStructDecreasingOffsetFails(t *testing.T) {
	// Struct { bytes; bytes } where the second field's offset is less
	// than the first's: must not crash, and must fail with
	// ErrOffsetOutOfRange rather than silently reordering the fields.
	input := concatBytes(
		word32(3*WordSize), // field 0 head: offset 96
		word32(2*WordSize), // field 1 head: offset 64 (< field 0's offset)
		word32(1), wordBytes([]byte("x")),
		word32(1), wordBytes([]byte("y")),
	)
	schema := Struct(DynamicBytes(), DynamicBytes())

	_, err := Decode(mustHex(input), &schema)
	if !errors.Is(err, ErrOffsetOutOfRange) {
		t.Fatalf("expected ErrOffsetOutOfRange, got %v", err)
	}
}

func TestDecodeDynamicStructOffsetBeyondInputFails(t *testing.T) {
	input := concatBytes(
		word32(10_000), // wildly out-of-range head offset
	)
	schema := Struct(DynamicBytes())

	_, err := Decode(mustHex(input), &schema)
	if !errors.Is(err, ErrOffsetOutOfRange) {
		t.Fatalf("expected ErrOffsetOutOfRange, got %v", err)
	}
}

func TestDecodeErrorPathIncludesBreadcrumb(t *testing.T) {
	schema := Struct(Uint(256), Struct(Bool(), String()))
	input := concatBytes(word32(1)) // truncated: missing every other field

	_, err := Decode(mustHex(input), &schema)
	if err == nil {
		t.Fatal("expected a truncation error")
	}
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("expected a *DecodeError carrying a breadcrumb path, got %T: %v", err, err)
	}
	if len(de.Path) == 0 {
		t.Fatal("expected a non-empty breadcrumb path")
	}
}
