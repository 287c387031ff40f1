// abidecode: Ethereum contract ABI decoding library
// Copyright 2026 abidecode Authors
// SPDX-License-Identifier: BSD-3-Clause

package abidecode

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// decodeBool implements the Bool decoder: any word whose value is
// exactly 1 decodes to true, anything else to false. A stricter "nonzero
// means true" reading was considered and rejected in favor of matching
// this narrower, source-preserving behaviour.
func decodeBool(input []byte, offset uint64, path []string) (*Value, error) {
	word, err := wordAtByteOffset(input, offset)
	if err != nil {
		return nil, withPath(path, err)
	}
	val := word[WordSize-1] == 1
	for i := 0; i < WordSize-1 && val; i++ {
		if word[i] != 0 {
			val = false
		}
	}
	return boolValue(val), nil
}

// decodeAddress implements the Address decoder: the rightmost 20 bytes
// of the word.
func decodeAddress(input []byte, offset uint64, path []string) (*Value, error) {
	word, err := wordAtByteOffset(input, offset)
	if err != nil {
		return nil, withPath(path, err)
	}
	addr := make([]byte, 20)
	copy(addr, word[WordSize-20:])
	return bytesValue(KindAddress, addr), nil
}

func decodeUint(input []byte, offset uint64, node *Node, path []string) (*Value, error) {
	word, err := wordAtByteOffset(input, offset)
	if err != nil {
		return nil, withPath(path, err)
	}
	n, err := AsUint(word, node.Bits)
	if err != nil {
		return nil, withPath(path, err)
	}
	return intValue(KindUint, n), nil
}

func decodeInt(input []byte, offset uint64, node *Node, path []string) (*Value, error) {
	word, err := wordAtByteOffset(input, offset)
	if err != nil {
		return nil, withPath(path, err)
	}
	n, err := AsInt(word, node.Bits)
	if err != nil {
		return nil, withPath(path, err)
	}
	return intValue(KindInt, n), nil
}

func decodeBytesN(input []byte, offset uint64, node *Node, path []string) (*Value, error) {
	if node.Size < 1 || node.Size > WordSize {
		return nil, withPath(path, fmt.Errorf("%w: bytesN size %d out of range", ErrInvalidSchema, node.Size))
	}
	word, err := wordAtByteOffset(input, offset)
	if err != nil {
		return nil, withPath(path, err)
	}
	b := make([]byte, node.Size)
	copy(b, word[:node.Size])
	return bytesValue(KindBytesN, b), nil
}

// readLengthPrefixedBytes implements the common shape behind DynamicBytes
// and String: a length word followed by ceil(length/32) data words,
// of which only the first `length` bytes are meaningful.
func readLengthPrefixedBytes(input []byte, offset uint64, path []string) ([]byte, error) {
	lengthWord, err := wordAtByteOffset(input, offset)
	if err != nil {
		return nil, withPath(path, err)
	}
	length, err := AsUintUsize(lengthWord)
	if err != nil {
		return nil, withPath(path, err)
	}
	dataStart := offset + WordSize
	remaining := uint64(len(input))
	if dataStart > remaining {
		return nil, withPath(path, fmt.Errorf("%w: no room for %d-byte payload at offset %d", ErrTruncatedInput, length, dataStart))
	}
	if length > remaining-dataStart {
		return nil, withPath(path, fmt.Errorf("%w: declared length %d exceeds %d bytes remaining", ErrLengthOverflow, length, remaining-dataStart))
	}
	data := make([]byte, length)
	copy(data, input[dataStart:dataStart+length])
	return data, nil
}

func decodeDynamicBytes(input []byte, offset uint64, path []string) (*Value, error) {
	data, err := readLengthPrefixedBytes(input, offset, path)
	if err != nil {
		return nil, err
	}
	return bytesValue(KindDynamicBytes, data), nil
}

// decodeString implements the Utf8String decoder: identical wire shape
// to DynamicBytes, decoded as UTF-8 without normalization. The default is
// lenient (malformed sequences are replaced); WithStrictUTF8 raises
// ErrInvalidUTF8 instead.
func decodeString(input []byte, offset uint64, opts *Options, path []string) (*Value, error) {
	data, err := readLengthPrefixedBytes(input, offset, path)
	if err != nil {
		return nil, err
	}
	if opts.StrictUTF8 && !utf8.Valid(data) {
		return nil, withPath(path, fmt.Errorf("%w", ErrInvalidUTF8))
	}
	s := string(data)
	if !opts.StrictUTF8 && !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, string(utf8.RuneError))
	}
	return stringValue(s), nil
}
