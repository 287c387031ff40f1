// abidecode: Ethereum contract ABI decoding library
// Copyright 2026 abidecode Authors
// SPDX-License-Identifier: BSD-3-Clause

package abidecode

import (
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
)

// WordSize is the ABI's atomic cell size in bytes.
const WordSize = 32

// WordAt extracts the 32-byte word at the given word index (0-based).
// karalabe/ssz's DecodeUint256 reads a fixed 32-byte window off its stream
// into a scratch buffer before handing it to uint256.Int; here the
// "stream" is a random-access byte slice instead, so the window is a
// subslice rather than an io.ReadFull destination.
func WordAt(input []byte, wordIndex uint64) ([]byte, error) {
	start := wordIndex * WordSize
	return wordAtByteOffset(input, start)
}

func wordAtByteOffset(input []byte, byteOffset uint64) ([]byte, error) {
	end := byteOffset + WordSize
	if end > uint64(len(input)) || end < byteOffset {
		return nil, fmt.Errorf("%w: word at byte %d needs %d bytes, have %d", ErrTruncatedInput, byteOffset, WordSize, len(input))
	}
	return input[byteOffset:end], nil
}

// wordToUint256 parses a 32-byte word as an unsigned 256-bit integer, the
// same type karalabe/ssz's DecodeUint256 decodes every word into.
func wordToUint256(word []byte) *uint256.Int {
	var u uint256.Int
	u.SetBytes(word)
	return &u
}

// AsUint interprets the rightmost bits/8 bytes of word as a big-endian
// unsigned integer. The leading padding bytes are ignored and never
// validated, matching an encoder that never writes garbage there anyway.
func AsUint(word []byte, bits int) (*big.Int, error) {
	n, err := byteWidth(bits)
	if err != nil {
		return nil, err
	}
	if n == WordSize {
		return wordToUint256(word).ToBig(), nil
	}
	return new(big.Int).SetBytes(word[WordSize-n:]), nil
}

// AsInt interprets the rightmost bits/8 bytes of word as a big-endian
// two's-complement signed integer, in the style of
// hyperledger-firefly-signer's decodeABISignedInt /
// ParseInt256TwosComplementBytes.
func AsInt(word []byte, bits int) (*big.Int, error) {
	n, err := byteWidth(bits)
	if err != nil {
		return nil, err
	}
	slice := word[WordSize-n:]
	v := new(big.Int).SetBytes(slice)
	if len(slice) > 0 && slice[0]&0x80 != 0 {
		modulus := new(big.Int).Lsh(big.NewInt(1), uint(bits))
		v.Sub(v, modulus)
	}
	return v, nil
}

// AsUintUsize reads word as a full unsigned 256-bit integer and narrows it
// to a uint64, failing with ErrLengthOverflow if it doesn't fit.
func AsUintUsize(word []byte) (uint64, error) {
	u := wordToUint256(word)
	if !u.IsUint64() {
		return 0, fmt.Errorf("%w: value %s exceeds host addressing range", ErrLengthOverflow, u.ToBig().String())
	}
	return u.Uint64(), nil
}

func byteWidth(bits int) (int, error) {
	if bits <= 0 || bits > 256 || bits%8 != 0 {
		return 0, fmt.Errorf("%w: unrecognised integer width %d", ErrInvalidSchema, bits)
	}
	return bits / 8, nil
}
