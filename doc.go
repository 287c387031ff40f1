// abidecode: Ethereum contract ABI decoding library
// Copyright 2026 abidecode Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package abidecode decodes Ethereum contract ABI-encoded values: the
// inverse of the canonical encoding smart contracts use to receive
// arguments and return results.
//
// Given a hex-encoded byte stream and a schema tree built from the Node
// constructors in schema.go, Decode walks the schema, resolving the
// head/tail indirection dynamic types use, and returns a Value tree
// mirroring the schema's shape.
//
// Building schema Nodes from Solidity type strings (e.g. "uint256[2][]"),
// encoding values back to hex, and function-selector dispatch are all out
// of scope for this package.
package abidecode
