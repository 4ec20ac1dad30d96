// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package types defines the serialized shapes shared by object state
// and transaction records: addresses, digests, ownership, and the
// runtime type-tag grammar. Each shape is a schema built from the codec
// combinators; the schemas are constructed once at package
// initialization and shared for the life of the process.
package types

import (
	"fmt"

	"github.com/ava-labs/bcs/codec"
	"github.com/ava-labs/bcs/utils/formatting"
)

const (
	// AddressLen is the length of an account or object address.
	AddressLen = 32

	// DigestLen is the length of a transaction or object digest.
	DigestLen = 32
)

// Address is a 32-byte account or object address, rendered as
// 0x-prefixed hex at text boundaries.
type Address [AddressLen]byte

// AddressType encodes an Address as its 32 raw bytes, no prefix.
var AddressType = codec.Transform[[]byte, Address]("address", codec.ByteArray(AddressLen),
	func(a Address) ([]byte, error) {
		return a[:], nil
	},
	func(b []byte) (Address, error) {
		var a Address
		copy(a[:], b)
		return a, nil
	},
	nil,
)

func (a Address) String() string {
	str, _ := formatting.Encode(formatting.Hex, a[:])
	return str
}

// AddressFromString parses a 0x-prefixed hex address.
func AddressFromString(str string) (Address, error) {
	var a Address
	b, err := formatting.Decode(formatting.Hex, str)
	if err != nil {
		return a, err
	}
	if len(b) != AddressLen {
		return a, fmt.Errorf("%w: address is %d bytes, expected %d",
			formatting.ErrInvalidEncoding, len(b), AddressLen)
	}
	copy(a[:], b)
	return a, nil
}

// Digest is a 32-byte content digest, rendered as base58 at text
// boundaries.
type Digest [DigestLen]byte

// DigestType encodes a Digest as a length-prefixed byte vector, the
// form digests take inside transaction records.
var DigestType = codec.Transform[[]byte, Digest]("digest", codec.Bytes,
	func(d Digest) ([]byte, error) {
		return d[:], nil
	},
	func(b []byte) (Digest, error) {
		var d Digest
		if len(b) != DigestLen {
			return d, fmt.Errorf("%w: digest is %d bytes, expected %d",
				codec.ErrArityMismatch, len(b), DigestLen)
		}
		copy(d[:], b)
		return d, nil
	},
	nil,
)

func (d Digest) String() string {
	str, _ := formatting.Encode(formatting.Base58, d[:])
	return str
}

// DigestFromString parses a base58 digest.
func DigestFromString(str string) (Digest, error) {
	var d Digest
	b, err := formatting.Decode(formatting.Base58, str)
	if err != nil {
		return d, err
	}
	if len(b) != DigestLen {
		return d, fmt.Errorf("%w: digest is %d bytes, expected %d",
			formatting.ErrInvalidEncoding, len(b), DigestLen)
	}
	copy(d[:], b)
	return d, nil
}
