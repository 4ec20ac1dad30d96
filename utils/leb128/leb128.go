// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package leb128 implements unsigned little-endian base-128 (ULEB128)
// variable-length integers. The encoding is used for enum variant tags
// and length prefixes, never for fixed-width integers.
package leb128

import "errors"

// MaxLen is the maximum number of bytes a uint64 occupies when encoded.
const MaxLen = 10

var (
	ErrOverflow  = errors.New("uleb128 value overflows uint64")
	ErrTruncated = errors.New("uleb128 sequence truncated")
)

// Append appends the minimal ULEB128 encoding of [x] to [dst] and
// returns the extended slice. Zero encodes as a single 0x00 byte.
func Append(dst []byte, x uint64) []byte {
	for x >= 0x80 {
		dst = append(dst, byte(x)|0x80)
		x >>= 7
	}
	return append(dst, byte(x))
}

// SizeOf returns the number of bytes Append emits for [x].
func SizeOf(x uint64) int {
	n := 1
	for x >= 0x80 {
		x >>= 7
		n++
	}
	return n
}

// Decode reads a ULEB128 value from the front of [b], returning the
// value and the number of bytes consumed. Non-minimal but well-formed
// sequences are accepted. Decode fails with ErrTruncated if [b] ends
// while a continuation bit is set, and with ErrOverflow if the value
// doesn't fit in a uint64.
func Decode(b []byte) (uint64, int, error) {
	var (
		x     uint64
		shift uint
	)
	for i, c := range b {
		if i >= MaxLen {
			return 0, 0, ErrOverflow
		}
		group := uint64(c & 0x7f)
		if shift == 63 && group > 1 {
			return 0, 0, ErrOverflow
		}
		x |= group << shift
		if c < 0x80 {
			return x, i + 1, nil
		}
		shift += 7
	}
	return 0, 0, ErrTruncated
}
