// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package leb128

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppend(t *testing.T) {
	tests := []struct {
		value uint64
		want  []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{127, []byte{0x7f}},
		{128, []byte{0x80, 0x01}},
		{300, []byte{0xac, 0x02}},
		{16384, []byte{0x80, 0x80, 0x01}},
		{math.MaxUint64, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01}},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, Append(nil, tt.value))
		require.Len(t, tt.want, SizeOf(tt.value))
	}
}

func TestDecode(t *testing.T) {
	value, n, err := Decode([]byte{0xac, 0x02})
	require.NoError(t, err)
	require.Equal(t, uint64(300), value)
	require.Equal(t, 2, n)

	// trailing bytes are left for the caller
	value, n, err = Decode([]byte{0x00, 0xff})
	require.NoError(t, err)
	require.Zero(t, value)
	require.Equal(t, 1, n)

	// non-minimal but well-formed sequences are accepted
	value, n, err = Decode([]byte{0x80, 0x00})
	require.NoError(t, err)
	require.Zero(t, value)
	require.Equal(t, 2, n)
}

func TestDecodeTruncated(t *testing.T) {
	for _, b := range [][]byte{nil, {0x80}, {0xff, 0xff}} {
		_, _, err := Decode(b)
		require.ErrorIs(t, err, ErrTruncated)
	}
}

func TestDecodeOverflow(t *testing.T) {
	// 2^64 exactly
	_, _, err := Decode([]byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x02})
	require.ErrorIs(t, err, ErrOverflow)

	// an eleventh group, regardless of its value
	_, _, err = Decode([]byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x00})
	require.ErrorIs(t, err, ErrOverflow)
}

func TestRoundTrip(t *testing.T) {
	for _, value := range []uint64{0, 1, 42, 127, 128, 255, 300, 1 << 20, 1 << 35, math.MaxUint64} {
		encoded := Append(nil, value)
		decoded, n, err := Decode(encoded)
		require.NoError(t, err)
		require.Equal(t, value, decoded)
		require.Equal(t, len(encoded), n)
	}
}
