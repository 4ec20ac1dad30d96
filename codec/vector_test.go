// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/bcs/codec"
	"github.com/ava-labs/bcs/codec/codectest"
	"github.com/ava-labs/bcs/utils/wrappers"
)

func TestVector(t *testing.T) {
	u8s := codec.NewVector(codec.U8)
	codectest.SerializesTo(t, u8s, []uint8{1, 2, 3}, []byte{0x03, 0x01, 0x02, 0x03})
	codectest.SerializesTo(t, u8s, []uint8{}, []byte{0x00})

	strs := codec.NewVector(codec.String)
	codectest.SerializesTo(t, strs, []string{"a", "bc"},
		[]byte{0x02, 0x01, 0x61, 0x02, 0x62, 0x63})

	codectest.RoundTrip(t, codec.NewVector(u8s), [][]uint8{{1}, {}, {2, 3}})
}

func TestVectorTruncated(t *testing.T) {
	u16s := codec.NewVector(codec.U16)

	// count promises two elements, buffer holds one and a half
	_, err := u16s.Parse([]byte{0x02, 0x01, 0x00, 0x01})
	require.ErrorIs(t, err, wrappers.ErrBufferOverflow)

	// count itself is truncated
	_, err = u16s.Parse([]byte{0x80})
	require.Error(t, err)
}

func TestVectorHostileLengthPrefix(t *testing.T) {
	// a one-byte buffer claiming 2^40 elements must fail without a
	// proportional allocation
	u8s := codec.NewVector(codec.U8)
	_, err := u8s.Parse([]byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x01})
	require.ErrorIs(t, err, wrappers.ErrBufferOverflow)
}

func TestVectorElementValidation(t *testing.T) {
	strs := codec.NewVector(codec.String)
	err := strs.Validate([]string{"ok", string([]byte{0xff})})
	require.ErrorIs(t, err, codec.ErrTypeMismatch)
	require.ErrorContains(t, err, "vector<string>[1]")
}

func TestVectorHasNoFixedSize(t *testing.T) {
	_, ok := codec.NewVector(codec.U64).FixedSize()
	require.False(t, ok)
}
