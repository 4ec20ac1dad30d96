// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package wrappers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriterFixedWidth(t *testing.T) {
	require := require.New(t)
	w := NewWriter(4)

	require.NoError(w.U8(0x01))
	require.NoError(w.U16(0x0302))
	require.NoError(w.U32(0x07060504))
	require.NoError(w.U64(0x0f0e0d0c0b0a0908))

	require.Equal([]byte{
		0x01,
		0x02, 0x03,
		0x04, 0x05, 0x06, 0x07,
		0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f,
	}, w.Bytes())
	require.Equal(15, w.Offset())
}

func TestWriterGrowth(t *testing.T) {
	require := require.New(t)

	// growing to the max exactly is allowed
	w := NewBoundedWriter(1, 1, 4)
	require.NoError(w.RawBytes([]byte{1, 2, 3, 4}))
	require.Equal([]byte{1, 2, 3, 4}, w.Bytes())

	// one byte past the max is not
	w = NewBoundedWriter(1, 1, 4)
	require.ErrorIs(w.RawBytes([]byte{1, 2, 3, 4, 5}), ErrBufferTooSmall)
	require.Empty(w.Bytes())

	// a full writer rejects any further write
	w = NewBoundedWriter(2, 1, 2)
	require.NoError(w.U16(0xffff))
	require.ErrorIs(w.U8(0), ErrBufferTooSmall)
}

func TestWriterGrowthIncrement(t *testing.T) {
	require := require.New(t)

	// each grow adds at least the increment, or enough for the write
	w := NewBoundedWriter(1, 8, 0)
	require.NoError(w.U8(1))
	require.NoError(w.U64(2)) // forces a grow of the increment
	require.NoError(w.RawBytes(make([]byte, 100))) // forces a grow past the increment
	require.Equal(109, w.Offset())
}

func TestWriterBytesIsExact(t *testing.T) {
	require := require.New(t)
	w := NewWriter(64)
	require.NoError(w.U8(7))
	require.Equal([]byte{7}, w.Bytes())
}

func TestWriterULEB(t *testing.T) {
	require := require.New(t)
	w := NewWriter(0)
	require.NoError(w.ULEB(0))
	require.NoError(w.ULEB(300))
	require.Equal([]byte{0x00, 0xac, 0x02}, w.Bytes())
}

func TestWriteVector(t *testing.T) {
	require := require.New(t)
	w := NewWriter(0)
	require.NoError(WriteVector(w, []uint8{1, 2, 3}, func(v uint8, w *Writer) error {
		return w.U8(v)
	}))
	require.Equal([]byte{0x03, 0x01, 0x02, 0x03}, w.Bytes())
}
