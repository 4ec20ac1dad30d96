// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package wrappers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/bcs/utils/leb128"
)

func TestReaderFixedWidth(t *testing.T) {
	require := require.New(t)
	r := NewReader([]byte{
		0x01,
		0x02, 0x03,
		0x04, 0x05, 0x06, 0x07,
		0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f,
	})

	u8, err := r.U8()
	require.NoError(err)
	require.Equal(uint8(0x01), u8)

	u16, err := r.U16()
	require.NoError(err)
	require.Equal(uint16(0x0302), u16)

	u32, err := r.U32()
	require.NoError(err)
	require.Equal(uint32(0x07060504), u32)

	u64, err := r.U64()
	require.NoError(err)
	require.Equal(uint64(0x0f0e0d0c0b0a0908), u64)

	require.Equal(15, r.Offset())
	require.Zero(r.Remaining())
}

func TestReaderBytesIsAView(t *testing.T) {
	require := require.New(t)
	buf := []byte{1, 2, 3, 4}
	r := NewReader(buf)

	view, err := r.Bytes(2)
	require.NoError(err)
	require.Equal([]byte{1, 2}, view)

	buf[0] = 9
	require.Equal([]byte{9, 2}, view)
}

func TestReaderBounds(t *testing.T) {
	reads := map[string]func(*Reader) error{
		"u8":  func(r *Reader) error { _, err := r.U8(); return err },
		"u16": func(r *Reader) error { _, err := r.U16(); return err },
		"u32": func(r *Reader) error { _, err := r.U32(); return err },
		"u64": func(r *Reader) error { _, err := r.U64(); return err },
		"bytes": func(r *Reader) error {
			_, err := r.Bytes(2)
			return err
		},
	}
	for name, read := range reads {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, read(NewReader(nil)), ErrBufferOverflow)

			// a partial prefix is just as much of an overflow
			r := NewReader([]byte{0x00})
			_, err := r.U8()
			require.NoError(t, err)
			require.ErrorIs(t, read(r), ErrBufferOverflow)
		})
	}

	r := NewReader([]byte{1, 2, 3})
	_, err := r.Bytes(-1)
	require.ErrorIs(t, err, ErrBufferOverflow)
}

func TestReaderULEB(t *testing.T) {
	require := require.New(t)

	r := NewReader([]byte{0xac, 0x02, 0x07})
	x, err := r.ULEB()
	require.NoError(err)
	require.Equal(uint64(300), x)
	require.Equal(2, r.Offset())

	r = NewReader([]byte{0x80})
	_, err = r.ULEB()
	require.ErrorIs(err, leb128.ErrTruncated)
}

func TestReaderLenOverflow(t *testing.T) {
	// 2^63, a length no buffer can satisfy
	r := NewReader([]byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x01})
	_, err := r.Len()
	require.ErrorIs(t, err, ErrBufferOverflow)
}

func TestReadVector(t *testing.T) {
	require := require.New(t)

	r := NewReader([]byte{0x03, 0x01, 0x02, 0x03})
	got, err := ReadVector(r, (*Reader).U8)
	require.NoError(err)
	require.Equal([]uint8{1, 2, 3}, got)

	// length prefix promises more elements than the buffer holds
	r = NewReader([]byte{0x05, 0x01})
	_, err = ReadVector(r, (*Reader).U8)
	require.ErrorIs(err, ErrBufferOverflow)
}
