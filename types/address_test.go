// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/bcs/codec"
	"github.com/ava-labs/bcs/codec/codectest"
	"github.com/ava-labs/bcs/utils/formatting"
)

func testAddress(fill byte) Address {
	var a Address
	for i := range a {
		a[i] = fill
	}
	return a
}

func TestAddressCodec(t *testing.T) {
	a := testAddress(0xab)
	codectest.SerializesTo(t, AddressType, a, a[:])
	codectest.RoundTrip(t, AddressType, Address{})

	n, ok := AddressType.FixedSize()
	require.True(t, ok)
	require.Equal(t, AddressLen, n)
}

func TestAddressText(t *testing.T) {
	require := require.New(t)

	a := testAddress(0x01)
	str := a.String()
	require.True(strings.HasPrefix(str, "0x"))
	require.Len(str, 2+2*AddressLen)

	back, err := AddressFromString(str)
	require.NoError(err)
	require.Equal(a, back)

	_, err = AddressFromString("0x0102")
	require.ErrorIs(err, formatting.ErrInvalidEncoding)

	_, err = AddressFromString("not hex")
	require.ErrorIs(err, formatting.ErrInvalidEncoding)
}

func TestDigestCodec(t *testing.T) {
	require := require.New(t)

	d := Digest(testAddress(0x0f))
	raw, err := DigestType.Serialize(d)
	require.NoError(err)
	// length-prefixed: 32 as a single ULEB byte, then the digest
	require.Equal(byte(DigestLen), raw[0])
	require.Equal(d[:], raw[1:])

	codectest.RoundTrip(t, DigestType, d)

	// a vector of the wrong width is not a digest
	_, err = DigestType.Parse(append([]byte{0x02}, 0xaa, 0xbb))
	require.ErrorIs(err, codec.ErrArityMismatch)
}

func TestDigestText(t *testing.T) {
	require := require.New(t)

	d := Digest(testAddress(0x22))
	back, err := DigestFromString(d.String())
	require.NoError(err)
	require.Equal(d, back)

	_, err = DigestFromString("0OIl") // not in the base58 alphabet
	require.ErrorIs(err, formatting.ErrInvalidEncoding)
}
