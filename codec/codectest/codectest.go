// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package codectest provides shared assertions for exercising codec
// descriptors.
package codectest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/bcs/codec"
	"github.com/ava-labs/bcs/utils/wrappers"
)

// RoundTrip serializes [v], parses the bytes back, and requires
// structural equality. When the type declares a fixed size, the
// serialized length must match it.
func RoundTrip[T any](t *testing.T, typ *codec.Type[T], v T) {
	t.Helper()
	require := require.New(t)

	raw, err := typ.Serialize(v)
	require.NoError(err)
	if n, ok := typ.FixedSize(); ok {
		require.Len(raw, n)
	}

	parsed, err := typ.Parse(raw)
	require.NoError(err)
	require.Equal(v, parsed)

	// Write/Read through explicit cursors must agree with
	// Serialize/Parse.
	w := wrappers.NewWriter(len(raw))
	require.NoError(typ.Write(v, w))
	require.Equal(raw, w.Bytes())

	r := wrappers.NewReader(raw)
	read, err := typ.Read(r)
	require.NoError(err)
	require.Equal(v, read)
	require.Zero(r.Remaining())
}

// SerializesTo requires that [v] encodes to exactly [wire] and that
// [wire] parses back to [v].
func SerializesTo[T any](t *testing.T, typ *codec.Type[T], v T, wire []byte) {
	t.Helper()
	require := require.New(t)

	raw, err := typ.Serialize(v)
	require.NoError(err)
	require.Equal(wire, raw)

	parsed, err := typ.Parse(wire)
	require.NoError(err)
	require.Equal(v, parsed)
}

// FailsValidation requires that [v] is rejected before any bytes are
// produced.
func FailsValidation[T any](t *testing.T, typ *codec.Type[T], v T, wantErr error) {
	t.Helper()
	require := require.New(t)

	require.ErrorIs(typ.Validate(v), wantErr)

	raw, err := typ.Serialize(v)
	require.ErrorIs(err, wantErr)
	require.Nil(raw)
}
