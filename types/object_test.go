// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/bcs/codec"
	"github.com/ava-labs/bcs/codec/codectest"
)

func TestObjectRef(t *testing.T) {
	ref := ObjectRef{
		Address: testAddress(0x11),
		Version: 9,
		Digest:  Digest(testAddress(0x33)),
	}
	codectest.RoundTrip(t, ObjectRefType, ref)

	// address, then the little-endian version, then the length-prefixed
	// digest
	want := append([]byte{}, ref.Address[:]...)
	want = append(want, 9, 0, 0, 0, 0, 0, 0, 0)
	want = append(want, DigestLen)
	want = append(want, ref.Digest[:]...)
	codectest.SerializesTo(t, ObjectRefType, ref, want)
}

func TestObjectRefFixedSize(t *testing.T) {
	// the digest carries a length prefix, so the struct size is dynamic
	_, ok := ObjectRefType.FixedSize()
	require.False(t, ok)
}

func TestOwnerVariants(t *testing.T) {
	addr := testAddress(0x44)

	tests := []struct {
		name  string
		owner Owner
		wire  []byte
	}{
		{
			name:  "addressOwner",
			owner: Owner{AddressOwner: &addr},
			wire:  append([]byte{0}, addr[:]...),
		},
		{
			name:  "objectOwner",
			owner: Owner{ObjectOwner: &addr},
			wire:  append([]byte{1}, addr[:]...),
		},
		{
			name:  "shared",
			owner: Owner{Shared: &SharedOwnership{InitialSharedVersion: 7}},
			wire:  []byte{2, 7, 0, 0, 0, 0, 0, 0, 0},
		},
		{
			name:  "immutable",
			owner: Owner{Immutable: true},
			wire:  []byte{3},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			codectest.SerializesTo(t, OwnerType, tt.owner, tt.wire)
		})
	}
}

func TestOwnerExactlyOneArm(t *testing.T) {
	require := require.New(t)

	addr := testAddress(0x55)

	// no arm set
	err := OwnerType.Validate(Owner{})
	require.ErrorIs(err, codec.ErrInvalidVariantCount)

	// two arms set
	err = OwnerType.Validate(Owner{AddressOwner: &addr, Immutable: true})
	require.ErrorIs(err, codec.ErrInvalidVariantCount)
}
