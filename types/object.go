// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import "github.com/ava-labs/bcs/codec"

// ObjectRef pins one version of an object: its address, a
// monotonically increasing version, and the digest of that version's
// contents.
type ObjectRef struct {
	Address Address
	Version uint64
	Digest  Digest
}

// ObjectRefType encodes the three fields back to back, in declaration
// order.
var ObjectRefType = codec.NewStruct[ObjectRef]("object-ref",
	codec.NewField("address", AddressType, func(o *ObjectRef) *Address { return &o.Address }),
	codec.NewField("version", codec.U64, func(o *ObjectRef) *uint64 { return &o.Version }),
	codec.NewField("digest", DigestType, func(o *ObjectRef) *Digest { return &o.Digest }),
)

// Owner records who may mutate an object. Exactly one arm is set.
type Owner struct {
	// AddressOwner: the object belongs to an account.
	AddressOwner *Address
	// ObjectOwner: the object is a child of another object.
	ObjectOwner *Address
	// Shared: anyone may mutate, starting at this version.
	Shared *SharedOwnership
	// Immutable: nobody may mutate.
	Immutable bool
}

type SharedOwnership struct {
	InitialSharedVersion uint64
}

var sharedOwnershipType = codec.NewStruct[SharedOwnership]("shared-ownership",
	codec.NewField("initialSharedVersion", codec.U64,
		func(s *SharedOwnership) *uint64 { return &s.InitialSharedVersion }),
)

// OwnerType encodes ownership as a four-variant enum.
var OwnerType = codec.NewEnum[Owner]("owner",
	codec.NewVariant[Owner, Address]("addressOwner", AddressType,
		func(a Address) Owner { return Owner{AddressOwner: &a} },
		func(o Owner) (Address, bool) {
			if o.AddressOwner == nil {
				return Address{}, false
			}
			return *o.AddressOwner, true
		},
	),
	codec.NewVariant[Owner, Address]("objectOwner", AddressType,
		func(a Address) Owner { return Owner{ObjectOwner: &a} },
		func(o Owner) (Address, bool) {
			if o.ObjectOwner == nil {
				return Address{}, false
			}
			return *o.ObjectOwner, true
		},
	),
	codec.NewVariant[Owner, SharedOwnership]("shared", sharedOwnershipType,
		func(s SharedOwnership) Owner { return Owner{Shared: &s} },
		func(o Owner) (SharedOwnership, bool) {
			if o.Shared == nil {
				return SharedOwnership{}, false
			}
			return *o.Shared, true
		},
	),
	codec.NewUnitVariant("immutable", Owner{Immutable: true}, func(o Owner) bool {
		return o.Immutable
	}),
)
