// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"fmt"
	"strings"

	"github.com/ava-labs/bcs/codec"
)

// TypeTag is the runtime type grammar carried inside transaction
// records: a primitive width, an address-like kind, a vector of another
// tag, or a fully-qualified struct. It is a closed sum; exactly one
// concrete tag type inhabits each value.
type TypeTag interface {
	fmt.Stringer
	isTypeTag()
}

type (
	BoolTag    struct{}
	U8Tag      struct{}
	U16Tag     struct{}
	U32Tag     struct{}
	U64Tag     struct{}
	U128Tag    struct{}
	U256Tag    struct{}
	AddressTag struct{}
	SignerTag  struct{}

	// VectorTag is a homogeneous vector of another tag.
	VectorTag struct {
		Elem TypeTag
	}

	// StructTag fully qualifies a declared struct type, including its
	// type parameters.
	StructTag struct {
		Address    Address
		Module     string
		Name       string
		TypeParams []TypeTag
	}
)

func (BoolTag) isTypeTag()    {}
func (U8Tag) isTypeTag()      {}
func (U16Tag) isTypeTag()     {}
func (U32Tag) isTypeTag()     {}
func (U64Tag) isTypeTag()     {}
func (U128Tag) isTypeTag()    {}
func (U256Tag) isTypeTag()    {}
func (AddressTag) isTypeTag() {}
func (SignerTag) isTypeTag()  {}
func (VectorTag) isTypeTag()  {}
func (StructTag) isTypeTag()  {}

func (BoolTag) String() string    { return "bool" }
func (U8Tag) String() string      { return "u8" }
func (U16Tag) String() string     { return "u16" }
func (U32Tag) String() string     { return "u32" }
func (U64Tag) String() string     { return "u64" }
func (U128Tag) String() string    { return "u128" }
func (U256Tag) String() string    { return "u256" }
func (AddressTag) String() string { return "address" }
func (SignerTag) String() string  { return "signer" }

func (t VectorTag) String() string {
	return fmt.Sprintf("vector<%s>", t.Elem)
}

func (t StructTag) String() string {
	base := fmt.Sprintf("%s::%s::%s", t.Address, t.Module, t.Name)
	if len(t.TypeParams) == 0 {
		return base
	}
	params := make([]string, len(t.TypeParams))
	for i, p := range t.TypeParams {
		params[i] = p.String()
	}
	return base + "<" + strings.Join(params, ", ") + ">"
}

var (
	// TypeTagType is the codec for the tag grammar. The vector and
	// struct arms close over the grammar itself, so both sides go
	// through a lazy indirection resolved on first use.
	TypeTagType *codec.Type[TypeTag]

	// StructTagType is the codec for fully-qualified struct tags.
	StructTagType *codec.Type[StructTag]
)

// unitTag declares a payload-free arm of the grammar.
func unitTag[E TypeTag](name string, value E) codec.VariantDesc[TypeTag] {
	return codec.NewUnitVariant[TypeTag](name, value, func(t TypeTag) bool {
		_, ok := t.(E)
		return ok
	})
}

func init() {
	lazyTag := codec.NewLazy("type-tag", func() *codec.Type[TypeTag] { return TypeTagType })

	StructTagType = codec.NewStruct[StructTag]("struct-tag",
		codec.NewField("address", AddressType, func(t *StructTag) *Address { return &t.Address }),
		codec.NewField("module", codec.String, func(t *StructTag) *string { return &t.Module }),
		codec.NewField("name", codec.String, func(t *StructTag) *string { return &t.Name }),
		codec.NewField("typeParams", codec.NewVector(lazyTag), func(t *StructTag) *[]TypeTag { return &t.TypeParams }),
	)

	// The u16, u32 and u256 arms were appended after the original
	// grammar shipped, keeping the earlier tags stable.
	TypeTagType = codec.NewEnum[TypeTag]("type-tag",
		unitTag("bool", BoolTag{}),
		unitTag("u8", U8Tag{}),
		unitTag("u64", U64Tag{}),
		unitTag("u128", U128Tag{}),
		unitTag("address", AddressTag{}),
		unitTag("signer", SignerTag{}),
		codec.NewVariant[TypeTag, TypeTag]("vector", lazyTag,
			func(elem TypeTag) TypeTag { return VectorTag{Elem: elem} },
			func(t TypeTag) (TypeTag, bool) {
				v, ok := t.(VectorTag)
				if !ok {
					return nil, false
				}
				return v.Elem, true
			},
		),
		codec.NewVariant[TypeTag, StructTag]("struct", StructTagType,
			func(s StructTag) TypeTag { return s },
			func(t TypeTag) (StructTag, bool) {
				s, ok := t.(StructTag)
				return s, ok
			},
		),
		unitTag("u16", U16Tag{}),
		unitTag("u32", U32Tag{}),
		unitTag("u256", U256Tag{}),
	)
}
