// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import "errors"

var (
	// ErrTypeMismatch is returned by validation when a value doesn't
	// fit the codec it was handed to.
	ErrTypeMismatch = errors.New("value does not match the codec")

	// ErrUnknownVariant is returned when a decoded enum tag is outside
	// the declared variant range.
	ErrUnknownVariant = errors.New("unknown enum variant")

	// ErrInvalidVariantCount is returned when zero or multiple variants
	// of an enum value are populated.
	ErrInvalidVariantCount = errors.New("exactly one enum variant must be set")

	// ErrArityMismatch is returned when a value's length disagrees with
	// the declared arity of a fixed-size type.
	ErrArityMismatch = errors.New("length does not match the declared arity")

	// ErrExtraSpace is returned by Parse when input bytes remain after
	// a complete value has been decoded.
	ErrExtraSpace = errors.New("trailing buffer space")
)
