// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"fmt"
	"unicode/utf8"

	"github.com/holiman/uint256"

	"github.com/ava-labs/bcs/utils/wrappers"
)

// The primitive descriptors are stateless singletons shared by every
// schema in the process.
var (
	// Bool is one byte on the wire: 0x00 or 0x01. Any other byte fails
	// to decode.
	Bool = &Type[bool]{
		name: "bool",
		size: fixedSize(1),
		read: func(r *wrappers.Reader) (bool, error) {
			b, err := r.U8()
			if err != nil {
				return false, err
			}
			switch b {
			case 0x00:
				return false, nil
			case 0x01:
				return true, nil
			default:
				return false, fmt.Errorf("%w: bool byte 0x%02x", ErrTypeMismatch, b)
			}
		},
		write: func(v bool, w *wrappers.Writer) error {
			if v {
				return w.U8(0x01)
			}
			return w.U8(0x00)
		},
	}

	U8 = &Type[uint8]{
		name: "u8",
		size: fixedSize(1),
		read: func(r *wrappers.Reader) (uint8, error) {
			return r.U8()
		},
		write: func(v uint8, w *wrappers.Writer) error {
			return w.U8(v)
		},
	}

	U16 = &Type[uint16]{
		name: "u16",
		size: fixedSize(2),
		read: func(r *wrappers.Reader) (uint16, error) {
			return r.U16()
		},
		write: func(v uint16, w *wrappers.Writer) error {
			return w.U16(v)
		},
	}

	U32 = &Type[uint32]{
		name: "u32",
		size: fixedSize(4),
		read: func(r *wrappers.Reader) (uint32, error) {
			return r.U32()
		},
		write: func(v uint32, w *wrappers.Writer) error {
			return w.U32(v)
		},
	}

	U64 = &Type[uint64]{
		name: "u64",
		size: fixedSize(8),
		read: func(r *wrappers.Reader) (uint64, error) {
			return r.U64()
		},
		write: func(v uint64, w *wrappers.Writer) error {
			return w.U64(v)
		},
	}

	// U128 is two 64-bit little-endian halves, low half first.
	U128 = &Type[Uint128]{
		name: "u128",
		size: fixedSize(16),
		read: func(r *wrappers.Reader) (Uint128, error) {
			lo, err := r.U64()
			if err != nil {
				return Uint128{}, err
			}
			hi, err := r.U64()
			if err != nil {
				return Uint128{}, err
			}
			return Uint128{Lo: lo, Hi: hi}, nil
		},
		write: func(v Uint128, w *wrappers.Writer) error {
			if err := w.U64(v.Lo); err != nil {
				return err
			}
			return w.U64(v.Hi)
		},
	}

	// U256 is four 64-bit little-endian limbs, least significant first.
	U256 = &Type[*uint256.Int]{
		name: "u256",
		size: fixedSize(32),
		read: func(r *wrappers.Reader) (*uint256.Int, error) {
			var z uint256.Int
			for i := range z {
				limb, err := r.U64()
				if err != nil {
					return nil, err
				}
				z[i] = limb
			}
			return &z, nil
		},
		write: func(v *uint256.Int, w *wrappers.Writer) error {
			for _, limb := range v {
				if err := w.U64(limb); err != nil {
					return err
				}
			}
			return nil
		},
		validate: func(v *uint256.Int) error {
			if v == nil {
				return fmt.Errorf("%w: u256 value is nil", ErrTypeMismatch)
			}
			return nil
		},
	}

	// ULEB128 carries a uint64 as a minimal varint. Lengths and variant
	// tags use this form implicitly; it is exposed for schemas that
	// want a compact integer field.
	ULEB128 = &Type[uint64]{
		name: "uleb128",
		read: func(r *wrappers.Reader) (uint64, error) {
			return r.ULEB()
		},
		write: func(v uint64, w *wrappers.Writer) error {
			return w.ULEB(v)
		},
	}

	// Bytes is a ULEB128 byte length followed by that many raw bytes.
	Bytes = &Type[[]byte]{
		name: "bytes",
		read: func(r *wrappers.Reader) ([]byte, error) {
			n, err := r.Len()
			if err != nil {
				return nil, err
			}
			view, err := r.Bytes(n)
			if err != nil {
				return nil, err
			}
			out := make([]byte, n)
			copy(out, view)
			return out, nil
		},
		write: func(v []byte, w *wrappers.Writer) error {
			if err := w.ULEB(uint64(len(v))); err != nil {
				return err
			}
			return w.RawBytes(v)
		},
	}

	// String is UTF-8 bytes behind a ULEB128 byte length.
	String = &Type[string]{
		name: "string",
		read: func(r *wrappers.Reader) (string, error) {
			n, err := r.Len()
			if err != nil {
				return "", err
			}
			view, err := r.Bytes(n)
			if err != nil {
				return "", err
			}
			if !utf8.Valid(view) {
				return "", fmt.Errorf("%w: string is not valid UTF-8", ErrTypeMismatch)
			}
			return string(view), nil
		},
		write: func(v string, w *wrappers.Writer) error {
			if err := w.ULEB(uint64(len(v))); err != nil {
				return err
			}
			return w.RawBytes([]byte(v))
		},
		validate: func(v string) error {
			if !utf8.ValidString(v) {
				return fmt.Errorf("%w: string is not valid UTF-8", ErrTypeMismatch)
			}
			return nil
		},
	}
)

// ByteArray returns a codec for exactly [n] raw bytes with no length
// prefix. The length is part of the codec's identity.
func ByteArray(n int) *Type[[]byte] {
	name := fmt.Sprintf("bytes[%d]", n)
	return &Type[[]byte]{
		name: name,
		size: fixedSize(n),
		read: func(r *wrappers.Reader) ([]byte, error) {
			view, err := r.Bytes(n)
			if err != nil {
				return nil, err
			}
			out := make([]byte, n)
			copy(out, view)
			return out, nil
		},
		write: func(v []byte, w *wrappers.Writer) error {
			return w.RawBytes(v)
		},
		validate: func(v []byte) error {
			if len(v) != n {
				return fmt.Errorf("%w: %s got %d bytes", ErrArityMismatch, name, len(v))
			}
			return nil
		},
	}
}
