// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"fmt"

	"github.com/ava-labs/bcs/utils/wrappers"
)

// A Field binds one named field of the struct value [S] to the codec
// that encodes it. Fields are declared in canonical wire order; the
// order is fixed when the struct codec is built and is independent of
// any run-time iteration order.
type Field[S any] struct {
	name     string
	size     func() (int, bool)
	read     func(*S, *wrappers.Reader) error
	write    func(*S, *wrappers.Writer) error
	validate func(*S) error
}

// NewField binds the field of [S] reached through [access] to [typ].
// Decoding stores through the returned pointer; encoding and
// validation load through it.
func NewField[S, F any](name string, typ *Type[F], access func(*S) *F) Field[S] {
	return Field[S]{
		name: name,
		size: typ.FixedSize,
		read: func(s *S, r *wrappers.Reader) error {
			v, err := typ.Read(r)
			if err != nil {
				return fmt.Errorf("field %q: %w", name, err)
			}
			*access(s) = v
			return nil
		},
		write: func(s *S, w *wrappers.Writer) error {
			if err := typ.Write(*access(s), w); err != nil {
				return fmt.Errorf("field %q: %w", name, err)
			}
			return nil
		},
		validate: func(s *S) error {
			if err := typ.Validate(*access(s)); err != nil {
				return fmt.Errorf("field %q: %w", name, err)
			}
			return nil
		},
	}
}

// NewStruct returns a codec encoding [S] as the concatenation of its
// declared fields, in declaration order, with no field names or
// separators on the wire.
func NewStruct[S any](name string, fields ...Field[S]) *Type[S] {
	return &Type[S]{
		name: name,
		size: func() (int, bool) {
			total := 0
			for _, f := range fields {
				n, ok := f.size()
				if !ok {
					return 0, false
				}
				total += n
			}
			return total, true
		},
		read: func(r *wrappers.Reader) (S, error) {
			var s S
			for _, f := range fields {
				if err := f.read(&s, r); err != nil {
					var zero S
					return zero, fmt.Errorf("%s: %w", name, err)
				}
			}
			return s, nil
		},
		write: func(s S, w *wrappers.Writer) error {
			for _, f := range fields {
				if err := f.write(&s, w); err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
			}
			return nil
		},
		validate: func(s S) error {
			var errs wrappers.Errs
			for _, f := range fields {
				errs.Add(f.validate(&s))
				if errs.Errored() {
					return fmt.Errorf("%s: %w", name, errs.Err)
				}
			}
			return nil
		},
	}
}
