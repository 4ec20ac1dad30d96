// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"fmt"

	"github.com/ava-labs/bcs/utils/wrappers"
)

// A VariantDesc describes one declared variant of an enum codec. The
// mapping from wire tag to variant is positional: the first declared
// variant is tag 0.
type VariantDesc[T any] struct {
	name     string
	matches  func(T) bool
	read     func(*wrappers.Reader) (T, error)
	write    func(T, *wrappers.Writer) error // nil for payload-free variants
	validate func(T) error                   // nil for payload-free variants
}

// NewVariant declares a variant carrying a payload of type [P].
// [unwrap] reports whether the variant is populated on a value and
// yields its payload; [wrap] rebuilds the value from a decoded payload.
// Resolving the active variant through typed projections, rather than
// scanning a value's keys, is what upholds the exactly-one-variant
// invariant.
func NewVariant[T, P any](name string, payload *Type[P], wrap func(P) T, unwrap func(T) (P, bool)) VariantDesc[T] {
	return VariantDesc[T]{
		name: name,
		matches: func(v T) bool {
			_, ok := unwrap(v)
			return ok
		},
		read: func(r *wrappers.Reader) (T, error) {
			p, err := payload.Read(r)
			if err != nil {
				var zero T
				return zero, err
			}
			return wrap(p), nil
		},
		write: func(v T, w *wrappers.Writer) error {
			p, _ := unwrap(v)
			return payload.Write(p, w)
		},
		validate: func(v T) error {
			p, _ := unwrap(v)
			return payload.Validate(p)
		},
	}
}

// NewUnitVariant declares a variant with no payload. On the wire it is
// the variant tag alone; decoding yields [value].
func NewUnitVariant[T any](name string, value T, matches func(T) bool) VariantDesc[T] {
	return VariantDesc[T]{
		name:    name,
		matches: matches,
		read: func(*wrappers.Reader) (T, error) {
			return value, nil
		},
	}
}

// NewEnum returns a codec encoding [T] as a ULEB128 variant tag
// followed by the payload of the selected variant, if it has one.
func NewEnum[T any](name string, variants ...VariantDesc[T]) *Type[T] {
	return &Type[T]{
		name: name,
		read: func(r *wrappers.Reader) (T, error) {
			var zero T
			tag, err := r.ULEB()
			if err != nil {
				return zero, fmt.Errorf("%s: %w", name, err)
			}
			if tag >= uint64(len(variants)) {
				return zero, fmt.Errorf("%w: %s tag %d, declared %d variants",
					ErrUnknownVariant, name, tag, len(variants))
			}
			variant := variants[tag]
			v, err := variant.read(r)
			if err != nil {
				return zero, fmt.Errorf("%s.%s: %w", name, variant.name, err)
			}
			return v, nil
		},
		write: func(v T, w *wrappers.Writer) error {
			for i, variant := range variants {
				if !variant.matches(v) {
					continue
				}
				if err := w.ULEB(uint64(i)); err != nil {
					return err
				}
				if variant.write == nil {
					return nil
				}
				if err := variant.write(v, w); err != nil {
					return fmt.Errorf("%s.%s: %w", name, variant.name, err)
				}
				return nil
			}
			// Write runs after Validate, so a value with no variant set
			// has already been rejected.
			return fmt.Errorf("%w: %s has no variant set", ErrInvalidVariantCount, name)
		},
		validate: func(v T) error {
			matched := 0
			for _, variant := range variants {
				if variant.matches(v) {
					matched++
				}
			}
			if matched != 1 {
				return fmt.Errorf("%w: %s matched %d variants for %T",
					ErrInvalidVariantCount, name, matched, v)
			}
			var errs wrappers.Errs
			for _, variant := range variants {
				if !variant.matches(v) || variant.validate == nil {
					continue
				}
				errs.Add(variant.validate(v))
				if errs.Errored() {
					return fmt.Errorf("%s.%s: %w", name, variant.name, errs.Err)
				}
			}
			return nil
		},
	}
}
