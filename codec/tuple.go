// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"fmt"

	"github.com/ava-labs/bcs/utils/wrappers"
)

// Pair is the value of a two-element tuple codec. Tuples are positional
// structs: the elements are concatenated with nothing between them.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple is the value of a three-element tuple codec.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

func NewTuple2[A, B any](a *Type[A], b *Type[B]) *Type[Pair[A, B]] {
	name := fmt.Sprintf("tuple<%s, %s>", a.Name(), b.Name())
	return &Type[Pair[A, B]]{
		name: name,
		size: sumSizes(a.FixedSize, b.FixedSize),
		read: func(r *wrappers.Reader) (Pair[A, B], error) {
			var zero Pair[A, B]
			first, err := a.Read(r)
			if err != nil {
				return zero, fmt.Errorf("%s[0]: %w", name, err)
			}
			second, err := b.Read(r)
			if err != nil {
				return zero, fmt.Errorf("%s[1]: %w", name, err)
			}
			return Pair[A, B]{First: first, Second: second}, nil
		},
		write: func(v Pair[A, B], w *wrappers.Writer) error {
			if err := a.Write(v.First, w); err != nil {
				return fmt.Errorf("%s[0]: %w", name, err)
			}
			if err := b.Write(v.Second, w); err != nil {
				return fmt.Errorf("%s[1]: %w", name, err)
			}
			return nil
		},
		validate: func(v Pair[A, B]) error {
			var errs wrappers.Errs
			errs.Add(a.Validate(v.First), b.Validate(v.Second))
			if errs.Errored() {
				return fmt.Errorf("%s: %w", name, errs.Err)
			}
			return nil
		},
	}
}

func NewTuple3[A, B, C any](a *Type[A], b *Type[B], c *Type[C]) *Type[Triple[A, B, C]] {
	name := fmt.Sprintf("tuple<%s, %s, %s>", a.Name(), b.Name(), c.Name())
	return &Type[Triple[A, B, C]]{
		name: name,
		size: sumSizes(a.FixedSize, b.FixedSize, c.FixedSize),
		read: func(r *wrappers.Reader) (Triple[A, B, C], error) {
			var zero Triple[A, B, C]
			first, err := a.Read(r)
			if err != nil {
				return zero, fmt.Errorf("%s[0]: %w", name, err)
			}
			second, err := b.Read(r)
			if err != nil {
				return zero, fmt.Errorf("%s[1]: %w", name, err)
			}
			third, err := c.Read(r)
			if err != nil {
				return zero, fmt.Errorf("%s[2]: %w", name, err)
			}
			return Triple[A, B, C]{First: first, Second: second, Third: third}, nil
		},
		write: func(v Triple[A, B, C], w *wrappers.Writer) error {
			if err := a.Write(v.First, w); err != nil {
				return fmt.Errorf("%s[0]: %w", name, err)
			}
			if err := b.Write(v.Second, w); err != nil {
				return fmt.Errorf("%s[1]: %w", name, err)
			}
			if err := c.Write(v.Third, w); err != nil {
				return fmt.Errorf("%s[2]: %w", name, err)
			}
			return nil
		},
		validate: func(v Triple[A, B, C]) error {
			var errs wrappers.Errs
			errs.Add(a.Validate(v.First), b.Validate(v.Second), c.Validate(v.Third))
			if errs.Errored() {
				return fmt.Errorf("%s: %w", name, errs.Err)
			}
			return nil
		},
	}
}

// sumSizes combines component size functions: the composite has a fixed
// size only when every component does.
func sumSizes(sizes ...func() (int, bool)) func() (int, bool) {
	return func() (int, bool) {
		total := 0
		for _, size := range sizes {
			n, ok := size()
			if !ok {
				return 0, false
			}
			total += n
		}
		return total, true
	}
}
