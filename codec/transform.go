// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"fmt"

	"github.com/ava-labs/bcs/utils/wrappers"
)

// Transform wraps [inner] so that callers work with an alternate
// application representation [Out] while the wire format stays that of
// [In]. [into] maps values toward the wire before encoding; [from] maps
// decoded values back out. [check], if non-nil, adds caller-supplied
// validation on top of the inner codec's, which runs against the
// input-mapped value.
//
// Every derived type in this package and its consumers (option, map,
// address-as-text, fixed-point numbers) is built through Transform
// rather than by reimplementing byte-level logic.
func Transform[In, Out any](
	name string,
	inner *Type[In],
	into func(Out) (In, error),
	from func(In) (Out, error),
	check func(Out) error,
) *Type[Out] {
	return &Type[Out]{
		name: name,
		size: inner.FixedSize,
		read: func(r *wrappers.Reader) (Out, error) {
			var zero Out
			v, err := inner.Read(r)
			if err != nil {
				return zero, err
			}
			out, err := from(v)
			if err != nil {
				return zero, fmt.Errorf("%s: %w", name, err)
			}
			return out, nil
		},
		write: func(v Out, w *wrappers.Writer) error {
			in, err := into(v)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			return inner.Write(in, w)
		},
		validate: func(v Out) error {
			if check != nil {
				if err := check(v); err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
			}
			in, err := into(v)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			return inner.Validate(in)
		},
	}
}
