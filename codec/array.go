// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"fmt"

	"github.com/ava-labs/bcs/utils/wrappers"
)

// NewArray returns a codec encoding exactly [n] elements with no length
// prefix. The length is part of the codec's identity, and a slice whose
// length differs fails validation.
func NewArray[E any](n int, elem *Type[E]) *Type[[]E] {
	name := fmt.Sprintf("%s[%d]", elem.Name(), n)
	return &Type[[]E]{
		name: name,
		size: func() (int, bool) {
			elemSize, ok := elem.FixedSize()
			if !ok {
				return 0, false
			}
			return n * elemSize, true
		},
		read: func(r *wrappers.Reader) ([]E, error) {
			capHint := n
			if remaining := r.Remaining(); capHint > remaining {
				capHint = remaining
			}
			out := make([]E, 0, capHint)
			for i := 0; i < n; i++ {
				e, err := elem.Read(r)
				if err != nil {
					return nil, fmt.Errorf("%s[%d]: %w", name, i, err)
				}
				out = append(out, e)
			}
			return out, nil
		},
		write: func(v []E, w *wrappers.Writer) error {
			for i, e := range v {
				if err := elem.Write(e, w); err != nil {
					return fmt.Errorf("%s[%d]: %w", name, i, err)
				}
			}
			return nil
		},
		validate: func(v []E) error {
			if len(v) != n {
				return fmt.Errorf("%w: %s got %d elements", ErrArityMismatch, name, len(v))
			}
			for i, e := range v {
				if err := elem.Validate(e); err != nil {
					return fmt.Errorf("%s[%d]: %w", name, i, err)
				}
			}
			return nil
		},
	}
}
