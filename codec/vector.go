// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"fmt"

	"github.com/ava-labs/bcs/utils/wrappers"
)

// NewVector returns a codec encoding a slice as a ULEB128 element count
// followed by each element's encoding. There is no declared upper bound
// beyond the bytes available to the reader.
func NewVector[E any](elem *Type[E]) *Type[[]E] {
	name := fmt.Sprintf("vector<%s>", elem.Name())
	return &Type[[]E]{
		name: name,
		read: func(r *wrappers.Reader) ([]E, error) {
			out, err := wrappers.ReadVector(r, elem.Read)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			return out, nil
		},
		write: func(v []E, w *wrappers.Writer) error {
			if err := wrappers.WriteVector(w, v, elem.Write); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			return nil
		},
		validate: func(v []E) error {
			for i, e := range v {
				if err := elem.Validate(e); err != nil {
					return fmt.Errorf("%s[%d]: %w", name, i, err)
				}
			}
			return nil
		},
	}
}
