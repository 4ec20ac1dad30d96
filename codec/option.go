// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import "fmt"

// NewOption returns a codec encoding *E as the two-variant enum
// {none, some}. A nil pointer is none and encodes as the bare tag 0x00;
// a non-nil pointer is some and encodes as 0x01 followed by the
// element's encoding.
func NewOption[E any](elem *Type[E]) *Type[*E] {
	name := fmt.Sprintf("option<%s>", elem.Name())
	return NewEnum[*E](name,
		NewUnitVariant[*E]("none", nil, func(v *E) bool {
			return v == nil
		}),
		NewVariant[*E, E]("some", elem,
			func(p E) *E {
				return &p
			},
			func(v *E) (E, bool) {
				if v == nil {
					var zero E
					return zero, false
				}
				return *v, true
			},
		),
	)
}
