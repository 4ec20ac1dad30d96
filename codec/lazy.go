// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"sync"

	"github.com/ava-labs/bcs/utils/wrappers"
)

// NewLazy defers construction of a codec until its first use and
// memoizes the result. The indirection breaks the construction cycle
// for self-referential and mutually-recursive schemas: each side
// declares a lazy handle first and the thunks resolve after both
// definitions exist.
//
// [resolve] runs at most once, even across concurrent first uses.
func NewLazy[T any](name string, resolve func() *Type[T]) *Type[T] {
	var (
		once sync.Once
		typ  *Type[T]
	)
	resolved := func() *Type[T] {
		once.Do(func() {
			typ = resolve()
		})
		return typ
	}
	return &Type[T]{
		name: name,
		size: func() (int, bool) {
			return resolved().FixedSize()
		},
		read: func(r *wrappers.Reader) (T, error) {
			return resolved().Read(r)
		},
		write: func(v T, w *wrappers.Writer) error {
			// The outer Write already ran this codec's validate, which
			// delegates below, so call the resolved write directly.
			return resolved().write(v, w)
		},
		validate: func(v T) error {
			return resolved().Validate(v)
		},
	}
}
