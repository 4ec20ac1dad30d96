// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package codec implements a canonical, deterministic binary
// serialization format. A schema is built once as a tree of Type
// descriptors; Serialize and Write turn an in-memory value into
// canonical bytes, Parse and Read reconstruct the value. A value's
// byte representation is fully determined by its schema and field
// order, with no self-describing metadata on the wire.
package codec

import (
	"fmt"

	"github.com/ava-labs/bcs/utils/wrappers"
)

// Type is an immutable, reusable descriptor for one wire type.
//
// A Type holds no per-call state: descriptors are constructed once when
// a schema is initialized and may be shared and invoked concurrently
// without synchronization. The Reader and Writer cursors passed through
// Read and Write are the only mutable state, and each belongs to a
// single operation.
type Type[T any] struct {
	name     string
	size     func() (int, bool) // nil when the size depends on the value
	read     func(*wrappers.Reader) (T, error)
	write    func(T, *wrappers.Writer) error
	validate func(T) error
}

// Name returns the diagnostic name used in error messages.
func (t *Type[T]) Name() string {
	return t.name
}

// FixedSize returns the serialized size shared by every value of this
// type, if there is one.
func (t *Type[T]) FixedSize() (int, bool) {
	if t.size == nil {
		return 0, false
	}
	return t.size()
}

// Validate reports whether [v] can be encoded by this type. Composite
// types stop at the first invalid field, variant or element.
func (t *Type[T]) Validate(v T) error {
	if t.validate == nil {
		return nil
	}
	return t.validate(v)
}

// Write validates [v] and appends its canonical encoding to [w].
func (t *Type[T]) Write(v T, w *wrappers.Writer) error {
	if err := t.Validate(v); err != nil {
		return err
	}
	return t.write(v, w)
}

// Read decodes one value from the current position of [r].
func (t *Type[T]) Read(r *wrappers.Reader) (T, error) {
	return t.read(r)
}

// Serialize encodes [v] into a fresh buffer. The buffer starts at the
// type's fixed size when one is known.
func (t *Type[T]) Serialize(v T) ([]byte, error) {
	size, ok := t.FixedSize()
	if !ok {
		size = wrappers.DefaultInitialSize
	}
	w := wrappers.NewWriter(size)
	if err := t.Write(v, w); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// Parse decodes [b] into a value, requiring that every input byte is
// consumed.
func (t *Type[T]) Parse(b []byte) (T, error) {
	var zero T
	r := wrappers.NewReader(b)
	v, err := t.read(r)
	if err != nil {
		return zero, err
	}
	if remaining := r.Remaining(); remaining != 0 {
		return zero, fmt.Errorf("%w: %d bytes after %s", ErrExtraSpace, remaining, t.name)
	}
	return v, nil
}

// fixedSize adapts a compile-time width into a Type size function.
func fixedSize(n int) func() (int, bool) {
	return func() (int, bool) {
		return n, true
	}
}
