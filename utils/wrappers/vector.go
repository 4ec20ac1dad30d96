// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package wrappers

// ReadVector reads a ULEB128 element count and then invokes [read] that
// many times, collecting the results in order.
//
// The initial allocation is capped by the bytes actually remaining in
// the buffer, so a hostile length prefix can't drive allocation beyond
// the input it arrived in.
func ReadVector[E any](r *Reader, read func(*Reader) (E, error)) ([]E, error) {
	n, err := r.Len()
	if err != nil {
		return nil, err
	}
	capHint := n
	if remaining := r.Remaining(); capHint > remaining {
		capHint = remaining
	}
	out := make([]E, 0, capHint)
	for i := 0; i < n; i++ {
		e, err := read(r)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// WriteVector writes a ULEB128 element count followed by each element
// of [items] via [write].
func WriteVector[E any](w *Writer, items []E, write func(E, *Writer) error) error {
	if err := w.ULEB(uint64(len(items))); err != nil {
		return err
	}
	for _, item := range items {
		if err := write(item, w); err != nil {
			return err
		}
	}
	return nil
}
