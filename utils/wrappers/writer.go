// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package wrappers

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/ava-labs/bcs/utils/leb128"
)

const (
	// DefaultInitialSize is the initial capacity of a writer when the
	// caller has no size hint. Larger values need fewer allocations but
	// may leave allocated memory unused.
	DefaultInitialSize = 128

	// DefaultGrowthSize is the minimum number of bytes added to a
	// writer's capacity when it fills up.
	DefaultGrowthSize = 1024
)

// ErrBufferTooSmall is returned by writes that would push the buffer
// past the writer's maximum size.
var ErrBufferTooSmall = errors.New("write exceeds the writer's maximum size")

// Writer is a sequential cursor over an auto-growing output buffer.
// The offset always equals the count of valid written bytes. A Writer
// is used for exactly one encode operation and must not be shared
// across concurrent operations.
type Writer struct {
	buf    []byte
	offset int
	growth int
	max    int // 0 means unbounded
}

// NewWriter returns an unbounded writer with the given initial
// capacity. A non-positive [initialSize] falls back to
// DefaultInitialSize.
func NewWriter(initialSize int) *Writer {
	return NewBoundedWriter(initialSize, DefaultGrowthSize, 0)
}

// NewBoundedWriter returns a writer that starts at [initialSize] bytes,
// grows by at least [growthSize] bytes at a time, and never exceeds
// [maxSize] bytes. A [maxSize] of 0 means unbounded. The maximum size
// exists to keep adversarial length prefixes from driving unbounded
// allocation.
func NewBoundedWriter(initialSize, growthSize, maxSize int) *Writer {
	if initialSize <= 0 {
		initialSize = DefaultInitialSize
	}
	if growthSize <= 0 {
		growthSize = DefaultGrowthSize
	}
	if maxSize > 0 && initialSize > maxSize {
		initialSize = maxSize
	}
	return &Writer{
		buf:    make([]byte, initialSize),
		growth: growthSize,
		max:    maxSize,
	}
}

// Offset returns the number of bytes written so far.
func (w *Writer) Offset() int {
	return w.offset
}

// Bytes returns exactly the bytes written so far, never spare capacity.
func (w *Writer) Bytes() []byte {
	return w.buf[:w.offset]
}

// ensure grows the buffer so that [k] more bytes fit, copying the
// already-written prefix into the new allocation.
func (w *Writer) ensure(k int) error {
	need := w.offset + k
	if need <= len(w.buf) {
		return nil
	}
	if w.max > 0 && need > w.max {
		return fmt.Errorf("%w: need %d bytes, max is %d", ErrBufferTooSmall, need, w.max)
	}
	size := len(w.buf) + w.growth
	if size < need {
		size = need
	}
	if w.max > 0 && size > w.max {
		size = w.max
	}
	buf := make([]byte, size)
	copy(buf, w.buf)
	w.buf = buf
	return nil
}

func (w *Writer) U8(v uint8) error {
	if err := w.ensure(1); err != nil {
		return err
	}
	w.buf[w.offset] = v
	w.offset++
	return nil
}

func (w *Writer) U16(v uint16) error {
	if err := w.ensure(2); err != nil {
		return err
	}
	binary.LittleEndian.PutUint16(w.buf[w.offset:], v)
	w.offset += 2
	return nil
}

func (w *Writer) U32(v uint32) error {
	if err := w.ensure(4); err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(w.buf[w.offset:], v)
	w.offset += 4
	return nil
}

func (w *Writer) U64(v uint64) error {
	if err := w.ensure(8); err != nil {
		return err
	}
	binary.LittleEndian.PutUint64(w.buf[w.offset:], v)
	w.offset += 8
	return nil
}

// RawBytes writes [b] verbatim, with no length prefix.
func (w *Writer) RawBytes(b []byte) error {
	if err := w.ensure(len(b)); err != nil {
		return err
	}
	copy(w.buf[w.offset:], b)
	w.offset += len(b)
	return nil
}

// ULEB writes the minimal ULEB128 encoding of [x].
func (w *Writer) ULEB(x uint64) error {
	var scratch [leb128.MaxLen]byte
	return w.RawBytes(leb128.Append(scratch[:0], x))
}
