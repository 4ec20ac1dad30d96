// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package wrappers

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/ava-labs/bcs/utils/leb128"
)

// ErrBufferOverflow is returned by reads that would pass the end of the
// input buffer.
var ErrBufferOverflow = errors.New("read past the end of the buffer")

// Reader is a sequential, bounds-checked cursor over an immutable byte
// buffer. The offset only ever moves forward and never passes the end
// of the buffer. A Reader is used for exactly one decode operation and
// must not be shared across concurrent operations.
type Reader struct {
	buf    []byte
	offset int
}

func NewReader(b []byte) *Reader {
	return &Reader{buf: b}
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int {
	return r.offset
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.offset
}

// Bytes returns a view (not a copy) of the next [n] bytes and advances
// the offset. Callers that retain the result past the life of the input
// buffer must copy it.
func (r *Reader) Bytes(n int) ([]byte, error) {
	if n < 0 || n > r.Remaining() {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", ErrBufferOverflow, n, r.Remaining())
	}
	b := r.buf[r.offset : r.offset+n]
	r.offset += n
	return b, nil
}

func (r *Reader) U8() (uint8, error) {
	b, err := r.Bytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *Reader) U16() (uint16, error) {
	b, err := r.Bytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (r *Reader) U32() (uint32, error) {
	b, err := r.Bytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (r *Reader) U64() (uint64, error) {
	b, err := r.Bytes(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// ULEB decodes a ULEB128 value at the current offset and advances by
// the number of bytes consumed. A sequence truncated by the end of the
// buffer surfaces as leb128.ErrTruncated.
func (r *Reader) ULEB() (uint64, error) {
	x, n, err := leb128.Decode(r.buf[r.offset:])
	if err != nil {
		return 0, err
	}
	r.offset += n
	return x, nil
}

// Len reads a ULEB128 length prefix. Lengths that don't fit in an int
// can't describe any real buffer and are rejected outright.
func (r *Reader) Len() (int, error) {
	x, err := r.ULEB()
	if err != nil {
		return 0, err
	}
	if x > uint64(math.MaxInt) {
		return 0, fmt.Errorf("%w: length prefix %d overflows int", ErrBufferOverflow, x)
	}
	return int(x), nil
}
