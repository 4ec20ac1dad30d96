// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"fmt"
	"math/big"
)

// Uint128 is an unsigned 128-bit integer stored as two 64-bit halves.
type Uint128 struct {
	Lo uint64
	Hi uint64
}

// NewUint128 returns the Uint128 holding the 64-bit value [x].
func NewUint128(x uint64) Uint128 {
	return Uint128{Lo: x}
}

// Uint128FromBig converts [b] into a Uint128, rejecting negative values
// and values wider than 128 bits.
func Uint128FromBig(b *big.Int) (Uint128, error) {
	if b.Sign() < 0 || b.BitLen() > 128 {
		return Uint128{}, fmt.Errorf("%w: %s does not fit in a u128", ErrTypeMismatch, b)
	}
	var lo, hi big.Int
	lo.And(b, maxUint64)
	hi.Rsh(b, 64)
	return Uint128{Lo: lo.Uint64(), Hi: hi.Uint64()}, nil
}

var maxUint64 = new(big.Int).SetUint64(^uint64(0))

// Big returns the value as a big integer.
func (u Uint128) Big() *big.Int {
	b := new(big.Int).SetUint64(u.Hi)
	b.Lsh(b, 64)
	return b.Or(b, new(big.Int).SetUint64(u.Lo))
}

func (u Uint128) IsZero() bool {
	return u.Lo == 0 && u.Hi == 0
}

func (u Uint128) String() string {
	return u.Big().String()
}
