// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fxp

import (
	"fmt"
	"math/big"
	"strings"

	mu "github.com/avdva/fxp/internal/mathutil"
)

// Rounding selects how bits are discarded.
type Rounding uint8

const (
	// Fastest truncates the magnitude, i.e. rounds toward zero.
	Fastest Rounding = iota
	// NearestEven rounds to the nearest representable value, ties to even.
	NearestEven

	roundingCount
)

var roundingNames = [...]string{
	Fastest:     "fastest",
	NearestEven: "nearest_even",
}

// String returns the name of the rounding mode.
func (r Rounding) String() string {
	if r.valid() {
		return roundingNames[r]
	}
	return fmt.Sprintf("Rounding(%d)", uint8(r))
}

// ParseRounding returns a rounding mode for its name.
// Both "nearest_even" and "nearest-even" are accepted, the case is ignored.
func ParseRounding(s string) (Rounding, error) {
	s = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for i, name := range roundingNames {
		if s == name {
			return Rounding(i), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, ErrRounding)
}

func (r Rounding) valid() bool {
	return r < roundingCount
}

// extraBits is the number of guard bits the mode needs below the result.
func (r Rounding) extraBits() uint {
	if r == NearestEven {
		return 1
	}
	return 0
}

// adjust inspects a value that still holds one guard bit at bit 0 above
// the final result, and returns what to add after the final 1-bit shift.
// sticky reports whether any bit below the guard bit was set.
func (r Rounding) adjust(guarded uint64, sticky bool) uint64 {
	if r != NearestEven || guarded&1 == 0 {
		return 0
	}
	if sticky || guarded&2 != 0 {
		return 1
	}
	return 0
}

// shiftRight128 returns x / 2^n rounded according to r.
func (r Rounding) shiftRight128(x mu.Uint128, n uint) mu.Uint128 {
	if n == 0 {
		return x
	}
	extra := r.extraBits()
	sticky := x.LowBitsNonZero(n - extra)
	y := x.Rsh(n - extra)
	if extra == 0 {
		return y
	}
	return y.Rsh(extra).Add64(r.adjust(y.Lo, sticky))
}

// shiftRightBig returns x / 2^n rounded according to r. x must be non-negative.
func (r Rounding) shiftRightBig(x *big.Int, n uint) *big.Int {
	if n == 0 {
		return new(big.Int).Set(x)
	}
	extra := r.extraBits()
	sticky := lowBitsNonZero(x, n-extra)
	y := new(big.Int).Rsh(x, n-extra)
	if extra == 0 {
		return y
	}
	guarded := uint64(y.Bit(0)) | uint64(y.Bit(1))<<1
	y.Rsh(y, extra)
	if r.adjust(guarded, sticky) != 0 {
		y.Add(y, bigOne)
	}
	return y
}

// roundQuotient128 rounds a quotient computed with r.extraBits() guard bits.
// sticky reports a non-zero remainder.
func (r Rounding) roundQuotient128(q mu.Uint128, sticky bool) mu.Uint128 {
	if r.extraBits() == 0 {
		return q
	}
	return q.Rsh(1).Add64(r.adjust(q.Lo, sticky))
}

func (r Rounding) roundQuotientBig(q *big.Int, sticky bool) *big.Int {
	if r.extraBits() == 0 {
		return q
	}
	guarded := uint64(q.Bit(0)) | uint64(q.Bit(1))<<1
	q.Rsh(q, 1)
	if r.adjust(guarded, sticky) != 0 {
		q.Add(q, bigOne)
	}
	return q
}

func lowBitsNonZero(x *big.Int, n uint) bool {
	if n == 0 || x.Sign() == 0 {
		return false
	}
	return x.TrailingZeroBits() < n
}
