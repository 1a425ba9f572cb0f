// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package fxp implements binary fixed-point numbers.
//
// A Value is a signed integer storage scaled by 2^-n, where n is the
// number of fractional bits of its Format. Formats up to 64 bits are stored
// in an int64, wider formats use math/big.
//
// Overflow is unchecked: every result is wrapped to the format's width in
// two's complement, and it is the caller's responsibility to stay in range.
// Arithmetic never panics or returns errors. Division by zero returns the
// format's Max(). Transcendental functions return zero for arguments outside
// of their domains, and saturate to Max() or Lowest() if the result does not fit.
package fxp

import (
	"fmt"
	"math/big"
	"strings"

	mu "github.com/avdva/fxp/internal/mathutil"
)

// Value is a binary fixed-point number. Values are immutable.
// The zero Value has no format and is equal to zero.
type Value struct {
	f Format
	n int64
	// b holds the storage of non-native formats. It is never modified after creation.
	b *big.Int
}

func (f Format) fromBits(n int64) Value {
	if !f.native() {
		return Value{f: f, b: big.NewInt(n)}
	}
	return Value{f: f, n: mu.SignExtend(n, f.TotalBits())}
}

// fromBig wraps x to the format's width. x is not retained.
func (f Format) fromBig(x *big.Int) Value {
	if f.native() {
		return Value{f: f, n: mu.SignExtend(low64(x), f.TotalBits())}
	}
	return Value{f: f, b: wrapBig(x, uint(f.TotalBits()))}
}

// fromMag builds a value from a magnitude and a sign, wrapping the result.
func (f Format) fromMag(m mu.Uint128, neg bool) Value {
	if !f.native() {
		b := uint128ToBig(m)
		if neg {
			b.Neg(b)
		}
		return f.fromBig(b)
	}
	n := int64(m.Lo)
	if neg {
		n = -n
	}
	return f.fromBits(n)
}

var mask64 = new(big.Int).SetUint64(1<<64 - 1)

// low64 returns the 64 least significant bits of x's two's complement form.
func low64(x *big.Int) int64 {
	if x.IsInt64() {
		return x.Int64()
	}
	return int64(new(big.Int).And(x, mask64).Uint64())
}

// wrapBig returns x reduced to an n-bit two's complement number.
func wrapBig(x *big.Int, n uint) *big.Int {
	if uint(x.BitLen()) < n {
		return new(big.Int).Set(x)
	}
	m := new(big.Int).Sub(pow2(n), bigOne)
	r := m.And(x, m)
	if r.Bit(int(n-1)) != 0 {
		r.Sub(r, pow2(n))
	}
	return r
}

func uint128ToBig(m mu.Uint128) *big.Int {
	b := new(big.Int).SetUint64(m.Hi)
	b.Lsh(b, 64)
	return b.Or(b, new(big.Int).SetUint64(m.Lo))
}

// Type returns the format of v.
func (v Value) Type() Format {
	return v.f
}

// Bits returns a copy of the raw storage: v * 2^RadixSplit().
func (v Value) Bits() *big.Int {
	if v.b != nil {
		return new(big.Int).Set(v.b)
	}
	return big.NewInt(v.n)
}

// mag returns |storage| of a native value.
func (v Value) mag() (uint64, bool) {
	return mu.Abs64(v.n)
}

// bigMag returns |storage| and the sign as a new big.Int.
func (v Value) bigMag() (*big.Int, bool) {
	b := v.Bits()
	neg := b.Sign() < 0
	return b.Abs(b), neg
}

// Sign returns -1, 0 or 1.
func (v Value) Sign() int {
	if v.b != nil {
		return v.b.Sign()
	}
	return mu.Int64Sign(v.n)
}

// IsZero returns true if v == 0.
func (v Value) IsZero() bool {
	return v.Sign() == 0
}

// Cmp compares two values by their real values.
// Returns -1 if v < other, 0 if v == other, 1 if v > other.
func (v Value) Cmp(other Value) int {
	if v.f.split == other.f.split && v.b == nil && other.b == nil {
		switch {
		case v.n > other.n:
			return 1
		case v.n < other.n:
			return -1
		}
		return 0
	}
	split := max(v.f.split, other.f.split)
	x := v.Bits()
	x.Lsh(x, uint(split-v.f.split))
	y := other.Bits()
	y.Lsh(y, uint(split-other.f.split))
	return x.Cmp(y)
}

// Eq returns true if both values are equal.
func (v Value) Eq(other Value) bool {
	return v.Cmp(other) == 0
}

// Less returns true if v < other.
func (v Value) Less(other Value) bool {
	return v.Cmp(other) < 0
}

// LessOrEqual returns true if v <= other.
func (v Value) LessOrEqual(other Value) bool {
	return v.Cmp(other) <= 0
}

// Greater returns true if v > other.
func (v Value) Greater(other Value) bool {
	return v.Cmp(other) > 0
}

// GreaterOrEqual returns true if v >= other.
func (v Value) GreaterOrEqual(other Value) bool {
	return v.Cmp(other) >= 0
}

// BitString returns the two's complement storage, most significant bit first.
func (v Value) BitString() string {
	n := v.f.TotalBits()
	u := v.Bits()
	if u.Sign() < 0 {
		u.Add(u, pow2(uint(n)))
	}
	s := u.Text(2)
	if len(s) < n {
		s = strings.Repeat("0", n-len(s)) + s
	}
	return s
}

// GoString returns a string like `fxp<4,-4,fastest>(bits=48) 3`.
func (v Value) GoString() string {
	return fmt.Sprintf("%s(bits=%s) %s", v.f, v.Bits(), v)
}
