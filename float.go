// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fxp

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"unsafe"

	"golang.org/x/exp/constraints"

	mu "github.com/avdva/fxp/internal/mathutil"
)

const (
	float64MantBits = 53
	float32MantBits = 24
)

// FromFloat64 returns x in the format f, rounded by f's policy.
// NaN is converted to 0, +Inf to Max(), -Inf to Lowest().
// Finite values out of the format's range wrap.
func (f Format) FromFloat64(x float64) Value {
	switch {
	case math.IsNaN(x) || x == 0:
		return f.Zero()
	case math.IsInf(x, 1):
		return f.Max()
	case math.IsInf(x, -1):
		return f.Lowest()
	}
	frac, exp := math.Frexp(math.Abs(x))
	mant := uint64(math.Ldexp(frac, float64MantBits))
	shift := int(f.split) + exp - float64MantBits
	neg := x < 0
	if f.native() {
		m := mu.From64(mant)
		if shift >= 0 {
			m = m.Lsh(uint(shift))
		} else {
			m = f.mode.shiftRight128(m, uint(-shift))
		}
		return f.fromMag(m, neg)
	}
	m := new(big.Int).SetUint64(mant)
	if shift >= 0 {
		m.Lsh(m, uint(shift))
	} else {
		m = f.mode.shiftRightBig(m, uint(-shift))
	}
	if neg {
		m.Neg(m)
	}
	return f.fromBig(m)
}

// FromFloat32 returns x in the format f, see FromFloat64.
func (f Format) FromFloat32(x float32) Value {
	return f.FromFloat64(float64(x))
}

// FromFloat returns x in the format f, see FromFloat64.
func FromFloat[T constraints.Float](f Format, x T) Value {
	return f.FromFloat64(float64(x))
}

// ErrNotFinite is returned for NaN and infinite floats.
var ErrNotFinite = errors.New("not a finite float")

// FromFiniteFloat64 is like FromFloat64, but returns an error instead of
// a sentinel or a wrapped value. ErrNotFinite is returned for NaN and ±Inf,
// ErrOutOfRange if the rounded x does not fit the format.
func (f Format) FromFiniteFloat64(x float64) (Value, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return Value{}, fmt.Errorf("%v: %w", x, ErrNotFinite)
	}
	if limit := math.Ldexp(1, int(f.rng)); x >= limit || x < -limit {
		return Value{}, fmt.Errorf("%v in %v: %w", x, f, ErrOutOfRange)
	}
	v := f.FromFloat64(x)
	// rounding up to 2^rng wraps to Lowest().
	if x > 0 && v.Sign() < 0 {
		return Value{}, fmt.Errorf("%v in %v: %w", x, f, ErrOutOfRange)
	}
	return v, nil
}

// MustFromFloat64 is like FromFiniteFloat64, but panics on errors.
func (f Format) MustFromFloat64(x float64) Value {
	v, err := f.FromFiniteFloat64(x)
	if err != nil {
		panic(err)
	}
	return v
}

// toFloat returns a mantissa of at most mantBits bits and an exponent,
// such that |v| ~= mant * 2^exp.
func (v Value) toFloat(mantBits int) (mant uint64, exp int, neg bool) {
	exp = -int(v.f.split)
	if v.b == nil {
		var m uint64
		m, neg = v.mag()
		if n := mu.BitLen(m) - mantBits; n > 0 {
			m = v.f.mode.shiftRight128(mu.From64(m), uint(n)).Lo
			exp += n
		}
		return m, exp, neg
	}
	m, neg := v.bigMag()
	if n := m.BitLen() - mantBits; n > 0 {
		m = v.f.mode.shiftRightBig(m, uint(n))
		exp += n
	}
	return m.Uint64(), exp, neg
}

// Float64 returns v as a float64. The magnitude is rounded to 53 bits by v's policy.
func (v Value) Float64() float64 {
	m, exp, neg := v.toFloat(float64MantBits)
	r := math.Ldexp(float64(m), exp)
	if neg {
		return -r
	}
	return r
}

// Float32 returns v as a float32. The magnitude is rounded to 24 bits by v's policy.
func (v Value) Float32() float32 {
	m, exp, neg := v.toFloat(float32MantBits)
	r := float32(math.Ldexp(float64(m), exp))
	if neg {
		return -r
	}
	return r
}

// ToFloat returns v as a float of type T.
func ToFloat[T constraints.Float](v Value) T {
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		return T(v.Float32())
	}
	return T(v.Float64())
}
