// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fxp

import (
	"errors"
	"fmt"
	"math/big"

	"fortio.org/safecast"
	"golang.org/x/exp/constraints"

	mu "github.com/avdva/fxp/internal/mathutil"
)

// ErrOutOfRange is returned if a value does not fit the requested type.
var ErrOutOfRange = errors.New("value out of range")

// FromInt64 returns n in the format f. The result wraps if n is out of the format's range.
func (f Format) FromInt64(n int64) Value {
	if f.native() {
		return f.fromBits(n << uint(f.split))
	}
	b := big.NewInt(n)
	return f.fromBig(b.Lsh(b, uint(f.split)))
}

// FromUint64 returns n in the format f. The result wraps if n is out of the format's range.
func (f Format) FromUint64(n uint64) Value {
	if f.native() {
		return f.fromBits(int64(n << uint(f.split)))
	}
	b := new(big.Int).SetUint64(n)
	return f.fromBig(b.Lsh(b, uint(f.split)))
}

// FromInt returns n in the format f.
func FromInt[T constraints.Integer](f Format, n T) Value {
	if n < 0 {
		return f.FromInt64(int64(n))
	}
	return f.FromUint64(uint64(n))
}

// intPart returns the integral part of v, truncated toward zero.
func (v Value) intPart() *big.Int {
	if v.b == nil {
		m, neg := v.mag()
		m >>= uint(v.f.split)
		r := new(big.Int).SetUint64(m)
		if neg {
			r.Neg(r)
		}
		return r
	}
	m, neg := v.bigMag()
	m.Rsh(m, uint(v.f.split))
	if neg {
		m.Neg(m)
	}
	return m
}

// Int64 returns the integral part of v, truncated toward zero.
// The result is undefined if it does not fit into int64.
func (v Value) Int64() int64 {
	if v.b == nil {
		m, neg := v.mag()
		m >>= uint(v.f.split)
		if neg {
			return -int64(m)
		}
		return int64(m)
	}
	return low64(v.intPart())
}

// ToInt returns the integral part of v, truncated toward zero,
// or ErrOutOfRange if it does not fit into T.
func ToInt[T constraints.Integer](v Value) (T, error) {
	ip := v.intPart()
	var (
		r   T
		err error
	)
	switch {
	case ip.IsInt64():
		r, err = safecast.Conv[T](ip.Int64())
	case ip.IsUint64():
		r, err = safecast.Conv[T](ip.Uint64())
	default:
		err = ErrOutOfRange
	}
	if err != nil {
		return 0, fmt.Errorf("%s to %T: %w", v, r, ErrOutOfRange)
	}
	return r, nil
}

// MustToInt is like ToInt, but panics on errors.
func MustToInt[T constraints.Integer](v Value) T {
	r, err := ToInt[T](v)
	if err != nil {
		panic(err)
	}
	return r
}

// fracBitsNonZero returns true if v has a non-zero fractional part.
func (v Value) fracBitsNonZero() bool {
	if v.b == nil {
		m, _ := v.mag()
		return mu.From64(m).LowBitsNonZero(uint(v.f.split))
	}
	return lowBitsNonZero(v.b, uint(v.f.split))
}
