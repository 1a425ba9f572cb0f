// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fxp

import (
	"errors"
	"fmt"
	"math/big"

	"fortio.org/safecast"
)

var (
	// ErrResolution is returned for a non-negative resolution.
	ErrResolution = errors.New("resolution must be negative")
	// ErrRange is returned for a negative integral range.
	ErrRange = errors.New("range must not be negative")
	// ErrTooWide is returned if a format needs more than MaxTotalBits bits.
	ErrTooWide = errors.New("format is too wide")
	// ErrNoBigInt is returned for formats wider than 64 bits if big integer support is disabled.
	ErrNoBigInt = errors.New("big integer support is disabled")
	// ErrRounding is returned for unknown rounding modes.
	ErrRounding = errors.New("unknown rounding mode")
)

// Format describes a binary fixed-point number: its integral range,
// fractional resolution and rounding mode.
// Formats are comparable and can be used as map keys.
type Format struct {
	rng   int32
	split int32
	mode  Rounding
}

// NewFormat returns a format with 'rng' integral bits (not counting the sign bit),
// and the resolution of 2^resolution. The resolution must be negative,
// -resolution is the number of fractional bits.
func NewFormat(rng, resolution int, mode Rounding) (Format, error) {
	if resolution >= 0 {
		return Format{}, fmt.Errorf("resolution %d: %w", resolution, ErrResolution)
	}
	if rng < 0 {
		return Format{}, fmt.Errorf("range %d: %w", rng, ErrRange)
	}
	if !mode.valid() {
		return Format{}, fmt.Errorf("%v: %w", mode, ErrRounding)
	}
	r, err := safecast.Conv[int32](rng)
	if err != nil {
		return Format{}, fmt.Errorf("range %d: %w", rng, ErrTooWide)
	}
	s, err := safecast.Conv[int32](-resolution)
	if err != nil {
		return Format{}, fmt.Errorf("resolution %d: %w", resolution, ErrTooWide)
	}
	f := Format{rng: r, split: s, mode: mode}
	if _, err := selectWidth(int(r) + 1 + int(s)); err != nil {
		return Format{}, err
	}
	return f, nil
}

// MustFormat is like NewFormat, but panics on errors.
func MustFormat(rng, resolution int, mode Rounding) Format {
	f, err := NewFormat(rng, resolution, mode)
	if err != nil {
		panic(err)
	}
	return f
}

// workFormat returns an internal format with no width limits.
func workFormat(rng, split int) Format {
	return Format{rng: int32(rng), split: int32(split), mode: NearestEven}
}

// Range returns the number of integral bits, not counting the sign bit.
func (f Format) Range() int {
	return int(f.rng)
}

// Resolution returns the exponent of the smallest positive value.
func (f Format) Resolution() int {
	return -int(f.split)
}

// RadixSplit returns the number of fractional bits.
func (f Format) RadixSplit() int {
	return int(f.split)
}

// Rounding returns the rounding mode.
func (f Format) Rounding() Rounding {
	return f.mode
}

// TotalBits returns the number of storage bits, including the sign bit.
func (f Format) TotalBits() int {
	return int(f.rng) + 1 + int(f.split)
}

// Width returns the integer type that holds the storage.
func (f Format) Width() Width {
	w, err := selectWidth(f.TotalBits())
	if err != nil { // internal working formats bypass the limits.
		return Width{Bits: f.TotalBits()}
	}
	return w
}

func (f Format) native() bool {
	return f.TotalBits() <= nativeBits
}

// WithRounding returns a copy of f with another rounding mode.
func (f Format) WithRounding(mode Rounding) Format {
	f.mode = mode
	return f
}

// String returns a string like `fxp<4,-4,nearest_even>`.
func (f Format) String() string {
	return fmt.Sprintf("fxp<%d,%d,%s>", f.rng, -f.split, f.mode)
}

// Digits returns the number of value bits.
func (f Format) Digits() int {
	return int(f.rng) + int(f.split)
}

// Digits10 returns the number of decimal digits that can be represented without change.
func (f Format) Digits10() int {
	// 30103/100000 approximates log10(2) from below.
	return f.Digits() * 30103 / 100000
}

// MaxExponent returns the largest e, such that 2^e is representable.
func (f Format) MaxExponent() int {
	return int(f.rng)
}

// MinExponent returns the smallest e, such that 2^e is representable.
func (f Format) MinExponent() int {
	return -int(f.split)
}

// Max returns the largest value of the format.
func (f Format) Max() Value {
	if f.native() {
		return f.fromBits(int64(1<<(f.TotalBits()-1) - 1))
	}
	m := pow2(uint(f.TotalBits() - 1))
	return Value{f: f, b: m.Sub(m, bigOne)}
}

// Lowest returns the most negative value of the format, which is -Max().
func (f Format) Lowest() Value {
	return f.Max().Neg()
}

// Min returns the smallest positive value of the format.
func (f Format) Min() Value {
	return f.fromBits(1)
}

// Epsilon returns the difference between 1 and the next representable value.
func (f Format) Epsilon() Value {
	return f.fromBits(1)
}

// Zero returns 0.
func (f Format) Zero() Value {
	return f.fromBits(0)
}

// One returns 1. If the format has no integral bits, Max() is returned.
func (f Format) One() Value {
	if f.rng == 0 {
		return f.Max()
	}
	return f.FromInt64(1)
}

// finer returns the format with more fractional bits.
// Ties are resolved by the range, then f is preferred.
func finer(f, other Format) Format {
	switch {
	case other.split > f.split:
		return other
	case other.split == f.split && other.rng > f.rng:
		return other
	}
	return f
}

func pow2(n uint) *big.Int {
	return new(big.Int).Lsh(bigOne, n)
}

var bigOne = big.NewInt(1)
