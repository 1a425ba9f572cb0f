// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fxp

import (
	"math/big"
	"math/bits"
)

// tier selects the approximation used by the elementary functions.
type tier uint8

const (
	// tierLow uses short polynomials, accurate to about 18 bits.
	tierLow tier = iota
	// tierMid uses longer polynomials, accurate to about 34 bits.
	tierMid
	// tierHigh uses series and Newton iterations at any precision.
	tierHigh
)

const (
	lowTierBits = 11
	midTierBits = 24

	// polyGuard is the number of extra fractional bits for low and mid tiers.
	polyGuard = 8
)

func (t tier) String() string {
	switch t {
	case tierLow:
		return "low"
	case tierMid:
		return "mid"
	}
	return "high"
}

// tierFor returns the tier for a result that needs 'bits' fractional bits.
func tierFor(bits int) tier {
	switch {
	case bits <= lowTierBits:
		return tierLow
	case bits <= midTierBits:
		return tierMid
	}
	return tierHigh
}

// guardFor returns the number of extra working bits for a precision of 'prec' bits.
func guardFor(t tier, prec int) int {
	if t != tierHigh {
		return polyGuard
	}
	return 16 + bits.Len(uint(max(prec, 1)))
}

// workingFormat returns the format functions compute in for a result in f.
// extraRange integral bits are added to f's range, extraSplit fractional bits are added to f's split.
func workingFormat(f Format, t tier, extraRange, extraSplit int) Format {
	split := int(f.split) + extraSplit
	return workFormat(max(int(f.rng)+extraRange, 3), split+guardFor(t, split))
}

// newtonSteps returns the number of iterations, which double a 48-bit seed up to prec bits.
func newtonSteps(prec int) int {
	n := 1
	for p := 48; p < prec; p <<= 1 {
		n++
	}
	return n
}

// narrow converts r to f, saturating to Max() or Lowest() if r does not fit.
func narrow(r Value, f Format) Value {
	if r.Cmp(f.Max()) >= 0 {
		return f.Max()
	}
	if r.Cmp(f.Lowest()) <= 0 {
		return f.Lowest()
	}
	return r.Convert(f)
}

// saturated returns Max() for positive signs, and Lowest() otherwise.
func saturated(f Format, sign int) Value {
	if sign < 0 {
		return f.Lowest()
	}
	return f.Max()
}

// fromBigSat is like fromBig, but saturates instead of wrapping.
func (f Format) fromBigSat(x *big.Int) Value {
	if x.BitLen() > f.Digits() {
		return saturated(f, x.Sign())
	}
	return f.fromBig(x)
}

// scaleTo returns v·2^k converted to f.
// The scaling is exact, only the conversion rounds.
func scaleTo(v Value, k int, f Format) Value {
	split := int(v.f.split) - k
	m := v.Bits()
	if split < 0 {
		m.Lsh(m, uint(-split))
		split = 0
	}
	g := workFormat(max(int(v.f.rng)+k, 0), split)
	return g.fromBig(m).Convert(f)
}
