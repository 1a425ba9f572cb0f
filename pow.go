// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fxp

import (
	"math"
	"math/bits"
)

// Pow returns x^y computed as e^(y·ln|x|). The result has x's format.
// A negative x requires an integral y, otherwise 0 is returned.
// Pow(0, y) returns 0 for y != 0, and Pow(x, 0) returns 1 for any x.
// Results larger than the format's Max() saturate.
func Pow(x, y Value) Value {
	f := x.f
	switch {
	case y.IsZero():
		return f.One()
	case x.IsZero():
		return f.Zero()
	}
	sign := 1
	if x.Sign() < 0 {
		if y.fracBitsNonZero() {
			return f.Zero()
		}
		if y.intPart().Bit(0) != 0 {
			sign = -1
		}
	}
	ax := x.Abs()
	l := y.Float64() * math.Log2(ax.Float64())
	switch {
	case l > float64(f.rng)+1:
		return saturated(f, sign)
	case l < -float64(f.split+2):
		return f.Zero()
	}
	k := max(int(math.Floor(l)), 0)
	yb := bits.Len(uint(max(y.Abs().Int64(), 1)))
	t := tierFor(int(f.split) + k + yb)
	// e^p with p = y·ln|x| loses as many bits as the magnitudes of the result and y.
	lnb := bits.Len(uint(max(ax.f.rng, ax.f.split)))
	lf := workFormat(max(lnb+3, int(y.f.rng)+1, 5), max(int(f.split)+k+yb+lnb+guardFor(t, int(f.split)+k), int(y.f.split)))
	p := lnW(ax, lf, t).Mul(y.Convert(lf))
	r := expW(p, workingFormat(f, t, 3, 0), t)
	return narrow(copySign(r, sign), f)
}
