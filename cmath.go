// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fxp

import (
	"math/big"
)

// Abs returns |x|.
func Abs(x Value) Value {
	return x.Abs()
}

// Trunc returns the integral part of x.
func Trunc(x Value) Value {
	if !x.fracBitsNonZero() {
		return x
	}
	return x.f.fromIntPart(x.intPart())
}

// Floor returns the greatest integer value less than or equal to x.
func Floor(x Value) Value {
	if !x.fracBitsNonZero() {
		return x
	}
	// Rsh rounds toward -inf for negative numbers.
	return x.f.fromIntPart(new(big.Int).Rsh(x.Bits(), uint(x.f.split)))
}

// Ceil returns the least integer value greater than or equal to x.
// The result saturates if it does not fit.
func Ceil(x Value) Value {
	if !x.fracBitsNonZero() {
		return x
	}
	m := x.Bits()
	m.Rsh(m.Neg(m), uint(x.f.split))
	return x.f.fromIntPart(m.Neg(m))
}

// Round returns the nearest integer, rounding half away from zero.
// The result saturates if it does not fit.
func Round(x Value) Value {
	if !x.fracBitsNonZero() {
		return x
	}
	m, neg := x.bigMag()
	m.Add(m, pow2(uint(x.f.split-1)))
	m.Rsh(m, uint(x.f.split))
	if neg {
		m.Neg(m)
	}
	return x.f.fromIntPart(m)
}

// Nearbyint rounds x to an integer with x's rounding mode:
// Fastest truncates, NearestEven rounds half to even.
// The result saturates if it does not fit.
func Nearbyint(x Value) Value {
	if !x.fracBitsNonZero() {
		return x
	}
	m, neg := x.bigMag()
	m = x.f.mode.shiftRightBig(m, uint(x.f.split))
	if neg {
		m.Neg(m)
	}
	return x.f.fromIntPart(m)
}

// fromIntPart returns the integer n in the format f, saturating if it does not fit.
func (f Format) fromIntPart(n *big.Int) Value {
	return f.fromBigSat(n.Lsh(n, uint(f.split)))
}

// Nextafter returns the next representable value after x towards y, in x's format.
// If x == y, x is returned. Max() and Lowest() are never crossed.
func Nextafter(x, y Value) Value {
	switch c := x.Cmp(y); {
	case c < 0 && !x.Eq(x.f.Max()):
		return x.Add(x.f.fromBits(1))
	case c > 0 && !x.Eq(x.f.Lowest()):
		return x.Sub(x.f.fromBits(1))
	}
	return x
}

// Copysign returns a value with the magnitude of x and the sign of y.
// Zero y is treated as positive.
func Copysign(x, y Value) Value {
	return copySign(x, y.Sign())
}

// Hypot returns √(x² + y²) without overflowing the intermediate squares.
// The result has the finer format of both arguments, and saturates if it does not fit.
func Hypot(x, y Value) Value {
	f, x, y := promote(x, y)
	if x.IsZero() {
		return y.Abs()
	}
	if y.IsZero() {
		return x.Abs()
	}
	e := max(x.bitLen(), y.bitLen()) - int(f.split)
	t := tierFor(int(f.split) + max(e, 0))
	wf := workingFormat(f, t, 2, 0)
	sf := workFormat(2*int(f.rng)+3, int(wf.split))
	xs, ys := x.Convert(sf), y.Convert(sf)
	return narrow(sqrtW(xs.Mul(xs).Add(ys.Mul(ys)), wf, t), f)
}
