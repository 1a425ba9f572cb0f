// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fxp

import (
	"math"
	"math/bits"

	mu "github.com/avdva/fxp/internal/mathutil"
)

// Log returns the natural logarithm of x.
// Log of a non-positive value returns 0.
func Log(x Value) Value {
	if x.Sign() <= 0 {
		return x.f.Zero()
	}
	wf, t := logFormat(x.f)
	return narrow(lnW(x, wf, t), x.f)
}

// Log2 returns the binary logarithm of x.
// Log2 of a non-positive value returns 0.
func Log2(x Value) Value {
	if x.Sign() <= 0 {
		return x.f.Zero()
	}
	wf, t := logFormat(x.f)
	return narrow(log2W(x, wf, t), x.f)
}

// Log10 returns the decimal logarithm of x.
// Log10 of a non-positive value returns 0.
func Log10(x Value) Value {
	if x.Sign() <= 0 {
		return x.f.Zero()
	}
	wf, t := logFormat(x.f)
	l := log2W(x, wf, t)
	return narrow(l.Quo(log2W(wf.FromInt64(10), wf, t)), x.f)
}

// logFormat returns a working format able to hold n·ln2 for any exponent n of f's values.
func logFormat(f Format) (Format, tier) {
	t := tierFor(int(f.split))
	nb := bits.Len(uint(max(f.rng, f.split)))
	return workingFormat(Format{rng: int32(max(nb+2, 5)), split: f.split}, t, 0, nb), t
}

// msb returns the position of the highest set bit of |storage|.
func (v Value) msb() int {
	if v.b == nil {
		m, _ := v.mag()
		return mu.MSB(m)
	}
	return v.b.BitLen() - 1
}

// log2Reduce returns y in [√½, √2) and n, such that x = y·2^n.
func log2Reduce(x Value, wf Format) (Value, int) {
	n := x.msb() - int(x.f.split)
	y := scaleTo(x, -n, wf)
	if y.GreaterOrEqual(Sqrt2(wf)) {
		y = y.Rsh(1)
		n++
	}
	return y, n
}

// log2W returns log2(x) in the format wf. x must be positive.
func log2W(x Value, wf Format, t tier) Value {
	if t == tierHigh {
		return lnW(x, wf, t).Quo(Ln2(wf))
	}
	y, n := log2Reduce(x, wf)
	one := wf.FromInt64(1)
	s := y.Sub(one).Quo(y.Add(one))
	p := log2Low
	if t == tierMid {
		p = log2Mid
	}
	return p.evalOdd(s).Add(wf.FromInt64(int64(n)))
}

// lnW returns ln(x) in the format wf. x must be positive.
func lnW(x Value, wf Format, t tier) Value {
	if t != tierHigh {
		return log2W(x, wf, t).Mul(Ln2(wf))
	}
	y, n := log2Reduce(x, wf)
	return lnNewton(y).Add(Ln2(wf).MulInt(int64(n)))
}

// lnNewton solves y·e^(-z) - 1 = 0 for z starting from a float64 estimate.
// Each step doubles the number of correct bits.
func lnNewton(y Value) Value {
	f := y.f
	one := f.FromInt64(1)
	z := f.FromFloat64(math.Log(y.Float64()))
	for i := newtonSteps(int(f.split)); i > 0; i-- {
		z = z.Add(y.Mul(expW(z.Neg(), f, tierHigh))).Sub(one)
	}
	return z
}
