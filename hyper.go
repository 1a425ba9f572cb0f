// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fxp

import (
	"math"
	"math/bits"
)

// expAbs returns e^|x| in a working format for a result in x's format, and the tier.
func expAbs(x Value) (Value, Format, tier) {
	f := x.f
	ax := x.Abs()
	k := int(math.Floor(ax.Float64() / math.Ln2))
	t := tierFor(int(f.split) + k)
	wf := workingFormat(f, t, 3, 0)
	return expW(ax, wf, t), wf, t
}

// tooLarge returns true if e^|x|/2 certainly does not fit x's format.
func tooLarge(x Value) bool {
	return x.Abs().Float64() > float64(x.f.rng+2)*math.Ln2
}

// Sinh returns the hyperbolic sine of x.
func Sinh(x Value) Value {
	f := x.f
	if x.IsZero() {
		return x
	}
	if tooLarge(x) {
		return saturated(f, x.Sign())
	}
	e, wf, _ := expAbs(x)
	s := e.Sub(wf.FromInt64(1).Quo(e)).Rsh(1)
	return narrow(copySign(s, x.Sign()), f)
}

// Cosh returns the hyperbolic cosine of x.
func Cosh(x Value) Value {
	f := x.f
	if tooLarge(x) {
		return f.Max()
	}
	e, wf, _ := expAbs(x)
	return narrow(e.Add(wf.FromInt64(1).Quo(e)).Rsh(1), f)
}

// Tanh returns the hyperbolic tangent of x.
func Tanh(x Value) Value {
	f := x.f
	if x.IsZero() {
		return x
	}
	t := tierFor(int(f.split))
	wf := workingFormat(f, t, 1, 0)
	one := wf.FromInt64(1)
	// e^(-2|x|) vanishes in wf.
	if x.Abs().Float64() > float64(wf.split+2)*math.Ln2/2 {
		return narrow(copySign(one, x.Sign()), f)
	}
	// tanh|x| = (1 - e^(-2|x|)) / (1 + e^(-2|x|))
	e := expW(x.Abs().Convert(wf).Lsh(1).Neg(), wf, t)
	return narrow(copySign(one.Sub(e).Quo(one.Add(e)), x.Sign()), f)
}

// Asinh returns the inverse hyperbolic sine of x.
func Asinh(x Value) Value {
	f := x.f
	if x.IsZero() {
		return x
	}
	t := tierFor(int(f.split))
	// x² must fit.
	wf := workingFormat(f, t, int(f.rng)+3, bits.Len(uint(f.rng)))
	a := x.Abs().Convert(wf)
	one := wf.FromInt64(1)
	var r Value
	if t == tierHigh && a.LessOrEqual(wf.FromFloat64(0.5)) {
		// asinh(a) = a·₂F₁(1/2, 1/2; 3/2; -a²)
		r = a.Mul(hypergeometric(wf, []ratio{half, half}, []ratio{threeHalves}, a.Mul(a).Neg()))
	} else {
		r = lnW(a.Add(sqrtW(a.Mul(a).Add(one), wf, t)), wf, t)
	}
	return narrow(copySign(r, x.Sign()), f)
}

// Acosh returns the inverse hyperbolic cosine of x.
// Acosh of a value less than 1 returns 0.
func Acosh(x Value) Value {
	f := x.f
	if x.Less(unit) {
		return f.Zero()
	}
	t := tierFor(int(f.split))
	wf := workingFormat(f, t, int(f.rng)+3, bits.Len(uint(f.rng)))
	a := x.Convert(wf)
	one := wf.FromInt64(1)
	d := a.Sub(one)
	if t == tierHigh && d.LessOrEqual(wf.FromFloat64(0.5)) {
		// acosh(1+d) = √(2d)·₂F₁(1/2, 1/2; 3/2; -d/2)
		s := sqrtW(d.Lsh(1), wf, t)
		return narrow(s.Mul(hypergeometric(wf, []ratio{half, half}, []ratio{threeHalves}, d.Rsh(1).Neg())), f)
	}
	return narrow(lnW(a.Add(sqrtW(a.Mul(a).Sub(one), wf, t)), wf, t), f)
}

// Atanh returns the inverse hyperbolic tangent of x.
// Atanh of a value outside of (-1, 1) returns 0.
func Atanh(x Value) Value {
	f := x.f
	if x.Abs().GreaterOrEqual(unit) {
		return f.Zero()
	}
	if x.IsZero() {
		return x
	}
	t := tierFor(int(f.split))
	// (1+x)/(1-x) can be as large as 2^(split+1).
	wf := workingFormat(f, t, int(f.split)+3, bits.Len(uint(f.split)))
	a := x.Abs().Convert(wf)
	one := wf.FromInt64(1)
	var r Value
	if t == tierHigh && a.LessOrEqual(wf.FromFloat64(0.5)) {
		// atanh(a) = a·₂F₁(1/2, 1; 3/2; a²)
		r = a.Mul(hypergeometric(wf, []ratio{half, oneRatio}, []ratio{threeHalves}, a.Mul(a)))
	} else {
		r = lnW(one.Add(a).Quo(one.Sub(a)), wf, t).Rsh(1)
	}
	return narrow(copySign(r, x.Sign()), f)
}
