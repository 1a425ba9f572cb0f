// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fxp

import (
	"math/big"

	mu "github.com/avdva/fxp/internal/mathutil"
)

var bigThree = big.NewInt(3)

// Sin returns the sine of x.
func Sin(x Value) Value {
	f := x.f
	t := tierFor(int(f.split))
	wf := workingFormat(f, t, 0, 0)
	s, _ := sinCosX(x, wf, t)
	return narrow(s, f)
}

// Cos returns the cosine of x.
func Cos(x Value) Value {
	f := x.f
	t := tierFor(int(f.split))
	wf := workingFormat(f, t, 0, 0)
	_, c := sinCosX(x, wf, t)
	return narrow(c, f)
}

// Tan returns the tangent of x.
// Results which do not fit the format, including poles, saturate.
func Tan(x Value) Value {
	f := x.f
	t := tierFor(int(f.split))
	wf := workingFormat(f, t, 0, 0)
	s, c := sinCosX(x, wf, t)
	return quoSat(s, c, f)
}

// sinCosX returns sin(x) and cos(x) in the format wf.
func sinCosX(x Value, wf Format, t tier) (Value, Value) {
	r, q := trigReduce(x, wf)
	s, c := sinCosW(r, t)
	switch q {
	case 1:
		return c, s.Neg()
	case 2:
		return s.Neg(), c.Neg()
	case 3:
		return c.Neg(), s
	}
	return s, c
}

// trigReduce returns r in [-π/4, π/4] in the format wf and q mod 4, such that x = r + q·π/2.
// π/2 is taken with enough extra bits to cover the magnitude of q.
func trigReduce(x Value, wf Format) (Value, int) {
	rf := workFormat(int(x.f.rng)+2, int(wf.split)+int(x.f.rng)+2)
	hp := constsOf(rf).halfPi
	xr := x.Convert(rf)
	if xr.Abs().LessOrEqual(constsOf(rf).quarterPi) {
		return xr.Convert(wf), 0
	}
	q := nearestInt(xr.Quo(hp))
	r := xr.Sub(hp.Mul(rf.fromBig(new(big.Int).Lsh(q, uint(rf.split)))))
	return r.Convert(wf), int(new(big.Int).And(q, bigThree).Int64())
}

// nearestInt returns v rounded to the nearest integer, ties to even.
func nearestInt(v Value) *big.Int {
	m, neg := v.bigMag()
	m = NearestEven.shiftRightBig(m, uint(v.f.split))
	if neg {
		m.Neg(m)
	}
	return m
}

// sinCosW returns sin(r) and cos(r) for |r| <= π/4 in r's format.
func sinCosW(r Value, t tier) (Value, Value) {
	switch t {
	case tierLow:
		return sinLow.evalOdd(r), cosLow.eval(r.Mul(r))
	case tierMid:
		return sinMid.evalOdd(r), cosMid.eval(r.Mul(r))
	}
	return sinCosSeries(r)
}

// sinCosSeries sums the Taylor series at r/8 and doubles the angle three times.
func sinCosSeries(r Value) (Value, Value) {
	const doublings = 3
	hf := workFormat(int(r.f.rng), int(r.f.split)+2*doublings)
	a := scaleTo(r, -doublings, hf)
	a2 := a.Mul(a)
	s, term := a, a
	for n := int64(1); ; n++ {
		term = term.Mul(a2).QuoInt(2 * n * (2*n + 1)).Neg()
		if term.IsZero() {
			break
		}
		s = s.Add(term)
	}
	c := hf.FromInt64(1)
	term = c
	for n := int64(1); ; n++ {
		term = term.Mul(a2).QuoInt((2*n - 1) * (2 * n)).Neg()
		if term.IsZero() {
			break
		}
		c = c.Add(term)
	}
	for i := 0; i < doublings; i++ {
		s, c = s.Mul(c).Lsh(1), c.Mul(c).Sub(s.Mul(s))
	}
	return s.Convert(r.f), c.Convert(r.f)
}

// quoSat returns a/b in the format f, saturating if the quotient does not fit.
// a and b must have the same format.
func quoSat(a, b Value, f Format) Value {
	sign := a.Sign() * b.Sign()
	if b.IsZero() {
		sign = a.Sign()
	}
	if quoTooLarge(a, b, uint(f.rng)+1) {
		return saturated(f, sign)
	}
	wq := workFormat(int(f.rng)+2, int(a.f.split))
	return narrow(a.Convert(wq).Quo(b.Convert(wq)), f)
}

// quoTooLarge returns true if |a| >= |b|·2^k.
func quoTooLarge(a, b Value, k uint) bool {
	if a.b == nil && b.b == nil && k <= 64 {
		am, _ := a.mag()
		bm, _ := b.mag()
		return mu.From64(am).Cmp(mu.From64(bm).Lsh(k)) >= 0
	}
	am, _ := a.bigMag()
	bm, _ := b.bigMag()
	return am.Cmp(bm.Lsh(bm, k)) >= 0
}

// Atan returns the arctangent of x.
func Atan(x Value) Value {
	f := x.f
	t := tierFor(int(f.split))
	return narrow(atanW(x, workingFormat(f, t, 0, 0), t), f)
}

// atanW returns atan(x) in the format wf, which must hold x and π/2.
func atanW(x Value, wf Format, t tier) Value {
	if x.IsZero() {
		return wf.Zero()
	}
	cs := constsOf(wf)
	one := wf.FromInt64(1)
	a := x.Abs().Convert(wf)
	inv := a.Greater(one)
	if inv {
		a = one.Quo(a)
	}
	off := wf.Zero()
	if a.Greater(cs.sqrt2.Sub(one)) {
		a = a.Sub(one).Quo(a.Add(one))
		off = cs.quarterPi
	}
	r := atanCore(a, t).Add(off)
	if inv {
		r = cs.halfPi.Sub(r)
	}
	if x.Sign() < 0 {
		r = r.Neg()
	}
	return r
}

var (
	half        = ratio{1, 2}
	oneRatio    = ratio{1, 1}
	threeHalves = ratio{3, 2}
)

// atanCore returns atan(a) for |a| <= √2-1.
func atanCore(a Value, t tier) Value {
	switch t {
	case tierLow:
		return atanLow.evalOdd(a)
	case tierMid:
		return atanMid.evalOdd(a)
	}
	// Euler: atan(a) = a/(1+a²)·₂F₁(1, 1; 3/2; a²/(1+a²)).
	d := a.f.FromInt64(1).Add(a.Mul(a))
	z := a.Mul(a).Quo(d)
	return a.Quo(d).Mul(hypergeometric(a.f, []ratio{oneRatio, oneRatio}, []ratio{threeHalves}, z))
}

// Asin returns the arcsine of x.
// Asin of a value outside of [-1, 1] returns 0.
func Asin(x Value) Value {
	f := x.f
	if x.Abs().Greater(unit) {
		return f.Zero()
	}
	t := tierFor(int(f.split))
	return narrow(asinW(x, workingFormat(f, t, 0, 0), t), f)
}

// Acos returns the arccosine of x.
// Acos of a value outside of [-1, 1] returns 0.
func Acos(x Value) Value {
	f := x.f
	if x.Abs().Greater(unit) {
		return f.Zero()
	}
	t := tierFor(int(f.split))
	wf := workingFormat(f, t, 1, 0)
	return narrow(constsOf(wf).halfPi.Sub(asinW(x, wf, t)), f)
}

// unit is 1 in a format every value can be compared with.
var unit = workFormat(1, 1).FromInt64(1)

// asinW returns asin(x) in the format wf for |x| <= 1.
func asinW(x Value, wf Format, t tier) Value {
	a := x.Convert(wf)
	if a.Abs().Eq(unit) {
		return copySign(constsOf(wf).halfPi, x.Sign())
	}
	if t == tierHigh && a.Abs().LessOrEqual(wf.FromFloat64(0.5)) {
		return a.Mul(hypergeometric(wf, []ratio{half, half}, []ratio{threeHalves}, a.Mul(a)))
	}
	one := wf.FromInt64(1)
	d := one.Add(sqrtW(one.Sub(a.Mul(a)), wf, t))
	return atanW(a.Quo(d), wf, t).Lsh(1)
}

// Atan2 returns the arctangent of y/x, using the signs of both to determine the quadrant.
// The result has the finer format of both arguments. Atan2(0, 0) returns 0.
func Atan2(y, x Value) Value {
	f, y, x := promote(y, x)
	if x.IsZero() && y.IsZero() {
		return f.Zero()
	}
	t := tierFor(int(f.split))
	wf := workingFormat(f, t, 2, 0)
	cs := constsOf(wf)
	ay, ax := y.Abs(), x.Abs()
	var r Value
	if ay.LessOrEqual(ax) {
		r = atanW(ay.Convert(wf).Quo(ax.Convert(wf)), wf, t)
	} else {
		r = cs.halfPi.Sub(atanW(ax.Convert(wf).Quo(ay.Convert(wf)), wf, t))
	}
	if x.Sign() < 0 {
		r = cs.pi.Sub(r)
	}
	if y.Sign() < 0 {
		r = r.Neg()
	}
	return narrow(r, f)
}

func copySign(v Value, sign int) Value {
	if (v.Sign() < 0) != (sign < 0) {
		return v.Neg()
	}
	return v
}
