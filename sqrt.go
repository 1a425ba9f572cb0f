// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fxp

import (
	"math"
)

// Sqrt returns the square root of x.
// Sqrt of a negative value returns 0.
func Sqrt(x Value) Value {
	f := x.f
	if x.Sign() <= 0 {
		return f.Zero()
	}
	if f.rng > 0 && x.Eq(f.FromInt64(1)) {
		return x
	}
	e := sqrtExp(x)
	t := tierFor(int(f.split) + e)
	return narrow(sqrtW(x, workingFormat(f, t, 1, 0), t), f)
}

// sqrtExp returns e, such that x/2^(2e) is in [1/2, 2).
func sqrtExp(x Value) int {
	b := x.bitLen() - int(x.f.split)
	// floor(b/2) for negative b too.
	return b >> 1
}

// sqrtW returns √x in the format wf. x is reduced to m·2^(2e), m in [1/2, 2),
// √m is computed with e extra fractional bits, then scaled by 2^e.
func sqrtW(x Value, wf Format, t tier) Value {
	if x.Sign() <= 0 {
		return wf.Zero()
	}
	e := sqrtExp(x)
	sf := workFormat(3, int(wf.split)+max(e, 0))
	m := scaleTo(x, -2*e, sf)
	var y Value
	switch t {
	case tierLow, tierMid:
		y = sqrtSeed(m)
		steps := 1
		if t == tierMid {
			steps = 2
		}
		for i := 0; i < steps; i++ {
			y = y.Add(m.Quo(y)).Rsh(1)
		}
	default:
		y = sqrtCoupled(m)
	}
	return scaleTo(y, e, wf)
}

var sqrtBounds = [...]float64{0.75, 1, 1.5}

func sqrtSeed(m Value) Value {
	seg := 0
	for seg < len(sqrtBounds) && m.GreaterOrEqual(m.f.FromFloat64(sqrtBounds[seg])) {
		seg++
	}
	return sqrtSeeds[seg].eval(m)
}

// sqrtCoupled runs the Newton-Schönhage iteration, which refines y ≈ √m
// together with v ≈ 1/(2√m) without divisions.
func sqrtCoupled(m Value) Value {
	f := m.f
	seed := math.Sqrt(m.Float64())
	y := f.FromFloat64(seed)
	v := f.FromFloat64(0.5 / seed)
	one := f.FromInt64(1)
	// v lags y by one step.
	for i := newtonSteps(int(f.split)) + 1; i > 0; i-- {
		y = y.Add(v.Mul(m.Sub(y.Mul(y))))
		v = v.Add(v.Mul(one.Sub(y.Mul(v).Lsh(1))))
	}
	return y
}
