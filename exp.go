// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fxp

import (
	"math"
	"math/bits"

	mu "github.com/avdva/fxp/internal/mathutil"
)

// Exp returns e^x.
// Results larger than the format's Max() saturate.
func Exp(x Value) Value {
	f := x.f
	if x.IsZero() {
		return f.One()
	}
	xf := x.Float64()
	switch {
	case xf > float64(f.rng+2)*math.Ln2:
		return f.Max()
	case xf < -float64(f.split+2)*math.Ln2:
		// below half of the smallest positive value.
		return f.Zero()
	}
	k := int(math.Floor(xf / math.Ln2))
	t := tierFor(int(f.split) + k)
	return narrow(expW(x, workingFormat(f, t, 3, 0), t), f)
}

// expW returns e^x in the format wf, which must be wide enough to hold the result.
// x = k·ln2 + r, r in [0, ln2), and e^x = e^r·2^k.
func expW(x Value, wf Format, t tier) Value {
	k := int(math.Floor(x.Float64() / math.Ln2))
	kb := bits.Len(uint(mu.AbsInt(k)))
	rf := workFormat(kb+2, int(wf.split)+max(k, 0)+kb+4)
	ln2 := Ln2(rf)
	r := x.Convert(rf).Sub(ln2.MulInt(int64(k)))
	// the float estimate of k can be off by one.
	if r.Sign() < 0 {
		k--
		r = r.Add(ln2)
	} else if r.GreaterOrEqual(ln2) {
		k++
		r = r.Sub(ln2)
	}
	var er Value
	switch t {
	case tierLow:
		er = expLow.eval(r)
	case tierMid:
		er = expMid.eval(r)
	default:
		er = expSeries(r)
	}
	return scaleTo(er, k, wf)
}

// expSeries sums the Taylor series of e^r until the terms vanish.
func expSeries(r Value) Value {
	one := r.f.FromInt64(1)
	sum, term := one, one
	for n := int64(1); ; n++ {
		term = term.Mul(r).QuoInt(n)
		if term.IsZero() {
			return sum
		}
		sum = sum.Add(term)
	}
}
