// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fxp

// ratio is a rational series parameter p/q, q > 0.
type ratio struct {
	p, q int64
}

// hyperRange is the number of extra integral bits for the intermediate terms,
// which are multiplied before they are divided.
const hyperRange = 40

// hypergeometric returns the generalized hypergeometric series
//
//	pFq(a; b; z) = Σ (a1)n···(ap)n / ((b1)n···(bq)n) · z^n/n!
//
// in the format f, where (x)n is the rising factorial. The series is summed until a term
// drops to a single unit. Terms must shrink at least by half, so |z| <= 1/2.
func hypergeometric(f Format, a, b []ratio, z Value) Value {
	hf := workFormat(int(f.rng)+hyperRange, int(f.split))
	z = z.Convert(hf)
	sum := hf.FromInt64(1)
	term := sum
	for n := int64(0); ; n++ {
		term = term.Mul(z)
		// (p/q + n) = (p + n·q)/q
		for _, r := range a {
			term = term.MulInt(r.p + n*r.q).QuoInt(r.q)
		}
		for _, r := range b {
			term = term.MulInt(r.q).QuoInt(r.p + n*r.q)
		}
		term = term.QuoInt(n + 1)
		sum = sum.Add(term)
		// a unit term can round to itself forever.
		if term.bitLen() <= 1 {
			return sum.Convert(f)
		}
	}
}
