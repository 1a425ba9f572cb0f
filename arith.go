// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fxp

import (
	"math/big"

	mu "github.com/avdva/fxp/internal/mathutil"
)

// promote converts both values to their common format.
func promote(x, y Value) (Format, Value, Value) {
	if x.f == y.f {
		return x.f, x, y
	}
	f := finer(x.f, y.f)
	return f, x.Convert(f), y.Convert(f)
}

// Add returns v + other.
func (v Value) Add(other Value) Value {
	f, x, y := promote(v, other)
	if f.native() {
		return f.fromBits(x.n + y.n)
	}
	return f.fromBig(new(big.Int).Add(x.b, y.b))
}

// Sub returns v - other.
func (v Value) Sub(other Value) Value {
	f, x, y := promote(v, other)
	if f.native() {
		return f.fromBits(x.n - y.n)
	}
	return f.fromBig(new(big.Int).Sub(x.b, y.b))
}

// Neg returns -v.
func (v Value) Neg() Value {
	if v.b == nil {
		return v.f.fromBits(-v.n)
	}
	return v.f.fromBig(new(big.Int).Neg(v.b))
}

// Abs returns |v|.
func (v Value) Abs() Value {
	if v.Sign() < 0 {
		return v.Neg()
	}
	return v
}

// Inc returns v + 1.
func (v Value) Inc() Value {
	return v.Add(v.f.FromInt64(1))
}

// Dec returns v - 1.
func (v Value) Dec() Value {
	return v.Sub(v.f.FromInt64(1))
}

// Mul returns v * other, rounded according to the result's format.
func (v Value) Mul(other Value) Value {
	f, x, y := promote(v, other)
	if f.native() {
		return mulNative(f, x.n, y.n)
	}
	return mulBig(f, x.b, y.b)
}

func mulNative(f Format, x, y int64) Value {
	mx, nx := mu.Abs64(x)
	my, ny := mu.Abs64(y)
	p := f.mode.shiftRight128(mu.Mul64(mx, my), uint(f.split))
	return f.fromMag(p, nx != ny)
}

func mulBig(f Format, x, y *big.Int) Value {
	neg := x.Sign()*y.Sign() < 0
	p := new(big.Int).Mul(x, y)
	p = f.mode.shiftRightBig(p.Abs(p), uint(f.split))
	if neg {
		p.Neg(p)
	}
	return f.fromBig(p)
}

// Quo returns v / other, rounded according to the result's format.
// Division by zero returns Max() of the result's format.
func (v Value) Quo(other Value) Value {
	f, x, y := promote(v, other)
	if y.IsZero() {
		return f.Max()
	}
	if f.native() {
		return quoNative(f, x.n, y.n)
	}
	return quoBig(f, x.b, y.b)
}

// Div is the same as Quo.
func (v Value) Div(other Value) Value {
	return v.Quo(other)
}

func quoNative(f Format, x, y int64) Value {
	mx, nx := mu.Abs64(x)
	my, ny := mu.Abs64(y)
	q, rem := mu.Quo128(mu.From64(mx).Lsh(uint(f.split)+f.mode.extraBits()), my)
	return f.fromMag(f.mode.roundQuotient128(q, rem != 0), nx != ny)
}

func quoBig(f Format, x, y *big.Int) Value {
	neg := x.Sign()*y.Sign() < 0
	n := new(big.Int).Abs(x)
	n.Lsh(n, uint(f.split)+f.mode.extraBits())
	q, r := n.QuoRem(n, new(big.Int).Abs(y), new(big.Int))
	q = f.mode.roundQuotientBig(q, r.Sign() != 0)
	if neg {
		q.Neg(q)
	}
	return f.fromBig(q)
}

// MulInt returns v * n.
func (v Value) MulInt(n int64) Value {
	f := v.f
	if v.b == nil {
		mx, nx := v.mag()
		mn, nn := mu.Abs64(n)
		return f.fromMag(mu.Mul64(mx, mn), nx != nn)
	}
	return f.fromBig(new(big.Int).Mul(v.b, big.NewInt(n)))
}

// QuoInt returns v / n, rounded according to v's format.
// Division by zero returns Max().
func (v Value) QuoInt(n int64) Value {
	f := v.f
	if n == 0 {
		return f.Max()
	}
	if v.b == nil {
		mx, nx := v.mag()
		mn, nn := mu.Abs64(n)
		q, rem := mu.Quo128(mu.From64(mx).Lsh(f.mode.extraBits()), mn)
		return f.fromMag(f.mode.roundQuotient128(q, rem != 0), nx != nn)
	}
	neg := v.b.Sign()*mu.Int64Sign(n) < 0
	mn, _ := mu.Abs64(n)
	m := new(big.Int).Abs(v.b)
	m.Lsh(m, f.mode.extraBits())
	q, r := m.QuoRem(m, new(big.Int).SetUint64(mn), new(big.Int))
	q = f.mode.roundQuotientBig(q, r.Sign() != 0)
	if neg {
		q.Neg(q)
	}
	return f.fromBig(q)
}

// Lsh returns v * 2^k. The result wraps if it is out of range.
func (v Value) Lsh(k uint) Value {
	if v.b == nil {
		if k >= 64 {
			return v.f.Zero()
		}
		return v.f.fromBits(v.n << k)
	}
	return v.f.fromBig(new(big.Int).Lsh(v.b, k))
}

// Rsh returns v / 2^k, rounded according to v's format.
func (v Value) Rsh(k uint) Value {
	if v.b == nil {
		m, neg := v.mag()
		return v.f.fromMag(v.f.mode.shiftRight128(mu.From64(m), k), neg)
	}
	m, neg := v.bigMag()
	m = v.f.mode.shiftRightBig(m, k)
	if neg {
		m.Neg(m)
	}
	return v.f.fromBig(m)
}

// Ldexp returns x * 2^exp.
func Ldexp(x Value, exp int) Value {
	if exp < 0 {
		return x.Rsh(uint(-exp))
	}
	return x.Lsh(uint(exp))
}

// Frexp breaks x into a fraction in [1/2, 1) and a power of two, such that x == frac * 2^exp.
// frac has no integral bits and as many fractional bits as x has significant bits,
// so the decomposition is exact. Frexp(0) returns (0, 0).
func Frexp(x Value) (frac Value, exp int) {
	if x.IsZero() {
		return x, 0
	}
	n := x.bitLen()
	f := Format{split: int32(n), mode: x.f.mode}
	if x.b == nil {
		return f.fromBits(x.n), n - int(x.f.split)
	}
	return f.fromBig(x.b), n - int(x.f.split)
}

// bitLen returns the number of significant bits of |storage|.
func (v Value) bitLen() int {
	if v.b == nil {
		m, _ := v.mag()
		return mu.BitLen(m)
	}
	return v.b.BitLen()
}

// Fmod returns the remainder of x / y, with the sign of x.
// Fmod(x, 0) returns Max() of the result's format.
func Fmod(x, y Value) Value {
	f, x, y := promote(x, y)
	if y.IsZero() {
		return f.Max()
	}
	if f.native() {
		mx, nx := x.mag()
		my, _ := y.mag()
		r := int64(mx % my)
		if nx {
			r = -r
		}
		return f.fromBits(r)
	}
	r := new(big.Int).Rem(x.b, y.b)
	return f.fromBig(r)
}
