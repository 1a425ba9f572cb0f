// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fxp

import (
	"fmt"
	"math"
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	f44  = MustFormat(4, -4, Fastest)
	f44n = MustFormat(4, -4, NearestEven)
	f88n = MustFormat(8, -8, NearestEven)
)

func TestFromIntStorage(t *testing.T) {
	a := assert.New(t)
	v := f44.FromInt64(3)
	a.Equal(int64(48), v.Bits().Int64())
	a.Equal(3.0, v.Float64())
	a.Equal(f44, v.Type())
	a.Equal("000110000", v.BitString())
	a.Equal("fxp<4,-4,fastest>(bits=48) 3", v.GoString())
	a.Equal("fxp<4,-4,fastest>(bits=48) 3", fmt.Sprintf("%#v", v))
}

func TestCrossPrecision(t *testing.T) {
	a := assert.New(t)
	f25 := MustFormat(2, -5, NearestEven)
	f34 := MustFormat(3, -4, NearestEven)
	// 6.1875 needs three integral bits, so it wraps in the narrow format.
	direct := f25.FromFloat64(6.1875)
	promoted := f34.FromFloat64(6.1875).Convert(f25)
	a.Equal(direct.BitString(), promoted.BitString())
	a.Equal("11000110", direct.BitString())
	a.Equal(int64(-58), direct.Bits().Int64())
	a.Equal(6.1875, f34.FromFloat64(6.1875).Float64())
}

func TestDivByZero(t *testing.T) {
	a := assert.New(t)
	for _, f := range []Format{f44, f44n, MustFormat(0, -7, Fastest), MustFormat(31, -32, NearestEven)} {
		one, zero := f.FromInt64(1), f.Zero()
		a.True(one.Quo(zero).Eq(f.Max()), "%v", f)
		a.True(one.Neg().Div(zero).Eq(f.Max()), "%v", f)
		a.True(one.QuoInt(0).Eq(f.Max()), "%v", f)
		a.True(Fmod(one, zero).Eq(f.Max()), "%v", f)
	}
	if bigIntSupport {
		f := MustFormat(70, -70, NearestEven)
		a.True(f.One().Quo(f.Zero()).Eq(f.Max()))
		a.True(Fmod(f.One(), f.Zero()).Eq(f.Max()))
	}
}

func TestRepresentation(t *testing.T) {
	a := assert.New(t)
	rnd := rand.New(rand.NewSource(2))
	formats := []Format{
		MustFormat(0, -7, Fastest),
		MustFormat(3, -4, NearestEven),
		MustFormat(10, -20, Fastest),
		MustFormat(31, -32, NearestEven),
	}
	for _, f := range formats {
		lim := new(big.Int).Lsh(bigOne, uint(f.Digits()))
		for i := 0; i < 1000; i++ {
			x := f.fromBits(rnd.Int63() - rnd.Int63())
			y := f.fromBits(rnd.Int63() - rnd.Int63())
			for _, r := range []Value{x, y, x.Add(y), x.Sub(y), x.Mul(y), x.Quo(y), x.Neg(), x.Lsh(3)} {
				b := r.Bits()
				// the storage is sign-extended: -2^digits <= b < 2^digits.
				if !a.True(b.Cmp(lim) < 0 && b.Cmp(new(big.Int).Neg(lim)) >= 0, "%v: %s", f, b) {
					return
				}
			}
		}
	}
}

func TestIntRoundTrip(t *testing.T) {
	a := assert.New(t)
	formats := []Format{f44, f44n, MustFormat(15, -16, Fastest), MustFormat(40, -23, NearestEven)}
	if bigIntSupport {
		formats = append(formats, MustFormat(70, -80, Fastest), MustFormat(70, -80, NearestEven))
	}
	for _, f := range formats {
		lim := int64(1) << min(f.Range(), 62)
		for _, n := range []int64{0, 1, -1, 7, -8, lim - 1, -(lim - 1), lim / 3, -lim / 3} {
			v := f.FromInt64(n)
			a.Equal(n, v.Int64(), "%v: %d", f, n)
			r, err := ToInt[int64](v)
			if a.NoError(err) {
				a.Equal(n, r)
			}
			a.Equal(n, FromInt(f, n).Int64())
			if n >= 0 {
				a.Equal(uint64(n), MustToInt[uint64](f.FromUint64(uint64(n))))
			}
		}
	}
}

func TestToInt(t *testing.T) {
	a := assert.New(t)
	f := MustFormat(20, -4, NearestEven)
	v := f.MustParse("300.75")
	_, err := ToInt[int8](v)
	a.ErrorIs(err, ErrOutOfRange)
	_, err = ToInt[uint16](v.Neg())
	a.ErrorIs(err, ErrOutOfRange)
	r, err := ToInt[int16](v.Neg())
	if a.NoError(err) {
		a.Equal(int16(-300), r)
	}
	a.Equal(uint8(3), MustToInt[uint8](f.MustParse("3.9")))
	a.Panics(func() {
		MustToInt[int8](v)
	})
	if bigIntSupport {
		g := MustFormat(100, -4, Fastest)
		huge := g.FromInt64(1).Lsh(80)
		_, err = ToInt[uint64](huge)
		a.ErrorIs(err, ErrOutOfRange)
		r, err := ToInt[uint64](g.FromUint64(math.MaxUint64))
		if a.NoError(err) {
			a.Equal(uint64(math.MaxUint64), r)
		}
	}
}

func TestCmp(t *testing.T) {
	a := assert.New(t)
	f28 := MustFormat(2, -8, Fastest)
	tests := []struct {
		x, y Value
		res  int
	}{
		{f44.FromFloat64(1.5), f88n.FromFloat64(1.5), 0},
		{f44.FromFloat64(1.5), f88n.FromFloat64(1.50390625), -1},
		{f88n.FromFloat64(-1.50390625), f44.FromFloat64(-1.5), -1},
		{f44.FromInt64(3), f28.FromInt64(3), 0},
		{f44.FromInt64(5), f28.FromInt64(3), 1},
		{f44.Zero(), f28.Zero(), 0},
		{f44.Max(), f44.Lowest(), 1},
		{Value{}, f44.Zero(), 0},
	}
	if bigIntSupport {
		fb := MustFormat(40, -60, NearestEven)
		tests = append(tests,
			struct {
				x, y Value
				res  int
			}{fb.FromFloat64(1.5), f44.FromFloat64(1.5), 0},
			struct {
				x, y Value
				res  int
			}{fb.FromFloat64(-2), f44.FromFloat64(1.5), -1},
		)
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, test.x.Cmp(test.y))
			a.Equal(-test.res, test.y.Cmp(test.x))
			a.Equal(test.res == 0, test.x.Eq(test.y))
			a.Equal(test.res < 0, test.x.Less(test.y))
			a.Equal(test.res <= 0, test.x.LessOrEqual(test.y))
			a.Equal(test.res > 0, test.x.Greater(test.y))
			a.Equal(test.res >= 0, test.x.GreaterOrEqual(test.y))
		})
	}
}

func TestSign(t *testing.T) {
	a := assert.New(t)
	a.Equal(0, f44.Zero().Sign())
	a.True(f44.Zero().IsZero())
	a.True(Value{}.IsZero())
	a.Equal(1, f44.Min().Sign())
	a.Equal(-1, f44.Min().Neg().Sign())
	a.Equal("0", Value{}.String())
}

func TestBitString(t *testing.T) {
	a := assert.New(t)
	a.Equal("100000001", f44.Lowest().BitString())
	a.Equal("011111111", f44.Max().BitString())
	a.Equal("111111111", f44.Min().Neg().BitString())
	a.Equal("000000000", f44.Zero().BitString())
	f := MustFormat(2, -2, Fastest)
	a.Equal("11100", f.FromInt64(-1).BitString())
}

func TestStringRoundTrip(t *testing.T) {
	a := assert.New(t)
	rnd := rand.New(rand.NewSource(3))
	formats := []Format{
		MustFormat(10, -20, Fastest),
		MustFormat(10, -20, NearestEven),
		MustFormat(0, -63, NearestEven),
	}
	if bigIntSupport {
		formats = append(formats, MustFormat(40, -90, Fastest))
	}
	for _, f := range formats {
		for i := 0; i < 1000; i++ {
			v := f.fromBig(new(big.Int).Rand(rnd, pow2(uint(f.TotalBits()))))
			p, err := f.Parse(v.String())
			if !a.NoError(err) || !a.Equal(v.BitString(), p.BitString(), "%v: %s", f, v) {
				return
			}
		}
	}
}

func BenchmarkCmp(b *testing.B) {
	x, y := f44.FromFloat64(1.5), f88n.FromFloat64(1.5)
	var dummy int
	for i := 0; i < b.N; i++ {
		dummy += x.Cmp(y)
	}
	b.ReportMetric(float64(dummy), "dummy_metric")
}
