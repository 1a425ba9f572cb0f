package mathutil

import (
	"fmt"
	"math"
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func toBig(u Uint128) *big.Int {
	r := new(big.Int).SetUint64(u.Hi)
	r.Lsh(r, 64)
	return r.Or(r, new(big.Int).SetUint64(u.Lo))
}

func TestDivDoubleWidth(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		lo, hi, v uint64
	}{
		{0, 0, 1},
		{1, 0, 1},
		{math.MaxUint64, math.MaxUint64, 1},
		{math.MaxUint64, math.MaxUint64, math.MaxUint64},
		{0, 1, 2},
		{12345, 0, 7},
		{0, 1 << 62, 3},
		{math.MaxUint64, 1<<63 - 1, 1<<63 + 1},
		{0x8000000000000000, 0x7fffffffffffffff, 0x8000000000000001},
		{0xffffffff00000000, 0xffffffff, 0x100000001},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			qLo, qHi, rem := DivDoubleWidth(test.lo, test.hi, test.v)
			n := toBig(Uint128{Hi: test.hi, Lo: test.lo})
			q, r := new(big.Int).QuoRem(n, new(big.Int).SetUint64(test.v), new(big.Int))
			a.Equal(q.String(), toBig(Uint128{Hi: qHi, Lo: qLo}).String())
			a.Equal(r.Uint64(), rem)
		})
	}
	a.Panics(func() {
		DivDoubleWidth(1, 1, 0)
	})
}

func TestDivDoubleWidthRandom(t *testing.T) {
	a := assert.New(t)
	rnd := rand.New(rand.NewSource(42))
	for i := 0; i < 5000; i++ {
		lo, hi := rnd.Uint64(), rnd.Uint64()>>uint(rnd.Intn(64))
		v := rnd.Uint64() >> uint(rnd.Intn(64))
		if v == 0 {
			v = 1
		}
		qLo, qHi, rem := DivDoubleWidth(lo, hi, v)
		n := toBig(Uint128{Hi: hi, Lo: lo})
		q, r := new(big.Int).QuoRem(n, new(big.Int).SetUint64(v), new(big.Int))
		if !a.Equal(q.String(), toBig(Uint128{Hi: qHi, Lo: qLo}).String(), "%x:%x / %x", hi, lo, v) {
			return
		}
		a.Equal(r.Uint64(), rem)
	}
}

func TestUint128Shifts(t *testing.T) {
	a := assert.New(t)
	u := Uint128{Hi: 0x0123456789abcdef, Lo: 0xfedcba9876543210}
	for _, n := range []uint{0, 1, 13, 63, 64, 65, 100, 127, 128, 200} {
		want := new(big.Int).Lsh(toBig(u), n)
		want.And(want, new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1)))
		a.Equal(want.String(), toBig(u.Lsh(n)).String(), "lsh %d", n)
		a.Equal(new(big.Int).Rsh(toBig(u), n).String(), toBig(u.Rsh(n)).String(), "rsh %d", n)
	}
}

func TestLowBitsNonZero(t *testing.T) {
	a := assert.New(t)
	u := Uint128{Hi: 1 << 3, Lo: 0}
	a.False(u.LowBitsNonZero(0))
	a.False(u.LowBitsNonZero(64))
	a.False(u.LowBitsNonZero(67))
	a.True(u.LowBitsNonZero(68))
	a.True(u.LowBitsNonZero(128))
	a.True(Uint128{Lo: 4}.LowBitsNonZero(3))
	a.False(Uint128{Lo: 4}.LowBitsNonZero(2))
}

func TestMul64(t *testing.T) {
	a := assert.New(t)
	p := Mul64(math.MaxUint64, math.MaxUint64)
	a.Equal(uint64(math.MaxUint64-1), p.Hi)
	a.Equal(uint64(1), p.Lo)
	a.Equal(128, p.BitLen())
	a.Equal(1, p.Cmp(From64(math.MaxUint64)))
	a.Equal(0, p.Cmp(p))
	a.Equal(Uint128{Hi: 1}, From64(math.MaxUint64).Add64(1))
}

func TestMSB(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x   uint64
		msb int
	}{
		{0, -1},
		{1, 0},
		{2, 1},
		{3, 1},
		{0x80, 7},
		{0xffff, 15},
		{1 << 32, 32},
		{math.MaxUint64, 63},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.msb, MSB(test.x))
			a.Equal(test.msb+1, BitLen(test.x))
		})
	}
}

func TestSignExtend(t *testing.T) {
	a := assert.New(t)
	a.Equal(int64(-1), SignExtend(0xff, 8))
	a.Equal(int64(127), SignExtend(0x7f, 8))
	a.Equal(int64(-128), SignExtend(0x180, 8))
	a.Equal(int64(math.MinInt64), SignExtend(math.MinInt64, 64))
	m, neg := Abs64(math.MinInt64)
	a.Equal(uint64(1<<63), m)
	a.True(neg)
	a.Equal(5, AbsInt(-5))
}

func BenchmarkInt64Sign(b *testing.B) {
	var dummy int
	for i := 0; i < b.N; i++ {
		dummy += Int64Sign(int64(i)) + Int64Sign(int64(-i)) + Int64Sign(int64(i-i))
	}
	// this metric is just to prevent unwanted optimisations in calculations of `dummy.`
	b.ReportMetric(float64(dummy), "dummy_metric")
}

func BenchmarkDivDoubleWidth(b *testing.B) {
	var dummy uint64
	for i := 0; i < b.N; i++ {
		q, _, r := DivDoubleWidth(uint64(i)*0x9e3779b97f4a7c15, uint64(i), 0x8000000000000001)
		dummy += q + r
	}
	b.ReportMetric(float64(dummy%7), "dummy_metric")
}
