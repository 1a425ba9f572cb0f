package mathutil

import (
	"math/bits"
	"unsafe"
)

const (
	wordBits = 64
	halfBits = wordBits / 2
	halfBase = 1 << halfBits
	halfMask = halfBase - 1
)

// Uint128 is an unsigned double-width scratch integer.
type Uint128 struct {
	Hi, Lo uint64
}

// From64 returns v as a Uint128.
func From64(v uint64) Uint128 {
	return Uint128{Lo: v}
}

// Mul64 returns the full 128-bit product of a and b.
func Mul64(a, b uint64) Uint128 {
	hi, lo := bits.Mul64(a, b)
	return Uint128{Hi: hi, Lo: lo}
}

// IsZero returns true if u == 0.
func (u Uint128) IsZero() bool {
	return u.Hi|u.Lo == 0
}

// BitLen returns the number of bits required to represent u.
func (u Uint128) BitLen() int {
	if u.Hi != 0 {
		return wordBits + BitLen(u.Hi)
	}
	return BitLen(u.Lo)
}

// Lsh returns u << n. Bits shifted past bit 127 are lost.
func (u Uint128) Lsh(n uint) Uint128 {
	switch {
	case n == 0:
		return u
	case n >= 2*wordBits:
		return Uint128{}
	case n >= wordBits:
		return Uint128{Hi: u.Lo << (n - wordBits)}
	}
	return Uint128{Hi: u.Hi<<n | u.Lo>>(wordBits-n), Lo: u.Lo << n}
}

// Rsh returns u >> n.
func (u Uint128) Rsh(n uint) Uint128 {
	switch {
	case n == 0:
		return u
	case n >= 2*wordBits:
		return Uint128{}
	case n >= wordBits:
		return Uint128{Lo: u.Hi >> (n - wordBits)}
	}
	return Uint128{Hi: u.Hi >> n, Lo: u.Lo>>n | u.Hi<<(wordBits-n)}
}

// Add64 returns u + v, wrapping at 128 bits.
func (u Uint128) Add64(v uint64) Uint128 {
	lo, carry := bits.Add64(u.Lo, v, 0)
	return Uint128{Hi: u.Hi + carry, Lo: lo}
}

// LowBitsNonZero returns true if any of the n least significant bits of u is set.
func (u Uint128) LowBitsNonZero(n uint) bool {
	switch {
	case n == 0:
		return false
	case n >= 2*wordBits:
		return !u.IsZero()
	case n >= wordBits:
		return u.Lo != 0 || u.Hi&(1<<(n-wordBits)-1) != 0
	}
	return u.Lo&(1<<n-1) != 0
}

// Cmp compares u and v.
// Returns -1 if u < v, 0 if u == v, 1 if u > v.
func (u Uint128) Cmp(v Uint128) int {
	switch {
	case u.Hi > v.Hi:
		return 1
	case u.Hi < v.Hi:
		return -1
	}
	return Uint64Cmp(u.Lo, v.Lo)
}

// DivDoubleWidth divides the 128-bit number hi:lo by v.
// It returns the 128-bit quotient as (qLo, qHi) and the remainder.
// v must not be zero.
func DivDoubleWidth(lo, hi, v uint64) (qLo, qHi, rem uint64) {
	if v == 0 {
		panic("mathutil: division by zero")
	}
	// first word: ordinary division leaves hi%v < v, which divWW requires.
	qHi, rem = hi/v, hi%v
	qLo, rem = divWW(rem, lo, v)
	return qLo, qHi, rem
}

// Quo128 returns u / v and u % v for a 64-bit divisor.
func Quo128(u Uint128, v uint64) (q Uint128, rem uint64) {
	q.Lo, q.Hi, rem = DivDoubleWidth(u.Lo, u.Hi, v)
	return q, rem
}

// divWW returns q = (u1<<64 + u0 - r)/v and r. It requires u1 < v.
// The quotient is estimated one 32-bit half digit at a time and corrected
// (Warren, Hacker's Delight, p. 152).
func divWW(u1, u0, v uint64) (q, r uint64) {
	if u1 >= v {
		panic("mathutil: quotient overflow")
	}
	s := uint(bits.LeadingZeros64(v))
	v <<= s

	vn1 := v >> halfBits
	vn0 := v & halfMask
	un32 := u1<<s | u0>>(wordBits-s)
	un10 := u0 << s
	un1 := un10 >> halfBits
	un0 := un10 & halfMask
	q1 := un32 / vn1
	rhat := un32 - q1*vn1

	for q1 >= halfBase || q1*vn0 > halfBase*rhat+un1 {
		q1--
		rhat += vn1
		if rhat >= halfBase {
			break
		}
	}

	un21 := un32*halfBase + un1 - q1*v
	q0 := un21 / vn1
	rhat = un21 - q0*vn1

	for q0 >= halfBase || q0*vn0 > halfBase*rhat+un0 {
		q0--
		rhat += vn1
		if rhat >= halfBase {
			break
		}
	}

	return q1*halfBase + q0, (un21*halfBase + un0 - q0*v) >> s
}

// BitLen returns the number of bits required to represent value.
func BitLen(value uint64) int {
	return int(8*unsafe.Sizeof(uint64(0))) - bits.LeadingZeros64(value)
}

// MSB returns the position of the most significant set bit of x,
// or -1 if x == 0. The position is found by binary halving.
func MSB(x uint64) int {
	if x == 0 {
		return -1
	}
	n := 0
	for shift := uint(halfBits); shift > 0; shift >>= 1 {
		if x>>shift != 0 {
			x >>= shift
			n += int(shift)
		}
	}
	return n
}

// Abs64 returns the magnitude of v and whether v is negative.
// The magnitude of math.MinInt64 is 1<<63.
func Abs64(v int64) (mag uint64, neg bool) {
	if v < 0 {
		return uint64(-v), true
	}
	return uint64(v), false
}

// AbsInt returns |val|.
func AbsInt(val int) int {
	mask := val >> (unsafe.Sizeof(int(0))*8 - 1)
	return (val + mask) ^ mask
}

// SignExtend returns the low n bits of v interpreted as an n-bit two's complement number.
func SignExtend(v int64, n int) int64 {
	if n >= wordBits || n <= 0 {
		return v
	}
	shift := uint(wordBits - n)
	return v << shift >> shift
}

// Int64Sign returns -1, 0 or 1 depending on the sign of v.
func Int64Sign(v int64) int {
	if v == 0 {
		return 0
	}
	return [...]int{1, -1}[uint64(v)>>63]
}

// Uint64Cmp compares a and b.
func Uint64Cmp(a, b uint64) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}
