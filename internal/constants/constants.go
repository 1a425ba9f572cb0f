// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package constants provides π, ln2, e and √2 as scaled integers
// at an arbitrary binary precision.
package constants

import (
	"math/big"
	"sync"
)

// TableBits is the precision served from the literal tables.
const TableBits = 1024

// guardBits is the extra precision used when a constant has to be computed.
const guardBits = 64

var (
	pi = constant{
		table: mustHex("3243f6a8885a308d313198a2e03707344a4093822299f31d0082efa98ec4e6c8" +
			"9452821e638d01377be5466cf34e90c6cc0ac29b7c97c50dd3f84d5b5b547091" +
			"79216d5d98979fb1bd1310ba698dfb5ac2ffd72dbd01adfb7b8e1afed6a267e9" +
			"6ba7c9045f12c7f9924a19947b3916cf70801f2e2858efc16636920d871574e6" +
			"9"),
		compute: computePi,
	}
	ln2 = constant{
		table: mustHex("b17217f7d1cf79abc9e3b39803f2f6af40f343267298b62d8a0d175b8baafa2b" +
			"e7b876206debac98559552fb4afa1b10ed2eae35c138214427573b291169b825" +
			"3e96ca16224ae8c51acbda11317c387eb9ea9bc3b136603b256fa0ec7657f74b" +
			"72ce87b19d6548caf5dfa6bd38303248655fa1872f20e3a2da2d97c50f3fd5c6"),
		compute: computeLn2,
	}
	e = constant{
		table: mustHex("2b7e151628aed2a6abf7158809cf4f3c762e7160f38b4da56a784d9045190cfe" +
			"f324e7738926cfbe5f4bf8d8d8c31d763da06c80abb1185eb4f7c7b5757f5958" +
			"490cfd47d7c19bb42158d9554f7b46bced55c4d79fd5f24d6613c31c3839a2dd" +
			"f8a9a276bcfbfa1c877c56284dab79cd4c2b3293d20e9e5eaf02ac60acc93ed8" +
			"7"),
		compute: computeE,
	}
	sqrt2 = constant{
		table: mustHex("16a09e667f3bcc908b2fb1366ea957d3e3adec17512775099da2f590b0667322" +
			"a95f90608757145875163fcdfb907b6721ee950bc8738f694f0090e6c7bf44ed" +
			"1a4405d0e855e3e9ca60b38c0237866f7956379222d108b148c1578e45ef89c6" +
			"78dab5147176fd3b99654c68663e7909bea5e241f06dcb05dd54941132081949" +
			"5"),
		compute: computeSqrt2,
	}
)

// Pi returns ⌊π·2^prec⌋.
func Pi(prec uint) *big.Int {
	return pi.floor(prec)
}

// Ln2 returns ⌊ln(2)·2^prec⌋.
func Ln2(prec uint) *big.Int {
	return ln2.floor(prec)
}

// E returns ⌊e·2^prec⌋.
func E(prec uint) *big.Int {
	return e.floor(prec)
}

// Sqrt2 returns ⌊√2·2^prec⌋.
func Sqrt2(prec uint) *big.Int {
	return sqrt2.floor(prec)
}

type constant struct {
	table   *big.Int
	compute func(prec uint) *big.Float

	mu   sync.Mutex
	wide map[uint]*big.Int
}

func (c *constant) floor(prec uint) *big.Int {
	if prec <= TableBits {
		return new(big.Int).Rsh(c.table, TableBits-prec)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, found := c.wide[prec]; found {
		return new(big.Int).Set(v)
	}
	f := c.compute(prec + guardBits)
	f.SetMantExp(f, int(prec))
	v, _ := f.Int(nil)
	if c.wide == nil {
		c.wide = make(map[uint]*big.Int)
	}
	c.wide[prec] = v
	return new(big.Int).Set(v)
}

func mustHex(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("constants: bad literal " + s)
	}
	return v
}

func newFloat(prec uint) *big.Float {
	return new(big.Float).SetPrec(prec)
}

func iterations(prec uint) int {
	n := 1
	for p := uint(1); p < prec; p <<= 1 {
		n++
	}
	return n
}

// computePi runs the Gauss–Legendre AGM iteration.
func computePi(prec uint) *big.Float {
	one := newFloat(prec).SetInt64(1)
	two := newFloat(prec).SetInt64(2)
	a := newFloat(prec).Set(one)
	b := newFloat(prec).Sqrt(two)
	b.Quo(one, b)
	t := newFloat(prec).SetFloat64(0.25)
	p := newFloat(prec).Set(one)
	an, d := newFloat(prec), newFloat(prec)
	for i := iterations(prec); i > 0; i-- {
		an.Add(a, b)
		an.Quo(an, two)
		b.Mul(a, b)
		b.Sqrt(b)
		d.Sub(a, an)
		d.Mul(d, d)
		d.Mul(d, p)
		t.Sub(t, d)
		a.Set(an)
		p.Mul(p, two)
	}
	res := newFloat(prec).Add(a, b)
	res.Mul(res, res)
	t.Mul(t, newFloat(prec).SetInt64(4))
	return res.Quo(res, t)
}

// computeLn2 sums 2·atanh(1/3) = 2·Σ 1/((2k+1)·3^(2k+1)).
func computeLn2(prec uint) *big.Float {
	sum := newFloat(prec)
	pow := newFloat(prec).SetInt64(3)
	nine := newFloat(prec).SetInt64(9)
	term := newFloat(prec)
	for k := int64(1); ; k += 2 {
		term.Mul(pow, newFloat(prec).SetInt64(k))
		term.Quo(newFloat(prec).SetInt64(1), term)
		if term.Sign() == 0 || term.MantExp(nil) < -int(prec) {
			break
		}
		sum.Add(sum, term)
		pow.Mul(pow, nine)
	}
	return sum.Mul(sum, newFloat(prec).SetInt64(2))
}

// computeE sums Σ 1/k!.
func computeE(prec uint) *big.Float {
	sum := newFloat(prec).SetInt64(1)
	term := newFloat(prec).SetInt64(1)
	for k := int64(1); ; k++ {
		term.Quo(term, newFloat(prec).SetInt64(k))
		if term.Sign() == 0 || term.MantExp(nil) < -int(prec) {
			break
		}
		sum.Add(sum, term)
	}
	return sum
}

func computeSqrt2(prec uint) *big.Float {
	return newFloat(prec).Sqrt(newFloat(prec).SetInt64(2))
}
