// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fxp

import (
	"math/big"
	"sync"

	"github.com/avdva/fxp/internal/constants"
)

type constSet struct {
	once sync.Once

	pi, halfPi, quarterPi Value
	ln2, e, sqrt2         Value
}

// cache maps Format to *constSet.
var cache sync.Map

func constsOf(f Format) *constSet {
	v, found := cache.Load(f)
	if !found {
		v, _ = cache.LoadOrStore(f, &constSet{})
	}
	cs := v.(*constSet)
	cs.once.Do(func() {
		cs.pi = constValue(f, constants.Pi, 0)
		cs.halfPi = constValue(f, constants.Pi, 1)
		cs.quarterPi = constValue(f, constants.Pi, 2)
		cs.ln2 = constValue(f, constants.Ln2, 0)
		cs.e = constValue(f, constants.E, 0)
		cs.sqrt2 = constValue(f, constants.Sqrt2, 0)
	})
	return cs
}

// constValue returns c/2^k in the format f, where get(p) returns ⌊c·2^p⌋.
// Constants are irrational, so the discarded tail is never zero.
func constValue(f Format, get func(uint) *big.Int, k uint) Value {
	extra := f.mode.extraBits()
	var m *big.Int
	if p := uint(f.split) + extra; p >= k {
		m = get(p - k)
	} else {
		m = get(0)
		m.Rsh(m, k-p)
	}
	if extra != 0 {
		guarded := uint64(m.Bit(0)) | uint64(m.Bit(1))<<1
		m.Rsh(m, extra)
		if f.mode.adjust(guarded, true) != 0 {
			m.Add(m, bigOne)
		}
	}
	if m.BitLen() > f.Digits() {
		return f.Max()
	}
	return f.fromBig(m)
}

// Pi returns π in the format f.
func Pi(f Format) Value {
	return constsOf(f).pi
}

// Ln2 returns ln(2) in the format f.
func Ln2(f Format) Value {
	return constsOf(f).ln2
}

// E returns e in the format f.
func E(f Format) Value {
	return constsOf(f).e
}

// Sqrt2 returns √2 in the format f.
func Sqrt2(f Format) Value {
	return constsOf(f).sqrt2
}
