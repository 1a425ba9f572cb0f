// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fxp

import (
	mu "github.com/avdva/fxp/internal/mathutil"
)

// Convert returns v in the format dst.
// If dst has at least as many fractional bits as v's format, the conversion
// is exact in the fractional part, otherwise it is rounded by dst's policy.
// The integral part wraps if it does not fit dst.
func (v Value) Convert(dst Format) Value {
	src := v.f
	if src == dst {
		return v
	}
	if v.b == nil && dst.native() {
		m, neg := v.mag()
		x := mu.From64(m)
		if dst.split >= src.split {
			x = x.Lsh(uint(dst.split - src.split))
		} else {
			x = dst.mode.shiftRight128(x, uint(src.split-dst.split))
		}
		return dst.fromMag(x, neg)
	}
	m, neg := v.bigMag()
	if dst.split >= src.split {
		m.Lsh(m, uint(dst.split-src.split))
	} else {
		m = dst.mode.shiftRightBig(m, uint(src.split-dst.split))
	}
	if neg {
		m.Neg(m)
	}
	return dst.fromBig(m)
}

// To is the same as Convert, but takes the format from another value.
func (v Value) To(like Value) Value {
	return v.Convert(like.f)
}
