// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fxp

import (
	"golang.org/x/image/math/fixed"
)

// Formats of the golang.org/x/image/math/fixed types.
var (
	Int26_6Format  = MustFormat(25, -6, Fastest)
	Int52_12Format = MustFormat(51, -12, Fastest)
)

// FromInt26_6 returns x in the format f.
func (f Format) FromInt26_6(x fixed.Int26_6) Value {
	return Int26_6Format.fromBits(int64(x)).Convert(f)
}

// Int26_6 returns v as fixed.Int26_6 rounded by v's policy. The result wraps if it is out of range.
func (v Value) Int26_6() fixed.Int26_6 {
	return fixed.Int26_6(v.Convert(Int26_6Format.WithRounding(v.f.mode)).n)
}

// FromInt52_12 returns x in the format f.
func (f Format) FromInt52_12(x fixed.Int52_12) Value {
	return Int52_12Format.fromBits(int64(x)).Convert(f)
}

// Int52_12 returns v as fixed.Int52_12 rounded by v's policy. The result wraps if it is out of range.
func (v Value) Int52_12() fixed.Int52_12 {
	return fixed.Int52_12(v.Convert(Int52_12Format.WithRounding(v.f.mode)).n)
}

// FromPoint26_6 returns the coordinates of p in the format f.
func (f Format) FromPoint26_6(p fixed.Point26_6) (x, y Value) {
	return f.FromInt26_6(p.X), f.FromInt26_6(p.Y)
}

// Point26_6 returns a fixed.Point26_6 with the given coordinates.
func Point26_6(x, y Value) fixed.Point26_6 {
	return fixed.Point26_6{X: x.Int26_6(), Y: y.Int26_6()}
}
