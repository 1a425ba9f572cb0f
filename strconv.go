// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fxp

import (
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

var bigFive = big.NewInt(5)

// toDecimal returns the exact decimal value of v.
// Every binary fraction has a finite decimal expansion: m/2^n == m*5^n/10^n.
func (v Value) toDecimal() decimal.Decimal {
	m := v.Bits()
	if v.f.split == 0 {
		return decimal.NewFromBigInt(m, 0)
	}
	m.Mul(m, new(big.Int).Exp(bigFive, big.NewInt(int64(v.f.split)), nil))
	return decimal.NewFromBigInt(m, -v.f.split)
}

// String returns the exact decimal representation of v.
func (v Value) String() string {
	return v.toDecimal().String()
}

// StringFixed returns v rounded to 'places' decimal digits after the point.
// NearestEven values use banker's rounding, Fastest values are truncated.
func (v Value) StringFixed(places int32) string {
	d := v.toDecimal()
	if v.f.mode == NearestEven {
		return d.StringFixedBank(places)
	}
	return d.Truncate(places).StringFixed(places)
}

// Parse converts a decimal string, optionally with an exponent, like "-1.25e3",
// into a value of the format f. The value is rounded by f's policy, and wraps if it is out of range.
func (f Format) Parse(s string) (Value, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Value{}, fmt.Errorf("parse %q: %w", s, err)
	}
	return f.fromDecimal(d), nil
}

// MustParse is like Parse, but panics on errors.
func (f Format) MustParse(s string) Value {
	v, err := f.Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

func (f Format) fromDecimal(d decimal.Decimal) Value {
	scaled := d.Mul(decimal.NewFromBigInt(pow2(uint(f.split)), 0))
	if f.mode == NearestEven {
		scaled = scaled.RoundBank(0)
	}
	// BigInt truncates the fractional part.
	return f.fromBig(scaled.BigInt())
}

// Format implements fmt.Formatter.
// Supported verbs are:
//
//	%v, %s     exact decimal value, %#v is GoString
//	%f, %F     exact decimal value, or rounded to the precision if set, like %.3f
//	%e, %E, %g, %G  value converted to float64
//	%b         two's complement bits
//	%d         integral part
func (v Value) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		if verb == 'v' && s.Flag('#') {
			_, _ = io.WriteString(s, v.GoString())
			return
		}
		writePadded(s, v.withSign(s, v.String()))
	case 'f', 'F':
		str := v.String()
		if prec, ok := s.Precision(); ok {
			str = v.StringFixed(int32(prec))
		}
		writePadded(s, v.withSign(s, str))
	case 'e', 'E', 'g', 'G':
		fmt.Fprintf(s, fmt.FormatString(s, verb), v.Float64())
	case 'b':
		writePadded(s, v.BitString())
	case 'd':
		fmt.Fprintf(s, fmt.FormatString(s, verb), v.intPart())
	default:
		fmt.Fprintf(s, "%%!%c(fxp.Value=%s)", verb, v.String())
	}
}

func (v Value) withSign(s fmt.State, str string) string {
	if s.Flag('+') && v.Sign() >= 0 {
		return "+" + str
	}
	return str
}

func writePadded(s fmt.State, str string) {
	if w, ok := s.Width(); ok && len(str) < w {
		pad := strings.Repeat(" ", w-len(str))
		if s.Flag('-') {
			str += pad
		} else {
			str = pad + str
		}
	}
	_, _ = io.WriteString(s, str)
}
