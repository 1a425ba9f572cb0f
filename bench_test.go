// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fxp

import (
	"testing"

	of "github.com/robaho/fixed"
	"github.com/shopspring/decimal"
)

// benchFormat must stay native, so that the package builds with fxp_nobig.
var benchFormat = MustFormat(47, -16, Fastest)

func BenchmarkMulOtherFixed(b *testing.B) {
	f0 := of.NewF(123456789.9)
	f1 := of.NewF(1234.9)

	for i := 0; i < b.N; i++ {
		f0.Mul(f1)
	}
}

func BenchmarkMulFixed(b *testing.B) {
	f0 := benchFormat.FromFloat64(123456789.9)
	f1 := benchFormat.FromFloat64(1234.9)

	for i := 0; i < b.N; i++ {
		f0.Mul(f1)
	}
}

func BenchmarkMulFixedBig(b *testing.B) {
	if !bigIntSupport {
		b.Skip("big integer support is disabled")
	}
	wide := MustFormat(63, -64, NearestEven)
	f0 := wide.FromFloat64(123456789.9)
	f1 := wide.FromFloat64(1234.9)

	for i := 0; i < b.N; i++ {
		f0.Mul(f1)
	}
}

func BenchmarkMulDecimal(b *testing.B) {
	f0 := decimal.NewFromFloat(123456789.9)
	f1 := decimal.NewFromFloat(1234.9)

	for i := 0; i < b.N; i++ {
		f0.Mul(f1)
	}
}

func BenchmarkDivOtherFixed(b *testing.B) {
	f0 := of.NewF(123456789.9)
	f1 := of.NewF(1234.9)

	for i := 0; i < b.N; i++ {
		f0.Div(f1)
	}
}

func BenchmarkDivFixed(b *testing.B) {
	f0 := benchFormat.FromFloat64(123456789.9)
	f1 := benchFormat.FromFloat64(1234.9)

	for i := 0; i < b.N; i++ {
		f0.Quo(f1)
	}
}

func BenchmarkDivDecimal(b *testing.B) {
	f0 := decimal.NewFromFloat(123456789.9)
	f1 := decimal.NewFromFloat(1234.9)

	for i := 0; i < b.N; i++ {
		f0.Div(f1)
	}
}

func BenchmarkStringOtherFixed(b *testing.B) {
	f0 := of.NewF(123456789.9)
	var dummy int
	for i := 0; i < b.N; i++ {
		dummy += len(f0.String())
	}
	b.ReportMetric(float64(dummy), "dummy_metric")
}

func BenchmarkStringFixed(b *testing.B) {
	f0 := benchFormat.FromFloat64(123456789.9)
	var dummy int
	for i := 0; i < b.N; i++ {
		dummy += len(f0.StringFixed(8))
	}
	b.ReportMetric(float64(dummy), "dummy_metric")
}

func BenchmarkStringDecimal(b *testing.B) {
	f0 := decimal.NewFromFloat(123456789.9)
	var dummy int
	for i := 0; i < b.N; i++ {
		dummy += len(f0.String())
	}
	b.ReportMetric(float64(dummy), "dummy_metric")
}
