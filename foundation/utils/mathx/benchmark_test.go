// File: benchmark_test.go
// Title: Performance Benchmarks for MathX Functions
// Description: Benchmarks for decimal rounding and angle conversion.
// Author: msto63
// Version: v0.3.0
// Created: 2026-09-28
// Modified: 2026-10-17
//
// Change History:
// - 2026-09-28 v0.1.0: Initial benchmark implementation
// - 2026-10-08 v0.2.0: RoundValue benchmarks
// - 2026-10-17 v0.3.0: Arithmetic benchmarks removed

package mathx

import (
	"testing"
)

func BenchmarkNewDecimalFromFloat(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = NewDecimalFromFloat(123.456789)
	}
}

func BenchmarkDecimalRound(b *testing.B) {
	d := NewDecimalFromFloat(123.456789)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = d.Round(2, RoundingModeHalfEven)
	}
}

func BenchmarkRoundValue(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = RoundValue(18.1264, 2)
	}
}

func BenchmarkRoundValueNegativePrecision(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = RoundValue(123456.789, -3)
	}
}

func BenchmarkRoundIntExact(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = RoundIntExact(123456789, -3)
	}
}

func BenchmarkAngleToRadians(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = AngleToRadians(180, UnitDegree)
	}
}
