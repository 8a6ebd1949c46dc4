package mathx

import (
	"math"
	"testing"
)

func TestRoundValue(t *testing.T) {
	tests := []struct {
		name      string
		value     float64
		precision int
		want      float64
	}{
		{"pi to two places", 3.14159, 2, 3.14},
		{"binary below tie", 2.675, 2, 2.67},
		{"exact tie to even", 0.125, 2, 0.12},
		{"exact tie up to even", 0.375, 2, 0.38},
		{"half to even zero", 0.5, 0, 0},
		{"half to even two", 2.5, 0, 2},
		{"half to even four", 3.5, 0, 4},
		{"negative value", -1.2345, 3, -1.234},
		{"sum scenario", 18.1264, 2, 18.13},
		{"difference scenario", 1.8736, 2, 1.87},
		{"negative precision", 1234.5, -2, 1200},
		{"negative precision tie", 250, -2, 200},
		{"large precision keeps value", 0.1, 400, 0.1},
		{"very negative precision", 1e300, -400, 0},
		{"already rounded", 18.13, 2, 18.13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RoundValue(tt.value, tt.precision); got != tt.want {
				t.Errorf("RoundValue(%v, %d) = %v, want %v", tt.value, tt.precision, got, tt.want)
			}
		})
	}
}

func TestRoundValueSpecials(t *testing.T) {
	if got := RoundValue(math.NaN(), 2); !math.IsNaN(got) {
		t.Errorf("RoundValue(NaN) = %v", got)
	}
	if got := RoundValue(math.Inf(1), 2); !math.IsInf(got, 1) {
		t.Errorf("RoundValue(+Inf) = %v", got)
	}
	if got := RoundValue(math.Inf(-1), 2); !math.IsInf(got, -1) {
		t.Errorf("RoundValue(-Inf) = %v", got)
	}
	if got := RoundValue(-0.4, 0); got != 0 || !math.Signbit(got) {
		t.Errorf("RoundValue(-0.4, 0) = %v, want -0", got)
	}
}

func TestRoundValueIdempotent(t *testing.T) {
	values := []float64{3.14159, 2.675, -0.125, 1e-7, 123456.789, 0.1 + 0.2}
	for _, v := range values {
		for p := -3; p <= 6; p++ {
			once := RoundValue(v, p)
			if twice := RoundValue(once, p); twice != once {
				t.Errorf("RoundValue(RoundValue(%v, %d)) = %v, want %v", v, p, twice, once)
			}
		}
	}
}

func TestRoundInt(t *testing.T) {
	tests := []struct {
		value     int64
		precision int
		want      int64
	}{
		{42, 2, 42},
		{42, 0, 42},
		{15, -1, 20},
		{25, -1, 20},
		{-25, -1, -20},
		{-35, -1, -40},
		{1234, -2, 1200},
		{1250, -2, 1200},
		{7, -5, 0},
	}

	for _, tt := range tests {
		if got := RoundInt(tt.value, tt.precision); got != tt.want {
			t.Errorf("RoundInt(%d, %d) = %d, want %d", tt.value, tt.precision, got, tt.want)
		}
	}
}

func TestRoundIntExactOverflow(t *testing.T) {
	if _, ok := RoundIntExact(math.MaxInt64, -1); ok {
		t.Error("RoundIntExact(MaxInt64, -1) should overflow")
	}
	if got := RoundInt(math.MaxInt64, -1); got != math.MaxInt64 {
		t.Errorf("RoundInt(MaxInt64, -1) = %d, want saturation", got)
	}
	if got, ok := RoundIntExact(math.MinInt64, 0); !ok || got != math.MinInt64 {
		t.Errorf("RoundIntExact(MinInt64, 0) = %d, %v", got, ok)
	}
}

func TestRoundIntExactLargeNegativePrecision(t *testing.T) {
	tests := []struct {
		value     int64
		precision int
		want      int64
		ok        bool
	}{
		{5, -19, 0, true},
		{math.MaxInt64, -19, 0, false},
		{math.MaxInt64, -20, 0, true},
		{math.MinInt64, -20, 0, true},
		{5, -300000000, 0, true},
		{-5, -2000000000, 0, true},
		{5, math.MinInt, 0, true},
	}

	for _, tt := range tests {
		got, ok := RoundIntExact(tt.value, tt.precision)
		if got != tt.want || ok != tt.ok {
			t.Errorf("RoundIntExact(%d, %d) = %d, %v, want %d, %v",
				tt.value, tt.precision, got, ok, tt.want, tt.ok)
		}
	}
}

func TestPow10NegativeExponent(t *testing.T) {
	for _, n := range []int{3, -3} {
		if got := pow10(n).Int64(); got != 1000 {
			t.Errorf("pow10(%d) = %d, want 1000", n, got)
		}
	}
}
