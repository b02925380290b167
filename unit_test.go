// unit_test.go
package dim

import (
	"math"
	"testing"
)

func Test_Unit_Conversion_RoundTrip(t *testing.T) {
	units := []Unit{
		{Symbol: "m", Dim: BaseDim(AxisLength), Scale: 1},
		{Symbol: "mi", Dim: BaseDim(AxisLength), Scale: 1609.344},
		{Symbol: "C", Dim: BaseDim(AxisTemperature), Scale: 1, Offset: 273.15},
		{Symbol: "F", Dim: BaseDim(AxisTemperature), Scale: 5.0 / 9.0, Offset: 459.67},
	}
	for _, u := range units {
		for v := -1e6; v <= 1e6; v += 250000.5 {
			got := u.FromCanonical(u.ToCanonical(v))
			if math.Abs(got-v) > 1e-9*math.Max(1, math.Abs(v)) {
				t.Fatalf("%s: round trip of %g gave %g", u.Symbol, v, got)
			}
		}
	}
}

func Test_Unit_Celsius_To_Kelvin(t *testing.T) {
	c := Unit{Symbol: "C", Dim: BaseDim(AxisTemperature), Scale: 1, Offset: 273.15}
	if got := c.ToCanonical(10); math.Abs(got-283.15) > 1e-12 {
		t.Fatalf("10 C = %g K, want 283.15", got)
	}
}

func Test_Unit_Fahrenheit_To_Kelvin(t *testing.T) {
	f := Unit{Symbol: "F", Dim: BaseDim(AxisTemperature), Scale: 5.0 / 9.0, Offset: 459.67}
	if got := f.ToCanonical(212); math.Abs(got-373.15) > 1e-9 {
		t.Fatalf("212 F = %g K, want 373.15", got)
	}
	if got := f.FromCanonical(373.15); math.Abs(got-212) > 1e-9 {
		t.Fatalf("373.15 K = %g F, want 212", got)
	}
}

func Test_Unit_Factor_Ignores_Offset(t *testing.T) {
	f := Unit{Symbol: "F", Dim: BaseDim(AxisTemperature), Scale: 5.0 / 9.0, Offset: 459.67}
	if got := f.Factor(); got != 5.0/9.0 {
		t.Fatalf("Factor = %g, want 5/9", got)
	}
}
