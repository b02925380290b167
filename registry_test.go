// registry_test.go
package dim

import (
	"math"
	"testing"
)

func Test_Registry_Exact_Beats_Alias_Beats_Prefix(t *testing.T) {
	r := NewRegistry("test")
	r.AddUnit(Unit{Symbol: "x", Dim: BaseDim(AxisLength), Scale: 2})
	r.AddUnit(Unit{Symbol: "kx", Dim: BaseDim(AxisLength), Scale: 7})
	r.AddAlias("ex", "x")
	r.AddPrefix("k", 1e3)

	// Exact unit beats prefix expansion of k+x.
	u, ok := r.Find("kx")
	if !ok || u.Scale != 7 {
		t.Fatalf("Find(kx) = %+v, %v; want exact unit scale 7", u, ok)
	}

	// Alias resolves without prefix expansion.
	u, ok = r.FindExact("ex")
	if !ok || u.Symbol != "x" {
		t.Fatalf("FindExact(ex) = %+v, %v", u, ok)
	}
}

func Test_Registry_Prefix_Expansion(t *testing.T) {
	si := SI()
	u, ok := si.Find("km")
	if !ok {
		t.Fatalf("km did not resolve")
	}
	if u.Symbol != "km" || u.Scale != 1000 {
		t.Fatalf("km = %+v", u)
	}
	if !u.Dim.Eql(BaseDim(AxisLength)) {
		t.Fatalf("km dimension = %v", u.Dim)
	}
}

func Test_Registry_Prefix_Expansion_Property(t *testing.T) {
	si := SI()
	base, _ := si.FindExact("m")
	for _, p := range si.Prefixes() {
		u, ok := si.Find(p.Symbol + "m")
		if !ok {
			t.Fatalf("%sm did not resolve", p.Symbol)
		}
		want := base.Scale * p.Factor
		if math.Abs(u.Scale-want) > 1e-18*want {
			t.Fatalf("%sm scale = %g, want %g", p.Symbol, u.Scale, want)
		}
	}
}

func Test_Registry_Longest_Prefix_Wins(t *testing.T) {
	si := SI()
	u, ok := si.Find("dam")
	if !ok || u.Scale != 10 {
		t.Fatalf("dam = %+v, %v; want deca-meter scale 10", u, ok)
	}
}

func Test_Registry_Prefix_Keeps_Base_Offset(t *testing.T) {
	r := NewRegistry("test")
	r.AddUnit(Unit{Symbol: "C", Dim: BaseDim(AxisTemperature), Scale: 1, Offset: 273.15})
	r.AddPrefix("m", 1e-3)
	u, ok := r.Find("mC")
	if !ok {
		t.Fatalf("mC did not resolve")
	}
	if u.Offset != 273.15 || u.Scale != 1e-3 {
		t.Fatalf("mC = %+v", u)
	}
}

func Test_Registry_Prefixes_Do_Not_Cross_Registries(t *testing.T) {
	// "mi" must not expand to milli-inch inside SI: "in" is Imperial-only.
	if _, ok := SI().Find("mi"); ok {
		t.Fatalf("SI resolved mi; prefix expansion crossed registries")
	}
	u, ok := Imperial().Find("mi")
	if !ok || u.Scale != 1609.344 {
		t.Fatalf("Imperial mi = %+v, %v", u, ok)
	}
}

func Test_Registry_Replacing_Unit_Keeps_Order(t *testing.T) {
	r := NewRegistry("test")
	r.AddUnit(Unit{Symbol: "a", Dim: BaseDim(AxisLength), Scale: 1})
	r.AddUnit(Unit{Symbol: "b", Dim: BaseDim(AxisLength), Scale: 2})
	r.AddUnit(Unit{Symbol: "a", Dim: BaseDim(AxisLength), Scale: 3})

	units := r.Units()
	if len(units) != 2 || units[0].Symbol != "a" || units[0].Scale != 3 {
		t.Fatalf("units = %+v", units)
	}
}
