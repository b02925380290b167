// catalog.go — the built-in unit catalogues: SI, Imperial, CGS, Industrial.
//
// Catalogue conventions:
//   - Base-unit aliases are registered first in each registry. The normalizer
//     returns the target symbol of the first alias whose unit matches a
//     dimension, so the base symbols must win over derived long names.
//   - Compound helper symbols (m/s, m/s^2, m^2, m^3) are registered with
//     scale 1 so the normalizer can use them directly; they are not reachable
//     from source text as single identifiers, which is fine.
//   - Celsius lives in SI as "C", Fahrenheit in Imperial as "F". Both are
//     affine: canonical = (v + offset) * scale.
package dim

// SI returns the SI registry: the seven base units, common derived units and
// the full decimal prefix set.
func SI() *Registry {
	r := NewRegistry("SI")

	r.AddUnit(Unit{Symbol: "m", Dim: BaseDim(AxisLength), Scale: 1})
	r.AddUnit(Unit{Symbol: "kg", Dim: BaseDim(AxisMass), Scale: 1})
	r.AddUnit(Unit{Symbol: "s", Dim: BaseDim(AxisTime), Scale: 1})
	r.AddUnit(Unit{Symbol: "A", Dim: BaseDim(AxisCurrent), Scale: 1})
	r.AddUnit(Unit{Symbol: "K", Dim: BaseDim(AxisTemperature), Scale: 1})
	r.AddUnit(Unit{Symbol: "mol", Dim: BaseDim(AxisAmount), Scale: 1})
	r.AddUnit(Unit{Symbol: "cd", Dim: BaseDim(AxisLuminosity), Scale: 1})

	// Base aliases first: the normalizer's alias pass scans in insertion
	// order and must resolve plain dimensions to the base symbols.
	r.AddAlias("meter", "m")
	r.AddAlias("metre", "m")
	r.AddAlias("kilogram", "kg")
	r.AddAlias("second", "s")
	r.AddAlias("sec", "s")
	r.AddAlias("ampere", "A")
	r.AddAlias("amp", "A")
	r.AddAlias("kelvin", "K")
	r.AddAlias("mole", "mol")
	r.AddAlias("candela", "cd")

	// Derived units with scale 1; these drive the normalizer's reduction.
	r.AddUnit(Unit{Symbol: "Hz", Dim: Dim(0, 0, -1, 0, 0, 0, 0), Scale: 1})
	r.AddUnit(Unit{Symbol: "N", Dim: Dim(1, 1, -2, 0, 0, 0, 0), Scale: 1})
	r.AddUnit(Unit{Symbol: "Pa", Dim: Dim(-1, 1, -2, 0, 0, 0, 0), Scale: 1})
	r.AddUnit(Unit{Symbol: "J", Dim: Dim(2, 1, -2, 0, 0, 0, 0), Scale: 1})
	r.AddUnit(Unit{Symbol: "W", Dim: Dim(2, 1, -3, 0, 0, 0, 0), Scale: 1})
	r.AddUnit(Unit{Symbol: "V", Dim: Dim(2, 1, -3, -1, 0, 0, 0), Scale: 1})
	r.AddUnit(Unit{Symbol: "m/s", Dim: Dim(1, 0, -1, 0, 0, 0, 0), Scale: 1})
	r.AddUnit(Unit{Symbol: "m/s^2", Dim: Dim(1, 0, -2, 0, 0, 0, 0), Scale: 1})
	r.AddUnit(Unit{Symbol: "m^2", Dim: Dim(2, 0, 0, 0, 0, 0, 0), Scale: 1})
	r.AddUnit(Unit{Symbol: "m^3", Dim: Dim(3, 0, 0, 0, 0, 0, 0), Scale: 1})

	// Scaled and affine units.
	r.AddUnit(Unit{Symbol: "g", Dim: BaseDim(AxisMass), Scale: 1e-3})
	r.AddUnit(Unit{Symbol: "t", Dim: BaseDim(AxisMass), Scale: 1e3})
	r.AddUnit(Unit{Symbol: "min", Dim: BaseDim(AxisTime), Scale: 60})
	r.AddUnit(Unit{Symbol: "h", Dim: BaseDim(AxisTime), Scale: 3600})
	r.AddUnit(Unit{Symbol: "L", Dim: Dim(3, 0, 0, 0, 0, 0, 0), Scale: 1e-3})
	r.AddUnit(Unit{Symbol: "C", Dim: BaseDim(AxisTemperature), Scale: 1, Offset: 273.15})

	r.AddAlias("Newton", "N")
	r.AddAlias("newton", "N")
	r.AddAlias("Pascal", "Pa")
	r.AddAlias("pascal", "Pa")
	r.AddAlias("Joule", "J")
	r.AddAlias("joule", "J")
	r.AddAlias("Watt", "W")
	r.AddAlias("watt", "W")
	r.AddAlias("Hertz", "Hz")
	r.AddAlias("hertz", "Hz")
	r.AddAlias("Volt", "V")
	r.AddAlias("volt", "V")
	r.AddAlias("gram", "g")
	r.AddAlias("tonne", "t")
	r.AddAlias("minute", "min")
	r.AddAlias("hour", "h")
	r.AddAlias("degC", "C")
	r.AddAlias("celsius", "C")

	for _, p := range []Prefix{
		{"Y", 1e24}, {"Z", 1e21}, {"E", 1e18}, {"P", 1e15}, {"T", 1e12},
		{"G", 1e9}, {"M", 1e6}, {"k", 1e3}, {"h", 1e2}, {"da", 1e1},
		{"d", 1e-1}, {"c", 1e-2}, {"m", 1e-3}, {"µ", 1e-6}, {"u", 1e-6},
		{"n", 1e-9}, {"p", 1e-12}, {"f", 1e-15}, {"a", 1e-18},
		{"z", 1e-21}, {"y", 1e-24},
	} {
		r.AddPrefix(p.Symbol, p.Factor)
	}

	return r
}

// Imperial returns the Imperial/US-customary registry. No prefixes.
func Imperial() *Registry {
	r := NewRegistry("Imperial")

	r.AddUnit(Unit{Symbol: "in", Dim: BaseDim(AxisLength), Scale: 0.0254})
	r.AddUnit(Unit{Symbol: "ft", Dim: BaseDim(AxisLength), Scale: 0.3048})
	r.AddUnit(Unit{Symbol: "yd", Dim: BaseDim(AxisLength), Scale: 0.9144})
	r.AddUnit(Unit{Symbol: "mi", Dim: BaseDim(AxisLength), Scale: 1609.344})
	r.AddUnit(Unit{Symbol: "nmi", Dim: BaseDim(AxisLength), Scale: 1852})
	r.AddUnit(Unit{Symbol: "acre", Dim: Dim(2, 0, 0, 0, 0, 0, 0), Scale: 4046.8564224})
	r.AddUnit(Unit{Symbol: "gal", Dim: Dim(3, 0, 0, 0, 0, 0, 0), Scale: 3.785411784e-3})
	r.AddUnit(Unit{Symbol: "pt", Dim: Dim(3, 0, 0, 0, 0, 0, 0), Scale: 4.73176473e-4})
	r.AddUnit(Unit{Symbol: "oz", Dim: BaseDim(AxisMass), Scale: 0.028349523125})
	r.AddUnit(Unit{Symbol: "lb", Dim: BaseDim(AxisMass), Scale: 0.45359237})
	r.AddUnit(Unit{Symbol: "st", Dim: BaseDim(AxisMass), Scale: 6.35029318})
	r.AddUnit(Unit{Symbol: "ton", Dim: BaseDim(AxisMass), Scale: 907.18474})
	r.AddUnit(Unit{Symbol: "mph", Dim: Dim(1, 0, -1, 0, 0, 0, 0), Scale: 0.44704})
	r.AddUnit(Unit{Symbol: "kn", Dim: Dim(1, 0, -1, 0, 0, 0, 0), Scale: 0.514444444444})
	// K = (F + 459.67) * 5/9
	r.AddUnit(Unit{Symbol: "F", Dim: BaseDim(AxisTemperature), Scale: 5.0 / 9.0, Offset: 459.67})

	r.AddAlias("inch", "in")
	r.AddAlias("foot", "ft")
	r.AddAlias("feet", "ft")
	r.AddAlias("yard", "yd")
	r.AddAlias("mile", "mi")
	r.AddAlias("gallon", "gal")
	r.AddAlias("pint", "pt")
	r.AddAlias("ounce", "oz")
	r.AddAlias("pound", "lb")
	r.AddAlias("stone", "st")
	r.AddAlias("knot", "kn")
	r.AddAlias("degF", "F")
	r.AddAlias("fahrenheit", "F")

	return r
}

// CGS returns the centimetre-gram-second registry. No prefixes; centi and
// friends belong to SI.
func CGS() *Registry {
	r := NewRegistry("CGS")

	r.AddUnit(Unit{Symbol: "dyn", Dim: Dim(1, 1, -2, 0, 0, 0, 0), Scale: 1e-5})
	r.AddUnit(Unit{Symbol: "erg", Dim: Dim(2, 1, -2, 0, 0, 0, 0), Scale: 1e-7})
	r.AddUnit(Unit{Symbol: "Ba", Dim: Dim(-1, 1, -2, 0, 0, 0, 0), Scale: 0.1})
	r.AddUnit(Unit{Symbol: "P", Dim: Dim(-1, 1, -1, 0, 0, 0, 0), Scale: 0.1})
	r.AddUnit(Unit{Symbol: "St", Dim: Dim(2, 0, -1, 0, 0, 0, 0), Scale: 1e-4})
	r.AddUnit(Unit{Symbol: "Gal", Dim: Dim(1, 0, -2, 0, 0, 0, 0), Scale: 0.01})
	r.AddUnit(Unit{Symbol: "G", Dim: Dim(0, 1, -2, -1, 0, 0, 0), Scale: 1e-4})

	r.AddAlias("dyne", "dyn")
	r.AddAlias("barye", "Ba")
	r.AddAlias("poise", "P")
	r.AddAlias("stokes", "St")
	r.AddAlias("gauss", "G")

	return r
}

// Industrial returns everyday engineering units: pressure, energy, power.
// It carries the k/M/G prefixes so kWh, MWh and kcal resolve.
func Industrial() *Registry {
	r := NewRegistry("Industrial")

	r.AddUnit(Unit{Symbol: "bar", Dim: Dim(-1, 1, -2, 0, 0, 0, 0), Scale: 1e5})
	r.AddUnit(Unit{Symbol: "atm", Dim: Dim(-1, 1, -2, 0, 0, 0, 0), Scale: 101325})
	r.AddUnit(Unit{Symbol: "Torr", Dim: Dim(-1, 1, -2, 0, 0, 0, 0), Scale: 101325.0 / 760.0})
	r.AddUnit(Unit{Symbol: "mmHg", Dim: Dim(-1, 1, -2, 0, 0, 0, 0), Scale: 133.322387415})
	r.AddUnit(Unit{Symbol: "psi", Dim: Dim(-1, 1, -2, 0, 0, 0, 0), Scale: 6894.757293168361})
	r.AddUnit(Unit{Symbol: "cal", Dim: Dim(2, 1, -2, 0, 0, 0, 0), Scale: 4.184})
	r.AddUnit(Unit{Symbol: "Wh", Dim: Dim(2, 1, -2, 0, 0, 0, 0), Scale: 3600})
	r.AddUnit(Unit{Symbol: "hp", Dim: Dim(2, 1, -3, 0, 0, 0, 0), Scale: 745.6998715822702})
	r.AddUnit(Unit{Symbol: "ha", Dim: Dim(2, 0, 0, 0, 0, 0, 0), Scale: 1e4})
	r.AddUnit(Unit{Symbol: "rpm", Dim: Dim(0, 0, -1, 0, 0, 0, 0), Scale: 1.0 / 60.0})

	r.AddAlias("atmosphere", "atm")
	r.AddAlias("torr", "Torr")
	r.AddAlias("calorie", "cal")
	r.AddAlias("horsepower", "hp")
	r.AddAlias("hectare", "ha")

	r.AddPrefix("k", 1e3)
	r.AddPrefix("M", 1e6)
	r.AddPrefix("G", 1e9)

	return r
}
