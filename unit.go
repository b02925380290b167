// unit.go — units, aliases and prefixes.
//
// A Unit is a named conversion into canonical (SI) form. The conversion
// contract is
//
//	canonical = (v + Offset) * Scale
//	v         = canonical/Scale - Offset
//
// Units with a non-zero Offset are affine (Celsius, Fahrenheit). The offset
// is only meaningful at exponent 1; at any other exponent, and inside
// compound units, a unit acts purely multiplicatively through Factor.
package dim

// Unit converts between a display magnitude and the canonical magnitude.
type Unit struct {
	Symbol string
	Dim    Dimension
	Scale  float64 // must be > 0
	Offset float64 // non-zero only for affine units
}

// ToCanonical converts a magnitude expressed in this unit to canonical form.
func (u Unit) ToCanonical(v float64) float64 { return (v + u.Offset) * u.Scale }

// FromCanonical converts a canonical magnitude into this unit.
func (u Unit) FromCanonical(c float64) float64 { return c/u.Scale - u.Offset }

// Factor is the purely multiplicative canonical factor, ignoring any affine
// offset. It is what a unit contributes at exponents other than 1 and inside
// compound unit expressions.
func (u Unit) Factor() float64 { return u.Scale }

// IsAffine reports whether the unit carries an additive offset.
func (u Unit) IsAffine() bool { return u.Offset != 0 }

// Alias is a secondary name bound to a unit in the same registry,
// e.g. Newton -> N or degC -> C.
type Alias struct {
	Name string
	Of   string // symbol of the target unit
}

// Prefix is a multiplicative symbol prefix, e.g. k -> 1e3. Prefix lookup is
// restricted to the registry that declares the prefix.
type Prefix struct {
	Symbol string
	Factor float64
}
