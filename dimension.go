// dimension.go — the seven-exponent dimensional algebra.
//
// A Dimension is the exponent vector (L, M, T, I, Θ, N, J) over the SI base
// quantities: length, mass, time, electric current, thermodynamic temperature,
// amount of substance and luminous intensity. Quantities carry one of these
// vectors at runtime; arithmetic on quantities maps onto componentwise
// arithmetic here.
package dim

import (
	"fmt"
	"math"
	"strings"
)

// Axis indices into a Dimension.
const (
	AxisLength = iota
	AxisMass
	AxisTime
	AxisCurrent
	AxisTemperature
	AxisAmount
	AxisLuminosity

	NumAxes
)

// axisSymbols are the fallback base-unit symbols per axis, used when a
// registry does not supply its own basis (see normalize.go).
var axisSymbols = [NumAxes]string{"m", "kg", "s", "A", "K", "mol", "cd"}

// axisLetters name the axes in diagnostic output.
var axisLetters = [NumAxes]string{"L", "M", "T", "I", "Th", "N", "J"}

// Dimension is a vector of signed integer exponents, one per base quantity.
// The zero value is the dimensionless identity.
type Dimension [NumAxes]int

// Dimensionless is the identity element.
var Dimensionless = Dimension{}

// Dim builds a Dimension from explicit exponents in axis order.
func Dim(l, m, t, i, th, n, j int) Dimension {
	return Dimension{l, m, t, i, th, n, j}
}

// BaseDim returns the dimension with exponent 1 on a single axis.
func BaseDim(axis int) Dimension {
	var d Dimension
	d[axis] = 1
	return d
}

// Add returns the componentwise sum (the dimension of a product).
func (d Dimension) Add(o Dimension) Dimension {
	var out Dimension
	for i := 0; i < NumAxes; i++ {
		out[i] = d[i] + o[i]
	}
	return out
}

// Sub returns the componentwise difference (the dimension of a quotient).
func (d Dimension) Sub(o Dimension) Dimension {
	var out Dimension
	for i := 0; i < NumAxes; i++ {
		out[i] = d[i] - o[i]
	}
	return out
}

// Pow multiplies every exponent by k.
func (d Dimension) Pow(k int) Dimension {
	var out Dimension
	for i := 0; i < NumAxes; i++ {
		out[i] = d[i] * k
	}
	return out
}

// powFracTolerance bounds how far a scaled exponent may sit from an integer
// before PowF rejects it.
const powFracTolerance = 1e-9

// PowF multiplies every exponent by a fractional k. It succeeds only when
// every resulting component rounds to an integer within 1e-9; otherwise it
// fails, which surfaces to the user as a NonIntegerDim runtime error
// (e.g. (1 m)^0.5).
func (d Dimension) PowF(k float64) (Dimension, error) {
	var out Dimension
	for i := 0; i < NumAxes; i++ {
		scaled := float64(d[i]) * k
		rounded := math.Round(scaled)
		if math.Abs(scaled-rounded) > powFracTolerance {
			return Dimension{}, fmt.Errorf("exponent %g yields non-integer dimension", k)
		}
		out[i] = int(rounded)
	}
	return out, nil
}

// Eql reports structural equality.
func (d Dimension) Eql(o Dimension) bool { return d == o }

// IsZero reports whether d is dimensionless.
func (d Dimension) IsZero() bool { return d == Dimensionless }

// Complexity is the sum of absolute exponents. The normalizer uses it to
// score how much a derived unit simplifies a dimension.
func (d Dimension) Complexity() int {
	c := 0
	for i := 0; i < NumAxes; i++ {
		if d[i] < 0 {
			c -= d[i]
		} else {
			c += d[i]
		}
	}
	return c
}

// String renders the vector for diagnostics and `list` output, e.g. "L*T^-1".
// The dimensionless vector renders as "1".
func (d Dimension) String() string {
	if d.IsZero() {
		return "1"
	}
	var parts []string
	for i := 0; i < NumAxes; i++ {
		switch {
		case d[i] == 0:
		case d[i] == 1:
			parts = append(parts, axisLetters[i])
		default:
			parts = append(parts, fmt.Sprintf("%s^%d", axisLetters[i], d[i]))
		}
	}
	return strings.Join(parts, "*")
}
