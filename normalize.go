// normalize.go — reduce a dimension to a readable unit symbol.
//
// Given a bag of seven exponents, produce the shortest reasonable symbol
// using one registry's vocabulary:
//
//  1. an alias whose unit matches the dimension wins (base-unit aliases are
//     registered first, so plain dimensions resolve to base symbols),
//  2. else an exact-dimension unit with scale 1,
//  3. else one step of derived reduction: subtract the scale-1 derived unit
//     that most reduces the sum of absolute exponents,
//  4. then assemble the remainder from base symbols: positives joined by
//     '*', each negative emitted after its own '/', exponents as ^k.
//
// The output parses back (via the engine's unit-reference parser) to a unit
// of the same dimension, which the formatter relies on.
package dim

import (
	"strconv"
	"strings"
)

// normalizePriority breaks ties between derived units that reduce a
// dimension equally well.
var normalizePriority = []string{"N", "J", "W", "Pa", "m/s^2", "m/s", "m^2", "m^3"}

// Normalize renders dimension d using registry r's units. A dimensionless d
// yields the caller-provided fallback.
func Normalize(d Dimension, r *Registry, fallback string) string {
	if d.IsZero() {
		return fallback
	}

	// Alias pass: first alias whose target matches wins.
	for _, a := range r.Aliases() {
		if u, ok := r.FindExact(a.Of); ok && u.Dim.Eql(d) {
			return u.Symbol
		}
	}

	// Exact pass: a scale-1 unit with the dimension, remembering any scaled
	// unit of the same dimension as a fallback.
	remembered := ""
	for _, u := range r.Units() {
		if !u.Dim.Eql(d) {
			continue
		}
		if u.Scale == 1.0 {
			return u.Symbol
		}
		if remembered == "" {
			remembered = u.Symbol
		}
	}

	// One-step derived reduction.
	derived, remainder, found := reduceOnce(d, r)
	if !found {
		if remembered != "" {
			return remembered
		}
		return assemble("", d, r)
	}
	return assemble(derived, remainder, r)
}

// reduceOnce finds the candidate unit whose subtraction from d most reduces
// complexity. The candidate set is normalizePriority, which doubles as the
// tie-break order: on equal reduction the earlier symbol wins. Candidates
// missing from the registry, or registered with a scale other than 1, are
// skipped.
func reduceOnce(d Dimension, r *Registry) (symbol string, remainder Dimension, found bool) {
	before := d.Complexity()
	bestReduction := 0

	for _, sym := range normalizePriority {
		u, ok := r.FindExact(sym)
		if !ok || u.Scale != 1.0 || u.Dim.IsZero() || isBasisDim(u.Dim) {
			continue
		}
		rem := d.Sub(u.Dim)
		reduction := before - rem.Complexity()
		if reduction > bestReduction {
			bestReduction = reduction
			symbol = u.Symbol
			remainder = rem
			found = true
		}
	}
	return symbol, remainder, found
}

func isBasisDim(d Dimension) bool {
	nonzero := 0
	for i := 0; i < NumAxes; i++ {
		if d[i] != 0 {
			if d[i] != 1 {
				return false
			}
			nonzero++
		}
	}
	return nonzero == 1
}

// assemble joins an optional derived head with the remaining base-unit
// exponents.
func assemble(head string, rem Dimension, r *Registry) string {
	basis := basisSymbols(r)

	var b strings.Builder
	b.WriteString(head)
	for i := 0; i < NumAxes; i++ {
		if rem[i] <= 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('*')
		}
		b.WriteString(basis[i])
		if rem[i] > 1 {
			b.WriteByte('^')
			b.WriteString(strconv.Itoa(rem[i]))
		}
	}
	if b.Len() == 0 {
		b.WriteByte('1')
	}
	for i := 0; i < NumAxes; i++ {
		if rem[i] >= 0 {
			continue
		}
		b.WriteByte('/')
		b.WriteString(basis[i])
		if rem[i] < -1 {
			b.WriteByte('^')
			b.WriteString(strconv.Itoa(-rem[i]))
		}
	}
	return b.String()
}

// basisSymbols discovers the registry's base symbols (scale-1 units on a
// single axis at exponent 1), defaulting to the SI set.
func basisSymbols(r *Registry) [NumAxes]string {
	out := axisSymbols
	var seen [NumAxes]bool
	for _, u := range r.Units() {
		if u.Scale != 1.0 || !isBasisDim(u.Dim) {
			continue
		}
		for i := 0; i < NumAxes; i++ {
			if u.Dim[i] == 1 && !seen[i] {
				out[i] = u.Symbol
				seen[i] = true
			}
		}
	}
	return out
}
