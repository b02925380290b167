// format.go — render evaluated values as output text.
//
// A quantity stores its canonical magnitude; the display conversion happens
// here. The quantity's display-unit string is resolved back through the
// engine (it may be a compound like kg/d, or a user constant), and the
// canonical value is converted into it — affinely when the string is one
// bare unit at exponent 1, multiplicatively otherwise. If the string does
// not resolve, the canonical magnitude is printed as-is.
package dim

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// autoPrefixes are the power-of-1000 prefixes auto mode may scale with.
var autoPrefixes = []Prefix{
	{"Y", 1e24}, {"Z", 1e21}, {"E", 1e18}, {"P", 1e15}, {"T", 1e12},
	{"G", 1e9}, {"M", 1e6}, {"k", 1e3},
	{"m", 1e-3}, {"µ", 1e-6}, {"n", 1e-9}, {"p", 1e-12},
	{"f", 1e-15}, {"a", 1e-18}, {"z", 1e-21}, {"y", 1e-24},
}

// FormatValue renders any evaluator result.
func (e *Engine) FormatValue(v Value) string {
	switch v.Tag {
	case VTNum:
		return numText(v.Num())
	case VTBool:
		return strconv.FormatBool(v.Data.(bool))
	case VTQuantity:
		return e.FormatQuantity(v.Quant())
	default:
		return ""
	}
}

// FormatQuantity renders a quantity in its display unit and format mode.
func (e *Engine) FormatQuantity(q Quantity) string {
	disp := q.Value
	unit := q.Unit
	if ref, ok := e.parseUnitRef(q.Unit); ok && ref.dim.Eql(q.Dim) {
		if ref.single != nil {
			disp = ref.single.FromCanonical(q.Value)
		} else {
			disp = q.Value / ref.factor
		}
	}

	var text string
	switch q.Mode {
	case ModeAuto:
		scaled, prefix := autoScale(disp)
		text = fmt.Sprintf("%.3f", scaled)
		unit = prefix + unit
	case ModeScientific:
		text = expNotation(disp, 1)
	case ModeEngineering:
		text = expNotation(disp, 3)
	default:
		text = numText(disp)
	}

	if q.IsDelta {
		text = "Δ" + text
	}
	if unit == "" {
		return text
	}
	return text + " " + unit
}

// numText prints integral magnitudes bare and everything else with three
// decimals.
func numText(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return fmt.Sprintf("%.3f", v)
}

// autoScale normalizes v into [1, 1000) with the best decimal prefix.
func autoScale(v float64) (float64, string) {
	if v == 0 {
		return 0, ""
	}
	abs := math.Abs(v)
	if abs >= 1 && abs < 1000 {
		return v, ""
	}
	for _, p := range autoPrefixes {
		scaled := abs / p.Factor
		if scaled >= 1 && scaled < 1000 {
			return v / p.Factor, p.Symbol
		}
	}
	return v, ""
}

// expNotation renders v with a three-decimal mantissa and an exponent that
// is a multiple of step (1 for scientific, 3 for engineering).
func expNotation(v float64, step int) string {
	if v == 0 {
		return "0.000e0"
	}
	exp := int(math.Floor(math.Log10(math.Abs(v))))
	if step > 1 {
		exp = int(math.Floor(float64(exp)/float64(step))) * step
	}
	mant := v / math.Pow(10, float64(exp))
	// Guard against log10 edge cases pushing the mantissa out of range.
	for math.Abs(mant) >= math.Pow(10, float64(step)) {
		exp += step
		mant = v / math.Pow(10, float64(exp))
	}
	for math.Abs(mant) < 1 {
		exp -= step
		mant = v / math.Pow(10, float64(exp))
	}
	return fmt.Sprintf("%.3fe%d", mant, exp)
}

// unitRef is a resolved display-unit string.
type unitRef struct {
	dim    Dimension
	factor float64
	single *Unit // set when the string is one bare symbol at exponent 1
}

// parseUnitRef resolves a display-unit string such as "m", "kg/d", "m^2" or
// "1/s^2". The grammar is deliberately more lenient than the expression
// grammar: it exists only for strings the engine itself produced or
// accepted, and additionally allows a leading "1/" and negative exponents.
func (e *Engine) parseUnitRef(s string) (unitRef, bool) {
	if strings.TrimSpace(s) == "" {
		return unitRef{}, false
	}
	toks, err := NewLexer(s).Scan()
	if err != nil {
		return unitRef{}, false
	}

	ref := unitRef{factor: 1}
	i := 0
	sign := 1
	terms := 0

	// Optional "1/" head for inverse dimensions.
	if toks[i].Type == Number && toks[i].Literal.(float64) == 1 &&
		i+1 < len(toks) && toks[i+1].Type == Slash {
		i += 2
		sign = -1
	}

	var onlyUnit *Unit
	for {
		if toks[i].Type != Identifier {
			return unitRef{}, false
		}
		name, exp, hasSup, supErr := splitSuperscript(toks[i].Lexeme)
		if supErr != nil {
			return unitRef{}, false
		}
		i++
		if !hasSup {
			exp = 1
			if toks[i].Type == Caret {
				i++
				neg := false
				if toks[i].Type == Minus {
					neg = true
					i++
				}
				if toks[i].Type != Number {
					return unitRef{}, false
				}
				exp = int(toks[i].Literal.(float64))
				if neg {
					exp = -exp
				}
				i++
			}
		}

		u, ok := e.resolveUnit(name)
		if !ok {
			return unitRef{}, false
		}
		ref.dim = ref.dim.Add(u.Dim.Pow(sign * exp))
		ref.factor *= math.Pow(u.Factor(), float64(sign*exp))
		terms++
		if terms == 1 && sign == 1 && exp == 1 {
			cp := u
			onlyUnit = &cp
		}

		switch toks[i].Type {
		case Star:
			sign = 1
			i++
		case Slash:
			sign = -1
			i++
		case Eof:
			if terms == 1 && onlyUnit != nil {
				ref.single = onlyUnit
			}
			return ref, true
		default:
			return unitRef{}, false
		}
	}
}
