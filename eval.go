// eval.go — tree-walking evaluator.
//
// The evaluator turns a parsed S-expression into a Number, Quantity or
// Boolean. It consults the engine for symbol resolution (constants first,
// then the built-in registries) and for dimension normalization. Runtime
// failures are raised as panics carrying a *RuntimeError and recovered at
// the statement boundary, mirroring the interpreter discipline this package
// grew out of.
package dim

import (
	"fmt"
	"math"
	"strconv"
)

// intExpTolerance decides when a float exponent counts as an integer.
const intExpTolerance = 1e-9

type evalPanic struct{ err *RuntimeError }

func fail(kind ErrKind, format string, args ...interface{}) {
	panic(evalPanic{&RuntimeError{Kind: kind, Msg: fmt.Sprintf(format, args...)}})
}

type evaluator struct {
	eng *Engine
}

// evalStmt evaluates one statement, converting runtime panics back into
// ordinary errors.
func (ev *evaluator) evalStmt(n S) (v Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			if ep, ok := r.(evalPanic); ok {
				v, err = Nil, ep.err
				return
			}
			panic(r)
		}
	}()
	return ev.eval(n), nil
}

func (ev *evaluator) eval(n S) Value {
	tag := n[0].(string)
	switch tag {
	case "num":
		return NumVal(n[1].(float64))

	case "group":
		return ev.eval(n[1].(S))

	case "unit", "cunit":
		return QuantVal(ev.evalUnit(n))

	case "apply":
		return QuantVal(ev.evalApply(n))

	case "unary":
		return ev.evalUnary(n[1].(string), ev.eval(n[2].(S)))

	case "binary":
		return ev.evalBinary(n)

	case "as":
		return QuantVal(ev.evalDisplay(n))

	case "assign":
		name := n[1].(string)
		val := ev.eval(n[2].(S))
		if val.Tag != VTQuantity {
			fail(ErrInvalidOperand, "cannot define '%s': value is not a quantity", name)
		}
		ev.eng.defineConstant(name, val.Quant())
		return val
	}
	fail(ErrUnsupportedOperator, "unsupported node '%s'", tag)
	return Nil
}

// evalUnit evaluates a unit or compound-unit node into a purely
// multiplicative quantity: the value is the canonical factor of one of the
// unit, affine offsets ignored.
func (ev *evaluator) evalUnit(n S) Quantity {
	switch n[0].(string) {
	case "unit":
		name := n[1].(string)
		exp := n[2].(int)
		u, ok := ev.eng.resolveUnit(name)
		if !ok {
			fail(ErrUndefinedVariable, "undefined unit or constant '%s'", name)
		}
		sym := name
		if exp != 1 {
			sym = name + "^" + strconv.Itoa(exp)
		}
		return Quantity{
			Value: math.Pow(u.Factor(), float64(exp)),
			Dim:   u.Dim.Pow(exp),
			Unit:  sym,
		}
	case "cunit":
		op := n[1].(string)
		lhs := ev.evalUnit(n[2].(S))
		rhs := ev.evalUnit(n[3].(S))
		if op == "*" {
			return Quantity{
				Value: lhs.Value * rhs.Value,
				Dim:   lhs.Dim.Add(rhs.Dim),
				Unit:  lhs.Unit + "*" + rhs.Unit,
			}
		}
		return Quantity{
			Value: lhs.Value / rhs.Value,
			Dim:   lhs.Dim.Sub(rhs.Dim),
			Unit:  lhs.Unit + "/" + rhs.Unit,
		}
	}
	fail(ErrUnsupportedOperator, "unsupported unit node")
	return Quantity{}
}

// evalApply binds a numeric literal to a unit expression. A bare unit term
// at exponent 1 converts affinely, so 10 C is 283.15 K; everything else is
// multiplicative.
func (ev *evaluator) evalApply(n S) Quantity {
	num := n[1].(S)[1].(float64)
	un := n[2].(S)

	if un[0].(string) == "unit" && un[2].(int) == 1 {
		name := un[1].(string)
		u, ok := ev.eng.resolveUnit(name)
		if !ok {
			fail(ErrUndefinedVariable, "undefined unit or constant '%s'", name)
		}
		return Quantity{
			Value: u.ToCanonical(num),
			Dim:   u.Dim,
			Unit:  name,
		}
	}

	uq := ev.evalUnit(un)
	return Quantity{
		Value: num * uq.Value,
		Dim:   uq.Dim,
		Unit:  ev.eng.normalizeDim(uq.Dim, uq.Unit),
	}
}

func (ev *evaluator) evalUnary(op string, operand Value) Value {
	switch op {
	case "-":
		switch operand.Tag {
		case VTNum:
			return NumVal(-operand.Num())
		case VTQuantity:
			q := operand.Quant()
			q.Value = -q.Value
			return QuantVal(q)
		}
		fail(ErrInvalidOperand, "operand of '-' must be a number or quantity")
	case "!":
		return BoolVal(!operand.Truthy())
	}
	fail(ErrUnsupportedOperator, "unsupported unary operator '%s'", op)
	return Nil
}

func (ev *evaluator) evalBinary(n S) Value {
	op := n[1].(string)

	// and/or short-circuit on truthiness.
	if op == "and" {
		lhs := ev.eval(n[2].(S))
		if !lhs.Truthy() {
			return BoolVal(false)
		}
		return BoolVal(ev.eval(n[3].(S)).Truthy())
	}
	if op == "or" {
		lhs := ev.eval(n[2].(S))
		if lhs.Truthy() {
			return BoolVal(true)
		}
		return BoolVal(ev.eval(n[3].(S)).Truthy())
	}

	lhs := ev.eval(n[2].(S))
	rhs := ev.eval(n[3].(S))

	switch op {
	case "+", "-":
		return ev.addSub(op, lhs, rhs)
	case "*":
		return ev.mul(lhs, rhs)
	case "/":
		return ev.div(lhs, rhs)
	case "^":
		return ev.pow(lhs, rhs)
	case ">", ">=", "<", "<=":
		return ev.compare(op, lhs, rhs)
	case "==":
		return BoolVal(valueEq(lhs, rhs))
	case "!=":
		return BoolVal(!valueEq(lhs, rhs))
	}
	fail(ErrUnsupportedOperator, "unsupported operator '%s'", op)
	return Nil
}

// addSub requires matching kinds: two numbers, or two quantities of equal
// dimension. The left operand's display unit wins.
func (ev *evaluator) addSub(op string, lhs, rhs Value) Value {
	if lhs.Tag == VTNum && rhs.Tag == VTNum {
		if op == "+" {
			return NumVal(lhs.Num() + rhs.Num())
		}
		return NumVal(lhs.Num() - rhs.Num())
	}
	if lhs.Tag == VTQuantity && rhs.Tag == VTQuantity {
		a, b := lhs.Quant(), rhs.Quant()
		if !a.Dim.Eql(b.Dim) {
			fail(ErrInvalidOperands, "dimension mismatch: %s vs %s", a.Dim, b.Dim)
		}
		out := a
		if op == "+" {
			out.Value = a.Value + b.Value
		} else {
			out.Value = a.Value - b.Value
		}
		return QuantVal(out)
	}
	fail(ErrInvalidOperands, "operands of '%s' must both be numbers or both be quantities", op)
	return Nil
}

func (ev *evaluator) mul(lhs, rhs Value) Value {
	switch {
	case lhs.Tag == VTNum && rhs.Tag == VTNum:
		return NumVal(lhs.Num() * rhs.Num())

	case lhs.Tag == VTNum && rhs.Tag == VTQuantity:
		q := rhs.Quant()
		q.Value *= lhs.Num()
		return QuantVal(q)

	case lhs.Tag == VTQuantity && rhs.Tag == VTNum:
		q := lhs.Quant()
		q.Value *= rhs.Num()
		return QuantVal(q)

	case lhs.Tag == VTQuantity && rhs.Tag == VTQuantity:
		a, b := lhs.Quant(), rhs.Quant()
		dim := a.Dim.Add(b.Dim)
		value := a.Value * b.Value
		if dim.IsZero() {
			return NumVal(value)
		}
		return QuantVal(Quantity{
			Value: value,
			Dim:   dim,
			Unit:  ev.eng.normalizeDim(dim, a.Unit+"*"+b.Unit),
			Mode:  a.Mode,
		})
	}
	fail(ErrInvalidOperands, "invalid operands of '*'")
	return Nil
}

func (ev *evaluator) div(lhs, rhs Value) Value {
	switch {
	case lhs.Tag == VTNum && rhs.Tag == VTNum:
		if rhs.Num() == 0 {
			fail(ErrDivisionByZero, "division by zero")
		}
		return NumVal(lhs.Num() / rhs.Num())

	case lhs.Tag == VTQuantity && rhs.Tag == VTNum:
		if rhs.Num() == 0 {
			fail(ErrDivisionByZero, "division by zero")
		}
		q := lhs.Quant()
		q.Value /= rhs.Num()
		return QuantVal(q)

	case lhs.Tag == VTNum && rhs.Tag == VTQuantity:
		b := rhs.Quant()
		if b.Value == 0 {
			fail(ErrDivisionByZero, "division by zero")
		}
		dim := Dimensionless.Sub(b.Dim)
		return QuantVal(Quantity{
			Value: lhs.Num() / b.Value,
			Dim:   dim,
			Unit:  ev.eng.normalizeDim(dim, ""),
		})

	case lhs.Tag == VTQuantity && rhs.Tag == VTQuantity:
		a, b := lhs.Quant(), rhs.Quant()
		if b.Value == 0 {
			fail(ErrDivisionByZero, "division by zero")
		}
		dim := a.Dim.Sub(b.Dim)
		value := a.Value / b.Value
		if dim.IsZero() {
			return NumVal(value)
		}
		return QuantVal(Quantity{
			Value: value,
			Dim:   dim,
			Unit:  ev.eng.normalizeDim(dim, a.Unit+"/"+b.Unit),
			Mode:  a.Mode,
		})
	}
	fail(ErrInvalidOperands, "invalid operands of '/'")
	return Nil
}

// pow requires a numeric exponent. Integer exponents scale the dimension
// directly; fractional ones must still produce integer exponents on every
// axis, or the operation fails with NonIntegerDim.
func (ev *evaluator) pow(lhs, rhs Value) Value {
	if rhs.Tag != VTNum {
		fail(ErrInvalidOperand, "exponent must be a number")
	}
	exp := rhs.Num()

	switch lhs.Tag {
	case VTNum:
		return NumVal(math.Pow(lhs.Num(), exp))
	case VTQuantity:
		q := lhs.Quant()
		var dim Dimension
		if rounded := math.Round(exp); math.Abs(exp-rounded) <= intExpTolerance {
			dim = q.Dim.Pow(int(rounded))
		} else {
			var err error
			dim, err = q.Dim.PowF(exp)
			if err != nil {
				fail(ErrNonIntegerDim, "%s", err)
			}
		}
		value := math.Pow(q.Value, exp)
		if dim.IsZero() {
			return NumVal(value)
		}
		return QuantVal(Quantity{
			Value: value,
			Dim:   dim,
			Unit:  ev.eng.normalizeDim(dim, ""),
			Mode:  q.Mode,
		})
	}
	fail(ErrInvalidOperand, "base of '^' must be a number or quantity")
	return Nil
}

func (ev *evaluator) compare(op string, lhs, rhs Value) Value {
	var a, b float64
	switch {
	case lhs.Tag == VTNum && rhs.Tag == VTNum:
		a, b = lhs.Num(), rhs.Num()
	case lhs.Tag == VTQuantity && rhs.Tag == VTQuantity:
		qa, qb := lhs.Quant(), rhs.Quant()
		if !qa.Dim.Eql(qb.Dim) {
			fail(ErrInvalidOperands, "dimension mismatch: %s vs %s", qa.Dim, qb.Dim)
		}
		a, b = qa.Value, qb.Value
	default:
		fail(ErrInvalidOperands, "operands of '%s' must both be numbers or both be quantities", op)
	}
	switch op {
	case ">":
		return BoolVal(a > b)
	case ">=":
		return BoolVal(a >= b)
	case "<":
		return BoolVal(a < b)
	case "<=":
		return BoolVal(a <= b)
	}
	fail(ErrUnsupportedOperator, "unsupported comparison '%s'", op)
	return Nil
}

// valueEq is per-variant equality: mismatched kinds are never equal;
// numbers use IEEE equality; quantities require identical dimension and
// identical canonical value.
func valueEq(a, b Value) bool {
	if a.Tag != b.Tag {
		return false
	}
	switch a.Tag {
	case VTNil:
		return true
	case VTBool:
		return a.Data.(bool) == b.Data.(bool)
	case VTNum:
		return a.Num() == b.Num()
	case VTQuantity:
		qa, qb := a.Quant(), b.Quant()
		return qa.Dim.Eql(qb.Dim) && qa.Value == qb.Value
	}
	return false
}

// evalDisplay handles the `expr as unitExpr [:mode]` form. The child must be
// a quantity whose dimension matches the target; the result keeps the
// canonical value and takes the user's target symbol verbatim as its display
// unit. The actual magnitude conversion happens in the formatter.
func (ev *evaluator) evalDisplay(n S) Quantity {
	child := ev.eval(n[1].(S))
	if child.Tag != VTQuantity {
		fail(ErrInvalidOperands, "'as' requires a quantity")
	}
	q := child.Quant()

	un := n[2].(S)
	target := ev.evalUnit(un)
	if !q.Dim.Eql(target.Dim) {
		fail(ErrInvalidOperands, "cannot display %s as %s: dimension mismatch (%s vs %s)",
			q.Unit, unitString(un), q.Dim, target.Dim)
	}

	q.Unit = unitString(un)
	q.Mode = ModeFromName(n[3].(string))
	return q
}

// unitString renders a unit-expression node back to its source-shaped text.
func unitString(n S) string {
	switch n[0].(string) {
	case "unit":
		name := n[1].(string)
		if exp := n[2].(int); exp != 1 {
			return name + "^" + strconv.Itoa(exp)
		}
		return name
	case "cunit":
		return unitString(n[2].(S)) + n[1].(string) + unitString(n[3].(S))
	}
	return ""
}
