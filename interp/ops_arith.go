package interp

import (
	"math"

	"github.com/psi-lang/psi/object"
)

func (ip *Interp) opAdd() error { return ip.arith2("add", func(a, b float64) float64 { return a + b }) }
func (ip *Interp) opSub() error { return ip.arith2("sub", func(a, b float64) float64 { return a - b }) }
func (ip *Interp) opMul() error { return ip.arith2("mul", func(a, b float64) float64 { return a * b }) }

func (ip *Interp) opDiv() error {
	b, err := ip.popNumber("div")
	if err != nil {
		return err
	}
	a, err := ip.popNumber("div")
	if err != nil {
		return err
	}
	bf, _ := object.NumberValue(b)
	af, _ := object.NumberValue(a)
	if bf == 0 {
		return errf("div", "division by zero")
	}
	ip.push(object.Real(af / bf))
	return nil
}

func (ip *Interp) opIdiv() error {
	b, err := ip.popInt("idiv")
	if err != nil {
		return err
	}
	a, err := ip.popInt("idiv")
	if err != nil {
		return err
	}
	if b == 0 {
		return errf("idiv", "division by zero")
	}
	ip.push(object.Integer(intFloorDivTrunc(a, b)))
	return nil
}

func (ip *Interp) opMod() error {
	b, err := ip.popInt("mod")
	if err != nil {
		return err
	}
	a, err := ip.popInt("mod")
	if err != nil {
		return err
	}
	if b == 0 {
		return errf("mod", "division by zero")
	}
	ip.push(object.Integer(a % b))
	return nil
}

func (ip *Interp) opNeg() error {
	a, err := ip.popNumber("neg")
	if err != nil {
		return err
	}
	switch v := a.(type) {
	case object.Integer:
		ip.push(-v)
	case object.Real:
		ip.push(-v)
	}
	return nil
}

func (ip *Interp) opAbs() error {
	a, err := ip.popNumber("abs")
	if err != nil {
		return err
	}
	switch v := a.(type) {
	case object.Integer:
		if v < 0 {
			v = -v
		}
		ip.push(v)
	case object.Real:
		ip.push(object.Real(math.Abs(float64(v))))
	}
	return nil
}

func (ip *Interp) opCeiling() error { return ip.roundingOp("ceiling", math.Ceil) }
func (ip *Interp) opFloor() error   { return ip.roundingOp("floor", math.Floor) }
func (ip *Interp) opRound() error   { return ip.roundingOp("round", math.Round) } // halves round away from zero: 2.5 -> 3.0, -2.5 -> -3.0
func (ip *Interp) opTruncate() error { return ip.roundingOp("truncate", math.Trunc) }

func (ip *Interp) opSqrt() error {
	a, err := ip.popNumber("sqrt")
	if err != nil {
		return err
	}
	f, _ := object.NumberValue(a)
	if f < 0 {
		return errf("sqrt", "negative number")
	}
	ip.push(object.Real(math.Sqrt(f)))
	return nil
}

// arith2 pops b then a (the PostScript order: "a b op"), combines them with
// f, and pushes the result, preserving Integer type when both operands are
// integers, per the language's numeric-tower rule.
func (ip *Interp) arith2(op string, f func(a, b float64) float64) error {
	bo, err := ip.popNumber(op)
	if err != nil {
		return err
	}
	ao, err := ip.popNumber(op)
	if err != nil {
		return err
	}
	bf, _ := object.NumberValue(bo)
	af, _ := object.NumberValue(ao)
	result := f(af, bf)

	_, bIsInt := bo.(object.Integer)
	_, aIsInt := ao.(object.Integer)
	if aIsInt && bIsInt {
		ip.push(object.Integer(int64(result)))
		return nil
	}
	ip.push(object.Real(result))
	return nil
}

func (ip *Interp) roundingOp(op string, f func(float64) float64) error {
	a, err := ip.popNumber(op)
	if err != nil {
		return err
	}
	v, _ := object.NumberValue(a)
	ip.push(object.Real(f(v)))
	return nil
}

// intFloorDivTrunc implements PostScript's idiv: truncation toward zero,
// matching Go's native integer division (unlike Python's floor-division //).
func intFloorDivTrunc(a, b int) int { return a / b }
