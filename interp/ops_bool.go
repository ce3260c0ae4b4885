package interp

import "github.com/psi-lang/psi/object"

func (ip *Interp) opAnd() error {
	return ip.bitwiseOrBoolean2("and",
		func(a, b bool) bool { return a && b },
		func(a, b int64) int64 { return a & b })
}

func (ip *Interp) opOr() error {
	return ip.bitwiseOrBoolean2("or",
		func(a, b bool) bool { return a || b },
		func(a, b int64) int64 { return a | b })
}

func (ip *Interp) opXor() error {
	return ip.bitwiseOrBoolean2("xor",
		func(a, b bool) bool { return a != b },
		func(a, b int64) int64 { return a ^ b })
}

func (ip *Interp) opNot() error {
	v, err := ip.pop("not")
	if err != nil {
		return err
	}
	switch n := v.(type) {
	case object.Boolean:
		ip.push(!n)
	case object.Integer:
		ip.push(^n)
	default:
		return errf("not", "type mismatch")
	}
	return nil
}

func (ip *Interp) bitwiseOrBoolean2(op string, boolOp func(a, b bool) bool, intOp func(a, b int64) int64) error {
	b, err := ip.pop(op)
	if err != nil {
		return err
	}
	a, err := ip.pop(op)
	if err != nil {
		return err
	}
	if ab, aOk := a.(object.Boolean); aOk {
		if bb, bOk := b.(object.Boolean); bOk {
			ip.push(object.Boolean(boolOp(bool(ab), bool(bb))))
			return nil
		}
	}
	if ai, aOk := a.(object.Integer); aOk {
		if bi, bOk := b.(object.Integer); bOk {
			ip.push(object.Integer(intOp(int64(ai), int64(bi))))
			return nil
		}
	}
	return errf(op, "type mismatch")
}
