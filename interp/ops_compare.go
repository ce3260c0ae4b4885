package interp

import "github.com/psi-lang/psi/object"

func (ip *Interp) opEq() error {
	b, err := ip.pop("eq")
	if err != nil {
		return err
	}
	a, err := ip.pop("eq")
	if err != nil {
		return err
	}
	ip.push(object.Boolean(valueEqual(a, b)))
	return nil
}

func (ip *Interp) opNe() error {
	b, err := ip.pop("ne")
	if err != nil {
		return err
	}
	a, err := ip.pop("ne")
	if err != nil {
		return err
	}
	ip.push(object.Boolean(!valueEqual(a, b)))
	return nil
}

func (ip *Interp) opLt() error { return ip.compareOp("lt", func(c int) bool { return c < 0 }) }
func (ip *Interp) opLe() error { return ip.compareOp("le", func(c int) bool { return c <= 0 }) }
func (ip *Interp) opGt() error { return ip.compareOp("gt", func(c int) bool { return c > 0 }) }
func (ip *Interp) opGe() error { return ip.compareOp("ge", func(c int) bool { return c >= 0 }) }

func (ip *Interp) compareOp(op string, ok func(cmp int) bool) error {
	b, err := ip.pop(op)
	if err != nil {
		return err
	}
	a, err := ip.pop(op)
	if err != nil {
		return err
	}
	c, err := compareValues(op, a, b)
	if err != nil {
		return err
	}
	ip.push(object.Boolean(ok(c)))
	return nil
}

// compareValues orders two numbers numerically or two strings
// lexicographically by byte value; any other pairing is a type mismatch.
func compareValues(op string, a, b object.Object) (int, error) {
	if object.IsNumber(a) && object.IsNumber(b) {
		af, _ := object.NumberValue(a)
		bf, _ := object.NumberValue(b)
		switch {
		case af < bf:
			return -1, nil
		case af > bf:
			return 1, nil
		default:
			return 0, nil
		}
	}
	as, aIsStr := a.(*object.String)
	bs, bIsStr := b.(*object.String)
	if aIsStr && bIsStr {
		switch {
		case string(as.Bytes) < string(bs.Bytes):
			return -1, nil
		case string(as.Bytes) > string(bs.Bytes):
			return 1, nil
		default:
			return 0, nil
		}
	}
	return 0, errf(op, "type mismatch")
}

// valueEqual implements the language's cross-type equality rule used by
// `eq`/`ne`: numbers compare by value across Integer/Real, strings by
// content, names by spelling and kind, and composites (Array, Procedure,
// Dictionary) by identity rather than content, per the reference
// semantics.
func valueEqual(a, b object.Object) bool {
	if object.IsNumber(a) && object.IsNumber(b) {
		af, _ := object.NumberValue(a)
		bf, _ := object.NumberValue(b)
		return af == bf
	}
	switch av := a.(type) {
	case object.Boolean:
		bv, ok := b.(object.Boolean)
		return ok && av == bv
	case *object.String:
		bv, ok := b.(*object.String)
		return ok && string(av.Bytes) == string(bv.Bytes)
	case object.LiteralName:
		bv, ok := b.(object.LiteralName)
		return ok && av == bv
	case object.ExecutableName:
		bv, ok := b.(object.ExecutableName)
		return ok && av == bv
	case object.Null:
		_, ok := b.(object.Null)
		return ok
	case object.Mark:
		_, ok := b.(object.Mark)
		return ok
	default:
		return object.IdentityEqual(a, b)
	}
}
