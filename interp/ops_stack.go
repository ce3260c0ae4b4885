package interp

import "github.com/psi-lang/psi/object"

func (ip *Interp) opPopOperator() error {
	_, err := ip.pop("pop")
	return err
}

func (ip *Interp) opExch() error {
	n := len(ip.operand)
	if n < 2 {
		return errf("exch", "stack underflow")
	}
	ip.operand[n-1], ip.operand[n-2] = ip.operand[n-2], ip.operand[n-1]
	return nil
}

func (ip *Interp) opDup() error {
	n := len(ip.operand)
	if n < 1 {
		return errf("dup", "stack underflow")
	}
	ip.push(ip.operand[n-1])
	return nil
}

func (ip *Interp) opCopy() error {
	n, err := ip.popInt("copy")
	if err != nil {
		return err
	}
	if n < 0 || n > len(ip.operand) {
		return errf("copy", "invalid count")
	}
	if n == 0 {
		return nil
	}
	items := ip.operand[len(ip.operand)-n:]
	ip.operand = append(ip.operand, items...)
	return nil
}

func (ip *Interp) opIndex() error {
	n, err := ip.popInt("index")
	if err != nil {
		return err
	}
	if n < 0 || n >= len(ip.operand) {
		return errf("index", "invalid index")
	}
	ip.push(ip.operand[len(ip.operand)-1-n])
	return nil
}

func (ip *Interp) opRoll() error {
	j, err := ip.popInt("roll")
	if err != nil {
		return err
	}
	n, err := ip.popInt("roll")
	if err != nil {
		return err
	}
	if n < 0 {
		return errf("roll", "negative count")
	}
	if n == 0 || j == 0 {
		return nil
	}
	if n > len(ip.operand) {
		return errf("roll", "stack underflow")
	}
	j = ((j % n) + n) % n
	top := ip.operand[len(ip.operand)-n:]
	rolled := make([]object.Object, n)
	copy(rolled, top[n-j:])
	copy(rolled[j:], top[:n-j])
	copy(top, rolled)
	return nil
}

func (ip *Interp) opClear() error {
	ip.operand = ip.operand[:0]
	return nil
}

func (ip *Interp) opCount() error {
	ip.push(object.Integer(ip.depthOperand()))
	return nil
}

func (ip *Interp) opMark() error {
	ip.push(object.Mark{})
	return nil
}

func (ip *Interp) opCleartomark() error {
	for len(ip.operand) > 0 {
		v := ip.operand[len(ip.operand)-1]
		ip.operand = ip.operand[:len(ip.operand)-1]
		if _, ok := v.(object.Mark); ok {
			return nil
		}
	}
	return errf("cleartomark", "no mark found")
}
