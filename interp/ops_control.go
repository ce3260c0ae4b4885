package interp

import "github.com/psi-lang/psi/object"

func (ip *Interp) opIf() error {
	proc, err := ip.popProcedure("if")
	if err != nil {
		return err
	}
	cond, err := ip.popBool("if")
	if err != nil {
		return err
	}
	if !cond {
		return nil
	}
	return ip.execProcedure(proc)
}

func (ip *Interp) opIfelse() error {
	falseProc, err := ip.popProcedure("ifelse")
	if err != nil {
		return err
	}
	trueProc, err := ip.popProcedure("ifelse")
	if err != nil {
		return err
	}
	cond, err := ip.popBool("ifelse")
	if err != nil {
		return err
	}
	if cond {
		return ip.execProcedure(trueProc)
	}
	return ip.execProcedure(falseProc)
}

func (ip *Interp) opFor() error {
	proc, err := ip.popProcedure("for")
	if err != nil {
		return err
	}
	limit, err := ip.popNumber("for")
	if err != nil {
		return err
	}
	increment, err := ip.popNumber("for")
	if err != nil {
		return err
	}
	initial, err := ip.popNumber("for")
	if err != nil {
		return err
	}

	limitF, _ := object.NumberValue(limit)
	incF, _ := object.NumberValue(increment)
	curF, _ := object.NumberValue(initial)
	_, incInt := increment.(object.Integer)
	cur := initial

	// increment == 0 is a degenerate infinite loop per the language's
	// contract; the caller is expected to exit explicitly.
	for incF == 0 || (incF > 0 && curF <= limitF) || (incF < 0 && curF >= limitF) {
		ip.push(cur)
		done, err := ip.runLoopBody(proc)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
		curF += incF
		if _, curInt := cur.(object.Integer); curInt && incInt {
			cur = object.Integer(int64(curF))
		} else {
			cur = object.Real(curF)
		}
	}
	return nil
}

func (ip *Interp) opRepeat() error {
	proc, err := ip.popProcedure("repeat")
	if err != nil {
		return err
	}
	count, err := ip.popInt("repeat")
	if err != nil {
		return err
	}
	if count < 0 {
		return errf("repeat", "negative count")
	}
	for i := 0; i < count; i++ {
		done, err := ip.runLoopBody(proc)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
	return nil
}

func (ip *Interp) opLoop() error {
	proc, err := ip.popProcedure("loop")
	if err != nil {
		return err
	}
	for {
		done, err := ip.runLoopBody(proc)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

func (ip *Interp) opExit() error {
	return exitSignal
}

// opExec pops any object and runs it: a Procedure's body is executed, an
// ExecutableName is resolved and invoked exactly as if it had appeared
// literally in source, and every other value (already data, not code) is
// simply pushed back.
func (ip *Interp) opExec() error {
	obj, err := ip.pop("exec")
	if err != nil {
		return err
	}
	switch v := obj.(type) {
	case *object.Procedure:
		return ip.execProcedure(v)
	case object.ExecutableName:
		return ip.execObject(v)
	default:
		ip.push(obj)
		return nil
	}
}

func (ip *Interp) opStopped() error {
	proc, err := ip.popProcedure("stopped")
	if err != nil {
		return err
	}
	if err := ip.execProcedure(proc); err != nil {
		if err == stopSignal {
			ip.push(object.Boolean(true))
			return nil
		}
		return err
	}
	ip.push(object.Boolean(false))
	return nil
}

func (ip *Interp) opStop() error {
	return stopSignal
}
