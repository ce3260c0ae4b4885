package interp

func (ip *Interp) opPrint() error {
	s, err := ip.popString("print")
	if err != nil {
		return err
	}
	return ip.writeRaw(s.Bytes)
}

func (ip *Interp) opEquals() error {
	obj, err := ip.pop("=")
	if err != nil {
		return err
	}
	return ip.writeOut(obj.Short() + "\n")
}

func (ip *Interp) opEqualsEquals() error {
	obj, err := ip.pop("==")
	if err != nil {
		return err
	}
	return ip.writeOut(obj.Verbose() + "\n")
}

func (ip *Interp) opPstack() error {
	for i := len(ip.operand) - 1; i >= 0; i-- {
		if err := ip.writeOut(ip.operand[i].Verbose() + "\n"); err != nil {
			return err
		}
	}
	return nil
}
