package interp

import "github.com/psi-lang/psi/object"

func (ip *Interp) opDef() error {
	value, err := ip.pop("def")
	if err != nil {
		return err
	}
	key, err := ip.popLiteralName("def")
	if err != nil {
		return err
	}
	ip.dicts[len(ip.dicts)-1].Set(key, value)
	return nil
}

func (ip *Interp) opLoad() error {
	key, err := ip.popLiteralName("load")
	if err != nil {
		return err
	}
	value, ok := ip.lookup(key)
	if !ok {
		return errf("load", "undefined name '%s'", key)
	}
	ip.push(value)
	return nil
}

func (ip *Interp) opStore() error {
	value, err := ip.pop("store")
	if err != nil {
		return err
	}
	key, err := ip.popLiteralName("store")
	if err != nil {
		return err
	}
	for i := len(ip.dicts) - 1; i >= 0; i-- {
		if ip.dicts[i].Has(key) {
			ip.dicts[i].Set(key, value)
			return nil
		}
	}
	ip.dicts[len(ip.dicts)-1].Set(key, value)
	return nil
}

func (ip *Interp) opBegin() error {
	d, err := ip.popDict("begin")
	if err != nil {
		return err
	}
	ip.dicts = append(ip.dicts, d)
	return nil
}

func (ip *Interp) opEnd() error {
	if len(ip.dicts) <= 2 {
		return errf("end", "dictionary stack underflow")
	}
	ip.dicts = ip.dicts[:len(ip.dicts)-1]
	return nil
}

func (ip *Interp) opDict() error {
	n, err := ip.popInt("dict")
	if err != nil {
		return err
	}
	ip.push(object.NewDict(n))
	return nil
}

func (ip *Interp) opCurrentdict() error {
	ip.push(ip.dicts[len(ip.dicts)-1])
	return nil
}
