package interp

import "github.com/psi-lang/psi/object"

func (ip *Interp) opString() error {
	n, err := ip.popInt("string")
	if err != nil {
		return err
	}
	if n < 0 {
		return errf("string", "negative size")
	}
	ip.push(object.NewStringOfLen(n))
	return nil
}

// opCvs pops a String buffer and obj, and pushes a fresh String holding
// obj's short form, sized to the formatted text. The buffer is not written
// to, and its length does not truncate or pad the result.
func (ip *Interp) opCvs() error {
	_, err := ip.popString("cvs")
	if err != nil {
		return err
	}
	obj, err := ip.pop("cvs")
	if err != nil {
		return err
	}
	ip.push(object.NewString(obj.Short()))
	return nil
}
