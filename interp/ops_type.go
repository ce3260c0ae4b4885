package interp

import "github.com/psi-lang/psi/object"

func (ip *Interp) opType() error {
	obj, err := ip.pop("type")
	if err != nil {
		return err
	}
	ip.push(object.NewString(obj.TypeName()))
	return nil
}

func (ip *Interp) opCvx() error {
	obj, err := ip.pop("cvx")
	if err != nil {
		return err
	}
	switch v := obj.(type) {
	case object.LiteralName:
		ip.push(object.ExecutableName(v))
	case *object.Array:
		ip.push(v.AsProcedure())
	default:
		ip.push(obj)
	}
	return nil
}

func (ip *Interp) opCvlit() error {
	obj, err := ip.pop("cvlit")
	if err != nil {
		return err
	}
	switch v := obj.(type) {
	case object.ExecutableName:
		ip.push(object.LiteralName(v))
	case *object.Procedure:
		ip.push(v.AsArray())
	default:
		ip.push(obj)
	}
	return nil
}
