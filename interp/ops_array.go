package interp

import "github.com/psi-lang/psi/object"

func (ip *Interp) opArray() error {
	n, err := ip.popInt("array")
	if err != nil {
		return err
	}
	if n < 0 {
		return errf("array", "negative size")
	}
	ip.push(object.NewArray(n))
	return nil
}

func (ip *Interp) opLength() error {
	obj, err := ip.pop("length")
	if err != nil {
		return err
	}
	switch v := obj.(type) {
	case *object.Array:
		ip.push(object.Integer(len(v.Items)))
	case *object.Procedure:
		ip.push(object.Integer(len(v.Items)))
	case *object.String:
		ip.push(object.Integer(len(v.Bytes)))
	case *object.Dict:
		ip.push(object.Integer(v.Len()))
	default:
		return errf("length", "invalid type")
	}
	return nil
}

func (ip *Interp) opGet() error {
	index, err := ip.pop("get")
	if err != nil {
		return err
	}
	obj, err := ip.pop("get")
	if err != nil {
		return err
	}
	switch v := obj.(type) {
	case *object.Array:
		i, ok := index.(object.Integer)
		if !ok {
			return errf("get", "index must be integer for array")
		}
		if int(i) < 0 || int(i) >= len(v.Items) {
			return errf("get", "index out of range")
		}
		ip.push(v.Items[i])
	case *object.Procedure:
		i, ok := index.(object.Integer)
		if !ok {
			return errf("get", "index must be integer for array")
		}
		if int(i) < 0 || int(i) >= len(v.Items) {
			return errf("get", "index out of range")
		}
		ip.push(v.Items[i])
	case *object.String:
		i, ok := index.(object.Integer)
		if !ok {
			return errf("get", "index must be integer for string")
		}
		if int(i) < 0 || int(i) >= len(v.Bytes) {
			return errf("get", "index out of range")
		}
		ip.push(object.Integer(v.Bytes[i]))
	case *object.Dict:
		key, ok := keyString(index)
		if !ok {
			return errf("get", "invalid key type")
		}
		value, ok := v.Get(key)
		if !ok {
			return errf("get", "undefined key '%s'", key)
		}
		ip.push(value)
	default:
		return errf("get", "invalid type")
	}
	return nil
}

func (ip *Interp) opPut() error {
	value, err := ip.pop("put")
	if err != nil {
		return err
	}
	index, err := ip.pop("put")
	if err != nil {
		return err
	}
	obj, err := ip.pop("put")
	if err != nil {
		return err
	}
	switch v := obj.(type) {
	case *object.Array:
		i, ok := index.(object.Integer)
		if !ok {
			return errf("put", "index must be integer for array")
		}
		if int(i) < 0 || int(i) >= len(v.Items) {
			return errf("put", "index out of range")
		}
		v.Items[i] = value
	case *object.Procedure:
		i, ok := index.(object.Integer)
		if !ok {
			return errf("put", "index must be integer for array")
		}
		if int(i) < 0 || int(i) >= len(v.Items) {
			return errf("put", "index out of range")
		}
		v.Items[i] = value
	case *object.String:
		i, ok := index.(object.Integer)
		if !ok {
			return errf("put", "index must be integer for string")
		}
		if int(i) < 0 || int(i) >= len(v.Bytes) {
			return errf("put", "index out of range")
		}
		n, ok := value.(object.Integer)
		if !ok {
			return errf("put", "value must be an integer character code")
		}
		v.Bytes[i] = byte(n)
	case *object.Dict:
		key, ok := keyString(index)
		if !ok {
			return errf("put", "invalid key type")
		}
		v.Set(key, value)
	default:
		return errf("put", "invalid type")
	}
	return nil
}

func (ip *Interp) opGetinterval() error {
	count, err := ip.popInt("getinterval")
	if err != nil {
		return err
	}
	index, err := ip.popInt("getinterval")
	if err != nil {
		return err
	}
	obj, err := ip.pop("getinterval")
	if err != nil {
		return err
	}
	switch v := obj.(type) {
	case *object.Array:
		if index < 0 || count < 0 || index+count > len(v.Items) {
			return errf("getinterval", "range out of bounds")
		}
		// Arrays share backing storage with the source, per the language's
		// reference semantics for getinterval.
		ip.push(object.NewArrayFrom(v.Items[index : index+count]))
	case *object.String:
		if index < 0 || count < 0 || index+count > len(v.Bytes) {
			return errf("getinterval", "range out of bounds")
		}
		// Strings are copied: the result does not share storage with the
		// source, so a later put on either leaves the other unchanged.
		sub := make([]byte, count)
		copy(sub, v.Bytes[index:index+count])
		ip.push(&object.String{Bytes: sub})
	default:
		return errf("getinterval", "invalid type")
	}
	return nil
}

func (ip *Interp) opPutinterval() error {
	source, err := ip.pop("putinterval")
	if err != nil {
		return err
	}
	index, err := ip.popInt("putinterval")
	if err != nil {
		return err
	}
	dest, err := ip.pop("putinterval")
	if err != nil {
		return err
	}
	destArr, destIsArr := dest.(*object.Array)
	srcArr, srcIsArr := source.(*object.Array)
	if destIsArr && srcIsArr {
		if index < 0 || index+len(srcArr.Items) > len(destArr.Items) {
			return errf("putinterval", "range out of bounds")
		}
		copy(destArr.Items[index:], srcArr.Items)
		return nil
	}
	destStr, destIsStr := dest.(*object.String)
	srcStr, srcIsStr := source.(*object.String)
	if destIsStr && srcIsStr {
		if index < 0 || index+len(srcStr.Bytes) > len(destStr.Bytes) {
			return errf("putinterval", "range out of bounds")
		}
		copy(destStr.Bytes[index:], srcStr.Bytes)
		return nil
	}
	return errf("putinterval", "invalid type")
}

func (ip *Interp) opForall() error {
	proc, err := ip.popProcedure("forall")
	if err != nil {
		return err
	}
	obj, err := ip.pop("forall")
	if err != nil {
		return err
	}
	switch v := obj.(type) {
	case *object.Array:
		for _, item := range v.Items {
			ip.push(item)
			done, err := ip.runLoopBody(proc)
			if err != nil {
				return err
			}
			if done {
				return nil
			}
		}
	case *object.String:
		for _, b := range v.Bytes {
			ip.push(object.Integer(b))
			done, err := ip.runLoopBody(proc)
			if err != nil {
				return err
			}
			if done {
				return nil
			}
		}
	case *object.Dict:
		var failure error
		stop := false
		v.ForEach(func(key string, value object.Object) {
			if stop || failure != nil {
				return
			}
			ip.push(object.LiteralName(key))
			ip.push(value)
			done, err := ip.runLoopBody(proc)
			if err != nil {
				failure = err
				return
			}
			if done {
				stop = true
			}
		})
		if failure != nil {
			return failure
		}
	default:
		return errf("forall", "invalid type")
	}
	return nil
}

func (ip *Interp) opAload() error {
	obj, err := ip.pop("aload")
	if err != nil {
		return err
	}
	arr, ok := obj.(*object.Array)
	if !ok {
		return errf("aload", "not an array")
	}
	for _, item := range arr.Items {
		ip.push(item)
	}
	ip.push(arr)
	return nil
}

func (ip *Interp) opAstore() error {
	obj, err := ip.pop("astore")
	if err != nil {
		return err
	}
	arr, ok := obj.(*object.Array)
	if !ok {
		return errf("astore", "not an array")
	}
	n := len(arr.Items)
	if ip.depthOperand() < n {
		return errf("astore", "stack underflow")
	}
	for i := n - 1; i >= 0; i-- {
		v, err := ip.pop("astore")
		if err != nil {
			return err
		}
		arr.Items[i] = v
	}
	ip.push(arr)
	return nil
}

// keyString accepts a LiteralName, an ExecutableName or a String as a
// dictionary key,
// matching the reference's tolerance for hashable Python keys while giving
// the language's two name-shaped types a concrete textual identity.
func keyString(index object.Object) (string, bool) {
	switch v := index.(type) {
	case object.LiteralName:
		return string(v), true
	case object.ExecutableName:
		return string(v), true
	case *object.String:
		return string(v.Bytes), true
	}
	return "", false
}
