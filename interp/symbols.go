package interp

import "github.com/psi-lang/psi/object"

// newSystemDict builds the system dictionary bound at the bottom of ip's
// dictionary stack: every primitive operator plus the `true`/`false`
// Boolean literals.
func newSystemDict(ip *Interp) *object.Dict {
	d := object.NewDict(0)

	reg := func(name string, fn func() error) {
		d.Set(name, &object.Operator{Name: name, Func: fn})
	}

	// Arithmetic
	reg("add", ip.opAdd)
	reg("sub", ip.opSub)
	reg("mul", ip.opMul)
	reg("div", ip.opDiv)
	reg("idiv", ip.opIdiv)
	reg("mod", ip.opMod)
	reg("neg", ip.opNeg)
	reg("abs", ip.opAbs)
	reg("ceiling", ip.opCeiling)
	reg("floor", ip.opFloor)
	reg("round", ip.opRound)
	reg("truncate", ip.opTruncate)
	reg("sqrt", ip.opSqrt)

	// Stack manipulation
	reg("pop", ip.opPopOperator)
	reg("exch", ip.opExch)
	reg("dup", ip.opDup)
	reg("copy", ip.opCopy)
	reg("index", ip.opIndex)
	reg("roll", ip.opRoll)
	reg("clear", ip.opClear)
	reg("count", ip.opCount)
	reg("mark", ip.opMark)
	reg("cleartomark", ip.opCleartomark)

	// Comparison
	reg("eq", ip.opEq)
	reg("ne", ip.opNe)
	reg("lt", ip.opLt)
	reg("le", ip.opLe)
	reg("gt", ip.opGt)
	reg("ge", ip.opGe)

	// Boolean
	reg("and", ip.opAnd)
	reg("or", ip.opOr)
	reg("not", ip.opNot)
	reg("xor", ip.opXor)
	d.Set("true", object.Boolean(true))
	d.Set("false", object.Boolean(false))

	// Control flow
	reg("if", ip.opIf)
	reg("ifelse", ip.opIfelse)
	reg("for", ip.opFor)
	reg("repeat", ip.opRepeat)
	reg("loop", ip.opLoop)
	reg("exit", ip.opExit)
	reg("exec", ip.opExec)
	reg("stopped", ip.opStopped)
	reg("stop", ip.opStop)

	// Dictionary
	reg("def", ip.opDef)
	reg("load", ip.opLoad)
	reg("store", ip.opStore)
	reg("begin", ip.opBegin)
	reg("end", ip.opEnd)
	reg("dict", ip.opDict)
	reg("currentdict", ip.opCurrentdict)

	// Array / composite
	reg("array", ip.opArray)
	reg("length", ip.opLength)
	reg("get", ip.opGet)
	reg("put", ip.opPut)
	reg("getinterval", ip.opGetinterval)
	reg("putinterval", ip.opPutinterval)
	reg("forall", ip.opForall)
	reg("aload", ip.opAload)
	reg("astore", ip.opAstore)

	// String
	reg("string", ip.opString)
	reg("cvs", ip.opCvs)

	// Type introspection
	reg("type", ip.opType)
	reg("cvx", ip.opCvx)
	reg("cvlit", ip.opCvlit)

	// I/O
	reg("print", ip.opPrint)
	reg("=", ip.opEquals)
	reg("==", ip.opEqualsEquals)
	reg("pstack", ip.opPstack)

	return d
}
