// Package interp implements the two-stack execution engine: the operand
// stack, the dictionary stack, and the dispatch rule that drives literal
// objects, name resolution, and primitive/procedure invocation.
package interp

import (
	"io"

	"github.com/psi-lang/psi/internal/flushio"
	"github.com/psi-lang/psi/internal/runeio"
	"github.com/psi-lang/psi/object"
	"github.com/psi-lang/psi/parser"
)

// Interp is a PostScript-family interpreter: an operand stack, a
// dictionary stack rooted in a populated system dictionary, and an output
// sink. The zero value is not usable; construct with New.
type Interp struct {
	operand []object.Object
	dicts   []*object.Dict

	out flushio.WriteFlusher

	logf func(format string, args ...interface{})

	maxSteps int
	maxDepth int
	steps    int
	depth    int
}

// New returns a fresh interpreter with the system dictionary populated and
// one empty user dictionary above it, per the language's constructor
// contract.
func New(opts ...Option) *Interp {
	ip := &Interp{
		out:      flushio.NewWriteFlusher(io.Discard),
		maxSteps: 0,
		maxDepth: 4096,
	}
	ip.dicts = []*object.Dict{newSystemDict(ip), object.NewDict(0)}
	Options(opts...).apply(ip)
	return ip
}

// Run parses source and executes each top-level object in order. Errors
// are fatal to this call: operand and dictionary stacks are left exactly
// as they stood at the point of failure, a prior run's state is never
// rolled back, and a later call to Run may continue from there.
func (ip *Interp) Run(source string) (err error) {
	// Flush whatever was emitted even if parsing or execution fails partway
	// through, so a fatal error doesn't silently swallow prior output.
	defer func() {
		if ferr := ip.out.Flush(); err == nil {
			err = ferr
		}
	}()

	objs, err := parser.Parse(source)
	if err != nil {
		return err
	}

	for _, obj := range objs {
		if err := ip.execObject(obj); err != nil {
			if err == exitSignal {
				// An exit with no enclosing loop unwinds silently out of
				// the current top-level object's execution.
				continue
			}
			if err == stopSignal {
				return errf("stop", "no enclosing stopped")
			}
			return err
		}
	}
	return nil
}

// GetStack returns a snapshot of the operand stack, bottom-first
// (top-last).
func (ip *Interp) GetStack() []object.Object {
	out := make([]object.Object, len(ip.operand))
	copy(out, ip.operand)
	return out
}

// execObject implements the single-object execution rule (spec §4.3):
// literals push, executable names resolve-and-invoke.
func (ip *Interp) execObject(obj object.Object) error {
	ip.steps++
	if ip.maxSteps > 0 && ip.steps > ip.maxSteps {
		return errf("exec", "step limit exceeded")
	}

	name, isExec := obj.(object.ExecutableName)
	if !isExec {
		ip.push(obj)
		return nil
	}

	value, ok := ip.lookup(string(name))
	if !ok {
		return errf("exec", "undefined name: %s", string(name))
	}

	switch v := value.(type) {
	case *object.Operator:
		if ip.logf != nil {
			ip.logf("call %s", v.Name)
		}
		return v.Func()
	case *object.Procedure:
		return ip.execProcedure(v)
	default:
		ip.push(value)
		return nil
	}
}

// execProcedure interprets a procedure's body element by element,
// recursing on the host call stack; a depth guard stands in for the
// explicit continuation stack spec §9 leaves as an open improvement, so
// that runaway recursion fails cleanly instead of exhausting the Go
// runtime's goroutine stack.
func (ip *Interp) execProcedure(p *object.Procedure) error {
	ip.depth++
	defer func() { ip.depth-- }()
	if ip.depth > ip.maxDepth {
		return errf("exec", "recursion depth exceeded")
	}
	return ip.execBody(p.Items)
}

func (ip *Interp) execBody(items []object.Object) error {
	for _, obj := range items {
		if err := ip.execObject(obj); err != nil {
			return err
		}
	}
	return nil
}

// runLoopBody executes proc once within a loop construct, translating an
// escaping exit into a clean "stop iterating" signal while letting every
// other error (including stop) propagate to the caller.
func (ip *Interp) runLoopBody(proc *object.Procedure) (done bool, err error) {
	if err := ip.execProcedure(proc); err != nil {
		if err == exitSignal {
			return true, nil
		}
		return false, err
	}
	return false, nil
}

func (ip *Interp) lookup(name string) (object.Object, bool) {
	for i := len(ip.dicts) - 1; i >= 0; i-- {
		if v, ok := ip.dicts[i].Get(name); ok {
			return v, true
		}
	}
	return nil, false
}

// --- operand stack helpers ---

func (ip *Interp) push(obj object.Object) {
	ip.operand = append(ip.operand, obj)
}

func (ip *Interp) pop(op string) (object.Object, error) {
	n := len(ip.operand)
	if n == 0 {
		return nil, errf(op, "stack underflow")
	}
	v := ip.operand[n-1]
	ip.operand = ip.operand[:n-1]
	return v, nil
}

func (ip *Interp) depthOperand() int { return len(ip.operand) }

func (ip *Interp) popNumber(op string) (object.Object, error) {
	v, err := ip.pop(op)
	if err != nil {
		return nil, err
	}
	if !object.IsNumber(v) {
		return nil, errf(op, "expected a number, got %s", v.TypeName())
	}
	return v, nil
}

func (ip *Interp) popInt(op string) (int, error) {
	v, err := ip.pop(op)
	if err != nil {
		return 0, err
	}
	switch n := v.(type) {
	case object.Integer:
		return int(n), nil
	case object.Real:
		if float64(n) == float64(int64(n)) {
			return int(n), nil
		}
	}
	return 0, errf(op, "expected an integer, got %s", v.TypeName())
}

func (ip *Interp) popBool(op string) (bool, error) {
	v, err := ip.pop(op)
	if err != nil {
		return false, err
	}
	b, ok := v.(object.Boolean)
	if !ok {
		return false, errf(op, "expected a boolean, got %s", v.TypeName())
	}
	return bool(b), nil
}

func (ip *Interp) popProcedure(op string) (*object.Procedure, error) {
	v, err := ip.pop(op)
	if err != nil {
		return nil, err
	}
	p, ok := v.(*object.Procedure)
	if !ok {
		return nil, errf(op, "expected a procedure, got %s", v.TypeName())
	}
	return p, nil
}

func (ip *Interp) popLiteralName(op string) (string, error) {
	v, err := ip.pop(op)
	if err != nil {
		return "", err
	}
	n, ok := v.(object.LiteralName)
	if !ok {
		return "", errf(op, "expected a literal name, got %s", v.TypeName())
	}
	return string(n), nil
}

func (ip *Interp) popString(op string) (*object.String, error) {
	v, err := ip.pop(op)
	if err != nil {
		return nil, err
	}
	s, ok := v.(*object.String)
	if !ok {
		return nil, errf(op, "expected a string, got %s", v.TypeName())
	}
	return s, nil
}

func (ip *Interp) popDict(op string) (*object.Dict, error) {
	v, err := ip.pop(op)
	if err != nil {
		return nil, err
	}
	d, ok := v.(*object.Dict)
	if !ok {
		return nil, errf(op, "expected a dictionary, got %s", v.TypeName())
	}
	return d, nil
}

// writeOut writes a formatted, terminal-safe rendering of s to the output
// sink -- used by the `=`/`==`/`pstack` family, whose payload is always
// generated text rather than arbitrary String byte content.
func (ip *Interp) writeOut(s string) error {
	if _, err := runeio.WriteANSIString(ip.out, s); err != nil {
		return errf("print", "%v", err)
	}
	return nil
}

// writeRaw writes a String's byte content verbatim: character codes are
// arbitrary 8-bit values, not necessarily valid UTF-8, so they are written
// as-is rather than rune-decoded.
func (ip *Interp) writeRaw(b []byte) error {
	if _, err := ip.out.Write(b); err != nil {
		return errf("print", "%v", err)
	}
	return nil
}
