// Package panicerr converts an abnormal goroutine exit -- a panic, or a
// runtime.Goexit from inside a deferred call -- into a plain error return,
// so that a bug inside an operator implementation becomes a failed `psi
// run` rather than a crashed process. The interpreter's own control-flow
// operators (exit, stop) never take this path: they are ordinary error
// values threaded through interp's call chain (see interp/errors.go).
package panicerr

import (
	"fmt"
	"runtime/debug"
)

// Recover runs f in its own goroutine and converts any panic or
// runtime.Goexit escaping it into a non-nil error return instead of
// propagating to the caller's goroutine.
func Recover(name string, f func() error) error {
	errch := make(chan error, 1)
	go func() {
		defer close(errch)
		defer recoverExit(name, errch)
		defer recoverPanic(name, errch)
		errch <- f()
	}()
	return <-errch
}

func recoverPanic(name string, errch chan<- error) {
	if e := recover(); e != nil {
		pe := panicError{name: name, value: e, stack: debug.Stack()}
		select {
		case errch <- pe:
		default:
		}
	}
}

func recoverExit(name string, errch chan<- error) {
	select {
	case errch <- exitError(name):
	default:
		// the happy path already sent a (possibly nil) result
	}
}

type panicError struct {
	name  string
	value interface{}
	stack []byte
}

func (pe panicError) Error() string {
	if pe.name == "" {
		return fmt.Sprintf("paniced: %v", pe.value)
	}
	return fmt.Sprintf("%s paniced: %v\n%s", pe.name, pe.value, pe.stack)
}

func (pe panicError) Unwrap() error {
	err, _ := pe.value.(error)
	return err
}

type exitError string

func (name exitError) Error() string {
	if name == "" {
		return "runtime.Goexit called"
	}
	return fmt.Sprintf("%s called runtime.Goexit", string(name))
}
