package interp

import (
	"io"

	"github.com/psi-lang/psi/internal/flushio"
)

// Option configures an Interp at construction time.
type Option interface{ apply(ip *Interp) }

// Options flattens a list of Options into one, folding nested Options
// values and dropping nils so construction reads naturally:
// New(WithOutput(w), someConditionalOption, WithMaxDepth(n)).
func Options(opts ...Option) Option {
	var res options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil, noption:
		case options:
			res = append(res, impl...)
		default:
			res = append(res, opt)
		}
	}
	switch len(res) {
	case 0:
		return noption{}
	case 1:
		return res[0]
	default:
		return res
	}
}

type noption struct{}

func (noption) apply(ip *Interp) {}

type options []Option

func (opts options) apply(ip *Interp) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(ip)
		}
	}
}

type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type logfOption func(format string, args ...interface{})
type maxStepsOption int
type maxDepthOption int

// WithOutput directs print/`=`/`==`/pstack output to w, replacing any
// output sink set by prior options.
func WithOutput(w io.Writer) Option { return outputOption{w} }

// WithTee adds w as an additional output sink alongside whatever is
// already configured, rather than replacing it.
func WithTee(w io.Writer) Option { return teeOption{w} }

// WithLogf installs a callback invoked once per operator dispatch, for
// tracing execution; nil (the default) disables tracing.
func WithLogf(logf func(format string, args ...interface{})) Option {
	return logfOption(logf)
}

// WithMaxSteps bounds the number of objects execObject may process across
// the lifetime of the Interp before Run fails with a step-limit error.
// Zero (the default) means unbounded.
func WithMaxSteps(n int) Option { return maxStepsOption(n) }

// WithMaxDepth bounds procedure call nesting; the default is 4096.
func WithMaxDepth(n int) Option { return maxDepthOption(n) }

func (o outputOption) apply(ip *Interp) { ip.out = flushio.NewWriteFlusher(o.Writer) }

func (o teeOption) apply(ip *Interp) {
	ip.out = flushio.WriteFlushers(ip.out, flushio.NewWriteFlusher(o.Writer))
}

func (f logfOption) apply(ip *Interp) { ip.logf = f }

func (n maxStepsOption) apply(ip *Interp) { ip.maxSteps = int(n) }

func (n maxDepthOption) apply(ip *Interp) { ip.maxDepth = int(n) }
