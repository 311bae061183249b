package objectutil

import (
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// Observer receives the values IsEmpty inspects on its keyed-mapping branch.
// Implementations must not mutate the value.
type Observer interface {
	Observe(v any)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(v any)

func (f ObserverFunc) Observe(v any) { f(v) }

type nopObserver struct{}

func (nopObserver) Observe(any) {}

// NopObserver ignores every value. It is the default.
var NopObserver Observer = nopObserver{}

var dumpConfig = spew.ConfigState{Indent: "  ", SortKeys: true, DisablePointerAddresses: true, DisableCapacities: true}

// DumpObserver writes a structural dump of each observed value to w.
func DumpObserver(w io.Writer) Observer {
	return ObserverFunc(func(v any) { dumpConfig.Fdump(w, v) })
}

// LogObserver reports each observed value at debug level.
func LogObserver(l Logger) Observer {
	if l == nil {
		return NopObserver
	}
	return ObserverFunc(func(v any) {
		l.Debugf("inspecting keyed mapping: %s", strings.TrimSpace(dumpConfig.Sdump(v)))
	})
}

// Options configures the operations that accept functional options.
type Options struct {
	Observer Observer
}

// Option mutates Options.
type Option func(*Options)

// WithObserver routes the keyed-mapping diagnostic emission of IsEmpty to o.
// A nil observer restores the no-op default.
func WithObserver(o Observer) Option {
	return func(opts *Options) {
		if o == nil {
			o = NopObserver
		}
		opts.Observer = o
	}
}

func buildOptions(opts []Option) Options {
	o := Options{Observer: NopObserver}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
