// Package codec is the runtime used by generated JSON codecs. It wraps the jsontext
// streaming decoder and encoder in a Cursor and a Sink that record the first error they
// see, so generated code can read and write without checking an error after every call.
// The top-level entry points (Encode and Decode) rent pooled Sinks and Cursors and turn
// the recorded error into the result of the call.
package codec

import (
	"github.com/bearlytools/shapejson/languages/go/naming"
)

// Options control a single encode or decode call. They are passed by value and never
// mutated by the codec.
type Options struct {
	// Naming is the wire naming convention for fields without a custom name.
	Naming naming.Convention
	// CaseInsensitive matches object names on decode with ASCII case folding.
	CaseInsensitive bool
	// Pretty writes multi-line, indented output.
	Pretty bool
	// Indent is the indent used when Pretty is set. Defaults to a tab.
	Indent string
	// DetectCycles fails an encode that reaches a record already being encoded.
	DetectCycles bool
}

// Option is an optional argument that modifies Options.
type Option func(Options) (Options, error)

// WithNaming sets the naming convention.
func WithNaming(c naming.Convention) Option {
	return func(o Options) (Options, error) {
		o.Naming = c
		return o, nil
	}
}

// WithCaseInsensitive turns on ASCII case-insensitive name matching for decode.
func WithCaseInsensitive() Option {
	return func(o Options) (Options, error) {
		o.CaseInsensitive = true
		return o, nil
	}
}

// WithPretty turns on indented output. An empty indent uses a tab.
func WithPretty(indent string) Option {
	return func(o Options) (Options, error) {
		for _, r := range indent {
			if r != ' ' && r != '\t' {
				return o, errBadIndent
			}
		}
		o.Pretty = true
		o.Indent = indent
		return o, nil
	}
}

// WithCycleDetection turns on cycle detection for encode.
func WithCycleDetection() Option {
	return func(o Options) (Options, error) {
		o.DetectCycles = true
		return o, nil
	}
}

// Apply returns base with opts applied in order.
func Apply(base Options, opts ...Option) (Options, error) {
	var err error
	for _, o := range opts {
		base, err = o(base)
		if err != nil {
			return base, err
		}
	}
	return base, nil
}

func (o Options) indent() string {
	if o.Indent == "" {
		return "\t"
	}
	return o.Indent
}
