package shapejson

import (
	"github.com/bearlytools/shapejson/languages/go/codec"
	"github.com/bearlytools/shapejson/languages/go/naming"
)

// Convention is a wire naming convention for field names.
type Convention = naming.Convention

const (
	// Exact uses the Go field name as written.
	Exact = naming.Exact
	// Camel uses camelCase.
	Camel = naming.Camel
	// Snake uses snake_case.
	Snake = naming.Snake
	// Kebab uses kebab-case.
	Kebab = naming.Kebab
)

// Option is an optional argument to Encode and Decode.
type Option = codec.Option

// WithNaming writes and reads field names in convention c. A field with a custom name
// always uses it. The default is Exact.
func WithNaming(c Convention) Option {
	return codec.WithNaming(c)
}

// WithCaseInsensitive matches field names while decoding without regard to ASCII case.
func WithCaseInsensitive() Option {
	return codec.WithCaseInsensitive()
}

// WithPretty writes indented output. indent may only hold spaces and tabs, and defaults to
// a tab.
func WithPretty(indent string) Option {
	return codec.WithPretty(indent)
}

// WithCycleDetection makes encoding a value that refers back to a record being encoded
// fail with an *errors.CycleError instead of recursing without end.
func WithCycleDetection() Option {
	return codec.WithCycleDetection()
}
