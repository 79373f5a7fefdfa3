// Package errors provides the error types returned by generated codecs. It includes all of
// the stdlib's functions so callers do not need to import both packages.
package errors

import (
	"github.com/gostdlib/base/context"
	"github.com/gostdlib/base/errors"
)

//go:generate go tool github.com/johnsiilver/stringer -type=Category -linecomment

// Category represents the category of the error.
type Category uint32

func (c Category) Category() string {
	return c.String()
}

const (
	// CatUnknown represents an unknown category. This should not be used.
	CatUnknown Category = Category(0) // Unknown
	// CatUser represents an error that is caused by bad user input.
	CatUser Category = Category(1) // User
	// CatInternal represents an internal error.
	CatInternal Category = Category(2) // Internal
)

//go:generate go tool github.com/johnsiilver/stringer -type=Type -linecomment

// Type represents the type of the error.
type Type uint16

func (t Type) Type() string {
	return t.String()
}

const (
	// TypeUnknown represents an unknown type.
	TypeUnknown Type = Type(0) // Unknown
	// TypeBug represents a bug in the calling code. An example would be a switch statement
	// that doesn't cover all cases.
	TypeBug Type = Type(1) // Bug
	// TypeParameter represents an error with a parameter that didn't pass validation.
	TypeParameter Type = Type(2) // Parameter
	// TypeFS represents an error with the file system.
	TypeFS Type = Type(5) // FS

	// TypeDecode is input that is not valid JSON or does not fit the shape being decoded.
	TypeDecode Type = Type(100) // Decode
	// TypeCycle is a record graph that references itself during encoding.
	TypeCycle Type = Type(101) // Cycle
	// TypeNotRegistered is a value with no generated codec.
	TypeNotRegistered Type = Type(102) // NotRegistered
	// TypeGenerate is a type definition the generator cannot produce a codec for.
	TypeGenerate Type = Type(103) // Generate
)

// Error is the structured error type from github.com/gostdlib/base/errors.
type Error = errors.Error

// EOption is an optional argument for E().
type EOption = errors.EOption

// WithCallNum is used if you need to set the runtime.CallNum() in order to get the correct filename and line.
// This defaults to 1 which sets to the frame of the caller of E().
func WithCallNum(i int) EOption {
	return errors.WithCallNum(i)
}

// E creates a new Error with the given parameters.
func E(ctx context.Context, c Category, t Type, msg error, options ...EOption) Error {
	// We are a wrapper, so the caller is one frame further up unless they say otherwise.
	opts := make([]EOption, 0, len(options)+1)
	opts = append(opts, WithCallNum(2))
	opts = append(opts, options...)

	return errors.E(ctx, c, t, msg, opts...)
}
