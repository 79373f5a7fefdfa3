package errors

import (
	"fmt"
	"strings"
)

// DecodeError is returned when input is malformed JSON or a value does not match the
// shape of the field it is decoded into.
type DecodeError struct {
	// Pointer is the JSON pointer (RFC 6901) of the value being read.
	Pointer string
	// Offset is the byte offset into the input where the problem was found.
	Offset int64
	// Expected is what the shape required, such as "string" or "object".
	Expected string
	// Got is what the input held.
	Got string
	// Syntax is set when the input is not valid JSON.
	Syntax bool
	// Err is the underlying error, if any.
	Err error
}

func (e *DecodeError) Error() string {
	b := strings.Builder{}
	b.WriteString("shapejson: decode")
	if e.Pointer != "" {
		fmt.Fprintf(&b, " at %s", e.Pointer)
	}
	fmt.Fprintf(&b, " (offset %d)", e.Offset)
	switch {
	case e.Syntax:
		fmt.Fprintf(&b, ": invalid JSON: %v", e.Err)
	case e.Expected != "":
		fmt.Fprintf(&b, ": expected %s, got %s", e.Expected, e.Got)
		if e.Err != nil {
			fmt.Fprintf(&b, ": %v", e.Err)
		}
	case e.Err != nil:
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func (e *DecodeError) Category() Category { return CatUser }
func (e *DecodeError) Type() Type         { return TypeDecode }

// CycleError is returned when a record is reached again while it is still being encoded.
type CycleError struct {
	// Record is the Go type name of the record seen twice.
	Record string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("shapejson: cycle detected at record %s", e.Record)
}

func (e *CycleError) Category() Category { return CatUser }
func (e *CycleError) Type() Type         { return TypeCycle }

// NotRegisteredError is returned when a value's type has no generated codec.
type NotRegisteredError struct {
	// GoType is the %T of the value.
	GoType string
}

func (e *NotRegisteredError) Error() string {
	return fmt.Sprintf("shapejson: no codec registered for type %s", e.GoType)
}

func (e *NotRegisteredError) Category() Category { return CatUser }
func (e *NotRegisteredError) Type() Type         { return TypeNotRegistered }
