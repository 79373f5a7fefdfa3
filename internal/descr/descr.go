// Package descr holds the type descriptors produced by discovery front ends and consumed by
// the shape classifier. Descriptors are plain data and are not modified after discovery.
package descr

import (
	"fmt"
	"strconv"
	"strings"
)

// Decl is the kind of a type declaration.
type Decl uint8

const (
	// DeclStruct is a record with fields.
	DeclStruct Decl = 1
	// DeclEnum is a named integer type with a closed set of named values.
	DeclEnum Decl = 2
	// DeclScalar is a named type whose underlying type is a builtin scalar, like
	// "type Celsius float64".
	DeclScalar Decl = 3
)

func (d Decl) String() string {
	switch d {
	case DeclStruct:
		return "struct"
	case DeclEnum:
		return "enum"
	case DeclScalar:
		return "scalar"
	}
	return fmt.Sprintf("Decl(%d)", uint8(d))
}

// Type describes one declared type.
type Type struct {
	// Name is the declared name.
	Name string
	// Decl says what kind of declaration this is.
	Decl Decl
	// TypeParams are the type parameter names of a generic struct, in order.
	TypeParams []string
	// Fields are the struct's fields in declaration order.
	Fields []*Field
	// Underlying is the builtin type of an enum or named scalar, like "uint8".
	Underlying string
	// Values are the enum's named values in declaration order.
	Values []EnumValue
	// Doc is the declaration's doc comment, without comment markers.
	Doc string
}

// Generic reports if the type has type parameters.
func (t *Type) Generic() bool {
	return len(t.TypeParams) > 0
}

// EnumValue is one named value of an enum.
type EnumValue struct {
	Name  string
	Value uint64
}

// Field describes a struct field.
type Field struct {
	// Name is the Go field name.
	Name string
	// Type is the declared type.
	Type *Ref
	// WireName overrides every naming convention when set.
	WireName string
	// ReadOnly fields are encoded but never decoded.
	ReadOnly bool
}

// Settable reports if decode assigns the field.
func (f *Field) Settable() bool {
	return !f.ReadOnly
}

// Form is the syntactic form of a type reference.
type Form uint8

const (
	// FormNamed is a type name, possibly qualified and possibly with type arguments.
	FormNamed Form = 0
	// FormPointer is *Elem.
	FormPointer Form = 1
	// FormSlice is []Elem.
	FormSlice Form = 2
	// FormArray is [Len]Elem.
	FormArray Form = 3
	// FormMap is map[Key]Elem.
	FormMap Form = 4
)

// Ref is a reference to a type as written in a field declaration.
type Ref struct {
	Form Form
	// Name is set for FormNamed, like "int", "time.Time" or "Page".
	Name string
	// Args are the type arguments of a generic instantiation.
	Args []*Ref
	// Elem is the pointed-to, element or map value type.
	Elem *Ref
	// Key is the map key type.
	Key *Ref
	// Len is the array length.
	Len int
}

// Named returns a reference to name with optional type arguments.
func Named(name string, args ...*Ref) *Ref {
	return &Ref{Form: FormNamed, Name: name, Args: args}
}

// Pointer returns *elem.
func Pointer(elem *Ref) *Ref {
	return &Ref{Form: FormPointer, Elem: elem}
}

// Slice returns []elem.
func Slice(elem *Ref) *Ref {
	return &Ref{Form: FormSlice, Elem: elem}
}

// Array returns [n]elem.
func Array(n int, elem *Ref) *Ref {
	return &Ref{Form: FormArray, Len: n, Elem: elem}
}

// Map returns map[key]elem.
func Map(key, elem *Ref) *Ref {
	return &Ref{Form: FormMap, Key: key, Elem: elem}
}

// String returns the Go spelling of the reference. Two references with the same String()
// denote the same type.
func (r *Ref) String() string {
	b := strings.Builder{}
	r.write(&b)
	return b.String()
}

func (r *Ref) write(b *strings.Builder) {
	switch r.Form {
	case FormPointer:
		b.WriteByte('*')
		r.Elem.write(b)
	case FormSlice:
		b.WriteString("[]")
		r.Elem.write(b)
	case FormArray:
		b.WriteByte('[')
		b.WriteString(strconv.Itoa(r.Len))
		b.WriteByte(']')
		r.Elem.write(b)
	case FormMap:
		b.WriteString("map[")
		r.Key.write(b)
		b.WriteByte(']')
		r.Elem.write(b)
	default:
		b.WriteString(canonicalName(r.Name))
		if len(r.Args) > 0 {
			b.WriteByte('[')
			for i, a := range r.Args {
				if i > 0 {
					b.WriteString(", ")
				}
				a.write(b)
			}
			b.WriteByte(']')
		}
	}
}

// canonicalName folds the builtin aliases into the types they alias.
func canonicalName(name string) string {
	switch name {
	case "byte":
		return "uint8"
	case "rune":
		return "int32"
	case "interface{}":
		return "any"
	}
	return name
}

// Substitute returns r with every named reference found in params replaced.
func (r *Ref) Substitute(params map[string]*Ref) *Ref {
	if r == nil || len(params) == 0 {
		return r
	}
	switch r.Form {
	case FormNamed:
		if len(r.Args) == 0 {
			if p, ok := params[r.Name]; ok {
				return p
			}
			return r
		}
		args := make([]*Ref, len(r.Args))
		for i, a := range r.Args {
			args[i] = a.Substitute(params)
		}
		return Named(r.Name, args...)
	case FormMap:
		return Map(r.Key.Substitute(params), r.Elem.Substitute(params))
	case FormArray:
		return Array(r.Len, r.Elem.Substitute(params))
	}
	return &Ref{Form: r.Form, Elem: r.Elem.Substitute(params)}
}

// Mentions reports if r refers to name anywhere.
func (r *Ref) Mentions(name string) bool {
	if r == nil {
		return false
	}
	if r.Form == FormNamed {
		if r.Name == name {
			return true
		}
		for _, a := range r.Args {
			if a.Mentions(name) {
				return true
			}
		}
		return false
	}
	return r.Key.Mentions(name) || r.Elem.Mentions(name)
}
