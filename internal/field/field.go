// Package field enumerates the primitive value types a generated codec reads and writes
// directly: the builtin scalars and the leaf builtins from the standard library.
package field

import "strings"

// Type is a primitive value type.
type Type uint8

const (
	FTUnknown  Type = 0
	FTBool     Type = 1
	FTInt8     Type = 2
	FTInt16    Type = 3
	FTInt32    Type = 4
	FTInt64    Type = 5
	FTInt      Type = 6
	FTUint8    Type = 7
	FTUint16   Type = 8
	FTUint32   Type = 9
	FTUint64   Type = 10
	FTUint     Type = 11
	FTFloat32  Type = 12
	FTFloat64  Type = 13
	FTString   Type = 14
	FTTime     Type = 15
	FTDuration Type = 16
	FTAddr     Type = 17
)

var goNames = [...]string{
	FTUnknown:  "",
	FTBool:     "bool",
	FTInt8:     "int8",
	FTInt16:    "int16",
	FTInt32:    "int32",
	FTInt64:    "int64",
	FTInt:      "int",
	FTUint8:    "uint8",
	FTUint16:   "uint16",
	FTUint32:   "uint32",
	FTUint64:   "uint64",
	FTUint:     "uint",
	FTFloat32:  "float32",
	FTFloat64:  "float64",
	FTString:   "string",
	FTTime:     "time.Time",
	FTDuration: "time.Duration",
	FTAddr:     "netip.Addr",
}

var byName = map[string]Type{}

func init() {
	for t, n := range goNames {
		if n != "" {
			byName[n] = Type(t)
		}
	}
	byName["byte"] = FTUint8
	byName["rune"] = FTInt32
}

// Lookup returns the primitive type spelled name in Go source, such as "uint8" or
// "time.Time". It returns FTUnknown for anything else.
func Lookup(name string) Type {
	return byName[name]
}

// GoName is the Go spelling of the type.
func (t Type) GoName() string {
	if int(t) < len(goNames) {
		return goNames[t]
	}
	return ""
}

// String implements fmt.Stringer.
func (t Type) String() string {
	if n := t.GoName(); n != "" {
		return n
	}
	return "unknown"
}

// Ident is the type's name as an exported Go identifier fragment, like "Int64" or "Time".
func (t Type) Ident() string {
	n := t.GoName()
	if i := strings.IndexByte(n, '.'); i >= 0 {
		n = n[i+1:]
	}
	if n == "" {
		return "Unknown"
	}
	return strings.ToUpper(n[:1]) + n[1:]
}

// IsSigned determines if the type is a signed integer.
func IsSigned(t Type) bool {
	switch t {
	case FTInt8, FTInt16, FTInt32, FTInt64, FTInt:
		return true
	}
	return false
}

// IsUnsigned determines if the type is an unsigned integer.
func IsUnsigned(t Type) bool {
	switch t {
	case FTUint8, FTUint16, FTUint32, FTUint64, FTUint:
		return true
	}
	return false
}

// IsInteger determines if the type is any integer.
func IsInteger(t Type) bool {
	return IsSigned(t) || IsUnsigned(t)
}

// IsFloat determines if the type is a float.
func IsFloat(t Type) bool {
	return t == FTFloat32 || t == FTFloat64
}

// IsScalar determines if the type is a builtin scalar, which is everything but the leafs.
func IsScalar(t Type) bool {
	return t >= FTBool && t <= FTString
}

// IsLeaf determines if the type is one of the standard library leaf types.
func IsLeaf(t Type) bool {
	return t == FTTime || t == FTDuration || t == FTAddr
}

// Import is the package a generated file must import to name the type, or "".
func (t Type) Import() string {
	switch t {
	case FTTime, FTDuration:
		return "time"
	case FTAddr:
		return "net/netip"
	}
	return ""
}

// Bits is the size of a number type in bits, or 0 for anything else.
func Bits(t Type) int {
	switch t {
	case FTInt8, FTUint8:
		return 8
	case FTInt16, FTUint16:
		return 16
	case FTInt32, FTUint32, FTFloat32:
		return 32
	case FTInt64, FTUint64, FTInt, FTUint, FTFloat64:
		return 64
	}
	return 0
}
