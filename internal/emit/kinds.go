package emit

import (
	"fmt"

	"github.com/bearlytools/shapejson/internal/field"
	"github.com/bearlytools/shapejson/internal/shape"
)

// emitter turns one Kind into code. read returns an expression of the node's Go type that
// consumes one JSON value from the Cursor "c". write returns a statement writing val to the
// Sink "s", with the Tracker "tr" in scope.
type emitter interface {
	read(n *shape.Node) string
	write(n *shape.Node, val operand) string
}

// emitterFor is the only place kinds map to emitters.
func emitterFor(k shape.Kind) emitter {
	switch k {
	case shape.Scalar:
		return scalarEmitter{}
	case shape.LeafBuiltin:
		return leafEmitter{}
	case shape.Enumeration:
		return enumEmitter{}
	case shape.Optional, shape.Sequence, shape.Map:
		return sharedEmitter{}
	case shape.ByteBlob:
		return bytesEmitter{}
	case shape.Record:
		return recordEmitter{}
	}
	panic(fmt.Sprintf("bug: no emitter for kind %s", k))
}

func readExpr(n *shape.Node) string {
	return emitterFor(n.Kind).read(n)
}

func writeStmt(n *shape.Node, val operand) string {
	return emitterFor(n.Kind).write(n, val)
}

// Function names of generated code. Every name starts with "shape" so it cannot collide with
// the package's own declarations, which are exported or start with another word.

func encodeFunc(n *shape.Node) string { return "shapeEncode" + n.Ident }
func decodeFunc(n *shape.Node) string { return "shapeDecode" + n.Ident }
func readFunc(n *shape.Node) string   { return "shapeRead" + n.Ident }
func writeFunc(n *shape.Node) string  { return "shapeWrite" + n.Ident }
func namesVar(n *shape.Node) string   { return "shape" + n.Ident + "Names" }

type scalarEmitter struct{}

func (scalarEmitter) read(n *shape.Node) string {
	switch {
	case n.Prim == field.FTBool:
		return cast(n, "c.ReadBool()")
	case n.Prim == field.FTString:
		return cast(n, "c.ReadString()")
	}
	return numberRead(n)
}

func (scalarEmitter) write(n *shape.Node, val operand) string {
	switch {
	case n.Prim == field.FTBool:
		return fmt.Sprintf("s.Bool(%s)", uncast(n, string(val)))
	case n.Prim == field.FTString:
		return fmt.Sprintf("s.String(%s)", uncast(n, string(val)))
	}
	return numberWrite(n, val)
}

// numberRead instantiates the generic Cursor read with the node's own type, so named
// types need no conversion.
func numberRead(n *shape.Node) string {
	switch {
	case field.IsSigned(n.Prim):
		return fmt.Sprintf("codec.ReadInt[%s](c)", n.GoType)
	case field.IsUnsigned(n.Prim):
		return fmt.Sprintf("codec.ReadUint[%s](c)", n.GoType)
	case field.IsFloat(n.Prim):
		return fmt.Sprintf("codec.ReadFloat[%s](c)", n.GoType)
	}
	panic(fmt.Sprintf("bug: %s is not a number", n.GoType))
}

func numberWrite(n *shape.Node, val operand) string {
	switch {
	case field.IsSigned(n.Prim):
		return fmt.Sprintf("codec.WriteInt(s, %s)", val)
	case field.IsUnsigned(n.Prim):
		return fmt.Sprintf("codec.WriteUint(s, %s)", val)
	case field.IsFloat(n.Prim):
		return fmt.Sprintf("codec.WriteFloat(s, %s)", val)
	}
	panic(fmt.Sprintf("bug: %s is not a number", n.GoType))
}

// cast converts expr, of the node's primitive type, to the node's named type.
func cast(n *shape.Node, expr string) string {
	if !n.Cast() {
		return expr
	}
	return n.Named + "(" + expr + ")"
}

// uncast converts expr, of the node's named type, to its primitive type.
func uncast(n *shape.Node, expr string) string {
	if !n.Cast() {
		return expr
	}
	return n.Prim.GoName() + "(" + expr + ")"
}

type leafEmitter struct{}

func (leafEmitter) read(n *shape.Node) string {
	return fmt.Sprintf("c.Read%s()", n.Prim.Ident())
}

func (leafEmitter) write(n *shape.Node, val operand) string {
	return fmt.Sprintf("s.%s(%s)", n.Prim.Ident(), val)
}

// enumEmitter writes the ordinal, not the value's name.
type enumEmitter struct{}

func (enumEmitter) read(n *shape.Node) string {
	return numberRead(n)
}

func (enumEmitter) write(n *shape.Node, val operand) string {
	return numberWrite(n, val)
}

type bytesEmitter struct{}

func (bytesEmitter) read(n *shape.Node) string {
	return "c.ReadBytes()"
}

func (bytesEmitter) write(n *shape.Node, val operand) string {
	return fmt.Sprintf("s.Bytes(%s)", val)
}

// sharedEmitter calls the helper pair generated once for each Optional, Sequence and Map
// shape.
type sharedEmitter struct{}

func (sharedEmitter) read(n *shape.Node) string {
	return readFunc(n) + "(c)"
}

func (sharedEmitter) write(n *shape.Node, val operand) string {
	arg := string(val)
	if n.Indexed {
		arg = val.ptr()
	}
	return fmt.Sprintf("%s(s, %s, tr)", writeFunc(n), arg)
}

type recordEmitter struct{}

func (recordEmitter) read(n *shape.Node) string {
	return decodeFunc(n) + "(c)"
}

func (recordEmitter) write(n *shape.Node, val operand) string {
	return fmt.Sprintf("%s(s, %s, tr)", encodeFunc(n), val.ptr())
}

// paramType is the Go type a write helper or encoder takes for n. Records and arrays are
// passed by pointer.
func paramType(n *shape.Node) string {
	if n.Kind == shape.Record || n.Indexed {
		return "*" + n.GoType
	}
	return n.GoType
}
