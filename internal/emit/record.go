package emit

import (
	"fmt"
	"strconv"

	"github.com/bearlytools/shapejson/internal/shape"
	"github.com/bearlytools/shapejson/languages/go/naming"
)

// Record is the encoder and decoder of one record type.
type Record struct {
	Node *shape.Node
	// Names is the name of the naming table variable.
	Names  string
	Table  []naming.Variants
	Encode string
	Decode string
	// Methods is set when the record gets EncodeJSON and DecodeJSON methods. Generic
	// instantiations cannot have methods of their own.
	Methods bool
}

// EncodeFunc is the name of the record's encoder.
func (r Record) EncodeFunc() string { return encodeFunc(r.Node) }

// DecodeFunc is the name of the record's decoder.
func (r Record) DecodeFunc() string { return decodeFunc(r.Node) }

func recordFor(n *shape.Node) Record {
	r := Record{
		Node:    n,
		Names:   namesVar(n),
		Encode:  recordEncoder(n),
		Decode:  recordDecoder(n),
		Methods: !n.Type.Generic(),
	}
	for _, f := range n.Fields {
		r.Table = append(r.Table, f.Names)
	}
	return r
}

// recordEncoder writes fields in declaration order. The Tracker push happens before '{' so a
// cycle aborts the call before any of the repeated object is written.
func recordEncoder(n *shape.Node) string {
	c := &code{}
	c.open("func %s(s *codec.Sink, v *%s, tr *cycle.Tracker) {", encodeFunc(n), n.GoType)
	c.open("if v == nil {")
	c.line("s.Null()")
	c.line("return")
	c.close("}")
	c.open("if !tr.Push(v) {")
	c.line("s.Cycle(%s)", strconv.Quote(n.GoType))
	c.line("return")
	c.close("}")
	c.line("defer tr.Pop(v)")
	c.blank()
	c.line("s.BeginObject()")
	for i, f := range n.Fields {
		c.line("s.Name(&%s[%d])", namesVar(n), i)
		c.line("%s", writeStmt(f.Node, operand("v."+f.Field.Name)))
	}
	c.line("s.EndObject()")
	c.close("}")
	return c.String()
}

// recordDecoder reads members in wire order into one local per settable field, skipping
// names it does not know, and builds the value in a single composite literal at the end.
func recordDecoder(n *shape.Node) string {
	c := &code{}
	c.open("func %s(c *codec.Cursor) %s {", decodeFunc(n), n.GoType)

	type local struct {
		name  string
		index int
		f     *shape.FieldNode
	}
	var locals []local
	for i, f := range n.Fields {
		if f.Field.Settable() {
			locals = append(locals, local{name: "f" + strconv.Itoa(i), index: i, f: f})
		}
	}

	if len(locals) > 0 {
		c.open("var (")
		for _, l := range locals {
			c.line("%s %s", l.name, l.f.Type)
		}
		c.close(")")
	}
	c.open("if !c.BeginObject() {")
	c.line("return %s{}", n.GoType)
	c.close("}")

	c.open("for c.More() {")
	if len(locals) == 0 {
		c.line("c.ReadName()")
		c.line("c.Skip()")
	} else {
		c.line("name := c.ReadName()")
		c.line("switch {")
		for _, l := range locals {
			c.line("case c.Match(name, &%s[%d]):", namesVar(n), l.index)
			c.indent++
			c.line("%s = %s", l.name, readExpr(l.f.Node))
			c.indent--
		}
		c.line("default:")
		c.indent++
		c.line("c.Skip()")
		c.indent--
		c.line("}")
	}
	c.close("}")
	c.line("c.EndObject()")

	if len(locals) == 0 {
		c.line("return %s{}", n.GoType)
	} else {
		c.open("return %s{", n.GoType)
		for _, l := range locals {
			c.line("%s: %s,", l.f.Field.Name, l.name)
		}
		c.close("}")
	}
	c.close("}")
	return c.String()
}

// VariantsLiteral spells v as an element of a naming table literal, leaving out an empty
// Custom.
func VariantsLiteral(v naming.Variants) string {
	s := fmt.Sprintf("{Exact: %q, Camel: %q, Snake: %q, Kebab: %q", v.Exact, v.Camel, v.Snake, v.Kebab)
	if v.Custom != "" {
		s += fmt.Sprintf(", Custom: %q", v.Custom)
	}
	return s + "}"
}
