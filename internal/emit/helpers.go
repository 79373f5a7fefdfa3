package emit

import (
	"fmt"

	"github.com/bearlytools/shapejson/internal/shape"
)

// Helper is the read/write function pair shared by every use of one Optional, Sequence or
// Map shape.
type Helper struct {
	Node  *shape.Node
	Read  string
	Write string
}

func helperFor(n *shape.Node) Helper {
	switch n.Kind {
	case shape.Optional:
		return optionalHelper(n)
	case shape.Sequence:
		if n.Indexed {
			return arrayHelper(n)
		}
		return sliceHelper(n)
	case shape.Map:
		return mapHelper(n)
	}
	panic(fmt.Sprintf("bug: %s nodes have no helpers", n.Kind))
}

func readSignature(c *code, n *shape.Node) {
	c.open("func %s(c *codec.Cursor) %s {", readFunc(n), n.GoType)
}

func writeSignature(c *code, n *shape.Node) {
	c.open("func %s(s *codec.Sink, v %s, tr *cycle.Tracker) {", writeFunc(n), paramType(n))
}

func nullIfNil(c *code) {
	c.open("if v == nil {")
	c.line("s.Null()")
	c.line("return")
	c.close("}")
}

func optionalHelper(n *shape.Node) Helper {
	r := &code{}
	readSignature(r, n)
	r.open("if c.ReadNull() {")
	r.line("return nil")
	r.close("}")
	r.line("v := %s", readExpr(n.Elem))
	r.line("return &v")
	r.close("}")

	w := &code{}
	writeSignature(w, n)
	nullIfNil(w)
	w.line("%s", writeStmt(n.Elem, "*v"))
	w.close("}")

	return Helper{Node: n, Read: r.String(), Write: w.String()}
}

// sliceHelper reads null as a nil slice and [] as an empty one, and writes them back the
// same way.
func sliceHelper(n *shape.Node) Helper {
	r := &code{}
	readSignature(r, n)
	r.open("if !c.BeginArray() {")
	r.line("return nil")
	r.close("}")
	r.line("out := %s{}", n.GoType)
	r.open("for c.More() {")
	r.line("out = append(out, %s)", readExpr(n.Elem))
	r.close("}")
	r.line("c.EndArray()")
	r.line("return out")
	r.close("}")

	w := &code{}
	writeSignature(w, n)
	nullIfNil(w)
	w.line("s.BeginArray()")
	w.open("for i := range v {")
	w.line("%s", writeStmt(n.Elem, "v[i]"))
	w.close("}")
	w.line("s.EndArray()")
	w.close("}")

	return Helper{Node: n, Read: r.String(), Write: w.String()}
}

// arrayHelper fills a fixed length array. Elements past its length are skipped and missing
// ones keep their zero value.
func arrayHelper(n *shape.Node) Helper {
	r := &code{}
	readSignature(r, n)
	r.line("var out %s", n.GoType)
	r.open("if !c.BeginArray() {")
	r.line("return out")
	r.close("}")
	r.open("for i := 0; c.More(); i++ {")
	r.open("if i >= len(out) {")
	r.line("c.Skip()")
	r.line("continue")
	r.close("}")
	r.line("out[i] = %s", readExpr(n.Elem))
	r.close("}")
	r.line("c.EndArray()")
	r.line("return out")
	r.close("}")

	w := &code{}
	writeSignature(w, n)
	w.line("s.BeginArray()")
	w.open("for i := range v {")
	w.line("%s", writeStmt(n.Elem, "v[i]"))
	w.close("}")
	w.line("s.EndArray()")
	w.close("}")

	return Helper{Node: n, Read: r.String(), Write: w.String()}
}

// mapHelper writes keys in sorted order. The key is parsed before the value is read, since
// the member name is only valid until the next read.
func mapHelper(n *shape.Node) Helper {
	r := &code{}
	readSignature(r, n)
	r.open("if !c.BeginObject() {")
	r.line("return nil")
	r.close("}")
	r.line("out := %s{}", n.GoType)
	r.open("for c.More() {")
	r.line("name := c.ReadName()")
	r.line("k := %s", keyParse(n.Key, "name"))
	r.line("out[k] = %s", readExpr(n.Elem))
	r.close("}")
	r.line("c.EndObject()")
	r.line("return out")
	r.close("}")

	w := &code{}
	writeSignature(w, n)
	nullIfNil(w)
	w.line("s.BeginObject()")
	w.open("for _, k := range %s {", sortedKeys(n.Key, "v"))
	w.line("%s", keyWrite(n.Key, "k"))
	w.line("val := v[k]")
	w.line("%s", writeStmt(n.Elem, "val"))
	w.close("}")
	w.line("s.EndObject()")
	w.close("}")

	return Helper{Node: n, Read: r.String(), Write: w.String()}
}
