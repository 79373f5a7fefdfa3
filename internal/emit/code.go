package emit

import (
	"fmt"
	"strings"
)

// code accumulates Go source one line at a time. Output is run through go/format later, so
// indentation only needs to keep the text readable in diagnostics.
type code struct {
	b      strings.Builder
	indent int
}

func (c *code) line(format string, args ...any) {
	for i := 0; i < c.indent; i++ {
		c.b.WriteByte('\t')
	}
	fmt.Fprintf(&c.b, format, args...)
	c.b.WriteByte('\n')
}

// open writes a line ending in '{' and indents what follows.
func (c *code) open(format string, args ...any) {
	c.line(format, args...)
	c.indent++
}

// close dedents and writes the closing line, usually "}".
func (c *code) close(format string, args ...any) {
	c.indent--
	c.line(format, args...)
}

func (c *code) blank() {
	c.b.WriteByte('\n')
}

func (c *code) String() string {
	return c.b.String()
}

// operand is a value being written. Expr must be addressable, which everything the emitters
// produce is: a field through the record pointer, a slice or array element, a local, or a
// pointer dereference.
type operand string

// ptr returns an expression for the operand's address.
func (o operand) ptr() string {
	if strings.HasPrefix(string(o), "*") {
		return string(o)[1:]
	}
	return "&" + string(o)
}
