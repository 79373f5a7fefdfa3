package shape

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/bearlytools/shapejson/internal/descr"
	"github.com/bearlytools/shapejson/internal/field"
	"github.com/bearlytools/shapejson/languages/go/naming"
)

// Node is the classification of one type reference. Nodes are shared: every reference with
// the same canonical spelling has the same *Node.
type Node struct {
	Kind Kind
	// GoType is the canonical Go spelling, like "[]*Address" or "Page[User]".
	GoType string
	// Ident is an identifier fragment unique within one Set, used to name generated
	// functions, like "SliceOptAddress" or "PageOfUser".
	Ident string

	// Prim is the primitive for Scalar and LeafBuiltin, and the underlying integer type of
	// an Enumeration.
	Prim field.Type
	// Named is set when a Scalar or Enumeration is a declared type rather than a builtin.
	Named string

	// Elem is the underlying node of an Optional, the element of a Sequence or the value of
	// a Map.
	Elem *Node
	// Key is the key of a Map.
	Key *Node
	// Indexed is set for a Sequence that is a fixed length array of Len elements.
	Indexed bool
	Len     int

	// Type is the descriptor of a Record with type arguments substituted.
	Type *descr.Type
	// Fields are the classified fields of a Record, in declaration order. They are filled
	// in after the Record itself is created, so a Record can reach itself.
	Fields []*FieldNode
}

// FieldNode is one classified record field.
type FieldNode struct {
	Field *descr.Field
	// Type is the field's reference after type argument substitution.
	Type *descr.Ref
	Node *Node
	// Names are the field's wire spellings.
	Names naming.Variants
}

// Cast reports if reads and writes of a Scalar or Enumeration convert to and from Named.
func (n *Node) Cast() bool {
	return n.Named != ""
}

// Set is the transitively closed result of classifying a group of roots.
type Set struct {
	// Roots are the nodes the caller asked for, in order.
	Roots []*Node
	// Records are every Record reached, roots first and then breadth first.
	Records []*Node
	// Shared are the Optional, Sequence and Map nodes reached, each of which gets one helper
	// pair no matter how many fields use it. Constituents come before the nodes that use them.
	Shared []*Node
	// Imports are the packages needed to spell the primitive types reached.
	Imports []string
}

// Stats counts the nodes in a Set.
type Stats struct {
	Records   int
	Optionals int
	Sequences int
	Maps      int
	Fields    int
}

// Stats counts the nodes in the Set.
func (s *Set) Stats() Stats {
	st := Stats{Records: len(s.Records)}
	for _, r := range s.Records {
		st.Fields += len(r.Fields)
	}
	for _, n := range s.Shared {
		switch n.Kind {
		case Optional:
			st.Optionals++
		case Sequence:
			st.Sequences++
		case Map:
			st.Maps++
		}
	}
	return st
}

// Describe writes a table of every record field and shared shape in the Set.
func (s *Set) Describe(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RECORD\tFIELD\tTYPE\tKIND\tWIRE")
	for _, r := range s.Records {
		for _, f := range r.Fields {
			wire := f.Names.Exact
			if f.Names.Custom != "" {
				wire = f.Names.Custom
			}
			if !f.Field.Settable() {
				wire += " (readonly)"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.GoType, f.Field.Name, f.Node.GoType, f.Node.Kind, wire)
		}
	}
	if len(s.Shared) > 0 {
		fmt.Fprintln(tw, "\nSHARED\tKIND\tHELPER\t\t")
		for _, n := range s.Shared {
			fmt.Fprintf(tw, "%s\t%s\t%s\t\t\n", n.GoType, n.Kind, n.Ident)
		}
	}
	return tw.Flush()
}

// Diagnostic is a generation time problem with one type or field.
type Diagnostic struct {
	// Type is the Go spelling of the type the problem was found in.
	Type string
	// Field is the field name, if the problem is with one field.
	Field string
	Msg   string
}

func (d *Diagnostic) Error() string {
	b := strings.Builder{}
	b.WriteString(d.Type)
	if d.Field != "" {
		b.WriteByte('.')
		b.WriteString(d.Field)
	}
	b.WriteString(": ")
	b.WriteString(d.Msg)
	return b.String()
}
