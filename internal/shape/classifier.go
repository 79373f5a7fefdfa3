// Package shape classifies Go type references into wire shapes. Classification walks the
// type graph from a set of root records, memoizing every node by its canonical spelling so
// that identical references share one node and, later, one generated helper pair.
package shape

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/bearlytools/shapejson/internal/descr"
	"github.com/bearlytools/shapejson/internal/field"
	"github.com/bearlytools/shapejson/languages/go/naming"
)

// maxInstances bounds how many instantiations of one generic type a Set may hold. A generic
// record whose fields instantiate itself with ever larger arguments would otherwise never
// close.
const maxInstances = 64

// Classifier classifies type references against one Universe. It is not safe for
// concurrent use.
type Classifier struct {
	u *descr.Universe

	memo   map[string]*Node
	failed map[string]bool
	idents map[string]string
	inst   map[string]int

	records []*Node
	shared  []*Node
	imports map[string]bool
	queue   []pending

	diags Diagnostics
}

// pending is a record whose fields have not been classified yet.
type pending struct {
	node   *Node
	params map[string]*descr.Ref
}

// site is where a reference was found, for diagnostics.
type site struct {
	typ   string
	field string
}

// New creates a Classifier for the types in u.
func New(u *descr.Universe) *Classifier {
	return &Classifier{
		u:       u,
		memo:    map[string]*Node{},
		failed:  map[string]bool{},
		idents:  map[string]string{},
		inst:    map[string]int{},
		imports: map[string]bool{},
	}
}

// Classify classifies ref and everything it reaches. The returned error is a Diagnostics
// holding the problems found by this call.
func (c *Classifier) Classify(ref *descr.Ref) (*Node, error) {
	mark := len(c.diags)
	n := c.classify(ref, site{typ: ref.String()})
	c.drain()
	return n, c.since(mark)
}

// ClassifyRoots classifies the records named by roots, which are Go type expressions such
// as "User" or "Page[User]". No roots means every non-generic struct in the Universe.
// Diagnostics are collected for every root rather than stopping at the first, and are
// returned as a Diagnostics error alongside the Set.
func (c *Classifier) ClassifyRoots(roots ...string) (*Set, error) {
	if len(roots) == 0 {
		roots = c.u.Structs()
	}
	mark := len(c.diags)

	var nodes []*Node
	for _, r := range roots {
		ref, err := descr.ParseRef(r)
		if err != nil {
			c.diag(site{typ: r}, "%s", err)
			continue
		}
		n := c.classify(ref, site{typ: ref.String()})
		if n == nil {
			continue
		}
		if n.Kind != Record {
			c.diag(site{typ: n.GoType}, "root is a %s, roots must be records", n.Kind)
			continue
		}
		if !slices.Contains(nodes, n) {
			nodes = append(nodes, n)
		}
	}
	c.drain()

	return c.set(nodes), c.since(mark)
}

// Diagnostics returns every problem found so far.
func (c *Classifier) Diagnostics() Diagnostics {
	return c.diags
}

func (c *Classifier) set(roots []*Node) *Set {
	s := &Set{
		Roots:   roots,
		Records: c.records,
		Shared:  c.shared,
	}
	for imp := range c.imports {
		s.Imports = append(s.Imports, imp)
	}
	slices.Sort(s.Imports)
	return s
}

func (c *Classifier) since(mark int) error {
	if len(c.diags) == mark {
		return nil
	}
	return slices.Clone(c.diags[mark:])
}

func (c *Classifier) diag(at site, format string, args ...any) {
	c.diags = append(c.diags, &Diagnostic{Type: at.typ, Field: at.field, Msg: fmt.Sprintf(format, args...)})
}

// fail records a diagnostic for the reference key and remembers that it failed, so that a
// type used by many fields is only reported once.
func (c *Classifier) fail(key string, at site, format string, args ...any) *Node {
	c.failed[key] = true
	c.diag(at, format, args...)
	return nil
}

// ident returns base, or base with a numeric suffix if another type already uses base.
func (c *Classifier) ident(base, goType string) string {
	for i := 1; ; i++ {
		cand := base
		if i > 1 {
			cand = base + strconv.Itoa(i)
		}
		owner, ok := c.idents[cand]
		if !ok {
			c.idents[cand] = goType
			return cand
		}
		if owner == goType {
			return cand
		}
	}
}

func (c *Classifier) remember(n *Node) *Node {
	c.memo[n.GoType] = n
	if n.Kind.Shared() {
		c.shared = append(c.shared, n)
	}
	return n
}

func (c *Classifier) classify(ref *descr.Ref, at site) *Node {
	key := ref.String()
	if n, ok := c.memo[key]; ok {
		return n
	}
	if c.failed[key] {
		return nil
	}

	switch ref.Form {
	case descr.FormPointer:
		if ref.Elem.Form == descr.FormPointer {
			return c.fail(key, at, "%s: optional of optional is not supported", key)
		}
		elem := c.classify(ref.Elem, at)
		if elem == nil {
			return nil
		}
		return c.remember(&Node{Kind: Optional, GoType: key, Elem: elem, Ident: c.ident("Opt"+elem.Ident, key)})

	case descr.FormSlice:
		// Checked before the sequence case: []byte is a base64 string, not an array.
		if isByte(ref.Elem) {
			return c.remember(&Node{Kind: ByteBlob, GoType: key, Prim: field.FTUint8, Ident: c.ident("Bytes", key)})
		}
		elem := c.classify(ref.Elem, at)
		if elem == nil {
			return nil
		}
		return c.remember(&Node{Kind: Sequence, GoType: key, Elem: elem, Ident: c.ident("Slice"+elem.Ident, key)})

	case descr.FormArray:
		if ref.Len <= 0 {
			return c.fail(key, at, "%s: array length must be positive", key)
		}
		elem := c.classify(ref.Elem, at)
		if elem == nil {
			return nil
		}
		return c.remember(&Node{
			Kind:    Sequence,
			GoType:  key,
			Elem:    elem,
			Indexed: true,
			Len:     ref.Len,
			Ident:   c.ident("Array"+strconv.Itoa(ref.Len)+elem.Ident, key),
		})

	case descr.FormMap:
		k := c.classify(ref.Key, at)
		if k == nil {
			return nil
		}
		if !k.Kind.Keyable() {
			return c.fail(key, at, "%s: map key %s is a %s, keys must be scalars, leaf builtins or enums", key, k.GoType, k.Kind)
		}
		v := c.classify(ref.Elem, at)
		if v == nil {
			return nil
		}
		return c.remember(&Node{Kind: Map, GoType: key, Key: k, Elem: v, Ident: c.ident("Map"+k.Ident+v.Ident, key)})
	}
	return c.named(ref, key, at)
}

func isByte(r *descr.Ref) bool {
	return r.Form == descr.FormNamed && len(r.Args) == 0 && (r.Name == "byte" || r.Name == "uint8")
}

func (c *Classifier) named(ref *descr.Ref, key string, at site) *Node {
	if len(ref.Args) == 0 {
		if p := field.Lookup(ref.Name); p != field.FTUnknown {
			n := &Node{Kind: Scalar, GoType: key, Prim: p, Ident: c.ident(p.Ident(), key)}
			if field.IsLeaf(p) {
				n.Kind = LeafBuiltin
				c.imports[p.Import()] = true
			}
			return c.remember(n)
		}
	}
	if ref.Name == "any" || strings.HasPrefix(ref.Name, "interface") {
		return c.fail(key, at, "%s has no static shape, open types are not supported", key)
	}

	t, ok := c.u.Lookup(ref.Name)
	if !ok {
		return c.fail(key, at, "unknown type %s", key)
	}

	switch t.Decl {
	case descr.DeclEnum, descr.DeclScalar:
		if len(ref.Args) > 0 {
			return c.fail(key, at, "%s is not generic", t.Name)
		}
		p := field.Lookup(t.Underlying)
		n := &Node{Kind: Scalar, GoType: key, Prim: p, Named: t.Name, Ident: c.ident(t.Name, key)}
		if t.Decl == descr.DeclEnum {
			if !field.IsInteger(p) {
				return c.fail(key, at, "enum %s has underlying type %q, want an integer type", t.Name, t.Underlying)
			}
			n.Kind = Enumeration
		} else if !field.IsScalar(p) {
			return c.fail(key, at, "%s has underlying type %q, want a builtin scalar", t.Name, t.Underlying)
		}
		return c.remember(n)
	case descr.DeclStruct:
		return c.record(t, ref, key, at)
	}
	return c.fail(key, at, "%s has unsupported declaration %s", t.Name, t.Decl)
}

func (c *Classifier) record(t *descr.Type, ref *descr.Ref, key string, at site) *Node {
	switch {
	case len(ref.Args) == 0 && t.Generic():
		return c.fail(key, at, "generic type %s used without type arguments, every type parameter must be bound before generation", t.Name)
	case len(ref.Args) != len(t.TypeParams):
		return c.fail(key, at, "%s has %d type parameters, got %d type arguments", t.Name, len(t.TypeParams), len(ref.Args))
	}

	if t.Generic() {
		c.inst[t.Name]++
		if c.inst[t.Name] > maxInstances {
			return c.fail(key, at, "more than %d instantiations of %s, the generic type expands without bound", maxInstances, t.Name)
		}
	}

	// The node is memoized before anything it refers to is classified, so that fields
	// reaching this record again find it instead of recursing.
	n := &Node{Kind: Record, GoType: key, Type: t}
	c.memo[key] = n
	c.records = append(c.records, n)

	ident := t.Name
	var params map[string]*descr.Ref
	if t.Generic() {
		params = make(map[string]*descr.Ref, len(t.TypeParams))
		argIdents := make([]string, 0, len(ref.Args))
		for i, a := range ref.Args {
			an := c.classify(a, at)
			if an == nil {
				delete(c.memo, key)
				c.records = slices.DeleteFunc(c.records, func(r *Node) bool { return r == n })
				c.failed[key] = true
				return nil
			}
			params[t.TypeParams[i]] = a
			argIdents = append(argIdents, an.Ident)
		}
		ident = t.Name + "Of" + strings.Join(argIdents, "And")
	}
	n.Ident = c.ident(ident, key)
	c.queue = append(c.queue, pending{node: n, params: params})
	return n
}

// drain classifies the fields of queued records until no record is left unvisited.
func (c *Classifier) drain() {
	for len(c.queue) > 0 {
		p := c.queue[0]
		c.queue = c.queue[1:]
		c.fields(p)
	}
}

func (c *Classifier) fields(p pending) {
	at := site{typ: p.node.GoType}
	for _, f := range p.node.Type.Fields {
		at.field = f.Name
		ref := f.Type.Substitute(p.params)
		fn := c.classify(ref, at)
		if fn == nil {
			continue
		}
		p.node.Fields = append(p.node.Fields, &FieldNode{
			Field: f,
			Type:  ref,
			Node:  fn,
			Names: naming.New(f.Name, f.WireName),
		})
	}
	c.checkNames(p.node)
}

var conventions = []naming.Convention{naming.Exact, naming.Camel, naming.Snake, naming.Kebab}

// checkNames reports two fields of n that share a wire name under some convention.
func (c *Classifier) checkNames(n *Node) {
	reported := map[[2]string]bool{}
	for _, conv := range conventions {
		seen := make(map[string]string, len(n.Fields))
		for _, f := range n.Fields {
			w := f.Names.Expected(conv)
			other, ok := seen[w]
			if !ok {
				seen[w] = f.Field.Name
				continue
			}
			pair := [2]string{other, f.Field.Name}
			if reported[pair] {
				continue
			}
			reported[pair] = true
			c.diag(site{typ: n.GoType, field: f.Field.Name}, "wire name %q under %s naming is also used by field %s", w, conv, other)
		}
	}
}

// Diagnostics is a list of generation time problems. It is returned as an error.
type Diagnostics []*Diagnostic

func (d Diagnostics) Error() string {
	lines := make([]string, 0, len(d))
	for _, x := range d {
		lines = append(lines, x.Error())
	}
	return strings.Join(lines, "\n")
}
