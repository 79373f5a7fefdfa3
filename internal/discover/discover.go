// Package discover finds the types a codec is generated for by parsing Go source. It
// collects struct declarations, named scalar types and enums, which are named integer
// types that have typed constants declared in the same sources.
package discover

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	iofs "io/fs"
	"reflect"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/bearlytools/shapejson/internal/descr"
	"github.com/bearlytools/shapejson/internal/field"
)

// Source is one Go file.
type Source struct {
	// Name is used in positions of error messages.
	Name    string
	Content []byte
}

// Files reads paths from fsys and discovers the types they declare.
func Files(fsys iofs.ReadFileFS, paths ...string) ([]*descr.Type, error) {
	srcs := make([]Source, 0, len(paths))
	for _, p := range paths {
		b, err := fsys.ReadFile(p)
		if err != nil {
			return nil, errors.Wrapf(err, "reading Go source %s", p)
		}
		srcs = append(srcs, Source{Name: p, Content: b})
	}
	return Parse(srcs...)
}

// Parse discovers the types declared in srcs. Generated files are ignored. Types are
// returned in declaration order.
func Parse(srcs ...Source) ([]*descr.Type, error) {
	d := &discovery{
		fset:   token.NewFileSet(),
		byName: map[string]*descr.Type{},
		consts: map[string][]descr.EnumValue{},
	}
	for _, src := range srcs {
		f, err := parser.ParseFile(d.fset, src.Name, src.Content, parser.ParseComments|parser.SkipObjectResolution)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing %s", src.Name)
		}
		if ast.IsGenerated(f) {
			continue
		}
		if err := d.file(f); err != nil {
			return nil, err
		}
	}
	return d.finish(), nil
}

type discovery struct {
	fset   *token.FileSet
	types  []*descr.Type
	byName map[string]*descr.Type
	// consts are the typed constants found, by type name.
	consts map[string][]descr.EnumValue
}

func (d *discovery) file(f *ast.File) error {
	for _, decl := range f.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok {
			continue
		}
		switch gd.Tok {
		case token.TYPE:
			for _, spec := range gd.Specs {
				ts := spec.(*ast.TypeSpec)
				doc := ts.Doc
				if doc == nil && len(gd.Specs) == 1 {
					doc = gd.Doc
				}
				if err := d.typeSpec(ts, doc); err != nil {
					return err
				}
			}
		case token.CONST:
			d.constBlock(gd)
		}
	}
	return nil
}

func (d *discovery) typeSpec(ts *ast.TypeSpec, doc *ast.CommentGroup) error {
	// Aliases name a type declared elsewhere.
	if ts.Assign.IsValid() {
		return nil
	}

	t := &descr.Type{Name: ts.Name.Name, Doc: strings.TrimSpace(doc.Text())}
	switch x := ts.Type.(type) {
	case *ast.StructType:
		t.Decl = descr.DeclStruct
		if ts.TypeParams != nil {
			for _, p := range ts.TypeParams.List {
				for _, n := range p.Names {
					t.TypeParams = append(t.TypeParams, n.Name)
				}
			}
		}
		t.Fields = fields(x)
	case *ast.Ident:
		ft := field.Lookup(x.Name)
		if !field.IsScalar(ft) {
			return nil
		}
		// Becomes an enum in finish if typed constants are found.
		t.Decl = descr.DeclScalar
		t.Underlying = ft.GoName()
	default:
		return nil
	}

	if _, ok := d.byName[t.Name]; ok {
		return fmt.Errorf("%s: type %s is declared twice", d.fset.Position(ts.Pos()), t.Name)
	}
	d.byName[t.Name] = t
	d.types = append(d.types, t)
	return nil
}

func fields(st *ast.StructType) []*descr.Field {
	var out []*descr.Field
	for _, fl := range st.Fields.List {
		// Embedded fields are not promoted.
		if len(fl.Names) == 0 {
			continue
		}

		wire, readonly, skip := jsonTag(fl.Tag)
		if skip {
			continue
		}
		ref := exprRef(fl.Type)

		for _, n := range fl.Names {
			if !n.IsExported() {
				continue
			}
			out = append(out, &descr.Field{
				Name:     n.Name,
				Type:     ref,
				WireName: wire,
				ReadOnly: readonly,
			})
		}
	}
	return out
}

// jsonTag reads the name override and readonly option of a field's json tag.
func jsonTag(lit *ast.BasicLit) (wire string, readonly, skip bool) {
	if lit == nil {
		return "", false, false
	}
	raw, err := strconv.Unquote(lit.Value)
	if err != nil {
		return "", false, false
	}
	tag, ok := reflect.StructTag(raw).Lookup("json")
	if !ok {
		return "", false, false
	}
	if tag == "-" {
		return "", false, true
	}
	name, opts, _ := strings.Cut(tag, ",")
	for opts != "" {
		var opt string
		opt, opts, _ = strings.Cut(opts, ",")
		if opt == "readonly" {
			readonly = true
		}
	}
	return name, readonly, false
}

// exprRef converts a field's type expression. Expressions with no static shape, like
// channels or funcs, become a named reference spelled as written so that classification
// reports them as unknown types.
func exprRef(e ast.Expr) *descr.Ref {
	switch x := e.(type) {
	case *ast.Ident:
		return descr.Named(x.Name)
	case *ast.SelectorExpr:
		if pkg, ok := x.X.(*ast.Ident); ok {
			return descr.Named(pkg.Name + "." + x.Sel.Name)
		}
	case *ast.StarExpr:
		return descr.Pointer(exprRef(x.X))
	case *ast.ParenExpr:
		return exprRef(x.X)
	case *ast.ArrayType:
		if x.Len == nil {
			return descr.Slice(exprRef(x.Elt))
		}
		if lit, ok := x.Len.(*ast.BasicLit); ok && lit.Kind == token.INT {
			if n, err := strconv.Atoi(lit.Value); err == nil {
				return descr.Array(n, exprRef(x.Elt))
			}
		}
	case *ast.MapType:
		return descr.Map(exprRef(x.Key), exprRef(x.Value))
	case *ast.IndexExpr:
		if base, ok := baseName(x.X); ok {
			return descr.Named(base, exprRef(x.Index))
		}
	case *ast.IndexListExpr:
		if base, ok := baseName(x.X); ok {
			args := make([]*descr.Ref, len(x.Indices))
			for i, a := range x.Indices {
				args[i] = exprRef(a)
			}
			return descr.Named(base, args...)
		}
	case *ast.InterfaceType:
		return descr.Named("any")
	}
	return descr.Named(types.ExprString(e))
}

func baseName(e ast.Expr) (string, bool) {
	switch x := e.(type) {
	case *ast.Ident:
		return x.Name, true
	case *ast.SelectorExpr:
		if pkg, ok := x.X.(*ast.Ident); ok {
			return pkg.Name + "." + x.Sel.Name, true
		}
	}
	return "", false
}

// constBlock records the typed constants of a const declaration. A spec with no type or
// value repeats the previous spec's, with iota advanced, as the language does.
func (d *discovery) constBlock(gd *ast.GenDecl) {
	var (
		typ    string
		values []ast.Expr
	)
	for n, spec := range gd.Specs {
		vs := spec.(*ast.ValueSpec)
		if vs.Type != nil || len(vs.Values) > 0 {
			typ = ""
			if id, ok := vs.Type.(*ast.Ident); ok {
				typ = id.Name
			}
			values = vs.Values
		}
		if typ == "" {
			continue
		}
		for i, name := range vs.Names {
			if name.Name == "_" || i >= len(values) {
				continue
			}
			v, ok := evalConst(values[i], uint64(n), typ)
			if !ok {
				continue
			}
			d.consts[typ] = append(d.consts[typ], descr.EnumValue{Name: name.Name, Value: v})
		}
	}
}

// evalConst evaluates the constant expressions enums are written with: integer literals,
// iota, conversions to the enum type and integer arithmetic. Negative results are not
// enum values.
func evalConst(e ast.Expr, iota uint64, typ string) (uint64, bool) {
	switch x := e.(type) {
	case *ast.BasicLit:
		if x.Kind != token.INT {
			return 0, false
		}
		n, err := strconv.ParseUint(strings.ReplaceAll(x.Value, "_", ""), 0, 64)
		return n, err == nil
	case *ast.Ident:
		if x.Name == "iota" {
			return iota, true
		}
	case *ast.ParenExpr:
		return evalConst(x.X, iota, typ)
	case *ast.CallExpr:
		if id, ok := x.Fun.(*ast.Ident); ok && id.Name == typ && len(x.Args) == 1 {
			return evalConst(x.Args[0], iota, typ)
		}
	case *ast.BinaryExpr:
		l, ok := evalConst(x.X, iota, typ)
		if !ok {
			return 0, false
		}
		r, ok := evalConst(x.Y, iota, typ)
		if !ok {
			return 0, false
		}
		switch x.Op {
		case token.ADD:
			return l + r, true
		case token.SUB:
			return l - r, l >= r
		case token.MUL:
			return l * r, true
		case token.SHL:
			return l << r, true
		case token.OR:
			return l | r, true
		}
	}
	return 0, false
}

// finish turns integer scalars with typed constants into enums.
func (d *discovery) finish() []*descr.Type {
	for _, t := range d.types {
		if t.Decl != descr.DeclScalar || !field.IsInteger(field.Lookup(t.Underlying)) {
			continue
		}
		if vals := d.consts[t.Name]; len(vals) > 0 {
			t.Decl = descr.DeclEnum
			t.Values = vals
		}
	}
	return d.types
}
