// Package idl parses .shape files, which describe types for packages that have no Go source
// for them. The generated file declares the types along with their codecs.
package idl

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/gostdlib/base/context"
	"github.com/johnsiilver/halfpike"

	"github.com/bearlytools/shapejson/internal/descr"
	"github.com/bearlytools/shapejson/internal/field"
)

/*
package {{package name}}

// Doc comments are kept.
Enum {{Name}} {{integer type}} {
	{{Name}} @{{Number}}
}

Scalar {{Name}} {{builtin type}}

Struct {{Name}} {
	{{Name}} {{Type}} [json({{wire name}})] [readonly]
}
*/

// File is a parsed .shape file.
type File struct {
	Package string
	// Types are the declared types in file order.
	Types []*descr.Type

	names map[string]bool
	doc   []string
	// docEnd is the line number of the last comment line in doc.
	docEnd int
}

// New creates a File to parse into.
func New() *File {
	return &File{names: map[string]bool{}}
}

// Parse parses the content of a .shape file.
func Parse(ctx context.Context, content string) (*File, error) {
	f := New()
	if err := halfpike.Parse(ctx, content, f); err != nil {
		return nil, err
	}
	return f, nil
}

// Validate implements halfpike.Validator.
func (f *File) Validate() error {
	if f.Package == "" {
		return fmt.Errorf("file has no 'package' line")
	}
	return nil
}

// Start is the start point for reading the IDL.
func (f *File) Start(ctx context.Context, p *halfpike.Parser) halfpike.ParseFn {
	return f.ParsePackage
}

// SkipLinesWithComments moves past comment lines. Comment text is held as the doc of the
// next declaration. halfpike does not return blank lines, so a doc separated from the next
// line by a gap in line numbers is dropped.
func (f *File) SkipLinesWithComments(p *halfpike.Parser) {
	for {
		l := p.Next()
		if p.EOF(l) {
			p.Backup()
			return
		}
		if len(f.doc) > 0 && l.LineNum > f.docEnd+1 {
			f.doc = nil
		}
		if blank(l) || !strings.HasPrefix(l.Items[0].Val, "//") {
			p.Backup()
			return
		}
		text := strings.TrimPrefix(strings.TrimSpace(l.Raw), "//")
		f.doc = append(f.doc, strings.TrimPrefix(text, " "))
		f.docEnd = l.LineNum
	}
}

// takeDoc returns the held doc comment and clears it.
func (f *File) takeDoc() string {
	d := strings.Join(f.doc, "\n")
	f.doc = nil
	return d
}

// ParsePackage finds the package line.
func (f *File) ParsePackage(ctx context.Context, p *halfpike.Parser) halfpike.ParseFn {
	f.SkipLinesWithComments(p)
	f.doc = nil

	line := p.Next()

	if len(line.Items) < 3 {
		return p.Errorf("[Line %d] error: got %q, want: 'package {{package name}}'", line.LineNum, line.Raw)
	}

	if err := caseSensitiveCheck("package", line.Items[0].Val); err != nil {
		return p.Errorf("[Line %d] error: %w", line.LineNum, err)
	}

	if err := validPackage(line.Items[1].Val); err != nil {
		return p.Errorf("[Line %d] error: %w", line.LineNum, err)
	}
	f.Package = line.Items[1].Val

	if err := commentOrEOL(line, 2); err != nil {
		return p.Errorf("[Line %d] error: %w", line.LineNum, err)
	}

	return f.FindNext
}

// FindNext finds the next top level declaration.
func (f *File) FindNext(ctx context.Context, p *halfpike.Parser) halfpike.ParseFn {
	f.SkipLinesWithComments(p)

	line := p.Next()
	if p.EOF(line) {
		return nil
	}

	switch line.Items[0].Val {
	case "package":
		return p.Errorf("[Line %d] error: duplicate 'package' line found", line.LineNum)
	case "Enum":
		p.Backup()
		return f.ParseEnum
	case "Scalar":
		p.Backup()
		return f.ParseScalar
	case "Struct":
		p.Backup()
		return f.ParseStruct
	}
	return p.Errorf("[Line %d] do not understand this line", line.LineNum)
}

// ParseEnum parses an Enum block.
func (f *File) ParseEnum(ctx context.Context, p *halfpike.Parser) halfpike.ParseFn {
	t := &descr.Type{Decl: descr.DeclEnum, Doc: f.takeDoc()}
	if err := parseEnum(p, t); err != nil {
		return p.Errorf("%s", err)
	}
	if err := f.add(t); err != nil {
		return p.Errorf("%s", err)
	}
	return f.FindNext
}

// ParseScalar parses a Scalar line.
func (f *File) ParseScalar(ctx context.Context, p *halfpike.Parser) halfpike.ParseFn {
	t := &descr.Type{Decl: descr.DeclScalar, Doc: f.takeDoc()}
	l := p.Next()
	if len(l.Items) < 4 {
		return p.Errorf("[Line %d]: error: got %q, want: 'Scalar {{Name}} {{builtin type}}'", l.LineNum, l.Raw)
	}
	if err := validateIdent(l.Items[1].Val); err != nil {
		return p.Errorf("[Line %d]: error: Scalar identifier: %s", l.LineNum, err)
	}
	t.Name = l.Items[1].Val

	ft := field.Lookup(l.Items[2].Val)
	if !field.IsScalar(ft) {
		return p.Errorf("[Line %d]: error: Scalar %s must have a builtin bool, number or string type, got %q", l.LineNum, t.Name, l.Items[2].Val)
	}
	t.Underlying = ft.GoName()

	if err := commentOrEOL(l, 3); err != nil {
		return p.Errorf("[Line %d]: error: %s", l.LineNum, err)
	}
	if err := f.add(t); err != nil {
		return p.Errorf("%s", err)
	}
	return f.FindNext
}

// ParseStruct parses a Struct block.
func (f *File) ParseStruct(ctx context.Context, p *halfpike.Parser) halfpike.ParseFn {
	t := &descr.Type{Decl: descr.DeclStruct, Doc: f.takeDoc()}
	if err := parseStruct(p, t); err != nil {
		return p.Errorf("%s", err)
	}
	if err := f.add(t); err != nil {
		return p.Errorf("%s", err)
	}
	return f.FindNext
}

func (f *File) add(t *descr.Type) error {
	if f.names[t.Name] {
		return fmt.Errorf("error: found two top level identifiers named %q", t.Name)
	}
	f.names[t.Name] = true
	f.Types = append(f.Types, t)
	return nil
}

func parseEnum(p *halfpike.Parser, t *descr.Type) error {
	l := p.Next()
	if len(l.Items) < 5 {
		return fmt.Errorf("[Line %d]: error: Enum line has incorrect format", l.LineNum)
	}

	if err := validateIdent(l.Items[1].Val); err != nil {
		return fmt.Errorf("[Line %d]: error: Enum identifier: %w", l.LineNum, err)
	}
	t.Name = l.Items[1].Val

	ft := field.Lookup(l.Items[2].Val)
	if !field.IsInteger(ft) {
		return fmt.Errorf("[Line %d]: error: expected an integer type like 'uint8', got %q", l.LineNum, l.Items[2].Val)
	}
	t.Underlying = ft.GoName()

	if l.Items[3].Val != "{" {
		return fmt.Errorf("[Line %d]: error: expected '{' at the end of the line, got %q", l.LineNum, l.Items[3].Val)
	}

	if err := commentOrEOL(l, 4); err != nil {
		return fmt.Errorf("[Line %d]: error: %w", l.LineNum, err)
	}

	// Values are never negative, so a signed type loses its sign bit.
	bits := field.Bits(ft)
	if field.IsSigned(ft) {
		bits--
	}

	names := map[string]bool{}
	values := map[uint64]string{}
	for {
		l = p.Next()
		if p.EOF(l) {
			return fmt.Errorf("[Line %d]: Malformed Enum, EOF reached before closing '}'", l.LineNum)
		}
		if blank(l) || strings.HasPrefix(l.Items[0].Val, "//") {
			continue
		}
		if l.Items[0].Val == "}" {
			break
		}
		if len(l.Items) < 3 {
			return fmt.Errorf("[Line %d]: Malformed Enum entry", l.LineNum)
		}
		name := l.Items[0].Val
		if err := validateIdent(name); err != nil {
			return fmt.Errorf("[Line %d]: error: Enum identifier: %w", l.LineNum, err)
		}
		if names[name] {
			return fmt.Errorf("[Line %d]: error: Enum %q already contains enumerator %q", l.LineNum, t.Name, name)
		}
		if !strings.HasPrefix(l.Items[1].Val, "@") {
			return fmt.Errorf("[Line %d]: error: expected @{{Number}} after identifier, got %q", l.LineNum, l.Items[1].Val)
		}
		n, err := strconv.ParseUint(strings.TrimPrefix(l.Items[1].Val, "@"), 10, bits)
		if err != nil {
			return fmt.Errorf("[Line %d]: error: expected @{{Number}} that fits a %s after identifier, got %q", l.LineNum, ft, l.Items[1].Val)
		}
		if other, ok := values[n]; ok {
			return fmt.Errorf("[Line %d]: error: Enum %q already contains enumerator(%s) with value %d", l.LineNum, t.Name, other, n)
		}
		names[name] = true
		values[n] = name
		t.Values = append(t.Values, descr.EnumValue{Name: name, Value: n})

		if err := commentOrEOL(l, 2); err != nil {
			return fmt.Errorf("[Line %d]: error: %w", l.LineNum, err)
		}
	}
	// We are on the line with }.
	if len(t.Values) == 0 {
		return fmt.Errorf("Enum %q has no entries, which is not valid", t.Name)
	}
	if err := commentOrEOL(l, 1); err != nil {
		return fmt.Errorf("[Line %d]: error: %w", l.LineNum, err)
	}
	return nil
}

func parseStruct(p *halfpike.Parser, t *descr.Type) error {
	l := p.Next()
	if len(l.Items) < 4 {
		return fmt.Errorf("[Line %d]: error: Struct line has incorrect format", l.LineNum)
	}
	if err := validateIdent(l.Items[1].Val); err != nil {
		return fmt.Errorf("[Line %d]: error: Struct identifier: %w", l.LineNum, err)
	}
	t.Name = l.Items[1].Val

	if l.Items[2].Val != "{" {
		return fmt.Errorf("[Line %d]: error: expected '{' after the Struct name, got %q", l.LineNum, l.Items[2].Val)
	}
	if err := commentOrEOL(l, 3); err != nil {
		return fmt.Errorf("[Line %d]: error: %w", l.LineNum, err)
	}

	names := map[string]bool{}
	for {
		l = p.Next()
		if p.EOF(l) {
			return fmt.Errorf("[Line %d]: Malformed Struct, EOF reached before closing '}'", l.LineNum)
		}
		if blank(l) || strings.HasPrefix(l.Items[0].Val, "//") {
			continue
		}
		if l.Items[0].Val == "}" {
			if err := commentOrEOL(l, 1); err != nil {
				return fmt.Errorf("[Line %d]: error: %w", l.LineNum, err)
			}
			return nil
		}

		fl, err := parseField(l)
		if err != nil {
			return fmt.Errorf("[Line %d]: error: Struct %s: %w", l.LineNum, t.Name, err)
		}
		if names[fl.Name] {
			return fmt.Errorf("[Line %d]: error: Struct %s already has a field %q", l.LineNum, t.Name, fl.Name)
		}
		names[fl.Name] = true
		t.Fields = append(t.Fields, fl)
	}
}

// parseField parses "Name Type [json(wire)] [readonly] [// comment]".
func parseField(l halfpike.Line) (*descr.Field, error) {
	if len(l.Items) < 3 {
		return nil, fmt.Errorf("want '{{Name}} {{Type}}', got %q", strings.TrimSpace(l.Raw))
	}
	if err := validateIdent(l.Items[0].Val); err != nil {
		return nil, fmt.Errorf("field identifier: %w", err)
	}
	ref, err := descr.ParseRef(l.Items[1].Val)
	if err != nil {
		return nil, err
	}
	fl := &descr.Field{Name: l.Items[0].Val, Type: ref}

	for _, item := range l.Items[2:] {
		v := strings.TrimSpace(item.Val)
		switch {
		case v == "", strings.HasPrefix(v, "//"):
			return fl, nil
		case v == "readonly":
			if fl.ReadOnly {
				return nil, fmt.Errorf("field %s has 'readonly' twice", fl.Name)
			}
			fl.ReadOnly = true
		case strings.HasPrefix(v, "json(") && strings.HasSuffix(v, ")"):
			if fl.WireName != "" {
				return nil, fmt.Errorf("field %s has two json() names", fl.Name)
			}
			fl.WireName = strings.TrimSuffix(strings.TrimPrefix(v, "json("), ")")
			if fl.WireName == "" {
				return nil, fmt.Errorf("field %s has an empty json() name", fl.Name)
			}
		default:
			return nil, fmt.Errorf("field %s has unknown option %q", fl.Name, v)
		}
	}
	return fl, nil
}

func blank(l halfpike.Line) bool {
	return len(l.Items) == 0 || strings.TrimSpace(l.Items[0].Val) == ""
}

func caseSensitiveCheck(want string, item string) error {
	if item != want {
		if strings.EqualFold(item, want) {
			return fmt.Errorf("%q keyword found, but it is required to be %q", item, want)
		}
		return fmt.Errorf("got: %q, want: %q", item, want)
	}
	return nil
}

func commentOrEOL(line halfpike.Line, from int) error {
	if from >= len(line.Items) || strings.HasPrefix(line.Items[from].Val, "//") {
		return nil
	}

	if len(line.Items[from:]) > 1 {
		return fmt.Errorf("got item %q after %q, which was unexpected", halfpike.ItemJoin(line, from, len(line.Items)), halfpike.ItemJoin(line, 0, from))
	}

	return nil
}

func validPackage(pkgName string) error {
	runes := []rune(pkgName)
	if unicode.IsUpper(runes[0]) {
		return fmt.Errorf("package name cannot start with an uppercase letter")
	}
	if !unicode.IsLetter(runes[0]) {
		return fmt.Errorf("package name must start with a letter")
	}
	for _, r := range runes[1:] {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_' {
			continue
		}
		return fmt.Errorf("package name contains character %q which is invalid for a package name", r)
	}
	return nil
}

func validateIdent(ident string) error {
	runes := []rune(ident)
	if len(runes) == 0 {
		return fmt.Errorf("identifier is empty")
	}
	if !unicode.IsUpper(runes[0]) {
		return fmt.Errorf("identifier must start with an uppercase letter")
	}

	for _, r := range runes[1:] {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_' {
			continue
		}
		return fmt.Errorf("identifier contains character %q which is invalid for an identifer", r)
	}
	return nil
}
