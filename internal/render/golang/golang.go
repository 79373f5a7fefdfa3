// Package golang implements the Go language renderer.
package golang

import (
	"bytes"
	"embed"
	"fmt"
	"go/format"
	"strings"
	"text/template"

	"github.com/gostdlib/base/context"

	"github.com/bearlytools/shapejson/internal/descr"
	"github.com/bearlytools/shapejson/internal/emit"
	"github.com/bearlytools/shapejson/internal/render"
)

//go:embed templates/*
var f embed.FS
var templates *template.Template

func init() {
	t, err := template.New("").Funcs(template.FuncMap{
		"variants": emit.VariantsLiteral,
		"declare":  Declare,
	}).ParseFS(f, "templates/*.tmpl")
	if err != nil {
		panic(err)
	}
	templates = t

	if _, ok := render.Supported[render.Go]; ok {
		panic("someone already registered the Go language renderer")
	}
	render.Supported[render.Go] = Renderer{}
}

// Renderer implements render.Renderer for the Go language.
type Renderer struct{}

// Render implements render.Renderer.Render().
func (r Renderer) Render(ctx context.Context, unit *emit.Unit) ([]byte, error) {
	buff := bytes.Buffer{}
	if err := templates.ExecuteTemplate(&buff, "shapejson.tmpl", unit); err != nil {
		return nil, err
	}
	out, err := format.Source(buff.Bytes())
	if err != nil {
		return nil, fmt.Errorf("generated code for package %s does not parse: %w", unit.Package, err)
	}
	return out, nil
}

// Declare renders the Go declaration of t. Struct fields carry json tags for their wire
// name and readonly flag, so the declaration reads back to the same descriptor.
func Declare(t *descr.Type) string {
	b := strings.Builder{}
	if t.Doc != "" {
		for _, line := range strings.Split(strings.TrimRight(t.Doc, "\n"), "\n") {
			b.WriteString("// ")
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}

	switch t.Decl {
	case descr.DeclStruct:
		fmt.Fprintf(&b, "type %s", t.Name)
		if t.Generic() {
			fmt.Fprintf(&b, "[%s any]", strings.Join(t.TypeParams, ", "))
		}
		b.WriteString(" struct {\n")
		for _, fl := range t.Fields {
			fmt.Fprintf(&b, "\t%s %s", fl.Name, fl.Type)
			if tag := jsonTag(fl); tag != "" {
				fmt.Fprintf(&b, " `json:%q`", tag)
			}
			b.WriteByte('\n')
		}
		b.WriteString("}\n")
	case descr.DeclEnum:
		fmt.Fprintf(&b, "type %s %s\n", t.Name, t.Underlying)
		if len(t.Values) > 0 {
			b.WriteString("\nconst (\n")
			for _, v := range t.Values {
				fmt.Fprintf(&b, "\t%s %s = %d\n", v.Name, t.Name, v.Value)
			}
			b.WriteString(")\n")
		}
	case descr.DeclScalar:
		fmt.Fprintf(&b, "type %s %s\n", t.Name, t.Underlying)
	}
	return b.String()
}

func jsonTag(fl *descr.Field) string {
	switch {
	case fl.ReadOnly:
		return fl.WireName + ",readonly"
	case fl.WireName != "":
		return fl.WireName
	}
	return ""
}
