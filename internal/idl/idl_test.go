package idl

import (
	"strings"
	"testing"

	"github.com/gostdlib/base/context"
	"github.com/kylelemons/godebug/pretty"

	"github.com/bearlytools/shapejson/internal/descr"
)

func TestParse(t *testing.T) {
	content := `
// A comment
// About something
package shop // Yeah I can comment here

// Color is a paint color.
Enum Color uint8 {
	Red @0 // Comment
	Green @1

	Blue @2
}

// Unattached comment.

Scalar Celsius float64

// Order is a placed order.
Struct Order {
	Id int64
	Lines []*Line json(lines)
	Tags map[string]Color // Comment
	Placed time.Time readonly
	Temp Celsius json(temp) readonly
}

Struct Line {
	Sku string
	Qty uint16
}
`

	got, err := Parse(context.Background(), content)
	if err != nil {
		t.Fatalf("TestParse: got err == %s, want err == nil", err)
	}

	want := &File{
		Package: "shop",
		Types: []*descr.Type{
			{
				Name:       "Color",
				Decl:       descr.DeclEnum,
				Underlying: "uint8",
				Values: []descr.EnumValue{
					{Name: "Red", Value: 0},
					{Name: "Green", Value: 1},
					{Name: "Blue", Value: 2},
				},
				Doc: "Color is a paint color.",
			},
			{
				Name:       "Celsius",
				Decl:       descr.DeclScalar,
				Underlying: "float64",
			},
			{
				Name: "Order",
				Decl: descr.DeclStruct,
				Fields: []*descr.Field{
					{Name: "Id", Type: descr.Named("int64")},
					{Name: "Lines", Type: descr.Slice(descr.Pointer(descr.Named("Line"))), WireName: "lines"},
					{Name: "Tags", Type: descr.Map(descr.Named("string"), descr.Named("Color"))},
					{Name: "Placed", Type: descr.Named("time.Time"), ReadOnly: true},
					{Name: "Temp", Type: descr.Named("Celsius"), WireName: "temp", ReadOnly: true},
				},
				Doc: "Order is a placed order.",
			},
			{
				Name: "Line",
				Decl: descr.DeclStruct,
				Fields: []*descr.Field{
					{Name: "Sku", Type: descr.Named("string")},
					{Name: "Qty", Type: descr.Named("uint16")},
				},
			},
		},
	}

	config := pretty.Config{Diffable: true, IncludeUnexported: false}
	if diff := config.Compare(want, got); diff != "" {
		t.Errorf("TestParse: -want/+got:\n%s", diff)
	}
}

func TestParseDoc(t *testing.T) {
	tests := []struct {
		desc    string
		content string
		want    string
	}{
		{
			desc:    "attached",
			content: "package shop\n\n// Cents is money.\n// In cents.\nScalar Cents int64\n",
			want:    "Cents is money.\nIn cents.",
		},
		{
			desc:    "blank line after comment",
			content: "package shop\n\n// Loose.\n\nScalar Cents int64\n",
			want:    "",
		},
		{
			desc:    "blank line inside comments",
			content: "package shop\n\n// Loose.\n\n// Cents is money.\nScalar Cents int64\n",
			want:    "Cents is money.",
		},
		{
			desc:    "several blank lines",
			content: "package shop\n// Loose.\n\n\n\nScalar Cents int64\n",
			want:    "",
		},
	}

	for _, test := range tests {
		got, err := Parse(context.Background(), test.content)
		if err != nil {
			t.Errorf("TestParseDoc(%s): got err == %s, want err == nil", test.desc, err)
			continue
		}
		if len(got.Types) != 1 {
			t.Errorf("TestParseDoc(%s): got %d types, want 1", test.desc, len(got.Types))
			continue
		}
		if got.Types[0].Doc != test.want {
			t.Errorf("TestParseDoc(%s): got doc %q, want %q", test.desc, got.Types[0].Doc, test.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		desc    string
		content string
		errMsg  string
	}{
		{
			desc:    "no package",
			content: "\nStruct Car {\n\tName string\n}\n",
			errMsg:  "package",
		},
		{
			desc:    "uppercase package",
			content: "\npackage Shop\n",
			errMsg:  "uppercase",
		},
		{
			desc:    "Package keyword case",
			content: "\nPackage shop\n",
			errMsg:  "required to be",
		},
		{
			desc:    "enum of a string",
			content: "\npackage shop\n\nEnum Color string {\n\tRed @0\n}\n",
			errMsg:  "integer type",
		},
		{
			desc:    "enum value does not fit",
			content: "\npackage shop\n\nEnum Color int8 {\n\tRed @128\n}\n",
			errMsg:  "fits a int8",
		},
		{
			desc:    "enum duplicate value",
			content: "\npackage shop\n\nEnum Color uint8 {\n\tRed @0\n\tGreen @0\n}\n",
			errMsg:  "with value 0",
		},
		{
			desc:    "empty enum",
			content: "\npackage shop\n\nEnum Color uint8 {\n}\n",
			errMsg:  "no entries",
		},
		{
			desc:    "unclosed struct",
			content: "\npackage shop\n\nStruct Car {\n\tName string\n",
			errMsg:  "EOF",
		},
		{
			desc:    "duplicate field",
			content: "\npackage shop\n\nStruct Car {\n\tName string\n\tName int\n}\n",
			errMsg:  "already has a field",
		},
		{
			desc:    "unknown field option",
			content: "\npackage shop\n\nStruct Car {\n\tName string omitempty\n}\n",
			errMsg:  "unknown option",
		},
		{
			desc:    "bad field type",
			content: "\npackage shop\n\nStruct Car {\n\tName map[string\n}\n",
			errMsg:  "map",
		},
		{
			desc:    "duplicate type",
			content: "\npackage shop\n\nScalar Car string\n\nStruct Car {\n\tName string\n}\n",
			errMsg:  "two top level identifiers",
		},
		{
			desc:    "scalar of a struct",
			content: "\npackage shop\n\nScalar Car Engine\n",
			errMsg:  "builtin",
		},
		{
			desc:    "unknown keyword",
			content: "\npackage shop\n\nInterface Car {\n}\n",
			errMsg:  "do not understand",
		},
	}

	for _, test := range tests {
		_, err := Parse(context.Background(), test.content)
		if err == nil {
			t.Errorf("TestParseErrors(%s): got err == nil, want err != nil", test.desc)
			continue
		}
		if !strings.Contains(err.Error(), test.errMsg) {
			t.Errorf("TestParseErrors(%s): got err == %s, want it to contain %q", test.desc, err, test.errMsg)
		}
	}
}
