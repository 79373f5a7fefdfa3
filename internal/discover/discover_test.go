package discover

import (
	"strings"
	"testing"

	memfs "github.com/gopherfs/fs/io/mem/simple"
	"github.com/kylelemons/godebug/pretty"

	"github.com/bearlytools/shapejson/internal/descr"
)

const shopSrc = `package shop

import (
	"net/netip"
	"time"
)

// Color is a paint color.
type Color uint8

const (
	Red Color = iota
	Green
	_
	Blue
)

const (
	Big   Size = 1 << iota
	Small
)

// Size has no typed constants in the const block above until here.
type Size uint16

type Celsius float64

type Mood string

const Happy Mood = "happy"

// Untyped constants make no enum.
type Count int

const Few = 3

// User is a person.
type User struct {
	Id      int64
	Name    string ` + "`json:\"name\"`" + `
	Secret  string ` + "`json:\"-\"`" + `
	Version int    ` + "`json:\",readonly\"`" + `
	A, B    []byte
	Home    *Address
	Seen    map[Color]time.Time
	Peers   [4]netip.Addr
	Temp    Celsius ` + "`json:\"temp,omitempty,readonly\"`" + `
	Page    Page[User, Color]
	private int
	Address
}

type (
	// Address is where a User lives.
	Address struct {
		Street string
	}

	Page[T any, K comparable] struct {
		Items []T
		Keys  map[K]*T
	}

	Events chan int
)

type Alias = User
`

func TestParse(t *testing.T) {
	got, err := Parse(Source{Name: "shop.go", Content: []byte(shopSrc)})
	if err != nil {
		t.Fatalf("TestParse: got err == %s, want err == nil", err)
	}

	want := []*descr.Type{
		{
			Name:       "Color",
			Decl:       descr.DeclEnum,
			Underlying: "uint8",
			Values:     []descr.EnumValue{{Name: "Red", Value: 0}, {Name: "Green", Value: 1}, {Name: "Blue", Value: 3}},
			Doc:        "Color is a paint color.",
		},
		{
			Name:       "Size",
			Decl:       descr.DeclEnum,
			Underlying: "uint16",
			Values:     []descr.EnumValue{{Name: "Big", Value: 1}, {Name: "Small", Value: 2}},
			Doc:        "Size has no typed constants in the const block above until here.",
		},
		{Name: "Celsius", Decl: descr.DeclScalar, Underlying: "float64"},
		{Name: "Mood", Decl: descr.DeclScalar, Underlying: "string"},
		{Name: "Count", Decl: descr.DeclScalar, Underlying: "int", Doc: "Untyped constants make no enum."},
		{
			Name: "User",
			Decl: descr.DeclStruct,
			Doc:  "User is a person.",
			Fields: []*descr.Field{
				{Name: "Id", Type: descr.Named("int64")},
				{Name: "Name", Type: descr.Named("string"), WireName: "name"},
				{Name: "Version", Type: descr.Named("int"), ReadOnly: true},
				{Name: "A", Type: descr.Slice(descr.Named("byte"))},
				{Name: "B", Type: descr.Slice(descr.Named("byte"))},
				{Name: "Home", Type: descr.Pointer(descr.Named("Address"))},
				{Name: "Seen", Type: descr.Map(descr.Named("Color"), descr.Named("time.Time"))},
				{Name: "Peers", Type: descr.Array(4, descr.Named("netip.Addr"))},
				{Name: "Temp", Type: descr.Named("Celsius"), WireName: "temp", ReadOnly: true},
				{Name: "Page", Type: descr.Named("Page", descr.Named("User"), descr.Named("Color"))},
			},
		},
		{
			Name:   "Address",
			Decl:   descr.DeclStruct,
			Doc:    "Address is where a User lives.",
			Fields: []*descr.Field{{Name: "Street", Type: descr.Named("string")}},
		},
		{
			Name:       "Page",
			Decl:       descr.DeclStruct,
			TypeParams: []string{"T", "K"},
			Fields: []*descr.Field{
				{Name: "Items", Type: descr.Slice(descr.Named("T"))},
				{Name: "Keys", Type: descr.Map(descr.Named("K"), descr.Pointer(descr.Named("T")))},
			},
		},
	}

	if diff := pretty.Compare(want, got); diff != "" {
		t.Errorf("TestParse: -want/+got:\n%s", diff)
	}
}

func TestExprRef(t *testing.T) {
	tests := []struct {
		desc string
		src  string
		want string
	}{
		{desc: "nested", src: "[]map[string]*[2]int", want: "[]map[string]*[2]int"},
		{desc: "interface", src: "interface{}", want: "any"},
		{desc: "any", src: "any", want: "any"},
		{desc: "chan", src: "chan int", want: "chan int"},
		{desc: "func", src: "func() error", want: "func() error"},
		{desc: "qualified generic", src: "other.Page[int]", want: "other.Page[int]"},
	}

	for _, test := range tests {
		got, err := Parse(Source{Name: "x.go", Content: []byte("package x\ntype X struct {\n\tF " + test.src + "\n}\n")})
		if err != nil {
			t.Errorf("TestExprRef(%s): got err == %s", test.desc, err)
			continue
		}
		if s := got[0].Fields[0].Type.String(); s != test.want {
			t.Errorf("TestExprRef(%s): got %q, want %q", test.desc, s, test.want)
		}
	}
}

func TestParseSkipsGenerated(t *testing.T) {
	gen := "// Code generated by shapejsonc. DO NOT EDIT.\n\npackage shop\n\ntype shapeDispatcher struct{}\n"
	got, err := Parse(
		Source{Name: "shop.go", Content: []byte("package shop\n\ntype User struct{ Id int }\n")},
		Source{Name: "shop_shapejson.go", Content: []byte(gen)},
	)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Name != "User" {
		t.Errorf("TestParseSkipsGenerated: got %d types, want only User", len(got))
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		desc   string
		srcs   []Source
		errMsg string
	}{
		{
			desc:   "syntax error",
			srcs:   []Source{{Name: "bad.go", Content: []byte("package shop\ntype User struct {")}},
			errMsg: "parsing bad.go",
		},
		{
			desc: "declared twice",
			srcs: []Source{
				{Name: "a.go", Content: []byte("package shop\ntype User struct{}\n")},
				{Name: "b.go", Content: []byte("package shop\ntype User struct{}\n")},
			},
			errMsg: "declared twice",
		},
	}

	for _, test := range tests {
		_, err := Parse(test.srcs...)
		if err == nil {
			t.Errorf("TestParseErrors(%s): got err == nil, want err != nil", test.desc)
			continue
		}
		if !strings.Contains(err.Error(), test.errMsg) {
			t.Errorf("TestParseErrors(%s): got err == %s, want it to contain %q", test.desc, err, test.errMsg)
		}
	}
}

func TestFiles(t *testing.T) {
	fsys := memfs.New()
	if err := fsys.WriteFile("/repo/shop/shop.go", []byte("package shop\n\ntype User struct{ Id int }\n"), 0600); err != nil {
		panic(err)
	}

	got, err := Files(fsys, "/repo/shop/shop.go")
	if err != nil {
		t.Fatalf("TestFiles: got err == %s", err)
	}
	if len(got) != 1 || got[0].Name != "User" {
		t.Errorf("TestFiles: got %d types, want User", len(got))
	}

	if _, err := Files(fsys, "/repo/shop/missing.go"); err == nil {
		t.Errorf("TestFiles(missing file): got err == nil, want err != nil")
	}
}
