package catalog

import (
	"os"
	"testing"
	"time"

	"github.com/gostdlib/base/context"
	"github.com/kylelemons/godebug/diff"
	"github.com/kylelemons/godebug/pretty"

	"github.com/bearlytools/shapejson"
	"github.com/bearlytools/shapejson/internal/gen"
	"github.com/bearlytools/shapejson/internal/idl"
)

func TestProduct(t *testing.T) {
	p := Product{
		Sku:     "sku-1",
		Title:   "Lamp",
		Price:   1999,
		Status:  Live,
		Labels:  map[string]string{"room": "den", "color": "red"},
		Created: time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		desc string
		conv shapejson.Convention
		want string
	}{
		{
			desc: "exact",
			conv: shapejson.Exact,
			want: `{"Sku":"sku-1","name":"Lamp","Price":1999,"Status":1,"Labels":{"color":"red","room":"den"},"Created":"2023-12-31T00:00:00Z"}`,
		},
		{
			desc: "kebab",
			conv: shapejson.Kebab,
			want: `{"sku":"sku-1","name":"Lamp","price":1999,"status":1,"labels":{"color":"red","room":"den"},"created":"2023-12-31T00:00:00Z"}`,
		},
	}

	for _, test := range tests {
		got, err := shapejson.Encode(&p, shapejson.WithNaming(test.conv))
		if err != nil {
			t.Errorf("TestProduct(%s): Encode(): %s", test.desc, err)
			continue
		}
		if got != test.want {
			t.Errorf("TestProduct(%s):\ngot  %s\nwant %s", test.desc, got, test.want)
			continue
		}

		var back Product
		if err := shapejson.Decode(got, &back, shapejson.WithNaming(test.conv)); err != nil {
			t.Errorf("TestProduct(%s): Decode(): %s", test.desc, err)
			continue
		}
		// Created is readonly, so it does not come back.
		want := p
		want.Created = time.Time{}
		if diff := pretty.Compare(want, back); diff != "" {
			t.Errorf("TestProduct(%s): -want/+got:\n%s", test.desc, diff)
		}
	}
}

func TestGeneratedIsCurrent(t *testing.T) {
	schema, err := os.ReadFile("catalog.shape")
	if err != nil {
		t.Fatal(err)
	}
	file, err := idl.Parse(context.Background(), string(schema))
	if err != nil {
		t.Fatalf("TestGeneratedIsCurrent: idl.Parse(): %s", err)
	}

	res, err := gen.Generate(
		context.Background(),
		gen.Request{
			Outputs: []gen.Output{
				{Package: file.Package, Path: "catalog_shapejson.go", Declare: file.Types, Dispatch: true},
			},
		},
	)
	if err != nil {
		t.Fatalf("TestGeneratedIsCurrent: gen.Generate(): %s", err)
	}

	want, err := os.ReadFile("catalog_shapejson.go")
	if err != nil {
		t.Fatal(err)
	}
	if got := string(res.Files[0].Native); got != string(want) {
		t.Errorf("TestGeneratedIsCurrent: catalog_shapejson.go is stale, run go generate:\n%s", diff.Diff(string(want), got))
	}
}
