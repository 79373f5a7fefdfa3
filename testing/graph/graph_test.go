package graph

import (
	"os"
	"strings"
	"testing"

	"github.com/gostdlib/base/context"
	"github.com/kylelemons/godebug/diff"
	"github.com/kylelemons/godebug/pretty"

	"github.com/bearlytools/shapejson"
	"github.com/bearlytools/shapejson/internal/discover"
	"github.com/bearlytools/shapejson/internal/gen"
	"github.com/bearlytools/shapejson/languages/go/codec"
	"github.com/bearlytools/shapejson/languages/go/errors"
)

func TestCycleDetection(t *testing.T) {
	self := &Node{Name: "self"}
	self.Next = self

	a := &A{Name: "a"}
	b := &B{Name: "b", A: a}
	a.B = b

	grandchild := &Node{Name: "gc"}
	deep := &Node{Name: "root", Children: []*Node{{Name: "c", Children: []*Node{grandchild}}}}
	grandchild.Children = []*Node{deep}

	tests := []struct {
		desc   string
		v      any
		record string
	}{
		{desc: "self reference", v: self, record: "Node"},
		{desc: "two records", v: a, record: "A"},
		{desc: "starting from the other record", v: b, record: "B"},
		{desc: "through slices", v: deep, record: "Node"},
	}

	for _, test := range tests {
		got, err := shapejson.Encode(test.v, shapejson.WithCycleDetection())
		if err == nil {
			t.Errorf("TestCycleDetection(%s): got err == nil, want err != nil", test.desc)
			continue
		}
		if got != "" {
			t.Errorf("TestCycleDetection(%s): got output %q, want none", test.desc, got)
		}
		var ce *errors.CycleError
		if !errors.As(err, &ce) {
			t.Errorf("TestCycleDetection(%s): got %T, want *errors.CycleError", test.desc, err)
			continue
		}
		if ce.Record != test.record {
			t.Errorf("TestCycleDetection(%s): Record: got %q, want %q", test.desc, ce.Record, test.record)
		}
	}
}

// TestSharedIsNotACycle encodes a value reached twice along different paths.
func TestSharedIsNotACycle(t *testing.T) {
	shared := &Node{Name: "s"}
	root := &Node{Name: "r", Next: shared, Children: []*Node{shared, shared}}

	got, err := shapejson.Encode(root, shapejson.WithCycleDetection())
	if err != nil {
		t.Fatalf("TestSharedIsNotACycle: %s", err)
	}
	want := `{"Name":"r","Next":{"Name":"s","Next":null,"Children":null},"Children":[{"Name":"s","Next":null,"Children":null},{"Name":"s","Next":null,"Children":null}]}`
	if got != want {
		t.Errorf("TestSharedIsNotACycle:\ngot  %s\nwant %s", got, want)
	}
}

func TestDeepChain(t *testing.T) {
	const depth = 500

	var head *Node
	for i := 0; i < depth; i++ {
		head = &Node{Name: "n", Next: head}
	}

	for _, opts := range [][]shapejson.Option{nil, {shapejson.WithCycleDetection()}} {
		s, err := shapejson.Encode(head, opts...)
		if err != nil {
			t.Fatalf("TestDeepChain: Encode(): %s", err)
		}
		if n := strings.Count(s, `"Name":"n"`); n != depth {
			t.Fatalf("TestDeepChain: got %d nodes, want %d", n, depth)
		}

		var back Node
		if err := shapejson.Decode(s, &back); err != nil {
			t.Fatalf("TestDeepChain: Decode(): %s", err)
		}
		if diff := pretty.Compare(head, &back); diff != "" {
			t.Errorf("TestDeepChain: -want/+got:\n%s", diff)
		}
	}
}

func TestTrackerIsPerCall(t *testing.T) {
	n := &Node{Name: "x"}
	opts := codec.Options{DetectCycles: true}
	for i := 0; i < 3; i++ {
		if _, err := n.EncodeJSON(opts); err != nil {
			t.Fatalf("TestTrackerIsPerCall: call %d: %s", i, err)
		}
	}
}

func TestGeneric(t *testing.T) {
	p := Page[Item]{Items: []Item{{Sku: "a"}, {Sku: "b"}}, Total: 2}

	got, err := shapejson.Encode(p, shapejson.WithNaming(shapejson.Camel))
	if err != nil {
		t.Fatalf("TestGeneric: Encode(): %s", err)
	}
	want := `{"items":[{"sku":"a"},{"sku":"b"}],"total":2}`
	if got != want {
		t.Fatalf("TestGeneric: got %s, want %s", got, want)
	}

	var back Page[Item]
	if err := shapejson.Decode(got, &back, shapejson.WithNaming(shapejson.Camel)); err != nil {
		t.Fatalf("TestGeneric: Decode(): %s", err)
	}
	if diff := pretty.Compare(p, back); diff != "" {
		t.Errorf("TestGeneric: -want/+got:\n%s", diff)
	}

	// Only the instantiation that was generated is registered.
	var ne *errors.NotRegisteredError
	if _, err := shapejson.Encode(Page[int]{}); !errors.As(err, &ne) {
		t.Errorf("TestGeneric: Encode(Page[int]): got %v, want *errors.NotRegisteredError", err)
	}
}

func TestMutualRoundTrip(t *testing.T) {
	a := &A{Name: "a", B: &B{Name: "b", A: &A{Name: "a2"}}}

	s, err := a.EncodeJSON(codec.Options{DetectCycles: true})
	if err != nil {
		t.Fatalf("TestMutualRoundTrip: %s", err)
	}
	var back A
	if err := back.DecodeJSON(s, codec.Options{}); err != nil {
		t.Fatalf("TestMutualRoundTrip: %s", err)
	}
	if diff := pretty.Compare(a, &back); diff != "" {
		t.Errorf("TestMutualRoundTrip: -want/+got:\n%s", diff)
	}
}

func TestGeneratedIsCurrent(t *testing.T) {
	src, err := os.ReadFile("types.go")
	if err != nil {
		t.Fatal(err)
	}
	types, err := discover.Parse(discover.Source{Name: "types.go", Content: src})
	if err != nil {
		t.Fatalf("TestGeneratedIsCurrent: discover.Parse(): %s", err)
	}

	res, err := gen.Generate(
		context.Background(),
		gen.Request{
			Outputs: []gen.Output{
				{
					Package:  "graph",
					Path:     "graph_shapejson.go",
					Types:    types,
					Roots:    []string{"Node", "A", "Page[Item]"},
					Dispatch: true,
				},
			},
		},
	)
	if err != nil {
		t.Fatalf("TestGeneratedIsCurrent: gen.Generate(): %s", err)
	}

	want, err := os.ReadFile("graph_shapejson.go")
	if err != nil {
		t.Fatal(err)
	}
	if got := string(res.Files[0].Native); got != string(want) {
		t.Errorf("TestGeneratedIsCurrent: graph_shapejson.go is stale, run go generate:\n%s", diff.Diff(string(want), got))
	}
}
