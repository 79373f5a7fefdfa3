package writer

import (
	"testing"

	memfs "github.com/gopherfs/fs/io/mem/simple"
	"github.com/gostdlib/base/context"
	"github.com/kylelemons/godebug/pretty"

	"github.com/bearlytools/shapejson/internal/render"
)

func TestWrite(t *testing.T) {
	existing := []byte("package user\n")

	tests := []struct {
		desc     string
		rendered []render.Rendered
		want     []Result
		err      bool
	}{
		{
			desc: "new file is written",
			rendered: []render.Rendered{
				{Package: "order", Path: "/repo/order/order_shapejson.go", Lang: render.Go, Native: []byte("package order\n")},
			},
			want: []Result{{Path: "/repo/order/order_shapejson.go", Written: true}},
		},
		{
			desc: "unchanged file is skipped",
			rendered: []render.Rendered{
				{Package: "user", Path: "/repo/user/user_shapejson.go", Lang: render.Go, Native: existing},
				{Package: "order", Path: "/repo/order/order_shapejson.go", Lang: render.Go, Native: []byte("package order\n")},
			},
			want: []Result{
				{Path: "/repo/user/user_shapejson.go"},
				{Path: "/repo/order/order_shapejson.go", Written: true},
			},
		},
		{
			desc: "not a go file",
			rendered: []render.Rendered{
				{Package: "order", Path: "/repo/order/order.txt", Lang: render.Go, Native: []byte("package order\n")},
			},
			err: true,
		},
		{
			desc: "unknown language",
			rendered: []render.Rendered{
				{Package: "order", Path: "/repo/order/order_shapejson.go", Lang: render.Unknown},
			},
			err: true,
		},
	}

	for _, test := range tests {
		fsys := memfs.New()
		if err := fsys.WriteFile("/repo/user/user_shapejson.go", existing, 0600); err != nil {
			panic(err)
		}

		w, err := New(WithFS(fsys))
		if err != nil {
			panic(err)
		}

		got, err := w.Write(context.Background(), test.rendered)
		switch {
		case err == nil && test.err:
			t.Errorf("TestWrite(%s): got err == nil, want err != nil", test.desc)
			continue
		case err != nil && !test.err:
			t.Errorf("TestWrite(%s): got err == %s, want err == nil", test.desc, err)
			continue
		case err != nil:
			continue
		}

		if diff := pretty.Compare(test.want, got); diff != "" {
			t.Errorf("TestWrite(%s): -want/+got:\n%s", test.desc, diff)
		}
		for _, r := range got {
			if !r.Written {
				continue
			}
			b, err := fsys.ReadFile(r.Path)
			if err != nil {
				t.Errorf("TestWrite(%s): file %s was not written: %s", test.desc, r.Path, err)
			}
			if len(b) == 0 {
				t.Errorf("TestWrite(%s): file %s is empty", test.desc, r.Path)
			}
		}
	}
}
