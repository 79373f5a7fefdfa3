package naming

import (
	"testing"

	"github.com/kylelemons/godebug/pretty"
)

func TestNew(t *testing.T) {
	tests := []struct {
		desc   string
		name   string
		custom string
		want   Variants
	}{
		{
			desc: "single word",
			name: "Id",
			want: Variants{Exact: "Id", Camel: "id", Snake: "id", Kebab: "id"},
		},
		{
			desc: "two words",
			name: "FirstName",
			want: Variants{Exact: "FirstName", Camel: "firstName", Snake: "first_name", Kebab: "first-name"},
		},
		{
			desc: "consecutive capitals split per letter",
			name: "UserID",
			want: Variants{Exact: "UserID", Camel: "userID", Snake: "user_i_d", Kebab: "user-i-d"},
		},
		{
			desc:   "custom kept",
			name:   "Tags",
			custom: "labels",
			want:   Variants{Exact: "Tags", Camel: "tags", Snake: "tags", Kebab: "tags", Custom: "labels"},
		},
		{
			desc: "already lower",
			name: "count2",
			want: Variants{Exact: "count2", Camel: "count2", Snake: "count2", Kebab: "count2"},
		},
	}

	for _, test := range tests {
		got := New(test.name, test.custom)
		if diff := pretty.Compare(test.want, got); diff != "" {
			t.Errorf("TestNew(%s): -want/+got:\n%s", test.desc, diff)
		}
	}
}

func TestExpected(t *testing.T) {
	plain := New("FirstName", "")
	custom := New("FirstName", "given")

	tests := []struct {
		desc string
		v    Variants
		conv Convention
		want string
	}{
		{desc: "exact", v: plain, conv: Exact, want: "FirstName"},
		{desc: "camel", v: plain, conv: Camel, want: "firstName"},
		{desc: "snake", v: plain, conv: Snake, want: "first_name"},
		{desc: "kebab", v: plain, conv: Kebab, want: "first-name"},
		{desc: "custom beats exact", v: custom, conv: Exact, want: "given"},
		{desc: "custom beats snake", v: custom, conv: Snake, want: "given"},
	}

	for _, test := range tests {
		if got := test.v.Expected(test.conv); got != test.want {
			t.Errorf("TestExpected(%s): got %q, want %q", test.desc, got, test.want)
		}
	}
}

func TestMatch(t *testing.T) {
	v := New("FirstName", "")

	tests := []struct {
		desc string
		got  string
		conv Convention
		fold bool
		want bool
	}{
		{desc: "exact hit", got: "FirstName", conv: Exact, want: true},
		{desc: "exact miss on case", got: "firstname", conv: Exact, want: false},
		{desc: "exact folded", got: "firstname", conv: Exact, fold: true, want: true},
		{desc: "upper folded", got: "FIRSTNAME", conv: Exact, fold: true, want: true},
		{desc: "snake hit", got: "first_name", conv: Snake, want: true},
		{desc: "snake does not accept exact", got: "FirstName", conv: Snake, want: false},
		{desc: "snake folded", got: "FIRST_NAME", conv: Snake, fold: true, want: true},
		{desc: "length differs", got: "FirstNames", conv: Exact, fold: true, want: false},
		{desc: "separator not folded", got: "first-name", conv: Snake, fold: true, want: false},
	}

	for _, test := range tests {
		if got := v.Match([]byte(test.got), test.conv, test.fold); got != test.want {
			t.Errorf("TestMatch(%s): got %v, want %v", test.desc, got, test.want)
		}
	}
}

func TestParseConvention(t *testing.T) {
	tests := []struct {
		in   string
		want Convention
		err  bool
	}{
		{in: "", want: Exact},
		{in: "Exact", want: Exact},
		{in: "camel", want: Camel},
		{in: " snake ", want: Snake},
		{in: "KEBAB", want: Kebab},
		{in: "pascal", err: true},
	}

	for _, test := range tests {
		got, err := ParseConvention(test.in)
		switch {
		case err == nil && test.err:
			t.Errorf("TestParseConvention(%q): got err == nil, want err != nil", test.in)
			continue
		case err != nil && !test.err:
			t.Errorf("TestParseConvention(%q): got err == %s, want err == nil", test.in, err)
			continue
		case err != nil:
			continue
		}
		if got != test.want {
			t.Errorf("TestParseConvention(%q): got %v, want %v", test.in, got, test.want)
		}
	}
}
