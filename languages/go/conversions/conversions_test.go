package conversions

import (
	"testing"
)

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		desc string
		s    string
	}{
		{desc: "empty", s: ""},
		{desc: "ascii", s: "hello"},
		{desc: "utf8", s: "héllo wörld"},
	}

	for _, test := range tests {
		b := UnsafeGetBytes(test.s)
		if len(b) != len(test.s) {
			t.Errorf("TestRoundTrip(%s): got len %d, want %d", test.desc, len(b), len(test.s))
			continue
		}
		if got := ByteSlice2String(b); got != test.s {
			t.Errorf("TestRoundTrip(%s): got %q, want %q", test.desc, got, test.s)
		}
	}
}
