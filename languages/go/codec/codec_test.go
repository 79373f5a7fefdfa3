package codec

import (
	"math"
	"net/netip"
	"strings"
	"testing"
	"time"

	"github.com/gostdlib/base/context"
	"github.com/kylelemons/godebug/pretty"

	"github.com/bearlytools/shapejson/languages/go/cycle"
	"github.com/bearlytools/shapejson/languages/go/errors"
	"github.com/bearlytools/shapejson/languages/go/naming"
)

func TestSink(t *testing.T) {
	tests := []struct {
		desc  string
		write func(s *Sink)
		want  string
	}{
		{desc: "signed", write: func(s *Sink) { WriteInt(s, int8(-5)) }, want: `-5`},
		{desc: "unsigned max", write: func(s *Sink) { WriteUint(s, uint64(math.MaxUint64)) }, want: `18446744073709551615`},
		{desc: "float64", write: func(s *Sink) { WriteFloat(s, 0.5) }, want: `0.5`},
		{desc: "float32 shortest", write: func(s *Sink) { WriteFloat(s, float32(0.1)) }, want: `0.1`},
		{desc: "float32 small", write: func(s *Sink) { WriteFloat(s, float32(1e-7)) }, want: `1e-7`},
		{desc: "NaN", write: func(s *Sink) { WriteFloat(s, math.NaN()) }, want: `"NaN"`},
		{desc: "escaped string", write: func(s *Sink) { s.String("a\"b\n") }, want: `"a\"b\n"`},
		{desc: "nil bytes", write: func(s *Sink) { s.Bytes(nil) }, want: `null`},
		{desc: "empty bytes", write: func(s *Sink) { s.Bytes([]byte{}) }, want: `""`},
		{desc: "bytes", write: func(s *Sink) { s.Bytes([]byte{0xff, 0x00}) }, want: `"/wA="`},
		{desc: "duration", write: func(s *Sink) { s.Duration(90 * time.Minute) }, want: `"1h30m0s"`},
		{desc: "time", write: func(s *Sink) { s.Time(time.Date(2000, 1, 2, 3, 4, 5, 6, time.UTC)) }, want: `"2000-01-02T03:04:05.000000006Z"`},
		{desc: "addr", write: func(s *Sink) { s.Addr(netip.MustParseAddr("192.168.0.1")) }, want: `"192.168.0.1"`},
		{desc: "zero addr", write: func(s *Sink) { s.Addr(netip.Addr{}) }, want: `""`},
		{
			desc: "object with keys",
			write: func(s *Sink) {
				s.BeginObject()
				KeyInt(s, int16(-3))
				s.Bool(true)
				KeyUint(s, uint(4))
				s.Null()
				KeyFloat(s, float32(2.5))
				s.BeginArray()
				s.EndArray()
				s.KeyBool(false)
				s.String("")
				s.EndObject()
			},
			want: `{"-3":true,"4":null,"2.5":[],"false":""}`,
		},
	}

	for _, test := range tests {
		got, err := Encode(Options{}, func(s *Sink, tr *cycle.Tracker) { test.write(s) })
		if err != nil {
			t.Errorf("TestSink(%s): got err == %s, want err == nil", test.desc, err)
			continue
		}
		if got != test.want {
			t.Errorf("TestSink(%s): got %s, want %s", test.desc, got, test.want)
		}
	}
}

func TestSinkName(t *testing.T) {
	v := naming.New("FirstName", "")
	custom := naming.New("LastName", "surname")

	tests := []struct {
		desc string
		conv naming.Convention
		want string
	}{
		{desc: "exact", conv: naming.Exact, want: `{"FirstName":1,"surname":2}`},
		{desc: "camel", conv: naming.Camel, want: `{"firstName":1,"surname":2}`},
		{desc: "snake", conv: naming.Snake, want: `{"first_name":1,"surname":2}`},
		{desc: "kebab", conv: naming.Kebab, want: `{"first-name":1,"surname":2}`},
	}

	for _, test := range tests {
		got, err := Encode(Options{Naming: test.conv}, func(s *Sink, tr *cycle.Tracker) {
			s.BeginObject()
			s.Name(&v)
			WriteInt(s, 1)
			s.Name(&custom)
			WriteInt(s, 2)
			s.EndObject()
		})
		if err != nil {
			t.Errorf("TestSinkName(%s): %s", test.desc, err)
			continue
		}
		if got != test.want {
			t.Errorf("TestSinkName(%s): got %s, want %s", test.desc, got, test.want)
		}
	}
}

func TestSinkFirstErrorWins(t *testing.T) {
	_, err := Encode(Options{}, func(s *Sink, tr *cycle.Tracker) {
		s.BeginArray()
		s.Cycle("First")
		s.Cycle("Second")
		s.EndArray()
	})
	var ce *errors.CycleError
	if !errors.As(err, &ce) {
		t.Fatalf("TestSinkFirstErrorWins: got %v, want *errors.CycleError", err)
	}
	if ce.Record != "First" {
		t.Errorf("TestSinkFirstErrorWins: got record %q, want %q", ce.Record, "First")
	}
}

func TestEncodeTracker(t *testing.T) {
	for _, detect := range []bool{false, true} {
		_, err := Encode(Options{DetectCycles: detect}, func(s *Sink, tr *cycle.Tracker) {
			if got := tr != nil; got != detect {
				t.Errorf("TestEncodeTracker(%v): got tracker %v, want %v", detect, got, detect)
			}
			s.Null()
		})
		if err != nil {
			t.Errorf("TestEncodeTracker(%v): %s", detect, err)
		}
	}
}

type scalars struct {
	I   int32
	U   uint16
	F   float64
	S   string
	B   bool
	N   bool
	Raw []byte
	D   time.Duration
	T   time.Time
	A   netip.Addr
	Inf float32
}

func TestCursor(t *testing.T) {
	text := `[-7, 65535, 1.5e3, "xé", true, null, "aGk=", "1m", "2024-02-03T04:05:06+02:00", "2001:db8::1", "-Infinity"]`

	var got scalars
	err := Decode(text, Options{}, func(c *Cursor) {
		if !c.BeginArray() {
			t.Fatalf("TestCursor: BeginArray() returned false")
		}
		got.I = ReadInt[int32](c)
		got.U = ReadUint[uint16](c)
		got.F = ReadFloat[float64](c)
		got.S = c.ReadString()
		got.B = c.ReadBool()
		got.N = c.ReadBool()
		got.Raw = c.ReadBytes()
		got.D = c.ReadDuration()
		got.T = c.ReadTime()
		got.A = c.ReadAddr()
		got.Inf = ReadFloat[float32](c)
		if c.More() {
			t.Errorf("TestCursor: More() is true at the end of the array")
		}
		c.EndArray()
	})
	if err != nil {
		t.Fatalf("TestCursor: got err == %s, want err == nil", err)
	}

	want := scalars{
		I:   -7,
		U:   65535,
		F:   1500,
		S:   "xé",
		B:   true,
		Raw: []byte("hi"),
		D:   time.Minute,
		T:   time.Date(2024, 2, 3, 2, 5, 6, 0, time.UTC),
		A:   netip.MustParseAddr("2001:db8::1"),
		Inf: float32(math.Inf(-1)),
	}
	if !got.T.Equal(want.T) {
		t.Errorf("TestCursor: time: got %s, want %s", got.T, want.T)
	}
	got.T, want.T = time.Time{}, time.Time{}
	if diff := pretty.Compare(want, got); diff != "" {
		t.Errorf("TestCursor: -want/+got:\n%s", diff)
	}
}

func TestCursorErrors(t *testing.T) {
	tests := []struct {
		desc     string
		text     string
		read     func(c *Cursor)
		syntax   bool
		expected string
	}{
		{desc: "int8 overflow", text: `128`, read: func(c *Cursor) { ReadInt[int8](c) }, expected: "integer"},
		{desc: "negative unsigned", text: `-1`, read: func(c *Cursor) { ReadUint[uint32](c) }, expected: "unsigned integer"},
		{desc: "float32 overflow", text: `1e39`, read: func(c *Cursor) { ReadFloat[float32](c) }, expected: "number"},
		{desc: "string for number", text: `"1"`, read: func(c *Cursor) { ReadInt[int](c) }, expected: "number"},
		{desc: "number for string", text: `1`, read: func(c *Cursor) { c.ReadString() }, expected: "string"},
		{desc: "array for bool", text: `[]`, read: func(c *Cursor) { c.ReadBool() }, expected: "bool"},
		{desc: "object for array", text: `{}`, read: func(c *Cursor) { c.BeginArray() }, expected: "array"},
		{desc: "bad key", text: `{"x":1}`, read: func(c *Cursor) {
			c.BeginObject()
			ParseKeyInt[int](c, c.ReadName())
		}, expected: "integer"},
		{desc: "unterminated", text: `[1,`, read: func(c *Cursor) {
			c.BeginArray()
			for c.More() {
				c.Skip()
			}
			c.EndArray()
		}, syntax: true},
		{desc: "trailing data", text: `1 2`, read: func(c *Cursor) { ReadInt[int](c) }},
	}

	for _, test := range tests {
		err := Decode(test.text, Options{}, test.read)
		var de *errors.DecodeError
		if !errors.As(err, &de) {
			t.Errorf("TestCursorErrors(%s): got %v, want *errors.DecodeError", test.desc, err)
			continue
		}
		if de.Syntax != test.syntax {
			t.Errorf("TestCursorErrors(%s): Syntax: got %v, want %v (%s)", test.desc, de.Syntax, test.syntax, de)
		}
		if de.Expected != test.expected {
			t.Errorf("TestCursorErrors(%s): Expected: got %q, want %q (%s)", test.desc, de.Expected, test.expected, de)
		}
	}
}

func TestCursorReadsZeroAfterError(t *testing.T) {
	err := Decode(`["a", 1, true]`, Options{}, func(c *Cursor) {
		c.BeginArray()
		if got := ReadInt[int](c); got != 0 {
			t.Errorf("TestCursorReadsZeroAfterError: got %d, want 0", got)
		}
		if got := ReadInt[int](c); got != 0 {
			t.Errorf("TestCursorReadsZeroAfterError: read after error: got %d, want 0", got)
		}
		if c.More() {
			t.Errorf("TestCursorReadsZeroAfterError: More() is true after an error")
		}
		c.EndArray()
	})
	if err == nil {
		t.Fatalf("TestCursorReadsZeroAfterError: got err == nil, want err != nil")
	}
}

func TestKeys(t *testing.T) {
	var (
		i   int64
		u   uint8
		f   float32
		b   bool
		tm  time.Time
		d   time.Duration
		a   netip.Addr
		now = time.Date(2022, 6, 7, 8, 9, 10, 11, time.UTC)
	)
	text, err := Encode(Options{}, func(s *Sink, tr *cycle.Tracker) {
		s.BeginObject()
		KeyInt(s, int64(math.MinInt64))
		s.Null()
		KeyUint(s, uint8(255))
		s.Null()
		KeyFloat(s, float32(-0.25))
		s.Null()
		s.KeyBool(true)
		s.Null()
		s.KeyTime(now)
		s.Null()
		s.KeyDuration(-time.Second)
		s.Null()
		s.KeyAddr(netip.MustParseAddr("::ffff:1.2.3.4"))
		s.Null()
		s.EndObject()
	})
	if err != nil {
		t.Fatalf("TestKeys: Encode(): %s", err)
	}

	err = Decode(text, Options{}, func(c *Cursor) {
		c.BeginObject()
		i = ParseKeyInt[int64](c, c.ReadName())
		c.Skip()
		u = ParseKeyUint[uint8](c, c.ReadName())
		c.Skip()
		f = ParseKeyFloat[float32](c, c.ReadName())
		c.Skip()
		b = c.ParseKeyBool(c.ReadName())
		c.Skip()
		tm = c.ParseKeyTime(c.ReadName())
		c.Skip()
		d = c.ParseKeyDuration(c.ReadName())
		c.Skip()
		a = c.ParseKeyAddr(c.ReadName())
		c.Skip()
		c.EndObject()
	})
	if err != nil {
		t.Fatalf("TestKeys: Decode(%s): %s", text, err)
	}

	switch {
	case i != math.MinInt64:
		t.Errorf("TestKeys: int key: got %d", i)
	case u != 255:
		t.Errorf("TestKeys: uint key: got %d", u)
	case f != -0.25:
		t.Errorf("TestKeys: float key: got %v", f)
	case !b:
		t.Errorf("TestKeys: bool key: got false")
	case !tm.Equal(now):
		t.Errorf("TestKeys: time key: got %s", tm)
	case d != -time.Second:
		t.Errorf("TestKeys: duration key: got %s", d)
	case a != netip.MustParseAddr("::ffff:1.2.3.4"):
		t.Errorf("TestKeys: addr key: got %s", a)
	}
}

func TestCompareBool(t *testing.T) {
	tests := []struct {
		a, b bool
		want int
	}{
		{false, false, 0},
		{true, true, 0},
		{false, true, -1},
		{true, false, 1},
	}
	for _, test := range tests {
		if got := CompareBool(test.a, test.b); got != test.want {
			t.Errorf("TestCompareBool(%v, %v): got %d, want %d", test.a, test.b, got, test.want)
		}
	}
}

// TestDecodeSizes decodes inputs held inline, in each pooled class and past the ceiling.
func TestDecodeSizes(t *testing.T) {
	for _, n := range []int{10, 600, 3000, 100_000, 2_000_000} {
		s := strings.Repeat("x", n)
		text := `"` + s + `"`

		var got string
		err := Decode(text, Options{}, func(c *Cursor) {
			got = c.ReadString()
		})
		if err != nil {
			t.Errorf("TestDecodeSizes(%d): %s", n, err)
			continue
		}
		if got != s {
			t.Errorf("TestDecodeSizes(%d): got a string of %d bytes, want %d", n, len(got), n)
		}
	}
}

// TestReleaseZeroesScratch decodes a long escaped string and then a short one, so the
// scratch buffer's length is less than the bytes it held.
func TestReleaseZeroesScratch(t *testing.T) {
	ctx := context.Background()
	c := newCursor()
	c.load(ctx, `["secret\npassword-long-value","a\nb"]`, Options{})

	if !c.BeginArray() {
		t.Fatalf("TestReleaseZeroesScratch: BeginArray() returned false")
	}
	if got := c.ReadString(); got != "secret\npassword-long-value" {
		t.Fatalf("TestReleaseZeroesScratch: got %q", got)
	}
	if got := c.ReadString(); got != "a\nb" {
		t.Fatalf("TestReleaseZeroesScratch: got %q", got)
	}
	c.EndArray()
	if c.Err() != nil {
		t.Fatalf("TestReleaseZeroesScratch: %s", c.Err())
	}

	c.release(ctx)
	for i, b := range c.scratch[:cap(c.scratch)] {
		if b != 0 {
			t.Fatalf("TestReleaseZeroesScratch: scratch[%d] == %q after release, want 0", i, b)
		}
	}
	for i, b := range c.inline {
		if b != 0 {
			t.Fatalf("TestReleaseZeroesScratch: inline[%d] == %q after release, want 0", i, b)
		}
	}
}

func TestMatch(t *testing.T) {
	v := naming.New("FirstName", "")

	tests := []struct {
		desc string
		opts Options
		name string
		want bool
	}{
		{desc: "exact", opts: Options{}, name: "FirstName", want: true},
		{desc: "exact wrong case", opts: Options{}, name: "firstname", want: false},
		{desc: "exact folded", opts: Options{CaseInsensitive: true}, name: "FIRSTNAME", want: true},
		{desc: "snake", opts: Options{Naming: naming.Snake}, name: "first_name", want: true},
		{desc: "snake gets exact", opts: Options{Naming: naming.Snake}, name: "FirstName", want: false},
		{desc: "kebab folded", opts: Options{Naming: naming.Kebab, CaseInsensitive: true}, name: "First-Name", want: true},
	}

	for _, test := range tests {
		var got bool
		err := Decode(`{"`+test.name+`":0}`, test.opts, func(c *Cursor) {
			c.BeginObject()
			got = c.Match(c.ReadName(), &v)
			c.Skip()
			c.EndObject()
		})
		if err != nil {
			t.Errorf("TestMatch(%s): %s", test.desc, err)
			continue
		}
		if got != test.want {
			t.Errorf("TestMatch(%s): got %v, want %v", test.desc, got, test.want)
		}
	}
}

func TestApply(t *testing.T) {
	got, err := Apply(Options{}, WithNaming(naming.Kebab), WithCaseInsensitive(), WithPretty("    "), WithCycleDetection())
	if err != nil {
		t.Fatalf("TestApply: %s", err)
	}
	want := Options{Naming: naming.Kebab, CaseInsensitive: true, Pretty: true, Indent: "    ", DetectCycles: true}
	if diff := pretty.Compare(want, got); diff != "" {
		t.Errorf("TestApply: -want/+got:\n%s", diff)
	}

	if _, err := Apply(Options{}, WithPretty("\t x")); err == nil {
		t.Errorf("TestApply: WithPretty with a letter: got err == nil, want err != nil")
	}
}

type intDispatcher struct{}

type wrapped struct{ n int }

func (intDispatcher) Encode(s *Sink, v any, tr *cycle.Tracker) bool {
	w, ok := v.(wrapped)
	if !ok {
		return false
	}
	WriteInt(s, w.n)
	return true
}

func (intDispatcher) Decode(c *Cursor, v any) bool {
	w, ok := v.(*wrapped)
	if !ok {
		return false
	}
	w.n = ReadInt[int](c)
	return true
}

func TestDispatch(t *testing.T) {
	Register(intDispatcher{})

	s, err := EncodeValue(wrapped{n: 42}, Options{})
	if err != nil || s != "42" {
		t.Fatalf("TestDispatch: EncodeValue(): got (%q, %v), want (\"42\", nil)", s, err)
	}

	var w wrapped
	if err := DecodeValue("-3", &w, Options{}); err != nil {
		t.Fatalf("TestDispatch: DecodeValue(): %s", err)
	}
	if w.n != -3 {
		t.Errorf("TestDispatch: DecodeValue(): got %d, want -3", w.n)
	}

	var ne *errors.NotRegisteredError
	if _, err := EncodeValue("str", Options{}); !errors.As(err, &ne) {
		t.Errorf("TestDispatch: EncodeValue(string): got %v, want *errors.NotRegisteredError", err)
	}
	if err := DecodeValue(`1`, &s, Options{}); !errors.As(err, &ne) {
		t.Errorf("TestDispatch: DecodeValue(*string): got %v, want *errors.NotRegisteredError", err)
	}
}
