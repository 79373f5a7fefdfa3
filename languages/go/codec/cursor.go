package codec

import (
	"bytes"
	"encoding/base64"
	"io"
	"math"
	"net/netip"
	"strconv"
	"time"
	"unsafe"

	"github.com/go-json-experiment/json/jsontext"
	"github.com/gostdlib/base/context"
	"golang.org/x/exp/constraints"

	"github.com/bearlytools/shapejson/languages/go/conversions"
	"github.com/bearlytools/shapejson/languages/go/errors"
	"github.com/bearlytools/shapejson/languages/go/naming"
	"github.com/bearlytools/shapejson/languages/go/pool"
)

// inlineSize is the largest input held in the Cursor's own array instead of a pooled buffer.
const inlineSize = 512

var (
	errBadIndent  = errors.New("indent may only contain spaces and tabs")
	errNotPointer = errors.New("decode target must be a pointer")
)

// Cursor reads JSON for generated decoders. The first error is recorded and every later
// read returns a zero value, so a decoder unwinds without checking errors at each step.
// Values never outlive the Cursor's input except where documented.
type Cursor struct {
	dec *jsontext.Decoder
	src bytes.Buffer

	inline [inlineSize]byte
	used   int
	rented []byte

	scratch []byte
	opts    Options
	err     error
}

func newCursor() *Cursor {
	c := &Cursor{}
	c.dec = jsontext.NewDecoder(&c.src, jsontext.AllowDuplicateNames(true))
	return c
}

// load copies text into the smallest buffer that holds it and points the decoder at it.
// The decoder scribbles over its input, so it never reads from text directly.
func (c *Cursor) load(ctx context.Context, text string, opts Options) {
	c.opts = opts
	c.err = nil

	var buf []byte
	switch {
	case len(text) <= inlineSize:
		buf = c.inline[:len(text)]
		c.used = len(text)
	case pool.Pooled(len(text)):
		buf = pool.Decode.Get(ctx, len(text))
		c.rented = buf
	default:
		buf = make([]byte, len(text))
	}
	copy(buf, text)

	c.src = *bytes.NewBuffer(buf)
	c.dec.Reset(&c.src, jsontext.AllowDuplicateNames(true))
}

// release zeroes whatever held the input so nothing survives into the next rental.
func (c *Cursor) release(ctx context.Context) {
	c.src = bytes.Buffer{}
	c.dec.Reset(&c.src, jsontext.AllowDuplicateNames(true))

	clear(c.inline[:c.used])
	c.used = 0
	if c.rented != nil {
		pool.Decode.Put(ctx, c.rented)
		c.rented = nil
	}
	clear(c.scratch[:cap(c.scratch)])
	c.scratch = c.scratch[:0]
	c.err = nil
}

// finish checks that nothing but whitespace follows the top-level value.
func (c *Cursor) finish() {
	if c.err != nil {
		return
	}
	_, err := c.dec.ReadToken()
	switch err {
	case io.EOF:
		return
	case nil:
		c.Fail(&errors.DecodeError{Offset: c.dec.InputOffset(), Err: errors.New("unexpected data after top-level value")})
	default:
		c.syntax(err)
	}
}

// Options returns the options of the current call.
func (c *Cursor) Options() Options {
	return c.opts
}

// Err returns the first error the Cursor saw.
func (c *Cursor) Err() error {
	return c.err
}

// Fail records err if no error has been recorded yet.
func (c *Cursor) Fail(err error) {
	if c.err == nil {
		c.err = err
	}
}

// NilTarget records that a decode was asked to fill a nil pointer of type goType.
func (c *Cursor) NilTarget(goType string) {
	c.Fail(&errors.DecodeError{Expected: "non-nil " + goType, Got: "nil"})
}

// NotPointer records that a decode was given a goType value rather than a pointer to one.
func (c *Cursor) NotPointer(goType string) {
	c.Fail(&errors.DecodeError{Expected: "*" + goType, Got: goType, Err: errNotPointer})
}

func (c *Cursor) syntax(err error) {
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	c.Fail(&errors.DecodeError{
		Pointer: string(c.dec.StackPointer()),
		Offset:  c.dec.InputOffset(),
		Syntax:  true,
		Err:     err,
	})
}

func (c *Cursor) mismatch(expected string, got jsontext.Kind) {
	c.Fail(&errors.DecodeError{
		Pointer:  string(c.dec.StackPointer()),
		Offset:   c.dec.InputOffset(),
		Expected: expected,
		Got:      kindName(got),
	})
}

func (c *Cursor) invalid(expected string, v []byte, err error) {
	c.Fail(&errors.DecodeError{
		Pointer:  string(c.dec.StackPointer()),
		Offset:   c.dec.InputOffset(),
		Expected: expected,
		Got:      string(v),
		Err:      err,
	})
}

func kindName(k jsontext.Kind) string {
	switch k {
	case '{':
		return "object"
	case '[':
		return "array"
	case 't', 'f':
		return "bool"
	case '}', ']':
		return "end of " + kindName(k-2)
	}
	return k.String()
}

// Peek returns the kind of the next token without consuming it. It returns 0 once an
// error has been recorded.
func (c *Cursor) Peek() jsontext.Kind {
	if c.err != nil {
		return 0
	}
	k := c.dec.PeekKind()
	if k == 0 {
		_, err := c.dec.ReadToken()
		if err == nil {
			err = io.ErrUnexpectedEOF
		}
		c.syntax(err)
	}
	return k
}

func (c *Cursor) token() {
	if _, err := c.dec.ReadToken(); err != nil {
		c.syntax(err)
	}
}

// ReadNull consumes the next value and returns true if it is null.
func (c *Cursor) ReadNull() bool {
	if c.Peek() == 'n' {
		c.token()
		return true
	}
	return false
}

// BeginObject consumes '{'. It returns false if the value was null, which is consumed, or
// if the value is not an object, which records an error.
func (c *Cursor) BeginObject() bool {
	return c.begin('{', "object")
}

// BeginArray consumes '['. It returns false if the value was null, which is consumed, or
// if the value is not an array, which records an error.
func (c *Cursor) BeginArray() bool {
	return c.begin('[', "array")
}

func (c *Cursor) begin(want jsontext.Kind, name string) bool {
	switch k := c.Peek(); k {
	case want:
		c.token()
		return c.err == nil
	case 'n':
		c.token()
	case 0:
	default:
		c.mismatch(name, k)
	}
	return false
}

// More reports if the current object or array has another member.
func (c *Cursor) More() bool {
	switch c.Peek() {
	case 0, '}', ']':
		return false
	}
	return true
}

// EndObject consumes '}'.
func (c *Cursor) EndObject() {
	c.end('}')
}

// EndArray consumes ']'.
func (c *Cursor) EndArray() {
	c.end(']')
}

func (c *Cursor) end(want jsontext.Kind) {
	if k := c.Peek(); k != want {
		if k != 0 {
			c.mismatch(kindName(want), k)
		}
		return
	}
	c.token()
}

// ReadName reads an object member name. The returned slice is only valid until the next
// read, so callers compare or copy it before reading the member's value.
func (c *Cursor) ReadName() []byte {
	if c.err != nil {
		return nil
	}
	v, err := c.dec.ReadValue()
	if err != nil {
		c.syntax(err)
		return nil
	}
	return c.unquote(v)
}

// Match reports if name is the wire name of a field with variants v under the current options.
func (c *Cursor) Match(name []byte, v *naming.Variants) bool {
	return v.Match(name, c.opts.Naming, c.opts.CaseInsensitive)
}

// unquote strips the quotes from a string value. Escaped strings are decoded into scratch.
func (c *Cursor) unquote(v jsontext.Value) []byte {
	if len(v) < 2 {
		return nil
	}
	raw := v[1 : len(v)-1]
	if bytes.IndexByte(raw, '\\') < 0 {
		return raw
	}
	var err error
	c.scratch, err = jsontext.AppendUnquote(c.scratch[:0], v)
	if err != nil {
		c.syntax(err)
		return nil
	}
	return c.scratch
}

// Skip consumes the next value, whatever it is.
func (c *Cursor) Skip() {
	if c.err != nil {
		return
	}
	if err := c.dec.SkipValue(); err != nil {
		c.syntax(err)
	}
}

// scalar reads the next value if its kind is want. A null is consumed and returns nil.
func (c *Cursor) scalar(want jsontext.Kind, name string) jsontext.Value {
	switch k := c.Peek(); k {
	case 0:
		return nil
	case 'n':
		c.token()
		return nil
	case want:
	default:
		c.mismatch(name, k)
		return nil
	}
	v, err := c.dec.ReadValue()
	if err != nil {
		c.syntax(err)
		return nil
	}
	return v
}

// str reads a string value and returns its unquoted bytes, valid until the next read.
// ok is false for null or on error.
func (c *Cursor) str(name string) (b []byte, ok bool) {
	v := c.scalar('"', name)
	if v == nil {
		return nil, false
	}
	b = c.unquote(v)
	return b, c.err == nil
}

// ReadString reads a string. null reads as "".
func (c *Cursor) ReadString() string {
	b, ok := c.str("string")
	if !ok {
		return ""
	}
	return string(b)
}

// ReadBool reads a bool. null reads as false.
func (c *Cursor) ReadBool() bool {
	switch k := c.Peek(); k {
	case 't':
		c.token()
		return true
	case 'f', 'n':
		c.token()
	case 0:
	default:
		c.mismatch("bool", k)
	}
	return false
}

// ReadBytes reads a base64 (standard encoding) string. null reads as nil and "" as an
// empty, non-nil slice.
func (c *Cursor) ReadBytes() []byte {
	b, ok := c.str("base64 string")
	if !ok {
		return nil
	}
	out := make([]byte, base64.StdEncoding.DecodedLen(len(b)))
	n, err := base64.StdEncoding.Decode(out, b)
	if err != nil {
		c.invalid("base64 string", b, err)
		return nil
	}
	return out[:n]
}

// ReadTime reads an RFC 3339 timestamp. null reads as the zero time.
func (c *Cursor) ReadTime() time.Time {
	b, ok := c.str("RFC 3339 time")
	if !ok {
		return time.Time{}
	}
	return c.parseTime(b)
}

func (c *Cursor) parseTime(b []byte) time.Time {
	t, err := time.Parse(time.RFC3339Nano, string(b))
	if err != nil {
		c.invalid("RFC 3339 time", b, err)
		return time.Time{}
	}
	return t
}

// ReadDuration reads a duration in time.Duration.String form, such as "1m30s".
func (c *Cursor) ReadDuration() time.Duration {
	b, ok := c.str("duration")
	if !ok {
		return 0
	}
	return c.parseDuration(b)
}

func (c *Cursor) parseDuration(b []byte) time.Duration {
	d, err := time.ParseDuration(conversions.ByteSlice2String(b))
	if err != nil {
		c.invalid("duration", b, err)
		return 0
	}
	return d
}

// ReadAddr reads an IP address. "" and null read as the zero Addr.
func (c *Cursor) ReadAddr() netip.Addr {
	b, ok := c.str("IP address")
	if !ok {
		return netip.Addr{}
	}
	return c.parseAddr(b)
}

func (c *Cursor) parseAddr(b []byte) netip.Addr {
	if len(b) == 0 {
		return netip.Addr{}
	}
	a, err := netip.ParseAddr(string(b))
	if err != nil {
		c.invalid("IP address", b, err)
		return netip.Addr{}
	}
	return a
}

func bitSize[T constraints.Integer | constraints.Float]() int {
	var z T
	return int(unsafe.Sizeof(z)) * 8
}

// ReadInt reads a signed integer that must fit in T. null reads as 0.
func ReadInt[T constraints.Signed](c *Cursor) T {
	v := c.scalar('0', "number")
	if v == nil {
		return 0
	}
	return parseInt[T](c, v)
}

func parseInt[T constraints.Signed](c *Cursor, b []byte) T {
	n, err := strconv.ParseInt(conversions.ByteSlice2String(b), 10, bitSize[T]())
	if err != nil {
		c.invalid("integer", b, err)
		return 0
	}
	return T(n)
}

// ReadUint reads an unsigned integer that must fit in T. null reads as 0.
func ReadUint[T constraints.Unsigned](c *Cursor) T {
	v := c.scalar('0', "number")
	if v == nil {
		return 0
	}
	return parseUint[T](c, v)
}

func parseUint[T constraints.Unsigned](c *Cursor, b []byte) T {
	n, err := strconv.ParseUint(conversions.ByteSlice2String(b), 10, bitSize[T]())
	if err != nil {
		c.invalid("unsigned integer", b, err)
		return 0
	}
	return T(n)
}

// ReadFloat reads a number. The strings "NaN", "Infinity" and "-Infinity" are accepted for
// the non-finite values. null reads as 0.
func ReadFloat[T constraints.Float](c *Cursor) T {
	switch c.Peek() {
	case '"':
		b, ok := c.str("number")
		if !ok {
			return 0
		}
		if f, ok := nonFinite(b); ok {
			return T(f)
		}
		c.invalid("number", b, nil)
		return 0
	}
	v := c.scalar('0', "number")
	if v == nil {
		return 0
	}
	return parseFloat[T](c, v)
}

func parseFloat[T constraints.Float](c *Cursor, b []byte) T {
	if f, ok := nonFinite(b); ok {
		return T(f)
	}
	f, err := strconv.ParseFloat(conversions.ByteSlice2String(b), bitSize[T]())
	if err != nil {
		c.invalid("number", b, err)
		return 0
	}
	return T(f)
}

func nonFinite(b []byte) (float64, bool) {
	switch string(b) {
	case "NaN":
		return math.NaN(), true
	case "Infinity":
		return math.Inf(1), true
	case "-Infinity":
		return math.Inf(-1), true
	}
	return 0, false
}
