package codec

import (
	"bytes"
	"encoding/base64"
	"math"
	"net/netip"
	"strconv"
	"time"

	"github.com/go-json-experiment/json/jsontext"
	"golang.org/x/exp/constraints"

	"github.com/bearlytools/shapejson/languages/go/errors"
	"github.com/bearlytools/shapejson/languages/go/naming"
)

// Sink writes JSON for generated encoders. Like Cursor, it records the first error and
// ignores every write after it.
type Sink struct {
	buf  bytes.Buffer
	enc  *jsontext.Encoder
	num  []byte
	opts Options
	err  error
}

func newSink() *Sink {
	s := &Sink{num: make([]byte, 0, 64)}
	s.enc = jsontext.NewEncoder(&s.buf, jsontext.AllowDuplicateNames(true))
	return s
}

// reset readies the Sink for a new call, keeping its buffer.
func (s *Sink) reset(opts Options) {
	s.buf.Reset()
	s.err = nil
	s.opts = opts
	if opts.Pretty {
		s.enc.Reset(
			&s.buf,
			jsontext.AllowDuplicateNames(true),
			jsontext.Multiline(true),
			jsontext.WithIndent(opts.indent()),
		)
		return
	}
	s.enc.Reset(&s.buf, jsontext.AllowDuplicateNames(true))
}

// output returns a copy of what was written, without the newline the encoder adds after
// a top-level value.
func (s *Sink) output() string {
	return string(bytes.TrimSuffix(s.buf.Bytes(), []byte{'\n'}))
}

// Options returns the options of the current call.
func (s *Sink) Options() Options {
	return s.opts
}

// Err returns the first error the Sink saw.
func (s *Sink) Err() error {
	return s.err
}

// Fail records err if no error has been recorded yet.
func (s *Sink) Fail(err error) {
	if s.err == nil {
		s.err = err
	}
}

// Cycle records that record was reached while it was already being encoded.
func (s *Sink) Cycle(record string) {
	s.Fail(&errors.CycleError{Record: record})
}

func (s *Sink) token(t jsontext.Token) {
	if s.err != nil {
		return
	}
	if err := s.enc.WriteToken(t); err != nil {
		s.err = err
	}
}

func (s *Sink) value(v []byte) {
	if s.err != nil {
		return
	}
	if err := s.enc.WriteValue(jsontext.Value(v)); err != nil {
		s.err = err
	}
}

// BeginObject writes '{'.
func (s *Sink) BeginObject() { s.token(jsontext.BeginObject) }

// EndObject writes '}'.
func (s *Sink) EndObject() { s.token(jsontext.EndObject) }

// BeginArray writes '['.
func (s *Sink) BeginArray() { s.token(jsontext.BeginArray) }

// EndArray writes ']'.
func (s *Sink) EndArray() { s.token(jsontext.EndArray) }

// Null writes null.
func (s *Sink) Null() { s.token(jsontext.Null) }

// Name writes the wire name for a field with variants v under the current options.
func (s *Sink) Name(v *naming.Variants) {
	s.token(jsontext.String(v.Expected(s.opts.Naming)))
}

// String writes a string.
func (s *Sink) String(v string) { s.token(jsontext.String(v)) }

// Bool writes a bool.
func (s *Sink) Bool(v bool) { s.token(jsontext.Bool(v)) }

// Bytes writes b as a standard base64 string. A nil slice is written as null.
func (s *Sink) Bytes(b []byte) {
	if b == nil {
		s.Null()
		return
	}
	s.num = base64.StdEncoding.AppendEncode(s.num[:0], b)
	s.token(jsontext.String(string(s.num)))
}

// Time writes t in RFC 3339 form with nanoseconds.
func (s *Sink) Time(t time.Time) {
	s.num = t.AppendFormat(s.num[:0], time.RFC3339Nano)
	s.token(jsontext.String(string(s.num)))
}

// Duration writes d in time.Duration.String form.
func (s *Sink) Duration(d time.Duration) {
	s.token(jsontext.String(d.String()))
}

// Addr writes an IP address. The zero Addr is written as "".
func (s *Sink) Addr(a netip.Addr) {
	s.token(jsontext.String(addrString(a)))
}

func addrString(a netip.Addr) string {
	if !a.IsValid() {
		return ""
	}
	return a.String()
}

// WriteInt writes a signed integer.
func WriteInt[T constraints.Signed](s *Sink, v T) {
	s.token(jsontext.Int(int64(v)))
}

// WriteUint writes an unsigned integer.
func WriteUint[T constraints.Unsigned](s *Sink, v T) {
	s.token(jsontext.Uint(uint64(v)))
}

// WriteFloat writes a number using the shortest form that reads back as the same T.
// NaN and the infinities are written as the strings "NaN", "Infinity" and "-Infinity".
func WriteFloat[T constraints.Float](s *Sink, v T) {
	f := float64(v)
	if str, ok := nonFiniteString(f); ok {
		s.String(str)
		return
	}
	bits := bitSize[T]()
	if bits == 64 {
		s.token(jsontext.Float(f))
		return
	}
	s.num = appendFloat(s.num[:0], f, bits)
	s.value(s.num)
}

func nonFiniteString(f float64) (string, bool) {
	switch {
	case math.IsNaN(f):
		return "NaN", true
	case math.IsInf(f, 1):
		return "Infinity", true
	case math.IsInf(f, -1):
		return "-Infinity", true
	}
	return "", false
}

// appendFloat formats a finite float the way encoding/json does for its bit size.
func appendFloat(b []byte, f float64, bits int) []byte {
	format := byte('f')
	if abs := math.Abs(f); abs != 0 {
		if bits == 64 && (abs < 1e-6 || abs >= 1e21) ||
			bits == 32 && (float32(abs) < 1e-6 || float32(abs) >= 1e21) {
			format = 'e'
		}
	}
	b = strconv.AppendFloat(b, f, format, -1, bits)
	if format == 'e' {
		// Clean up e-09 to e-9.
		n := len(b)
		if n >= 4 && b[n-4] == 'e' && b[n-3] == '-' && b[n-2] == '0' {
			b[n-2] = b[n-1]
			b = b[:n-1]
		}
	}
	return b
}
