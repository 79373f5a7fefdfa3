package codec

import (
	"net/netip"
	"strconv"
	"time"

	"golang.org/x/exp/constraints"
)

// Object member names are always strings. Map keys of other kinds use a fixed text form:
// integers in base 10, floats in their shortest form, bools as true/false, times in
// RFC 3339, durations in time.Duration.String form and addresses in netip form.

// Key writes a string map key.
func (s *Sink) Key(k string) { s.String(k) }

// KeyInt writes a signed integer map key.
func KeyInt[T constraints.Signed](s *Sink, k T) {
	s.String(strconv.FormatInt(int64(k), 10))
}

// KeyUint writes an unsigned integer map key.
func KeyUint[T constraints.Unsigned](s *Sink, k T) {
	s.String(strconv.FormatUint(uint64(k), 10))
}

// KeyFloat writes a float map key.
func KeyFloat[T constraints.Float](s *Sink, k T) {
	f := float64(k)
	if str, ok := nonFiniteString(f); ok {
		s.String(str)
		return
	}
	s.String(string(appendFloat(nil, f, bitSize[T]())))
}

// KeyBool writes a bool map key.
func (s *Sink) KeyBool(k bool) { s.String(strconv.FormatBool(k)) }

// KeyTime writes a time map key.
func (s *Sink) KeyTime(k time.Time) { s.String(k.Format(time.RFC3339Nano)) }

// KeyDuration writes a duration map key.
func (s *Sink) KeyDuration(k time.Duration) { s.String(k.String()) }

// KeyAddr writes an address map key.
func (s *Sink) KeyAddr(k netip.Addr) { s.String(addrString(k)) }

// ParseKeyInt converts a member name read with ReadName into a signed integer key.
func ParseKeyInt[T constraints.Signed](c *Cursor, name []byte) T {
	if c.err != nil {
		return 0
	}
	return parseInt[T](c, name)
}

// ParseKeyUint converts a member name into an unsigned integer key.
func ParseKeyUint[T constraints.Unsigned](c *Cursor, name []byte) T {
	if c.err != nil {
		return 0
	}
	return parseUint[T](c, name)
}

// ParseKeyFloat converts a member name into a float key.
func ParseKeyFloat[T constraints.Float](c *Cursor, name []byte) T {
	if c.err != nil {
		return 0
	}
	return parseFloat[T](c, name)
}

// ParseKeyBool converts a member name into a bool key.
func (c *Cursor) ParseKeyBool(name []byte) bool {
	if c.err != nil {
		return false
	}
	switch string(name) {
	case "true":
		return true
	case "false":
		return false
	}
	c.invalid("bool key", name, nil)
	return false
}

// ParseKeyTime converts a member name into a time key.
func (c *Cursor) ParseKeyTime(name []byte) time.Time {
	if c.err != nil {
		return time.Time{}
	}
	return c.parseTime(name)
}

// ParseKeyDuration converts a member name into a duration key.
func (c *Cursor) ParseKeyDuration(name []byte) time.Duration {
	if c.err != nil {
		return 0
	}
	return c.parseDuration(name)
}

// ParseKeyAddr converts a member name into an address key.
func (c *Cursor) ParseKeyAddr(name []byte) netip.Addr {
	if c.err != nil {
		return netip.Addr{}
	}
	return c.parseAddr(name)
}

// CompareBool orders false before true, for sorting bool map keys.
func CompareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	}
	return 1
}
