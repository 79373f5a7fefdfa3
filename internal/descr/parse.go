package descr

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ParseRef parses a Go type expression such as "map[string][]*Address" or "Page[User]".
// Only the forms a Ref can hold are accepted.
func ParseRef(s string) (*Ref, error) {
	p := refParser{s: strings.TrimSpace(s)}
	if p.s == "" {
		return nil, fmt.Errorf("empty type expression")
	}
	r, err := p.ref()
	if err != nil {
		return nil, fmt.Errorf("type %q: %w", s, err)
	}
	p.space()
	if p.pos != len(p.s) {
		return nil, fmt.Errorf("type %q: unexpected %q", s, p.s[p.pos:])
	}
	return r, nil
}

// MustParseRef is ParseRef that panics on error. It is meant for tests and tables.
func MustParseRef(s string) *Ref {
	r, err := ParseRef(s)
	if err != nil {
		panic(err)
	}
	return r
}

type refParser struct {
	s   string
	pos int
}

func (p *refParser) space() {
	for p.pos < len(p.s) && p.s[p.pos] == ' ' {
		p.pos++
	}
}

func (p *refParser) consume(prefix string) bool {
	p.space()
	if strings.HasPrefix(p.s[p.pos:], prefix) {
		p.pos += len(prefix)
		return true
	}
	return false
}

func (p *refParser) ref() (*Ref, error) {
	switch {
	case p.consume("*"):
		elem, err := p.ref()
		if err != nil {
			return nil, err
		}
		return Pointer(elem), nil
	case p.consume("[]"):
		elem, err := p.ref()
		if err != nil {
			return nil, err
		}
		return Slice(elem), nil
	case p.consume("["):
		start := p.pos
		for p.pos < len(p.s) && p.s[p.pos] >= '0' && p.s[p.pos] <= '9' {
			p.pos++
		}
		n, err := strconv.Atoi(p.s[start:p.pos])
		if err != nil {
			return nil, fmt.Errorf("array length must be an integer literal")
		}
		if !p.consume("]") {
			return nil, fmt.Errorf("missing ] after array length")
		}
		elem, err := p.ref()
		if err != nil {
			return nil, err
		}
		return Array(n, elem), nil
	case p.consume("map["):
		key, err := p.ref()
		if err != nil {
			return nil, err
		}
		if !p.consume("]") {
			return nil, fmt.Errorf("missing ] after map key")
		}
		elem, err := p.ref()
		if err != nil {
			return nil, err
		}
		return Map(key, elem), nil
	case p.consume("interface{}"):
		return Named("any"), nil
	}
	return p.named()
}

func (p *refParser) named() (*Ref, error) {
	p.space()
	start := p.pos
	for p.pos < len(p.s) {
		r := rune(p.s[p.pos])
		if r == '.' || r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			p.pos++
			continue
		}
		break
	}
	name := p.s[start:p.pos]
	if name == "" {
		if p.pos < len(p.s) {
			return nil, fmt.Errorf("unexpected %q", p.s[p.pos:])
		}
		return nil, fmt.Errorf("missing type name")
	}
	if !unicode.IsLetter(rune(name[0])) && name[0] != '_' {
		return nil, fmt.Errorf("%q is not a type name", name)
	}

	if !p.consume("[") {
		return Named(name), nil
	}
	var args []*Ref
	for {
		a, err := p.ref()
		if err != nil {
			return nil, err
		}
		args = append(args, a)
		if p.consume(",") {
			continue
		}
		if p.consume("]") {
			break
		}
		return nil, fmt.Errorf("missing ] after type arguments of %s", name)
	}
	return Named(name, args...), nil
}
