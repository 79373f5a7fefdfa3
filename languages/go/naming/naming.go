// Package naming provides the wire name variants of record fields. Variants are computed once,
// at generation time, and emitted into generated code as literals. Generated decoders use Match
// to compare an incoming object name against the expected variant without allocating.
package naming

import (
	"fmt"
	"strings"
)

// Convention is a field naming convention applied on the wire.
type Convention uint8

const (
	// Exact uses the field name as declared.
	Exact Convention = 0
	// Camel lowers the first letter of the field name.
	Camel Convention = 1
	// Snake lowers the field name and separates words with '_'.
	Snake Convention = 2
	// Kebab lowers the field name and separates words with '-'.
	Kebab Convention = 3
)

var convNames = [...]string{
	Exact: "exact",
	Camel: "camel",
	Snake: "snake",
	Kebab: "kebab",
}

func (c Convention) String() string {
	if int(c) < len(convNames) {
		return convNames[c]
	}
	return fmt.Sprintf("Convention(%d)", uint8(c))
}

// ParseConvention converts a name such as "snake" into a Convention. The empty string is Exact.
func ParseConvention(s string) (Convention, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "exact":
		return Exact, nil
	case "camel":
		return Camel, nil
	case "snake":
		return Snake, nil
	case "kebab":
		return Kebab, nil
	}
	return Exact, fmt.Errorf("unknown naming convention %q", s)
}

// Variants holds every spelling a field may have on the wire.
type Variants struct {
	Exact  string
	Camel  string
	Snake  string
	Kebab  string
	Custom string
}

// New computes the Variants for a field named name. custom is an explicit wire name
// override and may be empty.
func New(name, custom string) Variants {
	return Variants{
		Exact:  name,
		Camel:  ToCamel(name),
		Snake:  ToSnake(name),
		Kebab:  ToKebab(name),
		Custom: custom,
	}
}

// Expected returns the name written for this field under convention c. A Custom name wins
// over every convention.
func (v *Variants) Expected(c Convention) string {
	if v.Custom != "" {
		return v.Custom
	}
	switch c {
	case Camel:
		return v.Camel
	case Snake:
		return v.Snake
	case Kebab:
		return v.Kebab
	}
	return v.Exact
}

// Match reports if got names this field under convention c. When fold is set, ASCII letters
// compare without regard to case.
func (v *Variants) Match(got []byte, c Convention, fold bool) bool {
	want := v.Expected(c)
	if !fold {
		return string(got) == want
	}
	return EqualFoldASCII(got, want)
}

// EqualFoldASCII reports if a and b are equal under ASCII case folding. Bytes outside of
// A-Z and a-z must match exactly.
func EqualFoldASCII(a []byte, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if lower(a[i]) != lower(b[i]) {
			return false
		}
	}
	return true
}

func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func isUpper(c byte) bool {
	return 'A' <= c && c <= 'Z'
}

// ToCamel lowers the first letter of name.
func ToCamel(name string) string {
	if name == "" || !isUpper(name[0]) {
		return name
	}
	b := []byte(name)
	b[0] = lower(b[0])
	return string(b)
}

// ToSnake inserts '_' before each uppercase letter that is not the first letter and
// lowers the result. "UserID" becomes "user_i_d".
func ToSnake(name string) string {
	return separate(name, '_')
}

// ToKebab is ToSnake with '-' as the separator.
func ToKebab(name string) string {
	return separate(name, '-')
}

func separate(name string, sep byte) string {
	b := make([]byte, 0, len(name)+4)
	for i := 0; i < len(name); i++ {
		c := name[i]
		if isUpper(c) {
			if i > 0 {
				b = append(b, sep)
			}
			c = lower(c)
		}
		b = append(b, c)
	}
	return string(b)
}
