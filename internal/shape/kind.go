package shape

//go:generate go tool github.com/johnsiilver/stringer -type=Kind -linecomment

// Kind is the wire shape of a classified type.
type Kind uint8

const (
	KindUnknown Kind = iota // unknown
	// Scalar is a bool, string, integer or float, or a named type over one.
	Scalar // scalar
	// LeafBuiltin is time.Time, time.Duration or netip.Addr.
	LeafBuiltin // leaf
	// Enumeration is a named integer type with declared values, written as its ordinal.
	Enumeration // enum
	// Optional is *T, written as null when nil.
	Optional // optional
	// Sequence is []T or [N]T.
	Sequence // sequence
	// Map is map[K]V with K a Scalar, LeafBuiltin or Enumeration.
	Map // map
	// ByteBlob is []byte, written as a base64 string.
	ByteBlob // bytes
	// Record is a struct with its own encoder and decoder.
	Record // record
)

// Keyable reports if a value of this kind can be a map key.
func (k Kind) Keyable() bool {
	switch k {
	case Scalar, LeafBuiltin, Enumeration:
		return true
	}
	return false
}

// Shared reports if nodes of this kind get a shared read/write helper pair.
func (k Kind) Shared() bool {
	switch k {
	case Optional, Sequence, Map:
		return true
	}
	return false
}
