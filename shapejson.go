// Package shapejson encodes and decodes Go values as JSON using codecs generated ahead of
// time by shapejsonc. Nothing is discovered with reflection at runtime: a value's type must
// belong to a generated package, which registers its codecs when it is imported.
//
// Example:
//
//	s, err := shapejson.Encode(&user, shapejson.WithNaming(shapejson.Snake))
//	...
//	var u shop.User
//	err = shapejson.Decode(s, &u, shapejson.WithNaming(shapejson.Snake))
package shapejson

import (
	"github.com/bearlytools/shapejson/languages/go/codec"
	"github.com/bearlytools/shapejson/languages/go/conversions"
)

// Encode encodes v, a generated record or a pointer to one, as JSON.
func Encode(v any, options ...Option) (string, error) {
	opts, err := codec.Apply(codec.Options{}, options...)
	if err != nil {
		return "", err
	}
	return codec.EncodeValue(v, opts)
}

// EncodeBytes is Encode returning a []byte.
func EncodeBytes(v any, options ...Option) ([]byte, error) {
	s, err := Encode(v, options...)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// Decode decodes text into v, which must be a pointer to a generated record. On error v is
// left holding whatever was decoded before the error was found.
func Decode(text string, v any, options ...Option) error {
	opts, err := codec.Apply(codec.Options{}, options...)
	if err != nil {
		return err
	}
	return codec.DecodeValue(text, v, opts)
}

// DecodeBytes is Decode reading from b. Decoded strings never share memory with b.
func DecodeBytes(b []byte, v any, options ...Option) error {
	return Decode(conversions.ByteSlice2String(b), v, options...)
}
