package emit

import (
	"fmt"

	"github.com/bearlytools/shapejson/internal/field"
	"github.com/bearlytools/shapejson/internal/shape"
)

// keyParse returns an expression converting the member name bytes in name to a key of
// node k.
func keyParse(k *shape.Node, name string) string {
	switch {
	case k.Prim == field.FTString:
		return fmt.Sprintf("%s(%s)", k.GoType, name)
	case k.Prim == field.FTBool:
		return cast(k, fmt.Sprintf("c.ParseKeyBool(%s)", name))
	case field.IsSigned(k.Prim):
		return fmt.Sprintf("codec.ParseKeyInt[%s](c, %s)", k.GoType, name)
	case field.IsUnsigned(k.Prim):
		return fmt.Sprintf("codec.ParseKeyUint[%s](c, %s)", k.GoType, name)
	case field.IsFloat(k.Prim):
		return fmt.Sprintf("codec.ParseKeyFloat[%s](c, %s)", k.GoType, name)
	case field.IsLeaf(k.Prim):
		return fmt.Sprintf("c.ParseKey%s(%s)", k.Prim.Ident(), name)
	}
	panic(fmt.Sprintf("bug: %s cannot be a map key", k.GoType))
}

// keyWrite returns a statement writing key as an object member name.
func keyWrite(k *shape.Node, key string) string {
	switch {
	case k.Prim == field.FTString:
		return fmt.Sprintf("s.Key(%s)", uncast(k, key))
	case k.Prim == field.FTBool:
		return fmt.Sprintf("s.KeyBool(%s)", uncast(k, key))
	case field.IsSigned(k.Prim):
		return fmt.Sprintf("codec.KeyInt(s, %s)", key)
	case field.IsUnsigned(k.Prim):
		return fmt.Sprintf("codec.KeyUint(s, %s)", key)
	case field.IsFloat(k.Prim):
		return fmt.Sprintf("codec.KeyFloat(s, %s)", key)
	case field.IsLeaf(k.Prim):
		return fmt.Sprintf("s.Key%s(%s)", k.Prim.Ident(), key)
	}
	panic(fmt.Sprintf("bug: %s cannot be a map key", k.GoType))
}

// sortedKeys returns an expression yielding the keys of map m in a fixed order, so that
// encoding the same map twice gives the same bytes.
func sortedKeys(k *shape.Node, m string) string {
	switch k.Prim {
	case field.FTBool:
		if k.Cast() {
			return fmt.Sprintf("slices.SortedFunc(maps.Keys(%s), func(a, b %s) int { return codec.CompareBool(bool(a), bool(b)) })", m, k.GoType)
		}
		return fmt.Sprintf("slices.SortedFunc(maps.Keys(%s), codec.CompareBool)", m)
	case field.FTTime:
		return fmt.Sprintf("slices.SortedFunc(maps.Keys(%s), time.Time.Compare)", m)
	case field.FTAddr:
		return fmt.Sprintf("slices.SortedFunc(maps.Keys(%s), netip.Addr.Compare)", m)
	}
	return fmt.Sprintf("slices.Sorted(maps.Keys(%s))", m)
}
