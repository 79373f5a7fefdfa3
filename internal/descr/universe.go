package descr

import (
	"fmt"
)

// Universe is the closed set of types known to one generation run.
type Universe struct {
	byName map[string]*Type
	order  []*Type
}

// NewUniverse returns a Universe holding types. Two types with the same name is an error.
func NewUniverse(types ...*Type) (*Universe, error) {
	u := &Universe{byName: make(map[string]*Type, len(types))}
	for _, t := range types {
		if err := u.Add(t); err != nil {
			return nil, err
		}
	}
	return u, nil
}

// Add adds t to the Universe.
func (u *Universe) Add(t *Type) error {
	if t.Name == "" {
		return fmt.Errorf("type with no name")
	}
	if _, ok := u.byName[t.Name]; ok {
		return fmt.Errorf("type %q declared twice", t.Name)
	}
	u.byName[t.Name] = t
	u.order = append(u.order, t)
	return nil
}

// Lookup finds a type by name.
func (u *Universe) Lookup(name string) (*Type, bool) {
	t, ok := u.byName[name]
	return t, ok
}

// Types returns every type in the order it was added.
func (u *Universe) Types() []*Type {
	return u.order
}

// Structs returns the names of every non-generic struct, in the order they were added.
func (u *Universe) Structs() []string {
	var out []string
	for _, t := range u.order {
		if t.Decl == DeclStruct && !t.Generic() {
			out = append(out, t.Name)
		}
	}
	return out
}
