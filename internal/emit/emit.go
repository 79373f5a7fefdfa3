// Package emit turns a classified shape.Set into the Go code of its codecs. Every Record
// gets an encoder and a decoder, and every distinct Optional, Sequence and Map shape gets one
// helper pair that all of its uses call. Emission picks an emitter by Kind and composes
// them recursively, so a []map[string]*Address field is a slice helper calling a map helper
// calling an optional helper calling the Address encoder.
package emit

import (
	"slices"

	"github.com/bearlytools/shapejson/internal/descr"
	"github.com/bearlytools/shapejson/internal/shape"
)

const (
	codecImport  = "github.com/bearlytools/shapejson/languages/go/codec"
	cycleImport  = "github.com/bearlytools/shapejson/languages/go/cycle"
	namingImport = "github.com/bearlytools/shapejson/languages/go/naming"
)

// Config controls what Emit produces.
type Config struct {
	// Package is the package name of the generated file.
	Package string
	// Dispatch adds a dispatcher registered with the codec package, so the façade can
	// encode and decode the records by their type.
	Dispatch bool
	// Declare holds types the generated file must declare itself, because no Go source
	// declares them.
	Declare []*descr.Type
}

// Unit is everything one generated file holds.
type Unit struct {
	Package string
	Imports []string
	Declare []*descr.Type
	Records []Record
	Helpers []Helper
	// Dispatch lists the records the dispatcher handles. It is empty when no dispatcher
	// is generated.
	Dispatch []Record
}

// Stats counts what a Unit holds.
type Stats struct {
	Records int
	Helpers int
	Methods int
}

// Stats counts what the Unit holds.
func (u *Unit) Stats() Stats {
	st := Stats{Records: len(u.Records), Helpers: len(u.Helpers)}
	for _, r := range u.Records {
		if r.Methods {
			st.Methods++
		}
	}
	return st
}

// Emit generates the code for every record and shared shape in set.
func Emit(set *shape.Set, cfg Config) *Unit {
	u := &Unit{
		Package: cfg.Package,
		Declare: cfg.Declare,
	}

	for _, n := range set.Records {
		u.Records = append(u.Records, recordFor(n))
	}
	for _, n := range set.Shared {
		u.Helpers = append(u.Helpers, helperFor(n))
	}
	if cfg.Dispatch {
		u.Dispatch = u.Records
	}
	u.Imports = imports(set, cfg.Declare)
	return u
}

func imports(set *shape.Set, declare []*descr.Type) []string {
	imps := map[string]bool{}
	if len(set.Records) > 0 {
		imps[codecImport] = true
		imps[cycleImport] = true
		imps[namingImport] = true
	}
	for _, imp := range set.Imports {
		imps[imp] = true
	}
	for _, n := range set.Shared {
		if n.Kind == shape.Map {
			imps["maps"] = true
			imps["slices"] = true
		}
	}
	// A declared type no root reaches can still name a leaf type.
	for _, t := range declare {
		for _, f := range t.Fields {
			if f.Type.Mentions("time.Time") || f.Type.Mentions("time.Duration") {
				imps["time"] = true
			}
			if f.Type.Mentions("netip.Addr") {
				imps["net/netip"] = true
			}
		}
	}

	out := make([]string, 0, len(imps))
	for imp := range imps {
		out = append(out, imp)
	}
	slices.Sort(out)
	return out
}
