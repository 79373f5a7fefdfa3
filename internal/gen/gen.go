// Package gen runs the generation pipeline: it classifies the discovered types of each
// output, emits their codecs and renders the Go files.
package gen

import (
	"github.com/gostdlib/base/context"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bearlytools/shapejson/internal/descr"
	"github.com/bearlytools/shapejson/internal/emit"
	"github.com/bearlytools/shapejson/internal/render"
	_ "github.com/bearlytools/shapejson/internal/render/golang"
	"github.com/bearlytools/shapejson/internal/shape"
	errs "github.com/bearlytools/shapejson/languages/go/errors"
)

// Diagnostic is a generation time problem with one type or field.
type Diagnostic = shape.Diagnostic

// Diagnostics is every problem found by a run. The error from Generate wraps it.
type Diagnostics = shape.Diagnostics

// Output is one generated file.
type Output struct {
	// Package is the package name of the generated file.
	Package string
	// Path is where the file is to be written.
	Path string
	// Types are the types declared in the package's Go source.
	Types []*descr.Type
	// Declare are types no Go source declares. The generated file declares them.
	Declare []*descr.Type
	// Roots are the records to generate codecs for, like "User" or "Page[User]". Empty
	// means every non-generic struct.
	Roots []string
	// Dispatch registers the records with the shapejson package.
	Dispatch bool
}

// Request is a generation run.
type Request struct {
	Outputs []Output
}

// Stats describe one generated file.
type Stats struct {
	Package string
	Path    string
	Shapes  shape.Stats
	Code    emit.Stats
}

// Result is the outcome of a run.
type Result struct {
	// Files are the rendered files, in the order of Request.Outputs.
	Files []render.Rendered
	// Stats are per file, in the order of Request.Outputs.
	Stats []Stats
	// Diagnostics are the problems found. When there are any, no files are rendered.
	Diagnostics Diagnostics
}

// Generate runs req. Every output is classified before any is rendered, so the
// diagnostics of all outputs are reported together. Every error is an errs.Error: bad
// requests are TypeParameter, diagnostics are wrapped in a TypeGenerate.
func Generate(ctx context.Context, req Request) (Result, error) {
	log := Logger()

	res := Result{}
	var jobs []render.Job
	for _, o := range req.Outputs {
		if o.Package == "" || o.Path == "" {
			return Result{}, errs.E(ctx, errs.CatUser, errs.TypeParameter, errors.Errorf("output %q has no package or path", o.Path))
		}

		types := make([]*descr.Type, 0, len(o.Types)+len(o.Declare))
		types = append(types, o.Types...)
		types = append(types, o.Declare...)
		u, err := descr.NewUniverse(types...)
		if err != nil {
			return Result{}, errs.E(ctx, errs.CatUser, errs.TypeParameter, errors.Wrapf(err, "output for package %s", o.Package))
		}
		log.Debug("discovered types", zap.String("package", o.Package), zap.Int("types", len(types)), zap.Strings("roots", o.Roots))

		set, err := shape.New(u).ClassifyRoots(o.Roots...)
		if err != nil {
			var diags Diagnostics
			if !errors.As(err, &diags) {
				return Result{}, errors.Wrapf(err, "classifying package %s", o.Package)
			}
			res.Diagnostics = append(res.Diagnostics, diags...)
			continue
		}

		unit := emit.Emit(set, emit.Config{Package: o.Package, Dispatch: o.Dispatch, Declare: o.Declare})
		st := Stats{Package: o.Package, Path: o.Path, Shapes: set.Stats(), Code: unit.Stats()}
		log.Info(
			"classified",
			zap.String("package", o.Package),
			zap.Int("records", st.Shapes.Records),
			zap.Int("fields", st.Shapes.Fields),
			zap.Int("helpers", st.Code.Helpers),
			zap.Int("optionals", st.Shapes.Optionals),
			zap.Int("sequences", st.Shapes.Sequences),
			zap.Int("maps", st.Shapes.Maps),
		)

		res.Stats = append(res.Stats, st)
		jobs = append(jobs, render.Job{Path: o.Path, Unit: unit})
	}

	if len(res.Diagnostics) > 0 {
		res.Stats = nil
		return res, errs.E(ctx, errs.CatUser, errs.TypeGenerate, res.Diagnostics)
	}

	files, err := render.Render(ctx, render.Go, jobs)
	if err != nil {
		return Result{}, errs.E(ctx, errs.CatInternal, errs.TypeBug, errors.Wrap(err, "rendering"))
	}
	res.Files = files
	return res, nil
}
