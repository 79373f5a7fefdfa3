// Package writer contains interfaces that can be implemented to write rendered files for
// a language implementation and a type that can be used to call those implementations
// and write out those files for all languages that were rendered.
package writer

import (
	"fmt"
	"sync"

	osfs "github.com/gopherfs/fs/io/os"
	"github.com/gostdlib/base/context"
	"go.uber.org/zap"

	"github.com/bearlytools/shapejson/internal/render"
	"github.com/bearlytools/shapejson/internal/writer/golang"
)

var supported = map[render.Lang]WriteFiles{
	render.Go: &golang.Writer{},
}

// FS is the filesystem files are written to. Reads are used to skip writing files whose
// content has not changed.
type FS = golang.FS

// Result is the outcome of writing one file.
type Result = golang.Result

// WriteFiles writes files to some location based on the language.
type WriteFiles interface {
	WriteFiles(ctx context.Context, fsys FS, log *zap.Logger, force bool, renders []render.Rendered) ([]Result, error)
}

// Runtime init check that both render and writer support the same languages.
func init() {
	for lang := range render.Supported {
		_, ok := supported[lang]
		if !ok {
			panic(fmt.Sprintf("bug: we support lang %q, but writer does not", lang))
		}
	}
}

// Writer writes rendered files.
type Writer struct {
	fs    FS
	log   *zap.Logger
	force bool
}

type writerOption func(w *Writer)

// WithFS uses the fs passed to write files to.
func WithFS(fs FS) writerOption {
	return func(w *Writer) {
		w.fs = fs
	}
}

// WithLogger logs each file written or skipped to l.
func WithLogger(l *zap.Logger) writerOption {
	return func(w *Writer) {
		w.log = l
	}
}

// WithForce writes every file, even those whose content has not changed.
func WithForce(force bool) writerOption {
	return func(w *Writer) {
		w.force = force
	}
}

// New creates a new Writer. By default it writes to the local disk.
func New(options ...writerOption) (*Writer, error) {
	w := &Writer{log: zap.NewNop()}
	for _, o := range options {
		o(w)
	}
	if w.fs == nil {
		fs, err := osfs.New()
		if err != nil {
			return nil, fmt.Errorf("could not create an osfs: %s", err)
		}
		w.fs = fs
	}
	return w, nil
}

// Write writes all rendered content to the appropriate locations for their language.
// Results are grouped by language in the order the languages were first seen.
func (w *Writer) Write(ctx context.Context, rendered []render.Rendered) ([]Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	for _, r := range rendered {
		if supported[r.Lang] == nil {
			return nil, fmt.Errorf("bug: writer.Writer does not support language: %v", r.Lang)
		}
	}

	// Organize all renders by language.
	var order []render.Lang
	m := map[render.Lang][]render.Rendered{}
	for _, r := range rendered {
		if _, ok := m[r.Lang]; !ok {
			order = append(order, r.Lang)
		}
		m[r.Lang] = append(m[r.Lang], r)
	}

	results := make([][]Result, len(order))
	wg := sync.WaitGroup{}
	errCh := make(chan error, 1)

	for i, lang := range order {
		if ctx.Err() != nil {
			break
		}

		wg.Add(1)
		go func() {
			defer wg.Done()

			res, err := supported[lang].WriteFiles(ctx, w.fs, w.log, w.force, m[lang])
			if err != nil {
				select {
				case errCh <- err:
				default:
				}
				cancel()
				return
			}
			results[i] = res
		}()
	}
	wg.Wait()
	close(errCh)

	if err := <-errCh; err != nil {
		return nil, err
	}
	var out []Result
	for _, r := range results {
		out = append(out, r...)
	}
	return out, nil
}
