// Package render sets up the interface for rendering emitted codecs into a language native
// source file. It also supports registering the handlers of those renderers (which are in
// other packages).
package render

import (
	"fmt"
	"sync"

	"github.com/gostdlib/base/context"

	"github.com/bearlytools/shapejson/internal/emit"
)

//go:generate go tool github.com/johnsiilver/stringer -type=Lang -linecomment

// Lang represents a programming language we can render codecs in.
type Lang uint8

const (
	Unknown Lang = 0 // unknown
	Go      Lang = 1 // go
)

// Supported is languages that we have registered support for.
var Supported = map[Lang]Renderer{}

// Renderer renders a language native file from an emitted Unit.
type Renderer interface {
	Render(ctx context.Context, unit *emit.Unit) ([]byte, error)
}

// Job is one file to render.
type Job struct {
	// Path is where the rendered file is to be written.
	Path string
	Unit *emit.Unit
}

// Rendered represents rendered output for a language.
type Rendered struct {
	// Package is the package name of the file.
	Package string
	// Path is where the file is to be written.
	Path string
	// Lang is the language this is for.
	Lang Lang
	// Native is the output for the language.
	Native []byte
}

// Render renders every job in lang. Jobs render concurrently and the first error cancels the
// rest. Output is in the same order as jobs.
func Render(ctx context.Context, lang Lang, jobs []Job) ([]Rendered, error) {
	r, ok := Supported[lang]
	if !ok {
		return nil, fmt.Errorf("language %v is not supported", lang)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	out := make([]Rendered, len(jobs))
	wg := sync.WaitGroup{}
	errCh := make(chan error, 1)

	for i, job := range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ctx.Err() != nil {
				return
			}
			b, err := r.Render(ctx, job.Unit)
			if err != nil {
				select {
				case errCh <- fmt.Errorf("rendering %s: %w", job.Path, err):
				default:
				}
				cancel()
				return
			}
			// Each goroutine writes only its own index.
			out[i] = Rendered{
				Package: job.Unit.Package,
				Path:    job.Path,
				Lang:    lang,
				Native:  b,
			}
		}()
	}
	wg.Wait()

	select {
	case err := <-errCh:
		return nil, err
	default:
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
