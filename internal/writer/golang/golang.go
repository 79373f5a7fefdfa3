package golang

import (
	"crypto/sha256"
	"fmt"
	iofs "io/fs"
	"path/filepath"

	"github.com/gopherfs/fs"
	"github.com/gostdlib/base/context"
	"go.uber.org/zap"

	"github.com/bearlytools/shapejson/internal/render"
)

// FS is what the Writer needs from a filesystem.
type FS interface {
	fs.Writer
	iofs.ReadFileFS
	iofs.StatFS
}

// Result is the outcome of writing one file.
type Result struct {
	// Path is the file's location.
	Path string
	// Written is false when the file already held the same content and was left alone.
	Written bool
}

// Writer implements writer.WriteFiles for the Go language.
type Writer struct{}

// WriteFiles writes each render to its Path. A file whose size and content hash already
// match is not rewritten unless force is set, so unchanged outputs keep their mtime.
func (w *Writer) WriteFiles(ctx context.Context, fsys FS, log *zap.Logger, force bool, renders []render.Rendered) ([]Result, error) {
	results := make([]Result, 0, len(renders))
	for _, r := range renders {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		p := filepath.Clean(r.Path)
		if filepath.Ext(p) != ".go" {
			return nil, fmt.Errorf("package(%s) output path(%s) must be a .go file", r.Package, p)
		}

		if !force {
			same, err := sameFile(fsys, p, r.Native)
			if err != nil {
				return nil, err
			}
			if same {
				log.Debug("unchanged", zap.String("path", p))
				results = append(results, Result{Path: p})
				continue
			}
		}

		if err := fsys.WriteFile(p, r.Native, 0644); err != nil {
			return nil, fmt.Errorf("problem writing package(%s) to local file(%s): %w", r.Package, p, err)
		}
		log.Info("wrote", zap.String("path", p), zap.String("package", r.Package), zap.Int("bytes", len(r.Native)))
		results = append(results, Result{Path: p, Written: true})
	}
	return results, nil
}

// sameFile determines if the file at path has the size and sha256 hash of content. A
// file that cannot be stat'd is not the same.
func sameFile(fsys FS, path string, content []byte) (bool, error) {
	fi, err := fsys.Stat(path)
	if err != nil {
		return false, nil
	}
	if int64(len(content)) != fi.Size() {
		return false, nil
	}
	b, err := fsys.ReadFile(path)
	if err != nil {
		return false, err
	}
	return sha256.Sum256(b) == sha256.Sum256(content), nil
}
