package config

import (
	"fmt"
	iofs "io/fs"
	"path/filepath"
)

// Names are the config file names Find looks for, in order.
var Names = []string{"shapejson.yaml", "shapejson.yml", "shapejson.jsonc", "shapejson.json"}

// Find searches for a config file starting in startDir and walking up the directory tree.
// It returns the path of the first one found. startDir must be absolute.
func Find(fsys iofs.ReadFileFS, startDir string) (string, error) {
	if !filepath.IsAbs(startDir) {
		return "", fmt.Errorf("Find(): startDir %s is not absolute", startDir)
	}
	dir := filepath.Clean(startDir)
	for {
		for _, n := range Names {
			p := filepath.Join(dir, n)
			if _, err := fsys.ReadFile(p); err == nil {
				return p, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no config file found (searched from %s to root)", startDir)
		}
		dir = parent
	}
}
