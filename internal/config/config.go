// Package config loads the generator configuration file.
//
// The file is YAML (.yaml or .yml) or JSON with comments (.jsonc or .json). Relative paths
// in the file are relative to the directory holding it.
package config

import (
	"fmt"
	iofs "io/fs"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Config is the generator configuration.
type Config struct {
	// Outputs are the generated files, one per Go package.
	Outputs []Output `yaml:"outputs" json:"outputs"`
}

// Output describes one generated file.
type Output struct {
	// Package is the package name of the generated file.
	Package string `yaml:"package" json:"package"`
	// Out is the path of the generated file.
	Out string `yaml:"out" json:"out"`
	// Sources are Go files whose types are discovered.
	Sources []string `yaml:"sources" json:"sources"`
	// Schemas are .shape files whose types are discovered and declared in the output.
	Schemas []string `yaml:"schemas" json:"schemas"`
	// Roots are the records codecs are generated for. Empty means every discovered struct.
	Roots []string `yaml:"roots" json:"roots"`
	// Dispatch registers the records with the shapejson package. It defaults to true.
	Dispatch *bool `yaml:"dispatch" json:"dispatch"`
}

// Dispatches reports if the output registers a dispatcher.
func (o Output) Dispatches() bool {
	return o.Dispatch == nil || *o.Dispatch
}

// Validate checks the output is complete.
func (o Output) Validate() error {
	switch {
	case o.Package == "":
		return fmt.Errorf("output has no package")
	case o.Out == "":
		return fmt.Errorf("output for package %s has no out path", o.Package)
	case filepath.Ext(o.Out) != ".go":
		return fmt.Errorf("output for package %s: out path %s must be a .go file", o.Package, o.Out)
	case len(o.Sources) == 0 && len(o.Schemas) == 0:
		return fmt.Errorf("output for package %s has no sources or schemas", o.Package)
	}
	return nil
}

// Validate checks every output, and that no two outputs write the same file.
func (c *Config) Validate() error {
	if len(c.Outputs) == 0 {
		return fmt.Errorf("config has no outputs")
	}
	seen := map[string]bool{}
	for i, o := range c.Outputs {
		if err := o.Validate(); err != nil {
			return errors.Wrapf(err, "outputs[%d]", i)
		}
		if seen[o.Out] {
			return fmt.Errorf("outputs[%d]: out path %s is used twice", i, o.Out)
		}
		seen[o.Out] = true
	}
	return nil
}

// Load reads and validates the config file at path from fsys.
func Load(fsys iofs.ReadFileFS, path string) (*Config, error) {
	b, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	c, err := Parse(path, b)
	if err != nil {
		return nil, err
	}
	c.resolve(filepath.Dir(path))
	if err := c.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return c, nil
}

// Parse decodes a config. The format is chosen by the extension of name.
func Parse(name string, b []byte) (*Config, error) {
	c := &Config{}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, c); err != nil {
			return nil, errors.Wrapf(err, "config %s is not valid YAML", name)
		}
	case ".jsonc", ".json":
		if err := json.Unmarshal(jsonc.ToJSON(b), c); err != nil {
			return nil, errors.Wrapf(err, "config %s is not valid JSON", name)
		}
	default:
		return nil, fmt.Errorf("config %s: unknown extension, want .yaml, .yml, .jsonc or .json", name)
	}
	return c, nil
}

// resolve makes every relative path relative to dir.
func (c *Config) resolve(dir string) {
	join := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(dir, p)
	}
	for i := range c.Outputs {
		o := &c.Outputs[i]
		o.Out = join(o.Out)
		for j := range o.Sources {
			o.Sources[j] = join(o.Sources[j])
		}
		for j := range o.Schemas {
			o.Schemas[j] = join(o.Schemas[j])
		}
	}
}
