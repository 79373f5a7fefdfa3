// shapejsonc generates JSON codecs for Go types.
//
// Usage:
//
//	shapejsonc [flags]        generates every configured output
//	shapejsonc check [flags]  classifies every output and prints its shape table
package main

import (
	"fmt"
	"io"
	"os"

	osfs "github.com/gopherfs/fs/io/os"
	"github.com/gostdlib/base/context"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/bearlytools/shapejson/internal/config"
	"github.com/bearlytools/shapejson/internal/descr"
	"github.com/bearlytools/shapejson/internal/discover"
	"github.com/bearlytools/shapejson/internal/gen"
	"github.com/bearlytools/shapejson/internal/idl"
	"github.com/bearlytools/shapejson/internal/shape"
	"github.com/bearlytools/shapejson/internal/writer"
	"github.com/bearlytools/shapejson/languages/go/conversions"
)

func main() {
	fsys, err := osfs.New()
	if err != nil {
		exitf("could not create an osfs: %s", err)
	}

	c := &cli{
		fsys:      fsys,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		newLogger: newLogger,
		getwd:     os.Getwd,
	}
	if err := c.run(context.Background(), os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return
		}
		var diags gen.Diagnostics
		if !errors.As(err, &diags) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// cli holds what a run reads from and writes to.
type cli struct {
	fsys      writer.FS
	stdout    io.Writer
	stderr    io.Writer
	newLogger func(verbose bool) (*zap.Logger, error)
	getwd     func() (string, error)
}

type flags struct {
	config     string
	pkg        string
	out        string
	sources    []string
	schemas    []string
	roots      []string
	noDispatch bool
	force      bool
	verbose    bool
}

func (c *cli) flagSet(f *flags) *pflag.FlagSet {
	fs := pflag.NewFlagSet("shapejsonc", pflag.ContinueOnError)
	fs.SetOutput(c.stderr)
	fs.StringVar(&f.config, "config", "", "path to a shapejson.yaml or shapejson.jsonc config file (default: searched for from the working directory up)")
	fs.StringVar(&f.pkg, "package", "", "package name of the generated file, replaces the config file")
	fs.StringVar(&f.out, "out", "", "path of the generated file, replaces the config file")
	fs.StringSliceVar(&f.sources, "source", nil, "Go source files to discover types in")
	fs.StringSliceVar(&f.schemas, "schema", nil, ".shape files to discover and declare types from")
	fs.StringSliceVar(&f.roots, "root", nil, "records to generate codecs for (default every discovered struct)")
	fs.BoolVar(&f.noDispatch, "no-dispatch", false, "do not register the records with the shapejson package")
	fs.BoolVar(&f.force, "force", false, "write files even when their content has not changed")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log at debug level in a human readable format")
	fs.Usage = func() {
		fmt.Fprintf(c.stderr, `shapejsonc generates JSON codecs for Go types.

Usage:
  shapejsonc [flags]
  shapejsonc check [flags]

Outputs come from --config, or from --package and --out when they are set.
Without either, the nearest shapejson config file at or above the working directory is used.

Flags:
`)
		fs.PrintDefaults()
	}
	return fs
}

func (c *cli) run(ctx context.Context, args []string) error {
	check := false
	if len(args) > 0 && args[0] == "check" {
		check = true
		args = args[1:]
	}

	f := &flags{}
	if err := c.flagSet(f).Parse(args); err != nil {
		return err
	}

	log, err := c.newLogger(f.verbose)
	if err != nil {
		return errors.Wrap(err, "creating logger")
	}
	defer log.Sync()
	gen.SetLogger(log)

	cfg, err := c.loadConfig(f)
	if err != nil {
		return err
	}

	req, err := c.request(ctx, cfg)
	if err != nil {
		return err
	}

	if check {
		return c.check(req)
	}

	res, err := gen.Generate(ctx, req)
	if err != nil {
		c.printDiagnostics(res.Diagnostics)
		return err
	}

	w, err := writer.New(writer.WithFS(c.fsys), writer.WithLogger(log), writer.WithForce(f.force))
	if err != nil {
		return err
	}
	results, err := w.Write(ctx, res.Files)
	if err != nil {
		return err
	}
	for i, r := range results {
		st := res.Stats[i]
		state := "unchanged"
		if r.Written {
			state = "wrote"
		}
		fmt.Fprintf(c.stdout, "%s %s (%d records, %d helpers)\n", state, r.Path, st.Code.Records, st.Code.Helpers)
	}
	return nil
}

// loadConfig builds the config from the flags, or reads the config file.
func (c *cli) loadConfig(f *flags) (*config.Config, error) {
	if f.pkg != "" || f.out != "" {
		dispatch := !f.noDispatch
		cfg := &config.Config{
			Outputs: []config.Output{
				{
					Package:  f.pkg,
					Out:      f.out,
					Sources:  f.sources,
					Schemas:  f.schemas,
					Roots:    f.roots,
					Dispatch: &dispatch,
				},
			},
		}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	path := f.config
	if path == "" {
		wd, err := c.getwd()
		if err != nil {
			return nil, errors.Wrap(err, "finding the working directory")
		}
		path, err = config.Find(c.fsys, wd)
		if err != nil {
			return nil, errors.Wrap(err, "need --config, or --package and --out")
		}
	}
	cfg, err := config.Load(c.fsys, path)
	if err != nil {
		return nil, err
	}
	if f.noDispatch {
		no := false
		for i := range cfg.Outputs {
			cfg.Outputs[i].Dispatch = &no
		}
	}
	return cfg, nil
}

// request runs discovery for every output.
func (c *cli) request(ctx context.Context, cfg *config.Config) (gen.Request, error) {
	req := gen.Request{}
	for _, o := range cfg.Outputs {
		types, err := discover.Files(c.fsys, o.Sources...)
		if err != nil {
			return gen.Request{}, err
		}
		var declare []*descr.Type
		for _, p := range o.Schemas {
			b, err := c.fsys.ReadFile(p)
			if err != nil {
				return gen.Request{}, errors.Wrapf(err, "reading schema %s", p)
			}
			file, err := idl.Parse(ctx, conversions.ByteSlice2String(b))
			if err != nil {
				return gen.Request{}, errors.Wrapf(err, "schema %s", p)
			}
			if file.Package != o.Package {
				return gen.Request{}, fmt.Errorf("schema %s is package %s, but its output is package %s", p, file.Package, o.Package)
			}
			declare = append(declare, file.Types...)
		}
		req.Outputs = append(req.Outputs, gen.Output{
			Package:  o.Package,
			Path:     o.Out,
			Types:    types,
			Declare:  declare,
			Roots:    o.Roots,
			Dispatch: o.Dispatches(),
		})
	}
	return req, nil
}

// check classifies every output and prints its shape table.
func (c *cli) check(req gen.Request) error {
	var all gen.Diagnostics
	for _, o := range req.Outputs {
		types := append(append([]*descr.Type{}, o.Types...), o.Declare...)
		u, err := descr.NewUniverse(types...)
		if err != nil {
			return errors.Wrapf(err, "output for package %s", o.Package)
		}
		set, err := shape.New(u).ClassifyRoots(o.Roots...)
		if err != nil {
			var diags gen.Diagnostics
			if !errors.As(err, &diags) {
				return err
			}
			all = append(all, diags...)
			continue
		}
		fmt.Fprintf(c.stdout, "package %s (%s)\n", o.Package, o.Path)
		if err := set.Describe(c.stdout); err != nil {
			return err
		}
		fmt.Fprintln(c.stdout)
	}
	if len(all) > 0 {
		c.printDiagnostics(all)
		return all
	}
	return nil
}

func (c *cli) printDiagnostics(diags gen.Diagnostics) {
	for _, d := range diags {
		fmt.Fprintln(c.stderr, d.Error())
	}
}

func exitf(s string, i ...any) {
	fmt.Fprintf(os.Stderr, s+"\n", i...)
	os.Exit(1)
}
