// Package main provides the CLI entrypoint for flatc-bind.
//
// flatc-bind reads a FlatBuffers schema described in YAML and writes typed
// accessor and builder bindings for it:
//
//	flatc-bind -schema monster.yaml -lang go -out ./generated
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/music-group/flatbuffers/internal/gen"
	"github.com/music-group/flatbuffers/internal/schema"
)

// Exit codes.
const (
	exitOK        = 0
	exitFailure   = 1
	exitUsage     = 2
	exitIntegrity = 3
)

type options struct {
	schemaPath string
	lang       string
	outDir     string
	oneFile    bool
	fileName   string
	pkg        string
	importBase string
	runtime    string
	workers    int
	verbose    bool
}

func parseFlags(args []string) (*options, error) {
	def := gen.DefaultConfig()
	opts := &options{}

	fs := flag.NewFlagSet("flatc-bind", flag.ContinueOnError)
	fs.StringVar(&opts.schemaPath, "schema", "", "path to the YAML schema (required)")
	fs.StringVar(&opts.lang, "lang", "go", "target language: go or swift")
	fs.StringVar(&opts.outDir, "out", def.OutputDir, "output directory")
	fs.BoolVar(&opts.oneFile, "one-file", false, "generate all definitions into a single file")
	fs.StringVar(&opts.fileName, "file-name", "", "base name of one-file output (defaults to the schema's file_name)")
	fs.StringVar(&opts.pkg, "package", "", "Go package of one-file output and of definitions outside any namespace")
	fs.StringVar(&opts.importBase, "import-base", "", "Go import path the output directory corresponds to")
	fs.StringVar(&opts.runtime, "runtime", def.RuntimeImport, "import path of the fbrt runtime helpers")
	fs.IntVar(&opts.workers, "workers", def.Workers, "maximum number of definitions generated concurrently")
	fs.BoolVar(&opts.verbose, "v", false, "verbose logging")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if opts.schemaPath == "" {
		fs.Usage()
		return nil, errors.New("-schema is required")
	}

	return opts, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.DisableStacktrace = true

	return cfg.Build()
}

func run(ctx context.Context, opts *options, log *zap.Logger) error {
	lang, err := gen.ParseLanguage(opts.lang)
	if err != nil {
		return err
	}

	s, err := schema.LoadFile(opts.schemaPath)
	if err != nil {
		return err
	}

	cfg := gen.DefaultConfig()
	cfg.Language = lang
	cfg.OutputDir = opts.outDir
	cfg.OneFile = opts.oneFile
	cfg.FileName = opts.fileName
	cfg.PackageName = opts.pkg
	cfg.ImportBase = opts.importBase
	cfg.RuntimeImport = opts.runtime
	cfg.Workers = opts.workers
	cfg.Logger = log

	g, err := gen.NewGenerator(cfg)
	if err != nil {
		return err
	}

	res, err := g.Generate(ctx, s)
	if err != nil {
		return err
	}

	if err := gen.WriteFiles(res.Files, opts.outDir); err != nil {
		return err
	}

	log.Info("bindings generated",
		zap.String("language", lang.String()),
		zap.Int("files", len(res.Files)),
		zap.Int("warnings", len(res.Diagnostics.Warnings)),
		zap.String("out", opts.outDir))

	return nil
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(exitOK)
		}

		fmt.Fprintln(os.Stderr, "flatc-bind:", err)
		os.Exit(exitUsage)
	}

	log, err := newLogger(opts.verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, "flatc-bind: creating logger:", err)
		os.Exit(exitFailure)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err = run(ctx, opts, log)

	stop()
	_ = log.Sync()

	switch {
	case err == nil:
		os.Exit(exitOK)
	case errors.Is(err, gen.ErrSchemaIntegrity), errors.Is(err, schema.ErrInvalidSchema):
		fmt.Fprintln(os.Stderr, "flatc-bind:", err)
		os.Exit(exitIntegrity)
	default:
		fmt.Fprintln(os.Stderr, "flatc-bind:", err)
		os.Exit(exitFailure)
	}
}
