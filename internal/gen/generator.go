package gen

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/music-group/flatbuffers/internal/common"
	"github.com/music-group/flatbuffers/internal/diagnostic"
	"github.com/music-group/flatbuffers/internal/emit"
	"github.com/music-group/flatbuffers/internal/plan"
	"github.com/music-group/flatbuffers/internal/schema"
)

// ErrSchemaIntegrity is returned when a schema fails the integrity checks
// generation relies on.
var ErrSchemaIntegrity = errors.New("schema integrity check failed")

// Generator generates bindings for one target language.
type Generator struct {
	config   Config
	renderer Renderer
	log      *zap.Logger
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config Config) (*Generator, error) {
	r, err := newRenderer(config)
	if err != nil {
		return nil, err
	}

	log := config.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &Generator{config: config, renderer: r, log: log}, nil
}

// GeneratedFile represents a generated source file.
type GeneratedFile struct {
	// Filename is relative to the output directory and may include the
	// namespace directories, e.g. "MyGame/Sample/Monster.go".
	Filename string
	// Content is the final source code.
	Content []byte
}

// Result is the outcome of a generation run.
type Result struct {
	Files []GeneratedFile
	// Diagnostics holds the warnings of every definition, in definition
	// order.
	Diagnostics *diagnostic.Diagnostics
}

// definition is one enum or record to generate, in declaration order.
type definition struct {
	enum   *schema.EnumDef
	record *schema.RecordDef
}

func (d definition) name() string {
	if d.enum != nil {
		return d.enum.Name
	}

	return d.record.Name
}

func (d definition) namespace() schema.Namespace {
	if d.enum != nil {
		return d.enum.Namespace
	}

	return d.record.Namespace
}

// definitions lists enums first, then records. Deprecated records are
// skipped entirely.
func definitions(s *schema.Schema) []definition {
	defs := make([]definition, 0, len(s.Enums)+len(s.Records))

	for _, e := range s.Enums {
		defs = append(defs, definition{enum: e})
	}

	for _, r := range s.Records {
		if !r.Deprecated {
			defs = append(defs, definition{record: r})
		}
	}

	return defs
}

// Generate generates the bindings of every definition of s.
//
// Definitions are generated concurrently, each one a pure pass over the
// read-only schema. Output order is declaration order regardless of
// scheduling.
func (g *Generator) Generate(ctx context.Context, s *schema.Schema) (*Result, error) {
	if diags := schema.Validate(s); diags.HasErrors() {
		return nil, fmt.Errorf("%w: %w", ErrSchemaIntegrity, diags.Error())
	}

	single := g.config.OneFile || s.OneFile
	defs := definitions(s)
	frags := make([]*Fragment, len(defs))

	eg, ctx := errgroup.WithContext(ctx)
	if g.config.Workers > 0 {
		eg.SetLimit(g.config.Workers)
	}

	for i, d := range defs {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			frag, err := g.generateDefinition(d, s, single)
			if err != nil {
				return fmt.Errorf("generating %s: %w", d.name(), err)
			}

			frags[i] = frag

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	res := &Result{Diagnostics: &diagnostic.Diagnostics{}}

	for _, frag := range frags {
		res.Diagnostics.Merge(*frag.Unit.Warnings)
	}

	for _, w := range res.Diagnostics.Warnings {
		g.log.Warn(w.Message, diagnosticFields(w)...)
	}

	for _, info := range res.Diagnostics.Infos {
		g.log.Info(info.Message, diagnosticFields(info)...)
	}

	files, err := g.renderFiles(s, frags, single)
	if err != nil {
		return nil, err
	}

	res.Files = files

	return res, nil
}

func diagnosticFields(d diagnostic.Diagnostic) []zap.Field {
	return []zap.Field{
		zap.String("code", d.Code),
		zap.String("definition", d.Definition),
		zap.String("field", d.Field),
	}
}

// generateDefinition runs plan, emit and render for one definition.
func (g *Generator) generateDefinition(d definition, s *schema.Schema, single bool) (*Fragment, error) {
	opts := g.renderer.Options(d.namespace(), single)

	var u *emit.Unit

	if d.enum != nil {
		u = emit.EnumUnit(d.enum, opts)
	} else {
		p, err := plan.Build(d.record, s)
		if err != nil {
			return nil, err
		}

		u = emit.RecordUnit(p, opts)
	}

	frag, err := g.renderer.RenderUnit(u)
	if err != nil {
		return nil, err
	}

	g.log.Debug("generated definition",
		zap.String("name", d.name()),
		zap.String("namespace", d.namespace().String()),
		zap.Int("statements", len(u.Stmts)))

	return frag, nil
}

func (g *Generator) renderFiles(s *schema.Schema, frags []*Fragment, single bool) ([]GeneratedFile, error) {
	var files []*File

	if single {
		files = append(files, &File{
			Path:      g.fileName(s) + "_generated." + g.renderer.Extension(),
			Package:   g.singlePackage(s),
			Fragments: frags,
		})
	} else {
		for _, frag := range frags {
			ns := frag.Unit.Namespace
			files = append(files, &File{
				Path:      filepath.Join(ns.Dir(), frag.Unit.Name+"."+g.renderer.Extension()),
				Package:   g.namespacePackage(ns),
				Fragments: []*Fragment{frag},
			})
		}
	}

	out := make([]GeneratedFile, 0, len(files))

	for _, f := range files {
		content, err := g.renderer.RenderFile(f)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", f.Path, err)
		}

		out = append(out, GeneratedFile{Filename: f.Path, Content: content})
	}

	return out, nil
}

func (g *Generator) fileName(s *schema.Schema) string {
	if g.config.FileName != "" {
		return g.config.FileName
	}

	return s.FileName
}

// singlePackage names the package of one-file output: the configured one,
// else the innermost schema namespace.
func (g *Generator) singlePackage(s *schema.Schema) string {
	switch {
	case g.config.PackageName != "":
		return g.config.PackageName
	case !common.IsEmpty(s.Namespace):
		return s.Namespace.Last()
	default:
		return defaultPackage
	}
}

// namespacePackage names the package of a per-definition file: the
// innermost namespace, which matches its directory.
func (g *Generator) namespacePackage(ns schema.Namespace) string {
	switch {
	case !common.IsEmpty(ns):
		return ns.Last()
	case g.config.PackageName != "":
		return g.config.PackageName
	default:
		return defaultPackage
	}
}
