package gen

import (
	"fmt"
	"slices"
	"strings"

	"github.com/music-group/flatbuffers/internal/emit"
	"github.com/music-group/flatbuffers/internal/schema"
)

// Renderer turns emitted statements into source text of one language.
type Renderer interface {
	// Extension is the output file extension, without the dot.
	Extension() string
	// Options returns the emit options for a unit in namespace ns. single is
	// set when every definition lands in one output unit.
	Options(ns schema.Namespace, single bool) emit.Options
	// RenderUnit renders the statements of one definition.
	RenderUnit(u *emit.Unit) (*Fragment, error)
	// RenderFile assembles rendered fragments into a complete source file.
	RenderFile(f *File) ([]byte, error)
}

// ImportSpec represents an import of generated code.
type ImportSpec struct {
	Alias string
	Path  string
}

// Fragment is the rendered body of one definition.
type Fragment struct {
	Unit    *emit.Unit
	Body    string
	Imports []ImportSpec
}

// File is one output file: a package and the fragments it is made of.
type File struct {
	// Path is relative to the output directory.
	Path      string
	Package   string
	Fragments []*Fragment
}

// Imports returns the imports of every fragment, deduplicated by path and
// sorted.
func (f *File) Imports() []ImportSpec {
	byPath := map[string]ImportSpec{}

	for _, frag := range f.Fragments {
		for _, imp := range frag.Imports {
			byPath[imp.Path] = imp
		}
	}

	out := make([]ImportSpec, 0, len(byPath))
	for _, imp := range byPath {
		out = append(out, imp)
	}

	slices.SortFunc(out, func(a, b ImportSpec) int {
		return strings.Compare(a.Path, b.Path)
	})

	return out
}

// Bodies returns the fragment bodies in order.
func (f *File) Bodies() []string {
	out := make([]string, 0, len(f.Fragments))
	for _, frag := range f.Fragments {
		out = append(out, frag.Body)
	}

	return out
}

func newRenderer(cfg Config) (Renderer, error) {
	switch cfg.Language {
	case LanguageGo:
		return &goRenderer{cfg: cfg}, nil
	case LanguageSwift:
		return &swiftRenderer{}, nil
	default:
		return nil, fmt.Errorf("no renderer for language %s", cfg.Language)
	}
}
