package gen

import (
	"fmt"
	"runtime"
	"strings"

	"go.uber.org/zap"
)

//go:generate go tool stringer -type=Language -trimprefix=Language -output=language_string.go

// Language is a binding target language.
type Language int

const (
	_ Language = iota // skip zero value, use it as a default (invalid) value for Language

	LanguageGo
	LanguageSwift

	// LanguageTotal is a constant that represents the total number of languages defined
	LanguageTotal = int(iota)
)

// ParseLanguage parses a language name as given on the command line.
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(s) {
	case "go", "golang":
		return LanguageGo, nil
	case "swift":
		return LanguageSwift, nil
	default:
		return 0, fmt.Errorf("unknown language %q", s)
	}
}

// DefaultRuntimeImport is the import path of the runtime helpers generated Go
// code calls into.
const DefaultRuntimeImport = "github.com/music-group/flatbuffers/fbrt"

// defaultPackage names generated Go code that has no namespace and no
// configured package.
const defaultPackage = "generated"

// Config holds configuration for binding generation.
type Config struct {
	// Language is the target language.
	Language Language
	// OutputDir is the directory where generated files are written. It also
	// receives debug sidecars when formatting fails.
	OutputDir string
	// OneFile combines every definition into a single output unit. A schema
	// requesting one-file output gets it regardless.
	OneFile bool
	// FileName overrides the schema's base name for one-file output.
	FileName string
	// PackageName is the Go package of one-file output and of definitions
	// outside any namespace.
	PackageName string
	// ImportBase is the Go import path OutputDir corresponds to. Namespaces
	// referenced across packages are imported below it.
	ImportBase string
	// RuntimeImport is the import path of the fbrt runtime helpers.
	RuntimeImport string
	// Workers bounds the number of definitions generated concurrently.
	Workers int
	// Logger receives per-definition debug lines and warnings.
	Logger *zap.Logger
}

// DefaultConfig returns the default generator configuration.
func DefaultConfig() Config {
	return Config{
		Language:      LanguageGo,
		OutputDir:     "./generated",
		RuntimeImport: DefaultRuntimeImport,
		Workers:       runtime.GOMAXPROCS(0),
		Logger:        zap.NewNop(),
	}
}
