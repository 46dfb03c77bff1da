package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/music-group/flatbuffers/internal/gen"
	"github.com/music-group/flatbuffers/internal/schema"
)

func writeSchema(t *testing.T, doc string) string {
	t.Helper()

	p := filepath.Join(t.TempDir(), "schema.yaml")
	require.NoError(t, os.WriteFile(p, []byte(doc), 0o644))

	return p
}

func TestParseFlags(t *testing.T) {
	opts, err := parseFlags([]string{"-schema", "s.yaml", "-lang", "swift", "-one-file", "-out", "dist", "-package", "fb"})
	require.NoError(t, err)

	assert.Equal(t, "s.yaml", opts.schemaPath)
	assert.Equal(t, "swift", opts.lang)
	assert.True(t, opts.oneFile)
	assert.Equal(t, "dist", opts.outDir)
	assert.Equal(t, "fb", opts.pkg)
	assert.Equal(t, gen.DefaultRuntimeImport, opts.runtime)
}

func TestParseFlags_SchemaRequired(t *testing.T) {
	_, err := parseFlags([]string{"-lang", "go"})
	require.Error(t, err)
}

func TestRun(t *testing.T) {
	out := t.TempDir()
	opts := &options{
		schemaPath: writeSchema(t, "namespace: Game\ntables: [{name: Player, fields: [{name: score, type: int}]}]"),
		lang:       "go",
		outDir:     out,
		runtime:    gen.DefaultRuntimeImport,
		workers:    2,
	}

	require.NoError(t, run(context.Background(), opts, zaptest.NewLogger(t)))

	src, err := os.ReadFile(filepath.Join(out, "Game", "Player.go"))
	require.NoError(t, err)
	assert.Contains(t, string(src), "func PlayerAddScore(builder *flatbuffers.Builder, score int32) {")
}

func TestRun_Errors(t *testing.T) {
	log := zaptest.NewLogger(t)

	err := run(context.Background(), &options{schemaPath: "missing.yaml", lang: "go"}, log)
	require.Error(t, err)

	err = run(context.Background(), &options{schemaPath: "missing.yaml", lang: "cobol"}, log)
	require.Error(t, err)

	unresolved := writeSchema(t, "tables: [{name: T, fields: [{name: a, type: Nope}]}]")
	err = run(context.Background(), &options{schemaPath: unresolved, lang: "go", outDir: t.TempDir()}, log)
	require.ErrorIs(t, err, schema.ErrInvalidSchema)

	integrity := writeSchema(t, "root_type: Missing\ntables: [{name: T, fields: [{name: a, type: int}]}]")
	err = run(context.Background(), &options{schemaPath: integrity, lang: "go", outDir: t.TempDir()}, log)
	require.ErrorIs(t, err, gen.ErrSchemaIntegrity)
}
