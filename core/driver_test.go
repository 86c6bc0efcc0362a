package core

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/termfx/morfx/providers/golang"
	"github.com/termfx/morfx/providers/javascript"
)

// fakeResolver implements AdapterResolver over a small, fixed set of
// adapters, so driver tests don't need the full providers.Registry.
type fakeResolver struct {
	byName map[string]Adapter
	byExt  map[string]Adapter
}

func newFakeResolver() fakeResolver {
	goAdapter := golang.New()
	jsAdapter := javascript.New()
	return fakeResolver{
		byName: map[string]Adapter{"go": goAdapter, "javascript": jsAdapter},
		byExt:  map[string]Adapter{".go": goAdapter, ".js": jsAdapter},
	}
}

func (f fakeResolver) Get(name string) (Adapter, error) {
	a, ok := f.byName[name]
	if !ok {
		return nil, ErrUnknownLanguage
	}
	return a, nil
}

func (f fakeResolver) GetByExtension(ext string) (Adapter, error) {
	a, ok := f.byExt[ext]
	if !ok {
		return nil, ErrUnknownLanguage
	}
	return a, nil
}

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func drainAll(t *testing.T, b *RowBatcher) []Row {
	t.Helper()
	var rows []Row
	for {
		batch, ok, err := b.Next()
		require.NoError(t, err)
		if !ok {
			return rows
		}
		rows = append(rows, batch.Rows...)
	}
}

func TestParseASTReturnsRowsForSource(t *testing.T) {
	batcher, err := ParseAST(context.Background(), []byte(goFixture), "go", "main.go", newFakeResolver(), Options{})
	require.NoError(t, err)
	rows := drainAll(t, batcher)
	assert.NotEmpty(t, rows)
	assert.Equal(t, "main.go", rows[0].FilePath)
	assert.Equal(t, "go", rows[0].Language)
}

func TestParseASTRejectsEmptySource(t *testing.T) {
	_, err := ParseAST(context.Background(), nil, "go", "main.go", newFakeResolver(), Options{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestParseASTUnknownLanguage(t *testing.T) {
	_, err := ParseAST(context.Background(), []byte("x"), "cobol", "x.cbl", newFakeResolver(), Options{})
	assert.ErrorIs(t, err, ErrUnknownLanguage)
}

func TestReadASTStreamsMultipleFilesInOrder(t *testing.T) {
	dir := t.TempDir()
	a := writeFixture(t, dir, "a.go", goFixture)
	b := writeFixture(t, dir, "b.js", "function greet() { return 1 }\n")

	batcher, err := ReadAST(context.Background(), []string{a, b}, newFakeResolver(), Options{})
	require.NoError(t, err)
	rows := drainAll(t, batcher)
	require.NotEmpty(t, rows)

	assert.Equal(t, a, rows[0].FilePath)
	sawB := false
	for _, r := range rows {
		if r.FilePath == b {
			sawB = true
		}
	}
	assert.True(t, sawB)
}

func TestReadASTIgnoreErrorsSkipsMissingFile(t *testing.T) {
	dir := t.TempDir()
	a := writeFixture(t, dir, "a.go", goFixture)
	missing := filepath.Join(dir, "missing.go")

	batcher, err := ReadAST(context.Background(), []string{a, missing}, newFakeResolver(), Options{IgnoreErrors: true})
	require.NoError(t, err)
	rows := drainAll(t, batcher)
	assert.NotEmpty(t, rows)
	for _, r := range rows {
		assert.Equal(t, a, r.FilePath)
	}
}

func TestReadASTAbortsOnMissingFileWithoutIgnoreErrors(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.go")
	_, err := ReadAST(context.Background(), []string{missing}, newFakeResolver(), Options{})
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestRowBatcherRespectsBatchSize(t *testing.T) {
	batcher, err := ParseAST(context.Background(), []byte(goFixture), "go", "main.go", newFakeResolver(), Options{BatchSize: 1})
	require.NoError(t, err)

	batch, ok, err := batcher.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Len(t, batch.Rows, 1)
}

func TestProjectOmitsFieldsNotRequested(t *testing.T) {
	batcher, err := ParseAST(context.Background(), []byte(goFixture), "go", "main.go", newFakeResolver(), Options{
		Structure: StructureNone,
		Source:    SourceNone,
		Context:   ContextNone,
	})
	require.NoError(t, err)
	rows := drainAll(t, batcher)
	require.NotEmpty(t, rows)
	assert.Nil(t, rows[0].ParentID)
	assert.Nil(t, rows[0].StartColumn)
	assert.Nil(t, rows[0].SignatureType)
	assert.Nil(t, rows[0].Name)
	assert.Equal(t, byte(0), rows[0].SemanticType)
}

func TestProjectUsesRichDefaultsWhenOptionsIsZeroValue(t *testing.T) {
	batcher, err := ParseAST(context.Background(), []byte(goFixture), "go", "main.go", newFakeResolver(), Options{})
	require.NoError(t, err)
	rows := drainAll(t, batcher)
	require.NotEmpty(t, rows)

	var found bool
	for _, r := range rows {
		if r.Type == "function_declaration" && r.Name != nil && *r.Name == "add" {
			found = true
			require.NotNil(t, r.ParentID)
			require.NotNil(t, r.DescendantCount)
			require.NotNil(t, r.SignatureType)
			assert.Equal(t, "function", *r.SignatureType)
		}
	}
	assert.True(t, found)
}

func TestProjectIncludesStructureAndContextWhenRequested(t *testing.T) {
	batcher, err := ParseAST(context.Background(), []byte(goFixture), "go", "main.go", newFakeResolver(), Options{
		Structure: StructureFull,
		Source:    SourceFull,
		Context:   ContextNative,
	})
	require.NoError(t, err)
	rows := drainAll(t, batcher)

	var found bool
	for _, r := range rows {
		if r.Type == "function_declaration" && r.Name != nil && *r.Name == "add" {
			found = true
			require.NotNil(t, r.ParentID)
			require.NotNil(t, r.DescendantCount)
			require.NotNil(t, r.SignatureType)
			assert.Equal(t, "function", *r.SignatureType)
			require.Len(t, r.Parameters, 2)
		}
	}
	assert.True(t, found)
}

func TestASTSupportedLanguagesDescriptorShape(t *testing.T) {
	d := LanguageDescriptor{Language: "go", Aliases: []string{"golang"}, Extensions: []string{".go"}}
	assert.Equal(t, "go", d.Language)
	assert.Contains(t, d.Aliases, "golang")
	assert.Contains(t, d.Extensions, ".go")
}
