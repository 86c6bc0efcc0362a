package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func goExtLookup(ext string) (string, bool) {
	switch ext {
	case ".go":
		return "go", true
	case ".js":
		return "javascript", true
	default:
		return "", false
	}
}

func TestResolveRejectsEmptyPatternList(t *testing.T) {
	_, err := Resolve(nil, goExtLookup, false, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestResolveLiteralPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.go")
	require.NoError(t, os.WriteFile(path, []byte("package main"), 0o644))

	files, err := Resolve([]string{path}, goExtLookup, false, nil)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "go", files[0].Language)
}

func TestResolveUnknownExtensionIsFatalByDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.rb")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	_, err := Resolve([]string{path}, goExtLookup, false, nil)
	assert.ErrorIs(t, err, ErrUnknownLanguage)
}

func TestResolveIgnoreErrorsSkipsUnknownExtension(t *testing.T) {
	dir := t.TempDir()
	known := filepath.Join(dir, "a.go")
	unknown := filepath.Join(dir, "a.rb")
	require.NoError(t, os.WriteFile(known, []byte("package main"), 0o644))
	require.NoError(t, os.WriteFile(unknown, []byte("x"), 0o644))

	var events []string
	onEvent := func(event string, fields map[string]any) { events = append(events, event) }

	files, err := Resolve([]string{known, unknown}, goExtLookup, true, onEvent)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, known, files[0].Path)
	assert.Contains(t, events, "resolve_skip")
}

func TestResolveDeduplicatesByCanonicalPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.go")
	require.NoError(t, os.WriteFile(path, []byte("package main"), 0o644))

	rel := filepath.Join(dir, ".", "a.go")
	files, err := Resolve([]string{path, rel}, goExtLookup, false, nil)
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestResolveGlobPatternSortedDeterministic(t *testing.T) {
	dir := t.TempDir()
	b := filepath.Join(dir, "b.go")
	a := filepath.Join(dir, "a.go")
	require.NoError(t, os.WriteFile(b, []byte("package main"), 0o644))
	require.NoError(t, os.WriteFile(a, []byte("package main"), 0o644))

	files, err := Resolve([]string{filepath.Join(dir, "*.go")}, goExtLookup, false, nil)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, a, files[0].Path)
	assert.Equal(t, b, files[1].Path)
}

func TestResolveDirectoriesAreSkipped(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0o755))

	files, err := Resolve([]string{sub}, goExtLookup, false, nil)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestResolveMultiplePatternsPreserveOrder(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.go")
	b := filepath.Join(dir, "b.js")
	require.NoError(t, os.WriteFile(a, []byte("package main"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("x"), 0o644))

	files, err := Resolve([]string{b, a}, goExtLookup, false, nil)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, b, files[0].Path)
	assert.Equal(t, a, files[1].Path)
}
