package core

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// isGlobPattern reports whether p needs glob expansion, per the literal
// vs. glob classification: a pattern is a glob iff it contains any of
// * ? [ {.
func isGlobPattern(p string) bool {
	return strings.ContainsAny(p, "*?[{")
}

// LanguageLookup resolves a file extension to a canonical language name,
// the seam core.Resolve uses instead of importing providers directly
// (core never imports providers; providers imports core).
type LanguageLookup func(ext string) (string, bool)

// ResolvedFile is one deduplicated, language-tagged path produced by
// Resolve.
type ResolvedFile struct {
	Path     string
	Language string
}

// resolveError pairs a failed pattern/path with the error it produced,
// for ignore_errors reporting via OnEvent.
type resolveError struct {
	Pattern string
	Err     error
}

// Resolve expands patterns (literal paths, glob patterns, each evaluated
// independently) into a deterministic, deduplicated, language-tagged
// file list. Patterns are resolved in the order given; within a pattern,
// glob matches are sorted by canonical path. The final list is
// deduplicated by canonical (Abs + Clean) path, keeping first occurrence
// order — this is what gives read_ast's emission order its determinism
// (P9, L2).
func Resolve(patterns []string, lookup LanguageLookup, ignoreErrors bool, onEvent func(event string, fields map[string]any)) ([]ResolvedFile, error) {
	if len(patterns) == 0 {
		return nil, fmt.Errorf("%w: no patterns given", ErrInvalidInput)
	}

	seen := make(map[string]bool)
	var out []ResolvedFile
	var softErrors []resolveError

	emit := func(event string, fields map[string]any) {
		if onEvent != nil {
			onEvent(event, fields)
		}
	}

	addPath := func(path string) error {
		canon, err := canonicalPath(path)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrFileNotFound, path, err)
		}
		if seen[canon] {
			return nil
		}
		info, err := os.Stat(canon)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrFileNotFound, path, err)
		}
		if info.IsDir() {
			return nil
		}
		lang, ok := lookup(strings.ToLower(filepath.Ext(canon)))
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownLanguage, canon)
		}
		seen[canon] = true
		out = append(out, ResolvedFile{Path: canon, Language: lang})
		return nil
	}

	for _, pattern := range patterns {
		if pattern == "" {
			continue
		}

		if !isGlobPattern(pattern) {
			if err := addPath(pattern); err != nil {
				if ignoreErrors && perFileError(err) {
					softErrors = append(softErrors, resolveError{Pattern: pattern, Err: err})
					emit("resolve_skip", map[string]any{"pattern": pattern, "error": err.Error()})
					continue
				}
				return nil, err
			}
			continue
		}

		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid glob %q: %v", ErrInvalidInput, pattern, err)
		}

		sort.Strings(matches)
		for _, m := range matches {
			if err := addPath(m); err != nil {
				if ignoreErrors && perFileError(err) {
					softErrors = append(softErrors, resolveError{Pattern: pattern, Err: err})
					emit("resolve_skip", map[string]any{"pattern": pattern, "error": err.Error()})
					continue
				}
				return nil, err
			}
		}
	}

	return out, nil
}

func canonicalPath(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}
	return filepath.Clean(abs), nil
}
