// Package providers defines the Language Adapter contract and the
// process-wide registry that maps a language name, alias, or file
// extension to a lazily-instantiated adapter instance.
package providers

import (
	"context"
	"fmt"
	"sort"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/termfx/morfx/core"
	"github.com/termfx/morfx/providers/catalog"
)

// Adapter is the contract every language implementation satisfies. It is
// a superset of core.Adapter (which the flattener depends on without
// importing this package) plus the metadata the registry and
// ast_supported_languages() need.
type Adapter interface {
	// Language is the canonical, lowercase language identifier (e.g. "go").
	Language() string
	// Aliases lists additional names the registry resolves to this
	// adapter (e.g. "golang", "c++" / "cpp").
	Aliases() []string
	// Extensions lists the file extensions (with leading dot) this
	// adapter claims for language auto-detection.
	Extensions() []string
	// SitterLanguage returns the compiled tree-sitter grammar.
	SitterLanguage() *sitter.Language

	// NodeConfigFor looks up the NodeConfig for a grammar node type name.
	// ok is false for node types the adapter has no mapping for, which
	// the flattener treats as an untyped/structural node (SyntaxUnknown
	// semantic type, no name, no native context).
	NodeConfigFor(nodeType string) (core.NodeConfig, bool)

	// ExtractName and ExtractNative dispatch through the adapter's
	// strategy tables; see core.NameExtractorTable / core.NativeExtractorTable.
	ExtractName(node *sitter.Node, source []byte, strategy core.NameStrategy) string
	ExtractNative(node *sitter.Node, source []byte, strategy core.NativeStrategy) core.NativeContext

	// IsPublic applies the language's visibility convention to an
	// already-extracted name (and, where the convention needs it, the
	// declaring node itself — e.g. an explicit `public`/`private` modifier).
	IsPublic(node *sitter.Node, source []byte, name string) bool

	// Parse creates a fresh parser and parses source. Callers own the
	// returned tree and must Close it.
	Parse(ctx context.Context, source []byte) (*sitter.Tree, error)
}

// Factory lazily builds an Adapter instance. Registered factories are
// invoked at most once per process; the result is cached forever, since
// adapters are stateless aside from their compiled grammar.
type Factory func() Adapter

// Registry is the process-wide, thread-safe map from language name/alias
// to adapter factory, plus the instantiation cache.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
	instances map[string]Adapter
	byExt     map[string]string // extension -> canonical language name
}

// NewRegistry builds an empty registry. Call RegisterDefaults (or
// Register per-adapter) to populate it.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
		instances: make(map[string]Adapter),
		byExt:     make(map[string]string),
	}
}

// Register adds a factory under the adapter's canonical name and all of
// its aliases/extensions, without instantiating it. The factory runs on
// first Get/Lookup call.
func (r *Registry) Register(name string, aliases, extensions []string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.factories[name] = factory
	for _, a := range aliases {
		r.factories[a] = factory
	}
	for _, ext := range extensions {
		r.byExt[ext] = name
	}

	catalog.Register(catalog.LanguageInfo{
		ID:         name,
		Aliases:    aliases,
		Extensions: extensions,
	})
}

// Get resolves a language name or alias to an instantiated Adapter,
// building and caching it on first use.
func (r *Registry) Get(nameOrAlias string) (Adapter, error) {
	r.mu.RLock()
	if inst, ok := r.instances[nameOrAlias]; ok {
		r.mu.RUnlock()
		return inst, nil
	}
	factory, ok := r.factories[nameOrAlias]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", core.ErrUnknownLanguage, nameOrAlias)
	}

	adapter := factory()
	if adapter == nil || adapter.SitterLanguage() == nil {
		return nil, fmt.Errorf("%w: %q produced no grammar", core.ErrAdapterInit, nameOrAlias)
	}

	r.mu.Lock()
	// Cache under every name this adapter answers to, so a later lookup
	// by a different alias of the same adapter also hits the cache.
	r.instances[adapter.Language()] = adapter
	for _, a := range adapter.Aliases() {
		r.instances[a] = adapter
	}
	r.instances[nameOrAlias] = adapter
	r.mu.Unlock()

	return adapter, nil
}

// GetByExtension resolves a file extension (with leading dot) to an
// adapter via the registered extension map.
func (r *Registry) GetByExtension(ext string) (Adapter, error) {
	r.mu.RLock()
	name, ok := r.byExt[ext]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: no adapter for extension %q", core.ErrUnknownLanguage, ext)
	}
	return r.Get(name)
}

// Descriptors returns one core.LanguageDescriptor per registered
// canonical language, sorted by name, for ast_supported_languages().
func (r *Registry) Descriptors() []core.LanguageDescriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool)
	out := make([]core.LanguageDescriptor, 0, len(r.factories))
	for _, info := range catalog.Languages() {
		if seen[info.ID] {
			continue
		}
		seen[info.ID] = true
		out = append(out, core.LanguageDescriptor{
			Language:   info.ID,
			Aliases:    info.Aliases,
			Extensions: info.Extensions,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Language < out[j].Language })
	return out
}

// Default is the process-wide registry populated by RegisterDefaults.
var Default = NewRegistry()

// ASTSupportedLanguages returns one descriptor per language the default
// registry carries, for the catalog-facing table function.
func ASTSupportedLanguages() []core.LanguageDescriptor {
	return Default.Descriptors()
}

// CoreResolver adapts a Registry to core.AdapterResolver, the narrower
// seam core.ReadAST/core.ParseAST depend on so the core package never
// imports providers directly.
type CoreResolver struct{ Reg *Registry }

func (c CoreResolver) Get(nameOrAlias string) (core.Adapter, error) { return c.Reg.Get(nameOrAlias) }

func (c CoreResolver) GetByExtension(ext string) (core.Adapter, error) {
	return c.Reg.GetByExtension(ext)
}
