package plugin

import (
	"os"
	"path/filepath"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/wpmvc/helpers/internal/utils"
)

const (
	// DefaultRoot is the plugins root directory used by the default registry.
	DefaultRoot = "plugins"

	// DefaultExtension is the main-file extension appended to a plugin's slug.
	DefaultExtension = ".go"

	// headersCacheSize defines the maximum number of parsed header blocks to cache.
	// A single installation rarely carries more than a few dozen plugins.
	headersCacheSize = 128
)

// Registry resolves plugin main files below a plugins root directory
// and caches their parsed header blocks.
// Configuration is expected to happen once at startup, before concurrent reads.
type Registry struct {
	// root is the plugins root directory.
	root string
	// extension is the main-file extension appended to a plugin's slug.
	extension string
	// cache holds parsed header blocks indexed by slug.
	cache *lru.Cache[string, *Headers]
}

//nolint:gochecknoglobals // The package keeps a default registry so callers can read headers without wiring one.
var defaultRegistry *Registry

//nolint:gochecknoinits // The default registry must be usable before any explicit configuration happens.
func init() {
	registry, err := NewRegistry(DefaultRoot, DefaultExtension)
	if err != nil {
		panic(err)
	}

	defaultRegistry = registry
}

// NewRegistry creates a registry rooted at the given plugins directory.
// An empty extension falls back to DefaultExtension.
func NewRegistry(root, extension string) (*Registry, error) {
	if extension == "" {
		extension = DefaultExtension
	}

	cache, err := lru.New[string, *Headers](headersCacheSize)
	if err != nil {
		return nil, err
	}

	return &Registry{
		root:      root,
		extension: extension,
		cache:     cache,
	}, nil
}

// SetRoot points the registry at a different plugins root directory
// and drops all cached header blocks.
func (r *Registry) SetRoot(root string) {
	r.root = root
	r.cache.Purge()
}

// SetExtension changes the main-file extension
// and drops all cached header blocks.
func (r *Registry) SetExtension(extension string) {
	if extension == "" {
		extension = DefaultExtension
	}

	r.extension = extension
	r.cache.Purge()
}

// MainFilePath returns the expected path of the plugin's main file,
// which is <root>/<slug>/<slug><extension>.
func (r *Registry) MainFilePath(slug string) string {
	return filepath.Join(r.root, slug, slug+r.extension)
}

// Headers reads and parses the plugin's main-file header comment.
// A missing or unreadable main file yields nil without an error.
// Parsed blocks are cached per slug; missing files are not cached,
// so a plugin installed later is picked up on the next call.
func (r *Registry) Headers(slug string) *Headers {
	if slug == "" {
		return nil
	}

	if cached, ok := r.cache.Get(slug); ok {
		return cached
	}

	mainFile := r.MainFilePath(slug)

	exists, err := utils.IsFileExist(mainFile)
	if err != nil || !exists {
		return nil
	}

	content, err := os.ReadFile(filepath.Clean(mainFile))
	if err != nil {
		return nil
	}

	headers := parseHeaders(string(content))
	r.cache.Add(slug, headers)

	return headers
}

// Version returns the plugin's declared version,
// or "" when the main file or its version header line is absent.
func (r *Registry) Version(slug string) string {
	headers := r.Headers(slug)
	if headers == nil {
		return ""
	}

	return headers.Version
}

// Invalidate drops the cached header block for a single slug.
func (r *Registry) Invalidate(slug string) {
	r.cache.Remove(slug)
}

// Reset drops all cached header blocks.
func (r *Registry) Reset() {
	r.cache.Purge()
}

// SetRoot points the default registry at a different plugins root directory.
func SetRoot(root string) {
	defaultRegistry.SetRoot(root)
}

// SetExtension changes the main-file extension used by the default registry.
func SetExtension(extension string) {
	defaultRegistry.SetExtension(extension)
}

// Version returns a plugin's declared version through the default registry.
func Version(slug string) string {
	return defaultRegistry.Version(slug)
}

// GetHeaders returns a plugin's parsed header block through the default registry.
func GetHeaders(slug string) *Headers {
	return defaultRegistry.Headers(slug)
}
