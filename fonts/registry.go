package fonts

import (
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultFontName is the guaranteed fallback font
const DefaultFontName = "Standard"

// Registry owns the name -> Font mapping. Bundled fonts load first and win
// name collisions with user fonts. The registry is only mutated during
// startup loading; afterwards it is read-only and freely shareable.
type Registry struct {
	fonts map[string]*Font
}

// NewRegistry loads the bundled fonts. A bundled font that fails to parse is
// logged and skipped, except Standard: without it GetOrDefault has no
// fallback target, so its absence panics.
func NewRegistry() *Registry {
	r := &Registry{fonts: make(map[string]*Font, len(bundledFonts))}

	for _, bf := range bundledFonts {
		content, err := bundledFS.ReadFile(bf.path)
		if err != nil {
			log.Printf("warning: failed to read bundled font %q: %v", bf.name, err)
			continue
		}
		font, err := Parse(bf.name, string(content))
		if err != nil {
			log.Printf("warning: failed to parse bundled font %q: %v", bf.name, err)
			continue
		}
		r.fonts[bf.name] = font
	}

	if _, ok := r.fonts[DefaultFontName]; !ok {
		panic("fonts: bundled Standard font failed to load")
	}

	return r
}

// LoadUserFonts merges .flf/.tlf files from dir into the registry. A missing
// directory is a no-op; unreadable or unparsable files are logged and
// skipped; names already present (bundled fonts) are left untouched.
func (r *Registry) LoadUserFonts(dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("warning: failed to read fonts directory %q: %v", dir, err)
		}
		return
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".flf" && ext != ".tlf" {
			continue
		}

		name := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		if _, exists := r.fonts[name]; exists {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		content, err := os.ReadFile(path)
		if err != nil {
			log.Printf("warning: failed to read font %q: %v", path, err)
			continue
		}
		font, err := Parse(name, string(content))
		if err != nil {
			log.Printf("warning: failed to parse font %q: %v", path, err)
			continue
		}
		r.fonts[name] = font
	}
}

// Get returns the named font if present
func (r *Registry) Get(name string) (*Font, bool) {
	f, ok := r.fonts[name]
	return f, ok
}

// GetOrDefault returns the named font, falling back to Standard. Standard is
// always loaded, so the lookup cannot fail.
func (r *Registry) GetOrDefault(name string) *Font {
	if f, ok := r.fonts[name]; ok {
		return f
	}
	f, ok := r.fonts[DefaultFontName]
	if !ok {
		panic("fonts: Standard font missing from registry")
	}
	return f
}

// Has reports whether a font with this name is loaded
func (r *Registry) Has(name string) bool {
	_, ok := r.fonts[name]
	return ok
}

// Names returns all loaded font names, sorted
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.fonts))
	for name := range r.fonts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of loaded fonts
func (r *Registry) Len() int {
	return len(r.fonts)
}
