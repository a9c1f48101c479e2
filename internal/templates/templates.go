// Package templates ships the fixed scaffold template library.
// The library is embedded at build time: one directory per variant, each
// holding a manifest.yml and the template files it references. Nothing
// here is generated or mutated at runtime.
package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gorewood/mason/internal/scaffold"
)

//go:embed library
var libraryFS embed.FS

// Library is the embedded template library. It satisfies scaffold.Library.
type Library struct {
	manifests map[string]scaffold.Manifest
}

// Load parses every variant manifest in the embedded library.
// A malformed manifest is a packaging defect and fails loading outright.
func Load() (*Library, error) {
	entries, err := libraryFS.ReadDir("library")
	if err != nil {
		return nil, fmt.Errorf("reading embedded template library: %w", err)
	}

	lib := &Library{manifests: make(map[string]scaffold.Manifest)}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		manifest, err := loadManifest(entry.Name())
		if err != nil {
			return nil, err
		}
		lib.manifests[manifest.Variant] = manifest
	}

	if len(lib.manifests) == 0 {
		return nil, fmt.Errorf("embedded template library contains no variants")
	}
	return lib, nil
}

// loadManifest reads and validates one variant's manifest.yml.
func loadManifest(dir string) (scaffold.Manifest, error) {
	path := "library/" + dir + "/manifest.yml"
	data, err := libraryFS.ReadFile(path)
	if err != nil {
		return scaffold.Manifest{}, fmt.Errorf("variant %q has no manifest.yml: %w", dir, err)
	}

	var manifest scaffold.Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return scaffold.Manifest{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	if manifest.Variant != dir {
		return scaffold.Manifest{}, fmt.Errorf("%s declares variant %q, directory is %q", path, manifest.Variant, dir)
	}
	if len(manifest.Entries) == 0 {
		return scaffold.Manifest{}, fmt.Errorf("%s lists no files", path)
	}
	for _, e := range manifest.Entries {
		if e.Template == "" || e.Output == "" {
			return scaffold.Manifest{}, fmt.Errorf("%s has an entry missing template or output", path)
		}
		if _, err := fs.Stat(libraryFS, "library/"+e.Template); err != nil {
			return scaffold.Manifest{}, fmt.Errorf("%s references missing template %s", path, e.Template)
		}
	}
	return manifest, nil
}

// Variants returns the registered variant names, sorted.
func (l *Library) Variants() []string {
	names := make([]string, 0, len(l.manifests))
	for name := range l.manifests {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Manifest returns the manifest for a variant.
func (l *Library) Manifest(variant string) (scaffold.Manifest, error) {
	m, ok := l.manifests[variant]
	if !ok {
		return scaffold.Manifest{}, fmt.Errorf("%w: %q (registered: %s)",
			scaffold.ErrUnknownVariant, variant, strings.Join(l.Variants(), ", "))
	}
	return m, nil
}

// ReadTemplate returns the raw content of a template by library path.
func (l *Library) ReadTemplate(path string) (string, error) {
	data, err := libraryFS.ReadFile("library/" + path)
	if err != nil {
		return "", fmt.Errorf("reading template %s: %w", path, err)
	}
	return string(data), nil
}
