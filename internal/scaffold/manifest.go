package scaffold

import "errors"

// ErrUnknownVariant is returned when a pattern variant has no registered
// manifest. The set of variants is closed; callers list the registry
// rather than probing.
var ErrUnknownVariant = errors.New("unknown pattern variant")

// Entry pairs one template with the output path pattern it expands to.
// Both the template content and the output pattern may contain tokens.
type Entry struct {
	Template string `yaml:"template"` // path within the template library
	Output   string `yaml:"output"`   // output path pattern, relative to the output root
}

// Manifest is the ordered set of entries for one architectural variant.
// Resolved output paths must be pairwise distinct for any feature name;
// a collision within one run signals a manifest defect, not a file to
// overwrite.
type Manifest struct {
	Variant     string  `yaml:"variant"`
	Description string  `yaml:"description"`
	Entries     []Entry `yaml:"files"`
}

// Library is the source of variants and template content.
// The shipped implementation is the embedded library in
// internal/templates; tests inject small fakes.
type Library interface {
	// Variants returns the registered variant names, sorted.
	Variants() []string

	// Manifest returns the manifest for a variant, or an error wrapping
	// ErrUnknownVariant.
	Manifest(variant string) (Manifest, error)

	// ReadTemplate returns the raw content of a template by library path.
	ReadTemplate(path string) (string, error)
}
