package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gorewood/mason/internal/casing"
)

// FileResult records the outcome for one manifest entry.
type FileResult struct {
	Path string // resolved path, relative to the output root
	Err  error  // nil on success
}

// Result summarizes one scaffold run.
type Result struct {
	Feature casing.Context
	Variant string
	Root    string
	Files   []FileResult
}

// Written returns the number of files written successfully.
func (r *Result) Written() int {
	n := 0
	for _, f := range r.Files {
		if f.Err == nil {
			n++
		}
	}
	return n
}

// Failed returns true if any file write failed.
func (r *Result) Failed() bool {
	return r.Written() != len(r.Files)
}

// Writer expands a variant's manifest for a feature and writes the files.
type Writer struct {
	lib Library
}

// NewWriter creates a Writer backed by the given template library.
func NewWriter(lib Library) *Writer {
	return &Writer{lib: lib}
}

// Generate scaffolds a feature into outputRoot.
//
// Validation failures (bad name, unknown variant) abort before any file
// I/O. An unwritable output root or a resolved-path collision aborts the
// run. A failure on an individual file does not roll back siblings:
// scaffold output is meant to be inspected, and a re-run overwrites
// rather than duplicates.
func (w *Writer) Generate(name, variant, pkg, outputRoot string) (*Result, error) {
	ctx, err := casing.Derive(name)
	if err != nil {
		return nil, err
	}

	manifest, err := w.lib.Manifest(variant)
	if err != nil {
		return nil, err
	}

	tokens := Tokens(ctx, pkg)

	// Resolve all output paths up front so a manifest defect is caught
	// before anything touches disk.
	resolved := make([]string, len(manifest.Entries))
	seen := make(map[string]string, len(manifest.Entries))
	for i, entry := range manifest.Entries {
		path := filepath.FromSlash(Expand(entry.Output, tokens))
		if prev, ok := seen[path]; ok {
			return nil, fmt.Errorf("manifest %q resolves %q and %q to the same output path %q", variant, prev, entry.Output, path)
		}
		seen[path] = entry.Output
		resolved[i] = path
	}

	if err := os.MkdirAll(outputRoot, 0o750); err != nil {
		return nil, fmt.Errorf("creating output root %s: %w", outputRoot, err)
	}

	result := &Result{Feature: ctx, Variant: variant, Root: outputRoot}
	for i, entry := range manifest.Entries {
		err := w.writeEntry(entry, resolved[i], outputRoot, tokens)
		result.Files = append(result.Files, FileResult{Path: resolved[i], Err: err})
	}
	return result, nil
}

// writeEntry expands one template and writes it under root.
func (w *Writer) writeEntry(entry Entry, relPath, root string, tokens map[string]string) error {
	content, err := w.lib.ReadTemplate(entry.Template)
	if err != nil {
		return fmt.Errorf("reading template %s: %w", entry.Template, err)
	}

	target := filepath.Join(root, relPath)
	if err := os.MkdirAll(filepath.Dir(target), 0o750); err != nil {
		return fmt.Errorf("creating directory for %s: %w", relPath, err)
	}

	return writeFile(target, Expand(content, tokens))
}

// writeFile writes content to path, closing the handle on every exit path.
func writeFile(path, content string) (err error) {
	f, err := os.Create(path) // #nosec G304 -- path is derived from the manifest, not user-controlled beyond the feature name
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, closeErr)
		}
	}()

	if _, err = f.WriteString(content); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
