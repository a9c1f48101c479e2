package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorewood/mason/internal/casing"
)

// fakeLibrary is an in-memory Library for writer tests.
type fakeLibrary struct {
	manifests map[string]Manifest
	templates map[string]string
}

func (l *fakeLibrary) Variants() []string {
	var names []string
	for name := range l.manifests {
		names = append(names, name)
	}
	return names
}

func (l *fakeLibrary) Manifest(variant string) (Manifest, error) {
	m, ok := l.manifests[variant]
	if !ok {
		return Manifest{}, fmt.Errorf("%w: %q", ErrUnknownVariant, variant)
	}
	return m, nil
}

func (l *fakeLibrary) ReadTemplate(path string) (string, error) {
	content, ok := l.templates[path]
	if !ok {
		return "", fmt.Errorf("template %s not found", path)
	}
	return content, nil
}

func testLibrary() *fakeLibrary {
	return &fakeLibrary{
		manifests: map[string]Manifest{
			"mvi": {
				Variant: "mvi",
				Entries: []Entry{
					{Template: "mvi/contract.kt.tmpl", Output: "{{FEATURE_LOWER}}/{{FEATURE_NAME}}Contract.kt"},
					{Template: "mvi/viewmodel.kt.tmpl", Output: "{{FEATURE_LOWER}}/{{FEATURE_NAME}}ViewModel.kt"},
				},
			},
			"colliding": {
				Variant: "colliding",
				Entries: []Entry{
					{Template: "mvi/contract.kt.tmpl", Output: "{{FEATURE_LOWER}}/same.kt"},
					{Template: "mvi/viewmodel.kt.tmpl", Output: "{{FEATURE_LOWER}}/same.kt"},
				},
			},
		},
		templates: map[string]string{
			"mvi/contract.kt.tmpl":  "package {{PACKAGE}}.{{FEATURE_LOWER}}\n\ninterface {{FEATURE_NAME}}Contract\n",
			"mvi/viewmodel.kt.tmpl": "package {{PACKAGE}}.{{FEATURE_LOWER}}\n\nclass {{FEATURE_NAME}}ViewModel\n",
		},
	}
}

func TestWriter_Generate(t *testing.T) {
	root := t.TempDir()
	w := NewWriter(testLibrary())

	result, err := w.Generate("UserProfile", "mvi", "com.acme.app", root)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if result.Failed() {
		t.Fatalf("Generate() reported failures: %+v", result.Files)
	}
	if result.Written() != 2 {
		t.Errorf("Written() = %d, want 2", result.Written())
	}

	contract := filepath.Join(root, "userprofile", "UserProfileContract.kt")
	data, err := os.ReadFile(contract)
	if err != nil {
		t.Fatalf("reading generated file: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "package com.acme.app.userprofile") {
		t.Errorf("generated file missing package line: %q", content)
	}
	if !strings.Contains(content, "interface UserProfileContract") {
		t.Errorf("generated file missing substituted name: %q", content)
	}
	if strings.Contains(content, "{{") {
		t.Errorf("generated file still contains markers: %q", content)
	}
}

func TestWriter_Generate_UnknownVariant(t *testing.T) {
	w := NewWriter(testLibrary())

	_, err := w.Generate("UserProfile", "hexagonal", "com.acme.app", t.TempDir())
	if !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("Generate() error = %v, want ErrUnknownVariant", err)
	}
}

func TestWriter_Generate_InvalidName(t *testing.T) {
	w := NewWriter(testLibrary())

	if _, err := w.Generate("", "mvi", "com.acme.app", t.TempDir()); !errors.Is(err, casing.ErrInvalidName) {
		t.Errorf("Generate() with empty name error = %v, want ErrInvalidName", err)
	}
	if _, err := w.Generate("User Profile", "mvi", "com.acme.app", t.TempDir()); !errors.Is(err, casing.ErrInvalidName) {
		t.Errorf("Generate() with invalid name error = %v, want ErrInvalidName", err)
	}
}

// An output root that cannot be created fails the whole run before any
// per-file results exist. The root sits under a regular file so MkdirAll
// fails regardless of the invoking user's permissions.
func TestWriter_Generate_UnwritableRoot(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	w := NewWriter(testLibrary())
	result, err := w.Generate("UserProfile", "mvi", "com.acme.app", filepath.Join(blocker, "out"))
	if err == nil {
		t.Fatal("Generate() with unwritable root expected error")
	}
	if result != nil {
		t.Errorf("Generate() result = %+v, want nil on root failure", result)
	}
	if !strings.Contains(err.Error(), "creating output root") {
		t.Errorf("Generate() error = %v, want output root failure", err)
	}
}

func TestWriter_Generate_PathCollision(t *testing.T) {
	root := t.TempDir()
	w := NewWriter(testLibrary())

	_, err := w.Generate("UserProfile", "colliding", "com.acme.app", root)
	if err == nil {
		t.Fatal("Generate() with colliding manifest expected error")
	}
	if !strings.Contains(err.Error(), "same output path") {
		t.Errorf("Generate() error = %v, want output path collision", err)
	}

	// Nothing may be written when the manifest is defective.
	entries, readErr := os.ReadDir(root)
	if readErr != nil {
		t.Fatalf("reading output root: %v", readErr)
	}
	if len(entries) != 0 {
		t.Errorf("output root not empty after collision abort: %d entries", len(entries))
	}
}

// Running the same scaffold twice must produce an identical file set;
// re-runs overwrite rather than duplicate.
func TestWriter_Generate_Idempotent(t *testing.T) {
	root := t.TempDir()
	w := NewWriter(testLibrary())

	first, err := w.Generate("UserProfile", "mvi", "com.acme.app", root)
	if err != nil {
		t.Fatalf("first Generate() error = %v", err)
	}
	firstSet := listFiles(t, root)

	second, err := w.Generate("UserProfile", "mvi", "com.acme.app", root)
	if err != nil {
		t.Fatalf("second Generate() error = %v", err)
	}
	secondSet := listFiles(t, root)

	if first.Written() != second.Written() {
		t.Errorf("written counts differ: %d != %d", first.Written(), second.Written())
	}
	if len(firstSet) != len(secondSet) {
		t.Errorf("file sets differ: %v != %v", firstSet, secondSet)
	}
	for i := range firstSet {
		if firstSet[i] != secondSet[i] {
			t.Errorf("file sets differ at %d: %q != %q", i, firstSet[i], secondSet[i])
		}
	}
}

func listFiles(t *testing.T, root string) []string {
	t.Helper()
	var files []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walking %s: %v", root, err)
	}
	return files
}
