package mcp

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/gorewood/mason/internal/templates"
)

func loadLibrary(t *testing.T) *templates.Library {
	t.Helper()
	lib, err := templates.Load()
	if err != nil {
		t.Fatalf("templates.Load() error = %v", err)
	}
	return lib
}

func TestHandleTemplates(t *testing.T) {
	handler := handleTemplates(loadLibrary(t))

	_, out, err := handler(context.Background(), nil, TemplatesInput{})
	if err != nil {
		t.Fatalf("templates tool error = %v", err)
	}
	if len(out.Variants) < 2 {
		t.Fatalf("Variants = %d, want at least 2", len(out.Variants))
	}
	for _, v := range out.Variants {
		if v.Name == "" || len(v.Files) == 0 {
			t.Errorf("variant %+v missing name or files", v)
		}
	}
}

func TestHandleScaffold(t *testing.T) {
	t.Chdir(t.TempDir())
	handler := handleScaffold(loadLibrary(t))

	_, out, err := handler(context.Background(), nil, ScaffoldInput{
		Name:    "UserProfile",
		Pattern: "mvi",
		Package: "com.acme.app",
		Output:  "feature",
	})
	if err != nil {
		t.Fatalf("scaffold tool error = %v", err)
	}
	if out.Written != len(out.Files) || out.Written == 0 {
		t.Fatalf("Written = %d of %d files", out.Written, len(out.Files))
	}

	// Spot-check one generated file on disk.
	if _, err := os.Stat(filepath.Join("feature", out.Files[0])); err != nil {
		t.Errorf("generated file missing: %v", err)
	}
}

func TestHandleScaffold_UnknownVariant(t *testing.T) {
	t.Chdir(t.TempDir())
	handler := handleScaffold(loadLibrary(t))

	_, _, err := handler(context.Background(), nil, ScaffoldInput{
		Name:    "UserProfile",
		Pattern: "hexagonal",
	})
	if err == nil {
		t.Fatal("scaffold tool expected error for unknown variant")
	}
}

func TestHandleScan(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	dirty := filepath.Join(dir, "Dirty.kt")
	if err := os.WriteFile(dirty, []byte("Log.d(\"x\")\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	handler := handleScan()
	_, out, err := handler(context.Background(), nil, ScanInput{Paths: []string{dirty}})
	if err != nil {
		t.Fatalf("scan tool error = %v", err)
	}
	if !out.Blocked || len(out.Matches) != 1 {
		t.Errorf("scan output = %+v, want blocked with one match", out)
	}
}

func TestHandleStability(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	reports := filepath.Join(dir, "reports")
	if err := os.MkdirAll(reports, 0o750); err != nil {
		t.Fatal(err)
	}
	content := "unstable class Foo {\n  unstable val items: List<Item>\n}\nstable class Bar {\n}\n"
	if err := os.WriteFile(filepath.Join(reports, "app-classes.txt"), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	handler := handleStability()
	_, out, err := handler(context.Background(), nil, StabilityInput{Module: "app", Dir: reports})
	if err != nil {
		t.Fatalf("stability tool error = %v", err)
	}
	if out.StableClasses != 1 || out.UnstableClasses != 1 {
		t.Errorf("counts = %d/%d, want 1/1", out.StableClasses, out.UnstableClasses)
	}
	if len(out.Issues) != 1 || out.Issues[0].Name != "Foo" {
		t.Errorf("Issues = %+v, want one issue for Foo", out.Issues)
	}
}
