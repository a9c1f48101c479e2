package stability

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeReport(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeReport(t, dir, "app_release-classes.txt", "stable class Bar {\n}\nunstable class Foo {\n  unstable val items: List<Item>\n}\n")
	writeReport(t, dir, "app_release-composables.txt", "restartable skippable fun Home(\n")
	writeReport(t, dir, "notes.md", "stable class Ignored {\n}\n")

	records, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir() error = %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("LoadDir() returned %d records, want 3 (notes.md must be ignored)", len(records))
	}

	s := Aggregate(records)
	if s.StableClasses != 1 || s.UnstableClasses != 1 || s.Skippable != 1 {
		t.Errorf("summary = %+v, want 1 stable, 1 unstable, 1 skippable", s)
	}
}

func TestLoadDir_NoReports(t *testing.T) {
	dir := t.TempDir()
	writeReport(t, dir, "readme.txt", "nothing here")

	_, err := LoadDir(dir)
	if err == nil {
		t.Fatal("LoadDir() expected error for directory without reports")
	}
	if !strings.Contains(err.Error(), "no stability reports") {
		t.Errorf("LoadDir() error = %v, want clear no-reports message", err)
	}
}

func TestLoadDir_MissingDir(t *testing.T) {
	if _, err := LoadDir(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Fatal("LoadDir() expected error for missing directory")
	}
}
