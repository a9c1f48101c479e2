package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorewood/mason/internal/output"
)

// execute runs the root command with args and returns stdout and the error.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestScaffoldCommand_GeneratesFeature(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := execute(t, "scaffold", "UserProfile",
		"--package", "com.acme.app", "--output", "feature", "--json")
	if err != nil {
		t.Fatalf("scaffold error = %v\noutput: %s", err, out)
	}

	var result struct {
		Feature string `json:"feature"`
		Variant string `json:"variant"`
		Root    string `json:"root"`
		Written int    `json:"written"`
		Failed  int    `json:"failed"`
		Files   []struct {
			Path    string `json:"path"`
			Written bool   `json:"written"`
		} `json:"files"`
	}
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("output should be valid JSON: %v\noutput: %s", err, out)
	}

	if result.Feature != "UserProfile" || result.Variant != "mvi" {
		t.Errorf("feature/variant = %s/%s, want UserProfile/mvi", result.Feature, result.Variant)
	}
	if result.Failed != 0 || result.Written != len(result.Files) || result.Written == 0 {
		t.Fatalf("written/failed = %d/%d over %d files", result.Written, result.Failed, len(result.Files))
	}

	// Every generated file must have tokens expanded and live under the
	// lowercase feature directory.
	for _, f := range result.Files {
		if !strings.HasPrefix(f.Path, "userprofile/") {
			t.Errorf("path %s should be under userprofile/", f.Path)
		}
		content, readErr := os.ReadFile(filepath.Join("feature", f.Path))
		if readErr != nil {
			t.Fatalf("reading %s: %v", f.Path, readErr)
		}
		text := string(content)
		if strings.Contains(text, "{{") {
			t.Errorf("%s still contains unexpanded tokens", f.Path)
		}
		if !strings.Contains(text, "com.acme.app") {
			t.Errorf("%s missing the package declaration", f.Path)
		}
	}
}

func TestScaffoldCommand_MVVMVariant(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := execute(t, "scaffold", "Checkout",
		"--pattern", "mvvm", "--package", "com.acme.shop", "--json")
	if err != nil {
		t.Fatalf("scaffold error = %v\noutput: %s", err, out)
	}

	var result struct {
		Variant string `json:"variant"`
		Written int    `json:"written"`
	}
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("output should be valid JSON: %v", err)
	}
	if result.Variant != "mvvm" || result.Written == 0 {
		t.Errorf("variant/written = %s/%d", result.Variant, result.Written)
	}
}

func TestScaffoldCommand_ConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	config := "package: com.acme.configured\noutput: generated\n"
	if err := os.WriteFile(".mason.yml", []byte(config), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "scaffold", "Search", "--json")
	if err != nil {
		t.Fatalf("scaffold error = %v\noutput: %s", err, out)
	}

	// Output root must come from the config file
	if _, err := os.Stat(filepath.Join("generated", "search")); err != nil {
		t.Errorf("expected generated/search from config defaults: %v", err)
	}
}

func TestScaffoldCommand_UnknownVariant(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := execute(t, "scaffold", "UserProfile", "--pattern", "hexagonal", "--json")
	if err == nil {
		t.Fatal("expected error for unknown variant")
	}
	if code := output.GetExitCode(err); code != output.ExitUserError {
		t.Errorf("exit code = %d, want %d", code, output.ExitUserError)
	}
}

func TestScaffoldCommand_UnwritableOutput(t *testing.T) {
	t.Chdir(t.TempDir())
	// A regular file where the output root's parent should be makes the
	// root uncreatable for any user.
	if err := os.WriteFile("blocker", []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := execute(t, "scaffold", "UserProfile", "--package", "com.acme.app",
		"--output", filepath.Join("blocker", "out"), "--json")
	if err == nil {
		t.Fatal("expected error for unwritable output root")
	}
	if code := output.GetExitCode(err); code != output.ExitSystemError {
		t.Errorf("exit code = %d, want %d", code, output.ExitSystemError)
	}
}

func TestScaffoldCommand_InvalidName(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := execute(t, "scaffold", "user profile", "--json")
	if err == nil {
		t.Fatal("expected error for invalid feature name")
	}
	if code := output.GetExitCode(err); code != output.ExitUserError {
		t.Errorf("exit code = %d, want %d", code, output.ExitUserError)
	}
}
