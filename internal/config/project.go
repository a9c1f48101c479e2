package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ProjectFile is the per-repository configuration file name.
const ProjectFile = ".mason.yml"

// Project holds per-repository defaults. Every field is optional; flags
// and environment variables always win over file values.
type Project struct {
	// Package is the default dotted package path for scaffolding
	// (also settable via MASON_PACKAGE).
	Package string `yaml:"package"`

	// Output is the default scaffold output root (default "feature/").
	Output string `yaml:"output"`

	// ReportsDir is where stability reports land, relative to the module
	// (default "build/compose_reports").
	ReportsDir string `yaml:"reports_dir"`

	// ScanAllow lists extra allow-list path substrings for the scan gate.
	ScanAllow []string `yaml:"scan_allow"`
}

// Defaults used when neither the project file nor the environment
// provides a value.
const (
	DefaultOutput     = "feature/"
	DefaultReportsDir = "build/compose_reports"
)

// LoadProject reads .mason.yml from dir. A missing file is not an error:
// it returns a zero Project so the caller falls back to defaults.
func LoadProject(dir string) (Project, error) {
	path := filepath.Join(dir, ProjectFile)
	data, err := os.ReadFile(path) // #nosec G304 -- fixed file name under the caller's directory
	if err != nil {
		if os.IsNotExist(err) {
			return Project{}, nil
		}
		return Project{}, fmt.Errorf("reading %s: %w", path, err)
	}

	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Project{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return p, nil
}

// ResolvePackage picks the scaffold package: flag value, then
// MASON_PACKAGE, then the project file.
func (p Project) ResolvePackage(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("MASON_PACKAGE"); env != "" {
		return env
	}
	return p.Package
}

// ResolveOutput picks the scaffold output root.
func (p Project) ResolveOutput(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if p.Output != "" {
		return p.Output
	}
	return DefaultOutput
}

// ResolveReportsDir picks the stability reports directory for a module.
func (p Project) ResolveReportsDir(module, flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	base := p.ReportsDir
	if base == "" {
		base = DefaultReportsDir
	}
	return filepath.Join(module, base)
}
