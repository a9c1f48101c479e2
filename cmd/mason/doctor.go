// Package main provides the entry point for the mason CLI.
package main

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gorewood/mason/internal/config"
	"github.com/gorewood/mason/internal/git"
	"github.com/gorewood/mason/internal/output"
	"github.com/gorewood/mason/internal/setup"
	"github.com/gorewood/mason/internal/templates"
)

// checkStatus represents the result of a health check.
type checkStatus string

const (
	checkPass checkStatus = "pass"
	checkWarn checkStatus = "warn"
	checkFail checkStatus = "fail"
)

// checkResult holds the result of a single health check.
type checkResult struct {
	Name    string      `json:"name"`
	Status  checkStatus `json:"status"`
	Message string      `json:"message"`
	Hint    string      `json:"hint,omitempty"`
}

// doctorResult holds all check results organized by category.
type doctorResult struct {
	Version     string        `json:"version"`
	Core        []checkResult `json:"core"`
	Project     []checkResult `json:"project"`
	Integration []checkResult `json:"integration"`
	Summary     doctorSummary `json:"summary"`
}

// doctorSummary holds the counts of check results.
type doctorSummary struct {
	Passed   int `json:"passed"`
	Warnings int `json:"warnings"`
	Failed   int `json:"failed"`
}

// newDoctorCmd creates the doctor command.
func newDoctorCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check installation health and suggest fixes",
		Long: `Check mason installation health and suggest fixes.

Runs a series of health checks across three categories:
  CORE        - Git availability and the template library
  PROJECT     - .mason.yml configuration
  INTEGRATION - Pre-commit hook installation

Each check reports:
  Pass    - Check passed successfully
  Warning - Non-critical issue found
  Fail    - Critical issue that needs attention

Examples:
  mason doctor              # Run all health checks
  mason doctor --quiet      # Only show failures and warnings
  mason doctor --json       # Output results as JSON`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDoctor(cmd, quiet)
		},
	}

	cmd.Flags().BoolVar(&quiet, "quiet", false, "Only show failures and warnings")

	return cmd
}

// runDoctor executes the doctor command.
func runDoctor(cmd *cobra.Command, quiet bool) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))

	result := gatherDoctorChecks()

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"version":     result.Version,
			"core":        result.Core,
			"project":     result.Project,
			"integration": result.Integration,
			"summary":     result.Summary,
		})
	}

	outputDoctorHuman(printer, result, quiet)
	return nil
}

// gatherDoctorChecks runs all health checks and returns results.
func gatherDoctorChecks() *doctorResult {
	result := &doctorResult{
		Version:     version,
		Core:        runCoreChecks(),
		Project:     runProjectChecks(),
		Integration: runIntegrationChecks(),
	}

	for _, checks := range [][]checkResult{result.Core, result.Project, result.Integration} {
		for _, check := range checks {
			switch check.Status {
			case checkPass:
				result.Summary.Passed++
			case checkWarn:
				result.Summary.Warnings++
			case checkFail:
				result.Summary.Failed++
			}
		}
	}

	return result
}

// runCoreChecks verifies git and the template library.
func runCoreChecks() []checkResult {
	var checks []checkResult

	if _, err := git.Run("version"); err != nil {
		checks = append(checks, checkResult{
			Name:    "git",
			Status:  checkFail,
			Message: "git not found",
			Hint:    "install git and ensure it is on PATH",
		})
	} else {
		checks = append(checks, checkResult{Name: "git", Status: checkPass, Message: "git available"})
	}

	if git.IsRepo() {
		checks = append(checks, checkResult{Name: "repository", Status: checkPass, Message: "inside a git repository"})
	} else {
		checks = append(checks, checkResult{
			Name:    "repository",
			Status:  checkWarn,
			Message: "not in a git repository",
			Hint:    "scan --staged and hooks need a repository",
		})
	}

	lib, err := templates.Load()
	if err != nil {
		checks = append(checks, checkResult{
			Name:    "templates",
			Status:  checkFail,
			Message: "template library failed to load: " + err.Error(),
		})
	} else {
		checks = append(checks, checkResult{
			Name:    "templates",
			Status:  checkPass,
			Message: strconv.Itoa(len(lib.Variants())) + " variant(s) registered",
		})
	}

	return checks
}

// runProjectChecks verifies .mason.yml configuration.
func runProjectChecks() []checkResult {
	var checks []checkResult

	if _, err := os.Stat(config.ProjectFile); err != nil {
		checks = append(checks, checkResult{
			Name:    "config",
			Status:  checkWarn,
			Message: config.ProjectFile + " not found",
			Hint:    "create it to set the default package and output root",
		})
		return checks
	}

	project, err := config.LoadProject(".")
	if err != nil {
		checks = append(checks, checkResult{
			Name:    "config",
			Status:  checkFail,
			Message: err.Error(),
		})
		return checks
	}
	checks = append(checks, checkResult{Name: "config", Status: checkPass, Message: config.ProjectFile + " loaded"})

	if project.ResolvePackage("") == "" {
		checks = append(checks, checkResult{
			Name:    "package",
			Status:  checkWarn,
			Message: "no default package configured",
			Hint:    "set package in " + config.ProjectFile + " or export MASON_PACKAGE",
		})
	} else {
		checks = append(checks, checkResult{Name: "package", Status: checkPass, Message: project.ResolvePackage("")})
	}

	return checks
}

// runIntegrationChecks verifies the pre-commit hook.
func runIntegrationChecks() []checkResult {
	if !git.IsRepo() {
		return []checkResult{{
			Name:    "pre-commit",
			Status:  checkWarn,
			Message: "skipped (not in a git repository)",
		}}
	}

	hooksDir, err := setup.GetHooksDir()
	if err != nil {
		return []checkResult{{Name: "pre-commit", Status: checkFail, Message: err.Error()}}
	}

	status := setup.CheckHookStatus(filepath.Join(hooksDir, "pre-commit"))
	if !status.Installed {
		return []checkResult{{
			Name:    "pre-commit",
			Status:  checkWarn,
			Message: "hook not installed",
			Hint:    "run 'mason hooks install'",
		}}
	}

	msg := "hook installed"
	if status.Chained {
		msg += " (chained)"
	}
	return []checkResult{{Name: "pre-commit", Status: checkPass, Message: msg}}
}

// outputDoctorHuman outputs doctor results in human-readable format.
func outputDoctorHuman(printer *output.Printer, result *doctorResult, quiet bool) {
	sections := []struct {
		title  string
		checks []checkResult
	}{
		{"Core", result.Core},
		{"Project", result.Project},
		{"Integration", result.Integration},
	}

	for _, section := range sections {
		shown := 0
		for _, check := range section.checks {
			if quiet && check.Status == checkPass {
				continue
			}
			if shown == 0 {
				printer.Section(section.title)
			}
			shown++
			printer.KeyValue(check.Name, string(check.Status)+" - "+check.Message)
			if check.Hint != "" {
				printer.Print("      hint: %s\n", check.Hint)
			}
		}
	}

	printer.Println()
	printer.Print("%d passed, %d warning(s), %d failed\n",
		result.Summary.Passed, result.Summary.Warnings, result.Summary.Failed)
}
