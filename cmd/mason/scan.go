// Package main provides the entry point for the mason CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gorewood/mason/internal/config"
	"github.com/gorewood/mason/internal/git"
	"github.com/gorewood/mason/internal/output"
	"github.com/gorewood/mason/internal/scan"
)

// newScanCmd creates the scan command.
func newScanCmd() *cobra.Command {
	var staged bool

	cmd := &cobra.Command{
		Use:   "scan [files...]",
		Short: "Scan files for forbidden patterns",
		Long: `Scan source files for patterns that must not reach the repository:
debug logging calls, println, printStackTrace, and hardcoded secrets.

Paths under test source sets (/test/, /androidTest/, *Test.kt) are
exempt; .mason.yml can add further allow-list substrings via scan_allow.
Any match on a non-exempt path makes the scan report "blocked" and the
command exits with code 3 - the same verdict the pre-commit hook uses.

Examples:
  mason scan src/main/App.kt    # Scan explicit files
  mason scan --staged           # Scan the files staged in git
  mason scan --staged --json    # Machine-readable verdict`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, args, staged)
		},
	}

	cmd.Flags().BoolVar(&staged, "staged", false, "Scan the files currently staged in git")

	return cmd
}

// runScan executes the scan command.
func runScan(cmd *cobra.Command, paths []string, staged bool) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))

	if staged {
		if !git.IsRepo() {
			err := output.NewSystemError("not in a git repository")
			printer.Error(err)
			return err
		}
		stagedPaths, err := git.StagedFiles()
		if err != nil {
			printer.Error(err)
			return err
		}
		paths = append(paths, stagedPaths...)
	}

	if len(paths) == 0 {
		err := output.NewUserError("no files to scan; pass paths or use --staged")
		printer.Error(err)
		return err
	}

	project, err := config.LoadProject(".")
	if err != nil {
		sysErr := output.NewSystemErrorWithCause("loading project config", err)
		printer.Error(sysErr)
		return sysErr
	}

	scanner := scan.NewDefault(project.ScanAllow...)
	result, err := scanner.Paths(paths)
	if err != nil {
		sysErr := output.NewSystemErrorWithCause("scanning files", err)
		printer.Error(sysErr)
		return sysErr
	}

	if printer.IsJSON() {
		if err := outputScanJSON(printer, result); err != nil {
			return err
		}
	} else {
		outputScanHuman(printer, result)
	}

	if result.Blocked() {
		return output.NewBlockedError(fmt.Sprintf("%d forbidden pattern match(es)", len(result.Matches)))
	}
	return nil
}

// outputScanJSON outputs the scan result as JSON.
func outputScanJSON(printer *output.Printer, result scan.Result) error {
	matches := make([]map[string]any, 0, len(result.Matches))
	for _, m := range result.Matches {
		matches = append(matches, map[string]any{
			"path":    m.Path,
			"line":    m.Line,
			"pattern": m.Pattern,
			"text":    m.Text,
			"hint":    m.Hint,
		})
	}
	skipped := result.Skipped
	if skipped == nil {
		skipped = []string{}
	}
	return printer.Success(map[string]any{
		"blocked": result.Blocked(),
		"scanned": result.Scanned,
		"skipped": skipped,
		"matches": matches,
	})
}

// outputScanHuman outputs the scan result in human-readable format.
func outputScanHuman(printer *output.Printer, result scan.Result) {
	if !result.Blocked() {
		printer.Print("Clean: %d file(s) scanned, %d skipped\n", result.Scanned, len(result.Skipped))
		return
	}

	printer.Section("Forbidden Patterns")
	for _, m := range result.Matches {
		printer.Print("  %s:%d  [%s]  %s\n", m.Path, m.Line, m.Pattern, m.Text)
		if m.Hint != "" {
			printer.Print("      hint: %s\n", m.Hint)
		}
	}
	printer.Println()
	printer.Print("%d match(es) in %d file(s) scanned\n", len(result.Matches), result.Scanned)
}
