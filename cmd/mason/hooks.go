// Package main provides the entry point for the mason CLI.
package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gorewood/mason/internal/git"
	"github.com/gorewood/mason/internal/output"
	"github.com/gorewood/mason/internal/setup"
)

// hooksListResult holds the data for hooks list output.
type hooksListResult struct {
	PreCommit setup.HookStatus `json:"pre_commit"`
}

// newHooksCmd creates the hooks parent command with subcommands.
func newHooksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hooks",
		Short: "Manage git hooks for mason",
		Long: `Manage git hooks that integrate mason into your workflow.

Mason installs a pre-commit hook that scans staged files for forbidden
patterns. The gate is blocking: a match fails the commit until the
offending lines are removed or the path is allow-listed.

Subcommands:
  install    Install mason git hooks
  uninstall  Remove mason git hooks
  list       Show status of hooks

Examples:
  mason hooks list              # Show hook status
  mason hooks install           # Install pre-commit hook
  mason hooks install --chain   # Install and preserve existing hook
  mason hooks uninstall         # Remove hooks, restore backups`,
	}

	cmd.AddCommand(newHooksListCmd())
	cmd.AddCommand(newHooksInstallCmd())
	cmd.AddCommand(newHooksUninstallCmd())
	return cmd
}

// newHooksListCmd creates the hooks list subcommand.
func newHooksListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show status of git hooks",
		Long:  `Show the installation status of each mason hook.`,
		RunE:  runHooksList,
	}
}

// runHooksList executes the hooks list command.
func runHooksList(cmd *cobra.Command, _ []string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))

	if !git.IsRepo() {
		err := output.NewSystemError("not in a git repository")
		printer.Error(err)
		return err
	}

	result, err := gatherHooksStatus()
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"pre_commit": map[string]any{
				"installed": result.PreCommit.Installed,
				"chained":   result.PreCommit.Chained,
			},
		})
	}

	printHumanHooksList(printer, result)
	return nil
}

// gatherHooksStatus collects hook status information.
func gatherHooksStatus() (*hooksListResult, error) {
	hooksDir, err := setup.GetHooksDir()
	if err != nil {
		return nil, err
	}

	result := &hooksListResult{}
	preCommitPath := filepath.Join(hooksDir, "pre-commit")
	result.PreCommit = setup.CheckHookStatus(preCommitPath)

	return result, nil
}

// printHumanHooksList outputs hooks status in human-readable format.
func printHumanHooksList(printer *output.Printer, result *hooksListResult) {
	printer.Section("Git Hooks")

	statusStr := "not installed"
	if result.PreCommit.Installed {
		statusStr = "installed"
		if result.PreCommit.Chained {
			statusStr += " (chained)"
		}
	}
	printer.KeyValue("pre-commit", statusStr)
}
