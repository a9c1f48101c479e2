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

// newHookCmd creates the hidden hook parent command for internal hook execution.
func newHookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:    "hook",
		Short:  "Internal hook runner",
		Long:   `Internal command for running hook logic. Called by git hooks.`,
		Hidden: true,
	}

	cmd.AddCommand(newHookRunCmd())
	return cmd
}

// newHookRunCmd creates the hook run subcommand.
func newHookRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <hook-name>",
		Short: "Execute hook logic",
		Long:  `Execute the logic for the specified hook. Called by installed git hooks.`,
		Args:  cobra.ExactArgs(1),
		RunE:  runHookRun,
	}
}

// runHookRun executes the hook run command.
func runHookRun(cmd *cobra.Command, args []string) error {
	hookName := args[0]

	switch hookName {
	case "pre-commit":
		return runPreCommitHook(cmd)
	default:
		// Unknown hook - silently succeed to not block operations
		return nil
	}
}

// runPreCommitHook executes the pre-commit gate. Unlike an advisory hook
// this one is blocking: any forbidden-pattern match in the staged files
// fails the commit, and so does an unreadable staged file. The output
// names every offending line so the committer can fix or allow-list it.
func runPreCommitHook(cmd *cobra.Command) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), false, output.IsTTY(cmd.OutOrStdout()))

	// Outside a repo there is nothing to gate
	if !git.IsRepo() {
		return nil
	}

	paths, err := git.StagedFiles()
	if err != nil {
		printer.Error(err)
		return err
	}
	if len(paths) == 0 {
		return nil
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
		sysErr := output.NewSystemErrorWithCause("scanning staged files", err)
		printer.Error(sysErr)
		return sysErr
	}

	if !result.Blocked() {
		return nil
	}

	printer.Println()
	printer.Print("[mason] Commit blocked: forbidden patterns in staged files\n")
	for _, m := range result.Matches {
		printer.Print("[mason]   %s:%d  [%s]  %s\n", m.Path, m.Line, m.Pattern, m.Text)
	}
	printer.Print("[mason] Fix the lines above, or allow-list the paths in %s\n", config.ProjectFile)
	printer.Println()

	return output.NewBlockedError(fmt.Sprintf("%d forbidden pattern match(es)", len(result.Matches)))
}
