// Package main provides the entry point for the mason CLI.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gorewood/mason/internal/casing"
	"github.com/gorewood/mason/internal/config"
	"github.com/gorewood/mason/internal/output"
	"github.com/gorewood/mason/internal/scaffold"
	"github.com/gorewood/mason/internal/templates"
)

// scaffoldFlags holds the command-line flags for the scaffold command.
type scaffoldFlags struct {
	pattern string
	pkg     string
	out     string
}

// newScaffoldCmd creates the scaffold command.
func newScaffoldCmd() *cobra.Command {
	flags := &scaffoldFlags{}

	cmd := &cobra.Command{
		Use:   "scaffold <FeatureName>",
		Short: "Generate a feature package from a template variant",
		Long: `Generate the files for a new feature from the built-in template library.

The feature name drives the casing variants substituted into templates:
UserProfile becomes userprofile, USERPROFILE, and user_profile where the
templates ask for them.

Defaults for --package and --output come from .mason.yml in the current
directory (package also from MASON_PACKAGE).

Examples:
  mason scaffold UserProfile                       # mvi pattern, configured package
  mason scaffold Checkout --pattern mvvm           # alternate pattern
  mason scaffold Search --package com.acme.search  # explicit package
  mason scaffold Search --output app/src/features  # explicit output root`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScaffold(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.pattern, "pattern", "p", "mvi", "Template variant to expand")
	cmd.Flags().StringVar(&flags.pkg, "package", "", "Dotted package path for generated code")
	cmd.Flags().StringVarP(&flags.out, "output", "o", "", "Output root directory")

	return cmd
}

// runScaffold executes the scaffold command.
func runScaffold(cmd *cobra.Command, name string, flags *scaffoldFlags) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))

	lib, err := templates.Load()
	if err != nil {
		sysErr := output.NewSystemErrorWithCause("loading template library", err)
		printer.Error(sysErr)
		return sysErr
	}

	project, err := config.LoadProject(".")
	if err != nil {
		sysErr := output.NewSystemErrorWithCause("loading project config", err)
		printer.Error(sysErr)
		return sysErr
	}

	writer := scaffold.NewWriter(lib)
	result, err := writer.Generate(
		name,
		flags.pattern,
		project.ResolvePackage(flags.pkg),
		project.ResolveOutput(flags.out),
	)
	if err != nil {
		genErr := classifyGenerateError(err)
		printer.Error(genErr)
		return genErr
	}

	if printer.IsJSON() {
		return outputScaffoldJSON(printer, result)
	}
	return outputScaffoldHuman(printer, result)
}

// classifyGenerateError maps a Generate failure onto the exit-code
// taxonomy: bad input (exit 1) for name and variant validation, system
// (exit 2) for everything that touches disk, such as an unwritable
// output root.
func classifyGenerateError(err error) *output.ExitError {
	if errors.Is(err, casing.ErrInvalidName) || errors.Is(err, scaffold.ErrUnknownVariant) {
		return output.NewUserError(err.Error())
	}
	return output.NewSystemErrorWithCause("scaffolding feature", err)
}

// outputScaffoldJSON outputs the scaffold result as JSON.
func outputScaffoldJSON(printer *output.Printer, result *scaffold.Result) error {
	files := make([]map[string]any, 0, len(result.Files))
	failed := 0
	for _, f := range result.Files {
		entry := map[string]any{"path": f.Path, "written": f.Err == nil}
		if f.Err != nil {
			entry["error"] = f.Err.Error()
			failed++
		}
		files = append(files, entry)
	}

	if err := printer.Success(map[string]any{
		"feature": result.Feature.Original,
		"variant": result.Variant,
		"root":    result.Root,
		"written": result.Written(),
		"failed":  failed,
		"files":   files,
	}); err != nil {
		return err
	}
	if result.Failed() {
		return output.NewSystemError(fmt.Sprintf("%d of %d files failed to write", failed, len(result.Files)))
	}
	return nil
}

// outputScaffoldHuman outputs the scaffold result in human-readable format.
func outputScaffoldHuman(printer *output.Printer, result *scaffold.Result) error {
	printer.Section("Scaffold")
	printer.KeyValue("Feature", result.Feature.Original)
	printer.KeyValue("Variant", result.Variant)
	printer.KeyValue("Root", result.Root)
	printer.Println()

	failed := 0
	for _, f := range result.Files {
		if f.Err != nil {
			printer.Print("  FAIL  %s: %v\n", f.Path, f.Err)
			failed++
			continue
		}
		printer.Print("  ok    %s\n", f.Path)
	}

	if result.Failed() {
		err := output.NewSystemError(fmt.Sprintf("%d of %d files failed to write", failed, len(result.Files)))
		printer.Error(err)
		return err
	}

	printer.Println()
	printer.Print("Generated %d files\n", result.Written())
	return nil
}
