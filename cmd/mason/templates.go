// Package main provides the entry point for the mason CLI.
package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gorewood/mason/internal/output"
	"github.com/gorewood/mason/internal/templates"
)

// newTemplatesCmd creates the templates command.
func newTemplatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List available template variants",
		Long: `List the pattern variants in the built-in template library.

Each variant names the architecture pattern it generates (mvi, mvvm, ...)
and the files it produces relative to the feature output root.

Examples:
  mason templates          # Show variants and their files
  mason templates --json   # Output the library as JSON`,
		RunE: runTemplates,
	}
}

// runTemplates executes the templates command.
func runTemplates(cmd *cobra.Command, _ []string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))

	lib, err := templates.Load()
	if err != nil {
		sysErr := output.NewSystemErrorWithCause("loading template library", err)
		printer.Error(sysErr)
		return sysErr
	}

	if printer.IsJSON() {
		return outputTemplatesJSON(printer, lib)
	}
	outputTemplatesHuman(printer, lib)
	return nil
}

// outputTemplatesJSON outputs the template library as JSON.
func outputTemplatesJSON(printer *output.Printer, lib *templates.Library) error {
	variants := make([]map[string]any, 0)
	for _, name := range lib.Variants() {
		manifest, err := lib.Manifest(name)
		if err != nil {
			return output.NewSystemErrorWithCause("reading manifest", err)
		}
		files := make([]string, 0, len(manifest.Entries))
		for _, entry := range manifest.Entries {
			files = append(files, entry.Output)
		}
		variants = append(variants, map[string]any{
			"name":        name,
			"description": manifest.Description,
			"files":       files,
		})
	}
	return printer.Success(map[string]any{"variants": variants})
}

// outputTemplatesHuman outputs the template library in human-readable format.
func outputTemplatesHuman(printer *output.Printer, lib *templates.Library) {
	for _, name := range lib.Variants() {
		manifest, err := lib.Manifest(name)
		if err != nil {
			printer.Warn("reading manifest for %s: %v", name, err)
			continue
		}
		printer.Section(name)
		printer.KeyValue("Description", manifest.Description)
		printer.KeyValue("Files", strconv.Itoa(len(manifest.Entries)))
		for _, entry := range manifest.Entries {
			printer.Print("  %s\n", entry.Output)
		}
	}
}
