// Package main provides the entry point for the mason CLI.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gorewood/mason/internal/config"
	"github.com/gorewood/mason/internal/output"
	"github.com/gorewood/mason/internal/stability"
)

// stabilityFlags holds the command-line flags for the stability command.
type stabilityFlags struct {
	dir string
	top int
}

// newStabilityCmd creates the stability command.
func newStabilityCmd() *cobra.Command {
	flags := &stabilityFlags{}

	cmd := &cobra.Command{
		Use:   "stability [module]",
		Short: "Summarize Compose compiler stability reports",
		Long: `Parse the Compose compiler's stability reports for a module and derive
a summary: class and composable counts, stability rates, and a ranked
list of the classes and composables most worth fixing.

Reports are read from <module>/build/compose_reports by default
(override with reports_dir in .mason.yml or --dir). The summary is
computed fresh on every run; nothing is cached or persisted.

Examples:
  mason stability app                 # Summarize the app module's reports
  mason stability --dir build/reports # Explicit report directory
  mason stability app --top 5         # Only the top 5 issues
  mason stability app --json          # Machine-readable summary`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			module := ""
			if len(args) > 0 {
				module = args[0]
			}
			return runStability(cmd, module, flags)
		},
	}

	cmd.Flags().StringVar(&flags.dir, "dir", "", "Report directory (overrides the module convention)")
	cmd.Flags().IntVar(&flags.top, "top", 0, "Limit the issue list to the top N entries")

	return cmd
}

// runStability executes the stability command.
func runStability(cmd *cobra.Command, module string, flags *stabilityFlags) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))

	if module == "" && flags.dir == "" {
		err := output.NewUserError("specify a module or --dir")
		printer.Error(err)
		return err
	}

	project, err := config.LoadProject(".")
	if err != nil {
		sysErr := output.NewSystemErrorWithCause("loading project config", err)
		printer.Error(sysErr)
		return sysErr
	}

	dir := project.ResolveReportsDir(module, flags.dir)
	records, err := stability.LoadDir(dir)
	if err != nil {
		sysErr := output.NewSystemErrorWithCause("loading stability reports", err)
		printer.Error(sysErr)
		return sysErr
	}

	summary := stability.Aggregate(records)
	issues := summary.Issues
	if flags.top > 0 && flags.top < len(issues) {
		issues = issues[:flags.top]
	}

	if printer.IsJSON() {
		return outputStabilityJSON(printer, summary, issues)
	}
	outputStabilityHuman(printer, summary, issues)
	return nil
}

// outputStabilityJSON outputs the stability summary as JSON.
func outputStabilityJSON(printer *output.Printer, summary stability.Summary, issues []stability.Issue) error {
	issueData := make([]map[string]any, 0, len(issues))
	for _, issue := range issues {
		entry := map[string]any{
			"kind": string(issue.Kind),
			"name": issue.Name,
			"hint": issue.Hint,
		}
		if len(issue.UnstableMembers) > 0 {
			members := make([]map[string]string, 0, len(issue.UnstableMembers))
			for _, m := range issue.UnstableMembers {
				members = append(members, map[string]string{"name": m.Name, "type": m.Type})
			}
			entry["unstable_members"] = members
		}
		issueData = append(issueData, entry)
	}

	return printer.Success(map[string]any{
		"stable_classes":   summary.StableClasses,
		"unstable_classes": summary.UnstableClasses,
		"skippable":        summary.Skippable,
		"non_skippable":    summary.NonSkippable,
		"stability_rate":   summary.StabilityRate(),
		"skippable_rate":   summary.SkippableRate(),
		"issues":           issueData,
	})
}

// outputStabilityHuman outputs the stability summary in human-readable format.
func outputStabilityHuman(printer *output.Printer, summary stability.Summary, issues []stability.Issue) {
	printer.Section("Classes")
	printer.KeyValue("Stable", strconv.Itoa(summary.StableClasses))
	printer.KeyValue("Unstable", strconv.Itoa(summary.UnstableClasses))
	printer.KeyValue("Stability", formatRate(summary.StabilityRate()))

	printer.Section("Composables")
	printer.KeyValue("Skippable", strconv.Itoa(summary.Skippable))
	printer.KeyValue("Non-skippable", strconv.Itoa(summary.NonSkippable))
	printer.KeyValue("Skippable rate", formatRate(summary.SkippableRate()))

	if len(issues) == 0 {
		printer.Println()
		printer.Print("No stability issues found\n")
		return
	}

	printer.Section("Top Issues")
	rows := make([][]string, 0, len(issues))
	for _, issue := range issues {
		detail := issue.Hint
		if n := len(issue.UnstableMembers); n > 0 {
			detail = fmt.Sprintf("%d unstable member(s); %s", n, issue.Hint)
		}
		rows = append(rows, []string{string(issue.Kind), issue.Name, detail})
	}
	printer.Table([]string{"Kind", "Name", "Recommendation"}, rows)
}

// formatRate renders a 0..1 fraction as a percentage.
func formatRate(rate float64) string {
	return fmt.Sprintf("%.1f%%", rate*100)
}
