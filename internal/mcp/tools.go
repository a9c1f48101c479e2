package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/mason/internal/config"
	"github.com/gorewood/mason/internal/git"
	"github.com/gorewood/mason/internal/scaffold"
	"github.com/gorewood/mason/internal/scan"
	"github.com/gorewood/mason/internal/stability"
)

// --- Scaffold tool ---

// ScaffoldInput is the input for the scaffold tool.
type ScaffoldInput struct {
	Name    string `json:"name"              jsonschema:"feature name in PascalCase, e.g. UserProfile"`
	Pattern string `json:"pattern,omitempty" jsonschema:"architecture pattern variant (default mvi)"`
	Package string `json:"package,omitempty" jsonschema:"dotted package path, e.g. com.acme.app"`
	Output  string `json:"output,omitempty"  jsonschema:"output root directory (default feature/)"`
}

// ScaffoldOutput is the output for the scaffold tool.
type ScaffoldOutput struct {
	Variant string   `json:"variant"          jsonschema:"variant that was expanded"`
	Root    string   `json:"root"             jsonschema:"output root directory"`
	Files   []string `json:"files"            jsonschema:"paths of generated files, relative to root"`
	Written int      `json:"written"          jsonschema:"number of files written successfully"`
	Failed  []string `json:"failed,omitempty" jsonschema:"paths that failed to write"`
}

func handleScaffold(lib scaffold.Library) mcp.ToolHandlerFor[ScaffoldInput, ScaffoldOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ScaffoldInput) (*mcp.CallToolResult, ScaffoldOutput, error) {
		project, err := config.LoadProject(".")
		if err != nil {
			return nil, ScaffoldOutput{}, err
		}

		variant := input.Pattern
		if variant == "" {
			variant = "mvi"
		}

		writer := scaffold.NewWriter(lib)
		result, err := writer.Generate(
			input.Name,
			variant,
			project.ResolvePackage(input.Package),
			project.ResolveOutput(input.Output),
		)
		if err != nil {
			return nil, ScaffoldOutput{}, err
		}

		out := ScaffoldOutput{
			Variant: result.Variant,
			Root:    result.Root,
			Written: result.Written(),
		}
		for _, f := range result.Files {
			out.Files = append(out.Files, f.Path)
			if f.Err != nil {
				out.Failed = append(out.Failed, f.Path)
			}
		}
		if result.Failed() {
			return nil, out, fmt.Errorf("%d of %d files failed to write", len(out.Failed), len(out.Files))
		}
		return nil, out, nil
	}
}

// --- Stability tool ---

// StabilityInput is the input for the stability tool.
type StabilityInput struct {
	Module string `json:"module"        jsonschema:"module whose reports to analyze, e.g. app"`
	Dir    string `json:"dir,omitempty" jsonschema:"explicit report directory, overrides the module convention"`
}

// StabilityIssue is one ranked issue in the output.
type StabilityIssue struct {
	Kind    string   `json:"kind"              jsonschema:"unstable-class or non-skippable"`
	Name    string   `json:"name"              jsonschema:"class or composable name"`
	Members []string `json:"members,omitempty" jsonschema:"unstable member names"`
	Hint    string   `json:"hint"              jsonschema:"remediation hint"`
}

// StabilityOutput is the output for the stability tool.
type StabilityOutput struct {
	StableClasses   int              `json:"stable_classes"   jsonschema:"count of stable classes"`
	UnstableClasses int              `json:"unstable_classes" jsonschema:"count of unstable classes"`
	Skippable       int              `json:"skippable"        jsonschema:"count of skippable composables"`
	NonSkippable    int              `json:"non_skippable"    jsonschema:"count of non-skippable composables"`
	StabilityRate   float64          `json:"stability_rate"   jsonschema:"fraction of classes that are stable (0 when no classes reported)"`
	SkippableRate   float64          `json:"skippable_rate"   jsonschema:"fraction of composables that can skip"`
	Issues          []StabilityIssue `json:"issues"           jsonschema:"ranked issues, most severe first"`
}

func handleStability() mcp.ToolHandlerFor[StabilityInput, StabilityOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input StabilityInput) (*mcp.CallToolResult, StabilityOutput, error) {
		project, err := config.LoadProject(".")
		if err != nil {
			return nil, StabilityOutput{}, err
		}

		records, err := stability.LoadDir(project.ResolveReportsDir(input.Module, input.Dir))
		if err != nil {
			return nil, StabilityOutput{}, err
		}

		summary := stability.Aggregate(records)
		out := StabilityOutput{
			StableClasses:   summary.StableClasses,
			UnstableClasses: summary.UnstableClasses,
			Skippable:       summary.Skippable,
			NonSkippable:    summary.NonSkippable,
			StabilityRate:   summary.StabilityRate(),
			SkippableRate:   summary.SkippableRate(),
		}
		for _, issue := range summary.Issues {
			mi := StabilityIssue{Kind: string(issue.Kind), Name: issue.Name, Hint: issue.Hint}
			for _, m := range issue.UnstableMembers {
				mi.Members = append(mi.Members, m.Name)
			}
			out.Issues = append(out.Issues, mi)
		}
		return nil, out, nil
	}
}

// --- Scan tool ---

// ScanInput is the input for the scan tool.
type ScanInput struct {
	Paths []string `json:"paths,omitempty" jsonschema:"files to scan; when empty, the currently staged files are scanned"`
}

// ScanOutput is the output for the scan tool.
type ScanOutput struct {
	Blocked bool         `json:"blocked"           jsonschema:"true when any forbidden pattern matched"`
	Matches []scan.Match `json:"matches,omitempty" jsonschema:"forbidden pattern matches in file order"`
	Scanned int          `json:"scanned"           jsonschema:"number of files scanned"`
	Skipped []string     `json:"skipped,omitempty" jsonschema:"allow-listed files that were not scanned"`
}

func handleScan() mcp.ToolHandlerFor[ScanInput, ScanOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ScanInput) (*mcp.CallToolResult, ScanOutput, error) {
		project, err := config.LoadProject(".")
		if err != nil {
			return nil, ScanOutput{}, err
		}

		paths := input.Paths
		if len(paths) == 0 {
			paths, err = git.StagedFiles()
			if err != nil {
				return nil, ScanOutput{}, err
			}
		}

		scanner := scan.NewDefault(project.ScanAllow...)
		result, err := scanner.Paths(paths)
		if err != nil {
			return nil, ScanOutput{}, err
		}

		return nil, ScanOutput{
			Blocked: result.Blocked(),
			Matches: result.Matches,
			Scanned: result.Scanned,
			Skipped: result.Skipped,
		}, nil
	}
}

// --- Templates tool ---

// TemplatesInput is the input for the templates tool (no parameters needed).
type TemplatesInput struct{}

// VariantInfo describes one registered pattern variant.
type VariantInfo struct {
	Name        string   `json:"name"        jsonschema:"variant name"`
	Description string   `json:"description" jsonschema:"what the variant generates"`
	Files       []string `json:"files"       jsonschema:"output path patterns, in generation order"`
}

// TemplatesOutput is the output for the templates tool.
type TemplatesOutput struct {
	Variants []VariantInfo `json:"variants" jsonschema:"registered pattern variants"`
}

func handleTemplates(lib scaffold.Library) mcp.ToolHandlerFor[TemplatesInput, TemplatesOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ TemplatesInput) (*mcp.CallToolResult, TemplatesOutput, error) {
		var out TemplatesOutput
		for _, name := range lib.Variants() {
			manifest, err := lib.Manifest(name)
			if err != nil {
				return nil, TemplatesOutput{}, err
			}
			info := VariantInfo{Name: manifest.Variant, Description: manifest.Description}
			for _, entry := range manifest.Entries {
				info.Files = append(info.Files, entry.Output)
			}
			out.Variants = append(out.Variants, info)
		}
		return nil, out, nil
	}
}
