package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/shipgate/shipcheck/internal/engine"
	"github.com/shipgate/shipcheck/internal/manifest"
	"github.com/shipgate/shipcheck/internal/probe"
	"github.com/shipgate/shipcheck/internal/report"
)

// defaultManifestName is looked for in the working directory when no
// manifest path is given.
const defaultManifestName = "shipcheck.yaml"

func newValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [manifest]",
		Short: "Verify that every declared deliverable exists on disk",
		Long: `Verify that every deliverable declared in the manifest exists on disk.

Every check of every stage is evaluated, in declaration order, with no
short-circuiting: the report always shows the full status of every artifact.

Relative check paths resolve against the manifest's directory unless --dir
overrides the root.

Exit codes:
  0  every artifact exists
  1  one or more artifacts are missing
  2  the manifest is malformed or could not be read

With no arguments, reads ` + defaultManifestName + ` from the current directory.`,
		Args:          cobra.MaximumNArgs(1),
		RunE:          runValidate,
		SilenceErrors: true,
	}
	cmd.Flags().String("format", "text", "Output format: text | json")
	cmd.Flags().String("dir", "", "Root directory check paths resolve against")
	return cmd
}

// --- JSON output structs ---

type runJSONReport struct {
	Title  string            `json:"title"`
	Passed bool              `json:"passed"`
	Stages []stageJSONReport `json:"stages"`
}

type stageJSONReport struct {
	Name   string            `json:"name"`
	Passed bool              `json:"passed"`
	Checks []checkJSONReport `json:"checks"`
}

type checkJSONReport struct {
	Description string `json:"description"`
	Path        string `json:"path"`
	Passed      bool   `json:"passed"`
}

func runValidate(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	if format != "text" && format != "json" {
		return fmt.Errorf("invalid format %q: expected text or json", format)
	}

	manifestPath := defaultManifestName
	if len(args) > 0 {
		manifestPath = args[0]
	}

	m, err := manifest.Load(manifestPath)
	if err != nil {
		return err
	}

	root, err := cmd.Flags().GetString("dir")
	if err != nil {
		return err
	}
	if root == "" {
		root = filepath.Dir(manifestPath)
	}

	ev := engine.Evaluator{Prober: probe.Filesystem{}, Root: root}

	var run *engine.Run
	if format == "text" {
		rep := report.New(cmd.OutOrStdout())
		rep.Header(m.EffectiveTitle())
		ev.Observer = rep
		run = ev.Run(m)
		rep.Summary(run)
	} else {
		run = ev.Run(m)
		if err := outputValidateJSON(cmd, run); err != nil {
			return err
		}
	}

	if run.Overall != engine.Pass {
		return &ValidationFailedError{Missing: run.FailedChecks()}
	}
	return nil
}

func outputValidateJSON(cmd *cobra.Command, run *engine.Run) error {
	out := runJSONReport{
		Title:  run.Title,
		Passed: run.Overall == engine.Pass,
		Stages: make([]stageJSONReport, 0, len(run.Stages)),
	}
	for _, s := range run.Stages {
		sj := stageJSONReport{
			Name:   s.Name,
			Passed: s.Result == engine.Pass,
			Checks: make([]checkJSONReport, 0, len(s.Checks)),
		}
		for _, c := range s.Checks {
			sj.Checks = append(sj.Checks, checkJSONReport{
				Description: c.Description,
				Path:        c.Path,
				Passed:      c.Result == engine.Pass,
			})
		}
		out.Stages = append(out.Stages, sj)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
