package main

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/shipgate/shipcheck/internal/manifest"
)

func newListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [manifest]",
		Short: "List the stages and checks a manifest declares",
		Long: `List the stages a manifest declares, with check counts and base paths,
without probing the filesystem.

With no arguments, reads ` + defaultManifestName + ` from the current directory.`,
		Args:          cobra.MaximumNArgs(1),
		RunE:          runList,
		SilenceErrors: true,
	}
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	manifestPath := defaultManifestName
	if len(args) > 0 {
		manifestPath = args[0]
	}

	m, err := manifest.Load(manifestPath)
	if err != nil {
		return err
	}

	printStageTable(cmd, m)
	return nil
}

func printStageTable(cmd *cobra.Command, m *manifest.Manifest) {
	const maxNameWidth = 40
	const minNameWidth = 10
	const colChecks = 6

	// Compute dynamic column width from the longest stage name.
	nameWidth := len("Stage")
	for _, s := range m.Stages {
		if w := runewidth.StringWidth(s.Name); w > nameWidth {
			nameWidth = w
		}
	}
	if nameWidth > maxNameWidth {
		nameWidth = maxNameWidth
	}
	if nameWidth < minNameWidth {
		nameWidth = minNameWidth
	}
	totalWidth := nameWidth + colChecks + 4 + 16 // gaps + base column allowance

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s\n", m.EffectiveTitle())              //nolint:errcheck
	fmt.Fprintf(w, "%s\n", strings.Repeat("─", totalWidth)) //nolint:errcheck
	fmt.Fprintf(w, "%s  %s  %s\n", //nolint:errcheck
		padRight("Stage", nameWidth),
		padRight("Checks", colChecks),
		"Base")
	fmt.Fprintf(w, "%s\n", strings.Repeat("─", totalWidth)) //nolint:errcheck

	for _, s := range m.Stages {
		base := s.Base
		if base == "" {
			base = "-"
		}
		fmt.Fprintf(w, "%s  %s  %s\n", //nolint:errcheck
			padRight(truncateName(s.Name, nameWidth), nameWidth),
			padRight(fmt.Sprintf("%d", len(s.Checks)), colChecks),
			base)
	}
	fmt.Fprintf(w, "%s\n", strings.Repeat("─", totalWidth))                     //nolint:errcheck
	fmt.Fprintf(w, "%d stage(s), %d check(s)\n", len(m.Stages), m.CheckCount()) //nolint:errcheck
}

// truncateName shortens a name to maxLen runes, replacing the last rune with "…" if needed.
func truncateName(name string, maxLen int) string {
	runes := []rune(name)
	if len(runes) <= maxLen {
		return name
	}
	return string(runes[:maxLen-1]) + "…"
}

// padRight pads s with spaces so its terminal display width reaches width.
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}
