package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/shipgate/shipcheck/internal/manifest"
)

func newInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Create a starter delivery manifest",
		Long: `Create a starter ` + defaultManifestName + ` in the given directory.

The generated manifest declares one example stage with two checks; edit it
to list the stages and artifacts of your delivery.

If no directory is specified, the current directory is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runInit,
	}
	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	manifestPath := filepath.Join(dir, defaultManifestName)
	if _, err := os.Stat(manifestPath); err == nil {
		return fmt.Errorf("%s already exists, refusing to overwrite", manifestPath)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("checking %s: %w", manifestPath, err)
	}

	starter := manifest.Manifest{
		Title: "Delivery Validation",
		Stages: []manifest.Stage{
			{
				Name: "Stage 1: Core Implementation",
				Base: "src",
				Checks: []manifest.Check{
					{Description: "Library module", Path: "lib.rs"},
					{Description: "Main module", Path: "main.rs"},
				},
			},
		},
	}

	data, err := yaml.Marshal(&starter)
	if err != nil {
		return fmt.Errorf("failed to marshal starter manifest: %w", err)
	}

	if err := os.WriteFile(manifestPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", manifestPath, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", manifestPath) //nolint:errcheck
	return nil
}
