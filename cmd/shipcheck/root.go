package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shipcheck",
		Short: "Shipcheck - completeness gate for multi-stage deliveries",
		Long: `Shipcheck verifies that every deliverable declared in a manifest actually
exists on disk, and reports a pass/fail verdict per stage and overall.

Run it after a build or delivery to confirm every promised artifact is
present before claiming the work is done.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MaximumNArgs(1),
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	validateCmd := newValidateCommand()

	// Invoking shipcheck with no subcommand performs a validation run.
	cmd.RunE = validateCmd.RunE
	cmd.Flags().AddFlagSet(validateCmd.Flags())

	// Add subcommands
	cmd.AddCommand(validateCmd)
	cmd.AddCommand(newInitCommand())
	cmd.AddCommand(newListCommand())

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
