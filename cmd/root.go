/*
Copyright © 2026 The PromptLoom Authors
*/

// root.go defines the root command and CLI execution entry point.
//
// Separated from flags.go to isolate cobra setup from flag definitions.
//
// Design: the run log opens once in Execute rather than per command, so a
// missing or unwritable log directory produces a single warning instead of
// failing the run. Config is consulted only to honour log.enabled; a config
// file too broken to read does not block logging here because the command
// about to run will report the real error.

package cmd

import (
	"fmt"
	"os"
	"slices"

	"github.com/promptloom/loomgen/internal/config"
	"github.com/promptloom/loomgen/internal/runlog"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "loomgen",
	Short: "Generate the PromptLoom tag library",
	Long:  `Validates the embedded catalog of prompt tag categories and writes it out as a tree of text files, one per category, for the PromptLoom assembler to consume.`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if output != "" && !slices.Contains(validOutputFormats, output) {
			return fmt.Errorf("invalid output format: %s (valid: %v)", output, validOutputFormats)
		}
		return nil
	},
}

// Execute runs the root command and handles process lifecycle.
// Opens run logging, executes the command, and exits with code 1 on error.
func Execute() {
	if runLogEnabled() {
		if err := runlog.Open(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: run log unavailable: %v\n", err)
		}
		defer runlog.Close()
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// runLogEnabled reports whether config allows run logging. Load errors do
// not disable it: the command itself surfaces those.
func runLogEnabled() bool {
	cfg, err := config.Load()
	if err != nil {
		return true
	}
	return cfg.LogEnabled()
}

// RootCmd returns the root command for testing.
func RootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.AddCommand(
		newGenerateCmd(),
		newCheckCmd(),
		newLsCmd(),
		newCatCmd(),
		newRunsCmd(),
		newConfigCmd(),
		newGuideCmd(),
		newVersionCmd(),
	)
}
