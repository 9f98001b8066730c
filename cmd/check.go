/*
Copyright © 2026 The PromptLoom Authors
*/

// check.go implements the "loomgen check" command.
//
// Check runs the same validation generate does but stops before touching
// the filesystem, so it works with no library root configured at all.

package cmd

import (
	"fmt"

	"github.com/promptloom/loomgen/internal/catalog"
	"github.com/promptloom/loomgen/internal/runlog"
	"github.com/spf13/cobra"
)

type checkResult struct {
	Categories int  `json:"categories"`
	Tags       int  `json:"tags"`
	Valid      bool `json:"valid"`
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the catalog without writing anything",
		Long: `Validate the embedded catalog: every category must hold at least 50
tags and no tag may repeat within a category. Nothing is written and no
library root is required.`,
		Args: cobra.NoArgs,
		RunE: runCheck,
	}
}

func runCheck(_ *cobra.Command, _ []string) error {
	c, err := catalog.Load()
	if err != nil {
		runlog.Event("check").Done(err)
		return PrintJSONError(fmt.Errorf("check: loading catalog: %w", err))
	}

	err = c.Validate()
	runlog.Event("check").Categories(c.Len()).Done(err)
	if err != nil {
		return PrintJSONError(fmt.Errorf("check: %w", err))
	}

	if !JSON() {
		fmt.Fprintf(Out(), "catalog ok: %d categories, %d tags\n", c.Len(), c.TagCount())
	}
	return PrintJSON(checkResult{Categories: c.Len(), Tags: c.TagCount(), Valid: true})
}
