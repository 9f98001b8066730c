/*
Copyright © 2026 The PromptLoom Authors
*/

// cat.go implements the "loomgen cat" command.
//
// Cat renders a single category exactly as generate would write it, letting
// users preview file contents without a library root or any writes.

package cmd

import (
	"fmt"
	"time"

	"github.com/promptloom/loomgen/internal/catalog"
	"github.com/promptloom/loomgen/internal/emit"
	"github.com/spf13/cobra"
)

type catResult struct {
	Path    string   `json:"path"`
	Tags    []string `json:"tags"`
	Content string   `json:"content"`
}

func newCatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cat <path>",
		Short: "Print the file a category will produce",
		Long: `Print the rendered file for one catalog category: the change log
header followed by its tags, one per line. Output matches what generate
writes for the same date.`,
		Args: cobra.ExactArgs(1),
		RunE: runCat,
	}
}

func runCat(_ *cobra.Command, args []string) error {
	p := args[0]

	cat, err := catalog.Load()
	if err != nil {
		return PrintJSONError(fmt.Errorf("cat %q: loading catalog: %w", p, err))
	}

	entry, ok := cat.Get(p)
	if !ok {
		return PrintJSONError(fmt.Errorf("cat %q: category not found (see 'loomgen ls')", p))
	}

	content := emit.Content(entry, time.Now())
	if !JSON() {
		fmt.Fprint(Out(), content)
	}
	return PrintJSON(catResult{Path: entry.Path, Tags: entry.Tags, Content: content})
}
