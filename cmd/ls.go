/*
Copyright © 2026 The PromptLoom Authors
*/

// ls.go implements the "loomgen ls" command for listing categories.

package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/promptloom/loomgen/internal/catalog"
	"github.com/promptloom/loomgen/internal/format"
	"github.com/spf13/cobra"
)

type lsEntry struct {
	Path string `json:"path"`
	Tags int    `json:"tags"`
}

func newLsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "ls [prefix]",
		Short: "List categories",
		Long:  `List catalog categories with their tag counts, optionally filtered by path prefix.`,
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLs,
	}
	c.Flags().BoolP("tree", "t", false, "Display as tree")
	return c
}

func runLs(c *cobra.Command, args []string) error {
	tree, _ := c.Flags().GetBool("tree")
	prefix := ""
	if len(args) > 0 {
		prefix = args[0]
	}

	cat, err := catalog.Load()
	if err != nil {
		return PrintJSONError(fmt.Errorf("ls: loading catalog: %w", err))
	}

	matched := make([]catalog.Category, 0, cat.Len())
	for _, entry := range cat.Categories() {
		if strings.HasPrefix(entry.Path, prefix) {
			matched = append(matched, entry)
		}
	}

	w := Out()
	if JSON() {
		w = io.Discard
	}

	if tree {
		err = format.Tree(w, matched)
	} else {
		err = format.List(w, matched)
	}
	if err != nil {
		return PrintJSONError(fmt.Errorf("ls %q: %w", prefix, err))
	}

	entries := make([]lsEntry, len(matched))
	for i, entry := range matched {
		entries[i] = lsEntry{Path: entry.Path, Tags: len(entry.Tags)}
	}
	return PrintJSON(entries)
}
