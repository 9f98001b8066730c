/*
Copyright © 2026 The PromptLoom Authors
*/

// runs.go implements the "loomgen runs" command for viewing the run log.

package cmd

import (
	"fmt"
	"time"

	"github.com/promptloom/loomgen/internal/duration"
	"github.com/promptloom/loomgen/internal/runlog"
	"github.com/spf13/cobra"
)

func newRunsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "runs",
		Short: "Show recent runs from the run log",
		Long: `Display recent generate and check runs recorded in the local run log,
newest first. Use --since to restrict to a time window (e.g. 12h, 7d, 4w).`,
		Args: cobra.NoArgs,
		RunE: runRuns,
	}
	c.Flags().IntP("limit", "n", 20, "Limit number of runs shown")
	c.Flags().String("since", "", "Only show runs newer than this (e.g. 12h, 7d, 4w)")
	return c
}

func runRuns(c *cobra.Command, _ []string) error {
	limit, _ := c.Flags().GetInt("limit")
	if limit < 1 {
		return PrintJSONError(fmt.Errorf("limit must be >= 1, got %d", limit))
	}

	var cutoff int64
	if since, _ := c.Flags().GetString("since"); since != "" {
		d, err := duration.Parse(since)
		if err != nil {
			return PrintJSONError(err)
		}
		cutoff = time.Now().Add(-d).Unix()
	}

	entries, err := runlog.Recent(limit)
	if err != nil {
		return PrintJSONError(fmt.Errorf("runs: %w (expected at %s)", err, runlog.DBPath()))
	}

	shown := make([]runlog.Entry, 0, len(entries))
	for _, e := range entries {
		if e.Start < cutoff {
			continue
		}
		shown = append(shown, e)
	}

	if !JSON() {
		for _, e := range shown {
			status := "ok"
			if !e.Success {
				status = "failed"
			}
			when := time.Unix(e.Start, 0).Format(time.DateTime)
			fmt.Fprintf(Out(), "%s  %-8s  %-6s  %3d written  %s\n", when, e.Op, status, e.Written, e.Root)
			if e.Error != "" {
				fmt.Fprintf(Out(), "    %s\n", e.Error)
			}
		}
	}
	return PrintJSON(shown)
}
