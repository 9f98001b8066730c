/*
Copyright © 2026 The PromptLoom Authors
*/

// config.go implements the "loomgen config" command.
//
// Design: reads and writes go through the same file (~/.loomgen/config.yaml)
// with values validated before saving, so a typo never lands on disk where
// every later run would trip over it.

package cmd

import (
	"fmt"

	"github.com/promptloom/loomgen/internal/config"
	"github.com/spf13/cobra"
)

type configKV struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config [key] [value]",
		Short: "View or set config values",
		Long: `View or set config values.

  loomgen config                            # show config
  loomgen config library.dir                # show library.dir value
  loomgen config library.dir /data/prompts  # set library.dir

Configuration lives at ~/.loomgen/config.yaml.

Keys:
  library.dir   base directory for the library (absolute path)
  log.enabled   record runs in the local run log (true/false)`,
		Args: cobra.MaximumNArgs(2),
		RunE: runConfig,
	}
}

func runConfig(_ *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return PrintJSONError(fmt.Errorf("config load: %w", err))
	}

	switch len(args) {
	case 0:
		if !JSON() {
			for _, k := range config.ValidKeys() {
				v, _ := cfg.Get(k)
				fmt.Fprintf(Out(), "%s: %s\n", k, v)
			}
		}
		return PrintJSON(cfg.All())

	case 1:
		v, err := cfg.Get(args[0])
		if err != nil {
			return PrintJSONError(fmt.Errorf("config get %q: %w", args[0], err))
		}
		if !JSON() {
			fmt.Fprintln(Out(), v)
		}
		return PrintJSON(configKV{Key: args[0], Value: v})

	case 2:
		if err := cfg.Set(args[0], args[1]); err != nil {
			return PrintJSONError(fmt.Errorf("config set %q: %w", args[0], err))
		}
		if err := cfg.Save(); err != nil {
			return PrintJSONError(fmt.Errorf("config save: %w", err))
		}
		if !JSON() {
			fmt.Fprintf(Out(), "%s = %s\n", args[0], args[1])
		}
		return PrintJSON(configKV{Key: args[0], Value: args[1]})
	}
	return nil
}
