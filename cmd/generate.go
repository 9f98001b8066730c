/*
Copyright © 2026 The PromptLoom Authors
*/

// generate.go implements the "loomgen generate" command.
//
// Design: validation happens inside emit.Run so nothing can reach the write
// loop with an unchecked catalog. The run log records the attempt whether
// or not a root was resolved; a run that never found its root still shows
// up when someone asks why no files appeared.

package cmd

import (
	"fmt"
	"io"

	"github.com/promptloom/loomgen/internal/catalog"
	"github.com/promptloom/loomgen/internal/config"
	"github.com/promptloom/loomgen/internal/emit"
	"github.com/promptloom/loomgen/internal/library"
	"github.com/promptloom/loomgen/internal/runlog"
	"github.com/spf13/cobra"
)

func newGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Validate the catalog and write every category file",
		Long: `Validate the embedded catalog and write one file per category under
<base>/PromptLoom/Library. The base directory comes from --dir, the
LOOMGEN_DIR environment variable, or the library.dir config key, in that
order. The root must already exist; loomgen never creates it.

Every file is fully replaced on each run. Files at paths no longer in the
catalog are left alone.`,
		Args: cobra.NoArgs,
		RunE: runGenerate,
	}
}

func runGenerate(_ *cobra.Command, _ []string) error {
	c, err := catalog.Load()
	if err != nil {
		runlog.Event("generate").Done(err)
		return PrintJSONError(fmt.Errorf("generate: loading catalog: %w", err))
	}

	lib, err := resolveLibrary()
	if err != nil {
		runlog.Event("generate").Categories(c.Len()).Done(err)
		return PrintJSONError(fmt.Errorf("generate: %w", err))
	}

	w := Out()
	if JSON() {
		w = io.Discard
	}

	result, err := emit.Run(w, lib, c)

	runlog.Event("generate").
		Root(lib.Root()).
		Categories(c.Len()).
		Written(result.Written).
		Done(err)

	if err != nil {
		return PrintJSONError(fmt.Errorf("generate: %w", err))
	}
	return PrintJSON(result)
}

// resolveLibrary locates the library root from the configured base
// directory. Flag and environment take precedence; the config file is
// consulted only when neither is set, so a malformed config surfaces as
// its own error instead of silently redirecting output.
func resolveLibrary() (*library.Library, error) {
	base := Dir()
	if base == "" {
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}
		base = cfg.LibraryDir()
	}
	return library.Resolve(base)
}
