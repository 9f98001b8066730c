// Package emit materializes a validated catalog as files under a library
// root.
//
// Emission is strictly ordered: the whole catalog is validated first, then
// every entry is written in catalog order. A validation failure leaves the
// filesystem untouched. A write failure aborts the remainder of the run and
// leaves earlier files in place; the tool is a one-shot regenerator, so the
// recovery path is fixing the fault and rerunning, not rollback.
package emit

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/promptloom/loomgen/internal/catalog"
	"github.com/promptloom/loomgen/internal/library"
	"github.com/promptloom/loomgen/internal/progress"
)

// nowFunc returns the time that dates the change log header.
// Overridable for tests.
var nowFunc = time.Now

// Result contains the outcome of an emit run.
type Result struct {
	Written int      `json:"written"`
	Root    string   `json:"root"`
	Paths   []string `json:"paths"`
}

// Run validates the catalog and writes every category file under lib's
// root, printing the one-line run summary to w on success.
//
// Validation covers the whole catalog before the first write, so a rejected
// catalog produces no files at all. All files written by one run carry the
// same header date even if the run crosses midnight.
func Run(w io.Writer, lib *library.Library, c *catalog.Catalog) (Result, error) {
	result := Result{Root: lib.Root()}

	if err := c.Validate(); err != nil {
		return result, err
	}

	root, err := os.OpenRoot(lib.Root())
	if err != nil {
		return result, fmt.Errorf("opening library root: %w", err)
	}
	defer root.Close()

	day := nowFunc()
	prog := progress.New("Writing", c.Len())
	defer prog.Done()

	for _, cat := range c.Categories() {
		if err := writeFileInRoot(root, cat.Path, Content(cat, day)); err != nil {
			return result, err
		}
		prog.Step()
		result.Paths = append(result.Paths, lib.FilePath(cat.Path))
		result.Written++
	}

	fmt.Fprintf(w, "Wrote %d files under %s\n", result.Written, lib.Root())
	return result, nil
}

// writeFileInRoot writes content at the slash-separated rel path inside
// root, creating missing parent directories first. Writes are truncate and
// replace: whatever was at the path before is discarded. os.Root keeps
// every operation scoped beneath the library root.
func writeFileInRoot(root *os.Root, rel, content string) error {
	name := filepath.FromSlash(rel)

	if dir := filepath.Dir(name); dir != "." {
		if err := mkdirAllInRoot(root, dir); err != nil {
			return fmt.Errorf("creating directory for %s: %w", rel, err)
		}
	}

	f, err := root.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("creating %s: %w", rel, err)
	}
	defer f.Close()

	if _, err := f.WriteString(content); err != nil {
		return fmt.Errorf("writing %s: %w", rel, err)
	}
	return nil
}

// mkdirAllInRoot creates dir and all parents within root. Segments that
// already exist are fine; sibling content is never touched.
func mkdirAllInRoot(root *os.Root, dir string) error {
	parts := strings.Split(filepath.Clean(dir), string(filepath.Separator))
	for i := range parts {
		d := filepath.Join(parts[:i+1]...)
		if err := root.Mkdir(d, 0755); err != nil && !errors.Is(err, fs.ErrExist) {
			return err
		}
	}
	return nil
}
