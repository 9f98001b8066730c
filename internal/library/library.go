// Package library locates the output tree that category files are written
// into.
//
// The root is never created by this tool: the downstream prompt assembler
// owns the directory layout and an absent root almost always means the tool
// is pointed at the wrong machine or user profile. Failing the precondition
// loudly beats silently materializing a library nobody will read.
package library

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// The fixed subpath under the configured base directory. The downstream
// assembler reads from exactly this location.
const (
	appDir = "PromptLoom"
	libDir = "Library"
)

// ErrNoRoot indicates the resolved root does not exist or is not a
// directory. It is a precondition failure: nothing has been written when it
// is returned.
var ErrNoRoot = errors.New("library root not found")

// Library is a resolved, verified output root.
type Library struct {
	root string
}

// Resolve joins base with the fixed PromptLoom/Library subpath and verifies
// the result is an existing directory.
func Resolve(base string) (*Library, error) {
	root := filepath.Join(base, appDir, libDir)

	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNoRoot, root)
		}
		return nil, fmt.Errorf("stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrNoRoot, root)
	}

	return &Library{root: root}, nil
}

// Root returns the resolved root directory.
func (l *Library) Root() string {
	return l.root
}

// FilePath returns the platform path for a category's slash-separated
// relative path, e.g. "A/B/C.txt" under root /lib becomes /lib/A/B/C.txt.
func (l *Library) FilePath(rel string) string {
	return filepath.Join(l.root, filepath.FromSlash(rel))
}
