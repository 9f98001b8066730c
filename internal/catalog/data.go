// data.go loads the embedded category data.
//
// The tag lists live in data/*.yaml, one file per top-level group, each a
// sequence of {path, tags} entries. Files load in sorted filename order and
// entries keep their in-file order, so a given build of the binary always
// produces the same catalog order. The sequence form keeps tag order
// explicit and lets New detect paths repeated across files.

package catalog

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFS embed.FS

// Load builds the shipped catalog from the embedded data files.
func Load() (*Catalog, error) {
	entries, err := fs.ReadDir(dataFS, "data")
	if err != nil {
		return nil, fmt.Errorf("read data directory: %w", err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	var categories []Category
	for _, entry := range entries {
		raw, err := dataFS.ReadFile("data/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", entry.Name(), err)
		}
		var group []Category
		dec := yaml.NewDecoder(bytes.NewReader(raw))
		dec.KnownFields(true)
		if err := dec.Decode(&group); err != nil {
			return nil, fmt.Errorf("decode %s: %w", entry.Name(), err)
		}
		categories = append(categories, group...)
	}

	return New(categories)
}
