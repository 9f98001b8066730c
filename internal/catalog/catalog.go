// Package catalog defines the category data model and the rules a catalog
// must satisfy before it may be written to disk.
//
// A catalog is assembled once per run from embedded data files and is
// immutable afterwards. It has no persistence of its own; writing files is
// the emitter's job. Keeping the data model free of I/O means the rules can
// be tested without touching the filesystem.
package catalog

import (
	"fmt"
	"io/fs"
)

// Category is one named tag list together with the relative path it
// materializes at, e.g. "Composition/Camera/ShotType.txt". Paths are
// slash-separated regardless of platform. Tag order is meaningful: it is
// preserved verbatim into the output file and defines display order in the
// downstream consumer.
type Category struct {
	Path string   `yaml:"path" json:"path"`
	Tags []string `yaml:"tags" json:"tags"`
}

// Catalog is the full ordered set of categories for a run.
type Catalog struct {
	categories []Category
	index      map[string]int
}

// New builds a catalog from categories, preserving their order.
//
// Construction rejects malformed or duplicate paths so that a built catalog
// structurally cannot map two tag lists to the same file. Tag-level rules
// are checked later by Validate, not here: construction is about shape,
// validation is about content.
func New(categories []Category) (*Catalog, error) {
	c := &Catalog{
		categories: categories,
		index:      make(map[string]int, len(categories)),
	}
	for i, cat := range categories {
		if !fs.ValidPath(cat.Path) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPath, cat.Path)
		}
		if _, ok := c.index[cat.Path]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePath, cat.Path)
		}
		c.index[cat.Path] = i
	}
	return c, nil
}

// Categories returns all categories in catalog order.
func (c *Catalog) Categories() []Category {
	return c.categories
}

// Len returns the number of categories.
func (c *Catalog) Len() int {
	return len(c.categories)
}

// TagCount returns the total number of tags across all categories.
func (c *Catalog) TagCount() int {
	n := 0
	for _, cat := range c.categories {
		n += len(cat.Tags)
	}
	return n
}

// Get returns the category at path, if present.
func (c *Catalog) Get(path string) (Category, bool) {
	i, ok := c.index[path]
	if !ok {
		return Category{}, false
	}
	return c.categories[i], true
}
