// Package format provides output formatting utilities for CLI display.
//
// Centralises presentation so command implementations focus on the
// operation itself. Categories render either as a flat listing or as a
// directory tree mirroring the layout generate produces under the library
// root.
package format

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/promptloom/loomgen/internal/catalog"
)

// List prints categories one per line, tag count first for alignment.
func List(w io.Writer, categories []catalog.Category) error {
	for _, c := range categories {
		fmt.Fprintf(w, "%4d  %s\n", len(c.Tags), c.Path)
	}
	return nil
}

// Tree prints categories as the directory tree of files generate will
// write. Leaves carry their tag counts.
func Tree(w io.Writer, categories []catalog.Category) error {
	if len(categories) == 0 {
		return nil
	}

	// Build tree structure
	type node struct {
		name     string
		children map[string]*node
		tags     int
		leaf     bool
	}

	root := &node{children: make(map[string]*node)}

	for _, c := range categories {
		parts := strings.Split(c.Path, "/")
		current := root

		for i, part := range parts {
			if current.children[part] == nil {
				current.children[part] = &node{
					name:     part,
					children: make(map[string]*node),
				}
			}
			current = current.children[part]
			if i == len(parts)-1 {
				current.leaf = true
				current.tags = len(c.Tags)
			}
		}
	}

	// Print tree
	var printNode func(n *node, prefix string)
	printNode = func(n *node, prefix string) {
		// Get sorted children
		names := make([]string, 0, len(n.children))
		for name := range n.children {
			names = append(names, name)
		}
		sort.Strings(names)

		for i, name := range names {
			child := n.children[name]
			last := i == len(names)-1

			connector := "├── "
			if last {
				connector = "└── "
			}

			suffix := ""
			if child.leaf {
				suffix = fmt.Sprintf(" (%d)", child.tags)
			} else if len(child.children) > 0 {
				suffix = "/"
			}

			fmt.Fprintf(w, "%s%s%s%s\n", prefix, connector, name, suffix)

			pfx := prefix
			if last {
				pfx += "    "
			} else {
				pfx += "│   "
			}

			if len(child.children) > 0 {
				printNode(child, pfx)
			}
		}
	}

	printNode(root, "")
	return nil
}
