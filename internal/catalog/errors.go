// errors.go defines the error values the catalog package reports.
//
// Construction failures (bad or duplicate paths) are plain sentinels wrapped
// with detail. Validation failures carry structured fields because callers
// print diagnostics naming the offending category, so a typed error is worth
// the extra weight there.

package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPath indicates a category path that is empty, rooted, or
	// contains traversal elements.
	ErrInvalidPath = errors.New("invalid category path")
	// ErrDuplicatePath indicates two categories mapping to the same file.
	ErrDuplicatePath = errors.New("duplicate category path")
	// ErrTagCount indicates a category below the minimum tag count.
	ErrTagCount = errors.New("tag count below minimum")
	// ErrDuplicateTag indicates a tag repeated within one category.
	ErrDuplicateTag = errors.New("duplicate tag")
)

// ValidationError reports the first category that violated a catalog rule.
// Count is set for ErrTagCount violations, Tag for ErrDuplicateTag.
type ValidationError struct {
	Path  string
	Count int
	Tag   string
	rule  error
}

func (e *ValidationError) Error() string {
	switch e.rule {
	case ErrTagCount:
		return fmt.Sprintf("%s: %d tags, minimum is %d", e.Path, e.Count, MinTags)
	case ErrDuplicateTag:
		return fmt.Sprintf("%s: duplicate tag %q", e.Path, e.Tag)
	}
	return fmt.Sprintf("%s: %v", e.Path, e.rule)
}

// Unwrap exposes the violated rule so callers can match with errors.Is.
func (e *ValidationError) Unwrap() error {
	return e.rule
}
