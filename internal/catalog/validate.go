// validate.go checks catalog content against the rules the downstream
// consumer relies on.
//
// Validation runs over the whole catalog before any file is written. It
// stops at the first violation: a partially correct library on disk would
// silently desynchronize the consumer, so a bad catalog must produce nothing
// at all rather than a best-effort subset.

package catalog

// MinTags is the minimum number of tags a category must carry. The
// downstream assembler expects every list to meet this richness floor.
const MinTags = 50

// Validate checks every category in catalog order and returns a
// *ValidationError for the first rule violation found, or nil if the whole
// catalog is sound. It is a pure check with no side effects.
//
// Rules, per category:
//   - at least MinTags tags
//   - no tag repeated within the category
//
// The same tag appearing in two different categories is allowed.
func (c *Catalog) Validate() error {
	for _, cat := range c.categories {
		if len(cat.Tags) < MinTags {
			return &ValidationError{Path: cat.Path, Count: len(cat.Tags), rule: ErrTagCount}
		}
		seen := make(map[string]struct{}, len(cat.Tags))
		for _, t := range cat.Tags {
			if _, ok := seen[t]; ok {
				return &ValidationError{Path: cat.Path, Tag: t, rule: ErrDuplicateTag}
			}
			seen[t] = struct{}{}
		}
	}
	return nil
}
