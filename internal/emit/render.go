// render.go composes file content.
//
// Rendering is pure: given a date it always produces the same bytes for the
// same category. Runs on the same calendar day are therefore byte-identical
// and diffable, and the cat command can show exactly what generate will
// write without touching the filesystem.

package emit

import (
	"fmt"
	"strings"
	"time"

	"github.com/promptloom/loomgen/internal/catalog"
)

// Every generated file opens with a change log naming the regeneration
// event. The downstream assembler skips marker lines when it reads lists.
const (
	commentMarker = "#"
	requestNote   = "Regenerate prompt lists"
	changeNote    = "Initial content."
)

// ChangeLog renders the provenance header for a run dated day. One dated
// entry per full regeneration, calendar date only.
func ChangeLog(day time.Time) string {
	var b strings.Builder
	b.WriteString(commentMarker + " CHANGE LOG\n")
	fmt.Fprintf(&b, "%s - %s | Request: %s | %s\n",
		commentMarker, day.Format(time.DateOnly), requestNote, changeNote)
	return b.String()
}

// Content renders the full file body for a category: change log, one blank
// separator line, then the tags one per line in catalog order, ending with
// a single trailing newline.
func Content(c catalog.Category, day time.Time) string {
	var b strings.Builder
	b.WriteString(ChangeLog(day))
	b.WriteString("\n")
	for _, t := range c.Tags {
		b.WriteString(t)
		b.WriteString("\n")
	}
	return b.String()
}
