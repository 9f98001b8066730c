// Package progress prints a live write counter to stderr during emission.
// Output goes to stderr to keep stdout clean for piping, and TTY detection
// keeps scripted runs silent.
package progress

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// minItems is the smallest total worth a live counter. Below it the run
// finishes faster than the counter can be read.
const minItems = 5

// Meter counts completed steps of a fixed-size operation.
type Meter struct {
	w       io.Writer
	verb    string
	total   int
	current int
	live    bool
}

// New creates a meter for total steps that writes to stderr. The counter
// only renders when stderr is a terminal and total is at least minItems.
func New(verb string, total int) *Meter {
	return &Meter{
		w:     os.Stderr,
		verb:  verb,
		total: total,
		live:  term.IsTerminal(int(os.Stderr.Fd())) && total >= minItems,
	}
}

// Step records one completed step and redraws the counter in place.
func (m *Meter) Step() {
	m.current++
	if !m.live {
		return
	}
	fmt.Fprintf(m.w, "\r%s %d/%d", m.verb, m.current, m.total)
}

// Done clears the counter line to make way for final output.
func (m *Meter) Done() {
	if !m.live {
		return
	}
	fmt.Fprintf(m.w, "\r%s\r", "                                        ")
}
