// Package runlog provides a local audit trail of loomgen runs.
// Runs are stored in ~/.loomgen/log/loomgen-log.db, one row per generate or
// check invocation, so regeneration events can be traced after the fact:
// when a library was last rebuilt, against which root, and whether it
// succeeded.
//
// # Fluent API
//
// Use the fluent builder API to record a run once its outcome is known:
//
//	runlog.Event("generate").
//		Root(lib.Root()).
//		Categories(c.Len()).
//		Written(result.Written).
//		Done(err)
//
// Logging is best-effort: a missing or broken log database never fails the
// run it records.
package runlog

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

var (
	global *Logger
	mu     sync.Mutex
)

// ErrNotOpen is returned by queries when the run log has not been opened.
var ErrNotOpen = errors.New("run log not open")

// Entry represents a single recorded run.
type Entry struct {
	Op         string `json:"op"`             // "generate" or "check"
	Root       string `json:"root,omitempty"` // resolved library root, empty for rootless ops
	Categories int    `json:"categories"`     // categories in the catalog
	Written    int    `json:"written"`        // files written, zero for validation-only ops

	// Timing
	Start int64 `json:"start"` // unix timestamp when Event() called
	End   int64 `json:"end"`   // unix timestamp when Done() called

	Success bool   `json:"success"`         // whether the run succeeded
	Error   string `json:"error,omitempty"` // error message if failed
}

// Builder constructs a run entry using a fluent API.
// Create with [Event], chain methods to set fields, then call [Builder.Done]
// to write the entry.
type Builder struct {
	entry Entry
}

// Event creates a new run entry builder for op ("generate", "check", ...).
func Event(op string) *Builder {
	return &Builder{
		entry: Entry{
			Op:    op,
			Start: time.Now().Unix(),
		},
	}
}

// Root sets the resolved library root this run wrote into. Leave unset for
// runs that never resolved a root.
func (b *Builder) Root(root string) *Builder {
	b.entry.Root = root
	return b
}

// Categories sets how many categories the catalog held.
func (b *Builder) Categories(n int) *Builder {
	b.entry.Categories = n
	return b
}

// Written sets how many files the run wrote before finishing or failing.
func (b *Builder) Written(n int) *Builder {
	b.entry.Written = n
	return b
}

// Done writes the entry, deriving success or failure from err.
//
// Example:
//
//	result, err := emit.Run(w, lib, c)
//	runlog.Event("generate").Root(lib.Root()).Written(result.Written).Done(err)
func (b *Builder) Done(err error) {
	b.entry.End = time.Now().Unix()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	Log(b.entry)
}

// Open initialises the global logger. Safe to call multiple times.
// Errors are returned but callers may choose to ignore them (best-effort logging).
func Open() error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return nil
	}

	p := dbPath()
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", p)
	if err != nil {
		return err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return err
	}

	global = &Logger{db: db}
	return nil
}

// Log writes an entry. Safe to call if logger not initialised (no-op).
func Log(e Entry) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	l.log(e)
}

// Close closes the global logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.db.Close()
		global = nil
	}
}
