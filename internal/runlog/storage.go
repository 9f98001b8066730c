// storage.go implements SQLite persistence for the run log.
//
// Separated from runlog.go to isolate database concerns. runlog.go provides
// the fluent API for building entries, while this file handles schema and
// persistence. The root_id column carries a short hash of the root path so
// runs against the same library can be grouped without comparing full paths.
//
// Design: Errors during logging are reported once to stderr and otherwise
// ignored (best-effort). A regeneration must not fail just because its
// audit record could not be written.

package runlog

import (
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/crypto/blake2b"
	_ "modernc.org/sqlite"
)

// Logger writes run entries to a SQLite database.
type Logger struct {
	db *sql.DB
}

func (l *Logger) log(e Entry) {
	success := 0
	if e.Success {
		success = 1
	}

	var rootID *string
	if e.Root != "" {
		id := hash(e.Root)
		rootID = &id
	}

	_, err := l.db.Exec(`
		INSERT INTO runs (start, end, op, root, root_id, categories, written, success, error)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Start, e.End, e.Op, nilIfEmpty(e.Root), rootID,
		nilIfZero(e.Categories), nilIfZero(e.Written),
		success, nilIfEmpty(e.Error),
	)
	if err != nil {
		// Best-effort logging: don't break the run, but report the failure
		_, _ = fmt.Fprintf(os.Stderr, "loomgen: run log write failed: %v\n", err)
	}
}

// Recent returns up to limit entries, newest first. The run log must be
// open.
func Recent(limit int) ([]Entry, error) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return nil, ErrNotOpen
	}

	rows, err := l.db.Query(`
		SELECT start, end, op, root, categories, written, success, error
		FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var root, errMsg sql.NullString
		var categories, written sql.NullInt64
		var success int
		if err := rows.Scan(&e.Start, &e.End, &e.Op, &root, &categories, &written, &success, &errMsg); err != nil {
			return nil, err
		}
		e.Root = root.String
		e.Categories = int(categories.Int64)
		e.Written = int(written.Int64)
		e.Success = success == 1
		e.Error = errMsg.String
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// dbPathFunc is the function that returns the database path.
// Tests can override this to use a temp directory.
var dbPathFunc = defaultDBPath

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fall back to current directory if home cannot be determined.
		// This allows logging to work in unusual environments (containers, etc.)
		// rather than silently failing.
		return filepath.Join(".loomgen", "log", "loomgen-log.db")
	}
	return filepath.Join(home, ".loomgen", "log", "loomgen-log.db")
}

func dbPath() string {
	return dbPathFunc()
}

// DBPath returns the path to the run log database.
func DBPath() string {
	return dbPath()
}

// hash creates a short identifier from the root path, enabling grouping of
// runs by library.
func hash(s string) string {
	h, err := blake2b.New(8, nil) // 64-bit = 16 hex chars
	if err != nil {
		// Should never happen with nil key, but don't silently ignore
		panic("blake2b.New failed: " + err.Error())
	}
	h.Write([]byte(s))
	return hex.EncodeToString(h.Sum(nil))
}

// migrate creates the runs table if it doesn't exist. Safe for concurrent access.
func migrate(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS runs (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			start      INTEGER NOT NULL,
			end        INTEGER NOT NULL,
			op         TEXT NOT NULL,
			root       TEXT,
			root_id    TEXT,
			categories INTEGER,
			written    INTEGER,
			success    INTEGER NOT NULL,
			error      TEXT
		);
		CREATE INDEX IF NOT EXISTS idx_runs_start ON runs(start);
		CREATE INDEX IF NOT EXISTS idx_runs_root_id ON runs(root_id);
	`)
	return err
}

// nilIfEmpty returns nil for empty strings, reducing NULL checks in queries.
func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// nilIfZero returns nil for zero values, indicating "not applicable" in queries.
func nilIfZero(n int) *int {
	if n == 0 {
		return nil
	}
	return &n
}
