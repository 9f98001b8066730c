// Testing Strategy Design Decision:
//
// The cmd/ package contains CLI integration tests that exercise the full
// stack: command parsing -> catalog -> validation -> emission -> filesystem.
//
// Each test gets a fresh temporary HOME so config and the run log stay
// isolated from the developer's real ~/.loomgen. The library base directory
// is passed per invocation (--dir or LOOMGEN_DIR) to keep resolution
// visible in the test itself.

package cmd

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

// buildBinary compiles the loomgen binary once for all tests.
func buildBinary(t *testing.T) string {
	t.Helper()

	buildOnce.Do(func() {
		tmpDir, err := os.MkdirTemp("", "loomgen-test-bin-*")
		if err != nil {
			buildErr = err
			return
		}

		binaryName := "loomgen"
		if os.PathSeparator == '\\' {
			binaryName = "loomgen.exe"
		}
		binaryPath = filepath.Join(tmpDir, binaryName)

		// Find project root (parent of cmd/)
		wd := mustGetwd()
		projectRoot := filepath.Dir(wd)

		cmd := exec.Command("go", "build", "-o", binaryPath, ".")
		cmd.Dir = projectRoot
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = &buildError{err: err, output: string(out)}
			return
		}
	})

	if buildErr != nil {
		t.Fatalf("failed to build binary: %v", buildErr)
	}
	return binaryPath
}

type buildError struct {
	err    error
	output string
}

func (e *buildError) Error() string {
	return e.err.Error() + "\n" + e.output
}

func mustGetwd() string {
	dir, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	return dir
}

// testEnv holds test environment state.
type testEnv struct {
	t      *testing.T
	binary string
	home   string // temporary HOME, isolates config and run log
	base   string // library base dir containing PromptLoom/Library

	// extraEnv is appended to every invocation's environment.
	extraEnv []string
}

// newTestEnv creates a temporary HOME and a library base directory with an
// existing PromptLoom/Library root.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		t:      t,
		binary: buildBinary(t),
		home:   t.TempDir(),
		base:   t.TempDir(),
	}
	require.NoError(t, os.MkdirAll(env.root(), 0755))
	return env
}

// root returns the library root under the test base directory.
func (e *testEnv) root() string {
	return filepath.Join(e.base, "PromptLoom", "Library")
}

// run executes loomgen with the given args and returns combined output.
func (e *testEnv) run(args ...string) string {
	e.t.Helper()
	out, err := e.runErr(args...)
	if err != nil {
		e.t.Fatalf("loomgen %v failed: %v\noutput: %s", args, err, out)
	}
	return out
}

// runErr executes loomgen and returns combined output and any error.
func (e *testEnv) runErr(args ...string) (string, error) {
	e.t.Helper()

	cmd := exec.Command(e.binary, args...)
	cmd.Dir = e.home
	cmd.Env = append(os.Environ(), "HOME="+e.home, "USERPROFILE="+e.home)
	cmd.Env = append(cmd.Env, e.extraEnv...)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// contains checks if output contains expected string.
func (e *testEnv) contains(output, expected string) {
	e.t.Helper()
	assert.Contains(e.t, output, expected)
}

// equals checks if output equals expected string (trimmed).
func (e *testEnv) equals(output, expected string) {
	e.t.Helper()
	assert.Equal(e.t, strings.TrimSpace(expected), strings.TrimSpace(output))
}

// readLibraryFile reads a generated file under the test library root.
func (e *testEnv) readLibraryFile(rel string) string {
	e.t.Helper()
	data, err := os.ReadFile(filepath.Join(e.root(), filepath.FromSlash(rel)))
	require.NoError(e.t, err)
	return string(data)
}

// countLibraryFiles counts regular files under the test library root.
func (e *testEnv) countLibraryFiles() int {
	e.t.Helper()
	n := 0
	err := filepath.WalkDir(e.root(), func(_ string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			n++
		}
		return nil
	})
	require.NoError(e.t, err)
	return n
}

// A category path known to ship in the embedded catalog, with one of its
// tags. Used to anchor assertions without hardcoding the whole data set.
const (
	knownCategory = "Composition/Camera/ShotType.txt"
	knownTag      = "close-up"
)
