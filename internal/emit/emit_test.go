package emit

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptloom/loomgen/internal/catalog"
	"github.com/promptloom/loomgen/internal/library"
)

// testLibrary creates a resolvable base/PromptLoom/Library tree.
func testLibrary(t *testing.T) *library.Library {
	t.Helper()
	base := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(base, "PromptLoom", "Library"), 0755))
	lib, err := library.Resolve(base)
	require.NoError(t, err)
	return lib
}

func testCatalog(t *testing.T, categories ...catalog.Category) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(categories)
	require.NoError(t, err)
	return c
}

func manyTags(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("tag %03d", i)
	}
	return out
}

func fixDate(t *testing.T, day time.Time) {
	t.Helper()
	orig := nowFunc
	nowFunc = func() time.Time { return day }
	t.Cleanup(func() { nowFunc = orig })
}

// countFiles returns the number of regular files under dir.
func countFiles(t *testing.T, dir string) int {
	t.Helper()
	n := 0
	err := filepath.WalkDir(dir, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			n++
		}
		return nil
	})
	require.NoError(t, err)
	return n
}

func TestRunHappyPath(t *testing.T) {
	day := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	fixDate(t, day)

	lib := testLibrary(t)
	cats := []catalog.Category{
		{Path: "Composition/Camera/ShotType.txt", Tags: manyTags(catalog.MinTags)},
		{Path: "Lighting/Time/Time.txt", Tags: manyTags(catalog.MinTags + 3)},
		{Path: "Poses/Standing/Standing.txt", Tags: manyTags(catalog.MinTags)},
	}
	c := testCatalog(t, cats...)

	var out bytes.Buffer
	result, err := Run(&out, lib, c)
	require.NoError(t, err)

	assert.Equal(t, 3, result.Written)
	assert.Equal(t, lib.Root(), result.Root)
	assert.Len(t, result.Paths, 3)
	assert.Equal(t, fmt.Sprintf("Wrote 3 files under %s\n", lib.Root()), out.String())
	assert.Equal(t, 3, countFiles(t, lib.Root()))

	for _, cat := range cats {
		raw, err := os.ReadFile(lib.FilePath(cat.Path))
		require.NoError(t, err, cat.Path)
		assert.Equal(t, Content(cat, day), string(raw), cat.Path)

		lines := strings.Split(string(raw), "\n")
		assert.Equal(t, "# CHANGE LOG", lines[0])
		assert.True(t, strings.HasPrefix(lines[1], "# - 2026-03-14 | Request:"))
		assert.Equal(t, "", lines[2])
	}
}

func TestRunValidationFailureWritesNothing(t *testing.T) {
	lib := testLibrary(t)
	c := testCatalog(t,
		catalog.Category{Path: "A/ok.txt", Tags: manyTags(catalog.MinTags)},
		catalog.Category{Path: "B/thin.txt", Tags: manyTags(catalog.MinTags - 1)},
		catalog.Category{Path: "C/ok.txt", Tags: manyTags(catalog.MinTags)},
	)

	var out bytes.Buffer
	result, err := Run(&out, lib, c)
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrTagCount)
	assert.Contains(t, err.Error(), "B/thin.txt")

	// Whole-catalog abort: not even the categories listed before the bad
	// one may exist on disk.
	assert.Equal(t, 0, result.Written)
	assert.Equal(t, 0, countFiles(t, lib.Root()))
	assert.Empty(t, out.String())
}

func TestRunDuplicateTagWritesNothing(t *testing.T) {
	lib := testLibrary(t)
	tags := manyTags(catalog.MinTags)
	tags[7] = tags[3]
	c := testCatalog(t, catalog.Category{Path: "Head/Face/Eyes.txt", Tags: tags})

	_, err := Run(io.Discard, lib, c)
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrDuplicateTag)
	assert.Contains(t, err.Error(), "Head/Face/Eyes.txt")
	assert.Equal(t, 0, countFiles(t, lib.Root()))
}

func TestRunOverwrites(t *testing.T) {
	day := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	fixDate(t, day)

	lib := testLibrary(t)
	cat := catalog.Category{Path: "A/B.txt", Tags: manyTags(catalog.MinTags)}
	c := testCatalog(t, cat)

	// Seed the target with longer stale content to prove truncation.
	target := lib.FilePath(cat.Path)
	require.NoError(t, os.MkdirAll(filepath.Dir(target), 0755))
	stale := strings.Repeat("stale content that must fully disappear\n", 100)
	require.NoError(t, os.WriteFile(target, []byte(stale), 0644))

	_, err := Run(io.Discard, lib, c)
	require.NoError(t, err)

	raw, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, Content(cat, day), string(raw))
}

func TestRunIdempotent(t *testing.T) {
	lib := testLibrary(t)
	cat := catalog.Category{Path: "A/B/C.txt", Tags: manyTags(catalog.MinTags)}
	c := testCatalog(t, cat)

	fixDate(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC))
	_, err := Run(io.Discard, lib, c)
	require.NoError(t, err)
	first, err := os.ReadFile(lib.FilePath(cat.Path))
	require.NoError(t, err)

	_, err = Run(io.Discard, lib, c)
	require.NoError(t, err)
	second, err := os.ReadFile(lib.FilePath(cat.Path))
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))

	// A later calendar day may only change the dated header line.
	fixDate(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC))
	_, err = Run(io.Discard, lib, c)
	require.NoError(t, err)
	third, err := os.ReadFile(lib.FilePath(cat.Path))
	require.NoError(t, err)

	_, firstBody, _ := strings.Cut(string(first), "\n\n")
	_, thirdBody, _ := strings.Cut(string(third), "\n\n")
	assert.Equal(t, firstBody, thirdBody)
	assert.NotEqual(t, string(first), string(third))
}

func TestRunPreservesUnrelatedFiles(t *testing.T) {
	lib := testLibrary(t)
	orphan := filepath.Join(lib.Root(), "Retired", "old.txt")
	require.NoError(t, os.MkdirAll(filepath.Dir(orphan), 0755))
	require.NoError(t, os.WriteFile(orphan, []byte("left alone\n"), 0644))

	c := testCatalog(t, catalog.Category{Path: "A/B.txt", Tags: manyTags(catalog.MinTags)})
	_, err := Run(io.Discard, lib, c)
	require.NoError(t, err)

	raw, err := os.ReadFile(orphan)
	require.NoError(t, err)
	assert.Equal(t, "left alone\n", string(raw))
}

func TestRunAbortsOnWriteFailure(t *testing.T) {
	lib := testLibrary(t)

	// A regular file where a directory is needed makes the second entry
	// unwritable without any permission tricks.
	require.NoError(t, os.WriteFile(filepath.Join(lib.Root(), "Blocked"), []byte("x"), 0644))

	c := testCatalog(t,
		catalog.Category{Path: "First/one.txt", Tags: manyTags(catalog.MinTags)},
		catalog.Category{Path: "Blocked/two.txt", Tags: manyTags(catalog.MinTags)},
		catalog.Category{Path: "Last/three.txt", Tags: manyTags(catalog.MinTags)},
	)

	var out bytes.Buffer
	result, err := Run(&out, lib, c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Blocked/two.txt")

	// Earlier writes stay, later entries are never attempted, and the
	// summary line is withheld.
	assert.Equal(t, 1, result.Written)
	assert.FileExists(t, lib.FilePath("First/one.txt"))
	assert.NoFileExists(t, lib.FilePath("Last/three.txt"))
	assert.Empty(t, out.String())
}
