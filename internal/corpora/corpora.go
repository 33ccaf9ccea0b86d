// Package corpora runs table-driven tests whose table lives in the file system:
// every file with a given extension below a test data directory is one test case,
// and the outputs of the case are compared with sibling files.
package corpora

import (
	"errors"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// Corpus describes a directory of test cases
type Corpus struct {
	// Root is the test data directory, relative to the file calling Run
	Root string

	// Refresh names an environment variable holding a doublestar glob.
	// Outputs of the cases matching it are rewritten instead of compared.
	Refresh string

	// Extension is the file extension (without a dot) of the files defining a case, e.g. "ftl"
	Extension string

	// Outputs are stored next to a case file, named after it with the output's extension appended.
	// A missing output file is equivalent to an empty one.
	Outputs []Output

	// Test runs a single case and returns one result per output
	Test func(t *testing.T, path, text string) []string
}

// Output describes one output of a test case
type Output struct {
	Extension string
	// Compare defaults to Diff
	Compare Compare
}

// Compare compares the result of a test case with the stored output.
// It returns an empty string if they match and a description of the mismatch otherwise.
type Compare func(got, want string) string

// Run executes every case of the corpus as a subtest
func (corpus Corpus) Run(t *testing.T) {
	testDir := callerDir()
	root := filepath.Join(testDir, corpus.Root)

	var cases []string
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.IsDir() && strings.TrimPrefix(filepath.Ext(path), ".") == corpus.Extension {
			cases = append(cases, path)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("corpora: walking %q: %v", root, err)
	}
	if len(cases) == 0 {
		t.Fatalf("corpora: no *.%s files found in %q", corpus.Extension, root)
	}

	var refresh string
	if corpus.Refresh != "" {
		refresh = os.Getenv(corpus.Refresh)
		if refresh != "" && !doublestar.ValidatePattern(refresh) {
			t.Fatalf("corpora: invalid glob in %s: %q", corpus.Refresh, refresh)
		}
	}
	if refresh != "" {
		t.Logf("corpora: refreshing outputs because %s=%s", corpus.Refresh, refresh)
	}

	for _, path := range cases {
		name, _ := filepath.Rel(testDir, path)
		name = filepath.ToSlash(name)

		t.Run(name, func(t *testing.T) {
			content, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("corpora: reading %q: %v", path, err)
			}
			results := corpus.Test(t, name, string(content))
			if len(results) != len(corpus.Outputs) {
				t.Fatalf("corpora: test returned %d results for %d outputs", len(results), len(corpus.Outputs))
			}

			matched, _ := doublestar.Match(refresh, name)
			for i, output := range corpus.Outputs {
				outputPath := path + "." + output.Extension
				if refresh != "" && matched {
					if err := write(outputPath, results[i]); err != nil {
						t.Errorf("corpora: refreshing %q: %v", outputPath, err)
					}
					continue
				}

				want, err := os.ReadFile(outputPath)
				if err != nil && !errors.Is(err, os.ErrNotExist) {
					t.Errorf("corpora: reading %q: %v", outputPath, err)
					continue
				}
				compare := output.Compare
				if compare == nil {
					compare = Diff
				}
				if mismatch := compare(results[i], string(want)); mismatch != "" {
					t.Errorf("output mismatch for %q:\n%s", outputPath, mismatch)
				}
			}
		})
	}
}

// write stores an output; empty outputs are represented by the absence of the file
func write(path, content string) error {
	if content == "" {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
		return nil
	}
	return os.WriteFile(path, []byte(content), 0o644)
}

// Diff compares two strings byte by byte and describes a mismatch as a unified diff
func Diff(got, want string) string {
	if got == want {
		return ""
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}
	return diff
}

func callerDir() string {
	// Skip callerDir and Run
	_, file, _, ok := runtime.Caller(2)
	if !ok {
		panic("corpora: could not determine the directory of the calling test")
	}
	return filepath.Dir(file)
}
