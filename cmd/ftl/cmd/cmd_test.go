package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"github.com/lus/fluent-syntax.go/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type result struct {
	stdout string
	stderr string
	err    error
}

func run(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	err := root.Execute()
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}

func TestParsePrintsJSON(t *testing.T) {
	res := run(t, "foo = Foo\n", "parse")
	require.NoError(t, res.err)

	var tree map[string]any
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &tree))
	assert.Equal(t, "Resource", tree["type"])
	assert.NotContains(t, tree, "span")

	body := tree["body"].([]any)
	require.Len(t, body, 1)
	assert.Equal(t, "Message", body[0].(map[string]any)["type"])
	assert.Empty(t, res.stderr)
}

func TestParseWithSpans(t *testing.T) {
	res := run(t, "foo = Foo\n", "parse", "--with-spans")
	require.NoError(t, res.err)

	var tree map[string]any
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &tree))
	assert.Equal(t, map[string]any{"start": float64(0), "end": float64(10)}, tree["span"])
}

func TestParseAnnotatesJunk(t *testing.T) {
	res := run(t, "broken\n", "parse")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, `"Junk"`)
	assert.Contains(t, res.stderr, "! E0003 on line 1:")

	res = run(t, "broken\n", "parse", "--silent")
	require.NoError(t, res.err)
	assert.Empty(t, res.stderr)
}

func TestFmtStdin(t *testing.T) {
	res := run(t, "foo =   Foo\nbar =\n    Bar\n", "fmt")
	require.NoError(t, res.err)
	assert.Equal(t, "foo = Foo\nbar = Bar\n", res.stdout)
}

func TestFmtDropsJunk(t *testing.T) {
	res := run(t, "foo = Foo\nbroken\n", "fmt", "--with-junk=false")
	require.NoError(t, res.err)
	assert.Equal(t, "foo = Foo\n", res.stdout)

	res = run(t, "foo = Foo\nbroken\n", "fmt")
	require.NoError(t, res.err)
	assert.Equal(t, "foo = Foo\nbroken\n", res.stdout)
}

func TestFmtWriteDirectory(t *testing.T) {
	dir := t.TempDir()
	unformatted := filepath.Join(dir, "a.ftl")
	formatted := filepath.Join(dir, "nested", "b.ftl")
	ignored := filepath.Join(dir, "c.txt")
	writeFile(t, unformatted, "foo =   Foo\n")
	writeFile(t, formatted, "bar = Bar\n")
	writeFile(t, ignored, "baz =   Baz\n")

	res := run(t, "", "fmt", "--write", dir)
	require.NoError(t, res.err)
	assert.Empty(t, res.stdout)
	assert.Contains(t, res.stderr, "a.ftl")
	assert.NotContains(t, res.stderr, "b.ftl")

	assert.Equal(t, "foo = Foo\n", readFile(t, unformatted))
	assert.Equal(t, "bar = Bar\n", readFile(t, formatted))
	assert.Equal(t, "baz =   Baz\n", readFile(t, ignored))
}

func TestFmtDiff(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.ftl")
	writeFile(t, path, "foo =   Foo\n")

	res := run(t, "", "fmt", "--diff", path)
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "--- a/"+path)
	assert.Contains(t, res.stdout, "-foo =   Foo\n")
	assert.Contains(t, res.stdout, "+foo = Foo\n")
	assert.Equal(t, "foo =   Foo\n", readFile(t, path))

	res = run(t, "", "fmt", "--diff", "--write", path)
	assert.EqualError(t, res.err, "--write and --diff cannot be combined")
}

func TestLintValid(t *testing.T) {
	res := run(t, "foo = Foo\n-term = Term\n", "lint")
	require.NoError(t, res.err)
	assert.Empty(t, res.stdout)
}

func TestLintSyntaxErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.ftl")
	writeFile(t, path, "foo = Foo\nbroken\n")

	res := run(t, "", "lint", path)
	assert.EqualError(t, res.err, "found 1 problems")
	assert.True(t, strings.HasPrefix(res.stdout, path+":\n"))
	assert.Contains(t, res.stdout, "! E0003 on line 2:")
}

func TestLintDuplicates(t *testing.T) {
	res := run(t, "foo = A\nfoo = B\n-t = T\n-t = U\n", "lint")
	assert.EqualError(t, res.err, "found 2 problems")
	assert.Contains(t, res.stdout, "! message 'foo' is already defined")
	assert.Contains(t, res.stdout, "! term 't' is already defined")
}

func TestLintReferences(t *testing.T) {
	source := "foo = Foo\nbar = { foo } { baz }\n    .title = { -brand }\n"

	res := run(t, source, "lint")
	require.NoError(t, res.err)

	res = run(t, source, "lint", "--references")
	assert.EqualError(t, res.err, "found 2 problems")
	assert.Contains(t, res.stdout, "! unknown message 'baz' on line 2")
	assert.Contains(t, res.stdout, "! unknown term '-brand' on line 3")
	assert.NotContains(t, res.stdout, "'foo'")
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ftl.yaml")
	writeFile(t, path, "with_spans: true\n")

	res := run(t, "foo = Foo\n", "--config", path, "parse")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, `"span"`)

	writeFile(t, path, "jobs: 0\n")
	res = run(t, "", "--config", path, "lint")
	assert.ErrorContains(t, res.err, "jobs must be at least 1")
}

func TestExpand(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.ftl"), "")
	writeFile(t, filepath.Join(dir, "sub", "b.ftl"), "")
	writeFile(t, filepath.Join(dir, "sub", "c.txt"), "")

	opts := &options{config: config.Default()}

	files, err := opts.expand([]string{dir})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{filepath.Join(dir, "a.ftl"), filepath.Join(dir, "sub", "b.ftl")}, files)

	files, err = opts.expand([]string{filepath.Join(dir, "sub", "*"), filepath.Join(dir, "sub", "b.ftl")})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{filepath.Join(dir, "sub", "b.ftl"), filepath.Join(dir, "sub", "c.txt")}, files)

	_, err = opts.expand([]string{filepath.Join(dir, "missing", "*.ftl")})
	assert.ErrorContains(t, err, "no files match")
}

func TestDecodeStripsByteOrderMark(t *testing.T) {
	source, err := decode(strings.NewReader("\ufefffoo = Foo\n"))
	require.NoError(t, err)
	assert.Equal(t, "foo = Foo\n", source)

	source, err = decode(strings.NewReader("foo = \ufeff\n"))
	require.NoError(t, err)
	assert.Equal(t, "foo = \ufeff\n", source)
}

func TestForEach(t *testing.T) {
	paths := []string{"a", "b", "c", "d"}
	results, err := forEach(context.Background(), paths, 2, func(_ context.Context, path string) (string, error) {
		return strings.ToUpper(path), nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, results)

	failure := errors.New("failure")
	_, err = forEach(context.Background(), paths, 1, func(_ context.Context, path string) (string, error) {
		if path == "c" {
			return "", failure
		}
		return path, nil
	})
	assert.ErrorIs(t, err, failure)
	assert.ErrorContains(t, err, "c: failure")
}
