package cmd

import (
	"context"
	"fmt"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/lus/fluent-syntax.go/fluent/parser"
	"github.com/lus/fluent-syntax.go/fluent/parser/ast"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// stdinName is the name of the document read from standard input
const stdinName = "<stdin>"

// document is a source file together with its syntax tree
type document struct {
	name     string
	source   string
	resource *ast.Resource
}

// expand turns command line arguments into file paths.
// Directories are searched with the include patterns; arguments naming no file are treated as globs.
func (opts *options) expand(args []string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)
	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, arg := range args {
		info, err := os.Stat(arg)
		switch {
		case err == nil && info.IsDir():
			for _, pattern := range opts.config.Include {
				matches, err := doublestar.Glob(os.DirFS(arg), pattern, doublestar.WithFilesOnly())
				if err != nil {
					return nil, fmt.Errorf("expanding %q in %s: %w", pattern, arg, err)
				}
				for _, match := range matches {
					add(filepath.Join(arg, filepath.FromSlash(match)))
				}
			}
		case err == nil:
			add(arg)
		default:
			matches, globErr := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
			if globErr != nil {
				return nil, fmt.Errorf("invalid pattern %q: %w", arg, globErr)
			}
			if len(matches) == 0 {
				return nil, fmt.Errorf("no files match %s: %w", arg, err)
			}
			for _, match := range matches {
				add(match)
			}
		}
	}
	return files, nil
}

// read loads and parses the documents named by args, or standard input if there are none
func (opts *options) read(cmd *cobra.Command, args []string, withSpans bool) ([]*document, error) {
	if len(args) == 0 {
		source, err := decode(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("reading standard input: %w", err)
		}
		return []*document{opts.parse(stdinName, source, withSpans)}, nil
	}

	files, err := opts.expand(args)
	if err != nil {
		return nil, err
	}
	opts.logger.Debug("expanded arguments", slog.Int("files", len(files)))

	return forEach(cmd.Context(), files, opts.config.Jobs, func(_ context.Context, path string) (*document, error) {
		file, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer file.Close()

		source, err := decode(file)
		if err != nil {
			return nil, err
		}
		return opts.parse(path, source, withSpans), nil
	})
}

func (opts *options) parse(name, source string, withSpans bool) *document {
	p := parser.New(parser.WithSpans(withSpans), parser.WithLogger(opts.logger.With(slog.String("file", name))))
	return &document{name: name, source: source, resource: p.Parse(source)}
}

// decode reads UTF-8 text, dropping a leading byte order mark
func decode(r io.Reader) (string, error) {
	content, err := io.ReadAll(transform.NewReader(r, unicode.BOMOverride(transform.Nop)))
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// forEach calls fn for every path with at most jobs calls running at the same time.
// The results keep the order of the paths; the first error cancels the remaining calls.
func forEach[T any](ctx context.Context, paths []string, jobs int, fn func(context.Context, string) (T, error)) ([]T, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	results := make([]T, len(paths))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(jobs)
	for i, path := range paths {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := fn(ctx, path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = result
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
