package cmd

import (
	"context"
	"fmt"
	"github.com/lus/fluent-syntax.go/fluent/serializer"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"
	"log/slog"
	"os"
)

func newFmtCommand(opts *options) *cobra.Command {
	var write, diff, withJunk bool

	cmd := &cobra.Command{
		Use:   "fmt [files...]",
		Short: "Rewrite FTL files in their canonical form",
		Long: `Formats FTL files by parsing and serializing them again.
By default the formatted source is printed; --write replaces changed files
and --diff prints what would change.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if write && diff {
				return fmt.Errorf("--write and --diff cannot be combined")
			}
			if !cmd.Flags().Changed("with-junk") {
				withJunk = opts.config.WithJunk
			}

			documents, err := opts.read(cmd, args, false)
			if err != nil {
				return err
			}

			formatted := make([]string, len(documents))
			for i, doc := range documents {
				formatted[i] = serializer.Serialize(doc.resource, serializer.WithJunk(withJunk))
			}

			out := cmd.OutOrStdout()
			switch {
			case diff:
				for i, doc := range documents {
					if formatted[i] == doc.source {
						continue
					}
					unified, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
						A:        difflib.SplitLines(doc.source),
						B:        difflib.SplitLines(formatted[i]),
						FromFile: "a/" + doc.name,
						ToFile:   "b/" + doc.name,
						Context:  3,
					})
					if err != nil {
						return fmt.Errorf("%s: %w", doc.name, err)
					}
					fmt.Fprint(out, unified)
				}
			case write:
				changed := make(map[string]string)
				var paths []string
				for i, doc := range documents {
					if doc.name == stdinName {
						fmt.Fprint(out, formatted[i])
						continue
					}
					if formatted[i] != doc.source {
						changed[doc.name] = formatted[i]
						paths = append(paths, doc.name)
					}
				}
				_, err := forEach(cmd.Context(), paths, opts.config.Jobs, func(_ context.Context, path string) (struct{}, error) {
					info, err := os.Stat(path)
					if err != nil {
						return struct{}{}, err
					}
					return struct{}{}, os.WriteFile(path, []byte(changed[path]), info.Mode().Perm())
				})
				if err != nil {
					return err
				}
				for _, path := range paths {
					opts.logger.Info("formatted", slog.String("file", path))
				}
			default:
				for i := range documents {
					fmt.Fprint(out, formatted[i])
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the result back to the files")
	cmd.Flags().BoolVarP(&diff, "diff", "d", false, "print a unified diff of the changes")
	cmd.Flags().BoolVar(&withJunk, "with-junk", true, "keep entries with syntax errors verbatim (default from config)")
	return cmd
}
