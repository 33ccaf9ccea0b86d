package cmd

import (
	"errors"
	"fmt"
	"github.com/lus/fluent-syntax.go/fluent"
	"github.com/lus/fluent-syntax.go/fluent/parser"
	"github.com/lus/fluent-syntax.go/fluent/parser/ast"
	"github.com/lus/fluent-syntax.go/fluent/visitor"
	"github.com/lus/fluent-syntax.go/internal/annotate"
	"github.com/spf13/cobra"
	"log/slog"
)

func newLintCommand(opts *options) *cobra.Command {
	var references bool

	cmd := &cobra.Command{
		Use:   "lint [files...]",
		Short: "Report syntax errors and duplicate definitions",
		Long: `Checks FTL files for syntax errors and messages or terms defined more than once.
With --references, references to messages and terms not defined in the same file are reported too.
The command fails if any problem was found.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			documents, err := opts.read(cmd, args, true)
			if err != nil {
				return err
			}

			printer := annotate.New(opts.config.Color)
			out := cmd.OutOrStdout()
			total := 0
			for _, doc := range documents {
				problems := lint(doc, references)
				count := len(problems)
				for _, entry := range doc.resource.Body {
					if junk, ok := entry.(*ast.Junk); ok {
						count += len(junk.Annotations)
					}
				}
				if count == 0 {
					continue
				}
				total += count

				fmt.Fprintf(out, "%s:\n", doc.name)
				if err := printer.Resource(out, doc.source, doc.resource); err != nil {
					return err
				}
				for _, problem := range problems {
					fmt.Fprintf(out, "\n! %s\n", problem)
				}
				fmt.Fprintln(out)
			}

			opts.logger.Debug("linted", slog.Int("files", len(documents)), slog.Int("problems", total))
			if total > 0 {
				return fmt.Errorf("found %d problems", total)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&references, "references", "r", false, "report references to messages and terms not defined in the same file")
	return cmd
}

// lint returns the problems of a document other than its syntax errors
func lint(doc *document, references bool) []string {
	resource, errs := fluent.FromAST(doc.resource)

	var problems []string
	for _, err := range errs {
		var syntaxErr *parser.Error
		if errors.As(err, &syntaxErr) {
			continue
		}
		problems = append(problems, err.Error())
	}
	if !references {
		return problems
	}

	visitor.Inspect(doc.resource, func(node ast.Node) bool {
		switch ref := node.(type) {
		case *ast.MessageReference:
			if resource.Message(ref.ID.Name) == nil {
				problems = append(problems, unresolved(doc.source, "message", ref.ID.Name, ref.Span))
			}
		case *ast.TermReference:
			if resource.Term(ref.ID.Name) == nil {
				problems = append(problems, unresolved(doc.source, "term", "-"+ref.ID.Name, ref.Span))
			}
		case *ast.Junk:
			return false
		}
		return true
	})
	return problems
}

func unresolved(source, kind, name string, span *ast.Span) string {
	if span == nil {
		return fmt.Sprintf("unknown %s '%s'", kind, name)
	}
	return fmt.Sprintf("unknown %s '%s' on line %d", kind, name, parser.LineOffset(source, span.Start)+1)
}
