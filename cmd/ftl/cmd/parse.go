package cmd

import (
	"encoding/json"
	"fmt"
	"github.com/lus/fluent-syntax.go/fluent/parser"
	"github.com/lus/fluent-syntax.go/internal/annotate"
	"github.com/spf13/cobra"
)

func newParseCommand(opts *options) *cobra.Command {
	var withSpans, silent bool

	cmd := &cobra.Command{
		Use:   "parse [files...]",
		Short: "Print the syntax tree of FTL files as JSON",
		Long: `Parses FTL files and prints their syntax trees as JSON, one document per file.
Syntax errors are printed to stderr next to the source they were found in.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("with-spans") {
				withSpans = opts.config.WithSpans
			}

			documents, err := opts.read(cmd, args, withSpans)
			if err != nil {
				return err
			}

			printer := annotate.New(opts.config.Color)
			for _, doc := range documents {
				out, err := json.MarshalIndent(doc.resource, "", "  ")
				if err != nil {
					return fmt.Errorf("%s: %w", doc.name, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))

				if silent {
					continue
				}
				// Annotations can only be located using spans
				resource := doc.resource
				if !withSpans {
					resource = parser.Parse(doc.source)
				}
				if err := printer.Resource(cmd.ErrOrStderr(), doc.source, resource); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&withSpans, "with-spans", false, "include the spans of all nodes (default from config)")
	cmd.Flags().BoolVarP(&silent, "silent", "s", false, "do not print syntax errors")
	return cmd
}
