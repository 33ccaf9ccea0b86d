// Package cmd implements the ftl command line tool.
package cmd

import (
	"github.com/lus/fluent-syntax.go/internal/config"
	"github.com/spf13/cobra"
	"log/slog"
	"os"
)

// options are shared by all commands; config is populated before any command runs
type options struct {
	configFile string
	verbose    bool
	jobs       int
	color      bool

	config *config.Config
	logger *slog.Logger
}

// NewRootCommand creates the ftl command tree
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "ftl",
		Short: "Parse, format and lint Fluent translation files",
		Long: `ftl works with files written in the Fluent translation syntax (FTL).

Files may be given as paths, doublestar globs or directories; directories are
searched using the include patterns of the configuration. Without any file,
the source is read from standard input.

Examples:
  ftl parse --with-spans en-US/main.ftl
  ftl fmt --write 'locales/**/*.ftl'
  ftl lint locales`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "config file (default: .ftl.toml or .ftl.yaml in the working directory)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output to stderr")
	flags.IntVarP(&opts.jobs, "jobs", "j", 0, "number of files processed at the same time (default from config)")
	flags.BoolVar(&opts.color, "color", false, "style diagnostics for terminals")

	root.AddCommand(newParseCommand(opts))
	root.AddCommand(newFmtCommand(opts))
	root.AddCommand(newLintCommand(opts))
	return root
}

// Execute runs the ftl command with the process arguments
func Execute() error {
	return NewRootCommand().Execute()
}

// load sets up logging and reads the configuration; flags given on the command line win over the file
func (opts *options) load(cmd *cobra.Command) error {
	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	opts.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	path := opts.configFile
	if path == "" {
		if wd, err := os.Getwd(); err == nil {
			path = config.Find(wd)
		}
	}

	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path, config.FormatAuto)
		if err != nil {
			return err
		}
		cfg = loaded
		opts.logger.Debug("loaded config", slog.String("path", path))
	}

	if cmd.Flags().Changed("jobs") {
		cfg.Jobs = opts.jobs
	}
	if cmd.Flags().Changed("color") {
		cfg.Color = opts.color
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	opts.config = cfg
	return nil
}
