package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/subsave/internal/config"
	"github.com/roach88/subsave/internal/store"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	File       string // backing file path
	ConfigPath string

	logger *slog.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the subsave CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "subsave",
		Short: "subsave - subscribe and save records",
		Long:  "Create, read and update subscription records kept in a flat, human-auditable file.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVarP(&opts.File, "file", "f", config.DefaultFile, "path to the subscriptions file")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to a YAML config file")

	// Add subcommands
	cmd.AddCommand(NewCreateCommand(opts))
	cmd.AddCommand(NewGetCommand(opts))
	cmd.AddCommand(NewUpdateCommand(opts))
	cmd.AddCommand(NewListCommand(opts))

	return cmd
}

// resolve merges the config file under the flags and sets up logging.
// Precedence, lowest first: defaults, config file, SUBSAVE_* environment,
// flags given on the command line.
func (o *RootOptions) resolve(cmd *cobra.Command) error {
	cfg := config.Default()
	if o.ConfigPath != "" {
		loaded, err := config.Load(o.ConfigPath)
		if err != nil {
			return exitError(ExitCommandError, "failed to load config", err)
		}
		cfg = loaded
	}
	cfg, err := config.ApplyEnv(cfg)
	if err != nil {
		return exitError(ExitCommandError, "failed to load config", err)
	}

	flags := cmd.Flags()
	if !flags.Changed("file") {
		o.File = cfg.File
	}
	if !flags.Changed("format") {
		o.Format = cfg.Format
	}

	// Validate format flag
	if !isValidFormat(o.Format) {
		return fmt.Errorf("invalid format %q: must be one of %v", o.Format, ValidFormats)
	}

	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return exitError(ExitCommandError, "failed to load config", err)
	}
	if o.Verbose {
		level = slog.LevelDebug
	}
	o.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
	}))
	o.logger.Debug("options resolved", "file", o.File, "format", o.Format, "config", o.ConfigPath)
	return nil
}

// newStore opens the store named by the resolved options.
func (o *RootOptions) newStore() *store.FileStore {
	if o.logger == nil {
		return store.New(o.File)
	}
	return store.New(o.File, store.WithLogger(o.logger))
}

// newFormatter builds the output formatter for a subcommand.
func (o *RootOptions) newFormatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:  o.Format,
		Writer:  cmd.OutOrStdout(),
		File:    o.File,
		Verbose: o.Verbose,
	}
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
