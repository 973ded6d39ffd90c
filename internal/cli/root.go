// Package cli implements the goskema4j command line.
package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/reoring/goskema4j/i18n"
	"github.com/reoring/goskema4j/internal/config"
	"github.com/reoring/goskema4j/internal/logger"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose  bool
	Format   string // "json" | "text"
	Lang     string // "en" | "ja"
	FailFast bool
	MaxBytes int64
	LogJSON  bool
	LogLevel string
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command. cfg supplies flag defaults; nil
// means config.Default.
func NewRootCommand(cfg *config.Config) *cobra.Command {
	if cfg == nil {
		d := config.Default()
		cfg = &d
	}
	opts := &RootOptions{LogJSON: cfg.Log.JSON, LogLevel: cfg.Log.Level}

	cmd := &cobra.Command{
		Use:   "goskema4j",
		Short: "Validate neo4j temporal and spatial values",
		Long: `Normalize and validate Date, DateTime, LocalDateTime and Point values
read from JSON or YAML documents.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", cfg.Format, "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Lang, "lang", cfg.Lang, "message language (en|ja)")
	cmd.PersistentFlags().BoolVar(&opts.FailFast, "fail-fast", cfg.FailFast, "stop at the first issue of each value")
	cmd.PersistentFlags().Int64Var(&opts.MaxBytes, "max-bytes", cfg.MaxBytes, "maximum input size, 0 for unlimited")

	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewSchemaCommand(opts))

	return cmd
}

func (o *RootOptions) setup(cmd *cobra.Command) error {
	if !slices.Contains(ValidFormats, o.Format) {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", o.Format, ValidFormats))
	}
	if !slices.Contains(i18n.Languages(), o.Lang) {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid lang %q: must be one of %v", o.Lang, i18n.Languages()))
	}
	i18n.SetLanguage(o.Lang)

	level, _ := logger.ParseLevel(o.LogLevel)
	if o.Verbose {
		level = logger.DebugLevel
	}
	log := logger.New(&logger.Config{Level: level, Output: cmd.ErrOrStderr(), JSON: o.LogJSON})
	cmd.SetContext(logger.WithLogger(cmd.Context(), log))
	return nil
}
