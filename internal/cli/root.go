package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootOptions holds global flags and shared state for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"

	Config Config
	Logger *zap.Logger // set in PersistentPreRunE unless injected
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the matrixfmt CLI.
func NewRootCommand(cfg Config) *cobra.Command {
	return newRootCommand(&RootOptions{Config: cfg})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "matrixfmt",
		Short:         "Build, validate and render row-major matrices",
		Long:          "matrixfmt builds a matrix from flags or a YAML document, validates its shape and prints it row by row.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			if opts.Logger != nil {
				return nil
			}
			level := opts.Config.LogLevel
			if opts.Verbose {
				level = "debug"
			}
			log, err := NewLogger(level)
			if err != nil {
				return WrapExitError(ExitCommandError, "logger", err)
			}
			opts.Logger = log
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging on stderr")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewRenderCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))
	cmd.AddCommand(NewMulCommand(opts))

	return cmd
}

// formatter returns the output formatter bound to cmd's stdout.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{Format: o.Format, Writer: cmd.OutOrStdout()}
}
