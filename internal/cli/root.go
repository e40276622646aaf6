package cli

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/roach88/tcheck/internal/catalog"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"

	// Catalog resolves check names. Programs embedding the CLI register
	// their composite checks here before executing the command.
	Catalog *catalog.Catalog
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command over the default catalogue.
func NewRootCommand() *cobra.Command {
	return NewRootCommandWithCatalog(catalog.Default())
}

// NewRootCommandWithCatalog creates the root command over cat.
func NewRootCommandWithCatalog(cat *catalog.Catalog) *cobra.Command {
	opts := &RootOptions{Catalog: cat}

	cmd := &cobra.Command{
		Use:   "tcheck",
		Short: "tcheck - runtime checks for untyped values",
		Long: `Validate JSON, YAML and CUE documents against named runtime checks.

Checks are composed in Go and registered in a catalogue by name. The CLI
applies them to documents, runs conformance scenarios, and keeps a ledger
of scenario runs.`,
		SilenceUsage:  true,
		SilenceErrors: true, // main reports errors once
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Validate format flag
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			if opts.Verbose {
				slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	// Add subcommands
	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewTestCommand(opts))
	cmd.AddCommand(NewCatalogCommand(opts))
	cmd.AddCommand(NewHistoryCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}

func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}
}

func (o *RootOptions) catalog() *catalog.Catalog {
	if o.Catalog == nil {
		o.Catalog = catalog.Default()
	}
	return o.Catalog
}
