package cli

import (
	"fmt"
	"path"

	"github.com/spf13/cobra"
)

// CatalogOptions holds flags for the catalog command.
type CatalogOptions struct {
	*RootOptions
	Filter string // name filter (glob pattern)
}

// NewCatalogCommand creates the catalog command.
func NewCatalogCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CatalogOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the checks available by name",
		Long: `List the names of every catalogue check, sorted.

Examples:
  tcheck catalog
  tcheck catalog --filter "Vector*"
  tcheck catalog --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalog(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Filter, "filter", "", "filter names by glob pattern")

	return cmd
}

func runCatalog(opts *CatalogOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	names := []string{}
	for _, name := range opts.catalog().Names() {
		if opts.Filter != "" {
			matched, err := path.Match(opts.Filter, name)
			if err != nil {
				return formatter.Fail(ExitCommandError, ErrCodeGeneric, fmt.Sprintf("invalid filter pattern: %v", err), nil)
			}
			if !matched {
				continue
			}
		}
		names = append(names, name)
	}

	if formatter.IsJSON() {
		return formatter.Success(names)
	}
	for _, name := range names {
		fmt.Fprintln(formatter.Writer, name)
	}
	return nil
}
