package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/tcheck/internal/catalog"
	"github.com/roach88/tcheck/internal/document"
	"github.com/roach88/tcheck/internal/store"
	"github.com/roach88/tcheck/pkg/check"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions
	InputFormat string // format of stdin input
}

// CheckResult is the JSON payload of an accepted document.
type CheckResult struct {
	Check string `json:"check"`
	File  string `json:"file"`
	Pass  bool   `json:"pass"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check <check> <file>",
		Short: "Validate a document against a catalogue check",
		Long: `Validate a JSON, YAML or CUE document against a named check.

The format is inferred from the file extension. Use "-" to read the
document from stdin, with --input-format naming its format.

Exit codes:
  0 - The document passed
  1 - The check rejected the document
  2 - Command error (unknown check, unreadable document, etc.)

Examples:
  tcheck check table ./save.json
  tcheck check Vector3 - --input-format yaml
  tcheck check integer ./count.cue --format json`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(opts, args[0], args[1], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.InputFormat, "input-format", "json", "format of stdin input (json|yaml|cue)")

	return cmd
}

func runCheck(opts *CheckOptions, name, file string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	chk, err := opts.catalog().MustLookup(name)
	if err != nil {
		details := map[string]any{"check": name}
		if errors.Is(err, catalog.ErrUnknown) {
			return formatter.Fail(ExitCommandError, ErrCodeUnknownCheck, err.Error(), details)
		}
		return formatter.Fail(ExitCommandError, ErrCodeGeneric, err.Error(), details)
	}

	v, err := readDocument(file, opts.InputFormat, cmd.InOrStdin())
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeDocument, err.Error(), map[string]any{"file": file})
	}
	formatter.VerboseLog("Decoded %s as %T", file, v)

	if err := chk.Validate(v); err != nil {
		failure, _ := check.AsFailure(err)
		if formatter.IsJSON() {
			return formatter.Fail(ExitFailure, ErrCodeRejected, err.Error(), store.RecordFailure(failure))
		}
		fmt.Fprintf(formatter.Writer, "✗ %s: %s\n", file, err)
		return NewExitError(ExitFailure, fmt.Sprintf("%s rejected by %s", file, name))
	}

	if formatter.IsJSON() {
		return formatter.Success(CheckResult{Check: name, File: file, Pass: true})
	}
	fmt.Fprintf(formatter.Writer, "✓ %s: %s\n", file, name)
	return nil
}

// readDocument decodes a file, or stdin when file is "-".
func readDocument(file, inputFormat string, stdin io.Reader) (any, error) {
	if file != "-" {
		return document.DecodeFile(file)
	}

	format, err := document.ParseFormat(inputFormat)
	if err != nil {
		return nil, err
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return document.Decode(data, format)
}
