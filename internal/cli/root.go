package cli

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/viant/afs"

	"github.com/roach88/labelset/internal/config"
	"github.com/roach88/labelset/internal/labels"
)

// RootOptions holds the flags of the build-labels command.
type RootOptions struct {
	IncludeOptional bool
}

// NewRootCommand creates the build-labels command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "build-labels",
		Short: "Build .github/labels.json from src/labels sources",
		Long: `Merge label definitions from src/labels into .github/labels.json.

By default only core.json is merged. With --include-optional the optional
scopes-optional.json is merged on top; labels with the same name are
replaced by the later source. A missing or broken optional source is
reported as a warning and skipped.

Locations can be overridden with LABELS_ROOT, LABELS_CORE_SOURCE,
LABELS_OPTIONAL_SOURCE and LABELS_OUTPUT.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(opts, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.IncludeOptional, "include-optional", false, "also merge the optional scope labels")

	return cmd
}

func runBuild(opts *RootOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
	}

	cfg, err := config.Load()
	if err != nil {
		return outputBuildError(formatter, WrapExitError(ExitCommandError, ErrCodeConfig, err))
	}

	logger := log.NewWithOptions(formatter.GetErrWriter(), log.Options{Prefix: "build-labels"})
	builder := labels.NewBuilder(afs.New(), logger)

	report, err := builder.Run(cmd.Context(), cfg.Paths(), opts.IncludeOptional)
	if err != nil {
		return outputBuildError(formatter, classifyError(err))
	}

	return formatter.Success(fmt.Sprintf("Wrote %d labels to %s", report.Count, report.OutputPath))
}

// outputBuildError prints a fatal error and returns it for exit-code mapping.
func outputBuildError(formatter *OutputFormatter, exitErr *ExitError) error {
	_ = formatter.Error(exitErr.Message, exitErr.Err.Error())
	return exitErr
}
