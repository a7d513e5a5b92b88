package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/simonhull/firebird-suite/conflict/filesystem"
	"github.com/simonhull/firebird-suite/conflict/generator"
	"github.com/simonhull/firebird-suite/conflict/input"
	"github.com/simonhull/firebird-suite/conflict/internal/config"
	"github.com/simonhull/firebird-suite/conflict/output"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// ApplyCmd creates the 'apply' command, which copies a staging directory
// into the destination and resolves overwrite conflicts interactively.
func ApplyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply <source> [dest]",
		Short: "Copy files into dest, asking before overwriting changed files",
		Long: `Copy every file under <source> into [dest].

New files and directories are written without asking. Files whose content
is identical to the destination are skipped. For every other file you are
asked what to do:

  y) replace
  n) do not replace
  a) replace this and all others
  x) abort
  d) show the differences between the old and the new

Nothing is written until every file has been decided. Aborting leaves the
destination untouched and exits with status 0.

Examples:
  conflict apply ./generated ./app
  conflict apply ./generated ./app --ui menu --pager
  conflict apply ./generated --dry-run     # dest from .conflict.yml`,
		Args: cobra.RangeArgs(1, 2),
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := loadConfig(cmd)
			if err != nil {
				output.Error(err.Error())
				exit(1)
				return
			}
			if len(args) > 1 {
				cfg.Dest = args[1]
			}

			quiet, _ := cmd.Flags().GetBool("quiet")
			output.Verbose(fmt.Sprintf("Applying %s to %s (ui=%s, dry-run=%v)", args[0], cfg.Dest, cfg.UI, cfg.DryRun))

			sum, err := apply(cmd.Context(), args[0], cfg, cmd.OutOrStdout(), quiet)
			switch {
			case errors.Is(err, generator.ErrAborted):
				exit(0)
				return
			case err != nil:
				output.Error(err.Error())
				exit(1)
				return
			}

			output.Success(summaryLine(sum, cfg.DryRun))
		},
	}

	addRunFlags(cmd)

	return cmd
}

// addRunFlags registers the flags mapped onto config keys.
func addRunFlags(cmd *cobra.Command) {
	def := config.Default()
	f := cmd.Flags()
	f.String("ui", def.UI, "Prompt style: expand, menu or select")
	f.Bool("dry-run", def.DryRun, "Decide every file but write nothing")
	f.Bool("pager", def.Pager, "Show long diffs in a scrollable pager")
	f.Int("pager-threshold", def.PagerThreshold, "Diffs longer than this many lines use the pager")
	f.Bool("streams", def.Streams, "Read source files as streams (disables the diff action)")
	f.Bool("include-hidden", def.IncludeHidden, "Include hidden files and directories")
	f.StringSlice("ignore", def.Ignore, "File patterns to leave out (e.g. *.tmp)")
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	file, _ := cmd.Flags().GetString("config")
	return config.Load(config.LoadOptions{File: file, Flags: cmd.Flags()})
}

// apply wires the source, resolver and sink for one run.
func apply(ctx context.Context, src string, cfg *config.Config, out io.Writer, quiet bool) (generator.Summary, error) {
	fsys := afero.NewOsFs()

	source, err := filesystem.NewDirSource(fsys, src, filesystem.SourceOptions{
		Walk: filesystem.WalkOptions{
			IgnorePatterns: cfg.Ignore,
			IncludeHidden:  cfg.IncludeHidden,
		},
		Streams: cfg.Streams,
	})
	if err != nil {
		return generator.Summary{}, err
	}
	output.Verbose(fmt.Sprintf("Found %d candidates in %s", source.Len(), src))

	prompter, err := input.New(cfg.UI, fsys, cfg.Dest, stdin, out)
	if err != nil {
		return generator.Summary{}, err
	}

	logger := output.NewLogger(out)
	logger.SetQuiet(quiet)

	opts := &generator.Options{
		Probe:    filesystem.NewProbe(fsys),
		Prompter: prompter,
		Logger:   logger,
	}
	if cfg.Pager && input.IsTerminal(stdin) {
		opts.Pager = input.NewPager(stdin, out).Show
		opts.PagerThreshold = cfg.PagerThreshold
	}

	resolver, err := generator.NewResolver(cfg.Dest, opts)
	if err != nil {
		return generator.Summary{}, err
	}

	sink := generator.NewOperationSink(generator.ExecuteOptions{
		DryRun: cfg.DryRun,
		Writer: out,
	})

	return generator.Run(ctx, resolver, source, sink)
}

func summaryLine(sum generator.Summary, dryRun bool) string {
	if dryRun {
		return fmt.Sprintf("Dry run: %d of %d files would be written, %d skipped", sum.Emitted, sum.Handled, sum.Dropped)
	}
	return fmt.Sprintf("Done: %d of %d files written, %d skipped", sum.Emitted, sum.Handled, sum.Dropped)
}
