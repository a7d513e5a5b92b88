package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/simonhull/firebird-suite/conflict/filesystem"
	"github.com/simonhull/firebird-suite/conflict/generator"
	"github.com/simonhull/firebird-suite/conflict/internal/config"
	"github.com/simonhull/firebird-suite/conflict/output"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// DiffCmd creates the 'diff' command, a read-only preview of the files
// 'apply' would ask about.
func DiffCmd() *cobra.Command {
	var contextLines int
	var lineNums bool

	cmd := &cobra.Command{
		Use:   "diff <source> [dest]",
		Short: "Show unified diffs for files that would conflict",
		Long: `Show a unified diff for every file under <source> whose destination
exists with different content. Nothing is written.

Examples:
  conflict diff ./generated ./app
  conflict diff ./generated ./app --context 5 --line-numbers`,
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
			if cfg.Dest == "" {
				output.Error(generator.ErrMissingDest.Error())
				exit(1)
				return
			}

			n, err := diff(cmd.Context(), args[0], cfg, cmd.OutOrStdout(), &generator.DiffOptions{
				ContextLines: contextLines,
				TabWidth:     4,
				ShowLineNums: lineNums,
			})
			if err != nil {
				output.Error(err.Error())
				exit(1)
				return
			}

			if n == 0 {
				output.Info("No conflicting files")
				return
			}
			output.Info(fmt.Sprintf("%d conflicting files", n))
		},
	}

	cmd.Flags().IntVarP(&contextLines, "context", "C", 3, "Unchanged lines shown around each change")
	cmd.Flags().BoolVar(&lineNums, "line-numbers", false, "Show line numbers")
	cmd.Flags().Bool("include-hidden", false, "Include hidden files and directories")
	cmd.Flags().StringSlice("ignore", nil, "File patterns to leave out (e.g. *.tmp)")

	return cmd
}

// diff prints one unified diff per conflicting file and returns how many
// files conflict.
func diff(ctx context.Context, src string, cfg *config.Config, out io.Writer, opts *generator.DiffOptions) (int, error) {
	fsys := afero.NewOsFs()

	source, err := filesystem.NewDirSource(fsys, src, filesystem.SourceOptions{
		Walk: filesystem.WalkOptions{
			IgnorePatterns: cfg.Ignore,
			IncludeHidden:  cfg.IncludeHidden,
		},
	})
	if err != nil {
		return 0, err
	}

	probe := filesystem.NewProbe(fsys)
	gen := generator.NewDiffGenerator()
	conflicts := 0

	for {
		f, err := source.Next(ctx)
		if errors.Is(err, io.EOF) {
			return conflicts, nil
		}
		if err != nil {
			return conflicts, err
		}
		if f.IsDir() {
			continue
		}

		path := filepath.Join(cfg.Dest, f.Relative)
		st, err := probe.Stat(path)
		if err != nil {
			return conflicts, fmt.Errorf("failed to stat %s: %w", path, err)
		}
		if !st.Exists || st.IsDir {
			continue
		}

		old, err := probe.ReadText(path)
		if err != nil {
			return conflicts, fmt.Errorf("%w: %s: %w", generator.ErrReadDest, f.Relative, err)
		}
		if old == f.String() {
			continue
		}

		conflicts++
		d := gen.GenerateDiff(path, filepath.Join(src, f.Relative), []byte(old), f.Contents, opts)
		if d == "" {
			d = fmt.Sprintf("%s: line endings differ\n", f.Relative)
		}
		fmt.Fprintln(out, d)
	}
}
