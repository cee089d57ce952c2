package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/semaphore"

	"github.com/termtools/termlint/internal/engine"
	"github.com/termtools/termlint/internal/render"
	"github.com/termtools/termlint/pkg/diag"
	"github.com/termtools/termlint/pkg/parser"
	"github.com/termtools/termlint/pkg/schema"
)

// ErrNoFiles is returned when the arguments match no files.
var ErrNoFiles = errors.New("no files matched")

// defaultTerminalWidth is used when stdout is not a terminal.
const defaultTerminalWidth = 80

var checkCmd = &cobra.Command{
	Use:   "check <file|glob>...",
	Short: "Validate config files and report diagnostics",
	Long: `Validate one or more terminal config files against the schema.

Arguments may be file paths or doublestar globs, e.g. '**/*.conf'.
Exits 1 when any error-severity diagnostic is reported.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

// fileResult carries one file's outcome back from the bounded workers.
type fileResult struct {
	path  string
	lines []parser.Line
	diags []diag.Diagnostic
	err   error
}

func runCheck(cmd *cobra.Command, args []string) error {
	log := newLogger()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	sch := loadSchema(cfg, log)
	opts := cfg.EngineOptions()

	paths, err := expandArgs(args)
	if err != nil {
		return err
	}

	log.Debug("checking files", "count", len(paths), "schema_keys", sch.Len())

	results := checkFiles(cmd.Context(), sch, opts, paths)

	theme := render.NewTheme(render.ColorEnabled(cfg.Output.NoColor))
	width := render.TerminalWidth(os.Stdout, defaultTerminalWidth)
	renderer := render.NewRenderer(cmd.OutOrStdout(), theme, width)

	var total diag.Count

	for _, res := range results {
		if res.err != nil {
			return res.err
		}

		renderer.Print(res.path, res.lines, res.diags)

		count := diag.CountBySeverity(res.diags)
		total.Errors += count.Errors
		total.Warnings += count.Warnings
		total.Infos += count.Infos
		total.Hints += count.Hints
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", render.Summary(total))

	if total.Errors > 0 {
		return errFindings
	}

	return nil
}

// checkFiles validates all paths concurrently, bounded by the CPU count,
// and returns results in input order.
func checkFiles(
	ctx context.Context,
	sch *schema.Schema,
	opts engine.Options,
	paths []string,
) []fileResult {
	if ctx == nil {
		ctx = context.Background()
	}

	eng := engine.New(sch, nil)
	sem := semaphore.NewWeighted(int64(runtime.NumCPU()))
	results := make([]fileResult, len(paths))

	var wg sync.WaitGroup

	for i, path := range paths {
		if err := sem.Acquire(ctx, 1); err != nil {
			results[i] = fileResult{path: path, err: err}
			continue
		}

		wg.Add(1)

		go func(i int, path string) {
			defer wg.Done()
			defer sem.Release(1)

			results[i] = checkOne(eng, opts, path)
		}(i, path)
	}

	wg.Wait()

	return results
}

func checkOne(eng *engine.Engine, opts engine.Options, path string) fileResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return fileResult{path: path, err: errors.Wrapf(err, "reading %s", path)}
	}

	text := string(data)

	return fileResult{
		path:  path,
		lines: parser.ParseDocument(text),
		diags: eng.ValidateDocument(text, opts),
	}
}

// expandArgs resolves glob patterns to file paths, passing plain paths
// through untouched.
func expandArgs(args []string) ([]string, error) {
	paths := make([]string, 0, len(args))

	for _, arg := range args {
		if !strings.ContainsAny(arg, "*?[{") {
			paths = append(paths, arg)
			continue
		}

		matches, err := doublestar.FilepathGlob(arg)
		if err != nil {
			return nil, errors.Wrapf(err, "bad pattern %q", arg)
		}

		paths = append(paths, matches...)
	}

	if len(paths) == 0 {
		return nil, errors.Wrapf(ErrNoFiles, "%s", strings.Join(args, " "))
	}

	return paths, nil
}
