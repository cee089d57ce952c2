// Package main provides the CLI entry point for termlint.
package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	internalconfig "github.com/termtools/termlint/internal/config"
	"github.com/termtools/termlint/pkg/logger"
	"github.com/termtools/termlint/pkg/schema"
)

const (
	// ExitCodeClean indicates no error-severity findings.
	ExitCodeClean = 0

	// ExitCodeFindings indicates at least one error-severity diagnostic.
	ExitCodeFindings = 1

	// ExitCodeFailure indicates a usage or I/O failure.
	ExitCodeFailure = 2
)

// errFindings signals error-severity diagnostics via the exit code; the
// diagnostics themselves were already printed.
var errFindings = errors.New("problems found")

var (
	schemaPath   string
	platformFlag string
	severityFlag string
	noColorFlag  bool
	debugMode    bool
)

var rootCmd = &cobra.Command{
	Use:           "termlint",
	Short:         "Lint terminal emulator config files against a schema",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&schemaPath, "schema", "",
		"path to a schema artifact (default: embedded catalogue)")
	rootCmd.PersistentFlags().StringVar(&platformFlag, "platform", "",
		"platform tag for platform checks (linux, macos, windows)")
	rootCmd.PersistentFlags().StringVar(&severityFlag, "severity", "",
		"severity of unknown-key diagnostics (error, warning, info, hint)")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false,
		"disable colored output")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false,
		"enable debug logging to stderr")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(hoverCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	os.Exit(mainWithExitCode())
}

func mainWithExitCode() int {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errFindings) {
			return ExitCodeFindings
		}

		fmt.Fprintf(os.Stderr, "error: %v\n", err)

		return ExitCodeFailure
	}

	return ExitCodeClean
}

// newLogger builds the CLI logger from the debug flag.
//
//nolint:ireturn // logger.Logger is the package's currency
func newLogger() logger.Logger {
	return logger.NewWriterLogger(os.Stderr, debugMode)
}

// loadConfig resolves configuration with explicit CLI flags as the highest
// layer.
func loadConfig(cmd *cobra.Command) (*internalconfig.Config, error) {
	loader, err := internalconfig.NewLoader()
	if err != nil {
		return nil, err
	}

	flags := map[string]any{}

	if cmd.Flags().Changed("schema") {
		flags["schema.path"] = schemaPath
	}

	if cmd.Flags().Changed("platform") {
		flags["diagnostics.platform"] = platformFlag
	}

	if cmd.Flags().Changed("severity") {
		flags["diagnostics.unknown_key_severity"] = severityFlag
	}

	if cmd.Flags().Changed("no-color") {
		flags["output.no_color"] = noColorFlag
	}

	return loader.Load(flags)
}

// loadSchema resolves the schema from the config. A broken artifact
// degrades to the empty schema with a logged error instead of failing the
// run.
func loadSchema(cfg *internalconfig.Config, log logger.Logger) *schema.Schema {
	if cfg.Schema.Path == "" {
		return schema.Default()
	}

	sch, err := schema.LoadFile(cfg.Schema.Path)
	if err != nil {
		log.Error("failed to load schema artifact, diagnostics disabled",
			"path", cfg.Schema.Path,
			"err", err,
		)
	}

	return sch
}
