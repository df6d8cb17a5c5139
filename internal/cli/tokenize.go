package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/latexmark/internal/configloader"
	"github.com/yaklabco/latexmark/internal/logging"
	"github.com/yaklabco/latexmark/pkg/batch"
	"github.com/yaklabco/latexmark/pkg/config"
	"github.com/yaklabco/latexmark/pkg/report"
	"github.com/yaklabco/latexmark/pkg/texmark"
)

// ErrFilesErrored is returned when one or more files could not be tokenized.
var ErrFilesErrored = errors.New("files errored")

type tokenizeFlags struct {
	format      string
	ignore      []string
	extensions  []string
	jobs        int
	noContext   bool
	compact     bool
	perFile     bool
	groupByFile bool
}

func newTokenizeCommand() *cobra.Command {
	var cfg config.Config
	flags := &tokenizeFlags{}

	cmd := &cobra.Command{
		Use:   "tokenize [paths...]",
		Short: "Tokenize LaTeX files and report structural marks",
		Long:  tokenizeLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokenize(cmd, args, &cfg, flags)
		},
	}

	addTokenizeFlags(cmd, flags)

	return cmd
}

const tokenizeLongDescription = `Tokenize LaTeX files and report their structural marks.

By default, tokenizes all .tex files in the current directory and
subdirectories. Specify paths to process specific files or directories.

Examples:
  latexmark tokenize                  # Tokenize current directory
  latexmark tokenize chapters/        # Tokenize a directory
  latexmark tokenize main.tex         # Tokenize a single file
  latexmark tokenize --format json    # Output as JSON
  latexmark tokenize --per-file       # One table per file (table format)`

func runTokenize(cmd *cobra.Command, args []string, cfg *config.Config, flags *tokenizeFlags) error {
	logger := logging.Default()

	// Map string flags to typed config values.
	// Only set values that were explicitly provided via CLI flags.
	if cmd.Flags().Changed("format") {
		cfg.Format = config.OutputFormat(flags.format)
	}
	if cmd.Flags().Changed("ignore") {
		cfg.Ignore = flags.ignore
	}
	if cmd.Flags().Changed("jobs") {
		cfg.Jobs = flags.jobs
	}
	if cmd.Flags().Changed("extensions") {
		cfg.Extensions = flags.extensions
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadOpts := configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cfg,
	}

	loadResult, err := configloader.Load(ctx, loadOpts)
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}

	finalCfg := loadResult.Config

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}

	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", "files", loadResult.LoadedFrom)
	}

	logger.Debug("configuration loaded",
		logging.FieldFormat, finalCfg.Format,
		logging.FieldJobs, finalCfg.Jobs,
	)

	envExtensions := toEnvExtensions(finalCfg.Environments)
	tokenizeRunner := batch.New(envExtensions)

	runOpts := batch.Options{
		Paths:        args,
		WorkingDir:   workDir,
		Extensions:   finalCfg.Extensions,
		ExcludeGlobs: finalCfg.Ignore,
		Jobs:         finalCfg.Jobs,
	}

	logger.Debug("starting tokenize run",
		"paths", runOpts.Paths,
		"working_dir", runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := tokenizeRunner.Run(ctx, runOpts)
	if err != nil {
		return errors.Join(errors.New("tokenize run failed"), err)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	format, err := report.ParseFormat(string(finalCfg.Format))
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	rep, err := report.New(report.Options{
		Writer:      cmd.OutOrStdout(),
		ErrorWriter: cmd.ErrOrStderr(),
		Format:      format,
		Color:       colorMode,
		ShowContext: !flags.noContext,
		ShowSummary: true,
		GroupByFile: flags.groupByFile,
		Compact:     flags.compact,
		PerFile:     flags.perFile,
		WorkingDir:  workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		logger.Error("report failed", "error", err)
		return fmt.Errorf("report results: %w", err)
	}

	if ExitCodeFromResult(result) != ExitSuccess {
		return ErrFilesErrored
	}

	return nil
}

// toEnvExtensions converts loaded config environments into the tokenizer's
// own extension type, keeping pkg/config free of a pkg/texmark import.
func toEnvExtensions(envs []config.EnvironmentConfig) []texmark.EnvExtension {
	if len(envs) == 0 {
		return nil
	}

	extensions := make([]texmark.EnvExtension, 0, len(envs))
	for _, env := range envs {
		kind := texmark.EnvExtensionVerbatim
		if env.Kind == config.EnvironmentTikz {
			kind = texmark.EnvExtensionTikz
		}
		extensions = append(extensions, texmark.EnvExtension{Name: env.Name, Kind: kind})
	}
	return extensions
}

func addTokenizeFlags(cmd *cobra.Command, flags *tokenizeFlags) {
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, table, json")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&flags.extensions, "extensions", nil,
		"file extensions considered LaTeX source (default .tex)")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide source line context in output")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact output format")
	cmd.Flags().BoolVar(&flags.perFile, "per-file", false, "output separate report for each file (table format)")
	cmd.Flags().BoolVar(&flags.groupByFile, "group-by-file", true, "group marks by file (text format)")
}
