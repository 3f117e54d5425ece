// Package cli implements the curricula command-line interface.
//
// The commands load a curriculum catalog (CSV or JSON), run the analysis
// pipeline and present the results:
//
//   - metrics: per-course delay, blocking, complexity and centrality
//   - schedule: a term-by-term plan, optionally browsed interactively
//   - report: Markdown, HTML, PDF, JSON or metrics CSV reports
//   - graph: the prerequisite graph as DOT, SVG, PDF or PNG
//   - export: the catalog or requisite graph as JSON
//   - config: show and edit the configuration file
//   - serve: the HTTP API
//
// All commands support --verbose (-v) for debug-level logging. One logger is
// built by the root command and handed to every component explicitly.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/curricula/pkg/config"
	"github.com/matzehuels/curricula/pkg/observability"
	"github.com/matzehuels/curricula/pkg/pipeline"
	"github.com/matzehuels/curricula/pkg/schedule"
)

// appName is the application name used for display.
const appName = "curricula"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Out receives command output; logs go to the logger.
	Out io.Writer

	// Config is loaded by the root command before any subcommand runs.
	Config config.Config

	configPath string
	logFile    io.Closer
}

// New creates a new CLI instance logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Out:    os.Stdout,
		Config: config.Defaults(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// Close releases the log file opened for logging.file, if any.
func (c *CLI) Close() error {
	if c.logFile == nil {
		return nil
	}
	return c.logFile.Close()
}

// =============================================================================
// Paths
// =============================================================================

// configFile returns the --config path, or the XDG default.
func (c *CLI) configFile() (string, error) {
	if c.configPath != "" {
		return c.configPath, nil
	}
	return config.Path()
}

// =============================================================================
// Pipeline
// =============================================================================

// analyzeFlags are the flags shared by every command that analyzes a catalog.
type analyzeFlags struct {
	plan        string
	termCredits float64
}

// register adds the shared flags to cmd along with catalog and plan
// completions.
func (f *analyzeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.plan, "plan", "", "plan to analyze (default: the catalog's first plan)")
	cmd.Flags().Float64Var(&f.termCredits, "term-credits", 0, "target credits per term (default from config)")

	cmd.ValidArgsFunction = completeCatalog
	_ = cmd.RegisterFlagCompletionFunc("plan", completePlans)
}

// options builds pipeline options for the catalog at path.
func (c *CLI) options(path string, f analyzeFlags, skipSchedule bool) pipeline.Options {
	cfg := c.Config
	return pipeline.Options{
		Path:         path,
		PlanName:     f.plan,
		TermCredits:  f.termCredits,
		SkipSchedule: skipSchedule,
		Timeout:      cfg.Analysis.CentralityTimeout.Duration,
		ScheduleFor: func(quarter bool) schedule.Config {
			return cfg.ScheduleConfig(quarter, f.termCredits)
		},
	}
}

// analyze runs the pipeline behind a spinner showing the current stage. The
// spinner is skipped in verbose mode so it does not interleave with debug
// logs.
func (c *CLI) analyze(ctx context.Context, opts pipeline.Options) (*pipeline.Result, error) {
	logHooks := observability.NewLogHooks(c.Logger)
	if c.Logger.GetLevel() <= log.DebugLevel {
		return pipeline.NewRunner(c.Logger, logHooks).Analyze(ctx, opts)
	}

	spinner := newSpinnerWithContext(ctx, os.Stderr, "Analyzing "+opts.Path+"...")
	runner := pipeline.NewRunner(c.Logger, observability.Multi{logHooks, spinnerHooks{spinner: spinner}})
	spinner.Start()
	result, err := runner.Analyze(ctx, opts)
	spinner.Stop()
	return result, err
}
