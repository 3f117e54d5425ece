package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/curricula/pkg/buildinfo"
	"github.com/matzehuels/curricula/pkg/config"
	cerrors "github.com/matzehuels/curricula/pkg/errors"
)

// RootCommand creates the root cobra command with all subcommands registered.
//
// Before any subcommand runs, the configuration file is loaded (from
// --config or the XDG default), command-line overrides are applied and the
// logger's level and destination are set from the result.
func (c *CLI) RootCommand() *cobra.Command {
	var (
		verbose bool
		timeout time.Duration
	)

	root := &cobra.Command{
		Use:           appName,
		Short:         "Curricula analyzes prerequisite structure and plans terms",
		Long:          `Curricula computes curriculum analytics (delay, blocking factor, structural complexity and centrality) over a course prerequisite graph, traces the critical path and schedules courses into terms.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var o config.Overrides
			if cmd.Flags().Changed("verbose") {
				o.Verbose = &verbose
			}
			if cmd.Flags().Changed("timeout") {
				o.Timeout = &timeout
			}
			err := c.loadConfig(o)
			if err != nil && isConfigCommand(cmd) {
				// config must stay usable to repair a broken file.
				printWarning(cmd.ErrOrStderr(), "%v", err)
				c.Config = config.Defaults()
				return nil
			}
			return err
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/curricula/config.toml)")
	root.PersistentFlags().DurationVar(&timeout, "timeout", config.DefaultCentralityTimeout, "how long to wait for metrics before giving up")

	root.AddCommand(c.metricsCommand())
	root.AddCommand(c.scheduleCommand())
	root.AddCommand(c.reportCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the configuration file, applies o and reconfigures the
// logger. A missing file leaves the defaults in place.
func (c *CLI) loadConfig(o config.Overrides) error {
	path, err := c.configFile()
	if err != nil {
		c.Logger.Debug("no config directory", "err", err)
		c.Config = config.Defaults()
	} else {
		cfg, err := config.LoadFileOrDefault(path)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		c.Config = cfg
		c.Logger.Debug("loaded config", "path", path)
	}
	c.Config.Apply(o)

	level, err := logLevel(c.Config.Logging.Level, c.Config.Logging.Verbose)
	if err != nil {
		return cerrors.Wrap(cerrors.ErrCodeInvalidConfig, err, "logging.level")
	}
	c.SetLogLevel(level)

	if file := c.Config.Logging.File; file != "" && c.logFile == nil {
		f, err := openLogFile(file)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		c.logFile = f
		c.Logger.SetOutput(f)
	}
	return nil
}
