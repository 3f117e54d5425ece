package cli

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/matzehuels/curricula/pkg/config"
)

// configCommand creates the config command for inspecting and editing the
// configuration file.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show and edit the configuration",
		Long: `Show and edit the configuration file.

Keys are dotted section.field names such as scheduler.target_credits.
Use unset to restore a single key to its default, reset to restore all of them.
Values set on the command line (--verbose, --timeout) are not saved.`,
	}

	cmd.AddCommand(c.configShowCommand())
	cmd.AddCommand(c.configGetCommand())
	cmd.AddCommand(c.configSetCommand())
	cmd.AddCommand(c.configUnsetCommand())
	cmd.AddCommand(c.configResetCommand())
	cmd.AddCommand(c.configPathCommand())

	return cmd
}

func (c *CLI) configShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return toml.NewEncoder(c.Out).Encode(c.Config)
		},
	}
}

func (c *CLI) configGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "get <key>",
		Short:     "Print one configuration value",
		Args:      cobra.ExactArgs(1),
		ValidArgs: config.Keys(),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := c.Config.Get(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(c.Out, v)
			return nil
		},
	}
}

func (c *CLI) configSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set one configuration value and save the file",
		Example: `  curricula config set scheduler.target_credits 16
  curricula config set analysis.centrality_timeout 1m
  curricula config set logging.file ~/.local/state/curricula.log`,
		Args: cobra.ExactArgs(2),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return config.Keys(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.configFile()
			if err != nil {
				return err
			}
			// Start from the file, not the effective config, so command-line
			// overrides are not persisted.
			cfg, err := config.LoadFileOrDefault(path)
			if err != nil {
				cfg = config.Defaults()
			}
			if err := cfg.Set(args[0], args[1]); err != nil {
				return err
			}
			if err := cfg.Save(path); err != nil {
				return err
			}
			printSuccess(c.Out, "Set %s = %s", args[0], args[1])
			printFile(c.Out, path)
			printNextStep(c.Out, "Show all values", appName+" config show")
			return nil
		},
	}
}

func (c *CLI) configUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "unset <key>",
		Short:     "Restore one configuration value to its default and save the file",
		Example:   `  curricula config unset scheduler.target_credits`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: config.Keys(),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.configFile()
			if err != nil {
				return err
			}
			cfg, err := config.LoadFileOrDefault(path)
			if err != nil {
				cfg = config.Defaults()
			}
			if err := cfg.Unset(args[0]); err != nil {
				return err
			}
			if err := cfg.Save(path); err != nil {
				return err
			}
			v, _ := cfg.Get(args[0])
			printSuccess(c.Out, "Unset %s (default %s)", args[0], v)
			printFile(c.Out, path)
			printNextStep(c.Out, "Show all values", appName+" config show")
			return nil
		},
	}
}

func (c *CLI) configResetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Overwrite the configuration file with the defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.configFile()
			if err != nil {
				return err
			}
			if err := config.Reset(path); err != nil {
				return err
			}
			c.Config = config.Defaults()
			printSuccess(c.Out, "Reset configuration")
			printFile(c.Out, path)
			printNextStep(c.Out, "Change a value", appName+" config set <key> <value>")
			return nil
		},
	}
}

func (c *CLI) configPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.configFile()
			if err != nil {
				return err
			}
			fmt.Fprintln(c.Out, path)
			return nil
		},
	}
}

// isConfigCommand reports whether cmd is the config command or one of its
// subcommands.
func isConfigCommand(cmd *cobra.Command) bool {
	return strings.HasPrefix(cmd.CommandPath(), appName+" config")
}
