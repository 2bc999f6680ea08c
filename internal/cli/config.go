package cli

import (
	"encoding/json"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/bundlecheck/internal/config"
	"github.com/matzehuels/bundlecheck/pkg/errors"
)

// statsOptionsCommand prints the webpack stats options the check needs.
func (c *CLI) statsOptionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats-options",
		Short: "Print the webpack stats options the check needs",
		Long: `Print the stats options, as JSON, that webpack needs to emit a module
list the check can read. Paste them into the "stats" field of the webpack
config or pass them to stats.toJson().

A stats_options table in .bundlecheck.toml replaces the defaults.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(cfg.StatsOptionsOrDefault())
		},
	}
}

// configCommand creates the config command with init and show subcommands.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the project configuration",
	}
	cmd.AddCommand(c.configInitCommand())
	cmd.AddCommand(c.configShowCommand())
	return cmd
}

func (c *CLI) configInitCommand() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default " + config.FileName,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := c.projectRoot()
			if err != nil {
				return errors.Wrap(errors.ErrCodeInvalidPath, err, "resolve project root")
			}
			path := filepath.Join(root, config.FileName)
			if c.configFile != "" {
				path = c.configFile
			}
			if err := config.WriteDefault(path, force); err != nil {
				return err
			}
			w := cmd.ErrOrStderr()
			printSuccess(w, "Wrote default configuration")
			printFile(w, path)
			printNextStep(w, "Show the effective settings", appName+" config show")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	return cmd
}

func (c *CLI) configShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as TOML",
		Long: `Print the configuration after applying defaults, the config file and
BUNDLECHECK_* environment variables.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := c.projectRoot()
			if err != nil {
				return errors.Wrap(errors.ErrCodeInvalidPath, err, "resolve project root")
			}
			cfg, path, err := config.Load(config.LoadOptions{Dir: root, File: c.configFile})
			if err != nil {
				return err
			}
			if path == "" {
				printInfo(cmd.ErrOrStderr(), "No %s found, showing defaults", config.FileName)
			} else {
				printTitle(cmd.ErrOrStderr(), path)
			}
			return cfg.Encode(cmd.OutOrStdout())
		},
	}
}

// loadConfig loads the configuration for the project root.
func (c *CLI) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	root, err := c.projectRoot()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "resolve project root")
	}
	cfg, _, err := config.Load(config.LoadOptions{Dir: root, File: c.configFile, Flags: cmd.Flags()})
	return cfg, err
}
