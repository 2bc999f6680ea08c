package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/bundlecheck/pkg/buildinfo"
	"github.com/matzehuels/bundlecheck/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "bundlecheck"

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

	dir        string // project root (--dir)
	configFile string // explicit config file (--config)
	verbose    bool   // debug logging (--verbose)
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RegisterHooks routes check and build events to the logger. Per-module
// decisions are logged at debug level, so they only show with --verbose.
func (c *CLI) RegisterHooks() {
	h := &logHooks{logger: c.Logger}
	observability.SetCheckHooks(h)
	observability.SetBuildHooks(h)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "bundlecheck compares a webpack bundle against package.json",
		Long: `bundlecheck reads the module graph of a webpack build and reports which
third-party packages application code pulls into the bundle, which of them
are missing from package.json, and which declared dependencies are never
bundled.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().StringVarP(&c.dir, "dir", "C", ".", "project root containing package.json")
	root.PersistentFlags().StringVar(&c.configFile, "config", "", "config file (default <dir>/.bundlecheck.toml)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log each module decision and timings")

	root.AddCommand(c.checkCommand())
	root.AddCommand(c.statsOptionsCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Paths
// =============================================================================

// projectRoot returns the absolute project root.
func (c *CLI) projectRoot() (string, error) {
	dir := c.dir
	if dir == "" {
		dir = "."
	}
	return filepath.Abs(dir)
}

// inRoot resolves a relative path against the project root.
func inRoot(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

// writeFile writes data to path, creating parent directories.
func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
