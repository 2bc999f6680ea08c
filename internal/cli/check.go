package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/bundlecheck/internal/config"
	"github.com/matzehuels/bundlecheck/pkg/bundle"
	"github.com/matzehuels/bundlecheck/pkg/errors"
	"github.com/matzehuels/bundlecheck/pkg/manifest"
	"github.com/matzehuels/bundlecheck/pkg/report"
	"github.com/matzehuels/bundlecheck/pkg/stats"
)

// checkOpts holds the command-line flags of the check command that are
// not config keys.
type checkOpts struct {
	source statsSource
	graph  string // host→package graph output (.dot or .svg)
}

// checkCommand creates the check command.
func (c *CLI) checkCommand() *cobra.Command {
	var opts checkOpts

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Compare bundled packages with package.json",
		Long: `Compare the third-party packages in a webpack build with the dependencies
declared in package.json.

A package counts as bundled when application code imports one of its
modules directly. Packages only reached through other packages are left
out (use --filter any to include them).

Relative paths (--stats, --graph, --stats-file) are resolved against the
project root given by --dir.

Examples:
  bundlecheck check --stats dist/stats.json
  webpack --json | bundlecheck check --stats -
  bundlecheck check --build "npx webpack --json" --fail-on missing
  bundlecheck check --stats stats.json --format json --graph deps.svg
  bundlecheck check -C web --build "npx webpack --json" --stats-file build/stats.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCheck(cmd, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.source.path, "stats", "s", "", `webpack stats JSON file ("-" for stdin)`)
	cmd.Flags().StringVarP(&opts.source.build, "build", "b", "", "build command that prints stats JSON to stdout")
	cmd.Flags().StringVarP(&opts.graph, "graph", "g", "", "also write a dependency graph (.dot or .svg)")
	config.RegisterFlags(cmd.Flags())

	return cmd
}

func (c *CLI) runCheck(cmd *cobra.Command, opts *checkOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	root, err := c.projectRoot()
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "resolve project root")
	}
	cfg, cfgPath, err := config.Load(config.LoadOptions{Dir: root, File: c.configFile, Flags: cmd.Flags()})
	if err != nil {
		return err
	}
	if cfgPath != "" {
		logger.Debug("Loaded config", "path", cfgPath)
	}
	if err := validateGraphPath(opts.graph); err != nil {
		return err
	}

	opts.resolve(root)
	if cfg.EnvFile != "" {
		opts.source.envFile = inRoot(root, cfg.EnvFile)
	}
	st, err := opts.source.load(ctx, root, cmd.InOrStdin(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	logger.Debug("Loaded stats", "modules", len(st.Modules))
	if len(st.Modules) == 0 {
		printWarning(cmd.ErrOrStderr(), "The stats list no modules")
		printNextStep(cmd.ErrOrStderr(), "Check the webpack stats options", appName+" stats-options")
	}

	if cfg.StatsFile != "" {
		path := inRoot(root, cfg.StatsFile)
		if err := stats.Export(st, path); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPath, err, "write stats dump")
		}
		printFile(cmd.ErrOrStderr(), path)
	}

	declared, err := loadDeclared(root, cfg.CheckKeys)
	if err != nil {
		return err
	}

	res, err := runChecker(ctx, cfg, root, st.Modules, declared)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Checked %d modules", len(st.Modules)))

	if err := report.Write(cmd.OutOrStdout(), cfg.Format, res, report.Options{Color: cfg.Color}); err != nil {
		return err
	}

	if opts.graph != "" {
		data, err := report.Graph(ctx, res, strings.ToLower(filepath.Ext(opts.graph)))
		if err != nil {
			return err
		}
		if err := writeFile(opts.graph, data); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPath, err, "write graph")
		}
		printFile(cmd.ErrOrStderr(), opts.graph)
	}

	if cfg.Fails(res) {
		return errors.New(errors.ErrCodeCheckFailed, "%d missing, %d unused dependencies (fail_on=%s)",
			len(res.Missing), len(res.Unused), cfg.FailOn)
	}
	return nil
}

// resolve anchors relative flag paths at the project root.
func (o *checkOpts) resolve(root string) {
	if o.source.path != "" && o.source.path != stdinPath {
		o.source.path = inRoot(root, o.source.path)
	}
	if o.graph != "" {
		o.graph = inRoot(root, o.graph)
	}
}

// loadDeclared reads the declared dependency names from the project's
// package.json.
func loadDeclared(root string, sections []string) ([]string, error) {
	m, err := manifest.Load(filepath.Join(root, manifest.FileName))
	if err != nil {
		return nil, err
	}
	return m.Declared(sections...)
}

// runChecker runs the bundle check with the configured filter.
func runChecker(ctx context.Context, cfg *config.Config, root string, modules []stats.Module, declared []string) (*bundle.Result, error) {
	bcfg := cfg.Bundle()
	filter, ok := bundle.NewFilter(cfg.Filter, bundle.NewClassifier(bcfg))
	if !ok {
		return nil, errors.ValidateChoice("filter", cfg.Filter, bundle.FilterNames...)
	}
	return bundle.NewChecker(bcfg, root, bundle.Options{Filter: filter}).Run(ctx, modules, declared)
}

// validateGraphPath checks a --graph target before any work is done.
func validateGraphPath(path string) error {
	if path == "" {
		return nil
	}
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}
	return errors.ValidateChoice("graph format", strings.ToLower(filepath.Ext(path)), report.GraphFormats...)
}
