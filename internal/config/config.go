package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/matzehuels/bundlecheck/pkg/bundle"
	"github.com/matzehuels/bundlecheck/pkg/errors"
	"github.com/matzehuels/bundlecheck/pkg/manifest"
	"github.com/matzehuels/bundlecheck/pkg/report"
	"github.com/matzehuels/bundlecheck/pkg/stats"
)

const (
	// FileName is the project config file, looked up in the project root.
	FileName = ".bundlecheck.toml"

	// EnvPrefix prefixes environment overrides.
	EnvPrefix = "BUNDLECHECK"

	// DefaultEnvFile is the dotenv file read for build commands.
	DefaultEnvFile = ".env"
)

// Values of fail_on.
const (
	FailOnNone    = "none"
	FailOnMissing = "missing"
	FailOnUnused  = "unused"
	FailOnAny     = "any"
)

// FailOnValues lists the accepted fail_on settings.
var FailOnValues = []string{FailOnNone, FailOnMissing, FailOnUnused, FailOnAny}

// Config holds every setting of a check run.
type Config struct {
	// CheckKeys are the package.json sections holding declared dependencies.
	CheckKeys []string `mapstructure:"check_keys" toml:"check_keys"`

	// Filter is the module filter name (root or any).
	Filter string `mapstructure:"filter" toml:"filter"`

	// StatsFile, if set, receives a pretty-printed copy of the stats.
	// The file may also say stats_file = true for the default name.
	StatsFile string `mapstructure:"-" toml:"stats_file"`

	// EnvFile is a dotenv file whose variables are added to the build
	// command environment. A missing file is ignored.
	EnvFile string `mapstructure:"env_file" toml:"env_file"`

	// StatsOptions overrides the recommended webpack stats options.
	StatsOptions map[string]any `mapstructure:"-" toml:"stats_options,omitempty"`

	Prefix       string   `mapstructure:"prefix" toml:"prefix"`
	Delimiter    string   `mapstructure:"delimiter" toml:"delimiter"`
	Extensions   []string `mapstructure:"extensions" toml:"extensions"`
	ScriptMarker string   `mapstructure:"script_marker" toml:"script_marker"`

	Format string `mapstructure:"format" toml:"format"`
	Color  bool   `mapstructure:"color" toml:"color"`
	FailOn string `mapstructure:"fail_on" toml:"fail_on"`
}

// Default returns the built-in configuration.
func Default() *Config {
	b := bundle.DefaultConfig()
	return &Config{
		CheckKeys:    []string{manifest.DefaultSection},
		Filter:       bundle.FilterRoot,
		EnvFile:      DefaultEnvFile,
		Prefix:       b.Prefix,
		Delimiter:    b.Delimiter,
		Extensions:   b.Extensions,
		ScriptMarker: b.ScriptMarker,
		Format:       report.FormatText,
		Color:        true,
		FailOn:       FailOnNone,
	}
}

// Bundle returns the classifier settings.
func (c *Config) Bundle() bundle.Config {
	return bundle.Config{
		Delimiter:    c.Delimiter,
		Prefix:       c.Prefix,
		Extensions:   c.Extensions,
		ScriptMarker: c.ScriptMarker,
	}.WithDefaults()
}

// StatsOptionsOrDefault returns the webpack stats options to recommend.
func (c *Config) StatsOptionsOrDefault() map[string]any {
	return stats.EffectiveOptions(c.StatsOptions)
}

// Validate checks that every setting holds a usable value.
func (c *Config) Validate() error {
	if len(c.CheckKeys) == 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "check_keys cannot be empty")
	}
	for _, k := range c.CheckKeys {
		if err := errors.ValidateSectionName(k); err != nil {
			return err
		}
	}
	if err := errors.ValidateChoice("filter", c.Filter, bundle.FilterNames...); err != nil {
		return err
	}
	if err := errors.ValidateChoice("format", c.Format, report.Formats...); err != nil {
		return err
	}
	if err := errors.ValidateChoice("fail_on", c.FailOn, FailOnValues...); err != nil {
		return err
	}
	if c.Prefix == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "prefix cannot be empty")
	}
	if c.Delimiter == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "delimiter cannot be empty")
	}
	for _, ext := range c.Extensions {
		if ext == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "extensions cannot contain an empty suffix")
		}
	}
	if c.StatsFile != "" {
		if err := errors.ValidateOutputPath(c.StatsFile); err != nil {
			return err
		}
	}
	return nil
}

// Fails reports whether a result breaks the fail_on policy.
func (c *Config) Fails(res *bundle.Result) bool {
	switch c.FailOn {
	case FailOnMissing:
		return len(res.Missing) > 0
	case FailOnUnused:
		return len(res.Unused) > 0
	case FailOnAny:
		return len(res.Missing) > 0 || len(res.Unused) > 0
	default:
		return false
	}
}

// Encode writes c as TOML.
func (c *Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// LoadOptions controls [Load].
type LoadOptions struct {
	// Dir is the project root searched for [FileName].
	Dir string

	// File, if set, is used instead of the project file and must exist.
	File string

	// Flags are bound as the highest-precedence layer. Only flags the
	// user set override lower layers.
	Flags *pflag.FlagSet
}

// flagKeys maps flag names registered by [RegisterFlags] to config keys.
var flagKeys = map[string]string{
	"check-key":  "check_keys",
	"filter":     "filter",
	"stats-file": "stats_file",
	"env-file":   "env_file",
	"prefix":     "prefix",
	"format":     "format",
	"color":      "color",
	"fail-on":    "fail_on",
}

// Load resolves the layered configuration. It returns the config and the
// path of the file it read, empty when none was found.
func Load(opts LoadOptions) (*Config, string, error) {
	v := viper.New()

	d := Default()
	v.SetDefault("check_keys", d.CheckKeys)
	v.SetDefault("filter", d.Filter)
	v.SetDefault("stats_file", d.StatsFile)
	v.SetDefault("env_file", d.EnvFile)
	v.SetDefault("prefix", d.Prefix)
	v.SetDefault("delimiter", d.Delimiter)
	v.SetDefault("extensions", d.Extensions)
	v.SetDefault("script_marker", d.ScriptMarker)
	v.SetDefault("format", d.Format)
	v.SetDefault("color", d.Color)
	v.SetDefault("fail_on", d.FailOn)

	path := opts.File
	if path == "" {
		if p := filepath.Join(opts.Dir, FileName); fileExists(p) {
			path = p
		}
	} else if !fileExists(path) {
		return nil, "", errors.New(errors.ErrCodeFileNotFound, "config file not found: %s", path)
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, "", errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if opts.Flags != nil {
		for name, key := range flagKeys {
			if f := opts.Flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, "", errors.Wrap(errors.ErrCodeInternal, err, "bind flag --%s", name)
				}
			}
		}
	}

	statsFile, err := dumpPath(v.Get("stats_file"))
	if err != nil {
		return nil, "", err
	}
	if statsFile == "" && opts.Flags != nil {
		if on, _ := opts.Flags.GetBool("dump-stats"); on {
			statsFile = stats.DefaultDumpFile
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	cfg.StatsFile = statsFile

	if path != "" {
		so, err := readStatsOptions(path)
		if err != nil {
			return nil, "", err
		}
		cfg.StatsOptions = so
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return &cfg, path, nil
}

// dumpPath turns a stats_file value into a file name. true selects
// [stats.DefaultDumpFile]; false and "" disable the dump.
func dumpPath(value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case bool:
		if v {
			return stats.DefaultDumpFile, nil
		}
		return "", nil
	case string:
		switch strings.ToLower(v) {
		case "true":
			return stats.DefaultDumpFile, nil
		case "false":
			return "", nil
		}
		return v, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidConfig, "stats_file must be a file name or true, got %v", value)
	}
}

func readStatsOptions(path string) (map[string]any, error) {
	var file struct {
		StatsOptions map[string]any `toml:"stats_options"`
	}
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	return file.StatsOptions, nil
}

// RegisterFlags defines the flags that override config keys. Defaults
// match [Default] so an unset flag never changes the result.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.StringSlice("check-key", d.CheckKeys, "package.json sections holding declared dependencies (repeatable)")
	fs.String("filter", d.Filter, "module filter: "+strings.Join(bundle.FilterNames, "|"))
	fs.String("stats-file", "", "also write the stats JSON to this file (relative to --dir)")
	fs.Bool("dump-stats", false, "also write the stats JSON, to "+stats.DefaultDumpFile+" unless --stats-file names a file")
	fs.String("env-file", d.EnvFile, "dotenv file loaded into the --build environment")
	fs.String("prefix", d.Prefix, "path prefix marking third-party modules")
	fs.String("format", d.Format, "report format: "+strings.Join(report.Formats, "|"))
	fs.Bool("color", d.Color, "style report headers")
	fs.String("fail-on", d.FailOn, "exit non-zero on: "+strings.Join(FailOnValues, "|"))
}

// WriteDefault writes the default config to path. An existing file is
// kept unless force is set.
func WriteDefault(path string, force bool) error {
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}
	if !force && fileExists(path) {
		return errors.New(errors.ErrCodeInvalidConfig, "%s already exists (use --force to overwrite)", path)
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	d := Default()
	d.StatsOptions = stats.RecommendedOptions()
	if err := d.Encode(f); err != nil {
		f.Close()
		return errors.Wrap(errors.ErrCodeInternal, err, "encode %s", path)
	}
	return f.Close()
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
