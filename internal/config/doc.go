// Package config loads bundlecheck settings.
//
// Settings are layered, lowest precedence first:
//
//  1. built-in defaults ([Default])
//  2. the project file .bundlecheck.toml
//  3. BUNDLECHECK_* environment variables (BUNDLECHECK_FILTER=any)
//  4. command-line flags registered with [RegisterFlags]
//
// Loading goes through viper. Viper folds key case, so the stats_options
// table, whose keys are webpack option names such as modulesSort, is read
// straight from the file with BurntSushi/toml instead.
package config
