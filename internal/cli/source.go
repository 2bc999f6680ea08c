package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"

	bcerrors "github.com/matzehuels/bundlecheck/pkg/errors"
	"github.com/matzehuels/bundlecheck/pkg/observability"
	"github.com/matzehuels/bundlecheck/pkg/stats"
)

// stdinPath selects standard input as the stats source.
const stdinPath = "-"

// statsSource says where the stats document comes from. Exactly one of
// path and build is set.
type statsSource struct {
	path    string // file, or "-" for stdin
	build   string // shell command printing stats JSON to stdout
	envFile string // dotenv file merged into the build environment
}

func (s statsSource) validate() error {
	switch {
	case s.path != "" && s.build != "":
		return bcerrors.New(bcerrors.ErrCodeInvalidInput, "--stats and --build are mutually exclusive")
	case s.path == "" && s.build == "":
		return bcerrors.New(bcerrors.ErrCodeInvalidInput, "no stats source: pass --stats <file> or --build <command>")
	}
	return nil
}

// load reads the stats document. Build commands run in dir with their
// stderr forwarded to errOut.
func (s statsSource) load(ctx context.Context, dir string, in io.Reader, errOut io.Writer) (*stats.Stats, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	switch {
	case s.build != "":
		env, err := buildEnv(s.envFile)
		if err != nil {
			return nil, err
		}
		out, err := runBuild(ctx, s.build, dir, env, errOut)
		if err != nil {
			return nil, err
		}
		return stats.Parse(out)
	case s.path == stdinPath:
		return stats.Read(in)
	default:
		return stats.Import(s.path)
	}
}

// buildEnv returns the process environment overlaid with the variables of
// envFile. A missing file adds nothing.
func buildEnv(envFile string) ([]string, error) {
	env := os.Environ()
	if envFile == "" {
		return env, nil
	}
	vars, err := godotenv.Read(envFile)
	if errors.Is(err, os.ErrNotExist) {
		return env, nil
	}
	if err != nil {
		return nil, bcerrors.Wrap(bcerrors.ErrCodeInvalidConfig, err, "read %s", envFile)
	}
	for k, v := range vars {
		env = append(env, k+"="+v)
	}
	return env, nil
}

// runBuild runs command with an in-process POSIX shell and returns its
// stdout. The shell behaves the same on every platform; programs it calls
// are looked up on PATH.
func runBuild(ctx context.Context, command, dir string, env []string, errOut io.Writer) ([]byte, error) {
	prog, err := syntax.NewParser().Parse(strings.NewReader(command), "build")
	if err != nil {
		return nil, bcerrors.Wrap(bcerrors.ErrCodeInvalidInput, err, "parse build command")
	}

	var out bytes.Buffer
	runner, err := interp.New(
		interp.Dir(dir),
		interp.Env(expand.ListEnviron(env...)),
		interp.StdIO(nil, &out, errOut),
	)
	if err != nil {
		return nil, bcerrors.Wrap(bcerrors.ErrCodeInternal, err, "create shell")
	}

	hooks := observability.Build()
	start := time.Now()
	hooks.OnBuildStart(ctx, command)

	err = runner.Run(ctx, prog)
	hooks.OnBuildComplete(ctx, command, out.Len(), time.Since(start), err)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		var status interp.ExitStatus
		if errors.As(err, &status) {
			return nil, bcerrors.New(bcerrors.ErrCodeBuildFailed, "build %q exited with status %d", command, status)
		}
		return nil, bcerrors.Wrap(bcerrors.ErrCodeBuildFailed, err, "build %q", command)
	}
	return out.Bytes(), nil
}
