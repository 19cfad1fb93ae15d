package linter

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/lambdalint/linthook/pkg/domain/interfaces"
	"github.com/lambdalint/linthook/pkg/domain/model"
	"github.com/lambdalint/linthook/pkg/domain/types"
	"github.com/lambdalint/linthook/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

const (
	defaultInterpreter = "python"
	defaultVersionArg  = "--version"
	defaultPathVar     = "PYTHONPATH"
	defaultCmdTimeout  = 200 * time.Second
)

// Client runs the configured linter as a subprocess.
type Client struct {
	cmd         string
	args        []string
	interpreter string
	versionArg  string
	pathVar     string
	cmdTimeout  time.Duration
	installDir  string
}

var _ interfaces.Runner = (*Client)(nil)

type Option func(*Client)

func WithArgs(args ...string) Option {
	return func(x *Client) {
		x.args = args
	}
}

// WithInterpreter sets the interpreter running the linter as a module
// (`<interpreter> -m <cmd>`). An empty value executes the command directly.
func WithInterpreter(name string) Option {
	return func(x *Client) {
		x.interpreter = name
	}
}

// WithVersionArg sets the flag of the version probe. An empty value
// disables the probe.
func WithVersionArg(arg string) Option {
	return func(x *Client) {
		x.versionArg = arg
	}
}

// WithPathVar sets the module search path variable that gets prefixed with
// the handler's install directory.
func WithPathVar(name string) Option {
	return func(x *Client) {
		x.pathVar = name
	}
}

func WithCmdTimeout(d time.Duration) Option {
	return func(x *Client) {
		x.cmdTimeout = d
	}
}

// WithInstallDir overrides the directory prepended to the module search
// path. Defaults to the directory of the running executable so linter
// plugins shipped with the handler are importable.
func WithInstallDir(dir string) Option {
	return func(x *Client) {
		x.installDir = dir
	}
}

func New(cmd string, options ...Option) (*Client, error) {
	if cmd == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "linter command is empty")
	}

	client := &Client{
		cmd:         cmd,
		interpreter: defaultInterpreter,
		versionArg:  defaultVersionArg,
		pathVar:     defaultPathVar,
		cmdTimeout:  defaultCmdTimeout,
	}
	for _, opt := range options {
		opt(client)
	}

	if client.installDir == "" {
		if exe, err := os.Executable(); err == nil {
			client.installDir = filepath.Dir(exe)
		}
	}

	return client, nil
}

func (x *Client) Cmd() string {
	return x.cmd
}

func (x *Client) Timeout() time.Duration {
	return x.cmdTimeout
}

func (x *Client) argv(extra ...string) []string {
	var argv []string
	if x.interpreter != "" {
		argv = append(argv, x.interpreter, "-m")
	}
	argv = append(argv, x.cmd)
	return append(argv, extra...)
}

// env returns the process environment with the module search path variable
// prefixed by the install directory.
func (x *Client) env() []string {
	env := os.Environ()
	if x.installDir == "" {
		return env
	}

	prefix := x.pathVar + "="
	for i, kv := range env {
		if strings.HasPrefix(kv, prefix) {
			env[i] = prefix + x.installDir + string(os.PathListSeparator) + strings.TrimPrefix(kv, prefix)
			return env
		}
	}
	return append(env, prefix+x.installDir)
}

// Run implements interfaces.Runner. A non-zero exit of the linter is not
// an error; it is captured in the result. Exceeding the configured timeout
// returns ErrLintTimeout.
func (x *Client) Run(ctx context.Context, dir string) (*model.CmdResult, error) {
	argv := x.argv(x.args...)
	cmdline := strings.Join(argv, " ")
	logging.From(ctx).Info("running linter", slog.String("cmd", cmdline), slog.String("dir", dir))

	runCtx, cancel := context.WithTimeout(ctx, x.cmdTimeout)
	defer cancel()

	// #nosec
	cmd := exec.CommandContext(runCtx, argv[0], argv[1:]...)
	cmd.Dir = dir
	cmd.Env = x.env()

	out, err := cmd.CombinedOutput()
	if err != nil {
		if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
			return nil, goerr.Wrap(types.ErrLintTimeout, "linter did not finish in time",
				goerr.V("cmd", cmdline),
				goerr.V("timeout", x.cmdTimeout),
			)
		}
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, goerr.Wrap(err, "failed to run linter", goerr.V("cmd", cmdline))
		}
	}

	result := &model.CmdResult{
		CommandLine: cmdline,
		Output:      string(out),
		ExitCode:    cmd.ProcessState.ExitCode(),
		CPUTime:     cmd.ProcessState.UserTime(),
	}

	logging.From(ctx).Info("linter exited",
		slog.Int("code", result.ExitCode),
		slog.Duration("cpu_time", result.CPUTime),
	)

	return result, nil
}

// Version implements interfaces.Runner. It runs in the handler's own
// working directory and has no deadline of its own. Returns nil when the
// probe is disabled.
func (x *Client) Version(ctx context.Context) (*model.CmdResult, error) {
	if x.versionArg == "" {
		return nil, nil
	}

	argv := x.argv(x.versionArg)
	cmdline := strings.Join(argv, " ")
	logging.From(ctx).Info("running version probe", slog.String("cmd", cmdline))

	// #nosec
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Env = x.env()

	out, err := cmd.CombinedOutput()
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, goerr.Wrap(err, "failed to run version probe", goerr.V("cmd", cmdline))
		}
	}

	return &model.CmdResult{
		CommandLine: cmdline,
		Output:      string(out),
		ExitCode:    cmd.ProcessState.ExitCode(),
		CPUTime:     cmd.ProcessState.UserTime(),
	}, nil
}
