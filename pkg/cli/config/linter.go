package config

import (
	"log/slog"
	"time"

	"github.com/lambdalint/linthook/pkg/infra/linter"
	"github.com/urfave/cli/v3"
)

type Linter struct {
	cmd         string
	args        []string
	label       string
	interpreter string
	versionArg  string
	pathVar     string
	cmdTimeout  time.Duration
}

func (x *Linter) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "cmd",
			Usage:       "Linter module to run, e.g. flake8",
			Category:    "Linter",
			Sources:     cli.EnvVars("LINTHOOK_CMD"),
			Destination: &x.cmd,
			Required:    true,
		},
		&cli.StringSliceFlag{
			Name:        "cmd-args",
			Usage:       "Extra arguments passed to the linter",
			Category:    "Linter",
			Sources:     cli.EnvVars("LINTHOOK_CMD_ARGS"),
			Destination: &x.args,
		},
		&cli.StringFlag{
			Name:        "label",
			Usage:       "Status context / check run name (defaults to the command name)",
			Category:    "Linter",
			Sources:     cli.EnvVars("LINTHOOK_LABEL"),
			Destination: &x.label,
		},
		&cli.StringFlag{
			Name:        "interpreter",
			Usage:       "Interpreter running the linter as a module, empty to execute directly",
			Category:    "Linter",
			Sources:     cli.EnvVars("LINTHOOK_INTERPRETER"),
			Destination: &x.interpreter,
			Value:       "python",
		},
		&cli.StringFlag{
			Name:        "version-arg",
			Usage:       "Flag of the version probe, empty to disable it",
			Category:    "Linter",
			Sources:     cli.EnvVars("LINTHOOK_VERSION_ARG"),
			Destination: &x.versionArg,
			Value:       "--version",
		},
		&cli.StringFlag{
			Name:        "path-var",
			Usage:       "Module search path variable prefixed with the install directory",
			Category:    "Linter",
			Sources:     cli.EnvVars("LINTHOOK_PATH_VAR"),
			Destination: &x.pathVar,
			Value:       "PYTHONPATH",
		},
		&cli.DurationFlag{
			Name:        "cmd-timeout",
			Usage:       "Deadline of one linter execution",
			Category:    "Linter",
			Sources:     cli.EnvVars("LINTHOOK_CMD_TIMEOUT"),
			Destination: &x.cmdTimeout,
			Value:       200 * time.Second,
		},
	}
}

// Label is the display name of the lint run on GitHub.
func (x Linter) Label() string {
	if x.label != "" {
		return x.label
	}
	return x.cmd
}

func (x Linter) NewRunner() (*linter.Client, error) {
	return linter.New(x.cmd,
		linter.WithArgs(x.args...),
		linter.WithInterpreter(x.interpreter),
		linter.WithVersionArg(x.versionArg),
		linter.WithPathVar(x.pathVar),
		linter.WithCmdTimeout(x.cmdTimeout),
	)
}

func (x Linter) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("Cmd", x.cmd),
		slog.Any("Args", x.args),
		slog.String("Label", x.Label()),
		slog.String("Interpreter", x.interpreter),
		slog.Duration("CmdTimeout", x.cmdTimeout),
	)
}
