package linter_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/lambdalint/linthook/pkg/domain/types"
	"github.com/lambdalint/linthook/pkg/infra/linter"
)

func TestNew(t *testing.T) {
	t.Run("empty command returns error", func(t *testing.T) {
		_, err := linter.New("")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})

	t.Run("defaults", func(t *testing.T) {
		client := gt.R1(linter.New("flake8")).NoError(t)
		gt.V(t, client.Cmd()).Equal("flake8")
		gt.V(t, client.Timeout()).Equal(200 * time.Second)
	})
}

func TestRun(t *testing.T) {
	ctx := context.Background()

	t.Run("captures combined output and exit code", func(t *testing.T) {
		client := gt.R1(linter.New("sh",
			linter.WithInterpreter(""),
			linter.WithArgs("-c", "echo to-stdout; echo to-stderr 1>&2; exit 3"),
		)).NoError(t)

		result := gt.R1(client.Run(ctx, t.TempDir())).NoError(t)
		gt.V(t, result.ExitCode).Equal(3)
		gt.False(t, result.Succeeded())
		gt.S(t, result.Output).Contains("to-stdout")
		gt.S(t, result.Output).Contains("to-stderr")
		gt.S(t, result.CommandLine).Contains("sh -c")
	})

	t.Run("runs in the target directory", func(t *testing.T) {
		dir := t.TempDir()
		gt.NoError(t, os.WriteFile(filepath.Join(dir, "needle.txt"), []byte("x"), 0600))

		client := gt.R1(linter.New("ls", linter.WithInterpreter(""))).NoError(t)
		result := gt.R1(client.Run(ctx, dir)).NoError(t)
		gt.V(t, result.ExitCode).Equal(0)
		gt.True(t, result.Succeeded())
		gt.S(t, result.Output).Contains("needle.txt")
	})

	t.Run("deadline exceeded returns ErrLintTimeout", func(t *testing.T) {
		client := gt.R1(linter.New("sleep",
			linter.WithInterpreter(""),
			linter.WithArgs("5"),
			linter.WithCmdTimeout(100*time.Millisecond),
		)).NoError(t)

		result, err := client.Run(ctx, t.TempDir())
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrLintTimeout))
		gt.True(t, result == nil)
	})

	t.Run("prefixes the module search path", func(t *testing.T) {
		client := gt.R1(linter.New("sh",
			linter.WithInterpreter(""),
			linter.WithArgs("-c", `printf %s "$LINT_MODULE_PATH"`),
			linter.WithPathVar("LINT_MODULE_PATH"),
			linter.WithInstallDir("/opt/linthook"),
		)).NoError(t)

		result := gt.R1(client.Run(ctx, t.TempDir())).NoError(t)
		gt.V(t, result.ExitCode).Equal(0)
		gt.True(t, strings.HasPrefix(result.Output, "/opt/linthook"))
	})
}

func TestVersion(t *testing.T) {
	ctx := context.Background()

	t.Run("disabled probe returns nil", func(t *testing.T) {
		client := gt.R1(linter.New("flake8", linter.WithVersionArg(""))).NoError(t)
		result, err := client.Version(ctx)
		gt.NoError(t, err)
		gt.True(t, result == nil)
	})

	t.Run("captures probe output", func(t *testing.T) {
		client := gt.R1(linter.New("echo",
			linter.WithInterpreter(""),
			linter.WithVersionArg("probe-ok"),
		)).NoError(t)
		result := gt.R1(client.Version(ctx)).NoError(t)
		gt.V(t, result.ExitCode).Equal(0)
		gt.V(t, result.CommandLine).Equal("echo probe-ok")
		gt.V(t, result.Output).Equal("probe-ok\n")
		gt.V(t, result.Log()).Equal("$ echo probe-ok\nprobe-ok\n")
	})

	t.Run("nonzero exit is not an error", func(t *testing.T) {
		client := gt.R1(linter.New("sh",
			linter.WithInterpreter(""),
			linter.WithVersionArg("-bogus-flag"),
		)).NoError(t)

		result := gt.R1(client.Version(ctx)).NoError(t)
		gt.True(t, result.ExitCode != 0)
	})
}

func TestPythonLinter(t *testing.T) {
	py, ok := os.LookupEnv("TEST_PYTHON_PATH")
	if !ok {
		t.Skip("TEST_PYTHON_PATH is not set")
	}

	ctx := context.Background()
	client := gt.R1(linter.New("pip", linter.WithInterpreter(py))).NoError(t)

	version := gt.R1(client.Version(ctx)).NoError(t)
	gt.V(t, version.ExitCode).Equal(0)
	gt.S(t, version.Output).Contains("pip")

	runner := gt.R1(linter.New("pip",
		linter.WithInterpreter(py),
		linter.WithArgs("--version"),
	)).NoError(t)
	result := gt.R1(runner.Run(ctx, t.TempDir())).NoError(t)
	gt.V(t, result.ExitCode).Equal(0)
	gt.S(t, result.Output).Contains("pip")
}
