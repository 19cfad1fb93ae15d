package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/lambdalint/linthook/pkg/domain/model"
	"github.com/lambdalint/linthook/pkg/domain/types"
	"github.com/lambdalint/linthook/pkg/utils/logging"
)

// LintLocal implements interfaces.UseCase. It runs the configured linter
// against a local directory without touching GitHub. The run still lands
// in the history table when one is configured.
func (x *UseCase) LintLocal(ctx context.Context, dir string, meta model.GitMetadata) error {
	runner := x.clients.Runner()
	if runner == nil {
		return goerr.Wrap(types.ErrInvalidOption, "linter runner is not configured")
	}

	probe, err := runner.Version(ctx)
	if err != nil {
		return err
	}
	if probe != nil {
		if !probe.Succeeded() {
			return goerr.Wrap(types.ErrVersionProbe, "version probe exited with non-zero code",
				goerr.V("code", probe.ExitCode),
				goerr.V("output", probe.Output),
			)
		}
		logging.From(ctx).Info("linter version", slog.String("output", strings.TrimSpace(probe.Output)))
	}

	result, err := runner.Run(ctx, dir)
	if err != nil {
		return err
	}

	conclusion := types.CheckConclusionSuccess
	if !result.Succeeded() {
		conclusion = types.CheckConclusionFailure
	}

	logging.From(ctx).Info("lint finished",
		slog.String("dir", dir),
		slog.Int("exit_code", result.ExitCode),
		slog.Float64("cpu_seconds", result.CPUTime.Seconds()),
		slog.String("conclusion", string(conclusion)),
	)

	return x.InsertRunRecord(ctx, &model.RunRecord{
		ID:         types.NewRunID(),
		Timestamp:  logging.CtxTime(ctx).UTC(),
		EventType:  "local",
		GitHub:     meta,
		Cmd:        runner.Cmd(),
		ExitCode:   result.ExitCode,
		CPUSeconds: result.CPUTime.Seconds(),
		Conclusion: string(conclusion),
	})
}
