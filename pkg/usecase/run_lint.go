package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"

	"github.com/lambdalint/linthook/pkg/domain/interfaces"
	"github.com/lambdalint/linthook/pkg/domain/model"
	"github.com/lambdalint/linthook/pkg/domain/types"
	"github.com/lambdalint/linthook/pkg/utils/errutil"
	"github.com/lambdalint/linthook/pkg/utils/logging"
)

// RunLint implements interfaces.UseCase. It executes the whole pipeline
// for one relevant event: authenticate, report progress, download the
// code, run the linter and leave exactly one terminal report. When a stage
// fails after the first progress report, a best-effort terminal report is
// sent before the error propagates to the caller.
func (x *UseCase) RunLint(ctx context.Context, target *model.LintTarget) error {
	if err := target.Validate(); err != nil {
		return err
	}

	runner := x.clients.Runner()
	if runner == nil {
		return goerr.Wrap(types.ErrInvalidOption, "linter runner is not configured")
	}

	logging.From(ctx).Info("starting lint run",
		slog.String("event", string(target.Event)),
		slog.String("repo", target.FullName()),
		slog.Any("sha", target.CommitSHA),
	)

	var sessionOpts []interfaces.SessionOption
	if target.Event.UsesCheckAPI() {
		sessionOpts = append(sessionOpts, interfaces.WithPreview(interfaces.AntiopePreview))
	}

	session, err := x.clients.GitHubApp().NewSession(ctx, target.InstallID, sessionOpts...)
	if err != nil {
		return err
	}

	rep := x.newReporter(target, session)

	if err := rep.Progress(ctx, "Downloading code..."); err != nil {
		return err
	}

	codePath, err := x.downloadCode(ctx, session, target)
	if err != nil {
		conclusion := types.CheckConclusionFailure
		message := "Downloading code failed"
		if errors.Is(err, types.ErrDownloadTimeout) {
			conclusion = types.CheckConclusionTimedOut
			message = fmt.Sprintf("Downloading code timed out after %ds", int(x.downloadTimeout.Seconds()))
		}
		x.abort(ctx, rep, conclusion, message)
		return err
	}

	if err := rep.Progress(ctx, "Running linter..."); err != nil {
		return err
	}

	var version string
	probe, err := runner.Version(ctx)
	if err != nil {
		x.abort(ctx, rep, types.CheckConclusionFailure, "Version command failed unexpectedly")
		return err
	}
	if probe != nil {
		if !probe.Succeeded() {
			// A failing version probe means a broken tool install, not a
			// lint failure.
			x.abort(ctx, rep, types.CheckConclusionFailure, "Version command failed unexpectedly")
			return goerr.Wrap(types.ErrVersionProbe, "version probe exited with non-zero code",
				goerr.V("code", probe.ExitCode),
				goerr.V("output", probe.Output),
			)
		}
		version = probe.Log()
	}

	result, err := runner.Run(ctx, codePath)
	if err != nil {
		conclusion := types.CheckConclusionFailure
		message := "Running linter failed"
		if errors.Is(err, types.ErrLintTimeout) {
			conclusion = types.CheckConclusionTimedOut
			message = fmt.Sprintf("Command timed out after %ds", int(runner.Timeout().Seconds()))
		}
		x.abort(ctx, rep, conclusion, message)
		return err
	}

	logURL, err := rep.Complete(ctx, version, result)
	if err != nil {
		return err
	}

	conclusion := types.CheckConclusionSuccess
	if !result.Succeeded() {
		conclusion = types.CheckConclusionFailure
	}

	return x.InsertRunRecord(ctx, &model.RunRecord{
		ID:        types.NewRunID(),
		Timestamp: logging.CtxTime(ctx).UTC(),
		EventType: string(target.Event),
		GitHub: model.GitMetadata{
			Owner:     target.Owner,
			RepoName:  target.RepoName,
			CommitSHA: string(target.CommitSHA),
			Branch:    string(target.Branch),
		},
		Cmd:        runner.Cmd(),
		ExitCode:   result.ExitCode,
		CPUSeconds: result.CPUTime.Seconds(),
		Conclusion: string(conclusion),
		LogURL:     logURL,
	})
}

// abort leaves the terminal report for an invocation that is about to fail
// with an infrastructure error. Delivery of the abort report is best
// effort; the original error propagates either way.
func (x *UseCase) abort(ctx context.Context, rep reporter, conclusion types.CheckConclusion, message string) {
	if err := rep.Abort(ctx, conclusion, message); err != nil {
		errutil.HandleError(ctx, "failed to send terminal report", err)
	}
}
