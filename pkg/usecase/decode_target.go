package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"

	"github.com/lambdalint/linthook/pkg/domain/model"
	"github.com/lambdalint/linthook/pkg/domain/types"
	"github.com/lambdalint/linthook/pkg/utils/logging"
)

// DecodeTarget implements interfaces.UseCase. The subject is the GitHub
// webhook event name carried in the notification, the message its raw JSON
// payload. A nil target without error means the event needs no lint run.
func (x *UseCase) DecodeTarget(ctx context.Context, subject string, message []byte) (*model.LintTarget, error) {
	event, err := github.ParseWebHook(subject, message)
	if err != nil {
		return nil, goerr.Wrap(types.ErrMalformedEvent, "failed to parse webhook payload",
			goerr.V("subject", subject),
			goerr.V("cause", err.Error()),
		)
	}

	target := x.eventToTarget(ctx, event)
	if target == nil {
		return nil, nil
	}

	if err := target.Validate(); err != nil {
		return nil, goerr.Wrap(types.ErrMalformedEvent, "incomplete webhook payload",
			goerr.V("subject", subject),
			goerr.V("cause", err.Error()),
		)
	}

	return target, nil
}

func refToBranch(v string) string {
	if ref := strings.SplitN(v, "/", 3); len(ref) == 3 && ref[0] == "refs" && ref[1] == "heads" {
		return ref[2]
	}
	return v
}

func (x *UseCase) eventToTarget(ctx context.Context, event any) *model.LintTarget {
	logger := logging.From(ctx)

	switch ev := event.(type) {
	case *github.PushEvent:
		if ev.HeadCommit == nil || ev.HeadCommit.ID == nil {
			logger.Warn("ignore push event without head commit")
			return nil
		}

		return &model.LintTarget{
			Event:       types.PushEvent,
			Owner:       ev.GetRepo().GetOwner().GetLogin(),
			RepoName:    ev.GetRepo().GetName(),
			CommitSHA:   types.CommitSHA(ev.GetHeadCommit().GetID()),
			Branch:      types.BranchName(refToBranch(ev.GetRef())),
			InstallID:   types.GitHubAppInstallID(ev.GetInstallation().GetID()),
			ArchiveURL:  ev.GetRepo().GetArchiveURL(),
			StatusesURL: ev.GetRepo().GetStatusesURL(),
			RepoURL:     ev.GetRepo().GetURL(),
		}

	case *github.PullRequestEvent:
		if !slices.Contains(x.prActions, ev.GetAction()) {
			logger.Debug("ignore pull_request event", slog.String("action", ev.GetAction()))
			return nil
		}

		pr := ev.GetPullRequest()
		return &model.LintTarget{
			Event:       types.PullRequestEvent,
			Action:      ev.GetAction(),
			Owner:       ev.GetRepo().GetOwner().GetLogin(),
			RepoName:    ev.GetRepo().GetName(),
			CommitSHA:   types.CommitSHA(pr.GetHead().GetSHA()),
			Branch:      types.BranchName(pr.GetHead().GetRef()),
			InstallID:   types.GitHubAppInstallID(ev.GetInstallation().GetID()),
			ArchiveURL:  ev.GetRepo().GetArchiveURL(),
			StatusesURL: ev.GetRepo().GetStatusesURL(),
			RepoURL:     ev.GetRepo().GetURL(),
		}

	case *github.CheckSuiteEvent:
		// A completed suite is the umbrella event, not a new run request.
		if ev.GetAction() == "completed" {
			logger.Debug("ignore completed check_suite event")
			return nil
		}

		return &model.LintTarget{
			Event:      types.CheckSuiteEvent,
			Action:     ev.GetAction(),
			Owner:      ev.GetRepo().GetOwner().GetLogin(),
			RepoName:   ev.GetRepo().GetName(),
			CommitSHA:  types.CommitSHA(ev.GetCheckSuite().GetHeadSHA()),
			Branch:     types.BranchName(ev.GetCheckSuite().GetHeadBranch()),
			InstallID:  types.GitHubAppInstallID(ev.GetInstallation().GetID()),
			ArchiveURL: ev.GetRepo().GetArchiveURL(),
			RepoURL:    ev.GetRepo().GetURL(),
		}

	case *github.CheckRunEvent:
		if ev.GetCheckRun().GetName() != x.label {
			logger.Debug("ignore check_run event for another check",
				slog.String("name", ev.GetCheckRun().GetName()),
			)
			return nil
		}
		// "updated" re-reports progress of a running check and must not
		// trigger another run.
		if ev.GetAction() != "created" && ev.GetAction() != "rerequested" {
			logger.Debug("ignore check_run event", slog.String("action", ev.GetAction()))
			return nil
		}

		return &model.LintTarget{
			Event:       types.CheckRunEvent,
			Action:      ev.GetAction(),
			Owner:       ev.GetRepo().GetOwner().GetLogin(),
			RepoName:    ev.GetRepo().GetName(),
			CommitSHA:   types.CommitSHA(ev.GetCheckRun().GetHeadSHA()),
			Branch:      types.BranchName(ev.GetCheckRun().GetCheckSuite().GetHeadBranch()),
			InstallID:   types.GitHubAppInstallID(ev.GetInstallation().GetID()),
			ArchiveURL:  ev.GetRepo().GetArchiveURL(),
			RepoURL:     ev.GetRepo().GetURL(),
			CheckRunURL: ev.GetCheckRun().GetURL(),
		}

	default:
		logger.Warn("unsupported event", slog.String("type", fmt.Sprintf("%T", event)))
		return nil
	}
}
