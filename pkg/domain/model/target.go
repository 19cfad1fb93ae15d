package model

import (
	"regexp"
	"strings"

	"github.com/lambdalint/linthook/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

var ptnValidCommitSHA = regexp.MustCompile(`^[0-9a-f]{40}$`)

// LintTarget is the normalized lint request extracted from one relevant
// webhook payload. URL fields keep the provider-templated form and are
// expanded on demand.
type LintTarget struct {
	Event     types.GitHubEventType
	Action    string
	Owner     string
	RepoName  string
	CommitSHA types.CommitSHA
	Branch    types.BranchName
	InstallID types.GitHubAppInstallID

	// ArchiveURL is the repository's templated archive URL, e.g.
	// https://api.github.com/repos/o/r/{archive_format}{/ref}
	ArchiveURL string

	// StatusesURL is the repository's templated commit status URL, e.g.
	// https://api.github.com/repos/o/r/statuses/{sha}
	StatusesURL string

	// RepoURL is the repository's API URL, e.g.
	// https://api.github.com/repos/o/r
	RepoURL string

	// CheckRunURL is the concrete URL of an already existing check run.
	// Only set for check_run events; check_suite events create their run.
	CheckRunURL string
}

func (x *LintTarget) FullName() string {
	return x.Owner + "/" + x.RepoName
}

// TarballURL expands the templated archive URL into the tarball snapshot
// URL of the target commit.
func (x *LintTarget) TarballURL() string {
	r := strings.NewReplacer(
		"{archive_format}", "tarball",
		"{/ref}", "/"+string(x.CommitSHA),
	)
	return r.Replace(x.ArchiveURL)
}

// CommitStatusesURL expands the templated statuses URL with the target
// commit SHA.
func (x *LintTarget) CommitStatusesURL() string {
	return strings.Replace(x.StatusesURL, "{sha}", string(x.CommitSHA), 1)
}

// CheckRunsURL is the collection URL for creating a new check run on the
// repository.
func (x *LintTarget) CheckRunsURL() string {
	return x.RepoURL + "/check-runs"
}

func (x *LintTarget) Validate() error {
	if x.Owner == "" {
		return goerr.Wrap(types.ErrValidationFailed, "owner is empty")
	}
	if x.RepoName == "" {
		return goerr.Wrap(types.ErrValidationFailed, "repo name is empty")
	}
	if !ptnValidCommitSHA.MatchString(string(x.CommitSHA)) {
		return goerr.Wrap(types.ErrValidationFailed, "invalid commit SHA",
			goerr.V("sha", x.CommitSHA))
	}
	if x.InstallID == 0 {
		return goerr.Wrap(types.ErrValidationFailed, "installation ID is empty")
	}
	if x.ArchiveURL == "" {
		return goerr.Wrap(types.ErrValidationFailed, "archive URL is empty")
	}
	if x.Event.UsesCheckAPI() {
		if x.Event == types.CheckRunEvent && x.CheckRunURL == "" {
			return goerr.Wrap(types.ErrValidationFailed, "check run URL is empty")
		}
		if x.Event == types.CheckSuiteEvent && x.RepoURL == "" {
			return goerr.Wrap(types.ErrValidationFailed, "repository URL is empty")
		}
	} else if x.StatusesURL == "" {
		return goerr.Wrap(types.ErrValidationFailed, "statuses URL is empty")
	}

	return nil
}
