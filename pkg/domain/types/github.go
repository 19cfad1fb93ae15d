package types

import "log/slog"

type (
	GitHubAppID         int64
	GitHubAppInstallID  int64
	GitHubAppPrivateKey string
	GitHubToken         string
	RepoFullName        string
	BranchName          string
	CommitSHA           string
	GitHubEventType     string
)

const (
	PushEvent        GitHubEventType = "push"
	PullRequestEvent GitHubEventType = "pull_request"
	CheckSuiteEvent  GitHubEventType = "check_suite"
	CheckRunEvent    GitHubEventType = "check_run"
)

// UsesCheckAPI distinguishes the two reporting families: check_suite and
// check_run events report via the Check-Run API, push and pull_request via
// the commit Status API.
func (x GitHubEventType) UsesCheckAPI() bool {
	return x == CheckSuiteEvent || x == CheckRunEvent
}

func (x GitHubAppPrivateKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubAppPrivateKey) String() string {
	return "***********"
}

func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubToken) String() string {
	return "***********"
}
