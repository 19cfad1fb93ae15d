package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"

	"github.com/lambdalint/linthook/pkg/domain/interfaces"
	"github.com/lambdalint/linthook/pkg/domain/model"
	"github.com/lambdalint/linthook/pkg/domain/types"
	"github.com/lambdalint/linthook/pkg/utils/logging"
	"github.com/lambdalint/linthook/pkg/utils/safe"
)

// reporter is the strategy that maps the pipeline's progress onto one of
// the two GitHub reporting families. Exactly one terminal report (Complete
// or Abort) is sent per run that passes the relevance check.
type reporter interface {
	// Progress reports an intermediate, non-terminal state.
	Progress(ctx context.Context, summary string) error

	// Complete sends the terminal report for a finished linter run and
	// returns the log URL it published, if any.
	Complete(ctx context.Context, version string, result *model.CmdResult) (string, error)

	// Abort sends the terminal report for a run that failed before the
	// linter could finish.
	Abort(ctx context.Context, conclusion types.CheckConclusion, message string) error
}

func (x *UseCase) newReporter(target *model.LintTarget, session *http.Client) reporter {
	if target.Event.UsesCheckAPI() {
		return &checkReporter{
			label:   x.label,
			session: session,
			target:  target,
			runURL:  target.CheckRunURL,
		}
	}

	return &statusReporter{
		label:        x.label,
		cmd:          x.clients.Runner().Cmd(),
		session:      session,
		target:       target,
		store:        x.clients.ObjectStore(),
		logViewerURL: x.logViewerURL,
	}
}

// statusReporter annotates the commit through the legacy Status API. The
// full log goes to the object store and is linked as target_url.
type statusReporter struct {
	label        string
	cmd          string
	session      *http.Client
	target       *model.LintTarget
	store        interfaces.ObjectStore
	logViewerURL string
}

func (x *statusReporter) Progress(ctx context.Context, summary string) error {
	return x.postStatus(ctx, types.CommitStatePending, summary, "")
}

func (x *statusReporter) Complete(ctx context.Context, version string, result *model.CmdResult) (string, error) {
	log := result.Log()
	if version != "" {
		log = version + log
	}

	logURL, err := x.publishLog(ctx, log)
	if err != nil {
		return "", err
	}

	state := types.CommitStateSuccess
	description := fmt.Sprintf("%s succeeded!", x.cmd)
	if !result.Succeeded() {
		state = types.CommitStateFailure
		description = fmt.Sprintf("%s failed!", x.cmd)
	}

	if err := x.postStatus(ctx, state, description, logURL); err != nil {
		return "", err
	}
	return logURL, nil
}

func (x *statusReporter) Abort(ctx context.Context, conclusion types.CheckConclusion, message string) error {
	// The Status API has no timed_out vocabulary; anything that is not an
	// ordinary lint failure reports as error.
	state := types.CommitStateError
	if conclusion == types.CheckConclusionFailure {
		state = types.CommitStateFailure
	}
	return x.postStatus(ctx, state, message, "")
}

// publishLog stores the full log and returns the URL to link from the
// commit status. Without a store, a configured log viewer URL is the
// fallback; otherwise the status carries no link.
func (x *statusReporter) publishLog(ctx context.Context, log string) (string, error) {
	if x.store != nil {
		key := path.Join(x.cmd, x.target.FullName(), string(x.target.CommitSHA)+".log")
		logURL, err := x.store.Put(ctx, key, []byte(log), "text/plain")
		if err != nil {
			return "", err
		}
		return logURL, nil
	}

	if x.logViewerURL != "" {
		q := url.Values{
			"app":  []string{x.label},
			"repo": []string{x.target.FullName()},
			"ref":  []string{string(x.target.CommitSHA)},
		}
		return x.logViewerURL + "?" + q.Encode(), nil
	}

	return "", nil
}

func (x *statusReporter) postStatus(ctx context.Context, state types.CommitState, description, targetURL string) error {
	if !state.IsValid() {
		return goerr.Wrap(types.ErrInvalidState, "unknown commit state", goerr.V("state", state))
	}

	status := &github.RepoStatus{
		State:   github.String(string(state)),
		Context: github.String(x.label),
	}
	if description != "" {
		status.Description = github.String(description)
	}
	if targetURL != "" {
		status.TargetURL = github.String(targetURL)
	}

	return doJSON(ctx, x.session, http.MethodPost, x.target.CommitStatusesURL(), status, nil)
}

// checkReporter drives one check run through the Check-Run API. For
// check_suite events the run is created on first use; for check_run events
// the provider already created it and handed over its URL.
type checkReporter struct {
	label   string
	session *http.Client
	target  *model.LintTarget
	runURL  string
}

func (x *checkReporter) Progress(ctx context.Context, summary string) error {
	if err := x.ensureRun(ctx); err != nil {
		return err
	}
	return x.update(ctx, types.CheckStatusInProgress, summary, "")
}

func (x *checkReporter) Complete(ctx context.Context, version string, result *model.CmdResult) (string, error) {
	conclusion := types.CheckConclusionSuccess
	if !result.Succeeded() {
		conclusion = types.CheckConclusionFailure
	}

	summary := model.CheckSummary(version, result.Log())
	if err := x.update(ctx, types.CheckStatusCompleted, summary, conclusion); err != nil {
		return "", err
	}
	return "", nil
}

func (x *checkReporter) Abort(ctx context.Context, conclusion types.CheckConclusion, message string) error {
	if err := x.ensureRun(ctx); err != nil {
		return err
	}
	return x.update(ctx, types.CheckStatusCompleted, message, conclusion)
}

func (x *checkReporter) ensureRun(ctx context.Context) error {
	if x.runURL != "" {
		return nil
	}

	opts := github.CreateCheckRunOptions{
		Name:      x.label,
		HeadSHA:   string(x.target.CommitSHA),
		Status:    github.String(string(types.CheckStatusInProgress)),
		StartedAt: &github.Timestamp{Time: logging.CtxTime(ctx).UTC()},
	}

	var created github.CheckRun
	if err := doJSON(ctx, x.session, http.MethodPost, x.target.CheckRunsURL(), &opts, &created); err != nil {
		return err
	}
	if created.GetURL() == "" {
		return goerr.Wrap(types.ErrReportDelivery, "created check run has no URL")
	}

	x.runURL = created.GetURL()
	return nil
}

func (x *checkReporter) update(ctx context.Context, status types.CheckStatus, summary string, conclusion types.CheckConclusion) error {
	// conclusion is required with completed and forbidden before that.
	// Validated here so a bad report never reaches the network.
	if status == types.CheckStatusCompleted && conclusion == "" {
		return goerr.Wrap(types.ErrInvalidState, "conclusion is required for a completed check run")
	}
	if status != types.CheckStatusCompleted && conclusion != "" {
		return goerr.Wrap(types.ErrInvalidState, "conclusion is only allowed for a completed check run",
			goerr.V("status", status),
		)
	}
	if conclusion != "" && !conclusion.IsValid() {
		return goerr.Wrap(types.ErrInvalidState, "unknown check conclusion", goerr.V("conclusion", conclusion))
	}

	opts := github.UpdateCheckRunOptions{
		Name:   x.label,
		Status: github.String(string(status)),
		Output: &github.CheckRunOutput{
			Title:   github.String(x.label),
			Summary: github.String(summary),
		},
	}
	if status == types.CheckStatusCompleted {
		opts.Conclusion = github.String(string(conclusion))
		opts.CompletedAt = &github.Timestamp{Time: logging.CtxTime(ctx).UTC()}
	}

	return doJSON(ctx, x.session, http.MethodPatch, x.runURL, &opts, nil)
}

// doJSON sends one JSON request through the authenticated session and
// decodes the response into out when given. Any non-2xx response is a
// report delivery failure.
func doJSON(ctx context.Context, session *http.Client, method, reqURL string, body, out any) error {
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(body); err != nil {
		return goerr.Wrap(err, "failed to encode request body", goerr.V("url", reqURL))
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, buf)
	if err != nil {
		return goerr.Wrap(err, "failed to build request", goerr.V("url", reqURL))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := session.Do(req)
	if err != nil {
		return goerr.Wrap(types.ErrReportDelivery, "request failed",
			goerr.V("url", reqURL),
			goerr.V("cause", err.Error()),
		)
	}
	defer safe.Close(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		return goerr.Wrap(types.ErrReportDelivery, "unexpected response status",
			goerr.V("url", reqURL),
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(respBody)),
		)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return goerr.Wrap(types.ErrReportDelivery, "failed to decode response", goerr.V("url", reqURL))
		}
	}

	return nil
}
