package usecase

import (
	"time"

	"github.com/lambdalint/linthook/pkg/infra"
)

const defaultDownloadTimeout = 30 * time.Second

// defaultPRActions is the pull_request action allow-list. Other actions,
// notably "closed", do not change the head commit and need no lint run.
var defaultPRActions = []string{"opened", "edited", "reopened", "synchronize"}

type UseCase struct {
	clients *infra.Clients

	label           string
	prActions       []string
	downloadTimeout time.Duration
	logViewerURL    string
}

type Option func(*UseCase)

// WithPRActions replaces the pull_request action allow-list.
func WithPRActions(actions ...string) Option {
	return func(x *UseCase) {
		x.prActions = actions
	}
}

// WithDownloadTimeout sets the deadline of the code archive download.
func WithDownloadTimeout(d time.Duration) Option {
	return func(x *UseCase) {
		x.downloadTimeout = d
	}
}

// WithLogViewerURL sets a human-facing log viewer base URL. When set, the
// commit status links there instead of the raw log object.
func WithLogViewerURL(baseURL string) Option {
	return func(x *UseCase) {
		x.logViewerURL = baseURL
	}
}

func New(clients *infra.Clients, label string, options ...Option) *UseCase {
	uc := &UseCase{
		clients:         clients,
		label:           label,
		prActions:       defaultPRActions,
		downloadTimeout: defaultDownloadTimeout,
	}

	for _, opt := range options {
		opt(uc)
	}

	return uc
}
