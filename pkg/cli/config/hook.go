package config

import (
	"log/slog"
	"time"

	"github.com/lambdalint/linthook/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// Hook tunes how webhook events are selected and handled.
type Hook struct {
	prActions       []string
	downloadTimeout time.Duration
	logViewerURL    string
}

func (x *Hook) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:        "pr-actions",
			Usage:       "pull_request actions that trigger a lint run",
			Category:    "Hook",
			Sources:     cli.EnvVars("LINTHOOK_PR_ACTIONS"),
			Destination: &x.prActions,
		},
		&cli.DurationFlag{
			Name:        "download-timeout",
			Usage:       "Deadline of the code archive download",
			Category:    "Hook",
			Sources:     cli.EnvVars("LINTHOOK_DOWNLOAD_TIMEOUT"),
			Destination: &x.downloadTimeout,
			Value:       30 * time.Second,
		},
		&cli.StringFlag{
			Name:        "log-viewer-url",
			Usage:       "Log viewer base URL linked from commit statuses instead of the raw log object",
			Category:    "Hook",
			Sources:     cli.EnvVars("LINTHOOK_LOG_VIEWER_URL"),
			Destination: &x.logViewerURL,
		},
	}
}

// Options converts the configuration into use case options.
func (x Hook) Options() []usecase.Option {
	options := []usecase.Option{
		usecase.WithDownloadTimeout(x.downloadTimeout),
	}
	if len(x.prActions) > 0 {
		options = append(options, usecase.WithPRActions(x.prActions...))
	}
	if x.logViewerURL != "" {
		options = append(options, usecase.WithLogViewerURL(x.logViewerURL))
	}
	return options
}

func (x Hook) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("PRActions", x.prActions),
		slog.Duration("DownloadTimeout", x.downloadTimeout),
		slog.String("LogViewerURL", x.logViewerURL),
	)
}
