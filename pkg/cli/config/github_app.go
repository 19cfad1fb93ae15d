package config

import (
	"log/slog"

	"github.com/lambdalint/linthook/pkg/domain/types"
	"github.com/lambdalint/linthook/pkg/infra/githubapp"
	"github.com/urfave/cli/v3"
)

type GitHubApp struct {
	id         types.GitHubAppID
	privateKey types.GitHubAppPrivateKey `masq:"secret"`
}

func (x *GitHubApp) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.Int64Flag{
			Name:     "github-app-id",
			Usage:    "GitHub App ID",
			Category: "GitHub App",
			// INTEGRATION_ID is the variable name the Lambda deployments
			// have always used.
			Sources:     cli.EnvVars("LINTHOOK_GITHUB_APP_ID", "INTEGRATION_ID"),
			Destination: (*int64)(&x.id),
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "github-app-private-key",
			Usage:       "GitHub App private key (PEM)",
			Category:    "GitHub App",
			Sources:     cli.EnvVars("LINTHOOK_GITHUB_APP_PRIVATE_KEY", "PEM"),
			Destination: (*string)(&x.privateKey),
			Required:    true,
		},
	}
}

func (x GitHubApp) New() (*githubapp.Client, error) {
	return githubapp.New(x.id, x.privateKey)
}

func (x GitHubApp) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("ID", int64(x.id)),
		slog.Int("privateKey.len", len(x.privateKey)),
	)
}
