package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"

	"github.com/lambdalint/linthook/pkg/cli/config"
	"github.com/lambdalint/linthook/pkg/domain/model"
	"github.com/lambdalint/linthook/pkg/infra"
	"github.com/lambdalint/linthook/pkg/usecase"
	"github.com/lambdalint/linthook/pkg/utils/logging"
)

func lintCommand() *cli.Command {
	var (
		dir  string
		meta model.GitMetadata

		linter   config.Linter
		bigQuery config.BigQuery
	)

	return &cli.Command{
		Name:  "lint",
		Usage: "Run the linter against a local directory",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "dir",
				Aliases:     []string{"d"},
				Usage:       "Path to directory to lint",
				Value:       ".",
				Destination: &dir,
			},
			&cli.StringFlag{
				Name:        "github-owner",
				Usage:       "GitHub repository owner (auto-detect from git if not specified)",
				Sources:     cli.EnvVars("LINTHOOK_GITHUB_OWNER"),
				Destination: &meta.Owner,
			},
			&cli.StringFlag{
				Name:        "github-repo",
				Usage:       "GitHub repository name (auto-detect from git if not specified)",
				Sources:     cli.EnvVars("LINTHOOK_GITHUB_REPO"),
				Destination: &meta.RepoName,
			},
			&cli.StringFlag{
				Name:        "github-commit-sha",
				Usage:       "Commit SHA (auto-detect from git if not specified)",
				Sources:     cli.EnvVars("LINTHOOK_GITHUB_COMMIT_SHA"),
				Destination: &meta.CommitSHA,
			},
		}, linter.Flags(), bigQuery.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			// A missing git repository is fine when all fields are given on
			// the command line.
			if meta.Owner == "" || meta.RepoName == "" || meta.CommitSHA == "" {
				if err := AutoDetectGitMetadata(dir, &meta); err != nil {
					return err
				}
			}

			logging.Default().Info("starting lint",
				slog.String("dir", dir),
				slog.Any("meta", meta),
				slog.Any("Linter", linter),
				slog.Any("BigQuery", bigQuery),
			)

			runner, err := linter.NewRunner()
			if err != nil {
				return err
			}

			infraOptions := []infra.Option{
				infra.WithRunner(runner),
			}

			if bqClient, err := bigQuery.NewClient(ctx); err != nil {
				return err
			} else if bqClient != nil {
				infraOptions = append(infraOptions, infra.WithBigQuery(bqClient))
			}

			clients := infra.New(infraOptions...)
			uc := usecase.New(clients, linter.Label())

			return uc.LintLocal(ctx, dir, meta)
		},
	}
}
