package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"

	"github.com/lambdalint/linthook/pkg/cli/config"
	"github.com/lambdalint/linthook/pkg/controller/lambda"
	"github.com/lambdalint/linthook/pkg/utils/logging"
)

func lambdaCommand() *cli.Command {
	var (
		githubApp config.GitHubApp
		linter    config.Linter
		hook      config.Hook
		logStore  config.LogStore
		bigQuery  config.BigQuery
		sentry    config.Sentry
	)

	return &cli.Command{
		Name:  "lambda",
		Usage: "Run as an AWS Lambda function with an SNS trigger",
		Flags: slice.Flatten(
			githubApp.Flags(),
			linter.Flags(),
			hook.Flags(),
			logStore.Flags(),
			bigQuery.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting lambda",
				slog.Any("GitHubApp", githubApp),
				slog.Any("Linter", linter),
				slog.Any("Hook", hook),
				slog.Any("LogStore", logStore),
				slog.Any("BigQuery", bigQuery),
				slog.Any("Sentry", sentry),
			)

			if err := sentry.Configure(ctx); err != nil {
				return err
			}

			uc, err := buildUseCase(ctx, &githubApp, &linter, &hook, &logStore, &bigQuery)
			if err != nil {
				return err
			}

			lambda.New(uc).Start()
			return nil
		},
	}
}
