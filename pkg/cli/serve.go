package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"

	"github.com/lambdalint/linthook/pkg/cli/config"
	"github.com/lambdalint/linthook/pkg/controller/server"
	"github.com/lambdalint/linthook/pkg/infra"
	"github.com/lambdalint/linthook/pkg/usecase"
	"github.com/lambdalint/linthook/pkg/utils/logging"
)

func serveCommand() *cli.Command {
	var (
		addr string

		githubApp config.GitHubApp
		linter    config.Linter
		hook      config.Hook
		logStore  config.LogStore
		bigQuery  config.BigQuery
		sentry    config.Sentry
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:8000",
			Sources:     cli.EnvVars("LINTHOOK_ADDR"),
			Destination: &addr,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Receive SNS notifications over HTTPS",
		Flags: slice.Flatten(
			serveFlags,
			githubApp.Flags(),
			linter.Flags(),
			hook.Flags(),
			logStore.Flags(),
			bigQuery.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
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

			s := server.New(uc)

			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:    addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				WriteTimeout:      30 * time.Second,
			}

			go func() {
				logging.Default().Info("starting http server", "addr", addr)
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					serverErr <- goerr.Wrap(err, "failed to listen and serve")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				return err

			case sig := <-quit:
				logging.Default().Info("shutting down server", "signal", sig)

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(ctx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}
			}

			return nil
		},
	}
}

// buildUseCase assembles the lint pipeline shared by the serve and lambda
// commands.
func buildUseCase(ctx context.Context, githubApp *config.GitHubApp, linter *config.Linter, hook *config.Hook, logStore *config.LogStore, bigQuery *config.BigQuery) (*usecase.UseCase, error) {
	ghApp, err := githubApp.New()
	if err != nil {
		return nil, err
	}

	runner, err := linter.NewRunner()
	if err != nil {
		return nil, err
	}

	infraOptions := []infra.Option{
		infra.WithGitHubApp(ghApp),
		infra.WithRunner(runner),
	}

	if store, err := logStore.NewStore(ctx); err != nil {
		return nil, err
	} else if store != nil {
		infraOptions = append(infraOptions, infra.WithObjectStore(store))
	}

	if bqClient, err := bigQuery.NewClient(ctx); err != nil {
		return nil, err
	} else if bqClient != nil {
		infraOptions = append(infraOptions, infra.WithBigQuery(bqClient))
	}

	clients := infra.New(infraOptions...)

	return usecase.New(clients, linter.Label(), hook.Options()...), nil
}
