package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/gt"

	"github.com/lambdalint/linthook/pkg/domain/mock"
	"github.com/lambdalint/linthook/pkg/domain/model"
	"github.com/lambdalint/linthook/pkg/domain/types"
	"github.com/lambdalint/linthook/pkg/infra"
	"github.com/lambdalint/linthook/pkg/usecase"
)

func TestLintLocal(t *testing.T) {
	ctx := context.Background()
	meta := model.GitMetadata{
		Owner:     "owner",
		RepoName:  "repo",
		CommitSHA: testSHA,
		Branch:    "main",
	}

	t.Run("runs in the given directory without GitHub", func(t *testing.T) {
		var gotDir string
		runner := testRunner(nil, nil)
		runner.RunFunc = func(ctx context.Context, dir string) (*model.CmdResult, error) {
			gotDir = dir
			return &model.CmdResult{CommandLine: "python -m flake8", ExitCode: 0, CPUTime: time.Second}, nil
		}

		clients := infra.New(infra.WithRunner(runner))
		uc := usecase.New(clients, "lint")

		gt.NoError(t, uc.LintLocal(ctx, "/src/project", meta))
		gt.V(t, gotDir).Equal("/src/project")
	})

	t.Run("records the run when history is configured", func(t *testing.T) {
		var inserted any
		bq := &mock.BigQueryMock{
			GetMetadataFunc: func(ctx context.Context) (*bigquery.TableMetadata, error) {
				return nil, nil
			},
			CreateTableFunc: func(ctx context.Context, md *bigquery.TableMetadata) error {
				return nil
			},
			InsertFunc: func(ctx context.Context, schema bigquery.Schema, data any) error {
				inserted = data
				return nil
			},
		}

		runner := testRunner(&model.CmdResult{CommandLine: "python -m flake8", ExitCode: 0, CPUTime: time.Second}, nil)
		clients := infra.New(infra.WithRunner(runner), infra.WithBigQuery(bq))
		uc := usecase.New(clients, "lint")

		gt.NoError(t, uc.LintLocal(ctx, ".", meta))

		record := gt.Cast[*model.RunRecord](t, inserted)
		gt.V(t, record.EventType).Equal("local")
		gt.V(t, record.GitHub).Equal(meta)
		gt.V(t, record.Conclusion).Equal("success")
	})

	t.Run("failing version probe aborts the run", func(t *testing.T) {
		runner := testRunner(
			&model.CmdResult{CommandLine: "python -m flake8", ExitCode: 0},
			&model.CmdResult{CommandLine: "python -m flake8 --version", Output: "boom", ExitCode: 1},
		)

		clients := infra.New(infra.WithRunner(runner))
		uc := usecase.New(clients, "lint")

		err := uc.LintLocal(ctx, ".", meta)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrVersionProbe))
	})
}
