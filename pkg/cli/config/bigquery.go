package config

import (
	"context"
	"log/slog"

	"github.com/lambdalint/linthook/pkg/domain/interfaces"
	"github.com/lambdalint/linthook/pkg/domain/types"
	"github.com/lambdalint/linthook/pkg/infra/bq"
	"github.com/urfave/cli/v3"
)

// BigQuery configures the optional lint run history table. The history is
// disabled when the project or dataset ID is empty.
type BigQuery struct {
	projectID types.GoogleProjectID
	datasetID types.BQDatasetID
	tableID   types.BQTableID
}

func (x *BigQuery) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "bigquery-project-id",
			Usage:       "Google Cloud project ID of the run history table",
			Category:    "BigQuery",
			Sources:     cli.EnvVars("LINTHOOK_BIGQUERY_PROJECT_ID"),
			Destination: (*string)(&x.projectID),
		},
		&cli.StringFlag{
			Name:        "bigquery-dataset-id",
			Usage:       "BigQuery dataset ID of the run history table",
			Category:    "BigQuery",
			Sources:     cli.EnvVars("LINTHOOK_BIGQUERY_DATASET_ID"),
			Destination: (*string)(&x.datasetID),
		},
		&cli.StringFlag{
			Name:        "bigquery-table-id",
			Usage:       "BigQuery table ID of the run history table",
			Category:    "BigQuery",
			Sources:     cli.EnvVars("LINTHOOK_BIGQUERY_TABLE_ID"),
			Destination: (*string)(&x.tableID),
			Value:       "lint_runs",
		},
	}
}

// NewClient returns nil without error when the history is disabled.
func (x BigQuery) NewClient(ctx context.Context) (interfaces.BigQuery, error) {
	if x.projectID == "" || x.datasetID == "" {
		return nil, nil
	}

	client, err := bq.New(ctx, x.projectID, x.datasetID, x.tableID)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func (x BigQuery) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("ProjectID", x.projectID),
		slog.Any("DatasetID", x.datasetID),
		slog.Any("TableID", x.tableID),
	)
}
