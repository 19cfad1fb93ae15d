package usecase

import (
	"context"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/goerr/v2"

	"github.com/lambdalint/linthook/pkg/domain/interfaces"
	"github.com/lambdalint/linthook/pkg/domain/model"
)

// InsertRunRecord appends one run to the lint history table. Without a
// configured BigQuery client the history is disabled and this is a no-op.
func (x *UseCase) InsertRunRecord(ctx context.Context, record *model.RunRecord) error {
	bq := x.clients.BigQuery()
	if bq == nil {
		return nil
	}

	schema, err := createOrUpdateTable(ctx, bq, record)
	if err != nil {
		return err
	}

	if err := bq.Insert(ctx, schema, record); err != nil {
		return goerr.Wrap(err, "failed to insert run record to BigQuery")
	}

	return nil
}

func createOrUpdateTable(ctx context.Context, bq interfaces.BigQuery, record *model.RunRecord) (bigquery.Schema, error) {
	schema, err := bqs.Infer(record)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to infer run record schema")
	}

	metaData, err := bq.GetMetadata(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get BigQuery table metadata")
	}
	if metaData == nil {
		if err := bq.CreateTable(ctx, &bigquery.TableMetadata{
			Schema: schema,
		}); err != nil {
			return nil, goerr.Wrap(err, "failed to create BigQuery table")
		}

		return schema, nil
	}

	if bqs.Equal(metaData.Schema, schema) {
		return schema, nil
	}

	mergedSchema, err := bqs.Merge(metaData.Schema, schema)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to merge BigQuery schema")
	}
	if err := bq.UpdateTable(ctx, bigquery.TableMetadataToUpdate{
		Schema: mergedSchema,
	}, metaData.ETag); err != nil {
		return nil, goerr.Wrap(err, "failed to update BigQuery table")
	}

	return mergedSchema, nil
}
