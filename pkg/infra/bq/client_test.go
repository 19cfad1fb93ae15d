package bq_test

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/gt"
	"google.golang.org/api/impersonate"
	"google.golang.org/api/option"

	"github.com/lambdalint/linthook/pkg/domain/model"
	"github.com/lambdalint/linthook/pkg/domain/types"
	"github.com/lambdalint/linthook/pkg/infra/bq"
	"github.com/lambdalint/linthook/pkg/utils/testutil"
)

func TestClient(t *testing.T) {
	projectID := testutil.GetEnvOrSkip(t, "TEST_BIGQUERY_PROJECT_ID")
	datasetID := testutil.GetEnvOrSkip(t, "TEST_BIGQUERY_DATASET_ID")

	ctx := context.Background()

	tblName := types.BQTableID(time.Now().Format("insert_test_20060102_150405"))
	client, err := bq.New(ctx, types.GoogleProjectID(projectID), types.BQDatasetID(datasetID), tblName)
	gt.NoError(t, err)

	var schema bigquery.Schema

	t.Run("Create table at first", func(t *testing.T) {
		var record model.RunRecord
		schema = gt.R1(bqs.Infer(record)).NoError(t)

		gt.NoError(t, client.CreateTable(ctx, &bigquery.TableMetadata{
			Name:   tblName.String(),
			Schema: schema,
		}))
	})

	t.Run("Insert record", func(t *testing.T) {
		record := model.RunRecord{
			ID:        types.NewRunID(),
			Timestamp: time.Now(),
			EventType: "push",
			GitHub: model.GitMetadata{
				Owner:     "octocat",
				RepoName:  "Hello-World",
				CommitSHA: "0d1a26e67d8f5eaf1f6ba5c57fc3c7d91ac0fd1c",
				Branch:    "changes",
			},
			Cmd:        "flake8",
			ExitCode:   1,
			CPUSeconds: 1.25,
			Conclusion: "failure",
			LogURL:     "https://lambdalint.s3.eu-west-1.amazonaws.com/flake8/octocat/Hello-World.log",
		}
		gt.NoError(t, client.Insert(ctx, schema, record))
	})

	t.Run("Widen schema and insert again", func(t *testing.T) {
		md := gt.R1(client.GetMetadata(ctx)).NoError(t)
		gt.V(t, md).NotEqual(nil)

		extended := gt.R1(bqs.Merge(schema, bigquery.Schema{
			{Name: "note", Type: bigquery.StringFieldType},
		})).NoError(t)
		gt.False(t, bqs.Equal(extended, schema))

		gt.NoError(t, client.UpdateTable(ctx, bigquery.TableMetadataToUpdate{
			Schema: extended,
		}, md.ETag))
	})
}

func TestImpersonation(t *testing.T) {
	projectID := testutil.GetEnvOrSkip(t, "TEST_BIGQUERY_PROJECT_ID")
	datasetID := testutil.GetEnvOrSkip(t, "TEST_BIGQUERY_DATASET_ID")
	serviceAccount := testutil.GetEnvOrSkip(t, "TEST_BIGQUERY_IMPERSONATE_SERVICE_ACCOUNT")

	ctx := context.Background()

	ts, err := impersonate.CredentialsTokenSource(ctx, impersonate.CredentialsConfig{
		TargetPrincipal: serviceAccount,
		Scopes: []string{
			"https://www.googleapis.com/auth/bigquery",
			"https://www.googleapis.com/auth/cloud-platform",
		},
	})
	gt.NoError(t, err)

	tblName := types.BQTableID(time.Now().Format("impersonation_test_20060102_150405"))
	client, err := bq.New(ctx, types.GoogleProjectID(projectID), types.BQDatasetID(datasetID), tblName, option.WithTokenSource(ts))
	gt.NoError(t, err)

	msg := struct {
		Msg string
	}{
		Msg: "Hello, BigQuery: " + time.Now().String(),
	}

	schema := gt.R1(bqs.Infer(msg)).NoError(t)

	gt.NoError(t, client.CreateTable(ctx, &bigquery.TableMetadata{
		Name:   tblName.String(),
		Schema: schema,
	}))

	gt.NoError(t, client.Insert(ctx, schema, msg))
}

func TestClientErrors(t *testing.T) {
	t.Run("GetMetadata on non-existent table returns nil", func(t *testing.T) {
		projectID := testutil.GetEnvOrSkip(t, "TEST_BIGQUERY_PROJECT_ID")
		datasetID := testutil.GetEnvOrSkip(t, "TEST_BIGQUERY_DATASET_ID")

		ctx := context.Background()
		nonExistentTable := types.BQTableID("non_existent_table_999999")
		client, err := bq.New(ctx, types.GoogleProjectID(projectID), types.BQDatasetID(datasetID), nonExistentTable)
		gt.NoError(t, err)

		md, err := client.GetMetadata(ctx)
		gt.NoError(t, err)
		gt.V(t, md).Equal(nil)
	})

	t.Run("Insert with mismatched schema fails", func(t *testing.T) {
		projectID := testutil.GetEnvOrSkip(t, "TEST_BIGQUERY_PROJECT_ID")
		datasetID := testutil.GetEnvOrSkip(t, "TEST_BIGQUERY_DATASET_ID")

		ctx := context.Background()
		tblName := types.BQTableID(time.Now().Format("mismatch_test_20060102_150405"))
		client, err := bq.New(ctx, types.GoogleProjectID(projectID), types.BQDatasetID(datasetID), tblName)
		gt.NoError(t, err)

		schema := bigquery.Schema{
			{Name: "field1", Type: bigquery.StringFieldType},
		}
		gt.NoError(t, client.CreateTable(ctx, &bigquery.TableMetadata{
			Name:   tblName.String(),
			Schema: schema,
		}))

		wrongData := struct {
			WrongField int
		}{
			WrongField: 123,
		}

		err = client.Insert(ctx, schema, wrongData)
		gt.Error(t, err)
	})
}
