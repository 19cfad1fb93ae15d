package config

import (
	"context"
	"log/slog"

	"github.com/lambdalint/linthook/pkg/domain/interfaces"
	"github.com/lambdalint/linthook/pkg/domain/types"
	"github.com/lambdalint/linthook/pkg/infra/gcs"
	"github.com/lambdalint/linthook/pkg/infra/s3"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// LogStore selects where lint logs are uploaded.
type LogStore struct {
	backend string
	bucket  string
	region  string
}

func (x *LogStore) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-store",
			Usage:       "Log storage backend [s3|gcs|none]",
			Category:    "Log store",
			Sources:     cli.EnvVars("LINTHOOK_LOG_STORE"),
			Destination: &x.backend,
			Value:       "s3",
		},
		&cli.StringFlag{
			Name:        "log-bucket",
			Usage:       "Bucket that receives lint logs",
			Category:    "Log store",
			Sources:     cli.EnvVars("LINTHOOK_LOG_BUCKET", "BUCKET"),
			Destination: &x.bucket,
			Value:       "lambdalint",
		},
		&cli.StringFlag{
			Name:        "log-region",
			Usage:       "Region of the log bucket (S3 only)",
			Category:    "Log store",
			Sources:     cli.EnvVars("LINTHOOK_LOG_REGION", "REGION"),
			Destination: &x.region,
			Value:       "eu-west-1",
		},
	}
}

// NewStore builds the configured object store. The "none" backend returns
// nil and disables log upload.
func (x LogStore) NewStore(ctx context.Context) (interfaces.ObjectStore, error) {
	switch x.backend {
	case "s3":
		return s3.New(ctx, x.bucket, x.region)
	case "gcs":
		return gcs.New(ctx, x.bucket)
	case "none":
		return nil, nil
	default:
		return nil, goerr.Wrap(types.ErrInvalidOption, "unknown log store backend",
			goerr.V("backend", x.backend))
	}
}

func (x LogStore) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("Backend", x.backend),
		slog.String("Bucket", x.bucket),
		slog.String("Region", x.region),
	)
}
