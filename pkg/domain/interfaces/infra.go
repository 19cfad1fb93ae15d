package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . BigQuery GitHubApp ObjectStore Runner

import (
	"context"
	"net/http"
	"time"

	"cloud.google.com/go/bigquery"

	"github.com/lambdalint/linthook/pkg/domain/model"
	"github.com/lambdalint/linthook/pkg/domain/types"
)

type BigQuery interface {
	Insert(ctx context.Context, schema bigquery.Schema, data any) error

	GetMetadata(ctx context.Context) (*bigquery.TableMetadata, error)
	UpdateTable(ctx context.Context, md bigquery.TableMetadataToUpdate, eTag string) error
	CreateTable(ctx context.Context, md *bigquery.TableMetadata) error
}

// AntiopePreview is the media type every Check-Run API call must declare.
const AntiopePreview = "application/vnd.github.antiope-preview+json"

type SessionConfig struct {
	Previews []string
}

type SessionOption func(*SessionConfig)

// WithPreview adds a provider preview media type to the Accept header of
// every request the session sends.
func WithPreview(mediaType string) SessionOption {
	return func(c *SessionConfig) {
		c.Previews = append(c.Previews, mediaType)
	}
}

type GitHubApp interface {
	// NewSession exchanges a signed assertion for an installation token and
	// returns an HTTP client that authenticates every request with it.
	NewSession(ctx context.Context, installID types.GitHubAppInstallID, opts ...SessionOption) (*http.Client, error)
}

// ObjectStore persists lint logs and returns a public URL for each object.
type ObjectStore interface {
	Put(ctx context.Context, key string, body []byte, contentType string) (string, error)
}

// Runner executes the configured linter command.
type Runner interface {
	// Cmd returns the configured command name, used in report descriptions
	// and log object keys.
	Cmd() string

	// Timeout returns the deadline applied to Run, used in timeout reports.
	Timeout() time.Duration

	// Version runs the version probe in the handler's own working
	// directory. A nil result means the probe is disabled.
	Version(ctx context.Context) (*model.CmdResult, error)

	// Run executes the linter with dir as working directory.
	Run(ctx context.Context, dir string) (*model.CmdResult, error)
}
