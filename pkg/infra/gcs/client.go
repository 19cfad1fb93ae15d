package gcs

import (
	"context"
	"fmt"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/goerr/v2"

	"github.com/lambdalint/linthook/pkg/domain/interfaces"
	"github.com/lambdalint/linthook/pkg/domain/types"
)

// Client puts lint logs into a Cloud Storage bucket. The bucket policy
// must allow public reads for the URL in a commit status to resolve.
type Client struct {
	bucket string
	client *storage.Client
}

var _ interfaces.ObjectStore = (*Client)(nil)

type Option func(*Client)

// WithClient replaces the Cloud Storage client, mainly for testing.
func WithClient(client *storage.Client) Option {
	return func(x *Client) {
		x.client = client
	}
}

func New(ctx context.Context, bucket string, options ...Option) (*Client, error) {
	if bucket == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GCS bucket is empty")
	}

	client := &Client{
		bucket: bucket,
	}
	for _, opt := range options {
		opt(client)
	}

	if client.client == nil {
		gcsClient, err := storage.NewClient(ctx)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create GCS client", goerr.V("bucket", bucket))
		}
		client.client = gcsClient
	}

	return client, nil
}

// Put implements interfaces.ObjectStore.
func (x *Client) Put(ctx context.Context, key string, body []byte, contentType string) (string, error) {
	w := x.client.Bucket(x.bucket).Object(key).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := w.Write(body); err != nil {
		return "", goerr.Wrap(err, "failed to write object",
			goerr.V("bucket", x.bucket),
			goerr.V("key", key),
		)
	}
	if err := w.Close(); err != nil {
		return "", goerr.Wrap(err, "failed to close object writer",
			goerr.V("bucket", x.bucket),
			goerr.V("key", key),
		)
	}

	return x.ObjectURL(key), nil
}

// ObjectURL returns the public URL of an object in the bucket.
func (x *Client) ObjectURL(key string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", x.bucket, key)
}
